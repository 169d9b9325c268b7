package puzzleio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

// BoardDocument is the JSON form of a board: explicit geometry, the
// grid as a 2-D array, and row strings for easy viewing.
type BoardDocument struct {
	Size       int      `json:"size"`
	BoxRows    int      `json:"box_rows"`
	BoxCols    int      `json:"box_cols"`
	Grid       [][]int  `json:"grid"`
	GridString []string `json:"grid_string"`
}

// NewBoardDocument builds the JSON form of b.
func NewBoardDocument(b *board.Board) BoardDocument {
	n := b.Size()
	rows := make([]string, n)
	grid := b.Grid()
	for r := 0; r < n; r++ {
		line := make([]byte, n)
		for c := 0; c < n; c++ {
			line[c] = valueToChar(grid[r][c])
		}
		rows[r] = string(line)
	}
	return BoardDocument{
		Size:       n,
		BoxRows:    b.BoxRows(),
		BoxCols:    b.BoxCols(),
		Grid:       grid,
		GridString: rows,
	}
}

// SolutionDocument echoes the original puzzle, the solved board, and
// the solver metadata.
type SolutionDocument struct {
	Original   BoardDocument  `json:"original"`
	Solved     bool           `json:"solved"`
	Algorithm  string         `json:"algorithm"`
	TimeMS     float64        `json:"time_ms"`
	Iterations int            `json:"iterations"`
	Backtracks int            `json:"backtracks"`
	Solution   *BoardDocument `json:"solution,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// NewSolutionDocument assembles the output document for one solve.
func NewSolutionDocument(original *board.Board, result solver.SolveResult) SolutionDocument {
	doc := SolutionDocument{
		Original:   NewBoardDocument(original),
		Solved:     result.Solved,
		Algorithm:  result.Algorithm,
		TimeMS:     result.TimeMS,
		Iterations: result.Iterations,
		Backtracks: result.Backtracks,
		Error:      result.ErrorMessage,
	}
	if result.Solved {
		if solved, err := board.NewFromGridDim(result.Solution, original.Dim()); err == nil {
			d := NewBoardDocument(solved)
			doc.Solution = &d
		}
	}
	return doc
}

// EncodeBoard marshals b, indented when pretty.
func EncodeBoard(b *board.Board, pretty bool) ([]byte, error) {
	return marshal(NewBoardDocument(b), pretty)
}

// EncodeSolution marshals the solution document, indented when pretty.
func EncodeSolution(original *board.Board, result solver.SolveResult, pretty bool) ([]byte, error) {
	return marshal(NewSolutionDocument(original, result), pretty)
}

// SaveSolution writes the solution document to path.
func SaveSolution(original *board.Board, result solver.SolveResult, path string, pretty bool) error {
	data, err := EncodeSolution(original, result, pretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("puzzleio: write %s: %w", path, err)
	}
	return nil
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// valueToChar maps a cell value back into the puzzle alphabet.
func valueToChar(v int) byte {
	switch {
	case v == 0:
		return '.'
	case v < 10:
		return byte('0' + v)
	default:
		return byte('A' + v - 10)
	}
}
