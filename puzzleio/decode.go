package puzzleio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/sudoku/board"
)

// inputDoc mirrors the optional wrapper-object keys. Raw messages keep
// the grid payload undecoded until its shape is known.
type inputDoc struct {
	Grid    json.RawMessage `json:"grid"`
	Board   json.RawMessage `json:"board"`
	Puzzle  string          `json:"puzzle"`
	Size    int             `json:"size"`
	BoxRows int             `json:"box_rows"`
	BoxCols int             `json:"box_cols"`
	BoxSize int             `json:"box_size"`
}

// LoadFile reads and decodes a puzzle document from disk.
func LoadFile(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzleio: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a puzzle from a JSON document: a wrapper object with
// "grid"/"board"/"puzzle" keys and optional dimension fields, or a
// bare array/string at the root.
func Decode(data []byte) (*board.Board, error) {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) == 0 {
		return nil, ErrParse
	}

	switch trimmed[0] {
	case '{':
		var doc inputDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("puzzleio: %w", err)
		}
		return doc.toBoard()
	case '[':
		grid, err := parseGridPayload(json.RawMessage(data))
		if err != nil {
			return nil, err
		}
		return board.NewFromGrid(grid)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("puzzleio: %w", err)
		}
		return DecodeString(s)
	default:
		// Bare puzzle text (not JSON at all): treat as a single string.
		return DecodeString(string(data))
	}
}

// toBoard assembles the Board from whichever key the document used,
// applying explicit dimensions when present.
func (doc inputDoc) toBoard() (*board.Board, error) {
	var grid [][]int
	var err error

	switch {
	case doc.Grid != nil:
		grid, err = parseGridPayload(doc.Grid)
	case doc.Puzzle != "":
		grid, err = parsePuzzleString(doc.Puzzle)
	case doc.Board != nil:
		trimmed := bytes.TrimLeftFunc(doc.Board, unicode.IsSpace)
		if len(trimmed) > 0 && trimmed[0] == '"' {
			var s string
			if err = json.Unmarshal(doc.Board, &s); err == nil {
				grid, err = parsePuzzleString(s)
			}
		} else {
			grid, err = parseGridPayload(doc.Board)
		}
	default:
		return nil, ErrParse
	}
	if err != nil {
		return nil, err
	}

	return board.NewFromGridDim(grid, doc.dimension(len(grid)))
}

// dimension resolves explicit size/box fields, box_size shorthand, or
// falls back to the square-most split for the detected size.
func (doc inputDoc) dimension(gridSize int) board.Dimension {
	if doc.Size > 0 && doc.BoxRows > 0 && doc.BoxCols > 0 {
		return board.Dimension{Size: doc.Size, BoxRows: doc.BoxRows, BoxCols: doc.BoxCols}
	}
	if doc.BoxSize > 0 {
		return board.Dimension{Size: gridSize, BoxRows: doc.BoxSize, BoxCols: doc.BoxSize}
	}
	return board.FromSize(gridSize)
}

// parseGridPayload decodes an array payload by its element shape:
// rows of numbers, rows as strings, or a flat square-length array.
func parseGridPayload(raw json.RawMessage) ([][]int, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("puzzleio: %w", err)
	}
	if len(elems) == 0 {
		return nil, ErrParse
	}

	first := bytes.TrimLeftFunc(elems[0], unicode.IsSpace)
	switch {
	case len(first) > 0 && first[0] == '[':
		return parseGrid2D(elems)
	case len(first) > 0 && first[0] == '"':
		return parseGridStrings(elems)
	default:
		return parseGridFlat(raw)
	}
}

// parseGrid2D decodes rows of cells, where each cell may be a number
// or a digit string.
func parseGrid2D(rows []json.RawMessage) ([][]int, error) {
	grid := make([][]int, 0, len(rows))
	for _, rowRaw := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(rowRaw, &cells); err != nil {
			return nil, fmt.Errorf("puzzleio: %w", err)
		}
		row := make([]int, 0, len(cells))
		for _, cellRaw := range cells {
			var n int
			if err := json.Unmarshal(cellRaw, &n); err == nil {
				row = append(row, n)
				continue
			}
			var s string
			if err := json.Unmarshal(cellRaw, &s); err != nil {
				return nil, ErrParse
			}
			if s == "" {
				row = append(row, 0)
			} else {
				row = append(row, charToValue(s[0]))
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// parseGridStrings decodes one string per row via the character alphabet.
func parseGridStrings(rows []json.RawMessage) ([][]int, error) {
	grid := make([][]int, 0, len(rows))
	for _, rowRaw := range rows {
		var s string
		if err := json.Unmarshal(rowRaw, &s); err != nil {
			return nil, fmt.Errorf("puzzleio: %w", err)
		}
		row := make([]int, 0, len(s))
		for i := 0; i < len(s); i++ {
			row = append(row, charToValue(s[i]))
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// parseGridFlat decodes a flat integer array of square length into a
// row-major grid.
func parseGridFlat(raw json.RawMessage) ([][]int, error) {
	var flat []int
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("puzzleio: %w", err)
	}
	size := 1
	for size*size < len(flat) {
		size++
	}
	if size*size != len(flat) {
		return nil, ErrBadLength
	}
	grid := make([][]int, size)
	for r := 0; r < size; r++ {
		grid[r] = flat[r*size : (r+1)*size]
	}
	return grid, nil
}

// DecodeString parses a bare row-major puzzle string of length N²
// (line breaks and tabs ignored, ' ' read as an empty cell) and infers
// box geometry with board.FromSize.
func DecodeString(s string) (*board.Board, error) {
	grid, err := parsePuzzleString(s)
	if err != nil {
		return nil, err
	}
	return board.NewFromGrid(grid)
}

// parsePuzzleString strips whitespace other than ' ' and maps each
// remaining character through the alphabet, so ' ' marks an empty
// cell. The cleaned length must be a perfect square.
func parsePuzzleString(s string) ([][]int, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r != ' ' && unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	size := 1
	for size*size < len(cleaned) {
		size++
	}
	if len(cleaned) == 0 || size*size != len(cleaned) {
		return nil, ErrBadLength
	}

	grid := make([][]int, size)
	for r := 0; r < size; r++ {
		grid[r] = make([]int, size)
		for c := 0; c < size; c++ {
			grid[r][c] = charToValue(cleaned[r*size+c])
		}
	}
	return grid, nil
}

// charToValue maps the puzzle alphabet to cell values; anything
// unrecognized reads as empty.
func charToValue(c byte) int {
	switch {
	case c >= '1' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return 10 + int(c-'A')
	case c >= 'a' && c <= 'z':
		return 10 + int(c-'a')
	default:
		return 0
	}
}
