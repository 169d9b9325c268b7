// Package puzzleio: sentinel errors and the OCR collaborator contract.
package puzzleio

import (
	"errors"

	"github.com/katalvlaran/sudoku/board"
)

// Sentinel errors for puzzle decoding.
var (
	// ErrParse indicates the document holds no recognizable puzzle shape.
	ErrParse = errors.New("puzzleio: cannot parse puzzle from document")
	// ErrBadLength indicates a puzzle string whose length is not a
	// perfect square.
	ErrBadLength = errors.New("puzzleio: puzzle string length is not a perfect square")
	// ErrUnknownSize indicates no built-in puzzle exists for the size.
	ErrUnknownSize = errors.New("puzzleio: no built-in puzzle for size")
)

// OCRResult is what an image-extraction collaborator hands the core:
// the recognized grid with geometry and per-cell confidences. The core
// consumes only the grid; it never inspects image content.
type OCRResult struct {
	Grid         [][]int
	Dimension    board.Dimension
	Confidences  [][]float32
	Success      bool
	ErrorMessage string
}

// OCRProcessor extracts a puzzle grid from an image file. No
// implementation ships with this module; callers plug their own.
type OCRProcessor interface {
	ProcessImage(path string) OCRResult
}

// Board converts a successful OCR result into a Board.
// Returns board construction errors, or ErrParse when Success is false.
func (r OCRResult) Board() (*board.Board, error) {
	if !r.Success {
		return nil, ErrParse
	}
	if r.Dimension.IsValid() {
		return board.NewFromGridDim(r.Grid, r.Dimension)
	}
	return board.NewFromGrid(r.Grid)
}
