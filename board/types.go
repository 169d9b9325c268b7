// Package board defines the Dimension type and sentinel errors for the
// board subpackage of github.com/katalvlaran/sudoku.
package board

import "errors"

// Sentinel errors for board operations. All constructors and mutators
// return these; tests match them via errors.Is.
var (
	// ErrInvalidDimension indicates (size, boxRows, boxCols) with
	// boxRows·boxCols ≠ size or a non-positive part.
	ErrInvalidDimension = errors.New("board: invalid dimension")
	// ErrOutOfRange indicates a cell coordinate outside [0, size).
	ErrOutOfRange = errors.New("board: cell position out of range")
	// ErrInvalidValue indicates a cell value outside {0} ∪ [1, size].
	ErrInvalidValue = errors.New("board: invalid cell value")
	// ErrShapeMismatch indicates a grid whose dimensions disagree with
	// the supplied Dimension, or a non-square grid.
	ErrShapeMismatch = errors.New("board: grid shape does not match dimension")
)

// MaxSize bounds the grid side so candidate bitsets fit one uint32 word.
const MaxSize = 32

// Dimension describes the geometry of an N×N board: the side length and
// the box shape. Invariant: BoxRows·BoxCols == Size, all positive.
type Dimension struct {
	Size    int // total side length (e.g. 9 for 9×9)
	BoxRows int // rows per box (e.g. 3 for 9×9)
	BoxCols int // columns per box (e.g. 3 for 9×9)
}

// Standard presets for the common board sizes.
var (
	Standard4x4   = Dimension{Size: 4, BoxRows: 2, BoxCols: 2}
	Standard6x6   = Dimension{Size: 6, BoxRows: 2, BoxCols: 3}
	Standard9x9   = Dimension{Size: 9, BoxRows: 3, BoxCols: 3}
	Standard12x12 = Dimension{Size: 12, BoxRows: 3, BoxCols: 4}
	Standard16x16 = Dimension{Size: 16, BoxRows: 4, BoxCols: 4}
	Standard25x25 = Dimension{Size: 25, BoxRows: 5, BoxCols: 5}
)

// FromSize derives box dimensions for a given side length by picking the
// largest divisor of size not exceeding √size as BoxRows (the most
// square-like split). Falls back to 1×size when size is prime.
func FromSize(size int) Dimension {
	for i := isqrt(size); i >= 1; i-- {
		if size%i == 0 {
			return Dimension{Size: size, BoxRows: i, BoxCols: size / i}
		}
	}
	return Dimension{Size: size, BoxRows: 1, BoxCols: size}
}

// IsValid reports whether the dimension satisfies its invariant.
func (d Dimension) IsValid() bool {
	return d.Size > 0 && d.BoxRows > 0 && d.BoxCols > 0 &&
		d.BoxRows*d.BoxCols == d.Size
}

// NumBoxes returns the number of br×bc boxes on the board (always Size).
func (d Dimension) NumBoxes() int {
	return (d.Size / d.BoxRows) * (d.Size / d.BoxCols)
}

// isqrt returns ⌊√n⌋ for n ≥ 0 without floating-point round-off.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
