package puzzleio

import "github.com/katalvlaran/sudoku/board"

// Builtin returns the built-in benchmark puzzle for sizes 9, 16, or 25.
// Returns ErrUnknownSize otherwise.
func Builtin(size int) (*board.Board, error) {
	switch size {
	case 9:
		return board.NewFromGrid(builtin9())
	case 16:
		return board.NewFromGrid(builtin16())
	case 25:
		return board.NewFromGrid(builtin25())
	default:
		return nil, ErrUnknownSize
	}
}

// builtin9 is the classic hard 9×9 used across the test scenarios.
func builtin9() [][]int {
	return [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

// builtin16 is a hard 16×16 with 4×4 boxes.
func builtin16() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0, 0, 15, 0, 10, 0, 0, 0, 12, 1, 0},
		{0, 1, 10, 0, 0, 0, 0, 3, 0, 0, 16, 0, 0, 0, 0, 0},
		{3, 0, 0, 8, 12, 1, 0, 14, 0, 0, 0, 0, 0, 0, 0, 6},
		{0, 2, 0, 0, 0, 0, 0, 0, 14, 0, 0, 15, 0, 0, 0, 0},
		{0, 0, 0, 3, 15, 0, 0, 0, 8, 1, 0, 0, 5, 7, 0, 0},
		{4, 0, 0, 10, 1, 0, 0, 0, 11, 0, 0, 7, 15, 0, 0, 0},
		{0, 0, 8, 1, 7, 16, 0, 0, 0, 14, 0, 6, 12, 0, 0, 0},
		{0, 0, 0, 0, 14, 0, 13, 12, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 11, 0, 0, 0, 0, 0, 6, 7, 0, 14, 0, 0, 0, 0},
		{0, 0, 0, 2, 3, 0, 11, 0, 0, 0, 10, 1, 14, 9, 0, 0},
		{0, 0, 0, 14, 6, 0, 0, 10, 0, 0, 0, 4, 11, 0, 0, 5},
		{0, 0, 3, 13, 0, 0, 4, 16, 0, 0, 0, 9, 6, 0, 0, 0},
		{0, 0, 0, 0, 11, 0, 0, 6, 0, 0, 0, 0, 0, 0, 2, 0},
		{10, 0, 0, 0, 0, 0, 0, 0, 15, 0, 0, 0, 16, 0, 0, 7},
		{0, 0, 0, 0, 0, 15, 0, 0, 2, 0, 0, 0, 0, 4, 12, 0},
		{0, 16, 15, 0, 0, 0, 3, 0, 7, 0, 0, 0, 0, 0, 0, 0},
	}
}

// builtin25 is a sparse 25×25 (5×5 boxes) for heavy benchmark load:
// five seeds per row along the c ≡ r (mod 5) diagonals, mutually
// consistent by construction, leaving 80% of the grid empty.
func builtin25() [][]int {
	grid := make([][]int, 25)
	for r := 0; r < 25; r++ {
		grid[r] = make([]int, 25)
		a, k := r/5, r%5
		for j := 0; j < 5; j++ {
			c := 5*j + k
			grid[r][c] = (6*k+5*j+a)%25 + 1
		}
	}
	return grid
}
