// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

// ExampleNew solves a small 4×4 puzzle with the default engine.
func ExampleNew() {
	b, _ := board.NewFromGridDim([][]int{
		{1, 0, 3, 0},
		{0, 4, 0, 2},
		{2, 0, 4, 0},
		{0, 1, 0, 3},
	}, board.Standard4x4)

	s := solver.New(solver.Auto)
	result := s.Solve(b)

	fmt.Println(result.Solved)
	fmt.Println(result.Solution[0])
	// Output:
	// true
	// [1 2 3 4]
}
