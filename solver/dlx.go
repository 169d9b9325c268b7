// SPDX-License-Identifier: MIT

package solver

import (
	"time"

	"github.com/katalvlaran/sudoku/board"
)

// dlxNode is one cell of the toroidal four-way-linked sparse matrix.
// Column headers reuse the same struct: their size field counts live
// nodes in the column, and column points to themselves. All nodes live
// in a solver-owned arena allocated once per solve, so links are plain
// pointers with stable addresses.
type dlxNode struct {
	left, right *dlxNode
	up, down    *dlxNode
	column      *dlxNode
	rowID       int
	colID       int
	size        int
}

// DLXSolver formulates Sudoku as exact cover over 4·N² constraint
// columns (cell, row-value, column-value, box-value) and runs
// Algorithm X with the minimum-size column heuristic.
//
// Not safe for concurrent use: the matrix and the partial-solution
// stack live on the receiver.
type DLXSolver struct {
	header  *dlxNode
	columns []*dlxNode
	arena   []dlxNode
	used    int

	solutionRows []int

	size    int
	boxRows int
	boxCols int

	iterations int
	backtracks int
}

// NewDLX returns a Dancing Links solver.
func NewDLX() *DLXSolver {
	return &DLXSolver{}
}

// Name returns the report name of the engine.
func (d *DLXSolver) Name() string { return DancingLinks.String() }

// Reset frees the arena and wipes all per-solve state.
func (d *DLXSolver) Reset() {
	d.header = nil
	d.columns = nil
	d.arena = nil
	d.used = 0
	d.solutionRows = nil
	d.iterations = 0
	d.backtracks = 0
}

// newNode hands out the next arena slot. The arena is sized exactly
// during buildMatrix, so addresses never move after allocation.
func (d *DLXSolver) newNode() *dlxNode {
	n := &d.arena[d.used]
	d.used++
	return n
}

// rowID encodes placement (row, col, value) as row·N² + col·N + (value−1).
func (d *DLXSolver) rowID(row, col, value int) int {
	return row*d.size*d.size + col*d.size + (value - 1)
}

// decodeRowID inverts rowID back to (row, col, value).
func (d *DLXSolver) decodeRowID(id int) (row, col, value int) {
	value = id%d.size + 1
	id /= d.size
	col = id % d.size
	row = id / d.size
	return row, col, value
}

// Constraint column layout: Cell, then Row, Column, Box blocks of N² each.
func (d *DLXSolver) cellConstraint(row, col int) int { return row*d.size + col }
func (d *DLXSolver) rowConstraint(row, value int) int {
	return d.size*d.size + row*d.size + (value - 1)
}
func (d *DLXSolver) colConstraint(col, value int) int {
	return 2*d.size*d.size + col*d.size + (value - 1)
}
func (d *DLXSolver) boxConstraint(box, value int) int {
	return 3*d.size*d.size + box*d.size + (value - 1)
}

// createColumnHeaders links the sentinel header and one header per
// constraint column into a ring.
func (d *DLXSolver) createColumnHeaders(numConstraints int) {
	d.header = d.newNode()
	d.header.left = d.header
	d.header.right = d.header
	d.header.up = d.header
	d.header.down = d.header
	d.header.colID = -1

	d.columns = make([]*dlxNode, numConstraints)
	prev := d.header
	for i := 0; i < numConstraints; i++ {
		col := d.newNode()
		col.colID = i
		col.column = col
		col.up = col
		col.down = col

		col.left = prev
		col.right = d.header
		prev.right = col
		d.header.left = col

		d.columns[i] = col
		prev = col
	}
}

// addRow appends one matrix row covering the given columns. Nodes join
// their column rings at the tail (above the header) and form their own
// horizontal ring, so initial scan orders follow construction order.
func (d *DLXSolver) addRow(rowID int, cols []int) {
	var first, prev *dlxNode
	for _, colIdx := range cols {
		node := d.newNode()
		node.rowID = rowID
		node.colID = colIdx
		node.column = d.columns[colIdx]

		head := d.columns[colIdx]
		node.up = head.up
		node.down = head
		head.up.down = node
		head.up = node
		head.size++

		if first == nil {
			first = node
			node.left = node
			node.right = node
		} else {
			node.left = prev
			node.right = first
			prev.right = node
			first.left = node
		}
		prev = node
	}
}

// buildMatrix sizes the arena exactly, then emits one matrix row per
// admissible placement: a single row for each given, and one row per
// legal value for each empty cell. Each row sets four columns.
func (d *DLXSolver) buildMatrix(b *board.Board) {
	d.size = b.Size()
	d.boxRows = b.BoxRows()
	d.boxCols = b.BoxCols()

	numConstraints := 4 * d.size * d.size

	// First pass: count admissible placements so the arena never grows
	// (growth would move nodes and break the link structure).
	numRows := 0
	for row := 0; row < d.size; row++ {
		for col := 0; col < d.size; col++ {
			given, _ := b.Get(row, col)
			if given != 0 {
				numRows++
				continue
			}
			for value := 1; value <= d.size; value++ {
				if b.IsValidPlacement(row, col, value) {
					numRows++
				}
			}
		}
	}

	d.arena = make([]dlxNode, 1+numConstraints+4*numRows)
	d.used = 0
	d.createColumnHeaders(numConstraints)

	for row := 0; row < d.size; row++ {
		for col := 0; col < d.size; col++ {
			given, _ := b.Get(row, col)
			box := d.boxIndex(row, col)

			startVal, endVal := 1, d.size
			if given != 0 {
				startVal, endVal = given, given
			}
			for value := startVal; value <= endVal; value++ {
				if given == 0 && !b.IsValidPlacement(row, col, value) {
					continue
				}
				d.addRow(d.rowID(row, col, value), []int{
					d.cellConstraint(row, col),
					d.rowConstraint(row, value),
					d.colConstraint(col, value),
					d.boxConstraint(box, value),
				})
			}
		}
	}
}

func (d *DLXSolver) boxIndex(row, col int) int {
	return (row/d.boxRows)*(d.size/d.boxCols) + col/d.boxCols
}

// cover unlinks col from the header ring and detaches every row that
// intersects it from all other columns. O(cells in removed rows).
func (d *DLXSolver) cover(col *dlxNode) {
	col.right.left = col.left
	col.left.right = col.right

	for row := col.down; row != col; row = row.down {
		for node := row.right; node != row; node = node.right {
			node.down.up = node.up
			node.up.down = node.down
			node.column.size--
		}
	}
}

// uncover is the exact inverse of cover, walking bottom-to-top and
// right-to-left so every link is restored in reverse order.
func (d *DLXSolver) uncover(col *dlxNode) {
	for row := col.up; row != col; row = row.up {
		for node := row.left; node != row; node = node.left {
			node.column.size++
			node.down.up = node
			node.up.down = node
		}
	}

	col.right.left = col
	col.left.right = col
}

// selectColumn returns the live column with minimum size (S-heuristic),
// first-encountered on ties, early-exiting at size ≤ 1. Returns nil
// when the header ring is empty.
func (d *DLXSolver) selectColumn() *dlxNode {
	var best *dlxNode
	minSize := int(^uint(0) >> 1)
	for col := d.header.right; col != d.header; col = col.right {
		if col.size < minSize {
			minSize = col.size
			best = col
			if minSize <= 1 {
				break
			}
		}
	}
	return best
}

// search is Algorithm X: cover the MRV column, try each of its rows,
// recurse, and undo with uncover on failure.
func (d *DLXSolver) search() bool {
	if d.header.right == d.header {
		return true
	}

	d.iterations++

	col := d.selectColumn()
	if col == nil || col.size == 0 {
		return false
	}

	d.cover(col)

	for row := col.down; row != col; row = row.down {
		d.solutionRows = append(d.solutionRows, row.rowID)

		for node := row.right; node != row; node = node.right {
			d.cover(node.column)
		}

		if d.search() {
			return true
		}

		d.backtracks++
		d.solutionRows = d.solutionRows[:len(d.solutionRows)-1]
		for node := row.left; node != row; node = node.left {
			d.uncover(node.column)
		}
	}

	d.uncover(col)
	return false
}

// searchAll mirrors search but records every complete solution and
// keeps backtracking until maxSolutions are found, then unwinds.
func (d *DLXSolver) searchAll(solutions *[][]int, maxSolutions int) bool {
	d.iterations++

	if d.header.right == d.header {
		stack := make([]int, len(d.solutionRows))
		copy(stack, d.solutionRows)
		*solutions = append(*solutions, stack)
		return len(*solutions) >= maxSolutions
	}

	col := d.selectColumn()
	if col == nil || col.size == 0 {
		return false
	}

	d.cover(col)

	for row := col.down; row != col; row = row.down {
		d.solutionRows = append(d.solutionRows, row.rowID)

		for node := row.right; node != row; node = node.right {
			d.cover(node.column)
		}

		if d.searchAll(solutions, maxSolutions) {
			// Cap reached: unwind this frame before returning.
			d.solutionRows = d.solutionRows[:len(d.solutionRows)-1]
			for node := row.left; node != row; node = node.left {
				d.uncover(node.column)
			}
			d.uncover(col)
			return true
		}

		d.backtracks++
		d.solutionRows = d.solutionRows[:len(d.solutionRows)-1]
		for node := row.left; node != row; node = node.left {
			d.uncover(node.column)
		}
	}

	d.uncover(col)
	return false
}

// solutionGrid writes the decoded solution rows over a copy of the
// original grid.
func (d *DLXSolver) solutionGrid(rowIDs []int, original *board.Board) [][]int {
	grid := original.Grid()
	for _, id := range rowIDs {
		row, col, value := d.decodeRowID(id)
		grid[row][col] = value
	}
	return grid
}

// Solve builds the exact-cover matrix for b and runs Algorithm X.
// Timing and counters are reported on every exit path.
func (d *DLXSolver) Solve(b *board.Board) SolveResult {
	result := SolveResult{Algorithm: d.Name()}
	if b == nil {
		result.ErrorMessage = msgNoSolution
		return result
	}

	start := time.Now()
	d.Reset()
	d.buildMatrix(b)

	solved := d.search()

	result.Solved = solved
	result.Iterations = d.iterations
	result.Backtracks = d.backtracks
	result.TimeMS = elapsedMS(start)
	if solved {
		result.Solution = d.solutionGrid(d.solutionRows, b)
	} else {
		result.ErrorMessage = msgNoSolution
	}
	return result
}

// FindAllSolutions enumerates up to maxSolutions solutions of b.
func (d *DLXSolver) FindAllSolutions(b *board.Board, maxSolutions int) []*board.Board {
	if b == nil || maxSolutions < 1 {
		return nil
	}

	d.Reset()
	d.buildMatrix(b)

	var solutionSets [][]int
	d.searchAll(&solutionSets, maxSolutions)

	results := make([]*board.Board, 0, len(solutionSets))
	for _, rowIDs := range solutionSets {
		solved, err := board.NewFromGridDim(d.solutionGrid(rowIDs, b), b.Dim())
		if err != nil {
			continue
		}
		results = append(results, solved)
	}
	return results
}

// HasUniqueSolution reports whether b has exactly one solution.
func (d *DLXSolver) HasUniqueSolution(b *board.Board) bool {
	return len(d.FindAllSolutions(b, 2)) == 1
}
