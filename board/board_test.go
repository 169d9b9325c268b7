package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
)

// classic9 is the canonical 9×9 test puzzle (unique solution).
func classic9() [][]int {
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

// TestFromSize_SquareMostSplit verifies box detection for all standard
// sizes plus the prime fallback.
func TestFromSize_SquareMostSplit(t *testing.T) {
	cases := []struct {
		size, boxRows, boxCols int
	}{
		{4, 2, 2},
		{6, 2, 3},
		{9, 3, 3},
		{12, 3, 4},
		{16, 4, 4},
		{25, 5, 5},
		{7, 1, 7}, // prime: fallback 1×N
	}
	for _, tc := range cases {
		dim := board.FromSize(tc.size)
		assert.Equal(t, tc.boxRows, dim.BoxRows, "size %d box rows", tc.size)
		assert.Equal(t, tc.boxCols, dim.BoxCols, "size %d box cols", tc.size)
		assert.True(t, dim.IsValid(), "size %d must be valid", tc.size)
	}
}

// TestDimension_Invalid rejects geometry violating br·bc = N.
func TestDimension_Invalid(t *testing.T) {
	assert.False(t, board.Dimension{Size: 9, BoxRows: 2, BoxCols: 3}.IsValid())
	assert.False(t, board.Dimension{Size: 0, BoxRows: 0, BoxCols: 0}.IsValid())
	assert.False(t, board.Dimension{Size: 9, BoxRows: -3, BoxCols: -3}.IsValid())

	_, err := board.New(board.Dimension{Size: 9, BoxRows: 2, BoxCols: 3})
	assert.ErrorIs(t, err, board.ErrInvalidDimension)
}

// TestNewFromGrid_ShapeAndValueChecks covers the constructor sentinels.
func TestNewFromGrid_ShapeAndValueChecks(t *testing.T) {
	_, err := board.NewFromGrid(nil)
	assert.ErrorIs(t, err, board.ErrShapeMismatch, "empty grid")

	_, err = board.NewFromGrid([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, board.ErrShapeMismatch, "ragged grid")

	_, err = board.NewFromGrid([][]int{{0, 0}, {0, 5}})
	assert.ErrorIs(t, err, board.ErrInvalidValue, "value above N")

	_, err = board.NewFromGridDim(classic9(), board.Standard4x4)
	assert.ErrorIs(t, err, board.ErrShapeMismatch, "grid/dimension disagreement")
}

// TestBoard_GetSet verifies the mutator contract: after Set(r,c,v),
// Get(r,c) == v and every other cell is unchanged.
func TestBoard_GetSet(t *testing.T) {
	b, err := board.NewFromGrid(classic9())
	require.NoError(t, err)

	before := b.Cells()
	require.NoError(t, b.Set(0, 2, 4))

	v, err := b.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	after := b.Cells()
	for i := range before {
		if i == 2 {
			continue
		}
		assert.Equal(t, before[i], after[i], "cell %d must be unchanged", i)
	}

	// Clearing with 0 is always legal.
	assert.NoError(t, b.Set(0, 2, 0))
}

// TestBoard_SetErrors covers the out-of-range and invalid-value paths.
func TestBoard_SetErrors(t *testing.T) {
	b, err := board.New(board.Standard9x9)
	require.NoError(t, err)

	assert.ErrorIs(t, b.Set(-1, 0, 1), board.ErrOutOfRange)
	assert.ErrorIs(t, b.Set(0, 9, 1), board.ErrOutOfRange)
	assert.ErrorIs(t, b.Set(0, 0, 10), board.ErrInvalidValue)
	assert.ErrorIs(t, b.Set(0, 0, -1), board.ErrInvalidValue)

	_, err = b.Get(9, 0)
	assert.ErrorIs(t, err, board.ErrOutOfRange)
}

// TestBoard_CandidatesMatchPlacements checks the candidate law:
// v ∈ Candidates(r,c) ⇔ IsValidPlacement(r,c,v), with the bitset in
// exact agreement.
func TestBoard_CandidatesMatchPlacements(t *testing.T) {
	b, err := board.NewFromGrid(classic9())
	require.NoError(t, err)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.IsEmpty(r, c) {
				assert.Nil(t, b.Candidates(r, c))
				assert.Zero(t, b.CandidateBits(r, c))
				continue
			}
			set := b.CandidateBits(r, c)
			inSlice := make(map[int]bool)
			for _, v := range b.Candidates(r, c) {
				require.GreaterOrEqual(t, v, 1)
				require.LessOrEqual(t, v, 9)
				inSlice[v] = true
			}
			for v := 1; v <= 9; v++ {
				want := b.IsValidPlacement(r, c, v)
				assert.Equal(t, want, inSlice[v], "cell (%d,%d) value %d", r, c, v)
				assert.Equal(t, want, set&(1<<(v-1)) != 0, "bitset (%d,%d) value %d", r, c, v)
			}
		}
	}
}

// TestBoard_Validity covers duplicate detection per unit and the
// IsSolved ⇒ IsValid ∧ CountEmpty == 0 law.
func TestBoard_Validity(t *testing.T) {
	b, err := board.NewFromGrid(classic9())
	require.NoError(t, err)
	assert.True(t, b.IsValid())
	assert.False(t, b.IsSolved(), "partial board is not solved")

	// Duplicate 5 in the first row.
	dup := classic9()
	dup[0][8] = 5
	db, err := board.NewFromGrid(dup)
	require.NoError(t, err)
	assert.False(t, db.IsValid())

	// Duplicate within a box but not a row/column.
	boxDup := classic9()
	boxDup[1][2] = 3 // box 0 already holds 3 at (0,1)
	bb, err := board.NewFromGrid(boxDup)
	require.NoError(t, err)
	assert.False(t, bb.IsValid())
}

// TestBoard_EmptyQueries covers FirstEmpty, CountEmpty, and FillRatio.
func TestBoard_EmptyQueries(t *testing.T) {
	b, err := board.NewFromGrid(classic9())
	require.NoError(t, err)

	r, c, ok := b.FirstEmpty()
	require.True(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 2, c)

	assert.True(t, b.HasEmptyCell())
	assert.Equal(t, 51, b.CountEmpty())
	assert.Equal(t, 30, b.FilledCount())
	assert.InDelta(t, 30.0/81.0, b.FillRatio(), 1e-12)

	full, err := board.New(board.Standard4x4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.NoError(t, full.Set(r, c, 1+(r*2+r/2+c)%4))
		}
	}
	_, _, ok = full.FirstEmpty()
	assert.False(t, ok)
	assert.True(t, full.IsSolved())
}

// TestBoard_BoxGeometry pins BoxIndex and BoxStart for rectangular
// boxes, where row and column strides differ.
func TestBoard_BoxGeometry(t *testing.T) {
	b, err := board.New(board.Standard6x6) // 2×3 boxes
	require.NoError(t, err)

	assert.Equal(t, 0, b.BoxIndex(0, 0))
	assert.Equal(t, 1, b.BoxIndex(1, 3))
	assert.Equal(t, 3, b.BoxIndex(3, 4))
	assert.Equal(t, 5, b.BoxIndex(5, 5))

	sr, sc := b.BoxStart(3, 4)
	assert.Equal(t, 2, sr)
	assert.Equal(t, 3, sc)

	assert.Equal(t, 6, board.Standard6x6.NumBoxes())
}

// TestBoard_CloneIndependence verifies boards never share storage.
func TestBoard_CloneIndependence(t *testing.T) {
	b, err := board.NewFromGrid(classic9())
	require.NoError(t, err)

	clone := b.Clone()
	require.True(t, b.Equal(clone))

	require.NoError(t, clone.Set(0, 2, 4))
	v, err := b.Get(0, 2)
	require.NoError(t, err)
	assert.Zero(t, v, "mutating the clone must not touch the original")
	assert.False(t, b.Equal(clone))

	// Grid() copies too.
	grid := b.Grid()
	grid[0][0] = 9
	v, err = b.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

// TestBoard_Difficulty checks the two boundary cases of the heuristic.
func TestBoard_Difficulty(t *testing.T) {
	empty, err := board.New(board.Standard9x9)
	require.NoError(t, err)
	// 81 empty cells, all with 9 candidates: no bonus.
	assert.Equal(t, 810, empty.Difficulty())

	full, err := board.New(board.Standard4x4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.NoError(t, full.Set(r, c, 1+(r*2+r/2+c)%4))
		}
	}
	assert.Zero(t, full.Difficulty())
}
