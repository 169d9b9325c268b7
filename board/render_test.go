package board_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
)

// TestBoard_String checks the boxed layout: separator lines around box
// rows, '.' for empty cells, and a highlight bracket when requested.
func TestBoard_String(t *testing.T) {
	b, err := board.NewFromGrid(classic9())
	require.NoError(t, err)

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 9 cell rows + 4 separator lines (before each box row and final).
	assert.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "---"))
	assert.Contains(t, lines[1], "5")
	assert.Contains(t, lines[1], ".")

	withMark := b.StringWithHighlight(0, 0)
	assert.Contains(t, withMark, "[5]")
	assert.NotContains(t, out, "[")
}

// TestBoard_Compact checks the bare digit rows and the wide-cell form
// for boards larger than 9×9.
func TestBoard_Compact(t *testing.T) {
	b, err := board.New(board.Standard4x4)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))

	assert.Equal(t, "1000\n0000\n0000\n0000\n", b.Compact())

	wide, err := board.New(board.Standard16x16)
	require.NoError(t, err)
	require.NoError(t, wide.Set(0, 0, 12))
	assert.True(t, strings.HasPrefix(wide.Compact(), " 12  0"))
}
