package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorMovementClampsAtZero(t *testing.T) {
	t.Parallel()
	var n Nav

	n.Up()
	n.Left()
	require.Equal(t, 0, n.CursorRow)
	require.Equal(t, 0, n.CursorCol)

	n.Down()
	n.Right()
	require.Equal(t, 1, n.CursorRow)
	require.Equal(t, 1, n.CursorCol)
}

func TestRowWindowClampsCursor(t *testing.T) {
	t.Parallel()
	var n Nav
	n.CursorRow = 100

	start := n.RowWindow(10, 5)
	require.Equal(t, 9, n.CursorRow, "cursor clamps to the last row")
	require.Equal(t, 5, start, "scroll keeps the cursor in view")
}

func TestRowWindowScrolling(t *testing.T) {
	t.Parallel()
	var n Nav

	// Move down through a 100-row set with a 10-line window.
	for i := 0; i < 25; i++ {
		n.Down()
		n.RowWindow(100, 10)
	}
	require.Equal(t, 25, n.CursorRow)
	require.Equal(t, 16, n.ScrollRow)

	// Moving back up pulls the window with the cursor.
	for i := 0; i < 20; i++ {
		n.Up()
	}
	start := n.RowWindow(100, 10)
	require.Equal(t, 5, n.CursorRow)
	require.Equal(t, 5, start)
}

func TestPageMovement(t *testing.T) {
	t.Parallel()
	var n Nav

	n.PageDown(20)
	n.RowWindow(50, 20)
	require.Equal(t, 20, n.CursorRow)

	n.PageUp(20)
	require.Equal(t, 0, n.CursorRow)

	n.PageDown(200)
	n.RowWindow(50, 20)
	require.Equal(t, 49, n.CursorRow, "page past the end clamps")
}

func TestFirstLastRow(t *testing.T) {
	t.Parallel()
	var n Nav
	n.RowWindow(30, 10)

	n.LastRow()
	require.Equal(t, 29, n.CursorRow)
	n.FirstRow()
	require.Equal(t, 0, n.CursorRow)
}

func TestGoToClamping(t *testing.T) {
	t.Parallel()
	var n Nav

	n.GoTo(-5, -3)
	require.Equal(t, 0, n.CursorRow)
	require.Equal(t, 0, n.CursorCol)

	n.GoTo(500, 7)
	n.RowWindow(10, 5)
	n.ClampCols(4)
	require.Equal(t, 9, n.CursorRow)
	require.Equal(t, 3, n.CursorCol)
}

func TestEmptyGrid(t *testing.T) {
	t.Parallel()
	var n Nav
	n.CursorRow = 3

	start := n.RowWindow(0, 10)
	require.Equal(t, 0, n.CursorRow)
	require.Equal(t, 0, start)
}

func TestEnsureColVisible(t *testing.T) {
	t.Parallel()
	var n Nav
	n.CursorCol = 5

	// Pretend only two columns fit at a time.
	n.EnsureColVisible(func(scrollCol int) bool {
		return n.CursorCol-scrollCol < 2
	})
	require.Equal(t, 4, n.ScrollCol)

	// Already visible: no movement.
	n.EnsureColVisible(func(scrollCol int) bool { return true })
	require.Equal(t, 4, n.ScrollCol)
}

func TestClampColsPullsScrollLeft(t *testing.T) {
	t.Parallel()
	var n Nav
	n.CursorCol = 8
	n.ScrollCol = 6

	n.CursorCol = 2
	n.ClampCols(10)
	require.Equal(t, 2, n.ScrollCol, "scroll follows the cursor left")
}
