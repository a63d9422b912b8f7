// Package nav tracks cursor, scroll and column layout state. It owns no
// data access: callers feed it the filtered row count and column metadata,
// and it answers what should be on screen.
package nav

// Nav holds the cursor and scroll position over the filtered grid.
type Nav struct {
	CursorRow, CursorCol int
	ScrollRow, ScrollCol int

	maxRow, maxCol int
}

func (n *Nav) Up()    { n.CursorRow = max(0, n.CursorRow-1) }
func (n *Nav) Down()  { n.CursorRow++ }
func (n *Nav) Left()  { n.CursorCol = max(0, n.CursorCol-1) }
func (n *Nav) Right() { n.CursorCol++ }

func (n *Nav) PageUp(page int)   { n.CursorRow = max(0, n.CursorRow-page) }
func (n *Nav) PageDown(page int) { n.CursorRow += page }

func (n *Nav) FirstRow() { n.CursorRow = 0 }
func (n *Nav) LastRow()  { n.CursorRow = n.maxRow }
func (n *Nav) FirstCol() { n.CursorCol = 0 }
func (n *Nav) LastCol()  { n.CursorCol = n.maxCol }

// GoTo moves the cursor to an absolute position; it is clamped on the next
// window computation.
func (n *Nav) GoTo(row, col int) {
	n.CursorRow = max(0, row)
	n.CursorCol = max(0, col)
}

// Pos returns the current cursor position.
func (n *Nav) Pos() (row, col int) {
	return n.CursorRow, n.CursorCol
}

// RowWindow clamps the cursor to the filtered row count and slides the
// scroll offset so the cursor stays inside a window of visible lines. It
// returns the first visible row position.
func (n *Nav) RowWindow(total, visible int) int {
	n.maxRow = max(0, total-1)
	n.CursorRow = min(n.CursorRow, n.maxRow)
	if visible < 1 {
		visible = 1
	}
	if n.CursorRow < n.ScrollRow {
		n.ScrollRow = n.CursorRow
	} else if n.CursorRow >= n.ScrollRow+visible {
		n.ScrollRow = n.CursorRow - visible + 1
	}
	return n.ScrollRow
}

// ClampCols clamps the cursor to the visible column count and pulls the
// scroll offset left when the cursor moved before it.
func (n *Nav) ClampCols(total int) {
	n.maxCol = max(0, total-1)
	n.CursorCol = min(n.CursorCol, n.maxCol)
	if n.CursorCol < n.ScrollCol {
		n.ScrollCol = n.CursorCol
	}
}

// EnsureColVisible slides the scroll offset right until fits reports the
// cursor column rendered, or the cursor becomes the first column.
func (n *Nav) EnsureColVisible(fits func(scrollCol int) bool) {
	for n.ScrollCol < n.CursorCol && !fits(n.ScrollCol) {
		n.ScrollCol++
	}
}

// Bounds returns the clamped maxima from the last window computation.
func (n *Nav) Bounds() (maxRow, maxCol int) {
	return n.maxRow, n.maxCol
}
