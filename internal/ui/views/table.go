package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableColumn is one visible column with its resolved display width.
type TableColumn struct {
	Name   string
	Source int
	Width  int
}

// TableRow is one visible row of cell text, pre-fetched by the caller.
type TableRow struct {
	Number int // 1-based data row number shown in the gutter
	Cells  []string
	Cursor bool
}

// TableData carries everything the renderer needs. The caller resolves
// scrolling, filtering and column layout before building it.
type TableData struct {
	Columns     []TableColumn
	Rows        []TableRow
	CursorCol   int // display index into Columns
	ShowIndices bool
	GutterWidth int
}

// RenderTable renders the header, optional index row and data rows as
// fixed-width columns separated by two spaces.
func RenderTable(data TableData, styles *Styles) string {
	var b strings.Builder

	gutter := data.GutterWidth
	if gutter < 1 {
		gutter = 1
	}

	// Header row.
	b.WriteString(strings.Repeat(" ", gutter))
	for _, col := range data.Columns {
		b.WriteString("  ")
		b.WriteString(styles.Header.Render(pad(col.Name, col.Width)))
	}
	b.WriteString("\n")

	if data.ShowIndices {
		b.WriteString(strings.Repeat(" ", gutter))
		for _, col := range data.Columns {
			b.WriteString("  ")
			b.WriteString(styles.HeaderIdx.Render(pad(fmt.Sprintf("[%d]", col.Source), col.Width)))
		}
		b.WriteString("\n")
	}

	for _, row := range data.Rows {
		num := fmt.Sprintf("%*d", gutter, row.Number)
		b.WriteString(styles.Gutter.Render(num))
		for i, col := range data.Columns {
			text := ""
			if i < len(row.Cells) {
				text = row.Cells[i]
			}
			cell := pad(text, col.Width)
			switch {
			case row.Cursor && i == data.CursorCol:
				cell = styles.CursorCell.Render(cell)
			case row.Cursor:
				cell = styles.CursorRow.Render(cell)
			default:
				cell = styles.Cell.Render(cell)
			}
			b.WriteString("  ")
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad truncates or right-pads text to exactly width display cells.
func pad(text string, width int) string {
	if width < 1 {
		width = 1
	}
	w := runewidth.StringWidth(text)
	if w > width {
		if width > 1 {
			return runewidth.Truncate(text, width, "…")
		}
		return runewidth.Truncate(text, width, "")
	}
	return text + strings.Repeat(" ", width-w)
}

// CellWidth reports the display width of cell text, used when observing
// column content widths.
func CellWidth(text string) int {
	return runewidth.StringWidth(text)
}
