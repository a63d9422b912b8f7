package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"csvgrip/internal/domain"
	"csvgrip/internal/ui/input/types"
	"csvgrip/internal/ui/views"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	total := m.vw.Len(m.idx)
	visible := m.visibleRows()
	start := m.nav.RowWindow(total, visible)

	// Fetch the window of rows once; everything below renders from it.
	type fetched struct {
		number int // 1-based data row number
		cells  []string
	}
	window := make([]fetched, 0, visible)
	for i := start; i < min(start+visible, total); i++ {
		row, ok := m.vw.Row(m.idx, i)
		if !ok {
			break
		}
		cells, err := m.cache.Fields(row)
		if err != nil {
			cells = nil
		}
		m.cols.EnsureCount(len(cells))
		window = append(window, fetched{number: row + 1, cells: cells})
	}

	m.nav.ClampCols(m.cols.VisibleCount())

	// Feed observed content widths before resolving column widths.
	for d := 0; d < m.cols.VisibleCount(); d++ {
		col := m.cols.Column(d)
		m.cols.Observe(d, views.CellWidth(col.Name))
		for _, row := range window {
			if col.Source < len(row.cells) {
				m.cols.Observe(d, views.CellWidth(row.cells[col.Source]))
			}
		}
	}

	gutter := len(fmt.Sprint(total))
	if gutter < 3 {
		gutter = 3
	}
	avail := m.width - gutter

	fits := func(scrollCol int) bool {
		used := 0
		for d := scrollCol; d <= m.nav.CursorCol && d < m.cols.VisibleCount(); d++ {
			used += 2 + m.cols.Width(d)
		}
		return used <= avail
	}
	m.nav.EnsureColVisible(fits)

	// Collect display columns that fit, always including the cursor column.
	var tcols []views.TableColumn
	used := 0
	for d := m.nav.ScrollCol; d < m.cols.VisibleCount(); d++ {
		col := m.cols.Column(d)
		if used+2+col.Width > avail && len(tcols) > 0 {
			break
		}
		used += 2 + col.Width
		tcols = append(tcols, views.TableColumn{Name: col.Name, Source: col.Source, Width: col.Width})
	}

	trows := make([]views.TableRow, 0, len(window))
	for i, row := range window {
		cells := make([]string, len(tcols))
		for j, tc := range tcols {
			if tc.Source < len(row.cells) {
				cells[j] = row.cells[tc.Source]
			}
		}
		trows = append(trows, views.TableRow{
			Number: row.number,
			Cells:  cells,
			Cursor: start+i == m.nav.CursorRow,
		})
	}

	table := views.RenderTable(views.TableData{
		Columns:     tcols,
		Rows:        trows,
		CursorCol:   m.nav.CursorCol - m.nav.ScrollCol,
		ShowIndices: m.showIndices,
		GutterWidth: gutter,
	}, m.styles)

	// Pad the table area so the status bar stays pinned to the bottom.
	lines := strings.Count(table, "\n")
	want := visible + 1
	if m.showIndices {
		want++
	}
	if lines < want {
		table += strings.Repeat("\n", want-lines)
	}

	return table + m.statusLine(total) + "\n" + m.promptLine()
}

func (m *Model) statusLine(total int) string {
	name := filepath.Base(m.path)

	pos := fmt.Sprintf("%d/%d", min(m.nav.CursorRow+1, total), total)
	if m.vw.Filtered() {
		pos = fmt.Sprintf("%d/%d of %d", min(m.nav.CursorRow+1, total), total, m.idx.Len())
	}

	var parts []string
	parts = append(parts, m.styles.Status.Render(name), m.styles.Status.Render(pos))

	if m.idx.Loading() {
		parts = append(parts, m.styles.StatusLoad.Render(m.spin.View()+"indexing"))
	} else {
		p := m.idx.Progress()
		switch p.State {
		case domain.LoadPartial:
			parts = append(parts, m.styles.StatusWarn.Render(fmt.Sprintf("truncated at byte %d", p.BadOffset)))
		case domain.LoadFailed:
			parts = append(parts, m.styles.StatusError.Render("load failed"))
		}
	}
	if m.filterPending {
		parts = append(parts, m.styles.StatusLoad.Render(m.spin.View()+"filtering"))
	}
	if m.vw.Filtered() {
		parts = append(parts, m.styles.Filter.Render("filter: "+m.filterText))
	}
	if m.fileDirty {
		parts = append(parts, m.styles.Banner.Render("file changed on disk, press r to reload"))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.styles.StatusError.Render(m.statusMsg))
	}

	return strings.Join(parts, "  ")
}

func (m *Model) promptLine() string {
	switch m.inputHandler.CurrentMode() {
	case types.ModeFilter:
		line := m.styles.Prompt.Render("/") + m.inputHandler.FilterInput().View()
		if m.filterErr != nil {
			caret := strings.Repeat(" ", 1+m.filterErr.Pos) + strings.Repeat("^", max(1, m.filterErr.Len))
			line += "\n" + m.styles.FilterError.Render(caret+" "+m.filterErr.Msg)
		}
		return line
	case types.ModeNavigate:
		prompt := m.inputHandler.NavigatePrompt()
		if prompt == "" {
			return m.styles.Help.Render("jump: type row[:col], arrows for edges, Esc to cancel")
		}
		return m.styles.Prompt.Render(":"+prompt)
	case types.ModeSize:
		return m.styles.Help.Render("size: +/- adjust, f fit, R reset, Esc done")
	default:
		return m.styles.Help.Render("?: help  /: filter  g: jump  s: size  q: quit")
	}
}
