package nav

import "strconv"

// Column describes one visible column for rendering.
type Column struct {
	Source int
	Name   string
	Width  int
}

type widthMode int

const (
	widthAuto  widthMode = iota // content-fit, capped
	widthFixed                  // user-set
)

type colState struct {
	content int // widest content observed so far
	mode    widthMode
	fixed   int
}

// Layout holds per-column view state: display order, visibility, and width.
// Source indexes are immutable; hiding removes a column from the display
// order only. The display order is always a contiguous permutation of the
// visible source indexes.
type Layout struct {
	names   []string
	state   []colState
	order   []int // display position -> source index
	known   int   // source columns seen so far
	maxAuto int
}

// NewLayout creates a layout whose auto widths are capped at maxAuto.
func NewLayout(maxAuto int) *Layout {
	if maxAuto < 1 {
		maxAuto = 1
	}
	return &Layout{maxAuto: maxAuto}
}

// SetHeader names the columns and makes them visible.
func (l *Layout) SetHeader(names []string) {
	l.names = names
	l.EnsureCount(len(names))
}

// EnsureCount grows the layout as wider rows stream in; new columns appear
// at the end of the display order.
func (l *Layout) EnsureCount(n int) {
	if n <= l.known {
		return
	}
	for len(l.state) < n {
		l.state = append(l.state, colState{})
	}
	for i := l.known; i < n; i++ {
		l.order = append(l.order, i)
	}
	l.known = n
}

// VisibleCount returns the number of columns in the display order.
func (l *Layout) VisibleCount() int {
	return len(l.order)
}

// Column returns metadata for a display position. Headerless files get the
// source index as the column name; ragged extras past a real header get "?".
func (l *Layout) Column(display int) Column {
	src := l.order[display]
	name := "?"
	switch {
	case src < len(l.names) && l.names[src] != "":
		name = l.names[src]
	case len(l.names) == 0:
		name = strconv.Itoa(src)
	}
	return Column{Source: src, Name: name, Width: l.Width(display)}
}

// Hide removes the column at the display position from view.
func (l *Layout) Hide(display int) {
	if display < 0 || display >= len(l.order) {
		return
	}
	l.order = append(l.order[:display], l.order[display+1:]...)
}

// MoveLeft swaps the column with its left neighbor.
func (l *Layout) MoveLeft(display int) {
	if display > 0 && display < len(l.order) {
		l.order[display], l.order[display-1] = l.order[display-1], l.order[display]
	}
}

// MoveRight swaps the column with its right neighbor.
func (l *Layout) MoveRight(display int) {
	if display >= 0 && display < len(l.order)-1 {
		l.order[display], l.order[display+1] = l.order[display+1], l.order[display]
	}
}

// Observe records the rendered width of content seen in the column, feeding
// auto sizing and fit-to-content.
func (l *Layout) Observe(display, width int) {
	if display < 0 || display >= len(l.order) {
		return
	}
	s := &l.state[l.order[display]]
	s.content = max(s.content, width)
}

// Width returns the rendered width for a display position, always at
// least 1.
func (l *Layout) Width(display int) int {
	s := l.state[l.order[display]]
	switch s.mode {
	case widthFixed:
		return max(1, s.fixed)
	default:
		return max(1, min(s.content, l.maxAuto))
	}
}

// Grow widens the column by one unit.
func (l *Layout) Grow(display int) {
	if display < 0 || display >= len(l.order) {
		return
	}
	w := l.Width(display)
	s := &l.state[l.order[display]]
	s.mode, s.fixed = widthFixed, w+1
}

// Shrink narrows the column by one unit, to a minimum of 1.
func (l *Layout) Shrink(display int) {
	if display < 0 || display >= len(l.order) {
		return
	}
	w := l.Width(display)
	s := &l.state[l.order[display]]
	s.mode, s.fixed = widthFixed, max(1, w-1)
}

// Fit sets the column width to the widest content observed, uncapped.
func (l *Layout) Fit(display int) {
	if display < 0 || display >= len(l.order) {
		return
	}
	s := &l.state[l.order[display]]
	s.mode, s.fixed = widthFixed, max(1, s.content)
}

// ResetAll restores automatic sizing for every column and forgets observed
// content widths, so widths resettle from what is currently on screen.
func (l *Layout) ResetAll() {
	for i := range l.state {
		l.state[i] = colState{}
	}
}

// SourceOrder reports the display order as source indexes. The slice must
// not be mutated.
func (l *Layout) SourceOrder() []int {
	return l.order
}
