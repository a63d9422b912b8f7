package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/config"
	"csvgrip/internal/eventbus"
	"csvgrip/internal/filter"
	"csvgrip/internal/index"
	"csvgrip/internal/nav"
	"csvgrip/internal/rows"
	"csvgrip/internal/ui/input"
	inputtypes "csvgrip/internal/ui/input/types"
	"csvgrip/internal/ui/views"
	"csvgrip/internal/view"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	path      string
	delim     byte
	hasHeader bool

	loader *index.Loader
	idx    *index.Index
	cache  *rows.Cache
	vw     *view.View

	nav  nav.Nav
	cols *nav.Layout

	inputHandler *input.Handler
	styles       *views.Styles
	spin         spinner.Model
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	width  int
	height int

	showIndices bool
	fileDirty   bool // file changed on disk since the last load

	filterText    string // committed filter expression text
	filterErr     *filter.SyntaxError
	filterGen     uint64
	buildCancel   context.CancelFunc
	filterPending bool

	statusMsg   string
	inPagerMode bool
}

// NewModel creates a new UI model over an already started indexing pass.
func NewModel(bus eventbus.EventBus, cfg *config.Config, path string, delim byte, hasHeader bool,
	loader *index.Loader, idx *index.Index, cache *rows.Cache) *Model {

	cols := nav.NewLayout(cfg.UISettings.MaxColWidth)
	cols.SetHeader(idx.Header())

	m := &Model{
		bus:          bus,
		config:       cfg,
		path:         path,
		delim:        delim,
		hasHeader:    hasHeader,
		loader:       loader,
		idx:          idx,
		cache:        cache,
		vw:           view.New(nil),
		cols:         cols,
		inputHandler: input.New(),
		styles:       views.NewStyles(),
		spin:         spinner.New(spinner.WithSpinner(spinner.Dot)),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}
	return m
}

// SetProgram stores a reference to the Bubble Tea program for terminal
// management during pager operations.
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// CursorPos implements inputtypes.Context.
func (m *Model) CursorPos() (row, col int) {
	return m.nav.Pos()
}

// Bounds implements inputtypes.Context.
func (m *Model) Bounds() (maxRow, maxCol int) {
	return m.nav.Bounds()
}

// FilterText implements inputtypes.Context. It returns the committed
// expression so reopening the prompt edits the active filter.
func (m *Model) FilterText() string {
	return m.filterText
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case viewBuiltMsg:
		if msg.gen != m.filterGen {
			return m, nil // superseded by a newer filter
		}
		m.filterPending = false
		if msg.err != nil {
			return m, nil
		}
		m.vw = msg.view
		// Catch up on rows indexed while the build ran.
		m.vw.Advance(m.idx, m.cache)
		return m, nil

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("ui: help pager: %v", msg.err)
			m.statusMsg = "failed to open help pager"
		}
		return m, nil

	case spinner.TickMsg:
		if !m.idx.Loading() && !m.filterPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	default:
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.IndexProgressEvent:
		if e.Generation != m.idx.Generation() {
			return nil
		}
		m.vw.Advance(m.idx, m.cache)
	case eventbus.IndexCompletedEvent:
		if e.Progress.Generation != m.idx.Generation() {
			return nil
		}
		m.vw.Advance(m.idx, m.cache)
	case eventbus.FileChangedEvent:
		m.fileDirty = true
	case eventbus.ErrorEvent:
		m.statusMsg = e.Message
	}
	return nil
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.JumpAction:
		m.nav.GoTo(a.Row, a.Col)

	case inputtypes.MoveColumnAction:
		switch a.Direction {
		case "left":
			if m.nav.CursorCol > 0 {
				m.cols.MoveLeft(m.nav.CursorCol)
				m.nav.Left()
			}
		case "right":
			if m.nav.CursorCol < m.cols.VisibleCount()-1 {
				m.cols.MoveRight(m.nav.CursorCol)
				m.nav.Right()
			}
		}

	case inputtypes.HideColumnAction:
		if m.cols.VisibleCount() > 1 {
			m.cols.Hide(m.nav.CursorCol)
			m.nav.ClampCols(m.cols.VisibleCount())
		}

	case inputtypes.ResizeAction:
		switch a.Op {
		case "grow":
			m.cols.Grow(m.nav.CursorCol)
		case "shrink":
			m.cols.Shrink(m.nav.CursorCol)
		case "fit":
			m.cols.Fit(m.nav.CursorCol)
		case "reset":
			m.cols.ResetAll()
		}

	case inputtypes.ToggleIndicesAction:
		m.showIndices = !m.showIndices

	case inputtypes.CommitFilterAction:
		return m.commitFilter(a.Text)

	case inputtypes.CancelFilterAction:
		m.filterErr = nil

	case inputtypes.ReloadAction:
		return m.reload()

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		m.loader.Stop()
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.nav.Up()
	case "down":
		m.nav.Down()
	case "left":
		m.nav.Left()
	case "right":
		m.nav.Right()
	case "pageup":
		m.nav.PageUp(m.visibleRows())
	case "pagedown":
		m.nav.PageDown(m.visibleRows())
	case "home":
		m.nav.FirstRow()
	case "end":
		m.nav.LastRow()
	case "firstcol":
		m.nav.FirstCol()
	case "lastcol":
		m.nav.LastCol()
	}
}

// commitFilter parses the prompt text. A syntax error keeps the user in the
// prompt with the error shown inline; a valid expression is applied and the
// prompt closes.
func (m *Model) commitFilter(text string) tea.Cmd {
	expr, err := filter.Parse(text)
	if err != nil {
		if se, ok := err.(*filter.SyntaxError); ok {
			m.filterErr = se
		} else {
			m.filterErr = &filter.SyntaxError{Msg: err.Error()}
		}
		return nil
	}
	m.filterErr = nil
	m.filterText = text
	m.inputHandler.RecordFilterHistory(text)
	var cmds []tea.Cmd
	for _, a := range m.inputHandler.ChangeMode(inputtypes.ModeNormal, m) {
		cmds = append(cmds, m.processAction(a))
	}
	cmds = append(cmds, m.applyFilter(expr))
	return tea.Batch(cmds...)
}

// applyFilter rebuilds the visible row set in the background so a large
// file never freezes the UI. A newer filter cancels the build in flight.
func (m *Model) applyFilter(expr filter.Expr) tea.Cmd {
	if m.buildCancel != nil {
		m.buildCancel()
		m.buildCancel = nil
	}
	m.filterGen++
	if expr == nil {
		m.filterPending = false
		m.vw = view.New(nil)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.buildCancel = cancel
	m.filterPending = true

	gen := m.filterGen
	idx, cache := m.idx, m.cache
	build := func() tea.Msg {
		v, err := view.Build(ctx, expr, idx, cache)
		return viewBuiltMsg{gen: gen, view: v, err: err}
	}
	return tea.Batch(build, m.spin.Tick)
}

// reload starts a fresh indexing pass over the file. The filter stays
// active; the new view fills in as the new index streams rows.
func (m *Model) reload() tea.Cmd {
	idx, err := m.loader.Start(context.Background(), m.delim, m.hasHeader)
	if err != nil {
		log.Printf("ui: reload: %v", err)
		m.statusMsg = "failed to reopen file"
		return nil
	}

	cache, err := rows.NewCache(m.path, m.delim, idx, m.config.UISettings.RowCacheSize)
	if err != nil {
		log.Printf("ui: reload: %v", err)
		m.statusMsg = "failed to reopen file"
		return nil
	}

	if m.cache != nil {
		m.cache.Close()
	}
	m.idx = idx
	m.cache = cache
	m.cols.SetHeader(idx.Header())
	m.fileDirty = false
	m.statusMsg = ""

	// A stale background build must not install rows from the old index.
	if m.buildCancel != nil {
		m.buildCancel()
		m.buildCancel = nil
	}
	m.filterGen++
	m.filterPending = false

	expr, perr := filter.Parse(m.filterText)
	if perr != nil {
		expr = nil
	}
	m.vw = view.New(expr)
	return m.spin.Tick
}

func (m *Model) fetchHelpPager() tea.Cmd {
	m.inPagerMode = true
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		err := m.helpOps.ShowHelpInPager(content)
		return helpPagerMsg{err: err}
	}
}

// visibleRows is the number of data lines the table area can hold.
func (m *Model) visibleRows() int {
	chrome := 3 // header, status, prompt
	if m.showIndices {
		chrome++
	}
	n := m.height - chrome
	if n < 1 {
		return 1
	}
	return n
}
