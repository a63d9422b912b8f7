package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/ui/input/types"
)

const historySize = 5

// FilterMode edits the filter expression in a text prompt with a small
// history of previously committed filters, recalled with Up/Down.
type FilterMode struct {
	textInput *textinput.Model
	history   []string // most recent first
	pos       int      // -1 while editing the draft
	draft     string
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{textInput: ti, pos: -1}
}

func (m *FilterMode) Name() string {
	return "filter"
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	m.pos = -1
	m.textInput.SetValue(ctx.FilterText())
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Blur()
	m.textInput.Reset()
	return nil
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{
			types.CancelFilterAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		// The model decides whether to leave filter mode: bad syntax keeps
		// the prompt open with the text intact. History is recorded via
		// Record only once the text parses.
		return []types.Action{types.CommitFilterAction{Text: m.textInput.Value()}}, true
	case "tab":
		return []types.Action{types.ToggleIndicesAction{}}, true
	case "up":
		m.recall(1)
		return nil, true
	case "down":
		m.recall(-1)
		return nil, true
	}
	// Let the handler feed the key to the text input.
	return nil, false
}

// Record adds an accepted filter expression to the history, skipping
// empties and immediate duplicates.
func (m *FilterMode) Record(text string) {
	if text == "" || (len(m.history) > 0 && m.history[0] == text) {
		return
	}
	m.history = append([]string{text}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
}

func (m *FilterMode) recall(dir int) {
	if len(m.history) == 0 {
		return
	}
	if m.pos == -1 {
		m.draft = m.textInput.Value()
	}
	pos := m.pos + dir
	switch {
	case pos < -1:
		return
	case pos == -1:
		m.pos = -1
		m.textInput.SetValue(m.draft)
	case pos < len(m.history):
		m.pos = pos
		m.textInput.SetValue(m.history[pos])
	default:
		return
	}
	m.textInput.CursorEnd()
}
