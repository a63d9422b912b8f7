package modes

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/ui/input/types"
)

// NavigateMode jumps around the grid. With an empty prompt, arrows and hjkl
// jump to the first/last row or column. Typing digits builds a "row" or
// "row:col" target (1-based) that moves the cursor live; Enter commits and
// Esc restores the position held when the mode was entered.
type NavigateMode struct {
	buf     string
	fromRow int
	fromCol int
}

func NewNavigateMode() *NavigateMode {
	return &NavigateMode{}
}

func (m *NavigateMode) Name() string {
	return "navigate"
}

func (m *NavigateMode) Enter(ctx types.Context) []types.Action {
	m.buf = ""
	m.fromRow, m.fromCol = ctx.CursorPos()
	return nil
}

func (m *NavigateMode) Exit(ctx types.Context) []types.Action {
	m.buf = ""
	return nil
}

// Prompt returns the jump target being typed, empty in the jump-key
// sub-state.
func (m *NavigateMode) Prompt() string {
	return m.buf
}

func (m *NavigateMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "ctrl+c" {
		return []types.Action{types.QuitAction{}}, true
	}

	if m.buf == "" {
		switch msg.String() {
		case "up", "k":
			return []types.Action{
				types.NavigateAction{Direction: "home"},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		case "down", "j":
			return []types.Action{
				types.NavigateAction{Direction: "end"},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		case "left", "h":
			return []types.Action{
				types.NavigateAction{Direction: "firstcol"},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		case "right", "l":
			return []types.Action{
				types.NavigateAction{Direction: "lastcol"},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		case "R":
			return []types.Action{
				types.ResizeAction{Op: "reset"},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		case "esc", "enter":
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
	}

	switch msg.String() {
	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "esc":
		return []types.Action{
			types.JumpAction{Row: m.fromRow, Col: m.fromCol},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "backspace":
		if m.buf != "" {
			m.buf = m.buf[:len(m.buf)-1]
		}
		return []types.Action{m.jump()}, true
	}

	if s := msg.String(); len(s) == 1 && (s[0] == ':' || (s[0] >= '0' && s[0] <= '9')) {
		m.buf += s
		return []types.Action{m.jump()}, true
	}

	return nil, true
}

// jump parses the prompt as "row" or "row:col", falling back to the origin
// for empty or unparsable parts.
func (m *NavigateMode) jump() types.Action {
	rowPart, colPart, _ := strings.Cut(m.buf, ":")
	row, col := m.fromRow, m.fromCol
	if n, err := strconv.Atoi(rowPart); err == nil {
		row = max(0, n-1)
	}
	if n, err := strconv.Atoi(colPart); err == nil {
		col = max(0, n-1)
	}
	return types.JumpAction{Row: row, Col: col}
}
