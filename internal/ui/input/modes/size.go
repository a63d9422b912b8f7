package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/ui/input/types"
)

// SizeMode adjusts the current column's width.
type SizeMode struct{}

func NewSizeMode() *SizeMode {
	return &SizeMode{}
}

func (m *SizeMode) Name() string {
	return "size"
}

func (m *SizeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SizeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SizeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "+", "=", "l", "right":
		return []types.Action{types.ResizeAction{Op: "grow"}}, true
	case "-", "h", "left":
		return []types.Action{types.ResizeAction{Op: "shrink"}}, true
	case "f":
		return []types.Action{types.ResizeAction{Op: "fit"}}, true
	case "R":
		return []types.Action{types.ResizeAction{Op: "reset"}}, true
	}
	return nil, true // swallow everything else while sizing
}
