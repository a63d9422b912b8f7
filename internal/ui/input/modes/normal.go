package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "H", "<":
		return []types.Action{types.MoveColumnAction{Direction: "left"}}, true
	case "L", ">":
		return []types.Action{types.MoveColumnAction{Direction: "right"}}, true
	case "-":
		return []types.Action{types.HideColumnAction{}}, true
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true
	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSize}}, true
	case "g":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNavigate}}, true
	case "r":
		return []types.Action{types.ReloadAction{}}, true
	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
