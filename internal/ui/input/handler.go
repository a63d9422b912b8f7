package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"csvgrip/internal/ui/input/modes"
	"csvgrip/internal/ui/input/types"
)

// Handler dispatches key events to the handler for the current mode and
// applies mode changes, giving each mode its Enter/Exit hooks.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	navigate    *modes.NavigateMode
	filter      *modes.FilterMode
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	nav := modes.NewNavigateMode()
	fil := modes.NewFilterMode(&ti)
	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		navigate:    nav,
		filter:      fil,
		modes: map[types.Mode]types.ModeHandler{
			types.ModeNormal:   modes.NewNormalMode(),
			types.ModeFilter:   fil,
			types.ModeSize:     modes.NewSizeMode(),
			types.ModeNavigate: nav,
		},
	}
	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var out []types.Action

	for _, action := range actions {
		change, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}
		out = append(out, h.changeMode(change.Mode, ctx)...)
		if h.currentMode == types.ModeFilter {
			cmd = textinput.Blink
		}
	}

	// Unconsumed keys in filter mode feed the text prompt.
	if !consumed && h.currentMode == types.ModeFilter {
		var tiCmd tea.Cmd
		*h.textInput, tiCmd = h.textInput.Update(msg)
		cmd = tiCmd
	}

	return out, cmd
}

// ChangeMode switches modes from the model side (e.g. after a successful
// filter commit).
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.changeMode(mode, ctx)
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var out []types.Action
	out = append(out, h.modes[h.currentMode].Exit(ctx)...)
	h.currentMode = mode
	out = append(out, h.modes[h.currentMode].Enter(ctx)...)
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// FilterInput exposes the shared text input for rendering the filter
// prompt.
func (h *Handler) FilterInput() *textinput.Model {
	return h.textInput
}

// RecordFilterHistory adds an accepted filter expression to the prompt
// history. The model calls this after a commit parses.
func (h *Handler) RecordFilterHistory(text string) {
	h.filter.Record(text)
}

// NavigatePrompt returns the jump target being typed in navigate mode.
func (h *Handler) NavigatePrompt() string {
	return h.navigate.Prompt()
}

// Update forwards non-key messages (cursor blink) to the text input.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeFilter {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
