package types

// NavigateAction moves the cursor.
type NavigateAction struct {
	Direction string // up, down, left, right, pageup, pagedown, home, end, firstcol, lastcol
}

func (a NavigateAction) Type() string { return "navigate" }

// JumpAction moves the cursor to an absolute position.
type JumpAction struct {
	Row, Col int
}

func (a JumpAction) Type() string { return "jump" }

// MoveColumnAction reorders the current column.
type MoveColumnAction struct {
	Direction string // left, right
}

func (a MoveColumnAction) Type() string { return "movecolumn" }

// HideColumnAction hides the current column.
type HideColumnAction struct{}

func (a HideColumnAction) Type() string { return "hidecolumn" }

// ResizeAction changes column widths.
type ResizeAction struct {
	Op string // grow, shrink, fit, reset
}

func (a ResizeAction) Type() string { return "resize" }

// ChangeModeAction switches the input mode.
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "changemode" }

// CommitFilterAction submits filter text for parsing. The model keeps the
// user in filter mode when the text does not parse.
type CommitFilterAction struct {
	Text string
}

func (a CommitFilterAction) Type() string { return "commitfilter" }

// CancelFilterAction discards in-progress filter edits.
type CancelFilterAction struct{}

func (a CancelFilterAction) Type() string { return "cancelfilter" }

// ToggleIndicesAction toggles showing source column indices in the header.
type ToggleIndicesAction struct{}

func (a ToggleIndicesAction) Type() string { return "toggleindices" }

// ReloadAction restarts indexing against the same path.
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

// ShowHelpAction opens the help pager.
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "showhelp" }

// QuitAction exits the program.
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
