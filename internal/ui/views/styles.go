package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header      lipgloss.Style
	HeaderIdx   lipgloss.Style
	Gutter      lipgloss.Style
	Cell        lipgloss.Style
	CursorRow   lipgloss.Style
	CursorCell  lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	FilterError lipgloss.Style
	Banner      lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusLoad  lipgloss.Style
	StatusOK    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		HeaderIdx:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Gutter:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cell:        lipgloss.NewStyle(),
		CursorRow:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CursorCell:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		FilterError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Banner:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusLoad:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}
