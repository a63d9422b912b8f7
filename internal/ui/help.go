package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates colored help content for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	key := func(k, desc string) string {
		return fmt.Sprintf("  %-24s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("csvgrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(key("↑/↓, j/k", "Move cursor up/down"))
	help.WriteString(key("←/→, h/l", "Move cursor left/right"))
	help.WriteString(key("PgUp/PgDn", "Page up/down"))
	help.WriteString(key("Home/End, G", "Go to first/last row"))
	help.WriteString(key("g", "Navigate mode (jump to row:col)"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Columns"))
	help.WriteString("\n")
	help.WriteString(key("H/L, </>", "Move current column left/right"))
	help.WriteString(key("-", "Hide current column"))
	help.WriteString(key("s", "Size mode (adjust column widths)"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Size mode"))
	help.WriteString("\n")
	help.WriteString(key("+/=", "Widen current column"))
	help.WriteString(key("-", "Narrow current column"))
	help.WriteString(key("f", "Fit column to content"))
	help.WriteString(key("R", "Reset all column widths"))
	help.WriteString(key("Esc", "Back to normal mode"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filtering"))
	help.WriteString("\n")
	help.WriteString(key("/", "Edit filter expression"))
	help.WriteString(key("Tab", "Toggle column index row"))
	help.WriteString(key("↑/↓", "Recall filter history"))
	help.WriteString(key("Enter", "Apply filter"))
	help.WriteString(key("Esc", "Discard filter edit"))
	help.WriteString("\n")

	exampleStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(exampleStyle.Render("  Filter examples: 0 == alice   2 > 10 and 3   1[0:3] ~ ^ab"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigate mode"))
	help.WriteString("\n")
	help.WriteString(key("digits, :", "Type row or row:col (1-based)"))
	help.WriteString(key("↑/↓/←/→", "First/last row, first/last column"))
	help.WriteString(key("Enter", "Keep position"))
	help.WriteString(key("Esc", "Return to previous position"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(key("r", "Reload file"))
	help.WriteString(key("?", "Show this help"))
	help.WriteString(key("q", "Quit"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram wires the running Bubble Tea program once it exists.
func (h *HelpOps) SetProgram(program *tea.Program) {
	h.program = program
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(helpContent)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
