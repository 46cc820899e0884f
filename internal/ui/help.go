package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"bufcycle/internal/ui/keymap"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keymap.Keymap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keymap.Keymap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent renders the help information from the live keymap, so
// rebound keys show their actual bindings
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

	row := func(binding, desc string) string {
		return fmt.Sprintf("  %-14s %s\n", keyStyle.Render(binding), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("bufcycle help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Buffer cycling"))
	help.WriteString("\n")
	help.WriteString(row(r.keys.Next.Help().Key, r.keys.Next.Help().Desc))
	help.WriteString(row(r.keys.Prev.Help().Key, r.keys.Prev.Help().Desc))
	help.WriteString(row(r.keys.First.Help().Key, r.keys.First.Help().Desc))
	help.WriteString(row(r.keys.Last.Help().Key, r.keys.Last.Help().Desc))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Buffers"))
	help.WriteString("\n")
	help.WriteString(row(r.keys.Close.Help().Key, r.keys.Close.Help().Desc))
	help.WriteString(row(r.keys.Open.Help().Key, r.keys.Open.Help().Desc))
	help.WriteString(row("H", "open help buffer"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row(r.keys.Help.Help().Key, "toggle this help"))
	help.WriteString(row("P", "view help in pager"))
	help.WriteString(row(r.keys.Quit.Help().Key, "quit"))

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		"  Cycling skips plugin windows (file tree, tag outline, quickfix).\n" +
			"  Help buffers cycle separately from normal buffers."))

	return help.String()
}

// HelpBufferLines returns the help text as plain buffer lines for the
// built-in help buffer
func (r *HelpRenderer) HelpBufferLines() []string {
	lines := []string{
		"bufcycle",
		"",
		"Buffer cycling commands:",
		"",
		fmt.Sprintf("  %-12s %s", r.keys.Next.Help().Key, r.keys.Next.Help().Desc),
		fmt.Sprintf("  %-12s %s", r.keys.Prev.Help().Key, r.keys.Prev.Help().Desc),
		fmt.Sprintf("  %-12s %s", r.keys.First.Help().Key, r.keys.First.Help().Desc),
		fmt.Sprintf("  %-12s %s", r.keys.Last.Help().Key, r.keys.Last.Help().Desc),
		fmt.Sprintf("  %-12s %s", r.keys.Close.Help().Key, r.keys.Close.Help().Desc),
		"",
		"This buffer has the help filetype: cycling from here visits",
		"other help buffers only.",
	}
	return lines
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// ShowHelpInPager shows help content using the ov pager
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
		_ = h.program.RestoreTerminal()
	}()

	reader := strings.NewReader(helpContent)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
