package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	TabHelp     lipgloss.Style
	TabModified lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Prompt      lipgloss.Style
	Confirm     lipgloss.Style
	Content     lipgloss.Style
	LineNumber  lipgloss.Style
	Help        lipgloss.Style
	HelpBox     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		TabHelp: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("114")).
			Padding(0, 1),
		TabModified: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Content: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LineNumber: lipgloss.NewStyle().
			Faint(true).
			Width(4).
			Align(lipgloss.Right).
			MarginRight(1),
		Help: lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
	}
}
