package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bufcycle/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width             int
	Height            int
	Buffers           []*domain.Buffer
	CurrentID         domain.BufferID
	StatusMessage     string
	ModeName          string
	ShowHelp          bool
	HelpContent       string
	ShowBufferNumbers bool
	InputPrompt       string // non-empty while a text mode is active
	InputText         string
	ConfirmTarget     string // non-empty while close confirmation is pending
	KeyHints          string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("bufcycle"))
	content.WriteString("\n")
	content.WriteString(r.renderBufferBar(state))
	content.WriteString("\n\n")

	if state.ShowHelp {
		content.WriteString(r.styles.HelpBox.Render(state.HelpContent))
		content.WriteString("\n")
	} else {
		content.WriteString(r.renderContent(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatusLine(state))

	return content.String()
}

// renderBufferBar draws one tab per live buffer in id order
func (r *Renderer) renderBufferBar(state ViewState) string {
	if len(state.Buffers) == 0 {
		return r.styles.Dim.Render("  no buffers")
	}

	tabs := make([]string, 0, len(state.Buffers))
	for _, buf := range state.Buffers {
		label := buf.Name
		if label == "" {
			label = "[unnamed]"
		}
		if state.ShowBufferNumbers {
			label = fmt.Sprintf("%d:%s", buf.ID, label)
		}
		if buf.Modified {
			label += r.styles.TabModified.Render("+")
		}

		style := r.styles.Tab
		switch {
		case buf.ID == state.CurrentID:
			style = r.styles.TabActive
		case buf.IsHelp():
			style = r.styles.TabHelp
		case !buf.Listed:
			style = r.styles.Dim
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderContent draws the current buffer's lines with line numbers
func (r *Renderer) renderContent(state ViewState) string {
	var current *domain.Buffer
	for _, buf := range state.Buffers {
		if buf.ID == state.CurrentID {
			current = buf
			break
		}
	}
	if current == nil {
		return r.styles.Dim.Render("  (no buffer selected)")
	}

	// Leave room for title, buffer bar, and status line.
	visible := state.Height - 6
	if visible < 1 {
		visible = 1
	}

	lines := current.Lines
	if len(lines) > visible {
		lines = lines[:visible]
	}

	out := &strings.Builder{}
	for i, line := range lines {
		out.WriteString(r.styles.LineNumber.Render(fmt.Sprintf("%d", i+1)))
		out.WriteString(r.styles.Content.Render(line))
		out.WriteString("\n")
	}
	if len(current.Lines) > visible {
		out.WriteString(r.styles.Dim.Render(fmt.Sprintf("  … %d more lines", len(current.Lines)-visible)))
		out.WriteString("\n")
	}
	return out.String()
}

// renderStatusLine draws the mode, pending prompt, and status message
func (r *Renderer) renderStatusLine(state ViewState) string {
	if state.ConfirmTarget != "" {
		return r.styles.Confirm.Render(
			fmt.Sprintf("Close %q without saving? (y/n)", state.ConfirmTarget))
	}
	if state.InputPrompt != "" {
		return r.styles.Prompt.Render(state.InputPrompt) + state.InputText
	}

	left := r.styles.Status.Render(fmt.Sprintf("-- %s --", strings.ToUpper(state.ModeName)))
	if state.StatusMessage != "" {
		left += "  " + r.styles.Status.Render(state.StatusMessage)
	}
	if state.KeyHints != "" {
		left += "\n" + r.styles.Help.Render(state.KeyHints)
	}
	return left
}
