// Package cli provides the interactive menu boundary for the parcel
// registry. It reads line-oriented input, invokes command and query handlers,
// and renders results with styled terminal output.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorOrange  = lipgloss.Color("#F68B1E")
	colorSuccess = lipgloss.Color("#2CD77C")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#7A7A7A")
)

// Styles holds the pre-configured lipgloss styles used by the menu. With
// color disabled every style renders plain text, which keeps scripted and
// piped output stable.
type Styles struct {
	Title   lipgloss.Style
	Menu    lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Report  lipgloss.Style
}

// NewStyles creates the menu style set. Pass colorEnabled=false for plain
// output.
func NewStyles(colorEnabled bool) Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return Styles{
			Title:   plain,
			Menu:    plain,
			Prompt:  plain,
			Success: plain,
			Error:   plain,
			Muted:   plain,
			Report:  plain,
		}
	}

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorOrange),
		Menu:    lipgloss.NewStyle().Foreground(colorOrange),
		Prompt:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Report:  lipgloss.NewStyle().Foreground(colorOrange).Bold(true),
	}
}
