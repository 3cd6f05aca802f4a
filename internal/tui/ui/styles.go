package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App   lipgloss.Style
	Title lipgloss.Style

	// Session entry list
	EntryTime     lipgloss.Style
	EntryActivity lipgloss.Style
	EmptySession  lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Status line
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic UI elements:
// - Primary: Purple (title, focused input)
// - Secondary: Cyan (entry times, help keys)
// - Muted: BrightBlack (empty state, help descriptions)
// - Success/Error: Green/Red (status line)
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	muted := r.BrightBlack()
	success := r.Green()
	errorColor := r.Red()
	fg := r.Fg()

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Session entry list
		EntryTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(7),
		EntryActivity: lipgloss.NewStyle().
			Foreground(fg),
		EmptySession: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Status line
		StatusInfo: lipgloss.NewStyle().
			Foreground(success),
		StatusError: lipgloss.NewStyle().
			Foreground(errorColor),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
	}
}
