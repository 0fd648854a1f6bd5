// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/testdeck/internal/config/colors"
	"github.com/thenoetrevino/testdeck/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// CardStyle defines the appearance of plan cards in the list
	CardStyle lipgloss.Style

	// SelectedCardStyle is CardStyle for the highlighted plan
	SelectedCardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (plan names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle renders muted text like placeholders and hints
	SubtleStyle lipgloss.Style

	// PanelStyle frames side panels like the dashboard widget
	PanelStyle lipgloss.Style

	// FilterBoxStyle defines the tag filter input (blue border)
	FilterBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// ModeStyle renders the mode indicator in the status bar
	ModeStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PanelBorder)).
		Padding(0, 1)

	FilterBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)
}
