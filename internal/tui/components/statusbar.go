package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds what RenderStatusBar needs
type StatusBarProps struct {
	Width int
	Mode  string
	// Left is shown after the mode, e.g. the page position or a notification
	Left string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode and context
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := ModeStyle.Render(props.Mode) + " " + props.Left
	rightRendered := StatusBarStyle.Render("press ? for help")

	// Calculate space between left and right text
	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return leftRendered + strings.Repeat(" ", gapWidth) + rightRendered
}
