package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/testdeck/internal/tagcolor"
)

// BadgeStyle is the lipgloss style for a computed badge. The CLI and the TUI
// both draw tags through it.
func BadgeStyle(badge tagcolor.Badge) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(badge.Background.Hex())).
		Foreground(lipgloss.Color(badge.Foreground.String())).
		Padding(0, 1)
}

// RenderTagBadge renders a tag on its hashed background with the contrasting
// foreground
func RenderTagBadge(tag string) string {
	return BadgeStyle(tagcolor.BadgeFor(tag)).Render(tag)
}

// RenderTagBadges renders badges side by side, stopping with "+N" once
// maxWidth would be exceeded. maxWidth <= 0 means no limit.
func RenderTagBadges(tags []string, maxWidth int) string {
	if len(tags) == 0 {
		return SubtleStyle.Render("no tags")
	}

	var b strings.Builder
	for i, tag := range tags {
		badge := RenderTagBadge(tag)
		sep := ""
		if i > 0 {
			sep = " "
		}
		if maxWidth > 0 && lipgloss.Width(b.String()+sep+badge) > maxWidth {
			more := SubtleStyle.Render("+" + strconv.Itoa(len(tags)-i))
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(more)
			break
		}
		b.WriteString(sep)
		b.WriteString(badge)
	}
	return b.String()
}
