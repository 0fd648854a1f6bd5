package notifications

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/testdeck/internal/tui/state"
)

func TestRenderInlineFromState(t *testing.T) {
	out := ansi.Strip(RenderInlineFromState(state.Notification{Level: state.LevelWarning, Message: "careful"}))
	assert.Contains(t, out, "⚠ careful")
}

func TestRenderFromState(t *testing.T) {
	out := ansi.Strip(RenderFromState(state.Notification{Level: state.LevelError, Message: "backend unavailable"}))
	assert.Contains(t, out, "backend unavailable")
	assert.Contains(t, out, "Error")
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, Info, severityOf(state.LevelInfo))
	assert.Equal(t, Warning, severityOf(state.LevelWarning))
	assert.Equal(t, Error, severityOf(state.LevelError))
	assert.Equal(t, Success, severityOf(state.LevelSuccess))
}

func TestBannerFromState_OnlyForErrors(t *testing.T) {
	assert.Empty(t, BannerFromState(state.Notification{Level: state.LevelSuccess, Message: "Deleted"}))
	assert.Empty(t, BannerFromState(state.Notification{Level: state.LevelWarning, Message: "careful"}))

	banner := ansi.Strip(BannerFromState(state.Notification{Level: state.LevelError, Message: "backend unavailable"}))
	assert.Contains(t, banner, "✕ Error")
	assert.Contains(t, banner, "backend unavailable")
}

func TestRenderInline_Success(t *testing.T) {
	assert.Contains(t, ansi.Strip(RenderInline(Success, "Config reloaded")), "✓ Config reloaded")
}
