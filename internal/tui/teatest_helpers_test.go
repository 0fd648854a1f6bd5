package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/testdeck/internal/app"
	"github.com/thenoetrevino/testdeck/internal/testutil"
	clitest "github.com/thenoetrevino/testdeck/internal/testutil/cli"
)

// setupTestModel creates a sized model on top of a fake backend
func setupTestModel(t *testing.T) (Model, *testutil.FakeBackend, *app.App) {
	t.Helper()
	fb, a := clitest.SetupCLITest(t)
	return newSizedModel(a), fb, a
}

func newSizedModel(a *app.App) Model {
	m := New(context.Background(), a)
	m, _ = updateModel(m, tea.WindowSizeMsg{Width: 140, Height: 50})
	return m
}

// updateModel applies one message and returns the concrete model
func updateModel(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// drain runs cmd and every command its messages produce, synchronously.
// Only this package's messages are fed back; cursor blinks would never settle.
// It reports whether the program asked to quit.
func drain(t *testing.T, m Model, cmd tea.Cmd) (Model, bool) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	quit := false
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		case plansLoadedMsg, detailLoadedMsg, widgetReportMsg, planDeletedMsg, prefSavedMsg, ConfigReloadedMsg:
			var next tea.Cmd
			m, next = updateModel(m, msg)
			queue = append(queue, next)
		}
	}
	return m, quit
}

// start runs Init to completion
func start(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = drain(t, m, m.Init())
	return m
}

// keyMsg builds a key press for a binding name or a single character
func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

// press sends keys one by one, running the commands each produces
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = updateModel(m, keyMsg(k))
		m, _ = drain(t, m, cmd)
	}
	return m
}

// typeText sends each rune of s as a key press
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func viewText(m Model) string {
	return ansi.Strip(m.View().Content)
}

// setupBare returns the backend and app without building a model, for tests
// that seed preferences first
func setupBare(t *testing.T) (*testutil.FakeBackend, *app.App) {
	t.Helper()
	return clitest.SetupCLITest(t)
}
