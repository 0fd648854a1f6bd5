package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/testdeck/internal/config"
)

// keyMap holds the bindings built from the user's key mappings
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	Filter       key.Binding
	Open         key.Binding
	Delete       key.Binding
	ToggleWidget key.Binding
	Refresh      key.Binding
	ToggleCase   key.Binding
	Back         key.Binding
	Confirm      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys(km.Up, "up"), key.WithHelp(km.Up+"/↑", "up")),
		Down:         key.NewBinding(key.WithKeys(km.Down, "down"), key.WithHelp(km.Down+"/↓", "down")),
		NextPage:     key.NewBinding(key.WithKeys(km.NextPage), key.WithHelp(km.NextPage, "next page")),
		PrevPage:     key.NewBinding(key.WithKeys(km.PrevPage), key.WithHelp(km.PrevPage, "previous page")),
		Filter:       key.NewBinding(key.WithKeys(km.Filter), key.WithHelp(km.Filter, "filter by tag")),
		Open:         key.NewBinding(key.WithKeys(km.OpenPlan), key.WithHelp(km.OpenPlan, "open plan")),
		Delete:       key.NewBinding(key.WithKeys(km.DeletePlan), key.WithHelp(km.DeletePlan, "delete plan")),
		ToggleWidget: key.NewBinding(key.WithKeys(km.ToggleWidget), key.WithHelp(km.ToggleWidget, "toggle widget")),
		Refresh:      key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		ToggleCase:   key.NewBinding(key.WithKeys(km.ToggleCase), key.WithHelp(km.ToggleCase, "expand case")),
		Back:         key.NewBinding(key.WithKeys(km.Back), key.WithHelp(km.Back, "back / clear filter")),
		Confirm:      key.NewBinding(key.WithKeys(km.Confirm), key.WithHelp(km.Confirm, "confirm")),
		Help:         key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:         key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Filter, k.Back, k.Open, k.Delete},
		{k.ToggleCase, k.ToggleWidget, k.Refresh},
		{k.Help, k.Quit},
	}
}
