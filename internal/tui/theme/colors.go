// Package theme holds the TUI colors, set once from the configured scheme
package theme

import "github.com/thenoetrevino/testdeck/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	CardBorder     string
	SelectedBorder string
	PanelBorder    string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	CardBorder = scheme.CardBorder
	SelectedBorder = scheme.SelectedBorder
	PanelBorder = scheme.PanelBorder
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
