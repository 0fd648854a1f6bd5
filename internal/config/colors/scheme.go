package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation, passed runs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs, running runs
	Delete string `yaml:"delete"` // Red - delete confirmations, failed runs

	// UI element colors
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	PanelBorder    string `yaml:"panel_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// Presets lists the built-in scheme names
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name, falling back to the default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
}

// MergeFrom copies every value of other into the empty fields of c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, other.Accent)
	fill(&c.Create, other.Create)
	fill(&c.Edit, other.Edit)
	fill(&c.Delete, other.Delete)
	fill(&c.CardBorder, other.CardBorder)
	fill(&c.SelectedBorder, other.SelectedBorder)
	fill(&c.PanelBorder, other.PanelBorder)
	fill(&c.Title, other.Title)
	fill(&c.Subtle, other.Subtle)
	fill(&c.Normal, other.Normal)
	fill(&c.InfoFg, other.InfoFg)
	fill(&c.InfoBg, other.InfoBg)
	fill(&c.WarningFg, other.WarningFg)
	fill(&c.WarningBg, other.WarningBg)
	fill(&c.ErrorFg, other.ErrorFg)
	fill(&c.ErrorBg, other.ErrorBg)
}

// Override copies every non-empty value of other over c
func (c *ColorScheme) Override(other ColorScheme) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.Accent, other.Accent)
	set(&c.Create, other.Create)
	set(&c.Edit, other.Edit)
	set(&c.Delete, other.Delete)
	set(&c.CardBorder, other.CardBorder)
	set(&c.SelectedBorder, other.SelectedBorder)
	set(&c.PanelBorder, other.PanelBorder)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.InfoFg, other.InfoFg)
	set(&c.InfoBg, other.InfoBg)
	set(&c.WarningFg, other.WarningFg)
	set(&c.WarningBg, other.WarningBg)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)
}
