package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Plan list
	NextPage     string `yaml:"next_page"`
	PrevPage     string `yaml:"prev_page"`
	Filter       string `yaml:"filter"`
	OpenPlan     string `yaml:"open_plan"`
	DeletePlan   string `yaml:"delete_plan"`
	ToggleWidget string `yaml:"toggle_widget"`
	Refresh      string `yaml:"refresh"`

	// Plan detail
	ToggleCase string `yaml:"toggle_case"`
	Back       string `yaml:"back"`

	// Navigation
	Up   string `yaml:"up"`
	Down string `yaml:"down"`

	// Other
	Confirm  string `yaml:"confirm"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Plan list
		NextPage:     "n",
		PrevPage:     "p",
		Filter:       "/",
		OpenPlan:     "enter",
		DeletePlan:   "d",
		ToggleWidget: "w",
		Refresh:      "r",

		// Plan detail
		ToggleCase: "space",
		Back:       "esc",

		// Navigation
		Up:   "k",
		Down: "j",

		// Other
		Confirm:  "y",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.NextPage, defaults.NextPage)
	fill(&k.PrevPage, defaults.PrevPage)
	fill(&k.Filter, defaults.Filter)
	fill(&k.OpenPlan, defaults.OpenPlan)
	fill(&k.DeletePlan, defaults.DeletePlan)
	fill(&k.ToggleWidget, defaults.ToggleWidget)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ToggleCase, defaults.ToggleCase)
	fill(&k.Back, defaults.Back)
	fill(&k.Up, defaults.Up)
	fill(&k.Down, defaults.Down)
	fill(&k.Confirm, defaults.Confirm)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
