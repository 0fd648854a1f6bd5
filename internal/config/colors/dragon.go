package colors

// Dragon returns the Kanagawa Dragon color scheme (muted dark theme)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: "#8992A7", // dragonViolet

		Create: "#8A9A7B", // dragonGreen2
		Edit:   "#8BA4B0", // dragonBlue2
		Delete: "#C4746E", // dragonRed

		CardBorder:     "#393836", // dragonBlack5
		SelectedBorder: "#B6927B", // dragonOrange
		PanelBorder:    "#625E5A", // dragonBlack6

		Title:  "#C4B28A", // dragonYellow
		Subtle: "#737C73", // dragonAsh
		Normal: "#C5C9C5", // dragonWhite

		InfoFg:    "#8BA4B0",
		InfoBg:    "#282727", // dragonBlack4
		WarningFg: "#C4B28A",
		WarningBg: "#393836",
		ErrorFg:   "#C4746E",
		ErrorBg:   "#181616", // dragonBlack3
	}
}
