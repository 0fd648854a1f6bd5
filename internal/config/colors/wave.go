package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: "#957FB8", // oniViolet

		// Semantic colors
		Create: "#98BB6C", // springGreen
		Edit:   "#7E9CD8", // crystalBlue
		Delete: "#FF5D62", // peachRed

		// UI element colors
		CardBorder:     "#2A2A37", // sumiInk4
		SelectedBorder: "#7AA89F", // waveAqua2
		PanelBorder:    "#54546D", // sumiInk6

		// Text colors
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Notification colors
		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B", // roninYellow
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424", // samuraiRed
		ErrorBg:   "#43242B", // winterRed
	}
}
