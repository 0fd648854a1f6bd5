package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: "#624C83", // lotusViolet4

		Create: "#6F894E", // lotusGreen
		Edit:   "#4D699B", // lotusBlue4
		Delete: "#C84053", // lotusRed

		CardBorder:     "#8A8980", // lotusGray3
		SelectedBorder: "#4E8CA2", // lotusTeal1
		PanelBorder:    "#4D699B",

		Title:  "#624C83",
		Subtle: "#8A8980",
		Normal: "#545464", // lotusInk1

		InfoFg:    "#4D699B",
		InfoBg:    "#E7DBA0", // lotusWhite4
		WarningFg: "#77713F", // lotusYellow
		WarningBg: "#F2ECBC", // lotusWhite3
		ErrorFg:   "#C84053",
		ErrorBg:   "#F2ECBC",
	}
}
