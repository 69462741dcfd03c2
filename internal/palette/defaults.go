package palette

// Defaults mirror the stock VS Code Dark+ editor and terminal colors.

// DefaultUI returns the stock UI palette.
func DefaultUI() Palette {
	return mustFromHexes(KindUI, map[string]string{
		BG1:           "#1e1e1e",
		BG2:           "#252526",
		BG3:           "#2d2d30",
		FG1:           "#d4d4d4",
		FG2:           "#cccccc",
		FG3:           "#121212",
		AC1:           "#007acc",
		AC2:           "#0098ff",
		Border:        "#474747",
		StatusInfo:    "#9cdcfe",
		StatusError:   "#f48771",
		StatusWarning: "#cca700",
		StatusSuccess: "#89d185",
		LineHighlight: "#2f313710",
		Selection:     "#264f7820",
		FindMatch:     "#515c6a20",
	})
}

// DefaultSyntax returns the stock syntax palette.
func DefaultSyntax() Palette {
	return mustFromHexes(KindSyntax, map[string]string{
		Keyword:               "#569cd6",
		Comment:               "#6a9955",
		"function":            "#dcdcaa",
		"functionCall":        "#dcdcaa",
		"variable":            "#9cdcfe",
		"variableDeclaration": "#9cdcfe",
		"variableProperty":    "#9cdcfe",
		"type":                "#4ec9b0",
		"typeParameter":       "#4ec9b0",
		"constant":            "#4fc1ff",
		"class":               "#4ec9b0",
		"parameter":           "#9cdcfe",
		"property":            "#9cdcfe",
		"operator":            "#d4d4d4",
		"storage":             "#c586c0",
		"other":               "#d4d4d4",
		"language":            "#d4d4d4",
		"punctuation":         "#d4d4d4",
		"punctuationQuote":    "#d4d4d4",
		"punctuationBrace":    "#d4d4d4",
		"punctuationComma":    "#d4d4d4",
		"selector":            "#d7ba7d",
		"support":             "#c586c0",
		"modifier":            "#c586c0",
		"control":             "#c586c0",
		"controlFlow":         "#c586c0",
		"controlImport":       "#c586c0",
		"tag":                 "#c586c0",
		"tagPunctuation":      "#c586c0",
		"attribute":           "#c586c0",
		"unit":                "#d4d4d4",
		"datetime":            "#d4d4d4",
	})
}

// DefaultANSI returns the stock terminal palette.
func DefaultANSI() Palette {
	return mustFromHexes(KindANSI, map[string]string{
		"Black":         "#000000",
		"Red":           "#cd3131",
		"Green":         "#0dbc79",
		"Yellow":        "#e5e510",
		"Blue":          "#2472c8",
		"Magenta":       "#bc3fbc",
		"Cyan":          "#11a8cd",
		"White":         "#e5e5e5",
		"BrightBlack":   "#666666",
		"BrightRed":     "#f14c4c",
		"BrightGreen":   "#23d18b",
		"BrightYellow":  "#f5f543",
		"BrightBlue":    "#3b8eea",
		"BrightMagenta": "#d670d6",
		"BrightCyan":    "#29b8db",
		"BrightWhite":   "#e5e5e5",
	})
}
