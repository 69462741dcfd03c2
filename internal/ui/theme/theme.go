package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kyleking/lazytheme/internal/palette"
)

// Theme defines semantic color roles for the UI.
type Theme struct {
	Primary   lipgloss.Color // titles, focused borders
	Secondary lipgloss.Color // unfocused borders
	Accent    lipgloss.Color // selected items
	Muted     lipgloss.Color // subtitles, help text
	SoftMuted lipgloss.Color // less critical info
	Text      lipgloss.Color
	ModalBg   lipgloss.Color
	Error     lipgloss.Color
	Link      lipgloss.Color
}

// Latte returns the Catppuccin Latte (light) theme.
func Latte() Theme {
	return Theme{
		Primary:   lipgloss.Color("#8839ef"), // Mauve
		Secondary: lipgloss.Color("#acb0be"), // Surface2
		Accent:    lipgloss.Color("#179299"), // Teal
		Muted:     lipgloss.Color("#7c7f93"), // Overlay2
		SoftMuted: lipgloss.Color("#8c8fa1"), // Overlay1
		Text:      lipgloss.Color("#4c4f69"), // Text
		ModalBg:   lipgloss.Color("#e6e9ef"), // Mantle
		Error:     lipgloss.Color("#d20f39"), // Red
		Link:      lipgloss.Color("#1e66f5"), // Blue
	}
}

// Macchiato returns the Catppuccin Macchiato (medium-dark) theme.
func Macchiato() Theme {
	return Theme{
		Primary:   lipgloss.Color("#c6a0f6"), // Mauve
		Secondary: lipgloss.Color("#5b6078"), // Surface2
		Accent:    lipgloss.Color("#8bd5ca"), // Teal
		Muted:     lipgloss.Color("#939ab7"), // Overlay2
		SoftMuted: lipgloss.Color("#a5adcb"), // Overlay1
		Text:      lipgloss.Color("#cad3f5"), // Text
		ModalBg:   lipgloss.Color("#1e2030"), // Mantle
		Error:     lipgloss.Color("#ed8796"), // Red
		Link:      lipgloss.Color("#8aadf4"), // Blue
	}
}

// FromPalette dresses the TUI chrome in the theme being edited.
func FromPalette(ui, syntax palette.Palette) Theme {
	c := func(p palette.Palette, role string) lipgloss.Color {
		col, _ := p.Color(role)
		return lipgloss.Color(opaque(col.Hex()))
	}

	return Theme{
		Primary:   c(ui, palette.AC1),
		Secondary: c(ui, palette.Border),
		Accent:    c(ui, palette.AC2),
		Muted:     c(syntax, palette.Comment),
		SoftMuted: c(ui, palette.FG2),
		Text:      c(ui, palette.FG1),
		ModalBg:   c(ui, palette.BG2),
		Error:     c(ui, palette.StatusError),
		Link:      c(ui, palette.StatusInfo),
	}
}

// opaque drops the alpha digits terminals cannot render.
func opaque(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}
