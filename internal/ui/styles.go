// Package ui holds the shared lipgloss styles of the editor chrome.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// Colors used throughout the UI. Apply replaces them.
var (
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	MutedColor     lipgloss.Color
	TextColor      lipgloss.Color
	ModalBgColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	LinkColor      lipgloss.Color
)

// Styles for the application.
var (
	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	SelectedStyle      lipgloss.Style
	NormalStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	ErrorStyle         lipgloss.Style
	ErrorTitleStyle    lipgloss.Style
	LinkStyle          lipgloss.Style
	BorderStyle        lipgloss.Style
	FocusedBorderStyle lipgloss.Style
)

func init() {
	Apply(theme.Macchiato())
}

// Apply rebuilds every style from t.
func Apply(t theme.Theme) {
	PrimaryColor = t.Primary
	SecondaryColor = t.Secondary
	AccentColor = t.Accent
	MutedColor = t.Muted
	TextColor = t.Text
	ModalBgColor = t.ModalBg
	ErrorColor = t.Error
	LinkColor = t.Link

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor)

	NormalStyle = lipgloss.NewStyle().
		Foreground(TextColor)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor)

	ErrorTitleStyle = ErrorStyle.Bold(true)

	LinkStyle = lipgloss.NewStyle().
		Underline(true).
		Foreground(LinkColor)

	BorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor)

	FocusedBorderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor)
}

// PaneStyle returns a style for a pane with optional focus.
func PaneStyle(width, height int, focused bool) lipgloss.Style {
	style := BorderStyle
	if focused {
		style = FocusedBorderStyle
	}
	return style.Width(width - 2).Height(height - 2)
}

// Swatch renders width cells filled with hex. Alpha digits are ignored.
func Swatch(hex string, width int) string {
	if len(hex) == 9 {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", width))
}

// OnColor returns black or white, whichever reads better on hex.
func OnColor(hex string) lipgloss.Color {
	c, err := color.Parse(hex)
	if err != nil || color.IsDark(c) {
		return lipgloss.Color("#ffffff")
	}
	return lipgloss.Color("#000000")
}

// ApplyFuzzyFilter returns the items matching query, best match first. An
// empty query keeps every item in order.
func ApplyFuzzyFilter(query string, items []string) []string {
	if strings.TrimSpace(query) == "" {
		return items
	}

	matches := fuzzy.Find(query, items)
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.Str
	}
	return out
}
