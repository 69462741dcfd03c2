// Package theme picks the colors the editor draws its own chrome with.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvVar overrides background detection.
const EnvVar = "LAZYTHEME_CHROME"

// Detect returns the chrome for the terminal background unless EnvVar
// forces one.
func Detect() Theme {
	if t, ok := Named(os.Getenv(EnvVar)); ok {
		return t
	}
	return ForBackground(lipgloss.HasDarkBackground())
}

// Named resolves "light"/"latte" and "dark"/"macchiato", ignoring case.
func Named(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "latte":
		return Latte(), true
	case "dark", "macchiato":
		return Macchiato(), true
	}
	return Theme{}, false
}

// ForBackground returns Macchiato on dark terminals and Latte otherwise.
func ForBackground(dark bool) Theme {
	if dark {
		return Macchiato()
	}
	return Latte()
}
