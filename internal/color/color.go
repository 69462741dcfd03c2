// Package color holds the HSL color value used by every palette and the
// WCAG luminance helpers built on it.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
)

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// HSL is a color in hue/saturation/lightness form. H is in degrees [0,360),
// S and L are percentages in [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

// Color is an immutable sRGB color. It keeps the exact HSL components it was
// built from so that edits touching one channel leave the others untouched;
// the hex form is derived on output.
type Color struct {
	hsl      HSL
	alpha    uint8
	hasAlpha bool
}

// Parse reads #rgb, #rrggbb or #rrggbbaa in either case.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return Color{}, &themeerr.FormatError{Input: s, Reason: "expected #rgb, #rrggbb or #rrggbbaa"}
	}

	rgb := s
	var alpha uint8
	hasAlpha := false
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, &themeerr.FormatError{Input: s, Reason: err.Error()}
		}
		alpha = uint8(a)
		hasAlpha = true
		rgb = s[:7]
	}

	c, err := colorful.Hex(strings.ToLower(rgb))
	if err != nil {
		return Color{}, &themeerr.FormatError{Input: s, Reason: err.Error()}
	}

	h, sat, l := c.Hsl()
	return Color{
		hsl:      normalize(HSL{H: h, S: sat * 100, L: l * 100}),
		alpha:    alpha,
		hasAlpha: hasAlpha,
	}, nil
}

// MustParse is like Parse but panics on malformed input. Only use it with
// literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHSL builds an opaque color, normalizing hue and clamping S and L.
func FromHSL(h, s, l float64) Color {
	return Color{hsl: normalize(HSL{H: h, S: s, L: l})}
}

// HSL returns the color's components.
func (c Color) HSL() HSL {
	return c.hsl
}

// WithHSL returns a copy with new components and the same alpha.
func (c Color) WithHSL(h, s, l float64) Color {
	c.hsl = normalize(HSL{H: h, S: s, L: l})
	return c
}

// WithAlpha returns a copy carrying an alpha byte.
func (c Color) WithAlpha(a uint8) Color {
	c.alpha = a
	c.hasAlpha = true
	return c
}

// Alpha returns the alpha byte and whether one is set.
func (c Color) Alpha() (uint8, bool) {
	return c.alpha, c.hasAlpha
}

// Hex returns the lowercase #rrggbb form, or #rrggbbaa when an alpha is set.
func (c Color) Hex() string {
	hex := c.colorful().Hex()
	if c.hasAlpha {
		return fmt.Sprintf("%s%02x", hex, c.alpha)
	}
	return hex
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Equal compares colors by their hex output.
func (c Color) Equal(other Color) bool {
	return c.Hex() == other.Hex()
}

// Lighten adds amount to L.
func (c Color) Lighten(amount float64) Color {
	return c.WithHSL(c.hsl.H, c.hsl.S, c.hsl.L+amount)
}

// Darken subtracts amount from L.
func (c Color) Darken(amount float64) Color {
	return c.WithHSL(c.hsl.H, c.hsl.S, c.hsl.L-amount)
}

// Saturate adds amount to S. Achromatic colors stay achromatic.
func (c Color) Saturate(amount float64) Color {
	if c.hsl.S == 0 && amount > 0 {
		return c
	}
	return c.WithHSL(c.hsl.H, c.hsl.S+amount, c.hsl.L)
}

// RGB255 returns the 8-bit channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.colorful().RGB255()
}

func (c Color) colorful() colorful.Color {
	return colorful.Hsl(c.hsl.H, c.hsl.S/100, c.hsl.L/100).Clamped()
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// ClampSaturation clamps s into [0,100].
func ClampSaturation(s float64) float64 {
	return clampPercent(s)
}

// ClampLightness clamps l into [0,100].
func ClampLightness(l float64) float64 {
	return clampPercent(l)
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func normalize(h HSL) HSL {
	hue := h.H
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		hue = 0
	}
	return HSL{
		H: NormalizeHue(hue),
		S: ClampSaturation(h.S),
		L: ClampLightness(h.L),
	}
}
