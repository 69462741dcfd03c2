package color

import "math"

// Black and White are the contrast extremes.
var (
	Black = FromHSL(0, 0, 0)
	White = FromHSL(0, 0, 100)
)

// Luminance returns the WCAG relative luminance in [0,1]. Alpha is ignored.
func Luminance(c Color) float64 {
	r, g, b := c.RGB255()
	return 0.2126*channel(r) + 0.7152*channel(g) + 0.0722*channel(b)
}

func channel(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio of a over b, always >= 1.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsLight uses the YIQ brightness test on 8-bit channels.
func IsLight(c Color) bool {
	r, g, b := c.RGB255()
	yiq := (int(r)*2126 + int(g)*7152 + int(b)*722) / 10000
	return yiq >= 128
}

// IsDark is the negation of IsLight.
func IsDark(c Color) bool {
	return !IsLight(c)
}
