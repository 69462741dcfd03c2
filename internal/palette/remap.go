package palette

import "github.com/kyleking/lazytheme/internal/color"

// RemapSaturation sets every unlocked role's saturation to saturation times
// the role's synthesis multiplier. Hue, lightness and alpha are untouched,
// so the result is idempotent for a fixed saturation. Constant, derived and
// achromatic roles are left alone. Follow with Synthesizer.Reinforce to
// restore the readability floor.
func RemapSaturation(p Palette, saturation float64, locks LockSet) Palette {
	vocab := vocabularyFor(p.kind)
	colors := make(map[string]color.Color, len(p.colors))

	for role, c := range p.colors {
		spec, ok := vocab.spec(role)
		if !ok || locks.Has(role) || spec.Constant != "" || spec.Bright != "" || spec.Achromatic {
			colors[role] = c
			continue
		}
		hsl := c.HSL()
		colors[role] = c.WithHSL(hsl.H, saturation*spec.SatMul, hsl.L)
	}

	return newPalette(p.kind, colors)
}
