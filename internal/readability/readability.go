// Package readability nudges foreground colors until they read against a
// background.
package readability

import (
	"github.com/kyleking/lazytheme/internal/color"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
)

// MaxIterations bounds every adjustment loop.
const MaxIterations = 100

const (
	lightnessStep  = 2.0
	saturationStep = 1.0

	commentLightnessStep = 0.5
	commentDarkCeiling   = 15.0
	commentLightCeiling  = 35.0
)

// Result is the outcome of an adjustment. Warning is set when the loop hit
// MaxIterations without reaching its target; Color is then the best found.
type Result struct {
	Color      color.Color
	Contrast   float64
	Iterations int
	Warning    *themeerr.ConvergenceWarning
}

// Converged reports whether the target was reached.
func (r Result) Converged() bool {
	return r.Warning == nil
}

// EnsureReadability moves candidate toward whichever of black or white
// contrasts more with background, raising saturation as it goes, until the
// contrast ratio reaches minContrast. The direction depends on the
// background alone, so a light candidate on a dark background is lightened
// further rather than darkened by its own lightness.
func EnsureReadability(candidate, background color.Color, minContrast float64) Result {
	lighten := towardWhite(background)

	c := candidate
	best := c
	bestContrast := color.ContrastRatio(c, background)

	i := 0
	for ; i < MaxIterations; i++ {
		cr := color.ContrastRatio(c, background)
		if cr > bestContrast {
			best, bestContrast = c, cr
		}
		if cr >= minContrast {
			return Result{Color: c, Contrast: cr, Iterations: i}
		}

		if l := c.HSL().L; lighten && l >= 100 || !lighten && l <= 0 {
			break
		}

		if lighten {
			c = c.Lighten(lightnessStep)
		} else {
			c = c.Darken(lightnessStep)
		}
		c = c.Saturate(saturationStep)
	}

	if cr := color.ContrastRatio(c, background); cr > bestContrast {
		best, bestContrast = c, cr
	}
	if bestContrast >= minContrast {
		return Result{Color: best, Contrast: bestContrast, Iterations: i}
	}

	return Result{
		Color:      best,
		Contrast:   bestContrast,
		Iterations: i,
		Warning: &themeerr.ConvergenceWarning{
			Target:     minContrast,
			Achieved:   bestContrast,
			Iterations: i,
		},
	}
}

// CommentCeiling returns the saturation cap for comments on background.
func CommentCeiling(background color.Color) float64 {
	if color.IsDark(background) {
		return commentDarkCeiling
	}
	return commentLightCeiling
}

// AdjustCommentColor tunes candidate into the contrast band
// [minContrast, maxContrast] against background so comments stay legible
// without competing with code. Saturation is capped for the background's
// polarity before and after the loop.
func AdjustCommentColor(candidate, background color.Color, minContrast, maxContrast float64) Result {
	ceiling := CommentCeiling(background)
	awayLighten := towardWhite(background)

	c := capSaturation(candidate, ceiling)

	i := 0
	for ; i < MaxIterations; i++ {
		cr := color.ContrastRatio(c, background)
		switch {
		case cr > maxContrast:
			c = step(c, !awayLighten)
			c = c.Saturate(-saturationStep)
		case cr < minContrast:
			c = step(c, awayLighten)
			c = capSaturation(c.Saturate(saturationStep), ceiling)
		default:
			c = capSaturation(c, ceiling)
			return Result{Color: c, Contrast: color.ContrastRatio(c, background), Iterations: i}
		}
	}

	c = capSaturation(c, ceiling)
	cr := color.ContrastRatio(c, background)
	res := Result{Color: c, Contrast: cr, Iterations: i}
	if cr < minContrast || cr > maxContrast {
		target := minContrast
		if cr > maxContrast {
			target = maxContrast
		}
		res.Warning = &themeerr.ConvergenceWarning{Role: "comment", Target: target, Achieved: cr, Iterations: i}
	}
	return res
}

func step(c color.Color, lighten bool) color.Color {
	if lighten {
		return c.Lighten(commentLightnessStep)
	}
	return c.Darken(commentLightnessStep)
}

func capSaturation(c color.Color, ceiling float64) color.Color {
	hsl := c.HSL()
	if hsl.S <= ceiling {
		return c
	}
	return c.WithHSL(hsl.H, ceiling, hsl.L)
}

func towardWhite(background color.Color) bool {
	return color.ContrastRatio(color.White, background) >= color.ContrastRatio(color.Black, background)
}
