package session

import (
	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/scheme"
)

// Options are the generation parameters.
type Options struct {
	IsDark           bool
	BaseHue          float64
	UISaturation     float64
	SyntaxSaturation float64
	Scheme           scheme.Scheme
	// Few keeps the syntax hue pool to the scheme hues only.
	Few bool
	// ForceRegenerate disables jitter on every regeneration.
	ForceRegenerate bool
}

// DefaultOptions returns the stock generation parameters.
func DefaultOptions() Options {
	return Options{
		IsDark:           true,
		BaseHue:          210,
		UISaturation:     30,
		SyntaxSaturation: 70,
		Scheme:           scheme.Analogous,
	}
}

func (o Options) normalized() Options {
	o.BaseHue = color.NormalizeHue(o.BaseHue)
	o.UISaturation = color.ClampSaturation(o.UISaturation)
	o.SyntaxSaturation = color.ClampSaturation(o.SyntaxSaturation)
	if !o.Scheme.Valid() {
		o.Scheme = scheme.Monochromatic
	}
	return o
}

// Partial overrides a subset of Options for one regeneration. Nil fields
// keep the current value. ForceRegenerate here applies to that cycle only.
type Partial struct {
	IsDark           *bool
	BaseHue          *float64
	UISaturation     *float64
	SyntaxSaturation *float64
	Scheme           *scheme.Scheme
	Few              *bool
	ForceRegenerate  *bool
}

// Ptr returns a pointer to v, for building a Partial.
func Ptr[T any](v T) *T {
	return &v
}

// merge returns p with every field next sets taking precedence.
func (p Partial) merge(next Partial) Partial {
	if next.IsDark != nil {
		p.IsDark = next.IsDark
	}
	if next.BaseHue != nil {
		p.BaseHue = next.BaseHue
	}
	if next.UISaturation != nil {
		p.UISaturation = next.UISaturation
	}
	if next.SyntaxSaturation != nil {
		p.SyntaxSaturation = next.SyntaxSaturation
	}
	if next.Scheme != nil {
		p.Scheme = next.Scheme
	}
	if next.Few != nil {
		p.Few = next.Few
	}
	if next.ForceRegenerate != nil {
		p.ForceRegenerate = next.ForceRegenerate
	}
	return p
}

func (p Partial) apply(o Options) Options {
	if p.IsDark != nil {
		o.IsDark = *p.IsDark
	}
	if p.BaseHue != nil {
		o.BaseHue = *p.BaseHue
	}
	if p.UISaturation != nil {
		o.UISaturation = *p.UISaturation
	}
	if p.SyntaxSaturation != nil {
		o.SyntaxSaturation = *p.SyntaxSaturation
	}
	if p.Scheme != nil {
		o.Scheme = *p.Scheme
	}
	if p.Few != nil {
		o.Few = *p.Few
	}
	if p.ForceRegenerate != nil {
		o.ForceRegenerate = *p.ForceRegenerate
	}
	return o.normalized()
}
