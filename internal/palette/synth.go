package palette

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/kyleking/lazytheme/internal/color"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/readability"
	"github.com/kyleking/lazytheme/internal/scheme"
)

const (
	brightSaturationBoost = 20.0
	brightLightnessBoost  = 15.0
	brightLightnessCap    = 95.0

	harmonizeWindow = 30.0
	harmonizePull   = 0.35
)

// Band is an inclusive contrast range.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Thresholds are the contrast targets used by the readability pass.
type Thresholds struct {
	Min          float64 `yaml:"min"`
	Relaxed      float64 `yaml:"relaxed"`
	CommentDark  Band    `yaml:"comment_dark"`
	CommentLight Band    `yaml:"comment_light"`
}

// DefaultThresholds returns the stock contrast targets.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Min:          5.5,
		Relaxed:      1.5,
		CommentDark:  Band{Min: 4.0, Max: 4.5},
		CommentLight: Band{Min: 5.0, Max: 5.5},
	}
}

// Comment returns the comment band for a background.
func (t Thresholds) Comment(background color.Color) Band {
	if color.IsDark(background) {
		return t.CommentDark
	}
	return t.CommentLight
}

type jitter struct {
	hue   float64
	sat   float64
	light float64
}

// Request carries the inputs shared by all three synthesis passes.
type Request struct {
	// Background is the editor background. Syntax and ANSI synthesis read
	// it; UI synthesis derives its own from BG1.
	Background color.Color
	// IsDark selects UI lightness targets unless BG1 is locked.
	IsDark bool
	// Hues is the pool roles draw from. It must not be empty.
	Hues       []float64
	Saturation float64
	// Locked roles are copied through unchanged and skip readability.
	Locked map[string]color.Color
	// ForceRegenerate disables jitter.
	ForceRegenerate bool

	// Scheme and Few only affect UI synthesis: unless Few is set, the
	// accent hues widen the returned pool via scheme.AdditionalHues.
	Scheme scheme.Scheme
	Few    bool
}

// UIResult is a UI palette and the hue pool for the passes that follow it.
type UIResult struct {
	Palette Palette
	Hues    []float64
}

// Synthesizer generates palettes. It owns a random source and is not safe
// for concurrent use.
type Synthesizer struct {
	rng        *rand.Rand
	thresholds Thresholds
	logger     *slog.Logger
}

// NewSynthesizer creates a synthesizer. A nil rng uses a randomly seeded
// source; a nil logger discards output.
func NewSynthesizer(rng *rand.Rand, thresholds Thresholds, logger *slog.Logger) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Synthesizer{rng: rng, thresholds: thresholds, logger: logger}
}

// Thresholds returns the contrast targets in use.
func (s *Synthesizer) Thresholds() Thresholds {
	return s.thresholds
}

// UI synthesizes the UI palette. A locked BG1 decides the theme polarity.
func (s *Synthesizer) UI(req Request) (UIResult, error) {
	isDark := req.IsDark
	if bg, ok := req.Locked[BG1]; ok {
		isDark = color.IsDark(bg)
	}

	colors, err := s.synthesize(uiVocabulary, req, isDark)
	if err != nil {
		return UIResult{}, err
	}

	bg := colors[BG1]
	s.enforce(uiVocabulary, colors, bg, req.Locked, false)

	pool := append([]float64(nil), req.Hues...)
	if !req.Few {
		pool = append(pool, scheme.AdditionalHues(colors[AC1].HSL().H, req.Scheme)...)
		pool = append(pool, scheme.AdditionalHues(colors[AC2].HSL().H, req.Scheme)...)
	}

	return UIResult{Palette: newPalette(KindUI, colors), Hues: pool}, nil
}

// Syntax synthesizes the syntax palette against req.Background.
func (s *Synthesizer) Syntax(req Request) (Palette, error) {
	colors, err := s.synthesize(syntaxVocabulary, req, color.IsDark(req.Background))
	if err != nil {
		return Palette{}, err
	}
	s.enforce(syntaxVocabulary, colors, req.Background, req.Locked, false)
	return newPalette(KindSyntax, colors), nil
}

// ANSI synthesizes the terminal palette against req.Background. Locks do
// not apply to ANSI roles.
func (s *Synthesizer) ANSI(req Request) (Palette, error) {
	req.Locked = nil
	colors, err := s.synthesize(ansiVocabulary, req, color.IsDark(req.Background))
	if err != nil {
		return Palette{}, err
	}
	s.enforce(ansiVocabulary, colors, req.Background, nil, false)
	return newPalette(KindANSI, colors), nil
}

// Reinforce re-runs the readability floor over p against background,
// skipping locked roles and the comment band.
func (s *Synthesizer) Reinforce(p Palette, background color.Color, locks LockSet) Palette {
	colors := make(map[string]color.Color, len(p.colors))
	for role, c := range p.colors {
		colors[role] = c
	}

	locked := make(map[string]color.Color, len(locks))
	for role := range locks {
		if c, ok := colors[role]; ok {
			locked[role] = c
		}
	}

	s.enforce(vocabularyFor(p.kind), colors, background, locked, true)
	return newPalette(p.kind, colors)
}

func (s *Synthesizer) synthesize(vocab *vocabulary, req Request, isDark bool) (map[string]color.Color, error) {
	if len(req.Hues) == 0 {
		return nil, &themeerr.SynthesisError{Palette: vocab.kind.String(), Reason: "empty hue list"}
	}

	colors := make(map[string]color.Color, len(vocab.roles))
	hues := make(map[string]float64, len(vocab.roles))

	for _, spec := range vocab.roles {
		if c, ok := req.Locked[spec.Name]; ok {
			colors[spec.Name] = c
			hues[spec.Name] = c.HSL().H
			continue
		}

		switch {
		case spec.Constant != "":
			c, err := color.Parse(spec.Constant)
			if err != nil {
				return nil, &themeerr.SynthesisError{Palette: vocab.kind.String(), Reason: "bad constant for " + spec.Name, Cause: err}
			}
			colors[spec.Name] = c
		case spec.Bright != "":
			base, ok := colors[spec.Bright]
			if !ok {
				return nil, &themeerr.SynthesisError{Palette: vocab.kind.String(), Reason: spec.Name + " precedes " + spec.Bright}
			}
			hsl := base.HSL()
			colors[spec.Name] = color.FromHSL(
				hsl.H,
				hsl.S+brightSaturationBoost,
				math.Min(hsl.L+brightLightnessBoost, brightLightnessCap),
			)
			hues[spec.Name] = hsl.H
		default:
			hue := s.baseHue(spec, req.Hues, hues)
			hues[spec.Name] = hue
			colors[spec.Name] = s.generate(vocab.jitter, spec, hue, req.Saturation, isDark, req.ForceRegenerate)
		}
	}

	return colors, nil
}

func (s *Synthesizer) baseHue(spec RoleSpec, pool []float64, assigned map[string]float64) float64 {
	switch {
	case spec.HasFixedHue && spec.Harmonize:
		return harmonize(spec.FixedHue, pool) + spec.HueOffset
	case spec.HasFixedHue:
		return spec.FixedHue + spec.HueOffset
	case spec.Follows != "":
		if h, ok := assigned[spec.Follows]; ok {
			return h + spec.HueOffset
		}
		return pool[0] + spec.HueOffset
	case spec.Slot == SlotRandom:
		return pool[s.rng.IntN(len(pool))] + spec.HueOffset
	}
	return pool[spec.Slot%len(pool)] + spec.HueOffset
}

func (s *Synthesizer) generate(j jitter, spec RoleSpec, hue, saturation float64, isDark, force bool) color.Color {
	sat := saturation * spec.SatMul
	light := spec.lightness(isDark)

	if !force {
		hue += s.spread(j.hue)
		sat += s.spread(j.sat)
		light += s.spread(j.light)
	}
	if spec.Achromatic {
		sat = 0
	}

	c := color.FromHSL(hue, sat, light)
	if spec.Alpha != 0 {
		c = c.WithAlpha(spec.Alpha)
	}
	return c
}

// spread returns a uniform value in [-r, r].
func (s *Synthesizer) spread(r float64) float64 {
	return (s.rng.Float64()*2 - 1) * r
}

func (s *Synthesizer) enforce(vocab *vocabulary, colors map[string]color.Color, bg color.Color, locked map[string]color.Color, skipComment bool) {
	for _, spec := range vocab.roles {
		if _, ok := locked[spec.Name]; ok {
			continue
		}
		if skipComment && spec.Floor == FloorComment {
			continue
		}
		c, ok := colors[spec.Name]
		if !ok {
			continue
		}
		colors[spec.Name] = s.readable(vocab.kind, spec, c, bg)
	}
}

func (s *Synthesizer) readable(kind Kind, spec RoleSpec, c, bg color.Color) color.Color {
	var res readability.Result
	switch spec.Floor {
	case FloorExempt:
		return c
	case FloorRelaxed:
		res = readability.EnsureReadability(c, bg, s.thresholds.Relaxed)
	case FloorComment:
		band := s.thresholds.Comment(bg)
		res = readability.AdjustCommentColor(c, bg, band.Min, band.Max)
	default:
		res = readability.EnsureReadability(c, bg, s.thresholds.Min)
	}

	if res.Warning != nil {
		res.Warning.Role = spec.Name
		s.logger.Debug("readability did not converge",
			"palette", kind.String(),
			"role", spec.Name,
			"target", res.Warning.Target,
			"achieved", res.Warning.Achieved,
			"iterations", res.Warning.Iterations)
	}
	return res.Color
}

// harmonize pulls hue part of the way toward the closest pool hue when one
// lies within harmonizeWindow degrees.
func harmonize(hue float64, pool []float64) float64 {
	bestDelta := math.Inf(1)
	for _, p := range pool {
		d := hueDelta(hue, p)
		if math.Abs(d) < math.Abs(bestDelta) {
			bestDelta = d
		}
	}
	if math.Abs(bestDelta) > harmonizeWindow {
		return hue
	}
	return color.NormalizeHue(hue + bestDelta*harmonizePull)
}

// hueDelta returns the signed shortest rotation from a to b in (-180, 180].
func hueDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}
