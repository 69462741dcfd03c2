// Package scheme maps a base hue onto the ordered hue lists of the named
// color harmonies.
package scheme

import (
	"strings"

	"github.com/sahilm/fuzzy"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
)

// Scheme identifies a hue harmony.
type Scheme int

const (
	Monochromatic Scheme = iota
	Analogous
	Complementary
	SplitComplementary
	Triadic
	Tetradic
	GoldenRatio
	GoldenRatio3
	Fibonacci
	PentagramStar
	VesicaPiscis
	FlowerOfLife
	PlatonicSolids
	SpiralOfTheodorus
	MetatronsCube
	SeedOfLife
	FibonacciSequence
	GoldenSpiral
	MetallicMeans
	ContinuedFraction
	GoldenTrisection
	FareySequence
	NobleNumbers
	GoldenTriangle
	SriYantra
	KabbalahTreeOfLife
	Torus
	MandelbrotSet
	SierpinskiTriangle
	KochSnowflake
	CelticKnot
	Labyrinth
	YinYang
	StarTetrahedron
	Hamsa
	Enneagram
	Hexagram
	ChakraSymbols
	SpiralDynamics
	DoubleTorus
	RosettePattern
	NestedPolygons
)

var names = [...]string{
	Monochromatic:      "Monochromatic",
	Analogous:          "Analogous",
	Complementary:      "Complementary",
	SplitComplementary: "SplitComplementary",
	Triadic:            "Triadic",
	Tetradic:           "Tetradic",
	GoldenRatio:        "GoldenRatio",
	GoldenRatio3:       "GoldenRatio3",
	Fibonacci:          "Fibonacci",
	PentagramStar:      "PentagramStar",
	VesicaPiscis:       "VesicaPiscis",
	FlowerOfLife:       "FlowerOfLife",
	PlatonicSolids:     "PlatonicSolids",
	SpiralOfTheodorus:  "SpiralOfTheodorus",
	MetatronsCube:      "MetatronsCube",
	SeedOfLife:         "SeedOfLife",
	FibonacciSequence:  "FibonacciSequence",
	GoldenSpiral:       "GoldenSpiral",
	MetallicMeans:      "MetallicMeans",
	ContinuedFraction:  "ContinuedFraction",
	GoldenTrisection:   "GoldenTrisection",
	FareySequence:      "FareySequence",
	NobleNumbers:       "NobleNumbers",
	GoldenTriangle:     "GoldenTriangle",
	SriYantra:          "SriYantra",
	KabbalahTreeOfLife: "KabbalahTreeOfLife",
	Torus:              "Torus",
	MandelbrotSet:      "MandelbrotSet",
	SierpinskiTriangle: "SierpinskiTriangle",
	KochSnowflake:      "KochSnowflake",
	CelticKnot:         "CelticKnot",
	Labyrinth:          "Labyrinth",
	YinYang:            "YinYang",
	StarTetrahedron:    "StarTetrahedron",
	Hamsa:              "Hamsa",
	Enneagram:          "Enneagram",
	Hexagram:           "Hexagram",
	ChakraSymbols:      "ChakraSymbols",
	SpiralDynamics:     "SpiralDynamics",
	DoubleTorus:        "DoubleTorus",
	RosettePattern:     "RosettePattern",
	NestedPolygons:     "NestedPolygons",
}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Unknown"
	}
	return names[s]
}

// Valid reports whether s is a catalogued scheme.
func (s Scheme) Valid() bool {
	return s >= 0 && int(s) < len(names)
}

// All returns every scheme in catalogue order.
func All() []Scheme {
	all := make([]Scheme, len(names))
	for i := range names {
		all[i] = Scheme(i)
	}
	return all
}

// Names returns every scheme name in catalogue order.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Parse resolves a scheme name case-insensitively. Unknown names yield an
// UnknownSchemeError with the closest fuzzy matches.
func Parse(name string) (Scheme, error) {
	trimmed := strings.TrimSpace(name)
	normalized := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(trimmed))
	for i, n := range names {
		if strings.ToLower(n) == normalized {
			return Scheme(i), nil
		}
	}

	return Monochromatic, &themeerr.UnknownSchemeError{Name: trimmed, Suggestions: Suggest(trimmed, 3)}
}

// Suggest returns up to limit scheme names that fuzzy-match query, best first.
func Suggest(query string, limit int) []string {
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, names[:])

	var out []string
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler so schemes serialize by name.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
