package scheme

import (
	"sort"
	"strings"
)

// Preset is a named base hue and scheme pairing.
type Preset struct {
	Name    string  `yaml:"name" json:"name"`
	BaseHue float64 `yaml:"base_hue" json:"baseHue"`
	Scheme  Scheme  `yaml:"scheme" json:"scheme"`
}

var builtinPresets = []Preset{
	{Name: "vscode", BaseHue: 210, Scheme: Analogous},
	{Name: "monokai", BaseHue: 70, Scheme: Complementary},
	{Name: "solarized", BaseHue: 45, Scheme: Triadic},
	{Name: "nord", BaseHue: 220, Scheme: Analogous},
	{Name: "dracula", BaseHue: 260, Scheme: SplitComplementary},
}

// Presets returns the built-in presets merged with extra. Entries in extra
// replace built-ins of the same name. The result is sorted by name.
func Presets(extra ...Preset) []Preset {
	byName := make(map[string]Preset, len(builtinPresets)+len(extra))
	for _, p := range builtinPresets {
		byName[p.Name] = p
	}
	for _, p := range extra {
		byName[strings.ToLower(p.Name)] = Preset{Name: strings.ToLower(p.Name), BaseHue: p.BaseHue, Scheme: p.Scheme}
	}

	out := make([]Preset, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindPreset looks a preset up by name.
func FindPreset(name string, presets []Preset) (Preset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
