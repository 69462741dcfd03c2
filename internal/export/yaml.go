package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kyleking/lazytheme/internal/palette"
)

// Dump is the plain palette listing written by the YAML exporter.
type Dump struct {
	Name   string            `yaml:"name" json:"name"`
	Type   string            `yaml:"type" json:"type"`
	UI     map[string]string `yaml:"ui" json:"ui"`
	Syntax map[string]string `yaml:"syntax" json:"syntax"`
	ANSI   map[string]string `yaml:"ansi" json:"ansi"`
}

// NewDump lists every role's hex.
func NewDump(name string, p Palettes) Dump {
	if name == "" {
		name = DefaultName
	}
	return Dump{
		Name:   name,
		Type:   VSCode(name, p).Type,
		UI:     p.UI.Hexes(),
		Syntax: p.Syntax.Hexes(),
		ANSI:   p.ANSI.Hexes(),
	}
}

// YAML renders the palettes as a YAML document with sorted keys.
func YAML(name string, p Palettes) ([]byte, error) {
	data, err := yaml.Marshal(NewDump(name, p))
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette dump: %w", err)
	}
	return data, nil
}

// ParseDump reads a YAML palette dump back into palettes.
func ParseDump(data []byte) (Palettes, error) {
	var d Dump
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Palettes{}, fmt.Errorf("failed to decode palette dump: %w", err)
	}

	ui, err := palette.FromHexes(palette.KindUI, d.UI)
	if err != nil {
		return Palettes{}, fmt.Errorf("ui: %w", err)
	}
	syntax, err := palette.FromHexes(palette.KindSyntax, d.Syntax)
	if err != nil {
		return Palettes{}, fmt.Errorf("syntax: %w", err)
	}
	ansi, err := palette.FromHexes(palette.KindANSI, d.ANSI)
	if err != nil {
		return Palettes{}, fmt.Errorf("ansi: %w", err)
	}

	return Palettes{UI: ui, Syntax: syntax, ANSI: ansi}, nil
}
