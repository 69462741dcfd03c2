package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects an export encoding.
type Format string

const (
	FormatVSCode Format = "vscode"
	FormatMonaco Format = "monaco"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
)

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatVSCode, FormatMonaco, FormatYAML, FormatJSON}
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (expected vscode, monaco, yaml or json)", s)
}

// Encode renders the palettes in format f. FormatJSON is the same listing
// as FormatYAML.
func Encode(f Format, name string, p Palettes) ([]byte, error) {
	switch f {
	case FormatVSCode:
		return VSCode(name, p).JSON()
	case FormatMonaco:
		data, err := json.MarshalIndent(Monaco(VSCode(name, p)), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode monaco theme: %w", err)
		}
		return data, nil
	case FormatYAML:
		return YAML(name, p)
	case FormatJSON:
		data, err := json.MarshalIndent(NewDump(name, p), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode palette dump: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// Extension returns the file extension for a format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yml"
	}
	return ".json"
}
