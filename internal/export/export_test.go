package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/export"
	"github.com/kyleking/lazytheme/internal/palette"
)

func defaults() export.Palettes {
	return export.Palettes{
		UI:     palette.DefaultUI(),
		Syntax: palette.DefaultSyntax(),
		ANSI:   palette.DefaultANSI(),
	}
}

func TestVSCode_Defaults(t *testing.T) {
	theme := export.VSCode("", defaults())

	if theme.Name != export.DefaultName {
		t.Errorf("name: got %q, want %q", theme.Name, export.DefaultName)
	}
	if theme.Type != "dark" {
		t.Errorf("type: got %q, want dark", theme.Type)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"editor.background", "#1e1e1e"},
		{"terminal.ansiBlack", "#000000"},
		{"terminal.ansiBrightBlue", "#3b8eea"},
		{"input.placeholderForeground", "#6a9955"},
		{"selection.background", "#0098ff50"},
		{"button.foreground", "#d4d4d4"},
		{"editor.lineHighlightBackground", "#2f313710"},
	}
	for _, tt := range tests {
		if got := theme.Colors[tt.key]; got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.key, got, tt.want)
		}
	}

	if got := theme.SemanticTokenColors["comment"]; got != "#6a9955" {
		t.Errorf("semantic comment: got %q", got)
	}
}

func TestVSCode_LightType(t *testing.T) {
	p := defaults()
	p.UI = p.UI.With(palette.BG1, color.White)

	if got := export.VSCode("x", p).Type; got != "light" {
		t.Errorf("type: got %q, want light", got)
	}
}

func TestVSCode_TokenColors(t *testing.T) {
	theme := export.VSCode("t", defaults())

	var found bool
	for _, tc := range theme.TokenColors {
		if len(tc.Scope) == 0 {
			t.Errorf("token rule without scope: %+v", tc)
		}
		if tc.Settings.Foreground == "" && tc.Settings.FontStyle == "" {
			t.Errorf("token rule without style: %v", tc.Scope)
		}
		if tc.Scope[0] == "keyword" {
			found = true
			if tc.Settings.Foreground != "#569cd6" {
				t.Errorf("keyword: got %s, want #569cd6", tc.Settings.Foreground)
			}
		}
	}
	if !found {
		t.Error("no keyword rule")
	}
}

func TestTheme_JSONRoundTrip(t *testing.T) {
	data, err := export.VSCode("round", defaults()).JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	parsed, err := export.ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if parsed.Name != "round" || parsed.Colors["editor.background"] != "#1e1e1e" {
		t.Errorf("parsed: name %q background %q", parsed.Name, parsed.Colors["editor.background"])
	}
}

func TestScope_UnmarshalString(t *testing.T) {
	var tc export.TokenColor
	if err := json.Unmarshal([]byte(`{"scope":"a, b","settings":{"foreground":"#ffffff"}}`), &tc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(tc.Scope) != 1 || tc.Scope[0] != "a, b" {
		t.Errorf("scope: got %v", tc.Scope)
	}

	if err := json.Unmarshal([]byte(`{"scope":42}`), &tc); err == nil {
		t.Error("expected error for numeric scope")
	}
}

func TestMonaco_FlattensScopes(t *testing.T) {
	theme := export.Theme{
		Type:   "dark",
		Colors: map[string]string{"editor.background": "#000000"},
		TokenColors: []export.TokenColor{
			{Scope: export.Scope{"a,b"}, Settings: export.TokenSettings{Foreground: "#111111"}},
			{Scope: export.Scope{"c", "d"}, Settings: export.TokenSettings{FontStyle: "bold"}},
			{Scope: export.Scope{"e"}, Settings: export.TokenSettings{Foreground: "#222222"}},
		},
	}

	m := export.Monaco(theme)
	if m.Base != "vs-dark" || m.Inherit {
		t.Errorf("base: got %s inherit %v", m.Base, m.Inherit)
	}

	var tokens []string
	for _, r := range m.Rules {
		tokens = append(tokens, r.Token)
	}
	if got := strings.Join(tokens, " "); got != "a b c d e" {
		t.Errorf("tokens: got %q, want %q", got, "a b c d e")
	}
	if m.Rules[1].Foreground != "#111111" || m.Rules[3].FontStyle != "bold" {
		t.Errorf("settings not carried: %+v", m.Rules)
	}
	if m.Colors["editor.background"] != "#000000" {
		t.Error("colors not copied")
	}

	theme.Type = "light"
	if got := export.Monaco(theme).Base; got != "vs" {
		t.Errorf("light base: got %s, want vs", got)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	p := defaults()

	data, err := export.YAML("dump", p)
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(string(data), "BG1: '#1e1e1e'") && !strings.Contains(string(data), `BG1: "#1e1e1e"`) {
		t.Errorf("dump missing BG1:\n%s", data)
	}

	back, err := export.ParseDump(data)
	if err != nil {
		t.Fatalf("ParseDump: %v", err)
	}
	if !back.UI.Equal(p.UI) || !back.Syntax.Equal(p.Syntax) || !back.ANSI.Equal(p.ANSI) {
		t.Error("palettes differ after round trip")
	}
}

func TestParseDump_MissingRole(t *testing.T) {
	if _, err := export.ParseDump([]byte("ui:\n  BG1: '#000000'\n")); err == nil {
		t.Error("expected error for incomplete dump")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{"vscode", export.FormatVSCode, false},
		{" YAML ", export.FormatYAML, false},
		{"monaco", export.FormatMonaco, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		got, err := export.ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q): got %q, %v", tt.in, got, err)
		}
	}
}

func TestEncode_AllFormats(t *testing.T) {
	for _, f := range export.Formats() {
		data, err := export.Encode(f, "enc", defaults())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s: empty output", f)
		}
		if f != export.FormatYAML && !json.Valid(data) {
			t.Errorf("%s: invalid JSON", f)
		}
	}
}
