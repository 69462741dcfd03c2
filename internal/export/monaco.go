package export

import "strings"

// MonacoRule is one token rule of a Monaco standalone theme.
type MonacoRule struct {
	Token      string `json:"token"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// MonacoTheme is the Monaco editor's standalone theme data.
type MonacoTheme struct {
	Base                string            `json:"base"`
	Inherit             bool              `json:"inherit"`
	Rules               []MonacoRule      `json:"rules"`
	Colors              map[string]string `json:"colors"`
	EncodedTokensColors []string          `json:"encodedTokensColors"`
}

// Monaco flattens a VS Code theme into Monaco rules: one rule per scope,
// with comma-separated selectors split apart.
func Monaco(t Theme) MonacoTheme {
	base := "vs-dark"
	if t.Type == "light" {
		base = "vs"
	}

	var rules []MonacoRule
	for _, tc := range t.TokenColors {
		for _, scope := range tc.Scope {
			for _, token := range strings.Split(scope, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				rules = append(rules, MonacoRule{
					Token:      token,
					Foreground: tc.Settings.Foreground,
					Background: tc.Settings.Background,
					FontStyle:  tc.Settings.FontStyle,
				})
			}
		}
	}

	colors := make(map[string]string, len(t.Colors))
	for k, v := range t.Colors {
		colors[k] = v
	}

	return MonacoTheme{
		Base:                base,
		Rules:               rules,
		Colors:              colors,
		EncodedTokensColors: []string{},
	}
}
