// Package export serializes committed palettes into editor theme formats.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/palette"
)

// DefaultName is used when a theme is exported without a name.
const DefaultName = "Generated Color Theme"

// Theme is a VS Code color theme document.
type Theme struct {
	Name                 string            `json:"name"`
	Type                 string            `json:"type"`
	SemanticClass        string            `json:"semanticClass"`
	SemanticHighlighting bool              `json:"semanticHighlighting"`
	Colors               map[string]string `json:"colors"`
	TokenColors          []TokenColor      `json:"tokenColors"`
	SemanticTokenColors  map[string]string `json:"semanticTokenColors"`
}

// TokenColor is one TextMate scope rule.
type TokenColor struct {
	Name     string        `json:"name,omitempty"`
	Scope    Scope         `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings are the style attributes of a scope rule.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Scope is a list of TextMate selectors. Theme files write it either as a
// single string or as an array.
type Scope []string

// UnmarshalJSON accepts both the string and array forms.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Scope{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("scope must be a string or an array of strings: %w", err)
	}
	*s = list
	return nil
}

// Palettes bundles the three committed palettes being exported.
type Palettes struct {
	UI     palette.Palette
	Syntax palette.Palette
	ANSI   palette.Palette
}

func (p Palettes) get(ref palette.RoleRef) color.Color {
	var src palette.Palette
	switch ref.Kind {
	case palette.KindSyntax:
		src = p.Syntax
	case palette.KindANSI:
		src = p.ANSI
	default:
		src = p.UI
	}
	c, _ := src.Color(ref.Name)
	return c
}

func (p Palettes) hex(ref palette.RoleRef) string {
	return p.get(ref).Hex()
}

// onColor picks FG1 or FG3 for text drawn on top of the role.
func (p Palettes) onColor(ref palette.RoleRef) string {
	if color.IsDark(p.get(ref)) {
		return p.hex(ui(palette.FG1))
	}
	return p.hex(ui(palette.FG3))
}

func ui(name string) palette.RoleRef     { return palette.RoleRef{Kind: palette.KindUI, Name: name} }
func syntax(name string) palette.RoleRef { return palette.RoleRef{Kind: palette.KindSyntax, Name: name} }
func ansi(name string) palette.RoleRef   { return palette.RoleRef{Kind: palette.KindANSI, Name: name} }

// VSCode builds a VS Code theme from the palettes. The theme type follows
// the polarity of BG1.
func VSCode(name string, p Palettes) Theme {
	if name == "" {
		name = DefaultName
	}

	kind := "dark"
	if !color.IsDark(p.get(ui(palette.BG1))) {
		kind = "light"
	}

	return Theme{
		Name:                 name,
		Type:                 kind,
		SemanticClass:        "theme.lazytheme",
		SemanticHighlighting: true,
		Colors:               workbenchColors(p),
		TokenColors:          tokenColors(p),
		SemanticTokenColors:  semanticTokenColors(p),
	}
}

// JSON renders the theme as indented JSON.
func (t Theme) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return data, nil
}

// ParseTheme decodes a VS Code theme document.
func ParseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("failed to decode theme: %w", err)
	}
	return t, nil
}

type workbenchKey struct {
	key   string
	ref   palette.RoleRef
	alpha uint8
	on    bool
}

var workbench = []workbenchKey{
	{key: "terminal.background", ref: ui(palette.BG1)},
	{key: "terminal.foreground", ref: ui(palette.FG1)},
	{key: "terminal.border", ref: ui(palette.Border)},
	{key: "terminal.selectionBackground", ref: ui(palette.Selection)},
	{key: "terminal.inactiveSelectionBackground", ref: ui(palette.Selection)},

	{key: "focusBorder", ref: ui(palette.Border)},
	{key: "foreground", ref: ui(palette.FG1)},
	{key: "disabledForeground", ref: syntax(palette.Comment)},
	{key: "widget.border", ref: ui(palette.Border)},
	{key: "selection.background", ref: ui(palette.AC2), alpha: 0x50},
	{key: "descriptionForeground", ref: ui(palette.FG2)},
	{key: "errorForeground", ref: ui(palette.StatusError)},

	{key: "textBlockQuote.background", ref: ui(palette.BG3)},
	{key: "textBlockQuote.border", ref: ui(palette.Border)},
	{key: "textCodeBlock.background", ref: ui(palette.BG3)},
	{key: "textLink.activeForeground", ref: ui(palette.StatusInfo)},
	{key: "textLink.foreground", ref: ui(palette.AC2)},
	{key: "textPreformat.foreground", ref: ui(palette.FG1)},
	{key: "textSeparator.foreground", ref: ui(palette.FG1)},

	{key: "button.background", ref: ui(palette.AC2), alpha: 0xdb},
	{key: "button.foreground", ref: ui(palette.AC2), on: true},
	{key: "button.hoverBackground", ref: ui(palette.AC2)},
	{key: "button.secondaryBackground", ref: ui(palette.AC1), alpha: 0xdb},
	{key: "button.secondaryForeground", ref: ui(palette.AC1), on: true},
	{key: "button.secondaryHoverBackground", ref: ui(palette.AC1)},
	{key: "checkbox.background", ref: ui(palette.BG1)},
	{key: "checkbox.foreground", ref: ui(palette.FG1)},

	{key: "dropdown.background", ref: ui(palette.BG3)},
	{key: "dropdown.border", ref: ui(palette.Border)},
	{key: "dropdown.foreground", ref: ui(palette.FG1)},

	{key: "input.background", ref: ui(palette.BG1)},
	{key: "input.foreground", ref: ui(palette.FG1)},
	{key: "input.border", ref: syntax(palette.Comment)},
	{key: "input.placeholderForeground", ref: syntax(palette.Comment)},
	{key: "inputOption.activeBorder", ref: ui(palette.AC1)},
	{key: "inputValidation.infoBorder", ref: ui(palette.StatusInfo)},
	{key: "inputValidation.warningBorder", ref: ui(palette.StatusWarning)},
	{key: "inputValidation.errorBorder", ref: ui(palette.StatusError)},

	{key: "badge.foreground", ref: ui(palette.AC2), on: true},
	{key: "badge.background", ref: ui(palette.AC2)},
	{key: "progressBar.background", ref: ui(palette.AC1)},

	{key: "list.activeSelectionBackground", ref: ui(palette.AC2), alpha: 0x70},
	{key: "list.activeSelectionForeground", ref: ui(palette.FG1)},
	{key: "list.inactiveSelectionBackground", ref: ui(palette.AC2), alpha: 0x60},
	{key: "list.inactiveSelectionForeground", ref: ui(palette.FG2)},
	{key: "list.inactiveFocusBackground", ref: ui(palette.BG2)},
	{key: "list.dropBackground", ref: ui(palette.BG3)},
	{key: "list.focusBackground", ref: ui(palette.AC2), alpha: 0x50},
	{key: "list.focusForeground", ref: ui(palette.FG1)},
	{key: "list.highlightForeground", ref: ui(palette.AC1)},
	{key: "list.hoverBackground", ref: ui(palette.AC2), alpha: 0x20},
	{key: "list.hoverForeground", ref: ui(palette.FG1)},
	{key: "list.warningForeground", ref: ui(palette.StatusWarning)},
	{key: "list.errorForeground", ref: ui(palette.StatusError)},

	{key: "activityBar.background", ref: ui(palette.BG2)},
	{key: "activityBar.inactiveForeground", ref: syntax(palette.Comment)},
	{key: "activityBar.foreground", ref: ui(palette.FG1)},
	{key: "activityBarBadge.background", ref: ui(palette.AC1)},
	{key: "activityBarBadge.foreground", ref: ui(palette.AC1), on: true},

	{key: "sideBar.background", ref: ui(palette.BG2)},
	{key: "sideBar.foreground", ref: ui(palette.FG2)},
	{key: "sideBar.border", ref: ui(palette.Border)},
	{key: "sideBarSectionHeader.background", ref: ui(palette.BG2)},
	{key: "sideBarTitle.foreground", ref: ui(palette.FG1)},

	{key: "editor.background", ref: ui(palette.BG1)},
	{key: "editor.foreground", ref: ui(palette.FG1)},
	{key: "editor.lineHighlightBackground", ref: ui(palette.LineHighlight)},
	{key: "editor.selectionBackground", ref: ui(palette.Selection)},
	{key: "editor.findMatchBackground", ref: ui(palette.FindMatch)},
	{key: "editor.findMatchHighlightBackground", ref: ui(palette.FindMatch)},
	{key: "editorLineNumber.foreground", ref: syntax(palette.Comment)},
	{key: "editorLineNumber.activeForeground", ref: ui(palette.FG1)},
	{key: "editorCursor.foreground", ref: ui(palette.AC1)},
	{key: "editorWhitespace.foreground", ref: ui(palette.BG3)},
	{key: "editorIndentGuide.background1", ref: ui(palette.BG3)},
	{key: "editorGroupHeader.tabsBackground", ref: ui(palette.BG2)},
	{key: "editorWidget.background", ref: ui(palette.BG2)},
	{key: "editorError.foreground", ref: ui(palette.StatusError)},
	{key: "editorWarning.foreground", ref: ui(palette.StatusWarning)},
	{key: "editorInfo.foreground", ref: ui(palette.StatusInfo)},

	{key: "tab.activeBackground", ref: ui(palette.BG1)},
	{key: "tab.activeForeground", ref: ui(palette.FG1)},
	{key: "tab.inactiveBackground", ref: ui(palette.BG2)},
	{key: "tab.inactiveForeground", ref: syntax(palette.Comment)},
	{key: "tab.border", ref: ui(palette.BG2)},
	{key: "tab.activeBorderTop", ref: ui(palette.AC1)},

	{key: "statusBar.background", ref: ui(palette.BG2)},
	{key: "statusBar.foreground", ref: ui(palette.FG2)},
	{key: "statusBar.border", ref: ui(palette.Border)},
	{key: "statusBar.debuggingBackground", ref: ui(palette.StatusWarning)},
	{key: "statusBarItem.remoteBackground", ref: ui(palette.AC1)},
	{key: "statusBarItem.remoteForeground", ref: ui(palette.AC1), on: true},

	{key: "titleBar.activeBackground", ref: ui(palette.BG2)},
	{key: "titleBar.activeForeground", ref: ui(palette.FG1)},
	{key: "titleBar.inactiveBackground", ref: ui(palette.BG2)},
	{key: "titleBar.inactiveForeground", ref: syntax(palette.Comment)},

	{key: "panel.background", ref: ui(palette.BG1)},
	{key: "panel.border", ref: ui(palette.Border)},
	{key: "panelTitle.activeForeground", ref: ui(palette.FG1)},
	{key: "panelTitle.inactiveForeground", ref: syntax(palette.Comment)},

	{key: "gitDecoration.addedResourceForeground", ref: ui(palette.StatusSuccess)},
	{key: "gitDecoration.modifiedResourceForeground", ref: ui(palette.StatusInfo)},
	{key: "gitDecoration.deletedResourceForeground", ref: ui(palette.StatusError)},
	{key: "gitDecoration.untrackedResourceForeground", ref: ui(palette.StatusSuccess)},
	{key: "gitDecoration.ignoredResourceForeground", ref: syntax(palette.Comment)},
	{key: "gitDecoration.conflictingResourceForeground", ref: ui(palette.StatusWarning)},

	{key: "breadcrumb.background", ref: ui(palette.BG2)},
	{key: "breadcrumb.foreground", ref: syntax(palette.Comment)},
	{key: "breadcrumb.activeForeground", ref: ui(palette.FG1)},
	{key: "breadcrumb.focusForeground", ref: ui(palette.FG1)},
	{key: "breadcrumbPicker.background", ref: ui(palette.BG2)},
}

func workbenchColors(p Palettes) map[string]string {
	colors := make(map[string]string, len(workbench)+len(palette.Roles(palette.KindANSI)))

	for _, role := range palette.Roles(palette.KindANSI) {
		colors["terminal.ansi"+role] = p.hex(ansi(role))
	}

	for _, w := range workbench {
		switch {
		case w.on:
			colors[w.key] = p.onColor(w.ref)
		case w.alpha != 0:
			colors[w.key] = p.get(w.ref).WithAlpha(w.alpha).Hex()
		default:
			colors[w.key] = p.hex(w.ref)
		}
	}

	return colors
}

type tokenRule struct {
	name      string
	scope     []string
	ref       palette.RoleRef
	fontStyle string
	noColor   bool
}

var tokenRules = []tokenRule{
	{scope: []string{"meta.tag", "string"}, ref: ui(palette.FG1)},
	{scope: []string{"meta.diff", "meta.diff.header"}, ref: syntax(palette.Comment)},
	{scope: []string{"emphasis"}, fontStyle: "italic", noColor: true},
	{scope: []string{"strong"}, fontStyle: "bold", noColor: true},
	{scope: []string{"invalid"}, ref: ui(palette.StatusError), fontStyle: "strikethrough"},
	{scope: []string{"invalid.deprecated"}, ref: ui(palette.FG1), fontStyle: "underline italic"},
	{scope: []string{"header"}, ref: syntax("constant")},
	{scope: []string{"source.ini", "source.ignore", "source"}, ref: ui(palette.FG2)},

	{scope: []string{"markup.inserted"}, ref: syntax("constant")},
	{scope: []string{"markup.deleted"}, ref: ui(palette.StatusError)},
	{scope: []string{"markup.changed"}, ref: ui(palette.StatusInfo)},
	{scope: []string{"markup.error"}, ref: ui(palette.StatusError)},
	{scope: []string{"markup.underline"}, fontStyle: "underline", noColor: true},
	{scope: []string{"markup.bold"}, ref: ui(palette.StatusWarning), fontStyle: "bold"},
	{scope: []string{"markup.heading"}, ref: ui(palette.AC1), fontStyle: "bold"},
	{scope: []string{"markup.italic"}, ref: ui(palette.FG2), fontStyle: "italic"},
	{scope: []string{"markup.inline.raw", "markup.raw.restructuredtext"}, ref: ui(palette.AC1)},
	{scope: []string{"markup.underline.link", "markup.underline.link.image", "markup.quote"}, ref: ui(palette.StatusInfo)},

	{scope: []string{"entity.name.class", "entity.name.type.class", "entity.other.inherited-class"}, ref: ui(palette.AC2)},
	{scope: []string{"entity.name.tag", "entity.other.attribute-name.parent-selector"}, ref: syntax("tag")},
	{scope: []string{"entity.name.function", "meta.function-call", "meta.method-call"}, ref: ui(palette.AC1)},
	{scope: []string{"support"}, ref: syntax("support")},
	{scope: []string{"entity.name", "variable.other.key"}, ref: ui(palette.AC1)},
	{scope: []string{"entity.name.type"}, ref: syntax("type")},
	{scope: []string{"entity.name.type.module", "entity.name.type.type-parameter"}, ref: syntax("typeParameter")},
	{scope: []string{"entity.other.attribute-name", "entity.other.attribute-name.pseudo-class.css"}, ref: syntax("attribute")},
	{scope: []string{"storage.class", "storage.type"}, ref: ui(palette.AC2)},
	{scope: []string{"storage.modifier"}, ref: syntax("modifier")},
	{scope: []string{"storage"}, ref: syntax("storage")},

	{scope: []string{"comment", "punctuation.definition.comment", "unused.comment", "wildcard.comment"}, ref: syntax(palette.Comment)},
	{scope: []string{"constant"}, ref: syntax("constant")},
	{scope: []string{"constant.other.color"}, ref: syntax("other")},
	{scope: []string{"constant.character.escape", "constant.character.string.escape", "constant.regexp"}, ref: syntax("language")},
	{scope: []string{"constant.other.date", "constant.other.timestamp"}, ref: syntax("datetime")},

	{scope: []string{"keyword"}, ref: syntax(palette.Keyword)},
	{scope: []string{"keyword.operator"}, ref: syntax("operator")},
	{scope: []string{"keyword.other.unit"}, ref: syntax("unit")},
	{scope: []string{"keyword.control", "keyword.other.template", "keyword.other.substitution"}, ref: syntax("control")},
	{scope: []string{"keyword.other.this"}, ref: syntax("constant")},
	{scope: []string{"keyword.control.import", "keyword.control.from"}, ref: syntax("controlImport")},
	{scope: []string{"keyword.control.flow", "keyword.control.loop", "keyword.control.conditional"}, ref: syntax("controlFlow")},

	{name: "Selectors in stylesheets", scope: []string{"meta.selector", "meta.attribute-selector.scss"}, ref: syntax("selector")},
	{name: "Wildcard selector in stylesheets", scope: []string{"entity.name.tag.wildcard.css", "entity.name.tag.wildcard.scss"}, ref: syntax("tagPunctuation")},

	{scope: []string{"punctuation"}, ref: syntax("punctuation")},
	{scope: []string{"punctuation.definition.string.begin", "punctuation.definition.string.end"}, ref: syntax("punctuationQuote")},
	{scope: []string{"meta.brace.round", "meta.brace.curly", "punctuation.definition.arguments.begin", "punctuation.definition.arguments.end"}, ref: syntax("punctuationBrace")},
	{scope: []string{"punctuation.separator.comma", "punctuation.separator.delimiter"}, ref: syntax("punctuationComma")},
	{scope: []string{"punctuation.definition.tag"}, ref: syntax("tagPunctuation")},

	{scope: []string{"variable"}, ref: syntax("variable")},
	{scope: []string{"variable.language", "variable.parameter.function.language.special"}, ref: syntax("language")},
	{scope: []string{"variable.other.constant"}, ref: syntax("variableDeclaration")},
	{scope: []string{"variable.parameter"}, ref: syntax("parameter")},
	{scope: []string{"variable.other.property", "support.variable.property", "variable.object.property"}, ref: syntax("variableProperty")},
	{scope: []string{"meta.object-literal.key", "support.type.property-name"}, ref: syntax("property")},
	{scope: []string{"support.function"}, ref: syntax("functionCall")},
	{scope: []string{"meta.definition.function entity.name.function"}, ref: syntax("function")},
	{scope: []string{"entity.name.type.class.declaration"}, ref: syntax("class")},

	{scope: []string{"string.regexp", "constant.other.character-class.set.regexp"}, ref: ansi("Yellow")},
	{scope: []string{"punctuation.definition.group.capture.regexp"}, ref: ansi("Red")},
	{scope: []string{"punctuation.definition.character-class.regexp"}, ref: ansi("BrightYellow")},
	{scope: []string{"punctuation.definition.group.regexp"}, ref: ansi("BrightBlue")},

	{scope: []string{"token.info-token"}, ref: ui(palette.StatusInfo)},
	{scope: []string{"token.warn-token"}, ref: ui(palette.StatusWarning)},
	{scope: []string{"token.error-token"}, ref: ui(palette.StatusError)},
	{scope: []string{"token.debug-token"}, ref: ui(palette.StatusWarning)},
}

func tokenColors(p Palettes) []TokenColor {
	out := make([]TokenColor, 0, len(tokenRules))
	for _, r := range tokenRules {
		tc := TokenColor{
			Name:     r.name,
			Scope:    append(Scope(nil), r.scope...),
			Settings: TokenSettings{FontStyle: r.fontStyle},
		}
		if !r.noColor {
			tc.Settings.Foreground = p.hex(r.ref)
		}
		out = append(out, tc)
	}
	return out
}

var semanticTokens = map[string]palette.RoleRef{
	"namespace":                        syntax("class"),
	"support":                          syntax("support"),
	"type":                             syntax("type"),
	"type.declaration":                 syntax("type"),
	"type.defaultLibrary":              syntax("type"),
	"typeParameter":                    syntax("typeParameter"),
	"interface":                        syntax("type"),
	"class":                            ui(palette.AC1),
	"class.declaration":                syntax("class"),
	"enum":                             syntax("class"),
	"enumMember":                       ui(palette.FG2),
	"struct":                           syntax("class"),
	"property":                         syntax("property"),
	"property.readonly":                syntax("property"),
	"property.declaration":             syntax("typeParameter"),
	"parameter":                        syntax("variableProperty"),
	"function":                         ui(palette.AC1),
	"function.declaration":             ui(palette.AC1),
	"method":                           syntax("functionCall"),
	"method.declaration":               syntax("function"),
	"variable":                         syntax("variable"),
	"variable.declaration":             syntax("variableDeclaration"),
	"variable.readonly":                syntax("variable"),
	"variable.readonly.defaultLibrary": syntax("variableDeclaration"),
	"decorator":                        ui(palette.AC1),
	"event":                            syntax("property"),
	"comment":                          syntax(palette.Comment),
	"string":                           ui(palette.FG1),
	"keyword":                          ui(palette.AC2),
	"number":                           syntax("constant"),
	"operator":                         syntax("operator"),
}

func semanticTokenColors(p Palettes) map[string]string {
	out := make(map[string]string, len(semanticTokens))
	for token, ref := range semanticTokens {
		out[token] = p.hex(ref)
	}
	return out
}
