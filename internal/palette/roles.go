package palette

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
)

// Kind identifies one of the three role vocabularies.
type Kind int

const (
	KindUI Kind = iota
	KindSyntax
	KindANSI
)

func (k Kind) String() string {
	switch k {
	case KindUI:
		return "ui"
	case KindSyntax:
		return "syntax"
	case KindANSI:
		return "ansi"
	}
	return "unknown"
}

// Floor selects the readability rule applied to a role.
type Floor int

const (
	// FloorStandard enforces the minimum contrast.
	FloorStandard Floor = iota
	// FloorRelaxed enforces the low contrast used for surfaces and borders.
	FloorRelaxed
	// FloorComment tunes into the comment contrast band.
	FloorComment
	// FloorExempt skips readability entirely.
	FloorExempt
)

const (
	// SlotRandom picks a random scheme hue on every synthesis.
	SlotRandom = -1

	overlayAlpha uint8 = 0x70
)

// RoleSpec describes how a role is synthesized.
type RoleSpec struct {
	Name string

	// Slot indexes the hue pool modulo its length, or SlotRandom.
	Slot int
	// Follows names an earlier role whose hue this role shares.
	Follows string
	// FixedHue pins the hue when HasFixedHue is set.
	FixedHue    float64
	HasFixedHue bool
	HueOffset   float64

	SatMul float64
	// DarkL and LightL are the base lightness per theme polarity.
	DarkL  float64
	LightL float64

	Floor Floor
	Alpha uint8

	// Bright derives the role from another ANSI role by a fixed boost.
	Bright string
	// Achromatic keeps saturation at zero.
	Achromatic bool
	// Constant is a fixed hex value, never generated.
	Constant string
	// Harmonize pulls a fixed hue toward the nearest pool hue.
	Harmonize bool
}

func (r RoleSpec) lightness(isDark bool) float64 {
	if isDark {
		return r.DarkL
	}
	return r.LightL
}

// UI role names.
const (
	BG1           = "BG1"
	BG2           = "BG2"
	BG3           = "BG3"
	FG1           = "FG1"
	FG2           = "FG2"
	FG3           = "FG3"
	AC1           = "AC1"
	AC2           = "AC2"
	Border        = "BORDER"
	StatusInfo    = "INFO"
	StatusError   = "ERROR"
	StatusWarning = "WARNING"
	StatusSuccess = "SUCCESS"
	LineHighlight = "lineHighlight"
	Selection     = "selection"
	FindMatch     = "findMatch"
)

// Syntax role names referenced outside the table.
const (
	Comment = "comment"
	Keyword = "keyword"
)

var uiRoles = []RoleSpec{
	{Name: BG1, Slot: 0, SatMul: 0.10, DarkL: 10, LightL: 96, Floor: FloorExempt},
	{Name: BG2, Slot: 0, SatMul: 0.15, DarkL: 14, LightL: 92, Floor: FloorRelaxed},
	{Name: BG3, Slot: 0, SatMul: 0.20, DarkL: 18, LightL: 88, Floor: FloorRelaxed},
	{Name: FG1, Slot: 0, SatMul: 0.05, DarkL: 90, LightL: 12},
	{Name: FG2, Slot: 0, SatMul: 0.10, DarkL: 78, LightL: 25},
	{Name: FG3, Slot: 0, SatMul: 0.05, DarkL: 10, LightL: 96, Floor: FloorExempt},
	{Name: AC1, Slot: 1, SatMul: 1.2, DarkL: 60, LightL: 42},
	{Name: AC2, Slot: 2, SatMul: 1.1, DarkL: 65, LightL: 38},
	{Name: Border, Slot: 0, SatMul: 0.20, DarkL: 22, LightL: 80, Floor: FloorRelaxed},
	{Name: StatusInfo, HasFixedHue: true, FixedHue: 210, SatMul: 1.0, DarkL: 65, LightL: 40},
	{Name: StatusError, HasFixedHue: true, FixedHue: 0, SatMul: 1.2, DarkL: 65, LightL: 38},
	{Name: StatusWarning, HasFixedHue: true, FixedHue: 40, SatMul: 1.1, DarkL: 65, LightL: 35},
	{Name: StatusSuccess, HasFixedHue: true, FixedHue: 120, SatMul: 0.9, DarkL: 55, LightL: 30},
	{Name: LineHighlight, Slot: 0, SatMul: 0.30, DarkL: 15, LightL: 90, Floor: FloorExempt, Alpha: overlayAlpha},
	{Name: Selection, Slot: 3, SatMul: 0.40, DarkL: 25, LightL: 80, Floor: FloorExempt, Alpha: overlayAlpha},
	{Name: FindMatch, Slot: 1, SatMul: 0.60, DarkL: 30, LightL: 75, Floor: FloorExempt, Alpha: overlayAlpha},
}

var syntaxRoles = []RoleSpec{
	{Name: Keyword, Slot: 0, SatMul: 1.0, DarkL: 70, LightL: 40},
	{Name: Comment, Slot: SlotRandom, SatMul: 0.5, DarkL: 58, LightL: 42, Floor: FloorComment},
	{Name: "function", Slot: SlotRandom, SatMul: 1.0, DarkL: 80, LightL: 35},
	{Name: "functionCall", Follows: "function", HueOffset: 15, SatMul: 0.95, DarkL: 78, LightL: 37},
	{Name: "variable", Slot: 0, HueOffset: 30, SatMul: 0.8, DarkL: 75, LightL: 40},
	{Name: "variableDeclaration", Follows: "variable", HueOffset: 15, SatMul: 0.85, DarkL: 77, LightL: 38},
	{Name: "variableProperty", Follows: "variable", HueOffset: -15, SatMul: 0.75, DarkL: 73, LightL: 42},
	{Name: "type", Slot: SlotRandom, SatMul: 1.0, DarkL: 70, LightL: 45},
	{Name: "typeParameter", Follows: "type", HueOffset: -15, SatMul: 0.95, DarkL: 68, LightL: 47},
	{Name: "constant", Slot: SlotRandom, SatMul: 1.1, DarkL: 75, LightL: 40},
	{Name: "class", Slot: SlotRandom, SatMul: 1.0, DarkL: 70, LightL: 45},
	{Name: "parameter", Slot: 1, HueOffset: 20, SatMul: 0.8, DarkL: 75, LightL: 40},
	{Name: "property", Slot: 1, HueOffset: -20, SatMul: 0.9, DarkL: 75, LightL: 40},
	{Name: "operator", Slot: 0, HueOffset: 180, SatMul: 0.6, DarkL: 80, LightL: 35},
	{Name: "storage", Slot: SlotRandom, SatMul: 0.9, DarkL: 70, LightL: 40},
	{Name: "other", Slot: SlotRandom, SatMul: 1.1, DarkL: 69, LightL: 47},
	{Name: "language", Slot: SlotRandom, SatMul: 1.25, DarkL: 63, LightL: 42},
	{Name: "punctuation", Slot: 0, SatMul: 0.4, DarkL: 85, LightL: 30},
	{Name: "punctuationQuote", Follows: "punctuation", HueOffset: 10, SatMul: 0.4, DarkL: 87, LightL: 32},
	{Name: "punctuationBrace", Follows: "punctuation", HueOffset: -10, SatMul: 0.45, DarkL: 82, LightL: 27},
	{Name: "punctuationComma", Follows: "punctuation", SatMul: 0.4, DarkL: 80, LightL: 25},
	{Name: "selector", Slot: SlotRandom, SatMul: 1.0, DarkL: 70, LightL: 45},
	{Name: "support", Slot: SlotRandom, SatMul: 1.2, DarkL: 65, LightL: 50},
	{Name: "modifier", Slot: SlotRandom, SatMul: 0.9, DarkL: 75, LightL: 45},
	{Name: "control", Slot: SlotRandom, SatMul: 1.2, DarkL: 65, LightL: 50},
	{Name: "controlFlow", Follows: "control", HueOffset: 15, SatMul: 1.15, DarkL: 67, LightL: 48},
	{Name: "controlImport", Follows: "control", HueOffset: -15, SatMul: 1.1, DarkL: 63, LightL: 52},
	{Name: "tag", Slot: SlotRandom, SatMul: 1.0, DarkL: 75, LightL: 40},
	{Name: "tagPunctuation", Follows: "tag", SatMul: 1.0, DarkL: 75, LightL: 40},
	{Name: "attribute", Slot: SlotRandom, SatMul: 0.9, DarkL: 80, LightL: 35},
	{Name: "unit", Slot: SlotRandom, SatMul: 1.2, DarkL: 65, LightL: 50},
	{Name: "datetime", Slot: SlotRandom, SatMul: 1.05, DarkL: 70, LightL: 57},
}

var ansiRoles = []RoleSpec{
	{Name: "Black", Constant: "#000000", Floor: FloorExempt},
	{Name: "Red", Harmonize: true, HasFixedHue: true, FixedHue: 0, SatMul: 1.0, DarkL: 60, LightL: 40},
	{Name: "Green", Harmonize: true, HasFixedHue: true, FixedHue: 120, SatMul: 1.0, DarkL: 60, LightL: 40},
	{Name: "Yellow", Harmonize: true, HasFixedHue: true, FixedHue: 45, SatMul: 1.0, DarkL: 60, LightL: 40},
	{Name: "Blue", Harmonize: true, HasFixedHue: true, FixedHue: 240, SatMul: 1.0, DarkL: 60, LightL: 40},
	{Name: "Magenta", Harmonize: true, HasFixedHue: true, FixedHue: 300, SatMul: 1.0, DarkL: 60, LightL: 40},
	{Name: "Cyan", Harmonize: true, HasFixedHue: true, FixedHue: 180, SatMul: 1.0, DarkL: 60, LightL: 40},
	{Name: "White", HasFixedHue: true, FixedHue: 40, SatMul: 0.2, DarkL: 92, LightL: 92},
	{Name: "BrightBlack", Achromatic: true, DarkL: 25, LightL: 25, Floor: FloorExempt},
	{Name: "BrightRed", Bright: "Red"},
	{Name: "BrightGreen", Bright: "Green"},
	{Name: "BrightYellow", Bright: "Yellow"},
	{Name: "BrightBlue", Bright: "Blue"},
	{Name: "BrightMagenta", Bright: "Magenta"},
	{Name: "BrightCyan", Bright: "Cyan"},
	{Name: "BrightWhite", HasFixedHue: true, FixedHue: 40, SatMul: 0.1, DarkL: 98, LightL: 98},
}

type vocabulary struct {
	kind   Kind
	roles  []RoleSpec
	index  map[string]int
	folded map[string]string
	jitter jitter
}

func newVocabulary(kind Kind, roles []RoleSpec, j jitter) *vocabulary {
	v := &vocabulary{
		kind:   kind,
		roles:  roles,
		index:  make(map[string]int, len(roles)),
		folded: make(map[string]string, len(roles)),
		jitter: j,
	}
	for i, r := range roles {
		v.index[r.Name] = i
		v.folded[strings.ToLower(r.Name)] = r.Name
	}
	return v
}

func (v *vocabulary) spec(name string) (RoleSpec, bool) {
	i, ok := v.index[name]
	if !ok {
		return RoleSpec{}, false
	}
	return v.roles[i], true
}

func (v *vocabulary) names() []string {
	out := make([]string, len(v.roles))
	for i, r := range v.roles {
		out[i] = r.Name
	}
	return out
}

var (
	uiVocabulary     = newVocabulary(KindUI, uiRoles, jitter{hue: 5, sat: 10, light: 5})
	syntaxVocabulary = newVocabulary(KindSyntax, syntaxRoles, jitter{hue: 10, sat: 5, light: 5})
	ansiVocabulary   = newVocabulary(KindANSI, ansiRoles, jitter{hue: 15, sat: 15, light: 10})
)

func vocabularyFor(k Kind) *vocabulary {
	switch k {
	case KindSyntax:
		return syntaxVocabulary
	case KindANSI:
		return ansiVocabulary
	}
	return uiVocabulary
}

// Roles returns the role names of a vocabulary in synthesis order.
func Roles(k Kind) []string {
	return vocabularyFor(k).names()
}

// Spec returns the synthesis rule for a role.
func Spec(k Kind, name string) (RoleSpec, bool) {
	return vocabularyFor(k).spec(name)
}

// RoleRef names a role within its vocabulary.
type RoleRef struct {
	Kind Kind
	Name string
}

func (r RoleRef) String() string {
	if r.Kind == KindANSI {
		return "ansi" + r.Name
	}
	return r.Name
}

// ResolveRole maps a user-supplied key onto a role. Keys prefixed with
// "ansi" address ANSI roles; otherwise UI names are tried before syntax
// names. Matching is case-insensitive.
func ResolveRole(key string) (RoleRef, error) {
	trimmed := strings.TrimSpace(key)
	folded := strings.ToLower(trimmed)

	if rest, ok := strings.CutPrefix(folded, "ansi"); ok && rest != "" {
		if name, ok := ansiVocabulary.folded[strings.TrimLeft(rest, ".:_-")]; ok {
			return RoleRef{Kind: KindANSI, Name: name}, nil
		}
	}
	if name, ok := uiVocabulary.folded[folded]; ok {
		return RoleRef{Kind: KindUI, Name: name}, nil
	}
	if name, ok := syntaxVocabulary.folded[folded]; ok {
		return RoleRef{Kind: KindSyntax, Name: name}, nil
	}

	return RoleRef{}, &themeerr.UnknownRoleError{Role: trimmed, Suggestions: suggestRoles(trimmed, 3)}
}

// AllRoleKeys returns every addressable role key, ANSI keys prefixed.
func AllRoleKeys() []string {
	var keys []string
	for _, k := range []Kind{KindUI, KindSyntax, KindANSI} {
		for _, name := range Roles(k) {
			keys = append(keys, RoleRef{Kind: k, Name: name}.String())
		}
	}
	return keys
}

func suggestRoles(query string, limit int) []string {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, AllRoleKeys())
	sort.Stable(matches)

	var out []string
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
