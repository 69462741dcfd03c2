// Package palette synthesizes the UI, syntax and ANSI role palettes from a
// hue pool and keeps them readable against the editor background.
package palette

import (
	"maps"
	"slices"

	"github.com/kyleking/lazytheme/internal/color"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
)

// Palette is an immutable mapping from the roles of one vocabulary to
// colors. Every role of the vocabulary is present in a non-zero Palette.
type Palette struct {
	kind   Kind
	colors map[string]color.Color
}

func newPalette(kind Kind, colors map[string]color.Color) Palette {
	return Palette{kind: kind, colors: colors}
}

// FromHexes builds a palette from role→hex pairs. Every role of the
// vocabulary must be present.
func FromHexes(kind Kind, hexes map[string]string) (Palette, error) {
	vocab := vocabularyFor(kind)
	colors := make(map[string]color.Color, len(vocab.roles))

	for name, hex := range hexes {
		if _, ok := vocab.spec(name); !ok {
			return Palette{}, &themeerr.UnknownRoleError{Role: name, Suggestions: suggestRoles(name, 3)}
		}
		c, err := color.Parse(hex)
		if err != nil {
			return Palette{}, err
		}
		colors[name] = c
	}

	for _, spec := range vocab.roles {
		if _, ok := colors[spec.Name]; !ok {
			return Palette{}, &themeerr.SynthesisError{Palette: kind.String(), Reason: "missing role " + spec.Name}
		}
	}

	return newPalette(kind, colors), nil
}

func mustFromHexes(kind Kind, hexes map[string]string) Palette {
	p, err := FromHexes(kind, hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns the palette's vocabulary.
func (p Palette) Kind() Kind {
	return p.kind
}

// IsZero reports whether the palette holds no colors.
func (p Palette) IsZero() bool {
	return len(p.colors) == 0
}

// Color returns a role's color.
func (p Palette) Color(role string) (color.Color, bool) {
	c, ok := p.colors[role]
	return c, ok
}

// Hex returns a role's hex string, or "" when the role is absent.
func (p Palette) Hex(role string) string {
	c, ok := p.colors[role]
	if !ok {
		return ""
	}
	return c.Hex()
}

// Roles returns the palette's roles in vocabulary order.
func (p Palette) Roles() []string {
	return vocabularyFor(p.kind).names()
}

// Hexes returns a copy of the palette as role→hex.
func (p Palette) Hexes() map[string]string {
	out := make(map[string]string, len(p.colors))
	for role, c := range p.colors {
		out[role] = c.Hex()
	}
	return out
}

// With returns a copy of p with role set to c.
func (p Palette) With(role string, c color.Color) Palette {
	colors := maps.Clone(p.colors)
	if colors == nil {
		colors = make(map[string]color.Color, 1)
	}
	colors[role] = c
	return newPalette(p.kind, colors)
}

// Equal compares two palettes role by role on their hex output.
func (p Palette) Equal(other Palette) bool {
	if p.kind != other.kind || len(p.colors) != len(other.colors) {
		return false
	}
	for role, c := range p.colors {
		o, ok := other.colors[role]
		if !ok || !c.Equal(o) {
			return false
		}
	}
	return true
}

// Diff returns the roles whose hex differs between p and other, sorted.
func (p Palette) Diff(other Palette) []string {
	seen := make(map[string]bool)
	var out []string
	for role, c := range p.colors {
		seen[role] = true
		if o, ok := other.colors[role]; !ok || !c.Equal(o) {
			out = append(out, role)
		}
	}
	for role := range other.colors {
		if !seen[role] {
			out = append(out, role)
		}
	}
	slices.Sort(out)
	return out
}

// LockSet is the set of UI and syntax roles protected from regeneration.
type LockSet map[string]struct{}

// NewLockSet builds a set from role names.
func NewLockSet(roles ...string) LockSet {
	s := make(LockSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether role is locked.
func (s LockSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// Toggle returns a copy with role's membership flipped and the new state.
func (s LockSet) Toggle(role string) (LockSet, bool) {
	out := s.Clone()
	if out.Has(role) {
		delete(out, role)
		return out, false
	}
	out[role] = struct{}{}
	return out, true
}

// Clone returns an independent copy.
func (s LockSet) Clone() LockSet {
	out := make(LockSet, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}

// Names returns the locked roles sorted.
func (s LockSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Colors returns the current colors of the locked roles present in p.
func (s LockSet) Colors(p Palette) map[string]color.Color {
	out := make(map[string]color.Color)
	for role := range s {
		if c, ok := p.colors[role]; ok {
			out[role] = c
		}
	}
	return out
}
