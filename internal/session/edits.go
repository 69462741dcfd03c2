package session

import (
	"github.com/kyleking/lazytheme/internal/color"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/palette"
)

// HandleColorChange sets one role directly. Malformed hex is rejected with a
// FormatError before anything changes. A new BG1 resynthesizes the syntax
// palette, respecting locks, and the ANSI palette. An ANSI edit patches only
// that role.
func (c *Controller) HandleColorChange(key, hex string) error {
	ref, err := palette.ResolveRole(key)
	if err != nil {
		return err
	}
	col, err := color.Parse(hex)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch ref.Kind {
	case palette.KindUI:
		return c.changeUI(ref.Name, col)
	case palette.KindSyntax:
		c.syntax = c.syntax.With(ref.Name, col)
	case palette.KindANSI:
		c.ansi = c.ansi.With(ref.Name, col)
	}

	c.commit("edit", "role", ref.String(), "color", col.Hex())
	return nil
}

func (c *Controller) changeUI(role string, col color.Color) error {
	spec, _ := palette.Spec(palette.KindUI, role)
	if _, ok := col.Alpha(); !ok && spec.Alpha != 0 {
		col = col.WithAlpha(spec.Alpha)
	}

	oldBG := c.background()
	ui := c.ui.With(role, col)
	syntax, ansi := c.syntax, c.ansi

	if role == palette.BG1 && !col.Equal(oldBG) {
		var err error
		syntax, err = c.synth.Syntax(palette.Request{
			Background:      col,
			Hues:            c.hues,
			Saturation:      c.opts.SyntaxSaturation,
			Locked:          c.locks.Colors(c.syntax),
			ForceRegenerate: c.opts.ForceRegenerate,
		})
		if err != nil {
			c.fail(err)
			return err
		}
		ansi, err = c.synthesizeANSI(col, c.hues, c.opts)
		if err != nil {
			c.fail(err)
			return err
		}
	}

	c.ui, c.syntax, c.ansi = ui, syntax, ansi
	c.commit("edit", "role", role, "color", col.Hex(), "dark", color.IsDark(c.background()))
	return nil
}

// ToggleColorLock flips a UI or syntax role's lock and reports the new
// state. Colors are not touched until the next regeneration.
func (c *Controller) ToggleColorLock(key string) (bool, error) {
	ref, err := palette.ResolveRole(key)
	if err != nil {
		return false, err
	}
	if ref.Kind == palette.KindANSI {
		return false, &themeerr.NotLockableError{Role: ref.String()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	locks, locked := c.locks.Toggle(ref.Name)
	c.locks = locks
	c.logger.Debug("lock toggled", "role", ref.Name, "locked", locked)
	c.publish()
	return locked, nil
}

// IsLocked reports whether a role is locked.
func (c *Controller) IsLocked(role string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locks.Has(role)
}

// SetUISaturation remaps the UI palette immediately, bypassing the
// debounce, and overrides any saturation a pending request carries. If BG1
// moves, syntax readability is restored against it and
// ANSI is resynthesized.
func (c *Controller) SetUISaturation(s float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s = color.ClampSaturation(s)
	c.opts.UISaturation = s
	if c.pending != nil {
		c.pending.partial.UISaturation = nil
	}

	oldBG := c.background()
	ui := palette.RemapSaturation(c.ui, s, c.locks)
	bg, _ := ui.Color(palette.BG1)
	ui = c.synth.Reinforce(ui, bg, c.locks)

	syntax, ansi := c.syntax, c.ansi
	if !bg.Equal(oldBG) {
		syntax = c.synth.Reinforce(syntax, bg, c.locks)
		next, err := c.synthesizeANSI(bg, c.hues, c.opts)
		if err != nil {
			c.fail(err)
			return
		}
		ansi = next
	}

	c.ui, c.syntax, c.ansi = ui, syntax, ansi
	c.commit("ui saturation", "saturation", s)
}

// SetSyntaxSaturation remaps the syntax palette immediately, bypassing the
// debounce.
func (c *Controller) SetSyntaxSaturation(s float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s = color.ClampSaturation(s)
	c.opts.SyntaxSaturation = s
	if c.pending != nil {
		c.pending.partial.SyntaxSaturation = nil
	}

	syntax := palette.RemapSaturation(c.syntax, s, c.locks)
	c.syntax = c.synth.Reinforce(syntax, c.background(), c.locks)
	c.commit("syntax saturation", "saturation", s)
}

// RegenerateANSI resynthesizes the terminal palette against the current BG1.
func (c *Controller) RegenerateANSI() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ansi, err := c.synthesizeANSI(c.background(), c.hues, c.opts)
	if err != nil {
		c.fail(err)
		return err
	}
	c.ansi = ansi
	c.commit("ansi")
	return nil
}
