package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/kyleking/lazytheme/internal/ui/modal"
)

// KeyMap defines all keyboard shortcuts for the application.
type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Up       key.Binding
	Down     key.Binding

	HueDown       key.Binding
	HueUp         key.Binding
	UISatDown     key.Binding
	UISatUp       key.Binding
	SyntaxSatDown key.Binding
	SyntaxSatUp   key.Binding
	Scheme        key.Binding
	Preset        key.Binding
	Dark          key.Binding
	Few           key.Binding

	Lock           key.Binding
	Edit           key.Binding
	Randomize      key.Binding
	Regenerate     key.Binding
	RegenerateANSI key.Binding

	Copy      key.Binding
	CopyTheme key.Binding
	Export    key.Binding
	Share     key.Binding
	Chrome    key.Binding

	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		HueDown:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "hue -5")),
		HueUp:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "hue +5")),
		UISatDown:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "ui saturation -5")),
		UISatUp:       key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "ui saturation +5")),
		SyntaxSatDown: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "syntax saturation -5")),
		SyntaxSatUp:   key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "syntax saturation +5")),
		Scheme:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scheme")),
		Preset:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Dark:          key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark/light")),
		Few:           key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "few hues")),

		Lock:           key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "lock role")),
		Edit:           key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit hex")),
		Randomize:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		Regenerate:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "regenerate unlocked")),
		RegenerateANSI: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "regenerate ansi")),

		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy hex")),
		CopyTheme: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy theme json")),
		Export:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export")),
		Share:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "share gist")),
		Chrome:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "paint chrome")),

		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp returns a short list of key bindings for the help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.HueUp, k.Scheme, k.Lock, k.Randomize, k.Export, k.Quit, k.Help}
}

// FullHelp returns the full list of key bindings for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Up, k.Down},
		{k.HueDown, k.HueUp, k.UISatDown, k.UISatUp, k.SyntaxSatDown, k.SyntaxSatUp, k.Scheme, k.Preset, k.Dark, k.Few},
		{k.Lock, k.Edit, k.Randomize, k.Regenerate, k.RegenerateANSI},
		{k.Copy, k.CopyTheme, k.Export, k.Share, k.Chrome},
		{k.Quit, k.Help},
	}
}

func (k KeyMap) helpSections() []modal.HelpSection {
	titles := []string{"Navigation", "Generation", "Roles", "Output", "General"}
	groups := k.FullHelp()

	sections := make([]modal.HelpSection, len(groups))
	for i, g := range groups {
		sections[i] = modal.HelpSection{Title: titles[i], Bindings: g}
	}
	return sections
}
