package modal

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/ui"
)

// SelectOption is one choice with an optional description.
type SelectOption struct {
	Value       string
	Description string
}

// SelectModal picks one of a short list of options. Digits 1-9 pick
// directly.
type SelectModal struct {
	id       string
	title    string
	options  []SelectOption
	selected int
	done     bool
	result   string
	keys     selectKeyMap
}

type selectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Digit  key.Binding
}

// NewSelectModal creates a selection modal with current preselected. id is
// echoed in the result.
func NewSelectModal(id, title string, options []SelectOption, current string) *SelectModal {
	m := &SelectModal{
		id:      id,
		title:   title,
		options: options,
		keys: selectKeyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k")),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Enter:  key.NewBinding(key.WithKeys("enter")),
			Escape: key.NewBinding(key.WithKeys("esc")),
			Digit:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
		},
	}

	for i, opt := range options {
		if opt.Value == current {
			m.selected = i
		}
	}

	return m
}

// Update handles input for the select modal.
func (m *SelectModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.selected = max(m.selected-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.selected = min(m.selected+1, len(m.options)-1)
	case key.Matches(keyMsg, m.keys.Digit):
		n, _ := strconv.Atoi(keyMsg.String())
		if n > len(m.options) {
			return m, nil
		}
		m.selected = n - 1
		return m, m.choose()
	case key.Matches(keyMsg, m.keys.Enter):
		return m, m.choose()
	case key.Matches(keyMsg, m.keys.Escape):
		m.done = true
	}

	return m, nil
}

func (m *SelectModal) choose() tea.Cmd {
	m.done = true
	if len(m.options) == 0 {
		return nil
	}
	m.result = m.options[m.selected].Value

	id, value := m.id, m.result
	return func() tea.Msg {
		return SelectResultMsg{ID: id, Value: value}
	}
}

// View renders the select modal.
func (m *SelectModal) View() string {
	s := ui.TitleStyle.Render(m.title) + "\n\n"

	for i, opt := range m.options {
		label := strconv.Itoa(i+1) + ". " + opt.Value
		if i == m.selected {
			s += ui.SelectedStyle.Render("> " + label)
		} else {
			s += ui.NormalStyle.Render("  " + label)
		}
		if opt.Description != "" {
			s += "  " + ui.SubtitleStyle.Render(opt.Description)
		}
		s += "\n"
	}

	s += "\n" + ui.HelpStyle.Render("[↑↓] navigate  [1-9] pick  [enter] select  [esc] cancel")

	return s
}

// IsDone returns true if the modal is finished.
func (m *SelectModal) IsDone() bool {
	return m.done
}

// Result returns the chosen value, or "" if cancelled.
func (m *SelectModal) Result() any {
	return m.result
}

// SelectResultMsg is sent when a selection is made.
type SelectResultMsg struct {
	ID    string
	Value string
}
