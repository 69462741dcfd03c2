package modal

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/ui"
)

// HexInputModal edits one role's color as hex, previewing it live.
type HexInputModal struct {
	role   string
	input  textinput.Model
	err    string
	done   bool
	result string
	keys   hexKeyMap
}

type hexKeyMap struct {
	Enter  key.Binding
	Escape key.Binding
}

// NewHexInputModal creates an editor prefilled with current.
func NewHexInputModal(role, current string) *HexInputModal {
	ti := textinput.New()
	ti.SetValue(current)
	ti.Prompt = "# "
	if len(current) > 0 && current[0] == '#' {
		ti.SetValue(current[1:])
	}
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 12

	ti.PromptStyle = ti.PromptStyle.UnsetBackground()
	ti.TextStyle = ti.TextStyle.UnsetBackground()

	return &HexInputModal{
		role:  role,
		input: ti,
		keys: hexKeyMap{
			Enter:  key.NewBinding(key.WithKeys("enter")),
			Escape: key.NewBinding(key.WithKeys("esc")),
		},
	}
}

func (m *HexInputModal) value() string {
	return "#" + m.input.Value()
}

// Update handles input for the hex modal.
func (m *HexInputModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Enter):
			c, err := color.Parse(m.value())
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.result = c.Hex()
			m.done = true

			role, hex := m.role, m.result
			return m, func() tea.Msg {
				return HexResultMsg{Role: role, Value: hex}
			}
		case key.Matches(keyMsg, m.keys.Escape):
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = ""
	return m, cmd
}

// View renders the hex modal.
func (m *HexInputModal) View() string {
	s := ui.TitleStyle.Render("Edit "+m.role) + "\n\n"
	s += m.input.View()

	if c, err := color.Parse(m.value()); err == nil {
		s += "  " + ui.Swatch(c.Hex(), 6)
	}
	s += "\n"

	if m.err != "" {
		s += "\n" + ui.ErrorStyle.Render(m.err) + "\n"
	}

	s += "\n" + ui.HelpStyle.Render("[enter] apply  [esc] cancel")
	return s
}

// IsDone returns true if the modal is finished.
func (m *HexInputModal) IsDone() bool {
	return m.done
}

// Result returns the normalized hex, or "" if cancelled.
func (m *HexInputModal) Result() any {
	return m.result
}

// HexResultMsg is sent when a valid color is entered.
type HexResultMsg struct {
	Role  string
	Value string
}
