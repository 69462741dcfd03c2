package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/ui"
)

// ConfirmResultMsg carries the answer to a ConfirmModal. Cancelling with
// esc sends nothing.
type ConfirmResultMsg struct {
	ID    string
	Value bool
}

var confirmKeys = struct {
	Toggle, Yes, No, Accept, Cancel key.Binding
}{
	Toggle: key.NewBinding(key.WithKeys("left", "h", "right", "l", "tab"), key.WithHelp("←→", "select")),
	Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// ConfirmModal asks a yes/no question before an outward-facing action.
type ConfirmModal struct {
	id       string
	question string
	detail   string
	yes      bool
	answer   bool
	done     bool
}

// NewConfirmModal asks question. id is echoed in the result so callers can
// tell confirmations apart. No is preselected.
func NewConfirmModal(id, question, detail string) *ConfirmModal {
	return &ConfirmModal{id: id, question: question, detail: detail}
}

// Update handles input for the confirm modal. Left and h always move to
// Yes, right and l to No; tab flips.
func (m *ConfirmModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Toggle):
		switch keyMsg.String() {
		case "left", "h":
			m.yes = true
		case "right", "l":
			m.yes = false
		default:
			m.yes = !m.yes
		}
	case key.Matches(keyMsg, confirmKeys.Yes):
		return m, m.answerWith(true)
	case key.Matches(keyMsg, confirmKeys.No):
		return m, m.answerWith(false)
	case key.Matches(keyMsg, confirmKeys.Accept):
		return m, m.answerWith(m.yes)
	case key.Matches(keyMsg, confirmKeys.Cancel):
		m.done = true
	}

	return m, nil
}

func (m *ConfirmModal) answerWith(v bool) tea.Cmd {
	m.answer, m.done = v, true
	msg := ConfirmResultMsg{ID: m.id, Value: v}
	return func() tea.Msg { return msg }
}

// View renders the question and both buttons.
func (m *ConfirmModal) View() string {
	button := func(label string, active bool) string {
		if active {
			return ui.SelectedStyle.Render("[ " + label + " ]")
		}
		return ui.NormalStyle.Render("[ " + label + " ]")
	}

	lines := []string{ui.TitleStyle.Render(m.question)}
	if m.detail != "" {
		lines = append(lines, ui.SubtitleStyle.Render(m.detail))
	}
	lines = append(lines, "", "  "+button("Yes", m.yes)+"  "+button("No", !m.yes), "")

	var help []string
	for _, b := range []key.Binding{confirmKeys.Toggle, confirmKeys.Yes, confirmKeys.No, confirmKeys.Accept, confirmKeys.Cancel} {
		h := b.Help()
		help = append(help, "["+h.Key+"] "+h.Desc)
	}
	lines = append(lines, ui.HelpStyle.Render(strings.Join(help, "  ")))

	return strings.Join(lines, "\n")
}

// IsDone reports whether the question was answered or cancelled.
func (m *ConfirmModal) IsDone() bool {
	return m.done
}

// Result returns the answer; a cancelled modal reports false.
func (m *ConfirmModal) Result() any {
	return m.answer
}
