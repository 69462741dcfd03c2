package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyleking/lazytheme/internal/ui"
)

// HelpSection groups related bindings under a heading.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

var closeHelp = key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("?/esc", "close"))

// HelpModal lists every enabled binding, grouped by section.
type HelpModal struct {
	sections []HelpSection
	keyWidth int
	done     bool
}

// NewHelpModal creates a help modal listing sections. Disabled bindings
// are left out.
func NewHelpModal(sections []HelpSection) *HelpModal {
	m := &HelpModal{}
	for _, s := range sections {
		var enabled []key.Binding
		for _, b := range s.Bindings {
			if !b.Enabled() {
				continue
			}
			enabled = append(enabled, b)
			m.keyWidth = max(m.keyWidth, lipgloss.Width(b.Help().Key))
		}
		if len(enabled) > 0 {
			m.sections = append(m.sections, HelpSection{Title: s.Title, Bindings: enabled})
		}
	}
	return m
}

// Update closes the modal on ?, esc or q.
func (m *HelpModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, closeHelp) {
		m.done = true
	}
	return m, nil
}

// View renders the help modal.
func (m *HelpModal) View() string {
	keyCol := ui.SelectedStyle.Width(m.keyWidth + 2)

	lines := []string{ui.TitleStyle.Render("Keyboard Shortcuts")}
	for _, section := range m.sections {
		lines = append(lines, "", ui.SubtitleStyle.Render(section.Title))
		for _, b := range section.Bindings {
			h := b.Help()
			lines = append(lines, "  "+keyCol.Render(h.Key)+ui.NormalStyle.Render(h.Desc))
		}
	}

	h := closeHelp.Help()
	lines = append(lines, "", ui.HelpStyle.Render("["+h.Key+"] "+h.Desc))
	return strings.Join(lines, "\n")
}

// IsDone reports whether the modal was closed.
func (m *HelpModal) IsDone() bool {
	return m.done
}

// Result is always nil.
func (m *HelpModal) Result() any {
	return nil
}
