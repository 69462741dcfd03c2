package modal

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/ui"
)

const pickerRows = 8

// PickerResultMsg is sent when an item is picked.
type PickerResultMsg struct {
	ID    string
	Value string
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// PickerModal is a fuzzy-filtered list.
type PickerModal struct {
	id      string
	title   string
	input   textinput.Model
	items   []string
	matches []string
	cursor  int
	done    bool
	result  string
	keys    pickerKeyMap
}

// NewPickerModal lists items in the given order until the user types.
func NewPickerModal(id, title string, items []string) *PickerModal {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "/ "
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	// Remove backgrounds from textinput styles to prevent visual artifacts in modal
	ti.PromptStyle = ti.PromptStyle.UnsetBackground()
	ti.TextStyle = ti.TextStyle.UnsetBackground()
	ti.PlaceholderStyle = ti.PlaceholderStyle.UnsetBackground()
	ti.Cursor.Style = ti.Cursor.Style.UnsetBackground()

	m := &PickerModal{
		id:    id,
		title: title,
		input: ti,
		items: items,
		keys: pickerKeyMap{
			Up:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
			Down:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
			Enter:  key.NewBinding(key.WithKeys("enter")),
			Escape: key.NewBinding(key.WithKeys("esc")),
		},
	}
	m.updateMatches()

	return m
}

func (m *PickerModal) updateMatches() {
	m.matches = ui.ApplyFuzzyFilter(m.input.Value(), m.items)
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

// Update handles input for the picker.
func (m *PickerModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Enter):
			if len(m.matches) == 0 {
				return m, nil
			}
			m.result = m.matches[m.cursor]
			m.done = true

			id, value := m.id, m.result
			return m, func() tea.Msg {
				return PickerResultMsg{ID: id, Value: value}
			}
		case key.Matches(keyMsg, m.keys.Escape):
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateMatches()

	return m, cmd
}

// View renders the picker.
func (m *PickerModal) View() string {
	s := ui.TitleStyle.Render(m.title) + "\n\n"
	s += m.input.View() + "\n\n"

	matchText := "Matches: " + strconv.Itoa(len(m.matches)) + "/" + strconv.Itoa(len(m.items))
	s += ui.SubtitleStyle.Render(matchText) + "\n\n"

	start := 0
	if m.cursor >= pickerRows {
		start = m.cursor - pickerRows + 1
	}
	end := min(start+pickerRows, len(m.matches))

	for i := start; i < end; i++ {
		if i == m.cursor {
			s += ui.SelectedStyle.Render("> "+m.matches[i]) + "\n"
		} else {
			s += ui.NormalStyle.Render("  "+m.matches[i]) + "\n"
		}
	}

	if rest := len(m.matches) - end; rest > 0 {
		s += ui.SubtitleStyle.Render("  ...and "+strconv.Itoa(rest)+" more") + "\n"
	}

	s += "\n" + ui.HelpStyle.Render("[↑↓] navigate  [enter] pick  [esc] cancel")

	return s
}

// IsDone returns true if the modal is finished.
func (m *PickerModal) IsDone() bool {
	return m.done
}

// Result returns the picked item, or "" if cancelled.
func (m *PickerModal) Result() any {
	return m.result
}
