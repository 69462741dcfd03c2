package modal

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/ui"
)

const errorWidth = 60

var dismissKeys = key.NewBinding(
	key.WithKeys("esc", "q", "enter"),
	key.WithHelp("enter/esc", "dismiss"),
)

// ErrorModal reports a failed operation. Errors built with
// NewErrorModalFromErr also list their causes and any suggestion.
type ErrorModal struct {
	title  string
	lines  []string
	causes []string
	hint   string
	done   bool
}

// NewErrorModal shows a plain message.
func NewErrorModal(title, message string) *ErrorModal {
	return &ErrorModal{title: title, lines: strings.Split(message, "\n")}
}

// NewErrorModalFromErr shows err, the distinct messages of its wrapped
// causes, and the first suggestion found in the chain.
func NewErrorModalFromErr(title string, err error) *ErrorModal {
	m := NewErrorModal(title, err.Error())
	m.causes = causes(err)
	m.hint = themeerr.GetSuggestion(err)
	return m
}

// causes walks the single-wrap chain below err. A cause whose text is
// already part of its parent's message adds nothing and is skipped.
func causes(err error) []string {
	var out []string
	parent := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		text := cause.Error()
		if !strings.Contains(parent, text) {
			out = append(out, text)
		}
		parent = text
	}
	return out
}

// Update closes the modal on any dismiss key.
func (m *ErrorModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, dismissKeys) {
		m.done = true
	}
	return m, nil
}

// View renders the error modal.
func (m *ErrorModal) View() string {
	body := ui.ErrorStyle.Width(errorWidth)
	note := ui.SubtitleStyle.Width(errorWidth)

	parts := []string{ui.ErrorTitleStyle.Render(m.title), "", body.Render(strings.Join(m.lines, "\n"))}
	for _, c := range m.causes {
		parts = append(parts, note.Render("caused by: "+c))
	}
	if m.hint != "" {
		parts = append(parts, "", note.Render("Hint: "+m.hint))
	}

	h := dismissKeys.Help()
	parts = append(parts, "", ui.HelpStyle.Render("["+h.Key+"] Dismiss"))

	return strings.Join(parts, "\n")
}

// IsDone reports whether the modal was dismissed.
func (m *ErrorModal) IsDone() bool {
	return m.done
}

// Result is always nil; dismissing carries no value.
func (m *ErrorModal) Result() any {
	return nil
}
