// Package modal implements the editor's stacked dialogs.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyleking/lazytheme/internal/ui"
)

// Context represents a modal that can be pushed onto the stack.
type Context interface {
	Update(msg tea.Msg) (Context, tea.Cmd)
	View() string
	IsDone() bool
	Result() any
}

// Stack holds open dialogs. Only the top one receives input.
type Stack struct {
	contexts []Context
	width    int
	height   int
}

// NewStack creates a new empty modal stack.
func NewStack() *Stack {
	return &Stack{}
}

// SetSize records the screen the overlay is centered on.
func (s *Stack) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Push opens ctx above the current dialog.
func (s *Stack) Push(ctx Context) {
	s.contexts = append(s.contexts, ctx)
}

// Pop removes and returns the top context, or nil.
func (s *Stack) Pop() Context {
	top := s.Current()
	if top != nil {
		s.contexts = s.contexts[:len(s.contexts)-1]
	}
	return top
}

// Current returns the top context, or nil.
func (s *Stack) Current() Context {
	if len(s.contexts) == 0 {
		return nil
	}
	return s.contexts[len(s.contexts)-1]
}

// HasActive reports whether any dialog is open.
func (s *Stack) HasActive() bool {
	return len(s.contexts) > 0
}

// Len returns the number of stacked contexts.
func (s *Stack) Len() int {
	return len(s.contexts)
}

// Clear closes every dialog.
func (s *Stack) Clear() {
	s.contexts = nil
}

// Update forwards msg to the top dialog and pops it once it is done.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Current()
	if top == nil {
		return nil
	}

	next, cmd := top.Update(msg)
	if next.IsDone() {
		s.Pop()
	} else {
		s.contexts[len(s.contexts)-1] = next
	}

	return cmd
}

// Render draws the top dialog centered over background.
func (s *Stack) Render(background string) string {
	top := s.Current()
	if top == nil {
		return background
	}

	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(ui.PrimaryColor).
		Padding(1, 2).
		Background(ui.ModalBgColor).
		Render(top.View())

	return overlay(background, frame, s.width, s.height)
}

// overlay splices fg into bg at the center of a width×height screen. Cuts
// are made on display cells so styled background lines stay intact.
func overlay(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	row := max((height-len(fgLines))/2, 0)
	col := max((width-lipgloss.Width(fg))/2, 0)

	for i, line := range fgLines {
		r := row + i
		if r >= len(bgLines) {
			break
		}

		base := bgLines[r]
		baseWidth := ansi.StringWidth(base)
		if baseWidth < col {
			base += strings.Repeat(" ", col-baseWidth)
		}

		left := ansi.Truncate(base, col, "")
		right := ansi.TruncateLeft(base, col+ansi.StringWidth(line), "")
		bgLines[r] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
