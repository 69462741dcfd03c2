package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/palette"
	"github.com/kyleking/lazytheme/internal/session"
	"github.com/kyleking/lazytheme/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	statusBar := m.viewTopStatusBar()
	helpBar := m.viewHelpBar()
	bodyHeight := m.height - 2

	topHeight := (bodyHeight * 3) / 5
	bottomHeight := bodyHeight - topHeight

	paneWidth := m.width / paneCount
	lastWidth := m.width - paneWidth*(paneCount-1)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewRolePane(PaneUI, paneWidth, topHeight),
		m.viewRolePane(PaneSyntax, paneWidth, topHeight),
		m.viewRolePane(PaneANSI, lastWidth, topHeight),
	)
	preview := m.viewPreviewPane(m.width, bottomHeight)

	main := lipgloss.JoinVertical(lipgloss.Left, statusBar, top, preview, helpBar)

	if m.modalStack.HasActive() {
		return m.modalStack.Render(main)
	}

	return main
}

func (m Model) viewTopStatusBar() string {
	opts := m.snap.Requested

	parts := []string{
		fmt.Sprintf("hue %.0f", opts.BaseHue),
		opts.Scheme.String(),
		fmt.Sprintf("ui %.0f%%", opts.UISaturation),
		fmt.Sprintf("syntax %.0f%%", opts.SyntaxSaturation),
	}
	if m.snap.Dark {
		parts = append(parts, "dark")
	} else {
		parts = append(parts, "light")
	}
	if opts.Few {
		parts = append(parts, "few")
	}
	if n := len(m.snap.Locked); n > 0 {
		parts = append(parts, fmt.Sprintf("locked(%d)", n))
	}
	if m.snap.State == session.StatePending {
		parts = append(parts, "pending*")
	}

	left := strings.Join(parts, "  ")
	if m.snap.Err != nil {
		left += "  " + ui.ErrorStyle.Render("! "+m.snap.Err.Error())
	} else if m.status != "" {
		left += "  " + ui.LinkStyle.Render(m.status)
	}
	right := "lazytheme"

	padding := m.width - lipgloss.Width(left) - len(right) - 2
	if padding < 1 {
		padding = 1
	}

	return ui.HelpStyle.Render(" "+left+strings.Repeat(" ", padding)) + ui.HelpStyle.Render(right+" ")
}

func paneTitle(p FocusedPane) string {
	switch p {
	case PaneSyntax:
		return "Syntax"
	case PaneANSI:
		return "ANSI"
	default:
		return "UI"
	}
}

func (m Model) viewRolePane(p FocusedPane, width, height int) string {
	style := ui.PaneStyle(width, height, m.focused == p)

	kind := p.Kind()
	roles := palette.Roles(kind)
	pal := m.paletteOf(kind)
	bg := m.background()

	rows := max(height-4, 1)
	start, end := _visibleWindow(m.selected[p], len(roles), rows)

	var content strings.Builder
	content.WriteString(ui.TitleStyle.Render(paneTitle(p)))
	content.WriteString("\n")

	for i := start; i < end; i++ {
		role := roles[i]
		hex := pal.Hex(role)

		lock := " "
		if kind != palette.KindANSI && _contains(m.snap.Locked, role) {
			lock = "*"
		}

		ratio := ""
		if c, ok := pal.Color(role); ok {
			ratio = fmt.Sprintf("%4.1f", color.ContrastRatio(c, bg))
		}

		name := _truncate(role, 14)
		line := fmt.Sprintf("%s %s %-14s %-9s %s", lock, ui.Swatch(hex, 2), name, hex, ratio)

		if i == m.selected[p] {
			content.WriteString(ui.SelectedStyle.Render(">") + line)
		} else {
			content.WriteString(ui.NormalStyle.Render(" ") + line)
		}
		if i < end-1 {
			content.WriteString("\n")
		}
	}

	return style.Render(content.String())
}

// previewToken is a run of text painted with a syntax role. An empty role
// uses the UI foreground.
type previewToken struct {
	role string
	text string
}

var previewCode = [][]previewToken{
	{{palette.Comment, "// Greet returns a friendly message."}},
	{{palette.Keyword, "func"}, {"", " "}, {"function", "Greet"}, {"punctuationBrace", "("}, {"parameter", "name"}, {"", " "}, {"type", "string"}, {"punctuationBrace", ")"}, {"", " "}, {"type", "string"}, {"", " "}, {"punctuationBrace", "{"}},
	{{"", "\t"}, {"control", "if"}, {"", " "}, {"variable", "name"}, {"", " "}, {"operator", "=="}, {"", " "}, {"punctuationQuote", "\""}, {"punctuationQuote", "\""}, {"", " "}, {"punctuationBrace", "{"}},
	{{"", "\t\t"}, {"variableDeclaration", "name"}, {"", " "}, {"operator", "="}, {"", " "}, {"constant", "DefaultName"}},
	{{"", "\t"}, {"punctuationBrace", "}"}},
	{{"", "\t"}, {"controlFlow", "return"}, {"", " "}, {"support", "fmt"}, {"punctuation", "."}, {"functionCall", "Sprintf"}, {"punctuationBrace", "("}, {"punctuationQuote", "\"Hello, %s!\""}, {"punctuationComma", ","}, {"", " "}, {"variable", "name"}, {"punctuationBrace", ")"}},
	{{"punctuationBrace", "}"}},
}

func (m Model) viewPreviewPane(width, height int) string {
	style := ui.PaneStyle(width, height, false)
	inner := max(width-4, 1)

	bgHex := opaque(m.snap.UI.Hex(palette.BG1))
	fgHex := opaque(m.snap.UI.Hex(palette.FG1))
	base := lipgloss.NewStyle().Background(lipgloss.Color(bgHex))

	var content strings.Builder
	content.WriteString(ui.TitleStyle.Render("Preview"))
	content.WriteString("\n")

	for _, line := range previewCode {
		var b strings.Builder
		used := 0
		for _, tok := range line {
			text := strings.ReplaceAll(tok.text, "\t", "    ")
			hex := fgHex
			if tok.role != "" {
				hex = opaque(m.snap.Syntax.Hex(tok.role))
			}
			b.WriteString(base.Foreground(lipgloss.Color(hex)).Render(text))
			used += lipgloss.Width(text)
		}
		if used < inner {
			b.WriteString(base.Render(strings.Repeat(" ", inner-used)))
		}
		content.WriteString(b.String())
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.viewANSIStrip())

	return style.Render(content.String())
}

func (m Model) viewANSIStrip() string {
	roles := palette.Roles(palette.KindANSI)
	half := len(roles) / 2

	var normal, bright strings.Builder
	for i, role := range roles {
		swatch := ui.Swatch(m.snap.ANSI.Hex(role), 3)
		if i < half {
			normal.WriteString(swatch)
		} else {
			bright.WriteString(swatch)
		}
	}

	return normal.String() + "\n" + bright.String()
}

func (m Model) viewHelpBar() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = "[" + h.Key + "] " + h.Desc
	}
	return ui.HelpStyle.Render(" " + strings.Join(parts, "  "))
}
