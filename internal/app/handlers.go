package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/export"
	"github.com/kyleking/lazytheme/internal/github"
	"github.com/kyleking/lazytheme/internal/palette"
	"github.com/kyleking/lazytheme/internal/scheme"
	"github.com/kyleking/lazytheme/internal/session"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/modal"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// Modal IDs echoed back in result messages.
const (
	pickScheme   = "scheme"
	pickPreset   = "preset"
	selectExport = "export"
	confirmShare = "share"
)

type exportDoneMsg struct {
	path string
	err  error
}

type shareDoneMsg struct {
	url string
	err error
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modalStack.Push(modal.NewHelpModal(m.keys.helpSections()))
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.focused = (m.focused + 1) % paneCount
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.focused = (m.focused + paneCount - 1) % paneCount
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.HueDown):
		m.ctrl.SetBaseHue(m.options().BaseHue - hueStep)
		return m, nil

	case key.Matches(msg, m.keys.HueUp):
		m.ctrl.SetBaseHue(m.options().BaseHue + hueStep)
		return m, nil

	case key.Matches(msg, m.keys.UISatDown):
		m.ctrl.SetUISaturation(m.options().UISaturation - saturationStep)
		return m, nil

	case key.Matches(msg, m.keys.UISatUp):
		m.ctrl.SetUISaturation(m.options().UISaturation + saturationStep)
		return m, nil

	case key.Matches(msg, m.keys.SyntaxSatDown):
		m.ctrl.SetSyntaxSaturation(m.options().SyntaxSaturation - saturationStep)
		return m, nil

	case key.Matches(msg, m.keys.SyntaxSatUp):
		m.ctrl.SetSyntaxSaturation(m.options().SyntaxSaturation + saturationStep)
		return m, nil

	case key.Matches(msg, m.keys.Scheme):
		return m.openSchemePicker()

	case key.Matches(msg, m.keys.Preset):
		return m.openPresetPicker()

	case key.Matches(msg, m.keys.Dark):
		m.ctrl.SetIsDark(!m.options().IsDark)
		return m, nil

	case key.Matches(msg, m.keys.Few):
		m.ctrl.SetFew(!m.options().Few)
		return m, nil

	case key.Matches(msg, m.keys.Lock):
		return m.toggleLock()

	case key.Matches(msg, m.keys.Edit):
		return m.openHexModal()

	case key.Matches(msg, m.keys.Randomize):
		m.ctrl.Randomize()
		m.status = "randomizing"
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		m.ctrl.RegenerateUnlocked()
		m.status = "regenerating unlocked roles"
		return m, nil

	case key.Matches(msg, m.keys.RegenerateANSI):
		if err := m.ctrl.RegenerateANSI(); err != nil {
			m.modalStack.Push(modal.NewErrorModalFromErr("ANSI regeneration failed", err))
			return m, nil
		}
		m.status = "ansi regenerated"
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedHex()

	case key.Matches(msg, m.keys.CopyTheme):
		return m.copyThemeJSON()

	case key.Matches(msg, m.keys.Export):
		return m.openExportModal()

	case key.Matches(msg, m.keys.Share):
		m.modalStack.Push(modal.NewConfirmModal(confirmShare,
			"Share theme?", "Uploads the VS Code theme and palette to a secret gist"))
		return m, nil

	case key.Matches(msg, m.keys.Chrome):
		return m.toggleChrome()
	}

	return m, nil
}

// options returns what the editor last asked for, pending or not, so key
// repeats step from the requested value rather than the committed one.
func (m Model) options() session.Options {
	return m.ctrl.Snapshot().Requested
}

func (m *Model) moveSelection(delta int) {
	n := len(palette.Roles(m.focused.Kind()))
	if n == 0 {
		return
	}
	m.selected[m.focused] = (m.selected[m.focused] + delta + n) % n
}

func (m Model) openSchemePicker() (tea.Model, tea.Cmd) {
	names := m.history.Rank(scheme.Names())
	m.modalStack.Push(modal.NewPickerModal(pickScheme, "Scheme", names))
	return m, nil
}

func (m Model) openPresetPicker() (tea.Model, tea.Cmd) {
	presets := m.cfg.AllPresets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	m.modalStack.Push(modal.NewPickerModal(pickPreset, "Preset", names))
	return m, nil
}

func (m Model) handlePickerResult(msg modal.PickerResultMsg) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case pickScheme:
		s, err := scheme.Parse(msg.Value)
		if err != nil {
			m.modalStack.Push(modal.NewErrorModalFromErr("Unknown scheme", err))
			return m, nil
		}
		m.ctrl.SetScheme(s)
		m.history.Record(s.String())
		if err := m.saveHistory(); err != nil {
			m.logger.Warn("failed to save scheme history", "error", err)
		}
		m.status = "scheme " + s.String()

	case pickPreset:
		p, ok := m.cfg.FindPreset(msg.Value)
		if !ok {
			return m, nil
		}
		m.ctrl.ApplyPreset(p)
		m.themeName = p.Name
		m.status = "preset " + p.Name
	}

	return m, nil
}

func (m Model) toggleLock() (tea.Model, tea.Cmd) {
	ref := m.selectedRole()
	locked, err := m.ctrl.ToggleColorLock(ref.String())
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	if locked {
		m.status = "locked " + ref.Name
	} else {
		m.status = "unlocked " + ref.Name
	}
	return m, nil
}

func (m Model) openHexModal() (tea.Model, tea.Cmd) {
	ref := m.selectedRole()
	m.modalStack.Push(modal.NewHexInputModal(ref.String(), m.hexOf(ref)))
	return m, nil
}

func (m Model) handleHexResult(msg modal.HexResultMsg) (tea.Model, tea.Cmd) {
	if err := m.ctrl.HandleColorChange(msg.Role, msg.Value); err != nil {
		m.modalStack.Push(modal.NewErrorModalFromErr("Color change failed", err))
		return m, nil
	}
	m.snap = m.ctrl.Snapshot()
	m.status = msg.Role + " = " + msg.Value
	return m, nil
}

func (m Model) copySelectedHex() (tea.Model, tea.Cmd) {
	hex := m.hexOf(m.selectedRole())
	if err := m.copyText(hex); err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	m.status = "copied " + hex
	return m, nil
}

func (m Model) copyThemeJSON() (tea.Model, tea.Cmd) {
	data, err := export.Encode(export.FormatVSCode, m.themeName, m.palettes())
	if err != nil {
		m.modalStack.Push(modal.NewErrorModalFromErr("Export failed", err))
		return m, nil
	}
	if err := m.copyText(string(data)); err != nil {
		m.status = "copy failed: " + err.Error()
		return m, nil
	}
	m.status = "copied theme json"
	return m, nil
}

var formatDescriptions = map[export.Format]string{
	export.FormatVSCode: "VS Code color theme",
	export.FormatMonaco: "Monaco editor theme",
	export.FormatYAML:   "palette dump",
	export.FormatJSON:   "palette dump as JSON",
}

func (m Model) openExportModal() (tea.Model, tea.Cmd) {
	formats := export.Formats()
	options := make([]modal.SelectOption, len(formats))
	for i, f := range formats {
		options[i] = modal.SelectOption{Value: string(f), Description: formatDescriptions[f]}
	}
	m.modalStack.Push(modal.NewSelectModal(selectExport, "Export format", options, string(export.FormatVSCode)))
	return m, nil
}

func (m Model) handleSelectResult(msg modal.SelectResultMsg) (tea.Model, tea.Cmd) {
	if msg.ID != selectExport {
		return m, nil
	}

	format, err := export.ParseFormat(msg.Value)
	if err != nil {
		m.modalStack.Push(modal.NewErrorModalFromErr("Export failed", err))
		return m, nil
	}

	name, p := m.themeName, m.palettes()
	path := filepath.Join(m.exportDir, exportFilename(format, name))
	return m, func() tea.Msg {
		return exportDoneMsg{path: path, err: writeExport(path, format, name, p)}
	}
}

func writeExport(path string, format export.Format, name string, p export.Palettes) error {
	data, err := export.Encode(format, name, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func exportFilename(format export.Format, name string) string {
	slug := github.Slug(name)
	switch format {
	case export.FormatVSCode:
		return slug + "-color-theme.json"
	case export.FormatMonaco:
		return slug + "-monaco.json"
	default:
		return slug + format.Extension()
	}
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("export failed", "path", msg.path, "error", msg.err)
		m.modalStack.Push(modal.NewErrorModalFromErr("Export failed", msg.err))
		return m, nil
	}
	m.logger.Info("theme exported", "path", msg.path)
	m.status = "wrote " + msg.path
	return m, nil
}

func (m Model) handleConfirmResult(msg modal.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	if msg.ID != confirmShare || !msg.Value {
		return m, nil
	}

	m.status = "sharing..."
	name, p, newSharer := m.themeName, m.palettes(), m.newSharer
	return m, func() tea.Msg {
		url, err := share(newSharer, name, p)
		return shareDoneMsg{url: url, err: err}
	}
}

func share(newSharer func() (Sharer, error), name string, p export.Palettes) (string, error) {
	sharer, err := newSharer()
	if err != nil {
		return "", err
	}

	themeJSON, err := export.Encode(export.FormatVSCode, name, p)
	if err != nil {
		return "", err
	}
	paletteYAML, err := export.Encode(export.FormatYAML, name, p)
	if err != nil {
		return "", err
	}

	gist, err := sharer.ShareTheme(name, themeJSON, paletteYAML)
	if err != nil {
		return "", err
	}
	return gist.HTMLURL, nil
}

func (m Model) handleShareDone(msg shareDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("share failed", "error", msg.err)
		m.status = ""
		m.modalStack.Push(modal.NewErrorModalFromErr("Share failed", msg.err))
		return m, nil
	}

	m.logger.Info("theme shared", "url", msg.url)
	m.status = "shared " + msg.url

	if err := m.copyText(msg.url); err != nil {
		m.logger.Warn("failed to copy gist url", "error", err)
	}
	if err := m.openURL(msg.url); err != nil {
		m.logger.Warn("failed to open browser", "url", msg.url, "error", err)
	}
	return m, nil
}

func (m Model) toggleChrome() (tea.Model, tea.Cmd) {
	m.paintChrome = !m.paintChrome
	if m.paintChrome {
		ui.Apply(theme.FromPalette(m.snap.UI, m.snap.Syntax))
		m.status = "chrome follows theme"
	} else {
		ui.Apply(m.chrome)
		m.status = "chrome reset"
	}
	return m, nil
}

func (m Model) palettes() export.Palettes {
	return export.Palettes{UI: m.snap.UI, Syntax: m.snap.Syntax, ANSI: m.snap.ANSI}
}

func (m Model) selectedRole() palette.RoleRef {
	kind := m.focused.Kind()
	roles := palette.Roles(kind)
	idx := min(m.selected[m.focused], len(roles)-1)
	return palette.RoleRef{Kind: kind, Name: roles[idx]}
}

func (m Model) hexOf(ref palette.RoleRef) string {
	return m.paletteOf(ref.Kind).Hex(ref.Name)
}

func (m Model) paletteOf(kind palette.Kind) palette.Palette {
	switch kind {
	case palette.KindSyntax:
		return m.snap.Syntax
	case palette.KindANSI:
		return m.snap.ANSI
	default:
		return m.snap.UI
	}
}

func (m Model) background() color.Color {
	bg, _ := m.snap.UI.Color(palette.BG1)
	return bg
}
