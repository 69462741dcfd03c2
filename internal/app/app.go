// Package app is the interactive theme editor.
package app

import (
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/browser"
	"github.com/kyleking/lazytheme/internal/config"
	"github.com/kyleking/lazytheme/internal/export"
	"github.com/kyleking/lazytheme/internal/frecency"
	"github.com/kyleking/lazytheme/internal/github"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/palette"
	"github.com/kyleking/lazytheme/internal/session"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/modal"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// FocusedPane represents which role pane currently has focus.
type FocusedPane int

const (
	PaneUI FocusedPane = iota
	PaneSyntax
	PaneANSI
)

const paneCount = 3

// Kind returns the palette the pane lists.
func (p FocusedPane) Kind() palette.Kind {
	switch p {
	case PaneSyntax:
		return palette.KindSyntax
	case PaneANSI:
		return palette.KindANSI
	default:
		return palette.KindUI
	}
}

// Step sizes for the hue and saturation keys.
const (
	hueStep        = 5.0
	saturationStep = 5.0
)

// Sharer publishes a theme and returns the created gist.
type Sharer interface {
	ShareTheme(name string, themeJSON, paletteYAML []byte) (*github.Gist, error)
}

// SnapshotMsg carries a committed state from the controller.
type SnapshotMsg struct {
	Snapshot session.Snapshot
	Closed   bool
}

// ConfigReloadMsg carries a re-read config file.
type ConfigReloadMsg struct {
	Reload config.Reload
	Closed bool
}

// Model is the root bubbletea model for the application.
type Model struct {
	ctrl    *session.Controller
	cfg     *config.Config
	history *frecency.Store
	logger  *slog.Logger

	snap      session.Snapshot
	focused   FocusedPane
	selected  [paneCount]int
	themeName string
	exportDir string
	status    string

	paintChrome bool
	chrome      theme.Theme

	newSharer   func() (Sharer, error)
	copyText    func(string) error
	openURL     func(string) error
	saveHistory func() error

	modalStack *modal.Stack
	reloads    <-chan config.Reload

	width  int
	height int
	keys   KeyMap
}

// New creates a new application model around a running controller.
func New(ctrl *session.Controller, cfg *config.Config, history *frecency.Store, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if history == nil {
		history = frecency.NewStore()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		ctrl:        ctrl,
		cfg:         cfg,
		history:     history,
		logger:      logger,
		snap:        ctrl.Snapshot(),
		focused:     PaneUI,
		themeName:   export.DefaultName,
		exportDir:   ".",
		chrome:      theme.Detect(),
		newSharer:   defaultSharer,
		copyText:    clipboard.WriteAll,
		openURL:     browser.Open,
		saveHistory: history.Save,
		modalStack:  modal.NewStack(),
		keys:        DefaultKeyMap(),
	}
}

func defaultSharer() (Sharer, error) {
	client, err := github.NewClient()
	if err != nil {
		return nil, err
	}
	return client, nil
}

// WatchConfig makes the model follow config reloads.
func (m Model) WatchConfig(ch <-chan config.Reload) Model {
	m.reloads = ch
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.subscription(), m.reloadSubscription())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modalStack.SetSize(msg.Width, msg.Height)
		return m, nil

	case SnapshotMsg:
		return m.handleSnapshot(msg)

	case ConfigReloadMsg:
		return m.handleConfigReload(msg)

	case modal.PickerResultMsg:
		return m.handlePickerResult(msg)

	case modal.HexResultMsg:
		return m.handleHexResult(msg)

	case modal.SelectResultMsg:
		return m.handleSelectResult(msg)

	case modal.ConfirmResultMsg:
		return m.handleConfirmResult(msg)

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case shareDoneMsg:
		return m.handleShareDone(msg)
	}

	if m.modalStack.HasActive() {
		return m.updateModal(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.modalStack.Update(msg)
	return m, cmd
}

// subscription waits for the next committed snapshot.
func (m Model) subscription() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	updates := m.ctrl.Updates()
	return func() tea.Msg {
		snap, ok := <-updates
		return SnapshotMsg{Snapshot: snap, Closed: !ok}
	}
}

func (m Model) handleSnapshot(msg SnapshotMsg) (tea.Model, tea.Cmd) {
	if msg.Closed {
		return m, nil
	}

	m.snap = msg.Snapshot
	if m.paintChrome {
		ui.Apply(theme.FromPalette(m.snap.UI, m.snap.Syntax))
	}

	return m, m.subscription()
}

func (m Model) reloadSubscription() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	reloads := m.reloads
	return func() tea.Msg {
		r, ok := <-reloads
		return ConfigReloadMsg{Reload: r, Closed: !ok}
	}
}

func (m Model) handleConfigReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if msg.Closed {
		return m, nil
	}

	if err := msg.Reload.Err; err != nil {
		m.logger.Warn("keeping previous config", "error", err)
		m.status = "config error: " + err.Error()
		return m, m.reloadSubscription()
	}

	m.cfg = msg.Reload.Config
	m.ctrl.SetThresholds(m.cfg.Contrast)
	m.status = "config reloaded"

	return m, m.reloadSubscription()
}

// Snapshot returns the state the model last rendered.
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}
