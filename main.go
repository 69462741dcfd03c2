package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/lazytheme/internal/app"
	"github.com/kyleking/lazytheme/internal/config"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/frecency"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/session"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

var (
	version = "dev"
)

func main() {
	var (
		configPath  string
		showVersion bool
		showHelp    bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showHelp, "h", false, "Show help (shorthand)")
	flag.Parse()

	if showVersion {
		fmt.Printf("lazytheme %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		if hint := themeerr.GetSuggestion(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	history, err := frecency.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load history: %v\n", err)
		history = frecency.NewStore()
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	ctrl := session.New(cfg.Options(rng), session.Config{
		Debounce:   cfg.Debounce,
		Thresholds: cfg.Contrast,
		Rand:       rng,
		Logger:     logger,
	})
	defer ctrl.Stop()

	logger.Info("session started", "version", version, "config", resolveConfigPath(configPath))
	ctrl.GenerateColors(session.Partial{})

	ui.Apply(theme.Detect())
	model := app.New(ctrl, cfg, history, logger)
	if watcher, err := config.Watch(resolveConfigPath(configPath), logger); err != nil {
		logger.Warn("config reload disabled", "error", err)
	} else {
		defer watcher.Stop()
		model = model.WatchConfig(watcher.Updates())
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func resolveConfigPath(path string) string {
	if path == "" {
		return config.DefaultPath()
	}
	return path
}

func printHelp() {
	fmt.Println(`lazytheme - Interactive editor color theme generator

Usage:
  lazytheme [flags]

Description:
  A TUI that derives a complete editor theme (UI chrome, syntax tokens and
  the 16 ANSI colors) from a base hue, a color harmony scheme and two
  saturation levels, keeping every role readable against the background.

Flags:
  -config PATH   Config file (default $XDG_CONFIG_HOME/lazytheme/config.yml)
  -h, --help     Show this help message
  -v, --version  Show version

Keyboard Shortcuts:
  Tab / Shift+Tab    Switch between UI, Syntax and ANSI panes
  ↑/k, ↓/j           Select a role
  ←/h, →/l           Base hue -5 / +5
  [ ]  { }           UI / syntax saturation -5 / +5
  s / p              Pick scheme / preset
  d / f              Toggle dark / few hues
  Space, x           Lock the selected role
  Enter, e           Edit the selected role as hex
  r / R / a          Randomize / regenerate unlocked / regenerate ANSI
  y / Y              Copy role hex / theme JSON
  E / g              Export to a file / share as a gist
  t                  Paint the editor chrome with the theme
  ?                  Show help
  q, Ctrl+C          Quit

Set LAZYTHEME_CHROME=light or dark to skip background detection.`)
}
