// Command palette-dump generates a theme from flags and writes it to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/kyleking/lazytheme/internal/config"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/export"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/scheme"
	"github.com/kyleking/lazytheme/internal/session"
)

func main() {
	var (
		hue        float64
		schemeName string
		light      bool
		uiSat      float64
		syntaxSat  float64
		seed       uint64
		format     string
		name       string
		preset     string
		configPath string
		verbose    bool
	)

	defaults := session.DefaultOptions()

	flag.Float64Var(&hue, "hue", -1, "Base hue in degrees (default random)")
	flag.StringVar(&schemeName, "scheme", defaults.Scheme.String(), "Color harmony scheme")
	flag.BoolVar(&light, "light", false, "Generate a light theme")
	flag.Float64Var(&uiSat, "ui-saturation", defaults.UISaturation, "UI saturation (0-100)")
	flag.Float64Var(&syntaxSat, "syntax-saturation", defaults.SyntaxSaturation, "Syntax saturation (0-100)")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 for a random one)")
	flag.StringVar(&format, "format", string(export.FormatVSCode), "Output format: vscode, monaco, yaml or json")
	flag.StringVar(&name, "name", export.DefaultName, "Theme name")
	flag.StringVar(&preset, "preset", "", "Start from a named preset")
	flag.StringVar(&configPath, "config", "", "Config file for presets and contrast thresholds")
	flag.BoolVar(&verbose, "verbose", false, "Log generation steps to stderr")
	flag.Parse()

	if err := run(os.Stdout, params{
		hue:        hue,
		schemeName: schemeName,
		light:      light,
		uiSat:      uiSat,
		syntaxSat:  syntaxSat,
		seed:       seed,
		format:     format,
		name:       name,
		preset:     preset,
		configPath: configPath,
		verbose:    verbose,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := themeerr.GetSuggestion(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

type params struct {
	hue        float64
	schemeName string
	light      bool
	uiSat      float64
	syntaxSat  float64
	seed       uint64
	format     string
	name       string
	preset     string
	configPath string
	verbose    bool
}

func run(w io.Writer, p params) error {
	f, err := export.ParseFormat(p.format)
	if err != nil {
		return err
	}

	s, err := scheme.Parse(p.schemeName)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if p.configPath != "" {
		if cfg, err = config.LoadFrom(p.configPath); err != nil {
			return err
		}
	}

	seed := p.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	opts := session.Options{
		IsDark:           !p.light,
		BaseHue:          p.hue,
		UISaturation:     p.uiSat,
		SyntaxSaturation: p.syntaxSat,
		Scheme:           s,
	}
	if p.hue < 0 {
		opts.BaseHue = float64(rng.IntN(360))
	}
	if p.preset != "" {
		pr, ok := cfg.FindPreset(p.preset)
		if !ok {
			return fmt.Errorf("unknown preset %q", p.preset)
		}
		opts.BaseHue, opts.Scheme = pr.BaseHue, pr.Scheme
	}

	logger := logging.Discard()
	if p.verbose {
		logger = logging.New(os.Stderr, logging.LevelDebug)
	}

	ctrl := session.New(opts, session.Config{
		Thresholds: cfg.Contrast,
		Rand:       rng,
		Logger:     logger,
	})
	defer ctrl.Stop()

	ctrl.GenerateColors(session.Partial{})
	ctrl.Flush()
	if err := ctrl.LastError(); err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	data, err := export.Encode(f, p.name, export.Palettes{UI: snap.UI, Syntax: snap.Syntax, ANSI: snap.ANSI})
	if err != nil {
		return err
	}

	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
