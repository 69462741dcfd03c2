// Package config provides configuration file parsing for lazytheme.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kyleking/lazytheme/internal/color"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/palette"
	"github.com/kyleking/lazytheme/internal/scheme"
	"github.com/kyleking/lazytheme/internal/session"
)

// ConfigFilename is the name of the configuration file inside the config
// directory.
const ConfigFilename = "config.yml"

// Config represents the lazytheme configuration file.
type Config struct {
	Version  int                `yaml:"version"`
	Defaults Defaults           `yaml:"defaults"`
	Contrast palette.Thresholds `yaml:"contrast"`
	Debounce time.Duration      `yaml:"debounce"`
	Log      Log                `yaml:"log"`
	Presets  []scheme.Preset    `yaml:"presets"`
}

// Defaults are the generation options a session starts with. A nil field
// was absent from the file.
type Defaults struct {
	Dark             *bool          `yaml:"dark"`
	BaseHue          *float64       `yaml:"base_hue"`
	UISaturation     *float64       `yaml:"ui_saturation"`
	SyntaxSaturation *float64       `yaml:"syntax_saturation"`
	Scheme           *scheme.Scheme `yaml:"scheme"`
	Few              bool           `yaml:"few"`
}

// Log configures the log file.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.fillDefaults()
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/lazytheme/config.yml, falling back to
// ~/.config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lazytheme", ConfigFilename)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lazytheme", ConfigFilename)
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path. A missing file
// yields Default.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Version == 0 {
		config.Version = 1
	}

	config.fillDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) fillDefaults() {
	def := palette.DefaultThresholds()
	if c.Contrast.Min == 0 {
		c.Contrast.Min = def.Min
	}
	if c.Contrast.Relaxed == 0 {
		c.Contrast.Relaxed = def.Relaxed
	}
	if c.Contrast.CommentDark == (palette.Band{}) {
		c.Contrast.CommentDark = def.CommentDark
	}
	if c.Contrast.CommentLight == (palette.Band{}) {
		c.Contrast.CommentLight = def.CommentLight
	}

	if c.Debounce == 0 {
		c.Debounce = session.DefaultDebounce
	}

	if c.Log.Level == "" {
		c.Log.Level = logging.LevelInfo
	}
	c.Log.Level = strings.ToUpper(c.Log.Level)

	for i := range c.Presets {
		c.Presets[i].Name = strings.ToLower(strings.TrimSpace(c.Presets[i].Name))
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}

	if d := c.Defaults; d.BaseHue != nil && (*d.BaseHue < 0 || *d.BaseHue >= 360) {
		return fmt.Errorf("defaults.base_hue must be in [0, 360): %v", *d.BaseHue)
	}
	for name, s := range map[string]*float64{
		"ui_saturation":     c.Defaults.UISaturation,
		"syntax_saturation": c.Defaults.SyntaxSaturation,
	} {
		if s != nil && (*s < 0 || *s > 100) {
			return fmt.Errorf("defaults.%s must be in [0, 100]: %v", name, *s)
		}
	}

	if c.Contrast.Min < 1 || c.Contrast.Min > 21 {
		return fmt.Errorf("contrast.min must be in [1, 21]: %v", c.Contrast.Min)
	}
	if c.Contrast.Relaxed < 1 || c.Contrast.Relaxed > c.Contrast.Min {
		return fmt.Errorf("contrast.relaxed must be in [1, contrast.min]: %v", c.Contrast.Relaxed)
	}
	for name, band := range map[string]palette.Band{
		"comment_dark":  c.Contrast.CommentDark,
		"comment_light": c.Contrast.CommentLight,
	} {
		if band.Min < 1 || band.Max > 21 || band.Min > band.Max {
			return fmt.Errorf("contrast.%s must satisfy 1 <= min <= max <= 21: %v..%v", name, band.Min, band.Max)
		}
	}

	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative: %v", c.Debounce)
	}

	switch c.Log.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset: %s", p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}

// Options converts Defaults to session options. An absent base hue is drawn
// from rng.
func (c *Config) Options(rng *rand.Rand) session.Options {
	opts := session.DefaultOptions()
	d := c.Defaults

	if d.Dark != nil {
		opts.IsDark = *d.Dark
	}
	if d.BaseHue != nil {
		opts.BaseHue = *d.BaseHue
	} else {
		opts.BaseHue = float64(rng.IntN(360))
	}
	if d.UISaturation != nil {
		opts.UISaturation = color.ClampSaturation(*d.UISaturation)
	}
	if d.SyntaxSaturation != nil {
		opts.SyntaxSaturation = color.ClampSaturation(*d.SyntaxSaturation)
	}
	if d.Scheme != nil {
		opts.Scheme = *d.Scheme
	}
	opts.Few = d.Few

	return opts
}

// AllPresets returns the built-in presets merged with the configured ones.
func (c *Config) AllPresets() []scheme.Preset {
	return scheme.Presets(c.Presets...)
}

// FindPreset looks up a preset by name.
func (c *Config) FindPreset(name string) (scheme.Preset, bool) {
	return scheme.FindPreset(name, c.AllPresets())
}
