package testutil

// Backgrounds used across palette tests.
const (
	DarkBackground  = "#1e1e1e"
	LightBackground = "#ffffff"
	MidGrey         = "#777777"
)

// SampleConfig is a complete configuration document.
const SampleConfig = `version: 1
defaults:
  dark: true
  base_hue: 200
  ui_saturation: 25
  syntax_saturation: 60
  scheme: Triadic
  few: false
contrast:
  min: 5.5
  relaxed: 1.5
  comment_dark:
    min: 4.0
    max: 4.5
  comment_light:
    min: 5.0
    max: 5.5
debounce: 250ms
log:
  level: debug
presets:
  - name: ocean
    base_hue: 190
    scheme: Analogous
`
