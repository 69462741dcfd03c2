// Package session owns the live theme: generation options, locks and the
// three committed palettes. Parameter changes are debounced so a burst of
// edits produces a single regeneration.
package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/kyleking/lazytheme/internal/color"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/logging"
	"github.com/kyleking/lazytheme/internal/palette"
	"github.com/kyleking/lazytheme/internal/scheme"
)

const updateBuffer = 16

// Config wires a Controller's collaborators. Zero fields take defaults.
type Config struct {
	Debounce   time.Duration
	Thresholds palette.Thresholds
	Rand       *rand.Rand
	Logger     *slog.Logger
	Scheduler  Scheduler
}

// Snapshot is a consistent copy of the committed state.
type Snapshot struct {
	// Options produced the committed palettes.
	Options Options
	// Requested is what the pending regeneration will run with. It equals
	// Options when idle.
	Requested Options
	// Dark is the polarity of the committed BG1.
	Dark     bool
	UI       palette.Palette
	Syntax   palette.Palette
	ANSI     palette.Palette
	Hues     []float64
	Locked   []string
	State    State
	Revision int
	Err      error
}

type pendingRun struct {
	seq     uint64
	partial Partial
	stop    func() bool
}

// Controller serializes every mutation behind a mutex because debounce
// callbacks arrive on timer goroutines.
type Controller struct {
	mu sync.Mutex

	opts   Options
	locks  palette.LockSet
	ui     palette.Palette
	syntax palette.Palette
	ansi   palette.Palette
	hues   []float64

	seq     uint64
	pending *pendingRun

	revision int
	lastErr  error

	debounce time.Duration
	sched    Scheduler
	synth    *palette.Synthesizer
	rng      *rand.Rand
	logger   *slog.Logger
	generate func(float64, scheme.Scheme) []float64

	updates  chan Snapshot
	stopped  bool
	stopOnce sync.Once
}

// New creates a controller holding the default VS Code palettes.
func New(opts Options, cfg Config) *Controller {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Thresholds == (palette.Thresholds{}) {
		cfg.Thresholds = palette.DefaultThresholds()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = clockScheduler{}
	}

	opts = opts.normalized()

	return &Controller{
		opts:     opts,
		locks:    palette.NewLockSet(),
		ui:       palette.DefaultUI(),
		syntax:   palette.DefaultSyntax(),
		ansi:     palette.DefaultANSI(),
		hues:     scheme.Generate(opts.BaseHue, opts.Scheme),
		debounce: cfg.Debounce,
		sched:    cfg.Scheduler,
		synth:    palette.NewSynthesizer(cfg.Rand, cfg.Thresholds, cfg.Logger),
		rng:      cfg.Rand,
		logger:   cfg.Logger,
		generate: scheme.Generate,
		updates:  make(chan Snapshot, updateBuffer),
	}
}

// Updates returns the channel of committed snapshots.
func (c *Controller) Updates() <-chan Snapshot {
	return c.updates
}

// Stop cancels any pending regeneration and closes Updates.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.pending != nil {
			c.pending.stop()
			c.pending = nil
		}
		c.stopped = true
		close(c.updates)
	})
}

// Snapshot returns the committed state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// State reports whether a regeneration is pending.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// LastError returns the error from the most recent failed cycle, or nil
// once a later cycle commits.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// GenerateColors schedules a regeneration with p merged over the current
// options when the timer fires. A call made while another is pending
// supersedes its timer; fields p leaves nil keep the pending values.
func (c *Controller) GenerateColors(p Partial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(p)
}

// SetBaseHue schedules a regeneration at hue h. Options change only when
// it commits.
func (c *Controller) SetBaseHue(h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(Partial{BaseHue: Ptr(color.NormalizeHue(h))})
}

// SetScheme schedules a regeneration with scheme s.
func (c *Controller) SetScheme(s scheme.Scheme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(Partial{Scheme: Ptr(s)})
}

// SetIsDark schedules a regeneration with the given polarity.
func (c *Controller) SetIsDark(dark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(Partial{IsDark: Ptr(dark)})
}

// SetFew schedules a regeneration with or without accent feedback.
func (c *Controller) SetFew(few bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(Partial{Few: Ptr(few)})
}

// SetForceRegenerate toggles jitter for all later regenerations. It does
// not schedule one by itself.
func (c *Controller) SetForceRegenerate(force bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.ForceRegenerate = force
}

// ApplyPreset adopts a preset's hue and scheme.
func (c *Controller) ApplyPreset(p scheme.Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arm(Partial{BaseHue: Ptr(color.NormalizeHue(p.BaseHue)), Scheme: Ptr(p.Scheme)})
}

// Randomize picks a new hue, saturations and scheme and schedules a
// jittered regeneration. Locked roles are kept.
func (c *Controller) Randomize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := scheme.All()
	c.arm(Partial{
		BaseHue:          Ptr(float64(c.rng.IntN(360))),
		UISaturation:     Ptr(5 + c.rng.Float64()*45),
		SyntaxSaturation: Ptr(30 + c.rng.Float64()*60),
		Scheme:           Ptr(all[c.rng.IntN(len(all))]),
		ForceRegenerate:  Ptr(false),
	})
}

// RegenerateUnlocked nudges hue and saturations slightly and schedules a
// jitter-free regeneration of the unlocked roles.
func (c *Controller) RegenerateUnlocked() {
	c.mu.Lock()
	defer c.mu.Unlock()

	base := c.requestedLocked()
	c.arm(Partial{
		BaseHue:          Ptr(color.NormalizeHue(base.BaseHue + c.spread(15))),
		UISaturation:     Ptr(color.ClampSaturation(base.UISaturation + c.spread(10))),
		SyntaxSaturation: Ptr(color.ClampSaturation(base.SyntaxSaturation + c.spread(10))),
		ForceRegenerate:  Ptr(true),
	})
}

// Flush runs a pending regeneration now. It reports whether one ran.
func (c *Controller) Flush() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return false
	}
	run := c.pending
	run.stop()
	c.pending = nil
	c.regenerate(run.partial)
	return true
}

// spread returns a uniform value in [-r, r].
func (c *Controller) spread(r float64) float64 {
	return (c.rng.Float64()*2 - 1) * r
}

// arm (re)starts the debounce timer. A pending request is superseded but
// its fields are folded under p, so a hue change followed by a scheme
// change inside one window keeps both.
func (c *Controller) arm(p Partial) {
	if c.stopped {
		return
	}

	if c.pending != nil {
		c.pending.stop()
		c.logger.Debug("regeneration superseded", "seq", c.pending.seq)
		p = c.pending.partial.merge(p)
	}

	c.seq++
	seq := c.seq
	stop := c.sched.AfterFunc(c.debounce, func() { c.fire(seq) })
	c.pending = &pendingRun{seq: seq, partial: p, stop: stop}

	c.publish()
}

func (c *Controller) fire(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || c.pending.seq != seq {
		c.logger.Debug("stale regeneration discarded", "seq", seq)
		return
	}
	run := c.pending
	c.pending = nil
	c.regenerate(run.partial)
}

// regenerate runs the full pipeline and commits all three palettes, or
// nothing.
func (c *Controller) regenerate(p Partial) {
	defer func() {
		if r := recover(); r != nil {
			c.fail(&themeerr.SynthesisError{Palette: "theme", Reason: fmt.Sprint(r)})
		}
	}()

	opts := p.apply(c.opts)
	hues := c.generate(opts.BaseHue, opts.Scheme)

	uiRes, err := c.synth.UI(palette.Request{
		IsDark:          opts.IsDark,
		Hues:            hues,
		Saturation:      opts.UISaturation,
		Locked:          c.locks.Colors(c.ui),
		ForceRegenerate: opts.ForceRegenerate,
		Scheme:          opts.Scheme,
		Few:             opts.Few,
	})
	if err != nil {
		c.fail(err)
		return
	}

	bg, _ := uiRes.Palette.Color(palette.BG1)
	syntax, err := c.synth.Syntax(palette.Request{
		Background:      bg,
		Hues:            uiRes.Hues,
		Saturation:      opts.SyntaxSaturation,
		Locked:          c.locks.Colors(c.syntax),
		ForceRegenerate: opts.ForceRegenerate,
	})
	if err != nil {
		c.fail(err)
		return
	}

	ansi := c.ansi
	if !bg.Equal(c.background()) {
		ansi, err = c.synthesizeANSI(bg, uiRes.Hues, opts)
		if err != nil {
			c.fail(err)
			return
		}
	}

	// A one-shot ForceRegenerate from the partial does not stick.
	opts.ForceRegenerate = c.opts.ForceRegenerate

	c.opts = opts
	c.ui = uiRes.Palette
	c.syntax = syntax
	c.ansi = ansi
	c.hues = uiRes.Hues
	c.commit("regenerate",
		"base_hue", opts.BaseHue,
		"scheme", opts.Scheme.String(),
		"dark", color.IsDark(bg),
		"hues", len(uiRes.Hues))
}

func (c *Controller) synthesizeANSI(bg color.Color, hues []float64, opts Options) (palette.Palette, error) {
	return c.synth.ANSI(palette.Request{
		Background:      bg,
		Hues:            hues,
		Saturation:      opts.SyntaxSaturation,
		ForceRegenerate: opts.ForceRegenerate,
	})
}

func (c *Controller) background() color.Color {
	bg, _ := c.ui.Color(palette.BG1)
	return bg
}

func (c *Controller) commit(reason string, args ...any) {
	c.revision++
	c.lastErr = nil
	c.logger.Info("palettes committed", append([]any{"reason", reason, "revision", c.revision}, args...)...)
	c.publish()
}

func (c *Controller) fail(err error) {
	c.lastErr = err
	c.logger.Error("regeneration failed, keeping previous palettes", "error", err)
	c.publish()
}

func (c *Controller) stateLocked() State {
	if c.pending != nil {
		return StatePending
	}
	return StateIdle
}

// requestedLocked returns the options the next regeneration will use.
func (c *Controller) requestedLocked() Options {
	if c.pending == nil {
		return c.opts
	}
	opts := c.pending.partial.apply(c.opts)
	opts.ForceRegenerate = c.opts.ForceRegenerate
	return opts
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Options:   c.opts,
		Requested: c.requestedLocked(),
		Dark:      color.IsDark(c.background()),
		UI:        c.ui,
		Syntax:    c.syntax,
		ANSI:      c.ansi,
		Hues:      append([]float64(nil), c.hues...),
		Locked:    c.locks.Names(),
		State:     c.stateLocked(),
		Revision:  c.revision,
		Err:       c.lastErr,
	}
}

func (c *Controller) publish() {
	if c.stopped {
		return
	}
	select {
	case c.updates <- c.snapshotLocked():
	default:
		c.logger.Warn("snapshot dropped", "error", &themeerr.ChannelFullError{Channel: "session updates"})
	}
}

// SetThresholds swaps the contrast targets and schedules a regeneration so
// every role is checked against them. Unchanged targets are a no-op.
func (c *Controller) SetThresholds(t palette.Thresholds) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t == (palette.Thresholds{}) {
		t = palette.DefaultThresholds()
	}
	if t == c.synth.Thresholds() {
		return
	}

	c.synth = palette.NewSynthesizer(c.rng, t, c.logger)
	c.logger.Info("contrast thresholds changed", "min", t.Min, "relaxed", t.Relaxed)
	c.arm(Partial{})
}
