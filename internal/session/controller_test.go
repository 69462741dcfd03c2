package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kyleking/lazytheme/internal/color"
	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/palette"
	"github.com/kyleking/lazytheme/internal/scheme"
	"github.com/kyleking/lazytheme/internal/testutil"
)

func newTestController(t *testing.T, opts Options) (*Controller, *testutil.FakeScheduler) {
	t.Helper()

	sched := testutil.NewFakeScheduler()
	c := New(opts, Config{
		Rand:      testutil.Rand(42),
		Scheduler: sched,
	})
	t.Cleanup(c.Stop)

	return c, sched
}

func TestNew_Defaults(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	snap := c.Snapshot()

	if snap.UI.Hex(palette.BG1) != "#1e1e1e" {
		t.Errorf("BG1: got %s, want VS Code default", snap.UI.Hex(palette.BG1))
	}
	if snap.State != StateIdle {
		t.Errorf("State: got %s, want idle", snap.State)
	}
	if snap.Revision != 0 {
		t.Errorf("Revision: got %d, want 0", snap.Revision)
	}
	if len(snap.Hues) != 5 {
		t.Errorf("Hues: got %v, want Analogous pool of 5", snap.Hues)
	}
	if !snap.Dark {
		t.Error("Dark: default BG1 is dark")
	}
}

func TestNew_NormalizesOptions(t *testing.T) {
	c, _ := newTestController(t, Options{BaseHue: 400, UISaturation: 150, SyntaxSaturation: -5, Scheme: scheme.Scheme(99)})
	opts := c.Snapshot().Options

	if opts.BaseHue != 40 || opts.UISaturation != 100 || opts.SyntaxSaturation != 0 || opts.Scheme != scheme.Monochromatic {
		t.Errorf("options: got %+v", opts)
	}
}

func TestDebounce_Collapse(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.SetBaseHue(10)
	c.SetBaseHue(20)

	if got := c.State(); got != StatePending {
		t.Fatalf("State: got %s, want pending", got)
	}
	if got := sched.Armed(); got != 2 {
		t.Errorf("Armed: got %d, want 2", got)
	}
	if got := sched.Live(); got != 1 {
		t.Errorf("Live: got %d, want 1 after superseding", got)
	}
	if got := sched.LastDelay(); got != DefaultDebounce {
		t.Errorf("delay: got %v, want %v", got, DefaultDebounce)
	}

	if fired := sched.FireAll(); fired != 1 {
		t.Fatalf("FireAll: got %d, want 1", fired)
	}

	snap := c.Snapshot()
	if snap.Revision != 1 {
		t.Errorf("Revision: got %d, want exactly one commit", snap.Revision)
	}
	if snap.Options.BaseHue != 20 {
		t.Errorf("BaseHue: got %v, want 20", snap.Options.BaseHue)
	}
	if snap.Hues[0] != 20 {
		t.Errorf("Hues[0]: got %v, want 20", snap.Hues[0])
	}
	if snap.State != StateIdle {
		t.Errorf("State: got %s, want idle", snap.State)
	}
}

func TestDebounce_StaleCallbackIgnored(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.SetBaseHue(10)
	c.SetBaseHue(20)
	sched.FireAll()

	if ran := sched.FireStale(); ran != 1 {
		t.Fatalf("FireStale: got %d, want 1", ran)
	}

	snap := c.Snapshot()
	if snap.Revision != 1 {
		t.Errorf("Revision: got %d, superseded callback must not commit", snap.Revision)
	}
	if snap.Options.BaseHue != 20 {
		t.Errorf("BaseHue: got %v, want 20", snap.Options.BaseHue)
	}
}

func TestDebounce_ConfiguredDelay(t *testing.T) {
	sched := testutil.NewFakeScheduler()
	c := New(DefaultOptions(), Config{Debounce: 50 * time.Millisecond, Scheduler: sched})
	defer c.Stop()

	c.SetScheme(scheme.Triadic)
	if got := sched.LastDelay(); got != 50*time.Millisecond {
		t.Errorf("delay: got %v, want 50ms", got)
	}
}

func TestDebounce_RealClock(t *testing.T) {
	c := New(DefaultOptions(), Config{Debounce: 10 * time.Millisecond, Rand: testutil.Rand(1)})
	defer c.Stop()

	c.SetBaseHue(100)
	c.SetBaseHue(200)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-c.Updates():
			if snap.Revision == 0 {
				continue
			}
			if snap.Options.BaseHue != 200 || snap.Revision != 1 {
				t.Fatalf("commit: got hue %v revision %d", snap.Options.BaseHue, snap.Revision)
			}
			return
		case <-deadline:
			t.Fatal("timeout waiting for debounced commit")
		}
	}
}

func TestFlush(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	if c.Flush() {
		t.Error("Flush: nothing pending, want false")
	}

	c.GenerateColors(Partial{Scheme: Ptr(scheme.Tetradic)})
	if !c.Flush() {
		t.Fatal("Flush: want true with a pending regeneration")
	}
	if sched.Live() != 0 {
		t.Error("Flush should cancel the armed timer")
	}

	snap := c.Snapshot()
	if snap.Options.Scheme != scheme.Tetradic || snap.Revision != 1 {
		t.Errorf("after flush: scheme %s revision %d", snap.Options.Scheme, snap.Revision)
	}
}

func TestUpdates_PublishesPendingAndCommit(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.SetIsDark(false)
	pending := testutil.Receive(t, c.Updates(), time.Second)
	if pending.State != StatePending {
		t.Errorf("first update: got %s, want pending", pending.State)
	}

	sched.FireAll()
	committed := testutil.Receive(t, c.Updates(), time.Second)
	if committed.Revision != 1 || committed.State != StateIdle {
		t.Errorf("commit update: revision %d state %s", committed.Revision, committed.State)
	}
	if committed.Dark {
		t.Error("commit update: want light BG1 after SetIsDark(false)")
	}
}

func TestLocks_SurviveRegeneration(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())

	for _, role := range []string{"keyword", "BG1", "AC1"} {
		locked, err := c.ToggleColorLock(role)
		if err != nil || !locked {
			t.Fatalf("ToggleColorLock(%s): %v %v", role, locked, err)
		}
	}
	before := c.Snapshot()

	c.GenerateColors(Partial{BaseHue: Ptr(300.0), Scheme: Ptr(scheme.Triadic)})
	c.Flush()
	after := c.Snapshot()

	for _, role := range []string{palette.BG1, palette.AC1} {
		if before.UI.Hex(role) != after.UI.Hex(role) {
			t.Errorf("locked %s changed: %s -> %s", role, before.UI.Hex(role), after.UI.Hex(role))
		}
	}
	if before.Syntax.Hex(palette.Keyword) != after.Syntax.Hex(palette.Keyword) {
		t.Error("locked keyword changed")
	}
	if before.UI.Hex(palette.FG1) == after.UI.Hex(palette.FG1) {
		t.Error("unlocked FG1 should be regenerated")
	}
	if len(after.Locked) != 3 {
		t.Errorf("Locked: got %v", after.Locked)
	}
}

func TestToggleColorLock_Errors(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())

	_, err := c.ToggleColorLock("ansiRed")
	var lockErr *themeerr.NotLockableError
	if !errors.As(err, &lockErr) {
		t.Errorf("ANSI lock: got %v, want NotLockableError", err)
	}

	_, err = c.ToggleColorLock("nope")
	var roleErr *themeerr.UnknownRoleError
	if !errors.As(err, &roleErr) {
		t.Errorf("unknown role: got %v, want UnknownRoleError", err)
	}

	locked, _ := c.ToggleColorLock("comment")
	unlocked, _ := c.ToggleColorLock("comment")
	if !locked || unlocked || c.IsLocked("comment") {
		t.Error("double toggle should unlock")
	}
}

func TestHandleColorChange_FormatError(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	before := c.Snapshot()

	err := c.HandleColorChange("BG1", "#12345")
	var formatErr *themeerr.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v, want FormatError", err)
	}

	after := c.Snapshot()
	if after.Revision != before.Revision || !after.UI.Equal(before.UI) || !after.Syntax.Equal(before.Syntax) {
		t.Error("malformed input must not commit")
	}
}

func TestHandleColorChange_SingleRole(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	before := c.Snapshot()

	if err := c.HandleColorChange("keyword", "#FF0000"); err != nil {
		t.Fatalf("HandleColorChange: %v", err)
	}
	if err := c.HandleColorChange("ansiBlue", "#0000aa"); err != nil {
		t.Fatalf("HandleColorChange: %v", err)
	}

	after := c.Snapshot()
	if after.Syntax.Hex("keyword") != "#ff0000" {
		t.Errorf("keyword: got %s", after.Syntax.Hex("keyword"))
	}
	if diff := before.Syntax.Diff(after.Syntax); len(diff) != 1 {
		t.Errorf("syntax diff: got %v, want only keyword", diff)
	}
	if diff := before.ANSI.Diff(after.ANSI); len(diff) != 1 || diff[0] != "Blue" {
		t.Errorf("ansi diff: got %v, want only Blue", diff)
	}
	if after.Revision != 2 {
		t.Errorf("Revision: got %d, want 2", after.Revision)
	}
}

func TestHandleColorChange_OverlayGetsAlpha(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())

	if err := c.HandleColorChange("selection", "#336699"); err != nil {
		t.Fatalf("HandleColorChange: %v", err)
	}
	if got := c.Snapshot().UI.Hex(palette.Selection); got != "#33669970" {
		t.Errorf("selection: got %s, want #33669970", got)
	}
}

func TestHandleColorChange_BackgroundCascade(t *testing.T) {
	c, _ := newTestController(t, Options{
		IsDark:           true,
		BaseHue:          120,
		UISaturation:     30,
		SyntaxSaturation: 70,
		Scheme:           scheme.Monochromatic,
		ForceRegenerate:  true,
	})
	c.GenerateColors(Partial{})
	c.Flush()

	if err := c.HandleColorChange("BG1", "#1e1e1e"); err != nil {
		t.Fatalf("dark BG1: %v", err)
	}
	dark := c.Snapshot()
	darkComment, _ := dark.Syntax.Color(palette.Comment)
	darkANSI := dark.ANSI

	if err := c.HandleColorChange("BG1", "#ffffff"); err != nil {
		t.Fatalf("light BG1: %v", err)
	}
	light := c.Snapshot()
	lightComment, _ := light.Syntax.Color(palette.Comment)

	if light.Dark {
		t.Error("Dark: want false after white BG1")
	}
	if lightComment.HSL().L >= darkComment.HSL().L {
		t.Errorf("comment lightness: light %.1f should be below dark %.1f", lightComment.HSL().L, darkComment.HSL().L)
	}

	thresholds := palette.DefaultThresholds()
	if cr := color.ContrastRatio(lightComment, color.White); cr < thresholds.CommentLight.Min-1e-9 || cr > thresholds.CommentLight.Max+1e-9 {
		t.Errorf("light comment contrast %.2f outside band", cr)
	}
	if light.ANSI.Equal(darkANSI) {
		t.Error("ANSI should be resynthesized when BG1 changes")
	}
	if light.ANSI.Hex("Black") != "#000000" {
		t.Errorf("Black: got %s", light.ANSI.Hex("Black"))
	}
	if light.UI.Hex(palette.FG1) != dark.UI.Hex(palette.FG1) {
		t.Error("a BG1 edit must not regenerate other UI roles")
	}
}

func TestHandleColorChange_SameBackgroundNoCascade(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	before := c.Snapshot()

	if err := c.HandleColorChange("bg1", "#1E1E1E"); err != nil {
		t.Fatalf("HandleColorChange: %v", err)
	}

	after := c.Snapshot()
	if !after.Syntax.Equal(before.Syntax) || !after.ANSI.Equal(before.ANSI) {
		t.Error("unchanged BG1 should not cascade")
	}
}

func TestANSI_BlackInvariant(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())

	for _, hue := range []float64{0, 90, 180, 270} {
		c.SetBaseHue(hue)
		c.Flush()
		if got := c.Snapshot().ANSI.Hex("Black"); got != "#000000" {
			t.Errorf("hue %v: Black got %s", hue, got)
		}
	}

	if err := c.RegenerateANSI(); err != nil {
		t.Fatalf("RegenerateANSI: %v", err)
	}
	if got := c.Snapshot().ANSI.Hex("Black"); got != "#000000" {
		t.Errorf("after RegenerateANSI: Black got %s", got)
	}
}

func TestSetUISaturation_Immediate(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.SetUISaturation(80)

	if sched.Armed() != 0 {
		t.Error("saturation changes must bypass the debounce")
	}

	snap := c.Snapshot()
	if snap.Revision != 1 || snap.Options.UISaturation != 80 {
		t.Errorf("revision %d saturation %v", snap.Revision, snap.Options.UISaturation)
	}

	bg, _ := snap.UI.Color(palette.BG1)
	for _, role := range []string{palette.FG1, palette.FG2, palette.AC1, palette.AC2} {
		fg, _ := snap.UI.Color(role)
		if cr := color.ContrastRatio(fg, bg); cr < 5.5-1e-9 {
			t.Errorf("%s: contrast %.2f below floor", role, cr)
		}
	}
	if got := snap.UI.Hex(palette.LineHighlight); len(got) != 9 {
		t.Errorf("lineHighlight: got %s, want alpha kept", got)
	}
}

func TestSetSyntaxSaturation_KeepsLocked(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())
	c.ToggleColorLock("function")
	before := c.Snapshot()

	c.SetSyntaxSaturation(10)

	after := c.Snapshot()
	if sched.Armed() != 0 {
		t.Error("saturation changes must bypass the debounce")
	}
	if after.Syntax.Hex("function") != before.Syntax.Hex("function") {
		t.Error("locked function changed")
	}

	kw, _ := after.Syntax.Color(palette.Keyword)
	old, _ := before.Syntax.Color(palette.Keyword)
	if kw.HSL().S >= old.HSL().S-20 {
		t.Errorf("keyword saturation: got %.1f, want well below %.1f", kw.HSL().S, old.HSL().S)
	}
}

func TestRegeneration_FailureKeepsLastGood(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	before := c.Snapshot()

	c.generate = func(float64, scheme.Scheme) []float64 { return nil }
	c.SetBaseHue(33)
	c.Flush()

	after := c.Snapshot()
	var synthErr *themeerr.SynthesisError
	if !errors.As(c.LastError(), &synthErr) {
		t.Fatalf("LastError: got %v, want SynthesisError", c.LastError())
	}
	if after.Revision != before.Revision {
		t.Error("failed cycle must not commit")
	}
	if !after.UI.Equal(before.UI) || !after.Syntax.Equal(before.Syntax) || !after.ANSI.Equal(before.ANSI) {
		t.Error("palettes changed after a failed cycle")
	}
	if after.Options != before.Options {
		t.Errorf("Options: got %+v, want the last committed %+v", after.Options, before.Options)
	}
	if after.Requested != after.Options {
		t.Errorf("Requested: got %+v, want Options once idle", after.Requested)
	}

	c.generate = scheme.Generate
	c.SetBaseHue(34)
	c.Flush()
	if c.LastError() != nil {
		t.Errorf("LastError: got %v, want cleared after a good commit", c.LastError())
	}
}

func TestSetters_OptionsCommitWithPalettes(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())
	committed := c.Snapshot().Options

	c.SetBaseHue(40)
	c.SetScheme(scheme.Triadic)
	c.SetIsDark(false)

	snap := c.Snapshot()
	if snap.Options != committed {
		t.Errorf("Options: got %+v, want %+v until the timer fires", snap.Options, committed)
	}
	want := committed
	want.BaseHue, want.Scheme, want.IsDark = 40, scheme.Triadic, false
	if snap.Requested != want {
		t.Errorf("Requested: got %+v, want %+v", snap.Requested, want)
	}

	sched.FireAll()
	snap = c.Snapshot()
	if snap.Options != want {
		t.Errorf("Options after commit: got %+v, want %+v", snap.Options, want)
	}
	if snap.Hues[0] != 40 {
		t.Errorf("Hues[0]: got %v, want 40", snap.Hues[0])
	}
}

func TestSetUISaturation_OverridesPendingRequest(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.Randomize()
	c.SetUISaturation(12)
	sched.FireAll()

	if got := c.Snapshot().Options.UISaturation; got != 12 {
		t.Errorf("UISaturation: got %v, want the later slider value 12", got)
	}
}

func TestRandomize(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	c.ToggleColorLock("FG1")
	before := c.Snapshot()

	c.Randomize()
	c.Flush()
	after := c.Snapshot()

	if after.UI.Hex(palette.FG1) != before.UI.Hex(palette.FG1) {
		t.Error("Randomize must keep locked roles")
	}
	if after.Options.ForceRegenerate {
		t.Error("Randomize should not make ForceRegenerate stick")
	}
	if after.Revision != 1 {
		t.Errorf("Revision: got %d", after.Revision)
	}
}

func TestRegenerateUnlocked_SmallNudge(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())
	base := c.Snapshot().Options

	c.RegenerateUnlocked()
	c.Flush()
	opts := c.Snapshot().Options

	delta := math.Abs(opts.BaseHue - base.BaseHue)
	if delta > 180 {
		delta = 360 - delta
	}
	if delta > 15 {
		t.Errorf("hue moved %.1f, want <= 15", delta)
	}
	if math.Abs(opts.UISaturation-base.UISaturation) > 10 || math.Abs(opts.SyntaxSaturation-base.SyntaxSaturation) > 10 {
		t.Errorf("saturations moved too far: %+v", opts)
	}
}

func TestApplyPreset(t *testing.T) {
	c, _ := newTestController(t, DefaultOptions())

	preset, _ := scheme.FindPreset("dracula", scheme.Presets())
	c.ApplyPreset(preset)
	c.Flush()

	opts := c.Snapshot().Options
	if opts.BaseHue != 260 || opts.Scheme != scheme.SplitComplementary {
		t.Errorf("preset: got %+v", opts)
	}
}

func TestStop(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.SetBaseHue(50)
	c.Stop()
	c.Stop()

	if sched.Live() != 0 {
		t.Error("Stop should cancel the pending timer")
	}

	testutil.Drain(t, c.Updates(), 50*time.Millisecond)
	if _, ok := <-c.Updates(); ok {
		t.Error("Updates should be closed after Stop")
	}

	c.SetBaseHue(60)
	if sched.Armed() != 1 {
		t.Error("setters after Stop must not arm timers")
	}
}

func TestPartialApply(t *testing.T) {
	base := DefaultOptions()

	got := Partial{BaseHue: Ptr(-10.0), Few: Ptr(true)}.apply(base)
	if got.BaseHue != 350 || !got.Few || got.Scheme != base.Scheme {
		t.Errorf("apply: got %+v", got)
	}

	if got := (Partial{}).apply(base); got != base {
		t.Errorf("empty partial: got %+v, want %+v", got, base)
	}
}

func TestSetThresholds(t *testing.T) {
	c, sched := newTestController(t, DefaultOptions())

	c.SetThresholds(palette.DefaultThresholds())
	if sched.Armed() != 0 {
		t.Errorf("unchanged thresholds: armed %d, want 0", sched.Armed())
	}
	c.SetThresholds(palette.Thresholds{})
	if sched.Armed() != 0 {
		t.Errorf("zero thresholds fall back to defaults: armed %d, want 0", sched.Armed())
	}

	strict := palette.DefaultThresholds()
	strict.Min = 7
	c.SetThresholds(strict)
	if c.State() != StatePending {
		t.Errorf("State: got %v, want pending", c.State())
	}

	sched.FireAll()
	if got := c.synth.Thresholds().Min; got != 7 {
		t.Errorf("Min: got %v, want 7", got)
	}
	if snap := c.Snapshot(); snap.Revision != 1 {
		t.Errorf("Revision: got %d, want 1", snap.Revision)
	}
}
