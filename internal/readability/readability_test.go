package readability

import (
	"testing"

	"github.com/kyleking/lazytheme/internal/color"
)

func TestEnsureReadability_AlreadyReadable(t *testing.T) {
	fg := color.MustParse("#d4d4d4")
	bg := color.MustParse("#1e1e1e")

	res := EnsureReadability(fg, bg, 5.5)

	if !res.Color.Equal(fg) {
		t.Errorf("Color: got %s, want unchanged %s", res.Color, fg)
	}
	if res.Iterations != 0 {
		t.Errorf("Iterations: got %d, want 0", res.Iterations)
	}
	if !res.Converged() {
		t.Error("expected convergence")
	}
}

func TestEnsureReadability_MeetsFloor(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
	}{
		{"dim blue on dark", "#264f78", "#1e1e1e"},
		{"pale yellow on white", "#f0e68c", "#ffffff"},
		{"dark red on black", "#400000", "#000000"},
		{"mid green on light grey", "#55aa55", "#eeeeee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg := color.MustParse(tt.bg)
			res := EnsureReadability(color.MustParse(tt.fg), bg, 5.5)

			if !res.Converged() {
				t.Fatalf("expected convergence, got warning %v", res.Warning)
			}
			if got := color.ContrastRatio(res.Color, bg); got < 5.5 {
				t.Errorf("contrast: got %.2f, want >= 5.5", got)
			}
			if res.Iterations > MaxIterations {
				t.Errorf("Iterations: got %d, want <= %d", res.Iterations, MaxIterations)
			}
		})
	}
}

func TestEnsureReadability_DirectionFollowsBackground(t *testing.T) {
	tests := []struct {
		name    string
		fg      string
		bg      string
		lighter bool
	}{
		{"light grey on dark", "#8c8c8c", "#1e1e1e", true},
		{"dark grey on white", "#707070", "#ffffff", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := color.MustParse(tt.fg)
			res := EnsureReadability(fg, color.MustParse(tt.bg), 5.5)

			if !res.Converged() {
				t.Fatalf("Converged: got false, contrast %.2f", res.Contrast)
			}
			before, after := fg.HSL().L, res.Color.HSL().L
			if tt.lighter && after <= before {
				t.Errorf("L: got %.1f, want above %.1f", after, before)
			}
			if !tt.lighter && after >= before {
				t.Errorf("L: got %.1f, want below %.1f", after, before)
			}
		})
	}
}

func TestEnsureReadability_Unreachable(t *testing.T) {
	grey := color.MustParse("#777777")

	res := EnsureReadability(grey, grey, 21)

	if res.Iterations > MaxIterations {
		t.Errorf("Iterations: got %d, want <= %d", res.Iterations, MaxIterations)
	}
	if res.Warning == nil {
		t.Fatal("expected a convergence warning")
	}
	if res.Contrast <= 1 {
		t.Errorf("Contrast: got %.2f, want best effort above 1", res.Contrast)
	}
	if res.Warning.Target != 21 {
		t.Errorf("Warning.Target: got %v, want 21", res.Warning.Target)
	}
}

func TestEnsureReadability_KeepsAlpha(t *testing.T) {
	bg := color.MustParse("#1e1e1e")
	res := EnsureReadability(color.MustParse("#20202070"), bg, 3)

	if a, ok := res.Color.Alpha(); !ok || a != 0x70 {
		t.Errorf("Alpha: got %x %v, want 70", a, ok)
	}
}

func TestEnsureReadability_GreyStaysGrey(t *testing.T) {
	bg := color.MustParse("#1e1e1e")
	res := EnsureReadability(color.MustParse("#333333"), bg, 5.5)

	if s := res.Color.HSL().S; s != 0 {
		t.Errorf("S: got %v, want 0", s)
	}
}

func TestAdjustCommentColor_Band(t *testing.T) {
	tests := []struct {
		name     string
		fg       string
		bg       string
		min, max float64
	}{
		{"too bright on dark", "#e0e0e0", "#1e1e1e", 4.0, 4.5},
		{"too dim on dark", "#303030", "#1e1e1e", 4.0, 4.5},
		{"too dark on white", "#000000", "#ffffff", 5.0, 5.5},
		{"too light on white", "#cccccc", "#ffffff", 5.0, 5.5},
		{"saturated green on dark", "#00ff00", "#1e1e1e", 4.0, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg := color.MustParse(tt.bg)
			res := AdjustCommentColor(color.MustParse(tt.fg), bg, tt.min, tt.max)

			if !res.Converged() {
				t.Fatalf("expected convergence, got %v", res.Warning)
			}
			cr := color.ContrastRatio(res.Color, bg)
			if cr < tt.min || cr > tt.max {
				t.Errorf("contrast: got %.2f, want [%.1f, %.1f]", cr, tt.min, tt.max)
			}
			if s := res.Color.HSL().S; s > CommentCeiling(bg) {
				t.Errorf("S: got %.1f, want <= %.1f", s, CommentCeiling(bg))
			}
		})
	}
}

func TestAdjustCommentColor_Terminates(t *testing.T) {
	grey := color.MustParse("#777777")
	res := AdjustCommentColor(grey, grey, 15, 16)

	if res.Iterations > MaxIterations {
		t.Errorf("Iterations: got %d, want <= %d", res.Iterations, MaxIterations)
	}
	if res.Warning == nil {
		t.Error("expected a convergence warning for an unreachable band")
	}
}

func TestCommentCeiling(t *testing.T) {
	if got := CommentCeiling(color.MustParse("#1e1e1e")); got != 15 {
		t.Errorf("dark: got %v, want 15", got)
	}
	if got := CommentCeiling(color.White); got != 35 {
		t.Errorf("light: got %v, want 35", got)
	}
}
