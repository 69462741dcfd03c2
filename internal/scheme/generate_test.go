package scheme

import (
	"math"
	"testing"
)

func assertHues(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d hues %v, want %d %v", name, len(got), got, len(want), want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestGenerate_Classic(t *testing.T) {
	tests := []struct {
		scheme Scheme
		base   float64
		want   []float64
	}{
		{Monochromatic, 200, []float64{200, 200, 200, 200}},
		{Analogous, 200, []float64{200, 230, 260, 170, 140}},
		{Complementary, 200, []float64{200, 20}},
		{SplitComplementary, 100, []float64{100, 250, 310}},
		{Triadic, 200, []float64{200, 260, 320}},
		{Tetradic, 10, []float64{10, 100, 190, 280}},
		{PentagramStar, 0, []float64{0, 72, 144, 216, 288}},
		{VesicaPiscis, 10, []float64{43, 76}},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			assertHues(t, tt.scheme.String(), Generate(tt.base, tt.scheme), tt.want)
		})
	}
}

func TestGenerate_Wraparound(t *testing.T) {
	got := Generate(350, Analogous)
	assertHues(t, "Analogous(350)", got, []float64{350, 20, 50, 320, 290})
}

func TestGenerate_AllInRange(t *testing.T) {
	for _, s := range All() {
		for _, base := range []float64{0, 45.5, 179, 350, 359.9, 720, -30} {
			hues := Generate(base, s)
			if len(hues) == 0 {
				t.Fatalf("%s(%v): empty hue list", s, base)
			}
			if len(hues) > 12 {
				t.Errorf("%s(%v): got %d hues, want at most 12", s, base, len(hues))
			}
			for _, h := range hues {
				if h < 0 || h >= 360 || math.IsNaN(h) {
					t.Errorf("%s(%v): hue %v outside [0,360)", s, base, h)
				}
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, s := range All() {
		a := Generate(123.4, s)
		b := Generate(123.4, s)
		assertHues(t, s.String(), a, b)
	}
}

func TestGenerate_ExoticLengths(t *testing.T) {
	for _, s := range All()[FibonacciSequence:] {
		n := len(Generate(90, s))
		if n < 3 || n > 12 {
			t.Errorf("%s: got %d hues, want 3..12", s, n)
		}
	}
}

func TestGenerate_Unknown(t *testing.T) {
	assertHues(t, "unknown", Generate(400, Scheme(999)), []float64{40})
}

func TestGenerate_GoldenRatio(t *testing.T) {
	got := Generate(0, GoldenRatio)
	if math.Abs(got[1]-222.49223594996215) > 1e-9 {
		t.Errorf("GoldenRatio[1]: got %v", got[1])
	}
}

func TestAdditionalHues(t *testing.T) {
	assertHues(t, "Analogous", AdditionalHues(350, Analogous), []float64{20, 320})
	assertHues(t, "Complementary", AdditionalHues(90, Complementary), []float64{270})
	assertHues(t, "Monochromatic", AdditionalHues(90, Monochromatic), []float64{90})

	if got := AdditionalHues(90, Scheme(-1)); len(got) != 0 {
		t.Errorf("unknown scheme: got %v, want empty", got)
	}

	for _, s := range All() {
		if n := len(AdditionalHues(10, s)); n > 4 {
			t.Errorf("%s: got %d additional hues, want a small set", s, n)
		}
	}
}
