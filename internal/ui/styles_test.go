package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyleking/lazytheme/internal/ui/theme"
)

func TestApplyFuzzyFilter(t *testing.T) {
	items := []string{"Analogous", "Complementary", "SplitComplementary", "Triadic"}

	tests := []struct {
		query string
		want  []string
	}{
		{"", items},
		{"  ", items},
		{"tri", []string{"Triadic"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		got := ApplyFuzzyFilter(tt.query, items)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: got %v, want %v", tt.query, got, tt.want)
			}
		}
	}
}

func TestApplyFuzzyFilter_Complementary(t *testing.T) {
	got := ApplyFuzzyFilter("compl", []string{"Analogous", "Complementary", "SplitComplementary"})
	if len(got) != 2 || got[0] != "Complementary" {
		t.Errorf("got %v, want Complementary first", got)
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(theme.Macchiato()) })

	Apply(theme.Latte())
	if PrimaryColor != lipgloss.Color("#8839ef") {
		t.Errorf("PrimaryColor: got %s", PrimaryColor)
	}
}

func TestOnColor(t *testing.T) {
	if got := OnColor("#000000"); got != lipgloss.Color("#ffffff") {
		t.Errorf("on black: got %s", got)
	}
	if got := OnColor("#ffffff"); got != lipgloss.Color("#000000") {
		t.Errorf("on white: got %s", got)
	}
	if got := OnColor("junk"); got != lipgloss.Color("#ffffff") {
		t.Errorf("on junk: got %s", got)
	}
}
