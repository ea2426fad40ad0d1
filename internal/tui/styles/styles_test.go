package styles

import (
	"strings"
	"testing"
)

func TestParseHexRoundTrip(t *testing.T) {
	c := ParseHex("#89b4fa")
	if c.R != 0x89 || c.G != 0xb4 || c.B != 0xfa {
		t.Errorf("unexpected parse result %+v", c)
	}
	if c.ToHex() != "#89b4fa" {
		t.Errorf("round trip broke: %s", c.ToHex())
	}
}

func TestLerp(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0}
	b := Color{R: 100, G: 200, B: 50}
	mid := Lerp(a, b, 0.5)
	if mid.R != 50 || mid.G != 100 || mid.B != 25 {
		t.Errorf("unexpected midpoint %+v", mid)
	}
	if Lerp(a, b, 0) != a || Lerp(a, b, 1) != b {
		t.Error("endpoints must be exact")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 10); got != "" {
		t.Errorf("empty series renders nothing, got %q", got)
	}
	if got := Sparkline([]float64{1, 2, 3}, 0); got != "" {
		t.Errorf("zero width renders nothing, got %q", got)
	}

	got := Sparkline([]float64{0, 50, 100}, 10)
	runes := []rune(got)
	if len(runes) != 3 {
		t.Fatalf("expected 3 cells, got %d in %q", len(runes), got)
	}
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("expected baseline and peak at the edges, got %q", got)
	}

	// Flat zero series stays on the baseline.
	flat := Sparkline([]float64{0, 0, 0}, 10)
	if flat != "▁▁▁" {
		t.Errorf("flat zero series must stay on the baseline, got %q", flat)
	}

	// A longer series keeps the newest values.
	long := Sparkline([]float64{100, 0, 0}, 2)
	if []rune(long)[0] != '▁' {
		t.Errorf("oldest value must be dropped, got %q", long)
	}
}

func TestSpinnerFrameCycles(t *testing.T) {
	if SpinnerFrame(0) != SpinnerFrame(len(SpinnerFrames)) {
		t.Error("spinner must wrap around")
	}
	if SpinnerFrame(-1) == "" {
		t.Error("negative ticks must still produce a frame")
	}
}

func TestProgressBarClamps(t *testing.T) {
	over := ProgressBar(1.5, 4)
	if !strings.Contains(over, "█") {
		t.Error("expected a full bar for percent > 1")
	}
	if strings.Contains(over, "░") {
		t.Error("overfull bar must not contain empty cells")
	}

	under := ProgressBar(-0.5, 4)
	if strings.Contains(under, "█") {
		t.Error("negative percent must render no filled cells")
	}
}
