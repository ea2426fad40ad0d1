// Package styles provides the shared rendering primitives for the TUI:
// gradients, progress bars, sparklines, and badges.
package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// Color represents an RGB color for gradient math.
type Color struct {
	R, G, B int
}

// ParseHex converts a "#rrggbb" string to a Color.
func ParseHex(hex string) Color {
	var r, g, b int
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	}
	return Color{R: r, G: g, B: b}
}

// ToHex converts a Color back to a "#rrggbb" string.
func (c Color) ToHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates between two colors.
func Lerp(c1, c2 Color, t float64) Color {
	return Color{
		R: int(float64(c1.R) + t*(float64(c2.R)-float64(c1.R))),
		G: int(float64(c1.G) + t*(float64(c2.G)-float64(c1.G))),
		B: int(float64(c1.B) + t*(float64(c2.B)-float64(c1.B))),
	}
}

// GradientText applies a horizontal gradient to text.
func GradientText(text string, colors ...string) string {
	runes := []rune(text)
	n := len(runes)
	if len(colors) < 2 || n == 0 {
		return text
	}

	parsed := make([]Color, len(colors))
	for i, c := range colors {
		parsed[i] = ParseHex(c)
	}

	var result strings.Builder
	segments := len(parsed) - 1

	for i, r := range runes {
		var pos float64
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}

		segmentPos := pos * float64(segments)
		segmentIdx := int(segmentPos)
		if segmentIdx >= segments {
			segmentIdx = segments - 1
		}

		c := Lerp(parsed[segmentIdx], parsed[segmentIdx+1], segmentPos-float64(segmentIdx))
		result.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c\x1b[0m", c.R, c.G, c.B, r))
	}

	return result.String()
}

// ProgressBar renders a gradient progress bar. percent is clamped to
// [0, 1]; the filled run fades between the given colors, defaulting to
// blue-to-green.
func ProgressBar(percent float64, width int, colors ...string) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	filledWidth := int(percent * float64(width))
	emptyWidth := width - filledWidth

	if len(colors) < 2 {
		t := theme.Current()
		colors = []string{string(t.Blue), string(t.Green)}
	}

	filled := GradientText(strings.Repeat("█", filledWidth), colors...)
	empty := lipgloss.NewStyle().
		Foreground(theme.Current().Surface1).
		Render(strings.Repeat("░", emptyWidth))

	return filled + empty
}

// LoadBar renders a progress bar whose color shifts with the value:
// green when idle, through yellow, to red when saturated.
func LoadBar(percent float64, width int) string {
	t := theme.Current()
	switch {
	case percent >= 0.85:
		return ProgressBar(percent, width, string(t.Peach), string(t.Red))
	case percent >= 0.6:
		return ProgressBar(percent, width, string(t.Yellow), string(t.Peach))
	default:
		return ProgressBar(percent, width, string(t.Teal), string(t.Green))
	}
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a series of values as a compact unicode chart.
// Values are scaled against the series maximum; a max of zero renders a
// flat baseline. The output is at most width cells, keeping the newest
// values when the series is longer.
func Sparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if max > 0 {
			idx = int(math.Round(v / max * float64(len(sparkRunes)-1)))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// SpinnerFrames are the frames for the loading spinner.
var SpinnerFrames = []string{
	"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏",
}

// SpinnerFrame returns the spinner frame for the given tick.
func SpinnerFrame(tick int) string {
	if tick < 0 {
		tick = -tick
	}
	return SpinnerFrames[tick%len(SpinnerFrames)]
}
