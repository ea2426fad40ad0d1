package panels

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/engine"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/components"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/styles"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// ChartPanel renders the rolling load history captured by the engine's
// sample window, one sample per refresh cycle.
type ChartPanel struct {
	PanelBase
	samples []engine.Sample
	cap     int
}

// NewChartPanel creates the chart panel. windowCap sets the label shown
// when the window is not yet full.
func NewChartPanel(windowCap int) *ChartPanel {
	return &ChartPanel{
		PanelBase: NewPanelBase(PanelConfig{
			ID:        "chart",
			Title:     "Load History",
			MinWidth:  24,
			MinHeight: 6,
		}),
		cap: windowCap,
	}
}

// SetSamples replaces the chart's sample window.
func (p *ChartPanel) SetSamples(samples []engine.Sample) {
	p.samples = samples
}

// SetCap updates the window-capacity label after a config reload.
func (p *ChartPanel) SetCap(n int) {
	if n > 0 {
		p.cap = n
	}
}

// View renders the panel.
func (p *ChartPanel) View() string {
	t := theme.Current()
	w := p.InnerWidth()

	if len(p.samples) == 0 {
		return p.frame(p.Config().Title, components.EmptyState("No samples yet", w))
	}

	loads := make([]float64, len(p.samples))
	tasks := make([]float64, len(p.samples))
	for i, s := range p.samples {
		loads[i] = s.Load
		tasks[i] = float64(s.ActiveTasks)
	}
	latest := p.samples[len(p.samples)-1]

	label := lipgloss.NewStyle().Foreground(t.Subtext)
	value := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	spark := lipgloss.NewStyle().Foreground(t.Blue)
	spark2 := lipgloss.NewStyle().Foreground(t.Mauve)
	axis := lipgloss.NewStyle().Foreground(t.Overlay)

	var body string
	body += label.Render("load  ") + spark.Render(styles.Sparkline(loads, maxInt(w-12, 4))) +
		value.Render(fmt.Sprintf(" %3.0f%%", latest.Load)) + "\n"
	body += label.Render("tasks ") + spark2.Render(styles.Sparkline(tasks, maxInt(w-12, 4))) +
		value.Render(fmt.Sprintf(" %3d", latest.ActiveTasks)) + "\n"

	// Time axis: oldest to newest label.
	window := fmt.Sprintf("%d/%d samples", len(p.samples), p.cap)
	body += axis.Render(fmt.Sprintf("%s → %s  %s", p.samples[0].Label, latest.Label, window)) + "\n"

	return p.frame(p.Config().Title, body)
}
