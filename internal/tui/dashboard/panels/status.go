package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/engine"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/components"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/styles"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// StatusPanel shows the system-status snapshot: health, load, agent and
// task counters, and the AI API state.
type StatusPanel struct {
	PanelBase
	view engine.StatusView
}

// NewStatusPanel creates the status panel.
func NewStatusPanel() *StatusPanel {
	return &StatusPanel{
		PanelBase: NewPanelBase(PanelConfig{
			ID:        "status",
			Title:     "System Status",
			MinWidth:  30,
			MinHeight: 8,
		}),
	}
}

// SetView replaces the panel's reconciled snapshot.
func (p *StatusPanel) SetView(view engine.StatusView) {
	p.view = view
}

// View renders the panel.
func (p *StatusPanel) View() string {
	t := theme.Current()
	w := p.InnerWidth()

	title := p.Config().Title
	if p.view.Stale {
		title += " " + styles.StaleBadge()
	} else if p.view.LastErr != "" && !p.view.HasData {
		title += " " + errorBadge()
	}

	if !p.view.HasData {
		if p.view.LastErr != "" {
			return p.frame(title, components.ErrorState("backend unreachable", p.view.LastErr, w))
		}
		return p.frame(title, components.LoadingState("Connecting…", w))
	}

	s := p.view.Snapshot
	label := lipgloss.NewStyle().Foreground(t.Subtext)
	value := lipgloss.NewStyle().Foreground(t.Text)

	var b strings.Builder
	b.WriteString(styles.BadgeGroup(
		styles.HealthBadge(s.Status),
		aiBadge(s.AIAPIStatus),
	) + "\n\n")

	b.WriteString(label.Render("Load ") +
		styles.LoadBar(s.SystemLoad/100, maxInt(w-11, 4)) +
		value.Render(fmt.Sprintf(" %3.0f%%", s.SystemLoad)) + "\n")

	b.WriteString(label.Render("Tasks  ") +
		value.Render(fmt.Sprintf("%d active", s.ActiveTasks)) + "\n")
	b.WriteString(label.Render("Agents ") +
		value.Render(fmt.Sprintf("%d total", s.TotalAgents)) +
		label.Render(fmt.Sprintf("  (%d idle, %d busy)", s.IdleAgents, s.BusyAgents)) + "\n")
	b.WriteString(label.Render("Rate   ") +
		value.Render(fmt.Sprintf("%.1f msg/min", s.MessageRate)) + "\n")

	if s.Uptime != "" {
		b.WriteString(label.Render("Uptime ") + value.Render(s.Uptime) + "\n")
	}
	if s.AIAPIMessage != "" {
		msg := lipgloss.NewStyle().Foreground(t.Yellow).Italic(true)
		b.WriteString(msg.Render(layout.Truncate(s.AIAPIMessage, w)) + "\n")
	}

	return p.frame(title, b.String())
}

func aiBadge(status string) string {
	t := theme.Current()
	switch strings.ToLower(status) {
	case "ok", "online":
		return styles.TextBadge("ai ok", t.Green, t.Base)
	case "restricted", "limited":
		return styles.TextBadge("ai restricted", t.Yellow, t.Base)
	case "":
		return styles.TextBadge("ai ?", t.Surface1, t.Text)
	default:
		return styles.TextBadge("ai "+strings.ToLower(status), t.Red, t.Base)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
