// Package toasts renders the notification queue as a stack of styled
// lines across the top of the dashboard.
package toasts

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/toast"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/icons"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// Render draws the visible notifications, newest last, right-aligned to
// the given width. An empty queue renders nothing.
func Render(notifications []toast.Notification, width int) string {
	if len(notifications) == 0 {
		return ""
	}

	lines := make([]string, 0, len(notifications))
	for _, n := range notifications {
		lines = append(lines, renderOne(n, width))
	}
	return strings.Join(lines, "\n")
}

func renderOne(n toast.Notification, width int) string {
	t := theme.Current()
	ic := icons.Current()

	var color lipgloss.Color
	var icon string
	switch n.Kind {
	case toast.Success:
		color = t.Green
		icon = ic.Check
	case toast.Warning:
		color = t.Yellow
		icon = ic.Warning
	case toast.Error:
		color = t.Red
		icon = ic.Cross
	default:
		color = t.Sky
		icon = ic.Info
	}

	msg := n.Message
	if width > 8 {
		msg = layout.Truncate(msg, width-6)
	}

	body := lipgloss.NewStyle().
		Background(t.Surface0).
		Foreground(color).
		Bold(true).
		Padding(0, 1).
		Render(icon + " " + msg)

	if width > 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(body)
	}
	return body
}
