package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/icons"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// BadgeOptions configures badge rendering.
type BadgeOptions struct {
	Compact  bool
	Bold     bool
	ShowIcon bool
}

// DefaultBadgeOptions returns the standard badge look.
func DefaultBadgeOptions() BadgeOptions {
	return BadgeOptions{Bold: true, ShowIcon: true}
}

// TaskStatusBadge renders a badge for a task lifecycle status:
// pending, in_progress, completed, failed.
func TaskStatusBadge(status string, opts ...BadgeOptions) string {
	t := theme.Current()
	ic := icons.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	var icon, label string

	switch strings.ToLower(status) {
	case "pending", "queued":
		bgColor = t.Yellow
		icon = ic.Clock
		label = "pending"
	case "in_progress", "running", "active":
		bgColor = t.Blue
		icon = ic.Dot
		label = "running"
	case "completed", "done":
		bgColor = t.Success
		icon = ic.Check
		label = "done"
	case "failed", "error":
		bgColor = t.Error
		icon = ic.Cross
		label = "failed"
	default:
		bgColor = t.Surface1
		icon = ic.Question
		label = status
	}

	text := label
	if opt.ShowIcon {
		text = icon + " " + label
	}
	return renderBadge(text, bgColor, t.Base, opt)
}

// AgentStatusBadge renders a badge for an agent availability status:
// idle, busy, offline.
func AgentStatusBadge(status string, opts ...BadgeOptions) string {
	t := theme.Current()
	ic := icons.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	var icon, label string

	switch strings.ToLower(status) {
	case "idle", "available":
		bgColor = t.Teal
		icon = ic.Circle
		label = "idle"
	case "busy", "working":
		bgColor = t.Peach
		icon = ic.Bolt
		label = "busy"
	case "offline", "unavailable":
		bgColor = t.Overlay
		icon = ic.Cross
		label = "offline"
	default:
		bgColor = t.Surface1
		icon = ic.Question
		label = status
	}

	text := label
	if opt.ShowIcon {
		text = icon + " " + label
	}
	return renderBadge(text, bgColor, t.Base, opt)
}

// PriorityBadge renders a task priority badge: low, medium, high, critical.
func PriorityBadge(priority string, opts ...BadgeOptions) string {
	t := theme.Current()
	opt := DefaultBadgeOptions()
	opt.ShowIcon = false
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	switch strings.ToLower(priority) {
	case "critical":
		bgColor = t.Red
	case "high":
		bgColor = t.Peach
	case "medium":
		bgColor = t.Yellow
	case "low":
		bgColor = t.Blue
	default:
		bgColor = t.Surface1
	}

	return renderBadge(strings.ToLower(priority), bgColor, t.Base, opt)
}

// HealthBadge renders the overall system health: operational, degraded,
// or unreachable.
func HealthBadge(status string, opts ...BadgeOptions) string {
	t := theme.Current()
	ic := icons.Current()
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	var bgColor lipgloss.Color
	var icon, label string

	switch strings.ToLower(status) {
	case "online", "operational", "healthy", "ok", "running":
		bgColor = t.Green
		icon = ic.Check
		label = "operational"
	case "degraded", "warning":
		bgColor = t.Yellow
		icon = ic.Warning
		label = "degraded"
	case "offline", "unreachable", "down", "error":
		bgColor = t.Red
		icon = ic.Cross
		label = "unreachable"
	default:
		bgColor = t.Surface1
		icon = ic.Question
		label = status
	}

	text := label
	if opt.ShowIcon {
		text = icon + " " + label
	}
	return renderBadge(text, bgColor, t.Base, opt)
}

// StaleBadge marks last-known-good data that failed to refresh.
func StaleBadge() string {
	t := theme.Current()
	return renderBadge("stale", t.Yellow, t.Base, BadgeOptions{Bold: true})
}

// TextBadge renders a plain text badge with explicit colors.
func TextBadge(text string, bgColor, fgColor lipgloss.Color, opts ...BadgeOptions) string {
	opt := DefaultBadgeOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	return renderBadge(text, bgColor, fgColor, opt)
}

// CountBadge renders a numeric count badge.
func CountBadge(count int, bgColor, fgColor lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(bgColor).
		Foreground(fgColor).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("%d", count))
}

func renderBadge(text string, bgColor, fgColor lipgloss.Color, opt BadgeOptions) string {
	style := lipgloss.NewStyle().
		Background(bgColor).
		Foreground(fgColor)
	if opt.Bold {
		style = style.Bold(true)
	}
	if !opt.Compact {
		style = style.Padding(0, 1)
	}
	return style.Render(text)
}

// BadgeGroup joins badges with a single space.
func BadgeGroup(badges ...string) string {
	return strings.Join(badges, " ")
}
