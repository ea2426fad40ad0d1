// Package components renders the shared placeholder states: loading,
// empty, and error views that panels show instead of data.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/icons"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

type StateKind int

const (
	StateEmpty StateKind = iota
	StateLoading
	StateError
)

// StateOptions configures placeholder rendering.
type StateOptions struct {
	Kind    StateKind
	Icon    string
	Message string
	Hint    string
	Width   int
	Align   lipgloss.Position
}

// RenderState renders a one- or two-line placeholder for a panel body.
func RenderState(opts StateOptions) string {
	t := theme.Current()
	ic := icons.Current()

	align := opts.Align
	indent := "  "
	if align == lipgloss.Center {
		indent = ""
	}

	icon := strings.TrimSpace(opts.Icon)
	lineStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)

	message := strings.TrimSpace(opts.Message)
	hint := strings.TrimSpace(opts.Hint)

	switch opts.Kind {
	case StateLoading:
		lineStyle = lipgloss.NewStyle().Foreground(t.Subtext).Italic(true)
		if message == "" {
			message = "Loading…"
		}
		if icon == "" {
			icon = ic.Gear
		}
	case StateError:
		lineStyle = lipgloss.NewStyle().Foreground(t.Red).Italic(true)
		if message == "" {
			message = "Something went wrong"
		}
		if icon == "" {
			icon = ic.Warning
		}
	default:
		if message == "" {
			message = "Nothing to show"
		}
		if icon == "" {
			icon = ic.Circle
		}
	}

	width := opts.Width
	if width < 0 {
		width = 0
	}

	prefix := indent + icon
	if icon != "" {
		prefix += " "
	}

	available := width
	if available > 0 {
		available -= lipgloss.Width(prefix)
		if available < 0 {
			available = 0
		}
	}
	if available > 0 {
		message = layout.Truncate(message, available)
	}

	lines := []string{lineStyle.Render(prefix + message)}

	if hint != "" {
		if width > 0 {
			hint = wordwrap.String(hint, width-len(indent))
		}
		for _, h := range strings.Split(hint, "\n") {
			lines = append(lines, hintStyle.Render(indent+h))
		}
	}

	rendered := strings.Join(lines, "\n")
	if width > 0 && (align == lipgloss.Center || align == lipgloss.Right) {
		return lipgloss.NewStyle().Width(width).Align(align).Render(rendered)
	}
	return rendered
}

// EmptyState renders a placeholder for a panel with no data.
func EmptyState(message string, width int) string {
	return RenderState(StateOptions{Kind: StateEmpty, Message: message, Width: width})
}

// LoadingState renders a placeholder while the first fetch is in flight.
func LoadingState(message string, width int) string {
	return RenderState(StateOptions{Kind: StateLoading, Message: message, Width: width})
}

// ErrorState renders a fetch-failure placeholder with an optional hint.
func ErrorState(message, hint string, width int) string {
	return RenderState(StateOptions{Kind: StateError, Message: message, Hint: hint, Width: width})
}
