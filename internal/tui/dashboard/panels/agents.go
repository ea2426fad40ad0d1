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

// AgentsPanel renders the agent roster with availability and
// capabilities.
type AgentsPanel struct {
	PanelBase
	view engine.AgentsView
}

// NewAgentsPanel creates the agents panel.
func NewAgentsPanel() *AgentsPanel {
	return &AgentsPanel{
		PanelBase: NewPanelBase(PanelConfig{
			ID:        "agents",
			Title:     "Agents",
			MinWidth:  30,
			MinHeight: 6,
		}),
	}
}

// SetView replaces the agent list.
func (p *AgentsPanel) SetView(view engine.AgentsView) {
	p.view = view
}

// View renders the panel.
func (p *AgentsPanel) View() string {
	t := theme.Current()
	w := p.InnerWidth()

	title := p.Config().Title
	if p.view.State == engine.ListError {
		title += " " + errorBadge()
	}

	switch p.view.State {
	case engine.ListLoading:
		return p.frame(title, components.LoadingState("Loading agents…", w))
	case engine.ListError:
		return p.frame(title, components.ErrorState("could not load agents", p.view.Err, w))
	case engine.ListEmpty:
		return p.frame(title, components.EmptyState("No agents registered", w))
	}

	name := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	caps := lipgloss.NewStyle().Foreground(t.Overlay)

	var b strings.Builder
	maxRows := p.InnerHeight()
	for i, agent := range p.view.Agents {
		if i >= maxRows {
			more := lipgloss.NewStyle().Foreground(t.Overlay)
			b.WriteString(more.Render(fmt.Sprintf("…and %d more", len(p.view.Agents)-i)) + "\n")
			break
		}

		badge := styles.AgentStatusBadge(agent.Status, styles.BadgeOptions{Bold: false, ShowIcon: true})
		line := name.Render(layout.PadRight(agent.Name, 18)) + " " + badge
		if len(agent.Capabilities) > 0 {
			capList := strings.Join(agent.Capabilities, ", ")
			avail := w - lipgloss.Width(line) - 2
			if avail > 6 {
				line += "  " + caps.Render(layout.TruncateWidth(capList, avail))
			}
		}
		b.WriteString(line + "\n")
	}

	return p.frame(title, b.String())
}
