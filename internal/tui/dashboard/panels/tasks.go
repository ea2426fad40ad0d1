package panels

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/engine"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/components"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/styles"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

// TasksPanel renders the recent-tasks table. It owns the selection
// cursor; the dashboard forwards j/k movement and reads Selected when
// the user opens the detail modal.
type TasksPanel struct {
	PanelBase
	view   engine.TasksView
	cursor int
}

// NewTasksPanel creates the tasks panel.
func NewTasksPanel() *TasksPanel {
	return &TasksPanel{
		PanelBase: NewPanelBase(PanelConfig{
			ID:        "tasks",
			Title:     "Recent Tasks",
			MinWidth:  40,
			MinHeight: 8,
		}),
	}
}

// SetView replaces the task list. The cursor is clamped so a shrinking
// list cannot leave the selection out of range.
func (p *TasksPanel) SetView(view engine.TasksView) {
	p.view = view
	if p.cursor >= len(view.Tasks) {
		p.cursor = len(view.Tasks) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// MoveCursor moves the selection by delta, clamped to the list.
func (p *TasksPanel) MoveCursor(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if n := len(p.view.Tasks); p.cursor >= n && n > 0 {
		p.cursor = n - 1
	}
}

// Selected returns the task under the cursor.
func (p *TasksPanel) Selected() (api.Task, bool) {
	if p.view.State != engine.ListReady || len(p.view.Tasks) == 0 {
		return api.Task{}, false
	}
	return p.view.Tasks[p.cursor], true
}

// View renders the panel.
func (p *TasksPanel) View() string {
	t := theme.Current()
	w := p.InnerWidth()

	title := p.Config().Title
	if p.view.State == engine.ListError {
		title += " " + errorBadge()
	}

	switch p.view.State {
	case engine.ListLoading:
		return p.frame(title, components.LoadingState("Loading tasks…", w))
	case engine.ListError:
		return p.frame(title, components.ErrorState("could not load tasks", p.view.Err, w))
	case engine.ListEmpty:
		return p.frame(title, components.EmptyState("No tasks yet. Press n to submit one.", w))
	}

	// The agent column only fits on wider panels.
	wide := p.Width() >= 70

	idW, stW, prW, pgW := 4, 11, 10, 10
	agW := 0
	if wide {
		agW = 8
	}
	titleW := w - idW - stW - prW - pgW - agW - 5
	if titleW < 8 {
		titleW = 8
	}

	header := lipgloss.NewStyle().Foreground(t.Overlay).Bold(true)
	row := lipgloss.NewStyle().Foreground(t.Text)
	selected := lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface0).Bold(true)

	head := layout.PadRight("ID", idW) + " " +
		layout.PadRight("Title", titleW) + " " +
		layout.PadRight("Status", stW) + " " +
		layout.PadRight("Priority", prW) + " " +
		layout.PadRight("Progress", pgW)
	if wide {
		head += " " + layout.PadRight("Agent", agW)
	}

	body := header.Render(head) + "\n"

	maxRows := p.InnerHeight() - 1
	for i, task := range p.view.Tasks {
		if i >= maxRows {
			more := lipgloss.NewStyle().Foreground(t.Overlay)
			body += more.Render(fmt.Sprintf("…and %d more", len(p.view.Tasks)-i)) + "\n"
			break
		}

		progress := styles.ProgressBar(task.Progress, pgW-5) +
			fmt.Sprintf(" %3.0f%%", task.Progress*100)

		// Badges carry their own colors, so compose styled cells.
		cells := []string{
			row.Render(layout.PadRight(fmt.Sprintf("#%d", task.ID), idW)),
			row.Render(layout.PadRight(task.Title, titleW)),
			styles.TaskStatusBadge(task.Status, styles.BadgeOptions{Bold: false, ShowIcon: true}),
			styles.PriorityBadge(task.Priority),
			progress,
		}
		if wide {
			agent := "—"
			if task.AssignedAgentID != nil {
				agent = fmt.Sprintf("a%d", *task.AssignedAgentID)
			}
			cells = append(cells, row.Render(layout.PadRight(agent, agW)))
		}

		rendered := styles.BadgeGroup(cells...)
		if i == p.cursor && p.IsFocused() {
			rendered = selected.Render("▸ ") + rendered
		} else {
			rendered = "  " + rendered
		}
		body += rendered + "\n"
	}

	return p.frame(title, body)
}
