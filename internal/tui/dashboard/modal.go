package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/engine"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/components"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/styles"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalDetail
	modalSubmit
	modalHelp
)

// Modal is the single overlay slot. Opening a modal while another is up
// replaces it; closing is idempotent.
type Modal struct {
	kind   modalKind
	width  int
	height int

	// Detail state. The summary row renders immediately; the full record
	// replaces it when the detail fetch settles. The execution trail and
	// AI response can outgrow the terminal, so they live in a viewport.
	taskID       int
	task         api.Task
	detailLoaded bool
	detailErr    error
	aiRendered   string
	vp           viewport.Model
	vpFilled     bool

	form submitForm
}

// IsOpen reports whether any modal is showing.
func (m *Modal) IsOpen() bool { return m.kind != modalNone }

// InSubmitForm reports whether keystrokes belong to the submit form.
func (m *Modal) InSubmitForm() bool { return m.kind == modalSubmit }

// SetSize sets the overlay dimensions from the terminal size.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = m.contentWidth()
	m.vp.Height = m.detailViewportHeight()
}

// OpenDetail swaps the modal to the detail view for the given task,
// seeded with the summary row.
func (m *Modal) OpenDetail(task api.Task) {
	m.kind = modalDetail
	m.taskID = task.ID
	m.task = task
	m.detailLoaded = false
	m.detailErr = nil
	m.aiRendered = ""
	m.vp = viewport.New(m.contentWidth(), m.detailViewportHeight())
	m.vpFilled = false
}

// OpenSubmit swaps the modal to a fresh submission form.
func (m *Modal) OpenSubmit() {
	m.kind = modalSubmit
	m.form = newSubmitForm()
}

// OpenHelp swaps the modal to the key reference.
func (m *Modal) OpenHelp() {
	m.kind = modalHelp
}

// Close dismisses whatever is showing. Closing an already-closed modal
// is a no-op.
func (m *Modal) Close() {
	m.kind = modalNone
}

// ApplyDetail folds in a detail-fetch result. Results for a task other
// than the one on display are dropped: the user already moved on.
func (m *Modal) ApplyDetail(msg taskDetailMsg) {
	if m.kind != modalDetail || msg.TaskID != m.taskID {
		return
	}
	if msg.Err != nil {
		m.detailErr = msg.Err
		return
	}
	m.task = msg.Task
	m.detailLoaded = true
	m.detailErr = nil
	m.aiRendered = ""
	if text := msg.Task.AIResponseText(); text != "" {
		m.aiRendered = renderMarkdown(text, m.contentWidth())
	}

	region := m.scrollRegion()
	m.vpFilled = region != ""
	if m.vpFilled {
		m.vp.SetContent(region)
		m.vp.GotoTop()
	}
}

// Scroll forwards a navigation key to the detail body's viewport.
func (m *Modal) Scroll(msg tea.KeyMsg) {
	if m.kind != modalDetail || !m.vpFilled {
		return
	}
	m.vp, _ = m.vp.Update(msg)
}

func (m *Modal) contentWidth() int {
	w := m.width * 3 / 4
	if w > 100 {
		w = 100
	}
	if w < 30 {
		w = 30
	}
	return w - 4
}

// detailViewportHeight is the line budget for the scrollable region,
// leaving room for the metadata lines and the modal chrome.
func (m *Modal) detailViewportHeight() int {
	h := m.height - 18
	if h < 4 {
		h = 4
	}
	return h
}

// renderMarkdown renders the AI response as terminal markdown, falling
// back to the raw text when rendering fails.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// View renders the modal box. agents is the reconciled roster used to
// resolve the assigned agent's name; spin drives the working indicator.
func (m *Modal) View(agents engine.AgentsView, spin int) string {
	if m.kind == modalNone {
		return ""
	}

	t := theme.Current()
	w := m.contentWidth()

	var title, body string
	switch m.kind {
	case modalDetail:
		title = fmt.Sprintf("Task #%d", m.taskID)
		body = m.detailBody(agents, spin, w)
	case modalSubmit:
		title = "Submit Task"
		body = m.form.view(w)
	case modalHelp:
		title = "Keys"
		body = helpBody()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Lavender).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Surface1).
		Width(w).
		Align(lipgloss.Center).
		Render(title)

	hint := lipgloss.NewStyle().Foreground(t.Overlay).Render("esc to close")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Render(header + "\n" + body + "\n" + hint)
}

func (m *Modal) detailBody(agents engine.AgentsView, spin, w int) string {
	t := theme.Current()
	label := lipgloss.NewStyle().Foreground(t.Subtext)
	value := lipgloss.NewStyle().Foreground(t.Text)
	dim := lipgloss.NewStyle().Foreground(t.Overlay)

	task := m.task

	var b strings.Builder
	b.WriteString(value.Bold(true).Render(layout.Truncate(task.Title, w)) + "\n")
	b.WriteString(styles.BadgeGroup(
		styles.TaskStatusBadge(task.Status),
		styles.PriorityBadge(task.Priority),
	) + "\n\n")

	if task.Description != "" {
		b.WriteString(value.Render(layout.Truncate(task.Description, w*3)) + "\n\n")
	}

	b.WriteString(label.Render("Assigned  ") + value.Render(resolveAgent(task.AssignedAgentID, agents)) + "\n")
	b.WriteString(label.Render("Progress  ") +
		styles.ProgressBar(task.Progress, 20) +
		value.Render(fmt.Sprintf(" %3.0f%%", task.Progress*100)) + "\n")
	if task.CreatedAt != "" {
		b.WriteString(label.Render("Created   ") + value.Render(task.CreatedAt) + "\n")
	}
	if task.CompletedAt != "" {
		b.WriteString(label.Render("Completed ") + value.Render(task.CompletedAt) + "\n")
	}

	if m.detailErr != nil {
		b.WriteString("\n" + components.ErrorState("could not load details", m.detailErr.Error(), w))
		return b.String()
	}
	if !m.detailLoaded {
		b.WriteString("\n" + dim.Render(styles.SpinnerFrame(spin)+" loading details…"))
		return b.String()
	}

	if m.vpFilled {
		b.WriteString("\n" + m.vp.View() + "\n")
		if m.vp.TotalLineCount() > m.vp.Height {
			b.WriteString(dim.Render(fmt.Sprintf("j/k to scroll  %3.0f%%", m.vp.ScrollPercent()*100)) + "\n")
		}
	}

	// AI response region: an explicit note when a finished task recorded
	// none, a working indicator while the task runs, nothing otherwise.
	switch {
	case m.aiRendered == "" && task.Status == api.TaskCompleted:
		b.WriteString("\n" + dim.Italic(true).Render("No response recorded.") + "\n")
	case m.aiRendered == "" && task.Status == api.TaskInProgress:
		b.WriteString("\n" + dim.Render(styles.SpinnerFrame(spin)+" agent working…") + "\n")
	}

	return b.String()
}

// scrollRegion builds the scrollable part of the detail body: the
// execution trail followed by the rendered AI response.
func (m *Modal) scrollRegion() string {
	t := theme.Current()
	label := lipgloss.NewStyle().Foreground(t.Subtext)
	dim := lipgloss.NewStyle().Foreground(t.Overlay)
	w := m.contentWidth()

	var b strings.Builder
	if len(m.task.ExecutionDetails) > 0 {
		b.WriteString(label.Bold(true).Render("Execution trail") + "\n")
		for _, step := range m.task.ExecutionDetails {
			line := fmt.Sprintf("%s  a%d  %s", step.Timestamp, step.AgentID, step.Action)
			if step.Details != "" {
				line += "  " + step.Details
			}
			b.WriteString(dim.Render(layout.Truncate(line, w)) + "\n")
		}
	}
	if m.aiRendered != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(label.Bold(true).Render("AI response") + "\n")
		b.WriteString(m.aiRendered)
	}
	return strings.TrimRight(b.String(), "\n")
}

// resolveAgent maps an agent id to its display name. When the roster is
// unavailable the bare id still renders.
func resolveAgent(id *int, agents engine.AgentsView) string {
	if id == nil {
		return "unassigned"
	}
	if agents.State == engine.ListReady {
		for _, a := range agents.Agents {
			if a.ID == *id {
				return a.Name
			}
		}
	}
	return fmt.Sprintf("agent #%d", *id)
}

func helpBody() string {
	t := theme.Current()
	key := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.Text)

	rows := []struct{ k, d string }{
		{"r", "refresh now"},
		{"j/k, ↑/↓", "move task selection"},
		{"enter", "open task detail"},
		{"n", "submit a new task"},
		{"b", "rebalance agents"},
		{"tab", "cycle panel focus"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(key.Render(layout.PadRight(row.k, 12)) + desc.Render(row.d) + "\n")
	}
	return b.String()
}
