// Package dashboard implements the orchtop TUI: a polling dashboard
// over the orchestrator's HTTP API with a status panel, load-history
// chart, task table, agent roster, transient notifications, and a modal
// for task details and submission.
package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/config"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/engine"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/toast"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/dashboard/panels"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/layout"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/styles"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/theme"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/tui/toasts"
)

const (
	focusStatus = iota
	focusChart
	focusTasks
	focusAgents
	numPanels
)

// Model is the dashboard's Bubble Tea model. One refresh cycle fetches
// status, tasks, and agents concurrently; the engine reconciles the
// results so panels never observe a half-applied cycle.
type Model struct {
	cfg    *config.Config
	client *api.Client
	eng    *engine.Engine
	queue  *toast.Queue

	status *panels.StatusPanel
	chart  *panels.ChartPanel
	tasks  *panels.TasksPanel
	agents *panels.AgentsPanel
	modal  Modal

	focus  int
	width  int
	height int
	spin   int

	// Failure-edge tracking so a persistent outage produces one
	// notification, not one per cycle.
	statusWasFailing bool
	tasksWasFailing  bool
	agentsWasFailing bool
}

// New builds a dashboard model from its injected dependencies.
func New(cfg *config.Config, client *api.Client) Model {
	m := Model{
		cfg:    cfg,
		client: client,
		eng:    engine.New(cfg.Chart.WindowSize),
		queue:  toast.NewQueue(cfg.NotificationDuration(), cfg.Notifications.MaxVisible),
		status: panels.NewStatusPanel(),
		chart:  panels.NewChartPanel(cfg.Chart.WindowSize),
		tasks:  panels.NewTasksPanel(),
		agents: panels.NewAgentsPanel(),
		focus:  focusTasks,
	}
	m.tasks.Focus()
	return m
}

// Init starts the first refresh cycle immediately and schedules the
// steady-state poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startCycle(),
		tickCmd(m.cfg.RefreshInterval()),
	)
}

// refreshing reports whether any fetch from the current cycle is still
// outstanding.
func (m Model) refreshing() bool {
	return m.eng.InFlight(engine.ResourceStatus) ||
		m.eng.InFlight(engine.ResourceTasks) ||
		m.eng.InFlight(engine.ResourceAgents)
}

// startCycle issues one fetch per resource. While a cycle is still in
// flight another one is not started, so a slow backend cannot stack
// requests.
func (m Model) startCycle() tea.Cmd {
	if m.refreshing() {
		return nil
	}
	return tea.Batch(
		m.fetchStatusCmd(m.eng.NextSeq(engine.ResourceStatus)),
		m.fetchTasksCmd(m.eng.NextSeq(engine.ResourceTasks)),
		m.fetchAgentsCmd(m.eng.NextSeq(engine.ResourceAgents)),
		spinTickCmd(),
	)
}

// pushToast enqueues a notification and schedules its expiry timer.
func (m *Model) pushToast(message string, kind toast.Kind) tea.Cmd {
	n := m.queue.Push(message, kind, time.Now())
	return expireToastCmd(n.ID, m.queue.Duration())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modal.SetSize(msg.Width, msg.Height)
		m.layoutPanels()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.startCycle(), tickCmd(m.cfg.RefreshInterval()))

	case spinTickMsg:
		m.spin++
		if m.refreshing() {
			return m, spinTickCmd()
		}
		return m, nil

	case statusFetchedMsg:
		var cmd tea.Cmd
		if m.eng.ApplyStatus(msg.Seq, msg.Snapshot, msg.Err, msg.At) {
			failing := msg.Err != nil
			if failing && !m.statusWasFailing {
				cmd = m.pushToast("status refresh failed: "+msg.Err.Error(), toast.Error)
			} else if !failing && m.statusWasFailing {
				cmd = m.pushToast("backend connection restored", toast.Success)
			}
			m.statusWasFailing = failing
			if !failing {
				m.status.SetLastUpdate(msg.At)
			}
		}
		m.status.SetView(m.eng.Status())
		m.chart.SetSamples(m.eng.History())
		return m, cmd

	case tasksFetchedMsg:
		var cmd tea.Cmd
		if m.eng.ApplyTasks(msg.Seq, msg.Tasks, msg.Err) {
			failing := msg.Err != nil
			if failing && !m.tasksWasFailing {
				cmd = m.pushToast("task list refresh failed", toast.Error)
			}
			m.tasksWasFailing = failing
			if !failing {
				m.tasks.SetLastUpdate(time.Now())
			}
		}
		m.tasks.SetView(m.eng.Tasks())
		return m, cmd

	case agentsFetchedMsg:
		var cmd tea.Cmd
		if m.eng.ApplyAgents(msg.Seq, msg.Agents, msg.Err) {
			failing := msg.Err != nil
			if failing && !m.agentsWasFailing {
				cmd = m.pushToast("agent list refresh failed", toast.Error)
			}
			m.agentsWasFailing = failing
			if !failing {
				m.agents.SetLastUpdate(time.Now())
			}
		}
		m.agents.SetView(m.eng.Agents())
		return m, cmd

	case taskDetailMsg:
		m.modal.ApplyDetail(msg)
		return m, nil

	case submitResultMsg:
		m.modal.Close()
		switch {
		case msg.Err != nil:
			return m, m.pushToast("submit failed: "+msg.Err.Error(), toast.Error)
		case !msg.Result.Success:
			reason := msg.Result.Error
			if reason == "" {
				reason = "rejected by backend"
			}
			return m, m.pushToast("submit rejected: "+reason, toast.Warning)
		default:
			return m, tea.Batch(
				m.pushToast(fmt.Sprintf("task #%d submitted", msg.Result.TaskID), toast.Success),
				m.startCycle(),
			)
		}

	case rebalanceResultMsg:
		if msg.Err != nil {
			return m, m.pushToast("rebalance failed: "+msg.Err.Error(), toast.Error)
		}
		return m, tea.Batch(
			m.pushToast(fmt.Sprintf("rebalanced %d tasks", msg.Result.Reassigned), toast.Success),
			m.startCycle(),
		)

	case toastExpireMsg:
		m.queue.Expire(msg.ID, time.Now())
		return m, nil

	case configReloadedMsg:
		m.cfg = msg.Config
		theme.Apply(msg.Config.Theme)
		m.eng.SetWindowCap(msg.Config.Chart.WindowSize)
		m.chart.SetCap(msg.Config.Chart.WindowSize)
		m.chart.SetSamples(m.eng.History())
		m.queue.SetDuration(msg.Config.NotificationDuration())
		m.queue.SetMaxVisible(msg.Config.Notifications.MaxVisible)
		m.client = api.NewClient(
			api.WithBaseURL(msg.Config.API.BaseURL),
			api.WithTimeout(msg.Config.APITimeout()),
		)
		return m, m.pushToast("configuration reloaded", toast.Info)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The submit form swallows everything except ctrl+c and esc.
	if m.modal.InSubmitForm() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.modal.Close()
			return m, nil
		}
		cmd, sub := m.modal.form.update(msg)
		if sub != nil {
			return m, m.submitTaskCmd(*sub)
		}
		return m, cmd
	}

	// Esc only means something while a modal is open; everything else is
	// offered to the detail viewport for scrolling.
	if m.modal.IsOpen() {
		switch msg.String() {
		case "esc", "q":
			m.modal.Close()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		m.modal.Scroll(msg)
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		// No-op while a cycle is already in flight.
		return m, m.startCycle()

	case "tab":
		m.setFocus((m.focus + 1) % numPanels)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + numPanels - 1) % numPanels)
		return m, nil

	case "j", "down":
		m.tasks.MoveCursor(1)
		return m, nil

	case "k", "up":
		m.tasks.MoveCursor(-1)
		return m, nil

	case "enter":
		task, ok := m.tasks.Selected()
		if !ok {
			return m, nil
		}
		m.modal.OpenDetail(task)
		// Details and the roster load concurrently so the assigned
		// agent's name resolves without blocking the modal.
		cmds := []tea.Cmd{m.fetchTaskDetailCmd(task.ID)}
		if !m.eng.InFlight(engine.ResourceAgents) {
			cmds = append(cmds, m.fetchAgentsCmd(m.eng.NextSeq(engine.ResourceAgents)))
		}
		return m, tea.Batch(cmds...)

	case "n":
		m.modal.OpenSubmit()
		return m, nil

	case "b":
		return m, m.rebalanceCmd()

	case "?":
		m.modal.OpenHelp()
		return m, nil
	}

	return m, nil
}

func (m *Model) setFocus(idx int) {
	m.focus = idx
	focusables := []interface {
		Focus()
		Blur()
	}{m.status, m.chart, m.tasks, m.agents}
	for i, p := range focusables {
		if i == idx {
			p.Focus()
		} else {
			p.Blur()
		}
	}
}

// layoutPanels distributes the terminal area across panels by width
// tier.
func (m *Model) layoutPanels() {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return
	}
	content := h - 2 // header and help bar

	switch layout.TierForWidth(w) {
	case layout.TierWide:
		l, c, r := layout.TripleProportions(w)
		top := 11
		m.status.SetSize(l, top)
		m.chart.SetSize(c, top)
		m.agents.SetSize(r, top)
		m.tasks.SetSize(w, content-top)
	case layout.TierSplit:
		l, r := layout.SplitProportions(w)
		top := 11
		agentsH := 8
		m.status.SetSize(l, top)
		m.chart.SetSize(r, top)
		m.agents.SetSize(w, agentsH)
		m.tasks.SetSize(w, content-top-agentsH)
	default:
		m.status.SetSize(w, 10)
		m.chart.SetSize(w, 7)
		m.agents.SetSize(w, 7)
		tasksH := content - 24
		if tasksH < 6 {
			tasksH = 6
		}
		m.tasks.SetSize(w, tasksH)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 {
		return "starting orchtop…"
	}

	t := theme.Current()

	if m.modal.IsOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.modal.View(m.eng.Agents(), m.spin))
	}

	header := m.renderHeader()

	var body string
	switch layout.TierForWidth(m.width) {
	case layout.TierWide:
		top := lipgloss.JoinHorizontal(lipgloss.Top, m.status.View(), m.chart.View(), m.agents.View())
		body = lipgloss.JoinVertical(lipgloss.Left, top, m.tasks.View())
	case layout.TierSplit:
		top := lipgloss.JoinHorizontal(lipgloss.Top, m.status.View(), m.chart.View())
		body = lipgloss.JoinVertical(lipgloss.Left, top, m.tasks.View(), m.agents.View())
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.status.View(), m.chart.View(), m.tasks.View(), m.agents.View())
	}

	helpBar := lipgloss.NewStyle().Foreground(t.Overlay).Render(
		"r refresh • enter detail • n new task • b rebalance • ? help • q quit")

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, helpBar)

	if notes := toasts.Render(m.queue.Visible(), m.width); notes != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, notes, view)
	}
	return view
}

func (m Model) renderHeader() string {
	t := theme.Current()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("orchtop")
	url := lipgloss.NewStyle().Foreground(t.Overlay).Render(m.cfg.API.BaseURL)

	spin := " "
	if m.refreshing() {
		spin = lipgloss.NewStyle().Foreground(t.Blue).Render(styles.SpinnerFrame(m.spin))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", spin, "  ", url)
}
