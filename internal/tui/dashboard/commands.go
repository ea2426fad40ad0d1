package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
)

// tickCmd schedules the next refresh cycle.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinTickCmd drives the header spinner animation.
func spinTickCmd() tea.Cmd {
	return tea.Tick(125*time.Millisecond, func(time.Time) tea.Msg {
		return spinTickMsg{}
	})
}

// expireToastCmd schedules the expiry timer for one notification. Each
// notification gets its own timer; expiring one never touches the rest.
func expireToastCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpireMsg{ID: id}
	})
}

// fetchStatusCmd fetches the system status. The sequence number is
// captured at issue time; the reconciler uses it to drop results that a
// newer cycle has already superseded.
func (m Model) fetchStatusCmd(seq uint64) tea.Cmd {
	client, timeout := m.client, m.cfg.APITimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := client.SystemStatus(ctx)
		return statusFetchedMsg{Seq: seq, Snapshot: snap, Err: err, At: time.Now()}
	}
}

// fetchTasksCmd fetches the recent task list.
func (m Model) fetchTasksCmd(seq uint64) tea.Cmd {
	client, timeout, limit := m.client, m.cfg.APITimeout(), m.cfg.Refresh.TaskLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tasks, err := client.Tasks(ctx, limit)
		if err != nil {
			return tasksFetchedMsg{Seq: seq, Err: err}
		}
		return tasksFetchedMsg{Seq: seq, Tasks: tasks}
	}
}

// fetchAgentsCmd fetches the agent roster.
func (m Model) fetchAgentsCmd(seq uint64) tea.Cmd {
	client, timeout := m.client, m.cfg.APITimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		agents, err := client.Agents(ctx)
		if err != nil {
			return agentsFetchedMsg{Seq: seq, Err: err}
		}
		return agentsFetchedMsg{Seq: seq, Agents: agents}
	}
}

// fetchTaskDetailCmd fetches one task with its execution trail for the
// detail modal.
func (m Model) fetchTaskDetailCmd(id int) tea.Cmd {
	client, timeout := m.client, m.cfg.APITimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		task, err := client.Task(ctx, id)
		if err != nil {
			return taskDetailMsg{TaskID: id, Err: err}
		}
		return taskDetailMsg{TaskID: id, Task: *task}
	}
}

// submitTaskCmd posts a new task.
func (m Model) submitTaskCmd(sub api.TaskSubmission) tea.Cmd {
	client, timeout := m.client, m.cfg.APITimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := client.SubmitTask(ctx, sub)
		if err != nil {
			return submitResultMsg{Err: err}
		}
		return submitResultMsg{Result: *result}
	}
}

// rebalanceCmd asks the load balancer to redistribute pending work.
func (m Model) rebalanceCmd() tea.Cmd {
	client, timeout := m.client, m.cfg.APITimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := client.Rebalance(ctx)
		if err != nil {
			return rebalanceResultMsg{Err: err}
		}
		return rebalanceResultMsg{Result: *result}
	}
}
