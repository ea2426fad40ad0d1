package dashboard

import (
	"time"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/config"
)

// tickMsg starts a refresh cycle.
type tickMsg time.Time

// spinTickMsg advances the header spinner while a cycle is in flight.
type spinTickMsg struct{}

// statusFetchedMsg carries the result of a system-status fetch. Seq ties
// the result back to the cycle that issued it so late arrivals can be
// discarded.
type statusFetchedMsg struct {
	Seq      uint64
	Snapshot *api.SystemStatus
	Err      error
	At       time.Time
}

// tasksFetchedMsg carries the result of a task-list fetch.
type tasksFetchedMsg struct {
	Seq   uint64
	Tasks []api.Task
	Err   error
}

// agentsFetchedMsg carries the result of an agent-list fetch.
type agentsFetchedMsg struct {
	Seq    uint64
	Agents []api.Agent
	Err    error
}

// taskDetailMsg carries the result of a task-detail fetch for the modal.
type taskDetailMsg struct {
	TaskID int
	Task   api.Task
	Err    error
}

// submitResultMsg carries the outcome of a task submission.
type submitResultMsg struct {
	Result api.SubmitResult
	Err    error
}

// rebalanceResultMsg carries the outcome of a load-balancer rebalance.
type rebalanceResultMsg struct {
	Result api.RebalanceResult
	Err    error
}

// toastExpireMsg fires when a notification's display timer elapses.
type toastExpireMsg struct {
	ID int
}

// configReloadedMsg arrives when the config file changes on disk.
type configReloadedMsg struct {
	Config *config.Config
}
