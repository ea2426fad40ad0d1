// Package engine holds the dashboard's reconciliation core: it merges
// per-resource fetch results into stable view-state and maintains the load
// history window. The package does no I/O and is driven entirely by the
// TUI layer, which owns the single logical thread of control.
package engine

import (
	"time"

	"github.com/vishal10kesharwani/Multi-Agent-Orchestration-Agentic-AI/internal/api"
)

// Resource identifies one independently fetched resource. Each resource
// settles, fails, and reconciles in isolation from its siblings.
type Resource int

const (
	ResourceStatus Resource = iota
	ResourceTasks
	ResourceAgents
	numResources
)

// String returns the resource name for notifications and logs.
func (r Resource) String() string {
	switch r {
	case ResourceStatus:
		return "status"
	case ResourceTasks:
		return "tasks"
	case ResourceAgents:
		return "agents"
	}
	return "unknown"
}

// ListState is the render state of a list region. Unlike the status
// widgets, list regions are replaced wholesale, so a failed fetch shows an
// explicit error placeholder instead of silently stale rows.
type ListState int

const (
	// ListLoading means no fetch has settled yet.
	ListLoading ListState = iota
	// ListReady means the last fetch succeeded and returned rows.
	ListReady
	// ListEmpty means the last fetch succeeded but returned nothing.
	ListEmpty
	// ListError means the last fetch failed.
	ListError
)

// StatusView is the reconciled system-status slice. Scalar fields are read
// piecemeal by several widgets, so the last successful snapshot is kept
// through failures; Stale marks that the snapshot has outlived a failed
// refresh.
type StatusView struct {
	HasData  bool
	Snapshot api.SystemStatus
	Stale    bool
	LastErr  string
}

// TasksView is the reconciled task-list slice.
type TasksView struct {
	State ListState
	Tasks []api.Task
	Err   string
}

// AgentsView is the reconciled agent-list slice.
type AgentsView struct {
	State  ListState
	Agents []api.Agent
	Err    string
}

// Engine reconciles fetch results into view-state. One Engine exists per
// dashboard session, constructed with the session's configuration; all
// mutation happens on the TUI goroutine.
type Engine struct {
	status StatusView
	tasks  TasksView
	agents AgentsView
	window *Window

	issued  [numResources]uint64
	applied [numResources]uint64

	// Highest status sequence that contributed a window sample, so
	// re-applying a snapshot stays idempotent for the chart too.
	sampled uint64
}

// New creates an engine whose chart keeps windowSize samples.
func New(windowSize int) *Engine {
	return &Engine{window: NewWindow(windowSize)}
}

// NextSeq issues the next fetch sequence number for a resource. The
// scheduler stamps every fetch it launches; results are applied
// last-completed-wins, so a stale result that resolves late can never
// overwrite a newer one.
func (e *Engine) NextSeq(r Resource) uint64 {
	e.issued[r]++
	return e.issued[r]
}

// InFlight reports whether a fetch for r has been issued and not yet
// applied. The scheduler uses this as a single-flight guard: it skips
// issuing a new fetch for a resource that already has one outstanding.
func (e *Engine) InFlight(r Resource) bool {
	return e.issued[r] > e.applied[r]
}

func (e *Engine) accept(r Resource, seq uint64) bool {
	if seq < e.applied[r] {
		return false
	}
	e.applied[r] = seq
	return true
}

// ApplyStatus reconciles a status fetch result. On success the snapshot is
// replaced wholesale and one sample enters the window; on failure the
// previous snapshot stays visible, marked stale, and the window gets no
// sample for this cycle. Returns false when the result lost the
// per-resource ordering race and was discarded.
func (e *Engine) ApplyStatus(seq uint64, snap *api.SystemStatus, err error, at time.Time) bool {
	if !e.accept(ResourceStatus, seq) {
		return false
	}
	if err != nil {
		e.status.Stale = e.status.HasData
		e.status.LastErr = err.Error()
		return true
	}
	s := *snap
	s.Status = Sanitize(s.Status)
	s.Uptime = Sanitize(s.Uptime)
	s.Version = Sanitize(s.Version)
	s.AIAPIMessage = Sanitize(s.AIAPIMessage)
	e.status = StatusView{HasData: true, Snapshot: s}

	if seq > e.sampled {
		e.sampled = seq
		e.window.Push(Sample{
			Label:       at.Format("15:04:05"),
			Load:        s.SystemLoad,
			ActiveTasks: s.ActiveTasks,
		})
	}
	return true
}

// ApplyTasks reconciles a task-list fetch result, replacing the slice
// wholesale. Item identity across cycles is by ID only.
func (e *Engine) ApplyTasks(seq uint64, tasks []api.Task, err error) bool {
	if !e.accept(ResourceTasks, seq) {
		return false
	}
	if err != nil {
		e.tasks = TasksView{State: ListError, Err: err.Error()}
		return true
	}
	if len(tasks) == 0 {
		e.tasks = TasksView{State: ListEmpty}
		return true
	}
	clean := make([]api.Task, len(tasks))
	for i, t := range tasks {
		t.Title = Sanitize(t.Title)
		t.Description = Sanitize(t.Description)
		clean[i] = t
	}
	e.tasks = TasksView{State: ListReady, Tasks: clean}
	return true
}

// ApplyAgents reconciles an agent-list fetch result, replacing the slice
// wholesale.
func (e *Engine) ApplyAgents(seq uint64, agents []api.Agent, err error) bool {
	if !e.accept(ResourceAgents, seq) {
		return false
	}
	if err != nil {
		e.agents = AgentsView{State: ListError, Err: err.Error()}
		return true
	}
	if len(agents) == 0 {
		e.agents = AgentsView{State: ListEmpty}
		return true
	}
	clean := make([]api.Agent, len(agents))
	for i, a := range agents {
		a.Name = Sanitize(a.Name)
		a.Description = Sanitize(a.Description)
		a.Capabilities = SanitizeAll(append([]string(nil), a.Capabilities...))
		clean[i] = a
	}
	e.agents = AgentsView{State: ListReady, Agents: clean}
	return true
}

// Status returns the reconciled status slice.
func (e *Engine) Status() StatusView {
	return e.status
}

// Tasks returns the reconciled task-list slice.
func (e *Engine) Tasks() TasksView {
	return e.tasks
}

// Agents returns the reconciled agent-list slice.
func (e *Engine) Agents() AgentsView {
	return e.agents
}

// History returns a copy of the load history window.
func (e *Engine) History() []Sample {
	return e.window.Samples()
}

// WindowCap returns the configured chart capacity.
func (e *Engine) WindowCap() int {
	return e.window.Cap()
}

// SetWindowCap resizes the chart window, keeping the newest samples.
// Used when a config reload changes the window size mid-session.
func (e *Engine) SetWindowCap(n int) {
	e.window.Resize(n)
}
