package api

import "encoding/json"

// SystemStatus is the payload of GET system/status. The dashboard replaces
// its copy wholesale on every successful fetch and keeps the previous one
// when a fetch fails, so individual widgets never blank out mid-cycle.
type SystemStatus struct {
	Status       string  `json:"status"` // "online", "offline", "error", "unknown"
	Timestamp    string  `json:"timestamp"`
	ActiveTasks  int     `json:"active_tasks"`
	TotalAgents  int     `json:"total_agents"`
	IdleAgents   int     `json:"idle_agents"`
	BusyAgents   int     `json:"busy_agents"`
	SystemLoad   float64 `json:"system_load"`  // percent, 0-100
	MessageRate  float64 `json:"message_rate"` // messages per minute
	Uptime       string  `json:"uptime"`
	Version      string  `json:"version"`
	AIAPIStatus  string  `json:"ai_api_status"` // "ok", "restricted", "error"
	AIAPIMessage string  `json:"ai_api_message,omitempty"`
}

// Task statuses as reported by the backend.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskFailed     = "failed"
)

// Task priorities as accepted by POST tasks.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// ExecutionStep is one entry of a task's execution trail, present only in
// the task-detail response.
type ExecutionStep struct {
	Timestamp string `json:"timestamp"`
	AgentID   int    `json:"agent_id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Status    string `json:"status"`
}

// Task is a task summary. List responses carry the summary fields; the
// detail response additionally fills AIResponse and ExecutionDetails.
type Task struct {
	ID               int             `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	Priority         string          `json:"priority"`
	Progress         float64         `json:"progress"` // 0..1
	AssignedAgentID  *int            `json:"assigned_agent_id"`
	CreatedAt        string          `json:"created_at"`
	CompletedAt      string          `json:"completed_at,omitempty"`
	AIResponse       any             `json:"ai_response,omitempty"`
	ExecutionDetails []ExecutionStep `json:"execution_details,omitempty"`
}

// AIResponseText flattens the ai_response field, which the backend may
// return either as a plain string or as a structured object.
func (t Task) AIResponseText() string {
	switch v := t.AIResponse.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if s, ok := v["result"].(string); ok {
			return s
		}
		if s, ok := v["ai_response"].(string); ok {
			return s
		}
	}
	b, err := json.MarshalIndent(t.AIResponse, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// Agent statuses as reported by the backend.
const (
	AgentIdle    = "idle"
	AgentBusy    = "busy"
	AgentOffline = "offline"
	AgentError   = "error"
)

// Agent is an agent summary from GET agents.
type Agent struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}

// TaskList wraps GET tasks responses.
type TaskList struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

// AgentList wraps GET agents responses.
type AgentList struct {
	Agents []Agent `json:"agents"`
	Total  int     `json:"total"`
}

// TaskRequirements describes what a submitted task needs from an agent.
type TaskRequirements struct {
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	Complexity   string   `json:"complexity,omitempty" yaml:"complexity,omitempty"`
}

// TaskSubmission is the body of POST tasks.
type TaskSubmission struct {
	Title        string           `json:"title" yaml:"title"`
	Description  string           `json:"description" yaml:"description"`
	Priority     string           `json:"priority" yaml:"priority"`
	Requirements TaskRequirements `json:"requirements" yaml:"requirements"`
	InputData    map[string]any   `json:"input_data" yaml:"input_data"`
}

// SubmitResult is the backend's answer to a task submission.
type SubmitResult struct {
	Success bool   `json:"success"`
	TaskID  int    `json:"task_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RebalanceResult is the backend's answer to a manual load rebalance.
type RebalanceResult struct {
	Success    bool   `json:"success"`
	Reassigned int    `json:"reassigned_tasks,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HealthStatus is the payload of GET health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// PerformanceReport is the opaque report from GET monitoring/performance.
// The dashboard only checks for existence; the CLI pretty-prints it as-is.
type PerformanceReport map[string]any
