package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	c := NewClient()
	if c.baseURL != DefaultBaseURL {
		t.Errorf("expected base URL %s, got %s", DefaultBaseURL, c.baseURL)
	}
	if c.httpClient == nil {
		t.Error("expected HTTP client to be initialized")
	}

	c = NewClient(WithBaseURL("http://orch:9000/api/v1"))
	if c.baseURL != "http://orch:9000/api/v1/" {
		t.Errorf("expected trailing slash to be added, got %s", c.baseURL)
	}
}

func TestSystemStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/system/status" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SystemStatus{
			Status:      "online",
			ActiveTasks: 4,
			TotalAgents: 6,
			SystemLoad:  73,
			MessageRate: 8,
			Uptime:      "2h 15m",
			Version:     "1.0.0",
			AIAPIStatus: "ok",
		})
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	status, err := c.SystemStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "online" {
		t.Errorf("expected status 'online', got %s", status.Status)
	}
	if status.SystemLoad != 73 {
		t.Errorf("expected load 73, got %v", status.SystemLoad)
	}
	if status.ActiveTasks != 4 {
		t.Errorf("expected 4 active tasks, got %d", status.ActiveTasks)
	}
}

func TestSystemStatusMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"timestamp": "2026-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	_, err := c.SystemStatus(context.Background())
	if !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestTasksLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("expected limit=10, got %q", got)
		}
		json.NewEncoder(w).Encode(TaskList{Tasks: []Task{
			{ID: 42, Title: "Market Research Analysis", Status: TaskPending, Priority: PriorityHigh},
		}, Total: 1})
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	tasks, err := c.Tasks(context.Background(), 0) // zero falls back to default
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 42 {
		t.Fatalf("expected task 42, got %+v", tasks)
	}
}

func TestHTTPErrorSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	_, err := c.Agents(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
	if apiErr.Operation != "list_agents" {
		t.Errorf("expected operation list_agents, got %s", apiErr.Operation)
	}
}

func TestTransportFailure(t *testing.T) {
	// Point at a server that's already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(WithBaseURL(url + "/api/v1/"))
	_, err := c.SystemStatus(context.Background())
	if !IsServerUnavailable(err) {
		t.Errorf("expected server-unavailable error, got %v", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		t.Errorf("transport failures carry no HTTP status, got %d", apiErr.StatusCode)
	}
}

func TestTaskDetailNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Task not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	_, err := c.Task(context.Background(), 999)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSubmitTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var sub TaskSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Fatalf("decoding submission: %v", err)
		}
		if sub.Title != "Market Research Analysis" {
			t.Errorf("unexpected title %q", sub.Title)
		}
		if sub.Priority != PriorityHigh {
			t.Errorf("unexpected priority %q", sub.Priority)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubmitResult{Success: true, TaskID: 42})
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	result, err := c.SubmitTask(context.Background(), TaskSubmission{
		Title:    "Market Research Analysis",
		Priority: PriorityHigh,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.TaskID != 42 {
		t.Errorf("expected success with task 42, got %+v", result)
	}
}

func TestSubmitTaskRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitResult{Success: false, Error: "no agent has required capabilities"})
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	result, err := c.SubmitTask(context.Background(), TaskSubmission{Title: "x"})
	if err != nil {
		t.Fatalf("rejection should surface as a result, got error: %v", err)
	}
	if result.Success {
		t.Error("expected Success=false")
	}
	if result.Error == "" {
		t.Error("expected backend error message to be preserved")
	}
}

func TestRebalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/load-balancer/rebalance" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(RebalanceResult{Success: true, Reassigned: 3})
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL + "/api/v1/"))
	result, err := c.Rebalance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Reassigned != 3 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestAIResponseText(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{"absent", Task{}, ""},
		{"plain string", Task{AIResponse: "analysis complete"}, "analysis complete"},
		{"structured with result", Task{AIResponse: map[string]any{"result": "done"}}, "done"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.AIResponseText(); got != tt.want {
				t.Errorf("AIResponseText() = %q, want %q", got, tt.want)
			}
		})
	}
}
