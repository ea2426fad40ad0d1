// Package api is the HTTP client for the orchestration platform's REST
// surface. Every method performs exactly one round trip and returns either
// a decoded value or a typed *APIError; callers never see a panic or an
// untyped failure, and nothing here retries or caches.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is where a locally run orchestrator listens.
	DefaultBaseURL = "http://127.0.0.1:8000/api/v1/"

	// DefaultTimeout bounds each request. The backend imposes no deadline
	// of its own, so the client matches the dashboard refresh period to
	// keep one cycle's requests from outliving the next cycle.
	DefaultTimeout = 5 * time.Second

	// DefaultTaskLimit is how many tasks a list fetch asks for.
	DefaultTaskLimit = 10
)

// Client talks to the orchestrator API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets the API base URL (the common /api/v1/ prefix).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(url, "/") {
			url += "/"
		}
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a client with the given options. ORCHTOP_API_URL
// overrides the default base URL before options are applied.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	if baseURL := os.Getenv("ORCHTOP_API_URL"); baseURL != "" {
		c.baseURL = baseURL
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a GET and decodes the 2xx response body into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return NewAPIError(op, 0, err)
	}
	return c.do(op, req, out)
}

// post JSON-encodes body, performs a POST, and decodes the response into
// out. A non-2xx status with a decodable body still decodes: the backend
// answers rejected submissions with 400 plus {success:false, error}.
func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return NewAPIError(op, 0, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return NewAPIError(op, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewAPIError(op, 0, fmt.Errorf("%w: %v", ErrServerUnavailable, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return NewAPIError(op, 0, fmt.Errorf("%w: %v", ErrServerUnavailable, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Best effort: some error responses (e.g. a rejected submission)
		// still carry a decodable body the caller wants to inspect.
		if out != nil {
			_ = json.Unmarshal(data, out)
		}
		// Surface the backend's textual error field when one exists, but
		// never require a specific error body shape.
		var detail struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		_ = json.Unmarshal(data, &detail)
		msg := detail.Detail
		if msg == "" {
			msg = detail.Error
		}
		if msg == "" {
			msg = resp.Status
		}
		if resp.StatusCode == http.StatusNotFound {
			return NewAPIError(op, resp.StatusCode, fmt.Errorf("%w: %s", ErrNotFound, msg))
		}
		return NewAPIError(op, resp.StatusCode, fmt.Errorf("unexpected status: %s", msg))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewAPIError(op, 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err))
	}
	return nil
}

// Health probes GET health. Used once at startup as a connectivity check.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.get(ctx, "health", "health", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SystemStatus fetches GET system/status.
func (c *Client) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.get(ctx, "system_status", "system/status", &status); err != nil {
		return nil, err
	}
	if status.Status == "" {
		return nil, NewAPIError("system_status", 0, fmt.Errorf("%w: missing status field", ErrInvalidPayload))
	}
	return &status, nil
}

// Tasks fetches GET tasks?limit=N, most recent first. A limit <= 0 falls
// back to DefaultTaskLimit.
func (c *Client) Tasks(ctx context.Context, limit int) ([]Task, error) {
	if limit <= 0 {
		limit = DefaultTaskLimit
	}
	var list TaskList
	if err := c.get(ctx, "list_tasks", fmt.Sprintf("tasks?limit=%d", limit), &list); err != nil {
		return nil, err
	}
	return list.Tasks, nil
}

// Task fetches GET tasks/{id}, including ai_response and execution_details.
func (c *Client) Task(ctx context.Context, id int) (*Task, error) {
	var task Task
	if err := c.get(ctx, "task_detail", fmt.Sprintf("tasks/%d", id), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Agents fetches GET agents.
func (c *Client) Agents(ctx context.Context) ([]Agent, error) {
	var list AgentList
	if err := c.get(ctx, "list_agents", "agents", &list); err != nil {
		return nil, err
	}
	return list.Agents, nil
}

// SubmitTask posts a new task. The backend answers 201 on acceptance and
// 400 with success=false on rejection; both decode into SubmitResult.
func (c *Client) SubmitTask(ctx context.Context, sub TaskSubmission) (*SubmitResult, error) {
	if sub.Priority == "" {
		sub.Priority = PriorityMedium
	}
	var result SubmitResult
	err := c.post(ctx, "submit_task", "tasks", sub, &result)
	if err != nil {
		var apiErr *APIError
		// A 400 still carries a usable result body; prefer it when the
		// backend told us why the submission was rejected.
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest && result.Error != "" {
			return &result, nil
		}
		return nil, err
	}
	return &result, nil
}

// Rebalance triggers POST load-balancer/rebalance.
func (c *Client) Rebalance(ctx context.Context) (*RebalanceResult, error) {
	var result RebalanceResult
	if err := c.post(ctx, "rebalance", "load-balancer/rebalance", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PerformanceReport fetches GET monitoring/performance. The report shape
// is backend-defined; the dashboard only checks that one exists.
func (c *Client) PerformanceReport(ctx context.Context) (PerformanceReport, error) {
	var report PerformanceReport
	if err := c.get(ctx, "performance_report", "monitoring/performance", &report); err != nil {
		return nil, err
	}
	return report, nil
}
