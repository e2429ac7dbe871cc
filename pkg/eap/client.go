// Package eap implements the External Agent Protocol: a synchronous HTTP
// client used to dispatch tasks to agents registered with a remote endpoint
// and to probe their health.
package eap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Protocol constants.
const (
	TokenHeader = "X-Agent-Token"

	DefaultTimeout = 30 * time.Second

	maxAttempts  = 3
	baseBackoff  = 1 * time.Second
	maxBackoff   = 10 * time.Second
	maxErrorBody = 4096
)

// Task result statuses reported by external agents.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StatusOffline is synthesized by Health when the probe fails.
const StatusOffline = "OFFLINE"

// TaskAssignment is the dispatch payload.
type TaskAssignment struct {
	TaskID       string         `json:"task_id"`
	SessionID    string         `json:"session_id"`
	TaskType     string         `json:"task_type"`
	Context      map[string]any `json:"context,omitempty"`
	InputData    map[string]any `json:"input_data,omitempty"`
	Requirements []string       `json:"requirements,omitempty"`
}

// TaskResult is the agent's response to a dispatched task.
type TaskResult struct {
	TaskID          string         `json:"task_id"`
	Status          string         `json:"status"`
	Artifacts       []string       `json:"artifacts,omitempty"`
	OutputData      map[string]any `json:"output_data,omitempty"`
	ExecutionTimeMS int64          `json:"execution_time_ms"`
	TokensUsed      int            `json:"tokens_used"`
	CostUSD         float64        `json:"cost_usd"`
	ErrorMessage    string         `json:"error_message,omitempty"`
}

// Heartbeat is the health-probe response.
type Heartbeat struct {
	Status      string         `json:"status"`
	CurrentLoad int            `json:"current_load"`
	Metrics     map[string]any `json:"metrics,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// APIError is a non-retryable 4xx response from the agent.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("agent returned %d: %s", e.StatusCode, e.Body)
}

// ErrDispatchFailed wraps the final error after retries are exhausted.
var ErrDispatchFailed = errors.New("task dispatch failed")

// Client talks EAP to external agent endpoints. One client serves all
// endpoints; per-agent state (endpoint, token) comes in per call.
type Client struct {
	httpClient  *http.Client
	timeout     time.Duration
	baseBackoff time.Duration
	maxBackoff  time.Duration
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an EAP client.
func NewClient(logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		httpClient:  &http.Client{},
		timeout:     DefaultTimeout,
		baseBackoff: baseBackoff,
		maxBackoff:  maxBackoff,
		logger:      logger.With("component", "eap"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DispatchTask POSTs the assignment to {endpoint}/task. Connect errors,
// timeouts, and 5xx responses retry with exponential backoff up to three
// attempts; 4xx surfaces immediately as *APIError.
func (c *Client) DispatchTask(ctx context.Context, endpoint, token string, assignment TaskAssignment) (*TaskResult, error) {
	body, err := json.Marshal(assignment)
	if err != nil {
		return nil, fmt.Errorf("marshaling task assignment: %w", err)
	}
	url := strings.TrimRight(endpoint, "/") + "/task"

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := c.baseBackoff << (attempt - 2)
			if backoff > c.maxBackoff {
				backoff = c.maxBackoff
			}
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, ctx.Err())
			case <-time.After(backoff):
			}
		}

		result, retryable, err := c.postTask(ctx, url, token, body)
		if err == nil {
			return result, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
		c.logger.Warn("Task dispatch attempt failed",
			"endpoint", endpoint, "task_id", assignment.TaskID,
			"attempt", attempt, "error", err)
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrDispatchFailed, maxAttempts, lastErr)
}

func (c *Client) postTask(ctx context.Context, url, token string, body []byte) (*TaskResult, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// connect error or timeout
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, true, fmt.Errorf("agent returned %d: %s", resp.StatusCode, snippet)
	case resp.StatusCode >= 400:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, false, &APIError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var result TaskResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("decoding task result: %w", err)
	}
	return &result, false, nil
}

// Health GETs {endpoint}/health. Any failure synthesizes an OFFLINE
// heartbeat instead of returning an error.
func (c *Client) Health(ctx context.Context, endpoint, token string) Heartbeat {
	offline := Heartbeat{Status: StatusOffline, Timestamp: time.Now()}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := strings.TrimRight(endpoint, "/") + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return offline
	}
	req.Header.Set(TokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Health probe failed", "endpoint", endpoint, "error", err)
		return offline
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return offline
	}
	var hb Heartbeat
	if err := json.NewDecoder(resp.Body).Decode(&hb); err != nil {
		return offline
	}
	if hb.Timestamp.IsZero() {
		hb.Timestamp = time.Now()
	}
	return hb
}
