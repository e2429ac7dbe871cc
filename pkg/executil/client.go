// Package executil talks to the internal execution sidecar over gRPC. The
// sidecar owns native coding executions; this client creates one, follows
// its status, and fetches the final diff.
package executil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/maestro-hq/maestro/proto"
)

// Defaults, overridable via OPENCODE_ environment variables.
const (
	DefaultAddr         = "localhost:50051"
	DefaultPollInterval = 2 * time.Second
	DefaultPollTimeout  = 30 * time.Minute
)

// ErrExecutionTimeout indicates the execution did not settle before the
// polling deadline.
var ErrExecutionTimeout = errors.New("execution polling timed out")

// ErrExecutionFailed indicates the sidecar reported a failed execution.
var ErrExecutionFailed = errors.New("execution failed")

// FileChange is one entry of an execution's diff.
type FileChange struct {
	Path       string `json:"path"`
	ChangeType string `json:"change_type"`
	Patch      string `json:"patch,omitempty"`
}

// Result is the final outcome of an internal execution.
type Result struct {
	ExecutionID string       `json:"execution_id"`
	Changes     []FileChange `json:"changes"`
	DurationMS  int64        `json:"duration_ms"`
	TokensUsed  int          `json:"tokens_used"`
	CostUSD     float64      `json:"cost_usd"`
}

// ExecutionPort is the executor-facing interface. The gRPC client is the
// production implementation; tests substitute fakes.
type ExecutionPort interface {
	Execute(ctx context.Context, sessionID, prompt, model string, additionalPrompt string) (*Result, error)
	Close() error
}

// Config for the sidecar connection, read from OPENCODE_ env.
type Config struct {
	Addr         string
	Model        string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// ConfigFromEnv reads OPENCODE_ADDR, OPENCODE_MODEL,
// OPENCODE_POLL_INTERVAL_SECONDS, and OPENCODE_POLL_TIMEOUT_SECONDS.
func ConfigFromEnv() Config {
	cfg := Config{
		Addr:         getEnvOrDefault("OPENCODE_ADDR", DefaultAddr),
		Model:        os.Getenv("OPENCODE_MODEL"),
		PollInterval: DefaultPollInterval,
		PollTimeout:  DefaultPollTimeout,
	}
	if s := os.Getenv("OPENCODE_POLL_INTERVAL_SECONDS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			cfg.PollInterval = time.Duration(v) * time.Second
		}
	}
	if s := os.Getenv("OPENCODE_POLL_TIMEOUT_SECONDS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			cfg.PollTimeout = time.Duration(v) * time.Second
		}
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Client is the gRPC ExecutionPort implementation.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ExecutionServiceClient
	cfg    Config
	logger *slog.Logger
}

// NewClient connects to the execution sidecar.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to execution sidecar: %w", err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewExecutionServiceClient(conn),
		cfg:    cfg,
		logger: logger.With("component", "executil"),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error { return c.conn.Close() }

// Execute creates an execution, optionally appends a follow-up prompt, polls
// until the execution settles, and fetches the diff.
func (c *Client) Execute(ctx context.Context, sessionID, prompt, model, additionalPrompt string) (*Result, error) {
	if model == "" {
		model = c.cfg.Model
	}

	created, err := c.client.CreateExecution(ctx, &pb.CreateExecutionRequest{
		SessionId: sessionID,
		Prompt:    prompt,
		Model:     model,
	})
	if err != nil {
		return nil, fmt.Errorf("creating execution: %w", err)
	}
	execID := created.GetExecutionId()
	c.logger.Info("Execution created", "session_id", sessionID, "execution_id", execID)

	if additionalPrompt != "" {
		if _, err := c.client.AppendPrompt(ctx, &pb.AppendPromptRequest{
			ExecutionId: execID,
			Prompt:      additionalPrompt,
		}); err != nil {
			return nil, fmt.Errorf("appending prompt: %w", err)
		}
	}

	if err := c.waitForCompletion(ctx, execID); err != nil {
		return nil, err
	}

	fetched, err := c.client.FetchResult(ctx, &pb.FetchResultRequest{ExecutionId: execID})
	if err != nil {
		return nil, fmt.Errorf("fetching result: %w", err)
	}
	if msg := fetched.GetErrorMessage(); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrExecutionFailed, msg)
	}

	result := &Result{ExecutionID: execID}
	for _, ch := range fetched.GetChanges() {
		result.Changes = append(result.Changes, FileChange{
			Path:       ch.GetPath(),
			ChangeType: ch.GetChangeType(),
			Patch:      ch.GetPatch(),
		})
	}
	if m := fetched.GetMetrics(); m != nil {
		result.DurationMS = m.GetDurationMs()
		result.TokensUsed = int(m.GetTokensUsed())
		result.CostUSD = m.GetCostUsd()
	}
	return result, nil
}

// waitForCompletion polls GetStatus until the execution is idle, completed,
// or failed, or the deadline passes.
func (c *Client) waitForCompletion(ctx context.Context, execID string) error {
	deadline := time.Now().Add(c.cfg.PollTimeout)
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		status, err := c.client.GetStatus(ctx, &pb.GetStatusRequest{ExecutionId: execID})
		if err != nil {
			return fmt.Errorf("polling execution status: %w", err)
		}
		switch status.GetStatus() {
		case pb.ExecutionStatus_EXECUTION_STATUS_IDLE,
			pb.ExecutionStatus_EXECUTION_STATUS_COMPLETED:
			return nil
		case pb.ExecutionStatus_EXECUTION_STATUS_FAILED:
			return fmt.Errorf("%w: %s", ErrExecutionFailed, status.GetDetail())
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: execution %s", ErrExecutionTimeout, execID)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
