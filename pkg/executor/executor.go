// Package executor drives one claimed session through execution: it resolves
// the configured agent, dispatches externally over EAP or internally through
// the execution sidecar, and records the terminal outcome.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/eap"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/executil"
	"github.com/maestro-hq/maestro/pkg/lock"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/services"
)

// Dispatcher sends task assignments to external agents. *eap.Client is the
// production implementation.
type Dispatcher interface {
	DispatchTask(ctx context.Context, endpoint, token string, assignment eap.TaskAssignment) (*eap.TaskResult, error)
}

// reservedConfigKeys are agent_config keys that do not name an agent.
var reservedConfigKeys = map[string]bool{
	"default_agent": true,
	"model":         true,
	"parameters":    true,
}

// Outcome defaults applied when the agent reports none.
const (
	defaultSuccessRate = 1.0
	defaultConfidence  = 0.8
)

// SessionExecutor executes claimed sessions. Callers hand it sessions in
// queued state (pending is tolerated and stepped through queued).
type SessionExecutor struct {
	sessions   *services.SessionService
	registry   *registry.Registry
	dispatcher Dispatcher
	port       executil.ExecutionPort
	locks      *lock.Manager
	publisher  *events.EventPublisher
	logger     *slog.Logger
}

// NewSessionExecutor creates an executor. dispatcher, port, locks, and
// publisher may each be nil; the corresponding path is then unavailable.
func NewSessionExecutor(
	sessions *services.SessionService,
	reg *registry.Registry,
	dispatcher Dispatcher,
	port executil.ExecutionPort,
	locks *lock.Manager,
	publisher *events.EventPublisher,
) *SessionExecutor {
	return &SessionExecutor{
		sessions:   sessions,
		registry:   reg,
		dispatcher: dispatcher,
		port:       port,
		locks:      locks,
		publisher:  publisher,
		logger:     slog.With("component", "session_executor"),
	}
}

// Execute runs the session to a terminal state under its execution lock.
// Execution failures are recorded on the session and are not returned as
// errors; only infrastructure failures (lock, database) are.
func (e *SessionExecutor) Execute(ctx context.Context, sess *ent.Session) error {
	if e.locks == nil {
		return e.execute(ctx, sess)
	}
	return e.locks.WithLock(ctx, "session:execution:"+sess.ID, lock.AcquireOptions{
		Blocking: true,
		Timeout:  10 * time.Second,
	}, func(ctx context.Context) error {
		return e.execute(ctx, sess)
	})
}

func (e *SessionExecutor) execute(ctx context.Context, sess *ent.Session) error {
	log := e.logger.With("session_id", sess.ID)

	// A worker normally hands us a queued session; step a pending one
	// through queued so the transition table stays closed.
	if domain.SessionStatus(sess.Status) == domain.SessionPending {
		stepped, err := e.sessions.ApplyTransition(ctx, sess.ID, domain.SessionQueued, "executor intake")
		if err != nil {
			return fmt.Errorf("failed to queue session: %w", err)
		}
		sess = stepped
	}

	running, err := e.sessions.ApplyTransition(ctx, sess.ID, domain.SessionRunning, "executor started")
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	sess = running

	agentName := resolveAgentName(sess.AgentConfig)
	if agentName == "" {
		log.Warn("Session has no agent configured")
		_, err := e.sessions.FailSession(ctx, sess.ID, services.FailureInfo{
			Message:   "no agent configured for session",
			Source:    "executor",
			Retryable: false,
		})
		return err
	}

	agent, err := e.registry.GetByName(agentName)
	if err != nil {
		log.Warn("Configured agent is not registered", "agent", agentName)
		_, err := e.sessions.FailSession(ctx, sess.ID, services.FailureInfo{
			Message:   fmt.Sprintf("agent %q is not registered", agentName),
			Source:    "router",
			Retryable: true,
		})
		return err
	}

	if err := e.registry.IncrementTaskCount(ctx, agent.ID); err != nil {
		log.Warn("Failed to increment agent task count", "agent_id", agent.ID, "error", err)
	}
	defer func() {
		if err := e.registry.DecrementTaskCount(context.WithoutCancel(ctx), agent.ID); err != nil {
			log.Warn("Failed to decrement agent task count", "agent_id", agent.ID, "error", err)
		}
	}()

	e.publishProgress(ctx, sess.ID, "executing", 0)

	// The duration budget applies to the dispatch only; bookkeeping after it
	// runs on the caller's context.
	execCtx, cancel := context.WithTimeout(ctx, time.Duration(sess.MaxDurationSeconds)*time.Second)
	defer cancel()

	start := time.Now()
	if agent.IsExternal() {
		return e.executeExternal(ctx, execCtx, sess, agent, start)
	}
	return e.executeInternal(ctx, execCtx, sess, agent, start)
}

func (e *SessionExecutor) executeExternal(ctx, execCtx context.Context, sess *ent.Session, agent *registry.Agent, start time.Time) error {
	if e.dispatcher == nil {
		_, err := e.sessions.FailSession(ctx, sess.ID, services.FailureInfo{
			Message:   "external dispatch is not configured",
			Source:    "executor",
			AgentID:   agent.ID,
			Retryable: false,
		})
		return err
	}

	endpoint := agent.Metadata[registry.MetaEndpointURL]
	token := agent.Metadata[registry.MetaAuthToken]

	result, err := e.dispatcher.DispatchTask(execCtx, endpoint, token, eap.TaskAssignment{
		TaskID:    sess.ID,
		SessionID: sess.ID,
		TaskType:  string(sess.SessionType),
		InputData: map[string]any{"prompt": sess.InitialPrompt},
	})
	duration := time.Since(start)

	if err != nil {
		// Caller cancellation settles in the worker; only a spent budget
		// is a timeout.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if execCtx.Err() != nil {
			return e.timeOut(ctx, sess, agent, duration)
		}
		return e.fail(ctx, sess, agent, duration, services.FailureInfo{
			Message:   err.Error(),
			Source:    "external_agent",
			AgentID:   agent.ID,
			Retryable: true,
		})
	}
	if result.Status == eap.StatusFailed {
		return e.fail(ctx, sess, agent, duration, services.FailureInfo{
			Message:   result.ErrorMessage,
			Source:    "external_agent",
			AgentID:   agent.ID,
			Retryable: true,
		})
	}

	outcome := services.CompletionResult{
		SuccessRate: defaultSuccessRate,
		Confidence:  defaultConfidence,
		TotalTokens: result.TokensUsed,
		CostUSD:     result.CostUSD,
		Result:      result.OutputData,
	}
	if v, ok := floatFrom(result.OutputData, "success_rate"); ok {
		outcome.SuccessRate = v
	}
	if v, ok := floatFrom(result.OutputData, "confidence"); ok {
		outcome.Confidence = v
	}
	return e.complete(ctx, sess, agent, duration, outcome)
}

func (e *SessionExecutor) executeInternal(ctx, execCtx context.Context, sess *ent.Session, agent *registry.Agent, start time.Time) error {
	if e.port == nil {
		_, err := e.sessions.FailSession(ctx, sess.ID, services.FailureInfo{
			Message:   "internal execution is not configured",
			Source:    "executor",
			AgentID:   agent.ID,
			Retryable: false,
		})
		return err
	}

	model := ""
	if sess.ModelConfig != nil {
		model = *sess.ModelConfig
	}

	result, err := e.port.Execute(execCtx, sess.ID, sess.InitialPrompt, model, "")
	duration := time.Since(start)

	if err != nil {
		// Caller cancellation settles in the worker; only a spent budget
		// is a timeout.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, executil.ErrExecutionTimeout) || execCtx.Err() != nil {
			return e.timeOut(ctx, sess, agent, duration)
		}
		return e.fail(ctx, sess, agent, duration, services.FailureInfo{
			Message:   err.Error(),
			Source:    "execution",
			AgentID:   agent.ID,
			Retryable: true,
		})
	}

	files := make([]string, 0, len(result.Changes))
	for _, ch := range result.Changes {
		files = append(files, ch.Path)
	}
	return e.complete(ctx, sess, agent, duration, services.CompletionResult{
		SuccessRate: defaultSuccessRate,
		Confidence:  defaultConfidence,
		TotalTokens: result.TokensUsed,
		CostUSD:     result.CostUSD,
		Result:      map[string]any{"diff": map[string]any{"files": files}},
	})
}

func (e *SessionExecutor) complete(ctx context.Context, sess *ent.Session, agent *registry.Agent, duration time.Duration, outcome services.CompletionResult) error {
	if _, err := e.sessions.CompleteSession(ctx, sess.ID, outcome); err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	e.recordOutcome(ctx, agent.ID, registry.OutcomeSuccess, duration, outcome.TotalTokens, outcome.CostUSD)
	e.publishProgress(ctx, sess.ID, "done", 100)
	return nil
}

func (e *SessionExecutor) fail(ctx context.Context, sess *ent.Session, agent *registry.Agent, duration time.Duration, info services.FailureInfo) error {
	if _, err := e.sessions.FailSession(ctx, sess.ID, info); err != nil {
		return fmt.Errorf("failed to record session failure: %w", err)
	}
	e.recordOutcome(ctx, agent.ID, registry.OutcomeFailure, duration, 0, 0)
	return nil
}

func (e *SessionExecutor) timeOut(ctx context.Context, sess *ent.Session, agent *registry.Agent, duration time.Duration) error {
	if _, err := e.sessions.ApplyTransition(ctx, sess.ID, domain.SessionTimeout, "execution exceeded duration budget"); err != nil {
		return fmt.Errorf("failed to time out session: %w", err)
	}
	e.recordOutcome(ctx, agent.ID, registry.OutcomeFailure, duration, 0, 0)
	return nil
}

func (e *SessionExecutor) recordOutcome(ctx context.Context, agentID string, outcome registry.TaskOutcome, duration time.Duration, tokens int, costUSD float64) {
	if err := e.registry.RecordTaskResult(ctx, agentID, outcome, duration, tokens, costUSD); err != nil {
		e.logger.Warn("Failed to record task result", "agent_id", agentID, "error", err)
	}
}

func (e *SessionExecutor) publishProgress(ctx context.Context, sessionID, phase string, percent float64) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishSessionProgress(ctx, sessionID, events.SessionProgressPayload{
		SessionID: sessionID,
		Phase:     phase,
		Percent:   percent,
		Timestamp: time.Now(),
	}); err != nil {
		e.logger.Debug("Failed to publish progress", "session_id", sessionID, "error", err)
	}
}

// resolveAgentName picks the agent from agent_config: the first non-reserved
// key in sorted order, falling back to the default_agent value.
func resolveAgentName(cfg map[string]any) string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		if !reservedConfigKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		return keys[0]
	}
	if v, ok := cfg["default_agent"].(string); ok {
		return v
	}
	return ""
}

func floatFrom(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
