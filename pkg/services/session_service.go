package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/lock"
	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// MaxTreeDepth bounds the parent/child session hierarchy.
const MaxTreeDepth = 5

// genericTitles are rejected outright; a session title must say what the
// session does.
var genericTitles = map[string]bool{
	"test": true, "task": true, "session": true, "untitled": true,
	"new session": true, "todo": true,
}

// executionLock returns the lock resource guarding a session's lifecycle.
func executionLock(sessionID string) string { return "session:execution:" + sessionID }

// parentLock returns the lock resource guarding a parent's child list.
func parentLock(sessionID string) string { return "session:parent:" + sessionID }

// SessionService manages session lifecycle: creation with quota and parent
// linking, status transitions with optimistic locking, retry, soft delete,
// and claim/heartbeat plumbing for the worker pool.
type SessionService struct {
	client    *ent.Client
	tenants   *TenantService
	locks     *lock.Manager
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewSessionService creates a new SessionService. locks may be nil in
// single-replica deployments and tests without Redis; publisher may be nil
// to disable event publishing.
func NewSessionService(client *ent.Client, tenants *TenantService, locks *lock.Manager, publisher *events.EventPublisher) *SessionService {
	return &SessionService{
		client:    client,
		tenants:   tenants,
		locks:     locks,
		publisher: publisher,
		logger:    slog.With("component", "session_service"),
	}
}

// CreateSessionRequest carries the fields for session creation.
type CreateSessionRequest struct {
	Title              string
	Description        string
	SessionType        string
	Priority           string
	ParentID           string
	AgentConfig        map[string]any
	ModelConfig        string
	InitialPrompt      string
	MaxDurationSeconds int
	CPULimit           float64
	MemoryLimitMB      int
	Tags               []string
	Metadata           map[string]any
	CreatedBy          string
}

func (s *SessionService) validateCreate(req *CreateSessionRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return NewValidationError("title", "required")
	}
	if len(title) > 200 {
		return NewValidationError("title", "must be at most 200 characters")
	}
	if genericTitles[strings.ToLower(title)] {
		return NewValidationError("title", "title is too generic")
	}
	req.Title = title

	if strings.TrimSpace(req.InitialPrompt) == "" {
		return NewValidationError("initial_prompt", "required")
	}
	if len(req.InitialPrompt) > 10000 {
		return NewValidationError("initial_prompt", "must be at most 10000 characters")
	}

	if req.SessionType == "" {
		req.SessionType = string(domain.SessionTypeExecution)
	}
	if !domain.ValidSessionType(domain.SessionType(req.SessionType)) {
		return NewValidationError("session_type", fmt.Sprintf("unknown session type %q", req.SessionType))
	}
	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}
	if !domain.ValidPriority(domain.Priority(req.Priority)) {
		return NewValidationError("priority", fmt.Sprintf("unknown priority %q", req.Priority))
	}

	if req.MaxDurationSeconds == 0 {
		req.MaxDurationSeconds = 3600
	}
	if req.MaxDurationSeconds < 60 || req.MaxDurationSeconds > 86400 {
		return NewValidationError("max_duration_seconds", "must be between 60 and 86400")
	}
	if req.CPULimit != 0 && (req.CPULimit < 0.1 || req.CPULimit > 8.0) {
		return NewValidationError("cpu_limit", "must be between 0.1 and 8.0")
	}
	if req.MemoryLimitMB < 0 {
		return NewValidationError("memory_limit_mb", "must be positive")
	}
	return nil
}

// CreateSession creates a session for the tenant in ctx, enforcing the
// tenant's concurrent-session quota and, for child sessions, the tree depth
// bound under the parent's link lock.
func (s *SessionService) CreateSession(ctx context.Context, req CreateSessionRequest) (*ent.Session, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	if err := s.validateCreate(&req); err != nil {
		return nil, err
	}
	if _, err := s.tenants.EnsureSessionQuota(ctx, tenantID); err != nil {
		return nil, err
	}

	if req.ParentID == "" {
		return s.createSession(ctx, tenantID, req)
	}

	// Child creation holds the parent link lock so concurrent children and
	// parent deletion serialize; the child_ids trigger does the bookkeeping.
	var created *ent.Session
	err = s.withLock(ctx, parentLock(req.ParentID), func(ctx context.Context) error {
		parent, err := s.client.Session.Query().
			Where(
				session.IDEQ(req.ParentID),
				session.TenantIDEQ(tenantID),
				session.DeletedAtIsNil(),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return NewValidationError("parent_id", "parent session not found")
			}
			return fmt.Errorf("failed to load parent session: %w", err)
		}

		depth, err := s.ancestryDepth(ctx, parent)
		if err != nil {
			return err
		}
		if depth+1 >= MaxTreeDepth {
			return NewValidationError("parent_id",
				fmt.Sprintf("session tree depth exceeds %d", MaxTreeDepth))
		}

		created, err = s.createSession(ctx, tenantID, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ancestryDepth counts ancestors above the given session (a root has 0).
func (s *SessionService) ancestryDepth(ctx context.Context, sess *ent.Session) (int, error) {
	depth := 0
	cur := sess
	for cur.ParentID != nil && *cur.ParentID != "" {
		depth++
		if depth >= MaxTreeDepth {
			return depth, nil
		}
		parent, err := s.client.Session.Get(ctx, *cur.ParentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return depth, nil
			}
			return 0, fmt.Errorf("failed to walk session ancestry: %w", err)
		}
		cur = parent
	}
	return depth, nil
}

func (s *SessionService) createSession(ctx context.Context, tenantID string, req CreateSessionRequest) (*ent.Session, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	metrics, err := tx.SessionMetrics.Create().
		SetID(uuid.New().String()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session metrics: %w", err)
	}

	builder := tx.Session.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetTitle(req.Title).
		SetSessionType(session.SessionType(req.SessionType)).
		SetPriority(session.Priority(req.Priority)).
		SetStatus(session.StatusPending).
		SetInitialPrompt(req.InitialPrompt).
		SetMaxDurationSeconds(req.MaxDurationSeconds).
		SetMetricsID(metrics.ID)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.ParentID != "" {
		builder.SetParentID(req.ParentID)
	}
	if req.AgentConfig != nil {
		builder.SetAgentConfig(req.AgentConfig)
	}
	if req.ModelConfig != "" {
		builder.SetModelConfig(req.ModelConfig)
	}
	if req.CPULimit != 0 {
		builder.SetCPULimit(req.CPULimit)
	}
	if req.MemoryLimitMB != 0 {
		builder.SetMemoryLimitMB(req.MemoryLimitMB)
	}
	if req.Tags != nil {
		builder.SetTags(req.Tags)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}
	if req.CreatedBy != "" {
		builder.SetCreatedBy(req.CreatedBy)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session creation: %w", err)
	}

	s.publishCreated(ctx, created)
	return created, nil
}

// GetSession retrieves a session. Callers with a tenant in ctx see only
// their tenant's non-deleted sessions; operational callers (workers,
// monitor) see everything.
func (s *SessionService) GetSession(ctx context.Context, id string) (*ent.Session, error) {
	query := s.client.Session.Query().Where(session.IDEQ(id))
	if tenantID := tenancy.TenantID(ctx); tenantID != "" {
		query = query.Where(session.TenantIDEQ(tenantID), session.DeletedAtIsNil())
	}
	sess, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// SessionFilters narrow ListSessions.
type SessionFilters struct {
	Status         string
	SessionType    string
	Priority       string
	ParentID       string
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// SessionList is a page of sessions.
type SessionList struct {
	Sessions   []*ent.Session
	TotalCount int
	Limit      int
	Offset     int
}

// ListSessions lists the tenant's sessions with filtering and pagination.
func (s *SessionService) ListSessions(ctx context.Context, filters SessionFilters) (*SessionList, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}

	query := s.client.Session.Query().Where(session.TenantIDEQ(tenantID))
	if filters.Status != "" {
		query = query.Where(session.StatusEQ(session.Status(filters.Status)))
	}
	if filters.SessionType != "" {
		query = query.Where(session.SessionTypeEQ(session.SessionType(filters.SessionType)))
	}
	if filters.Priority != "" {
		query = query.Where(session.PriorityEQ(session.Priority(filters.Priority)))
	}
	if filters.ParentID != "" {
		query = query.Where(session.ParentIDEQ(filters.ParentID))
	}
	if !filters.IncludeDeleted {
		query = query.Where(session.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &SessionList{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// TransitionStatus moves a session to a new lifecycle state under its
// execution lock, enforcing the permitted-transition table and optimistic
// version assertion.
func (s *SessionService) TransitionStatus(ctx context.Context, sessionID string, to domain.SessionStatus, reason string) (*ent.Session, error) {
	var out *ent.Session
	err := s.withLock(ctx, executionLock(sessionID), func(ctx context.Context) error {
		var err error
		out, err = s.ApplyTransition(ctx, sessionID, to, reason)
		return err
	})
	return out, err
}

// ApplyTransition performs the transition without taking the execution
// lock. Callers must already hold it (the session executor does).
func (s *SessionService) ApplyTransition(ctx context.Context, sessionID string, to domain.SessionStatus, reason string) (*ent.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, sess, to, reason)
}

func (s *SessionService) transition(ctx context.Context, sess *ent.Session, to domain.SessionStatus, reason string) (*ent.Session, error) {
	from := domain.SessionStatus(sess.Status)
	if !domain.CanTransition(from, to) {
		return nil, &TransitionError{Entity: "session", From: string(from), To: string(to)}
	}

	// The version trigger does the +1; the WHERE clause asserts nobody else
	// got there first.
	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sess.ID),
			session.VersionEQ(sess.Version),
			session.StatusEQ(sess.Status),
		).
		SetStatus(session.Status(to)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition session: %w", err)
	}
	if n == 0 {
		return nil, s.conflictFor(ctx, sess)
	}

	if err := s.stampMetrics(ctx, sess, to); err != nil {
		s.logger.Warn("Failed to stamp session metrics",
			"session_id", sess.ID, "status", to, "error", err)
	}

	updated, err := s.client.Session.Get(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload session: %w", err)
	}

	s.publishStatus(ctx, updated, string(from), reason)
	return updated, nil
}

// conflictFor builds a ConflictError with the row's current version.
func (s *SessionService) conflictFor(ctx context.Context, sess *ent.Session) error {
	actual := -1
	if cur, err := s.client.Session.Get(ctx, sess.ID); err == nil {
		actual = cur.Version
	}
	return &ConflictError{
		Entity:          "session",
		ID:              sess.ID,
		ExpectedVersion: sess.Version,
		ActualVersion:   actual,
	}
}

// stampMetrics cascades status changes into the metrics row.
func (s *SessionService) stampMetrics(ctx context.Context, sess *ent.Session, to domain.SessionStatus) error {
	if sess.MetricsID == nil || *sess.MetricsID == "" {
		return nil
	}
	update := s.client.SessionMetrics.UpdateOneID(*sess.MetricsID)
	switch {
	case to == domain.SessionQueued:
		update.SetQueuedAt(time.Now())
	case to == domain.SessionRunning:
		metrics, err := s.client.SessionMetrics.Get(ctx, *sess.MetricsID)
		if err != nil {
			return err
		}
		if metrics.StartedAt != nil {
			return nil // already started; resume or retry
		}
		update.SetStartedAt(time.Now())
	case to == domain.SessionFailed || to == domain.SessionTimeout:
		now := time.Now()
		update.SetFailedAt(now).SetCompletedAt(now)
	case to.IsTerminal() || to == domain.SessionPartiallyCompleted:
		update.SetCompletedAt(time.Now())
	default:
		return nil
	}
	return update.Exec(ctx)
}

// CompletionResult carries the terminal outcome of a successful execution.
type CompletionResult struct {
	SuccessRate float64
	Confidence  float64
	TotalTokens int
	CostUSD     float64
	Result      map[string]any
	Warnings    []string
	Partial     bool
}

// CompleteSession transitions a session to completed (or
// partially_completed) and records outcome metrics. Caller must hold the
// execution lock.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string, res CompletionResult) (*ent.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	target := domain.SessionCompleted
	if res.Partial {
		target = domain.SessionPartiallyCompleted
	}
	updated, err := s.transition(ctx, sess, target, "execution finished")
	if err != nil {
		return nil, err
	}

	if sess.MetricsID != nil && *sess.MetricsID != "" {
		update := s.client.SessionMetrics.UpdateOneID(*sess.MetricsID).
			SetSuccessRate(res.SuccessRate).
			SetConfidence(res.Confidence).
			SetTotalTokens(res.TotalTokens).
			SetCostUsd(res.CostUSD).
			AddAPICalls(1)
		if res.Result != nil {
			update.SetResult(res.Result)
		}
		if len(res.Warnings) > 0 {
			update.SetWarnings(res.Warnings)
		}
		err = update.Exec(ctx)
		if err != nil {
			s.logger.Warn("Failed to record completion metrics",
				"session_id", sessionID, "error", err)
		}
	}

	s.publishCompleted(ctx, updated, res)
	return updated, nil
}

// FailureInfo describes a terminal failure.
type FailureInfo struct {
	Type      string // error class, e.g. "RuntimeError"; defaults to RuntimeError
	Message   string
	Source    string
	AgentID   string
	Retryable bool
}

// FailSession transitions a session to failed, records the error blob and
// counts the spent attempt. Caller must hold the execution lock.
func (s *SessionService) FailSession(ctx context.Context, sessionID string, f FailureInfo) (*ent.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, sess, domain.SessionFailed, f.Message)
	if err != nil {
		return nil, err
	}

	if f.Type == "" {
		f.Type = "RuntimeError"
	}
	if sess.MetricsID != nil && *sess.MetricsID != "" {
		err = s.client.SessionMetrics.UpdateOneID(*sess.MetricsID).
			SetError(map[string]any{
				"type":      f.Type,
				"message":   f.Message,
				"source":    f.Source,
				"agent_id":  f.AgentID,
				"retryable": f.Retryable,
			}).
			AddRetryCount(1).
			AddAPICalls(1).
			AddAPIErrors(1).
			Exec(ctx)
		if err != nil {
			s.logger.Warn("Failed to record failure metrics",
				"session_id", sessionID, "error", err)
		}
	}

	s.publishFailed(ctx, updated, f)
	return updated, nil
}

// RetrySession resets a recoverable session back to pending. Recoverable
// means failed/timeout/stopped with at least one checkpoint and retry budget
// remaining; the attempt itself was already counted when the session failed.
func (s *SessionService) RetrySession(ctx context.Context, sessionID string) (*ent.Session, error) {
	var out *ent.Session
	err := s.withLock(ctx, executionLock(sessionID), func(ctx context.Context) error {
		sess, err := s.GetSession(ctx, sessionID)
		if err != nil {
			return err
		}

		checkpoints, err := sess.QueryCheckpoints().Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count checkpoints: %w", err)
		}
		retryCount := 0
		if sess.MetricsID != nil && *sess.MetricsID != "" {
			if metrics, err := s.client.SessionMetrics.Get(ctx, *sess.MetricsID); err == nil {
				retryCount = metrics.RetryCount
			}
		}

		if !domain.IsRecoverable(domain.SessionStatus(sess.Status), checkpoints, retryCount) {
			return NewValidationError("status",
				fmt.Sprintf("session in status %q is not recoverable", sess.Status))
		}

		// Retry is the sanctioned reset path outside the transition table:
		// a recoverable terminal session goes straight back to pending.
		n, err := s.client.Session.Update().
			Where(
				session.IDEQ(sess.ID),
				session.VersionEQ(sess.Version),
				session.StatusEQ(sess.Status),
			).
			SetStatus(session.StatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		if n == 0 {
			return s.conflictFor(ctx, sess)
		}

		out, err = s.client.Session.Get(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("failed to reload session: %w", err)
		}
		s.publishStatus(ctx, out, string(sess.Status), "retry")
		return nil
	})
	return out, err
}

// CancelSession stops a session at the caller's request. Running sessions
// become stopped; not-yet-running ones become cancelled.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string, reason string) (*ent.Session, error) {
	var out *ent.Session
	err := s.withLock(ctx, executionLock(sessionID), func(ctx context.Context) error {
		sess, err := s.GetSession(ctx, sessionID)
		if err != nil {
			return err
		}
		status := domain.SessionStatus(sess.Status)
		if !status.IsCancellable() {
			return &TransitionError{Entity: "session", From: string(status), To: string(domain.SessionCancelled)}
		}
		target := domain.SessionCancelled
		if status == domain.SessionRunning {
			target = domain.SessionStopped
		}
		out, err = s.transition(ctx, sess, target, reason)
		return err
	})
	return out, err
}

// PauseSession suspends a running session.
func (s *SessionService) PauseSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	return s.TransitionStatus(ctx, sessionID, domain.SessionPaused, "paused by caller")
}

// ResumeSession resumes a paused session.
func (s *SessionService) ResumeSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	return s.TransitionStatus(ctx, sessionID, domain.SessionRunning, "resumed by caller")
}

// ClaimNextPendingSession atomically claims the next claimable session using
// FOR UPDATE SKIP LOCKED, ordered by priority then age. Claimable means
// pending, or queued without an owning pod (started via the API). The claimed
// session moves to queued with this pod as owner. Returns ErrNotFound when
// nothing is claimable.
func (s *SessionService) ClaimNextPendingSession(ctx context.Context, podID string) (*ent.Session, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Session.Query().
		Where(
			session.Or(
				session.StatusEQ(session.StatusPending),
				session.And(session.StatusEQ(session.StatusQueued), session.PodIDIsNil()),
			),
			session.DeletedAtIsNil(),
		).
		Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr(
				`CASE priority WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END`))
		}, ent.Asc(session.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query pending session: %w", err)
	}

	now := time.Now()
	claimed, err = claimed.Update().
		SetStatus(session.StatusQueued).
		SetPodID(podID).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	// Reload so the caller sees the trigger-bumped version.
	claimed, err = s.client.Session.Get(ctx, claimed.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload claimed session: %w", err)
	}

	if err := s.stampMetrics(ctx, claimed, domain.SessionQueued); err != nil {
		s.logger.Warn("Failed to stamp session metrics",
			"session_id", claimed.ID, "status", domain.SessionQueued, "error", err)
	}

	s.publishStatus(ctx, claimed, string(domain.SessionPending), "claimed by "+podID)
	return claimed, nil
}

// Heartbeat stamps the session's liveness timestamp for orphan detection.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	err := s.client.Session.UpdateOneID(sessionID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// FindOrphanedSessions finds claimed sessions whose heartbeat went stale.
func (s *SessionService) FindOrphanedSessions(ctx context.Context, threshold time.Duration) ([]*ent.Session, error) {
	cutoff := time.Now().Add(-threshold)
	sessions, err := s.client.Session.Query().
		Where(
			session.StatusIn(session.StatusQueued, session.StatusRunning),
			session.LastHeartbeatAtNotNil(),
			session.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}
	return sessions, nil
}

// MarkOrphaned moves a stale session to orphaned. This is an operational
// recovery path outside the normal transition table.
func (s *SessionService) MarkOrphaned(ctx context.Context, sess *ent.Session) error {
	n, err := s.client.Session.Update().
		Where(
			session.IDEQ(sess.ID),
			session.StatusEQ(sess.Status),
		).
		SetStatus(session.StatusOrphaned).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to orphan session: %w", err)
	}
	if n == 0 {
		return nil // moved on its own; not stale after all
	}
	if updated, err := s.client.Session.Get(ctx, sess.ID); err == nil {
		s.publishStatus(ctx, updated, string(sess.Status), "heartbeat lost")
	}
	return nil
}

// RunningSessions returns all currently running sessions, for the monitor.
func (s *SessionService) RunningSessions(ctx context.Context) ([]*ent.Session, error) {
	sessions, err := s.client.Session.Query().
		Where(
			session.StatusEQ(session.StatusRunning),
			session.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession soft deletes a session for the tenant in ctx.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if domain.SessionStatus(sess.Status).IsActive() || sess.Status == session.StatusPending {
		return NewValidationError("status", "cannot delete an active session; cancel it first")
	}
	err = s.client.Session.UpdateOneID(sess.ID).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete session: %w", err)
	}
	return nil
}

// SoftDeleteOldSessions soft deletes terminal sessions older than the
// retention period. Used by the retention sweeper.
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	count, err := s.client.Session.Update().
		Where(
			session.StatusIn(
				session.StatusCompleted, session.StatusFailed, session.StatusTimeout,
				session.StatusStopped, session.StatusCancelled, session.StatusOrphaned,
			),
			session.StatusUpdatedAtLT(cutoff),
			session.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}
	return count, nil
}

// RestoreSession clears a session's soft delete.
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	err := s.client.Session.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

// SearchSessions performs full-text search over title, description, and
// initial prompt, scoped to the tenant in ctx.
func (s *SessionService) SearchSessions(ctx context.Context, query string, limit int) ([]*ent.Session, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.client.Session.Query().
		Where(
			session.TenantIDEQ(tenantID),
			session.DeletedAtIsNil(),
		).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("to_tsvector('english', title || ' ' || COALESCE(description, '') || ' ' || initial_prompt) @@ plainto_tsquery('english', ")
				b.Arg(query)
				b.WriteString(")")
			}))
		}).
		Limit(limit).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}
	return sessions, nil
}

// SessionTree is a session and its children, to bounded depth.
type SessionTree struct {
	Session  *ent.Session
	Children []*SessionTree
}

// GetSessionTree loads the session and its descendants (depth MaxTreeDepth).
func (s *SessionService) GetSessionTree(ctx context.Context, sessionID string) (*SessionTree, error) {
	root, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildTree(ctx, root, 1)
}

func (s *SessionService) buildTree(ctx context.Context, sess *ent.Session, depth int) (*SessionTree, error) {
	node := &SessionTree{Session: sess}
	if depth >= MaxTreeDepth {
		return node, nil
	}
	children, err := s.client.Session.Query().
		Where(
			session.ParentIDEQ(sess.ID),
			session.DeletedAtIsNil(),
		).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load child sessions: %w", err)
	}
	for _, child := range children {
		sub, err := s.buildTree(ctx, child, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, sub)
	}
	return node, nil
}

// withLock runs fn under a distributed lock when a lock manager is
// configured, or directly in single-replica deployments without one.
func (s *SessionService) withLock(ctx context.Context, resource string, fn func(ctx context.Context) error) error {
	if s.locks == nil {
		return fn(ctx)
	}
	return s.locks.WithLock(ctx, resource, lock.AcquireOptions{
		Blocking: true,
		Timeout:  10 * time.Second,
	}, fn)
}

// --- event publishing (best-effort) ---

func (s *SessionService) publishCreated(ctx context.Context, sess *ent.Session) {
	if s.publisher == nil {
		return
	}
	parentID := ""
	if sess.ParentID != nil {
		parentID = *sess.ParentID
	}
	if err := s.publisher.PublishSessionCreated(ctx, sess.ID, events.SessionCreatedPayload{
		SessionID: sess.ID,
		TenantID:  sess.TenantID,
		Title:     sess.Title,
		Status:    string(sess.Status),
		Priority:  string(sess.Priority),
		ParentID:  parentID,
		Timestamp: time.Now(),
	}); err != nil {
		s.logger.Warn("Failed to publish session created event",
			"session_id", sess.ID, "error", err)
	}
}

func (s *SessionService) publishStatus(ctx context.Context, sess *ent.Session, previous, reason string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSessionStatus(ctx, sess.ID, events.SessionStatusPayload{
		SessionID:      sess.ID,
		Status:         string(sess.Status),
		PreviousStatus: previous,
		Version:        sess.Version,
		Reason:         reason,
		Timestamp:      time.Now(),
	}); err != nil {
		s.logger.Warn("Failed to publish session status event",
			"session_id", sess.ID, "status", sess.Status, "error", err)
	}
}

func (s *SessionService) publishCompleted(ctx context.Context, sess *ent.Session, res CompletionResult) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSessionCompleted(ctx, sess.ID, events.SessionCompletedPayload{
		SessionID:   sess.ID,
		SuccessRate: res.SuccessRate,
		Confidence:  res.Confidence,
		TotalTokens: res.TotalTokens,
		CostUSD:     res.CostUSD,
		Timestamp:   time.Now(),
	}); err != nil {
		s.logger.Warn("Failed to publish session completed event",
			"session_id", sess.ID, "error", err)
	}
}

func (s *SessionService) publishFailed(ctx context.Context, sess *ent.Session, f FailureInfo) {
	if s.publisher == nil {
		return
	}
	retryCount := 0
	if sess.MetricsID != nil && *sess.MetricsID != "" {
		if metrics, err := s.client.SessionMetrics.Get(ctx, *sess.MetricsID); err == nil {
			retryCount = metrics.RetryCount
		}
	}
	if err := s.publisher.PublishSessionFailed(ctx, sess.ID, events.SessionFailedPayload{
		SessionID:  sess.ID,
		Error:      f.Message,
		Source:     f.Source,
		AgentID:    f.AgentID,
		Retryable:  f.Retryable,
		RetryCount: retryCount,
		Timestamp:  time.Now(),
	}); err != nil {
		s.logger.Warn("Failed to publish session failed event",
			"session_id", sess.ID, "error", err)
	}
}
