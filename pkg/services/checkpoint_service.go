package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/checkpoint"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/events"
)

// MaxCheckpointsPerSession bounds how many checkpoints a read materializes.
// Storage keeps the full history; reads return the most recent ones.
const MaxCheckpointsPerSession = 100

// CheckpointService appends and reads ordered recovery points for sessions.
type CheckpointService struct {
	client    *ent.Client
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewCheckpointService creates a new CheckpointService. publisher may be nil.
func NewCheckpointService(client *ent.Client, publisher *events.EventPublisher) *CheckpointService {
	return &CheckpointService{
		client:    client,
		publisher: publisher,
		logger:    slog.With("component", "checkpoint_service"),
	}
}

// AddCheckpoint appends a checkpoint with the next sequence number. The
// sequence is assigned inside the transaction; the unique (session_id,
// sequence) index catches racing writers.
func (s *CheckpointService) AddCheckpoint(ctx context.Context, sessionID, name string, data map[string]any) (*ent.Checkpoint, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if domain.SessionStatus(sess.Status).IsTerminal() {
		return nil, NewValidationError("session_id", "cannot checkpoint a terminal session")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	last, err := tx.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Desc(checkpoint.FieldSequence)).
		First(ctx)
	next := 1
	switch {
	case err == nil:
		next = last.Sequence + 1
	case ent.IsNotFound(err):
	default:
		return nil, fmt.Errorf("failed to read last checkpoint: %w", err)
	}

	builder := tx.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSequence(next)
	if name != "" {
		builder.SetName(name)
	}
	if data != nil {
		builder.SetData(data)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}

	if sess.MetricsID != nil && *sess.MetricsID != "" {
		if err := tx.SessionMetrics.UpdateOneID(*sess.MetricsID).
			AddCheckpointCount(1).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to count checkpoint: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkpoint: %w", err)
	}

	s.publishAdded(ctx, created)
	return created, nil
}

// ListCheckpoints returns a session's checkpoints in sequence order, capped
// at the MaxCheckpointsPerSession most recent. Older rows stay in storage.
func (s *CheckpointService) ListCheckpoints(ctx context.Context, sessionID string) ([]*ent.Checkpoint, error) {
	checkpoints, err := s.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Desc(checkpoint.FieldSequence)).
		Limit(MaxCheckpointsPerSession).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	for i, j := 0, len(checkpoints)-1; i < j; i, j = i+1, j-1 {
		checkpoints[i], checkpoints[j] = checkpoints[j], checkpoints[i]
	}
	return checkpoints, nil
}

// LatestCheckpoint returns the most recent checkpoint, or ErrNotFound.
func (s *CheckpointService) LatestCheckpoint(ctx context.Context, sessionID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Desc(checkpoint.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest checkpoint: %w", err)
	}
	return cp, nil
}

func (s *CheckpointService) publishAdded(ctx context.Context, cp *ent.Checkpoint) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCheckpointAdded(ctx, cp.SessionID, events.CheckpointAddedPayload{
		SessionID: cp.SessionID,
		Sequence:  cp.Sequence,
		Name:      cp.Name,
		Timestamp: cp.CreatedAt,
	}); err != nil {
		s.logger.Warn("Failed to publish checkpoint event",
			"session_id", cp.SessionID, "sequence", cp.Sequence, "error", err)
	}
}
