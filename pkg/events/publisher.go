package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes orchestration events.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (progress ticks) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from sessionID) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishSessionCreated persists a session.created event to the session channel
// and broadcasts a transient copy to the global sessions channel.
func (p *EventPublisher) PublishSessionCreated(ctx context.Context, sessionID string, payload SessionCreatedPayload) error {
	payload.Type = EventTypeSessionCreated
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionCreatedPayload: %w", err)
	}
	return p.publishSessionScoped(ctx, sessionID, EventTypeSessionCreated, payloadJSON)
}

// PublishSessionStatus persists a session.status event to the session channel
// and broadcasts a transient copy to the global sessions channel.
func (p *EventPublisher) PublishSessionStatus(ctx context.Context, sessionID string, payload SessionStatusPayload) error {
	payload.Type = EventTypeSessionStatus
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStatusPayload: %w", err)
	}
	return p.publishSessionScoped(ctx, sessionID, EventTypeSessionStatus, payloadJSON)
}

// PublishSessionCompleted persists and broadcasts a session.completed event.
func (p *EventPublisher) PublishSessionCompleted(ctx context.Context, sessionID string, payload SessionCompletedPayload) error {
	payload.Type = EventTypeSessionCompleted
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionCompletedPayload: %w", err)
	}
	return p.publishSessionScoped(ctx, sessionID, EventTypeSessionCompleted, payloadJSON)
}

// PublishSessionFailed persists and broadcasts a session.failed event.
func (p *EventPublisher) PublishSessionFailed(ctx context.Context, sessionID string, payload SessionFailedPayload) error {
	payload.Type = EventTypeSessionFailed
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionFailedPayload: %w", err)
	}
	return p.publishSessionScoped(ctx, sessionID, EventTypeSessionFailed, payloadJSON)
}

// PublishCheckpointAdded persists and broadcasts a checkpoint.added event
// to the session channel.
func (p *EventPublisher) PublishCheckpointAdded(ctx context.Context, sessionID string, payload CheckpointAddedPayload) error {
	payload.Type = EventTypeCheckpointAdded
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CheckpointAddedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), EventTypeCheckpointAdded, payloadJSON)
}

// PublishTaskStatus persists and broadcasts a task.status event
// to the owning session's channel.
func (p *EventPublisher) PublishTaskStatus(ctx context.Context, sessionID string, payload TaskStatusPayload) error {
	payload.Type = EventTypeTaskStatus
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), EventTypeTaskStatus, payloadJSON)
}

// PublishAgentRegistered persists and broadcasts an agent.registered event
// to the global agents channel. Not session-scoped.
func (p *EventPublisher) PublishAgentRegistered(ctx context.Context, payload AgentRegisteredPayload) error {
	payload.Type = EventTypeAgentRegistered
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentRegisteredPayload: %w", err)
	}
	return p.persistAndNotify(ctx, "", GlobalAgentsChannel, EventTypeAgentRegistered, payloadJSON)
}

// PublishSessionProgress broadcasts a session.progress transient event (no DB
// persistence). High-frequency, lost on disconnect.
func (p *EventPublisher) PublishSessionProgress(ctx context.Context, sessionID string, payload SessionProgressPayload) error {
	payload.Type = EventTypeSessionProgress
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, SessionChannel(sessionID), payloadJSON)
}

// --- Internal core methods ---

// publishSessionScoped persists an event to the session channel and broadcasts
// a transient copy to the global sessions channel. Both publishes are
// best-effort: if the persistent one fails, the transient one is still
// attempted. Returns the first error encountered (if any).
func (p *EventPublisher) publishSessionScoped(ctx context.Context, sessionID, eventType string, payloadJSON []byte) error {
	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), eventType, payloadJSON); err != nil {
		slog.Warn("Failed to publish event to session channel",
			"session_id", sessionID, "event_type", eventType, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish event to global channel",
			"session_id", sessionID, "event_type", eventType, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, sessionID, channel, eventType string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// session_id is NULL for non-session events (registry broadcasts)
	var sessionArg any
	if sessionID != "" {
		sessionArg = sessionID
	}

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, event_type, payload, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		sessionArg, channel, eventType, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
