package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// StoredEvent is a persisted event row, returned by catch-up queries.
type StoredEvent struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id,omitempty"`
	Channel   string          `json:"channel"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventStore reads persisted events for catch-up after a missed NOTIFY.
// Subscribers track the last db_event_id they saw and replay from there.
type EventStore struct {
	db *sql.DB
}

// NewEventStore creates an EventStore over the shared connection pool.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// FetchSince returns events on a channel with id greater than afterID,
// oldest first, capped at limit (default 100 when limit <= 0).
func (s *EventStore) FetchSince(ctx context.Context, channel string, afterID int64, limit int) ([]StoredEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, COALESCE(session_id, ''), channel, event_type, payload, created_at
		 FROM events WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []StoredEvent
	for rows.Next() {
		var ev StoredEvent
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Channel, &ev.EventType, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// DeleteOlderThan removes persisted events created before the cutoff.
// Returns the number of rows removed. Called by the retention sweeper.
func (s *EventStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return res.RowsAffected()
}
