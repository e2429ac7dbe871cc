// Package events provides durable event publishing over PostgreSQL
// NOTIFY/LISTEN. Persistent events are written to the events table and
// broadcast in the same transaction so subscribers can catch up from the
// table after a disconnect; the HTTP/WebSocket delivery surface is an
// external collaborator consuming these channels.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeSessionCreated   = "session.created"
	EventTypeSessionStatus    = "session.status"
	EventTypeSessionCompleted = "session.completed"
	EventTypeSessionFailed    = "session.failed"
	EventTypeCheckpointAdded  = "checkpoint.added"
	EventTypeAgentRegistered  = "agent.registered"
	EventTypeTaskStatus       = "task.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-session progress ticks — high-frequency, ephemeral.
	EventTypeSessionProgress = "session.progress"
)

// GlobalSessionsChannel carries session-level status events for list views.
const GlobalSessionsChannel = "sessions"

// GlobalAgentsChannel carries registry events.
const GlobalAgentsChannel = "agents"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}
