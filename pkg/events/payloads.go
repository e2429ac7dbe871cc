package events

import "time"

// Payload structs for each event type. Every payload carries "type" so
// subscribers can route without inspecting the channel, and session-scoped
// payloads carry "session_id" so the truncation envelope keeps routing
// fields.

// SessionCreatedPayload announces a new session.
type SessionCreatedPayload struct {
	Type      string    `json:"type"` // EventTypeSessionCreated
	SessionID string    `json:"session_id"`
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	ParentID  string    `json:"parent_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionStatusPayload announces a status transition.
type SessionStatusPayload struct {
	Type           string    `json:"type"` // EventTypeSessionStatus
	SessionID      string    `json:"session_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Version        int       `json:"version,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// SessionCompletedPayload announces terminal success.
type SessionCompletedPayload struct {
	Type        string    `json:"type"` // EventTypeSessionCompleted
	SessionID   string    `json:"session_id"`
	SuccessRate float64   `json:"success_rate"`
	Confidence  float64   `json:"confidence"`
	TotalTokens int       `json:"total_tokens,omitempty"`
	CostUSD     float64   `json:"cost_usd,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// SessionFailedPayload announces terminal failure.
type SessionFailedPayload struct {
	Type       string    `json:"type"` // EventTypeSessionFailed
	SessionID  string    `json:"session_id"`
	Error      string    `json:"error"`
	Source     string    `json:"source,omitempty"`
	AgentID    string    `json:"agent_id,omitempty"`
	Retryable  bool      `json:"retryable"`
	RetryCount int       `json:"retry_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// CheckpointAddedPayload announces a new checkpoint.
type CheckpointAddedPayload struct {
	Type      string    `json:"type"` // EventTypeCheckpointAdded
	SessionID string    `json:"session_id"`
	Sequence  int       `json:"sequence"`
	Name      string    `json:"name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AgentRegisteredPayload announces a registry addition.
type AgentRegisteredPayload struct {
	Type      string    `json:"type"` // EventTypeAgentRegistered
	AgentID   string    `json:"agent_id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	AgentType string    `json:"agent_type"`
	Tier      string    `json:"tier"`
	External  bool      `json:"external"`
	Timestamp time.Time `json:"timestamp"`
}

// TaskStatusPayload announces a task transition.
type TaskStatusPayload struct {
	Type           string    `json:"type"` // EventTypeTaskStatus
	TaskID         string    `json:"task_id"`
	SessionID      string    `json:"session_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	AgentID        string    `json:"agent_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// SessionProgressPayload is a transient progress tick.
type SessionProgressPayload struct {
	Type      string    `json:"type"` // EventTypeSessionProgress
	SessionID string    `json:"session_id"`
	Phase     string    `json:"phase,omitempty"`
	Percent   float64   `json:"percent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
