package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStatusPayload{
			Type:      EventTypeSessionStatus,
			SessionID: "abc-123",
			Status:    "running",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSessionStatus)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionFailedPayload{
			Type:      EventTypeSessionFailed,
			SessionID: "abc-123",
			Error:     strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(SessionFailedPayload{
			Type:      EventTypeSessionFailed,
			SessionID: "sess-789",
			Error:     strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeSessionFailed)
		assert.Contains(t, result, "sess-789")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		base, _ := json.Marshal(SessionFailedPayload{Type: "t"})
		// 20-byte margin absorbs encoding overhead of the fixed fields.
		errSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(SessionFailedPayload{
			Type:  "t",
			Error: strings.Repeat("b", errSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStatusPayload{
			Type:      EventTypeSessionStatus,
			SessionID: "sess-1",
			Status:    "completed",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "sess-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(SessionFailedPayload{
			Type:      EventTypeSessionFailed,
			SessionID: "sess-789",
			Error:     strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "sess-789")
	})

	t.Run("truncated payload without session_id keeps type", func(t *testing.T) {
		payload, _ := json.Marshal(AgentRegisteredPayload{
			Type:    EventTypeAgentRegistered,
			AgentID: "AGENT-1",
			Name:    strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.Contains(t, result, EventTypeAgentRegistered)
	})
}

func TestSessionChannel(t *testing.T) {
	assert.Equal(t, "session:sess-42", SessionChannel("sess-42"))
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestSessionStatusPayload_JSON(t *testing.T) {
	payload := SessionStatusPayload{
		Type:           EventTypeSessionStatus,
		SessionID:      "sess-123",
		Status:         "executing",
		PreviousStatus: "assigned",
		Version:        4,
		Timestamp:      time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSessionStatus, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, "executing", decoded.Status)
	assert.Equal(t, "assigned", decoded.PreviousStatus)
	assert.Equal(t, 4, decoded.Version)
}

func TestSessionFailedPayload_OmitsEmptyAgent(t *testing.T) {
	payload := SessionFailedPayload{
		Type:      EventTypeSessionFailed,
		SessionID: "sess-123",
		Error:     "executor crashed",
		Retryable: true,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "agent_id")
}
