package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/test/util"
)

// notifyEnv runs a live publish -> NOTIFY -> listener -> dispatcher pipeline
// against the test database.
type notifyEnv struct {
	client    *ent.Client
	publisher *EventPublisher
	store     *EventStore
	listener  *NotifyListener
	received  chan []byte
}

func newNotifyEnv(t *testing.T, channel string) *notifyEnv {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	received := make(chan []byte, 8)
	dispatcher := NewDispatcher()
	dispatcher.Subscribe(channel, func(_ string, payload []byte) {
		received <- payload
	})

	listener := NewNotifyListener(util.BaseConnString(t), dispatcher)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	require.NoError(t, listener.Subscribe(ctx, channel))

	return &notifyEnv{
		client:    client,
		publisher: NewEventPublisher(db),
		store:     NewEventStore(db),
		listener:  listener,
		received:  received,
	}
}

func (e *notifyEnv) createSession(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	tenant, err := e.client.Tenant.Create().
		SetID(uuid.NewString()).
		SetName("Events Tenant").
		SetSlug("events-tenant").
		Save(ctx)
	require.NoError(t, err)

	sess, err := e.client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenant.ID).
		SetTitle("Exercise the notify pipeline").
		SetInitialPrompt("run").
		Save(ctx)
	require.NoError(t, err)
	return sess.ID
}

func (e *notifyEnv) waitForPayload(t *testing.T) map[string]any {
	t.Helper()
	select {
	case payload := <-e.received:
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))
		return decoded
	case <-time.After(10 * time.Second):
		t.Fatal("NOTIFY never arrived")
		return nil
	}
}

func TestPublishRoundTripThroughListener(t *testing.T) {
	env := newNotifyEnv(t, GlobalSessionsChannel)
	ctx := context.Background()
	sessionID := env.createSession(t)

	require.NoError(t, env.publisher.PublishSessionStatus(ctx, sessionID, SessionStatusPayload{
		SessionID:      sessionID,
		Status:         "running",
		PreviousStatus: "queued",
		Timestamp:      time.Now(),
	}))

	decoded := env.waitForPayload(t)
	assert.Equal(t, EventTypeSessionStatus, decoded["type"])
	assert.Equal(t, sessionID, decoded["session_id"])

	// The persisted copy lands on the session channel for catch-up reads
	// and carries the db_event_id the NOTIFY payload advertised.
	stored, err := env.store.FetchSince(ctx, SessionChannel(sessionID), 0, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, EventTypeSessionStatus, stored[0].EventType)
	assert.Equal(t, sessionID, stored[0].SessionID)
}

func TestTransientProgressIsNotPersisted(t *testing.T) {
	env := newNotifyEnv(t, SessionChannel("sess-transient"))
	ctx := context.Background()

	require.NoError(t, env.publisher.PublishSessionProgress(ctx, "sess-transient", SessionProgressPayload{
		SessionID: "sess-transient",
		Phase:     "executing",
		Percent:   40,
		Timestamp: time.Now(),
	}))

	decoded := env.waitForPayload(t)
	assert.Equal(t, EventTypeSessionProgress, decoded["type"])

	stored, err := env.store.FetchSince(ctx, SessionChannel("sess-transient"), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	env := newNotifyEnv(t, GlobalAgentsChannel)
	ctx := context.Background()

	require.NoError(t, env.publisher.PublishAgentRegistered(ctx, AgentRegisteredPayload{
		AgentID:   "AGENT-int-1",
		Name:      "AGENT-int-1",
		AgentType: "implementer",
		Timestamp: time.Now(),
	}))
	env.waitForPayload(t)

	require.NoError(t, env.listener.Unsubscribe(ctx, GlobalAgentsChannel))
	require.NoError(t, env.publisher.PublishAgentRegistered(ctx, AgentRegisteredPayload{
		AgentID:   "AGENT-int-2",
		Name:      "AGENT-int-2",
		AgentType: "implementer",
		Timestamp: time.Now(),
	}))

	select {
	case payload := <-env.received:
		t.Fatalf("unexpected delivery after UNLISTEN: %s", payload)
	case <-time.After(time.Second):
	}
}
