package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_SubscribeAndBroadcast(t *testing.T) {
	d := NewDispatcher()

	var got [][]byte
	d.Subscribe("session:s1", func(channel string, payload []byte) {
		assert.Equal(t, "session:s1", channel)
		got = append(got, payload)
	})

	d.Broadcast("session:s1", []byte(`{"type":"session.status"}`))
	d.Broadcast("session:other", []byte(`{"type":"ignored"}`))

	assert.Len(t, got, 1)
	assert.JSONEq(t, `{"type":"session.status"}`, string(got[0]))
}

func TestDispatcher_MultipleSubscribers(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	d.Subscribe("sessions", func(string, []byte) { calls++ })
	d.Subscribe("sessions", func(string, []byte) { calls++ })
	assert.Equal(t, 2, d.SubscriberCount("sessions"))

	d.Broadcast("sessions", []byte(`{}`))
	assert.Equal(t, 2, calls)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	id1 := d.Subscribe("agents", func(string, []byte) { calls++ })
	id2 := d.Subscribe("agents", func(string, []byte) { calls++ })

	empty := d.Unsubscribe("agents", id1)
	assert.False(t, empty, "one subscriber remains")

	d.Broadcast("agents", []byte(`{}`))
	assert.Equal(t, 1, calls)

	empty = d.Unsubscribe("agents", id2)
	assert.True(t, empty, "channel drained, caller should UNLISTEN")
	assert.Equal(t, 0, d.SubscriberCount("agents"))
}

func TestDispatcher_UnsubscribeUnknownChannel(t *testing.T) {
	d := NewDispatcher()
	assert.True(t, d.Unsubscribe("nope", 7))
}

func TestDispatcher_BroadcastNoSubscribersIsNoop(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Broadcast("empty", []byte(`{}`))
	})
}
