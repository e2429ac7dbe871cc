package events

import (
	"log/slog"
	"sync"
)

// Handler receives raw NOTIFY payloads for a channel. Handlers must not
// block: dispatch happens on the listener's receive goroutine.
type Handler func(channel string, payload []byte)

// Dispatcher fans NOTIFY payloads out to in-process subscribers.
// It is the local delivery end of the NOTIFY pipeline; the NotifyListener
// feeds it and callers register handlers per channel.
type Dispatcher struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]Handler // channel -> subscription id -> handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for a channel and returns a subscription id
// for use with Unsubscribe.
func (d *Dispatcher) Subscribe(channel string, h Handler) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	if d.handlers[channel] == nil {
		d.handlers[channel] = make(map[int]Handler)
	}
	d.handlers[channel][id] = h
	return id
}

// Unsubscribe removes a subscription. Returns true if the channel has no
// remaining subscribers, so the caller can UNLISTEN it.
func (d *Dispatcher) Unsubscribe(channel string, id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	subs := d.handlers[channel]
	if subs == nil {
		return true
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(d.handlers, channel)
		return true
	}
	return false
}

// SubscriberCount returns the number of handlers registered for a channel.
func (d *Dispatcher) SubscriberCount(channel string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[channel])
}

// Broadcast delivers a payload to every handler registered for the channel.
// Unknown channels are dropped with a debug log.
func (d *Dispatcher) Broadcast(channel string, payload []byte) {
	d.mu.RLock()
	subs := make([]Handler, 0, len(d.handlers[channel]))
	for _, h := range d.handlers[channel] {
		subs = append(subs, h)
	}
	d.mu.RUnlock()

	if len(subs) == 0 {
		slog.Debug("No subscribers for NOTIFY channel", "channel", channel)
		return
	}
	for _, h := range subs {
		h(channel, payload)
	}
}
