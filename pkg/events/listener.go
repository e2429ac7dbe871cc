package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// waitSlice bounds each WaitForNotification call so the loop can pick
	// up queued LISTEN/UNLISTEN commands between notifications.
	waitSlice = 100 * time.Millisecond

	reconnectBase = time.Second
	reconnectCap  = 30 * time.Second
)

// command is a LISTEN or UNLISTEN statement queued for the run loop. Only
// the run loop touches the pgx connection, so ad-hoc Exec calls would race
// WaitForNotification ("conn busy") if issued directly.
type command struct {
	stmt string
	done chan error
}

// NotifyListener holds a dedicated Postgres connection in LISTEN mode and
// feeds received payloads to the Dispatcher. It survives connection loss:
// the run loop redials with backoff and re-issues LISTEN for every channel
// it was subscribed to.
type NotifyListener struct {
	connString string
	dispatcher *Dispatcher
	commands   chan command

	mu       sync.Mutex
	conn     *pgx.Conn
	channels map[string]struct{}
	started  bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener for the given connection string.
// Start must be called before Subscribe.
func NewNotifyListener(connString string, dispatcher *Dispatcher) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		dispatcher: dispatcher,
		commands:   make(chan command, 16),
		channels:   make(map[string]struct{}),
	}
}

// Start dials the dedicated connection and launches the run loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to open LISTEN connection: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.started = true
	l.mu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.run(loopCtx)
	}()

	slog.Info("NOTIFY listener started")
	return nil
}

// Subscribe issues LISTEN for the channel. Safe to call repeatedly; a
// channel already listened to is a no-op.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.mu.Lock()
	_, have := l.channels[channel]
	started := l.started
	l.mu.Unlock()
	if have {
		return nil
	}
	if !started {
		return fmt.Errorf("listener not started")
	}

	if err := l.send(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}

	l.mu.Lock()
	l.channels[channel] = struct{}{}
	l.mu.Unlock()
	slog.Debug("Listening on NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for the channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.mu.Lock()
	_, have := l.channels[channel]
	started := l.started
	l.mu.Unlock()
	if !have || !started {
		return nil
	}

	if err := l.send(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", channel, err)
	}

	l.mu.Lock()
	delete(l.channels, channel)
	l.mu.Unlock()
	return nil
}

// send queues a statement for the run loop and waits for its result.
func (l *NotifyListener) send(ctx context.Context, stmt string) error {
	cmd := command{stmt: stmt, done: make(chan error, 1)}
	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run owns the pgx connection. It alternates between draining queued
// commands and waiting (briefly) for a notification, and redials when the
// connection drops.
func (l *NotifyListener) run(ctx context.Context) {
	for ctx.Err() == nil {
		l.drain(ctx)

		l.mu.Lock()
		conn := l.conn
		l.mu.Unlock()
		if conn == nil {
			l.redial(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, waitSlice)
		n, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			switch {
			case ctx.Err() != nil:
				return
			case waitCtx.Err() != nil:
				continue
			default:
				slog.Error("NOTIFY wait failed", "error", err)
				l.redial(ctx)
				continue
			}
		}

		l.dispatcher.Broadcast(n.Channel, []byte(n.Payload))
	}
}

// drain executes every queued LISTEN/UNLISTEN command.
func (l *NotifyListener) drain(ctx context.Context) {
	for {
		select {
		case cmd := <-l.commands:
			l.mu.Lock()
			conn := l.conn
			l.mu.Unlock()
			if conn == nil {
				cmd.done <- fmt.Errorf("listener connection is down")
				continue
			}
			_, err := conn.Exec(ctx, cmd.stmt)
			cmd.done <- err
		default:
			return
		}
	}
}

// redial replaces a dead connection and restores the LISTEN set.
func (l *NotifyListener) redial(ctx context.Context) {
	l.mu.Lock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
	l.mu.Unlock()

	backoff := reconnectBase
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN redial failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, reconnectCap)
			continue
		}

		l.mu.Lock()
		l.conn = conn
		for ch := range l.channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Failed to restore LISTEN", "channel", ch, "error", err)
			}
		}
		l.mu.Unlock()

		slog.Info("NOTIFY listener reconnected")
		return
	}
}

// Stop shuts down the run loop, then closes the connection. The loop must
// exit first or Close would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.mu.Lock()
	l.started = false
	l.mu.Unlock()

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
