package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// Receive-loop tuning. The wait timeout bounds how long a pending
// LISTEN/UNLISTEN command sits in the queue before the loop services it.
const (
	notifyWaitTimeout   = 100 * time.Millisecond
	reconnectBackoffMin = time.Second
	reconnectBackoffMax = 30 * time.Second
)

// subscribeCmd is a LISTEN or UNLISTEN statement queued for the receive
// loop. pgx connections are not safe for concurrent use, so the loop is the
// only goroutine that ever executes SQL on the LISTEN connection.
type subscribeCmd struct {
	sql  string
	done chan error
}

// NotifyListener owns the dedicated Postgres connection that receives
// NOTIFY payloads for mission channels and feeds them to the local
// ConnectionManager. Mission event rows are written by EventPublisher on the
// pooled connection; this connection only ever runs LISTEN/UNLISTEN and
// waits for notifications.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager

	mu   sync.Mutex
	conn *pgx.Conn

	subsMu sync.RWMutex
	subs   map[string]struct{}

	cmds    chan subscribeCmd
	started atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener for the given connection string. The
// connection is not opened until Start.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		subs:       make(map[string]struct{}),
		cmds:       make(chan subscribeCmd, 16),
	}
}

// Start opens the LISTEN connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()
	l.started.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for a mission channel. Idempotent per channel; the
// subscription survives reconnects.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.subsMu.RLock()
	_, have := l.subs[channel]
	l.subsMu.RUnlock()
	if have {
		return nil
	}

	if err := l.exec(ctx, "LISTEN", channel); err != nil {
		return err
	}

	l.subsMu.Lock()
	l.subs[channel] = struct{}{}
	l.subsMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel previously subscribed.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.subsMu.RLock()
	_, have := l.subs[channel]
	l.subsMu.RUnlock()
	if !have {
		return nil
	}

	if !l.started.Load() {
		return nil
	}
	if err := l.exec(ctx, "UNLISTEN", channel); err != nil {
		return err
	}

	l.subsMu.Lock()
	delete(l.subs, channel)
	l.subsMu.Unlock()
	return nil
}

// exec queues a LISTEN/UNLISTEN statement for the receive loop and waits for
// its result. Channel names are quoted as identifiers; mission ids contain
// hyphens, which bare LISTEN would reject.
func (l *NotifyListener) exec(ctx context.Context, verb, channel string) error {
	if !l.started.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	cmd := subscribeCmd{
		sql:  verb + " " + quoted,
		done: make(chan error, 1),
	}

	select {
	case l.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.done:
		if err != nil {
			return fmt.Errorf("%s %s failed: %w", verb, quoted, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between draining queued LISTEN/UNLISTEN commands
// and waiting for notifications, reconnecting when the connection drops.
// Every received payload is handed to the ConnectionManager for local
// WebSocket fan-out.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for ctx.Err() == nil {
		l.drainCommands(ctx)

		l.mu.Lock()
		conn := l.conn
		l.mu.Unlock()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short wait timeout so queued commands are serviced promptly.
		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitTimeout)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			switch {
			case ctx.Err() != nil:
				return
			case waitCtx.Err() != nil:
				continue
			default:
				slog.Error("NOTIFY receive error", "error", err)
				l.reconnect(ctx)
				continue
			}
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCommands executes all queued subscription commands on the connection.
func (l *NotifyListener) drainCommands(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmds:
			l.mu.Lock()
			conn := l.conn
			l.mu.Unlock()

			if conn == nil {
				cmd.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.done <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the connection with exponential backoff and
// replays LISTEN for every tracked channel, so subscribers never observe the
// gap (catchup covers any events missed while disconnected).
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := reconnectBackoffMin
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, reconnectBackoffMax)
			continue
		}
		l.conn = conn

		l.subsMu.RLock()
		for ch := range l.subs {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.subsMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop shuts down the receive loop before closing the connection, so
// WaitForNotification never races conn.Close.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)

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
