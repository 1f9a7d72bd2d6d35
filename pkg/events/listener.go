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

const (
	// notifyPollInterval bounds each WaitForNotification call so the loop
	// regularly comes back around to drain queued LISTEN/UNLISTEN commands.
	notifyPollInterval = 100 * time.Millisecond

	reconnectBackoffStart = time.Second
	reconnectBackoffCap   = 30 * time.Second
)

// connCmd is a LISTEN or UNLISTEN statement queued for the notify loop.
// Only that loop runs SQL on the connection; callers wait on done.
type connCmd struct {
	sql  string
	done chan error
}

// NotifyListener holds one dedicated pgx connection per process and fans
// incoming NOTIFY payloads out through the Hub. Each pod runs a single
// listener; that is how frames published on another pod reach local stream
// subscribers, and how kill broadcasts find the worker holding a run.
type NotifyListener struct {
	connString string
	conn       *pgx.Conn // owned by the notify loop once started
	connMu     sync.Mutex
	hub        *Hub
	channels   map[string]bool // channels with an active LISTEN
	channelsMu sync.RWMutex

	// cmds funnels LISTEN/UNLISTEN into the notify loop. pgx forbids Exec
	// while WaitForNotification is in flight ("conn busy"), so the loop is
	// the only place the connection sees SQL.
	cmds    chan connCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener builds a listener that dispatches into hub.
func NewNotifyListener(connString string, hub *Hub) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		hub:        hub,
		channels:   make(map[string]bool),
		cmds:       make(chan connCmd, 16),
	}
}

// Start opens the dedicated connection and launches the notify loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("opening notify connection: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	// The loop gets its own cancellable context so Stop can order it out
	// before the connection is closed underneath it.
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.notifyLoop(loopCtx)
	}()

	slog.Info("Notify listener started")
	return nil
}

// Subscribe issues LISTEN for channel. Repeat calls for an already-active
// channel are no-ops.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	active := l.channels[channel]
	l.channelsMu.Unlock()
	if active {
		return nil
	}

	if !l.running.Load() {
		return fmt.Errorf("notify listener not started")
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.submit(ctx, "LISTEN "+sanitized); err != nil {
		return fmt.Errorf("listen on %s: %w", sanitized, err)
	}

	l.channelsMu.Lock()
	l.channels[channel] = true
	l.channelsMu.Unlock()
	slog.Debug("Listening on notify channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	active := l.channels[channel]
	l.channelsMu.Unlock()
	if !active || !l.running.Load() {
		return nil
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.submit(ctx, "UNLISTEN "+sanitized); err != nil {
		return fmt.Errorf("unlisten on %s: %w", sanitized, err)
	}

	l.channelsMu.Lock()
	delete(l.channels, channel)
	l.channelsMu.Unlock()
	return nil
}

// submit hands sql to the notify loop and waits for the outcome.
func (l *NotifyListener) submit(ctx context.Context, sql string) error {
	cmd := connCmd{sql: sql, done: make(chan error, 1)}

	select {
	case l.cmds <- cmd:
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

// notifyLoop alternates between draining queued commands and waiting for a
// notification. Nothing else may run SQL on the connection while this loop
// is alive.
func (l *NotifyListener) notifyLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCommands(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyPollInterval)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // poll tick, go drain commands
			}
			slog.Error("Notify wait failed", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.hub.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCommands runs every queued LISTEN/UNLISTEN statement, reporting each
// result back to its caller.
func (l *NotifyListener) drainCommands(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmds:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.done <- fmt.Errorf("notify connection down")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.done <- err
		default:
			return
		}
	}
}

// isListening reports whether LISTEN is active for channel. Tests poll this
// instead of sleeping.
func (l *NotifyListener) isListening(channel string) bool {
	l.channelsMu.RLock()
	defer l.channelsMu.RUnlock()
	return l.channels[channel]
}

// reconnect replaces a dead connection, backing off between attempts, and
// restores LISTEN for every subscribed channel on the new one.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := reconnectBackoffStart
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("Notify reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, reconnectBackoffCap)
			continue
		}
		l.conn = conn

		l.channelsMu.RLock()
		for ch := range l.channels {
			sanitized := pgx.Identifier{ch}.Sanitize()
			if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
				slog.Error("Restoring LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.channelsMu.RUnlock()

		slog.Info("Notify listener reconnected")
		return
	}
}

// Stop shuts the notify loop down and then closes the connection. Waiting
// for the loop first keeps Close from racing WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
