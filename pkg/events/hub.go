package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup pass.
// If more events were missed the caller is told to do a full REST reload
// instead of paginating catchup requests.
const catchupLimit = 200

// subscriberBuffer is the per-subscriber delivery buffer. A subscriber whose
// buffer fills up is dropped; the client recovers via catchup on reconnect.
const subscriberBuffer = 256

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries outbox events for catchup. Implemented by
// services.EventService via the adapter in catchup_adapter.go.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// Subscriber is one event consumer attached to one or more channels. Frames
// arrive on Events() in broadcast order. The channel is closed when the
// subscriber is removed; Overflowed() reports whether removal was caused by
// the consumer falling behind.
type Subscriber struct {
	ID string

	ch       chan []byte
	closed   atomic.Bool
	overflow atomic.Bool
}

// Events returns the delivery channel. It is closed on removal.
func (s *Subscriber) Events() <-chan []byte {
	return s.ch
}

// Overflowed reports whether the subscriber was dropped because its buffer
// filled up. Consumers seeing a closed Events() channel should check this and
// tell the client to reconnect with catchup.
func (s *Subscriber) Overflowed() bool {
	return s.overflow.Load()
}

// Hub fans NOTIFY payloads out to local subscribers. Each Go process (pod)
// has one Hub instance; the SSE and WebSocket handlers both attach their
// clients here, so cross-pod delivery concerns live entirely in the
// NotifyListener + publisher pair.
type Hub struct {
	// Active subscribers: subscriber_id → *Subscriber
	subscribers map[string]*Subscriber
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of subscriber_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// CatchupQuerier for catchup queries
	catchupQuerier CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub(catchupQuerier CatchupQuerier) *Hub {
	return &Hub{
		subscribers:    make(map[string]*Subscriber),
		channels:       make(map[string]map[string]bool),
		catchupQuerier: catchupQuerier,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Hub and NotifyListener are created.
func (h *Hub) SetListener(l *NotifyListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Subscribe registers a new subscriber for the given channels. The PG LISTEN
// for each first-subscribed channel completes before Subscribe returns, so a
// catchup run immediately afterwards cannot miss events published in between
// (duplicates are possible; clients dedupe by db_event_id).
func (h *Hub) Subscribe(ctx context.Context, channels ...string) (*Subscriber, error) {
	sub := &Subscriber{
		ID: uuid.New().String(),
		ch: make(chan []byte, subscriberBuffer),
	}

	h.mu.Lock()
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	for _, channel := range channels {
		if err := h.Add(ctx, sub, channel); err != nil {
			h.Unsubscribe(sub)
			return nil, err
		}
	}
	return sub, nil
}

// Add attaches an existing subscriber to one more channel, starting LISTEN
// if it is the channel's first subscriber. Returns an error if LISTEN fails
// so the caller can inform the client instead of confirming a dead
// subscription.
func (h *Hub) Add(ctx context.Context, sub *Subscriber, channel string) error {
	h.channelMu.Lock()
	needsListen := false
	if _, exists := h.channels[channel]; !exists {
		h.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	h.channels[channel][sub.ID] = true
	h.channelMu.Unlock()

	if needsListen {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				h.cleanupFailedChannel(channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}
	return nil
}

// Remove detaches a subscriber from one channel, stopping LISTEN if it was
// the last subscriber. The UNLISTEN goroutine re-checks h.channels first to
// survive rapid unsubscribe/resubscribe cycles without dropping the LISTEN.
func (h *Hub) Remove(sub *Subscriber, channel string) {
	h.channelMu.Lock()
	subs, exists := h.channels[channel]
	if exists {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(h.channels, channel)
			h.scheduleUnlisten(channel)
		}
	}
	h.channelMu.Unlock()
}

// Unsubscribe removes a subscriber from every channel and closes its
// delivery channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.channelMu.Lock()
	for channel, subs := range h.channels {
		if subs[sub.ID] {
			delete(subs, sub.ID)
			if len(subs) == 0 {
				delete(h.channels, channel)
				h.scheduleUnlisten(channel)
			}
		}
	}
	h.channelMu.Unlock()

	h.mu.Lock()
	delete(h.subscribers, sub.ID)
	h.mu.Unlock()

	if sub.closed.CompareAndSwap(false, true) {
		close(sub.ch)
	}
}

// Broadcast delivers an event payload to every subscriber of the channel.
// Called by the NotifyListener receive loop. Sends never block: a subscriber
// whose buffer is full is dropped with its overflow flag set.
func (h *Hub) Broadcast(channel string, event []byte) {
	h.channelMu.RLock()
	ids := make([]string, 0, len(h.channels[channel]))
	for id := range h.channels[channel] {
		ids = append(ids, id)
	}
	h.channelMu.RUnlock()

	var dropped []*Subscriber

	// Sends happen under the shared lock and channel close under the
	// exclusive lock, so a concurrent Unsubscribe cannot close a channel
	// mid-send.
	h.mu.RLock()
	for _, id := range ids {
		sub, ok := h.subscribers[id]
		if !ok || sub.closed.Load() {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			sub.overflow.Store(true)
			dropped = append(dropped, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range dropped {
		slog.Warn("Dropping slow event subscriber",
			"subscriber_id", sub.ID, "channel", channel)
		h.Unsubscribe(sub)
	}
}

// Catchup replays persisted events on the channel newer than sinceID through
// send, injecting db_event_id into each payload from the outbox row id (the
// stored payload doesn't contain it; it is only added to the NOTIFY payload
// at publish time). Returns hasMore=true when more than catchupLimit events
// were missed, in which case the client should do a full REST reload.
func (h *Hub) Catchup(ctx context.Context, channel string, sinceID int, send func([]byte) error) (bool, error) {
	if h.catchupQuerier == nil {
		return false, nil
	}

	events, err := h.catchupQuerier.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		return false, fmt.Errorf("catchup query failed for %s: %w", channel, err)
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := send(payload); err != nil {
			return hasMore, err
		}
	}

	return hasMore, nil
}

// ActiveSubscribers returns the count of attached subscribers.
func (h *Hub) ActiveSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (h *Hub) subscriberCount(channel string) int {
	h.channelMu.RLock()
	defer h.channelMu.RUnlock()
	return len(h.channels[channel])
}

// scheduleUnlisten issues UNLISTEN for a channel on a fresh goroutine. The
// goroutine re-checks h.channels before issuing UNLISTEN to prevent a race
// where a rapid unsubscribe/resubscribe cycle (e.g. React StrictMode double
// render) would drop the LISTEN:
//
//	subscribe → LISTEN active
//	unsubscribe → goroutine: UNLISTEN (deferred)
//	resubscribe → channel re-added to h.channels
//	goroutine → sees resubscribed → skips UNLISTEN
//
// Callers hold channelMu; the goroutine re-acquires it.
func (h *Hub) scheduleUnlisten(channel string) {
	h.listenerMu.RLock()
	l := h.listener
	h.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		h.channelMu.RLock()
		_, resubscribed := h.channels[channel]
		h.channelMu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// cleanupFailedChannel removes every subscriber id from a channel after a
// LISTEN failure. Subscribers added concurrently while LISTEN was in flight
// saw the channel entry already present, skipped LISTEN and assumed success;
// detaching them here keeps the maps honest. Their delivery channels stay
// open for their other subscriptions.
func (h *Hub) cleanupFailedChannel(channel string) {
	h.channelMu.Lock()
	delete(h.channels, channel)
	h.channelMu.Unlock()
}
