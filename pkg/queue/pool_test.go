package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryPool(hub *events.Hub) *WorkerPool {
	return NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil, hub, nil)
}

func TestWorkerPool_CancelRunRouting(t *testing.T) {
	pool := newRegistryPool(nil)

	ctx, cancel := context.WithCancel(context.Background())
	sig := &agent.Signal{}
	pool.RegisterRun("comp-1", cancel, sig)

	assert.False(t, pool.CancelRun("comp-unknown"), "unknown runs belong to other pods")
	assert.False(t, sig.Signalled())

	require.True(t, pool.CancelRun("comp-1"))
	assert.True(t, sig.Signalled())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	pool.UnregisterRun("comp-1")
	assert.False(t, pool.CancelRun("comp-1"), "finished runs are no longer cancellable")
}

func TestWorkerPool_CancelRunSignalsBeforeCancelling(t *testing.T) {
	pool := newRegistryPool(nil)

	sig := &agent.Signal{}
	var signalledAtCancel bool
	pool.RegisterRun("comp-1", func() { signalledAtCancel = sig.Signalled() }, sig)

	require.True(t, pool.CancelRun("comp-1"))
	assert.True(t, signalledAtCancel, "the loop must see the sigkill when its context dies")
}

func TestWorkerPool_RouteCancellation(t *testing.T) {
	pool := newRegistryPool(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := &agent.Signal{}
	pool.RegisterRun("comp-1", cancel, sig)

	pool.routeCancellation([]byte("not json"))
	assert.False(t, sig.Signalled(), "garbage frames are ignored")

	started, err := json.Marshal(events.CompletionStartedPayload{
		BasePayload: events.NewBase(events.EventTypeCompletionStarted, "comp-1", "exec-1", 1),
	})
	require.NoError(t, err)
	pool.routeCancellation(started)
	assert.False(t, sig.Signalled(), "only update_completion frames cancel")

	update, err := json.Marshal(events.CompletionUpdatePayload{
		BasePayload: events.NewBase(events.EventTypeCompletionUpdate, "comp-1", "", 0),
		Data:        events.CompletionUpdateData{SigkillAt: time.Now().UTC().Format(time.RFC3339Nano)},
	})
	require.NoError(t, err)
	pool.routeCancellation(update)
	assert.True(t, sig.Signalled())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestWorkerPool_WatchCancellationsViaHub(t *testing.T) {
	hub := events.NewHub(nil)
	pool := newRegistryPool(hub)

	runCtx, cancel := context.WithCancel(context.Background())
	sig := &agent.Signal{}
	pool.RegisterRun("comp-9", cancel, sig)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	done := make(chan struct{})
	go func() {
		defer close(done)
		pool.watchCancellations(watchCtx)
	}()

	frame, err := json.Marshal(events.CompletionUpdatePayload{
		BasePayload: events.NewBase(events.EventTypeCompletionUpdate, "comp-9", "", 0),
	})
	require.NoError(t, err)

	// Rebroadcast until the watcher's subscription is live.
	require.Eventually(t, func() bool {
		hub.Broadcast(events.GlobalCompletionsChannel, frame)
		return sig.Signalled()
	}, 2*time.Second, 10*time.Millisecond, "broadcast should reach the local registry")
	assert.ErrorIs(t, runCtx.Err(), context.Canceled)

	stopWatch()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop with its context")
	}
}
