package tools

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
)

type eventCollector struct {
	mu     sync.Mutex
	events []Event
}

func (c *eventCollector) add(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *eventCollector) kinds() []EventKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]EventKind, 0, len(c.events))
	for _, ev := range c.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func scriptedRun(events ...Event) func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
	return func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
		ch := make(chan Event, len(events))
		for _, ev := range events {
			ch <- ev
		}
		close(ch)
		return ch
	}
}

func newTestRunner(t *testing.T, platform Platform, tools ...*fakeTool) *Runner {
	t.Helper()
	r := NewRegistry(nil)
	for _, tool := range tools {
		require.NoError(t, r.Register(tool))
	}
	timeouts := TimeoutPolicy{Start: time.Second, Idle: time.Second, Hard: 5 * time.Second}
	retry := RetryPolicy{Backoff: time.Millisecond, Multiplier: 1, Jitter: time.Millisecond}
	return NewRunner(r, NewStageDispatcher(platform, nil), timeouts, retry, nil)
}

func TestRunner_Success(t *testing.T) {
	fp := &fakePlatform{}
	tool := &fakeTool{
		meta: Metadata{Name: "create_widget", Category: CategoryAction},
		run: scriptedRun(
			Start(),
			Progress(StageDataModelTypeDetermined, map[string]any{"name": "bar"}),
			Partial("building the widget"),
			End(map[string]any{"widget_id": "widget-1"}, &models.Observation{Summary: "widget created"}),
		),
	}
	runner := newTestRunner(t, fp, tool)
	rtc := testRuntimeContext(fp)
	collector := &eventCollector{}

	result, err := runner.Run(context.Background(), "create_widget", nil, rtc, collector.add)
	require.NoError(t, err)

	assert.Equal(t, "widget created", result.Observation.Summary)
	assert.Equal(t, map[string]any{"widget_id": "widget-1"}, result.Output)
	assert.Equal(t, 1, result.Attempts)
	assert.False(t, result.Failed())
	assert.False(t, result.Cancelled)

	// Start and end are consumed by the runner, progress and partial flow out.
	assert.Equal(t, []EventKind{EventProgress, EventPartial}, collector.kinds())
	assert.Equal(t, "query-1", rtc.Artifacts.QueryID, "stage side effect applied")
}

func TestRunner_UnknownTool(t *testing.T) {
	runner := newTestRunner(t, nil)
	_, err := runner.Run(context.Background(), "missing", nil, testRuntimeContext(nil), nil)
	assert.ErrorContains(t, err, "not registered")
}

func TestRunner_MissingEndFailsAttempt(t *testing.T) {
	tool := &fakeTool{
		meta: Metadata{Name: "flaky", Category: CategoryResearch},
		run:  scriptedRun(Start(), Partial("thinking")),
	}
	runner := newTestRunner(t, nil, tool)

	result, err := runner.Run(context.Background(), "flaky", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "without a result")
	assert.Equal(t, 1, result.Attempts, "closed stream is not transient, no retry")
}

func TestRunner_RetriesIdempotentTool(t *testing.T) {
	var attempts atomic.Int32
	tool := &fakeTool{
		meta: Metadata{Name: "execute_query", Category: CategoryResearch, Idempotent: true, MaxRetries: 2},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			ch := make(chan Event, 1)
			if attempts.Add(1) == 1 {
				ch <- Fail(errors.New("backend exploded"))
			} else {
				ch <- End(map[string]any{"rows": 3}, &models.Observation{Summary: "3 rows"})
			}
			close(ch)
			return ch
		},
	}
	runner := newTestRunner(t, nil, tool)

	result, err := runner.Run(context.Background(), "execute_query", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	assert.False(t, result.Failed())
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, "3 rows", result.Observation.Summary)
}

func TestRunner_NoRetryForNonIdempotentFailure(t *testing.T) {
	var attempts atomic.Int32
	tool := &fakeTool{
		meta: Metadata{Name: "create_widget", Category: CategoryAction, MaxRetries: 3},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			attempts.Add(1)
			ch := make(chan Event, 1)
			ch <- Fail(errors.New("constraint violation"))
			close(ch)
			return ch
		},
	}
	runner := newTestRunner(t, nil, tool)

	result, err := runner.Run(context.Background(), "create_widget", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Equal(t, "constraint violation", result.Observation.Error.Message)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestRunner_RetriesTransientFailure(t *testing.T) {
	var attempts atomic.Int32
	tool := &fakeTool{
		meta: Metadata{Name: "create_widget", Category: CategoryAction, MaxRetries: 1},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			ch := make(chan Event, 1)
			if attempts.Add(1) == 1 {
				ch <- Fail(errors.New("dial tcp: connection refused"))
			} else {
				ch <- End(nil, &models.Observation{Summary: "created"})
			}
			close(ch)
			return ch
		},
	}
	runner := newTestRunner(t, nil, tool)

	result, err := runner.Run(context.Background(), "create_widget", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	assert.False(t, result.Failed())
	assert.Equal(t, 2, result.Attempts, "network errors retry even without idempotency")
}

func TestRunner_StartTimeout(t *testing.T) {
	tool := &fakeTool{
		meta: Metadata{Name: "stuck", Category: CategoryResearch},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			ch := make(chan Event)
			go func() {
				<-ctx.Done()
				close(ch)
			}()
			return ch
		},
	}
	r := NewRegistry(nil)
	require.NoError(t, r.Register(tool))
	runner := NewRunner(r, NewStageDispatcher(nil, nil),
		TimeoutPolicy{Start: 30 * time.Millisecond, Idle: 30 * time.Millisecond, Hard: time.Second},
		RetryPolicy{Backoff: time.Millisecond, Multiplier: 1}, nil)

	result, err := runner.Run(context.Background(), "stuck", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	require.True(t, result.Failed())
	assert.Equal(t, "timeout", result.Observation.Summary)
	assert.Equal(t, models.ErrCodeTimeout, result.Observation.Error.Code)
}

func TestRunner_TimeoutMessageNamesElapsedBound(t *testing.T) {
	silent := func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
		ch := make(chan Event)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	started := func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
		ch := make(chan Event, 1)
		ch <- Start()
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}

	r := NewRegistry(nil)
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{Name: "mute", Category: CategoryResearch}, run: silent}))
	require.NoError(t, r.Register(&fakeTool{meta: Metadata{Name: "stalls", Category: CategoryResearch}, run: started}))
	runner := NewRunner(r, NewStageDispatcher(nil, nil),
		TimeoutPolicy{Start: 30 * time.Millisecond, Idle: 70 * time.Millisecond, Hard: time.Second},
		RetryPolicy{Backoff: time.Millisecond, Multiplier: 1}, nil)

	// No event at all: the start bound fires and is the one reported.
	result, err := runner.Run(context.Background(), "mute", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)
	require.True(t, result.Failed())
	assert.Contains(t, result.Observation.Error.Message, "30ms")

	// Silence after the first event: the idle bound is reported instead.
	result, err = runner.Run(context.Background(), "stalls", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)
	require.True(t, result.Failed())
	assert.Contains(t, result.Observation.Error.Message, "70ms")
}

func TestRunner_HardTimeout(t *testing.T) {
	tool := &fakeTool{
		meta: Metadata{Name: "chatty", Category: CategoryResearch},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			ch := make(chan Event)
			go func() {
				defer close(ch)
				ticker := time.NewTicker(5 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						select {
						case ch <- Stdout("tick"):
						case <-ctx.Done():
							return
						}
					case <-ctx.Done():
						return
					}
				}
			}()
			return ch
		},
	}
	r := NewRegistry(nil)
	require.NoError(t, r.Register(tool))
	runner := NewRunner(r, NewStageDispatcher(nil, nil),
		TimeoutPolicy{Start: time.Second, Idle: time.Second, Hard: 60 * time.Millisecond},
		RetryPolicy{Backoff: time.Millisecond, Multiplier: 1}, nil)

	result, err := runner.Run(context.Background(), "chatty", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeTimeout, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "hard timeout")
}

func TestRunner_Cancellation(t *testing.T) {
	started := make(chan struct{})
	tool := &fakeTool{
		meta: Metadata{Name: "slow", Category: CategoryResearch, Idempotent: true, MaxRetries: 3},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			ch := make(chan Event, 1)
			ch <- Start()
			close(started)
			go func() {
				<-ctx.Done()
				close(ch)
			}()
			return ch
		},
	}
	runner := newTestRunner(t, nil, tool)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	result, err := runner.Run(ctx, "slow", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	require.True(t, result.Cancelled)
	assert.Equal(t, models.ErrCodeCancelled, result.Observation.Error.Code)
	assert.Equal(t, 1, result.Attempts, "cancellation stops the retry loop")
}

func TestRunner_ReleasesStageStateAfterRun(t *testing.T) {
	fp := &fakePlatform{}
	tool := &fakeTool{
		meta: Metadata{Name: "create_widget", Category: CategoryAction},
		run: scriptedRun(
			Start(),
			Progress(StageDataModelTypeDetermined, map[string]any{"name": "bar"}),
			Progress(StageColumnAdded, map[string]any{"name": "amount"}),
			End(nil, &models.Observation{Summary: "widget created"}),
		),
	}
	r := NewRegistry(nil)
	require.NoError(t, r.Register(tool))
	dispatcher := NewStageDispatcher(fp, nil)
	runner := NewRunner(r, dispatcher,
		TimeoutPolicy{Start: time.Second, Idle: time.Second, Hard: 5 * time.Second},
		RetryPolicy{Backoff: time.Millisecond, Multiplier: 1}, nil)

	result, err := runner.Run(context.Background(), "create_widget", nil, testRuntimeContext(fp), nil)
	require.NoError(t, err)
	require.False(t, result.Failed())

	// The dispatcher outlives the run; applied-stage state must not.
	dispatcher.mu.Lock()
	retained := len(dispatcher.applied)
	dispatcher.mu.Unlock()
	assert.Zero(t, retained)
}

func TestRunner_StageHandlerFailureFailsAttempt(t *testing.T) {
	fp := &fakePlatform{failStage: StageDataModelTypeDetermined}
	tool := &fakeTool{
		meta: Metadata{Name: "create_widget", Category: CategoryAction},
		run: scriptedRun(
			Start(),
			Progress(StageDataModelTypeDetermined, map[string]any{"name": "bar"}),
			End(nil, &models.Observation{Summary: "never reached"}),
		),
	}
	runner := newTestRunner(t, fp, tool)

	result, err := runner.Run(context.Background(), "create_widget", nil, testRuntimeContext(fp), nil)
	require.NoError(t, err)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeExecution, result.Observation.Error.Code)
	assert.Contains(t, result.Observation.Error.Message, "stage data_model_type_determined")
}

func TestRunner_ToolTimeoutOverridesHardPolicy(t *testing.T) {
	tool := &fakeTool{
		meta: Metadata{Name: "bounded", Category: CategoryResearch, TimeoutSeconds: 1},
		run: func(ctx context.Context, args map[string]any, rtc *RuntimeContext) <-chan Event {
			ch := make(chan Event, 1)
			ch <- Start()
			go func() {
				<-ctx.Done()
				close(ch)
			}()
			return ch
		},
	}
	r := NewRegistry(nil)
	require.NoError(t, r.Register(tool))
	// Policy hard timeout is long; the tool's own 1s bound must win. Idle is
	// longer than the tool timeout so the hard timer is what fires.
	runner := NewRunner(r, NewStageDispatcher(nil, nil),
		TimeoutPolicy{Start: 10 * time.Second, Idle: 10 * time.Second, Hard: 10 * time.Second},
		RetryPolicy{Backoff: time.Millisecond, Multiplier: 1}, nil)

	start := time.Now()
	result, err := runner.Run(context.Background(), "bounded", nil, testRuntimeContext(nil), nil)
	require.NoError(t, err)

	require.True(t, result.Failed())
	assert.Equal(t, models.ErrCodeTimeout, result.Observation.Error.Code)
	assert.Less(t, time.Since(start), 5*time.Second)
}
