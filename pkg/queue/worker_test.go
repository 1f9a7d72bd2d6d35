package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/pkg/agent"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureExecutor records the run it was handed and the sigkill state at
// entry.
type captureExecutor struct {
	gotRun         *agent.Run
	sigkillAtEntry bool
	err            error
}

func (c *captureExecutor) Execute(_ context.Context, run *agent.Run) error {
	c.gotRun = run
	c.sigkillAtEntry = run.Sigkill.Signalled()
	return c.err
}

type fakeRegistry struct {
	registered   []string
	unregistered []string
}

func (f *fakeRegistry) RegisterRun(completionID string, _ context.CancelFunc, _ *agent.Signal) {
	f.registered = append(f.registered, completionID)
}

func (f *fakeRegistry) UnregisterRun(completionID string) {
	f.unregistered = append(f.unregistered, completionID)
}

func unitTestWorker(executor RunExecutor, registry RunRegistry) *Worker {
	cfg := config.DefaultQueueConfig()
	cfg.HeartbeatInterval = time.Hour // keep the heartbeat ticker silent
	return NewWorker("pod-1-worker-0", "pod-1", nil, cfg, executor, registry, nil, nil)
}

func claimedRow() *ent.Completion {
	return &ent.Completion{
		ID:             "comp-1",
		ReportID:       "rep-1",
		OrganizationID: "org-1",
		UserID:         "user-1",
		Status:         completion.StatusInProgress,
		Prompt:         map[string]interface{}{"content": "show revenue by region"},
	}
}

func TestWorker_ProcessHandsRunToExecutor(t *testing.T) {
	executor := &captureExecutor{}
	registry := &fakeRegistry{}
	w := unitTestWorker(executor, registry)

	w.process(context.Background(), claimedRow())

	require.NotNil(t, executor.gotRun)
	assert.Equal(t, "comp-1", executor.gotRun.Completion.ID)
	assert.Equal(t, "show revenue by region", executor.gotRun.Prompt.Content)
	assert.False(t, executor.sigkillAtEntry)

	assert.Equal(t, []string{"comp-1"}, registry.registered)
	assert.Equal(t, []string{"comp-1"}, registry.unregistered)

	health := w.Health()
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Equal(t, 1, health.RunsProcessed)
	assert.Empty(t, health.CurrentCompletionID)
}

func TestWorker_ProcessBridgesQueuedSigkill(t *testing.T) {
	executor := &captureExecutor{}
	w := unitTestWorker(executor, &fakeRegistry{})

	row := claimedRow()
	killedAt := time.Now().Add(-time.Second)
	row.SigkillAt = &killedAt

	w.process(context.Background(), row)

	require.NotNil(t, executor.gotRun)
	assert.True(t, executor.sigkillAtEntry,
		"a sigkill persisted while the completion was queued is honored on claim")
}

func TestWorker_ProcessToleratesExecutorErrors(t *testing.T) {
	executor := &captureExecutor{err: errors.New("save decision: connection reset")}
	registry := &fakeRegistry{}
	w := unitTestWorker(executor, registry)

	w.process(context.Background(), claimedRow())

	assert.Equal(t, []string{"comp-1"}, registry.unregistered,
		"failed runs still leave the registry")
	assert.Equal(t, 1, w.Health().RunsProcessed)
}

func TestWorker_PollIntervalJitter(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	w := NewWorker("w-0", "pod-1", nil, cfg, nil, nil, nil, nil)

	for i := 0; i < 200; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}

	cfg.PollIntervalJitter = 0
	assert.Equal(t, time.Second, w.pollInterval(), "no jitter means the base interval")
}

func TestWorker_HealthInitialState(t *testing.T) {
	w := unitTestWorker(nil, nil)

	health := w.Health()
	assert.Equal(t, "pod-1-worker-0", health.ID)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Zero(t, health.RunsProcessed)
	assert.False(t, health.LastActivity.IsZero())
}
