package tools

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform records collaborator calls and can be told to fail a stage.
type fakePlatform struct {
	mu        sync.Mutex
	calls     []string
	failStage string
	failOnce  bool
	failed    bool
}

func (p *fakePlatform) record(ctx context.Context, stage string, state *ArtifactState, detail map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if stage == p.failStage && (!p.failOnce || !p.failed) {
		p.failed = true
		return errors.New("collaborator unavailable")
	}
	p.calls = append(p.calls, fmt.Sprintf("%s:%v", stage, detail["name"]))
	return nil
}

func (p *fakePlatform) CreateDataModel(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error {
	if err := p.record(ctx, StageDataModelTypeDetermined, state, detail); err != nil {
		return err
	}
	state.QueryID = "query-1"
	state.StepID = "step-1"
	return nil
}

func (p *fakePlatform) AddColumn(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error {
	return p.record(ctx, StageColumnAdded, state, detail)
}

func (p *fakePlatform) ConfigureSeries(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error {
	if err := p.record(ctx, StageSeriesConfigured, state, detail); err != nil {
		return err
	}
	if state.VisualizationID == "" {
		state.VisualizationID = "viz-1"
		state.CreatedVisualizationIDs = append(state.CreatedVisualizationIDs, "viz-1")
	}
	return nil
}

func (p *fakePlatform) PrepareWidget(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error {
	if err := p.record(ctx, StageWidgetCreationNeeded, state, detail); err != nil {
		return err
	}
	state.WidgetID = "widget-1"
	return nil
}

func (p *fakePlatform) FinalizeArtifacts(ctx context.Context, scope Scope, state *ArtifactState, success bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, fmt.Sprintf("finalize:%t", success))
	return nil
}

func (p *fakePlatform) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func testRuntimeContext(p Platform) *RuntimeContext {
	return &RuntimeContext{
		Scope:     Scope{ToolExecutionID: "te-1"},
		Platform:  p,
		Artifacts: &ArtifactState{},
	}
}

func TestStageDispatcher_AppliesSideEffects(t *testing.T) {
	fp := &fakePlatform{}
	d := NewStageDispatcher(fp, nil)
	rtc := testRuntimeContext(fp)

	err := d.Dispatch(context.Background(), rtc, StageDataModelTypeDetermined,
		map[string]any{"name": "table"})
	require.NoError(t, err)

	assert.Equal(t, "query-1", rtc.Artifacts.QueryID)
	assert.Equal(t, "step-1", rtc.Artifacts.StepID)
	assert.Equal(t, 1, fp.callCount())
}

func TestStageDispatcher_DeduplicatesReplays(t *testing.T) {
	fp := &fakePlatform{}
	d := NewStageDispatcher(fp, nil)
	rtc := testRuntimeContext(fp)

	detail := map[string]any{"name": "table"}
	require.NoError(t, d.Dispatch(context.Background(), rtc, StageDataModelTypeDetermined, detail))
	require.NoError(t, d.Dispatch(context.Background(), rtc, StageDataModelTypeDetermined, detail))

	assert.Equal(t, 1, fp.callCount(), "identical replay must be a no-op")
}

func TestStageDispatcher_DistinctPayloadsApply(t *testing.T) {
	fp := &fakePlatform{}
	d := NewStageDispatcher(fp, nil)
	rtc := testRuntimeContext(fp)

	require.NoError(t, d.Dispatch(context.Background(), rtc, StageColumnAdded,
		map[string]any{"name": "amount"}))
	require.NoError(t, d.Dispatch(context.Background(), rtc, StageColumnAdded,
		map[string]any{"name": "created_at"}))

	assert.Equal(t, 2, fp.callCount(), "each new column lands")
}

func TestStageDispatcher_SeparateExecutionsApply(t *testing.T) {
	fp := &fakePlatform{}
	d := NewStageDispatcher(fp, nil)

	first := testRuntimeContext(fp)
	second := testRuntimeContext(fp)
	second.Scope.ToolExecutionID = "te-2"

	detail := map[string]any{"name": "table"}
	require.NoError(t, d.Dispatch(context.Background(), first, StageDataModelTypeDetermined, detail))
	require.NoError(t, d.Dispatch(context.Background(), second, StageDataModelTypeDetermined, detail))

	assert.Equal(t, 2, fp.callCount())
}

func TestStageDispatcher_ReleaseDropsExecutionState(t *testing.T) {
	fp := &fakePlatform{}
	d := NewStageDispatcher(fp, nil)
	rtc := testRuntimeContext(fp)
	other := testRuntimeContext(fp)
	other.Scope.ToolExecutionID = "te-2"

	detail := map[string]any{"name": "table"}
	require.NoError(t, d.Dispatch(context.Background(), rtc, StageDataModelTypeDetermined, detail))
	require.NoError(t, d.Dispatch(context.Background(), other, StageDataModelTypeDetermined, detail))

	d.Release(rtc.Scope.ToolExecutionID)

	d.mu.Lock()
	_, kept := d.applied[other.Scope.ToolExecutionID]
	_, dropped := d.applied[rtc.Scope.ToolExecutionID]
	d.mu.Unlock()
	assert.True(t, kept, "release is scoped to one execution")
	assert.False(t, dropped)

	// Released state no longer dedupes: the same stage applies again.
	require.NoError(t, d.Dispatch(context.Background(), rtc, StageDataModelTypeDetermined, detail))
	assert.Equal(t, 3, fp.callCount())
}

func TestStageDispatcher_HandlerErrorRetriable(t *testing.T) {
	fp := &fakePlatform{failStage: StageWidgetCreationNeeded, failOnce: true}
	d := NewStageDispatcher(fp, nil)
	rtc := testRuntimeContext(fp)

	detail := map[string]any{"name": "widget"}
	err := d.Dispatch(context.Background(), rtc, StageWidgetCreationNeeded, detail)
	require.ErrorContains(t, err, "stage widget_creation_needed")

	// Failure was not recorded as applied, so the retry runs the handler.
	require.NoError(t, d.Dispatch(context.Background(), rtc, StageWidgetCreationNeeded, detail))
	assert.Equal(t, "widget-1", rtc.Artifacts.WidgetID)
}

func TestStageDispatcher_StreamOnlyStages(t *testing.T) {
	fp := &fakePlatform{}
	d := NewStageDispatcher(fp, nil)
	rtc := testRuntimeContext(fp)

	require.NoError(t, d.Dispatch(context.Background(), rtc, StageBlockCompleted,
		map[string]any{"block": 1}))
	require.NoError(t, d.Dispatch(context.Background(), rtc, "unknown_stage", nil))

	assert.Zero(t, fp.callCount())
}

func TestStageDispatcher_NilPlatform(t *testing.T) {
	d := NewStageDispatcher(nil, nil)
	rtc := testRuntimeContext(nil)

	assert.NoError(t, d.Dispatch(context.Background(), rtc, StageDataModelTypeDetermined,
		map[string]any{"name": "table"}))
}

func TestArtifactState_Reset(t *testing.T) {
	s := &ArtifactState{
		QueryID:                 "q",
		StepID:                  "s",
		VisualizationID:         "v",
		WidgetID:                "w",
		Query:                   map[string]any{"sql": "select 1"},
		Step:                    map[string]any{"id": "s"},
		Visualization:           map[string]any{"id": "v"},
		CreatedVisualizationIDs: []string{"v"},
		Errors:                  []string{"boom"},
	}
	s.Reset()
	assert.Equal(t, &ArtifactState{}, s)
	assert.Equal(t, []string{}, s.ErrorList())
}
