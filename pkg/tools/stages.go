package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Progress stages with side-effect handlers. block.completed is stream-only:
// it reaches subscribers as tool.progress but triggers no collaborator call.
const (
	StageDataModelTypeDetermined = "data_model_type_determined"
	StageColumnAdded             = "column_added"
	StageSeriesConfigured        = "series_configured"
	StageWidgetCreationNeeded    = "widget_creation_needed"
	StageBlockCompleted          = "block.completed"
)

// StageDispatcher routes tool progress stages to platform side effects.
// Applied effects are remembered per (tool execution, stage, payload) so a
// replayed event is a no-op while a second column_added with a new column
// still lands. State spans retry attempts of the same tool execution and is
// released when the runner finishes it; the dispatcher itself lives for the
// whole process.
type StageDispatcher struct {
	platform Platform
	logger   *slog.Logger

	mu      sync.Mutex
	applied map[string]map[string]struct{} // tool execution id -> stage|payload keys
}

// NewStageDispatcher creates a dispatcher over the given platform. The
// platform may be nil, in which case every stage is stream-only.
func NewStageDispatcher(platform Platform, logger *slog.Logger) *StageDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StageDispatcher{
		platform: platform,
		logger:   logger.With("component", "stage_dispatcher"),
		applied:  make(map[string]map[string]struct{}),
	}
}

type stageHandler func(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error

func (d *StageDispatcher) handlerFor(stage string) stageHandler {
	if d.platform == nil {
		return nil
	}
	switch stage {
	case StageDataModelTypeDetermined:
		return d.platform.CreateDataModel
	case StageColumnAdded:
		return d.platform.AddColumn
	case StageSeriesConfigured:
		return d.platform.ConfigureSeries
	case StageWidgetCreationNeeded:
		return d.platform.PrepareWidget
	default:
		return nil
	}
}

// Dispatch applies the side effect for a progress stage, if any. A handler
// error fails the current attempt; the effect is recorded as applied only on
// success so a retried attempt runs it again.
func (d *StageDispatcher) Dispatch(ctx context.Context, rtc *RuntimeContext, stage string, detail map[string]any) error {
	handler := d.handlerFor(stage)
	if handler == nil {
		return nil
	}

	key := dispatchKey(stage, detail)
	d.mu.Lock()
	_, done := d.applied[rtc.Scope.ToolExecutionID][key]
	d.mu.Unlock()
	if done {
		d.logger.Debug("Skipping already applied stage",
			"tool_execution_id", rtc.Scope.ToolExecutionID,
			"stage", stage)
		return nil
	}

	if err := handler(ctx, rtc.Scope, rtc.Artifacts, detail); err != nil {
		return fmt.Errorf("stage %s: %w", stage, err)
	}

	d.mu.Lock()
	if d.applied[rtc.Scope.ToolExecutionID] == nil {
		d.applied[rtc.Scope.ToolExecutionID] = make(map[string]struct{})
	}
	d.applied[rtc.Scope.ToolExecutionID][key] = struct{}{}
	d.mu.Unlock()
	return nil
}

// Release drops the applied-stage state of a finished tool execution. The
// runner calls it once all attempts are done; replays can no longer arrive
// for a closed row, and without the release a process-lifetime dispatcher
// would retain one key per applied stage forever.
func (d *StageDispatcher) Release(toolExecutionID string) {
	d.mu.Lock()
	delete(d.applied, toolExecutionID)
	d.mu.Unlock()
}

// dispatchKey fingerprints the stage payload. encoding/json sorts map keys,
// so equal payloads produce equal keys regardless of insertion order.
func dispatchKey(stage string, detail map[string]any) string {
	raw, err := json.Marshal(detail)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", detail))
	}
	return stage + "|" + string(raw)
}
