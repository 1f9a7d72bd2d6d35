package agent

import (
	"context"
	"log/slog"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/masking"
	"github.com/quarryhq/quarry/pkg/models"
)

// emitter publishes the run's event frames. Every frame, transient or
// persistent, gets a fresh seq from the execution's counter at publish time,
// so seqs on the wire are strictly increasing per run; only the persisted
// decision and tool rows keep their pinned seqs. Publish failures are logged
// and swallowed: the persisted rows remain the source of truth and catchup
// replays from them.
type emitter struct {
	sink         EventSink
	seqs         ExecutionStore
	masker       *masking.Service
	completionID string
	executionID  string
	logger       *slog.Logger

	lastSeq int
}

func newEmitter(sink EventSink, seqs ExecutionStore, masker *masking.Service, completionID, executionID string, logger *slog.Logger) *emitter {
	return &emitter{
		sink:         sink,
		seqs:         seqs,
		masker:       masker,
		completionID: completionID,
		executionID:  executionID,
		logger:       logger,
	}
}

// nextSeq allocates the next frame seq. When allocation fails the emitter
// degrades to a locally bumped seq so terminal frames still go out in order.
func (e *emitter) nextSeq(ctx context.Context) int {
	seq, err := e.seqs.NextSeq(ctx, e.executionID)
	if err != nil {
		e.logger.Warn("Seq allocation failed, using local fallback",
			"agent_execution_id", e.executionID, "error", err)
		e.lastSeq++
		return e.lastSeq
	}
	e.lastSeq = seq
	return seq
}

func (e *emitter) warnPublish(event string, err error) {
	if err != nil {
		e.logger.Warn("Event publish failed", "event", event, "completion_id", e.completionID, "error", err)
	}
}

func (e *emitter) base(event string, seq int) events.BasePayload {
	return events.NewBase(event, e.completionID, e.executionID, seq)
}

func decisionData(decisionID string, loopIndex int, dec *models.PlannerDecision) events.DecisionData {
	data := events.DecisionData{
		PlanDecisionID:   decisionID,
		LoopIndex:        loopIndex,
		PlanType:         plandecision.PlanType(dec.PlanType),
		AnalysisComplete: dec.AnalysisComplete,
		Reasoning:        dec.ReasoningMessage,
		Assistant:        dec.AssistantMessage,
		FinalAnswer:      dec.FinalAnswer,
	}
	if dec.Action != nil {
		data.ActionName = dec.Action.Name
		data.ActionArgs = dec.Action.Arguments
	}
	if dec.Metrics != nil {
		data.Metrics = map[string]any{
			"input_tokens":  dec.Metrics.InputTokens,
			"output_tokens": dec.Metrics.OutputTokens,
			"total_tokens":  dec.Metrics.TotalTokens,
			"latency_ms":    dec.Metrics.LatencyMs,
		}
	}
	return data
}

// decisionPartial emits a transient partial frame; the row it mirrors is
// identified by decision id, not by the frame's seq.
func (e *emitter) decisionPartial(ctx context.Context, decisionID string, loopIndex int, dec *models.PlannerDecision) {
	payload := events.DecisionPartialPayload{
		BasePayload: e.base(events.EventTypeDecisionPartial, e.nextSeq(ctx)),
		Data:        decisionData(decisionID, loopIndex, dec),
	}
	e.warnPublish(events.EventTypeDecisionPartial, e.sink.PublishDecisionPartial(ctx, payload))
}

func (e *emitter) decisionFinal(ctx context.Context, decisionID string, loopIndex int, dec *models.PlannerDecision) {
	payload := events.DecisionFinalPayload{
		BasePayload: e.base(events.EventTypeDecisionFinal, e.nextSeq(ctx)),
		Data:        decisionData(decisionID, loopIndex, dec),
	}
	e.warnPublish(events.EventTypeDecisionFinal, e.sink.PublishDecisionFinal(ctx, payload))
}

func (e *emitter) plannerRetry(ctx context.Context, kind string, attempt, maxAttempts int, message string) {
	payload := events.PlannerRetryPayload{
		BasePayload: e.base(events.EventTypePlannerRetry, e.nextSeq(ctx)),
		Data: events.PlannerRetryData{
			Kind:        kind,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Message:     message,
		},
	}
	e.warnPublish(events.EventTypePlannerRetry, e.sink.PublishPlannerRetry(ctx, payload))
}

func (e *emitter) toolStarted(ctx context.Context, row *ent.ToolExecution, loopIndex int) {
	payload := events.ToolStartedPayload{
		BasePayload: e.base(events.EventTypeToolStarted, e.nextSeq(ctx)),
		Data: events.ToolStartedData{
			ToolExecutionID: row.ID,
			ToolName:        row.ToolName,
			ToolAction:      deref(row.ToolAction),
			LoopIndex:       loopIndex,
			AttemptNumber:   row.AttemptNumber,
			Arguments:       e.masker.MaskArguments(row.Arguments),
		},
	}
	e.warnPublish(events.EventTypeToolStarted, e.sink.PublishToolStarted(ctx, payload))
}

func (e *emitter) toolProgress(ctx context.Context, toolExecutionID, stage string, detail map[string]any) {
	payload := events.ToolProgressPayload{
		BasePayload: e.base(events.EventTypeToolProgress, e.nextSeq(ctx)),
		Data: events.ToolProgressData{
			ToolExecutionID: toolExecutionID,
			Stage:           stage,
			Detail:          detail,
		},
	}
	e.warnPublish(events.EventTypeToolProgress, e.sink.PublishToolProgress(ctx, payload))
}

func (e *emitter) toolPartial(ctx context.Context, toolExecutionID, delta string) {
	payload := events.ToolPartialPayload{
		BasePayload: e.base(events.EventTypeToolPartial, e.nextSeq(ctx)),
		Data: events.ToolPartialData{
			ToolExecutionID: toolExecutionID,
			Delta:           delta,
		},
	}
	e.warnPublish(events.EventTypeToolPartial, e.sink.PublishToolPartial(ctx, payload))
}

func (e *emitter) toolStdout(ctx context.Context, toolExecutionID, line string) {
	payload := events.ToolStdoutPayload{
		BasePayload: e.base(events.EventTypeToolStdout, e.nextSeq(ctx)),
		Data: events.ToolStdoutData{
			ToolExecutionID: toolExecutionID,
			Line:            e.masker.MaskOutput(line),
		},
	}
	e.warnPublish(events.EventTypeToolStdout, e.sink.PublishToolStdout(ctx, payload))
}

func (e *emitter) toolFinished(ctx context.Context, row *ent.ToolExecution, queryID string) {
	payload := events.ToolFinishedPayload{
		BasePayload: e.base(events.EventTypeToolFinished, e.nextSeq(ctx)),
		Data: events.ToolFinishedData{
			ToolExecutionID:         row.ID,
			ToolName:                row.ToolName,
			Status:                  row.Status,
			Success:                 row.Success,
			ResultSummary:           deref(row.ResultSummary),
			ResultJSON:              stripWidgetData(row.ResultJSON),
			ErrorMessage:            deref(row.ErrorMessage),
			DurationMs:              derefInt(row.DurationMs),
			QueryID:                 queryID,
			CreatedWidgetID:         deref(row.CreatedWidgetID),
			CreatedStepID:           deref(row.CreatedStepID),
			CreatedVisualizationIDs: row.CreatedVisualizationIds,
		},
	}
	e.warnPublish(events.EventTypeToolFinished, e.sink.PublishToolFinished(ctx, payload))
}

func (e *emitter) completionStarted(ctx context.Context, reportID string) {
	payload := events.CompletionStartedPayload{
		BasePayload: e.base(events.EventTypeCompletionStarted, e.nextSeq(ctx)),
		Data: events.CompletionLifecycleData{
			ReportID: reportID,
			Status:   completion.StatusInProgress,
		},
	}
	e.warnPublish(events.EventTypeCompletionStarted, e.sink.PublishCompletionStarted(ctx, payload))
}

func (e *emitter) completionFinished(ctx context.Context, reportID string, status completion.Status, errorMessage string) {
	payload := events.CompletionFinishedPayload{
		BasePayload: e.base(events.EventTypeCompletionFinished, e.nextSeq(ctx)),
		Data: events.CompletionLifecycleData{
			ReportID:     reportID,
			Status:       status,
			ErrorMessage: errorMessage,
		},
	}
	e.warnPublish(events.EventTypeCompletionFinished, e.sink.PublishCompletionFinished(ctx, payload))
}

func (e *emitter) suggestStarted(ctx context.Context) {
	payload := events.SuggestPayload{
		BasePayload: e.base(events.EventTypeSuggestStarted, e.nextSeq(ctx)),
	}
	e.warnPublish(events.EventTypeSuggestStarted, e.sink.PublishSuggestStarted(ctx, payload))
}

func (e *emitter) suggestPartial(ctx context.Context, index int, text string) {
	payload := events.SuggestPayload{
		BasePayload: e.base(events.EventTypeSuggestPartial, e.nextSeq(ctx)),
		Data:        events.SuggestData{Index: index, Text: text},
	}
	e.warnPublish(events.EventTypeSuggestPartial, e.sink.PublishSuggestPartial(ctx, payload))
}

func (e *emitter) suggestFinished(ctx context.Context, count int, instructionIDs []string) {
	payload := events.SuggestPayload{
		BasePayload: e.base(events.EventTypeSuggestFinished, e.nextSeq(ctx)),
		Data:        events.SuggestData{Count: count, InstructionIDs: instructionIDs},
	}
	e.warnPublish(events.EventTypeSuggestFinished, e.sink.PublishSuggestFinished(ctx, payload))
}

// artifact emits one artifact lifecycle frame; the event name selects among
// query.created, visualization.created, and visualization.updated.
func (e *emitter) artifact(ctx context.Context, event string, data events.ArtifactData) {
	payload := events.ArtifactPayload{
		BasePayload: e.base(event, e.nextSeq(ctx)),
		Data:        data,
	}
	e.warnPublish(event, e.sink.PublishArtifact(ctx, payload))
}

// stripWidgetData removes the bulky widget_data key from a result payload
// before it goes on the wire. Rows keep the full payload.
func stripWidgetData(resultJSON map[string]any) map[string]any {
	if resultJSON == nil {
		return nil
	}
	if _, ok := resultJSON["widget_data"]; !ok {
		return resultJSON
	}
	stripped := make(map[string]any, len(resultJSON))
	for k, v := range resultJSON {
		if k == "widget_data" {
			continue
		}
		stripped[k] = v
	}
	return stripped
}
