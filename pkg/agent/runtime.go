// Package agent drives one completion turn end to end. The loop claims the
// turn's execution identity, iterates plan, act, observe against the planner
// and the tool runtime, projects transcript blocks as it goes, and finalizes
// the run with exactly one terminal lifecycle event.
package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/blocks"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/contexthub"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/masking"
	"github.com/quarryhq/quarry/pkg/metrics"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/planner"
	"github.com/quarryhq/quarry/pkg/tools"
)

// The stores below are the persistence surfaces the loop writes through.
// Each is implemented by the corresponding service in pkg/services and
// narrowed here to the methods the loop actually calls, so tests can fake
// them without a database.

// ExecutionStore owns the agent_execution row and its seq counter.
type ExecutionStore interface {
	CreateAgentExecution(ctx context.Context, req models.CreateAgentExecutionRequest) (*ent.AgentExecution, error)
	NextSeq(ctx context.Context, executionID string) (int, error)
	FinishExecution(ctx context.Context, req models.FinishAgentExecutionRequest) (*ent.AgentExecution, error)
}

// DecisionStore upserts planner decisions at their pinned seq.
type DecisionStore interface {
	SavePlanDecision(ctx context.Context, req models.SavePlanDecisionRequest) (*ent.PlanDecision, error)
}

// ToolStore owns tool_execution rows.
type ToolStore interface {
	StartToolExecution(ctx context.Context, req models.StartToolExecutionRequest) (*ent.ToolExecution, error)
	FinishToolExecution(ctx context.Context, req models.FinishToolExecutionRequest) (*ent.ToolExecution, error)
}

// SnapshotStore persists context snapshots. All snapshot writes are
// best-effort: a failure is logged and the loop moves on.
type SnapshotStore interface {
	SaveContextSnapshot(ctx context.Context, req models.SaveContextSnapshotRequest) (*ent.ContextSnapshot, error)
}

// BlockStore extends the projector's store with the stop marker used during
// sigkill finalization.
type BlockStore interface {
	blocks.BlockStore
	MarkInFlightStopped(ctx context.Context, executionID string) (int, error)
}

// CompletionStore updates the completion row the run belongs to.
type CompletionStore interface {
	UpdateStatus(ctx context.Context, completionID, status, errorMessage string) (*ent.Completion, error)
	UpdateContent(ctx context.Context, completionID, content, reasoning string) (*ent.Completion, error)
	CountForReport(ctx context.Context, reportID string) (int, error)
}

// ReportStore sets the synthesized report title after the first turn.
type ReportStore interface {
	SetTitle(ctx context.Context, reportID, title string) (*ent.Report, error)
}

// InstructionStore persists suggested instruction drafts.
type InstructionStore interface {
	CreateSuggestedDrafts(ctx context.Context, organizationID, executionID string, texts []string) ([]*ent.Instruction, error)
}

// ScoreStore owns execution_score rows for the judge passes.
type ScoreStore interface {
	CreatePendingScore(ctx context.Context, executionID, kind string) (*ent.ExecutionScore, error)
	CompleteScore(ctx context.Context, scoreID string, score int, rationale string) (*ent.ExecutionScore, error)
	FailScore(ctx context.Context, scoreID, errorMessage string) (*ent.ExecutionScore, error)
}

// UsageStore records table usage attributed to finished artifact steps.
type UsageStore interface {
	RecordTableUsage(ctx context.Context, req models.RecordTableUsageRequest) ([]*ent.TableUsage, error)
}

// ToolHistoryStore answers questions about past tool executions. Implemented
// by services.ToolService; split from ToolStore because suggestion triggers
// read across the whole report rather than the current execution.
type ToolHistoryStore interface {
	PreviousToolInReport(ctx context.Context, reportID string, before time.Time) (*ent.ToolExecution, error)
}

// Services bundles the persistence surfaces a run needs.
type Services struct {
	Executions   ExecutionStore
	Decisions    DecisionStore
	Tools        ToolStore
	ToolHistory  ToolHistoryStore
	Snapshots    SnapshotStore
	Blocks       BlockStore
	Completions  CompletionStore
	Reports      ReportStore
	Instructions InstructionStore
	Scores       ScoreStore
	Usage        UsageStore
}

// EventSink is the publishing surface the loop emits through. Implemented by
// events.EventPublisher.
type EventSink interface {
	PublishDecisionPartial(ctx context.Context, payload events.DecisionPartialPayload) error
	PublishDecisionFinal(ctx context.Context, payload events.DecisionFinalPayload) error
	PublishBlockUpsert(ctx context.Context, payload events.BlockUpsertPayload) error
	PublishBlockDelta(ctx context.Context, payload events.BlockDeltaPayload) error
	PublishToolStarted(ctx context.Context, payload events.ToolStartedPayload) error
	PublishToolProgress(ctx context.Context, payload events.ToolProgressPayload) error
	PublishToolPartial(ctx context.Context, payload events.ToolPartialPayload) error
	PublishToolStdout(ctx context.Context, payload events.ToolStdoutPayload) error
	PublishToolFinished(ctx context.Context, payload events.ToolFinishedPayload) error
	PublishPlannerRetry(ctx context.Context, payload events.PlannerRetryPayload) error
	PublishCompletionStarted(ctx context.Context, payload events.CompletionStartedPayload) error
	PublishCompletionFinished(ctx context.Context, payload events.CompletionFinishedPayload) error
	PublishArtifact(ctx context.Context, payload events.ArtifactPayload) error
	PublishSuggestStarted(ctx context.Context, payload events.SuggestPayload) error
	PublishSuggestPartial(ctx context.Context, payload events.SuggestPayload) error
	PublishSuggestFinished(ctx context.Context, payload events.SuggestPayload) error
}

// Planner streams decisions for one loop iteration.
type Planner interface {
	Stream(ctx context.Context, in *planner.Input) (<-chan planner.Update, error)
}

// Completer runs single-shot prompts outside the loop: report titles,
// instruction suggestions, and the judge passes.
type Completer interface {
	Complete(ctx context.Context, req *planner.CompleteRequest) (*planner.CompleteResponse, error)
}

// ToolRunner executes one tool invocation through the runtime's timeout and
// retry envelope. Implemented by tools.Runner.
type ToolRunner interface {
	Run(ctx context.Context, name string, args map[string]any, rtc *tools.RuntimeContext, emit func(tools.Event)) (*tools.RunResult, error)
}

// Runtime carries the collaborators shared by every run. It is assembled
// once at process start; per-run state lives on the loop itself.
type Runtime struct {
	Config      *config.Config
	Services    Services
	Planner     Planner
	Completer   Completer
	Registry    *tools.Registry
	Runner      ToolRunner
	Sources     contexthub.Sources
	DataSources tools.DataSources
	Platform    tools.Platform
	Publisher   EventSink
	Masker      *masking.Service
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}
