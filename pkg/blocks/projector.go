// Package blocks projects the run's state into render-ready transcript
// blocks and streams their text to subscribers. The projector owns the
// decision-to-block mapping and the completion body rebuild; the streamer
// throttles per-block text deltas.
package blocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/services"
)

// IconBrain marks decision blocks in the transcript.
const IconBrain = "brain"

// BlockStore is the persistence surface the projector writes through.
// Implemented by services.BlockService; defined as an interface here to
// enable testing with fakes.
type BlockStore interface {
	UpsertDecisionBlock(ctx context.Context, req models.UpsertDecisionBlockRequest) (*ent.CompletionBlock, bool, error)
	AnnotateToolBlock(ctx context.Context, req models.AnnotateToolBlockRequest) (*ent.CompletionBlock, bool, error)
	ListExecutionBlocks(ctx context.Context, executionID string) ([]*ent.CompletionBlock, error)
	MarkErrorOnLatestBlock(ctx context.Context, executionID, msg string) (*ent.CompletionBlock, error)
}

// CompletionWriter updates the completion's rendered body. Implemented by
// services.CompletionService.
type CompletionWriter interface {
	UpdateContent(ctx context.Context, completionID, content, reasoning string) (*ent.Completion, error)
}

// Publisher broadcasts block frames. Implemented by events.EventPublisher.
type Publisher interface {
	PublishBlockUpsert(ctx context.Context, payload events.BlockUpsertPayload) error
	PublishBlockDelta(ctx context.Context, payload events.BlockDeltaPayload) error
}

// SeqSource allocates event sequence numbers for one run. Implemented by
// services.ExecutionService.
type SeqSource interface {
	NextSeq(ctx context.Context, executionID string) (int, error)
}

// Scope pins a projector call to one run.
type Scope struct {
	CompletionID     string
	AgentExecutionID string
}

// DecisionRef identifies one decision's projection: its row id, its loop
// iteration, and the seq pinned when the decision was created. The pinned
// seq fixes the block's transcript position; event frames get fresh seqs.
type DecisionRef struct {
	PlanDecisionID string
	LoopIndex      int
	Seq            int
}

// BlockIndex returns the transcript position derived from the pinned seq.
// The gap leaves room for interpolated blocks.
func (r DecisionRef) BlockIndex() int {
	return r.Seq * 10
}

// Projector maintains the block view of a run.
type Projector struct {
	store       BlockStore
	completions CompletionWriter
	publisher   Publisher
	seqs        SeqSource
	logger      *slog.Logger
}

// NewProjector creates a projector over the given persistence and event
// surfaces.
func NewProjector(store BlockStore, completions CompletionWriter, publisher Publisher, seqs SeqSource, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Projector{
		store:       store,
		completions: completions,
		publisher:   publisher,
		seqs:        seqs,
		logger:      logger.With("component", "block_projector"),
	}
}

// UpsertForDecision projects a decision's current state into its block and
// broadcasts block.upsert when the row changed. Safe to call repeatedly
// while the decision streams; dec may be nil for the skeleton upsert
// before any tokens arrive.
func (p *Projector) UpsertForDecision(ctx context.Context, scope Scope, ref DecisionRef, dec *models.PlannerDecision) (*ent.CompletionBlock, error) {
	req := models.UpsertDecisionBlockRequest{
		CompletionID:     scope.CompletionID,
		AgentExecutionID: scope.AgentExecutionID,
		PlanDecisionID:   ref.PlanDecisionID,
		LoopIndex:        ref.LoopIndex,
		BlockIndex:       ref.BlockIndex(),
		Title:            decisionTitle(dec),
		Status:           string(completionblock.StatusInProgress),
		Icon:             IconBrain,
	}
	if dec != nil {
		req.Content = dec.Content()
		req.Reasoning = dec.ReasoningMessage
		if dec.AnalysisComplete {
			req.Status = string(completionblock.StatusCompleted)
			now := time.Now().UTC()
			req.CompletedAt = &now
		}
	}

	block, written, err := p.store.UpsertDecisionBlock(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("upsert decision block: %w", err)
	}
	if written {
		p.broadcast(ctx, scope, block)
	}
	return block, nil
}

// AnnotateForTool folds a finished or started tool execution into the
// decision block that requested it and broadcasts the change.
func (p *Projector) AnnotateForTool(ctx context.Context, scope Scope, ref DecisionRef, tool *ent.ToolExecution) (*ent.CompletionBlock, error) {
	req := models.AnnotateToolBlockRequest{
		CompletionID:     scope.CompletionID,
		AgentExecutionID: scope.AgentExecutionID,
		PlanDecisionID:   ref.PlanDecisionID,
		ToolExecutionID:  tool.ID,
		ToolName:         tool.ToolName,
		LoopIndex:        ref.LoopIndex,
		BlockIndex:       ref.BlockIndex(),
		Status:           string(toolBlockStatus(tool.Status)),
		CompletedAt:      tool.CompletedAt,
	}

	block, written, err := p.store.AnnotateToolBlock(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("annotate tool block: %w", err)
	}
	if written {
		p.broadcast(ctx, scope, block)
	}
	return block, nil
}

// RebuildCompletion re-renders the completion body from its blocks: each
// non-empty content under a bold header line, and the last three non-empty
// reasonings joined into the reasoning field.
func (p *Projector) RebuildCompletion(ctx context.Context, scope Scope) error {
	blockList, err := p.store.ListExecutionBlocks(ctx, scope.AgentExecutionID)
	if err != nil {
		return fmt.Errorf("list blocks: %w", err)
	}
	sort.SliceStable(blockList, func(i, j int) bool {
		return blockList[i].BlockIndex < blockList[j].BlockIndex
	})

	var body strings.Builder
	var reasonings []string
	for _, b := range blockList {
		if content := deref(b.Content); content != "" {
			fmt.Fprintf(&body, "**%s %s %s**\n\n%s\n\n", b.Icon, b.Title, statusGlyph(b.Status), content)
		}
		if r := deref(b.Reasoning); r != "" {
			reasonings = append(reasonings, r)
		}
	}
	if len(reasonings) > 3 {
		reasonings = reasonings[len(reasonings)-3:]
	}

	if _, err := p.completions.UpdateContent(ctx,
		scope.CompletionID,
		strings.TrimRight(body.String(), "\n"),
		strings.Join(reasonings, " | "),
	); err != nil {
		return fmt.Errorf("update completion content: %w", err)
	}
	return nil
}

// MarkError flips the latest block to error, appends the message to its
// content, and broadcasts the change. A run with no blocks is a no-op.
func (p *Projector) MarkError(ctx context.Context, scope Scope, msg string) error {
	block, err := p.store.MarkErrorOnLatestBlock(ctx, scope.AgentExecutionID, msg)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("mark latest block error: %w", err)
	}
	p.broadcast(ctx, scope, block)
	return nil
}

// broadcast emits a block.upsert frame for the block's full render state.
// Publish failures degrade the live stream only, so they are logged and
// swallowed; the persisted row is already the source of truth.
func (p *Projector) broadcast(ctx context.Context, scope Scope, block *ent.CompletionBlock) {
	seq, err := p.seqs.NextSeq(ctx, scope.AgentExecutionID)
	if err != nil {
		p.logger.Warn("Failed to allocate seq for block.upsert", "block_id", block.ID, "error", err)
		return
	}
	payload := events.BlockUpsertPayload{
		BasePayload: events.NewBase(events.EventTypeBlockUpsert, scope.CompletionID, scope.AgentExecutionID, seq),
		Data:        blockData(block),
	}
	if err := p.publisher.PublishBlockUpsert(ctx, payload); err != nil {
		p.logger.Warn("Failed to publish block.upsert", "block_id", block.ID, "error", err)
	}
}

func blockData(block *ent.CompletionBlock) events.BlockData {
	data := events.BlockData{
		BlockID:         block.ID,
		BlockIndex:      block.BlockIndex,
		LoopIndex:       block.LoopIndex,
		SourceType:      block.SourceType,
		PlanDecisionID:  deref(block.PlanDecisionID),
		ToolExecutionID: deref(block.ToolExecutionID),
		Title:           block.Title,
		Status:          block.Status,
		Icon:            block.Icon,
		Content:         deref(block.Content),
		Reasoning:       deref(block.Reasoning),
	}
	if block.CompletedAt != nil {
		data.CompletedAt = block.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return data
}

func decisionTitle(dec *models.PlannerDecision) string {
	if dec == nil || dec.PlanType == "" {
		return "Planning"
	}
	return fmt.Sprintf("Planning (%s)", dec.PlanType)
}

// toolBlockStatus maps a tool execution status onto the block vocabulary.
func toolBlockStatus(status toolexecution.Status) completionblock.Status {
	switch status {
	case toolexecution.StatusSuccess:
		return completionblock.StatusCompleted
	case toolexecution.StatusError:
		return completionblock.StatusError
	default:
		return completionblock.StatusInProgress
	}
}

func statusGlyph(status completionblock.Status) string {
	switch status {
	case completionblock.StatusCompleted:
		return "✓"
	case completionblock.StatusError:
		return "✗"
	case completionblock.StatusStopped:
		return "■"
	default:
		return "…"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
