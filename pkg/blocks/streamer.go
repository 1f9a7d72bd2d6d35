package blocks

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/quarryhq/quarry/pkg/events"
)

// defaultFlushInterval is the coalescing window for block text deltas.
// Updates inside the window pile up and go out together on the next flush.
const defaultFlushInterval = 120 * time.Millisecond

// Streamer throttles the live text of one block. It tracks the last
// emitted reasoning and content, sends suffix deltas while the new text
// is a prefix extension, and falls back to a full snapshot when the text
// was rewritten. Frames are transient and each carries a fresh seq; the
// block.upsert at the end of the iteration subsumes anything lost.
//
// A streamer is bound to a single goroutine (the loop that owns the run).
type Streamer struct {
	publisher Publisher
	seqs      SeqSource
	scope     Scope
	logger    *slog.Logger
	interval  time.Duration
	now       func() time.Time

	blockID string

	// Last emitted text per field.
	sentReasoning string
	sentContent   string

	// Latest observed text, not yet emitted.
	pendingReasoning string
	pendingContent   string
	dirty            bool

	lastFlush time.Time
}

// NewStreamer creates a streamer for one run. It stays silent until
// SetBlock binds it to a materialized block.
func NewStreamer(publisher Publisher, seqs SeqSource, scope Scope, logger *slog.Logger) *Streamer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Streamer{
		publisher: publisher,
		seqs:      seqs,
		scope:     scope,
		logger:    logger.With("component", "block_streamer"),
		interval:  defaultFlushInterval,
		now:       time.Now,
	}
}

// SetBlock binds the streamer to a block. Rebinding resets the emission
// baseline, so text cached before the block existed goes out in full on
// the next flush.
func (s *Streamer) SetBlock(blockID string) {
	if s.blockID == blockID {
		return
	}
	s.blockID = blockID
	s.sentReasoning = ""
	s.sentContent = ""
	if s.pendingReasoning != "" || s.pendingContent != "" {
		s.dirty = true
	}
}

// Update records the block's current text and flushes if the coalescing
// window has passed.
func (s *Streamer) Update(ctx context.Context, reasoning, content string) {
	if reasoning == s.pendingReasoning && content == s.pendingContent {
		return
	}
	s.pendingReasoning = reasoning
	s.pendingContent = content
	s.dirty = true

	if s.now().Sub(s.lastFlush) >= s.interval {
		s.flush(ctx)
	}
}

// Complete flushes whatever is pending. Called when the decision stream
// ends, regardless of the window.
func (s *Streamer) Complete(ctx context.Context) {
	s.flush(ctx)
}

func (s *Streamer) flush(ctx context.Context) {
	if !s.dirty || s.blockID == "" {
		return
	}
	s.emitField(ctx, "reasoning", s.sentReasoning, s.pendingReasoning)
	s.emitField(ctx, "content", s.sentContent, s.pendingContent)
	s.sentReasoning = s.pendingReasoning
	s.sentContent = s.pendingContent
	s.dirty = false
	s.lastFlush = s.now()
}

func (s *Streamer) emitField(ctx context.Context, field, sent, current string) {
	if current == sent {
		return
	}
	data := events.BlockDeltaData{
		BlockID: s.blockID,
		Field:   field,
	}
	if strings.HasPrefix(current, sent) {
		data.Delta = current[len(sent):]
	} else {
		data.Snapshot = current
		data.Replace = true
	}

	seq, err := s.seqs.NextSeq(ctx, s.scope.AgentExecutionID)
	if err != nil {
		s.logger.Warn("Failed to allocate seq for block delta", "block_id", s.blockID, "field", field, "error", err)
		return
	}
	payload := events.BlockDeltaPayload{
		BasePayload: events.NewBase(events.EventTypeBlockDelta, s.scope.CompletionID, s.scope.AgentExecutionID, seq),
		Data:        data,
	}
	if err := s.publisher.PublishBlockDelta(ctx, payload); err != nil {
		s.logger.Warn("Failed to publish block delta", "block_id", s.blockID, "field", field, "error", err)
	}
}
