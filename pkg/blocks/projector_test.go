package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/services"
)

type fakeStore struct {
	upserts     []models.UpsertDecisionBlockRequest
	annotations []models.AnnotateToolBlockRequest
	written     bool
	blocks      []*ent.CompletionBlock
	markErr     error
}

func (f *fakeStore) UpsertDecisionBlock(_ context.Context, req models.UpsertDecisionBlockRequest) (*ent.CompletionBlock, bool, error) {
	f.upserts = append(f.upserts, req)
	return &ent.CompletionBlock{
		ID:             "blk-1",
		CompletionID:   req.CompletionID,
		BlockIndex:     req.BlockIndex,
		LoopIndex:      req.LoopIndex,
		SourceType:     completionblock.SourceTypeDecision,
		PlanDecisionID: strPtr(req.PlanDecisionID),
		Title:          req.Title,
		Status:         completionblock.Status(req.Status),
		Icon:           req.Icon,
		Content:        strPtr(req.Content),
		Reasoning:      strPtr(req.Reasoning),
		CompletedAt:    req.CompletedAt,
	}, f.written, nil
}

func (f *fakeStore) AnnotateToolBlock(_ context.Context, req models.AnnotateToolBlockRequest) (*ent.CompletionBlock, bool, error) {
	f.annotations = append(f.annotations, req)
	return &ent.CompletionBlock{
		ID:         "blk-1",
		BlockIndex: req.BlockIndex,
		Title:      "Planning (research) → " + req.ToolName,
		Status:     completionblock.Status(req.Status),
		Icon:       IconBrain,
	}, f.written, nil
}

func (f *fakeStore) ListExecutionBlocks(_ context.Context, _ string) ([]*ent.CompletionBlock, error) {
	return f.blocks, nil
}

func (f *fakeStore) MarkErrorOnLatestBlock(_ context.Context, _, msg string) (*ent.CompletionBlock, error) {
	if f.markErr != nil {
		return nil, f.markErr
	}
	return &ent.CompletionBlock{
		ID:      "blk-9",
		Status:  completionblock.StatusError,
		Icon:    IconBrain,
		Title:   "Planning",
		Content: strPtr("body\n\nError: " + msg),
	}, nil
}

type fakeCompletions struct {
	completionID string
	content      string
	reasoning    string
}

func (f *fakeCompletions) UpdateContent(_ context.Context, completionID, content, reasoning string) (*ent.Completion, error) {
	f.completionID = completionID
	f.content = content
	f.reasoning = reasoning
	return &ent.Completion{ID: completionID}, nil
}

type fakePublisher struct {
	upserts []events.BlockUpsertPayload
	deltas  []events.BlockDeltaPayload
}

func (f *fakePublisher) PublishBlockUpsert(_ context.Context, payload events.BlockUpsertPayload) error {
	f.upserts = append(f.upserts, payload)
	return nil
}

func (f *fakePublisher) PublishBlockDelta(_ context.Context, payload events.BlockDeltaPayload) error {
	f.deltas = append(f.deltas, payload)
	return nil
}

type fakeSeqs struct {
	next int
}

func (f *fakeSeqs) NextSeq(_ context.Context, _ string) (int, error) {
	f.next++
	return f.next, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func testScope() Scope {
	return Scope{CompletionID: "comp-1", AgentExecutionID: "exec-1"}
}

func TestProjector_UpsertForDecision_Skeleton(t *testing.T) {
	store := &fakeStore{written: true}
	pub := &fakePublisher{}
	p := NewProjector(store, &fakeCompletions{}, pub, &fakeSeqs{}, nil)

	ref := DecisionRef{PlanDecisionID: "dec-1", LoopIndex: 0, Seq: 3}
	block, err := p.UpsertForDecision(context.Background(), testScope(), ref, nil)
	require.NoError(t, err)

	require.Len(t, store.upserts, 1)
	req := store.upserts[0]
	assert.Equal(t, "Planning", req.Title)
	assert.Equal(t, 30, req.BlockIndex)
	assert.Equal(t, string(completionblock.StatusInProgress), req.Status)
	assert.Equal(t, IconBrain, req.Icon)
	assert.Nil(t, req.CompletedAt)

	require.Len(t, pub.upserts, 1)
	assert.Equal(t, events.EventTypeBlockUpsert, pub.upserts[0].Event)
	assert.Equal(t, block.ID, pub.upserts[0].Data.BlockID)
	assert.Equal(t, 1, pub.upserts[0].Seq)
}

func TestProjector_UpsertForDecision_CompletedDecision(t *testing.T) {
	store := &fakeStore{written: true}
	p := NewProjector(store, &fakeCompletions{}, &fakePublisher{}, &fakeSeqs{}, nil)

	dec := &models.PlannerDecision{
		PlanType:         models.PlanTypeResearch,
		ReasoningMessage: "the schema answers this directly",
		AssistantMessage: "Looking at revenue now",
		AnalysisComplete: true,
		FinalAnswer:      "Revenue grew 12% month over month.",
	}
	ref := DecisionRef{PlanDecisionID: "dec-1", LoopIndex: 2, Seq: 7}
	_, err := p.UpsertForDecision(context.Background(), testScope(), ref, dec)
	require.NoError(t, err)

	req := store.upserts[0]
	assert.Equal(t, "Planning (research)", req.Title)
	assert.Equal(t, 70, req.BlockIndex)
	assert.Equal(t, string(completionblock.StatusCompleted), req.Status)
	assert.Equal(t, "Revenue grew 12% month over month.", req.Content, "final answer wins over assistant message")
	assert.Equal(t, "the schema answers this directly", req.Reasoning)
	require.NotNil(t, req.CompletedAt)
}

func TestProjector_UpsertForDecision_NoChangeNoEvent(t *testing.T) {
	store := &fakeStore{written: false}
	pub := &fakePublisher{}
	p := NewProjector(store, &fakeCompletions{}, pub, &fakeSeqs{}, nil)

	_, err := p.UpsertForDecision(context.Background(), testScope(), DecisionRef{Seq: 1}, nil)
	require.NoError(t, err)
	assert.Empty(t, pub.upserts)
}

func TestProjector_AnnotateForTool_StatusMapping(t *testing.T) {
	tests := []struct {
		toolStatus toolexecution.Status
		want       completionblock.Status
	}{
		{toolexecution.StatusSuccess, completionblock.StatusCompleted},
		{toolexecution.StatusError, completionblock.StatusError},
		{toolexecution.StatusInProgress, completionblock.StatusInProgress},
	}
	for _, tt := range tests {
		t.Run(string(tt.toolStatus), func(t *testing.T) {
			store := &fakeStore{written: true}
			pub := &fakePublisher{}
			p := NewProjector(store, &fakeCompletions{}, pub, &fakeSeqs{}, nil)

			completed := time.Now().UTC()
			tool := &ent.ToolExecution{
				ID:          "tx-1",
				ToolName:    "execute_query",
				Status:      tt.toolStatus,
				CompletedAt: &completed,
			}
			ref := DecisionRef{PlanDecisionID: "dec-1", LoopIndex: 1, Seq: 4}
			_, err := p.AnnotateForTool(context.Background(), testScope(), ref, tool)
			require.NoError(t, err)

			require.Len(t, store.annotations, 1)
			req := store.annotations[0]
			assert.Equal(t, string(tt.want), req.Status)
			assert.Equal(t, "execute_query", req.ToolName)
			assert.Equal(t, "tx-1", req.ToolExecutionID)
			assert.Equal(t, 40, req.BlockIndex)
			assert.Equal(t, &completed, req.CompletedAt)
			assert.Len(t, pub.upserts, 1)
		})
	}
}

func TestProjector_RebuildCompletion(t *testing.T) {
	store := &fakeStore{blocks: []*ent.CompletionBlock{
		{BlockIndex: 30, Icon: "brain", Title: "t3", Status: completionblock.StatusInProgress, Content: strPtr("c3"), Reasoning: strPtr("r3")},
		{BlockIndex: 10, Icon: "brain", Title: "t1", Status: completionblock.StatusCompleted, Content: strPtr("c1"), Reasoning: strPtr("r1")},
		{BlockIndex: 40, Icon: "brain", Title: "t4", Status: completionblock.StatusError, Reasoning: strPtr("r4")},
		{BlockIndex: 20, Icon: "brain", Title: "t2", Status: completionblock.StatusCompleted, Reasoning: strPtr("r2")},
	}}
	completions := &fakeCompletions{}
	p := NewProjector(store, completions, &fakePublisher{}, &fakeSeqs{}, nil)

	require.NoError(t, p.RebuildCompletion(context.Background(), testScope()))

	assert.Equal(t, "comp-1", completions.completionID)
	assert.Equal(t, "**brain t1 ✓**\n\nc1\n\n**brain t3 …**\n\nc3", completions.content,
		"only blocks with content render, in block_index order")
	assert.Equal(t, "r2 | r3 | r4", completions.reasoning, "last three non-empty reasonings")
}

func TestProjector_MarkError(t *testing.T) {
	t.Run("appends and broadcasts", func(t *testing.T) {
		store := &fakeStore{}
		pub := &fakePublisher{}
		p := NewProjector(store, &fakeCompletions{}, pub, &fakeSeqs{}, nil)

		require.NoError(t, p.MarkError(context.Background(), testScope(), "planner unreachable"))
		require.Len(t, pub.upserts, 1)
		assert.Contains(t, pub.upserts[0].Data.Content, "Error: planner unreachable")
		assert.Equal(t, completionblock.StatusError, pub.upserts[0].Data.Status)
	})

	t.Run("no blocks is a no-op", func(t *testing.T) {
		store := &fakeStore{markErr: services.ErrNotFound}
		pub := &fakePublisher{}
		p := NewProjector(store, &fakeCompletions{}, pub, &fakeSeqs{}, nil)

		require.NoError(t, p.MarkError(context.Background(), testScope(), "boom"))
		assert.Empty(t, pub.upserts)
	})
}
