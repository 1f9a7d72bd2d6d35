package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/planner"
)

type scoreRecord struct {
	kind      string
	score     int
	rationale string
}

// fakeScores is safe for the background judge goroutines.
type fakeScores struct {
	mu        sync.Mutex
	kinds     map[string]string
	pending   []string
	completed []scoreRecord
	failed    map[string]string
	createErr error
}

func (f *fakeScores) CreatePendingScore(_ context.Context, _, kind string) (*ent.ExecutionScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.kinds == nil {
		f.kinds = make(map[string]string)
	}
	f.pending = append(f.pending, kind)
	id := fmt.Sprintf("score-%d", len(f.pending))
	f.kinds[id] = kind
	return &ent.ExecutionScore{ID: id}, nil
}

func (f *fakeScores) CompleteScore(_ context.Context, scoreID string, score int, rationale string) (*ent.ExecutionScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, scoreRecord{kind: f.kinds[scoreID], score: score, rationale: rationale})
	return &ent.ExecutionScore{ID: scoreID}, nil
}

func (f *fakeScores) FailScore(_ context.Context, scoreID, errorMessage string) (*ent.ExecutionScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed == nil {
		f.failed = make(map[string]string)
	}
	f.failed[f.kinds[scoreID]] = errorMessage
	return &ent.ExecutionScore{ID: scoreID}, nil
}

func (f *fakeScores) snapshotCompleted() []scoreRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]scoreRecord, len(f.completed))
	copy(out, f.completed)
	return out
}

func (f *fakeScores) snapshotFailed() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.failed))
	for k, v := range f.failed {
		out[k] = v
	}
	return out
}

func (f *fakeScores) pendingKinds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.pending))
	copy(out, f.pending)
	return out
}

// fakeCompleter is safe for concurrent judge calls.
type fakeCompleter struct {
	mu    sync.Mutex
	reqs  []*planner.CompleteRequest
	text  string
	texts []string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, req *planner.CompleteRequest) (*planner.CompleteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.reqs = append(f.reqs, req)
	text := f.text
	if n := len(f.reqs) - 1; n < len(f.texts) {
		text = f.texts[n]
	}
	return &planner.CompleteResponse{Text: text}, nil
}

func (f *fakeCompleter) snapshotReqs() []*planner.CompleteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*planner.CompleteRequest, len(f.reqs))
	copy(out, f.reqs)
	return out
}

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		score     int
		rationale string
		wantErr   bool
	}{
		{
			name:      "rationale then score",
			text:      "The answer covers every part of the question.\n85",
			score:     85,
			rationale: "The answer covers every part of the question.",
		},
		{
			name:  "bare score",
			text:  "90",
			score: 90,
		},
		{
			name:      "score with label prefix",
			text:      "Mostly correct.\nScore: 72",
			score:     72,
			rationale: "Mostly correct.",
		},
		{
			name:      "clamps above range",
			text:      "Exceptional.\n120",
			score:     100,
			rationale: "Exceptional.",
		},
		{
			name:      "clamps below range",
			text:      "Useless.\n-5",
			score:     0,
			rationale: "Useless.",
		},
		{
			name:      "trailing whitespace",
			text:      "Fine.\n82\n\n",
			score:     82,
			rationale: "Fine.",
		},
		{
			name:      "multi-line rationale",
			text:      "First point.\nSecond point.\n70",
			score:     70,
			rationale: "First point.\nSecond point.",
		},
		{
			name:    "empty response",
			text:    "",
			wantErr: true,
		},
		{
			name:    "no numeric last line",
			text:    "The response was adequate overall.",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, rationale, err := extractScore(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.rationale, rationale)
		})
	}
}

func TestLoop_ScoreOne_CompletesScore(t *testing.T) {
	f := newLoopFixture(t)
	completer := &fakeCompleter{text: "Schema context covered the needed tables.\n78"}
	f.rt.Completer = completer

	f.loop().scoreOne("exec-1", "context_effectiveness", "judge this", f.rt.Logger)

	assert.Equal(t, []string{"context_effectiveness"}, f.scores.pendingKinds())
	completed := f.scores.snapshotCompleted()
	require.Len(t, completed, 1)
	assert.Equal(t, scoreRecord{
		kind:      "context_effectiveness",
		score:     78,
		rationale: "Schema context covered the needed tables.",
	}, completed[0])

	reqs := completer.snapshotReqs()
	require.Len(t, reqs, 1)
	assert.Equal(t, "judge this", reqs[0].UserPrompt)
	assert.NotEmpty(t, reqs[0].SystemPrompt)
}

func TestLoop_ScoreOne_CompleterFailureMarksScoreFailed(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{err: errors.New("model unavailable")}

	f.loop().scoreOne("exec-1", "response_quality", "judge this", f.rt.Logger)

	assert.Empty(t, f.scores.snapshotCompleted())
	failed := f.scores.snapshotFailed()
	assert.Contains(t, failed["response_quality"], "model unavailable")
}

func TestLoop_ScoreOne_UnparseableResponseMarksScoreFailed(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{text: "I cannot decide on a number."}

	f.loop().scoreOne("exec-1", "response_quality", "judge this", f.rt.Logger)

	assert.Empty(t, f.scores.snapshotCompleted())
	failed := f.scores.snapshotFailed()
	assert.Contains(t, failed["response_quality"], "no numeric score")
}

func TestLoop_ScoreOne_PendingRowFailureStopsPass(t *testing.T) {
	f := newLoopFixture(t)
	completer := &fakeCompleter{text: "irrelevant\n50"}
	f.rt.Completer = completer
	f.scores.createErr = errors.New("insert failed")

	f.loop().scoreOne("exec-1", "response_quality", "judge this", f.rt.Logger)

	assert.Empty(t, completer.snapshotReqs(), "no judge call without a pending row")
	assert.Empty(t, f.scores.snapshotCompleted())
}

func TestLoop_Run_ScoresAllThreeKinds(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{text: "Solid work throughout.\n66"}
	f.plans.scripts = [][]planner.Update{{
		&planner.FinalUpdate{Decision: &models.PlannerDecision{
			PlanType:         models.PlanTypeResearch,
			ReasoningMessage: "The question is answerable directly",
			AnalysisComplete: true,
			FinalAnswer:      "Revenue grew 12%.",
		}},
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(f.scores.snapshotCompleted()) == 3
	}, 2*time.Second, 10*time.Millisecond, "two early passes and one response pass")

	kinds := make([]string, 0, 3)
	for _, rec := range f.scores.snapshotCompleted() {
		kinds = append(kinds, rec.kind)
		assert.Equal(t, 66, rec.score)
	}
	sort.Strings(kinds)
	assert.Equal(t, []string{"context_effectiveness", "instruction_effectiveness", "response_quality"}, kinds)
}

func TestLoop_Run_ScoringDisabledByConfig(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Config = &config.Config{Agent: &config.AgentConfig{ScoringEnabled: config.BoolPtr(false)}}
	completer := &fakeCompleter{text: "Solid.\n66"}
	f.rt.Completer = completer
	f.plans.scripts = [][]planner.Update{{
		&planner.FinalUpdate{Decision: answerDecision("Done.")},
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	// The guard returns before any goroutine starts, so this is stable.
	assert.Empty(t, f.scores.pendingKinds())
}
