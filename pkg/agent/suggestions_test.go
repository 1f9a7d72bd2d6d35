package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/pkg/contexthub"
)

// testRunEnv builds the per-run wiring the post-steps need, without going
// through Loop.Run.
func testRunEnv(f *loopFixture) *runEnv {
	run := f.newRun()
	logger := f.rt.Logger
	return &runEnv{
		run:      run,
		exec:     &ent.AgentExecution{ID: "exec-1"},
		cfg:      resolveRunConfig(nil),
		rc:       contexthub.ResearchContext{OrganizationID: "org-1", UserMessage: run.Prompt.Content},
		state:    newLoopState(),
		logger:   logger,
		emitter:  newEmitter(f.sink, f.execs, f.rt.Masker, "comp-1", "exec-1", logger),
		detached: context.Background(),
	}
}

func TestParseDraftTexts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "array of objects",
			raw:  `[{"text":"Always use the fiscal calendar"},{"text":"Prefer the orders_mart table"}]`,
			want: []string{"Always use the fiscal calendar", "Prefer the orders_mart table"},
		},
		{
			name: "bare strings",
			raw:  `["Use UTC for all timestamps"]`,
			want: []string{"Use UTC for all timestamps"},
		},
		{
			name: "surrounding prose",
			raw:  "Here are my suggestions:\n[{\"text\":\"Filter out test accounts\"}]\nHope that helps.",
			want: []string{"Filter out test accounts"},
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: []string{},
		},
		{
			name: "no array at all",
			raw:  "Nothing worth keeping.",
			want: nil,
		},
		{
			name: "invalid json",
			raw:  `[{"text":}]`,
			want: nil,
		},
		{
			name: "caps at three",
			raw:  `["a", "b", "c", "d", "e"]`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "trims and drops empties",
			raw:  `["  padded  ", "", {"text":"  kept  "}, {"note":"no text key"}]`,
			want: []string{"padded", "kept"},
		},
		{
			name: "skips non-string items",
			raw:  `[42, {"text":"keep"}]`,
			want: []string{"keep"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDraftTexts(tt.raw)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDraftTexts_TruncatesLongTexts(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := parseDraftTexts(`["` + long + `"]`)
	require.Len(t, got, 1)
	assert.Len(t, got[0], maxDraftTextSize)
}

func TestLoop_SuggestTriggered(t *testing.T) {
	t.Run("widget recovery triggers", func(t *testing.T) {
		f := newLoopFixture(t)
		env := testRunEnv(f)
		env.state.widgetRecovered = true
		assert.True(t, f.loop().suggestTriggered(context.Background(), env))
	})

	t.Run("no widget work does not trigger", func(t *testing.T) {
		f := newLoopFixture(t)
		env := testRunEnv(f)
		assert.False(t, f.loop().suggestTriggered(context.Background(), env))
	})

	t.Run("widget after clarify triggers", func(t *testing.T) {
		f := newLoopFixture(t)
		f.history.prev = &ent.ToolExecution{ID: "tool-0", ToolName: "clarify"}
		env := testRunEnv(f)
		env.state.usedCreateWidget = true
		assert.True(t, f.loop().suggestTriggered(context.Background(), env))
	})

	t.Run("widget after other tool does not trigger", func(t *testing.T) {
		f := newLoopFixture(t)
		f.history.prev = &ent.ToolExecution{ID: "tool-0", ToolName: "execute_query"}
		env := testRunEnv(f)
		env.state.usedCreateWidget = true
		assert.False(t, f.loop().suggestTriggered(context.Background(), env))
	})

	t.Run("no prior tool does not trigger", func(t *testing.T) {
		f := newLoopFixture(t)
		env := testRunEnv(f)
		env.state.usedCreateWidget = true
		assert.False(t, f.loop().suggestTriggered(context.Background(), env))
	})

	t.Run("history lookup failure does not trigger", func(t *testing.T) {
		f := newLoopFixture(t)
		f.history.err = errors.New("query timeout")
		env := testRunEnv(f)
		env.state.usedCreateWidget = true
		assert.False(t, f.loop().suggestTriggered(context.Background(), env))
	})
}

func TestLoop_MaybeSuggest_PersistsDraftsAndEmits(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{
		text: `[{"text":"Prefer orders_mart for revenue questions"},{"text":"Quarter always means fiscal quarter"}]`,
	}
	env := testRunEnv(f)
	env.state.widgetRecovered = true
	env.state.finalAnswer = "Built the revenue widget."

	f.loop().maybeSuggest(context.Background(), env)

	require.Len(t, f.instructions.drafts, 1)
	assert.Equal(t, []string{
		"Prefer orders_mart for revenue questions",
		"Quarter always means fiscal quarter",
	}, f.instructions.drafts[0])

	require.Len(t, f.sink.suggestStarteds, 1)
	require.Len(t, f.sink.suggestPartials, 2)
	assert.Equal(t, 0, f.sink.suggestPartials[0].Data.Index)
	assert.Equal(t, "Prefer orders_mart for revenue questions", f.sink.suggestPartials[0].Data.Text)
	assert.Equal(t, 1, f.sink.suggestPartials[1].Data.Index)

	require.Len(t, f.sink.suggestFinisheds, 1)
	assert.Equal(t, 2, f.sink.suggestFinisheds[0].Data.Count)
	assert.Equal(t, []string{"inst-1", "inst-2"}, f.sink.suggestFinisheds[0].Data.InstructionIDs)
}

func TestLoop_MaybeSuggest_CompleterFailureFinishesEmpty(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{err: errors.New("model unavailable")}
	env := testRunEnv(f)
	env.state.widgetRecovered = true

	f.loop().maybeSuggest(context.Background(), env)

	assert.Empty(t, f.instructions.drafts)
	require.Len(t, f.sink.suggestStarteds, 1)
	require.Len(t, f.sink.suggestFinisheds, 1)
	assert.Equal(t, 0, f.sink.suggestFinisheds[0].Data.Count)
	assert.Empty(t, f.sink.suggestFinisheds[0].Data.InstructionIDs)
}

func TestLoop_MaybeSuggest_EmptyReplySkipsPersistence(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{text: "[]"}
	env := testRunEnv(f)
	env.state.widgetRecovered = true

	f.loop().maybeSuggest(context.Background(), env)

	assert.Empty(t, f.instructions.drafts)
	require.Len(t, f.sink.suggestFinisheds, 1)
	assert.Equal(t, 0, f.sink.suggestFinisheds[0].Data.Count)
}

func TestLoop_MaybeSuggest_UntriggeredStaysSilent(t *testing.T) {
	f := newLoopFixture(t)
	completer := &fakeCompleter{text: `["anything"]`}
	f.rt.Completer = completer
	env := testRunEnv(f)

	f.loop().maybeSuggest(context.Background(), env)

	assert.Empty(t, completer.snapshotReqs())
	assert.Empty(t, f.sink.suggestStarteds)
	assert.Empty(t, f.sink.suggestFinisheds)
}

func TestLoop_MaybeSuggest_DisabledByConfig(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{text: `["anything"]`}
	env := testRunEnv(f)
	env.cfg.suggestionsEnabled = false
	env.state.widgetRecovered = true

	f.loop().maybeSuggest(context.Background(), env)

	assert.Empty(t, f.sink.suggestStarteds)
}
