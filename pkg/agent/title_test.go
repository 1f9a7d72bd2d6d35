package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain title passes through",
			raw:  "Quarterly Revenue Trends",
			want: "Quarterly Revenue Trends",
		},
		{
			name: "surrounding quotes stripped",
			raw:  `"Quarterly Revenue Trends"`,
			want: "Quarterly Revenue Trends",
		},
		{
			name: "single quotes stripped",
			raw:  "'Churn by Region'",
			want: "Churn by Region",
		},
		{
			name: "only the first line survives",
			raw:  "Revenue Trends\nHere is some extra commentary.",
			want: "Revenue Trends",
		},
		{
			name: "whitespace trimmed",
			raw:  "   Revenue Trends   ",
			want: "Revenue Trends",
		},
		{
			name: "short titles keep their punctuation",
			raw:  "Revenue overview.",
			want: "Revenue overview.",
		},
		{
			name: "empty reply",
			raw:  "  \n  ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTitle(tt.raw))
		})
	}
}

func TestCleanTitle_TruncatesAtWordBoundary(t *testing.T) {
	got := cleanTitle(strings.Repeat("alpha ", 20))
	assert.LessOrEqual(t, len(got), titleMaxLength)
	assert.Equal(t, strings.TrimSpace(strings.Repeat("alpha ", 13)), got)
}

func TestLoop_MaybeSynthesizeTitle_NamesFirstCompletion(t *testing.T) {
	f := newLoopFixture(t)
	completer := &fakeCompleter{text: `"Quarterly Revenue Trends"` + "\n"}
	f.rt.Completer = completer
	f.completions.count = 1
	env := testRunEnv(f)
	env.state.finalAnswer = "Revenue grew 12%."

	f.loop().maybeSynthesizeTitle(context.Background(), env)

	assert.Equal(t, map[string]string{"rep-1": "Quarterly Revenue Trends"}, f.reports.titles)

	reqs := completer.snapshotReqs()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].UserPrompt, "How did revenue trend last quarter?")
	assert.Contains(t, reqs[0].UserPrompt, "Revenue grew 12%.")
}

func TestLoop_MaybeSynthesizeTitle_SkipsLaterCompletions(t *testing.T) {
	f := newLoopFixture(t)
	completer := &fakeCompleter{text: "Should never be asked"}
	f.rt.Completer = completer
	f.completions.count = 2
	env := testRunEnv(f)

	f.loop().maybeSynthesizeTitle(context.Background(), env)

	assert.Empty(t, f.reports.titles)
	assert.Empty(t, completer.snapshotReqs(), "no model call for a report that already has turns")
}

func TestLoop_MaybeSynthesizeTitle_CompleterFailureLeavesDefault(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{err: errors.New("model unavailable")}
	f.completions.count = 1
	env := testRunEnv(f)

	f.loop().maybeSynthesizeTitle(context.Background(), env)

	assert.Empty(t, f.reports.titles)
}

func TestLoop_MaybeSynthesizeTitle_EmptyTitleLeavesDefault(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Completer = &fakeCompleter{text: `""`}
	f.completions.count = 1
	env := testRunEnv(f)

	f.loop().maybeSynthesizeTitle(context.Background(), env)

	assert.Empty(t, f.reports.titles)
}

func TestLoop_MaybeSynthesizeTitle_CountFailureLeavesDefault(t *testing.T) {
	f := newLoopFixture(t)
	completer := &fakeCompleter{text: "Revenue Trends"}
	f.rt.Completer = completer
	f.completions.countErr = errors.New("query timeout")
	env := testRunEnv(f)

	f.loop().maybeSynthesizeTitle(context.Background(), env)

	assert.Empty(t, f.reports.titles)
	assert.Empty(t, completer.snapshotReqs())
}
