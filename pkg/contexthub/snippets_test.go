package contexthub

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recallNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRecallSnippets_RanksBySimilarityAndRecord(t *testing.T) {
	corpus := []Snippet{
		{StepID: "exact", Columns: []string{"month", "revenue"}, Successes: 4, Feedback: 3, LastUsedAt: recallNow.AddDate(0, 0, -2)},
		{StepID: "partial", Columns: []string{"month", "cost"}, Successes: 1, Failures: 1, LastUsedAt: recallNow.AddDate(0, 0, -30)},
		{StepID: "unrelated", Columns: []string{"region"}, Successes: 5, LastUsedAt: recallNow},
		{StepID: "never-worked", Columns: []string{"month", "revenue"}, Failures: 2},
	}

	recalled := RecallSnippets([]string{"month", "revenue"}, corpus, recallNow, 5)

	require.Len(t, recalled, 2)
	assert.Equal(t, "exact", recalled[0].StepID)
	assert.Equal(t, "partial", recalled[1].StepID)
	// Perfect similarity, perfect record, positive feedback: near the
	// ceiling of the blend.
	assert.Greater(t, recalled[0].Score, 0.9)
	assert.Greater(t, recalled[0].Score, recalled[1].Score)
}

func TestRecallSnippets_TopK(t *testing.T) {
	var corpus []Snippet
	for _, id := range []string{"a", "b", "c", "d"} {
		corpus = append(corpus, Snippet{
			StepID: id, Columns: []string{"month"}, Successes: 1, LastUsedAt: recallNow,
		})
	}

	recalled := RecallSnippets([]string{"month"}, corpus, recallNow, 2)

	assert.Len(t, recalled, 2)
}

func TestRecallFailedSnippets_CarriesOneLineExcerpt(t *testing.T) {
	longError := "division by zero\n  in column 'growth'\n  " + strings.Repeat("trace frame ", 40)
	corpus := []Snippet{
		{StepID: "failed", Columns: []string{"month", "growth"}, Failures: 2, LastUsedAt: recallNow.AddDate(0, 0, -1), LastError: longError},
		{StepID: "fine", Columns: []string{"month", "growth"}, Successes: 3, LastUsedAt: recallNow},
	}

	recalled := RecallFailedSnippets([]string{"month", "growth"}, corpus, recallNow, 5)

	require.Len(t, recalled, 1)
	assert.Equal(t, "failed", recalled[0].StepID)
	assert.NotContains(t, recalled[0].ErrorExcerpt, "\n")
	assert.LessOrEqual(t, len(recalled[0].ErrorExcerpt), errorExcerptLimit)
	assert.True(t, strings.HasPrefix(recalled[0].ErrorExcerpt, "division by zero in column"))
}

func TestRecallFailedSnippets_SuccessHistoryDiscountsWarning(t *testing.T) {
	corpus := []Snippet{
		{StepID: "mostly-fine", Columns: []string{"month"}, Successes: 9, Failures: 1, LastUsedAt: recallNow},
		{StepID: "always-broken", Columns: []string{"month"}, Failures: 1, LastUsedAt: recallNow},
	}

	recalled := RecallFailedSnippets([]string{"month"}, corpus, recallNow, 5)

	require.Len(t, recalled, 2)
	assert.Equal(t, "always-broken", recalled[0].StepID)
}

func TestGeneratedColumns(t *testing.T) {
	dataModel := map[string]any{
		"type": "table",
		"columns": []any{
			map[string]any{"name": "month", "type": "date"},
			map[string]any{"name": "revenue"},
			map[string]any{"type": "number"},
			"not a column",
		},
	}

	assert.Equal(t, []string{"month", "revenue"}, GeneratedColumns(dataModel))
	assert.Nil(t, GeneratedColumns(nil))
	assert.Nil(t, GeneratedColumns(map[string]any{"type": "table"}))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", oneLine("a\n  b\t\tc", 180))
	assert.Len(t, oneLine(strings.Repeat("x", 500), 180), 180)
	assert.Equal(t, "", oneLine("", 180))
}
