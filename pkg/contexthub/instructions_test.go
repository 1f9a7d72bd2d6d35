package contexthub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectInstructions_AlwaysModeIsUnconditional(t *testing.T) {
	candidates := []Instruction{
		{ID: "i1", Text: "Use fiscal calendars for all date math.", LoadMode: LoadModeAlways},
		{ID: "i2", Text: "Kubernetes pods restart on OOM.", LoadMode: LoadModeIntelligent},
	}

	selected := SelectInstructions("show me revenue by month", candidates, 5)

	require.Len(t, selected, 1)
	assert.Equal(t, "i1", selected[0].ID)
	assert.Equal(t, "always", selected[0].LoadReason)
}

func TestSelectInstructions_IntelligentMatching(t *testing.T) {
	candidates := []Instruction{
		{ID: "rev", Text: "Prefer net_revenue over gross for all revenue reporting.", LoadMode: LoadModeIntelligent},
		{ID: "pods", Text: "Kubernetes pods restart on OOM.", LoadMode: LoadModeIntelligent},
	}

	selected := SelectInstructions("show me revenue by month", candidates, 5)

	require.Len(t, selected, 1)
	assert.Equal(t, "rev", selected[0].ID)
	assert.Regexp(t, `^search_match:0\.\d\d$`, selected[0].LoadReason)
}

func TestSelectInstructions_SubstringCoverageCatchesCompoundWords(t *testing.T) {
	candidates := []Instruction{
		{ID: "arr", Text: "ARR rollups exclude intraquarter refunds.", LoadMode: LoadModeIntelligent},
	}

	// "quarter" never appears as its own token, only inside
	// "intraquarter"; Jaccard alone would score this zero.
	selected := SelectInstructions("quarter revenue", candidates, 5)

	require.Len(t, selected, 1)
	assert.Equal(t, "arr", selected[0].ID)
}

func TestSelectInstructions_TopKAndOrdering(t *testing.T) {
	candidates := []Instruction{
		{ID: "weak", Text: "Churn cohorts use the revenue snapshot table.", LoadMode: LoadModeIntelligent},
		{ID: "strong", Text: "Monthly revenue questions use the revenue_by_month view.", LoadMode: LoadModeIntelligent},
		{ID: "always", Text: "Timezone is UTC.", LoadMode: LoadModeAlways},
	}

	selected := SelectInstructions("monthly revenue", candidates, 1)

	require.Len(t, selected, 2)
	assert.Equal(t, "always", selected[0].ID)
	assert.Equal(t, "strong", selected[1].ID, "only the best intelligent match survives topK=1")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"stopwords and short tokens drop", "show me the revenue by month", []string{"revenue", "month"}},
		{"punctuation splits", "net_revenue, cost-of-goods!", []string{"net", "revenue", "cost", "goods"}},
		{"empty", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.input))
		})
	}
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, jaccard([]string{"a", "b"}, []string{"b", "a"}))
	assert.Equal(t, 0.0, jaccard([]string{"a"}, []string{"b"}))
	assert.Equal(t, 0.0, jaccard(nil, []string{"a"}))
	assert.InDelta(t, 1.0/3, jaccard([]string{"a", "b"}, []string{"b", "c"}), 1e-9)
}
