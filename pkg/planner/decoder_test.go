package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
)

const fullDecision = `{
  "plan_type": "action",
  "reasoning_message": "The schema covers revenue, so I can build the widget now.",
  "assistant_message": "Building the revenue widget.",
  "analysis_complete": false,
  "action": {
    "name": "create_widget",
    "type": "tool",
    "arguments": {"source": "warehouse", "query": "SELECT month, revenue FROM sales"}
  }
}`

// feedAll streams text into the decoder in fixed-size chunks, collecting
// every partial it yields.
func feedAll(dec *Decoder, text string, size int) []*models.PlannerDecision {
	var partials []*models.PlannerDecision
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		if p := dec.Feed(text[start:end]); p != nil {
			partials = append(partials, p)
		}
	}
	return partials
}

func TestDecoder_PartialsGrowMonotonically(t *testing.T) {
	dec := NewDecoder()
	partials := feedAll(dec, fullDecision, 7)
	require.NotEmpty(t, partials)

	prev := ""
	for _, p := range partials {
		// Reasoning only ever extends what came before.
		assert.True(t, strings.HasPrefix(p.ReasoningMessage, prev),
			"reasoning %q does not extend %q", p.ReasoningMessage, prev)
		prev = p.ReasoningMessage

		// Actions and metrics never appear in partials.
		assert.Nil(t, p.Action)
		assert.Nil(t, p.Metrics)
		assert.Nil(t, p.Error)
	}

	last := partials[len(partials)-1]
	assert.Equal(t, models.PlanTypeAction, last.PlanType)
	assert.Equal(t, "The schema covers revenue, so I can build the widget now.", last.ReasoningMessage)
	assert.Equal(t, "Building the revenue widget.", last.AssistantMessage)
}

func TestDecoder_FinalDecodesAction(t *testing.T) {
	dec := NewDecoder()
	feedAll(dec, fullDecision, 16)

	final, err := dec.Final()
	require.NoError(t, err)
	require.Nil(t, final.Error)

	assert.Equal(t, models.PlanTypeAction, final.PlanType)
	assert.False(t, final.AnalysisComplete)
	require.NotNil(t, final.Action)
	assert.Equal(t, "create_widget", final.Action.Name)
	assert.Equal(t, "warehouse", final.Action.Arguments["source"])
}

func TestDecoder_TruncatedPlanTypeNeverLeaks(t *testing.T) {
	dec := NewDecoder()

	// The cut lands mid-enum; closing the string yields "rese" which must
	// not surface as a plan type.
	p := dec.Feed(`{"plan_type": "rese`)
	assert.Nil(t, p)

	p = dec.Feed(`arch", "reasoning_message": "Checking the tables`)
	require.NotNil(t, p)
	assert.Equal(t, models.PlanTypeResearch, p.PlanType)
	assert.Equal(t, "Checking the tables", p.ReasoningMessage)
}

func TestDecoder_UnchangedContentYieldsNothing(t *testing.T) {
	dec := NewDecoder()

	p := dec.Feed(`{"plan_type": "research", "analysis_complete": false`)
	require.NotNil(t, p)

	// Whitespace and a null value do not advance the decoded content.
	assert.Nil(t, dec.Feed("  \n"))
	assert.Nil(t, dec.Feed(`, "final_answer":`))
}

func TestDecoder_FencedAndProseWrappedOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "markdown fence",
			text: "```json\n" + `{"plan_type": "research", "analysis_complete": true, "final_answer": "Done."}` + "\n```",
		},
		{
			name: "leading prose",
			text: `Here is my decision: {"plan_type": "research", "analysis_complete": true, "final_answer": "Done."}`,
		},
		{
			name: "trailing prose",
			text: `{"plan_type": "research", "analysis_complete": true, "final_answer": "Done."} I hope that helps.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder()
			dec.Feed(tt.text)
			final, err := dec.Final()
			require.NoError(t, err)
			require.Nil(t, final.Error)
			assert.True(t, final.AnalysisComplete)
			assert.Equal(t, "Done.", final.FinalAnswer)
		})
	}
}

func TestDecoder_EscapedQuotesInsideStrings(t *testing.T) {
	dec := NewDecoder()
	text := `{"plan_type": "research", "analysis_complete": true, "final_answer": "The \"sales\" table has 12 columns."}`
	feedAll(dec, text, 5)

	final, err := dec.Final()
	require.NoError(t, err)
	require.Nil(t, final.Error)
	assert.Equal(t, `The "sales" table has 12 columns.`, final.FinalAnswer)
}

func TestDecoder_FinalRejectsInvalidOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no json at all", text: "I cannot answer that."},
		{name: "stream cut mid-object", text: `{"plan_type": "research", "analysis_comp`},
		{name: "missing plan_type", text: `{"analysis_complete": true, "final_answer": "Done."}`},
		{name: "unknown plan_type", text: `{"plan_type": "explore", "analysis_complete": true}`},
		{name: "action without name", text: `{"plan_type": "action", "analysis_complete": false, "action": {"arguments": {}}}`},
		{name: "analysis_complete not boolean", text: `{"plan_type": "research", "analysis_complete": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder()
			dec.Feed(tt.text)
			final, err := dec.Final()
			require.NoError(t, err)
			require.NotNil(t, final.Error)
			assert.Equal(t, models.ErrCodeValidation, final.Error.Code)
			assert.NotEmpty(t, final.Error.Message)
		})
	}
}

func TestDecoder_FinalToleratesUnknownKeys(t *testing.T) {
	dec := NewDecoder()
	dec.Feed(`{"plan_type": "research", "analysis_complete": true, "final_answer": "Done.", "confidence": 0.9}`)

	final, err := dec.Final()
	require.NoError(t, err)
	assert.Nil(t, final.Error)
	assert.Equal(t, "Done.", final.FinalAnswer)
}

func TestCompleteFragment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "open object", in: `{"a": 1`, want: `{"a": 1}`},
		{name: "open string", in: `{"a": "hel`, want: `{"a": "hel"}`},
		{name: "dangling comma", in: `{"a": 1,`, want: `{"a": 1}`},
		{name: "dangling colon", in: `{"a":`, want: `{"a": null}`},
		{name: "nested array", in: `{"a": [1, 2`, want: `{"a": [1, 2]}`},
		{name: "trailing backslash", in: `{"a": "x\`, want: `{"a": "x"}`},
		{name: "balanced already", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "colon inside string stays", in: `{"a": "x:`, want: `{"a": "x:"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := completeFragment(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := completeFragment("no object here")
	assert.False(t, ok)
}

func TestExtractObject(t *testing.T) {
	got, ok := extractObject(`noise {"a": {"b": "}"}} trailing`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": "}"}}`, got)

	_, ok = extractObject(`{"a": {"b": 1}`)
	assert.False(t, ok, "unterminated object must not extract")
}
