package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

// fakeClient scripts the chunk stream for one Plan call and captures the
// request it was given.
type fakeClient struct {
	chunks  []Chunk
	planErr error
	req     *PlanRequest
}

func (f *fakeClient) Plan(_ context.Context, req *PlanRequest) (<-chan Chunk, error) {
	f.req = req
	if f.planErr != nil {
		return nil, f.planErr
	}
	ch := make(chan Chunk, len(f.chunks))
	for _, c := range f.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeClient) Complete(context.Context, *CompleteRequest) (*CompleteResponse, error) {
	return &CompleteResponse{Text: "ok"}, nil
}

func (f *fakeClient) Close() error { return nil }

func tokenize(text string, size int) []Chunk {
	var chunks []Chunk
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, &TokenChunk{Text: text[start:end]})
	}
	return chunks
}

func testInput() *Input {
	return &Input{
		OrganizationID:   "org-1",
		CompletionID:     "comp-1",
		AgentExecutionID: "exec-1",
		UserMessage:      "Show me revenue by month",
		Mode:             "analyst",
		ResearchTools: []tools.Descriptor{
			{Name: "execute_query", Description: "Run a query", Category: tools.CategoryResearch},
		},
		ActionTools: []tools.Descriptor{
			{Name: "create_widget", Description: "Build a widget", Category: tools.CategoryAction},
		},
	}
}

func collectUpdates(t *testing.T, updates <-chan Update) (tokens int, partials []*PartialUpdate, final *FinalUpdate) {
	t.Helper()
	for u := range updates {
		switch v := u.(type) {
		case *TokenUpdate:
			assert.Nil(t, final, "no update may follow the final")
			tokens++
		case *PartialUpdate:
			assert.Nil(t, final, "no update may follow the final")
			partials = append(partials, v)
		case *FinalUpdate:
			require.Nil(t, final, "exactly one final per stream")
			final = v
		}
	}
	require.NotNil(t, final, "stream must end with a final update")
	return tokens, partials, final
}

func TestAdapter_StreamsDecision(t *testing.T) {
	client := &fakeClient{
		chunks: append(
			tokenize(fullDecision, 9),
			&UsageChunk{InputTokens: 1200, OutputTokens: 180, TotalTokens: 1380},
		),
	}
	adapter := NewAdapter(client, GenerationConfig{Model: "quarry-planner-large"}, nil)

	updates, err := adapter.Stream(context.Background(), testInput())
	require.NoError(t, err)

	tokens, partials, final := collectUpdates(t, updates)
	assert.Greater(t, tokens, 1, "raw tokens are forwarded")
	assert.NotEmpty(t, partials)

	decision := final.Decision
	require.Nil(t, decision.Error)
	assert.Equal(t, models.PlanTypeAction, decision.PlanType)
	require.NotNil(t, decision.Action)
	assert.Equal(t, "create_widget", decision.Action.Name)

	require.NotNil(t, decision.Metrics)
	assert.Equal(t, 1200, decision.Metrics.InputTokens)
	assert.Equal(t, 1380, decision.Metrics.TotalTokens)
	assert.GreaterOrEqual(t, decision.Metrics.LatencyMs, int64(0))

	// The request carried both catalogs and the assembled prompts.
	require.NotNil(t, client.req)
	assert.Equal(t, "exec-1", client.req.AgentExecutionID)
	assert.Contains(t, client.req.CatalogJSON, `"research"`)
	assert.Contains(t, client.req.CatalogJSON, `"create_widget"`)
	assert.Contains(t, client.req.UserPrompt, "Show me revenue by month")
	assert.Contains(t, client.req.SystemPrompt, "Response Format")
	assert.Equal(t, "quarry-planner-large", client.req.Config.Model)
}

func TestAdapter_InvalidInputFailsFast(t *testing.T) {
	client := &fakeClient{}
	adapter := NewAdapter(client, GenerationConfig{Model: "m"}, nil)

	in := testInput()
	in.UserMessage = "   "
	_, err := adapter.Stream(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, client.req, "no call is issued for invalid input")
}

func TestAdapter_ProviderErrorBecomesFinalDecision(t *testing.T) {
	client := &fakeClient{
		chunks: []Chunk{
			&TokenChunk{Text: `{"plan_type": "res`},
			&ErrorChunk{Code: "provider_overloaded", Message: "upstream overloaded", Retryable: true},
			&TokenChunk{Text: "never delivered"},
		},
	}
	adapter := NewAdapter(client, GenerationConfig{Model: "m"}, nil)

	updates, err := adapter.Stream(context.Background(), testInput())
	require.NoError(t, err)

	_, _, final := collectUpdates(t, updates)
	require.NotNil(t, final.Decision.Error)
	assert.Equal(t, "provider_overloaded", final.Decision.Error.Code)
	assert.Equal(t, "upstream overloaded", final.Decision.Error.Message)
}

func TestAdapter_MalformedOutputBecomesValidationError(t *testing.T) {
	client := &fakeClient{
		chunks: tokenize("I think the answer is forty-two.", 8),
	}
	adapter := NewAdapter(client, GenerationConfig{Model: "m"}, nil)

	updates, err := adapter.Stream(context.Background(), testInput())
	require.NoError(t, err)

	_, partials, final := collectUpdates(t, updates)
	assert.Empty(t, partials, "prose yields no typed partials")
	require.NotNil(t, final.Decision.Error)
	assert.Equal(t, models.ErrCodeValidation, final.Decision.Error.Code)
}

func TestAdapter_CancelledContextStopsPump(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{chunks: tokenize(fullDecision, 4)}
	adapter := NewAdapter(client, GenerationConfig{Model: "m"}, nil)

	// The stream must terminate either way: full delivery into the buffer
	// or an early pump exit once a send blocks against the dead context.
	updates, err := adapter.Stream(ctx, testInput())
	require.NoError(t, err)

	for range updates {
	}
}
