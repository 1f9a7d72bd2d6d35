package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr string
	}{
		{name: "valid", mutate: func(*Input) {}},
		{
			name:    "missing organization",
			mutate:  func(in *Input) { in.OrganizationID = "" },
			wantErr: "organization id",
		},
		{
			name:    "missing execution",
			mutate:  func(in *Input) { in.AgentExecutionID = "" },
			wantErr: "agent execution id",
		},
		{
			name:    "blank user message",
			mutate:  func(in *Input) { in.UserMessage = " \n\t" },
			wantErr: "user message",
		},
		{
			name: "empty catalog",
			mutate: func(in *Input) {
				in.ResearchTools = nil
				in.ActionTools = nil
			},
			wantErr: "tool catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput()
			tt.mutate(in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputRequest_CatalogShape(t *testing.T) {
	in := testInput()
	in.ActionTools = nil

	req, err := in.Request(GenerationConfig{Model: "quarry-planner-large"})
	require.NoError(t, err)

	var catalog map[string][]tools.Descriptor
	require.NoError(t, json.Unmarshal([]byte(req.CatalogJSON), &catalog))

	require.Contains(t, catalog, "research")
	require.Contains(t, catalog, "action")
	require.Len(t, catalog["research"], 1)
	assert.Equal(t, "execute_query", catalog["research"][0].Name)
	assert.NotNil(t, catalog["action"], "missing side still encodes as an empty list")
	assert.Empty(t, catalog["action"])

	assert.Equal(t, "comp-1", req.CompletionID)
	assert.Equal(t, "exec-1", req.AgentExecutionID)
	assert.Equal(t, "quarry-planner-large", req.Config.Model)
}

func TestInputUserPrompt_SectionsAndFallbacks(t *testing.T) {
	in := testInput()
	in.ExternalPlatform = "slack"
	in.Schemas = "### sales\nmonth, revenue"
	in.Files = []models.UploadedFile{
		{ID: "f-1", Name: "targets.csv", ContentType: "text/csv"},
	}
	in.LastObservation = &models.ToolObservation{
		ExecutionNumber: 1,
		ToolName:        "execute_query",
		Observation:     &models.Observation{Summary: "12 rows, revenue peaks in March"},
	}
	in.PastObservations = []map[string]any{
		{"execution_number": 1, "tool_name": "execute_query", "summary": "12 rows, revenue peaks in March"},
	}

	prompt := in.UserPrompt()

	assert.Contains(t, prompt, "## User Question\nShow me revenue by month")
	assert.Contains(t, prompt, "**Mode:** analyst")
	assert.Contains(t, prompt, "**Platform:** slack")
	assert.Contains(t, prompt, "### sales")
	assert.Contains(t, prompt, "No prior conversation.")
	assert.Contains(t, prompt, "targets.csv")
	assert.Contains(t, prompt, "revenue peaks in March")
	assert.Contains(t, prompt, "Latest: execute_query")
	assert.Contains(t, prompt, "## Your Task")

	// Empty optional sections disappear instead of rendering headers.
	assert.NotContains(t, prompt, "## Metadata Resources")
	assert.NotContains(t, prompt, "## Entities")
}

func TestInputUserPrompt_NoObservationsYet(t *testing.T) {
	prompt := testInput().UserPrompt()
	assert.Contains(t, prompt, "No tools have run yet.")
}

func TestInputSystemPrompt(t *testing.T) {
	in := testInput()
	in.Instructions = "## Organization Instructions\nPrefer fiscal-year groupings."

	prompt := in.SystemPrompt()
	assert.Contains(t, prompt, "planning engine")
	assert.Contains(t, prompt, `"plan_type": "research" | "action"`)
	assert.Contains(t, prompt, "Prefer fiscal-year groupings.")
}
