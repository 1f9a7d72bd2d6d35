package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plannerv1 "github.com/quarryhq/quarry/proto"
)

func TestToProtoPlanRequest(t *testing.T) {
	temp := float32(0.2)
	maxTokens := int32(4096)
	req := &PlanRequest{
		CompletionID:     "comp-1",
		AgentExecutionID: "exec-1",
		SystemPrompt:     "system",
		UserPrompt:       "user",
		CatalogJSON:      `{"research":[],"action":[]}`,
		Config: GenerationConfig{
			Model:       "quarry-planner-large",
			Temperature: &temp,
			MaxTokens:   &maxTokens,
		},
	}

	proto := toProtoPlanRequest(req)
	assert.Equal(t, "comp-1", proto.CompletionId)
	assert.Equal(t, "exec-1", proto.AgentExecutionId)
	assert.Equal(t, "system", proto.SystemPrompt)
	assert.Equal(t, "user", proto.UserPrompt)
	assert.Equal(t, `{"research":[],"action":[]}`, proto.CatalogJson)

	require.NotNil(t, proto.Config)
	assert.Equal(t, "quarry-planner-large", proto.Config.Model)
	require.NotNil(t, proto.Config.Temperature)
	assert.Equal(t, float32(0.2), *proto.Config.Temperature)
	require.NotNil(t, proto.Config.MaxTokens)
	assert.Equal(t, int32(4096), *proto.Config.MaxTokens)
}

func TestToProtoConfig_OptionalFieldsStayUnset(t *testing.T) {
	proto := toProtoConfig(GenerationConfig{Model: "m"})
	assert.Equal(t, "m", proto.Model)
	assert.Nil(t, proto.Temperature)
	assert.Nil(t, proto.MaxTokens)
}

func TestFromProtoResponse(t *testing.T) {
	token := fromProtoResponse(&plannerv1.PlanResponse{
		Content: &plannerv1.PlanResponse_Token{Token: &plannerv1.TokenDelta{Text: `{"plan`}},
	})
	require.IsType(t, &TokenChunk{}, token)
	assert.Equal(t, `{"plan`, token.(*TokenChunk).Text)

	usage := fromProtoResponse(&plannerv1.PlanResponse{
		Content: &plannerv1.PlanResponse_Usage{Usage: &plannerv1.Usage{
			InputTokens:  950,
			OutputTokens: 120,
			TotalTokens:  1070,
		}},
	})
	require.IsType(t, &UsageChunk{}, usage)
	assert.Equal(t, int32(1070), usage.(*UsageChunk).TotalTokens)

	errChunk := fromProtoResponse(&plannerv1.PlanResponse{
		Content: &plannerv1.PlanResponse_Error{Error: &plannerv1.Error{
			Code:      "provider_overloaded",
			Message:   "upstream overloaded",
			Retryable: true,
		}},
	})
	require.IsType(t, &ErrorChunk{}, errChunk)
	assert.Equal(t, "provider_overloaded", errChunk.(*ErrorChunk).Code)
	assert.True(t, errChunk.(*ErrorChunk).Retryable)

	assert.Nil(t, fromProtoResponse(&plannerv1.PlanResponse{}), "empty oneof maps to no chunk")
}
