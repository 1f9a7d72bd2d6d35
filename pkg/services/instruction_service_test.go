package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/pkg/models"
	testdb "github.com/quarryhq/quarry/test/database"
)

func TestInstructionService_CreateInstruction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInstructionService(client.Client)
	ctx := context.Background()

	t.Run("user instructions activate immediately", func(t *testing.T) {
		inst, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
			OrganizationID: testOrgID,
			Text:           "Always report revenue net of refunds",
			Category:       "metrics",
		})
		require.NoError(t, err)
		assert.Equal(t, instruction.StatusActive, inst.Status)
		assert.Equal(t, instruction.SourceUser, inst.Source)
		assert.Equal(t, instruction.LoadModeAlways, inst.LoadMode)
		require.NotNil(t, inst.Category)
		assert.Equal(t, "metrics", *inst.Category)
	})

	t.Run("suggested instructions land as drafts", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)

		inst, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
			OrganizationID:   testOrgID,
			Text:             "Prefer the orders_v2 table over orders",
			Source:           "suggested",
			LoadMode:         "intelligent",
			AgentExecutionID: exec.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, instruction.StatusDraft, inst.Status)
		assert.Equal(t, instruction.SourceSuggested, inst.Source)
		assert.Equal(t, instruction.LoadModeIntelligent, inst.LoadMode)
		require.NotNil(t, inst.AgentExecutionID)
		assert.Equal(t, exec.ID, *inst.AgentExecutionID)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
			Text: "orphan guidance",
		})
		requireValidationError(t, err, "organization_id")

		_, err = service.CreateInstruction(ctx, models.CreateInstructionRequest{
			OrganizationID: testOrgID,
		})
		requireValidationError(t, err, "text")

		_, err = service.CreateInstruction(ctx, models.CreateInstructionRequest{
			OrganizationID: testOrgID,
			Text:           "guidance",
			Source:         "oracle",
		})
		requireValidationError(t, err, "source")

		_, err = service.CreateInstruction(ctx, models.CreateInstructionRequest{
			OrganizationID: testOrgID,
			Text:           "guidance",
			LoadMode:       "sometimes",
		})
		requireValidationError(t, err, "load_mode")
	})
}

func TestInstructionService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInstructionService(client.Client)
	ctx := context.Background()

	first, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
		OrganizationID: testOrgID,
		Text:           "Fiscal year starts in February",
	})
	require.NoError(t, err)

	second, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
		OrganizationID: testOrgID,
		Text:           "Exclude internal accounts from user counts",
		LoadMode:       "intelligent",
	})
	require.NoError(t, err)

	draft, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
		OrganizationID: testOrgID,
		Text:           "Proposed: break revenue down by region",
		Source:         "suggested",
	})
	require.NoError(t, err)

	_, err = service.CreateInstruction(ctx, models.CreateInstructionRequest{
		OrganizationID: "org-other",
		Text:           "Different tenant",
	})
	require.NoError(t, err)

	t.Run("get is organization scoped", func(t *testing.T) {
		found, err := service.GetInstruction(ctx, first.ID, testOrgID)
		require.NoError(t, err)
		assert.Equal(t, first.Text, found.Text)

		_, err = service.GetInstruction(ctx, first.ID, "org-other")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list is newest first with filters", func(t *testing.T) {
		all, err := service.ListInstructions(ctx, testOrgID, models.InstructionFilters{})
		require.NoError(t, err)
		require.Len(t, all, 3)

		drafts, err := service.ListInstructions(ctx, testOrgID, models.InstructionFilters{Status: "draft"})
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, draft.ID, drafts[0].ID)

		intelligent, err := service.ListInstructions(ctx, testOrgID, models.InstructionFilters{LoadMode: "intelligent"})
		require.NoError(t, err)
		require.Len(t, intelligent, 2)

		suggested, err := service.ListInstructions(ctx, testOrgID, models.InstructionFilters{Source: "suggested"})
		require.NoError(t, err)
		require.Len(t, suggested, 1)

		_, err = service.ListInstructions(ctx, testOrgID, models.InstructionFilters{Status: "retired"})
		requireValidationError(t, err, "status")
	})

	t.Run("active instructions render oldest first and skip drafts", func(t *testing.T) {
		active, err := service.ActiveInstructions(ctx, testOrgID)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, first.ID, active[0].ID)
		assert.Equal(t, second.ID, active[1].ID)
	})
}

func TestInstructionService_UpdateInstruction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInstructionService(client.Client)
	ctx := context.Background()

	create := func(t *testing.T) *ent.Instruction {
		t.Helper()
		inst, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
			OrganizationID: testOrgID,
			Text:           "Original guidance",
			Category:       "metrics",
		})
		require.NoError(t, err)
		return inst
	}

	t.Run("patches only the provided fields", func(t *testing.T) {
		inst := create(t)
		text := "Revised guidance"

		updated, err := service.UpdateInstruction(ctx, inst.ID, testOrgID, models.UpdateInstructionRequest{
			Text: &text,
		})
		require.NoError(t, err)
		assert.Equal(t, "Revised guidance", updated.Text)
		require.NotNil(t, updated.Category)
		assert.Equal(t, "metrics", *updated.Category)
		assert.Equal(t, instruction.StatusActive, updated.Status)
	})

	t.Run("promotes a draft to active", func(t *testing.T) {
		exec := newExecutionFixture(t, client.Client)
		drafts, err := service.CreateSuggestedDrafts(ctx, testOrgID, exec.ID, []string{"Use fiscal quarters"})
		require.NoError(t, err)
		require.Len(t, drafts, 1)

		status := "active"
		promoted, err := service.UpdateInstruction(ctx, drafts[0].ID, testOrgID, models.UpdateInstructionRequest{
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, instruction.StatusActive, promoted.Status)
		assert.Equal(t, instruction.SourceSuggested, promoted.Source)
	})

	t.Run("rejects blanking the text", func(t *testing.T) {
		inst := create(t)
		empty := ""

		_, err := service.UpdateInstruction(ctx, inst.ID, testOrgID, models.UpdateInstructionRequest{
			Text: &empty,
		})
		requireValidationError(t, err, "text")
	})

	t.Run("wrong organization cannot update", func(t *testing.T) {
		inst := create(t)
		text := "hijacked"

		_, err := service.UpdateInstruction(ctx, inst.ID, "org-other", models.UpdateInstructionRequest{
			Text: &text,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInstructionService_ArchiveInstruction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInstructionService(client.Client)
	ctx := context.Background()

	inst, err := service.CreateInstruction(ctx, models.CreateInstructionRequest{
		OrganizationID: testOrgID,
		Text:           "Soon to retire",
	})
	require.NoError(t, err)

	archived, err := service.ArchiveInstruction(ctx, inst.ID, testOrgID)
	require.NoError(t, err)
	assert.Equal(t, instruction.StatusArchived, archived.Status)

	active, err := service.ActiveInstructions(ctx, testOrgID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestInstructionService_CreateSuggestedDrafts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInstructionService(client.Client)
	ctx := context.Background()

	exec := newExecutionFixture(t, client.Client)

	drafts, err := service.CreateSuggestedDrafts(ctx, testOrgID, exec.ID, []string{
		"Use week-over-week deltas for traffic",
		"",
		"Treat trials as a separate cohort",
	})
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	for _, draft := range drafts {
		assert.Equal(t, instruction.StatusDraft, draft.Status)
		assert.Equal(t, instruction.SourceSuggested, draft.Source)
		assert.Equal(t, instruction.LoadModeIntelligent, draft.LoadMode)
		require.NotNil(t, draft.AgentExecutionID)
		assert.Equal(t, exec.ID, *draft.AgentExecutionID)
	}

	none, err := service.CreateSuggestedDrafts(ctx, testOrgID, uuid.New().String(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
