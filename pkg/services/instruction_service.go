package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/pkg/models"
)

// InstructionService manages organization-scoped instructions. User-authored
// instructions activate immediately; suggested ones land as drafts until
// someone promotes them.
type InstructionService struct {
	client *ent.Client
}

// NewInstructionService creates a new InstructionService
func NewInstructionService(client *ent.Client) *InstructionService {
	return &InstructionService{client: client}
}

// CreateInstruction adds an instruction for an organization.
func (s *InstructionService) CreateInstruction(httpCtx context.Context, req models.CreateInstructionRequest) (*ent.Instruction, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.Text == "" {
		return nil, NewValidationError("text", "required")
	}

	source := instruction.SourceUser
	if req.Source != "" {
		source = instruction.Source(req.Source)
		if err := instruction.SourceValidator(source); err != nil {
			return nil, NewValidationError("source", err.Error())
		}
	}

	loadMode := instruction.LoadModeAlways
	if req.LoadMode != "" {
		loadMode = instruction.LoadMode(req.LoadMode)
		if err := instruction.LoadModeValidator(loadMode); err != nil {
			return nil, NewValidationError("load_mode", err.Error())
		}
	}

	status := instruction.StatusActive
	if source == instruction.SourceSuggested {
		status = instruction.StatusDraft
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Instruction.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(req.OrganizationID).
		SetText(req.Text).
		SetLoadMode(loadMode).
		SetStatus(status).
		SetSource(source).
		SetCreatedAt(time.Now())

	if req.Category != "" {
		builder = builder.SetCategory(req.Category)
	}
	if req.AgentExecutionID != "" {
		builder = builder.SetAgentExecutionID(req.AgentExecutionID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instruction: %w", err)
	}

	return created, nil
}

// GetInstruction retrieves an instruction scoped to an organization.
func (s *InstructionService) GetInstruction(ctx context.Context, instructionID, organizationID string) (*ent.Instruction, error) {
	inst, err := s.client.Instruction.Query().
		Where(
			instruction.IDEQ(instructionID),
			instruction.OrganizationIDEQ(organizationID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get instruction: %w", err)
	}

	return inst, nil
}

// ListInstructions retrieves an organization's instructions, newest first,
// narrowed by the optional filters.
func (s *InstructionService) ListInstructions(ctx context.Context, organizationID string, filters models.InstructionFilters) ([]*ent.Instruction, error) {
	if organizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}

	query := s.client.Instruction.Query().
		Where(instruction.OrganizationIDEQ(organizationID))

	if filters.Status != "" {
		status := instruction.Status(filters.Status)
		if err := instruction.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(instruction.StatusEQ(status))
	}
	if filters.LoadMode != "" {
		loadMode := instruction.LoadMode(filters.LoadMode)
		if err := instruction.LoadModeValidator(loadMode); err != nil {
			return nil, NewValidationError("load_mode", err.Error())
		}
		query = query.Where(instruction.LoadModeEQ(loadMode))
	}
	if filters.Source != "" {
		source := instruction.Source(filters.Source)
		if err := instruction.SourceValidator(source); err != nil {
			return nil, NewValidationError("source", err.Error())
		}
		query = query.Where(instruction.SourceEQ(source))
	}

	instructions, err := query.
		Order(ent.Desc(instruction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructions: %w", err)
	}

	return instructions, nil
}

// ActiveInstructions retrieves the active instructions the context hub loads
// for an organization, oldest first so long-standing guidance renders before
// recent additions.
func (s *InstructionService) ActiveInstructions(ctx context.Context, organizationID string) ([]*ent.Instruction, error) {
	instructions, err := s.client.Instruction.Query().
		Where(
			instruction.OrganizationIDEQ(organizationID),
			instruction.StatusEQ(instruction.StatusActive),
		).
		Order(ent.Asc(instruction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active instructions: %w", err)
	}

	return instructions, nil
}

// UpdateInstruction patches an instruction; nil request fields are left
// untouched.
func (s *InstructionService) UpdateInstruction(httpCtx context.Context, instructionID, organizationID string, req models.UpdateInstructionRequest) (*ent.Instruction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inst, err := s.GetInstruction(ctx, instructionID, organizationID)
	if err != nil {
		return nil, err
	}

	builder := inst.Update()

	if req.Text != nil {
		if *req.Text == "" {
			return nil, NewValidationError("text", "required")
		}
		builder = builder.SetText(*req.Text)
	}
	if req.Category != nil {
		builder = builder.SetCategory(*req.Category)
	}
	if req.LoadMode != nil {
		loadMode := instruction.LoadMode(*req.LoadMode)
		if err := instruction.LoadModeValidator(loadMode); err != nil {
			return nil, NewValidationError("load_mode", err.Error())
		}
		builder = builder.SetLoadMode(loadMode)
	}
	if req.Status != nil {
		status := instruction.Status(*req.Status)
		if err := instruction.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		builder = builder.SetStatus(status)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update instruction: %w", err)
	}

	return updated, nil
}

// ArchiveInstruction retires an instruction without deleting its history.
func (s *InstructionService) ArchiveInstruction(httpCtx context.Context, instructionID, organizationID string) (*ent.Instruction, error) {
	archived := string(instruction.StatusArchived)
	return s.UpdateInstruction(httpCtx, instructionID, organizationID, models.UpdateInstructionRequest{
		Status: &archived,
	})
}

// CreateSuggestedDrafts persists a batch of suggestion-agent drafts with
// their provenance.
func (s *InstructionService) CreateSuggestedDrafts(httpCtx context.Context, organizationID, executionID string, texts []string) ([]*ent.Instruction, error) {
	drafts := make([]*ent.Instruction, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}
		draft, err := s.CreateInstruction(httpCtx, models.CreateInstructionRequest{
			OrganizationID:   organizationID,
			Text:             text,
			Source:           string(instruction.SourceSuggested),
			LoadMode:         string(instruction.LoadModeIntelligent),
			AgentExecutionID: executionID,
		})
		if err != nil {
			return drafts, err
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}
