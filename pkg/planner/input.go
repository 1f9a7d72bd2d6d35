package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/tools"
)

// ErrInvalidInput marks an input that cannot be turned into a planning call.
// The loop classifies it separately from decode failures.
var ErrInvalidInput = errors.New("invalid planner input")

// Input aggregates everything one planning call sees. The context hub
// renders each section to its tagged text form; the input only assembles
// them into prompts and the catalog payload.
type Input struct {
	OrganizationID   string
	CompletionID     string
	AgentExecutionID string

	// UserMessage is the question driving this run.
	UserMessage string

	// Mode selects the planning posture; ExternalPlatform names where the
	// conversation happens (web, slack).
	Mode             string
	ExternalPlatform string

	// Rendered context sections.
	Instructions   string
	Schemas        string
	Messages       string
	Resources      string
	Code           string
	Mentions       string
	Entities       string
	HistorySummary string

	Files []models.UploadedFile

	// Observation feedback from earlier iterations.
	LastObservation  *models.ToolObservation
	PastObservations []map[string]any

	// Tool catalogs by plan type.
	ResearchTools []tools.Descriptor
	ActionTools   []tools.Descriptor
}

// Validate checks the fields without which planning cannot start.
func (in *Input) Validate() error {
	switch {
	case in.OrganizationID == "":
		return fmt.Errorf("%w: organization id is required", ErrInvalidInput)
	case in.AgentExecutionID == "":
		return fmt.Errorf("%w: agent execution id is required", ErrInvalidInput)
	case strings.TrimSpace(in.UserMessage) == "":
		return fmt.Errorf("%w: user message is empty", ErrInvalidInput)
	case len(in.ResearchTools) == 0 && len(in.ActionTools) == 0:
		return fmt.Errorf("%w: tool catalog is empty", ErrInvalidInput)
	}
	return nil
}

// Request assembles the wire-level planning request.
func (in *Input) Request(cfg GenerationConfig) (*PlanRequest, error) {
	catalog, err := in.catalogJSON()
	if err != nil {
		return nil, fmt.Errorf("encode tool catalog: %w", err)
	}
	return &PlanRequest{
		CompletionID:     in.CompletionID,
		AgentExecutionID: in.AgentExecutionID,
		SystemPrompt:     in.SystemPrompt(),
		UserPrompt:       in.UserPrompt(),
		CatalogJSON:      catalog,
		Config:           cfg,
	}, nil
}

func (in *Input) catalogJSON() (string, error) {
	research := in.ResearchTools
	if research == nil {
		research = []tools.Descriptor{}
	}
	action := in.ActionTools
	if action == nil {
		action = []tools.Descriptor{}
	}
	payload, err := json.Marshal(map[string][]tools.Descriptor{
		"research": research,
		"action":   action,
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

const plannerPersona = `You are the planning engine of an analytics assistant. One step at a time you decide how to answer a question about the organization's data: research the warehouse, build widgets and data blocks, or answer directly.`

const decisionFormatInstructions = `## Response Format
Respond with a single JSON object and nothing else:

{
  "plan_type": "research" | "action",
  "reasoning_message": "what you are doing and why (optional, shown to the user)",
  "assistant_message": "short progress note for the user (optional)",
  "analysis_complete": true | false,
  "final_answer": "the complete answer, only when analysis_complete is true",
  "action": {"name": "tool name", "type": "tool", "arguments": { ... }}
}

Rules:
- Pick exactly one tool per step, from the catalog matching your plan_type.
- Set analysis_complete to true only when no further tool work is needed.
- Put reasoning_message early in the object so it streams first.
- Never invent tool names or arguments that are not in the catalog.`

const planningTask = `## Your Task
Decide the next step. Research before acting when the schema context is not enough, reuse what earlier observations already established, and conclude with a complete final_answer as soon as the question is answered.`

// SystemPrompt composes the persona, the decision contract, and the
// organization's instructions.
func (in *Input) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(plannerPersona)
	sb.WriteString("\n\n")
	sb.WriteString(decisionFormatInstructions)
	if in.Instructions != "" {
		sb.WriteString("\n\n")
		sb.WriteString(in.Instructions)
	}
	return sb.String()
}

// UserPrompt composes the question and every rendered context section.
func (in *Input) UserPrompt() string {
	var sb strings.Builder

	sb.WriteString(formatQuestionSection(in.UserMessage, in.Mode, in.ExternalPlatform))
	sb.WriteString("\n")
	sb.WriteString(formatContextSection("Conversation", in.Messages, "No prior conversation."))
	sb.WriteString("\n")
	sb.WriteString(formatContextSection("Data Schemas", in.Schemas, "No schema context available."))
	sb.WriteString("\n")
	if in.Resources != "" {
		sb.WriteString(formatContextSection("Metadata Resources", in.Resources, ""))
		sb.WriteString("\n")
	}
	if in.Code != "" {
		sb.WriteString(formatContextSection("Code Context", in.Code, ""))
		sb.WriteString("\n")
	}
	if in.Mentions != "" {
		sb.WriteString(formatContextSection("Mentions", in.Mentions, ""))
		sb.WriteString("\n")
	}
	if in.Entities != "" {
		sb.WriteString(formatContextSection("Entities", in.Entities, ""))
		sb.WriteString("\n")
	}
	if in.HistorySummary != "" {
		sb.WriteString(formatContextSection("History Summary", in.HistorySummary, ""))
		sb.WriteString("\n")
	}
	if len(in.Files) > 0 {
		sb.WriteString(formatFilesSection(in.Files))
		sb.WriteString("\n")
	}
	sb.WriteString(formatObservationSection(in.LastObservation, in.PastObservations))
	sb.WriteString("\n")
	sb.WriteString(planningTask)

	return sb.String()
}

// formatQuestionSection builds the user question section.
func formatQuestionSection(message, mode, platform string) string {
	var sb strings.Builder
	sb.WriteString("## User Question\n")
	sb.WriteString(message)
	sb.WriteString("\n")
	if mode != "" || platform != "" {
		sb.WriteString("\n")
		if mode != "" {
			sb.WriteString("**Mode:** ")
			sb.WriteString(mode)
			sb.WriteString("\n")
		}
		if platform != "" {
			sb.WriteString("**Platform:** ")
			sb.WriteString(platform)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// formatContextSection wraps a pre-rendered context block into a titled
// section. The fallback is used when the content is empty; an empty fallback
// drops the section entirely.
func formatContextSection(title, content, fallback string) string {
	if content == "" {
		if fallback == "" {
			return ""
		}
		return "## " + title + "\n" + fallback + "\n"
	}
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	return sb.String()
}

// formatFilesSection lists the uploaded files the planner may reference.
func formatFilesSection(files []models.UploadedFile) string {
	var sb strings.Builder
	sb.WriteString("## Uploaded Files\n")
	for _, f := range files {
		sb.WriteString("- ")
		sb.WriteString(f.Name)
		if f.ContentType != "" {
			sb.WriteString(" (")
			sb.WriteString(f.ContentType)
			sb.WriteString(")")
		}
		if len(f.Schema) > 0 {
			payload, err := json.Marshal(f.Schema)
			if err == nil {
				sb.WriteString(" schema: ")
				sb.Write(payload)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatObservationSection renders earlier tool outcomes for the planner.
func formatObservationSection(last *models.ToolObservation, past []map[string]any) string {
	if last == nil && len(past) == 0 {
		return "## Tool Observations\nNo tools have run yet.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Tool Observations\n")
	if len(past) > 0 {
		payload, err := json.MarshalIndent(past, "", "  ")
		if err == nil {
			sb.WriteString("```json\n")
			sb.Write(payload)
			sb.WriteString("\n```\n")
		}
	}
	if last != nil && last.Observation != nil {
		sb.WriteString("\nLatest: ")
		sb.WriteString(last.ToolName)
		sb.WriteString(" -> ")
		sb.WriteString(last.Observation.Summary)
		sb.WriteString("\n")
	}
	return sb.String()
}
