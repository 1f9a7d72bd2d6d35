package tools

import (
	"context"

	"github.com/quarryhq/quarry/pkg/mcp"
	"github.com/quarryhq/quarry/pkg/models"
)

// Scope identifies the run a tool executes inside. All fields are ids;
// tools reach the records behind them through collaborator interfaces.
type Scope struct {
	OrganizationID   string
	UserID           string
	ReportID         string
	CompletionID     string
	AgentExecutionID string
	ToolExecutionID  string
}

// ArtifactState tracks the artifacts the current action is building. The
// loop resets it before each artifact-creating tool. Ownership is split:
// stage handlers mint the ids and record maps, the tool seeds Query/Step
// before its first stage event and appends to Errors. Tools must not read
// handler-owned fields mid-run; the runtime stamps ids onto the terminal
// observation once the handlers have settled.
type ArtifactState struct {
	QueryID         string
	StepID          string
	VisualizationID string
	WidgetID        string

	Query         map[string]any
	Step          map[string]any
	Visualization map[string]any

	CreatedVisualizationIDs []string

	// Errors collects recoverable problems hit while building the widget,
	// surfaced to the caller as result_json.errors.
	Errors []string
}

// Reset clears everything accumulated by the previous action.
func (s *ArtifactState) Reset() {
	s.QueryID = ""
	s.StepID = ""
	s.VisualizationID = ""
	s.WidgetID = ""
	s.Query = nil
	s.Step = nil
	s.Visualization = nil
	s.CreatedVisualizationIDs = nil
	s.Errors = nil
}

// AddError records a recoverable problem. Nil-safe on the slice.
func (s *ArtifactState) AddError(msg string) {
	if msg == "" {
		return
	}
	s.Errors = append(s.Errors, msg)
}

// ErrorList returns the accumulated errors, never nil, for result payloads.
func (s *ArtifactState) ErrorList() []string {
	if s.Errors == nil {
		return []string{}
	}
	return s.Errors
}

// Platform is the collaborator surface for artifact side effects. Widgets,
// steps, visualizations, and queries live outside this service; the
// implementations mint ids, persist through their own channels, and emit the
// corresponding lifecycle events. Each method must be idempotent for a given
// (scope.ToolExecutionID, stage) pair since the stage dispatcher already
// deduplicates but crash-recovery may replay.
type Platform interface {
	// CreateDataModel handles the data_model_type_determined stage: it
	// creates the backing query and step for the chosen data model type and
	// fills state.QueryID, state.StepID, state.Query, state.Step.
	CreateDataModel(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error

	// AddColumn handles the column_added stage by appending a column to the
	// step's data model.
	AddColumn(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error

	// ConfigureSeries handles the series_configured stage. The first call
	// creates the visualization and fills state.VisualizationID; later
	// calls update it.
	ConfigureSeries(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error

	// PrepareWidget handles the widget_creation_needed stage by minting the
	// widget that will host the finished visualization.
	PrepareWidget(ctx context.Context, scope Scope, state *ArtifactState, detail map[string]any) error

	// FinalizeArtifacts runs once after the tool's terminal event, for any
	// run that triggered stage side effects. It publishes the finished
	// artifacts and records table usage from the step's final data model;
	// success distinguishes publish from failure bookkeeping.
	FinalizeArtifacts(ctx context.Context, scope Scope, state *ArtifactState, success bool) error
}

// DataSources is the tool-facing slice of the data-source gateway.
type DataSources interface {
	Execute(ctx context.Context, source, tool string, args map[string]any) (*mcp.Result, error)
	Query(ctx context.Context, source, query string) (*mcp.Result, error)
	Sources() []string
}

// ObservationSource exposes the run's accumulated tool observations.
type ObservationSource interface {
	History() []models.ToolObservation
	Last() *models.ToolObservation
}

// ContextRenderer is the tool-facing handle on the current context view.
// Section names follow the view's layout (schemas, instructions, resources,
// code, files, messages, observations, widgets, mentions, entities, queries).
type ContextRenderer interface {
	RenderSection(name string) string
}

// RuntimeContext carries the capabilities a tool may use during one
// execution. Cancellation arrives through the ctx passed to RunStream.
type RuntimeContext struct {
	Scope     Scope
	Sources   DataSources
	Platform  Platform
	Artifacts *ArtifactState
	History   ObservationSource
	View      ContextRenderer
	Files     []models.UploadedFile
}
