package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/toolexecution"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/contexthub"
	"github.com/quarryhq/quarry/pkg/events"
	"github.com/quarryhq/quarry/pkg/masking"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/planner"
	"github.com/quarryhq/quarry/pkg/services"
	"github.com/quarryhq/quarry/pkg/tools"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

type fakeExecutions struct {
	createReqs []models.CreateAgentExecutionRequest
	finishReqs []models.FinishAgentExecutionRequest
	createErr  error
	seqErr     error
	seq        int
}

func (f *fakeExecutions) CreateAgentExecution(_ context.Context, req models.CreateAgentExecutionRequest) (*ent.AgentExecution, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createReqs = append(f.createReqs, req)
	return &ent.AgentExecution{
		ID:             "exec-1",
		CompletionID:   req.CompletionID,
		ReportID:       req.ReportID,
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
	}, nil
}

func (f *fakeExecutions) NextSeq(_ context.Context, _ string) (int, error) {
	if f.seqErr != nil {
		return 0, f.seqErr
	}
	f.seq++
	return f.seq, nil
}

func (f *fakeExecutions) FinishExecution(_ context.Context, req models.FinishAgentExecutionRequest) (*ent.AgentExecution, error) {
	f.finishReqs = append(f.finishReqs, req)
	return &ent.AgentExecution{ID: req.AgentExecutionID}, nil
}

type fakeDecisions struct {
	saves   []models.SavePlanDecisionRequest
	saveErr error
}

func (f *fakeDecisions) SavePlanDecision(_ context.Context, req models.SavePlanDecisionRequest) (*ent.PlanDecision, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves = append(f.saves, req)
	return &ent.PlanDecision{ID: fmt.Sprintf("dec-%d", len(f.saves))}, nil
}

type fakeToolStore struct {
	startReqs  []models.StartToolExecutionRequest
	finishReqs []models.FinishToolExecutionRequest
	rows       map[string]*ent.ToolExecution
	startErr   error
	finishErr  error
}

func (f *fakeToolStore) StartToolExecution(_ context.Context, req models.StartToolExecutionRequest) (*ent.ToolExecution, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.startReqs = append(f.startReqs, req)
	row := &ent.ToolExecution{
		ID:               fmt.Sprintf("tool-%d", len(f.startReqs)),
		AgentExecutionID: req.AgentExecutionID,
		PlanDecisionID:   strPtr(req.PlanDecisionID),
		Seq:              req.Seq,
		ToolName:         req.ToolName,
		ToolAction:       strPtr(req.ToolAction),
		Arguments:        req.Arguments,
		Status:           toolexecution.StatusInProgress,
		AttemptNumber:    req.AttemptNumber,
		MaxRetries:       req.MaxRetries,
		StartedAt:        time.Now(),
	}
	if f.rows == nil {
		f.rows = make(map[string]*ent.ToolExecution)
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeToolStore) FinishToolExecution(_ context.Context, req models.FinishToolExecutionRequest) (*ent.ToolExecution, error) {
	if f.finishErr != nil {
		return nil, f.finishErr
	}
	f.finishReqs = append(f.finishReqs, req)
	row, ok := f.rows[req.ToolExecutionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	row.Status = toolexecution.StatusError
	if req.Success {
		row.Status = toolexecution.StatusSuccess
	}
	row.Success = req.Success
	row.ResultSummary = strPtr(req.ResultSummary)
	row.ResultJSON = req.ResultJSON
	row.ErrorMessage = strPtr(req.ErrorMessage)
	row.CreatedWidgetID = strPtr(req.CreatedWidgetID)
	row.CreatedStepID = strPtr(req.CreatedStepID)
	row.CreatedVisualizationIds = req.CreatedVisualizationIDs
	now := time.Now()
	ms := int(now.Sub(row.StartedAt).Milliseconds())
	row.CompletedAt = &now
	row.DurationMs = &ms
	return row, nil
}

type fakeToolHistory struct {
	prev *ent.ToolExecution
	err  error
}

func (f *fakeToolHistory) PreviousToolInReport(_ context.Context, _ string, _ time.Time) (*ent.ToolExecution, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.prev == nil {
		return nil, services.ErrNotFound
	}
	return f.prev, nil
}

type fakeSnapshots struct {
	saves []models.SaveContextSnapshotRequest
}

func (f *fakeSnapshots) SaveContextSnapshot(_ context.Context, req models.SaveContextSnapshotRequest) (*ent.ContextSnapshot, error) {
	f.saves = append(f.saves, req)
	return &ent.ContextSnapshot{ID: fmt.Sprintf("snap-%d", len(f.saves))}, nil
}

func (f *fakeSnapshots) kinds() []string {
	out := make([]string, 0, len(f.saves))
	for _, s := range f.saves {
		out = append(out, s.Kind)
	}
	return out
}

type fakeBlocks struct {
	upserts      []models.UpsertDecisionBlockRequest
	annotations  []models.AnnotateToolBlockRequest
	markErrors   []string
	stoppedExecs []string
}

func (f *fakeBlocks) UpsertDecisionBlock(_ context.Context, req models.UpsertDecisionBlockRequest) (*ent.CompletionBlock, bool, error) {
	f.upserts = append(f.upserts, req)
	return &ent.CompletionBlock{
		ID:             fmt.Sprintf("blk-%d", req.BlockIndex),
		CompletionID:   req.CompletionID,
		BlockIndex:     req.BlockIndex,
		LoopIndex:      req.LoopIndex,
		SourceType:     completionblock.SourceTypeDecision,
		PlanDecisionID: strPtr(req.PlanDecisionID),
		Title:          req.Title,
		Status:         completionblock.Status(req.Status),
		Icon:           req.Icon,
		Content:        strPtr(req.Content),
		Reasoning:      strPtr(req.Reasoning),
	}, true, nil
}

func (f *fakeBlocks) AnnotateToolBlock(_ context.Context, req models.AnnotateToolBlockRequest) (*ent.CompletionBlock, bool, error) {
	f.annotations = append(f.annotations, req)
	return &ent.CompletionBlock{
		ID:              fmt.Sprintf("blk-%d", req.BlockIndex),
		CompletionID:    req.CompletionID,
		BlockIndex:      req.BlockIndex,
		LoopIndex:       req.LoopIndex,
		SourceType:      completionblock.SourceTypeDecision,
		PlanDecisionID:  strPtr(req.PlanDecisionID),
		ToolExecutionID: strPtr(req.ToolExecutionID),
		Status:          completionblock.Status(req.Status),
	}, true, nil
}

func (f *fakeBlocks) ListExecutionBlocks(_ context.Context, _ string) ([]*ent.CompletionBlock, error) {
	return nil, nil
}

func (f *fakeBlocks) MarkErrorOnLatestBlock(_ context.Context, _ string, msg string) (*ent.CompletionBlock, error) {
	f.markErrors = append(f.markErrors, msg)
	return nil, services.ErrNotFound
}

func (f *fakeBlocks) MarkInFlightStopped(_ context.Context, executionID string) (int, error) {
	f.stoppedExecs = append(f.stoppedExecs, executionID)
	return 1, nil
}

type statusUpdate struct {
	completionID string
	status       string
	errorMessage string
}

type fakeCompletionStore struct {
	statuses []statusUpdate
	contents []string
	count    int
	countErr error
}

func (f *fakeCompletionStore) UpdateStatus(_ context.Context, completionID, status, errorMessage string) (*ent.Completion, error) {
	f.statuses = append(f.statuses, statusUpdate{completionID, status, errorMessage})
	return &ent.Completion{ID: completionID}, nil
}

func (f *fakeCompletionStore) UpdateContent(_ context.Context, completionID, content, _ string) (*ent.Completion, error) {
	f.contents = append(f.contents, content)
	return &ent.Completion{ID: completionID}, nil
}

func (f *fakeCompletionStore) CountForReport(_ context.Context, _ string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

type fakeReports struct {
	titles map[string]string
}

func (f *fakeReports) SetTitle(_ context.Context, reportID, title string) (*ent.Report, error) {
	if f.titles == nil {
		f.titles = make(map[string]string)
	}
	f.titles[reportID] = title
	return &ent.Report{ID: reportID, Title: &title}, nil
}

type fakeInstructions struct {
	drafts    [][]string
	createErr error
}

func (f *fakeInstructions) CreateSuggestedDrafts(_ context.Context, _, _ string, texts []string) ([]*ent.Instruction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.drafts = append(f.drafts, texts)
	rows := make([]*ent.Instruction, 0, len(texts))
	for i, text := range texts {
		rows = append(rows, &ent.Instruction{ID: fmt.Sprintf("inst-%d", i+1), Text: text})
	}
	return rows, nil
}

type fakeUsage struct {
	records []models.RecordTableUsageRequest
}

func (f *fakeUsage) RecordTableUsage(_ context.Context, req models.RecordTableUsageRequest) ([]*ent.TableUsage, error) {
	f.records = append(f.records, req)
	return nil, nil
}

type fakeSink struct {
	order []string

	decisionPartials    []events.DecisionPartialPayload
	decisionFinals      []events.DecisionFinalPayload
	blockUpserts        []events.BlockUpsertPayload
	blockDeltas         []events.BlockDeltaPayload
	toolStarteds        []events.ToolStartedPayload
	toolProgress        []events.ToolProgressPayload
	toolPartials        []events.ToolPartialPayload
	toolStdouts         []events.ToolStdoutPayload
	toolFinisheds       []events.ToolFinishedPayload
	plannerRetries      []events.PlannerRetryPayload
	completionStarteds  []events.CompletionStartedPayload
	completionFinisheds []events.CompletionFinishedPayload
	artifacts           []events.ArtifactPayload
	suggestStarteds     []events.SuggestPayload
	suggestPartials     []events.SuggestPayload
	suggestFinisheds    []events.SuggestPayload
}

func (f *fakeSink) PublishDecisionPartial(_ context.Context, p events.DecisionPartialPayload) error {
	f.order = append(f.order, events.EventTypeDecisionPartial)
	f.decisionPartials = append(f.decisionPartials, p)
	return nil
}

func (f *fakeSink) PublishDecisionFinal(_ context.Context, p events.DecisionFinalPayload) error {
	f.order = append(f.order, events.EventTypeDecisionFinal)
	f.decisionFinals = append(f.decisionFinals, p)
	return nil
}

func (f *fakeSink) PublishBlockUpsert(_ context.Context, p events.BlockUpsertPayload) error {
	f.order = append(f.order, events.EventTypeBlockUpsert)
	f.blockUpserts = append(f.blockUpserts, p)
	return nil
}

func (f *fakeSink) PublishBlockDelta(_ context.Context, p events.BlockDeltaPayload) error {
	f.order = append(f.order, events.EventTypeBlockDelta)
	f.blockDeltas = append(f.blockDeltas, p)
	return nil
}

func (f *fakeSink) PublishToolStarted(_ context.Context, p events.ToolStartedPayload) error {
	f.order = append(f.order, events.EventTypeToolStarted)
	f.toolStarteds = append(f.toolStarteds, p)
	return nil
}

func (f *fakeSink) PublishToolProgress(_ context.Context, p events.ToolProgressPayload) error {
	f.order = append(f.order, events.EventTypeToolProgress)
	f.toolProgress = append(f.toolProgress, p)
	return nil
}

func (f *fakeSink) PublishToolPartial(_ context.Context, p events.ToolPartialPayload) error {
	f.order = append(f.order, events.EventTypeToolPartial)
	f.toolPartials = append(f.toolPartials, p)
	return nil
}

func (f *fakeSink) PublishToolStdout(_ context.Context, p events.ToolStdoutPayload) error {
	f.order = append(f.order, events.EventTypeToolStdout)
	f.toolStdouts = append(f.toolStdouts, p)
	return nil
}

func (f *fakeSink) PublishToolFinished(_ context.Context, p events.ToolFinishedPayload) error {
	f.order = append(f.order, events.EventTypeToolFinished)
	f.toolFinisheds = append(f.toolFinisheds, p)
	return nil
}

func (f *fakeSink) PublishPlannerRetry(_ context.Context, p events.PlannerRetryPayload) error {
	f.order = append(f.order, events.EventTypePlannerRetry)
	f.plannerRetries = append(f.plannerRetries, p)
	return nil
}

func (f *fakeSink) PublishCompletionStarted(_ context.Context, p events.CompletionStartedPayload) error {
	f.order = append(f.order, events.EventTypeCompletionStarted)
	f.completionStarteds = append(f.completionStarteds, p)
	return nil
}

func (f *fakeSink) PublishCompletionFinished(_ context.Context, p events.CompletionFinishedPayload) error {
	f.order = append(f.order, events.EventTypeCompletionFinished)
	f.completionFinisheds = append(f.completionFinisheds, p)
	return nil
}

func (f *fakeSink) PublishArtifact(_ context.Context, p events.ArtifactPayload) error {
	f.order = append(f.order, p.Event)
	f.artifacts = append(f.artifacts, p)
	return nil
}

func (f *fakeSink) PublishSuggestStarted(_ context.Context, p events.SuggestPayload) error {
	f.order = append(f.order, events.EventTypeSuggestStarted)
	f.suggestStarteds = append(f.suggestStarteds, p)
	return nil
}

func (f *fakeSink) PublishSuggestPartial(_ context.Context, p events.SuggestPayload) error {
	f.order = append(f.order, events.EventTypeSuggestPartial)
	f.suggestPartials = append(f.suggestPartials, p)
	return nil
}

func (f *fakeSink) PublishSuggestFinished(_ context.Context, p events.SuggestPayload) error {
	f.order = append(f.order, events.EventTypeSuggestFinished)
	f.suggestFinisheds = append(f.suggestFinisheds, p)
	return nil
}

// indexOf returns the position of the first occurrence of event in order.
func indexOf(order []string, event string) int {
	for i, e := range order {
		if e == event {
			return i
		}
	}
	return -1
}

type scriptedPlanner struct {
	scripts [][]planner.Update
	inputs  []*planner.Input
}

func (p *scriptedPlanner) Stream(_ context.Context, in *planner.Input) (<-chan planner.Update, error) {
	call := len(p.inputs)
	p.inputs = append(p.inputs, in)
	var script []planner.Update
	if call < len(p.scripts) {
		script = p.scripts[call]
	}
	ch := make(chan planner.Update, len(script))
	for _, u := range script {
		ch <- u
	}
	close(ch)
	return ch, nil
}

type scriptedRunner struct {
	results []*tools.RunResult
	errs    []error
	events  [][]tools.Event
	names   []string
	args    []map[string]any
	hook    func(call int, rtc *tools.RuntimeContext)
}

func (r *scriptedRunner) Run(_ context.Context, name string, args map[string]any, rtc *tools.RuntimeContext, emit func(tools.Event)) (*tools.RunResult, error) {
	call := len(r.names)
	r.names = append(r.names, name)
	r.args = append(r.args, args)
	if r.hook != nil {
		r.hook(call, rtc)
	}
	if call < len(r.events) {
		for _, ev := range r.events[call] {
			emit(ev)
		}
	}
	if call < len(r.errs) && r.errs[call] != nil {
		return nil, r.errs[call]
	}
	if call < len(r.results) {
		return r.results[call], nil
	}
	return &tools.RunResult{Observation: models.Observation{Summary: "ok"}, Attempts: 1}, nil
}

type stubTool struct {
	meta tools.Metadata
}

func (t stubTool) Metadata() tools.Metadata { return t.meta }

func (t stubTool) RunStream(context.Context, map[string]any, *tools.RuntimeContext) <-chan tools.Event {
	ch := make(chan tools.Event)
	close(ch)
	return ch
}

type loopFixture struct {
	execs        *fakeExecutions
	decisions    *fakeDecisions
	toolStore    *fakeToolStore
	history      *fakeToolHistory
	snapshots    *fakeSnapshots
	blockStore   *fakeBlocks
	completions  *fakeCompletionStore
	reports      *fakeReports
	instructions *fakeInstructions
	scores       *fakeScores
	usage        *fakeUsage
	sink         *fakeSink
	plans        *scriptedPlanner
	runner       *scriptedRunner
	registry     *tools.Registry
	rt           *Runtime
}

// newLoopFixture wires a runtime over recording fakes. Completer stays nil
// so title, scoring, and suggestion goroutines never start and every run is
// single-threaded.
func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()

	registry := tools.NewRegistry(nil)
	require.NoError(t, registry.Register(stubTool{meta: tools.Metadata{
		Name:        "execute_query",
		Description: "Run SQL against the warehouse.",
		Category:    tools.CategoryResearch,
		MaxRetries:  2,
	}}))
	require.NoError(t, registry.Register(stubTool{meta: tools.Metadata{
		Name:        "create_widget",
		Description: "Build a widget from a query.",
		Category:    tools.CategoryAction,
	}}))
	require.NoError(t, registry.Register(stubTool{meta: tools.Metadata{
		Name:              "answer_question",
		Description:       "Answer from gathered context.",
		Category:          tools.CategoryBoth,
		ObservationPolicy: tools.ObserveOnSuccess,
	}}))

	f := &loopFixture{
		execs:        &fakeExecutions{},
		decisions:    &fakeDecisions{},
		toolStore:    &fakeToolStore{},
		history:      &fakeToolHistory{},
		snapshots:    &fakeSnapshots{},
		blockStore:   &fakeBlocks{},
		completions:  &fakeCompletionStore{},
		reports:      &fakeReports{},
		instructions: &fakeInstructions{},
		scores:       &fakeScores{},
		usage:        &fakeUsage{},
		sink:         &fakeSink{},
		plans:        &scriptedPlanner{},
		runner:       &scriptedRunner{},
		registry:     registry,
	}
	f.rt = &Runtime{
		Services: Services{
			Executions:   f.execs,
			Decisions:    f.decisions,
			Tools:        f.toolStore,
			ToolHistory:  f.history,
			Snapshots:    f.snapshots,
			Blocks:       f.blockStore,
			Completions:  f.completions,
			Reports:      f.reports,
			Instructions: f.instructions,
			Scores:       f.scores,
			Usage:        f.usage,
		},
		Planner:   f.plans,
		Registry:  registry,
		Runner:    f.runner,
		Sources:   contexthub.Sources{},
		Publisher: f.sink,
		Masker:    masking.NewService(nil, nil),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return f
}

func (f *loopFixture) loop() *Loop {
	return NewLoop(f.rt)
}

func (f *loopFixture) newRun() *Run {
	return NewRun(&ent.Completion{
		ID:             "comp-1",
		ReportID:       "rep-1",
		OrganizationID: "org-1",
		UserID:         "user-1",
		Status:         completion.StatusInProgress,
		Prompt:         map[string]any{"content": "How did revenue trend last quarter?"},
		CreatedAt:      time.Now(),
	})
}

func answerDecision(answer string) *models.PlannerDecision {
	return &models.PlannerDecision{
		PlanType:         models.PlanTypeResearch,
		AnalysisComplete: true,
		FinalAnswer:      answer,
	}
}

func actionDecision(pt models.PlanType, tool string, args map[string]any) *models.PlannerDecision {
	return &models.PlannerDecision{
		PlanType: pt,
		Action:   &models.PlanAction{Name: tool, Type: "tool", Arguments: args},
	}
}

func TestLoop_Run_DirectAnswer(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{{
		&planner.PartialUpdate{Decision: &models.PlannerDecision{
			PlanType:         models.PlanTypeResearch,
			ReasoningMessage: "Looking at revenue trends",
		}},
		&planner.FinalUpdate{Decision: &models.PlannerDecision{
			PlanType:         models.PlanTypeResearch,
			ReasoningMessage: "Looking at revenue trends",
			AnalysisComplete: true,
			FinalAnswer:      "Revenue grew 12% quarter over quarter.",
		}},
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.execs.createReqs, 1)
	created := f.execs.createReqs[0]
	assert.Equal(t, "comp-1", created.CompletionID)
	assert.Equal(t, "org-1", created.OrganizationID)
	assert.Equal(t, config.DefaultStepLimit, created.Config["step_limit"])

	require.Len(t, f.plans.inputs, 1)
	in := f.plans.inputs[0]
	assert.Equal(t, "How did revenue trend last quarter?", in.UserMessage)
	assert.Nil(t, in.LastObservation)
	assert.NotEmpty(t, in.ResearchTools, "research catalog must reach the planner")
	assert.NotEmpty(t, in.ActionTools, "action catalog must reach the planner")

	// Skeleton, partial, final all land on the same pinned row.
	require.Len(t, f.decisions.saves, 3)
	seq := f.decisions.saves[0].Seq
	assert.Equal(t, seq, f.decisions.saves[1].Seq)
	assert.Equal(t, seq, f.decisions.saves[2].Seq)
	assert.True(t, f.decisions.saves[2].AnalysisComplete)
	assert.Equal(t, "Revenue grew 12% quarter over quarter.", f.decisions.saves[2].FinalAnswer)

	// Every emitted frame carries its own seq; the rows alone keep the pin.
	require.Len(t, f.sink.decisionPartials, 1)
	assert.Greater(t, f.sink.decisionPartials[0].Seq, seq)
	require.Len(t, f.sink.blockDeltas, 1)
	assert.Greater(t, f.sink.blockDeltas[0].Seq, seq)
	assert.NotEqual(t, f.sink.decisionPartials[0].Seq, f.sink.blockDeltas[0].Seq)
	assert.Equal(t, "reasoning", f.sink.blockDeltas[0].Data.Field)
	assert.Equal(t, "Looking at revenue trends", f.sink.blockDeltas[0].Data.Delta)
	require.Len(t, f.sink.decisionFinals, 1)
	assert.Greater(t, f.sink.decisionFinals[0].Seq, f.sink.decisionPartials[0].Seq)
	assert.Equal(t, "dec-1", f.sink.decisionFinals[0].Data.PlanDecisionID)
	assert.True(t, f.sink.decisionFinals[0].Data.AnalysisComplete)

	require.NotEmpty(t, f.sink.order)
	assert.Equal(t, events.EventTypeCompletionStarted, f.sink.order[0])
	assert.Equal(t, events.EventTypeCompletionFinished, f.sink.order[len(f.sink.order)-1])
	require.Len(t, f.sink.completionStarteds, 1)
	assert.Equal(t, "rep-1", f.sink.completionStarteds[0].Data.ReportID)
	assert.Equal(t, completion.StatusInProgress, f.sink.completionStarteds[0].Data.Status)
	require.Len(t, f.sink.completionFinisheds, 1)
	assert.Equal(t, completion.StatusCompleted, f.sink.completionFinisheds[0].Data.Status)

	assert.Equal(t, []string{"initial", "pre_tool", "final"}, f.snapshots.kinds())
	assert.Equal(t, 1, f.snapshots.saves[2].LoopIndex, "final snapshot records the iteration count")

	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "success", f.execs.finishReqs[0].Status)
	require.Len(t, f.completions.statuses, 1)
	assert.Equal(t, statusUpdate{"comp-1", string(completion.StatusCompleted), ""}, f.completions.statuses[0])
	assert.NotEmpty(t, f.completions.contents, "final rebuild writes the completion body")
}

func TestLoop_Run_ToolThenAnswer(t *testing.T) {
	f := newLoopFixture(t)
	args := map[string]any{"query": "select region, sum(amount) from orders group by 1"}
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", args)}},
		{&planner.FinalUpdate{Decision: answerDecision("The west region led all quarters.")}},
	}
	f.runner.results = []*tools.RunResult{{
		Observation: models.Observation{Summary: "4 rows returned"},
		Output:      map[string]any{"columns": []any{"region", "sum"}},
		Attempts:    1,
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.toolStore.startReqs, 1)
	start := f.toolStore.startReqs[0]
	assert.Equal(t, "exec-1", start.AgentExecutionID)
	assert.Equal(t, "dec-1", start.PlanDecisionID)
	assert.Equal(t, "execute_query", start.ToolName)
	assert.Equal(t, "tool", start.ToolAction)
	assert.Equal(t, 1, start.AttemptNumber)
	assert.Equal(t, 2, start.MaxRetries, "registry metadata drives the retry budget")

	require.Len(t, f.toolStore.finishReqs, 1)
	finish := f.toolStore.finishReqs[0]
	assert.True(t, finish.Success)
	assert.Equal(t, "4 rows returned", finish.ResultSummary)
	assert.Empty(t, finish.ErrorMessage)

	require.Len(t, f.runner.names, 1)
	assert.Equal(t, "execute_query", f.runner.names[0])
	assert.Equal(t, args, f.runner.args[0])

	// The second planning call sees the first tool's observation.
	require.Len(t, f.plans.inputs, 2)
	last := f.plans.inputs[1].LastObservation
	require.NotNil(t, last)
	assert.Equal(t, "execute_query", last.ToolName)
	assert.Equal(t, "4 rows returned", last.Observation.Summary)
	assert.Len(t, f.plans.inputs[1].PastObservations, 1)

	started := indexOf(f.sink.order, events.EventTypeToolStarted)
	finished := indexOf(f.sink.order, events.EventTypeToolFinished)
	terminal := indexOf(f.sink.order, events.EventTypeCompletionFinished)
	require.NotEqual(t, -1, started)
	require.NotEqual(t, -1, finished)
	assert.Less(t, started, finished)
	assert.Less(t, finished, terminal)

	require.Len(t, f.blockStore.annotations, 1)
	assert.Equal(t, "tool-1", f.blockStore.annotations[0].ToolExecutionID)
	assert.Equal(t, "dec-1", f.blockStore.annotations[0].PlanDecisionID)

	assert.Equal(t, []string{"initial", "pre_tool", "post_tool", "pre_tool", "final"}, f.snapshots.kinds())
}

func TestLoop_Run_ObservationPassthroughFinishesRun(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "answer_question", map[string]any{"question": "trend"})}},
	}
	f.runner.results = []*tools.RunResult{{
		Observation: models.Observation{
			Summary:          "answered",
			AnalysisComplete: boolPtr(true),
			FinalAnswer:      "Revenue grew 12%.",
		},
		Attempts: 1,
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	// The sealed decision carries the tool's answer as the terminal text.
	require.Len(t, f.sink.decisionFinals, 2)
	sealed := f.sink.decisionFinals[1].Data
	assert.True(t, sealed.AnalysisComplete)
	assert.Equal(t, "Revenue grew 12%.", sealed.FinalAnswer)

	lastSave := f.decisions.saves[len(f.decisions.saves)-1]
	assert.True(t, lastSave.AnalysisComplete)
	assert.Equal(t, "Revenue grew 12%.", lastSave.FinalAnswer)

	require.Len(t, f.plans.inputs, 1, "the run ends without another planning call")
	require.Len(t, f.completions.statuses, 1)
	assert.Equal(t, string(completion.StatusCompleted), f.completions.statuses[0].status)
}

func TestLoop_Run_PlannerFaultRetryThenExhaustion(t *testing.T) {
	f := newLoopFixture(t)
	invalid := []planner.Update{&planner.FinalUpdate{Decision: &models.PlannerDecision{
		Error: &models.DecisionError{Code: models.ErrCodeValidation, Message: "bad json"},
	}}}
	f.plans.scripts = [][]planner.Update{invalid, invalid, invalid}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	// Two retries within budget, the third fault ends the loop quietly.
	require.Len(t, f.plans.inputs, 3)
	require.Len(t, f.sink.plannerRetries, 2)
	assert.Equal(t, 1, f.sink.plannerRetries[0].Data.Attempt)
	assert.Equal(t, 2, f.sink.plannerRetries[1].Data.Attempt)
	assert.Equal(t, config.DefaultMaxInvalidRetries, f.sink.plannerRetries[0].Data.MaxAttempts)
	assert.Equal(t, models.ErrCodeValidation, f.sink.plannerRetries[0].Data.Kind)
	assert.Equal(t, "bad json", f.sink.plannerRetries[0].Data.Message)

	// Faulty decisions never reach the row or the final frame.
	assert.Empty(t, f.sink.decisionFinals)
	require.Len(t, f.decisions.saves, 3)
	for _, save := range f.decisions.saves {
		assert.Empty(t, save.PlanType, "only skeletons are saved for faulted iterations")
	}

	// Each fault lands in the observation history under the planner's name.
	last := f.plans.inputs[2].LastObservation
	require.NotNil(t, last)
	assert.Equal(t, "planner", last.ToolName)
	assert.Equal(t, models.ErrCodeValidation, last.Observation.Error.Code)
	assert.Len(t, f.plans.inputs[2].PastObservations, 2)

	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "success", f.execs.finishReqs[0].Status)
	require.Len(t, f.sink.completionFinisheds, 1)
	assert.Equal(t, completion.StatusCompleted, f.sink.completionFinisheds[0].Data.Status)
}

func TestLoop_Run_MissingActionCountsAgainstRetryBudget(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: &models.PlannerDecision{PlanType: models.PlanTypeResearch}}},
		{&planner.FinalUpdate{Decision: answerDecision("Done after the retry.")}},
	}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.sink.plannerRetries, 1)
	assert.Equal(t, models.ErrCodeMissingAction, f.sink.plannerRetries[0].Data.Kind)
	assert.Equal(t, "plan type research carries no action", f.sink.plannerRetries[0].Data.Message)

	// The actionless decision is still persisted and emitted before the
	// fault is recorded.
	require.Len(t, f.sink.decisionFinals, 2)
	assert.Equal(t, "Done after the retry.", f.sink.decisionFinals[1].Data.FinalAnswer)

	last := f.plans.inputs[1].LastObservation
	require.NotNil(t, last)
	assert.Equal(t, "planner", last.ToolName)
	assert.Equal(t, models.ErrCodeMissingAction, last.Observation.Error.Code)
}

func TestLoop_Run_PlanTypeGateRejectsTool(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "create_widget", map[string]any{"title": "Revenue"})}},
		{&planner.FinalUpdate{Decision: answerDecision("Stopped at research.")}},
	}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	assert.Empty(t, f.toolStore.startReqs, "a gated tool never starts")
	assert.Empty(t, f.sink.plannerRetries, "the gate does not burn the retry budget")

	last := f.plans.inputs[1].LastObservation
	require.NotNil(t, last)
	assert.Equal(t, "create_widget", last.ToolName)
	assert.Equal(t, models.ErrCodeResolve, last.Observation.Error.Code)
	assert.Contains(t, last.Observation.Summary, "not available for plan type research")
}

func TestLoop_Run_ArgumentValidationRejectsTool(t *testing.T) {
	f := newLoopFixture(t)
	require.NoError(t, f.registry.Register(stubTool{meta: tools.Metadata{
		Name:        "run_sql",
		Description: "Run a prepared statement.",
		Category:    tools.CategoryResearch,
		InputSchema: `{"type":"object","required":["query"],"properties":{"query":{"type":"string"}}}`,
	}}))
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "run_sql", map[string]any{})}},
		{&planner.FinalUpdate{Decision: answerDecision("Gave up on the query.")}},
	}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	assert.Empty(t, f.toolStore.startReqs)

	last := f.plans.inputs[1].LastObservation
	require.NotNil(t, last)
	assert.Equal(t, "run_sql", last.ToolName)
	assert.Equal(t, models.ErrCodeValidation, last.Observation.Error.Code)
	assert.Equal(t, "arguments for run_sql failed validation", last.Observation.Summary)
}

func TestLoop_Run_FailureBreakerSealsDecision(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Config = &config.Config{Agent: &config.AgentConfig{MaxToolFailures: 2}}
	args := map[string]any{"query": "select 1"}
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", args)}},
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", args)}},
	}
	failing := &tools.RunResult{
		Observation: models.Observation{
			Summary: "query failed",
			Error:   &models.ObservationError{Code: models.ErrCodeExecution, Message: "relation missing"},
		},
		Attempts: 1,
	}
	f.runner.results = []*tools.RunResult{failing, failing}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.toolStore.finishReqs, 2)
	assert.False(t, f.toolStore.finishReqs[1].Success)

	// finals for both iterations plus the sealed breaker decision.
	require.Len(t, f.sink.decisionFinals, 3)
	sealed := f.sink.decisionFinals[2].Data
	assert.True(t, sealed.AnalysisComplete)
	assert.Contains(t, sealed.FinalAnswer, "failed 2 times in a row")
	assert.Contains(t, sealed.FinalAnswer, "relation missing")

	// The breaker concludes the run, it does not fail it.
	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "success", f.execs.finishReqs[0].Status)
	assert.Equal(t, string(completion.StatusCompleted), f.completions.statuses[0].status)
}

func TestLoop_Run_RepeatedSuccessBreaker(t *testing.T) {
	f := newLoopFixture(t)
	args := map[string]any{"query": "select count(*) from orders"}
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", args)}},
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", args)}},
	}
	result := &tools.RunResult{Observation: models.Observation{Summary: "42 orders"}, Attempts: 1}
	f.runner.results = []*tools.RunResult{result, result}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.sink.decisionFinals, 3)
	sealed := f.sink.decisionFinals[2].Data
	assert.True(t, sealed.AnalysisComplete)
	assert.Contains(t, sealed.FinalAnswer, "repeated the same successful execute_query step")
	assert.Contains(t, sealed.FinalAnswer, "42 orders")

	require.Len(t, f.plans.inputs, 2, "the breaker fires before a third planning call")
}

func TestLoop_Run_ObserveOnSuccessSkipsFailedRuns(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "answer_question", map[string]any{"question": "why"})}},
		{&planner.FinalUpdate{Decision: answerDecision("Answered on the second pass.")}},
	}
	f.runner.results = []*tools.RunResult{{
		Observation: models.Observation{
			Summary: "could not answer",
			Error:   &models.ObservationError{Code: models.ErrCodeExecution, Message: "no context"},
		},
		Attempts: 1,
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.toolStore.finishReqs, 1)
	assert.False(t, f.toolStore.finishReqs[0].Success)

	// on_success tools keep failures out of the planner's history.
	assert.Nil(t, f.plans.inputs[1].LastObservation)
	assert.Empty(t, f.plans.inputs[1].PastObservations)
}

func TestLoop_Run_ArtifactStateResetsPerAction(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeAction, "create_widget", map[string]any{"title": "Revenue"})}},
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeAction, "create_widget", map[string]any{"title": "Churn"})}},
		{&planner.FinalUpdate{Decision: answerDecision("Two widgets built.")}},
	}
	f.runner.results = []*tools.RunResult{
		{Observation: models.Observation{Summary: "widget created", WidgetID: "w-1", StepID: "st-1"}, Attempts: 1},
		{Observation: models.Observation{Summary: "widget created", WidgetID: "w-2", StepID: "st-2"}, Attempts: 1},
	}
	var seen []string
	f.runner.hook = func(call int, rtc *tools.RuntimeContext) {
		seen = append(seen, rtc.Artifacts.QueryID)
		if call == 0 {
			rtc.Artifacts.QueryID = "q-1"
		}
	}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	// The first action's query id never leaks into the second action.
	assert.Equal(t, []string{"", ""}, seen)

	require.Len(t, f.sink.toolFinisheds, 2)
	assert.Equal(t, "q-1", f.sink.toolFinisheds[0].Data.QueryID)
	assert.Empty(t, f.sink.toolFinisheds[1].Data.QueryID)
	assert.Equal(t, "w-1", f.sink.toolFinisheds[0].Data.CreatedWidgetID)

	require.Len(t, f.toolStore.finishReqs, 2)
	assert.Equal(t, "w-1", f.toolStore.finishReqs[0].CreatedWidgetID)
	assert.Equal(t, "st-1", f.toolStore.finishReqs[0].CreatedStepID)
	assert.Equal(t, "w-2", f.toolStore.finishReqs[1].CreatedWidgetID)
}

func TestLoop_Run_ToolEventsCarryFreshSeqs(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", map[string]any{"query": "select 1"})}},
		{&planner.FinalUpdate{Decision: answerDecision("One row.")}},
	}
	f.runner.events = [][]tools.Event{{
		tools.Progress("executing", map[string]any{"attempt": 1}),
		tools.Partial("select"),
		tools.Stdout("12 rows"),
	}}
	f.runner.results = []*tools.RunResult{{Observation: models.Observation{Summary: "1 row"}, Attempts: 1}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.toolStore.startReqs, 1)
	toolSeq := f.toolStore.startReqs[0].Seq

	require.Len(t, f.sink.toolProgress, 1)
	assert.Equal(t, "executing", f.sink.toolProgress[0].Data.Stage)
	assert.Equal(t, "tool-1", f.sink.toolProgress[0].Data.ToolExecutionID)
	require.Len(t, f.sink.toolPartials, 1)
	assert.Equal(t, "select", f.sink.toolPartials[0].Data.Delta)
	assert.Equal(t, "tool-1", f.sink.toolPartials[0].Data.ToolExecutionID)
	require.Len(t, f.sink.toolStdouts, 1)
	assert.Equal(t, "12 rows", f.sink.toolStdouts[0].Data.Line)

	// The row keeps the pinned seq; the frames, transient ones included,
	// climb strictly in emission order.
	require.Len(t, f.sink.toolStarteds, 1)
	require.Len(t, f.sink.toolFinisheds, 1)
	emitted := []int{
		f.sink.toolStarteds[0].Seq,
		f.sink.toolProgress[0].Seq,
		f.sink.toolPartials[0].Seq,
		f.sink.toolStdouts[0].Seq,
		f.sink.toolFinisheds[0].Seq,
	}
	for i := 1; i < len(emitted); i++ {
		assert.Greater(t, emitted[i], emitted[i-1], "frame %d out of order", i)
	}
	assert.Greater(t, emitted[1], toolSeq, "transient frames do not reuse the row's seq")
}

func TestLoop_Run_WidgetDataStrippedFromFinishedFrame(t *testing.T) {
	f := newLoopFixture(t)
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeAction, "create_widget", map[string]any{"title": "Revenue"})}},
		{&planner.FinalUpdate{Decision: answerDecision("Widget is up.")}},
	}
	f.runner.results = []*tools.RunResult{{
		Observation: models.Observation{Summary: "widget created", WidgetID: "w-1"},
		Output: map[string]any{
			"widget_data": map[string]any{"rows": []any{1, 2, 3}},
			"columns":     []any{"region"},
		},
		Attempts: 1,
	}}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.toolStore.finishReqs, 1)
	assert.Contains(t, f.toolStore.finishReqs[0].ResultJSON, "widget_data", "the row keeps the full result")

	require.Len(t, f.sink.toolFinisheds, 1)
	frame := f.sink.toolFinisheds[0].Data
	assert.NotContains(t, frame.ResultJSON, "widget_data", "the frame drops the bulk payload")
	assert.Contains(t, frame.ResultJSON, "columns")
}

func TestLoop_Run_CancelledToolFinalizesAsStopped(t *testing.T) {
	f := newLoopFixture(t)
	run := f.newRun()
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", map[string]any{"query": "select 1"})}},
	}
	f.runner.results = []*tools.RunResult{{
		Observation: models.Observation{Summary: "interrupted mid-query"},
		Cancelled:   true,
	}}
	f.runner.hook = func(int, *tools.RuntimeContext) { run.Sigkill.Set() }

	err := f.loop().Run(context.Background(), run)
	require.NoError(t, err)

	require.Len(t, f.toolStore.finishReqs, 1)
	finish := f.toolStore.finishReqs[0]
	assert.False(t, finish.Success)
	assert.Equal(t, models.ErrCodeCancelled, finish.ErrorMessage)
	assert.Equal(t, "interrupted mid-query", finish.ResultSummary)

	assert.Empty(t, f.sink.toolFinisheds, "no finished frame for a cancelled tool")

	assert.Equal(t, []string{"exec-1"}, f.blockStore.stoppedExecs)
	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "sigkill", f.execs.finishReqs[0].Status)
	require.Len(t, f.completions.statuses, 1)
	assert.Equal(t, string(completion.StatusStopped), f.completions.statuses[0].status)
	require.Len(t, f.sink.completionFinisheds, 1)
	assert.Equal(t, completion.StatusStopped, f.sink.completionFinisheds[0].Data.Status)
}

func TestLoop_Run_SigkillBeforeFirstIteration(t *testing.T) {
	f := newLoopFixture(t)
	run := f.newRun()
	run.Sigkill.Set()

	err := f.loop().Run(context.Background(), run)
	require.NoError(t, err)

	assert.Empty(t, f.plans.inputs, "no planning call after an early sigkill")
	assert.Equal(t, []string{"exec-1"}, f.blockStore.stoppedExecs)
	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "sigkill", f.execs.finishReqs[0].Status)
	assert.Equal(t, []string{"initial", "final"}, f.snapshots.kinds())
	require.Len(t, f.completions.statuses, 1)
	assert.Equal(t, string(completion.StatusStopped), f.completions.statuses[0].status)
}

func TestLoop_Run_AbandonedOnContextCancel(t *testing.T) {
	f := newLoopFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.loop().Run(ctx, f.newRun())
	require.ErrorIs(t, err, context.Canceled)

	// Rows stay in_progress for orphan recovery, no terminator is emitted.
	assert.Empty(t, f.execs.finishReqs)
	assert.Empty(t, f.completions.statuses)
	assert.Empty(t, f.sink.completionFinisheds)
	require.Len(t, f.sink.completionStarteds, 1)
}

func TestLoop_Run_CreateExecutionFailure(t *testing.T) {
	f := newLoopFixture(t)
	f.execs.createErr = errors.New("db down")

	err := f.loop().Run(context.Background(), f.newRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create agent execution")

	require.Len(t, f.completions.statuses, 1)
	assert.Equal(t, string(completion.StatusError), f.completions.statuses[0].status)
	assert.Contains(t, f.completions.statuses[0].errorMessage, "db down")
	assert.Empty(t, f.sink.order, "nothing is published without an execution row")
}

func TestLoop_Run_SkeletonSaveFailureIsFatal(t *testing.T) {
	f := newLoopFixture(t)
	f.decisions.saveErr = errors.New("insert failed")
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: answerDecision("never reached")}},
	}

	err := f.loop().Run(context.Background(), f.newRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create skeleton decision")

	require.Len(t, f.blockStore.markErrors, 1)
	assert.Contains(t, f.blockStore.markErrors[0], "create skeleton decision")

	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "error", f.execs.finishReqs[0].Status)
	assert.Contains(t, f.execs.finishReqs[0].ErrorMessage, "create skeleton decision")

	require.Len(t, f.completions.statuses, 1)
	assert.Equal(t, string(completion.StatusError), f.completions.statuses[0].status)

	require.Len(t, f.sink.completionFinisheds, 1)
	assert.Equal(t, completion.StatusError, f.sink.completionFinisheds[0].Data.Status)
	assert.Contains(t, f.sink.completionFinisheds[0].Data.ErrorMessage, "create skeleton decision")
}

func TestLoop_Run_SeqBackendFailureFallsBackLocally(t *testing.T) {
	f := newLoopFixture(t)
	f.execs.seqErr = errors.New("seq backend down")

	err := f.loop().Run(context.Background(), f.newRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocate decision seq")

	// The emitter degrades to a local counter so lifecycle frames still
	// carry increasing seqs.
	require.Len(t, f.sink.completionStarteds, 1)
	assert.Equal(t, 1, f.sink.completionStarteds[0].Seq)
	require.Len(t, f.sink.completionFinisheds, 1)
	assert.Equal(t, 2, f.sink.completionFinisheds[0].Seq)
	assert.Empty(t, f.sink.blockUpserts, "block broadcasts are skipped without a seq")
}

func TestResolveRunConfig(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		rc := resolveRunConfig(nil)
		assert.Equal(t, config.DefaultStepLimit, rc.stepLimit)
		assert.Equal(t, config.DefaultMaxInvalidRetries, rc.maxInvalidRetries)
		assert.Equal(t, config.DefaultMaxToolFailures, rc.maxToolFailures)
		assert.Equal(t, config.DefaultMaxRepeatedSuccesses, rc.maxRepeatedSuccesses)
		assert.True(t, rc.scoringEnabled)
		assert.True(t, rc.suggestionsEnabled)
	})

	t.Run("empty agent section keeps defaults", func(t *testing.T) {
		rc := resolveRunConfig(&config.Config{})
		assert.Equal(t, config.DefaultStepLimit, rc.stepLimit)
		assert.True(t, rc.scoringEnabled)
	})

	t.Run("agent overrides apply", func(t *testing.T) {
		rc := resolveRunConfig(&config.Config{Agent: &config.AgentConfig{
			StepLimit:            4,
			MaxInvalidRetries:    1,
			MaxToolFailures:      2,
			MaxRepeatedSuccesses: 3,
			ScoringEnabled:       config.BoolPtr(false),
			SuggestionsEnabled:   config.BoolPtr(false),
		}})
		assert.Equal(t, 4, rc.stepLimit)
		assert.Equal(t, 1, rc.maxInvalidRetries)
		assert.Equal(t, 2, rc.maxToolFailures)
		assert.Equal(t, 3, rc.maxRepeatedSuccesses)
		assert.False(t, rc.scoringEnabled)
		assert.False(t, rc.suggestionsEnabled)
	})
}

func TestLoop_Run_StepLimitEndsRun(t *testing.T) {
	f := newLoopFixture(t)
	f.rt.Config = &config.Config{Agent: &config.AgentConfig{StepLimit: 2}}
	// Distinct queries so the repeated-success breaker stays out of the way.
	f.plans.scripts = [][]planner.Update{
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", map[string]any{"query": "select 1"})}},
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", map[string]any{"query": "select 2"})}},
		{&planner.FinalUpdate{Decision: actionDecision(models.PlanTypeResearch, "execute_query", map[string]any{"query": "select 3"})}},
	}
	f.runner.results = []*tools.RunResult{
		{Observation: models.Observation{Summary: "1 row"}, Attempts: 1},
		{Observation: models.Observation{Summary: "2 rows"}, Attempts: 1},
	}

	err := f.loop().Run(context.Background(), f.newRun())
	require.NoError(t, err)

	require.Len(t, f.plans.inputs, 2, "the loop stops at the step limit")
	require.Len(t, f.toolStore.startReqs, 2)
	require.Len(t, f.execs.finishReqs, 1)
	assert.Equal(t, "success", f.execs.finishReqs[0].Status)
}
