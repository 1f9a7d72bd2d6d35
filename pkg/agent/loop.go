package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quarryhq/quarry/ent"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/pkg/blocks"
	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/contexthub"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/planner"
	"github.com/quarryhq/quarry/pkg/tools"
)

// artifactTools are the tools whose runs go through the per-action artifact
// state. The state is reset before each of their invocations.
var artifactTools = map[string]bool{
	"create_widget":           true,
	"create_data":             true,
	"create_and_execute_code": true,
}

// Loop drives completion turns against a shared Runtime. One Loop serves the
// whole process; per-run state lives on the runEnv built inside Run.
type Loop struct {
	rt     *Runtime
	logger *slog.Logger
}

// NewLoop creates the loop over its runtime.
func NewLoop(rt *Runtime) *Loop {
	logger := rt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{rt: rt, logger: logger.With("component", "agent_loop")}
}

// runConfig is the per-run resolution of the agent limits.
type runConfig struct {
	stepLimit            int
	maxInvalidRetries    int
	maxToolFailures      int
	maxRepeatedSuccesses int
	scoringEnabled       bool
	suggestionsEnabled   bool
}

func resolveRunConfig(cfg *config.Config) runConfig {
	rc := runConfig{
		stepLimit:            config.DefaultStepLimit,
		maxInvalidRetries:    config.DefaultMaxInvalidRetries,
		maxToolFailures:      config.DefaultMaxToolFailures,
		maxRepeatedSuccesses: config.DefaultMaxRepeatedSuccesses,
		scoringEnabled:       true,
		suggestionsEnabled:   true,
	}
	if cfg == nil || cfg.Agent == nil {
		return rc
	}
	if cfg.Agent.StepLimit > 0 {
		rc.stepLimit = cfg.Agent.StepLimit
	}
	if cfg.Agent.MaxInvalidRetries > 0 {
		rc.maxInvalidRetries = cfg.Agent.MaxInvalidRetries
	}
	if cfg.Agent.MaxToolFailures > 0 {
		rc.maxToolFailures = cfg.Agent.MaxToolFailures
	}
	if cfg.Agent.MaxRepeatedSuccesses > 0 {
		rc.maxRepeatedSuccesses = cfg.Agent.MaxRepeatedSuccesses
	}
	rc.scoringEnabled = cfg.ScoringEnabled()
	rc.suggestionsEnabled = cfg.SuggestionsEnabled()
	return rc
}

// runEnv is the per-run wiring: one execution's identity, stores,
// projections, and counters.
type runEnv struct {
	run  *Run
	exec *ent.AgentExecution
	cfg  runConfig

	scope     blocks.Scope
	rc        contexthub.ResearchContext
	hub       *contexthub.Hub
	acc       *contexthub.Accumulator
	projector *blocks.Projector
	streamer  *blocks.Streamer
	emitter   *emitter
	artifacts *tools.ArtifactState
	state     *loopState
	logger    *slog.Logger

	// detached survives run cancellation so sigkill finalization can still
	// write rows and emit the terminator frame.
	detached context.Context

	startedAt       time.Time
	iterations      int
	finalDecision   *models.PlannerDecision
	finalDecisionID string
	earlyScored     bool
	sigkilled       bool
	abandoned       bool
}

// Run drives one claimed completion turn to its terminal event. The returned
// error reports fatal persistence failures and shutdown abandonment; normal
// terminations, including sigkill and breaker exits, return nil.
func (l *Loop) Run(ctx context.Context, run *Run) error {
	comp := run.Completion
	logger := l.logger.With(
		"completion_id", comp.ID,
		"report_id", comp.ReportID,
		"organization_id", comp.OrganizationID)

	cfg := resolveRunConfig(l.rt.Config)

	exec, err := l.rt.Services.Executions.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
		CompletionID:   comp.ID,
		ReportID:       comp.ReportID,
		OrganizationID: comp.OrganizationID,
		UserID:         comp.UserID,
		Config:         executionConfig(cfg, run.Prompt),
	})
	if err != nil {
		if _, uerr := l.rt.Services.Completions.UpdateStatus(ctx, comp.ID, string(completion.StatusError), err.Error()); uerr != nil {
			logger.Error("Failed to mark completion after execution create failure", "error", uerr)
		}
		return fmt.Errorf("create agent execution: %w", err)
	}
	logger = logger.With("agent_execution_id", exec.ID)

	env := &runEnv{
		run:       run,
		exec:      exec,
		cfg:       cfg,
		scope:     blocks.Scope{CompletionID: comp.ID, AgentExecutionID: exec.ID},
		acc:       contexthub.NewAccumulator(),
		artifacts: &tools.ArtifactState{},
		state:     newLoopState(),
		logger:    logger,
		detached:  context.WithoutCancel(ctx),
		startedAt: time.Now(),
	}
	var contextCfg *config.ContextConfig
	if l.rt.Config != nil {
		contextCfg = l.rt.Config.Context
	}
	env.hub = contexthub.NewHub(l.rt.Sources, contextCfg, env.acc, logger)
	env.projector = blocks.NewProjector(l.rt.Services.Blocks, l.rt.Services.Completions, l.rt.Publisher, l.rt.Services.Executions, logger)
	env.streamer = blocks.NewStreamer(l.rt.Publisher, l.rt.Services.Executions, env.scope, logger)
	env.emitter = newEmitter(l.rt.Publisher, l.rt.Services.Executions, l.rt.Masker, comp.ID, exec.ID, logger)
	env.rc = contexthub.ResearchContext{
		OrganizationID:   comp.OrganizationID,
		ReportID:         comp.ReportID,
		CompletionID:     comp.ID,
		AgentExecutionID: exec.ID,
		UserMessage:      run.Prompt.Content,
		Mode:             run.Prompt.Mode,
		Mentions:         run.Prompt.Mentions,
	}

	env.emitter.completionStarted(ctx, comp.ReportID)

	if view, berr := env.hub.BuildContext(ctx, contexthub.Spec{}, env.rc, 0); berr == nil {
		l.saveSnapshot(env, "initial", 0, view)
	}

	var fatal error
	for loopIndex := 0; loopIndex < cfg.stepLimit; loopIndex++ {
		env.iterations = loopIndex + 1
		done, ierr := l.iterate(ctx, env, loopIndex)
		if ierr != nil {
			fatal = ierr
			break
		}
		if done {
			break
		}
	}

	if fatal != nil {
		return l.finalizeError(env, fatal)
	}
	return l.finalize(ctx, env)
}

// executionConfig snapshots the limits the run was started with onto the
// execution row.
func executionConfig(cfg runConfig, prompt models.PromptSpec) map[string]any {
	out := map[string]any{
		"step_limit":             cfg.stepLimit,
		"max_invalid_retries":    cfg.maxInvalidRetries,
		"max_tool_failures":      cfg.maxToolFailures,
		"max_repeated_successes": cfg.maxRepeatedSuccesses,
	}
	if prompt.Mode != "" {
		out["mode"] = prompt.Mode
	}
	if prompt.ModelID != "" {
		out["model_id"] = prompt.ModelID
	}
	return out
}

// interrupted checks the cancellation gates. Sigkill takes priority over a
// plain context cancellation so a signalled shutdown still finalizes as
// stopped rather than abandoning the run.
func (l *Loop) interrupted(ctx context.Context, env *runEnv) bool {
	if env.run.Sigkill.Signalled() {
		env.sigkilled = true
		return true
	}
	if ctx.Err() != nil {
		env.abandoned = true
		return true
	}
	return false
}

// iterate runs one plan, act, observe pass. done=true ends the loop; a
// non-nil error is a fatal persistence failure.
func (l *Loop) iterate(ctx context.Context, env *runEnv, loopIndex int) (bool, error) {
	if l.interrupted(ctx, env) {
		return true, nil
	}

	view, err := env.hub.BuildContext(ctx, contexthub.Spec{}, env.rc, loopIndex)
	if err != nil {
		l.interrupted(ctx, env)
		return true, nil
	}
	l.saveSnapshot(env, "pre_tool", loopIndex, view)

	input := l.buildInput(env, view)
	if verr := input.Validate(); verr != nil {
		return l.plannerFault(ctx, env, models.ErrCodeInputValidation, verr.Error()), nil
	}

	seq, err := l.rt.Services.Executions.NextSeq(ctx, env.exec.ID)
	if err != nil {
		return false, fmt.Errorf("allocate decision seq: %w", err)
	}
	skeleton, err := l.rt.Services.Decisions.SavePlanDecision(ctx, models.SavePlanDecisionRequest{
		AgentExecutionID: env.exec.ID,
		Seq:              seq,
		LoopIndex:        loopIndex,
	})
	if err != nil {
		return false, fmt.Errorf("create skeleton decision: %w", err)
	}
	ref := blocks.DecisionRef{PlanDecisionID: skeleton.ID, Seq: seq, LoopIndex: loopIndex}
	bound := false
	if blk, perr := env.projector.UpsertForDecision(ctx, env.scope, ref, nil); perr != nil {
		env.logger.Warn("Skeleton block upsert failed", "seq", seq, "error", perr)
	} else if blk != nil {
		env.streamer.SetBlock(blk.ID)
		bound = true
	}

	dec, err := l.streamDecision(ctx, env, ref, input, bound)
	if err != nil {
		return false, err
	}
	if l.interrupted(ctx, env) {
		return true, nil
	}
	if dec == nil {
		dec = &models.PlannerDecision{Error: &models.DecisionError{
			Code:    models.ErrCodeValidation,
			Message: "planner stream ended without a final decision",
		}}
	}

	if dec.Error != nil {
		code := dec.Error.Code
		if code == "" {
			code = models.ErrCodeValidation
		}
		return l.plannerFault(ctx, env, code, dec.Error.Message), nil
	}

	if _, err := l.rt.Services.Decisions.SavePlanDecision(ctx, decisionSaveRequest(env.exec.ID, ref, dec)); err != nil {
		return false, fmt.Errorf("save final decision: %w", err)
	}
	l.projectDecision(ctx, env, ref, dec)
	env.emitter.decisionFinal(ctx, ref.PlanDecisionID, loopIndex, dec)
	env.finalDecision = dec
	env.finalDecisionID = ref.PlanDecisionID
	l.maybeScoreEarly(env, view, dec)

	if dec.AnalysisComplete {
		env.state.finish(dec.FinalAnswer)
		l.maybeSuggest(ctx, env)
		return true, nil
	}

	if dec.Action == nil || dec.Action.Name == "" {
		msg := fmt.Sprintf("plan type %s carries no action", dec.PlanType)
		return l.plannerFault(ctx, env, models.ErrCodeMissingAction, msg), nil
	}
	action := dec.Action

	if !l.rt.Registry.ValidateToolForPlanType(action.Name, dec.PlanType) {
		env.acc.AddToolObservation(action.Name, action.Arguments, &models.Observation{
			Summary: fmt.Sprintf("tool %s is not available for plan type %s", action.Name, dec.PlanType),
			Error: &models.ObservationError{
				Code:    models.ErrCodeResolve,
				Message: fmt.Sprintf("tool %s is not registered for plan type %s", action.Name, dec.PlanType),
			},
		})
		return false, nil
	}
	if aerr := l.rt.Registry.ValidateArguments(action.Name, action.Arguments); aerr != nil {
		env.acc.AddToolObservation(action.Name, action.Arguments, &models.Observation{
			Summary: fmt.Sprintf("arguments for %s failed validation", action.Name),
			Error:   &models.ObservationError{Code: models.ErrCodeValidation, Message: aerr.Error()},
		})
		return false, nil
	}

	if artifactTools[action.Name] {
		env.artifacts.Reset()
	}

	return l.runTool(ctx, env, ref, dec, action)
}

// runTool covers steps act and observe: the tool row lifecycle, event
// forwarding, breakers, and the observation append.
func (l *Loop) runTool(ctx context.Context, env *runEnv, ref blocks.DecisionRef, dec *models.PlannerDecision, action *models.PlanAction) (bool, error) {
	_, md, err := l.rt.Registry.Get(action.Name)
	if err != nil {
		env.acc.AddToolObservation(action.Name, action.Arguments, &models.Observation{
			Summary: fmt.Sprintf("tool %s is not registered", action.Name),
			Error:   &models.ObservationError{Code: models.ErrCodeResolve, Message: err.Error()},
		})
		return false, nil
	}

	toolSeq, err := l.rt.Services.Executions.NextSeq(ctx, env.exec.ID)
	if err != nil {
		return false, fmt.Errorf("allocate tool seq: %w", err)
	}
	row, err := l.rt.Services.Tools.StartToolExecution(ctx, models.StartToolExecutionRequest{
		AgentExecutionID: env.exec.ID,
		PlanDecisionID:   ref.PlanDecisionID,
		Seq:              toolSeq,
		ToolName:         action.Name,
		ToolAction:       action.Type,
		Arguments:        action.Arguments,
		AttemptNumber:    1,
		MaxRetries:       md.MaxRetries,
	})
	if err != nil {
		return false, fmt.Errorf("start tool execution: %w", err)
	}
	env.emitter.toolStarted(ctx, row, ref.LoopIndex)

	if rerr := env.hub.RefreshSchemas(ctx); rerr != nil && ctx.Err() == nil {
		env.logger.Warn("Schema refresh failed", "error", rerr)
	}

	rtc := &tools.RuntimeContext{
		Scope: tools.Scope{
			OrganizationID:   env.rc.OrganizationID,
			UserID:           env.run.Completion.UserID,
			ReportID:         env.rc.ReportID,
			CompletionID:     env.rc.CompletionID,
			AgentExecutionID: env.exec.ID,
			ToolExecutionID:  row.ID,
		},
		Sources:   l.rt.DataSources,
		Platform:  l.rt.Platform,
		Artifacts: env.artifacts,
		History:   env.acc,
		View:      hubRenderer{hub: env.hub},
		Files:     env.rc.Files,
	}

	start := time.Now()
	result, err := l.rt.Runner.Run(ctx, action.Name, action.Arguments, rtc, l.toolEventForwarder(ctx, env, row.ID))
	if err != nil {
		// Only an unregistered tool reaches here; the row must still close.
		if _, ferr := l.rt.Services.Tools.FinishToolExecution(env.detached, models.FinishToolExecutionRequest{
			ToolExecutionID: row.ID,
			Success:         false,
			ErrorMessage:    err.Error(),
		}); ferr != nil {
			return false, fmt.Errorf("finish unresolved tool execution: %w", ferr)
		}
		env.acc.AddToolObservation(action.Name, action.Arguments, &models.Observation{
			Summary: fmt.Sprintf("tool %s could not be resolved", action.Name),
			Error:   &models.ObservationError{Code: models.ErrCodeResolve, Message: err.Error()},
		})
		return false, nil
	}

	if result.Cancelled {
		if _, ferr := l.rt.Services.Tools.FinishToolExecution(env.detached, models.FinishToolExecutionRequest{
			ToolExecutionID: row.ID,
			Success:         false,
			ResultSummary:   result.Observation.Summary,
			ErrorMessage:    models.ErrCodeCancelled,
		}); ferr != nil {
			env.logger.Error("Failed to close cancelled tool execution", "tool_execution_id", row.ID, "error", ferr)
		}
		l.interrupted(ctx, env)
		env.sigkilled = env.sigkilled || env.run.Sigkill.Signalled()
		return true, nil
	}

	obs := result.Observation
	success := !result.Failed()
	l.rt.Metrics.RecordToolExecution(action.Name, toolStatus(success), time.Since(start).Seconds())

	if action.Name == "create_widget" {
		env.state.usedCreateWidget = true
		if success && hasInternalErrors(result.Output) {
			env.state.widgetRecovered = true
		}
	}

	if obs.Failed() {
		count := env.state.recordFailure(action.Name)
		if count >= env.cfg.maxToolFailures {
			env.state.finish(fmt.Sprintf(
				"The %s tool failed %d times in a row, so the analysis stopped here. Last error: %s",
				action.Name, count, obs.Error.Message))
		}
	} else {
		env.state.recordSuccess(action.Name, action.Arguments)
		if env.state.repeatedSuccesses(env.cfg.maxRepeatedSuccesses) {
			env.state.finish(fmt.Sprintf(
				"The last %d actions repeated the same successful %s step, so the goal is treated as achieved. %s",
				env.cfg.maxRepeatedSuccesses, action.Name, obs.Summary))
		}
		// Tools like answer_question close the analysis themselves via the
		// observation passthrough.
		if obs.AnalysisComplete != nil && *obs.AnalysisComplete {
			answer := obs.FinalAnswer
			if answer == "" {
				answer = obs.Summary
			}
			env.state.finish(answer)
		}
	}

	finished, err := l.rt.Services.Tools.FinishToolExecution(ctx, models.FinishToolExecutionRequest{
		ToolExecutionID:         row.ID,
		Success:                 success,
		ResultSummary:           obs.Summary,
		ResultJSON:              result.Output,
		ErrorMessage:            observationErrorMessage(&obs),
		CreatedWidgetID:         obs.WidgetID,
		CreatedStepID:           obs.StepID,
		CreatedVisualizationIDs: obs.CreatedVisualizationIDs,
	})
	if err != nil {
		return false, fmt.Errorf("finish tool execution: %w", err)
	}

	if view := env.hub.View(); view != nil {
		l.saveSnapshot(env, "post_tool", ref.LoopIndex, view)
	}

	toolRef := blocks.DecisionRef{PlanDecisionID: ref.PlanDecisionID, Seq: toolSeq, LoopIndex: ref.LoopIndex}
	if _, perr := env.projector.AnnotateForTool(ctx, env.scope, toolRef, finished); perr != nil {
		env.logger.Warn("Tool block annotate failed", "tool_execution_id", row.ID, "error", perr)
	}
	if rerr := env.projector.RebuildCompletion(ctx, env.scope); rerr != nil {
		env.logger.Warn("Completion rebuild failed", "error", rerr)
	}
	env.emitter.toolFinished(ctx, finished, env.artifacts.QueryID)

	switch md.ObservationPolicy {
	case tools.ObserveNever:
	case tools.ObserveOnSuccess:
		if success {
			env.acc.AddToolObservation(action.Name, action.Arguments, &obs)
		}
	default:
		env.acc.AddToolObservation(action.Name, action.Arguments, &obs)
	}

	if env.state.analysisComplete {
		if serr := l.sealBreakerDecision(ctx, env, ref, dec); serr != nil {
			return false, serr
		}
		l.maybeSuggest(ctx, env)
		return true, nil
	}
	return false, nil
}

// streamDecision consumes one planner stream: partial decisions land on the
// pinned row and block, deltas feed the throttled streamer, and the final
// decision is returned. A nil decision with nil error means the stream ended
// without a final frame.
func (l *Loop) streamDecision(ctx context.Context, env *runEnv, ref blocks.DecisionRef, input *planner.Input, bound bool) (*models.PlannerDecision, error) {
	start := time.Now()
	updates, err := l.rt.Planner.Stream(ctx, input)
	if err != nil {
		return &models.PlannerDecision{Error: &models.DecisionError{
			Code:    models.ErrCodeValidation,
			Message: err.Error(),
		}}, nil
	}

	var final *models.PlannerDecision
	for update := range updates {
		switch u := update.(type) {
		case *planner.PartialUpdate:
			partial := u.Decision
			if _, serr := l.rt.Services.Decisions.SavePlanDecision(ctx, decisionSaveRequest(env.exec.ID, ref, partial)); serr != nil {
				return nil, fmt.Errorf("save partial decision: %w", serr)
			}
			if blk, perr := env.projector.UpsertForDecision(ctx, env.scope, ref, partial); perr != nil {
				env.logger.Warn("Partial block upsert failed", "seq", ref.Seq, "error", perr)
			} else if blk != nil && !bound {
				env.streamer.SetBlock(blk.ID)
				bound = true
			}
			env.streamer.Update(ctx, partial.ReasoningMessage, partial.Content())
			if partial.HasStreamableText() {
				env.emitter.decisionPartial(ctx, ref.PlanDecisionID, ref.LoopIndex, partial)
			}
		case *planner.FinalUpdate:
			final = u.Decision
		}
	}
	env.streamer.Complete(ctx)

	l.recordPlannerMetrics(final, time.Since(start))
	return final, nil
}

func (l *Loop) recordPlannerMetrics(dec *models.PlannerDecision, elapsed time.Duration) {
	planType := string(models.PlanTypeResearch)
	status := "error"
	promptTokens, completionTokens := 0, 0
	if dec != nil {
		if dec.PlanType != "" {
			planType = string(dec.PlanType)
		}
		if dec.Error == nil {
			status = "success"
		}
		if dec.Metrics != nil {
			promptTokens = dec.Metrics.InputTokens
			completionTokens = dec.Metrics.OutputTokens
		}
	}
	l.rt.Metrics.RecordPlannerRequest(planType, status, elapsed.Seconds(), promptTokens, completionTokens)
}

// plannerFault applies the shared retry policy for planner-side failures:
// the fault lands in the observation history, the budget decides between
// another iteration and ending the loop.
func (l *Loop) plannerFault(ctx context.Context, env *runEnv, code, message string) bool {
	env.acc.AddToolObservation("planner", nil, &models.Observation{
		Summary: plannerFaultSummary(code),
		Error:   &models.ObservationError{Code: code, Message: message},
	})
	if env.state.invalidRetries >= env.cfg.maxInvalidRetries {
		env.logger.Warn("Planner retry budget exhausted",
			"code", code, "retries", env.state.invalidRetries, "message", message)
		return true
	}
	env.state.invalidRetries++
	env.emitter.plannerRetry(ctx, code, env.state.invalidRetries, env.cfg.maxInvalidRetries, message)
	l.rt.Metrics.RecordPlannerRetry(code)
	return false
}

func plannerFaultSummary(code string) string {
	switch code {
	case models.ErrCodeInputValidation:
		return "planner input could not be assembled"
	case models.ErrCodeMissingAction:
		return "planner returned an action plan without an action"
	default:
		return "planner returned invalid output"
	}
}

// sealBreakerDecision rewrites the iteration's decision with the breaker's
// terminal answer so the transcript ends on the synthesized text.
func (l *Loop) sealBreakerDecision(ctx context.Context, env *runEnv, ref blocks.DecisionRef, dec *models.PlannerDecision) error {
	dec.AnalysisComplete = true
	dec.FinalAnswer = env.state.finalAnswer
	if _, err := l.rt.Services.Decisions.SavePlanDecision(ctx, decisionSaveRequest(env.exec.ID, ref, dec)); err != nil {
		return fmt.Errorf("seal terminal decision: %w", err)
	}
	l.projectDecision(ctx, env, ref, dec)
	env.emitter.decisionFinal(ctx, ref.PlanDecisionID, ref.LoopIndex, dec)
	env.finalDecision = dec
	return nil
}

// projectDecision finalizes the decision's block and refolds the completion
// text. Both writes are best-effort.
func (l *Loop) projectDecision(ctx context.Context, env *runEnv, ref blocks.DecisionRef, dec *models.PlannerDecision) {
	if _, err := env.projector.UpsertForDecision(ctx, env.scope, ref, dec); err != nil {
		env.logger.Warn("Decision block upsert failed", "seq", ref.Seq, "error", err)
	}
	if err := env.projector.RebuildCompletion(ctx, env.scope); err != nil {
		env.logger.Warn("Completion rebuild failed", "error", err)
	}
}

// toolEventForwarder bridges the runner's event stream onto the wire: stage
// progress, partial text, and stdout lines go out as transient frames, each
// with its own seq, tagged with the tool execution they belong to.
func (l *Loop) toolEventForwarder(ctx context.Context, env *runEnv, toolExecutionID string) func(tools.Event) {
	return func(ev tools.Event) {
		switch ev.Kind {
		case tools.EventProgress:
			env.emitter.toolProgress(ctx, toolExecutionID, ev.Stage, ev.Detail)
		case tools.EventPartial:
			env.emitter.toolPartial(ctx, toolExecutionID, ev.Text)
		case tools.EventStdout:
			env.emitter.toolStdout(ctx, toolExecutionID, ev.Text)
		}
	}
}

func (l *Loop) buildInput(env *runEnv, view *contexthub.ContextView) *planner.Input {
	return &planner.Input{
		OrganizationID:   env.rc.OrganizationID,
		CompletionID:     env.rc.CompletionID,
		AgentExecutionID: env.exec.ID,
		UserMessage:      env.rc.UserMessage,
		Mode:             env.rc.Mode,
		ExternalPlatform: "web",
		Instructions:     view.RenderSection(contexthub.SectionInstructions),
		Schemas:          view.RenderSection(contexthub.SectionSchemas),
		Messages:         view.RenderSection(contexthub.SectionMessages),
		Resources:        view.RenderSection(contexthub.SectionResources),
		Code:             view.RenderSection(contexthub.SectionCode),
		Mentions:         view.RenderSection(contexthub.SectionMentions),
		Entities:         view.RenderSection(contexthub.SectionEntities),
		Files:            env.rc.Files,
		LastObservation:  env.acc.Last(),
		PastObservations: env.acc.ToDict(),
		ResearchTools:    l.rt.Registry.CatalogForPlanType(models.PlanTypeResearch),
		ActionTools:      l.rt.Registry.CatalogForPlanType(models.PlanTypeAction),
	}
}

// saveSnapshot persists a context snapshot. Snapshot writes never fail the
// run.
func (l *Loop) saveSnapshot(env *runEnv, kind string, loopIndex int, view *contexthub.ContextView) {
	tokens := view.TokenEstimate()
	_, err := l.rt.Services.Snapshots.SaveContextSnapshot(env.detached, models.SaveContextSnapshotRequest{
		AgentExecutionID: env.exec.ID,
		Kind:             kind,
		LoopIndex:        loopIndex,
		ContextView:      view.Dict(),
		PromptTokens:     &tokens,
	})
	if err != nil {
		env.logger.Warn("Context snapshot write failed", "kind", kind, "loop_index", loopIndex, "error", err)
	}
}

// finalize closes out a non-fatal run: final snapshot, title synthesis, late
// scoring, terminal row states, and the terminator frame.
func (l *Loop) finalize(ctx context.Context, env *runEnv) error {
	if env.abandoned && !env.sigkilled {
		// Shutdown mid-run: leave the rows in_progress for orphan recovery.
		env.logger.Warn("Run abandoned before completion", "iterations", env.iterations)
		return ctx.Err()
	}

	if view := env.hub.View(); view != nil {
		l.saveSnapshot(env, "final", env.iterations, view)
	}

	if env.sigkilled {
		return l.finalizeSigkill(env)
	}
	return l.finalizeSuccess(env)
}

func (l *Loop) finalizeSuccess(env *runEnv) error {
	ctx := env.detached

	if env.finalDecision != nil {
		l.maybeSynthesizeTitle(ctx, env)
	}
	l.maybeScoreResponse(env)

	if _, err := l.rt.Services.Executions.FinishExecution(ctx, models.FinishAgentExecutionRequest{
		AgentExecutionID: env.exec.ID,
		Status:           "success",
	}); err != nil {
		env.logger.Error("Failed to finish execution", "error", err)
	}
	if _, err := l.rt.Services.Completions.UpdateStatus(ctx, env.run.Completion.ID, string(completion.StatusCompleted), ""); err != nil {
		env.logger.Error("Failed to complete completion row", "error", err)
	}
	if err := env.projector.RebuildCompletion(ctx, env.scope); err != nil {
		env.logger.Warn("Final completion rebuild failed", "error", err)
	}

	l.rt.Metrics.RecordCompletion(string(completion.StatusCompleted), time.Since(env.startedAt).Seconds(), env.iterations)
	env.emitter.completionFinished(ctx, env.run.Completion.ReportID, completion.StatusCompleted, "")
	env.logger.Info("Run completed",
		"iterations", env.iterations,
		"analysis_complete", env.state.analysisComplete,
		"duration_ms", time.Since(env.startedAt).Milliseconds())
	return nil
}

func (l *Loop) finalizeSigkill(env *runEnv) error {
	ctx := env.detached

	if n, err := l.rt.Services.Blocks.MarkInFlightStopped(ctx, env.exec.ID); err != nil {
		env.logger.Warn("Failed to mark in-flight blocks stopped", "error", err)
	} else if n > 0 {
		env.logger.Info("Marked in-flight blocks stopped", "count", n)
	}
	if _, err := l.rt.Services.Executions.FinishExecution(ctx, models.FinishAgentExecutionRequest{
		AgentExecutionID: env.exec.ID,
		Status:           "sigkill",
	}); err != nil {
		env.logger.Error("Failed to finish sigkilled execution", "error", err)
	}
	if _, err := l.rt.Services.Completions.UpdateStatus(ctx, env.run.Completion.ID, string(completion.StatusStopped), ""); err != nil {
		env.logger.Error("Failed to stop completion row", "error", err)
	}
	if err := env.projector.RebuildCompletion(ctx, env.scope); err != nil {
		env.logger.Warn("Completion rebuild after sigkill failed", "error", err)
	}

	l.rt.Metrics.RecordCompletion(string(completion.StatusStopped), time.Since(env.startedAt).Seconds(), env.iterations)
	env.emitter.completionFinished(ctx, env.run.Completion.ReportID, completion.StatusStopped, "")
	env.logger.Info("Run stopped by sigkill", "iterations", env.iterations)
	return nil
}

// finalizeError closes out a run killed by a persistence failure on its
// decision or tool rows.
func (l *Loop) finalizeError(env *runEnv, fatal error) error {
	ctx := env.detached
	env.logger.Error("Run failed on persistence", "error", fatal)

	if err := env.projector.MarkError(ctx, env.scope, fatal.Error()); err != nil {
		env.logger.Warn("Failed to mark latest block error", "error", err)
	}
	if _, err := l.rt.Services.Executions.FinishExecution(ctx, models.FinishAgentExecutionRequest{
		AgentExecutionID: env.exec.ID,
		Status:           "error",
		ErrorMessage:     fatal.Error(),
	}); err != nil {
		env.logger.Error("Failed to finish failed execution", "error", err)
	}
	if _, err := l.rt.Services.Completions.UpdateStatus(ctx, env.run.Completion.ID, string(completion.StatusError), fatal.Error()); err != nil {
		env.logger.Error("Failed to fail completion row", "error", err)
	}

	l.rt.Metrics.RecordCompletion(string(completion.StatusError), time.Since(env.startedAt).Seconds(), env.iterations)
	env.emitter.completionFinished(ctx, env.run.Completion.ReportID, completion.StatusError, fatal.Error())
	return fatal
}

// decisionSaveRequest maps a planner decision onto the row at its pinned
// seq.
func decisionSaveRequest(executionID string, ref blocks.DecisionRef, dec *models.PlannerDecision) models.SavePlanDecisionRequest {
	req := models.SavePlanDecisionRequest{
		AgentExecutionID: executionID,
		Seq:              ref.Seq,
		LoopIndex:        ref.LoopIndex,
		PlanType:         dec.PlanType,
		AnalysisComplete: dec.AnalysisComplete,
		Reasoning:        dec.ReasoningMessage,
		Assistant:        dec.AssistantMessage,
		FinalAnswer:      dec.FinalAnswer,
		Metrics:          dec.Metrics,
	}
	if dec.Action != nil {
		req.ActionName = dec.Action.Name
		req.ActionArgs = dec.Action.Arguments
	}
	return req
}

func observationErrorMessage(obs *models.Observation) string {
	if obs == nil || obs.Error == nil {
		return ""
	}
	return obs.Error.Message
}

// hasInternalErrors reports whether a tool result carries a non-empty errors
// list, the sign of internal retries before success.
func hasInternalErrors(output map[string]any) bool {
	raw, ok := output["errors"]
	if !ok {
		return false
	}
	list, ok := raw.([]any)
	if ok {
		return len(list) > 0
	}
	strs, ok := raw.([]string)
	return ok && len(strs) > 0
}

func toolStatus(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// hubRenderer adapts the hub's current view to the tool runtime's renderer.
type hubRenderer struct {
	hub *contexthub.Hub
}

func (h hubRenderer) RenderSection(name string) string {
	view := h.hub.View()
	if view == nil {
		return ""
	}
	return view.RenderSection(name)
}
