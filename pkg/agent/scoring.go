package agent

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/quarryhq/quarry/pkg/contexthub"
	"github.com/quarryhq/quarry/pkg/models"
	"github.com/quarryhq/quarry/pkg/planner"
)

// Judge passes run outside the loop's session: their own context, their own
// timeout, failures logged and dropped. A slow or broken judge never delays
// or fails the run that triggered it.
const scoreTimeout = 30 * time.Second

const (
	scoreKindInstructions = "instruction_effectiveness"
	scoreKindContext      = "context_effectiveness"
	scoreKindResponse     = "response_quality"
)

// scoreOutputSchema instructs the judge to end with the bare number the
// extractor looks for.
const scoreOutputSchema = `End your response with the total score as a standalone integer between 0 and 100 on the last line.
For example, if the score is 62, the last line of your response must be:
62`

const scoreSystemPrompt = `You are a strict evaluator for an analytics assistant. Score the requested dimension on a 0-100 scale and justify the score briefly before giving it.`

// scoreRegex matches the trailing number on the response's last line.
var scoreRegex = regexp.MustCompile(`([+-]?\d+)\s*$`)

// maybeScoreEarly kicks off the instruction and context effectiveness
// passes once per run, after the first final decision. The prompt inputs
// are captured up front; the judging itself runs in the background.
func (l *Loop) maybeScoreEarly(env *runEnv, view *contexthub.ContextView, dec *models.PlannerDecision) {
	if !env.cfg.scoringEnabled || env.earlyScored || l.rt.Completer == nil || l.rt.Services.Scores == nil {
		return
	}
	env.earlyScored = true

	instructions := view.RenderSection("instructions")
	schemas := view.RenderSection("schemas")
	planSummary := string(dec.PlanType)
	if dec.ReasoningMessage != "" {
		planSummary += ": " + dec.ReasoningMessage
	}

	executionID := env.exec.ID
	question := env.rc.UserMessage
	logger := env.logger

	go func() {
		l.scoreOne(executionID, scoreKindInstructions, fmt.Sprintf(
			"Question:\n%s\n\nLoaded instructions:\n%s\n\nFirst plan:\n%s\n\nScore how much the loaded instructions helped shape a correct plan for this question.\n\n%s",
			question, orEmpty(instructions), planSummary, scoreOutputSchema), logger)
		l.scoreOne(executionID, scoreKindContext, fmt.Sprintf(
			"Question:\n%s\n\nSchema context:\n%s\n\nFirst plan:\n%s\n\nScore how well the provided schema context covered what this question needs.\n\n%s",
			question, orEmpty(schemas), planSummary, scoreOutputSchema), logger)
	}()
}

// maybeScoreResponse kicks off the response quality pass after the run
// settles. Runs whether the answer came from the planner or a breaker.
func (l *Loop) maybeScoreResponse(env *runEnv) {
	if !env.cfg.scoringEnabled || l.rt.Completer == nil || l.rt.Services.Scores == nil {
		return
	}
	answer := env.state.finalAnswer
	if answer == "" {
		return
	}

	executionID := env.exec.ID
	question := env.rc.UserMessage
	logger := env.logger

	go func() {
		l.scoreOne(executionID, scoreKindResponse, fmt.Sprintf(
			"Question:\n%s\n\nFinal answer:\n%s\n\nScore how completely and accurately the answer resolves the question.\n\n%s",
			question, answer, scoreOutputSchema), logger)
	}()
}

// scoreOne runs one judge pass end to end: pending row, single-shot
// completion, extraction, terminal row state.
func (l *Loop) scoreOne(executionID, kind, userPrompt string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	row, err := l.rt.Services.Scores.CreatePendingScore(ctx, executionID, kind)
	if err != nil {
		logger.Warn("Failed to create pending score", "kind", kind, "error", err)
		return
	}

	resp, err := l.rt.Completer.Complete(ctx, &planner.CompleteRequest{
		SystemPrompt: scoreSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		l.failScore(ctx, row.ID, kind, err, logger)
		return
	}

	score, rationale, err := extractScore(resp.Text)
	if err != nil {
		l.failScore(ctx, row.ID, kind, err, logger)
		return
	}
	if _, err := l.rt.Services.Scores.CompleteScore(ctx, row.ID, score, rationale); err != nil {
		logger.Warn("Failed to store score", "kind", kind, "error", err)
	}
}

func (l *Loop) failScore(ctx context.Context, scoreID, kind string, cause error, logger *slog.Logger) {
	logger.Warn("Judge pass failed", "kind", kind, "error", cause)
	if _, err := l.rt.Services.Scores.FailScore(ctx, scoreID, cause.Error()); err != nil {
		logger.Warn("Failed to mark score failed", "kind", kind, "error", err)
	}
}

// extractScore parses the judge response: the score sits alone on the last
// line, the rationale is everything before it. Out-of-range values are
// clamped rather than rejected.
func extractScore(text string) (int, string, error) {
	text = strings.TrimRight(text, "\n\r ")
	if text == "" {
		return 0, "", fmt.Errorf("empty judge response")
	}

	lastNewline := strings.LastIndex(text, "\n")
	lastLine := text
	rationale := ""
	if lastNewline != -1 {
		lastLine = text[lastNewline+1:]
		rationale = strings.TrimSpace(text[:lastNewline])
	}

	match := scoreRegex.FindStringSubmatch(strings.TrimSpace(lastLine))
	if match == nil {
		return 0, "", fmt.Errorf("no numeric score on last line: %q", lastLine)
	}
	score, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, "", fmt.Errorf("unparseable score %q: %w", match[1], err)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, rationale, nil
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
