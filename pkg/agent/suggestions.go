package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quarryhq/quarry/pkg/planner"
	"github.com/quarryhq/quarry/pkg/services"
)

const (
	suggestTimeout   = 30 * time.Second
	maxDraftTexts    = 3
	maxDraftTextSize = 500
)

const suggestSystemPrompt = `You review finished analytics conversations and propose durable instructions that would have made the run smoother. Respond with a JSON array of up to 3 objects shaped like {"text": "..."}. Each text must be a standalone, reusable instruction for future runs. Respond with [] when nothing is worth keeping.`

// maybeSuggest runs the instruction-suggestion post-step once analysis is
// complete. It fires when this run either followed a clarify turn with a
// widget, or shipped a widget that needed internal retries; both mean the
// organization's instructions left a gap worth writing down.
func (l *Loop) maybeSuggest(ctx context.Context, env *runEnv) {
	if !env.cfg.suggestionsEnabled || l.rt.Completer == nil || l.rt.Services.Instructions == nil {
		return
	}
	if !l.suggestTriggered(ctx, env) {
		return
	}

	env.emitter.suggestStarted(ctx)

	texts, err := l.draftSuggestions(ctx, env)
	if err != nil {
		env.logger.Warn("Instruction suggestion failed", "error", err)
		env.emitter.suggestFinished(ctx, 0, nil)
		return
	}
	if len(texts) == 0 {
		env.emitter.suggestFinished(ctx, 0, nil)
		return
	}

	drafts, err := l.rt.Services.Instructions.CreateSuggestedDrafts(
		ctx, env.rc.OrganizationID, env.exec.ID, texts)
	if err != nil {
		env.logger.Warn("Failed to persist suggested drafts", "count", len(texts), "error", err)
	}

	ids := make([]string, 0, len(drafts))
	for i, draft := range drafts {
		ids = append(ids, draft.ID)
		env.emitter.suggestPartial(ctx, i, draft.Text)
	}
	env.emitter.suggestFinished(ctx, len(drafts), ids)
}

// suggestTriggered checks the two lineage conditions. The clarify lineage
// looks strictly before this turn's submission so the current run's own
// tools never satisfy it.
func (l *Loop) suggestTriggered(ctx context.Context, env *runEnv) bool {
	if env.state.widgetRecovered {
		return true
	}
	if !env.state.usedCreateWidget || l.rt.Services.ToolHistory == nil {
		return false
	}
	prev, err := l.rt.Services.ToolHistory.PreviousToolInReport(
		ctx, env.run.Completion.ReportID, env.run.Completion.CreatedAt)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			env.logger.Warn("Failed to read previous tool for suggestion trigger", "error", err)
		}
		return false
	}
	return prev.ToolName == "clarify"
}

func (l *Loop) draftSuggestions(ctx context.Context, env *runEnv) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	resp, err := l.rt.Completer.Complete(ctx, &planner.CompleteRequest{
		SystemPrompt: suggestSystemPrompt,
		UserPrompt: fmt.Sprintf(
			"Question:\n%s\n\nFinal answer:\n%s\n\nPropose instructions that would have avoided the clarification or the retries seen in this run.",
			env.rc.UserMessage, env.state.finalAnswer),
	})
	if err != nil {
		return nil, fmt.Errorf("suggestion completion: %w", err)
	}
	return parseDraftTexts(resp.Text), nil
}

// parseDraftTexts pulls instruction texts out of the judge's reply. The
// reply should be a JSON array of {"text": ...} objects but bare strings
// and surrounding prose are tolerated; anything unparseable yields nothing.
func parseDraftTexts(raw string) []string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil
	}

	var items []any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		var text string
		switch v := item.(type) {
		case string:
			text = v
		case map[string]any:
			text, _ = v["text"].(string)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if len(text) > maxDraftTextSize {
			text = text[:maxDraftTextSize]
		}
		texts = append(texts, text)
		if len(texts) == maxDraftTexts {
			break
		}
	}
	return texts
}
