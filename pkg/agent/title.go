package agent

import (
	"context"
	"strings"
	"time"

	"github.com/quarryhq/quarry/pkg/planner"
)

const (
	titleTimeout   = 15 * time.Second
	titleMaxLength = 80
)

const titleSystemPrompt = `You name analytics reports. Reply with a short descriptive title for the conversation, at most eight words, plain text, no quotes.`

// maybeSynthesizeTitle names the report after its very first completion.
// Everything here is best-effort: a failed call leaves the default title.
func (l *Loop) maybeSynthesizeTitle(ctx context.Context, env *runEnv) {
	if l.rt.Completer == nil || l.rt.Services.Reports == nil || l.rt.Services.Completions == nil {
		return
	}
	reportID := env.run.Completion.ReportID

	count, err := l.rt.Services.Completions.CountForReport(ctx, reportID)
	if err != nil {
		env.logger.Warn("Failed to count report completions", "error", err)
		return
	}
	if count != 1 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, titleTimeout)
	defer cancel()

	resp, err := l.rt.Completer.Complete(ctx, &planner.CompleteRequest{
		SystemPrompt: titleSystemPrompt,
		UserPrompt:   "Question:\n" + env.rc.UserMessage + "\n\nAnswer:\n" + env.state.finalAnswer,
	})
	if err != nil {
		env.logger.Warn("Title synthesis failed", "error", err)
		return
	}

	title := cleanTitle(resp.Text)
	if title == "" {
		return
	}
	if _, err := l.rt.Services.Reports.SetTitle(ctx, reportID, title); err != nil {
		env.logger.Warn("Failed to set report title", "title", title, "error", err)
	}
}

// cleanTitle flattens the model reply to a single plain line and truncates
// it at a word boundary.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if i := strings.IndexAny(title, "\n\r"); i != -1 {
		title = title[:i]
	}
	title = strings.Trim(title, `"'`)
	title = strings.TrimSpace(title)
	if len(title) <= titleMaxLength {
		return title
	}
	cut := title[:titleMaxLength]
	if i := strings.LastIndex(cut, " "); i > titleMaxLength/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:-")
}
