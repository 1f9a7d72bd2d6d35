// Package builtin holds the tools the planner can select out of the box.
// They stay thin: argument handling, stage emission, and collaborator calls.
// Anything smarter lives behind the data-source gateway or the platform.
package builtin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quarryhq/quarry/pkg/tools"
)

// Register adds every builtin to the registry. Config overrides applied at
// registration may still disable individual tools.
func Register(r *tools.Registry) error {
	all := []tools.Tool{
		AnswerQuestion{},
		Clarify{},
		DescribeTable{},
		ExecuteQuery{},
		CreateWidget{},
		CreateData{},
		CreateAndExecuteCode{},
	}
	for _, tool := range all {
		if err := r.Register(tool); err != nil {
			return fmt.Errorf("register builtin: %w", err)
		}
	}
	return nil
}

// send delivers one event unless the run is already cancelled.
func send(ctx context.Context, ch chan<- tools.Event, ev tools.Event) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func mapArg(args map[string]any, key string) map[string]any {
	v, _ := args[key].(map[string]any)
	return v
}

func sliceArg(args map[string]any, key string) []any {
	v, _ := args[key].([]any)
	return v
}

func requireString(args map[string]any, key string) (string, error) {
	v := strings.TrimSpace(stringArg(args, key))
	if v == "" {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return v, nil
}

// errNoSources reports a runtime context without a data-source gateway.
var errNoSources = errors.New("no data sources configured")

// excerpt flattens text to one line and truncates it for summaries.
func excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max > 0 && len(s) > max {
		return s[:max] + "…"
	}
	return s
}

// chunkText splits text into partial-sized pieces, preferring whitespace
// boundaries so words survive intact.
func chunkText(s string, size int) []string {
	if size <= 0 || len(s) <= size {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var chunks []string
	for len(s) > size {
		cut := size
		if idx := strings.LastIndexAny(s[:size], " \n\t"); idx > size/2 {
			cut = idx + 1
		}
		chunks = append(chunks, s[:cut])
		s = s[cut:]
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}

const summaryLimit = 700
