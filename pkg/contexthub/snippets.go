package contexthub

import (
	"sort"
	"strings"
	"time"
)

// errorExcerptLimit bounds the failure excerpt rendered into the prompt.
const errorExcerptLimit = 180

// Snippet is one historical step the hub can recall: the query or code it
// ran, the columns its data model produced, and its track record.
type Snippet struct {
	StepID     string    `json:"step_id"`
	Columns    []string  `json:"columns"`
	Code       string    `json:"code"`
	Successes  int       `json:"successes"`
	Failures   int       `json:"failures"`
	Feedback   int       `json:"feedback"`
	LastUsedAt time.Time `json:"last_used_at"`
	LastError  string    `json:"last_error,omitempty"`
}

// ScoredSnippet is a recalled snippet with its relevance score. For failed
// recalls ErrorExcerpt carries the one-line trimmed failure.
type ScoredSnippet struct {
	Snippet
	Score        float64 `json:"score"`
	ErrorExcerpt string  `json:"error_excerpt,omitempty"`
}

// RecallSnippets returns the top-K successful snippets relevant to the
// candidate columns. Similarity dominates; track record and freshness
// break ties.
func RecallSnippets(candidateColumns []string, corpus []Snippet, now time.Time, topK int) []ScoredSnippet {
	var scored []ScoredSnippet
	for _, sn := range corpus {
		if sn.Successes == 0 {
			continue
		}
		sim := jaccard(candidateColumns, sn.Columns)
		if sim == 0 {
			continue
		}
		score := 0.55*sim +
			0.20*successRate(sn) +
			0.20*clamp(float64(sn.Feedback)/3, -1, 1) +
			0.05*recency(sn.LastUsedAt, now)
		scored = append(scored, ScoredSnippet{Snippet: sn, Score: score})
	}
	return topSnippets(scored, topK)
}

// RecallFailedSnippets returns the top-K failed snippets relevant to the
// candidate columns, each with a one-line error excerpt. A history of
// later successes discounts the warning.
func RecallFailedSnippets(candidateColumns []string, corpus []Snippet, now time.Time, topK int) []ScoredSnippet {
	var scored []ScoredSnippet
	for _, sn := range corpus {
		if sn.Failures == 0 {
			continue
		}
		sim := jaccard(candidateColumns, sn.Columns)
		if sim == 0 {
			continue
		}
		failureEvidence := clamp(float64(sn.Failures)/3, 0, 1)
		score := 0.60*sim +
			0.20*recency(sn.LastUsedAt, now) +
			0.20*failureEvidence -
			0.05*successRate(sn)
		scored = append(scored, ScoredSnippet{
			Snippet:      sn,
			Score:        score,
			ErrorExcerpt: oneLine(sn.LastError, errorExcerptLimit),
		})
	}
	return topSnippets(scored, topK)
}

func topSnippets(scored []ScoredSnippet, topK int) []ScoredSnippet {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if topK > 0 && topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

func successRate(sn Snippet) float64 {
	total := sn.Successes + sn.Failures
	if total == 0 {
		return 0.5
	}
	return float64(sn.Successes) / float64(total)
}

// GeneratedColumns extracts the column name set from a candidate data
// model. Missing or malformed column entries are skipped.
func GeneratedColumns(dataModel map[string]any) []string {
	if dataModel == nil {
		return nil
	}
	raw, ok := dataModel["columns"].([]any)
	if !ok {
		return nil
	}
	var names []string
	for _, entry := range raw {
		col, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := col["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

// oneLine flattens a string to a single line and truncates it.
func oneLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
