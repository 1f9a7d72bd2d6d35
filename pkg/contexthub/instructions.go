package contexthub

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Instruction load modes. Always-mode instructions are included in every
// run; intelligent ones are retrieved by matching the user query.
const (
	LoadModeAlways      = "always"
	LoadModeIntelligent = "intelligent"
)

// Instruction is one organization guidance entry as the hub sees it.
type Instruction struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	LoadMode string `json:"load_mode"`
}

// LoadedInstruction is an instruction selected for this run together with
// the reason it was loaded: "always" or "search_match:<score>".
type LoadedInstruction struct {
	Instruction
	LoadReason string `json:"load_reason"`
}

// SelectInstructions picks the instructions for one run: every always-mode
// instruction plus the top-K intelligent matches against the user query.
func SelectInstructions(query string, candidates []Instruction, topK int) []LoadedInstruction {
	selected := make([]LoadedInstruction, 0, len(candidates))

	type match struct {
		inst  Instruction
		score float64
	}
	var matches []match

	queryTokens := tokenize(query)
	for _, inst := range candidates {
		switch inst.LoadMode {
		case LoadModeAlways:
			selected = append(selected, LoadedInstruction{Instruction: inst, LoadReason: "always"})
		case LoadModeIntelligent:
			score := matchScore(queryTokens, inst.Text)
			if score > 0 {
				matches = append(matches, match{inst: inst, score: score})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if topK > 0 && topK < len(matches) {
		matches = matches[:topK]
	}
	for _, m := range matches {
		selected = append(selected, LoadedInstruction{
			Instruction: m.inst,
			LoadReason:  fmt.Sprintf("search_match:%.2f", m.score),
		})
	}
	return selected
}

// matchScore blends token overlap with substring coverage. Jaccard catches
// shared vocabulary; coverage catches query terms buried inside longer
// instruction words (revenue in "revenue_recognition").
func matchScore(queryTokens []string, text string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	instTokens := tokenize(text)
	j := jaccard(queryTokens, instTokens)
	c := 0.8 * substringCoverage(queryTokens, strings.ToLower(text))
	return math.Max(j, c)
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "do": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"how": {}, "in": {}, "is": {}, "it": {}, "me": {}, "my": {}, "of": {},
	"on": {}, "or": {}, "our": {}, "show": {}, "that": {}, "the": {},
	"this": {}, "to": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"who": {}, "why": {}, "will": {}, "with": {}, "you": {},
}

// tokenize lowercases, splits on non-alphanumerics, and drops stopwords
// and tokens shorter than two characters.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// substringCoverage is the fraction of query tokens found anywhere inside
// the instruction text.
func substringCoverage(queryTokens []string, lowerText string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	hits := 0
	for _, t := range queryTokens {
		if strings.Contains(lowerText, t) {
			hits++
		}
	}
	return float64(hits) / float64(len(queryTokens))
}
