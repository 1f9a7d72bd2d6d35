package planner

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/quarryhq/quarry/pkg/models"
)

// decisionSchemaJSON is the contract every final decision must satisfy.
// Unknown extra keys are tolerated; models pad their output often enough
// that rejecting them would turn harmless noise into retries.
const decisionSchemaJSON = `{
  "type": "object",
  "properties": {
    "plan_type": {"type": "string", "enum": ["research", "action"]},
    "reasoning_message": {"type": "string"},
    "assistant_message": {"type": "string"},
    "analysis_complete": {"type": "boolean"},
    "final_answer": {"type": "string"},
    "action": {
      "type": "object",
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "type": {"type": "string"},
        "arguments": {"type": "object"}
      },
      "required": ["name"]
    }
  },
  "required": ["plan_type", "analysis_complete"]
}`

var (
	decisionSchemaOnce sync.Once
	decisionSchema     *jsonschema.Schema
	decisionSchemaErr  error
)

func compiledDecisionSchema() (*jsonschema.Schema, error) {
	decisionSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(decisionSchemaJSON), &doc); err != nil {
			decisionSchemaErr = fmt.Errorf("unmarshal decision schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("decision.schema.json", doc); err != nil {
			decisionSchemaErr = fmt.Errorf("add decision schema: %w", err)
			return
		}
		decisionSchema, decisionSchemaErr = c.Compile("decision.schema.json")
	})
	return decisionSchema, decisionSchemaErr
}

// Decoder incrementally parses streamed planner output into typed decisions.
// Feed it raw token text as it arrives; it yields a new partial whenever the
// decoded fields advance. The decoder scans for the first JSON object, so
// markdown fences and leading prose around the payload are tolerated.
//
// Partials are best-effort: open strings and brackets are closed before
// unmarshalling, so a fragment that ends mid-string still yields the prefix
// decoded so far. Text fields only ever grow between partials. The action
// and metrics belong to the final decision and never appear in a partial.
type Decoder struct {
	buf  strings.Builder
	last string
}

// NewDecoder returns a decoder for one planning call.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends streamed text and returns a new partial decision when the
// decoded content advanced, or nil.
func (d *Decoder) Feed(text string) *models.PlannerDecision {
	if text == "" {
		return nil
	}
	d.buf.WriteString(text)

	fragment, ok := completeFragment(d.buf.String())
	if !ok {
		return nil
	}
	var decision models.PlannerDecision
	if err := json.Unmarshal([]byte(fragment), &decision); err != nil {
		// The prefix ends somewhere uncloseable, such as mid-key or inside
		// a bare literal. Later feeds complete it.
		return nil
	}
	sanitizePartial(&decision)
	if emptyPartial(&decision) {
		return nil
	}

	canonical, err := json.Marshal(&decision)
	if err != nil || string(canonical) == d.last {
		return nil
	}
	d.last = string(canonical)
	return &decision
}

// Final parses and validates the complete stream. Malformed or
// schema-invalid output comes back as a decision carrying a validation
// error so the loop can retry it; Final itself only fails when the decision
// schema cannot be compiled.
func (d *Decoder) Final() (*models.PlannerDecision, error) {
	schema, err := compiledDecisionSchema()
	if err != nil {
		return nil, err
	}

	payload, ok := extractObject(d.buf.String())
	if !ok {
		return invalidDecision("planner output does not contain a complete JSON object"), nil
	}

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return invalidDecision(fmt.Sprintf("planner output is not valid JSON: %v", err)), nil
	}
	if err := schema.Validate(doc); err != nil {
		return invalidDecision(fmt.Sprintf("planner output rejected by decision schema: %v", err)), nil
	}

	var decision models.PlannerDecision
	if err := json.Unmarshal([]byte(payload), &decision); err != nil {
		return invalidDecision(fmt.Sprintf("planner output does not decode: %v", err)), nil
	}
	return &decision, nil
}

func invalidDecision(msg string) *models.PlannerDecision {
	return &models.PlannerDecision{
		Error: &models.DecisionError{Code: models.ErrCodeValidation, Message: msg},
	}
}

// sanitizePartial strips fields whose truncated values would mislead: a
// half-streamed plan type or action name must not reach the loop.
func sanitizePartial(d *models.PlannerDecision) {
	if !d.PlanType.Valid() {
		d.PlanType = ""
	}
	d.Action = nil
	d.Metrics = nil
	d.Error = nil
}

func emptyPartial(d *models.PlannerDecision) bool {
	return d.PlanType == "" &&
		d.ReasoningMessage == "" &&
		d.AssistantMessage == "" &&
		d.FinalAnswer == "" &&
		!d.AnalysisComplete
}

// extractObject returns the first balanced JSON object in the text.
func extractObject(raw string) (string, bool) {
	s, ok := objectStart(raw)
	if !ok {
		return "", false
	}
	var closers []byte
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			closers = append(closers, '}')
		case '[':
			closers = append(closers, ']')
		case '}', ']':
			if len(closers) > 0 && closers[len(closers)-1] == c {
				closers = closers[:len(closers)-1]
			}
			if len(closers) == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// completeFragment closes the open strings, objects, and arrays of a JSON
// prefix so it can be unmarshalled. Reports false when no object has started.
func completeFragment(raw string) (string, bool) {
	if payload, ok := extractObject(raw); ok {
		return payload, true
	}
	s, ok := objectStart(raw)
	if !ok {
		return "", false
	}

	var closers []byte
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			closers = append(closers, '}')
		case '[':
			closers = append(closers, ']')
		case '}', ']':
			if len(closers) > 0 && closers[len(closers)-1] == c {
				closers = closers[:len(closers)-1]
			}
		}
	}

	if escaped {
		s = s[:len(s)-1]
	}
	if inString {
		s += `"`
	}
	t := strings.TrimRight(s, " \t\r\n")
	switch {
	case strings.HasSuffix(t, ":"):
		t += " null"
	case strings.HasSuffix(t, ","):
		t = t[:len(t)-1]
	}
	for i := len(closers) - 1; i >= 0; i-- {
		t += string(closers[i])
	}
	return t, true
}

// objectStart trims everything before the first '{'. Models lead with prose
// or a markdown fence often enough that scanning beats rejecting.
func objectStart(raw string) (string, bool) {
	idx := strings.IndexByte(raw, '{')
	if idx == -1 {
		return "", false
	}
	return raw[idx:], true
}
