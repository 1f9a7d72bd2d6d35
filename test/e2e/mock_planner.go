package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/quarryhq/quarry/pkg/planner"
)

// PlanEntry defines a single scripted planning response.
type PlanEntry struct {
	// Response content (exactly one should be set)
	Text   string          // Shorthand: one token chunk plus a usage chunk
	Chunks []planner.Chunk // Pre-built chunks to return
	Err    error           // Return error from Plan()

	// Test control
	BlockUntilCancelled bool            // Hold the stream open until ctx is cancelled
	WaitCh              <-chan struct{} // Hold the stream until closed, then respond normally
	OnBlock             chan<- struct{} // Notified when the entry enters its blocking path
}

// ScriptedPlanner implements planner.Client with a scripted response
// sequence. Plan entries are consumed in call order; Complete calls are
// routed by the judge pass that issued them, recognized from the system
// prompt.
type ScriptedPlanner struct {
	mu       sync.Mutex
	plans    []PlanEntry
	planIdx  int
	requests []*planner.PlanRequest

	completes    []*planner.CompleteRequest
	titleReply   string
	scoreReply   string
	suggestReply string
}

// NewScriptedPlanner creates a planner whose single-shot passes answer with
// benign defaults until overridden.
func NewScriptedPlanner() *ScriptedPlanner {
	return &ScriptedPlanner{
		titleReply:   "Test Report",
		scoreReply:   "Covers the question adequately.\n80",
		suggestReply: "[]",
	}
}

// AddPlan appends a scripted planning response.
func (p *ScriptedPlanner) AddPlan(entry PlanEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plans = append(p.plans, entry)
}

// AddDecision appends a decision object serialized as one planning response.
func (p *ScriptedPlanner) AddDecision(decision map[string]any) {
	p.AddPlan(PlanEntry{Text: mustDecisionJSON(decision)})
}

func mustDecisionJSON(decision map[string]any) string {
	raw, err := json.Marshal(decision)
	if err != nil {
		panic(fmt.Sprintf("unmarshalable scripted decision: %v", err))
	}
	return string(raw)
}

// SetTitleReply overrides the report-title pass response.
func (p *ScriptedPlanner) SetTitleReply(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titleReply = text
}

// SetScoreReply overrides the judge-score pass response.
func (p *ScriptedPlanner) SetScoreReply(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scoreReply = text
}

// SetSuggestReply overrides the instruction-suggestion pass response.
func (p *ScriptedPlanner) SetSuggestReply(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestReply = text
}

// Plan implements planner.Client.
func (p *ScriptedPlanner) Plan(ctx context.Context, req *planner.PlanRequest) (<-chan planner.Chunk, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	if p.planIdx >= len(p.plans) {
		idx, total := p.planIdx, len(p.plans)
		p.mu.Unlock()
		return nil, fmt.Errorf("ScriptedPlanner: no more plan entries (call %d, scripted %d)", idx+1, total)
	}
	entry := p.plans[p.planIdx]
	p.planIdx++
	p.mu.Unlock()

	if entry.Err != nil {
		return nil, entry.Err
	}

	if entry.BlockUntilCancelled {
		ch := make(chan planner.Chunk)
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch, nil
	}

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			ch := make(chan planner.Chunk)
			close(ch)
			return ch, nil
		}
	}

	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []planner.Chunk{
			&planner.TokenChunk{Text: entry.Text},
			&planner.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		}
	}

	ch := make(chan planner.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Complete implements planner.Client; single-shot passes are answered by the
// reply configured for the matching judge.
func (p *ScriptedPlanner) Complete(_ context.Context, req *planner.CompleteRequest) (*planner.CompleteResponse, error) {
	p.mu.Lock()
	p.completes = append(p.completes, req)
	title, score, suggest := p.titleReply, p.scoreReply, p.suggestReply
	p.mu.Unlock()

	switch {
	case strings.Contains(req.SystemPrompt, "name analytics reports"):
		return &planner.CompleteResponse{Text: title}, nil
	case strings.Contains(req.SystemPrompt, "strict evaluator"):
		return &planner.CompleteResponse{Text: score}, nil
	case strings.Contains(req.SystemPrompt, "propose durable instructions"):
		return &planner.CompleteResponse{Text: suggest}, nil
	}
	return nil, fmt.Errorf("ScriptedPlanner: unexpected Complete system prompt: %.80s", req.SystemPrompt)
}

// Close implements planner.Client.
func (p *ScriptedPlanner) Close() error { return nil }

// PlanCallCount returns the number of Plan calls made so far.
func (p *ScriptedPlanner) PlanCallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// PlanRequests returns a snapshot of the captured planning requests.
func (p *ScriptedPlanner) PlanRequests() []*planner.PlanRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*planner.PlanRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

// CompleteCallsMatching counts Complete calls whose system prompt contains
// the marker.
func (p *ScriptedPlanner) CompleteCallsMatching(marker string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, req := range p.completes {
		if strings.Contains(req.SystemPrompt, marker) {
			n++
		}
	}
	return n
}

// answerDecision returns a decision that routes the final text through the
// answer_question tool, which closes the analysis from its observation.
func answerDecision(answer string) map[string]any {
	return map[string]any{
		"plan_type":         "research",
		"analysis_complete": false,
		"reasoning_message": "The question can be answered directly.",
		"action": map[string]any{
			"name":      "answer_question",
			"arguments": map[string]any{"answer": answer},
		},
	}
}

// closingDecision returns a decision that ends the run without an action.
func closingDecision(finalAnswer string) map[string]any {
	return map[string]any{
		"plan_type":         "research",
		"analysis_complete": true,
		"final_answer":      finalAnswer,
	}
}

// actionDecision returns a decision invoking one action-plan tool.
func actionDecision(tool string, args map[string]any) map[string]any {
	return map[string]any{
		"plan_type":         "action",
		"analysis_complete": false,
		"reasoning_message": "The data work requires the " + tool + " tool.",
		"action": map[string]any{
			"name":      tool,
			"arguments": args,
		},
	}
}

// researchDecision returns a decision invoking one research-plan tool.
func researchDecision(tool string, args map[string]any) map[string]any {
	return map[string]any{
		"plan_type":         "research",
		"analysis_complete": false,
		"action": map[string]any{
			"name":      tool,
			"arguments": args,
		},
	}
}
