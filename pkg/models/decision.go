package models

// SavePlanDecisionRequest upserts a decision row at its pinned seq. Partial
// and final updates for one decision share the same (execution, seq) key and
// therefore the same row.
type SavePlanDecisionRequest struct {
	AgentExecutionID string           `json:"agent_execution_id"`
	Seq              int              `json:"seq"`
	LoopIndex        int              `json:"loop_index"`
	PlanType         PlanType         `json:"plan_type"`
	AnalysisComplete bool             `json:"analysis_complete"`
	Reasoning        string           `json:"reasoning,omitempty"`
	Assistant        string           `json:"assistant,omitempty"`
	FinalAnswer      string           `json:"final_answer,omitempty"`
	ActionName       string           `json:"action_name,omitempty"`
	ActionArgs       map[string]any   `json:"action_args,omitempty"`
	Metrics          *DecisionMetrics `json:"metrics,omitempty"`
}
