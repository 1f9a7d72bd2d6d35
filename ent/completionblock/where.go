// Code generated by ent, DO NOT EDIT.

package completionblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldID, id))
}

// CompletionID applies equality check predicate on the "completion_id" field. It's identical to CompletionIDEQ.
func CompletionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCompletionID, v))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldAgentExecutionID, v))
}

// PlanDecisionID applies equality check predicate on the "plan_decision_id" field. It's identical to PlanDecisionIDEQ.
func PlanDecisionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldPlanDecisionID, v))
}

// ToolExecutionID applies equality check predicate on the "tool_execution_id" field. It's identical to ToolExecutionIDEQ.
func ToolExecutionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldToolExecutionID, v))
}

// BlockIndex applies equality check predicate on the "block_index" field. It's identical to BlockIndexEQ.
func BlockIndex(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldBlockIndex, v))
}

// LoopIndex applies equality check predicate on the "loop_index" field. It's identical to LoopIndexEQ.
func LoopIndex(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldLoopIndex, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldTitle, v))
}

// Icon applies equality check predicate on the "icon" field. It's identical to IconEQ.
func Icon(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldIcon, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldContent, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldReasoning, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletionIDEQ applies the EQ predicate on the "completion_id" field.
func CompletionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCompletionID, v))
}

// CompletionIDNEQ applies the NEQ predicate on the "completion_id" field.
func CompletionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldCompletionID, v))
}

// CompletionIDIn applies the In predicate on the "completion_id" field.
func CompletionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldCompletionID, vs...))
}

// CompletionIDNotIn applies the NotIn predicate on the "completion_id" field.
func CompletionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldCompletionID, vs...))
}

// CompletionIDGT applies the GT predicate on the "completion_id" field.
func CompletionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldCompletionID, v))
}

// CompletionIDGTE applies the GTE predicate on the "completion_id" field.
func CompletionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldCompletionID, v))
}

// CompletionIDLT applies the LT predicate on the "completion_id" field.
func CompletionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldCompletionID, v))
}

// CompletionIDLTE applies the LTE predicate on the "completion_id" field.
func CompletionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldCompletionID, v))
}

// CompletionIDContains applies the Contains predicate on the "completion_id" field.
func CompletionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldCompletionID, v))
}

// CompletionIDHasPrefix applies the HasPrefix predicate on the "completion_id" field.
func CompletionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldCompletionID, v))
}

// CompletionIDHasSuffix applies the HasSuffix predicate on the "completion_id" field.
func CompletionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldCompletionID, v))
}

// CompletionIDEqualFold applies the EqualFold predicate on the "completion_id" field.
func CompletionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldCompletionID, v))
}

// CompletionIDContainsFold applies the ContainsFold predicate on the "completion_id" field.
func CompletionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldCompletionID, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldSourceType, vs...))
}

// PlanDecisionIDEQ applies the EQ predicate on the "plan_decision_id" field.
func PlanDecisionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldPlanDecisionID, v))
}

// PlanDecisionIDNEQ applies the NEQ predicate on the "plan_decision_id" field.
func PlanDecisionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldPlanDecisionID, v))
}

// PlanDecisionIDIn applies the In predicate on the "plan_decision_id" field.
func PlanDecisionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldPlanDecisionID, vs...))
}

// PlanDecisionIDNotIn applies the NotIn predicate on the "plan_decision_id" field.
func PlanDecisionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldPlanDecisionID, vs...))
}

// PlanDecisionIDGT applies the GT predicate on the "plan_decision_id" field.
func PlanDecisionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldPlanDecisionID, v))
}

// PlanDecisionIDGTE applies the GTE predicate on the "plan_decision_id" field.
func PlanDecisionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldPlanDecisionID, v))
}

// PlanDecisionIDLT applies the LT predicate on the "plan_decision_id" field.
func PlanDecisionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldPlanDecisionID, v))
}

// PlanDecisionIDLTE applies the LTE predicate on the "plan_decision_id" field.
func PlanDecisionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldPlanDecisionID, v))
}

// PlanDecisionIDContains applies the Contains predicate on the "plan_decision_id" field.
func PlanDecisionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldPlanDecisionID, v))
}

// PlanDecisionIDHasPrefix applies the HasPrefix predicate on the "plan_decision_id" field.
func PlanDecisionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldPlanDecisionID, v))
}

// PlanDecisionIDHasSuffix applies the HasSuffix predicate on the "plan_decision_id" field.
func PlanDecisionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldPlanDecisionID, v))
}

// PlanDecisionIDIsNil applies the IsNil predicate on the "plan_decision_id" field.
func PlanDecisionIDIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldPlanDecisionID))
}

// PlanDecisionIDNotNil applies the NotNil predicate on the "plan_decision_id" field.
func PlanDecisionIDNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldPlanDecisionID))
}

// PlanDecisionIDEqualFold applies the EqualFold predicate on the "plan_decision_id" field.
func PlanDecisionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldPlanDecisionID, v))
}

// PlanDecisionIDContainsFold applies the ContainsFold predicate on the "plan_decision_id" field.
func PlanDecisionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldPlanDecisionID, v))
}

// ToolExecutionIDEQ applies the EQ predicate on the "tool_execution_id" field.
func ToolExecutionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDNEQ applies the NEQ predicate on the "tool_execution_id" field.
func ToolExecutionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDIn applies the In predicate on the "tool_execution_id" field.
func ToolExecutionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDNotIn applies the NotIn predicate on the "tool_execution_id" field.
func ToolExecutionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDGT applies the GT predicate on the "tool_execution_id" field.
func ToolExecutionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldToolExecutionID, v))
}

// ToolExecutionIDGTE applies the GTE predicate on the "tool_execution_id" field.
func ToolExecutionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldToolExecutionID, v))
}

// ToolExecutionIDLT applies the LT predicate on the "tool_execution_id" field.
func ToolExecutionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldToolExecutionID, v))
}

// ToolExecutionIDLTE applies the LTE predicate on the "tool_execution_id" field.
func ToolExecutionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldToolExecutionID, v))
}

// ToolExecutionIDContains applies the Contains predicate on the "tool_execution_id" field.
func ToolExecutionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldToolExecutionID, v))
}

// ToolExecutionIDHasPrefix applies the HasPrefix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldToolExecutionID, v))
}

// ToolExecutionIDHasSuffix applies the HasSuffix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldToolExecutionID, v))
}

// ToolExecutionIDIsNil applies the IsNil predicate on the "tool_execution_id" field.
func ToolExecutionIDIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldToolExecutionID))
}

// ToolExecutionIDNotNil applies the NotNil predicate on the "tool_execution_id" field.
func ToolExecutionIDNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldToolExecutionID))
}

// ToolExecutionIDEqualFold applies the EqualFold predicate on the "tool_execution_id" field.
func ToolExecutionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldToolExecutionID, v))
}

// ToolExecutionIDContainsFold applies the ContainsFold predicate on the "tool_execution_id" field.
func ToolExecutionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldToolExecutionID, v))
}

// BlockIndexEQ applies the EQ predicate on the "block_index" field.
func BlockIndexEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldBlockIndex, v))
}

// BlockIndexNEQ applies the NEQ predicate on the "block_index" field.
func BlockIndexNEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldBlockIndex, v))
}

// BlockIndexIn applies the In predicate on the "block_index" field.
func BlockIndexIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldBlockIndex, vs...))
}

// BlockIndexNotIn applies the NotIn predicate on the "block_index" field.
func BlockIndexNotIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldBlockIndex, vs...))
}

// BlockIndexGT applies the GT predicate on the "block_index" field.
func BlockIndexGT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldBlockIndex, v))
}

// BlockIndexGTE applies the GTE predicate on the "block_index" field.
func BlockIndexGTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldBlockIndex, v))
}

// BlockIndexLT applies the LT predicate on the "block_index" field.
func BlockIndexLT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldBlockIndex, v))
}

// BlockIndexLTE applies the LTE predicate on the "block_index" field.
func BlockIndexLTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldBlockIndex, v))
}

// LoopIndexEQ applies the EQ predicate on the "loop_index" field.
func LoopIndexEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldLoopIndex, v))
}

// LoopIndexNEQ applies the NEQ predicate on the "loop_index" field.
func LoopIndexNEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldLoopIndex, v))
}

// LoopIndexIn applies the In predicate on the "loop_index" field.
func LoopIndexIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldLoopIndex, vs...))
}

// LoopIndexNotIn applies the NotIn predicate on the "loop_index" field.
func LoopIndexNotIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldLoopIndex, vs...))
}

// LoopIndexGT applies the GT predicate on the "loop_index" field.
func LoopIndexGT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldLoopIndex, v))
}

// LoopIndexGTE applies the GTE predicate on the "loop_index" field.
func LoopIndexGTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldLoopIndex, v))
}

// LoopIndexLT applies the LT predicate on the "loop_index" field.
func LoopIndexLT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldLoopIndex, v))
}

// LoopIndexLTE applies the LTE predicate on the "loop_index" field.
func LoopIndexLTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldLoopIndex, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldStatus, vs...))
}

// IconEQ applies the EQ predicate on the "icon" field.
func IconEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldIcon, v))
}

// IconNEQ applies the NEQ predicate on the "icon" field.
func IconNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldIcon, v))
}

// IconIn applies the In predicate on the "icon" field.
func IconIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldIcon, vs...))
}

// IconNotIn applies the NotIn predicate on the "icon" field.
func IconNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldIcon, vs...))
}

// IconGT applies the GT predicate on the "icon" field.
func IconGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldIcon, v))
}

// IconGTE applies the GTE predicate on the "icon" field.
func IconGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldIcon, v))
}

// IconLT applies the LT predicate on the "icon" field.
func IconLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldIcon, v))
}

// IconLTE applies the LTE predicate on the "icon" field.
func IconLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldIcon, v))
}

// IconContains applies the Contains predicate on the "icon" field.
func IconContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldIcon, v))
}

// IconHasPrefix applies the HasPrefix predicate on the "icon" field.
func IconHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldIcon, v))
}

// IconHasSuffix applies the HasSuffix predicate on the "icon" field.
func IconHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldIcon, v))
}

// IconEqualFold applies the EqualFold predicate on the "icon" field.
func IconEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldIcon, v))
}

// IconContainsFold applies the ContainsFold predicate on the "icon" field.
func IconContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldIcon, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldContent, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldReasoning, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompletion applies the HasEdge predicate on the "completion" edge.
func HasCompletion() predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompletionTable, CompletionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompletionWith applies the HasEdge predicate on the "completion" edge with a given conditions (other predicates).
func HasCompletionWith(preds ...predicate.Completion) predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := newCompletionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentExecution applies the HasEdge predicate on the "agent_execution" edge.
func HasAgentExecution() predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentExecutionWith applies the HasEdge predicate on the "agent_execution" edge with a given conditions (other predicates).
func HasAgentExecutionWith(preds ...predicate.AgentExecution) predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := newAgentExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionBlock) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionBlock) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionBlock) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.NotPredicates(p))
}
