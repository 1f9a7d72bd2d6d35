// Code generated by ent, DO NOT EDIT.

package plandecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContainsFold(FieldID, id))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldAgentExecutionID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldSeq, v))
}

// LoopIndex applies equality check predicate on the "loop_index" field. It's identical to LoopIndexEQ.
func LoopIndex(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldLoopIndex, v))
}

// AnalysisComplete applies equality check predicate on the "analysis_complete" field. It's identical to AnalysisCompleteEQ.
func AnalysisComplete(v bool) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldAnalysisComplete, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldReasoning, v))
}

// Assistant applies equality check predicate on the "assistant" field. It's identical to AssistantEQ.
func Assistant(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldAssistant, v))
}

// FinalAnswer applies equality check predicate on the "final_answer" field. It's identical to FinalAnswerEQ.
func FinalAnswer(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldFinalAnswer, v))
}

// ActionName applies equality check predicate on the "action_name" field. It's identical to ActionNameEQ.
func ActionName(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldActionName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldSeq, v))
}

// LoopIndexEQ applies the EQ predicate on the "loop_index" field.
func LoopIndexEQ(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldLoopIndex, v))
}

// LoopIndexNEQ applies the NEQ predicate on the "loop_index" field.
func LoopIndexNEQ(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldLoopIndex, v))
}

// LoopIndexIn applies the In predicate on the "loop_index" field.
func LoopIndexIn(vs ...int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldLoopIndex, vs...))
}

// LoopIndexNotIn applies the NotIn predicate on the "loop_index" field.
func LoopIndexNotIn(vs ...int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldLoopIndex, vs...))
}

// LoopIndexGT applies the GT predicate on the "loop_index" field.
func LoopIndexGT(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldLoopIndex, v))
}

// LoopIndexGTE applies the GTE predicate on the "loop_index" field.
func LoopIndexGTE(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldLoopIndex, v))
}

// LoopIndexLT applies the LT predicate on the "loop_index" field.
func LoopIndexLT(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldLoopIndex, v))
}

// LoopIndexLTE applies the LTE predicate on the "loop_index" field.
func LoopIndexLTE(v int) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldLoopIndex, v))
}

// PlanTypeEQ applies the EQ predicate on the "plan_type" field.
func PlanTypeEQ(v PlanType) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldPlanType, v))
}

// PlanTypeNEQ applies the NEQ predicate on the "plan_type" field.
func PlanTypeNEQ(v PlanType) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldPlanType, v))
}

// PlanTypeIn applies the In predicate on the "plan_type" field.
func PlanTypeIn(vs ...PlanType) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldPlanType, vs...))
}

// PlanTypeNotIn applies the NotIn predicate on the "plan_type" field.
func PlanTypeNotIn(vs ...PlanType) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldPlanType, vs...))
}

// AnalysisCompleteEQ applies the EQ predicate on the "analysis_complete" field.
func AnalysisCompleteEQ(v bool) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldAnalysisComplete, v))
}

// AnalysisCompleteNEQ applies the NEQ predicate on the "analysis_complete" field.
func AnalysisCompleteNEQ(v bool) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldAnalysisComplete, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContainsFold(FieldReasoning, v))
}

// AssistantEQ applies the EQ predicate on the "assistant" field.
func AssistantEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldAssistant, v))
}

// AssistantNEQ applies the NEQ predicate on the "assistant" field.
func AssistantNEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldAssistant, v))
}

// AssistantIn applies the In predicate on the "assistant" field.
func AssistantIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldAssistant, vs...))
}

// AssistantNotIn applies the NotIn predicate on the "assistant" field.
func AssistantNotIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldAssistant, vs...))
}

// AssistantGT applies the GT predicate on the "assistant" field.
func AssistantGT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldAssistant, v))
}

// AssistantGTE applies the GTE predicate on the "assistant" field.
func AssistantGTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldAssistant, v))
}

// AssistantLT applies the LT predicate on the "assistant" field.
func AssistantLT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldAssistant, v))
}

// AssistantLTE applies the LTE predicate on the "assistant" field.
func AssistantLTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldAssistant, v))
}

// AssistantContains applies the Contains predicate on the "assistant" field.
func AssistantContains(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContains(FieldAssistant, v))
}

// AssistantHasPrefix applies the HasPrefix predicate on the "assistant" field.
func AssistantHasPrefix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasPrefix(FieldAssistant, v))
}

// AssistantHasSuffix applies the HasSuffix predicate on the "assistant" field.
func AssistantHasSuffix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasSuffix(FieldAssistant, v))
}

// AssistantIsNil applies the IsNil predicate on the "assistant" field.
func AssistantIsNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIsNull(FieldAssistant))
}

// AssistantNotNil applies the NotNil predicate on the "assistant" field.
func AssistantNotNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotNull(FieldAssistant))
}

// AssistantEqualFold applies the EqualFold predicate on the "assistant" field.
func AssistantEqualFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEqualFold(FieldAssistant, v))
}

// AssistantContainsFold applies the ContainsFold predicate on the "assistant" field.
func AssistantContainsFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContainsFold(FieldAssistant, v))
}

// FinalAnswerEQ applies the EQ predicate on the "final_answer" field.
func FinalAnswerEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldFinalAnswer, v))
}

// FinalAnswerNEQ applies the NEQ predicate on the "final_answer" field.
func FinalAnswerNEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldFinalAnswer, v))
}

// FinalAnswerIn applies the In predicate on the "final_answer" field.
func FinalAnswerIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldFinalAnswer, vs...))
}

// FinalAnswerNotIn applies the NotIn predicate on the "final_answer" field.
func FinalAnswerNotIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldFinalAnswer, vs...))
}

// FinalAnswerGT applies the GT predicate on the "final_answer" field.
func FinalAnswerGT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldFinalAnswer, v))
}

// FinalAnswerGTE applies the GTE predicate on the "final_answer" field.
func FinalAnswerGTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldFinalAnswer, v))
}

// FinalAnswerLT applies the LT predicate on the "final_answer" field.
func FinalAnswerLT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldFinalAnswer, v))
}

// FinalAnswerLTE applies the LTE predicate on the "final_answer" field.
func FinalAnswerLTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldFinalAnswer, v))
}

// FinalAnswerContains applies the Contains predicate on the "final_answer" field.
func FinalAnswerContains(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContains(FieldFinalAnswer, v))
}

// FinalAnswerHasPrefix applies the HasPrefix predicate on the "final_answer" field.
func FinalAnswerHasPrefix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasPrefix(FieldFinalAnswer, v))
}

// FinalAnswerHasSuffix applies the HasSuffix predicate on the "final_answer" field.
func FinalAnswerHasSuffix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasSuffix(FieldFinalAnswer, v))
}

// FinalAnswerIsNil applies the IsNil predicate on the "final_answer" field.
func FinalAnswerIsNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIsNull(FieldFinalAnswer))
}

// FinalAnswerNotNil applies the NotNil predicate on the "final_answer" field.
func FinalAnswerNotNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotNull(FieldFinalAnswer))
}

// FinalAnswerEqualFold applies the EqualFold predicate on the "final_answer" field.
func FinalAnswerEqualFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEqualFold(FieldFinalAnswer, v))
}

// FinalAnswerContainsFold applies the ContainsFold predicate on the "final_answer" field.
func FinalAnswerContainsFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContainsFold(FieldFinalAnswer, v))
}

// ActionNameEQ applies the EQ predicate on the "action_name" field.
func ActionNameEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldActionName, v))
}

// ActionNameNEQ applies the NEQ predicate on the "action_name" field.
func ActionNameNEQ(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldActionName, v))
}

// ActionNameIn applies the In predicate on the "action_name" field.
func ActionNameIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldActionName, vs...))
}

// ActionNameNotIn applies the NotIn predicate on the "action_name" field.
func ActionNameNotIn(vs ...string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldActionName, vs...))
}

// ActionNameGT applies the GT predicate on the "action_name" field.
func ActionNameGT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldActionName, v))
}

// ActionNameGTE applies the GTE predicate on the "action_name" field.
func ActionNameGTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldActionName, v))
}

// ActionNameLT applies the LT predicate on the "action_name" field.
func ActionNameLT(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldActionName, v))
}

// ActionNameLTE applies the LTE predicate on the "action_name" field.
func ActionNameLTE(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldActionName, v))
}

// ActionNameContains applies the Contains predicate on the "action_name" field.
func ActionNameContains(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContains(FieldActionName, v))
}

// ActionNameHasPrefix applies the HasPrefix predicate on the "action_name" field.
func ActionNameHasPrefix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasPrefix(FieldActionName, v))
}

// ActionNameHasSuffix applies the HasSuffix predicate on the "action_name" field.
func ActionNameHasSuffix(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldHasSuffix(FieldActionName, v))
}

// ActionNameIsNil applies the IsNil predicate on the "action_name" field.
func ActionNameIsNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIsNull(FieldActionName))
}

// ActionNameNotNil applies the NotNil predicate on the "action_name" field.
func ActionNameNotNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotNull(FieldActionName))
}

// ActionNameEqualFold applies the EqualFold predicate on the "action_name" field.
func ActionNameEqualFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEqualFold(FieldActionName, v))
}

// ActionNameContainsFold applies the ContainsFold predicate on the "action_name" field.
func ActionNameContainsFold(v string) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldContainsFold(FieldActionName, v))
}

// ActionArgsIsNil applies the IsNil predicate on the "action_args" field.
func ActionArgsIsNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIsNull(FieldActionArgs))
}

// ActionArgsNotNil applies the NotNil predicate on the "action_args" field.
func ActionArgsNotNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotNull(FieldActionArgs))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotNull(FieldMetrics))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PlanDecision {
	return predicate.PlanDecision(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgentExecution applies the HasEdge predicate on the "agent_execution" edge.
func HasAgentExecution() predicate.PlanDecision {
	return predicate.PlanDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentExecutionWith applies the HasEdge predicate on the "agent_execution" edge with a given conditions (other predicates).
func HasAgentExecutionWith(preds ...predicate.AgentExecution) predicate.PlanDecision {
	return predicate.PlanDecision(func(s *sql.Selector) {
		step := newAgentExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolExecutions applies the HasEdge predicate on the "tool_executions" edge.
func HasToolExecutions() predicate.PlanDecision {
	return predicate.PlanDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolExecutionsWith applies the HasEdge predicate on the "tool_executions" edge with a given conditions (other predicates).
func HasToolExecutionsWith(preds ...predicate.ToolExecution) predicate.PlanDecision {
	return predicate.PlanDecision(func(s *sql.Selector) {
		step := newToolExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanDecision) predicate.PlanDecision {
	return predicate.PlanDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanDecision) predicate.PlanDecision {
	return predicate.PlanDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanDecision) predicate.PlanDecision {
	return predicate.PlanDecision(sql.NotPredicates(p))
}
