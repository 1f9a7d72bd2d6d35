// Code generated by ent, DO NOT EDIT.

package contextsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContainsFold(FieldID, id))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldAgentExecutionID, v))
}

// LoopIndex applies equality check predicate on the "loop_index" field. It's identical to LoopIndexEQ.
func LoopIndex(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldLoopIndex, v))
}

// PromptText applies equality check predicate on the "prompt_text" field. It's identical to PromptTextEQ.
func PromptText(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldPromptText, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldPromptTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldKind, vs...))
}

// LoopIndexEQ applies the EQ predicate on the "loop_index" field.
func LoopIndexEQ(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldLoopIndex, v))
}

// LoopIndexNEQ applies the NEQ predicate on the "loop_index" field.
func LoopIndexNEQ(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldLoopIndex, v))
}

// LoopIndexIn applies the In predicate on the "loop_index" field.
func LoopIndexIn(vs ...int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldLoopIndex, vs...))
}

// LoopIndexNotIn applies the NotIn predicate on the "loop_index" field.
func LoopIndexNotIn(vs ...int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldLoopIndex, vs...))
}

// LoopIndexGT applies the GT predicate on the "loop_index" field.
func LoopIndexGT(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldLoopIndex, v))
}

// LoopIndexGTE applies the GTE predicate on the "loop_index" field.
func LoopIndexGTE(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldLoopIndex, v))
}

// LoopIndexLT applies the LT predicate on the "loop_index" field.
func LoopIndexLT(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldLoopIndex, v))
}

// LoopIndexLTE applies the LTE predicate on the "loop_index" field.
func LoopIndexLTE(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldLoopIndex, v))
}

// PromptTextEQ applies the EQ predicate on the "prompt_text" field.
func PromptTextEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldPromptText, v))
}

// PromptTextNEQ applies the NEQ predicate on the "prompt_text" field.
func PromptTextNEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldPromptText, v))
}

// PromptTextIn applies the In predicate on the "prompt_text" field.
func PromptTextIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldPromptText, vs...))
}

// PromptTextNotIn applies the NotIn predicate on the "prompt_text" field.
func PromptTextNotIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldPromptText, vs...))
}

// PromptTextGT applies the GT predicate on the "prompt_text" field.
func PromptTextGT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldPromptText, v))
}

// PromptTextGTE applies the GTE predicate on the "prompt_text" field.
func PromptTextGTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldPromptText, v))
}

// PromptTextLT applies the LT predicate on the "prompt_text" field.
func PromptTextLT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldPromptText, v))
}

// PromptTextLTE applies the LTE predicate on the "prompt_text" field.
func PromptTextLTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldPromptText, v))
}

// PromptTextContains applies the Contains predicate on the "prompt_text" field.
func PromptTextContains(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContains(FieldPromptText, v))
}

// PromptTextHasPrefix applies the HasPrefix predicate on the "prompt_text" field.
func PromptTextHasPrefix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasPrefix(FieldPromptText, v))
}

// PromptTextHasSuffix applies the HasSuffix predicate on the "prompt_text" field.
func PromptTextHasSuffix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasSuffix(FieldPromptText, v))
}

// PromptTextIsNil applies the IsNil predicate on the "prompt_text" field.
func PromptTextIsNil() predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIsNull(FieldPromptText))
}

// PromptTextNotNil applies the NotNil predicate on the "prompt_text" field.
func PromptTextNotNil() predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotNull(FieldPromptText))
}

// PromptTextEqualFold applies the EqualFold predicate on the "prompt_text" field.
func PromptTextEqualFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEqualFold(FieldPromptText, v))
}

// PromptTextContainsFold applies the ContainsFold predicate on the "prompt_text" field.
func PromptTextContainsFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContainsFold(FieldPromptText, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotNull(FieldPromptTokens))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgentExecution applies the HasEdge predicate on the "agent_execution" edge.
func HasAgentExecution() predicate.ContextSnapshot {
	return predicate.ContextSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentExecutionWith applies the HasEdge predicate on the "agent_execution" edge with a given conditions (other predicates).
func HasAgentExecutionWith(preds ...predicate.AgentExecution) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(func(s *sql.Selector) {
		step := newAgentExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextSnapshot) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextSnapshot) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextSnapshot) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.NotPredicates(p))
}
