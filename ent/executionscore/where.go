// Code generated by ent, DO NOT EDIT.

package executionscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContainsFold(FieldID, id))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldAgentExecutionID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldScore, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldRationale, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldErrorMessage, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldKind, vs...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotNull(FieldScore))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContainsFold(FieldRationale, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasAgentExecution applies the HasEdge predicate on the "agent_execution" edge.
func HasAgentExecution() predicate.ExecutionScore {
	return predicate.ExecutionScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentExecutionTable, AgentExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentExecutionWith applies the HasEdge predicate on the "agent_execution" edge with a given conditions (other predicates).
func HasAgentExecutionWith(preds ...predicate.AgentExecution) predicate.ExecutionScore {
	return predicate.ExecutionScore(func(s *sql.Selector) {
		step := newAgentExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionScore) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionScore) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionScore) predicate.ExecutionScore {
	return predicate.ExecutionScore(sql.NotPredicates(p))
}
