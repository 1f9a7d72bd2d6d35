// Code generated by ent, DO NOT EDIT.

package instruction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldOrganizationID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldText, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCategory, v))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldAgentExecutionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldOrganizationID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldText, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldCategory, v))
}

// LoadModeEQ applies the EQ predicate on the "load_mode" field.
func LoadModeEQ(v LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldLoadMode, v))
}

// LoadModeNEQ applies the NEQ predicate on the "load_mode" field.
func LoadModeNEQ(v LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldLoadMode, v))
}

// LoadModeIn applies the In predicate on the "load_mode" field.
func LoadModeIn(vs ...LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldLoadMode, vs...))
}

// LoadModeNotIn applies the NotIn predicate on the "load_mode" field.
func LoadModeNotIn(vs ...LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldLoadMode, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldSource, vs...))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDIsNil applies the IsNil predicate on the "agent_execution_id" field.
func AgentExecutionIDIsNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldIsNull(FieldAgentExecutionID))
}

// AgentExecutionIDNotNil applies the NotNil predicate on the "agent_execution_id" field.
func AgentExecutionIDNotNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldNotNull(FieldAgentExecutionID))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instruction) predicate.Instruction {
	return predicate.Instruction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instruction) predicate.Instruction {
	return predicate.Instruction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instruction) predicate.Instruction {
	return predicate.Instruction(sql.NotPredicates(p))
}
