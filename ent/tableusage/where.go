// Code generated by ent, DO NOT EDIT.

package tableusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldOrganizationID, v))
}

// Datasource applies equality check predicate on the "datasource" field. It's identical to DatasourceEQ.
func Datasource(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldDatasource, v))
}

// TableName applies equality check predicate on the "table_name" field. It's identical to TableNameEQ.
func TableName(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldTableName, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldSuccess, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldFeedback, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldStepID, v))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldAgentExecutionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContainsFold(FieldOrganizationID, v))
}

// DatasourceEQ applies the EQ predicate on the "datasource" field.
func DatasourceEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldDatasource, v))
}

// DatasourceNEQ applies the NEQ predicate on the "datasource" field.
func DatasourceNEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldDatasource, v))
}

// DatasourceIn applies the In predicate on the "datasource" field.
func DatasourceIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldDatasource, vs...))
}

// DatasourceNotIn applies the NotIn predicate on the "datasource" field.
func DatasourceNotIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldDatasource, vs...))
}

// DatasourceGT applies the GT predicate on the "datasource" field.
func DatasourceGT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldDatasource, v))
}

// DatasourceGTE applies the GTE predicate on the "datasource" field.
func DatasourceGTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldDatasource, v))
}

// DatasourceLT applies the LT predicate on the "datasource" field.
func DatasourceLT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldDatasource, v))
}

// DatasourceLTE applies the LTE predicate on the "datasource" field.
func DatasourceLTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldDatasource, v))
}

// DatasourceContains applies the Contains predicate on the "datasource" field.
func DatasourceContains(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContains(FieldDatasource, v))
}

// DatasourceHasPrefix applies the HasPrefix predicate on the "datasource" field.
func DatasourceHasPrefix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasPrefix(FieldDatasource, v))
}

// DatasourceHasSuffix applies the HasSuffix predicate on the "datasource" field.
func DatasourceHasSuffix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasSuffix(FieldDatasource, v))
}

// DatasourceEqualFold applies the EqualFold predicate on the "datasource" field.
func DatasourceEqualFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEqualFold(FieldDatasource, v))
}

// DatasourceContainsFold applies the ContainsFold predicate on the "datasource" field.
func DatasourceContainsFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContainsFold(FieldDatasource, v))
}

// TableNameEQ applies the EQ predicate on the "table_name" field.
func TableNameEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldTableName, v))
}

// TableNameNEQ applies the NEQ predicate on the "table_name" field.
func TableNameNEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldTableName, v))
}

// TableNameIn applies the In predicate on the "table_name" field.
func TableNameIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldTableName, vs...))
}

// TableNameNotIn applies the NotIn predicate on the "table_name" field.
func TableNameNotIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldTableName, vs...))
}

// TableNameGT applies the GT predicate on the "table_name" field.
func TableNameGT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldTableName, v))
}

// TableNameGTE applies the GTE predicate on the "table_name" field.
func TableNameGTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldTableName, v))
}

// TableNameLT applies the LT predicate on the "table_name" field.
func TableNameLT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldTableName, v))
}

// TableNameLTE applies the LTE predicate on the "table_name" field.
func TableNameLTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldTableName, v))
}

// TableNameContains applies the Contains predicate on the "table_name" field.
func TableNameContains(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContains(FieldTableName, v))
}

// TableNameHasPrefix applies the HasPrefix predicate on the "table_name" field.
func TableNameHasPrefix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasPrefix(FieldTableName, v))
}

// TableNameHasSuffix applies the HasSuffix predicate on the "table_name" field.
func TableNameHasSuffix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasSuffix(FieldTableName, v))
}

// TableNameEqualFold applies the EqualFold predicate on the "table_name" field.
func TableNameEqualFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEqualFold(FieldTableName, v))
}

// TableNameContainsFold applies the ContainsFold predicate on the "table_name" field.
func TableNameContainsFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContainsFold(FieldTableName, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldSuccess, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v int) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldFeedback, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContainsFold(FieldStepID, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDIsNil applies the IsNil predicate on the "agent_execution_id" field.
func AgentExecutionIDIsNil() predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIsNull(FieldAgentExecutionID))
}

// AgentExecutionIDNotNil applies the NotNil predicate on the "agent_execution_id" field.
func AgentExecutionIDNotNil() predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotNull(FieldAgentExecutionID))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TableUsage {
	return predicate.TableUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TableUsage) predicate.TableUsage {
	return predicate.TableUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TableUsage) predicate.TableUsage {
	return predicate.TableUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TableUsage) predicate.TableUsage {
	return predicate.TableUsage(sql.NotPredicates(p))
}
