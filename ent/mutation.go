// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/ent/event"
	"github.com/quarryhq/quarry/ent/executionscore"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/predicate"
	"github.com/quarryhq/quarry/ent/report"
	"github.com/quarryhq/quarry/ent/tableusage"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution  = "AgentExecution"
	TypeCompletion      = "Completion"
	TypeCompletionBlock = "CompletionBlock"
	TypeContextSnapshot = "ContextSnapshot"
	TypeEvent           = "Event"
	TypeExecutionScore  = "ExecutionScore"
	TypeInstruction     = "Instruction"
	TypePlanDecision    = "PlanDecision"
	TypeReport          = "Report"
	TypeTableUsage      = "TableUsage"
	TypeToolExecution   = "ToolExecution"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	organization_id        *string
	user_id                *string
	status                 *agentexecution.Status
	latest_seq             *int
	addlatest_seq          *int
	_config                *map[string]interface{}
	started_at             *time.Time
	completed_at           *time.Time
	total_duration_ms      *int
	addtotal_duration_ms   *int
	error_message          *string
	clearedFields          map[string]struct{}
	completion             *string
	clearedcompletion      bool
	report                 *string
	clearedreport          bool
	plan_decisions         map[string]struct{}
	removedplan_decisions  map[string]struct{}
	clearedplan_decisions  bool
	tool_executions        map[string]struct{}
	removedtool_executions map[string]struct{}
	clearedtool_executions bool
	blocks                 map[string]struct{}
	removedblocks          map[string]struct{}
	clearedblocks          bool
	snapshots              map[string]struct{}
	removedsnapshots       map[string]struct{}
	clearedsnapshots       bool
	scores                 map[string]struct{}
	removedscores          map[string]struct{}
	clearedscores          bool
	done                   bool
	oldValue               func(context.Context) (*AgentExecution, error)
	predicates             []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompletionID sets the "completion_id" field.
func (m *AgentExecutionMutation) SetCompletionID(s string) {
	m.completion = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *AgentExecutionMutation) CompletionID() (r string, exists bool) {
	v := m.completion
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *AgentExecutionMutation) ResetCompletionID() {
	m.completion = nil
}

// SetReportID sets the "report_id" field.
func (m *AgentExecutionMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *AgentExecutionMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *AgentExecutionMutation) ResetReportID() {
	m.report = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *AgentExecutionMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *AgentExecutionMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *AgentExecutionMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AgentExecutionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AgentExecutionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AgentExecutionMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetLatestSeq sets the "latest_seq" field.
func (m *AgentExecutionMutation) SetLatestSeq(i int) {
	m.latest_seq = &i
	m.addlatest_seq = nil
}

// LatestSeq returns the value of the "latest_seq" field in the mutation.
func (m *AgentExecutionMutation) LatestSeq() (r int, exists bool) {
	v := m.latest_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestSeq returns the old "latest_seq" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldLatestSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestSeq: %w", err)
	}
	return oldValue.LatestSeq, nil
}

// AddLatestSeq adds i to the "latest_seq" field.
func (m *AgentExecutionMutation) AddLatestSeq(i int) {
	if m.addlatest_seq != nil {
		*m.addlatest_seq += i
	} else {
		m.addlatest_seq = &i
	}
}

// AddedLatestSeq returns the value that was added to the "latest_seq" field in this mutation.
func (m *AgentExecutionMutation) AddedLatestSeq() (r int, exists bool) {
	v := m.addlatest_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatestSeq resets all changes to the "latest_seq" field.
func (m *AgentExecutionMutation) ResetLatestSeq() {
	m.latest_seq = nil
	m.addlatest_seq = nil
}

// SetConfig sets the "config" field.
func (m *AgentExecutionMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentExecutionMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentExecutionMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agentexecution.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentExecutionMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentExecutionMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agentexecution.FieldConfig)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (m *AgentExecutionMutation) SetTotalDurationMs(i int) {
	m.total_duration_ms = &i
	m.addtotal_duration_ms = nil
}

// TotalDurationMs returns the value of the "total_duration_ms" field in the mutation.
func (m *AgentExecutionMutation) TotalDurationMs() (r int, exists bool) {
	v := m.total_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDurationMs returns the old "total_duration_ms" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldTotalDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDurationMs: %w", err)
	}
	return oldValue.TotalDurationMs, nil
}

// AddTotalDurationMs adds i to the "total_duration_ms" field.
func (m *AgentExecutionMutation) AddTotalDurationMs(i int) {
	if m.addtotal_duration_ms != nil {
		*m.addtotal_duration_ms += i
	} else {
		m.addtotal_duration_ms = &i
	}
}

// AddedTotalDurationMs returns the value that was added to the "total_duration_ms" field in this mutation.
func (m *AgentExecutionMutation) AddedTotalDurationMs() (r int, exists bool) {
	v := m.addtotal_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDurationMs clears the value of the "total_duration_ms" field.
func (m *AgentExecutionMutation) ClearTotalDurationMs() {
	m.total_duration_ms = nil
	m.addtotal_duration_ms = nil
	m.clearedFields[agentexecution.FieldTotalDurationMs] = struct{}{}
}

// TotalDurationMsCleared returns if the "total_duration_ms" field was cleared in this mutation.
func (m *AgentExecutionMutation) TotalDurationMsCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldTotalDurationMs]
	return ok
}

// ResetTotalDurationMs resets all changes to the "total_duration_ms" field.
func (m *AgentExecutionMutation) ResetTotalDurationMs() {
	m.total_duration_ms = nil
	m.addtotal_duration_ms = nil
	delete(m.clearedFields, agentexecution.FieldTotalDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentexecution.FieldErrorMessage)
}

// ClearCompletion clears the "completion" edge to the Completion entity.
func (m *AgentExecutionMutation) ClearCompletion() {
	m.clearedcompletion = true
	m.clearedFields[agentexecution.FieldCompletionID] = struct{}{}
}

// CompletionCleared reports if the "completion" edge to the Completion entity was cleared.
func (m *AgentExecutionMutation) CompletionCleared() bool {
	return m.clearedcompletion
}

// CompletionIDs returns the "completion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompletionID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) CompletionIDs() (ids []string) {
	if id := m.completion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompletion resets all changes to the "completion" edge.
func (m *AgentExecutionMutation) ResetCompletion() {
	m.completion = nil
	m.clearedcompletion = false
}

// ClearReport clears the "report" edge to the Report entity.
func (m *AgentExecutionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[agentexecution.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *AgentExecutionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *AgentExecutionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddPlanDecisionIDs adds the "plan_decisions" edge to the PlanDecision entity by ids.
func (m *AgentExecutionMutation) AddPlanDecisionIDs(ids ...string) {
	if m.plan_decisions == nil {
		m.plan_decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.plan_decisions[ids[i]] = struct{}{}
	}
}

// ClearPlanDecisions clears the "plan_decisions" edge to the PlanDecision entity.
func (m *AgentExecutionMutation) ClearPlanDecisions() {
	m.clearedplan_decisions = true
}

// PlanDecisionsCleared reports if the "plan_decisions" edge to the PlanDecision entity was cleared.
func (m *AgentExecutionMutation) PlanDecisionsCleared() bool {
	return m.clearedplan_decisions
}

// RemovePlanDecisionIDs removes the "plan_decisions" edge to the PlanDecision entity by IDs.
func (m *AgentExecutionMutation) RemovePlanDecisionIDs(ids ...string) {
	if m.removedplan_decisions == nil {
		m.removedplan_decisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.plan_decisions, ids[i])
		m.removedplan_decisions[ids[i]] = struct{}{}
	}
}

// RemovedPlanDecisions returns the removed IDs of the "plan_decisions" edge to the PlanDecision entity.
func (m *AgentExecutionMutation) RemovedPlanDecisionsIDs() (ids []string) {
	for id := range m.removedplan_decisions {
		ids = append(ids, id)
	}
	return
}

// PlanDecisionsIDs returns the "plan_decisions" edge IDs in the mutation.
func (m *AgentExecutionMutation) PlanDecisionsIDs() (ids []string) {
	for id := range m.plan_decisions {
		ids = append(ids, id)
	}
	return
}

// ResetPlanDecisions resets all changes to the "plan_decisions" edge.
func (m *AgentExecutionMutation) ResetPlanDecisions() {
	m.plan_decisions = nil
	m.clearedplan_decisions = false
	m.removedplan_decisions = nil
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by ids.
func (m *AgentExecutionMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecution entity.
func (m *AgentExecutionMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecution entity was cleared.
func (m *AgentExecutionMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecution entity by IDs.
func (m *AgentExecutionMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecution entity.
func (m *AgentExecutionMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *AgentExecutionMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *AgentExecutionMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by ids.
func (m *AgentExecutionMutation) AddBlockIDs(ids ...string) {
	if m.blocks == nil {
		m.blocks = make(map[string]struct{})
	}
	for i := range ids {
		m.blocks[ids[i]] = struct{}{}
	}
}

// ClearBlocks clears the "blocks" edge to the CompletionBlock entity.
func (m *AgentExecutionMutation) ClearBlocks() {
	m.clearedblocks = true
}

// BlocksCleared reports if the "blocks" edge to the CompletionBlock entity was cleared.
func (m *AgentExecutionMutation) BlocksCleared() bool {
	return m.clearedblocks
}

// RemoveBlockIDs removes the "blocks" edge to the CompletionBlock entity by IDs.
func (m *AgentExecutionMutation) RemoveBlockIDs(ids ...string) {
	if m.removedblocks == nil {
		m.removedblocks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.blocks, ids[i])
		m.removedblocks[ids[i]] = struct{}{}
	}
}

// RemovedBlocks returns the removed IDs of the "blocks" edge to the CompletionBlock entity.
func (m *AgentExecutionMutation) RemovedBlocksIDs() (ids []string) {
	for id := range m.removedblocks {
		ids = append(ids, id)
	}
	return
}

// BlocksIDs returns the "blocks" edge IDs in the mutation.
func (m *AgentExecutionMutation) BlocksIDs() (ids []string) {
	for id := range m.blocks {
		ids = append(ids, id)
	}
	return
}

// ResetBlocks resets all changes to the "blocks" edge.
func (m *AgentExecutionMutation) ResetBlocks() {
	m.blocks = nil
	m.clearedblocks = false
	m.removedblocks = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the ContextSnapshot entity by ids.
func (m *AgentExecutionMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the ContextSnapshot entity.
func (m *AgentExecutionMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the ContextSnapshot entity was cleared.
func (m *AgentExecutionMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the ContextSnapshot entity by IDs.
func (m *AgentExecutionMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the ContextSnapshot entity.
func (m *AgentExecutionMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *AgentExecutionMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *AgentExecutionMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddScoreIDs adds the "scores" edge to the ExecutionScore entity by ids.
func (m *AgentExecutionMutation) AddScoreIDs(ids ...string) {
	if m.scores == nil {
		m.scores = make(map[string]struct{})
	}
	for i := range ids {
		m.scores[ids[i]] = struct{}{}
	}
}

// ClearScores clears the "scores" edge to the ExecutionScore entity.
func (m *AgentExecutionMutation) ClearScores() {
	m.clearedscores = true
}

// ScoresCleared reports if the "scores" edge to the ExecutionScore entity was cleared.
func (m *AgentExecutionMutation) ScoresCleared() bool {
	return m.clearedscores
}

// RemoveScoreIDs removes the "scores" edge to the ExecutionScore entity by IDs.
func (m *AgentExecutionMutation) RemoveScoreIDs(ids ...string) {
	if m.removedscores == nil {
		m.removedscores = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scores, ids[i])
		m.removedscores[ids[i]] = struct{}{}
	}
}

// RemovedScores returns the removed IDs of the "scores" edge to the ExecutionScore entity.
func (m *AgentExecutionMutation) RemovedScoresIDs() (ids []string) {
	for id := range m.removedscores {
		ids = append(ids, id)
	}
	return
}

// ScoresIDs returns the "scores" edge IDs in the mutation.
func (m *AgentExecutionMutation) ScoresIDs() (ids []string) {
	for id := range m.scores {
		ids = append(ids, id)
	}
	return
}

// ResetScores resets all changes to the "scores" edge.
func (m *AgentExecutionMutation) ResetScores() {
	m.scores = nil
	m.clearedscores = false
	m.removedscores = nil
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.completion != nil {
		fields = append(fields, agentexecution.FieldCompletionID)
	}
	if m.report != nil {
		fields = append(fields, agentexecution.FieldReportID)
	}
	if m.organization_id != nil {
		fields = append(fields, agentexecution.FieldOrganizationID)
	}
	if m.user_id != nil {
		fields = append(fields, agentexecution.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.latest_seq != nil {
		fields = append(fields, agentexecution.FieldLatestSeq)
	}
	if m._config != nil {
		fields = append(fields, agentexecution.FieldConfig)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.total_duration_ms != nil {
		fields = append(fields, agentexecution.FieldTotalDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldCompletionID:
		return m.CompletionID()
	case agentexecution.FieldReportID:
		return m.ReportID()
	case agentexecution.FieldOrganizationID:
		return m.OrganizationID()
	case agentexecution.FieldUserID:
		return m.UserID()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldLatestSeq:
		return m.LatestSeq()
	case agentexecution.FieldConfig:
		return m.Config()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	case agentexecution.FieldTotalDurationMs:
		return m.TotalDurationMs()
	case agentexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case agentexecution.FieldReportID:
		return m.OldReportID(ctx)
	case agentexecution.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case agentexecution.FieldUserID:
		return m.OldUserID(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldLatestSeq:
		return m.OldLatestSeq(ctx)
	case agentexecution.FieldConfig:
		return m.OldConfig(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentexecution.FieldTotalDurationMs:
		return m.OldTotalDurationMs(ctx)
	case agentexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case agentexecution.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case agentexecution.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case agentexecution.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldLatestSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestSeq(v)
		return nil
	case agentexecution.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentexecution.FieldTotalDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDurationMs(v)
		return nil
	case agentexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addlatest_seq != nil {
		fields = append(fields, agentexecution.FieldLatestSeq)
	}
	if m.addtotal_duration_ms != nil {
		fields = append(fields, agentexecution.FieldTotalDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldLatestSeq:
		return m.AddedLatestSeq()
	case agentexecution.FieldTotalDurationMs:
		return m.AddedTotalDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldLatestSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatestSeq(v)
		return nil
	case agentexecution.FieldTotalDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldConfig) {
		fields = append(fields, agentexecution.FieldConfig)
	}
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.FieldCleared(agentexecution.FieldTotalDurationMs) {
		fields = append(fields, agentexecution.FieldTotalDurationMs)
	}
	if m.FieldCleared(agentexecution.FieldErrorMessage) {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldConfig:
		m.ClearConfig()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentexecution.FieldTotalDurationMs:
		m.ClearTotalDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case agentexecution.FieldReportID:
		m.ResetReportID()
		return nil
	case agentexecution.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case agentexecution.FieldUserID:
		m.ResetUserID()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldLatestSeq:
		m.ResetLatestSeq()
		return nil
	case agentexecution.FieldConfig:
		m.ResetConfig()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentexecution.FieldTotalDurationMs:
		m.ResetTotalDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.completion != nil {
		edges = append(edges, agentexecution.EdgeCompletion)
	}
	if m.report != nil {
		edges = append(edges, agentexecution.EdgeReport)
	}
	if m.plan_decisions != nil {
		edges = append(edges, agentexecution.EdgePlanDecisions)
	}
	if m.tool_executions != nil {
		edges = append(edges, agentexecution.EdgeToolExecutions)
	}
	if m.blocks != nil {
		edges = append(edges, agentexecution.EdgeBlocks)
	}
	if m.snapshots != nil {
		edges = append(edges, agentexecution.EdgeSnapshots)
	}
	if m.scores != nil {
		edges = append(edges, agentexecution.EdgeScores)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeCompletion:
		if id := m.completion; id != nil {
			return []ent.Value{*id}
		}
	case agentexecution.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case agentexecution.EdgePlanDecisions:
		ids := make([]ent.Value, 0, len(m.plan_decisions))
		for id := range m.plan_decisions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.blocks))
		for id := range m.blocks {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeScores:
		ids := make([]ent.Value, 0, len(m.scores))
		for id := range m.scores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedplan_decisions != nil {
		edges = append(edges, agentexecution.EdgePlanDecisions)
	}
	if m.removedtool_executions != nil {
		edges = append(edges, agentexecution.EdgeToolExecutions)
	}
	if m.removedblocks != nil {
		edges = append(edges, agentexecution.EdgeBlocks)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, agentexecution.EdgeSnapshots)
	}
	if m.removedscores != nil {
		edges = append(edges, agentexecution.EdgeScores)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgePlanDecisions:
		ids := make([]ent.Value, 0, len(m.removedplan_decisions))
		for id := range m.removedplan_decisions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.removedblocks))
		for id := range m.removedblocks {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeScores:
		ids := make([]ent.Value, 0, len(m.removedscores))
		for id := range m.removedscores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedcompletion {
		edges = append(edges, agentexecution.EdgeCompletion)
	}
	if m.clearedreport {
		edges = append(edges, agentexecution.EdgeReport)
	}
	if m.clearedplan_decisions {
		edges = append(edges, agentexecution.EdgePlanDecisions)
	}
	if m.clearedtool_executions {
		edges = append(edges, agentexecution.EdgeToolExecutions)
	}
	if m.clearedblocks {
		edges = append(edges, agentexecution.EdgeBlocks)
	}
	if m.clearedsnapshots {
		edges = append(edges, agentexecution.EdgeSnapshots)
	}
	if m.clearedscores {
		edges = append(edges, agentexecution.EdgeScores)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeCompletion:
		return m.clearedcompletion
	case agentexecution.EdgeReport:
		return m.clearedreport
	case agentexecution.EdgePlanDecisions:
		return m.clearedplan_decisions
	case agentexecution.EdgeToolExecutions:
		return m.clearedtool_executions
	case agentexecution.EdgeBlocks:
		return m.clearedblocks
	case agentexecution.EdgeSnapshots:
		return m.clearedsnapshots
	case agentexecution.EdgeScores:
		return m.clearedscores
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	case agentexecution.EdgeCompletion:
		m.ClearCompletion()
		return nil
	case agentexecution.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeCompletion:
		m.ResetCompletion()
		return nil
	case agentexecution.EdgeReport:
		m.ResetReport()
		return nil
	case agentexecution.EdgePlanDecisions:
		m.ResetPlanDecisions()
		return nil
	case agentexecution.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	case agentexecution.EdgeBlocks:
		m.ResetBlocks()
		return nil
	case agentexecution.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case agentexecution.EdgeScores:
		m.ResetScores()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// CompletionMutation represents an operation that mutates the Completion nodes in the graph.
type CompletionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	organization_id         *string
	user_id                 *string
	status                  *completion.Status
	prompt                  *map[string]interface{}
	content                 *string
	reasoning               *string
	error_message           *string
	sigkill_at              *time.Time
	claimed_by              *string
	claimed_at              *time.Time
	heartbeat_at            *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	report                  *string
	clearedreport           bool
	agent_executions        map[string]struct{}
	removedagent_executions map[string]struct{}
	clearedagent_executions bool
	blocks                  map[string]struct{}
	removedblocks           map[string]struct{}
	clearedblocks           bool
	done                    bool
	oldValue                func(context.Context) (*Completion, error)
	predicates              []predicate.Completion
}

var _ ent.Mutation = (*CompletionMutation)(nil)

// completionOption allows management of the mutation configuration using functional options.
type completionOption func(*CompletionMutation)

// newCompletionMutation creates new mutation for the Completion entity.
func newCompletionMutation(c config, op Op, opts ...completionOption) *CompletionMutation {
	m := &CompletionMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionID sets the ID field of the mutation.
func withCompletionID(id string) completionOption {
	return func(m *CompletionMutation) {
		var (
			err   error
			once  sync.Once
			value *Completion
		)
		m.oldValue = func(ctx context.Context) (*Completion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Completion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletion sets the old Completion of the mutation.
func withCompletion(node *Completion) completionOption {
	return func(m *CompletionMutation) {
		m.oldValue = func(context.Context) (*Completion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Completion entities.
func (m *CompletionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Completion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *CompletionMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *CompletionMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *CompletionMutation) ResetReportID() {
	m.report = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *CompletionMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *CompletionMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *CompletionMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetUserID sets the "user_id" field.
func (m *CompletionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CompletionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CompletionMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *CompletionMutation) SetStatus(c completion.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CompletionMutation) Status() (r completion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldStatus(ctx context.Context) (v completion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CompletionMutation) ResetStatus() {
	m.status = nil
}

// SetPrompt sets the "prompt" field.
func (m *CompletionMutation) SetPrompt(value map[string]interface{}) {
	m.prompt = &value
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *CompletionMutation) Prompt() (r map[string]interface{}, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldPrompt(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *CompletionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetContent sets the "content" field.
func (m *CompletionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CompletionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *CompletionMutation) ClearContent() {
	m.content = nil
	m.clearedFields[completion.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *CompletionMutation) ContentCleared() bool {
	_, ok := m.clearedFields[completion.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *CompletionMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, completion.FieldContent)
}

// SetReasoning sets the "reasoning" field.
func (m *CompletionMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *CompletionMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *CompletionMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[completion.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *CompletionMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[completion.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *CompletionMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, completion.FieldReasoning)
}

// SetErrorMessage sets the "error_message" field.
func (m *CompletionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CompletionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CompletionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[completion.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CompletionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[completion.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CompletionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, completion.FieldErrorMessage)
}

// SetSigkillAt sets the "sigkill_at" field.
func (m *CompletionMutation) SetSigkillAt(t time.Time) {
	m.sigkill_at = &t
}

// SigkillAt returns the value of the "sigkill_at" field in the mutation.
func (m *CompletionMutation) SigkillAt() (r time.Time, exists bool) {
	v := m.sigkill_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSigkillAt returns the old "sigkill_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldSigkillAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSigkillAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSigkillAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSigkillAt: %w", err)
	}
	return oldValue.SigkillAt, nil
}

// ClearSigkillAt clears the value of the "sigkill_at" field.
func (m *CompletionMutation) ClearSigkillAt() {
	m.sigkill_at = nil
	m.clearedFields[completion.FieldSigkillAt] = struct{}{}
}

// SigkillAtCleared returns if the "sigkill_at" field was cleared in this mutation.
func (m *CompletionMutation) SigkillAtCleared() bool {
	_, ok := m.clearedFields[completion.FieldSigkillAt]
	return ok
}

// ResetSigkillAt resets all changes to the "sigkill_at" field.
func (m *CompletionMutation) ResetSigkillAt() {
	m.sigkill_at = nil
	delete(m.clearedFields, completion.FieldSigkillAt)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *CompletionMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *CompletionMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *CompletionMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[completion.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *CompletionMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[completion.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *CompletionMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, completion.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *CompletionMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *CompletionMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *CompletionMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[completion.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *CompletionMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[completion.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *CompletionMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, completion.FieldClaimedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *CompletionMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *CompletionMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *CompletionMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[completion.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *CompletionMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[completion.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *CompletionMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, completion.FieldHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompletionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompletionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompletionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompletionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompletionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompletionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *CompletionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[completion.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *CompletionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *CompletionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *CompletionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by ids.
func (m *CompletionMutation) AddAgentExecutionIDs(ids ...string) {
	if m.agent_executions == nil {
		m.agent_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_executions[ids[i]] = struct{}{}
	}
}

// ClearAgentExecutions clears the "agent_executions" edge to the AgentExecution entity.
func (m *CompletionMutation) ClearAgentExecutions() {
	m.clearedagent_executions = true
}

// AgentExecutionsCleared reports if the "agent_executions" edge to the AgentExecution entity was cleared.
func (m *CompletionMutation) AgentExecutionsCleared() bool {
	return m.clearedagent_executions
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to the AgentExecution entity by IDs.
func (m *CompletionMutation) RemoveAgentExecutionIDs(ids ...string) {
	if m.removedagent_executions == nil {
		m.removedagent_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_executions, ids[i])
		m.removedagent_executions[ids[i]] = struct{}{}
	}
}

// RemovedAgentExecutions returns the removed IDs of the "agent_executions" edge to the AgentExecution entity.
func (m *CompletionMutation) RemovedAgentExecutionsIDs() (ids []string) {
	for id := range m.removedagent_executions {
		ids = append(ids, id)
	}
	return
}

// AgentExecutionsIDs returns the "agent_executions" edge IDs in the mutation.
func (m *CompletionMutation) AgentExecutionsIDs() (ids []string) {
	for id := range m.agent_executions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentExecutions resets all changes to the "agent_executions" edge.
func (m *CompletionMutation) ResetAgentExecutions() {
	m.agent_executions = nil
	m.clearedagent_executions = false
	m.removedagent_executions = nil
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by ids.
func (m *CompletionMutation) AddBlockIDs(ids ...string) {
	if m.blocks == nil {
		m.blocks = make(map[string]struct{})
	}
	for i := range ids {
		m.blocks[ids[i]] = struct{}{}
	}
}

// ClearBlocks clears the "blocks" edge to the CompletionBlock entity.
func (m *CompletionMutation) ClearBlocks() {
	m.clearedblocks = true
}

// BlocksCleared reports if the "blocks" edge to the CompletionBlock entity was cleared.
func (m *CompletionMutation) BlocksCleared() bool {
	return m.clearedblocks
}

// RemoveBlockIDs removes the "blocks" edge to the CompletionBlock entity by IDs.
func (m *CompletionMutation) RemoveBlockIDs(ids ...string) {
	if m.removedblocks == nil {
		m.removedblocks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.blocks, ids[i])
		m.removedblocks[ids[i]] = struct{}{}
	}
}

// RemovedBlocks returns the removed IDs of the "blocks" edge to the CompletionBlock entity.
func (m *CompletionMutation) RemovedBlocksIDs() (ids []string) {
	for id := range m.removedblocks {
		ids = append(ids, id)
	}
	return
}

// BlocksIDs returns the "blocks" edge IDs in the mutation.
func (m *CompletionMutation) BlocksIDs() (ids []string) {
	for id := range m.blocks {
		ids = append(ids, id)
	}
	return
}

// ResetBlocks resets all changes to the "blocks" edge.
func (m *CompletionMutation) ResetBlocks() {
	m.blocks = nil
	m.clearedblocks = false
	m.removedblocks = nil
}

// Where appends a list predicates to the CompletionMutation builder.
func (m *CompletionMutation) Where(ps ...predicate.Completion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Completion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Completion).
func (m *CompletionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.report != nil {
		fields = append(fields, completion.FieldReportID)
	}
	if m.organization_id != nil {
		fields = append(fields, completion.FieldOrganizationID)
	}
	if m.user_id != nil {
		fields = append(fields, completion.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, completion.FieldStatus)
	}
	if m.prompt != nil {
		fields = append(fields, completion.FieldPrompt)
	}
	if m.content != nil {
		fields = append(fields, completion.FieldContent)
	}
	if m.reasoning != nil {
		fields = append(fields, completion.FieldReasoning)
	}
	if m.error_message != nil {
		fields = append(fields, completion.FieldErrorMessage)
	}
	if m.sigkill_at != nil {
		fields = append(fields, completion.FieldSigkillAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, completion.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, completion.FieldClaimedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, completion.FieldHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, completion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, completion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completion.FieldReportID:
		return m.ReportID()
	case completion.FieldOrganizationID:
		return m.OrganizationID()
	case completion.FieldUserID:
		return m.UserID()
	case completion.FieldStatus:
		return m.Status()
	case completion.FieldPrompt:
		return m.Prompt()
	case completion.FieldContent:
		return m.Content()
	case completion.FieldReasoning:
		return m.Reasoning()
	case completion.FieldErrorMessage:
		return m.ErrorMessage()
	case completion.FieldSigkillAt:
		return m.SigkillAt()
	case completion.FieldClaimedBy:
		return m.ClaimedBy()
	case completion.FieldClaimedAt:
		return m.ClaimedAt()
	case completion.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case completion.FieldCreatedAt:
		return m.CreatedAt()
	case completion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completion.FieldReportID:
		return m.OldReportID(ctx)
	case completion.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case completion.FieldUserID:
		return m.OldUserID(ctx)
	case completion.FieldStatus:
		return m.OldStatus(ctx)
	case completion.FieldPrompt:
		return m.OldPrompt(ctx)
	case completion.FieldContent:
		return m.OldContent(ctx)
	case completion.FieldReasoning:
		return m.OldReasoning(ctx)
	case completion.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case completion.FieldSigkillAt:
		return m.OldSigkillAt(ctx)
	case completion.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case completion.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case completion.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case completion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case completion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Completion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completion.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case completion.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case completion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case completion.FieldStatus:
		v, ok := value.(completion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case completion.FieldPrompt:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case completion.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case completion.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case completion.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case completion.FieldSigkillAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSigkillAt(v)
		return nil
	case completion.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case completion.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case completion.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case completion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case completion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Completion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Completion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(completion.FieldContent) {
		fields = append(fields, completion.FieldContent)
	}
	if m.FieldCleared(completion.FieldReasoning) {
		fields = append(fields, completion.FieldReasoning)
	}
	if m.FieldCleared(completion.FieldErrorMessage) {
		fields = append(fields, completion.FieldErrorMessage)
	}
	if m.FieldCleared(completion.FieldSigkillAt) {
		fields = append(fields, completion.FieldSigkillAt)
	}
	if m.FieldCleared(completion.FieldClaimedBy) {
		fields = append(fields, completion.FieldClaimedBy)
	}
	if m.FieldCleared(completion.FieldClaimedAt) {
		fields = append(fields, completion.FieldClaimedAt)
	}
	if m.FieldCleared(completion.FieldHeartbeatAt) {
		fields = append(fields, completion.FieldHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionMutation) ClearField(name string) error {
	switch name {
	case completion.FieldContent:
		m.ClearContent()
		return nil
	case completion.FieldReasoning:
		m.ClearReasoning()
		return nil
	case completion.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case completion.FieldSigkillAt:
		m.ClearSigkillAt()
		return nil
	case completion.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case completion.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case completion.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Completion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionMutation) ResetField(name string) error {
	switch name {
	case completion.FieldReportID:
		m.ResetReportID()
		return nil
	case completion.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case completion.FieldUserID:
		m.ResetUserID()
		return nil
	case completion.FieldStatus:
		m.ResetStatus()
		return nil
	case completion.FieldPrompt:
		m.ResetPrompt()
		return nil
	case completion.FieldContent:
		m.ResetContent()
		return nil
	case completion.FieldReasoning:
		m.ResetReasoning()
		return nil
	case completion.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case completion.FieldSigkillAt:
		m.ResetSigkillAt()
		return nil
	case completion.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case completion.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case completion.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case completion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case completion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Completion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, completion.EdgeReport)
	}
	if m.agent_executions != nil {
		edges = append(edges, completion.EdgeAgentExecutions)
	}
	if m.blocks != nil {
		edges = append(edges, completion.EdgeBlocks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case completion.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case completion.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.agent_executions))
		for id := range m.agent_executions {
			ids = append(ids, id)
		}
		return ids
	case completion.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.blocks))
		for id := range m.blocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedagent_executions != nil {
		edges = append(edges, completion.EdgeAgentExecutions)
	}
	if m.removedblocks != nil {
		edges = append(edges, completion.EdgeBlocks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case completion.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.removedagent_executions))
		for id := range m.removedagent_executions {
			ids = append(ids, id)
		}
		return ids
	case completion.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.removedblocks))
		for id := range m.removedblocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, completion.EdgeReport)
	}
	if m.clearedagent_executions {
		edges = append(edges, completion.EdgeAgentExecutions)
	}
	if m.clearedblocks {
		edges = append(edges, completion.EdgeBlocks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionMutation) EdgeCleared(name string) bool {
	switch name {
	case completion.EdgeReport:
		return m.clearedreport
	case completion.EdgeAgentExecutions:
		return m.clearedagent_executions
	case completion.EdgeBlocks:
		return m.clearedblocks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionMutation) ClearEdge(name string) error {
	switch name {
	case completion.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Completion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionMutation) ResetEdge(name string) error {
	switch name {
	case completion.EdgeReport:
		m.ResetReport()
		return nil
	case completion.EdgeAgentExecutions:
		m.ResetAgentExecutions()
		return nil
	case completion.EdgeBlocks:
		m.ResetBlocks()
		return nil
	}
	return fmt.Errorf("unknown Completion edge %s", name)
}

// CompletionBlockMutation represents an operation that mutates the CompletionBlock nodes in the graph.
type CompletionBlockMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	source_type            *completionblock.SourceType
	plan_decision_id       *string
	tool_execution_id      *string
	block_index            *int
	addblock_index         *int
	loop_index             *int
	addloop_index          *int
	title                  *string
	status                 *completionblock.Status
	icon                   *string
	content                *string
	reasoning              *string
	started_at             *time.Time
	completed_at           *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	completion             *string
	clearedcompletion      bool
	agent_execution        *string
	clearedagent_execution bool
	done                   bool
	oldValue               func(context.Context) (*CompletionBlock, error)
	predicates             []predicate.CompletionBlock
}

var _ ent.Mutation = (*CompletionBlockMutation)(nil)

// completionblockOption allows management of the mutation configuration using functional options.
type completionblockOption func(*CompletionBlockMutation)

// newCompletionBlockMutation creates new mutation for the CompletionBlock entity.
func newCompletionBlockMutation(c config, op Op, opts ...completionblockOption) *CompletionBlockMutation {
	m := &CompletionBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletionBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionBlockID sets the ID field of the mutation.
func withCompletionBlockID(id string) completionblockOption {
	return func(m *CompletionBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *CompletionBlock
		)
		m.oldValue = func(ctx context.Context) (*CompletionBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompletionBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletionBlock sets the old CompletionBlock of the mutation.
func withCompletionBlock(node *CompletionBlock) completionblockOption {
	return func(m *CompletionBlockMutation) {
		m.oldValue = func(context.Context) (*CompletionBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompletionBlock entities.
func (m *CompletionBlockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionBlockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionBlockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompletionBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompletionID sets the "completion_id" field.
func (m *CompletionBlockMutation) SetCompletionID(s string) {
	m.completion = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *CompletionBlockMutation) CompletionID() (r string, exists bool) {
	v := m.completion
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *CompletionBlockMutation) ResetCompletionID() {
	m.completion = nil
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *CompletionBlockMutation) SetAgentExecutionID(s string) {
	m.agent_execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *CompletionBlockMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *CompletionBlockMutation) ResetAgentExecutionID() {
	m.agent_execution = nil
}

// SetSourceType sets the "source_type" field.
func (m *CompletionBlockMutation) SetSourceType(ct completionblock.SourceType) {
	m.source_type = &ct
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *CompletionBlockMutation) SourceType() (r completionblock.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldSourceType(ctx context.Context) (v completionblock.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *CompletionBlockMutation) ResetSourceType() {
	m.source_type = nil
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (m *CompletionBlockMutation) SetPlanDecisionID(s string) {
	m.plan_decision_id = &s
}

// PlanDecisionID returns the value of the "plan_decision_id" field in the mutation.
func (m *CompletionBlockMutation) PlanDecisionID() (r string, exists bool) {
	v := m.plan_decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDecisionID returns the old "plan_decision_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldPlanDecisionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDecisionID: %w", err)
	}
	return oldValue.PlanDecisionID, nil
}

// ClearPlanDecisionID clears the value of the "plan_decision_id" field.
func (m *CompletionBlockMutation) ClearPlanDecisionID() {
	m.plan_decision_id = nil
	m.clearedFields[completionblock.FieldPlanDecisionID] = struct{}{}
}

// PlanDecisionIDCleared returns if the "plan_decision_id" field was cleared in this mutation.
func (m *CompletionBlockMutation) PlanDecisionIDCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldPlanDecisionID]
	return ok
}

// ResetPlanDecisionID resets all changes to the "plan_decision_id" field.
func (m *CompletionBlockMutation) ResetPlanDecisionID() {
	m.plan_decision_id = nil
	delete(m.clearedFields, completionblock.FieldPlanDecisionID)
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (m *CompletionBlockMutation) SetToolExecutionID(s string) {
	m.tool_execution_id = &s
}

// ToolExecutionID returns the value of the "tool_execution_id" field in the mutation.
func (m *CompletionBlockMutation) ToolExecutionID() (r string, exists bool) {
	v := m.tool_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolExecutionID returns the old "tool_execution_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldToolExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolExecutionID: %w", err)
	}
	return oldValue.ToolExecutionID, nil
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (m *CompletionBlockMutation) ClearToolExecutionID() {
	m.tool_execution_id = nil
	m.clearedFields[completionblock.FieldToolExecutionID] = struct{}{}
}

// ToolExecutionIDCleared returns if the "tool_execution_id" field was cleared in this mutation.
func (m *CompletionBlockMutation) ToolExecutionIDCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldToolExecutionID]
	return ok
}

// ResetToolExecutionID resets all changes to the "tool_execution_id" field.
func (m *CompletionBlockMutation) ResetToolExecutionID() {
	m.tool_execution_id = nil
	delete(m.clearedFields, completionblock.FieldToolExecutionID)
}

// SetBlockIndex sets the "block_index" field.
func (m *CompletionBlockMutation) SetBlockIndex(i int) {
	m.block_index = &i
	m.addblock_index = nil
}

// BlockIndex returns the value of the "block_index" field in the mutation.
func (m *CompletionBlockMutation) BlockIndex() (r int, exists bool) {
	v := m.block_index
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockIndex returns the old "block_index" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldBlockIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockIndex: %w", err)
	}
	return oldValue.BlockIndex, nil
}

// AddBlockIndex adds i to the "block_index" field.
func (m *CompletionBlockMutation) AddBlockIndex(i int) {
	if m.addblock_index != nil {
		*m.addblock_index += i
	} else {
		m.addblock_index = &i
	}
}

// AddedBlockIndex returns the value that was added to the "block_index" field in this mutation.
func (m *CompletionBlockMutation) AddedBlockIndex() (r int, exists bool) {
	v := m.addblock_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlockIndex resets all changes to the "block_index" field.
func (m *CompletionBlockMutation) ResetBlockIndex() {
	m.block_index = nil
	m.addblock_index = nil
}

// SetLoopIndex sets the "loop_index" field.
func (m *CompletionBlockMutation) SetLoopIndex(i int) {
	m.loop_index = &i
	m.addloop_index = nil
}

// LoopIndex returns the value of the "loop_index" field in the mutation.
func (m *CompletionBlockMutation) LoopIndex() (r int, exists bool) {
	v := m.loop_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopIndex returns the old "loop_index" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldLoopIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopIndex: %w", err)
	}
	return oldValue.LoopIndex, nil
}

// AddLoopIndex adds i to the "loop_index" field.
func (m *CompletionBlockMutation) AddLoopIndex(i int) {
	if m.addloop_index != nil {
		*m.addloop_index += i
	} else {
		m.addloop_index = &i
	}
}

// AddedLoopIndex returns the value that was added to the "loop_index" field in this mutation.
func (m *CompletionBlockMutation) AddedLoopIndex() (r int, exists bool) {
	v := m.addloop_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopIndex resets all changes to the "loop_index" field.
func (m *CompletionBlockMutation) ResetLoopIndex() {
	m.loop_index = nil
	m.addloop_index = nil
}

// SetTitle sets the "title" field.
func (m *CompletionBlockMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CompletionBlockMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CompletionBlockMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *CompletionBlockMutation) SetStatus(c completionblock.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CompletionBlockMutation) Status() (r completionblock.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldStatus(ctx context.Context) (v completionblock.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CompletionBlockMutation) ResetStatus() {
	m.status = nil
}

// SetIcon sets the "icon" field.
func (m *CompletionBlockMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *CompletionBlockMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldIcon(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ResetIcon resets all changes to the "icon" field.
func (m *CompletionBlockMutation) ResetIcon() {
	m.icon = nil
}

// SetContent sets the "content" field.
func (m *CompletionBlockMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CompletionBlockMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *CompletionBlockMutation) ClearContent() {
	m.content = nil
	m.clearedFields[completionblock.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *CompletionBlockMutation) ContentCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *CompletionBlockMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, completionblock.FieldContent)
}

// SetReasoning sets the "reasoning" field.
func (m *CompletionBlockMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *CompletionBlockMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *CompletionBlockMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[completionblock.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *CompletionBlockMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *CompletionBlockMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, completionblock.FieldReasoning)
}

// SetStartedAt sets the "started_at" field.
func (m *CompletionBlockMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CompletionBlockMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CompletionBlockMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CompletionBlockMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CompletionBlockMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CompletionBlockMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[completionblock.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CompletionBlockMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CompletionBlockMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, completionblock.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompletionBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompletionBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompletionBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompletion clears the "completion" edge to the Completion entity.
func (m *CompletionBlockMutation) ClearCompletion() {
	m.clearedcompletion = true
	m.clearedFields[completionblock.FieldCompletionID] = struct{}{}
}

// CompletionCleared reports if the "completion" edge to the Completion entity was cleared.
func (m *CompletionBlockMutation) CompletionCleared() bool {
	return m.clearedcompletion
}

// CompletionIDs returns the "completion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompletionID instead. It exists only for internal usage by the builders.
func (m *CompletionBlockMutation) CompletionIDs() (ids []string) {
	if id := m.completion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompletion resets all changes to the "completion" edge.
func (m *CompletionBlockMutation) ResetCompletion() {
	m.completion = nil
	m.clearedcompletion = false
}

// ClearAgentExecution clears the "agent_execution" edge to the AgentExecution entity.
func (m *CompletionBlockMutation) ClearAgentExecution() {
	m.clearedagent_execution = true
	m.clearedFields[completionblock.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionCleared reports if the "agent_execution" edge to the AgentExecution entity was cleared.
func (m *CompletionBlockMutation) AgentExecutionCleared() bool {
	return m.clearedagent_execution
}

// AgentExecutionIDs returns the "agent_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentExecutionID instead. It exists only for internal usage by the builders.
func (m *CompletionBlockMutation) AgentExecutionIDs() (ids []string) {
	if id := m.agent_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentExecution resets all changes to the "agent_execution" edge.
func (m *CompletionBlockMutation) ResetAgentExecution() {
	m.agent_execution = nil
	m.clearedagent_execution = false
}

// Where appends a list predicates to the CompletionBlockMutation builder.
func (m *CompletionBlockMutation) Where(ps ...predicate.CompletionBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompletionBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompletionBlock).
func (m *CompletionBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionBlockMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.completion != nil {
		fields = append(fields, completionblock.FieldCompletionID)
	}
	if m.agent_execution != nil {
		fields = append(fields, completionblock.FieldAgentExecutionID)
	}
	if m.source_type != nil {
		fields = append(fields, completionblock.FieldSourceType)
	}
	if m.plan_decision_id != nil {
		fields = append(fields, completionblock.FieldPlanDecisionID)
	}
	if m.tool_execution_id != nil {
		fields = append(fields, completionblock.FieldToolExecutionID)
	}
	if m.block_index != nil {
		fields = append(fields, completionblock.FieldBlockIndex)
	}
	if m.loop_index != nil {
		fields = append(fields, completionblock.FieldLoopIndex)
	}
	if m.title != nil {
		fields = append(fields, completionblock.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, completionblock.FieldStatus)
	}
	if m.icon != nil {
		fields = append(fields, completionblock.FieldIcon)
	}
	if m.content != nil {
		fields = append(fields, completionblock.FieldContent)
	}
	if m.reasoning != nil {
		fields = append(fields, completionblock.FieldReasoning)
	}
	if m.started_at != nil {
		fields = append(fields, completionblock.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, completionblock.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, completionblock.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completionblock.FieldCompletionID:
		return m.CompletionID()
	case completionblock.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case completionblock.FieldSourceType:
		return m.SourceType()
	case completionblock.FieldPlanDecisionID:
		return m.PlanDecisionID()
	case completionblock.FieldToolExecutionID:
		return m.ToolExecutionID()
	case completionblock.FieldBlockIndex:
		return m.BlockIndex()
	case completionblock.FieldLoopIndex:
		return m.LoopIndex()
	case completionblock.FieldTitle:
		return m.Title()
	case completionblock.FieldStatus:
		return m.Status()
	case completionblock.FieldIcon:
		return m.Icon()
	case completionblock.FieldContent:
		return m.Content()
	case completionblock.FieldReasoning:
		return m.Reasoning()
	case completionblock.FieldStartedAt:
		return m.StartedAt()
	case completionblock.FieldCompletedAt:
		return m.CompletedAt()
	case completionblock.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completionblock.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case completionblock.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case completionblock.FieldSourceType:
		return m.OldSourceType(ctx)
	case completionblock.FieldPlanDecisionID:
		return m.OldPlanDecisionID(ctx)
	case completionblock.FieldToolExecutionID:
		return m.OldToolExecutionID(ctx)
	case completionblock.FieldBlockIndex:
		return m.OldBlockIndex(ctx)
	case completionblock.FieldLoopIndex:
		return m.OldLoopIndex(ctx)
	case completionblock.FieldTitle:
		return m.OldTitle(ctx)
	case completionblock.FieldStatus:
		return m.OldStatus(ctx)
	case completionblock.FieldIcon:
		return m.OldIcon(ctx)
	case completionblock.FieldContent:
		return m.OldContent(ctx)
	case completionblock.FieldReasoning:
		return m.OldReasoning(ctx)
	case completionblock.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case completionblock.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case completionblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompletionBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completionblock.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case completionblock.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case completionblock.FieldSourceType:
		v, ok := value.(completionblock.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case completionblock.FieldPlanDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDecisionID(v)
		return nil
	case completionblock.FieldToolExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolExecutionID(v)
		return nil
	case completionblock.FieldBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockIndex(v)
		return nil
	case completionblock.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopIndex(v)
		return nil
	case completionblock.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case completionblock.FieldStatus:
		v, ok := value.(completionblock.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case completionblock.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case completionblock.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case completionblock.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case completionblock.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case completionblock.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case completionblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionBlockMutation) AddedFields() []string {
	var fields []string
	if m.addblock_index != nil {
		fields = append(fields, completionblock.FieldBlockIndex)
	}
	if m.addloop_index != nil {
		fields = append(fields, completionblock.FieldLoopIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case completionblock.FieldBlockIndex:
		return m.AddedBlockIndex()
	case completionblock.FieldLoopIndex:
		return m.AddedLoopIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case completionblock.FieldBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockIndex(v)
		return nil
	case completionblock.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(completionblock.FieldPlanDecisionID) {
		fields = append(fields, completionblock.FieldPlanDecisionID)
	}
	if m.FieldCleared(completionblock.FieldToolExecutionID) {
		fields = append(fields, completionblock.FieldToolExecutionID)
	}
	if m.FieldCleared(completionblock.FieldContent) {
		fields = append(fields, completionblock.FieldContent)
	}
	if m.FieldCleared(completionblock.FieldReasoning) {
		fields = append(fields, completionblock.FieldReasoning)
	}
	if m.FieldCleared(completionblock.FieldCompletedAt) {
		fields = append(fields, completionblock.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionBlockMutation) ClearField(name string) error {
	switch name {
	case completionblock.FieldPlanDecisionID:
		m.ClearPlanDecisionID()
		return nil
	case completionblock.FieldToolExecutionID:
		m.ClearToolExecutionID()
		return nil
	case completionblock.FieldContent:
		m.ClearContent()
		return nil
	case completionblock.FieldReasoning:
		m.ClearReasoning()
		return nil
	case completionblock.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionBlockMutation) ResetField(name string) error {
	switch name {
	case completionblock.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case completionblock.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case completionblock.FieldSourceType:
		m.ResetSourceType()
		return nil
	case completionblock.FieldPlanDecisionID:
		m.ResetPlanDecisionID()
		return nil
	case completionblock.FieldToolExecutionID:
		m.ResetToolExecutionID()
		return nil
	case completionblock.FieldBlockIndex:
		m.ResetBlockIndex()
		return nil
	case completionblock.FieldLoopIndex:
		m.ResetLoopIndex()
		return nil
	case completionblock.FieldTitle:
		m.ResetTitle()
		return nil
	case completionblock.FieldStatus:
		m.ResetStatus()
		return nil
	case completionblock.FieldIcon:
		m.ResetIcon()
		return nil
	case completionblock.FieldContent:
		m.ResetContent()
		return nil
	case completionblock.FieldReasoning:
		m.ResetReasoning()
		return nil
	case completionblock.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case completionblock.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case completionblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.completion != nil {
		edges = append(edges, completionblock.EdgeCompletion)
	}
	if m.agent_execution != nil {
		edges = append(edges, completionblock.EdgeAgentExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionBlockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case completionblock.EdgeCompletion:
		if id := m.completion; id != nil {
			return []ent.Value{*id}
		}
	case completionblock.EdgeAgentExecution:
		if id := m.agent_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompletion {
		edges = append(edges, completionblock.EdgeCompletion)
	}
	if m.clearedagent_execution {
		edges = append(edges, completionblock.EdgeAgentExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionBlockMutation) EdgeCleared(name string) bool {
	switch name {
	case completionblock.EdgeCompletion:
		return m.clearedcompletion
	case completionblock.EdgeAgentExecution:
		return m.clearedagent_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionBlockMutation) ClearEdge(name string) error {
	switch name {
	case completionblock.EdgeCompletion:
		m.ClearCompletion()
		return nil
	case completionblock.EdgeAgentExecution:
		m.ClearAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionBlockMutation) ResetEdge(name string) error {
	switch name {
	case completionblock.EdgeCompletion:
		m.ResetCompletion()
		return nil
	case completionblock.EdgeAgentExecution:
		m.ResetAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock edge %s", name)
}

// ContextSnapshotMutation represents an operation that mutates the ContextSnapshot nodes in the graph.
type ContextSnapshotMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	kind                   *contextsnapshot.Kind
	loop_index             *int
	addloop_index          *int
	context_view           *map[string]interface{}
	prompt_text            *string
	prompt_tokens          *int
	addprompt_tokens       *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	agent_execution        *string
	clearedagent_execution bool
	done                   bool
	oldValue               func(context.Context) (*ContextSnapshot, error)
	predicates             []predicate.ContextSnapshot
}

var _ ent.Mutation = (*ContextSnapshotMutation)(nil)

// contextsnapshotOption allows management of the mutation configuration using functional options.
type contextsnapshotOption func(*ContextSnapshotMutation)

// newContextSnapshotMutation creates new mutation for the ContextSnapshot entity.
func newContextSnapshotMutation(c config, op Op, opts ...contextsnapshotOption) *ContextSnapshotMutation {
	m := &ContextSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeContextSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextSnapshotID sets the ID field of the mutation.
func withContextSnapshotID(id string) contextsnapshotOption {
	return func(m *ContextSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ContextSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextSnapshot sets the old ContextSnapshot of the mutation.
func withContextSnapshot(node *ContextSnapshot) contextsnapshotOption {
	return func(m *ContextSnapshotMutation) {
		m.oldValue = func(context.Context) (*ContextSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextSnapshot entities.
func (m *ContextSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *ContextSnapshotMutation) SetAgentExecutionID(s string) {
	m.agent_execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *ContextSnapshotMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *ContextSnapshotMutation) ResetAgentExecutionID() {
	m.agent_execution = nil
}

// SetKind sets the "kind" field.
func (m *ContextSnapshotMutation) SetKind(c contextsnapshot.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ContextSnapshotMutation) Kind() (r contextsnapshot.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldKind(ctx context.Context) (v contextsnapshot.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ContextSnapshotMutation) ResetKind() {
	m.kind = nil
}

// SetLoopIndex sets the "loop_index" field.
func (m *ContextSnapshotMutation) SetLoopIndex(i int) {
	m.loop_index = &i
	m.addloop_index = nil
}

// LoopIndex returns the value of the "loop_index" field in the mutation.
func (m *ContextSnapshotMutation) LoopIndex() (r int, exists bool) {
	v := m.loop_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopIndex returns the old "loop_index" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldLoopIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopIndex: %w", err)
	}
	return oldValue.LoopIndex, nil
}

// AddLoopIndex adds i to the "loop_index" field.
func (m *ContextSnapshotMutation) AddLoopIndex(i int) {
	if m.addloop_index != nil {
		*m.addloop_index += i
	} else {
		m.addloop_index = &i
	}
}

// AddedLoopIndex returns the value that was added to the "loop_index" field in this mutation.
func (m *ContextSnapshotMutation) AddedLoopIndex() (r int, exists bool) {
	v := m.addloop_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopIndex resets all changes to the "loop_index" field.
func (m *ContextSnapshotMutation) ResetLoopIndex() {
	m.loop_index = nil
	m.addloop_index = nil
}

// SetContextView sets the "context_view" field.
func (m *ContextSnapshotMutation) SetContextView(value map[string]interface{}) {
	m.context_view = &value
}

// ContextView returns the value of the "context_view" field in the mutation.
func (m *ContextSnapshotMutation) ContextView() (r map[string]interface{}, exists bool) {
	v := m.context_view
	if v == nil {
		return
	}
	return *v, true
}

// OldContextView returns the old "context_view" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldContextView(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextView: %w", err)
	}
	return oldValue.ContextView, nil
}

// ResetContextView resets all changes to the "context_view" field.
func (m *ContextSnapshotMutation) ResetContextView() {
	m.context_view = nil
}

// SetPromptText sets the "prompt_text" field.
func (m *ContextSnapshotMutation) SetPromptText(s string) {
	m.prompt_text = &s
}

// PromptText returns the value of the "prompt_text" field in the mutation.
func (m *ContextSnapshotMutation) PromptText() (r string, exists bool) {
	v := m.prompt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptText returns the old "prompt_text" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldPromptText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptText: %w", err)
	}
	return oldValue.PromptText, nil
}

// ClearPromptText clears the value of the "prompt_text" field.
func (m *ContextSnapshotMutation) ClearPromptText() {
	m.prompt_text = nil
	m.clearedFields[contextsnapshot.FieldPromptText] = struct{}{}
}

// PromptTextCleared returns if the "prompt_text" field was cleared in this mutation.
func (m *ContextSnapshotMutation) PromptTextCleared() bool {
	_, ok := m.clearedFields[contextsnapshot.FieldPromptText]
	return ok
}

// ResetPromptText resets all changes to the "prompt_text" field.
func (m *ContextSnapshotMutation) ResetPromptText() {
	m.prompt_text = nil
	delete(m.clearedFields, contextsnapshot.FieldPromptText)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *ContextSnapshotMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *ContextSnapshotMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldPromptTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *ContextSnapshotMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *ContextSnapshotMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (m *ContextSnapshotMutation) ClearPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	m.clearedFields[contextsnapshot.FieldPromptTokens] = struct{}{}
}

// PromptTokensCleared returns if the "prompt_tokens" field was cleared in this mutation.
func (m *ContextSnapshotMutation) PromptTokensCleared() bool {
	_, ok := m.clearedFields[contextsnapshot.FieldPromptTokens]
	return ok
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *ContextSnapshotMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	delete(m.clearedFields, contextsnapshot.FieldPromptTokens)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgentExecution clears the "agent_execution" edge to the AgentExecution entity.
func (m *ContextSnapshotMutation) ClearAgentExecution() {
	m.clearedagent_execution = true
	m.clearedFields[contextsnapshot.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionCleared reports if the "agent_execution" edge to the AgentExecution entity was cleared.
func (m *ContextSnapshotMutation) AgentExecutionCleared() bool {
	return m.clearedagent_execution
}

// AgentExecutionIDs returns the "agent_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentExecutionID instead. It exists only for internal usage by the builders.
func (m *ContextSnapshotMutation) AgentExecutionIDs() (ids []string) {
	if id := m.agent_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentExecution resets all changes to the "agent_execution" edge.
func (m *ContextSnapshotMutation) ResetAgentExecution() {
	m.agent_execution = nil
	m.clearedagent_execution = false
}

// Where appends a list predicates to the ContextSnapshotMutation builder.
func (m *ContextSnapshotMutation) Where(ps ...predicate.ContextSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextSnapshot).
func (m *ContextSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent_execution != nil {
		fields = append(fields, contextsnapshot.FieldAgentExecutionID)
	}
	if m.kind != nil {
		fields = append(fields, contextsnapshot.FieldKind)
	}
	if m.loop_index != nil {
		fields = append(fields, contextsnapshot.FieldLoopIndex)
	}
	if m.context_view != nil {
		fields = append(fields, contextsnapshot.FieldContextView)
	}
	if m.prompt_text != nil {
		fields = append(fields, contextsnapshot.FieldPromptText)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, contextsnapshot.FieldPromptTokens)
	}
	if m.created_at != nil {
		fields = append(fields, contextsnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case contextsnapshot.FieldKind:
		return m.Kind()
	case contextsnapshot.FieldLoopIndex:
		return m.LoopIndex()
	case contextsnapshot.FieldContextView:
		return m.ContextView()
	case contextsnapshot.FieldPromptText:
		return m.PromptText()
	case contextsnapshot.FieldPromptTokens:
		return m.PromptTokens()
	case contextsnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case contextsnapshot.FieldKind:
		return m.OldKind(ctx)
	case contextsnapshot.FieldLoopIndex:
		return m.OldLoopIndex(ctx)
	case contextsnapshot.FieldContextView:
		return m.OldContextView(ctx)
	case contextsnapshot.FieldPromptText:
		return m.OldPromptText(ctx)
	case contextsnapshot.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case contextsnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case contextsnapshot.FieldKind:
		v, ok := value.(contextsnapshot.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case contextsnapshot.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopIndex(v)
		return nil
	case contextsnapshot.FieldContextView:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextView(v)
		return nil
	case contextsnapshot.FieldPromptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptText(v)
		return nil
	case contextsnapshot.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case contextsnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addloop_index != nil {
		fields = append(fields, contextsnapshot.FieldLoopIndex)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, contextsnapshot.FieldPromptTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextsnapshot.FieldLoopIndex:
		return m.AddedLoopIndex()
	case contextsnapshot.FieldPromptTokens:
		return m.AddedPromptTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextsnapshot.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopIndex(v)
		return nil
	case contextsnapshot.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextsnapshot.FieldPromptText) {
		fields = append(fields, contextsnapshot.FieldPromptText)
	}
	if m.FieldCleared(contextsnapshot.FieldPromptTokens) {
		fields = append(fields, contextsnapshot.FieldPromptTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextSnapshotMutation) ClearField(name string) error {
	switch name {
	case contextsnapshot.FieldPromptText:
		m.ClearPromptText()
		return nil
	case contextsnapshot.FieldPromptTokens:
		m.ClearPromptTokens()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextSnapshotMutation) ResetField(name string) error {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case contextsnapshot.FieldKind:
		m.ResetKind()
		return nil
	case contextsnapshot.FieldLoopIndex:
		m.ResetLoopIndex()
		return nil
	case contextsnapshot.FieldContextView:
		m.ResetContextView()
		return nil
	case contextsnapshot.FieldPromptText:
		m.ResetPromptText()
		return nil
	case contextsnapshot.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case contextsnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent_execution != nil {
		edges = append(edges, contextsnapshot.EdgeAgentExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextsnapshot.EdgeAgentExecution:
		if id := m.agent_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent_execution {
		edges = append(edges, contextsnapshot.EdgeAgentExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case contextsnapshot.EdgeAgentExecution:
		return m.clearedagent_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case contextsnapshot.EdgeAgentExecution:
		m.ClearAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case contextsnapshot.EdgeAgentExecution:
		m.ResetAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	completion_id *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetCompletionID sets the "completion_id" field.
func (m *EventMutation) SetCompletionID(s string) {
	m.completion_id = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *EventMutation) CompletionID() (r string, exists bool) {
	v := m.completion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ClearCompletionID clears the value of the "completion_id" field.
func (m *EventMutation) ClearCompletionID() {
	m.completion_id = nil
	m.clearedFields[event.FieldCompletionID] = struct{}{}
}

// CompletionIDCleared returns if the "completion_id" field was cleared in this mutation.
func (m *EventMutation) CompletionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCompletionID]
	return ok
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *EventMutation) ResetCompletionID() {
	m.completion_id = nil
	delete(m.clearedFields, event.FieldCompletionID)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.completion_id != nil {
		fields = append(fields, event.FieldCompletionID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldCompletionID:
		return m.CompletionID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldCompletionID) {
		fields = append(fields, event.FieldCompletionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldCompletionID:
		m.ClearCompletionID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExecutionScoreMutation represents an operation that mutates the ExecutionScore nodes in the graph.
type ExecutionScoreMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	kind                   *executionscore.Kind
	score                  *int
	addscore               *int
	rationale              *string
	status                 *executionscore.Status
	created_at             *time.Time
	completed_at           *time.Time
	error_message          *string
	clearedFields          map[string]struct{}
	agent_execution        *string
	clearedagent_execution bool
	done                   bool
	oldValue               func(context.Context) (*ExecutionScore, error)
	predicates             []predicate.ExecutionScore
}

var _ ent.Mutation = (*ExecutionScoreMutation)(nil)

// executionscoreOption allows management of the mutation configuration using functional options.
type executionscoreOption func(*ExecutionScoreMutation)

// newExecutionScoreMutation creates new mutation for the ExecutionScore entity.
func newExecutionScoreMutation(c config, op Op, opts ...executionscoreOption) *ExecutionScoreMutation {
	m := &ExecutionScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionScoreID sets the ID field of the mutation.
func withExecutionScoreID(id string) executionscoreOption {
	return func(m *ExecutionScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionScore
		)
		m.oldValue = func(ctx context.Context) (*ExecutionScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionScore sets the old ExecutionScore of the mutation.
func withExecutionScore(node *ExecutionScore) executionscoreOption {
	return func(m *ExecutionScoreMutation) {
		m.oldValue = func(context.Context) (*ExecutionScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionScore entities.
func (m *ExecutionScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *ExecutionScoreMutation) SetAgentExecutionID(s string) {
	m.agent_execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *ExecutionScoreMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *ExecutionScoreMutation) ResetAgentExecutionID() {
	m.agent_execution = nil
}

// SetKind sets the "kind" field.
func (m *ExecutionScoreMutation) SetKind(e executionscore.Kind) {
	m.kind = &e
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ExecutionScoreMutation) Kind() (r executionscore.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldKind(ctx context.Context) (v executionscore.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ExecutionScoreMutation) ResetKind() {
	m.kind = nil
}

// SetScore sets the "score" field.
func (m *ExecutionScoreMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ExecutionScoreMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ExecutionScoreMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ExecutionScoreMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *ExecutionScoreMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[executionscore.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *ExecutionScoreMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[executionscore.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *ExecutionScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, executionscore.FieldScore)
}

// SetRationale sets the "rationale" field.
func (m *ExecutionScoreMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *ExecutionScoreMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldRationale(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *ExecutionScoreMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[executionscore.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *ExecutionScoreMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[executionscore.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *ExecutionScoreMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, executionscore.FieldRationale)
}

// SetStatus sets the "status" field.
func (m *ExecutionScoreMutation) SetStatus(e executionscore.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionScoreMutation) Status() (r executionscore.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldStatus(ctx context.Context) (v executionscore.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionScoreMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionScoreMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionScoreMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionScoreMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[executionscore.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionScoreMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[executionscore.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionScoreMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, executionscore.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionScoreMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionScoreMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExecutionScore entity.
// If the ExecutionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionScoreMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionScoreMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[executionscore.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionScoreMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[executionscore.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionScoreMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, executionscore.FieldErrorMessage)
}

// ClearAgentExecution clears the "agent_execution" edge to the AgentExecution entity.
func (m *ExecutionScoreMutation) ClearAgentExecution() {
	m.clearedagent_execution = true
	m.clearedFields[executionscore.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionCleared reports if the "agent_execution" edge to the AgentExecution entity was cleared.
func (m *ExecutionScoreMutation) AgentExecutionCleared() bool {
	return m.clearedagent_execution
}

// AgentExecutionIDs returns the "agent_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentExecutionID instead. It exists only for internal usage by the builders.
func (m *ExecutionScoreMutation) AgentExecutionIDs() (ids []string) {
	if id := m.agent_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentExecution resets all changes to the "agent_execution" edge.
func (m *ExecutionScoreMutation) ResetAgentExecution() {
	m.agent_execution = nil
	m.clearedagent_execution = false
}

// Where appends a list predicates to the ExecutionScoreMutation builder.
func (m *ExecutionScoreMutation) Where(ps ...predicate.ExecutionScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionScore).
func (m *ExecutionScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionScoreMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent_execution != nil {
		fields = append(fields, executionscore.FieldAgentExecutionID)
	}
	if m.kind != nil {
		fields = append(fields, executionscore.FieldKind)
	}
	if m.score != nil {
		fields = append(fields, executionscore.FieldScore)
	}
	if m.rationale != nil {
		fields = append(fields, executionscore.FieldRationale)
	}
	if m.status != nil {
		fields = append(fields, executionscore.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, executionscore.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, executionscore.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, executionscore.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionscore.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case executionscore.FieldKind:
		return m.Kind()
	case executionscore.FieldScore:
		return m.Score()
	case executionscore.FieldRationale:
		return m.Rationale()
	case executionscore.FieldStatus:
		return m.Status()
	case executionscore.FieldCreatedAt:
		return m.CreatedAt()
	case executionscore.FieldCompletedAt:
		return m.CompletedAt()
	case executionscore.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionscore.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case executionscore.FieldKind:
		return m.OldKind(ctx)
	case executionscore.FieldScore:
		return m.OldScore(ctx)
	case executionscore.FieldRationale:
		return m.OldRationale(ctx)
	case executionscore.FieldStatus:
		return m.OldStatus(ctx)
	case executionscore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case executionscore.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case executionscore.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionscore.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case executionscore.FieldKind:
		v, ok := value.(executionscore.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case executionscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case executionscore.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case executionscore.FieldStatus:
		v, ok := value.(executionscore.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionscore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case executionscore.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case executionscore.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, executionscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionscore.FieldScore) {
		fields = append(fields, executionscore.FieldScore)
	}
	if m.FieldCleared(executionscore.FieldRationale) {
		fields = append(fields, executionscore.FieldRationale)
	}
	if m.FieldCleared(executionscore.FieldCompletedAt) {
		fields = append(fields, executionscore.FieldCompletedAt)
	}
	if m.FieldCleared(executionscore.FieldErrorMessage) {
		fields = append(fields, executionscore.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionScoreMutation) ClearField(name string) error {
	switch name {
	case executionscore.FieldScore:
		m.ClearScore()
		return nil
	case executionscore.FieldRationale:
		m.ClearRationale()
		return nil
	case executionscore.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case executionscore.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExecutionScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionScoreMutation) ResetField(name string) error {
	switch name {
	case executionscore.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case executionscore.FieldKind:
		m.ResetKind()
		return nil
	case executionscore.FieldScore:
		m.ResetScore()
		return nil
	case executionscore.FieldRationale:
		m.ResetRationale()
		return nil
	case executionscore.FieldStatus:
		m.ResetStatus()
		return nil
	case executionscore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case executionscore.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case executionscore.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExecutionScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent_execution != nil {
		edges = append(edges, executionscore.EdgeAgentExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionscore.EdgeAgentExecution:
		if id := m.agent_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent_execution {
		edges = append(edges, executionscore.EdgeAgentExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case executionscore.EdgeAgentExecution:
		return m.clearedagent_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionScoreMutation) ClearEdge(name string) error {
	switch name {
	case executionscore.EdgeAgentExecution:
		m.ClearAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionScoreMutation) ResetEdge(name string) error {
	switch name {
	case executionscore.EdgeAgentExecution:
		m.ResetAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionScore edge %s", name)
}

// InstructionMutation represents an operation that mutates the Instruction nodes in the graph.
type InstructionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	organization_id    *string
	text               *string
	category           *string
	load_mode          *instruction.LoadMode
	status             *instruction.Status
	source             *instruction.Source
	agent_execution_id *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Instruction, error)
	predicates         []predicate.Instruction
}

var _ ent.Mutation = (*InstructionMutation)(nil)

// instructionOption allows management of the mutation configuration using functional options.
type instructionOption func(*InstructionMutation)

// newInstructionMutation creates new mutation for the Instruction entity.
func newInstructionMutation(c config, op Op, opts ...instructionOption) *InstructionMutation {
	m := &InstructionMutation{
		config:        c,
		op:            op,
		typ:           TypeInstruction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstructionID sets the ID field of the mutation.
func withInstructionID(id string) instructionOption {
	return func(m *InstructionMutation) {
		var (
			err   error
			once  sync.Once
			value *Instruction
		)
		m.oldValue = func(ctx context.Context) (*Instruction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instruction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstruction sets the old Instruction of the mutation.
func withInstruction(node *Instruction) instructionOption {
	return func(m *InstructionMutation) {
		m.oldValue = func(context.Context) (*Instruction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstructionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstructionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Instruction entities.
func (m *InstructionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstructionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstructionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instruction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *InstructionMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *InstructionMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *InstructionMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetText sets the "text" field.
func (m *InstructionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *InstructionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *InstructionMutation) ResetText() {
	m.text = nil
}

// SetCategory sets the "category" field.
func (m *InstructionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InstructionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *InstructionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[instruction.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *InstructionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[instruction.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *InstructionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, instruction.FieldCategory)
}

// SetLoadMode sets the "load_mode" field.
func (m *InstructionMutation) SetLoadMode(im instruction.LoadMode) {
	m.load_mode = &im
}

// LoadMode returns the value of the "load_mode" field in the mutation.
func (m *InstructionMutation) LoadMode() (r instruction.LoadMode, exists bool) {
	v := m.load_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadMode returns the old "load_mode" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldLoadMode(ctx context.Context) (v instruction.LoadMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadMode: %w", err)
	}
	return oldValue.LoadMode, nil
}

// ResetLoadMode resets all changes to the "load_mode" field.
func (m *InstructionMutation) ResetLoadMode() {
	m.load_mode = nil
}

// SetStatus sets the "status" field.
func (m *InstructionMutation) SetStatus(i instruction.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InstructionMutation) Status() (r instruction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldStatus(ctx context.Context) (v instruction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InstructionMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *InstructionMutation) SetSource(i instruction.Source) {
	m.source = &i
}

// Source returns the value of the "source" field in the mutation.
func (m *InstructionMutation) Source() (r instruction.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldSource(ctx context.Context) (v instruction.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *InstructionMutation) ResetSource() {
	m.source = nil
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *InstructionMutation) SetAgentExecutionID(s string) {
	m.agent_execution_id = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *InstructionMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldAgentExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ClearAgentExecutionID clears the value of the "agent_execution_id" field.
func (m *InstructionMutation) ClearAgentExecutionID() {
	m.agent_execution_id = nil
	m.clearedFields[instruction.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionIDCleared returns if the "agent_execution_id" field was cleared in this mutation.
func (m *InstructionMutation) AgentExecutionIDCleared() bool {
	_, ok := m.clearedFields[instruction.FieldAgentExecutionID]
	return ok
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *InstructionMutation) ResetAgentExecutionID() {
	m.agent_execution_id = nil
	delete(m.clearedFields, instruction.FieldAgentExecutionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *InstructionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstructionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstructionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstructionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstructionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InstructionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InstructionMutation builder.
func (m *InstructionMutation) Where(ps ...predicate.Instruction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstructionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstructionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instruction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstructionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstructionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instruction).
func (m *InstructionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstructionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.organization_id != nil {
		fields = append(fields, instruction.FieldOrganizationID)
	}
	if m.text != nil {
		fields = append(fields, instruction.FieldText)
	}
	if m.category != nil {
		fields = append(fields, instruction.FieldCategory)
	}
	if m.load_mode != nil {
		fields = append(fields, instruction.FieldLoadMode)
	}
	if m.status != nil {
		fields = append(fields, instruction.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, instruction.FieldSource)
	}
	if m.agent_execution_id != nil {
		fields = append(fields, instruction.FieldAgentExecutionID)
	}
	if m.created_at != nil {
		fields = append(fields, instruction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, instruction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstructionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instruction.FieldOrganizationID:
		return m.OrganizationID()
	case instruction.FieldText:
		return m.Text()
	case instruction.FieldCategory:
		return m.Category()
	case instruction.FieldLoadMode:
		return m.LoadMode()
	case instruction.FieldStatus:
		return m.Status()
	case instruction.FieldSource:
		return m.Source()
	case instruction.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case instruction.FieldCreatedAt:
		return m.CreatedAt()
	case instruction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstructionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instruction.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case instruction.FieldText:
		return m.OldText(ctx)
	case instruction.FieldCategory:
		return m.OldCategory(ctx)
	case instruction.FieldLoadMode:
		return m.OldLoadMode(ctx)
	case instruction.FieldStatus:
		return m.OldStatus(ctx)
	case instruction.FieldSource:
		return m.OldSource(ctx)
	case instruction.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case instruction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instruction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Instruction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstructionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instruction.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case instruction.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case instruction.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case instruction.FieldLoadMode:
		v, ok := value.(instruction.LoadMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadMode(v)
		return nil
	case instruction.FieldStatus:
		v, ok := value.(instruction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case instruction.FieldSource:
		v, ok := value.(instruction.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case instruction.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case instruction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instruction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Instruction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstructionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstructionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstructionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Instruction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstructionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(instruction.FieldCategory) {
		fields = append(fields, instruction.FieldCategory)
	}
	if m.FieldCleared(instruction.FieldAgentExecutionID) {
		fields = append(fields, instruction.FieldAgentExecutionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstructionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstructionMutation) ClearField(name string) error {
	switch name {
	case instruction.FieldCategory:
		m.ClearCategory()
		return nil
	case instruction.FieldAgentExecutionID:
		m.ClearAgentExecutionID()
		return nil
	}
	return fmt.Errorf("unknown Instruction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstructionMutation) ResetField(name string) error {
	switch name {
	case instruction.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case instruction.FieldText:
		m.ResetText()
		return nil
	case instruction.FieldCategory:
		m.ResetCategory()
		return nil
	case instruction.FieldLoadMode:
		m.ResetLoadMode()
		return nil
	case instruction.FieldStatus:
		m.ResetStatus()
		return nil
	case instruction.FieldSource:
		m.ResetSource()
		return nil
	case instruction.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case instruction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instruction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Instruction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstructionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstructionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstructionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstructionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstructionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstructionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstructionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Instruction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstructionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Instruction edge %s", name)
}

// PlanDecisionMutation represents an operation that mutates the PlanDecision nodes in the graph.
type PlanDecisionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	seq                    *int
	addseq                 *int
	loop_index             *int
	addloop_index          *int
	plan_type              *plandecision.PlanType
	analysis_complete      *bool
	reasoning              *string
	assistant              *string
	final_answer           *string
	action_name            *string
	action_args            *map[string]interface{}
	metrics                *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	agent_execution        *string
	clearedagent_execution bool
	tool_executions        map[string]struct{}
	removedtool_executions map[string]struct{}
	clearedtool_executions bool
	done                   bool
	oldValue               func(context.Context) (*PlanDecision, error)
	predicates             []predicate.PlanDecision
}

var _ ent.Mutation = (*PlanDecisionMutation)(nil)

// plandecisionOption allows management of the mutation configuration using functional options.
type plandecisionOption func(*PlanDecisionMutation)

// newPlanDecisionMutation creates new mutation for the PlanDecision entity.
func newPlanDecisionMutation(c config, op Op, opts ...plandecisionOption) *PlanDecisionMutation {
	m := &PlanDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypePlanDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanDecisionID sets the ID field of the mutation.
func withPlanDecisionID(id string) plandecisionOption {
	return func(m *PlanDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanDecision
		)
		m.oldValue = func(ctx context.Context) (*PlanDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanDecision sets the old PlanDecision of the mutation.
func withPlanDecision(node *PlanDecision) plandecisionOption {
	return func(m *PlanDecisionMutation) {
		m.oldValue = func(context.Context) (*PlanDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanDecision entities.
func (m *PlanDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *PlanDecisionMutation) SetAgentExecutionID(s string) {
	m.agent_execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *PlanDecisionMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *PlanDecisionMutation) ResetAgentExecutionID() {
	m.agent_execution = nil
}

// SetSeq sets the "seq" field.
func (m *PlanDecisionMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *PlanDecisionMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *PlanDecisionMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *PlanDecisionMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *PlanDecisionMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetLoopIndex sets the "loop_index" field.
func (m *PlanDecisionMutation) SetLoopIndex(i int) {
	m.loop_index = &i
	m.addloop_index = nil
}

// LoopIndex returns the value of the "loop_index" field in the mutation.
func (m *PlanDecisionMutation) LoopIndex() (r int, exists bool) {
	v := m.loop_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopIndex returns the old "loop_index" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldLoopIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopIndex: %w", err)
	}
	return oldValue.LoopIndex, nil
}

// AddLoopIndex adds i to the "loop_index" field.
func (m *PlanDecisionMutation) AddLoopIndex(i int) {
	if m.addloop_index != nil {
		*m.addloop_index += i
	} else {
		m.addloop_index = &i
	}
}

// AddedLoopIndex returns the value that was added to the "loop_index" field in this mutation.
func (m *PlanDecisionMutation) AddedLoopIndex() (r int, exists bool) {
	v := m.addloop_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopIndex resets all changes to the "loop_index" field.
func (m *PlanDecisionMutation) ResetLoopIndex() {
	m.loop_index = nil
	m.addloop_index = nil
}

// SetPlanType sets the "plan_type" field.
func (m *PlanDecisionMutation) SetPlanType(pt plandecision.PlanType) {
	m.plan_type = &pt
}

// PlanType returns the value of the "plan_type" field in the mutation.
func (m *PlanDecisionMutation) PlanType() (r plandecision.PlanType, exists bool) {
	v := m.plan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanType returns the old "plan_type" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldPlanType(ctx context.Context) (v plandecision.PlanType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanType: %w", err)
	}
	return oldValue.PlanType, nil
}

// ResetPlanType resets all changes to the "plan_type" field.
func (m *PlanDecisionMutation) ResetPlanType() {
	m.plan_type = nil
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (m *PlanDecisionMutation) SetAnalysisComplete(b bool) {
	m.analysis_complete = &b
}

// AnalysisComplete returns the value of the "analysis_complete" field in the mutation.
func (m *PlanDecisionMutation) AnalysisComplete() (r bool, exists bool) {
	v := m.analysis_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisComplete returns the old "analysis_complete" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldAnalysisComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisComplete: %w", err)
	}
	return oldValue.AnalysisComplete, nil
}

// ResetAnalysisComplete resets all changes to the "analysis_complete" field.
func (m *PlanDecisionMutation) ResetAnalysisComplete() {
	m.analysis_complete = nil
}

// SetReasoning sets the "reasoning" field.
func (m *PlanDecisionMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *PlanDecisionMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *PlanDecisionMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[plandecision.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *PlanDecisionMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *PlanDecisionMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, plandecision.FieldReasoning)
}

// SetAssistant sets the "assistant" field.
func (m *PlanDecisionMutation) SetAssistant(s string) {
	m.assistant = &s
}

// Assistant returns the value of the "assistant" field in the mutation.
func (m *PlanDecisionMutation) Assistant() (r string, exists bool) {
	v := m.assistant
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistant returns the old "assistant" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldAssistant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistant: %w", err)
	}
	return oldValue.Assistant, nil
}

// ClearAssistant clears the value of the "assistant" field.
func (m *PlanDecisionMutation) ClearAssistant() {
	m.assistant = nil
	m.clearedFields[plandecision.FieldAssistant] = struct{}{}
}

// AssistantCleared returns if the "assistant" field was cleared in this mutation.
func (m *PlanDecisionMutation) AssistantCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldAssistant]
	return ok
}

// ResetAssistant resets all changes to the "assistant" field.
func (m *PlanDecisionMutation) ResetAssistant() {
	m.assistant = nil
	delete(m.clearedFields, plandecision.FieldAssistant)
}

// SetFinalAnswer sets the "final_answer" field.
func (m *PlanDecisionMutation) SetFinalAnswer(s string) {
	m.final_answer = &s
}

// FinalAnswer returns the value of the "final_answer" field in the mutation.
func (m *PlanDecisionMutation) FinalAnswer() (r string, exists bool) {
	v := m.final_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnswer returns the old "final_answer" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldFinalAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnswer: %w", err)
	}
	return oldValue.FinalAnswer, nil
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (m *PlanDecisionMutation) ClearFinalAnswer() {
	m.final_answer = nil
	m.clearedFields[plandecision.FieldFinalAnswer] = struct{}{}
}

// FinalAnswerCleared returns if the "final_answer" field was cleared in this mutation.
func (m *PlanDecisionMutation) FinalAnswerCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldFinalAnswer]
	return ok
}

// ResetFinalAnswer resets all changes to the "final_answer" field.
func (m *PlanDecisionMutation) ResetFinalAnswer() {
	m.final_answer = nil
	delete(m.clearedFields, plandecision.FieldFinalAnswer)
}

// SetActionName sets the "action_name" field.
func (m *PlanDecisionMutation) SetActionName(s string) {
	m.action_name = &s
}

// ActionName returns the value of the "action_name" field in the mutation.
func (m *PlanDecisionMutation) ActionName() (r string, exists bool) {
	v := m.action_name
	if v == nil {
		return
	}
	return *v, true
}

// OldActionName returns the old "action_name" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldActionName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionName: %w", err)
	}
	return oldValue.ActionName, nil
}

// ClearActionName clears the value of the "action_name" field.
func (m *PlanDecisionMutation) ClearActionName() {
	m.action_name = nil
	m.clearedFields[plandecision.FieldActionName] = struct{}{}
}

// ActionNameCleared returns if the "action_name" field was cleared in this mutation.
func (m *PlanDecisionMutation) ActionNameCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldActionName]
	return ok
}

// ResetActionName resets all changes to the "action_name" field.
func (m *PlanDecisionMutation) ResetActionName() {
	m.action_name = nil
	delete(m.clearedFields, plandecision.FieldActionName)
}

// SetActionArgs sets the "action_args" field.
func (m *PlanDecisionMutation) SetActionArgs(value map[string]interface{}) {
	m.action_args = &value
}

// ActionArgs returns the value of the "action_args" field in the mutation.
func (m *PlanDecisionMutation) ActionArgs() (r map[string]interface{}, exists bool) {
	v := m.action_args
	if v == nil {
		return
	}
	return *v, true
}

// OldActionArgs returns the old "action_args" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldActionArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionArgs: %w", err)
	}
	return oldValue.ActionArgs, nil
}

// ClearActionArgs clears the value of the "action_args" field.
func (m *PlanDecisionMutation) ClearActionArgs() {
	m.action_args = nil
	m.clearedFields[plandecision.FieldActionArgs] = struct{}{}
}

// ActionArgsCleared returns if the "action_args" field was cleared in this mutation.
func (m *PlanDecisionMutation) ActionArgsCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldActionArgs]
	return ok
}

// ResetActionArgs resets all changes to the "action_args" field.
func (m *PlanDecisionMutation) ResetActionArgs() {
	m.action_args = nil
	delete(m.clearedFields, plandecision.FieldActionArgs)
}

// SetMetrics sets the "metrics" field.
func (m *PlanDecisionMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *PlanDecisionMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *PlanDecisionMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[plandecision.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *PlanDecisionMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *PlanDecisionMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, plandecision.FieldMetrics)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanDecisionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanDecisionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanDecisionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgentExecution clears the "agent_execution" edge to the AgentExecution entity.
func (m *PlanDecisionMutation) ClearAgentExecution() {
	m.clearedagent_execution = true
	m.clearedFields[plandecision.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionCleared reports if the "agent_execution" edge to the AgentExecution entity was cleared.
func (m *PlanDecisionMutation) AgentExecutionCleared() bool {
	return m.clearedagent_execution
}

// AgentExecutionIDs returns the "agent_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentExecutionID instead. It exists only for internal usage by the builders.
func (m *PlanDecisionMutation) AgentExecutionIDs() (ids []string) {
	if id := m.agent_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentExecution resets all changes to the "agent_execution" edge.
func (m *PlanDecisionMutation) ResetAgentExecution() {
	m.agent_execution = nil
	m.clearedagent_execution = false
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by ids.
func (m *PlanDecisionMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecution entity.
func (m *PlanDecisionMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecution entity was cleared.
func (m *PlanDecisionMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecution entity by IDs.
func (m *PlanDecisionMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecution entity.
func (m *PlanDecisionMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *PlanDecisionMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *PlanDecisionMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// Where appends a list predicates to the PlanDecisionMutation builder.
func (m *PlanDecisionMutation) Where(ps ...predicate.PlanDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanDecision).
func (m *PlanDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanDecisionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_execution != nil {
		fields = append(fields, plandecision.FieldAgentExecutionID)
	}
	if m.seq != nil {
		fields = append(fields, plandecision.FieldSeq)
	}
	if m.loop_index != nil {
		fields = append(fields, plandecision.FieldLoopIndex)
	}
	if m.plan_type != nil {
		fields = append(fields, plandecision.FieldPlanType)
	}
	if m.analysis_complete != nil {
		fields = append(fields, plandecision.FieldAnalysisComplete)
	}
	if m.reasoning != nil {
		fields = append(fields, plandecision.FieldReasoning)
	}
	if m.assistant != nil {
		fields = append(fields, plandecision.FieldAssistant)
	}
	if m.final_answer != nil {
		fields = append(fields, plandecision.FieldFinalAnswer)
	}
	if m.action_name != nil {
		fields = append(fields, plandecision.FieldActionName)
	}
	if m.action_args != nil {
		fields = append(fields, plandecision.FieldActionArgs)
	}
	if m.metrics != nil {
		fields = append(fields, plandecision.FieldMetrics)
	}
	if m.created_at != nil {
		fields = append(fields, plandecision.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plandecision.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plandecision.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case plandecision.FieldSeq:
		return m.Seq()
	case plandecision.FieldLoopIndex:
		return m.LoopIndex()
	case plandecision.FieldPlanType:
		return m.PlanType()
	case plandecision.FieldAnalysisComplete:
		return m.AnalysisComplete()
	case plandecision.FieldReasoning:
		return m.Reasoning()
	case plandecision.FieldAssistant:
		return m.Assistant()
	case plandecision.FieldFinalAnswer:
		return m.FinalAnswer()
	case plandecision.FieldActionName:
		return m.ActionName()
	case plandecision.FieldActionArgs:
		return m.ActionArgs()
	case plandecision.FieldMetrics:
		return m.Metrics()
	case plandecision.FieldCreatedAt:
		return m.CreatedAt()
	case plandecision.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plandecision.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case plandecision.FieldSeq:
		return m.OldSeq(ctx)
	case plandecision.FieldLoopIndex:
		return m.OldLoopIndex(ctx)
	case plandecision.FieldPlanType:
		return m.OldPlanType(ctx)
	case plandecision.FieldAnalysisComplete:
		return m.OldAnalysisComplete(ctx)
	case plandecision.FieldReasoning:
		return m.OldReasoning(ctx)
	case plandecision.FieldAssistant:
		return m.OldAssistant(ctx)
	case plandecision.FieldFinalAnswer:
		return m.OldFinalAnswer(ctx)
	case plandecision.FieldActionName:
		return m.OldActionName(ctx)
	case plandecision.FieldActionArgs:
		return m.OldActionArgs(ctx)
	case plandecision.FieldMetrics:
		return m.OldMetrics(ctx)
	case plandecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plandecision.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlanDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plandecision.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case plandecision.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case plandecision.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopIndex(v)
		return nil
	case plandecision.FieldPlanType:
		v, ok := value.(plandecision.PlanType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanType(v)
		return nil
	case plandecision.FieldAnalysisComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisComplete(v)
		return nil
	case plandecision.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case plandecision.FieldAssistant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistant(v)
		return nil
	case plandecision.FieldFinalAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnswer(v)
		return nil
	case plandecision.FieldActionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionName(v)
		return nil
	case plandecision.FieldActionArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionArgs(v)
		return nil
	case plandecision.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case plandecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plandecision.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlanDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, plandecision.FieldSeq)
	}
	if m.addloop_index != nil {
		fields = append(fields, plandecision.FieldLoopIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plandecision.FieldSeq:
		return m.AddedSeq()
	case plandecision.FieldLoopIndex:
		return m.AddedLoopIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plandecision.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case plandecision.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopIndex(v)
		return nil
	}
	return fmt.Errorf("unknown PlanDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plandecision.FieldReasoning) {
		fields = append(fields, plandecision.FieldReasoning)
	}
	if m.FieldCleared(plandecision.FieldAssistant) {
		fields = append(fields, plandecision.FieldAssistant)
	}
	if m.FieldCleared(plandecision.FieldFinalAnswer) {
		fields = append(fields, plandecision.FieldFinalAnswer)
	}
	if m.FieldCleared(plandecision.FieldActionName) {
		fields = append(fields, plandecision.FieldActionName)
	}
	if m.FieldCleared(plandecision.FieldActionArgs) {
		fields = append(fields, plandecision.FieldActionArgs)
	}
	if m.FieldCleared(plandecision.FieldMetrics) {
		fields = append(fields, plandecision.FieldMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanDecisionMutation) ClearField(name string) error {
	switch name {
	case plandecision.FieldReasoning:
		m.ClearReasoning()
		return nil
	case plandecision.FieldAssistant:
		m.ClearAssistant()
		return nil
	case plandecision.FieldFinalAnswer:
		m.ClearFinalAnswer()
		return nil
	case plandecision.FieldActionName:
		m.ClearActionName()
		return nil
	case plandecision.FieldActionArgs:
		m.ClearActionArgs()
		return nil
	case plandecision.FieldMetrics:
		m.ClearMetrics()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanDecisionMutation) ResetField(name string) error {
	switch name {
	case plandecision.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case plandecision.FieldSeq:
		m.ResetSeq()
		return nil
	case plandecision.FieldLoopIndex:
		m.ResetLoopIndex()
		return nil
	case plandecision.FieldPlanType:
		m.ResetPlanType()
		return nil
	case plandecision.FieldAnalysisComplete:
		m.ResetAnalysisComplete()
		return nil
	case plandecision.FieldReasoning:
		m.ResetReasoning()
		return nil
	case plandecision.FieldAssistant:
		m.ResetAssistant()
		return nil
	case plandecision.FieldFinalAnswer:
		m.ResetFinalAnswer()
		return nil
	case plandecision.FieldActionName:
		m.ResetActionName()
		return nil
	case plandecision.FieldActionArgs:
		m.ResetActionArgs()
		return nil
	case plandecision.FieldMetrics:
		m.ResetMetrics()
		return nil
	case plandecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plandecision.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent_execution != nil {
		edges = append(edges, plandecision.EdgeAgentExecution)
	}
	if m.tool_executions != nil {
		edges = append(edges, plandecision.EdgeToolExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plandecision.EdgeAgentExecution:
		if id := m.agent_execution; id != nil {
			return []ent.Value{*id}
		}
	case plandecision.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtool_executions != nil {
		edges = append(edges, plandecision.EdgeToolExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanDecisionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plandecision.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent_execution {
		edges = append(edges, plandecision.EdgeAgentExecution)
	}
	if m.clearedtool_executions {
		edges = append(edges, plandecision.EdgeToolExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case plandecision.EdgeAgentExecution:
		return m.clearedagent_execution
	case plandecision.EdgeToolExecutions:
		return m.clearedtool_executions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanDecisionMutation) ClearEdge(name string) error {
	switch name {
	case plandecision.EdgeAgentExecution:
		m.ClearAgentExecution()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanDecisionMutation) ResetEdge(name string) error {
	switch name {
	case plandecision.EdgeAgentExecution:
		m.ResetAgentExecution()
		return nil
	case plandecision.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	organization_id         *string
	user_id                 *string
	title                   *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	completions             map[string]struct{}
	removedcompletions      map[string]struct{}
	clearedcompletions      bool
	agent_executions        map[string]struct{}
	removedagent_executions map[string]struct{}
	clearedagent_executions bool
	done                    bool
	oldValue                func(context.Context) (*Report, error)
	predicates              []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id string) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *ReportMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *ReportMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *ReportMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ReportMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReportMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReportMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ReportMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[report.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ReportMutation) TitleCleared() bool {
	_, ok := m.clearedFields[report.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, report.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCompletionIDs adds the "completions" edge to the Completion entity by ids.
func (m *ReportMutation) AddCompletionIDs(ids ...string) {
	if m.completions == nil {
		m.completions = make(map[string]struct{})
	}
	for i := range ids {
		m.completions[ids[i]] = struct{}{}
	}
}

// ClearCompletions clears the "completions" edge to the Completion entity.
func (m *ReportMutation) ClearCompletions() {
	m.clearedcompletions = true
}

// CompletionsCleared reports if the "completions" edge to the Completion entity was cleared.
func (m *ReportMutation) CompletionsCleared() bool {
	return m.clearedcompletions
}

// RemoveCompletionIDs removes the "completions" edge to the Completion entity by IDs.
func (m *ReportMutation) RemoveCompletionIDs(ids ...string) {
	if m.removedcompletions == nil {
		m.removedcompletions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.completions, ids[i])
		m.removedcompletions[ids[i]] = struct{}{}
	}
}

// RemovedCompletions returns the removed IDs of the "completions" edge to the Completion entity.
func (m *ReportMutation) RemovedCompletionsIDs() (ids []string) {
	for id := range m.removedcompletions {
		ids = append(ids, id)
	}
	return
}

// CompletionsIDs returns the "completions" edge IDs in the mutation.
func (m *ReportMutation) CompletionsIDs() (ids []string) {
	for id := range m.completions {
		ids = append(ids, id)
	}
	return
}

// ResetCompletions resets all changes to the "completions" edge.
func (m *ReportMutation) ResetCompletions() {
	m.completions = nil
	m.clearedcompletions = false
	m.removedcompletions = nil
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by ids.
func (m *ReportMutation) AddAgentExecutionIDs(ids ...string) {
	if m.agent_executions == nil {
		m.agent_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_executions[ids[i]] = struct{}{}
	}
}

// ClearAgentExecutions clears the "agent_executions" edge to the AgentExecution entity.
func (m *ReportMutation) ClearAgentExecutions() {
	m.clearedagent_executions = true
}

// AgentExecutionsCleared reports if the "agent_executions" edge to the AgentExecution entity was cleared.
func (m *ReportMutation) AgentExecutionsCleared() bool {
	return m.clearedagent_executions
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to the AgentExecution entity by IDs.
func (m *ReportMutation) RemoveAgentExecutionIDs(ids ...string) {
	if m.removedagent_executions == nil {
		m.removedagent_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_executions, ids[i])
		m.removedagent_executions[ids[i]] = struct{}{}
	}
}

// RemovedAgentExecutions returns the removed IDs of the "agent_executions" edge to the AgentExecution entity.
func (m *ReportMutation) RemovedAgentExecutionsIDs() (ids []string) {
	for id := range m.removedagent_executions {
		ids = append(ids, id)
	}
	return
}

// AgentExecutionsIDs returns the "agent_executions" edge IDs in the mutation.
func (m *ReportMutation) AgentExecutionsIDs() (ids []string) {
	for id := range m.agent_executions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentExecutions resets all changes to the "agent_executions" edge.
func (m *ReportMutation) ResetAgentExecutions() {
	m.agent_executions = nil
	m.clearedagent_executions = false
	m.removedagent_executions = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.organization_id != nil {
		fields = append(fields, report.FieldOrganizationID)
	}
	if m.user_id != nil {
		fields = append(fields, report.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldOrganizationID:
		return m.OrganizationID()
	case report.FieldUserID:
		return m.UserID()
	case report.FieldTitle:
		return m.Title()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case report.FieldUserID:
		return m.OldUserID(ctx)
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case report.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldTitle) {
		fields = append(fields, report.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case report.FieldUserID:
		m.ResetUserID()
		return nil
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.completions != nil {
		edges = append(edges, report.EdgeCompletions)
	}
	if m.agent_executions != nil {
		edges = append(edges, report.EdgeAgentExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCompletions:
		ids := make([]ent.Value, 0, len(m.completions))
		for id := range m.completions {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.agent_executions))
		for id := range m.agent_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcompletions != nil {
		edges = append(edges, report.EdgeCompletions)
	}
	if m.removedagent_executions != nil {
		edges = append(edges, report.EdgeAgentExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCompletions:
		ids := make([]ent.Value, 0, len(m.removedcompletions))
		for id := range m.removedcompletions {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.removedagent_executions))
		for id := range m.removedagent_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompletions {
		edges = append(edges, report.EdgeCompletions)
	}
	if m.clearedagent_executions {
		edges = append(edges, report.EdgeAgentExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeCompletions:
		return m.clearedcompletions
	case report.EdgeAgentExecutions:
		return m.clearedagent_executions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeCompletions:
		m.ResetCompletions()
		return nil
	case report.EdgeAgentExecutions:
		m.ResetAgentExecutions()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// TableUsageMutation represents an operation that mutates the TableUsage nodes in the graph.
type TableUsageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	organization_id    *string
	datasource         *string
	table_name         *string
	success            *bool
	feedback           *int
	addfeedback        *int
	step_id            *string
	agent_execution_id *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TableUsage, error)
	predicates         []predicate.TableUsage
}

var _ ent.Mutation = (*TableUsageMutation)(nil)

// tableusageOption allows management of the mutation configuration using functional options.
type tableusageOption func(*TableUsageMutation)

// newTableUsageMutation creates new mutation for the TableUsage entity.
func newTableUsageMutation(c config, op Op, opts ...tableusageOption) *TableUsageMutation {
	m := &TableUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeTableUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTableUsageID sets the ID field of the mutation.
func withTableUsageID(id string) tableusageOption {
	return func(m *TableUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *TableUsage
		)
		m.oldValue = func(ctx context.Context) (*TableUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TableUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTableUsage sets the old TableUsage of the mutation.
func withTableUsage(node *TableUsage) tableusageOption {
	return func(m *TableUsageMutation) {
		m.oldValue = func(context.Context) (*TableUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TableUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TableUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TableUsage entities.
func (m *TableUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TableUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TableUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TableUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *TableUsageMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *TableUsageMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *TableUsageMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetDatasource sets the "datasource" field.
func (m *TableUsageMutation) SetDatasource(s string) {
	m.datasource = &s
}

// Datasource returns the value of the "datasource" field in the mutation.
func (m *TableUsageMutation) Datasource() (r string, exists bool) {
	v := m.datasource
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasource returns the old "datasource" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldDatasource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasource: %w", err)
	}
	return oldValue.Datasource, nil
}

// ResetDatasource resets all changes to the "datasource" field.
func (m *TableUsageMutation) ResetDatasource() {
	m.datasource = nil
}

// SetTableName sets the "table_name" field.
func (m *TableUsageMutation) SetTableName(s string) {
	m.table_name = &s
}

// TableName returns the value of the "table_name" field in the mutation.
func (m *TableUsageMutation) TableName() (r string, exists bool) {
	v := m.table_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTableName returns the old "table_name" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldTableName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableName: %w", err)
	}
	return oldValue.TableName, nil
}

// ResetTableName resets all changes to the "table_name" field.
func (m *TableUsageMutation) ResetTableName() {
	m.table_name = nil
}

// SetSuccess sets the "success" field.
func (m *TableUsageMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *TableUsageMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *TableUsageMutation) ResetSuccess() {
	m.success = nil
}

// SetFeedback sets the "feedback" field.
func (m *TableUsageMutation) SetFeedback(i int) {
	m.feedback = &i
	m.addfeedback = nil
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *TableUsageMutation) Feedback() (r int, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldFeedback(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// AddFeedback adds i to the "feedback" field.
func (m *TableUsageMutation) AddFeedback(i int) {
	if m.addfeedback != nil {
		*m.addfeedback += i
	} else {
		m.addfeedback = &i
	}
}

// AddedFeedback returns the value that was added to the "feedback" field in this mutation.
func (m *TableUsageMutation) AddedFeedback() (r int, exists bool) {
	v := m.addfeedback
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *TableUsageMutation) ResetFeedback() {
	m.feedback = nil
	m.addfeedback = nil
}

// SetStepID sets the "step_id" field.
func (m *TableUsageMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *TableUsageMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *TableUsageMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[tableusage.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *TableUsageMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[tableusage.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *TableUsageMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, tableusage.FieldStepID)
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *TableUsageMutation) SetAgentExecutionID(s string) {
	m.agent_execution_id = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *TableUsageMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldAgentExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ClearAgentExecutionID clears the value of the "agent_execution_id" field.
func (m *TableUsageMutation) ClearAgentExecutionID() {
	m.agent_execution_id = nil
	m.clearedFields[tableusage.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionIDCleared returns if the "agent_execution_id" field was cleared in this mutation.
func (m *TableUsageMutation) AgentExecutionIDCleared() bool {
	_, ok := m.clearedFields[tableusage.FieldAgentExecutionID]
	return ok
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *TableUsageMutation) ResetAgentExecutionID() {
	m.agent_execution_id = nil
	delete(m.clearedFields, tableusage.FieldAgentExecutionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TableUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TableUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TableUsage entity.
// If the TableUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TableUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TableUsageMutation builder.
func (m *TableUsageMutation) Where(ps ...predicate.TableUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TableUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TableUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TableUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TableUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TableUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TableUsage).
func (m *TableUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TableUsageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.organization_id != nil {
		fields = append(fields, tableusage.FieldOrganizationID)
	}
	if m.datasource != nil {
		fields = append(fields, tableusage.FieldDatasource)
	}
	if m.table_name != nil {
		fields = append(fields, tableusage.FieldTableName)
	}
	if m.success != nil {
		fields = append(fields, tableusage.FieldSuccess)
	}
	if m.feedback != nil {
		fields = append(fields, tableusage.FieldFeedback)
	}
	if m.step_id != nil {
		fields = append(fields, tableusage.FieldStepID)
	}
	if m.agent_execution_id != nil {
		fields = append(fields, tableusage.FieldAgentExecutionID)
	}
	if m.created_at != nil {
		fields = append(fields, tableusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TableUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tableusage.FieldOrganizationID:
		return m.OrganizationID()
	case tableusage.FieldDatasource:
		return m.Datasource()
	case tableusage.FieldTableName:
		return m.TableName()
	case tableusage.FieldSuccess:
		return m.Success()
	case tableusage.FieldFeedback:
		return m.Feedback()
	case tableusage.FieldStepID:
		return m.StepID()
	case tableusage.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case tableusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TableUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tableusage.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case tableusage.FieldDatasource:
		return m.OldDatasource(ctx)
	case tableusage.FieldTableName:
		return m.OldTableName(ctx)
	case tableusage.FieldSuccess:
		return m.OldSuccess(ctx)
	case tableusage.FieldFeedback:
		return m.OldFeedback(ctx)
	case tableusage.FieldStepID:
		return m.OldStepID(ctx)
	case tableusage.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case tableusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TableUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tableusage.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case tableusage.FieldDatasource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasource(v)
		return nil
	case tableusage.FieldTableName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableName(v)
		return nil
	case tableusage.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case tableusage.FieldFeedback:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case tableusage.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case tableusage.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case tableusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TableUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TableUsageMutation) AddedFields() []string {
	var fields []string
	if m.addfeedback != nil {
		fields = append(fields, tableusage.FieldFeedback)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TableUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tableusage.FieldFeedback:
		return m.AddedFeedback()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tableusage.FieldFeedback:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeedback(v)
		return nil
	}
	return fmt.Errorf("unknown TableUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TableUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tableusage.FieldStepID) {
		fields = append(fields, tableusage.FieldStepID)
	}
	if m.FieldCleared(tableusage.FieldAgentExecutionID) {
		fields = append(fields, tableusage.FieldAgentExecutionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TableUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TableUsageMutation) ClearField(name string) error {
	switch name {
	case tableusage.FieldStepID:
		m.ClearStepID()
		return nil
	case tableusage.FieldAgentExecutionID:
		m.ClearAgentExecutionID()
		return nil
	}
	return fmt.Errorf("unknown TableUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TableUsageMutation) ResetField(name string) error {
	switch name {
	case tableusage.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case tableusage.FieldDatasource:
		m.ResetDatasource()
		return nil
	case tableusage.FieldTableName:
		m.ResetTableName()
		return nil
	case tableusage.FieldSuccess:
		m.ResetSuccess()
		return nil
	case tableusage.FieldFeedback:
		m.ResetFeedback()
		return nil
	case tableusage.FieldStepID:
		m.ResetStepID()
		return nil
	case tableusage.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case tableusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TableUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TableUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TableUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TableUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TableUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TableUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TableUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TableUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TableUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TableUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TableUsage edge %s", name)
}

// ToolExecutionMutation represents an operation that mutates the ToolExecution nodes in the graph.
type ToolExecutionMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	seq                             *int
	addseq                          *int
	tool_name                       *string
	tool_action                     *string
	arguments                       *map[string]interface{}
	status                          *toolexecution.Status
	success                         *bool
	attempt_number                  *int
	addattempt_number               *int
	max_retries                     *int
	addmax_retries                  *int
	result_summary                  *string
	result_json                     *map[string]interface{}
	error_message                   *string
	created_widget_id               *string
	created_step_id                 *string
	created_visualization_ids       *[]string
	appendcreated_visualization_ids []string
	started_at                      *time.Time
	completed_at                    *time.Time
	duration_ms                     *int
	addduration_ms                  *int
	clearedFields                   map[string]struct{}
	agent_execution                 *string
	clearedagent_execution          bool
	plan_decision                   *string
	clearedplan_decision            bool
	done                            bool
	oldValue                        func(context.Context) (*ToolExecution, error)
	predicates                      []predicate.ToolExecution
}

var _ ent.Mutation = (*ToolExecutionMutation)(nil)

// toolexecutionOption allows management of the mutation configuration using functional options.
type toolexecutionOption func(*ToolExecutionMutation)

// newToolExecutionMutation creates new mutation for the ToolExecution entity.
func newToolExecutionMutation(c config, op Op, opts ...toolexecutionOption) *ToolExecutionMutation {
	m := &ToolExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeToolExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolExecutionID sets the ID field of the mutation.
func withToolExecutionID(id string) toolexecutionOption {
	return func(m *ToolExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolExecution
		)
		m.oldValue = func(ctx context.Context) (*ToolExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolExecution sets the old ToolExecution of the mutation.
func withToolExecution(node *ToolExecution) toolexecutionOption {
	return func(m *ToolExecutionMutation) {
		m.oldValue = func(context.Context) (*ToolExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolExecution entities.
func (m *ToolExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *ToolExecutionMutation) SetAgentExecutionID(s string) {
	m.agent_execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *ToolExecutionMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *ToolExecutionMutation) ResetAgentExecutionID() {
	m.agent_execution = nil
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (m *ToolExecutionMutation) SetPlanDecisionID(s string) {
	m.plan_decision = &s
}

// PlanDecisionID returns the value of the "plan_decision_id" field in the mutation.
func (m *ToolExecutionMutation) PlanDecisionID() (r string, exists bool) {
	v := m.plan_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDecisionID returns the old "plan_decision_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldPlanDecisionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDecisionID: %w", err)
	}
	return oldValue.PlanDecisionID, nil
}

// ClearPlanDecisionID clears the value of the "plan_decision_id" field.
func (m *ToolExecutionMutation) ClearPlanDecisionID() {
	m.plan_decision = nil
	m.clearedFields[toolexecution.FieldPlanDecisionID] = struct{}{}
}

// PlanDecisionIDCleared returns if the "plan_decision_id" field was cleared in this mutation.
func (m *ToolExecutionMutation) PlanDecisionIDCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldPlanDecisionID]
	return ok
}

// ResetPlanDecisionID resets all changes to the "plan_decision_id" field.
func (m *ToolExecutionMutation) ResetPlanDecisionID() {
	m.plan_decision = nil
	delete(m.clearedFields, toolexecution.FieldPlanDecisionID)
}

// SetSeq sets the "seq" field.
func (m *ToolExecutionMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *ToolExecutionMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *ToolExecutionMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *ToolExecutionMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *ToolExecutionMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolExecutionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolExecutionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolExecutionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolAction sets the "tool_action" field.
func (m *ToolExecutionMutation) SetToolAction(s string) {
	m.tool_action = &s
}

// ToolAction returns the value of the "tool_action" field in the mutation.
func (m *ToolExecutionMutation) ToolAction() (r string, exists bool) {
	v := m.tool_action
	if v == nil {
		return
	}
	return *v, true
}

// OldToolAction returns the old "tool_action" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldToolAction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolAction: %w", err)
	}
	return oldValue.ToolAction, nil
}

// ClearToolAction clears the value of the "tool_action" field.
func (m *ToolExecutionMutation) ClearToolAction() {
	m.tool_action = nil
	m.clearedFields[toolexecution.FieldToolAction] = struct{}{}
}

// ToolActionCleared returns if the "tool_action" field was cleared in this mutation.
func (m *ToolExecutionMutation) ToolActionCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldToolAction]
	return ok
}

// ResetToolAction resets all changes to the "tool_action" field.
func (m *ToolExecutionMutation) ResetToolAction() {
	m.tool_action = nil
	delete(m.clearedFields, toolexecution.FieldToolAction)
}

// SetArguments sets the "arguments" field.
func (m *ToolExecutionMutation) SetArguments(value map[string]interface{}) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *ToolExecutionMutation) Arguments() (r map[string]interface{}, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ResetArguments resets all changes to the "arguments" field.
func (m *ToolExecutionMutation) ResetArguments() {
	m.arguments = nil
}

// SetStatus sets the "status" field.
func (m *ToolExecutionMutation) SetStatus(t toolexecution.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolExecutionMutation) Status() (r toolexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldStatus(ctx context.Context) (v toolexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetSuccess sets the "success" field.
func (m *ToolExecutionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ToolExecutionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ToolExecutionMutation) ResetSuccess() {
	m.success = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *ToolExecutionMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *ToolExecutionMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *ToolExecutionMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *ToolExecutionMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *ToolExecutionMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *ToolExecutionMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *ToolExecutionMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *ToolExecutionMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *ToolExecutionMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *ToolExecutionMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetResultSummary sets the "result_summary" field.
func (m *ToolExecutionMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *ToolExecutionMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldResultSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *ToolExecutionMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[toolexecution.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *ToolExecutionMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *ToolExecutionMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, toolexecution.FieldResultSummary)
}

// SetResultJSON sets the "result_json" field.
func (m *ToolExecutionMutation) SetResultJSON(value map[string]interface{}) {
	m.result_json = &value
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *ToolExecutionMutation) ResultJSON() (r map[string]interface{}, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldResultJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *ToolExecutionMutation) ClearResultJSON() {
	m.result_json = nil
	m.clearedFields[toolexecution.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *ToolExecutionMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *ToolExecutionMutation) ResetResultJSON() {
	m.result_json = nil
	delete(m.clearedFields, toolexecution.FieldResultJSON)
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolexecution.FieldErrorMessage)
}

// SetCreatedWidgetID sets the "created_widget_id" field.
func (m *ToolExecutionMutation) SetCreatedWidgetID(s string) {
	m.created_widget_id = &s
}

// CreatedWidgetID returns the value of the "created_widget_id" field in the mutation.
func (m *ToolExecutionMutation) CreatedWidgetID() (r string, exists bool) {
	v := m.created_widget_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedWidgetID returns the old "created_widget_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedWidgetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedWidgetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedWidgetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedWidgetID: %w", err)
	}
	return oldValue.CreatedWidgetID, nil
}

// ClearCreatedWidgetID clears the value of the "created_widget_id" field.
func (m *ToolExecutionMutation) ClearCreatedWidgetID() {
	m.created_widget_id = nil
	m.clearedFields[toolexecution.FieldCreatedWidgetID] = struct{}{}
}

// CreatedWidgetIDCleared returns if the "created_widget_id" field was cleared in this mutation.
func (m *ToolExecutionMutation) CreatedWidgetIDCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCreatedWidgetID]
	return ok
}

// ResetCreatedWidgetID resets all changes to the "created_widget_id" field.
func (m *ToolExecutionMutation) ResetCreatedWidgetID() {
	m.created_widget_id = nil
	delete(m.clearedFields, toolexecution.FieldCreatedWidgetID)
}

// SetCreatedStepID sets the "created_step_id" field.
func (m *ToolExecutionMutation) SetCreatedStepID(s string) {
	m.created_step_id = &s
}

// CreatedStepID returns the value of the "created_step_id" field in the mutation.
func (m *ToolExecutionMutation) CreatedStepID() (r string, exists bool) {
	v := m.created_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedStepID returns the old "created_step_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedStepID: %w", err)
	}
	return oldValue.CreatedStepID, nil
}

// ClearCreatedStepID clears the value of the "created_step_id" field.
func (m *ToolExecutionMutation) ClearCreatedStepID() {
	m.created_step_id = nil
	m.clearedFields[toolexecution.FieldCreatedStepID] = struct{}{}
}

// CreatedStepIDCleared returns if the "created_step_id" field was cleared in this mutation.
func (m *ToolExecutionMutation) CreatedStepIDCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCreatedStepID]
	return ok
}

// ResetCreatedStepID resets all changes to the "created_step_id" field.
func (m *ToolExecutionMutation) ResetCreatedStepID() {
	m.created_step_id = nil
	delete(m.clearedFields, toolexecution.FieldCreatedStepID)
}

// SetCreatedVisualizationIds sets the "created_visualization_ids" field.
func (m *ToolExecutionMutation) SetCreatedVisualizationIds(s []string) {
	m.created_visualization_ids = &s
	m.appendcreated_visualization_ids = nil
}

// CreatedVisualizationIds returns the value of the "created_visualization_ids" field in the mutation.
func (m *ToolExecutionMutation) CreatedVisualizationIds() (r []string, exists bool) {
	v := m.created_visualization_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedVisualizationIds returns the old "created_visualization_ids" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedVisualizationIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedVisualizationIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedVisualizationIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedVisualizationIds: %w", err)
	}
	return oldValue.CreatedVisualizationIds, nil
}

// AppendCreatedVisualizationIds adds s to the "created_visualization_ids" field.
func (m *ToolExecutionMutation) AppendCreatedVisualizationIds(s []string) {
	m.appendcreated_visualization_ids = append(m.appendcreated_visualization_ids, s...)
}

// AppendedCreatedVisualizationIds returns the list of values that were appended to the "created_visualization_ids" field in this mutation.
func (m *ToolExecutionMutation) AppendedCreatedVisualizationIds() ([]string, bool) {
	if len(m.appendcreated_visualization_ids) == 0 {
		return nil, false
	}
	return m.appendcreated_visualization_ids, true
}

// ClearCreatedVisualizationIds clears the value of the "created_visualization_ids" field.
func (m *ToolExecutionMutation) ClearCreatedVisualizationIds() {
	m.created_visualization_ids = nil
	m.appendcreated_visualization_ids = nil
	m.clearedFields[toolexecution.FieldCreatedVisualizationIds] = struct{}{}
}

// CreatedVisualizationIdsCleared returns if the "created_visualization_ids" field was cleared in this mutation.
func (m *ToolExecutionMutation) CreatedVisualizationIdsCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCreatedVisualizationIds]
	return ok
}

// ResetCreatedVisualizationIds resets all changes to the "created_visualization_ids" field.
func (m *ToolExecutionMutation) ResetCreatedVisualizationIds() {
	m.created_visualization_ids = nil
	m.appendcreated_visualization_ids = nil
	delete(m.clearedFields, toolexecution.FieldCreatedVisualizationIds)
}

// SetStartedAt sets the "started_at" field.
func (m *ToolExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ToolExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ToolExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ToolExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ToolExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ToolExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[toolexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ToolExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ToolExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, toolexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ToolExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ToolExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ToolExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ToolExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ToolExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[toolexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ToolExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ToolExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, toolexecution.FieldDurationMs)
}

// ClearAgentExecution clears the "agent_execution" edge to the AgentExecution entity.
func (m *ToolExecutionMutation) ClearAgentExecution() {
	m.clearedagent_execution = true
	m.clearedFields[toolexecution.FieldAgentExecutionID] = struct{}{}
}

// AgentExecutionCleared reports if the "agent_execution" edge to the AgentExecution entity was cleared.
func (m *ToolExecutionMutation) AgentExecutionCleared() bool {
	return m.clearedagent_execution
}

// AgentExecutionIDs returns the "agent_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentExecutionID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionMutation) AgentExecutionIDs() (ids []string) {
	if id := m.agent_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentExecution resets all changes to the "agent_execution" edge.
func (m *ToolExecutionMutation) ResetAgentExecution() {
	m.agent_execution = nil
	m.clearedagent_execution = false
}

// ClearPlanDecision clears the "plan_decision" edge to the PlanDecision entity.
func (m *ToolExecutionMutation) ClearPlanDecision() {
	m.clearedplan_decision = true
	m.clearedFields[toolexecution.FieldPlanDecisionID] = struct{}{}
}

// PlanDecisionCleared reports if the "plan_decision" edge to the PlanDecision entity was cleared.
func (m *ToolExecutionMutation) PlanDecisionCleared() bool {
	return m.PlanDecisionIDCleared() || m.clearedplan_decision
}

// PlanDecisionIDs returns the "plan_decision" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanDecisionID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionMutation) PlanDecisionIDs() (ids []string) {
	if id := m.plan_decision; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlanDecision resets all changes to the "plan_decision" edge.
func (m *ToolExecutionMutation) ResetPlanDecision() {
	m.plan_decision = nil
	m.clearedplan_decision = false
}

// Where appends a list predicates to the ToolExecutionMutation builder.
func (m *ToolExecutionMutation) Where(ps ...predicate.ToolExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolExecution).
func (m *ToolExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolExecutionMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.agent_execution != nil {
		fields = append(fields, toolexecution.FieldAgentExecutionID)
	}
	if m.plan_decision != nil {
		fields = append(fields, toolexecution.FieldPlanDecisionID)
	}
	if m.seq != nil {
		fields = append(fields, toolexecution.FieldSeq)
	}
	if m.tool_name != nil {
		fields = append(fields, toolexecution.FieldToolName)
	}
	if m.tool_action != nil {
		fields = append(fields, toolexecution.FieldToolAction)
	}
	if m.arguments != nil {
		fields = append(fields, toolexecution.FieldArguments)
	}
	if m.status != nil {
		fields = append(fields, toolexecution.FieldStatus)
	}
	if m.success != nil {
		fields = append(fields, toolexecution.FieldSuccess)
	}
	if m.attempt_number != nil {
		fields = append(fields, toolexecution.FieldAttemptNumber)
	}
	if m.max_retries != nil {
		fields = append(fields, toolexecution.FieldMaxRetries)
	}
	if m.result_summary != nil {
		fields = append(fields, toolexecution.FieldResultSummary)
	}
	if m.result_json != nil {
		fields = append(fields, toolexecution.FieldResultJSON)
	}
	if m.error_message != nil {
		fields = append(fields, toolexecution.FieldErrorMessage)
	}
	if m.created_widget_id != nil {
		fields = append(fields, toolexecution.FieldCreatedWidgetID)
	}
	if m.created_step_id != nil {
		fields = append(fields, toolexecution.FieldCreatedStepID)
	}
	if m.created_visualization_ids != nil {
		fields = append(fields, toolexecution.FieldCreatedVisualizationIds)
	}
	if m.started_at != nil {
		fields = append(fields, toolexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, toolexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, toolexecution.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolexecution.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case toolexecution.FieldPlanDecisionID:
		return m.PlanDecisionID()
	case toolexecution.FieldSeq:
		return m.Seq()
	case toolexecution.FieldToolName:
		return m.ToolName()
	case toolexecution.FieldToolAction:
		return m.ToolAction()
	case toolexecution.FieldArguments:
		return m.Arguments()
	case toolexecution.FieldStatus:
		return m.Status()
	case toolexecution.FieldSuccess:
		return m.Success()
	case toolexecution.FieldAttemptNumber:
		return m.AttemptNumber()
	case toolexecution.FieldMaxRetries:
		return m.MaxRetries()
	case toolexecution.FieldResultSummary:
		return m.ResultSummary()
	case toolexecution.FieldResultJSON:
		return m.ResultJSON()
	case toolexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case toolexecution.FieldCreatedWidgetID:
		return m.CreatedWidgetID()
	case toolexecution.FieldCreatedStepID:
		return m.CreatedStepID()
	case toolexecution.FieldCreatedVisualizationIds:
		return m.CreatedVisualizationIds()
	case toolexecution.FieldStartedAt:
		return m.StartedAt()
	case toolexecution.FieldCompletedAt:
		return m.CompletedAt()
	case toolexecution.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolexecution.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case toolexecution.FieldPlanDecisionID:
		return m.OldPlanDecisionID(ctx)
	case toolexecution.FieldSeq:
		return m.OldSeq(ctx)
	case toolexecution.FieldToolName:
		return m.OldToolName(ctx)
	case toolexecution.FieldToolAction:
		return m.OldToolAction(ctx)
	case toolexecution.FieldArguments:
		return m.OldArguments(ctx)
	case toolexecution.FieldStatus:
		return m.OldStatus(ctx)
	case toolexecution.FieldSuccess:
		return m.OldSuccess(ctx)
	case toolexecution.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case toolexecution.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case toolexecution.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case toolexecution.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case toolexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolexecution.FieldCreatedWidgetID:
		return m.OldCreatedWidgetID(ctx)
	case toolexecution.FieldCreatedStepID:
		return m.OldCreatedStepID(ctx)
	case toolexecution.FieldCreatedVisualizationIds:
		return m.OldCreatedVisualizationIds(ctx)
	case toolexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case toolexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case toolexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown ToolExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolexecution.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case toolexecution.FieldPlanDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDecisionID(v)
		return nil
	case toolexecution.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case toolexecution.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolexecution.FieldToolAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolAction(v)
		return nil
	case toolexecution.FieldArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case toolexecution.FieldStatus:
		v, ok := value.(toolexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolexecution.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case toolexecution.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case toolexecution.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case toolexecution.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case toolexecution.FieldResultJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case toolexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolexecution.FieldCreatedWidgetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedWidgetID(v)
		return nil
	case toolexecution.FieldCreatedStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedStepID(v)
		return nil
	case toolexecution.FieldCreatedVisualizationIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedVisualizationIds(v)
		return nil
	case toolexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case toolexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case toolexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, toolexecution.FieldSeq)
	}
	if m.addattempt_number != nil {
		fields = append(fields, toolexecution.FieldAttemptNumber)
	}
	if m.addmax_retries != nil {
		fields = append(fields, toolexecution.FieldMaxRetries)
	}
	if m.addduration_ms != nil {
		fields = append(fields, toolexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolexecution.FieldSeq:
		return m.AddedSeq()
	case toolexecution.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case toolexecution.FieldMaxRetries:
		return m.AddedMaxRetries()
	case toolexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolexecution.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case toolexecution.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case toolexecution.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case toolexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolexecution.FieldPlanDecisionID) {
		fields = append(fields, toolexecution.FieldPlanDecisionID)
	}
	if m.FieldCleared(toolexecution.FieldToolAction) {
		fields = append(fields, toolexecution.FieldToolAction)
	}
	if m.FieldCleared(toolexecution.FieldResultSummary) {
		fields = append(fields, toolexecution.FieldResultSummary)
	}
	if m.FieldCleared(toolexecution.FieldResultJSON) {
		fields = append(fields, toolexecution.FieldResultJSON)
	}
	if m.FieldCleared(toolexecution.FieldErrorMessage) {
		fields = append(fields, toolexecution.FieldErrorMessage)
	}
	if m.FieldCleared(toolexecution.FieldCreatedWidgetID) {
		fields = append(fields, toolexecution.FieldCreatedWidgetID)
	}
	if m.FieldCleared(toolexecution.FieldCreatedStepID) {
		fields = append(fields, toolexecution.FieldCreatedStepID)
	}
	if m.FieldCleared(toolexecution.FieldCreatedVisualizationIds) {
		fields = append(fields, toolexecution.FieldCreatedVisualizationIds)
	}
	if m.FieldCleared(toolexecution.FieldCompletedAt) {
		fields = append(fields, toolexecution.FieldCompletedAt)
	}
	if m.FieldCleared(toolexecution.FieldDurationMs) {
		fields = append(fields, toolexecution.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolExecutionMutation) ClearField(name string) error {
	switch name {
	case toolexecution.FieldPlanDecisionID:
		m.ClearPlanDecisionID()
		return nil
	case toolexecution.FieldToolAction:
		m.ClearToolAction()
		return nil
	case toolexecution.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case toolexecution.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case toolexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case toolexecution.FieldCreatedWidgetID:
		m.ClearCreatedWidgetID()
		return nil
	case toolexecution.FieldCreatedStepID:
		m.ClearCreatedStepID()
		return nil
	case toolexecution.FieldCreatedVisualizationIds:
		m.ClearCreatedVisualizationIds()
		return nil
	case toolexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case toolexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolExecutionMutation) ResetField(name string) error {
	switch name {
	case toolexecution.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case toolexecution.FieldPlanDecisionID:
		m.ResetPlanDecisionID()
		return nil
	case toolexecution.FieldSeq:
		m.ResetSeq()
		return nil
	case toolexecution.FieldToolName:
		m.ResetToolName()
		return nil
	case toolexecution.FieldToolAction:
		m.ResetToolAction()
		return nil
	case toolexecution.FieldArguments:
		m.ResetArguments()
		return nil
	case toolexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case toolexecution.FieldSuccess:
		m.ResetSuccess()
		return nil
	case toolexecution.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case toolexecution.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case toolexecution.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case toolexecution.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case toolexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolexecution.FieldCreatedWidgetID:
		m.ResetCreatedWidgetID()
		return nil
	case toolexecution.FieldCreatedStepID:
		m.ResetCreatedStepID()
		return nil
	case toolexecution.FieldCreatedVisualizationIds:
		m.ResetCreatedVisualizationIds()
		return nil
	case toolexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case toolexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case toolexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent_execution != nil {
		edges = append(edges, toolexecution.EdgeAgentExecution)
	}
	if m.plan_decision != nil {
		edges = append(edges, toolexecution.EdgePlanDecision)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolexecution.EdgeAgentExecution:
		if id := m.agent_execution; id != nil {
			return []ent.Value{*id}
		}
	case toolexecution.EdgePlanDecision:
		if id := m.plan_decision; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent_execution {
		edges = append(edges, toolexecution.EdgeAgentExecution)
	}
	if m.clearedplan_decision {
		edges = append(edges, toolexecution.EdgePlanDecision)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case toolexecution.EdgeAgentExecution:
		return m.clearedagent_execution
	case toolexecution.EdgePlanDecision:
		return m.clearedplan_decision
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolExecutionMutation) ClearEdge(name string) error {
	switch name {
	case toolexecution.EdgeAgentExecution:
		m.ClearAgentExecution()
		return nil
	case toolexecution.EdgePlanDecision:
		m.ClearPlanDecision()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolExecutionMutation) ResetEdge(name string) error {
	switch name {
	case toolexecution.EdgeAgentExecution:
		m.ResetAgentExecution()
		return nil
	case toolexecution.EdgePlanDecision:
		m.ResetPlanDecision()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution edge %s", name)
}
