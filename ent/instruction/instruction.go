// Code generated by ent, DO NOT EDIT.

package instruction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the instruction type in the database.
	Label = "instruction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "instruction_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldLoadMode holds the string denoting the load_mode field in the database.
	FieldLoadMode = "load_mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the instruction in the database.
	Table = "instructions"
)

// Columns holds all SQL columns for instruction fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldText,
	FieldCategory,
	FieldLoadMode,
	FieldStatus,
	FieldSource,
	FieldAgentExecutionID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// LoadMode defines the type for the "load_mode" enum field.
type LoadMode string

// LoadModeIntelligent is the default value of the LoadMode enum.
const DefaultLoadMode = LoadModeIntelligent

// LoadMode values.
const (
	LoadModeAlways      LoadMode = "always"
	LoadModeIntelligent LoadMode = "intelligent"
)

func (lm LoadMode) String() string {
	return string(lm)
}

// LoadModeValidator is a validator for the "load_mode" field enum values. It is called by the builders before save.
func LoadModeValidator(lm LoadMode) error {
	switch lm {
	case LoadModeAlways, LoadModeIntelligent:
		return nil
	default:
		return fmt.Errorf("instruction: invalid enum value for load_mode field: %q", lm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("instruction: invalid enum value for status field: %q", s)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceUser is the default value of the Source enum.
const DefaultSource = SourceUser

// Source values.
const (
	SourceUser      Source = "user"
	SourceSuggested Source = "suggested"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceUser, SourceSuggested:
		return nil
	default:
		return fmt.Errorf("instruction: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Instruction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByLoadMode orders the results by the load_mode field.
func ByLoadMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
