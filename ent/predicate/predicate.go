// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// Completion is the predicate function for completion builders.
type Completion func(*sql.Selector)

// CompletionBlock is the predicate function for completionblock builders.
type CompletionBlock func(*sql.Selector)

// ContextSnapshot is the predicate function for contextsnapshot builders.
type ContextSnapshot func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutionScore is the predicate function for executionscore builders.
type ExecutionScore func(*sql.Selector)

// Instruction is the predicate function for instruction builders.
type Instruction func(*sql.Selector)

// PlanDecision is the predicate function for plandecision builders.
type PlanDecision func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// TableUsage is the predicate function for tableusage builders.
type TableUsage func(*sql.Selector)

// ToolExecution is the predicate function for toolexecution builders.
type ToolExecution func(*sql.Selector)
