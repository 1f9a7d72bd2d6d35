// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quarryhq/quarry/ent/agentexecution"
	"github.com/quarryhq/quarry/ent/completion"
	"github.com/quarryhq/quarry/ent/completionblock"
	"github.com/quarryhq/quarry/ent/contextsnapshot"
	"github.com/quarryhq/quarry/ent/event"
	"github.com/quarryhq/quarry/ent/executionscore"
	"github.com/quarryhq/quarry/ent/instruction"
	"github.com/quarryhq/quarry/ent/plandecision"
	"github.com/quarryhq/quarry/ent/report"
	"github.com/quarryhq/quarry/ent/schema"
	"github.com/quarryhq/quarry/ent/tableusage"
	"github.com/quarryhq/quarry/ent/toolexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescLatestSeq is the schema descriptor for latest_seq field.
	agentexecutionDescLatestSeq := agentexecutionFields[6].Descriptor()
	// agentexecution.DefaultLatestSeq holds the default value on creation for the latest_seq field.
	agentexecution.DefaultLatestSeq = agentexecutionDescLatestSeq.Default.(int)
	// agentexecutionDescStartedAt is the schema descriptor for started_at field.
	agentexecutionDescStartedAt := agentexecutionFields[8].Descriptor()
	// agentexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	agentexecution.DefaultStartedAt = agentexecutionDescStartedAt.Default.(func() time.Time)
	completionFields := schema.Completion{}.Fields()
	_ = completionFields
	// completionDescCreatedAt is the schema descriptor for created_at field.
	completionDescCreatedAt := completionFields[13].Descriptor()
	// completion.DefaultCreatedAt holds the default value on creation for the created_at field.
	completion.DefaultCreatedAt = completionDescCreatedAt.Default.(func() time.Time)
	// completionDescUpdatedAt is the schema descriptor for updated_at field.
	completionDescUpdatedAt := completionFields[14].Descriptor()
	// completion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	completion.DefaultUpdatedAt = completionDescUpdatedAt.Default.(func() time.Time)
	// completion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	completion.UpdateDefaultUpdatedAt = completionDescUpdatedAt.UpdateDefault.(func() time.Time)
	completionblockFields := schema.CompletionBlock{}.Fields()
	_ = completionblockFields
	// completionblockDescIcon is the schema descriptor for icon field.
	completionblockDescIcon := completionblockFields[10].Descriptor()
	// completionblock.DefaultIcon holds the default value on creation for the icon field.
	completionblock.DefaultIcon = completionblockDescIcon.Default.(string)
	// completionblockDescStartedAt is the schema descriptor for started_at field.
	completionblockDescStartedAt := completionblockFields[13].Descriptor()
	// completionblock.DefaultStartedAt holds the default value on creation for the started_at field.
	completionblock.DefaultStartedAt = completionblockDescStartedAt.Default.(func() time.Time)
	// completionblockDescUpdatedAt is the schema descriptor for updated_at field.
	completionblockDescUpdatedAt := completionblockFields[15].Descriptor()
	// completionblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	completionblock.DefaultUpdatedAt = completionblockDescUpdatedAt.Default.(func() time.Time)
	// completionblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	completionblock.UpdateDefaultUpdatedAt = completionblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	contextsnapshotFields := schema.ContextSnapshot{}.Fields()
	_ = contextsnapshotFields
	// contextsnapshotDescLoopIndex is the schema descriptor for loop_index field.
	contextsnapshotDescLoopIndex := contextsnapshotFields[3].Descriptor()
	// contextsnapshot.DefaultLoopIndex holds the default value on creation for the loop_index field.
	contextsnapshot.DefaultLoopIndex = contextsnapshotDescLoopIndex.Default.(int)
	// contextsnapshotDescCreatedAt is the schema descriptor for created_at field.
	contextsnapshotDescCreatedAt := contextsnapshotFields[7].Descriptor()
	// contextsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextsnapshot.DefaultCreatedAt = contextsnapshotDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionscoreFields := schema.ExecutionScore{}.Fields()
	_ = executionscoreFields
	// executionscoreDescCreatedAt is the schema descriptor for created_at field.
	executionscoreDescCreatedAt := executionscoreFields[6].Descriptor()
	// executionscore.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionscore.DefaultCreatedAt = executionscoreDescCreatedAt.Default.(func() time.Time)
	instructionFields := schema.Instruction{}.Fields()
	_ = instructionFields
	// instructionDescCreatedAt is the schema descriptor for created_at field.
	instructionDescCreatedAt := instructionFields[8].Descriptor()
	// instruction.DefaultCreatedAt holds the default value on creation for the created_at field.
	instruction.DefaultCreatedAt = instructionDescCreatedAt.Default.(func() time.Time)
	// instructionDescUpdatedAt is the schema descriptor for updated_at field.
	instructionDescUpdatedAt := instructionFields[9].Descriptor()
	// instruction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	instruction.DefaultUpdatedAt = instructionDescUpdatedAt.Default.(func() time.Time)
	// instruction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	instruction.UpdateDefaultUpdatedAt = instructionDescUpdatedAt.UpdateDefault.(func() time.Time)
	plandecisionFields := schema.PlanDecision{}.Fields()
	_ = plandecisionFields
	// plandecisionDescAnalysisComplete is the schema descriptor for analysis_complete field.
	plandecisionDescAnalysisComplete := plandecisionFields[5].Descriptor()
	// plandecision.DefaultAnalysisComplete holds the default value on creation for the analysis_complete field.
	plandecision.DefaultAnalysisComplete = plandecisionDescAnalysisComplete.Default.(bool)
	// plandecisionDescCreatedAt is the schema descriptor for created_at field.
	plandecisionDescCreatedAt := plandecisionFields[12].Descriptor()
	// plandecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	plandecision.DefaultCreatedAt = plandecisionDescCreatedAt.Default.(func() time.Time)
	// plandecisionDescUpdatedAt is the schema descriptor for updated_at field.
	plandecisionDescUpdatedAt := plandecisionFields[13].Descriptor()
	// plandecision.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plandecision.DefaultUpdatedAt = plandecisionDescUpdatedAt.Default.(func() time.Time)
	// plandecision.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plandecision.UpdateDefaultUpdatedAt = plandecisionDescUpdatedAt.UpdateDefault.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[4].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[5].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	tableusageFields := schema.TableUsage{}.Fields()
	_ = tableusageFields
	// tableusageDescFeedback is the schema descriptor for feedback field.
	tableusageDescFeedback := tableusageFields[5].Descriptor()
	// tableusage.DefaultFeedback holds the default value on creation for the feedback field.
	tableusage.DefaultFeedback = tableusageDescFeedback.Default.(int)
	// tableusageDescCreatedAt is the schema descriptor for created_at field.
	tableusageDescCreatedAt := tableusageFields[8].Descriptor()
	// tableusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tableusage.DefaultCreatedAt = tableusageDescCreatedAt.Default.(func() time.Time)
	toolexecutionFields := schema.ToolExecution{}.Fields()
	_ = toolexecutionFields
	// toolexecutionDescSuccess is the schema descriptor for success field.
	toolexecutionDescSuccess := toolexecutionFields[8].Descriptor()
	// toolexecution.DefaultSuccess holds the default value on creation for the success field.
	toolexecution.DefaultSuccess = toolexecutionDescSuccess.Default.(bool)
	// toolexecutionDescAttemptNumber is the schema descriptor for attempt_number field.
	toolexecutionDescAttemptNumber := toolexecutionFields[9].Descriptor()
	// toolexecution.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	toolexecution.DefaultAttemptNumber = toolexecutionDescAttemptNumber.Default.(int)
	// toolexecutionDescMaxRetries is the schema descriptor for max_retries field.
	toolexecutionDescMaxRetries := toolexecutionFields[10].Descriptor()
	// toolexecution.DefaultMaxRetries holds the default value on creation for the max_retries field.
	toolexecution.DefaultMaxRetries = toolexecutionDescMaxRetries.Default.(int)
	// toolexecutionDescStartedAt is the schema descriptor for started_at field.
	toolexecutionDescStartedAt := toolexecutionFields[17].Descriptor()
	// toolexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	toolexecution.DefaultStartedAt = toolexecutionDescStartedAt.Default.(func() time.Time)
}
