// Package events broadcasts pipeline progress via PostgreSQL NOTIFY so that
// external dashboard collaborators can LISTEN for real-time updates without
// polling. All publishes are transient and best-effort: the orchestrator's
// state lives in the pipelines/stages/attributions tables, never here.
package events

// Event types carried in payload "type" fields.
const (
	// EventTypePipelineStatus fires on every pipeline lifecycle transition
	// (DRAFT→RUNNING, RUNNING→COMPLETE, RUNNING→FAILED) and on
	// current_stage advances.
	EventTypePipelineStatus = "pipeline.status"

	// EventTypeStageStatus fires on every stage lifecycle transition
	// (claim, start, complete, fail).
	EventTypeStageStatus = "stage.status"
)

// GlobalPipelinesChannel carries all pipeline-level status events.
// Pipeline list views subscribe here.
const GlobalPipelinesChannel = "pipelines"

// PipelineChannel returns the channel carrying events for one pipeline.
// pg_notify accepts arbitrary channel strings, so the raw id is safe.
func PipelineChannel(pipelineID string) string {
	return "pipeline:" + pipelineID
}
