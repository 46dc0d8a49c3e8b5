package events

import "github.com/crewcast/crewcast/pkg/registry"

// PipelineStatusPayload is the payload for pipeline.status events.
type PipelineStatusPayload struct {
	Type         string                  `json:"type"` // always EventTypePipelineStatus
	PipelineID   string                  `json:"pipeline_id"`
	Status       registry.PipelineStatus `json:"status"`
	CurrentStage registry.StageName      `json:"current_stage"`
	Timestamp    string                  `json:"timestamp"` // RFC3339Nano
}

// StageStatusPayload is the payload for stage.status events.
type StageStatusPayload struct {
	Type       string               `json:"type"` // always EventTypeStageStatus
	PipelineID string               `json:"pipeline_id"`
	StageID    string               `json:"stage_id"`
	StageName  registry.StageName   `json:"stage_name"`
	Status     registry.StageStatus `json:"status"`
	AgentID    string               `json:"agent_id,omitempty"`
	AgentName  string               `json:"agent_name,omitempty"`
	Error      string               `json:"error,omitempty"`
	Timestamp  string               `json:"timestamp"` // RFC3339Nano
}
