package models

import (
	"encoding/json"

	"github.com/crewcast/crewcast/ent"
)

// ClaimStageRequest identifies the claiming agent.
type ClaimStageRequest struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
}

// CompleteStageRequest carries the stage's handoff output. Output is stored
// verbatim; the orchestrator never parses it.
type CompleteStageRequest struct {
	Output    json.RawMessage `json:"output"`
	Artifacts []string        `json:"artifacts,omitempty"`
}

// FailStageRequest carries the handler-reported error text.
type FailStageRequest struct {
	Error string `json:"error"`
}

// StageTransitionResult is returned by complete/fail: the stage after the
// transition plus the pipeline it may have advanced or finished.
type StageTransitionResult struct {
	Stage    *ent.Stage    `json:"stage"`
	Pipeline *ent.Pipeline `json:"pipeline"`
}
