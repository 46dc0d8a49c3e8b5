// Package models holds request/response shapes shared by the service layer
// and the HTTP transport.
package models

import (
	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/registry"
)

// CreatePipelineRequest contains fields for creating a new pipeline.
type CreatePipelineRequest struct {
	Topic       string `json:"topic"`
	Description string `json:"description,omitempty"`
}

// PipelineFilters contains filtering options for listing pipelines.
type PipelineFilters struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// PipelineListResponse contains a paginated pipeline list, newest first.
type PipelineListResponse struct {
	Pipelines  []*ent.Pipeline `json:"pipelines"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// ReadyStage pairs a claimable stage with its pipeline.
type ReadyStage struct {
	Pipeline *ent.Pipeline `json:"pipeline"`
	Stage    *ent.Stage    `json:"stage"`
}

// ReadySetFilter narrows the ready set to specific stage names — a worker's
// capability advertisement. Empty means all stages.
type ReadySetFilter struct {
	StageNames []registry.StageName
}

// Match reports whether name passes the filter.
func (f ReadySetFilter) Match(name registry.StageName) bool {
	if len(f.StageNames) == 0 {
		return true
	}
	for _, n := range f.StageNames {
		if n == name {
			return true
		}
	}
	return false
}
