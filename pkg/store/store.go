// Package store defines the persistence port the scheduler and attribution
// engine depend on, plus its Ent/PostgreSQL implementation. All status
// transitions go through CompareAndUpdateStage / CompareAndUpdatePipeline so
// that concurrent writers resolve through conditional writes, never
// in-process locks.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/registry"
)

// StageMutation is the set of fields a conditional stage update may write.
// Nil pointers leave the column untouched.
type StageMutation struct {
	Status       *registry.StageStatus
	AgentID      *string
	AgentName    *string
	Output       json.RawMessage
	Artifacts    []string
	ErrorMessage *string
	ClaimedAt    *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// PipelineMutation is the set of fields a pipeline update may write.
type PipelineMutation struct {
	Status       *registry.PipelineStatus
	CurrentStage *registry.StageName
}

// AttributionRecord carries the fields of a new attribution row.
type AttributionRecord struct {
	PipelineID string
	StageID    string
	StageName  registry.StageName
	AgentID    string
	AgentName  string
	Percentage int
}

// PipelineFilters narrows ListPipelines.
type PipelineFilters struct {
	Status *registry.PipelineStatus
	Limit  int
	Offset int
}

// Store is the persistence port. Implementations must make
// CompareAndUpdateStage atomic with respect to concurrent callers, and WithTx
// must provide all-or-nothing semantics for the composite operations inside
// complete/fail transitions.
type Store interface {
	// WithTx runs fn against a transactional view of the store. A nested
	// call inside an open transaction joins it rather than opening a new one.
	WithTx(ctx context.Context, fn func(Store) error) error

	// CreatePipelineWithStages atomically inserts a pipeline in DRAFT plus one
	// PENDING stage per registry entry. description may be empty.
	CreatePipelineWithStages(ctx context.Context, topic, description string) (*ent.Pipeline, error)

	FindPipeline(ctx context.Context, id string, withStages bool) (*ent.Pipeline, error)
	FindStage(ctx context.Context, pipelineID string, name registry.StageName) (*ent.Stage, error)
	FindStageByID(ctx context.Context, stageID string) (*ent.Stage, error)

	// ListRunningPipelinesWithStages returns RUNNING pipelines ordered by
	// creation time ascending, each with its stages loaded in registry order.
	ListRunningPipelinesWithStages(ctx context.Context) ([]*ent.Pipeline, error)

	// ListPipelines returns pipelines newest-first plus the unpaginated total.
	ListPipelines(ctx context.Context, f PipelineFilters) ([]*ent.Pipeline, int, error)

	// CompareAndUpdateStage applies mut to the stage only if its current
	// status is one of expected. Returns the number of rows written: 0 means
	// the precondition did not hold (or the stage does not exist).
	CompareAndUpdateStage(ctx context.Context, stageID string, expected []registry.StageStatus, mut StageMutation) (int, error)

	// CompareAndUpdatePipeline is the pipeline-level conditional write.
	CompareAndUpdatePipeline(ctx context.Context, pipelineID string, expected registry.PipelineStatus, mut PipelineMutation) (int, error)

	// UpdatePipeline applies mut unconditionally.
	UpdatePipeline(ctx context.Context, pipelineID string, mut PipelineMutation) error

	// AppendAttribution inserts an attribution row. The unique constraint on
	// (pipeline_id, stage_name) makes duplicates surface as a constraint
	// error, which callers detect with ent.IsConstraintError.
	AppendAttribution(ctx context.Context, rec AttributionRecord) (*ent.Attribution, error)

	// ListAttributions returns a pipeline's attributions in registry order.
	ListAttributions(ctx context.Context, pipelineID string) ([]*ent.Attribution, error)

	// ListStuckStages returns CLAIMED stages claimed before claimedBefore and
	// RUNNING stages started before startedBefore — candidates for the reaper.
	ListStuckStages(ctx context.Context, claimedBefore, startedBefore time.Time) ([]*ent.Stage, error)

	// ListStagesByAgentPrefix returns CLAIMED/RUNNING stages whose agent_id
	// starts with prefix. Used for startup orphan cleanup of a pod's workers.
	ListStagesByAgentPrefix(ctx context.Context, prefix string) ([]*ent.Stage, error)
}

// OrderStages sorts stages in place by registry execution order.
func OrderStages(stages []*ent.Stage) {
	for i := 1; i < len(stages); i++ {
		for j := i; j > 0 && registry.Index(stages[j-1].Name) > registry.Index(stages[j].Name); j-- {
			stages[j-1], stages[j] = stages[j], stages[j-1]
		}
	}
}
