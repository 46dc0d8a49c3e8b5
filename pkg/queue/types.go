// Package queue provides the worker pool that polls the ready set, claims
// stages, and drives handlers through their lifecycle. Ownership is decided
// by the scheduler's conditional writes, so any number of pods can run the
// same pool against one database.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
)

// ErrNoStagesAvailable indicates the ready set had no claimable stage for
// this worker's capabilities.
var ErrNoStagesAvailable = errors.New("no stages available")

// StageScheduler is the slice of the pipeline service the pool depends on.
type StageScheduler interface {
	ReadySet(ctx context.Context, filter models.ReadySetFilter) ([]models.ReadyStage, error)
	ClaimStage(ctx context.Context, pipelineID string, stageName registry.StageName, agentID, agentName string) (*ent.Stage, error)
	StartStage(ctx context.Context, stageID string) (*ent.Stage, error)
	CompleteStage(ctx context.Context, stageID string, output json.RawMessage, artifacts []string) (*models.StageTransitionResult, error)
	FailStage(ctx context.Context, stageID, errText string) (*models.StageTransitionResult, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	QueueDepth     int            `json:"queue_depth"`
	QueueDepthErr  string         `json:"queue_depth_error,omitempty"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastReaperScan time.Time      `json:"last_reaper_scan"`
	StagesReaped   int            `json:"stages_reaped"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentStageID  string    `json:"current_stage_id,omitempty"`
	StagesProcessed int       `json:"stages_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
