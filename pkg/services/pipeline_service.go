package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/events"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	writeTimeout = 10 * time.Second
)

// StatusPublisher receives best-effort progress broadcasts.
// *events.Publisher satisfies it; nil disables publishing.
type StatusPublisher interface {
	PublishPipelineStatus(ctx context.Context, payload events.PipelineStatusPayload) error
	PublishStageStatus(ctx context.Context, payload events.StageStatusPayload) error
}

// PipelineService is the pipeline scheduler: it owns all Pipeline and Stage
// mutations and surfaces the ready set of claimable stages. Concurrency is
// resolved entirely through the store's conditional writes — the service
// keeps no mutable state of its own.
type PipelineService struct {
	store     store.Store
	publisher StatusPublisher
}

// NewPipelineService creates a PipelineService. publisher may be nil
// (progress broadcasting disabled).
func NewPipelineService(st store.Store, publisher StatusPublisher) *PipelineService {
	return &PipelineService{store: st, publisher: publisher}
}

// CreatePipeline creates a pipeline in DRAFT with seven PENDING stages.
func (s *PipelineService) CreatePipeline(httpCtx context.Context, req models.CreatePipelineRequest) (*ent.Pipeline, error) {
	if req.Topic == "" {
		return nil, NewValidationError("topic", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	p, err := s.store.CreatePipelineWithStages(ctx, req.Topic, req.Description)
	if err != nil {
		return nil, err
	}

	slog.Info("Pipeline created", "pipeline_id", p.ID, "topic", p.Topic)
	return p, nil
}

// StartPipeline transitions DRAFT → RUNNING, making the first stage claimable.
func (s *PipelineService) StartPipeline(httpCtx context.Context, pipelineID string) (*ent.Pipeline, error) {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	running := registry.PipelineRunning
	n, err := s.store.CompareAndUpdatePipeline(ctx, pipelineID, registry.PipelineDraft,
		store.PipelineMutation{Status: &running})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Distinguish "wrong status" from "no such pipeline".
		if _, err := s.store.FindPipeline(ctx, pipelineID, false); err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, fmt.Errorf("pipeline %s is not in DRAFT: %w", pipelineID, ErrInvalidState)
	}

	p, err := s.store.FindPipeline(ctx, pipelineID, true)
	if err != nil {
		return nil, err
	}

	slog.Info("Pipeline started", "pipeline_id", p.ID)
	s.publishPipelineStatus(ctx, p)
	return p, nil
}

// ReadySet returns, for every RUNNING pipeline, the earliest PENDING stage
// whose predecessor is satisfied. Results are ordered by stage order
// ascending, then pipeline creation time ascending, so workers pick up the
// earliest/oldest work first.
func (s *PipelineService) ReadySet(ctx context.Context, filter models.ReadySetFilter) ([]models.ReadyStage, error) {
	for _, name := range filter.StageNames {
		if !registry.Valid(name) {
			return nil, NewValidationError("stage_name", fmt.Sprintf("unknown stage %q", name))
		}
	}

	pipelines, err := s.store.ListRunningPipelinesWithStages(ctx)
	if err != nil {
		return nil, err
	}

	ready := make([]models.ReadyStage, 0, len(pipelines))
	for _, p := range pipelines {
		st := frontierStage(p.Edges.Stages)
		if st == nil || !filter.Match(st.Name) {
			continue
		}
		ready = append(ready, models.ReadyStage{Pipeline: p, Stage: st})
	}

	sort.SliceStable(ready, func(i, j int) bool {
		oi, oj := registry.Index(ready[i].Stage.Name), registry.Index(ready[j].Stage.Name)
		if oi != oj {
			return oi < oj
		}
		return ready[i].Pipeline.CreatedAt.Before(ready[j].Pipeline.CreatedAt)
	})
	return ready, nil
}

// frontierStage returns the single claimable stage of a pipeline, or nil.
// stages must be in registry order.
func frontierStage(stages []*ent.Stage) *ent.Stage {
	for i, st := range stages {
		if st.Status != registry.StagePending {
			continue
		}
		if i == 0 || stages[i-1].Status.Satisfied() {
			return st
		}
		return nil // earliest PENDING is blocked by its predecessor
	}
	return nil
}

// ClaimStage performs the exclusive PENDING → CLAIMED transition. The final
// conditional write arbitrates racing claims: exactly one caller wins, the
// rest get ErrPreconditionFailed and must re-read state.
func (s *PipelineService) ClaimStage(httpCtx context.Context, pipelineID string, stageName registry.StageName, agentID, agentName string) (*ent.Stage, error) {
	if !registry.Valid(stageName) {
		return nil, NewValidationError("stage_name", fmt.Sprintf("unknown stage %q", stageName))
	}
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	p, err := s.store.FindPipeline(ctx, pipelineID, false)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Status != registry.PipelineRunning {
		return nil, fmt.Errorf("pipeline %s is %s, not RUNNING: %w", pipelineID, p.Status, ErrPreconditionFailed)
	}

	st, err := s.store.FindStage(ctx, pipelineID, stageName)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if pred, ok := registry.Predecessor(stageName); ok {
		prev, err := s.store.FindStage(ctx, pipelineID, pred)
		if err != nil {
			return nil, err
		}
		if !prev.Status.Satisfied() {
			return nil, fmt.Errorf("predecessor %s is %s: %w", pred, prev.Status, ErrPreconditionFailed)
		}
	}

	now := time.Now()
	claimed := registry.StageClaimed
	n, err := s.store.CompareAndUpdateStage(ctx, st.ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{
			Status:    &claimed,
			AgentID:   &agentID,
			AgentName: &agentName,
			ClaimedAt: &now,
		})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Benign: another agent won, or the stage left PENDING meanwhile.
		return nil, fmt.Errorf("stage %s/%s is no longer PENDING: %w", pipelineID, stageName, ErrPreconditionFailed)
	}

	st, err = s.store.FindStageByID(ctx, st.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("Stage claimed",
		"pipeline_id", pipelineID, "stage", stageName, "agent_id", agentID)
	s.publishStageStatus(ctx, st)
	return st, nil
}

// ClaimStageByID resolves the stage id and delegates to ClaimStage.
func (s *PipelineService) ClaimStageByID(ctx context.Context, stageID, agentID, agentName string) (*ent.Stage, error) {
	st, err := s.store.FindStageByID(ctx, stageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.ClaimStage(ctx, st.PipelineID, st.Name, agentID, agentName)
}

// StartStage transitions CLAIMED → RUNNING, stamping started_at.
func (s *PipelineService) StartStage(httpCtx context.Context, stageID string) (*ent.Stage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	now := time.Now()
	running := registry.StageRunning
	n, err := s.store.CompareAndUpdateStage(ctx, stageID,
		[]registry.StageStatus{registry.StageClaimed},
		store.StageMutation{Status: &running, StartedAt: &now})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		st, err := s.store.FindStageByID(ctx, stageID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, fmt.Errorf("stage %s is %s, not CLAIMED: %w", stageID, st.Status, ErrInvalidState)
	}

	st, err := s.store.FindStageByID(ctx, stageID)
	if err != nil {
		return nil, err
	}
	s.publishStageStatus(ctx, st)
	return st, nil
}

// CompleteStage transitions {CLAIMED, RUNNING} → COMPLETE inside one
// transaction that also appends the attribution and advances (or finishes)
// the pipeline. A pipeline that has meanwhile FAILED keeps its status: the
// pipeline update is conditional on RUNNING.
func (s *PipelineService) CompleteStage(httpCtx context.Context, stageID string, output json.RawMessage, artifacts []string) (*models.StageTransitionResult, error) {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	var pipelineID string
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		st, err := tx.FindStageByID(ctx, stageID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		pipelineID = st.PipelineID

		now := time.Now()
		complete := registry.StageComplete
		mut := store.StageMutation{Status: &complete, CompletedAt: &now}
		if output != nil {
			mut.Output = output
		}
		if artifacts != nil {
			mut.Artifacts = artifacts
		}

		n, err := tx.CompareAndUpdateStage(ctx, st.ID,
			[]registry.StageStatus{registry.StageClaimed, registry.StageRunning}, mut)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("stage %s is %s, cannot complete: %w", stageID, st.Status, ErrInvalidState)
		}

		agentID, agentName := "", ""
		if st.AgentID != nil {
			agentID = *st.AgentID
		}
		if st.AgentName != nil {
			agentName = *st.AgentName
		}
		if _, err := tx.AppendAttribution(ctx, store.AttributionRecord{
			PipelineID: st.PipelineID,
			StageID:    st.ID,
			StageName:  st.Name,
			AgentID:    agentID,
			AgentName:  agentName,
			Percentage: registry.Weight(st.Name),
		}); err != nil {
			return err
		}

		// Advance or finish the pipeline — but only while it is RUNNING.
		var mutP store.PipelineMutation
		if next, ok := registry.Next(st.Name); ok {
			mutP.CurrentStage = &next
		} else {
			complete := registry.PipelineComplete
			mutP.Status = &complete
		}
		if _, err := tx.CompareAndUpdatePipeline(ctx, st.PipelineID, registry.PipelineRunning, mutP); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.finishTransition(ctx, stageID, pipelineID, "Stage completed")
}

// FailStage transitions {CLAIMED, RUNNING} → FAILED and fails the pipeline.
// Attributions already recorded for earlier stages are preserved.
func (s *PipelineService) FailStage(httpCtx context.Context, stageID, errText string) (*models.StageTransitionResult, error) {
	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	var pipelineID string
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		st, err := tx.FindStageByID(ctx, stageID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		pipelineID = st.PipelineID

		now := time.Now()
		failed := registry.StageFailed
		n, err := tx.CompareAndUpdateStage(ctx, st.ID,
			[]registry.StageStatus{registry.StageClaimed, registry.StageRunning},
			store.StageMutation{Status: &failed, ErrorMessage: &errText, CompletedAt: &now})
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("stage %s is %s, cannot fail: %w", stageID, st.Status, ErrInvalidState)
		}

		pipelineFailed := registry.PipelineFailed
		if _, err := tx.CompareAndUpdatePipeline(ctx, st.PipelineID, registry.PipelineRunning,
			store.PipelineMutation{Status: &pipelineFailed}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Warn("Stage failed", "stage_id", stageID, "pipeline_id", pipelineID, "error", errText)
	return s.finishTransition(ctx, stageID, pipelineID, "")
}

// finishTransition reloads the stage and pipeline after a terminal stage
// transition and publishes progress events.
func (s *PipelineService) finishTransition(ctx context.Context, stageID, pipelineID, logMsg string) (*models.StageTransitionResult, error) {
	st, err := s.store.FindStageByID(ctx, stageID)
	if err != nil {
		return nil, err
	}
	p, err := s.store.FindPipeline(ctx, pipelineID, true)
	if err != nil {
		return nil, err
	}

	if logMsg != "" {
		slog.Info(logMsg,
			"pipeline_id", p.ID, "stage", st.Name, "pipeline_status", p.Status)
	}
	s.publishStageStatus(ctx, st)
	s.publishPipelineStatus(ctx, p)
	return &models.StageTransitionResult{Stage: st, Pipeline: p}, nil
}

// GetPipeline returns a pipeline with its stages in execution order.
func (s *PipelineService) GetPipeline(ctx context.Context, pipelineID string) (*ent.Pipeline, error) {
	p, err := s.store.FindPipeline(ctx, pipelineID, true)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListPipelines returns pipelines newest-first with pagination.
func (s *PipelineService) ListPipelines(ctx context.Context, f models.PipelineFilters) (*models.PipelineListResponse, error) {
	filters := store.PipelineFilters{Offset: f.Offset}

	if f.Status != "" {
		status := registry.PipelineStatus(f.Status)
		valid := false
		for _, v := range status.Values() {
			if v == f.Status {
				valid = true
			}
		}
		if !valid {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", f.Status))
		}
		filters.Status = &status
	}

	filters.Limit = f.Limit
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}

	pipelines, total, err := s.store.ListPipelines(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &models.PipelineListResponse{
		Pipelines:  pipelines,
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}, nil
}

// publishPipelineStatus broadcasts the pipeline's current status.
// Best-effort: failures are logged, never propagated.
func (s *PipelineService) publishPipelineStatus(ctx context.Context, p *ent.Pipeline) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishPipelineStatus(ctx, events.PipelineStatusPayload{
		PipelineID:   p.ID,
		Status:       p.Status,
		CurrentStage: p.CurrentStage,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish pipeline status", "pipeline_id", p.ID, "error", err)
	}
}

func (s *PipelineService) publishStageStatus(ctx context.Context, st *ent.Stage) {
	if s.publisher == nil {
		return
	}
	payload := events.StageStatusPayload{
		PipelineID: st.PipelineID,
		StageID:    st.ID,
		StageName:  st.Name,
		Status:     st.Status,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	}
	if st.AgentID != nil {
		payload.AgentID = *st.AgentID
	}
	if st.AgentName != nil {
		payload.AgentName = *st.AgentName
	}
	if st.ErrorMessage != nil {
		payload.Error = *st.ErrorMessage
	}
	if err := s.publisher.PublishStageStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish stage status",
			"pipeline_id", st.PipelineID, "stage", st.Name, "error", err)
	}
}
