package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/ent/stage"
	"github.com/crewcast/crewcast/pkg/registry"
)

// EntStore implements Store on top of the generated Ent client.
// Conditional writes rely on UPDATE ... WHERE status = expected affected-row
// counts; PostgreSQL's row locking makes at most one racer win.
type EntStore struct {
	// client is nil for the transactional view handed to WithTx callbacks.
	client *ent.Client

	pipeline    *ent.PipelineClient
	stage       *ent.StageClient
	attribution *ent.AttributionClient
}

var _ Store = (*EntStore)(nil)

// NewEntStore wraps an Ent client in the store port.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{
		client:      client,
		pipeline:    client.Pipeline,
		stage:       client.Stage,
		attribution: client.Attribution,
	}
}

// WithTx runs fn inside a transaction. Nested calls join the open transaction.
func (s *EntStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.client == nil {
		return fn(s)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	txStore := &EntStore{
		pipeline:    tx.Pipeline,
		stage:       tx.Stage,
		attribution: tx.Attribution,
	}
	if err := fn(txStore); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreatePipelineWithStages inserts the pipeline and its seven PENDING stages
// in one transaction.
func (s *EntStore) CreatePipelineWithStages(ctx context.Context, topic, description string) (*ent.Pipeline, error) {
	var created *ent.Pipeline

	err := s.WithTx(ctx, func(txStore Store) error {
		tx := txStore.(*EntStore)

		builder := tx.pipeline.Create().
			SetID(uuid.New().String()).
			SetTopic(topic).
			SetStatus(registry.PipelineDraft).
			SetCurrentStage(registry.First())
		if description != "" {
			builder.SetDescription(description)
		}

		p, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create pipeline: %w", err)
		}

		stageBuilders := make([]*ent.StageCreate, len(registry.Order))
		for i, name := range registry.Order {
			stageBuilders[i] = tx.stage.Create().
				SetID(uuid.New().String()).
				SetPipelineID(p.ID).
				SetName(name).
				SetStatus(registry.StagePending)
		}
		stages, err := tx.stage.CreateBulk(stageBuilders...).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create stages: %w", err)
		}

		p.Edges.Stages = stages
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindPipeline fetches a pipeline, optionally with its stages in registry order.
func (s *EntStore) FindPipeline(ctx context.Context, id string, withStages bool) (*ent.Pipeline, error) {
	query := s.pipeline.Query().Where(pipeline.IDEQ(id))
	if withStages {
		query = query.WithStages()
	}

	p, err := query.Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	if withStages {
		OrderStages(p.Edges.Stages)
	}
	return p, nil
}

// FindStage fetches a stage by its composite identity.
func (s *EntStore) FindStage(ctx context.Context, pipelineID string, name registry.StageName) (*ent.Stage, error) {
	st, err := s.stage.Query().
		Where(stage.PipelineIDEQ(pipelineID), stage.NameEQ(name)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return st, nil
}

// FindStageByID fetches a stage by its surrogate id.
func (s *EntStore) FindStageByID(ctx context.Context, stageID string) (*ent.Stage, error) {
	st, err := s.stage.Query().Where(stage.IDEQ(stageID)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return st, nil
}

// ListRunningPipelinesWithStages returns the RUNNING pipelines oldest-first
// with stages loaded.
func (s *EntStore) ListRunningPipelinesWithStages(ctx context.Context) ([]*ent.Pipeline, error) {
	pipelines, err := s.pipeline.Query().
		Where(pipeline.StatusEQ(registry.PipelineRunning)).
		WithStages().
		Order(ent.Asc(pipeline.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running pipelines: %w", err)
	}
	for _, p := range pipelines {
		OrderStages(p.Edges.Stages)
	}
	return pipelines, nil
}

// ListPipelines returns pipelines newest-first with the unpaginated total.
func (s *EntStore) ListPipelines(ctx context.Context, f PipelineFilters) ([]*ent.Pipeline, int, error) {
	query := s.pipeline.Query()
	if f.Status != nil {
		query = query.Where(pipeline.StatusEQ(*f.Status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pipelines: %w", err)
	}

	query = query.Order(ent.Desc(pipeline.FieldCreatedAt))
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	pipelines, err := query.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pipelines: %w", err)
	}
	return pipelines, total, nil
}

// CompareAndUpdateStage applies mut iff the stage's status is one of expected.
func (s *EntStore) CompareAndUpdateStage(ctx context.Context, stageID string, expected []registry.StageStatus, mut StageMutation) (int, error) {
	update := s.stage.Update().
		Where(stage.IDEQ(stageID), stage.StatusIn(expected...))

	if mut.Status != nil {
		update = update.SetStatus(*mut.Status)
	}
	if mut.AgentID != nil {
		update = update.SetAgentID(*mut.AgentID)
	}
	if mut.AgentName != nil {
		update = update.SetAgentName(*mut.AgentName)
	}
	if mut.Output != nil {
		update = update.SetOutput(mut.Output)
	}
	if mut.Artifacts != nil {
		update = update.SetArtifacts(mut.Artifacts)
	}
	if mut.ErrorMessage != nil {
		update = update.SetErrorMessage(*mut.ErrorMessage)
	}
	if mut.ClaimedAt != nil {
		update = update.SetClaimedAt(*mut.ClaimedAt)
	}
	if mut.StartedAt != nil {
		update = update.SetStartedAt(*mut.StartedAt)
	}
	if mut.CompletedAt != nil {
		update = update.SetCompletedAt(*mut.CompletedAt)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update stage: %w", err)
	}
	return n, nil
}

// CompareAndUpdatePipeline applies mut iff the pipeline's status is expected.
func (s *EntStore) CompareAndUpdatePipeline(ctx context.Context, pipelineID string, expected registry.PipelineStatus, mut PipelineMutation) (int, error) {
	update := s.pipeline.Update().
		Where(pipeline.IDEQ(pipelineID), pipeline.StatusEQ(expected)).
		SetUpdatedAt(time.Now())
	applyPipelineMutation(update, mut)

	n, err := update.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update pipeline: %w", err)
	}
	return n, nil
}

// UpdatePipeline applies mut unconditionally.
func (s *EntStore) UpdatePipeline(ctx context.Context, pipelineID string, mut PipelineMutation) error {
	update := s.pipeline.Update().
		Where(pipeline.IDEQ(pipelineID)).
		SetUpdatedAt(time.Now())
	applyPipelineMutation(update, mut)

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update pipeline: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to update pipeline: %w", &ent.NotFoundError{})
	}
	return nil
}

func applyPipelineMutation(update *ent.PipelineUpdate, mut PipelineMutation) {
	if mut.Status != nil {
		update.SetStatus(*mut.Status)
	}
	if mut.CurrentStage != nil {
		update.SetCurrentStage(*mut.CurrentStage)
	}
}

// AppendAttribution inserts an attribution row. Duplicate (pipeline_id,
// stage_name) pairs surface as a constraint error.
func (s *EntStore) AppendAttribution(ctx context.Context, rec AttributionRecord) (*ent.Attribution, error) {
	a, err := s.attribution.Create().
		SetID(uuid.New().String()).
		SetPipelineID(rec.PipelineID).
		SetStageID(rec.StageID).
		SetStageName(rec.StageName).
		SetAgentID(rec.AgentID).
		SetAgentName(rec.AgentName).
		SetPercentage(rec.Percentage).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append attribution: %w", err)
	}
	return a, nil
}

// ListAttributions returns a pipeline's attributions in registry order.
func (s *EntStore) ListAttributions(ctx context.Context, pipelineID string) ([]*ent.Attribution, error) {
	attrs, err := s.attribution.Query().
		Where(attribution.PipelineIDEQ(pipelineID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attributions: %w", err)
	}
	for i := 1; i < len(attrs); i++ {
		for j := i; j > 0 && registry.Index(attrs[j-1].StageName) > registry.Index(attrs[j].StageName); j-- {
			attrs[j-1], attrs[j] = attrs[j], attrs[j-1]
		}
	}
	return attrs, nil
}

// ListStuckStages returns claimed/running stages whose ownership timestamps
// are older than the given cutoffs.
func (s *EntStore) ListStuckStages(ctx context.Context, claimedBefore, startedBefore time.Time) ([]*ent.Stage, error) {
	stages, err := s.stage.Query().
		Where(
			stage.Or(
				stage.And(
					stage.StatusEQ(registry.StageClaimed),
					stage.ClaimedAtNotNil(),
					stage.ClaimedAtLT(claimedBefore),
				),
				stage.And(
					stage.StatusEQ(registry.StageRunning),
					stage.StartedAtNotNil(),
					stage.StartedAtLT(startedBefore),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck stages: %w", err)
	}
	return stages, nil
}

// ListStagesByAgentPrefix returns active stages owned by agents whose id
// starts with prefix.
func (s *EntStore) ListStagesByAgentPrefix(ctx context.Context, prefix string) ([]*ent.Stage, error) {
	stages, err := s.stage.Query().
		Where(
			stage.StatusIn(registry.StageClaimed, registry.StageRunning),
			stage.AgentIDHasPrefix(prefix),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages by agent prefix: %w", err)
	}
	return stages, nil
}
