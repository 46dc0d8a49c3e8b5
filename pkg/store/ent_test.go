package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/store"
	testdb "github.com/crewcast/crewcast/test/database"
)

func setupStore(t *testing.T) store.Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return store.NewEntStore(client.Client)
}

func TestCreatePipelineWithStages(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "topic", "")
	require.NoError(t, err)
	assert.Equal(t, registry.PipelineDraft, p.Status)
	assert.Nil(t, p.Description)
	require.Len(t, p.Edges.Stages, len(registry.Order))

	// Stages come back in execution order with PENDING status.
	got, err := st.FindPipeline(ctx, p.ID, true)
	require.NoError(t, err)
	for i, s := range got.Edges.Stages {
		assert.Equal(t, registry.Order[i], s.Name)
		assert.Equal(t, registry.StagePending, s.Status)
	}
}

func TestCompareAndUpdateStage_Precondition(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "cas", "")
	require.NoError(t, err)
	research := p.Edges.Stages[0]

	claimed := registry.StageClaimed
	agent := "A1"
	now := time.Now()
	n, err := st.CompareAndUpdateStage(ctx, research.ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed, AgentID: &agent, ClaimedAt: &now})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Same expectation no longer holds: zero rows, no error.
	n, err = st.CompareAndUpdateStage(ctx, research.ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Unknown stage id also yields zero rows, not an error.
	n, err = st.CompareAndUpdateStage(ctx, "no-such-stage",
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCompareAndUpdatePipeline(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "cas-pipeline", "")
	require.NoError(t, err)

	running := registry.PipelineRunning
	n, err := st.CompareAndUpdatePipeline(ctx, p.ID, registry.PipelineDraft,
		store.PipelineMutation{Status: &running})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = st.CompareAndUpdatePipeline(ctx, p.ID, registry.PipelineDraft,
		store.PipelineMutation{Status: &running})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAppendAttribution_DuplicateIsConstraintError(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "attr", "")
	require.NoError(t, err)
	research := p.Edges.Stages[0]

	rec := store.AttributionRecord{
		PipelineID: p.ID,
		StageID:    research.ID,
		StageName:  registry.StageResearch,
		AgentID:    "A1",
		AgentName:  "Agent One",
		Percentage: registry.Weight(registry.StageResearch),
	}
	_, err = st.AppendAttribution(ctx, rec)
	require.NoError(t, err)

	// Second insert for the same (pipeline, stage name) violates the unique
	// constraint even with a different agent.
	rec.AgentID = "A2"
	_, err = st.AppendAttribution(ctx, rec)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	attrs, err := st.ListAttributions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, "A1", attrs[0].AgentID)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "rollback", "")
	require.NoError(t, err)
	research := p.Edges.Stages[0]

	boom := errors.New("boom")
	err = st.WithTx(ctx, func(tx store.Store) error {
		claimed := registry.StageClaimed
		n, err := tx.CompareAndUpdateStage(ctx, research.ID,
			[]registry.StageStatus{registry.StagePending},
			store.StageMutation{Status: &claimed})
		require.NoError(t, err)
		require.Equal(t, 1, n)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The stage update did not survive the rollback.
	got, err := st.FindStageByID(ctx, research.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.StagePending, got.Status)
}

func TestWithTx_NestedCallJoins(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "nested", "")
	require.NoError(t, err)
	research := p.Edges.Stages[0]

	err = st.WithTx(ctx, func(tx store.Store) error {
		return tx.WithTx(ctx, func(inner store.Store) error {
			claimed := registry.StageClaimed
			_, err := inner.CompareAndUpdateStage(ctx, research.ID,
				[]registry.StageStatus{registry.StagePending},
				store.StageMutation{Status: &claimed})
			return err
		})
	})
	require.NoError(t, err)

	got, err := st.FindStageByID(ctx, research.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.StageClaimed, got.Status)
}

func TestListStuckStages(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p, err := st.CreatePipelineWithStages(ctx, "stuck", "")
	require.NoError(t, err)
	research := p.Edges.Stages[0]
	script := p.Edges.Stages[1]

	agent := "pod-x-worker-0"
	old := time.Now().Add(-1 * time.Hour)
	fresh := time.Now()

	// RESEARCH: claimed an hour ago and never started.
	claimed := registry.StageClaimed
	_, err = st.CompareAndUpdateStage(ctx, research.ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed, AgentID: &agent, ClaimedAt: &old})
	require.NoError(t, err)

	// SCRIPT: claimed just now — not stuck.
	_, err = st.CompareAndUpdateStage(ctx, script.ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed, AgentID: &agent, ClaimedAt: &fresh})
	require.NoError(t, err)

	stuck, err := st.ListStuckStages(ctx, time.Now().Add(-2*time.Minute), time.Now().Add(-15*time.Minute))
	require.NoError(t, err)
	require.Len(t, stuck, 1)
	assert.Equal(t, research.ID, stuck[0].ID)

	// Once RUNNING, the started_at cutoff governs instead.
	running := registry.StageRunning
	_, err = st.CompareAndUpdateStage(ctx, research.ID,
		[]registry.StageStatus{registry.StageClaimed},
		store.StageMutation{Status: &running, StartedAt: &fresh})
	require.NoError(t, err)

	stuck, err = st.ListStuckStages(ctx, time.Now().Add(-2*time.Minute), time.Now().Add(-15*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, stuck)
}

func TestListStagesByAgentPrefix(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	p1, err := st.CreatePipelineWithStages(ctx, "orphans-1", "")
	require.NoError(t, err)
	p2, err := st.CreatePipelineWithStages(ctx, "orphans-2", "")
	require.NoError(t, err)

	claimed := registry.StageClaimed
	now := time.Now()

	mine := "pod-a-worker-1"
	_, err = st.CompareAndUpdateStage(ctx, p1.Edges.Stages[0].ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed, AgentID: &mine, ClaimedAt: &now})
	require.NoError(t, err)

	other := "pod-b-worker-1"
	_, err = st.CompareAndUpdateStage(ctx, p2.Edges.Stages[0].ID,
		[]registry.StageStatus{registry.StagePending},
		store.StageMutation{Status: &claimed, AgentID: &other, ClaimedAt: &now})
	require.NoError(t, err)

	stages, err := st.ListStagesByAgentPrefix(ctx, "pod-a-worker-")
	require.NoError(t, err)
	require.Len(t, stages, 1)
	require.NotNil(t, stages[0].AgentID)
	assert.Equal(t, mine, *stages[0].AgentID)
}
