package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/store"
	testdb "github.com/crewcast/crewcast/test/database"
)

func setupServices(t *testing.T) (*PipelineService, *AttributionService, store.Store) {
	t.Helper()
	client := testdb.NewTestClient(t)
	st := store.NewEntStore(client.Client)
	return NewPipelineService(st, nil), NewAttributionService(st), st
}

func createRunningPipeline(t *testing.T, svc *PipelineService, topic string) *ent.Pipeline {
	t.Helper()
	ctx := context.Background()
	p, err := svc.CreatePipeline(ctx, models.CreatePipelineRequest{Topic: topic})
	require.NoError(t, err)
	p, err = svc.StartPipeline(ctx, p.ID)
	require.NoError(t, err)
	return p
}

// runStage claims, starts, and completes one stage as agentID.
func runStage(t *testing.T, svc *PipelineService, pipelineID string, name registry.StageName, agentID string) {
	t.Helper()
	ctx := context.Background()

	st, err := svc.ClaimStage(ctx, pipelineID, name, agentID, "Agent "+agentID)
	require.NoError(t, err)
	_, err = svc.StartStage(ctx, st.ID)
	require.NoError(t, err)
	output := json.RawMessage(fmt.Sprintf(`{"stage":%q}`, name))
	_, err = svc.CompleteStage(ctx, st.ID, output, nil)
	require.NoError(t, err)
}

func TestCreatePipeline(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	p, err := svc.CreatePipeline(ctx, models.CreatePipelineRequest{Topic: "Why cats purr", Description: "a short explainer"})
	require.NoError(t, err)

	assert.Equal(t, registry.PipelineDraft, p.Status)
	assert.Equal(t, registry.StageResearch, p.CurrentStage)
	require.Len(t, p.Edges.Stages, len(registry.Order))
	for i, st := range p.Edges.Stages {
		assert.Equal(t, registry.Order[i], st.Name)
		assert.Equal(t, registry.StagePending, st.Status)
	}

	// Round trip: fetching returns identical attribute values.
	got, err := svc.GetPipeline(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Topic, got.Topic)
	assert.Equal(t, p.Status, got.Status)
	require.NotNil(t, got.Description)
	assert.Equal(t, "a short explainer", *got.Description)
}

func TestCreatePipeline_EmptyTopic(t *testing.T) {
	svc, _, _ := setupServices(t)

	_, err := svc.CreatePipeline(context.Background(), models.CreatePipelineRequest{})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, CodeInvalidInput, Code(err))
}

func TestStartPipeline(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	p, err := svc.CreatePipeline(ctx, models.CreatePipelineRequest{Topic: "t"})
	require.NoError(t, err)

	p, err = svc.StartPipeline(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.PipelineRunning, p.Status)

	// Starting again is an invalid transition.
	_, err = svc.StartPipeline(ctx, p.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.StartPipeline(ctx, "no-such-pipeline")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHappyPathCompletesAndAttributes(t *testing.T) {
	svc, attrSvc, _ := setupServices(t)
	ctx := context.Background()
	p := createRunningPipeline(t, svc, "Why cats purr")

	// A1 does RESEARCH, SCRIPT, VOICE, EDITOR; A2 does MUSIC, VISUAL, PUBLISH.
	agents := map[registry.StageName]string{
		registry.StageResearch: "A1",
		registry.StageScript:   "A1",
		registry.StageVoice:    "A1",
		registry.StageMusic:    "A2",
		registry.StageVisual:   "A2",
		registry.StageEditor:   "A1",
		registry.StagePublish:  "A2",
	}
	for _, name := range registry.Order {
		runStage(t, svc, p.ID, name, agents[name])
	}

	final, err := svc.GetPipeline(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.PipelineComplete, final.Status)

	attrs, err := attrSvc.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, attrs, len(registry.Order))

	shares, err := attrSvc.DistributeRecords(big.NewInt(1_000_000), attrs)
	require.NoError(t, err)
	assert.Equal(t, "700000", shares["A1"].String())
	assert.Equal(t, "300000", shares["A2"].String())
}

func TestClaimRace(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "race")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			agent := fmt.Sprintf("W%d", i+1)
			_, errs[i] = svc.ClaimStage(context.Background(), p.ID, registry.StageResearch, agent, agent)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrPreconditionFailed)
		}
	}
	assert.Equal(t, 1, winners)

	// Exactly one agent owns the stage.
	got, err := svc.GetPipeline(context.Background(), p.ID)
	require.NoError(t, err)
	research := got.Edges.Stages[0]
	assert.Equal(t, registry.StageClaimed, research.Status)
	require.NotNil(t, research.AgentID)
	assert.Contains(t, []string{"W1", "W2"}, *research.AgentID)
}

func TestOutOfOrderClaimRejected(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "order")
	ctx := context.Background()

	_, err := svc.ClaimStage(ctx, p.ID, registry.StageScript, "A1", "A1")
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	runStage(t, svc, p.ID, registry.StageResearch, "A1")

	_, err = svc.ClaimStage(ctx, p.ID, registry.StageScript, "A1", "A1")
	assert.NoError(t, err)
}

func TestClaimTwiceSameAgent(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "idempotence")
	ctx := context.Background()

	_, err := svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	require.NoError(t, err)

	_, err = svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestClaimValidation(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "validation")
	ctx := context.Background()

	_, err := svc.ClaimStage(ctx, p.ID, "MONTAGE", "A1", "A1")
	assert.True(t, IsValidationError(err))

	_, err = svc.ClaimStage(ctx, p.ID, registry.StageResearch, "", "A1")
	assert.True(t, IsValidationError(err))

	_, err = svc.ClaimStage(ctx, "no-such-pipeline", registry.StageResearch, "A1", "A1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClaimRequiresRunningPipeline(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	p, err := svc.CreatePipeline(ctx, models.CreatePipelineRequest{Topic: "draft"})
	require.NoError(t, err)

	_, err = svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestFailStagePropagatesToPipeline(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "failure")
	ctx := context.Background()

	runStage(t, svc, p.ID, registry.StageResearch, "A1")

	st, err := svc.ClaimStage(ctx, p.ID, registry.StageScript, "A1", "A1")
	require.NoError(t, err)
	result, err := svc.FailStage(ctx, st.ID, "llm_timeout")
	require.NoError(t, err)
	assert.Equal(t, registry.StageFailed, result.Stage.Status)
	assert.Equal(t, registry.PipelineFailed, result.Pipeline.Status)

	// Pipeline is no longer RUNNING, so later claims are rejected.
	_, err = svc.ClaimStage(ctx, p.ID, registry.StageVoice, "A2", "A2")
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	// The error text is visible on the stage.
	got, err := svc.GetPipeline(ctx, p.ID)
	require.NoError(t, err)
	script := got.Edges.Stages[registry.Index(registry.StageScript)]
	require.NotNil(t, script.ErrorMessage)
	assert.Equal(t, "llm_timeout", *script.ErrorMessage)
}

func TestCompleteStageTwice(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "terminal")
	ctx := context.Background()

	st, err := svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	require.NoError(t, err)
	_, err = svc.CompleteStage(ctx, st.ID, json.RawMessage(`{}`), nil)
	require.NoError(t, err)

	// Terminal states are immutable.
	_, err = svc.CompleteStage(ctx, st.ID, json.RawMessage(`{}`), nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteFromClaimedSkipsExplicitStart(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "claimed-complete")
	ctx := context.Background()

	st, err := svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	require.NoError(t, err)

	// complete accepts both CLAIMED and RUNNING.
	result, err := svc.CompleteStage(ctx, st.ID, nil, []string{"file:///a"})
	require.NoError(t, err)
	assert.Equal(t, registry.StageComplete, result.Stage.Status)
	assert.Equal(t, registry.StageScript, result.Pipeline.CurrentStage)
}

func TestCompleteInFailedPipelineKeepsPipelineFailed(t *testing.T) {
	svc, _, st := setupServices(t)
	p := createRunningPipeline(t, svc, "failed-complete")
	ctx := context.Background()

	claimed, err := svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	require.NoError(t, err)

	// Pipeline fails out from under the worker (e.g. the reaper acted on a
	// sibling replica). The stage completion must still land, but must not
	// resurrect the pipeline.
	failed := registry.PipelineFailed
	require.NoError(t, st.UpdatePipeline(ctx, p.ID, store.PipelineMutation{Status: &failed}))

	result, err := svc.CompleteStage(ctx, claimed.ID, json.RawMessage(`{}`), nil)
	require.NoError(t, err)
	assert.Equal(t, registry.StageComplete, result.Stage.Status)
	assert.Equal(t, registry.PipelineFailed, result.Pipeline.Status)
}

func TestSkippedPredecessorSatisfiesClaim(t *testing.T) {
	svc, _, st := setupServices(t)
	p := createRunningPipeline(t, svc, "skip")
	ctx := context.Background()

	// Admin-only path: skip RESEARCH directly in the store.
	research := p.Edges.Stages[0]
	skipped := registry.StageSkipped
	n, err := st.CompareAndUpdateStage(ctx, research.ID,
		[]registry.StageStatus{registry.StagePending}, store.StageMutation{Status: &skipped})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = svc.ClaimStage(ctx, p.ID, registry.StageScript, "A1", "A1")
	assert.NoError(t, err)
}

func TestReadySetOrdering(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	p1 := createRunningPipeline(t, svc, "P1")
	p2 := createRunningPipeline(t, svc, "P2")
	p3 := createRunningPipeline(t, svc, "P3")

	// Advance P1 to VOICE pending.
	runStage(t, svc, p1.ID, registry.StageResearch, "A1")
	runStage(t, svc, p1.ID, registry.StageScript, "A1")

	ready, err := svc.ReadySet(ctx, models.ReadySetFilter{})
	require.NoError(t, err)
	require.Len(t, ready, 3)

	// Earlier stages first, then older pipelines first.
	assert.Equal(t, p2.ID, ready[0].Pipeline.ID)
	assert.Equal(t, registry.StageResearch, ready[0].Stage.Name)
	assert.Equal(t, p3.ID, ready[1].Pipeline.ID)
	assert.Equal(t, registry.StageResearch, ready[1].Stage.Name)
	assert.Equal(t, p1.ID, ready[2].Pipeline.ID)
	assert.Equal(t, registry.StageVoice, ready[2].Stage.Name)
}

func TestReadySetExcludesBlockedAndClaimed(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()
	p := createRunningPipeline(t, svc, "frontier")

	ready, err := svc.ReadySet(ctx, models.ReadySetFilter{})
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, registry.StageResearch, ready[0].Stage.Name)

	// A claimed frontier removes the pipeline from the ready set entirely.
	_, err = svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	require.NoError(t, err)

	ready, err = svc.ReadySet(ctx, models.ReadySetFilter{})
	require.NoError(t, err)
	assert.Empty(t, ready)
}

func TestReadySetFilter(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()
	createRunningPipeline(t, svc, "filtered")

	ready, err := svc.ReadySet(ctx, models.ReadySetFilter{StageNames: []registry.StageName{registry.StageVoice}})
	require.NoError(t, err)
	assert.Empty(t, ready)

	_, err = svc.ReadySet(ctx, models.ReadySetFilter{StageNames: []registry.StageName{"MONTAGE"}})
	assert.True(t, IsValidationError(err))
}

func TestStartStageTransitions(t *testing.T) {
	svc, _, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "start-stage")
	ctx := context.Background()

	st, err := svc.ClaimStage(ctx, p.ID, registry.StageResearch, "A1", "A1")
	require.NoError(t, err)

	running, err := svc.StartStage(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.StageRunning, running.Status)
	assert.NotNil(t, running.StartedAt)

	// RUNNING → RUNNING is rejected.
	_, err = svc.StartStage(ctx, st.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.StartStage(ctx, "no-such-stage")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPipelines(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreatePipeline(ctx, models.CreatePipelineRequest{Topic: fmt.Sprintf("topic %d", i)})
		require.NoError(t, err)
	}
	createRunningPipeline(t, svc, "running one")

	resp, err := svc.ListPipelines(ctx, models.PipelineFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalCount)

	resp, err = svc.ListPipelines(ctx, models.PipelineFilters{Status: "RUNNING"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)

	resp, err = svc.ListPipelines(ctx, models.PipelineFilters{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Pipelines, 2)
	assert.Equal(t, 4, resp.TotalCount)

	_, err = svc.ListPipelines(ctx, models.PipelineFilters{Status: "BOGUS"})
	assert.True(t, IsValidationError(err))
}

func TestAttributionRecordIsIdempotent(t *testing.T) {
	svc, attrSvc, _ := setupServices(t)
	p := createRunningPipeline(t, svc, "idempotent-attr")
	ctx := context.Background()

	runStage(t, svc, p.ID, registry.StageResearch, "A1")

	attrs, err := attrSvc.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, attrs, 1)

	// Re-recording the same (pipeline, stage name) is a no-op.
	err = attrSvc.Record(ctx, p.ID, attrs[0].StageID, registry.StageResearch, "A9", "Agent Nine")
	require.NoError(t, err)

	attrs, err = attrSvc.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, "A1", attrs[0].AgentID)
	assert.Equal(t, registry.Weight(registry.StageResearch), attrs[0].Percentage)
}
