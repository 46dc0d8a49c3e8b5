package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/handler"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/store"
)

// stubStore overrides the reaper queries; everything else panics if touched.
type stubStore struct {
	store.Store
	stuck   []*ent.Stage
	orphans []*ent.Stage

	gotPrefix string
}

func (s *stubStore) ListStuckStages(context.Context, time.Time, time.Time) ([]*ent.Stage, error) {
	return s.stuck, nil
}

func (s *stubStore) ListStagesByAgentPrefix(_ context.Context, prefix string) ([]*ent.Stage, error) {
	s.gotPrefix = prefix
	return s.orphans, nil
}

func TestWorkerPool_StartAndStop(t *testing.T) {
	sched := newStubScheduler()
	cfg := testQueueConfig()
	cfg.WorkerCount = 3

	pool := NewWorkerPool("pod-a", sched, &stubStore{}, handler.NewRegistry(), cfg, false)
	require.NoError(t, pool.Start(context.Background()))
	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(context.Background()))

	h := pool.Health()
	assert.Equal(t, 3, h.TotalWorkers)
	assert.Equal(t, "pod-a", h.PodID)
	assert.True(t, h.IsHealthy)
	assert.Zero(t, h.QueueDepth)

	pool.Stop()
}

func TestReapStuckStages_FailsStuckWork(t *testing.T) {
	agent := "pod-gone-worker-0"
	st := &stubStore{stuck: []*ent.Stage{
		{ID: "s1", PipelineID: "p1", Name: registry.StageScript, Status: registry.StageRunning, AgentID: &agent},
	}}
	sched := newStubScheduler()
	pool := NewWorkerPool("pod-a", sched, st, handler.NewRegistry(), testQueueConfig(), false)

	require.NoError(t, pool.reapStuckStages(context.Background()))

	assert.Contains(t, sched.failed["s1"], "orphaned")
	assert.Contains(t, sched.failed["s1"], agent)

	h := pool.Health()
	assert.Equal(t, 1, h.StagesReaped)
	assert.False(t, h.LastReaperScan.IsZero())
}

func TestCleanupStartupOrphans(t *testing.T) {
	st := &stubStore{orphans: []*ent.Stage{
		{ID: "s1", PipelineID: "p1", Name: registry.StageVoice, Status: registry.StageClaimed},
	}}
	sched := newStubScheduler()

	require.NoError(t, CleanupStartupOrphans(context.Background(), st, sched, "pod-a"))

	assert.Equal(t, "pod-a-worker-", st.gotPrefix)
	assert.Contains(t, sched.failed["s1"], "pod-a restarted")
}
