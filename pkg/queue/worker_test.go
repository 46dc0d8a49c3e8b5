package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/config"
	"github.com/crewcast/crewcast/pkg/handler"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/services"
)

// stubScheduler is an in-memory StageScheduler for worker tests.
type stubScheduler struct {
	mu    sync.Mutex
	ready []models.ReadyStage

	claimErr  error
	claims    []string // stage ids claimed
	started   []string
	completed map[string]json.RawMessage
	failed    map[string]string
}

func newStubScheduler(ready ...models.ReadyStage) *stubScheduler {
	return &stubScheduler{
		ready:     ready,
		completed: make(map[string]json.RawMessage),
		failed:    make(map[string]string),
	}
}

func (s *stubScheduler) ReadySet(_ context.Context, filter models.ReadySetFilter) ([]models.ReadyStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ReadyStage, 0, len(s.ready))
	for _, rs := range s.ready {
		if filter.Match(rs.Stage.Name) {
			out = append(out, rs)
		}
	}
	return out, nil
}

func (s *stubScheduler) ClaimStage(_ context.Context, pipelineID string, name registry.StageName, agentID, _ string) (*ent.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		err := s.claimErr
		s.claimErr = nil
		return nil, err
	}
	for i, rs := range s.ready {
		if rs.Pipeline.ID == pipelineID && rs.Stage.Name == name {
			s.ready = append(s.ready[:i], s.ready[i+1:]...)
			s.claims = append(s.claims, rs.Stage.ID)
			claimed := *rs.Stage
			claimed.Status = registry.StageClaimed
			claimed.AgentID = &agentID
			return &claimed, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *stubScheduler) StartStage(_ context.Context, stageID string) (*ent.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = append(s.started, stageID)
	return &ent.Stage{ID: stageID, Status: registry.StageRunning}, nil
}

func (s *stubScheduler) CompleteStage(_ context.Context, stageID string, output json.RawMessage, _ []string) (*models.StageTransitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[stageID] = output
	return &models.StageTransitionResult{}, nil
}

func (s *stubScheduler) FailStage(_ context.Context, stageID, errText string) (*models.StageTransitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[stageID] = errText
	return &models.StageTransitionResult{}, nil
}

// scriptedHandler runs a canned function for one stage.
type scriptedHandler struct {
	name     registry.StageName
	validate func(json.RawMessage) handler.ValidationResult
	execute  func(context.Context, handler.ExecutionContext) (*handler.Result, error)
}

func (h *scriptedHandler) Name() registry.StageName { return h.name }

func (h *scriptedHandler) Validate(input json.RawMessage) handler.ValidationResult {
	if h.validate != nil {
		return h.validate(input)
	}
	return handler.Valid()
}

func (h *scriptedHandler) Execute(ctx context.Context, ec handler.ExecutionContext) (*handler.Result, error) {
	return h.execute(ctx, ec)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.StageTimeout = time.Second
	return cfg
}

func researchReady(pipelineID, stageID string) models.ReadyStage {
	p := &ent.Pipeline{ID: pipelineID, Topic: "Why cats purr", Status: registry.PipelineRunning}
	st := &ent.Stage{ID: stageID, PipelineID: pipelineID, Name: registry.StageResearch, Status: registry.StagePending}
	p.Edges.Stages = []*ent.Stage{st}
	return models.ReadyStage{Pipeline: p, Stage: st}
}

func TestWorker_CompletesStage(t *testing.T) {
	sched := newStubScheduler(researchReady("p1", "s1"))
	handlers := handler.NewRegistry()

	var gotInput json.RawMessage
	require.NoError(t, handlers.Register(&scriptedHandler{
		name: registry.StageResearch,
		execute: func(_ context.Context, ec handler.ExecutionContext) (*handler.Result, error) {
			gotInput = ec.Input
			return &handler.Result{Success: true, Output: json.RawMessage(`{"topic":"Why cats purr"}`)}, nil
		},
	}))

	w := NewWorker("pod-a-worker-0", "pod-a", sched, handlers, testQueueConfig(), false)
	require.NoError(t, w.pollAndProcess(context.Background()))

	assert.Equal(t, []string{"s1"}, sched.claims)
	assert.Equal(t, []string{"s1"}, sched.started)
	assert.JSONEq(t, `{"topic":"Why cats purr"}`, string(sched.completed["s1"]))
	assert.JSONEq(t, `{"topic":"Why cats purr"}`, string(gotInput))
	assert.Empty(t, sched.failed)
}

func TestWorker_HandlerFailureFailsStage(t *testing.T) {
	sched := newStubScheduler(researchReady("p1", "s1"))
	handlers := handler.NewRegistry()
	require.NoError(t, handlers.Register(&scriptedHandler{
		name: registry.StageResearch,
		execute: func(context.Context, handler.ExecutionContext) (*handler.Result, error) {
			return &handler.Result{Success: false, Error: "llm_timeout"}, nil
		},
	}))

	w := NewWorker("pod-a-worker-0", "pod-a", sched, handlers, testQueueConfig(), false)
	require.NoError(t, w.pollAndProcess(context.Background()))

	assert.Equal(t, "llm_timeout", sched.failed["s1"])
	assert.Empty(t, sched.completed)
}

func TestWorker_ValidationFailureFailsWithoutStart(t *testing.T) {
	sched := newStubScheduler(researchReady("p1", "s1"))
	handlers := handler.NewRegistry()
	require.NoError(t, handlers.Register(&scriptedHandler{
		name: registry.StageResearch,
		validate: func(json.RawMessage) handler.ValidationResult {
			return handler.Invalid("topic missing")
		},
		execute: func(context.Context, handler.ExecutionContext) (*handler.Result, error) {
			t.Fatal("execute must not run on invalid input")
			return nil, nil
		},
	}))

	w := NewWorker("pod-a-worker-0", "pod-a", sched, handlers, testQueueConfig(), false)
	require.NoError(t, w.pollAndProcess(context.Background()))

	assert.Empty(t, sched.started)
	assert.Contains(t, sched.failed["s1"], "topic missing")
}

func TestWorker_LostClaimTriesNextStage(t *testing.T) {
	first := researchReady("p1", "s1")
	second := researchReady("p2", "s2")
	sched := newStubScheduler(first, second)
	sched.claimErr = fmt.Errorf("stage already taken: %w", services.ErrPreconditionFailed)

	handlers := handler.NewRegistry()
	require.NoError(t, handlers.Register(&scriptedHandler{
		name: registry.StageResearch,
		execute: func(context.Context, handler.ExecutionContext) (*handler.Result, error) {
			return &handler.Result{Success: true, Output: json.RawMessage(`{}`)}, nil
		},
	}))

	w := NewWorker("pod-a-worker-0", "pod-a", sched, handlers, testQueueConfig(), false)
	require.NoError(t, w.pollAndProcess(context.Background()))

	// The first claim lost the race; the worker moved on and won the next.
	require.Len(t, sched.claims, 1)
	assert.Contains(t, sched.completed, sched.claims[0])
}

func TestWorker_NoHandlersMeansNoWork(t *testing.T) {
	sched := newStubScheduler(researchReady("p1", "s1"))
	w := NewWorker("pod-a-worker-0", "pod-a", sched, handler.NewRegistry(), testQueueConfig(), false)

	assert.ErrorIs(t, w.pollAndProcess(context.Background()), ErrNoStagesAvailable)
	assert.Empty(t, sched.claims)
}

func TestWorker_FiltersToRegisteredStages(t *testing.T) {
	voice := researchReady("p1", "s1")
	voice.Stage.Name = registry.StageVoice
	sched := newStubScheduler(voice)

	handlers := handler.NewRegistry()
	require.NoError(t, handlers.Register(&scriptedHandler{
		name: registry.StageResearch,
		execute: func(context.Context, handler.ExecutionContext) (*handler.Result, error) {
			return &handler.Result{Success: true}, nil
		},
	}))

	w := NewWorker("pod-a-worker-0", "pod-a", sched, handlers, testQueueConfig(), false)
	assert.ErrorIs(t, w.pollAndProcess(context.Background()), ErrNoStagesAvailable)
}

func TestWorker_HealthTracksProcessedStages(t *testing.T) {
	sched := newStubScheduler(researchReady("p1", "s1"))
	handlers := handler.NewRegistry()
	require.NoError(t, handlers.Register(&scriptedHandler{
		name: registry.StageResearch,
		execute: func(context.Context, handler.ExecutionContext) (*handler.Result, error) {
			return &handler.Result{Success: true}, nil
		},
	}))

	w := NewWorker("pod-a-worker-0", "pod-a", sched, handlers, testQueueConfig(), false)
	require.NoError(t, w.pollAndProcess(context.Background()))

	h := w.Health()
	assert.Equal(t, "pod-a-worker-0", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Equal(t, 1, h.StagesProcessed)
}
