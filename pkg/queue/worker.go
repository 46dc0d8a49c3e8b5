package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/crewcast/crewcast/pkg/config"
	"github.com/crewcast/crewcast/pkg/handler"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single pool member: it polls the ready set for stages its
// registered handlers can run, claims one, and drives it to COMPLETE or
// FAILED. The worker id doubles as the claiming agent_id, which is what
// startup orphan cleanup keys on.
type Worker struct {
	id        string
	podID     string
	scheduler StageScheduler
	handlers  *handler.Registry
	config    *config.QueueConfig
	dryRun    bool
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentStageID  string
	stagesProcessed int
	lastActivity    time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, scheduler StageScheduler, handlers *handler.Registry, cfg *config.QueueConfig, dryRun bool) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		scheduler:    scheduler,
		handlers:     handlers,
		config:       cfg,
		dryRun:       dryRun,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentStageID:  w.currentStageID,
		StagesProcessed: w.stagesProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started", "stages", w.handlers.Names())

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoStagesAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing stage", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess fetches the ready set, claims the first stage it can win,
// and runs it to a terminal status.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	names := w.handlers.Names()
	if len(names) == 0 {
		return ErrNoStagesAvailable
	}

	ready, err := w.scheduler.ReadySet(ctx, models.ReadySetFilter{StageNames: names})
	if err != nil {
		return fmt.Errorf("fetching ready set: %w", err)
	}

	for _, rs := range ready {
		stage, err := w.scheduler.ClaimStage(ctx, rs.Pipeline.ID, rs.Stage.Name, w.id, "crewcast worker")
		if err != nil {
			if errors.Is(err, services.ErrPreconditionFailed) || errors.Is(err, services.ErrNotFound) {
				// Lost the race, or the snapshot went stale. Try the next one.
				continue
			}
			return err
		}
		w.process(ctx, rs, stage.ID)
		return nil
	}
	return ErrNoStagesAvailable
}

// process runs one claimed stage through start → execute → complete/fail.
func (w *Worker) process(ctx context.Context, rs models.ReadyStage, stageID string) {
	log := slog.With("worker_id", w.id, "pipeline_id", rs.Pipeline.ID, "stage", rs.Stage.Name, "stage_id", stageID)
	log.Info("Stage claimed")

	w.setStatus(WorkerStatusWorking, stageID)
	defer w.setStatus(WorkerStatusIdle, "")

	h, ok := w.handlers.Get(rs.Stage.Name)
	if !ok {
		// Should not happen: the ready-set filter only asked for registered
		// stages. Release the claim as a failure rather than holding it.
		w.failStage(stageID, fmt.Sprintf("no handler registered for stage %s", rs.Stage.Name), log)
		return
	}

	input, prevOutput := w.stageInput(rs)

	if v := h.Validate(input); !v.Valid {
		w.failStage(stageID, "input validation failed: "+strings.Join(v.Errors, "; "), log)
		return
	}

	if _, err := w.scheduler.StartStage(ctx, stageID); err != nil {
		log.Error("Failed to start claimed stage", "error", err)
		w.failStage(stageID, fmt.Sprintf("could not start stage: %v", err), log)
		return
	}

	stageCtx, cancel := context.WithTimeout(ctx, w.config.StageTimeout)
	defer cancel()

	result, err := h.Execute(stageCtx, handler.ExecutionContext{
		PipelineID:     rs.Pipeline.ID,
		StageID:        stageID,
		Input:          input,
		PreviousOutput: prevOutput,
		DryRun:         w.dryRun,
	})

	switch {
	case err != nil:
		if errors.Is(stageCtx.Err(), context.DeadlineExceeded) {
			w.failStage(stageID, fmt.Sprintf("stage timed out after %v", w.config.StageTimeout), log)
		} else {
			w.failStage(stageID, err.Error(), log)
		}
	case result == nil:
		w.failStage(stageID, "handler returned nil result", log)
	case !result.Success:
		w.failStage(stageID, result.Error, log)
	default:
		// Terminal update on a fresh context — stageCtx may be expired.
		tctx, tcancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer tcancel()
		if _, err := w.scheduler.CompleteStage(tctx, stageID, result.Output, result.Artifacts); err != nil {
			// The reaper may have failed the stage while we were executing.
			log.Error("Failed to complete stage", "error", err)
		} else {
			log.Info("Stage completed")
		}
	}

	w.mu.Lock()
	w.stagesProcessed++
	w.mu.Unlock()
}

// stageInput assembles the handler input: the first stage gets the pipeline
// brief, every later stage gets its predecessor's output verbatim.
func (w *Worker) stageInput(rs models.ReadyStage) (input, prevOutput json.RawMessage) {
	if rs.Stage.Name == registry.First() {
		brief := map[string]string{"topic": rs.Pipeline.Topic}
		if rs.Pipeline.Description != nil {
			brief["description"] = *rs.Pipeline.Description
		}
		raw, _ := json.Marshal(brief)
		return raw, nil
	}

	pred, _ := registry.Predecessor(rs.Stage.Name)
	for _, st := range rs.Pipeline.Edges.Stages {
		if st.Name == pred {
			return st.Output, st.Output
		}
	}
	return nil, nil
}

// failStage reports a terminal failure on a fresh context.
func (w *Worker) failStage(stageID, errText string, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := w.scheduler.FailStage(ctx, stageID, errText); err != nil {
		log.Error("Failed to mark stage as failed", "error", err, "stage_error", errText)
		return
	}
	log.Warn("Stage failed", "error", errText)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, stageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentStageID = stageID
	w.lastActivity = time.Now()
}
