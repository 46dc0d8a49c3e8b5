package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/crewcast/crewcast/pkg/config"
	"github.com/crewcast/crewcast/pkg/handler"
	"github.com/crewcast/crewcast/pkg/models"
	"github.com/crewcast/crewcast/pkg/store"
)

// WorkerPool manages a pool of queue workers plus the stuck-stage reaper.
type WorkerPool struct {
	podID     string
	scheduler StageScheduler
	store     store.Store
	handlers  *handler.Registry
	config    *config.QueueConfig
	dryRun    bool
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool

	reaper reaperState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, scheduler StageScheduler, st store.Store, handlers *handler.Registry, cfg *config.QueueConfig, dryRun bool) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		scheduler: scheduler,
		store:     st,
		handlers:  handlers,
		config:    cfg,
		dryRun:    dryRun,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// WorkerIDPrefix returns the agent_id prefix shared by all of a pod's
// workers. Startup orphan cleanup matches claimed stages against it.
func WorkerIDPrefix(podID string) string {
	return podID + "-worker-"
}

// Start spawns worker goroutines and the reaper background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s%d", WorkerIDPrefix(p.podID), i)
		worker := NewWorker(workerID, p.podID, p.scheduler, p.handlers, p.config, p.dryRun)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current stages before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool. Queue depth is the
// size of the ready set for this pod's registered stages.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	var depthErr string
	queueDepth := 0
	ready, err := p.scheduler.ReadySet(ctx, models.ReadySetFilter{StageNames: p.handlers.Names()})
	if err != nil {
		depthErr = fmt.Sprintf("ready set query failed: %v", err)
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", err)
	} else {
		queueDepth = len(ready)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.reaper.mu.Lock()
	lastScan := p.reaper.lastScan
	reaped := p.reaper.stagesReaped
	p.reaper.mu.Unlock()

	return &PoolHealth{
		IsHealthy:      len(p.workers) > 0 && depthErr == "",
		PodID:          p.podID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		QueueDepth:     queueDepth,
		QueueDepthErr:  depthErr,
		WorkerStats:    workerStats,
		LastReaperScan: lastScan,
		StagesReaped:   reaped,
	}
}
