package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/crewcast/crewcast/pkg/services"
	"github.com/crewcast/crewcast/pkg/store"
)

// reaperState tracks stuck-stage recovery metrics (thread-safe).
type reaperState struct {
	mu           sync.Mutex
	lastScan     time.Time
	stagesReaped int
}

// runReaper periodically scans for stuck stages. All pods run this
// independently — FailStage is conditional, so double recovery is harmless.
func (p *WorkerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reapStuckStages(ctx); err != nil {
				slog.Error("Stuck stage scan failed", "error", err)
			}
		}
	}
}

// reapStuckStages fails stages that sat in CLAIMED past the claim timeout or
// in RUNNING past the stuck threshold. The owning worker is presumed dead;
// failing the stage also fails the pipeline, keeping state honest.
func (p *WorkerPool) reapStuckStages(ctx context.Context) error {
	now := time.Now()
	stuck, err := p.store.ListStuckStages(ctx,
		now.Add(-p.config.ClaimTimeout),
		now.Add(-p.config.StuckThreshold))
	if err != nil {
		return fmt.Errorf("querying stuck stages: %w", err)
	}

	if len(stuck) == 0 {
		p.reaper.mu.Lock()
		p.reaper.lastScan = time.Now()
		p.reaper.mu.Unlock()
		return nil
	}

	slog.Warn("Detected stuck stages", "count", len(stuck))

	reaped := 0
	for _, st := range stuck {
		agent := "unknown"
		if st.AgentID != nil {
			agent = *st.AgentID
		}
		msg := fmt.Sprintf("orphaned: no progress from agent %s (status %s)", agent, st.Status)
		if _, err := p.scheduler.FailStage(ctx, st.ID, msg); err != nil {
			// A racing worker or another pod's reaper may have finished it.
			slog.Info("Stuck stage already resolved",
				"stage_id", st.ID, "pipeline_id", st.PipelineID, "error", err)
			continue
		}
		slog.Warn("Stuck stage failed by reaper",
			"stage_id", st.ID, "pipeline_id", st.PipelineID, "stage", st.Name, "agent_id", agent)
		reaped++
	}

	p.reaper.mu.Lock()
	p.reaper.lastScan = time.Now()
	p.reaper.stagesReaped += reaped
	p.reaper.mu.Unlock()

	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of stages claimed by this
// pod's workers before a previous crash. Called once during startup, before
// the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, st store.Store, scheduler StageScheduler, podID string) error {
	orphans, err := st.ListStagesByAgentPrefix(ctx, WorkerIDPrefix(podID))
	if err != nil {
		return fmt.Errorf("querying startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))

	for _, orphan := range orphans {
		msg := fmt.Sprintf("orphaned: pod %s restarted while stage was in progress", podID)
		if _, err := scheduler.FailStage(ctx, orphan.ID, msg); err != nil {
			if services.Code(err) == services.CodeInvalidState {
				// Already terminal, nothing to recover.
				continue
			}
			slog.Error("Failed to mark startup orphan",
				"stage_id", orphan.ID, "pipeline_id", orphan.PipelineID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "stage_id", orphan.ID, "pipeline_id", orphan.PipelineID)
	}

	return nil
}
