package services

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/crewcast/crewcast/ent"
	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/pkg/store"
)

// AttributionService closes the books: it records which agent earned which
// stage's weight and computes distributions of a total quantity across
// agents. Attribution rows are immutable facts.
type AttributionService struct {
	store store.Store
}

// NewAttributionService creates an AttributionService.
func NewAttributionService(st store.Store) *AttributionService {
	return &AttributionService{store: st}
}

// Record appends an attribution with the registry weight for the stage.
// Idempotent on (pipeline_id, stage_name): a duplicate insert is a no-op.
func (s *AttributionService) Record(httpCtx context.Context, pipelineID, stageID string, stageName registry.StageName, agentID, agentName string) error {
	if !registry.Valid(stageName) {
		return NewValidationError("stage_name", fmt.Sprintf("unknown stage %q", stageName))
	}
	if agentID == "" {
		return NewValidationError("agent_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, writeTimeout)
	defer cancel()

	_, err := s.store.AppendAttribution(ctx, store.AttributionRecord{
		PipelineID: pipelineID,
		StageID:    stageID,
		StageName:  stageName,
		AgentID:    agentID,
		AgentName:  agentName,
		Percentage: registry.Weight(stageName),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			// Already recorded for this (pipeline, stage name).
			return nil
		}
		return err
	}
	return nil
}

// List returns a pipeline's attributions in registry order.
func (s *AttributionService) List(ctx context.Context, pipelineID string) ([]*ent.Attribution, error) {
	if _, err := s.store.FindPipeline(ctx, pipelineID, false); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.store.ListAttributions(ctx, pipelineID)
}

// Share names one contributing stage and its agent, the input to Distribute.
type Share struct {
	StageName registry.StageName
	AgentID   string
}

// Distribute splits total across agents by stage weight. Each share is
// floor(total * weight / 100) — multiply first, divide last, so precision is
// never lost before the final division. When the shares cover every registry
// stage exactly once (the normal completion case) the flooring remainder is
// granted to the agent of the last stage in registry order, making the sum
// of all shares equal total for any total, not just multiples of 100.
func (s *AttributionService) Distribute(total *big.Int, shares []Share) (map[string]*big.Int, error) {
	if total == nil || total.Sign() < 0 {
		return nil, NewValidationError("total", "must be a non-negative integer")
	}

	seen := make(map[registry.StageName]int)
	for _, sh := range shares {
		if !registry.Valid(sh.StageName) {
			return nil, NewValidationError("stage_name", fmt.Sprintf("unknown stage %q", sh.StageName))
		}
		if sh.AgentID == "" {
			return nil, NewValidationError("agent_id", "required")
		}
		seen[sh.StageName]++
	}

	ordered := make([]Share, len(shares))
	copy(ordered, shares)
	sort.SliceStable(ordered, func(i, j int) bool {
		return registry.Index(ordered[i].StageName) < registry.Index(ordered[j].StageName)
	})

	hundred := big.NewInt(100)
	distributed := new(big.Int)
	out := make(map[string]*big.Int)
	for _, sh := range ordered {
		share := new(big.Int).Mul(total, big.NewInt(int64(registry.Weight(sh.StageName))))
		share.Quo(share, hundred)
		distributed.Add(distributed, share)

		if existing, ok := out[sh.AgentID]; ok {
			existing.Add(existing, share)
		} else {
			out[sh.AgentID] = share
		}
	}

	if fullyAttributed(seen) && len(ordered) > 0 {
		remainder := new(big.Int).Sub(total, distributed)
		if remainder.Sign() > 0 {
			residual := ordered[len(ordered)-1].AgentID
			out[residual].Add(out[residual], remainder)
		}
	}
	return out, nil
}

// DistributeRecords is Distribute over persisted attribution rows.
func (s *AttributionService) DistributeRecords(total *big.Int, attrs []*ent.Attribution) (map[string]*big.Int, error) {
	shares := make([]Share, len(attrs))
	for i, a := range attrs {
		shares[i] = Share{StageName: a.StageName, AgentID: a.AgentID}
	}
	return s.Distribute(total, shares)
}

// fullyAttributed reports whether every registry stage appears exactly once.
func fullyAttributed(seen map[registry.StageName]int) bool {
	if len(seen) != len(registry.Order) {
		return false
	}
	for _, name := range registry.Order {
		if seen[name] != 1 {
			return false
		}
	}
	return true
}
