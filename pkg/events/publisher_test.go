package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/pkg/registry"
	"github.com/crewcast/crewcast/test/util"
)

func TestPipelineChannel(t *testing.T) {
	assert.Equal(t, "pipeline:abc-123", PipelineChannel("abc-123"))
}

func TestTruncatePayload_DropsErrorField(t *testing.T) {
	payload := StageStatusPayload{
		Type:       EventTypeStageStatus,
		PipelineID: "p1",
		StageID:    "s1",
		StageName:  registry.StageScript,
		Status:     registry.StageFailed,
		Error:      strings.Repeat("x", 10_000),
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.Greater(t, len(raw), maxNotifyPayload)

	out := truncatePayload(raw)
	assert.LessOrEqual(t, len(out), maxNotifyPayload)

	// Still valid JSON with everything but the error intact.
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "p1", m["pipeline_id"])
	assert.Equal(t, string(registry.StageFailed), m["status"])
	assert.NotContains(t, m, "error")
}

func TestTruncatePayload_UnparseableFallsBackToHardCut(t *testing.T) {
	raw := []byte(strings.Repeat("{", 10_000))
	out := truncatePayload(raw)
	assert.Len(t, out, maxNotifyPayload)
}

func TestPublish(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	p := NewPublisher(db)
	ctx := context.Background()

	err := p.PublishPipelineStatus(ctx, PipelineStatusPayload{
		PipelineID:   "p1",
		Status:       registry.PipelineRunning,
		CurrentStage: registry.StageResearch,
	})
	require.NoError(t, err)

	err = p.PublishStageStatus(ctx, StageStatusPayload{
		PipelineID: "p1",
		StageID:    "s1",
		StageName:  registry.StageResearch,
		Status:     registry.StageClaimed,
		AgentID:    "A1",
	})
	require.NoError(t, err)

	// Oversized error text is truncated, never a publish failure.
	err = p.PublishStageStatus(ctx, StageStatusPayload{
		PipelineID: "p1",
		StageID:    "s1",
		StageName:  registry.StageScript,
		Status:     registry.StageFailed,
		Error:      strings.Repeat("x", 10_000),
	})
	require.NoError(t, err)
}
