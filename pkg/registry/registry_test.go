package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsSumToHundred(t *testing.T) {
	assert.Equal(t, 100, TotalWeight())

	sum := 0
	for _, name := range Order {
		w := Weight(name)
		assert.Positive(t, w, "stage %s must carry a positive weight", name)
		sum += w
	}
	assert.Equal(t, 100, sum)
}

func TestOrderIsSevenUniqueStages(t *testing.T) {
	require.Len(t, Order, 7)

	seen := make(map[StageName]bool)
	for _, name := range Order {
		assert.False(t, seen[name], "duplicate stage %s", name)
		seen[name] = true
	}

	assert.Equal(t, StageResearch, First())
	assert.Equal(t, StagePublish, Last())
}

func TestNextAndPredecessorWalkTheChain(t *testing.T) {
	// Walking Next from the first stage visits every stage exactly once.
	current := First()
	visited := []StageName{current}
	for {
		next, ok := Next(current)
		if !ok {
			break
		}
		visited = append(visited, next)
		current = next
	}
	assert.Equal(t, Order, visited)

	// Next on the terminal stage returns none.
	_, ok := Next(StagePublish)
	assert.False(t, ok)

	// Predecessor on the first stage returns none.
	_, ok = Predecessor(StageResearch)
	assert.False(t, ok)

	pred, ok := Predecessor(StageScript)
	require.True(t, ok)
	assert.Equal(t, StageResearch, pred)
}

func TestIndexAndValid(t *testing.T) {
	for i, name := range Order {
		assert.Equal(t, i, Index(name))
		assert.True(t, Valid(name))
	}

	assert.Equal(t, -1, Index(StageName("MONTAGE")))
	assert.False(t, Valid(StageName("montage")))
	assert.Equal(t, 0, Weight(StageName("MONTAGE")))
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status    StageStatus
		terminal  bool
		satisfied bool
		active    bool
	}{
		{StagePending, false, false, false},
		{StageClaimed, false, false, true},
		{StageRunning, false, false, true},
		{StageComplete, true, true, false},
		{StageFailed, true, false, false},
		{StageSkipped, true, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.Terminal())
			assert.Equal(t, tt.satisfied, tt.status.Satisfied())
			assert.Equal(t, tt.active, tt.status.Active())
		})
	}

	assert.False(t, PipelineDraft.Terminal())
	assert.False(t, PipelineRunning.Terminal())
	assert.True(t, PipelineComplete.Terminal())
	assert.True(t, PipelineFailed.Terminal())
}
