package services

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/pkg/registry"
)

func fullShares(agentFor func(registry.StageName) string) []Share {
	shares := make([]Share, 0, len(registry.Order))
	for _, name := range registry.Order {
		shares = append(shares, Share{StageName: name, AgentID: agentFor(name)})
	}
	return shares
}

func TestDistribute_TwoAgentsSplit(t *testing.T) {
	svc := NewAttributionService(nil)

	// A1 covers RESEARCH+SCRIPT+VOICE+EDITOR (10+25+20+15), A2 the rest.
	a2Stages := map[registry.StageName]bool{
		registry.StageMusic:   true,
		registry.StageVisual:  true,
		registry.StagePublish: true,
	}
	shares := fullShares(func(name registry.StageName) string {
		if a2Stages[name] {
			return "A2"
		}
		return "A1"
	})

	out, err := svc.Distribute(big.NewInt(1_000_000), shares)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "700000", out["A1"].String())
	assert.Equal(t, "300000", out["A2"].String())
}

func TestDistribute_BigIntSingleAgent(t *testing.T) {
	svc := NewAttributionService(nil)

	total := new(big.Int).Exp(big.NewInt(10), big.NewInt(24), nil)
	out, err := svc.Distribute(total, fullShares(func(registry.StageName) string { return "X" }))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Zero(t, total.Cmp(out["X"]))
}

func TestDistribute_ConservesNonMultipleTotals(t *testing.T) {
	svc := NewAttributionService(nil)

	for _, total := range []int64{0, 1, 7, 99, 101, 12345, 999_999_999_999} {
		shares := fullShares(func(name registry.StageName) string { return "agent-" + string(name) })
		out, err := svc.Distribute(big.NewInt(total), shares)
		require.NoError(t, err)

		sum := new(big.Int)
		for _, amount := range out {
			sum.Add(sum, amount)
		}
		assert.Equal(t, big.NewInt(total).String(), sum.String(), "total %d must be conserved", total)
	}
}

func TestDistribute_RemainderGoesToLastStageAgent(t *testing.T) {
	svc := NewAttributionService(nil)

	// total=101: floors sum to 100, the leftover unit lands on PUBLISH's agent.
	shares := fullShares(func(name registry.StageName) string { return "agent-" + string(name) })
	out, err := svc.Distribute(big.NewInt(101), shares)
	require.NoError(t, err)

	assert.Equal(t, "6", out["agent-PUBLISH"].String()) // floor(101*5/100)=5, +1 remainder
	assert.Equal(t, "10", out["agent-RESEARCH"].String())
}

func TestDistribute_PartialSetNoRemainderTopUp(t *testing.T) {
	svc := NewAttributionService(nil)

	// Only two stages attributed: floors stand, nothing is topped up.
	out, err := svc.Distribute(big.NewInt(101), []Share{
		{StageName: registry.StageResearch, AgentID: "A1"},
		{StageName: registry.StageScript, AgentID: "A2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "10", out["A1"].String())
	assert.Equal(t, "25", out["A2"].String())
}

func TestDistribute_RejectsBadInput(t *testing.T) {
	svc := NewAttributionService(nil)

	_, err := svc.Distribute(nil, nil)
	assert.True(t, IsValidationError(err))

	_, err = svc.Distribute(big.NewInt(-1), nil)
	assert.True(t, IsValidationError(err))

	_, err = svc.Distribute(big.NewInt(100), []Share{{StageName: "MONTAGE", AgentID: "A1"}})
	assert.True(t, IsValidationError(err))

	_, err = svc.Distribute(big.NewInt(100), []Share{{StageName: registry.StageResearch}})
	assert.True(t, IsValidationError(err))
}

func TestDistribute_EmptySet(t *testing.T) {
	svc := NewAttributionService(nil)

	out, err := svc.Distribute(big.NewInt(1000), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
