package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcast/crewcast/pkg/registry"
)

type stubHandler struct {
	name registry.StageName
}

func (h *stubHandler) Name() registry.StageName { return h.name }

func (h *stubHandler) Validate(input json.RawMessage) ValidationResult {
	if len(input) == 0 {
		return Invalid("input required")
	}
	return Valid()
}

func (h *stubHandler) Execute(_ context.Context, _ ExecutionContext) (*Result, error) {
	return &Result{Success: true, Output: json.RawMessage(`{}`)}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubHandler{name: registry.StageResearch}))

	h, ok := r.Get(registry.StageResearch)
	require.True(t, ok)
	assert.Equal(t, registry.StageResearch, h.Name())

	_, ok = r.Get(registry.StageScript)
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicatesAndUnknown(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubHandler{name: registry.StageVoice}))

	err := r.Register(&stubHandler{name: registry.StageVoice})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = r.Register(&stubHandler{name: "MONTAGE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestRegistry_NamesInExecutionOrder(t *testing.T) {
	r := NewRegistry()
	// Register out of order; Names must come back in execution order.
	for _, n := range []registry.StageName{registry.StagePublish, registry.StageResearch, registry.StageVisual} {
		require.NoError(t, r.Register(&stubHandler{name: n}))
	}

	assert.Equal(t, []registry.StageName{
		registry.StageResearch,
		registry.StageVisual,
		registry.StagePublish,
	}, r.Names())
}

func TestValidationResultHelpers(t *testing.T) {
	v := Valid()
	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)

	iv := Invalid("topic missing", "facts too short")
	assert.False(t, iv.Valid)
	assert.Len(t, iv.Errors, 2)
}
