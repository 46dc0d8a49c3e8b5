// Package handler defines the contract stage implementations fulfill and the
// registry the worker pool dispatches through. The orchestrator treats stage
// outputs as opaque payloads; the typed handoff schemas in payloads.go exist
// for handlers that want structure on either side of the wire.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/crewcast/crewcast/pkg/registry"
)

// ValidationResult is the outcome of a synchronous input check.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Invalid builds a failed ValidationResult from error texts.
func Invalid(errs ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// Valid is the successful ValidationResult.
func Valid() ValidationResult { return ValidationResult{Valid: true} }

// ExecutionContext carries everything a handler needs to run one stage.
type ExecutionContext struct {
	PipelineID string
	StageID    string

	// Input is the stage's own input payload; PreviousOutput is the output of
	// the preceding stage, nil for the first stage.
	Input          json.RawMessage
	PreviousOutput json.RawMessage

	// DryRun asks the handler to go through the motions without touching
	// external systems. Handlers that cannot honor it should fail fast.
	DryRun bool
}

// Result is what execute returns. On success Output holds the typed handoff
// for the next stage; on failure Error carries the handler-reported text and
// the other fields are ignored.
type Result struct {
	Success   bool            `json:"success"`
	Output    json.RawMessage `json:"output,omitempty"`
	Artifacts []string        `json:"artifacts,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Handler is one stage implementation. Validate must be pure; Execute must be
// side-effect-safe on failure and retry-safe at the stage level.
type Handler interface {
	Name() registry.StageName
	Validate(input json.RawMessage) ValidationResult
	Execute(ctx context.Context, ec ExecutionContext) (*Result, error)
}

// Registry maps stage names to their handlers. Registration happens at
// startup; lookups are concurrent with worker dispatch.
type Registry struct {
	mu       sync.RWMutex
	handlers map[registry.StageName]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[registry.StageName]Handler)}
}

// Register adds a handler. Unknown stage names and duplicates are rejected —
// both indicate a wiring bug, not a runtime condition.
func (r *Registry) Register(h Handler) error {
	name := h.Name()
	if !registry.Valid(name) {
		return fmt.Errorf("unknown stage name %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("handler already registered for stage %s", name)
	}
	r.handlers[name] = h
	return nil
}

// Get returns the handler for name, if registered.
func (r *Registry) Get(name registry.StageName) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered stage names in execution order. Workers use
// this as their capability advertisement when polling the ready set.
func (r *Registry) Names() []registry.StageName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]registry.StageName, 0, len(r.handlers))
	for _, n := range registry.Order {
		if _, ok := r.handlers[n]; ok {
			names = append(names, n)
		}
	}
	return names
}
