package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// maxNotifyPayload is PostgreSQL's NOTIFY payload ceiling (8000 bytes).
// Status payloads are tiny; the guard exists so an oversized error text can
// never make a broadcast fail outright.
const maxNotifyPayload = 7900

// Publisher broadcasts progress events over PostgreSQL NOTIFY.
// Payloads are transient: a listener that is not connected misses them and
// must re-read state from the API.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the orchestrator's connection pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishPipelineStatus broadcasts a pipeline.status event to the pipeline's
// own channel and the global pipelines channel. Returns the first error.
func (p *Publisher) PublishPipelineStatus(ctx context.Context, payload PipelineStatusPayload) error {
	payload.Type = EventTypePipelineStatus
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PipelineStatusPayload: %w", err)
	}

	firstErr := p.notify(ctx, PipelineChannel(payload.PipelineID), payloadJSON)
	if err := p.notify(ctx, GlobalPipelinesChannel, payloadJSON); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PublishStageStatus broadcasts a stage.status event to the pipeline's channel.
func (p *Publisher) PublishStageStatus(ctx context.Context, payload StageStatusPayload) error {
	payload.Type = EventTypeStageStatus
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageStatusPayload: %w", err)
	}
	return p.notify(ctx, PipelineChannel(payload.PipelineID), payloadJSON)
}

func (p *Publisher) notify(ctx context.Context, channel string, payloadJSON []byte) error {
	if len(payloadJSON) > maxNotifyPayload {
		payloadJSON = truncatePayload(payloadJSON)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payloadJSON)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncatePayload drops the error field and re-marshals. If the payload is
// somehow still oversized, it is cut at the byte limit — listeners treat
// unparseable notifications as a cue to re-read state.
func truncatePayload(payloadJSON []byte) []byte {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err == nil {
		delete(m, "error")
		if out, err := json.Marshal(m); err == nil && len(out) <= maxNotifyPayload {
			return out
		}
	}
	return payloadJSON[:maxNotifyPayload]
}
