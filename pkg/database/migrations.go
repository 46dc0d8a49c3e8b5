package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient topic search on the pipelines listing.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_pipelines_topic_gin
		ON pipelines USING gin(to_tsvector('english', topic || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create topic GIN index: %w", err)
	}

	return nil
}
