package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/crewcast/crewcast/pkg/registry"
)

// Attribution holds the schema definition for the Attribution entity — an
// immutable record that an agent earned a stage's weight in a pipeline.
// Created exactly when the stage transitions to COMPLETE, never updated.
type Attribution struct {
	ent.Schema
}

// Fields of the Attribution.
func (Attribution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attribution_id").
			Unique().
			Immutable(),
		field.String("pipeline_id").
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.Enum("stage_name").
			GoType(registry.StageName("")).
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.Int("percentage").
			Immutable().
			Comment("Static registry weight for stage_name at completion time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Attribution.
func (Attribution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("attributions").
			Field("pipeline_id").
			Unique().
			Required().
			Immutable(),
		edge.From("stage", Stage.Type).
			Ref("attributions").
			Field("stage_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Attribution.
func (Attribution) Indexes() []ent.Index {
	return []ent.Index{
		// At most one attribution per (pipeline, stage name).
		index.Fields("pipeline_id", "stage_name").
			Unique(),
		index.Fields("agent_id"),
	}
}
