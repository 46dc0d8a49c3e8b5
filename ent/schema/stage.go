package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/crewcast/crewcast/pkg/registry"
)

// Stage holds the schema definition for the Stage entity — one named slot
// within a pipeline, owned by at most one agent at a time.
type Stage struct {
	ent.Schema
}

// Fields of the Stage.
func (Stage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.String("pipeline_id").
			Immutable(),
		field.Enum("name").
			GoType(registry.StageName("")).
			Immutable(),
		field.Enum("status").
			GoType(registry.StageStatus("")).
			Default(string(registry.StagePending)),

		// Ownership — set on claim, immutable once the stage is terminal.
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("agent_name").
			Optional().
			Nillable(),

		// Handoff output, stored verbatim; the orchestrator never parses it.
		field.JSON("output", json.RawMessage{}).
			Optional(),
		field.Strings("artifacts").
			Optional().
			Comment("Opaque artifact handles (URLs), in handler order"),
		field.String("error_message").
			Optional().
			Nillable(),

		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Stage.
func (Stage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("stages").
			Field("pipeline_id").
			Unique().
			Required().
			Immutable(),
		edge.To("attributions", Attribution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Stage.
func (Stage) Indexes() []ent.Index {
	return []ent.Index{
		// One slot per stage name within a pipeline.
		index.Fields("pipeline_id", "name").
			Unique(),
		index.Fields("status"),
		// Startup orphan cleanup scans by agent_id prefix.
		index.Fields("agent_id"),
	}
}
