package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/crewcast/crewcast/pkg/registry"
)

// Pipeline holds the schema definition for the Pipeline entity — one
// production run from topic intake to published content.
type Pipeline struct {
	ent.Schema
}

// Fields of the Pipeline.
func (Pipeline) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pipeline_id").
			Unique().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Comment("What the content is about"),
		field.String("description").
			Optional().
			Nillable(),
		field.Enum("status").
			GoType(registry.PipelineStatus("")).
			Default(string(registry.PipelineDraft)),
		field.Enum("current_stage").
			GoType(registry.StageName("")).
			Default(string(registry.StageResearch)).
			Comment("Frontier stage; only ever advances in stage order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Pipeline.
func (Pipeline) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", Stage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attributions", Attribution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
