// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/ent/schema"
	"github.com/crewcast/crewcast/ent/stage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attributionFields := schema.Attribution{}.Fields()
	_ = attributionFields
	// attributionDescCreatedAt is the schema descriptor for created_at field.
	attributionDescCreatedAt := attributionFields[7].Descriptor()
	// attribution.DefaultCreatedAt holds the default value on creation for the created_at field.
	attribution.DefaultCreatedAt = attributionDescCreatedAt.Default.(func() time.Time)
	pipelineFields := schema.Pipeline{}.Fields()
	_ = pipelineFields
	// pipelineDescTopic is the schema descriptor for topic field.
	pipelineDescTopic := pipelineFields[1].Descriptor()
	// pipeline.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	pipeline.TopicValidator = pipelineDescTopic.Validators[0].(func(string) error)
	// pipelineDescCreatedAt is the schema descriptor for created_at field.
	pipelineDescCreatedAt := pipelineFields[5].Descriptor()
	// pipeline.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipeline.DefaultCreatedAt = pipelineDescCreatedAt.Default.(func() time.Time)
	// pipelineDescUpdatedAt is the schema descriptor for updated_at field.
	pipelineDescUpdatedAt := pipelineFields[6].Descriptor()
	// pipeline.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipeline.DefaultUpdatedAt = pipelineDescUpdatedAt.Default.(func() time.Time)
	// pipeline.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipeline.UpdateDefaultUpdatedAt = pipelineDescUpdatedAt.UpdateDefault.(func() time.Time)
	stageFields := schema.Stage{}.Fields()
	_ = stageFields
	// stageDescCreatedAt is the schema descriptor for created_at field.
	stageDescCreatedAt := stageFields[12].Descriptor()
	// stage.DefaultCreatedAt holds the default value on creation for the created_at field.
	stage.DefaultCreatedAt = stageDescCreatedAt.Default.(func() time.Time)
}
