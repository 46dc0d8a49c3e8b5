// Code generated by ent, DO NOT EDIT.

package pipeline

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/crewcast/crewcast/pkg/registry"
)

const (
	// Label holds the string label denoting the pipeline type in the database.
	Label = "pipeline"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pipeline_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStages holds the string denoting the stages edge name in mutations.
	EdgeStages = "stages"
	// EdgeAttributions holds the string denoting the attributions edge name in mutations.
	EdgeAttributions = "attributions"
	// StageFieldID holds the string denoting the ID field of the Stage.
	StageFieldID = "stage_id"
	// AttributionFieldID holds the string denoting the ID field of the Attribution.
	AttributionFieldID = "attribution_id"
	// Table holds the table name of the pipeline in the database.
	Table = "pipelines"
	// StagesTable is the table that holds the stages relation/edge.
	StagesTable = "stages"
	// StagesInverseTable is the table name for the Stage entity.
	// It exists in this package in order to avoid circular dependency with the "stage" package.
	StagesInverseTable = "stages"
	// StagesColumn is the table column denoting the stages relation/edge.
	StagesColumn = "pipeline_id"
	// AttributionsTable is the table that holds the attributions relation/edge.
	AttributionsTable = "attributions"
	// AttributionsInverseTable is the table name for the Attribution entity.
	// It exists in this package in order to avoid circular dependency with the "attribution" package.
	AttributionsInverseTable = "attributions"
	// AttributionsColumn is the table column denoting the attributions relation/edge.
	AttributionsColumn = "pipeline_id"
)

// Columns holds all SQL columns for pipeline fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldDescription,
	FieldStatus,
	FieldCurrentStage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultStatus registry.PipelineStatus = "DRAFT"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s registry.PipelineStatus) error {
	switch s.String() {
	case "DRAFT", "RUNNING", "COMPLETE", "FAILED":
		return nil
	default:
		return fmt.Errorf("pipeline: invalid enum value for status field: %q", s)
	}
}

const DefaultCurrentStage registry.StageName = "RESEARCH"

// CurrentStageValidator is a validator for the "current_stage" field enum values. It is called by the builders before save.
func CurrentStageValidator(cs registry.StageName) error {
	switch cs.String() {
	case "RESEARCH", "SCRIPT", "VOICE", "MUSIC", "VISUAL", "EDITOR", "PUBLISH":
		return nil
	default:
		return fmt.Errorf("pipeline: invalid enum value for current_stage field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Pipeline queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStagesCount orders the results by stages count.
func ByStagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStagesStep(), opts...)
	}
}

// ByStages orders the results by stages terms.
func ByStages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttributionsCount orders the results by attributions count.
func ByAttributionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttributionsStep(), opts...)
	}
}

// ByAttributions orders the results by attributions terms.
func ByAttributions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttributionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StagesInverseTable, StageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StagesTable, StagesColumn),
	)
}
func newAttributionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttributionsInverseTable, AttributionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttributionsTable, AttributionsColumn),
	)
}
