// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/ent/stage"
	"github.com/crewcast/crewcast/pkg/registry"
)

// Attribution is the model entity for the Attribution schema.
type Attribution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID string `json:"pipeline_id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID string `json:"stage_id,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName registry.StageName `json:"stage_name,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Static registry weight for stage_name at completion time
	Percentage int `json:"percentage,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttributionQuery when eager-loading is set.
	Edges        AttributionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttributionEdges holds the relations/edges for other nodes in the graph.
type AttributionEdges struct {
	// Pipeline holds the value of the pipeline edge.
	Pipeline *Pipeline `json:"pipeline,omitempty"`
	// Stage holds the value of the stage edge.
	Stage *Stage `json:"stage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PipelineOrErr returns the Pipeline value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttributionEdges) PipelineOrErr() (*Pipeline, error) {
	if e.Pipeline != nil {
		return e.Pipeline, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipeline.Label}
	}
	return nil, &NotLoadedError{edge: "pipeline"}
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttributionEdges) StageOrErr() (*Stage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attribution.FieldPercentage:
			values[i] = new(sql.NullInt64)
		case attribution.FieldID, attribution.FieldPipelineID, attribution.FieldStageID, attribution.FieldStageName, attribution.FieldAgentID, attribution.FieldAgentName:
			values[i] = new(sql.NullString)
		case attribution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attribution fields.
func (_m *Attribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attribution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case attribution.FieldPipelineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value.Valid {
				_m.PipelineID = value.String
			}
		case attribution.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case attribution.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = registry.StageName(value.String)
			}
		case attribution.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case attribution.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case attribution.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = int(value.Int64)
			}
		case attribution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attribution.
// This includes values selected through modifiers, order, etc.
func (_m *Attribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPipeline queries the "pipeline" edge of the Attribution entity.
func (_m *Attribution) QueryPipeline() *PipelineQuery {
	return NewAttributionClient(_m.config).QueryPipeline(_m)
}

// QueryStage queries the "stage" edge of the Attribution entity.
func (_m *Attribution) QueryStage() *StageQuery {
	return NewAttributionClient(_m.config).QueryStage(_m)
}

// Update returns a builder for updating this Attribution.
// Note that you need to call Attribution.Unwrap() before calling this method if this Attribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attribution) Update() *AttributionUpdateOne {
	return NewAttributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attribution) Unwrap() *Attribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attribution) String() string {
	var builder strings.Builder
	builder.WriteString("Attribution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pipeline_id=")
	builder.WriteString(_m.PipelineID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageName))
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Attributions is a parsable slice of Attribution.
type Attributions []*Attribution
