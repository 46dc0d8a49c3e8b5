// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/pkg/registry"
)

// Pipeline is the model entity for the Pipeline schema.
type Pipeline struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// What the content is about
	Topic string `json:"topic,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status registry.PipelineStatus `json:"status,omitempty"`
	// Frontier stage; only ever advances in stage order
	CurrentStage registry.StageName `json:"current_stage,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineQuery when eager-loading is set.
	Edges        PipelineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineEdges holds the relations/edges for other nodes in the graph.
type PipelineEdges struct {
	// Stages holds the value of the stages edge.
	Stages []*Stage `json:"stages,omitempty"`
	// Attributions holds the value of the attributions edge.
	Attributions []*Attribution `json:"attributions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StagesOrErr returns the Stages value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineEdges) StagesOrErr() ([]*Stage, error) {
	if e.loadedTypes[0] {
		return e.Stages, nil
	}
	return nil, &NotLoadedError{edge: "stages"}
}

// AttributionsOrErr returns the Attributions value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineEdges) AttributionsOrErr() ([]*Attribution, error) {
	if e.loadedTypes[1] {
		return e.Attributions, nil
	}
	return nil, &NotLoadedError{edge: "attributions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pipeline) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipeline.FieldID, pipeline.FieldTopic, pipeline.FieldDescription, pipeline.FieldStatus, pipeline.FieldCurrentStage:
			values[i] = new(sql.NullString)
		case pipeline.FieldCreatedAt, pipeline.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pipeline fields.
func (_m *Pipeline) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipeline.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipeline.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case pipeline.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case pipeline.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = registry.PipelineStatus(value.String)
			}
		case pipeline.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = registry.StageName(value.String)
			}
		case pipeline.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipeline.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pipeline.
// This includes values selected through modifiers, order, etc.
func (_m *Pipeline) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStages queries the "stages" edge of the Pipeline entity.
func (_m *Pipeline) QueryStages() *StageQuery {
	return NewPipelineClient(_m.config).QueryStages(_m)
}

// QueryAttributions queries the "attributions" edge of the Pipeline entity.
func (_m *Pipeline) QueryAttributions() *AttributionQuery {
	return NewPipelineClient(_m.config).QueryAttributions(_m)
}

// Update returns a builder for updating this Pipeline.
// Note that you need to call Pipeline.Unwrap() before calling this method if this Pipeline
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pipeline) Update() *PipelineUpdateOne {
	return NewPipelineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pipeline entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pipeline) Unwrap() *Pipeline {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pipeline is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pipeline) String() string {
	var builder strings.Builder
	builder.WriteString("Pipeline(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStage))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Pipelines is a parsable slice of Pipeline.
type Pipelines []*Pipeline
