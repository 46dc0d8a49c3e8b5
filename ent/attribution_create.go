// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/ent/stage"
	"github.com/crewcast/crewcast/pkg/registry"
)

// AttributionCreate is the builder for creating a Attribution entity.
type AttributionCreate struct {
	config
	mutation *AttributionMutation
	hooks    []Hook
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *AttributionCreate) SetPipelineID(v string) *AttributionCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *AttributionCreate) SetStageID(v string) *AttributionCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *AttributionCreate) SetStageName(v registry.StageName) *AttributionCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *AttributionCreate) SetAgentID(v string) *AttributionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AttributionCreate) SetAgentName(v string) *AttributionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *AttributionCreate) SetPercentage(v int) *AttributionCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttributionCreate) SetCreatedAt(v time.Time) *AttributionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttributionCreate) SetNillableCreatedAt(v *time.Time) *AttributionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttributionCreate) SetID(v string) *AttributionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_c *AttributionCreate) SetPipeline(v *Pipeline) *AttributionCreate {
	return _c.SetPipelineID(v.ID)
}

// SetStage sets the "stage" edge to the Stage entity.
func (_c *AttributionCreate) SetStage(v *Stage) *AttributionCreate {
	return _c.SetStageID(v.ID)
}

// Mutation returns the AttributionMutation object of the builder.
func (_c *AttributionCreate) Mutation() *AttributionMutation {
	return _c.mutation
}

// Save creates the Attribution in the database.
func (_c *AttributionCreate) Save(ctx context.Context) (*Attribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttributionCreate) SaveX(ctx context.Context) *Attribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttributionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attribution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttributionCreate) check() error {
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`ent: missing required field "Attribution.pipeline_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "Attribution.stage_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "Attribution.stage_name"`)}
	}
	if v, ok := _c.mutation.StageName(); ok {
		if err := attribution.StageNameValidator(v); err != nil {
			return &ValidationError{Name: "stage_name", err: fmt.Errorf(`ent: validator failed for field "Attribution.stage_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Attribution.agent_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Attribution.agent_name"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "Attribution.percentage"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attribution.created_at"`)}
	}
	if len(_c.mutation.PipelineIDs()) == 0 {
		return &ValidationError{Name: "pipeline", err: errors.New(`ent: missing required edge "Attribution.pipeline"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "Attribution.stage"`)}
	}
	return nil
}

func (_c *AttributionCreate) sqlSave(ctx context.Context) (*Attribution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Attribution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttributionCreate) createSpec() (*Attribution, *sqlgraph.CreateSpec) {
	var (
		_node = &Attribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attribution.Table, sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(attribution.FieldStageName, field.TypeEnum, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(attribution.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(attribution.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(attribution.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attribution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attribution.PipelineTable,
			Columns: []string{attribution.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PipelineID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attribution.StageTable,
			Columns: []string{attribution.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttributionCreateBulk is the builder for creating many Attribution entities in bulk.
type AttributionCreateBulk struct {
	config
	err      error
	builders []*AttributionCreate
}

// Save creates the Attribution entities in the database.
func (_c *AttributionCreateBulk) Save(ctx context.Context) ([]*Attribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttributionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttributionCreateBulk) SaveX(ctx context.Context) []*Attribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
