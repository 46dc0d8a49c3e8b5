// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/predicate"
)

// AttributionUpdate is the builder for updating Attribution entities.
type AttributionUpdate struct {
	config
	hooks    []Hook
	mutation *AttributionMutation
}

// Where appends a list predicates to the AttributionUpdate builder.
func (_u *AttributionUpdate) Where(ps ...predicate.Attribution) *AttributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AttributionMutation object of the builder.
func (_u *AttributionUpdate) Mutation() *AttributionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttributionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttributionUpdate) check() error {
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.pipeline"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.stage"`)
	}
	return nil
}

func (_u *AttributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attribution.Table, attribution.Columns, sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttributionUpdateOne is the builder for updating a single Attribution entity.
type AttributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttributionMutation
}

// Mutation returns the AttributionMutation object of the builder.
func (_u *AttributionUpdateOne) Mutation() *AttributionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttributionUpdate builder.
func (_u *AttributionUpdateOne) Where(ps ...predicate.Attribution) *AttributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttributionUpdateOne) Select(field string, fields ...string) *AttributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attribution entity.
func (_u *AttributionUpdateOne) Save(ctx context.Context) (*Attribution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttributionUpdateOne) SaveX(ctx context.Context) *Attribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttributionUpdateOne) check() error {
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.pipeline"`)
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attribution.stage"`)
	}
	return nil
}

func (_u *AttributionUpdateOne) sqlSave(ctx context.Context) (_node *Attribution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attribution.Table, attribution.Columns, sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attribution.FieldID)
		for _, f := range fields {
			if !attribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attribution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &Attribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
