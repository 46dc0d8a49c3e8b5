// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/ent/predicate"
	"github.com/crewcast/crewcast/ent/stage"
	"github.com/crewcast/crewcast/pkg/registry"
)

// PipelineUpdate is the builder for updating Pipeline entities.
type PipelineUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineMutation
}

// Where appends a list predicates to the PipelineUpdate builder.
func (_u *PipelineUpdate) Where(ps ...predicate.Pipeline) *PipelineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PipelineUpdate) SetTopic(v string) *PipelineUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableTopic(v *string) *PipelineUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PipelineUpdate) SetDescription(v string) *PipelineUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableDescription(v *string) *PipelineUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PipelineUpdate) ClearDescription() *PipelineUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineUpdate) SetStatus(v registry.PipelineStatus) *PipelineUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableStatus(v *registry.PipelineStatus) *PipelineUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *PipelineUpdate) SetCurrentStage(v registry.StageName) *PipelineUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableCurrentStage(v *registry.StageName) *PipelineUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineUpdate) SetUpdatedAt(v time.Time) *PipelineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *PipelineUpdate) AddStageIDs(ids ...string) *PipelineUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *PipelineUpdate) AddStages(v ...*Stage) *PipelineUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_u *PipelineUpdate) AddAttributionIDs(ids ...string) *PipelineUpdate {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_u *PipelineUpdate) AddAttributions(v ...*Attribution) *PipelineUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// Mutation returns the PipelineMutation object of the builder.
func (_u *PipelineUpdate) Mutation() *PipelineMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *PipelineUpdate) ClearStages() *PipelineUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *PipelineUpdate) RemoveStageIDs(ids ...string) *PipelineUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *PipelineUpdate) RemoveStages(v ...*Stage) *PipelineUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearAttributions clears all "attributions" edges to the Attribution entity.
func (_u *PipelineUpdate) ClearAttributions() *PipelineUpdate {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to Attribution entities by IDs.
func (_u *PipelineUpdate) RemoveAttributionIDs(ids ...string) *PipelineUpdate {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to Attribution entities.
func (_u *PipelineUpdate) RemoveAttributions(v ...*Attribution) *PipelineUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipeline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := pipeline.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Pipeline.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipeline.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Pipeline.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := pipeline.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Pipeline.current_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipeline.Table, pipeline.Columns, sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(pipeline.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pipeline.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pipeline.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipeline.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(pipeline.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipeline.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.AttributionsTable,
			Columns: []string{pipeline.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributionsIDs(); len(nodes) > 0 && !_u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.AttributionsTable,
			Columns: []string{pipeline.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.AttributionsTable,
			Columns: []string{pipeline.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineUpdateOne is the builder for updating a single Pipeline entity.
type PipelineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineMutation
}

// SetTopic sets the "topic" field.
func (_u *PipelineUpdateOne) SetTopic(v string) *PipelineUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableTopic(v *string) *PipelineUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PipelineUpdateOne) SetDescription(v string) *PipelineUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableDescription(v *string) *PipelineUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PipelineUpdateOne) ClearDescription() *PipelineUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineUpdateOne) SetStatus(v registry.PipelineStatus) *PipelineUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableStatus(v *registry.PipelineStatus) *PipelineUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *PipelineUpdateOne) SetCurrentStage(v registry.StageName) *PipelineUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableCurrentStage(v *registry.StageName) *PipelineUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineUpdateOne) SetUpdatedAt(v time.Time) *PipelineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *PipelineUpdateOne) AddStageIDs(ids ...string) *PipelineUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *PipelineUpdateOne) AddStages(v ...*Stage) *PipelineUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_u *PipelineUpdateOne) AddAttributionIDs(ids ...string) *PipelineUpdateOne {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_u *PipelineUpdateOne) AddAttributions(v ...*Attribution) *PipelineUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// Mutation returns the PipelineMutation object of the builder.
func (_u *PipelineUpdateOne) Mutation() *PipelineMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *PipelineUpdateOne) ClearStages() *PipelineUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *PipelineUpdateOne) RemoveStageIDs(ids ...string) *PipelineUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *PipelineUpdateOne) RemoveStages(v ...*Stage) *PipelineUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearAttributions clears all "attributions" edges to the Attribution entity.
func (_u *PipelineUpdateOne) ClearAttributions() *PipelineUpdateOne {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to Attribution entities by IDs.
func (_u *PipelineUpdateOne) RemoveAttributionIDs(ids ...string) *PipelineUpdateOne {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to Attribution entities.
func (_u *PipelineUpdateOne) RemoveAttributions(v ...*Attribution) *PipelineUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// Where appends a list predicates to the PipelineUpdate builder.
func (_u *PipelineUpdateOne) Where(ps ...predicate.Pipeline) *PipelineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineUpdateOne) Select(field string, fields ...string) *PipelineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pipeline entity.
func (_u *PipelineUpdateOne) Save(ctx context.Context) (*Pipeline, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineUpdateOne) SaveX(ctx context.Context) *Pipeline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipeline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := pipeline.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Pipeline.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipeline.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Pipeline.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := pipeline.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Pipeline.current_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineUpdateOne) sqlSave(ctx context.Context) (_node *Pipeline, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipeline.Table, pipeline.Columns, sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pipeline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipeline.FieldID)
		for _, f := range fields {
			if !pipeline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipeline.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(pipeline.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pipeline.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pipeline.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipeline.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(pipeline.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipeline.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.AttributionsTable,
			Columns: []string{pipeline.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributionsIDs(); len(nodes) > 0 && !_u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.AttributionsTable,
			Columns: []string{pipeline.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.AttributionsTable,
			Columns: []string{pipeline.AttributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pipeline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
