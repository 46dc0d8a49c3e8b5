// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/predicate"
	"github.com/crewcast/crewcast/ent/stage"
	"github.com/crewcast/crewcast/pkg/registry"
)

// StageUpdate is the builder for updating Stage entities.
type StageUpdate struct {
	config
	hooks    []Hook
	mutation *StageMutation
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdate) Where(ps ...predicate.Stage) *StageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageUpdate) SetStatus(v registry.StageStatus) *StageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStatus(v *registry.StageStatus) *StageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StageUpdate) SetAgentID(v string) *StageUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StageUpdate) SetNillableAgentID(v *string) *StageUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *StageUpdate) ClearAgentID() *StageUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *StageUpdate) SetAgentName(v string) *StageUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *StageUpdate) SetNillableAgentName(v *string) *StageUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *StageUpdate) ClearAgentName() *StageUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StageUpdate) SetOutput(v json.RawMessage) *StageUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *StageUpdate) AppendOutput(v json.RawMessage) *StageUpdate {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StageUpdate) ClearOutput() *StageUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *StageUpdate) SetArtifacts(v []string) *StageUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *StageUpdate) AppendArtifacts(v []string) *StageUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *StageUpdate) ClearArtifacts() *StageUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageUpdate) SetErrorMessage(v string) *StageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageUpdate) SetNillableErrorMessage(v *string) *StageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageUpdate) ClearErrorMessage() *StageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *StageUpdate) SetClaimedAt(v time.Time) *StageUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableClaimedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *StageUpdate) ClearClaimedAt() *StageUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageUpdate) SetStartedAt(v time.Time) *StageUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableStartedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageUpdate) ClearStartedAt() *StageUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageUpdate) SetCompletedAt(v time.Time) *StageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageUpdate) SetNillableCompletedAt(v *time.Time) *StageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageUpdate) ClearCompletedAt() *StageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_u *StageUpdate) AddAttributionIDs(ids ...string) *StageUpdate {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_u *StageUpdate) AddAttributions(v ...*Attribution) *StageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdate) Mutation() *StageMutation {
	return _u.mutation
}

// ClearAttributions clears all "attributions" edges to the Attribution entity.
func (_u *StageUpdate) ClearAttributions() *StageUpdate {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to Attribution entities by IDs.
func (_u *StageUpdate) RemoveAttributionIDs(ids ...string) *StageUpdate {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to Attribution entities.
func (_u *StageUpdate) RemoveAttributions(v ...*Attribution) *StageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Stage.status": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.pipeline"`)
	}
	return nil
}

func (_u *StageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(stage.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(stage.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(stage.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(stage.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stage.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(stage.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(stage.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(stage.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(stage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(stage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stage.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.AttributionsTable,
			Columns: []string{stage.AttributionsColumn},
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
			Table:   stage.AttributionsTable,
			Columns: []string{stage.AttributionsColumn},
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
			Table:   stage.AttributionsTable,
			Columns: []string{stage.AttributionsColumn},
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
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageUpdateOne is the builder for updating a single Stage entity.
type StageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageMutation
}

// SetStatus sets the "status" field.
func (_u *StageUpdateOne) SetStatus(v registry.StageStatus) *StageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStatus(v *registry.StageStatus) *StageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StageUpdateOne) SetAgentID(v string) *StageUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableAgentID(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *StageUpdateOne) ClearAgentID() *StageUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *StageUpdateOne) SetAgentName(v string) *StageUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableAgentName(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *StageUpdateOne) ClearAgentName() *StageUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StageUpdateOne) SetOutput(v json.RawMessage) *StageUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *StageUpdateOne) AppendOutput(v json.RawMessage) *StageUpdateOne {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StageUpdateOne) ClearOutput() *StageUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *StageUpdateOne) SetArtifacts(v []string) *StageUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *StageUpdateOne) AppendArtifacts(v []string) *StageUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *StageUpdateOne) ClearArtifacts() *StageUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageUpdateOne) SetErrorMessage(v string) *StageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableErrorMessage(v *string) *StageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageUpdateOne) ClearErrorMessage() *StageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *StageUpdateOne) SetClaimedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableClaimedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *StageUpdateOne) ClearClaimedAt() *StageUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageUpdateOne) SetStartedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableStartedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageUpdateOne) ClearStartedAt() *StageUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageUpdateOne) SetCompletedAt(v time.Time) *StageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageUpdateOne) SetNillableCompletedAt(v *time.Time) *StageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageUpdateOne) ClearCompletedAt() *StageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by IDs.
func (_u *StageUpdateOne) AddAttributionIDs(ids ...string) *StageUpdateOne {
	_u.mutation.AddAttributionIDs(ids...)
	return _u
}

// AddAttributions adds the "attributions" edges to the Attribution entity.
func (_u *StageUpdateOne) AddAttributions(v ...*Attribution) *StageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributionIDs(ids...)
}

// Mutation returns the StageMutation object of the builder.
func (_u *StageUpdateOne) Mutation() *StageMutation {
	return _u.mutation
}

// ClearAttributions clears all "attributions" edges to the Attribution entity.
func (_u *StageUpdateOne) ClearAttributions() *StageUpdateOne {
	_u.mutation.ClearAttributions()
	return _u
}

// RemoveAttributionIDs removes the "attributions" edge to Attribution entities by IDs.
func (_u *StageUpdateOne) RemoveAttributionIDs(ids ...string) *StageUpdateOne {
	_u.mutation.RemoveAttributionIDs(ids...)
	return _u
}

// RemoveAttributions removes "attributions" edges to Attribution entities.
func (_u *StageUpdateOne) RemoveAttributions(v ...*Attribution) *StageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributionIDs(ids...)
}

// Where appends a list predicates to the StageUpdate builder.
func (_u *StageUpdateOne) Where(ps ...predicate.Stage) *StageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageUpdateOne) Select(field string, fields ...string) *StageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stage entity.
func (_u *StageUpdateOne) Save(ctx context.Context) (*Stage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageUpdateOne) SaveX(ctx context.Context) *Stage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Stage.status": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stage.pipeline"`)
	}
	return nil
}

func (_u *StageUpdateOne) sqlSave(ctx context.Context) (_node *Stage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stage.Table, stage.Columns, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stage.FieldID)
		for _, f := range fields {
			if !stage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stage.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(stage.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(stage.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(stage.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(stage.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stage.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(stage.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(stage.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stage.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(stage.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(stage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(stage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stage.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stage.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stage.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AttributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.AttributionsTable,
			Columns: []string{stage.AttributionsColumn},
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
			Table:   stage.AttributionsTable,
			Columns: []string{stage.AttributionsColumn},
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
			Table:   stage.AttributionsTable,
			Columns: []string{stage.AttributionsColumn},
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
	_node = &Stage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
