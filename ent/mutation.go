// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewcast/crewcast/ent/attribution"
	"github.com/crewcast/crewcast/ent/pipeline"
	"github.com/crewcast/crewcast/ent/predicate"
	"github.com/crewcast/crewcast/ent/stage"
	"github.com/crewcast/crewcast/pkg/registry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttribution = "Attribution"
	TypePipeline    = "Pipeline"
	TypeStage       = "Stage"
)

// AttributionMutation represents an operation that mutates the Attribution nodes in the graph.
type AttributionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	stage_name      *registry.StageName
	agent_id        *string
	agent_name      *string
	percentage      *int
	addpercentage   *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	pipeline        *string
	clearedpipeline bool
	stage           *string
	clearedstage    bool
	done            bool
	oldValue        func(context.Context) (*Attribution, error)
	predicates      []predicate.Attribution
}

var _ ent.Mutation = (*AttributionMutation)(nil)

// attributionOption allows management of the mutation configuration using functional options.
type attributionOption func(*AttributionMutation)

// newAttributionMutation creates new mutation for the Attribution entity.
func newAttributionMutation(c config, op Op, opts ...attributionOption) *AttributionMutation {
	m := &AttributionMutation{
		config:        c,
		op:            op,
		typ:           TypeAttribution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttributionID sets the ID field of the mutation.
func withAttributionID(id string) attributionOption {
	return func(m *AttributionMutation) {
		var (
			err   error
			once  sync.Once
			value *Attribution
		)
		m.oldValue = func(ctx context.Context) (*Attribution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attribution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttribution sets the old Attribution of the mutation.
func withAttribution(node *Attribution) attributionOption {
	return func(m *AttributionMutation) {
		m.oldValue = func(context.Context) (*Attribution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttributionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttributionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attribution entities.
func (m *AttributionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttributionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttributionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attribution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineID sets the "pipeline_id" field.
func (m *AttributionMutation) SetPipelineID(s string) {
	m.pipeline = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *AttributionMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldPipelineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *AttributionMutation) ResetPipelineID() {
	m.pipeline = nil
}

// SetStageID sets the "stage_id" field.
func (m *AttributionMutation) SetStageID(s string) {
	m.stage = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *AttributionMutation) StageID() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *AttributionMutation) ResetStageID() {
	m.stage = nil
}

// SetStageName sets the "stage_name" field.
func (m *AttributionMutation) SetStageName(rn registry.StageName) {
	m.stage_name = &rn
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *AttributionMutation) StageName() (r registry.StageName, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldStageName(ctx context.Context) (v registry.StageName, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *AttributionMutation) ResetStageName() {
	m.stage_name = nil
}

// SetAgentID sets the "agent_id" field.
func (m *AttributionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AttributionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AttributionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AttributionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AttributionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AttributionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetPercentage sets the "percentage" field.
func (m *AttributionMutation) SetPercentage(i int) {
	m.percentage = &i
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *AttributionMutation) Percentage() (r int, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds i to the "percentage" field.
func (m *AttributionMutation) AddPercentage(i int) {
	if m.addpercentage != nil {
		*m.addpercentage += i
	} else {
		m.addpercentage = &i
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *AttributionMutation) AddedPercentage() (r int, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *AttributionMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttributionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttributionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attribution entity.
// If the Attribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttributionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (m *AttributionMutation) ClearPipeline() {
	m.clearedpipeline = true
	m.clearedFields[attribution.FieldPipelineID] = struct{}{}
}

// PipelineCleared reports if the "pipeline" edge to the Pipeline entity was cleared.
func (m *AttributionMutation) PipelineCleared() bool {
	return m.clearedpipeline
}

// PipelineIDs returns the "pipeline" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PipelineID instead. It exists only for internal usage by the builders.
func (m *AttributionMutation) PipelineIDs() (ids []string) {
	if id := m.pipeline; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPipeline resets all changes to the "pipeline" edge.
func (m *AttributionMutation) ResetPipeline() {
	m.pipeline = nil
	m.clearedpipeline = false
}

// ClearStage clears the "stage" edge to the Stage entity.
func (m *AttributionMutation) ClearStage() {
	m.clearedstage = true
	m.clearedFields[attribution.FieldStageID] = struct{}{}
}

// StageCleared reports if the "stage" edge to the Stage entity was cleared.
func (m *AttributionMutation) StageCleared() bool {
	return m.clearedstage
}

// StageIDs returns the "stage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageID instead. It exists only for internal usage by the builders.
func (m *AttributionMutation) StageIDs() (ids []string) {
	if id := m.stage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStage resets all changes to the "stage" edge.
func (m *AttributionMutation) ResetStage() {
	m.stage = nil
	m.clearedstage = false
}

// Where appends a list predicates to the AttributionMutation builder.
func (m *AttributionMutation) Where(ps ...predicate.Attribution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttributionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttributionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attribution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttributionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttributionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attribution).
func (m *AttributionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttributionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.pipeline != nil {
		fields = append(fields, attribution.FieldPipelineID)
	}
	if m.stage != nil {
		fields = append(fields, attribution.FieldStageID)
	}
	if m.stage_name != nil {
		fields = append(fields, attribution.FieldStageName)
	}
	if m.agent_id != nil {
		fields = append(fields, attribution.FieldAgentID)
	}
	if m.agent_name != nil {
		fields = append(fields, attribution.FieldAgentName)
	}
	if m.percentage != nil {
		fields = append(fields, attribution.FieldPercentage)
	}
	if m.created_at != nil {
		fields = append(fields, attribution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttributionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attribution.FieldPipelineID:
		return m.PipelineID()
	case attribution.FieldStageID:
		return m.StageID()
	case attribution.FieldStageName:
		return m.StageName()
	case attribution.FieldAgentID:
		return m.AgentID()
	case attribution.FieldAgentName:
		return m.AgentName()
	case attribution.FieldPercentage:
		return m.Percentage()
	case attribution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttributionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attribution.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case attribution.FieldStageID:
		return m.OldStageID(ctx)
	case attribution.FieldStageName:
		return m.OldStageName(ctx)
	case attribution.FieldAgentID:
		return m.OldAgentID(ctx)
	case attribution.FieldAgentName:
		return m.OldAgentName(ctx)
	case attribution.FieldPercentage:
		return m.OldPercentage(ctx)
	case attribution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attribution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttributionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attribution.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case attribution.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case attribution.FieldStageName:
		v, ok := value.(registry.StageName)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case attribution.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case attribution.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case attribution.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case attribution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attribution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttributionMutation) AddedFields() []string {
	var fields []string
	if m.addpercentage != nil {
		fields = append(fields, attribution.FieldPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttributionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attribution.FieldPercentage:
		return m.AddedPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttributionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attribution.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown Attribution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttributionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttributionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttributionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attribution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttributionMutation) ResetField(name string) error {
	switch name {
	case attribution.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case attribution.FieldStageID:
		m.ResetStageID()
		return nil
	case attribution.FieldStageName:
		m.ResetStageName()
		return nil
	case attribution.FieldAgentID:
		m.ResetAgentID()
		return nil
	case attribution.FieldAgentName:
		m.ResetAgentName()
		return nil
	case attribution.FieldPercentage:
		m.ResetPercentage()
		return nil
	case attribution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attribution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttributionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.pipeline != nil {
		edges = append(edges, attribution.EdgePipeline)
	}
	if m.stage != nil {
		edges = append(edges, attribution.EdgeStage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttributionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attribution.EdgePipeline:
		if id := m.pipeline; id != nil {
			return []ent.Value{*id}
		}
	case attribution.EdgeStage:
		if id := m.stage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttributionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttributionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttributionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpipeline {
		edges = append(edges, attribution.EdgePipeline)
	}
	if m.clearedstage {
		edges = append(edges, attribution.EdgeStage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttributionMutation) EdgeCleared(name string) bool {
	switch name {
	case attribution.EdgePipeline:
		return m.clearedpipeline
	case attribution.EdgeStage:
		return m.clearedstage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttributionMutation) ClearEdge(name string) error {
	switch name {
	case attribution.EdgePipeline:
		m.ClearPipeline()
		return nil
	case attribution.EdgeStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown Attribution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttributionMutation) ResetEdge(name string) error {
	switch name {
	case attribution.EdgePipeline:
		m.ResetPipeline()
		return nil
	case attribution.EdgeStage:
		m.ResetStage()
		return nil
	}
	return fmt.Errorf("unknown Attribution edge %s", name)
}

// PipelineMutation represents an operation that mutates the Pipeline nodes in the graph.
type PipelineMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	topic               *string
	description         *string
	status              *registry.PipelineStatus
	current_stage       *registry.StageName
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	stages              map[string]struct{}
	removedstages       map[string]struct{}
	clearedstages       bool
	attributions        map[string]struct{}
	removedattributions map[string]struct{}
	clearedattributions bool
	done                bool
	oldValue            func(context.Context) (*Pipeline, error)
	predicates          []predicate.Pipeline
}

var _ ent.Mutation = (*PipelineMutation)(nil)

// pipelineOption allows management of the mutation configuration using functional options.
type pipelineOption func(*PipelineMutation)

// newPipelineMutation creates new mutation for the Pipeline entity.
func newPipelineMutation(c config, op Op, opts ...pipelineOption) *PipelineMutation {
	m := &PipelineMutation{
		config:        c,
		op:            op,
		typ:           TypePipeline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineID sets the ID field of the mutation.
func withPipelineID(id string) pipelineOption {
	return func(m *PipelineMutation) {
		var (
			err   error
			once  sync.Once
			value *Pipeline
		)
		m.oldValue = func(ctx context.Context) (*Pipeline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pipeline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipeline sets the old Pipeline of the mutation.
func withPipeline(node *Pipeline) pipelineOption {
	return func(m *PipelineMutation) {
		m.oldValue = func(context.Context) (*Pipeline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pipeline entities.
func (m *PipelineMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pipeline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *PipelineMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PipelineMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PipelineMutation) ResetTopic() {
	m.topic = nil
}

// SetDescription sets the "description" field.
func (m *PipelineMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PipelineMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PipelineMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pipeline.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PipelineMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pipeline.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PipelineMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pipeline.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *PipelineMutation) SetStatus(rs registry.PipelineStatus) {
	m.status = &rs
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineMutation) Status() (r registry.PipelineStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldStatus(ctx context.Context) (v registry.PipelineStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *PipelineMutation) SetCurrentStage(rn registry.StageName) {
	m.current_stage = &rn
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *PipelineMutation) CurrentStage() (r registry.StageName, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldCurrentStage(ctx context.Context) (v registry.StageName, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *PipelineMutation) ResetCurrentStage() {
	m.current_stage = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStageIDs adds the "stages" edge to the Stage entity by ids.
func (m *PipelineMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the Stage entity.
func (m *PipelineMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the Stage entity was cleared.
func (m *PipelineMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the Stage entity by IDs.
func (m *PipelineMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the Stage entity.
func (m *PipelineMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *PipelineMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *PipelineMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by ids.
func (m *PipelineMutation) AddAttributionIDs(ids ...string) {
	if m.attributions == nil {
		m.attributions = make(map[string]struct{})
	}
	for i := range ids {
		m.attributions[ids[i]] = struct{}{}
	}
}

// ClearAttributions clears the "attributions" edge to the Attribution entity.
func (m *PipelineMutation) ClearAttributions() {
	m.clearedattributions = true
}

// AttributionsCleared reports if the "attributions" edge to the Attribution entity was cleared.
func (m *PipelineMutation) AttributionsCleared() bool {
	return m.clearedattributions
}

// RemoveAttributionIDs removes the "attributions" edge to the Attribution entity by IDs.
func (m *PipelineMutation) RemoveAttributionIDs(ids ...string) {
	if m.removedattributions == nil {
		m.removedattributions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attributions, ids[i])
		m.removedattributions[ids[i]] = struct{}{}
	}
}

// RemovedAttributions returns the removed IDs of the "attributions" edge to the Attribution entity.
func (m *PipelineMutation) RemovedAttributionsIDs() (ids []string) {
	for id := range m.removedattributions {
		ids = append(ids, id)
	}
	return
}

// AttributionsIDs returns the "attributions" edge IDs in the mutation.
func (m *PipelineMutation) AttributionsIDs() (ids []string) {
	for id := range m.attributions {
		ids = append(ids, id)
	}
	return
}

// ResetAttributions resets all changes to the "attributions" edge.
func (m *PipelineMutation) ResetAttributions() {
	m.attributions = nil
	m.clearedattributions = false
	m.removedattributions = nil
}

// Where appends a list predicates to the PipelineMutation builder.
func (m *PipelineMutation) Where(ps ...predicate.Pipeline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pipeline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pipeline).
func (m *PipelineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.topic != nil {
		fields = append(fields, pipeline.FieldTopic)
	}
	if m.description != nil {
		fields = append(fields, pipeline.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, pipeline.FieldStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, pipeline.FieldCurrentStage)
	}
	if m.created_at != nil {
		fields = append(fields, pipeline.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipeline.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipeline.FieldTopic:
		return m.Topic()
	case pipeline.FieldDescription:
		return m.Description()
	case pipeline.FieldStatus:
		return m.Status()
	case pipeline.FieldCurrentStage:
		return m.CurrentStage()
	case pipeline.FieldCreatedAt:
		return m.CreatedAt()
	case pipeline.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipeline.FieldTopic:
		return m.OldTopic(ctx)
	case pipeline.FieldDescription:
		return m.OldDescription(ctx)
	case pipeline.FieldStatus:
		return m.OldStatus(ctx)
	case pipeline.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case pipeline.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipeline.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pipeline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipeline.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case pipeline.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pipeline.FieldStatus:
		v, ok := value.(registry.PipelineStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipeline.FieldCurrentStage:
		v, ok := value.(registry.StageName)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case pipeline.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipeline.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipeline.FieldDescription) {
		fields = append(fields, pipeline.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineMutation) ClearField(name string) error {
	switch name {
	case pipeline.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Pipeline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineMutation) ResetField(name string) error {
	switch name {
	case pipeline.FieldTopic:
		m.ResetTopic()
		return nil
	case pipeline.FieldDescription:
		m.ResetDescription()
		return nil
	case pipeline.FieldStatus:
		m.ResetStatus()
		return nil
	case pipeline.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case pipeline.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipeline.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.stages != nil {
		edges = append(edges, pipeline.EdgeStages)
	}
	if m.attributions != nil {
		edges = append(edges, pipeline.EdgeAttributions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case pipeline.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.attributions))
		for id := range m.attributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstages != nil {
		edges = append(edges, pipeline.EdgeStages)
	}
	if m.removedattributions != nil {
		edges = append(edges, pipeline.EdgeAttributions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case pipeline.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.removedattributions))
		for id := range m.removedattributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstages {
		edges = append(edges, pipeline.EdgeStages)
	}
	if m.clearedattributions {
		edges = append(edges, pipeline.EdgeAttributions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineMutation) EdgeCleared(name string) bool {
	switch name {
	case pipeline.EdgeStages:
		return m.clearedstages
	case pipeline.EdgeAttributions:
		return m.clearedattributions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineMutation) ResetEdge(name string) error {
	switch name {
	case pipeline.EdgeStages:
		m.ResetStages()
		return nil
	case pipeline.EdgeAttributions:
		m.ResetAttributions()
		return nil
	}
	return fmt.Errorf("unknown Pipeline edge %s", name)
}

// StageMutation represents an operation that mutates the Stage nodes in the graph.
type StageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *registry.StageName
	status              *registry.StageStatus
	agent_id            *string
	agent_name          *string
	output              *json.RawMessage
	appendoutput        json.RawMessage
	artifacts           *[]string
	appendartifacts     []string
	error_message       *string
	claimed_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	pipeline            *string
	clearedpipeline     bool
	attributions        map[string]struct{}
	removedattributions map[string]struct{}
	clearedattributions bool
	done                bool
	oldValue            func(context.Context) (*Stage, error)
	predicates          []predicate.Stage
}

var _ ent.Mutation = (*StageMutation)(nil)

// stageOption allows management of the mutation configuration using functional options.
type stageOption func(*StageMutation)

// newStageMutation creates new mutation for the Stage entity.
func newStageMutation(c config, op Op, opts ...stageOption) *StageMutation {
	m := &StageMutation{
		config:        c,
		op:            op,
		typ:           TypeStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageID sets the ID field of the mutation.
func withStageID(id string) stageOption {
	return func(m *StageMutation) {
		var (
			err   error
			once  sync.Once
			value *Stage
		)
		m.oldValue = func(ctx context.Context) (*Stage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStage sets the old Stage of the mutation.
func withStage(node *Stage) stageOption {
	return func(m *StageMutation) {
		m.oldValue = func(context.Context) (*Stage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Stage entities.
func (m *StageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineID sets the "pipeline_id" field.
func (m *StageMutation) SetPipelineID(s string) {
	m.pipeline = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *StageMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldPipelineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *StageMutation) ResetPipelineID() {
	m.pipeline = nil
}

// SetName sets the "name" field.
func (m *StageMutation) SetName(rn registry.StageName) {
	m.name = &rn
}

// Name returns the value of the "name" field in the mutation.
func (m *StageMutation) Name() (r registry.StageName, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldName(ctx context.Context) (v registry.StageName, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StageMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *StageMutation) SetStatus(rs registry.StageStatus) {
	m.status = &rs
}

// Status returns the value of the "status" field in the mutation.
func (m *StageMutation) Status() (r registry.StageStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStatus(ctx context.Context) (v registry.StageStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageMutation) ResetStatus() {
	m.status = nil
}

// SetAgentID sets the "agent_id" field.
func (m *StageMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *StageMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *StageMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[stage.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *StageMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[stage.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *StageMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, stage.FieldAgentID)
}

// SetAgentName sets the "agent_name" field.
func (m *StageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *StageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldAgentName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *StageMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[stage.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *StageMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[stage.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *StageMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, stage.FieldAgentName)
}

// SetOutput sets the "output" field.
func (m *StageMutation) SetOutput(jm json.RawMessage) {
	m.output = &jm
	m.appendoutput = nil
}

// Output returns the value of the "output" field in the mutation.
func (m *StageMutation) Output() (r json.RawMessage, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// AppendOutput adds jm to the "output" field.
func (m *StageMutation) AppendOutput(jm json.RawMessage) {
	m.appendoutput = append(m.appendoutput, jm...)
}

// AppendedOutput returns the list of values that were appended to the "output" field in this mutation.
func (m *StageMutation) AppendedOutput() (json.RawMessage, bool) {
	if len(m.appendoutput) == 0 {
		return nil, false
	}
	return m.appendoutput, true
}

// ClearOutput clears the value of the "output" field.
func (m *StageMutation) ClearOutput() {
	m.output = nil
	m.appendoutput = nil
	m.clearedFields[stage.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *StageMutation) OutputCleared() bool {
	_, ok := m.clearedFields[stage.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *StageMutation) ResetOutput() {
	m.output = nil
	m.appendoutput = nil
	delete(m.clearedFields, stage.FieldOutput)
}

// SetArtifacts sets the "artifacts" field.
func (m *StageMutation) SetArtifacts(s []string) {
	m.artifacts = &s
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *StageMutation) Artifacts() (r []string, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldArtifacts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds s to the "artifacts" field.
func (m *StageMutation) AppendArtifacts(s []string) {
	m.appendartifacts = append(m.appendartifacts, s...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *StageMutation) AppendedArtifacts() ([]string, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *StageMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[stage.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *StageMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[stage.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *StageMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, stage.FieldArtifacts)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stage.FieldErrorMessage)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *StageMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *StageMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *StageMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[stage.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *StageMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[stage.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *StageMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, stage.FieldClaimedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *StageMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StageMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stage.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StageMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stage.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stage.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stage.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Stage entity.
// If the Stage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (m *StageMutation) ClearPipeline() {
	m.clearedpipeline = true
	m.clearedFields[stage.FieldPipelineID] = struct{}{}
}

// PipelineCleared reports if the "pipeline" edge to the Pipeline entity was cleared.
func (m *StageMutation) PipelineCleared() bool {
	return m.clearedpipeline
}

// PipelineIDs returns the "pipeline" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PipelineID instead. It exists only for internal usage by the builders.
func (m *StageMutation) PipelineIDs() (ids []string) {
	if id := m.pipeline; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPipeline resets all changes to the "pipeline" edge.
func (m *StageMutation) ResetPipeline() {
	m.pipeline = nil
	m.clearedpipeline = false
}

// AddAttributionIDs adds the "attributions" edge to the Attribution entity by ids.
func (m *StageMutation) AddAttributionIDs(ids ...string) {
	if m.attributions == nil {
		m.attributions = make(map[string]struct{})
	}
	for i := range ids {
		m.attributions[ids[i]] = struct{}{}
	}
}

// ClearAttributions clears the "attributions" edge to the Attribution entity.
func (m *StageMutation) ClearAttributions() {
	m.clearedattributions = true
}

// AttributionsCleared reports if the "attributions" edge to the Attribution entity was cleared.
func (m *StageMutation) AttributionsCleared() bool {
	return m.clearedattributions
}

// RemoveAttributionIDs removes the "attributions" edge to the Attribution entity by IDs.
func (m *StageMutation) RemoveAttributionIDs(ids ...string) {
	if m.removedattributions == nil {
		m.removedattributions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attributions, ids[i])
		m.removedattributions[ids[i]] = struct{}{}
	}
}

// RemovedAttributions returns the removed IDs of the "attributions" edge to the Attribution entity.
func (m *StageMutation) RemovedAttributionsIDs() (ids []string) {
	for id := range m.removedattributions {
		ids = append(ids, id)
	}
	return
}

// AttributionsIDs returns the "attributions" edge IDs in the mutation.
func (m *StageMutation) AttributionsIDs() (ids []string) {
	for id := range m.attributions {
		ids = append(ids, id)
	}
	return
}

// ResetAttributions resets all changes to the "attributions" edge.
func (m *StageMutation) ResetAttributions() {
	m.attributions = nil
	m.clearedattributions = false
	m.removedattributions = nil
}

// Where appends a list predicates to the StageMutation builder.
func (m *StageMutation) Where(ps ...predicate.Stage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stage).
func (m *StageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.pipeline != nil {
		fields = append(fields, stage.FieldPipelineID)
	}
	if m.name != nil {
		fields = append(fields, stage.FieldName)
	}
	if m.status != nil {
		fields = append(fields, stage.FieldStatus)
	}
	if m.agent_id != nil {
		fields = append(fields, stage.FieldAgentID)
	}
	if m.agent_name != nil {
		fields = append(fields, stage.FieldAgentName)
	}
	if m.output != nil {
		fields = append(fields, stage.FieldOutput)
	}
	if m.artifacts != nil {
		fields = append(fields, stage.FieldArtifacts)
	}
	if m.error_message != nil {
		fields = append(fields, stage.FieldErrorMessage)
	}
	if m.claimed_at != nil {
		fields = append(fields, stage.FieldClaimedAt)
	}
	if m.started_at != nil {
		fields = append(fields, stage.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stage.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, stage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stage.FieldPipelineID:
		return m.PipelineID()
	case stage.FieldName:
		return m.Name()
	case stage.FieldStatus:
		return m.Status()
	case stage.FieldAgentID:
		return m.AgentID()
	case stage.FieldAgentName:
		return m.AgentName()
	case stage.FieldOutput:
		return m.Output()
	case stage.FieldArtifacts:
		return m.Artifacts()
	case stage.FieldErrorMessage:
		return m.ErrorMessage()
	case stage.FieldClaimedAt:
		return m.ClaimedAt()
	case stage.FieldStartedAt:
		return m.StartedAt()
	case stage.FieldCompletedAt:
		return m.CompletedAt()
	case stage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stage.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case stage.FieldName:
		return m.OldName(ctx)
	case stage.FieldStatus:
		return m.OldStatus(ctx)
	case stage.FieldAgentID:
		return m.OldAgentID(ctx)
	case stage.FieldAgentName:
		return m.OldAgentName(ctx)
	case stage.FieldOutput:
		return m.OldOutput(ctx)
	case stage.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case stage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stage.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case stage.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Stage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stage.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case stage.FieldName:
		v, ok := value.(registry.StageName)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case stage.FieldStatus:
		v, ok := value.(registry.StageStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stage.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case stage.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case stage.FieldOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case stage.FieldArtifacts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case stage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stage.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case stage.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Stage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stage.FieldAgentID) {
		fields = append(fields, stage.FieldAgentID)
	}
	if m.FieldCleared(stage.FieldAgentName) {
		fields = append(fields, stage.FieldAgentName)
	}
	if m.FieldCleared(stage.FieldOutput) {
		fields = append(fields, stage.FieldOutput)
	}
	if m.FieldCleared(stage.FieldArtifacts) {
		fields = append(fields, stage.FieldArtifacts)
	}
	if m.FieldCleared(stage.FieldErrorMessage) {
		fields = append(fields, stage.FieldErrorMessage)
	}
	if m.FieldCleared(stage.FieldClaimedAt) {
		fields = append(fields, stage.FieldClaimedAt)
	}
	if m.FieldCleared(stage.FieldStartedAt) {
		fields = append(fields, stage.FieldStartedAt)
	}
	if m.FieldCleared(stage.FieldCompletedAt) {
		fields = append(fields, stage.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageMutation) ClearField(name string) error {
	switch name {
	case stage.FieldAgentID:
		m.ClearAgentID()
		return nil
	case stage.FieldAgentName:
		m.ClearAgentName()
		return nil
	case stage.FieldOutput:
		m.ClearOutput()
		return nil
	case stage.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case stage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stage.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case stage.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Stage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageMutation) ResetField(name string) error {
	switch name {
	case stage.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case stage.FieldName:
		m.ResetName()
		return nil
	case stage.FieldStatus:
		m.ResetStatus()
		return nil
	case stage.FieldAgentID:
		m.ResetAgentID()
		return nil
	case stage.FieldAgentName:
		m.ResetAgentName()
		return nil
	case stage.FieldOutput:
		m.ResetOutput()
		return nil
	case stage.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case stage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stage.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case stage.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Stage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.pipeline != nil {
		edges = append(edges, stage.EdgePipeline)
	}
	if m.attributions != nil {
		edges = append(edges, stage.EdgeAttributions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgePipeline:
		if id := m.pipeline; id != nil {
			return []ent.Value{*id}
		}
	case stage.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.attributions))
		for id := range m.attributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedattributions != nil {
		edges = append(edges, stage.EdgeAttributions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stage.EdgeAttributions:
		ids := make([]ent.Value, 0, len(m.removedattributions))
		for id := range m.removedattributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpipeline {
		edges = append(edges, stage.EdgePipeline)
	}
	if m.clearedattributions {
		edges = append(edges, stage.EdgeAttributions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageMutation) EdgeCleared(name string) bool {
	switch name {
	case stage.EdgePipeline:
		return m.clearedpipeline
	case stage.EdgeAttributions:
		return m.clearedattributions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageMutation) ClearEdge(name string) error {
	switch name {
	case stage.EdgePipeline:
		m.ClearPipeline()
		return nil
	}
	return fmt.Errorf("unknown Stage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageMutation) ResetEdge(name string) error {
	switch name {
	case stage.EdgePipeline:
		m.ResetPipeline()
		return nil
	case stage.EdgeAttributions:
		m.ResetAttributions()
		return nil
	}
	return fmt.Errorf("unknown Stage edge %s", name)
}
