// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-hq/maestro/ent/checkpoint"
	"github.com/maestro-hq/maestro/ent/event"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/predicate"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
	"github.com/maestro-hq/maestro/ent/task"
	"github.com/maestro-hq/maestro/ent/tenant"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint       = "Checkpoint"
	TypeEvent            = "Event"
	TypeExecutionContext = "ExecutionContext"
	TypeFineTuningJob    = "FineTuningJob"
	TypeSession          = "Session"
	TypeSessionMetrics   = "SessionMetrics"
	TypeTask             = "Task"
	TypeTenant           = "Tenant"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op             Op
	typ            string
	id             *string
	sequence       *int
	addsequence    *int
	name           *string
	data           *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Checkpoint, error)
	predicates     []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CheckpointMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CheckpointMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CheckpointMutation) ResetSessionID() {
	m.session = nil
}

// SetSequence sets the "sequence" field.
func (m *CheckpointMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CheckpointMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CheckpointMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CheckpointMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CheckpointMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetName sets the "name" field.
func (m *CheckpointMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CheckpointMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldName(ctx context.Context) (v string, err error) {
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

// ClearName clears the value of the "name" field.
func (m *CheckpointMutation) ClearName() {
	m.name = nil
	m.clearedFields[checkpoint.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *CheckpointMutation) NameCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *CheckpointMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, checkpoint.FieldName)
}

// SetData sets the "data" field.
func (m *CheckpointMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *CheckpointMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *CheckpointMutation) ClearData() {
	m.data = nil
	m.clearedFields[checkpoint.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *CheckpointMutation) DataCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *CheckpointMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, checkpoint.FieldData)
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *CheckpointMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[checkpoint.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *CheckpointMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CheckpointMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, checkpoint.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, checkpoint.FieldSequence)
	}
	if m.name != nil {
		fields = append(fields, checkpoint.FieldName)
	}
	if m.data != nil {
		fields = append(fields, checkpoint.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSessionID:
		return m.SessionID()
	case checkpoint.FieldSequence:
		return m.Sequence()
	case checkpoint.FieldName:
		return m.Name()
	case checkpoint.FieldData:
		return m.Data()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldSessionID:
		return m.OldSessionID(ctx)
	case checkpoint.FieldSequence:
		return m.OldSequence(ctx)
	case checkpoint.FieldName:
		return m.OldName(ctx)
	case checkpoint.FieldData:
		return m.OldData(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case checkpoint.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case checkpoint.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case checkpoint.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, checkpoint.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldName) {
		fields = append(fields, checkpoint.FieldName)
	}
	if m.FieldCleared(checkpoint.FieldData) {
		fields = append(fields, checkpoint.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldName:
		m.ClearName()
		return nil
	case checkpoint.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldSessionID:
		m.ResetSessionID()
		return nil
	case checkpoint.FieldSequence:
		m.ResetSequence()
		return nil
	case checkpoint.FieldName:
		m.ResetName()
		return nil
	case checkpoint.FieldData:
		m.ResetData()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, checkpoint.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, checkpoint.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int64
	channel        *string
	event_type     *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *EventMutation) ClearSessionID() {
	m.session = nil
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *EventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
	delete(m.clearedFields, event.FieldSessionID)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.SessionIDCleared() || m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSessionID) {
		fields = append(fields, event.FieldSessionID)
	}
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ClearSessionID()
		return nil
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExecutionContextMutation represents an operation that mutates the ExecutionContext nodes in the graph.
type ExecutionContextMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_id       *string
	scope          *executioncontext.Scope
	data           *map[string]interface{}
	version        *int
	addversion     *int
	created_by     *string
	metadata       *map[string]interface{}
	history        *[]map[string]interface{}
	appendhistory  []map[string]interface{}
	expires_at     *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	tenant         *string
	clearedtenant  bool
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*ExecutionContext, error)
	predicates     []predicate.ExecutionContext
}

var _ ent.Mutation = (*ExecutionContextMutation)(nil)

// executioncontextOption allows management of the mutation configuration using functional options.
type executioncontextOption func(*ExecutionContextMutation)

// newExecutionContextMutation creates new mutation for the ExecutionContext entity.
func newExecutionContextMutation(c config, op Op, opts ...executioncontextOption) *ExecutionContextMutation {
	m := &ExecutionContextMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionContextID sets the ID field of the mutation.
func withExecutionContextID(id string) executioncontextOption {
	return func(m *ExecutionContextMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionContext
		)
		m.oldValue = func(ctx context.Context) (*ExecutionContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionContext sets the old ExecutionContext of the mutation.
func withExecutionContext(node *ExecutionContext) executioncontextOption {
	return func(m *ExecutionContextMutation) {
		m.oldValue = func(context.Context) (*ExecutionContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionContext entities.
func (m *ExecutionContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ExecutionContextMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ExecutionContextMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ExecutionContextMutation) ResetTenantID() {
	m.tenant = nil
}

// SetSessionID sets the "session_id" field.
func (m *ExecutionContextMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExecutionContextMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ExecutionContextMutation) ClearSessionID() {
	m.session = nil
	m.clearedFields[executioncontext.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ExecutionContextMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExecutionContextMutation) ResetSessionID() {
	m.session = nil
	delete(m.clearedFields, executioncontext.FieldSessionID)
}

// SetAgentID sets the "agent_id" field.
func (m *ExecutionContextMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ExecutionContextMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldAgentID(ctx context.Context) (v *string, err error) {
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
func (m *ExecutionContextMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[executioncontext.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ExecutionContextMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ExecutionContextMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, executioncontext.FieldAgentID)
}

// SetScope sets the "scope" field.
func (m *ExecutionContextMutation) SetScope(e executioncontext.Scope) {
	m.scope = &e
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ExecutionContextMutation) Scope() (r executioncontext.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldScope(ctx context.Context) (v executioncontext.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ExecutionContextMutation) ResetScope() {
	m.scope = nil
}

// SetData sets the "data" field.
func (m *ExecutionContextMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ExecutionContextMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *ExecutionContextMutation) ClearData() {
	m.data = nil
	m.clearedFields[executioncontext.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *ExecutionContextMutation) DataCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *ExecutionContextMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, executioncontext.FieldData)
}

// SetVersion sets the "version" field.
func (m *ExecutionContextMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ExecutionContextMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ExecutionContextMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ExecutionContextMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ExecutionContextMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ExecutionContextMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ExecutionContextMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ExecutionContextMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[executioncontext.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ExecutionContextMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ExecutionContextMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, executioncontext.FieldCreatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *ExecutionContextMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExecutionContextMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExecutionContextMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[executioncontext.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExecutionContextMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExecutionContextMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, executioncontext.FieldMetadata)
}

// SetHistory sets the "history" field.
func (m *ExecutionContextMutation) SetHistory(value []map[string]interface{}) {
	m.history = &value
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *ExecutionContextMutation) History() (r []map[string]interface{}, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds value to the "history" field.
func (m *ExecutionContextMutation) AppendHistory(value []map[string]interface{}) {
	m.appendhistory = append(m.appendhistory, value...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *ExecutionContextMutation) AppendedHistory() ([]map[string]interface{}, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *ExecutionContextMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[executioncontext.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *ExecutionContextMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *ExecutionContextMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, executioncontext.FieldHistory)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ExecutionContextMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ExecutionContextMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ExecutionContextMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[executioncontext.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ExecutionContextMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[executioncontext.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ExecutionContextMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, executioncontext.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExecutionContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExecutionContextMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExecutionContextMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExecutionContext entity.
// If the ExecutionContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionContextMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExecutionContextMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *ExecutionContextMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[executioncontext.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *ExecutionContextMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *ExecutionContextMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *ExecutionContextMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ExecutionContextMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[executioncontext.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ExecutionContextMutation) SessionCleared() bool {
	return m.SessionIDCleared() || m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ExecutionContextMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ExecutionContextMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ExecutionContextMutation builder.
func (m *ExecutionContextMutation) Where(ps ...predicate.ExecutionContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionContext).
func (m *ExecutionContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionContextMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant != nil {
		fields = append(fields, executioncontext.FieldTenantID)
	}
	if m.session != nil {
		fields = append(fields, executioncontext.FieldSessionID)
	}
	if m.agent_id != nil {
		fields = append(fields, executioncontext.FieldAgentID)
	}
	if m.scope != nil {
		fields = append(fields, executioncontext.FieldScope)
	}
	if m.data != nil {
		fields = append(fields, executioncontext.FieldData)
	}
	if m.version != nil {
		fields = append(fields, executioncontext.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, executioncontext.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, executioncontext.FieldMetadata)
	}
	if m.history != nil {
		fields = append(fields, executioncontext.FieldHistory)
	}
	if m.expires_at != nil {
		fields = append(fields, executioncontext.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, executioncontext.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, executioncontext.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executioncontext.FieldTenantID:
		return m.TenantID()
	case executioncontext.FieldSessionID:
		return m.SessionID()
	case executioncontext.FieldAgentID:
		return m.AgentID()
	case executioncontext.FieldScope:
		return m.Scope()
	case executioncontext.FieldData:
		return m.Data()
	case executioncontext.FieldVersion:
		return m.Version()
	case executioncontext.FieldCreatedBy:
		return m.CreatedBy()
	case executioncontext.FieldMetadata:
		return m.Metadata()
	case executioncontext.FieldHistory:
		return m.History()
	case executioncontext.FieldExpiresAt:
		return m.ExpiresAt()
	case executioncontext.FieldCreatedAt:
		return m.CreatedAt()
	case executioncontext.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executioncontext.FieldTenantID:
		return m.OldTenantID(ctx)
	case executioncontext.FieldSessionID:
		return m.OldSessionID(ctx)
	case executioncontext.FieldAgentID:
		return m.OldAgentID(ctx)
	case executioncontext.FieldScope:
		return m.OldScope(ctx)
	case executioncontext.FieldData:
		return m.OldData(ctx)
	case executioncontext.FieldVersion:
		return m.OldVersion(ctx)
	case executioncontext.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case executioncontext.FieldMetadata:
		return m.OldMetadata(ctx)
	case executioncontext.FieldHistory:
		return m.OldHistory(ctx)
	case executioncontext.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case executioncontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case executioncontext.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executioncontext.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case executioncontext.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case executioncontext.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case executioncontext.FieldScope:
		v, ok := value.(executioncontext.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case executioncontext.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case executioncontext.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case executioncontext.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case executioncontext.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case executioncontext.FieldHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case executioncontext.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case executioncontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case executioncontext.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionContextMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, executioncontext.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionContextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executioncontext.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executioncontext.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executioncontext.FieldSessionID) {
		fields = append(fields, executioncontext.FieldSessionID)
	}
	if m.FieldCleared(executioncontext.FieldAgentID) {
		fields = append(fields, executioncontext.FieldAgentID)
	}
	if m.FieldCleared(executioncontext.FieldData) {
		fields = append(fields, executioncontext.FieldData)
	}
	if m.FieldCleared(executioncontext.FieldCreatedBy) {
		fields = append(fields, executioncontext.FieldCreatedBy)
	}
	if m.FieldCleared(executioncontext.FieldMetadata) {
		fields = append(fields, executioncontext.FieldMetadata)
	}
	if m.FieldCleared(executioncontext.FieldHistory) {
		fields = append(fields, executioncontext.FieldHistory)
	}
	if m.FieldCleared(executioncontext.FieldExpiresAt) {
		fields = append(fields, executioncontext.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionContextMutation) ClearField(name string) error {
	switch name {
	case executioncontext.FieldSessionID:
		m.ClearSessionID()
		return nil
	case executioncontext.FieldAgentID:
		m.ClearAgentID()
		return nil
	case executioncontext.FieldData:
		m.ClearData()
		return nil
	case executioncontext.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case executioncontext.FieldMetadata:
		m.ClearMetadata()
		return nil
	case executioncontext.FieldHistory:
		m.ClearHistory()
		return nil
	case executioncontext.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionContextMutation) ResetField(name string) error {
	switch name {
	case executioncontext.FieldTenantID:
		m.ResetTenantID()
		return nil
	case executioncontext.FieldSessionID:
		m.ResetSessionID()
		return nil
	case executioncontext.FieldAgentID:
		m.ResetAgentID()
		return nil
	case executioncontext.FieldScope:
		m.ResetScope()
		return nil
	case executioncontext.FieldData:
		m.ResetData()
		return nil
	case executioncontext.FieldVersion:
		m.ResetVersion()
		return nil
	case executioncontext.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case executioncontext.FieldMetadata:
		m.ResetMetadata()
		return nil
	case executioncontext.FieldHistory:
		m.ResetHistory()
		return nil
	case executioncontext.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case executioncontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case executioncontext.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, executioncontext.EdgeTenant)
	}
	if m.session != nil {
		edges = append(edges, executioncontext.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executioncontext.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case executioncontext.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, executioncontext.EdgeTenant)
	}
	if m.clearedsession {
		edges = append(edges, executioncontext.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionContextMutation) EdgeCleared(name string) bool {
	switch name {
	case executioncontext.EdgeTenant:
		return m.clearedtenant
	case executioncontext.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionContextMutation) ClearEdge(name string) error {
	switch name {
	case executioncontext.EdgeTenant:
		m.ClearTenant()
		return nil
	case executioncontext.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ExecutionContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionContextMutation) ResetEdge(name string) error {
	switch name {
	case executioncontext.EdgeTenant:
		m.ResetTenant()
		return nil
	case executioncontext.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ExecutionContext edge %s", name)
}

// FineTuningJobMutation represents an operation that mutates the FineTuningJob nodes in the graph.
type FineTuningJobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	status          *finetuningjob.Status
	base_model      *string
	tuned_model     *string
	dataset_info    *map[string]interface{}
	hyperparameters *map[string]interface{}
	evaluation      *map[string]interface{}
	error_message   *string
	retry_count     *int
	addretry_count  *int
	started_at      *time.Time
	completed_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	tenant          *string
	clearedtenant   bool
	done            bool
	oldValue        func(context.Context) (*FineTuningJob, error)
	predicates      []predicate.FineTuningJob
}

var _ ent.Mutation = (*FineTuningJobMutation)(nil)

// finetuningjobOption allows management of the mutation configuration using functional options.
type finetuningjobOption func(*FineTuningJobMutation)

// newFineTuningJobMutation creates new mutation for the FineTuningJob entity.
func newFineTuningJobMutation(c config, op Op, opts ...finetuningjobOption) *FineTuningJobMutation {
	m := &FineTuningJobMutation{
		config:        c,
		op:            op,
		typ:           TypeFineTuningJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFineTuningJobID sets the ID field of the mutation.
func withFineTuningJobID(id string) finetuningjobOption {
	return func(m *FineTuningJobMutation) {
		var (
			err   error
			once  sync.Once
			value *FineTuningJob
		)
		m.oldValue = func(ctx context.Context) (*FineTuningJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FineTuningJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFineTuningJob sets the old FineTuningJob of the mutation.
func withFineTuningJob(node *FineTuningJob) finetuningjobOption {
	return func(m *FineTuningJobMutation) {
		m.oldValue = func(context.Context) (*FineTuningJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FineTuningJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FineTuningJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FineTuningJob entities.
func (m *FineTuningJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FineTuningJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FineTuningJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FineTuningJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *FineTuningJobMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *FineTuningJobMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *FineTuningJobMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *FineTuningJobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FineTuningJobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *FineTuningJobMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *FineTuningJobMutation) SetStatus(f finetuningjob.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FineTuningJobMutation) Status() (r finetuningjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldStatus(ctx context.Context) (v finetuningjob.Status, err error) {
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
func (m *FineTuningJobMutation) ResetStatus() {
	m.status = nil
}

// SetBaseModel sets the "base_model" field.
func (m *FineTuningJobMutation) SetBaseModel(s string) {
	m.base_model = &s
}

// BaseModel returns the value of the "base_model" field in the mutation.
func (m *FineTuningJobMutation) BaseModel() (r string, exists bool) {
	v := m.base_model
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseModel returns the old "base_model" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldBaseModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseModel: %w", err)
	}
	return oldValue.BaseModel, nil
}

// ResetBaseModel resets all changes to the "base_model" field.
func (m *FineTuningJobMutation) ResetBaseModel() {
	m.base_model = nil
}

// SetTunedModel sets the "tuned_model" field.
func (m *FineTuningJobMutation) SetTunedModel(s string) {
	m.tuned_model = &s
}

// TunedModel returns the value of the "tuned_model" field in the mutation.
func (m *FineTuningJobMutation) TunedModel() (r string, exists bool) {
	v := m.tuned_model
	if v == nil {
		return
	}
	return *v, true
}

// OldTunedModel returns the old "tuned_model" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldTunedModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTunedModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTunedModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTunedModel: %w", err)
	}
	return oldValue.TunedModel, nil
}

// ClearTunedModel clears the value of the "tuned_model" field.
func (m *FineTuningJobMutation) ClearTunedModel() {
	m.tuned_model = nil
	m.clearedFields[finetuningjob.FieldTunedModel] = struct{}{}
}

// TunedModelCleared returns if the "tuned_model" field was cleared in this mutation.
func (m *FineTuningJobMutation) TunedModelCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldTunedModel]
	return ok
}

// ResetTunedModel resets all changes to the "tuned_model" field.
func (m *FineTuningJobMutation) ResetTunedModel() {
	m.tuned_model = nil
	delete(m.clearedFields, finetuningjob.FieldTunedModel)
}

// SetDatasetInfo sets the "dataset_info" field.
func (m *FineTuningJobMutation) SetDatasetInfo(value map[string]interface{}) {
	m.dataset_info = &value
}

// DatasetInfo returns the value of the "dataset_info" field in the mutation.
func (m *FineTuningJobMutation) DatasetInfo() (r map[string]interface{}, exists bool) {
	v := m.dataset_info
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetInfo returns the old "dataset_info" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldDatasetInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetInfo: %w", err)
	}
	return oldValue.DatasetInfo, nil
}

// ClearDatasetInfo clears the value of the "dataset_info" field.
func (m *FineTuningJobMutation) ClearDatasetInfo() {
	m.dataset_info = nil
	m.clearedFields[finetuningjob.FieldDatasetInfo] = struct{}{}
}

// DatasetInfoCleared returns if the "dataset_info" field was cleared in this mutation.
func (m *FineTuningJobMutation) DatasetInfoCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldDatasetInfo]
	return ok
}

// ResetDatasetInfo resets all changes to the "dataset_info" field.
func (m *FineTuningJobMutation) ResetDatasetInfo() {
	m.dataset_info = nil
	delete(m.clearedFields, finetuningjob.FieldDatasetInfo)
}

// SetHyperparameters sets the "hyperparameters" field.
func (m *FineTuningJobMutation) SetHyperparameters(value map[string]interface{}) {
	m.hyperparameters = &value
}

// Hyperparameters returns the value of the "hyperparameters" field in the mutation.
func (m *FineTuningJobMutation) Hyperparameters() (r map[string]interface{}, exists bool) {
	v := m.hyperparameters
	if v == nil {
		return
	}
	return *v, true
}

// OldHyperparameters returns the old "hyperparameters" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldHyperparameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHyperparameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHyperparameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHyperparameters: %w", err)
	}
	return oldValue.Hyperparameters, nil
}

// ClearHyperparameters clears the value of the "hyperparameters" field.
func (m *FineTuningJobMutation) ClearHyperparameters() {
	m.hyperparameters = nil
	m.clearedFields[finetuningjob.FieldHyperparameters] = struct{}{}
}

// HyperparametersCleared returns if the "hyperparameters" field was cleared in this mutation.
func (m *FineTuningJobMutation) HyperparametersCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldHyperparameters]
	return ok
}

// ResetHyperparameters resets all changes to the "hyperparameters" field.
func (m *FineTuningJobMutation) ResetHyperparameters() {
	m.hyperparameters = nil
	delete(m.clearedFields, finetuningjob.FieldHyperparameters)
}

// SetEvaluation sets the "evaluation" field.
func (m *FineTuningJobMutation) SetEvaluation(value map[string]interface{}) {
	m.evaluation = &value
}

// Evaluation returns the value of the "evaluation" field in the mutation.
func (m *FineTuningJobMutation) Evaluation() (r map[string]interface{}, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluation returns the old "evaluation" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldEvaluation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluation: %w", err)
	}
	return oldValue.Evaluation, nil
}

// ClearEvaluation clears the value of the "evaluation" field.
func (m *FineTuningJobMutation) ClearEvaluation() {
	m.evaluation = nil
	m.clearedFields[finetuningjob.FieldEvaluation] = struct{}{}
}

// EvaluationCleared returns if the "evaluation" field was cleared in this mutation.
func (m *FineTuningJobMutation) EvaluationCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldEvaluation]
	return ok
}

// ResetEvaluation resets all changes to the "evaluation" field.
func (m *FineTuningJobMutation) ResetEvaluation() {
	m.evaluation = nil
	delete(m.clearedFields, finetuningjob.FieldEvaluation)
}

// SetErrorMessage sets the "error_message" field.
func (m *FineTuningJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FineTuningJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *FineTuningJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[finetuningjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FineTuningJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FineTuningJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, finetuningjob.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *FineTuningJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *FineTuningJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *FineTuningJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *FineTuningJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *FineTuningJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *FineTuningJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *FineTuningJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *FineTuningJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[finetuningjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *FineTuningJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *FineTuningJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, finetuningjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *FineTuningJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *FineTuningJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *FineTuningJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[finetuningjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *FineTuningJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[finetuningjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *FineTuningJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, finetuningjob.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FineTuningJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FineTuningJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FineTuningJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FineTuningJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FineTuningJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FineTuningJob entity.
// If the FineTuningJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FineTuningJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FineTuningJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *FineTuningJobMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[finetuningjob.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *FineTuningJobMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *FineTuningJobMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *FineTuningJobMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the FineTuningJobMutation builder.
func (m *FineTuningJobMutation) Where(ps ...predicate.FineTuningJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FineTuningJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FineTuningJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FineTuningJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FineTuningJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FineTuningJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FineTuningJob).
func (m *FineTuningJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FineTuningJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant != nil {
		fields = append(fields, finetuningjob.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, finetuningjob.FieldName)
	}
	if m.status != nil {
		fields = append(fields, finetuningjob.FieldStatus)
	}
	if m.base_model != nil {
		fields = append(fields, finetuningjob.FieldBaseModel)
	}
	if m.tuned_model != nil {
		fields = append(fields, finetuningjob.FieldTunedModel)
	}
	if m.dataset_info != nil {
		fields = append(fields, finetuningjob.FieldDatasetInfo)
	}
	if m.hyperparameters != nil {
		fields = append(fields, finetuningjob.FieldHyperparameters)
	}
	if m.evaluation != nil {
		fields = append(fields, finetuningjob.FieldEvaluation)
	}
	if m.error_message != nil {
		fields = append(fields, finetuningjob.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, finetuningjob.FieldRetryCount)
	}
	if m.started_at != nil {
		fields = append(fields, finetuningjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, finetuningjob.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, finetuningjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, finetuningjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FineTuningJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finetuningjob.FieldTenantID:
		return m.TenantID()
	case finetuningjob.FieldName:
		return m.Name()
	case finetuningjob.FieldStatus:
		return m.Status()
	case finetuningjob.FieldBaseModel:
		return m.BaseModel()
	case finetuningjob.FieldTunedModel:
		return m.TunedModel()
	case finetuningjob.FieldDatasetInfo:
		return m.DatasetInfo()
	case finetuningjob.FieldHyperparameters:
		return m.Hyperparameters()
	case finetuningjob.FieldEvaluation:
		return m.Evaluation()
	case finetuningjob.FieldErrorMessage:
		return m.ErrorMessage()
	case finetuningjob.FieldRetryCount:
		return m.RetryCount()
	case finetuningjob.FieldStartedAt:
		return m.StartedAt()
	case finetuningjob.FieldCompletedAt:
		return m.CompletedAt()
	case finetuningjob.FieldCreatedAt:
		return m.CreatedAt()
	case finetuningjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FineTuningJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finetuningjob.FieldTenantID:
		return m.OldTenantID(ctx)
	case finetuningjob.FieldName:
		return m.OldName(ctx)
	case finetuningjob.FieldStatus:
		return m.OldStatus(ctx)
	case finetuningjob.FieldBaseModel:
		return m.OldBaseModel(ctx)
	case finetuningjob.FieldTunedModel:
		return m.OldTunedModel(ctx)
	case finetuningjob.FieldDatasetInfo:
		return m.OldDatasetInfo(ctx)
	case finetuningjob.FieldHyperparameters:
		return m.OldHyperparameters(ctx)
	case finetuningjob.FieldEvaluation:
		return m.OldEvaluation(ctx)
	case finetuningjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case finetuningjob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case finetuningjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case finetuningjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case finetuningjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case finetuningjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FineTuningJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FineTuningJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finetuningjob.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case finetuningjob.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case finetuningjob.FieldStatus:
		v, ok := value.(finetuningjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case finetuningjob.FieldBaseModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseModel(v)
		return nil
	case finetuningjob.FieldTunedModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTunedModel(v)
		return nil
	case finetuningjob.FieldDatasetInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetInfo(v)
		return nil
	case finetuningjob.FieldHyperparameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHyperparameters(v)
		return nil
	case finetuningjob.FieldEvaluation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluation(v)
		return nil
	case finetuningjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case finetuningjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case finetuningjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case finetuningjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case finetuningjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case finetuningjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FineTuningJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FineTuningJobMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, finetuningjob.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FineTuningJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case finetuningjob.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FineTuningJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case finetuningjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown FineTuningJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FineTuningJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(finetuningjob.FieldTunedModel) {
		fields = append(fields, finetuningjob.FieldTunedModel)
	}
	if m.FieldCleared(finetuningjob.FieldDatasetInfo) {
		fields = append(fields, finetuningjob.FieldDatasetInfo)
	}
	if m.FieldCleared(finetuningjob.FieldHyperparameters) {
		fields = append(fields, finetuningjob.FieldHyperparameters)
	}
	if m.FieldCleared(finetuningjob.FieldEvaluation) {
		fields = append(fields, finetuningjob.FieldEvaluation)
	}
	if m.FieldCleared(finetuningjob.FieldErrorMessage) {
		fields = append(fields, finetuningjob.FieldErrorMessage)
	}
	if m.FieldCleared(finetuningjob.FieldStartedAt) {
		fields = append(fields, finetuningjob.FieldStartedAt)
	}
	if m.FieldCleared(finetuningjob.FieldCompletedAt) {
		fields = append(fields, finetuningjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FineTuningJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FineTuningJobMutation) ClearField(name string) error {
	switch name {
	case finetuningjob.FieldTunedModel:
		m.ClearTunedModel()
		return nil
	case finetuningjob.FieldDatasetInfo:
		m.ClearDatasetInfo()
		return nil
	case finetuningjob.FieldHyperparameters:
		m.ClearHyperparameters()
		return nil
	case finetuningjob.FieldEvaluation:
		m.ClearEvaluation()
		return nil
	case finetuningjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case finetuningjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case finetuningjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown FineTuningJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FineTuningJobMutation) ResetField(name string) error {
	switch name {
	case finetuningjob.FieldTenantID:
		m.ResetTenantID()
		return nil
	case finetuningjob.FieldName:
		m.ResetName()
		return nil
	case finetuningjob.FieldStatus:
		m.ResetStatus()
		return nil
	case finetuningjob.FieldBaseModel:
		m.ResetBaseModel()
		return nil
	case finetuningjob.FieldTunedModel:
		m.ResetTunedModel()
		return nil
	case finetuningjob.FieldDatasetInfo:
		m.ResetDatasetInfo()
		return nil
	case finetuningjob.FieldHyperparameters:
		m.ResetHyperparameters()
		return nil
	case finetuningjob.FieldEvaluation:
		m.ResetEvaluation()
		return nil
	case finetuningjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case finetuningjob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case finetuningjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case finetuningjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case finetuningjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case finetuningjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FineTuningJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FineTuningJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, finetuningjob.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FineTuningJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case finetuningjob.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FineTuningJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FineTuningJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FineTuningJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, finetuningjob.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FineTuningJobMutation) EdgeCleared(name string) bool {
	switch name {
	case finetuningjob.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FineTuningJobMutation) ClearEdge(name string) error {
	switch name {
	case finetuningjob.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown FineTuningJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FineTuningJobMutation) ResetEdge(name string) error {
	switch name {
	case finetuningjob.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown FineTuningJob edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	title                   *string
	description             *string
	session_type            *session.SessionType
	priority                *session.Priority
	status                  *session.Status
	status_updated_at       *time.Time
	parent_id               *string
	child_ids               *[]string
	appendchild_ids         []string
	agent_config            *map[string]interface{}
	model_config            *string
	initial_prompt          *string
	max_duration_seconds    *int
	addmax_duration_seconds *int
	cpu_limit               *float64
	addcpu_limit            *float64
	memory_limit_mb         *int
	addmemory_limit_mb      *int
	created_by              *string
	tags                    *[]string
	appendtags              []string
	metadata                *map[string]interface{}
	version                 *int
	addversion              *int
	pod_id                  *string
	last_heartbeat_at       *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	tenant                  *string
	clearedtenant           bool
	metrics                 *string
	clearedmetrics          bool
	checkpoints             map[string]struct{}
	removedcheckpoints      map[string]struct{}
	clearedcheckpoints      bool
	tasks                   map[string]struct{}
	removedtasks            map[string]struct{}
	clearedtasks            bool
	contexts                map[string]struct{}
	removedcontexts         map[string]struct{}
	clearedcontexts         bool
	events                  map[int64]struct{}
	removedevents           map[int64]struct{}
	clearedevents           bool
	done                    bool
	oldValue                func(context.Context) (*Session, error)
	predicates              []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SessionMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SessionMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SessionMutation) ResetTenantID() {
	m.tenant = nil
}

// SetTitle sets the "title" field.
func (m *SessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SessionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SessionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *SessionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[session.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SessionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[session.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SessionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, session.FieldDescription)
}

// SetSessionType sets the "session_type" field.
func (m *SessionMutation) SetSessionType(st session.SessionType) {
	m.session_type = &st
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *SessionMutation) SessionType() (r session.SessionType, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionType(ctx context.Context) (v session.SessionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *SessionMutation) ResetSessionType() {
	m.session_type = nil
}

// SetPriority sets the "priority" field.
func (m *SessionMutation) SetPriority(s session.Priority) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SessionMutation) Priority() (r session.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPriority(ctx context.Context) (v session.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *SessionMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
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
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetStatusUpdatedAt sets the "status_updated_at" field.
func (m *SessionMutation) SetStatusUpdatedAt(t time.Time) {
	m.status_updated_at = &t
}

// StatusUpdatedAt returns the value of the "status_updated_at" field in the mutation.
func (m *SessionMutation) StatusUpdatedAt() (r time.Time, exists bool) {
	v := m.status_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusUpdatedAt returns the old "status_updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatusUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusUpdatedAt: %w", err)
	}
	return oldValue.StatusUpdatedAt, nil
}

// ResetStatusUpdatedAt resets all changes to the "status_updated_at" field.
func (m *SessionMutation) ResetStatusUpdatedAt() {
	m.status_updated_at = nil
}

// SetParentID sets the "parent_id" field.
func (m *SessionMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *SessionMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *SessionMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[session.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *SessionMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[session.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *SessionMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, session.FieldParentID)
}

// SetChildIds sets the "child_ids" field.
func (m *SessionMutation) SetChildIds(s []string) {
	m.child_ids = &s
	m.appendchild_ids = nil
}

// ChildIds returns the value of the "child_ids" field in the mutation.
func (m *SessionMutation) ChildIds() (r []string, exists bool) {
	v := m.child_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldChildIds returns the old "child_ids" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldChildIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildIds: %w", err)
	}
	return oldValue.ChildIds, nil
}

// AppendChildIds adds s to the "child_ids" field.
func (m *SessionMutation) AppendChildIds(s []string) {
	m.appendchild_ids = append(m.appendchild_ids, s...)
}

// AppendedChildIds returns the list of values that were appended to the "child_ids" field in this mutation.
func (m *SessionMutation) AppendedChildIds() ([]string, bool) {
	if len(m.appendchild_ids) == 0 {
		return nil, false
	}
	return m.appendchild_ids, true
}

// ClearChildIds clears the value of the "child_ids" field.
func (m *SessionMutation) ClearChildIds() {
	m.child_ids = nil
	m.appendchild_ids = nil
	m.clearedFields[session.FieldChildIds] = struct{}{}
}

// ChildIdsCleared returns if the "child_ids" field was cleared in this mutation.
func (m *SessionMutation) ChildIdsCleared() bool {
	_, ok := m.clearedFields[session.FieldChildIds]
	return ok
}

// ResetChildIds resets all changes to the "child_ids" field.
func (m *SessionMutation) ResetChildIds() {
	m.child_ids = nil
	m.appendchild_ids = nil
	delete(m.clearedFields, session.FieldChildIds)
}

// SetAgentConfig sets the "agent_config" field.
func (m *SessionMutation) SetAgentConfig(value map[string]interface{}) {
	m.agent_config = &value
}

// AgentConfig returns the value of the "agent_config" field in the mutation.
func (m *SessionMutation) AgentConfig() (r map[string]interface{}, exists bool) {
	v := m.agent_config
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentConfig returns the old "agent_config" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAgentConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentConfig: %w", err)
	}
	return oldValue.AgentConfig, nil
}

// ClearAgentConfig clears the value of the "agent_config" field.
func (m *SessionMutation) ClearAgentConfig() {
	m.agent_config = nil
	m.clearedFields[session.FieldAgentConfig] = struct{}{}
}

// AgentConfigCleared returns if the "agent_config" field was cleared in this mutation.
func (m *SessionMutation) AgentConfigCleared() bool {
	_, ok := m.clearedFields[session.FieldAgentConfig]
	return ok
}

// ResetAgentConfig resets all changes to the "agent_config" field.
func (m *SessionMutation) ResetAgentConfig() {
	m.agent_config = nil
	delete(m.clearedFields, session.FieldAgentConfig)
}

// SetModelConfig sets the "model_config" field.
func (m *SessionMutation) SetModelConfig(s string) {
	m.model_config = &s
}

// ModelConfig returns the value of the "model_config" field in the mutation.
func (m *SessionMutation) ModelConfig() (r string, exists bool) {
	v := m.model_config
	if v == nil {
		return
	}
	return *v, true
}

// OldModelConfig returns the old "model_config" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldModelConfig(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelConfig: %w", err)
	}
	return oldValue.ModelConfig, nil
}

// ClearModelConfig clears the value of the "model_config" field.
func (m *SessionMutation) ClearModelConfig() {
	m.model_config = nil
	m.clearedFields[session.FieldModelConfig] = struct{}{}
}

// ModelConfigCleared returns if the "model_config" field was cleared in this mutation.
func (m *SessionMutation) ModelConfigCleared() bool {
	_, ok := m.clearedFields[session.FieldModelConfig]
	return ok
}

// ResetModelConfig resets all changes to the "model_config" field.
func (m *SessionMutation) ResetModelConfig() {
	m.model_config = nil
	delete(m.clearedFields, session.FieldModelConfig)
}

// SetInitialPrompt sets the "initial_prompt" field.
func (m *SessionMutation) SetInitialPrompt(s string) {
	m.initial_prompt = &s
}

// InitialPrompt returns the value of the "initial_prompt" field in the mutation.
func (m *SessionMutation) InitialPrompt() (r string, exists bool) {
	v := m.initial_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialPrompt returns the old "initial_prompt" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInitialPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialPrompt: %w", err)
	}
	return oldValue.InitialPrompt, nil
}

// ResetInitialPrompt resets all changes to the "initial_prompt" field.
func (m *SessionMutation) ResetInitialPrompt() {
	m.initial_prompt = nil
}

// SetMaxDurationSeconds sets the "max_duration_seconds" field.
func (m *SessionMutation) SetMaxDurationSeconds(i int) {
	m.max_duration_seconds = &i
	m.addmax_duration_seconds = nil
}

// MaxDurationSeconds returns the value of the "max_duration_seconds" field in the mutation.
func (m *SessionMutation) MaxDurationSeconds() (r int, exists bool) {
	v := m.max_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDurationSeconds returns the old "max_duration_seconds" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMaxDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDurationSeconds: %w", err)
	}
	return oldValue.MaxDurationSeconds, nil
}

// AddMaxDurationSeconds adds i to the "max_duration_seconds" field.
func (m *SessionMutation) AddMaxDurationSeconds(i int) {
	if m.addmax_duration_seconds != nil {
		*m.addmax_duration_seconds += i
	} else {
		m.addmax_duration_seconds = &i
	}
}

// AddedMaxDurationSeconds returns the value that was added to the "max_duration_seconds" field in this mutation.
func (m *SessionMutation) AddedMaxDurationSeconds() (r int, exists bool) {
	v := m.addmax_duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDurationSeconds resets all changes to the "max_duration_seconds" field.
func (m *SessionMutation) ResetMaxDurationSeconds() {
	m.max_duration_seconds = nil
	m.addmax_duration_seconds = nil
}

// SetCPULimit sets the "cpu_limit" field.
func (m *SessionMutation) SetCPULimit(f float64) {
	m.cpu_limit = &f
	m.addcpu_limit = nil
}

// CPULimit returns the value of the "cpu_limit" field in the mutation.
func (m *SessionMutation) CPULimit() (r float64, exists bool) {
	v := m.cpu_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCPULimit returns the old "cpu_limit" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCPULimit(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPULimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPULimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPULimit: %w", err)
	}
	return oldValue.CPULimit, nil
}

// AddCPULimit adds f to the "cpu_limit" field.
func (m *SessionMutation) AddCPULimit(f float64) {
	if m.addcpu_limit != nil {
		*m.addcpu_limit += f
	} else {
		m.addcpu_limit = &f
	}
}

// AddedCPULimit returns the value that was added to the "cpu_limit" field in this mutation.
func (m *SessionMutation) AddedCPULimit() (r float64, exists bool) {
	v := m.addcpu_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearCPULimit clears the value of the "cpu_limit" field.
func (m *SessionMutation) ClearCPULimit() {
	m.cpu_limit = nil
	m.addcpu_limit = nil
	m.clearedFields[session.FieldCPULimit] = struct{}{}
}

// CPULimitCleared returns if the "cpu_limit" field was cleared in this mutation.
func (m *SessionMutation) CPULimitCleared() bool {
	_, ok := m.clearedFields[session.FieldCPULimit]
	return ok
}

// ResetCPULimit resets all changes to the "cpu_limit" field.
func (m *SessionMutation) ResetCPULimit() {
	m.cpu_limit = nil
	m.addcpu_limit = nil
	delete(m.clearedFields, session.FieldCPULimit)
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (m *SessionMutation) SetMemoryLimitMB(i int) {
	m.memory_limit_mb = &i
	m.addmemory_limit_mb = nil
}

// MemoryLimitMB returns the value of the "memory_limit_mb" field in the mutation.
func (m *SessionMutation) MemoryLimitMB() (r int, exists bool) {
	v := m.memory_limit_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryLimitMB returns the old "memory_limit_mb" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMemoryLimitMB(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryLimitMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryLimitMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryLimitMB: %w", err)
	}
	return oldValue.MemoryLimitMB, nil
}

// AddMemoryLimitMB adds i to the "memory_limit_mb" field.
func (m *SessionMutation) AddMemoryLimitMB(i int) {
	if m.addmemory_limit_mb != nil {
		*m.addmemory_limit_mb += i
	} else {
		m.addmemory_limit_mb = &i
	}
}

// AddedMemoryLimitMB returns the value that was added to the "memory_limit_mb" field in this mutation.
func (m *SessionMutation) AddedMemoryLimitMB() (r int, exists bool) {
	v := m.addmemory_limit_mb
	if v == nil {
		return
	}
	return *v, true
}

// ClearMemoryLimitMB clears the value of the "memory_limit_mb" field.
func (m *SessionMutation) ClearMemoryLimitMB() {
	m.memory_limit_mb = nil
	m.addmemory_limit_mb = nil
	m.clearedFields[session.FieldMemoryLimitMB] = struct{}{}
}

// MemoryLimitMBCleared returns if the "memory_limit_mb" field was cleared in this mutation.
func (m *SessionMutation) MemoryLimitMBCleared() bool {
	_, ok := m.clearedFields[session.FieldMemoryLimitMB]
	return ok
}

// ResetMemoryLimitMB resets all changes to the "memory_limit_mb" field.
func (m *SessionMutation) ResetMemoryLimitMB() {
	m.memory_limit_mb = nil
	m.addmemory_limit_mb = nil
	delete(m.clearedFields, session.FieldMemoryLimitMB)
}

// SetCreatedBy sets the "created_by" field.
func (m *SessionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *SessionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *SessionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[session.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *SessionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[session.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *SessionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, session.FieldCreatedBy)
}

// SetTags sets the "tags" field.
func (m *SessionMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *SessionMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *SessionMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *SessionMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *SessionMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[session.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *SessionMutation) TagsCleared() bool {
	_, ok := m.clearedFields[session.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *SessionMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, session.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *SessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[session.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, session.FieldMetadata)
}

// SetVersion sets the "version" field.
func (m *SessionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SessionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SessionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SessionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SessionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetMetricsID sets the "metrics_id" field.
func (m *SessionMutation) SetMetricsID(s string) {
	m.metrics = &s
}

// MetricsID returns the value of the "metrics_id" field in the mutation.
func (m *SessionMutation) MetricsID() (r string, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricsID returns the old "metrics_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetricsID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricsID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricsID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricsID: %w", err)
	}
	return oldValue.MetricsID, nil
}

// ClearMetricsID clears the value of the "metrics_id" field.
func (m *SessionMutation) ClearMetricsID() {
	m.metrics = nil
	m.clearedFields[session.FieldMetricsID] = struct{}{}
}

// MetricsIDCleared returns if the "metrics_id" field was cleared in this mutation.
func (m *SessionMutation) MetricsIDCleared() bool {
	_, ok := m.clearedFields[session.FieldMetricsID]
	return ok
}

// ResetMetricsID resets all changes to the "metrics_id" field.
func (m *SessionMutation) ResetMetricsID() {
	m.metrics = nil
	delete(m.clearedFields, session.FieldMetricsID)
}

// SetPodID sets the "pod_id" field.
func (m *SessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *SessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *SessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[session.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *SessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[session.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *SessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, session.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *SessionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *SessionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *SessionMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[session.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *SessionMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[session.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *SessionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, session.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[session.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, session.FieldDeletedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *SessionMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[session.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *SessionMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *SessionMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearMetrics clears the "metrics" edge to the SessionMetrics entity.
func (m *SessionMutation) ClearMetrics() {
	m.clearedmetrics = true
	m.clearedFields[session.FieldMetricsID] = struct{}{}
}

// MetricsCleared reports if the "metrics" edge to the SessionMetrics entity was cleared.
func (m *SessionMutation) MetricsCleared() bool {
	return m.MetricsIDCleared() || m.clearedmetrics
}

// MetricsIDs returns the "metrics" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MetricsID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) MetricsIDs() (ids []string) {
	if id := m.metrics; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMetrics resets all changes to the "metrics" edge.
func (m *SessionMutation) ResetMetrics() {
	m.metrics = nil
	m.clearedmetrics = false
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *SessionMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *SessionMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *SessionMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *SessionMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *SessionMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *SessionMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *SessionMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *SessionMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *SessionMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *SessionMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *SessionMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *SessionMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *SessionMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *SessionMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by ids.
func (m *SessionMutation) AddContextIDs(ids ...string) {
	if m.contexts == nil {
		m.contexts = make(map[string]struct{})
	}
	for i := range ids {
		m.contexts[ids[i]] = struct{}{}
	}
}

// ClearContexts clears the "contexts" edge to the ExecutionContext entity.
func (m *SessionMutation) ClearContexts() {
	m.clearedcontexts = true
}

// ContextsCleared reports if the "contexts" edge to the ExecutionContext entity was cleared.
func (m *SessionMutation) ContextsCleared() bool {
	return m.clearedcontexts
}

// RemoveContextIDs removes the "contexts" edge to the ExecutionContext entity by IDs.
func (m *SessionMutation) RemoveContextIDs(ids ...string) {
	if m.removedcontexts == nil {
		m.removedcontexts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contexts, ids[i])
		m.removedcontexts[ids[i]] = struct{}{}
	}
}

// RemovedContexts returns the removed IDs of the "contexts" edge to the ExecutionContext entity.
func (m *SessionMutation) RemovedContextsIDs() (ids []string) {
	for id := range m.removedcontexts {
		ids = append(ids, id)
	}
	return
}

// ContextsIDs returns the "contexts" edge IDs in the mutation.
func (m *SessionMutation) ContextsIDs() (ids []string) {
	for id := range m.contexts {
		ids = append(ids, id)
	}
	return
}

// ResetContexts resets all changes to the "contexts" edge.
func (m *SessionMutation) ResetContexts() {
	m.contexts = nil
	m.clearedcontexts = false
	m.removedcontexts = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *SessionMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *SessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *SessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *SessionMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *SessionMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SessionMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.tenant != nil {
		fields = append(fields, session.FieldTenantID)
	}
	if m.title != nil {
		fields = append(fields, session.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, session.FieldDescription)
	}
	if m.session_type != nil {
		fields = append(fields, session.FieldSessionType)
	}
	if m.priority != nil {
		fields = append(fields, session.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.status_updated_at != nil {
		fields = append(fields, session.FieldStatusUpdatedAt)
	}
	if m.parent_id != nil {
		fields = append(fields, session.FieldParentID)
	}
	if m.child_ids != nil {
		fields = append(fields, session.FieldChildIds)
	}
	if m.agent_config != nil {
		fields = append(fields, session.FieldAgentConfig)
	}
	if m.model_config != nil {
		fields = append(fields, session.FieldModelConfig)
	}
	if m.initial_prompt != nil {
		fields = append(fields, session.FieldInitialPrompt)
	}
	if m.max_duration_seconds != nil {
		fields = append(fields, session.FieldMaxDurationSeconds)
	}
	if m.cpu_limit != nil {
		fields = append(fields, session.FieldCPULimit)
	}
	if m.memory_limit_mb != nil {
		fields = append(fields, session.FieldMemoryLimitMB)
	}
	if m.created_by != nil {
		fields = append(fields, session.FieldCreatedBy)
	}
	if m.tags != nil {
		fields = append(fields, session.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, session.FieldMetadata)
	}
	if m.version != nil {
		fields = append(fields, session.FieldVersion)
	}
	if m.metrics != nil {
		fields = append(fields, session.FieldMetricsID)
	}
	if m.pod_id != nil {
		fields = append(fields, session.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, session.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTenantID:
		return m.TenantID()
	case session.FieldTitle:
		return m.Title()
	case session.FieldDescription:
		return m.Description()
	case session.FieldSessionType:
		return m.SessionType()
	case session.FieldPriority:
		return m.Priority()
	case session.FieldStatus:
		return m.Status()
	case session.FieldStatusUpdatedAt:
		return m.StatusUpdatedAt()
	case session.FieldParentID:
		return m.ParentID()
	case session.FieldChildIds:
		return m.ChildIds()
	case session.FieldAgentConfig:
		return m.AgentConfig()
	case session.FieldModelConfig:
		return m.ModelConfig()
	case session.FieldInitialPrompt:
		return m.InitialPrompt()
	case session.FieldMaxDurationSeconds:
		return m.MaxDurationSeconds()
	case session.FieldCPULimit:
		return m.CPULimit()
	case session.FieldMemoryLimitMB:
		return m.MemoryLimitMB()
	case session.FieldCreatedBy:
		return m.CreatedBy()
	case session.FieldTags:
		return m.Tags()
	case session.FieldMetadata:
		return m.Metadata()
	case session.FieldVersion:
		return m.Version()
	case session.FieldMetricsID:
		return m.MetricsID()
	case session.FieldPodID:
		return m.PodID()
	case session.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldTenantID:
		return m.OldTenantID(ctx)
	case session.FieldTitle:
		return m.OldTitle(ctx)
	case session.FieldDescription:
		return m.OldDescription(ctx)
	case session.FieldSessionType:
		return m.OldSessionType(ctx)
	case session.FieldPriority:
		return m.OldPriority(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldStatusUpdatedAt:
		return m.OldStatusUpdatedAt(ctx)
	case session.FieldParentID:
		return m.OldParentID(ctx)
	case session.FieldChildIds:
		return m.OldChildIds(ctx)
	case session.FieldAgentConfig:
		return m.OldAgentConfig(ctx)
	case session.FieldModelConfig:
		return m.OldModelConfig(ctx)
	case session.FieldInitialPrompt:
		return m.OldInitialPrompt(ctx)
	case session.FieldMaxDurationSeconds:
		return m.OldMaxDurationSeconds(ctx)
	case session.FieldCPULimit:
		return m.OldCPULimit(ctx)
	case session.FieldMemoryLimitMB:
		return m.OldMemoryLimitMB(ctx)
	case session.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case session.FieldTags:
		return m.OldTags(ctx)
	case session.FieldMetadata:
		return m.OldMetadata(ctx)
	case session.FieldVersion:
		return m.OldVersion(ctx)
	case session.FieldMetricsID:
		return m.OldMetricsID(ctx)
	case session.FieldPodID:
		return m.OldPodID(ctx)
	case session.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case session.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case session.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case session.FieldSessionType:
		v, ok := value.(session.SessionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case session.FieldPriority:
		v, ok := value.(session.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldStatusUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusUpdatedAt(v)
		return nil
	case session.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case session.FieldChildIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildIds(v)
		return nil
	case session.FieldAgentConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentConfig(v)
		return nil
	case session.FieldModelConfig:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelConfig(v)
		return nil
	case session.FieldInitialPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialPrompt(v)
		return nil
	case session.FieldMaxDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDurationSeconds(v)
		return nil
	case session.FieldCPULimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPULimit(v)
		return nil
	case session.FieldMemoryLimitMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryLimitMB(v)
		return nil
	case session.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case session.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case session.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case session.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case session.FieldMetricsID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricsID(v)
		return nil
	case session.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case session.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addmax_duration_seconds != nil {
		fields = append(fields, session.FieldMaxDurationSeconds)
	}
	if m.addcpu_limit != nil {
		fields = append(fields, session.FieldCPULimit)
	}
	if m.addmemory_limit_mb != nil {
		fields = append(fields, session.FieldMemoryLimitMB)
	}
	if m.addversion != nil {
		fields = append(fields, session.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldMaxDurationSeconds:
		return m.AddedMaxDurationSeconds()
	case session.FieldCPULimit:
		return m.AddedCPULimit()
	case session.FieldMemoryLimitMB:
		return m.AddedMemoryLimitMB()
	case session.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldMaxDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDurationSeconds(v)
		return nil
	case session.FieldCPULimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPULimit(v)
		return nil
	case session.FieldMemoryLimitMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryLimitMB(v)
		return nil
	case session.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldDescription) {
		fields = append(fields, session.FieldDescription)
	}
	if m.FieldCleared(session.FieldParentID) {
		fields = append(fields, session.FieldParentID)
	}
	if m.FieldCleared(session.FieldChildIds) {
		fields = append(fields, session.FieldChildIds)
	}
	if m.FieldCleared(session.FieldAgentConfig) {
		fields = append(fields, session.FieldAgentConfig)
	}
	if m.FieldCleared(session.FieldModelConfig) {
		fields = append(fields, session.FieldModelConfig)
	}
	if m.FieldCleared(session.FieldCPULimit) {
		fields = append(fields, session.FieldCPULimit)
	}
	if m.FieldCleared(session.FieldMemoryLimitMB) {
		fields = append(fields, session.FieldMemoryLimitMB)
	}
	if m.FieldCleared(session.FieldCreatedBy) {
		fields = append(fields, session.FieldCreatedBy)
	}
	if m.FieldCleared(session.FieldTags) {
		fields = append(fields, session.FieldTags)
	}
	if m.FieldCleared(session.FieldMetadata) {
		fields = append(fields, session.FieldMetadata)
	}
	if m.FieldCleared(session.FieldMetricsID) {
		fields = append(fields, session.FieldMetricsID)
	}
	if m.FieldCleared(session.FieldPodID) {
		fields = append(fields, session.FieldPodID)
	}
	if m.FieldCleared(session.FieldLastHeartbeatAt) {
		fields = append(fields, session.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(session.FieldDeletedAt) {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldDescription:
		m.ClearDescription()
		return nil
	case session.FieldParentID:
		m.ClearParentID()
		return nil
	case session.FieldChildIds:
		m.ClearChildIds()
		return nil
	case session.FieldAgentConfig:
		m.ClearAgentConfig()
		return nil
	case session.FieldModelConfig:
		m.ClearModelConfig()
		return nil
	case session.FieldCPULimit:
		m.ClearCPULimit()
		return nil
	case session.FieldMemoryLimitMB:
		m.ClearMemoryLimitMB()
		return nil
	case session.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case session.FieldTags:
		m.ClearTags()
		return nil
	case session.FieldMetadata:
		m.ClearMetadata()
		return nil
	case session.FieldMetricsID:
		m.ClearMetricsID()
		return nil
	case session.FieldPodID:
		m.ClearPodID()
		return nil
	case session.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case session.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldTenantID:
		m.ResetTenantID()
		return nil
	case session.FieldTitle:
		m.ResetTitle()
		return nil
	case session.FieldDescription:
		m.ResetDescription()
		return nil
	case session.FieldSessionType:
		m.ResetSessionType()
		return nil
	case session.FieldPriority:
		m.ResetPriority()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldStatusUpdatedAt:
		m.ResetStatusUpdatedAt()
		return nil
	case session.FieldParentID:
		m.ResetParentID()
		return nil
	case session.FieldChildIds:
		m.ResetChildIds()
		return nil
	case session.FieldAgentConfig:
		m.ResetAgentConfig()
		return nil
	case session.FieldModelConfig:
		m.ResetModelConfig()
		return nil
	case session.FieldInitialPrompt:
		m.ResetInitialPrompt()
		return nil
	case session.FieldMaxDurationSeconds:
		m.ResetMaxDurationSeconds()
		return nil
	case session.FieldCPULimit:
		m.ResetCPULimit()
		return nil
	case session.FieldMemoryLimitMB:
		m.ResetMemoryLimitMB()
		return nil
	case session.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case session.FieldTags:
		m.ResetTags()
		return nil
	case session.FieldMetadata:
		m.ResetMetadata()
		return nil
	case session.FieldVersion:
		m.ResetVersion()
		return nil
	case session.FieldMetricsID:
		m.ResetMetricsID()
		return nil
	case session.FieldPodID:
		m.ResetPodID()
		return nil
	case session.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.tenant != nil {
		edges = append(edges, session.EdgeTenant)
	}
	if m.metrics != nil {
		edges = append(edges, session.EdgeMetrics)
	}
	if m.checkpoints != nil {
		edges = append(edges, session.EdgeCheckpoints)
	}
	if m.tasks != nil {
		edges = append(edges, session.EdgeTasks)
	}
	if m.contexts != nil {
		edges = append(edges, session.EdgeContexts)
	}
	if m.events != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeMetrics:
		if id := m.metrics; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeContexts:
		ids := make([]ent.Value, 0, len(m.contexts))
		for id := range m.contexts {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedcheckpoints != nil {
		edges = append(edges, session.EdgeCheckpoints)
	}
	if m.removedtasks != nil {
		edges = append(edges, session.EdgeTasks)
	}
	if m.removedcontexts != nil {
		edges = append(edges, session.EdgeContexts)
	}
	if m.removedevents != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeContexts:
		ids := make([]ent.Value, 0, len(m.removedcontexts))
		for id := range m.removedcontexts {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedtenant {
		edges = append(edges, session.EdgeTenant)
	}
	if m.clearedmetrics {
		edges = append(edges, session.EdgeMetrics)
	}
	if m.clearedcheckpoints {
		edges = append(edges, session.EdgeCheckpoints)
	}
	if m.clearedtasks {
		edges = append(edges, session.EdgeTasks)
	}
	if m.clearedcontexts {
		edges = append(edges, session.EdgeContexts)
	}
	if m.clearedevents {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeTenant:
		return m.clearedtenant
	case session.EdgeMetrics:
		return m.clearedmetrics
	case session.EdgeCheckpoints:
		return m.clearedcheckpoints
	case session.EdgeTasks:
		return m.clearedtasks
	case session.EdgeContexts:
		return m.clearedcontexts
	case session.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeTenant:
		m.ClearTenant()
		return nil
	case session.EdgeMetrics:
		m.ClearMetrics()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeTenant:
		m.ResetTenant()
		return nil
	case session.EdgeMetrics:
		m.ResetMetrics()
		return nil
	case session.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case session.EdgeTasks:
		m.ResetTasks()
		return nil
	case session.EdgeContexts:
		m.ResetContexts()
		return nil
	case session.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionMetricsMutation represents an operation that mutates the SessionMetrics nodes in the graph.
type SessionMetricsMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	queued_at           *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	failed_at           *time.Time
	success_rate        *float64
	addsuccess_rate     *float64
	confidence          *float64
	addconfidence       *float64
	total_tokens        *int
	addtotal_tokens     *int
	cost_usd            *float64
	addcost_usd         *float64
	api_calls           *int
	addapi_calls        *int
	api_errors          *int
	addapi_errors       *int
	retry_count         *int
	addretry_count      *int
	checkpoint_count    *int
	addcheckpoint_count *int
	result              *map[string]interface{}
	error               *map[string]interface{}
	warnings            *[]string
	appendwarnings      []string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*SessionMetrics, error)
	predicates          []predicate.SessionMetrics
}

var _ ent.Mutation = (*SessionMetricsMutation)(nil)

// sessionmetricsOption allows management of the mutation configuration using functional options.
type sessionmetricsOption func(*SessionMetricsMutation)

// newSessionMetricsMutation creates new mutation for the SessionMetrics entity.
func newSessionMetricsMutation(c config, op Op, opts ...sessionmetricsOption) *SessionMetricsMutation {
	m := &SessionMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMetricsID sets the ID field of the mutation.
func withSessionMetricsID(id string) sessionmetricsOption {
	return func(m *SessionMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMetrics
		)
		m.oldValue = func(ctx context.Context) (*SessionMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMetrics sets the old SessionMetrics of the mutation.
func withSessionMetrics(node *SessionMetrics) sessionmetricsOption {
	return func(m *SessionMetricsMutation) {
		m.oldValue = func(context.Context) (*SessionMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMetrics entities.
func (m *SessionMetricsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMetricsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMetricsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueuedAt sets the "queued_at" field.
func (m *SessionMetricsMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *SessionMetricsMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldQueuedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (m *SessionMetricsMutation) ClearQueuedAt() {
	m.queued_at = nil
	m.clearedFields[sessionmetrics.FieldQueuedAt] = struct{}{}
}

// QueuedAtCleared returns if the "queued_at" field was cleared in this mutation.
func (m *SessionMetricsMutation) QueuedAtCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldQueuedAt]
	return ok
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *SessionMetricsMutation) ResetQueuedAt() {
	m.queued_at = nil
	delete(m.clearedFields, sessionmetrics.FieldQueuedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMetricsMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMetricsMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *SessionMetricsMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[sessionmetrics.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SessionMetricsMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMetricsMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, sessionmetrics.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMetricsMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMetricsMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *SessionMetricsMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sessionmetrics.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMetricsMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMetricsMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sessionmetrics.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *SessionMetricsMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *SessionMetricsMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *SessionMetricsMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[sessionmetrics.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *SessionMetricsMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *SessionMetricsMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, sessionmetrics.FieldFailedAt)
}

// SetSuccessRate sets the "success_rate" field.
func (m *SessionMetricsMutation) SetSuccessRate(f float64) {
	m.success_rate = &f
	m.addsuccess_rate = nil
}

// SuccessRate returns the value of the "success_rate" field in the mutation.
func (m *SessionMetricsMutation) SuccessRate() (r float64, exists bool) {
	v := m.success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRate returns the old "success_rate" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldSuccessRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRate: %w", err)
	}
	return oldValue.SuccessRate, nil
}

// AddSuccessRate adds f to the "success_rate" field.
func (m *SessionMetricsMutation) AddSuccessRate(f float64) {
	if m.addsuccess_rate != nil {
		*m.addsuccess_rate += f
	} else {
		m.addsuccess_rate = &f
	}
}

// AddedSuccessRate returns the value that was added to the "success_rate" field in this mutation.
func (m *SessionMetricsMutation) AddedSuccessRate() (r float64, exists bool) {
	v := m.addsuccess_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearSuccessRate clears the value of the "success_rate" field.
func (m *SessionMetricsMutation) ClearSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
	m.clearedFields[sessionmetrics.FieldSuccessRate] = struct{}{}
}

// SuccessRateCleared returns if the "success_rate" field was cleared in this mutation.
func (m *SessionMetricsMutation) SuccessRateCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldSuccessRate]
	return ok
}

// ResetSuccessRate resets all changes to the "success_rate" field.
func (m *SessionMetricsMutation) ResetSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
	delete(m.clearedFields, sessionmetrics.FieldSuccessRate)
}

// SetConfidence sets the "confidence" field.
func (m *SessionMetricsMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SessionMetricsMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SessionMetricsMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SessionMetricsMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *SessionMetricsMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[sessionmetrics.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *SessionMetricsMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SessionMetricsMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, sessionmetrics.FieldConfidence)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *SessionMetricsMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *SessionMetricsMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *SessionMetricsMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *SessionMetricsMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *SessionMetricsMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *SessionMetricsMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *SessionMetricsMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *SessionMetricsMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *SessionMetricsMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *SessionMetricsMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetAPICalls sets the "api_calls" field.
func (m *SessionMetricsMutation) SetAPICalls(i int) {
	m.api_calls = &i
	m.addapi_calls = nil
}

// APICalls returns the value of the "api_calls" field in the mutation.
func (m *SessionMetricsMutation) APICalls() (r int, exists bool) {
	v := m.api_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldAPICalls returns the old "api_calls" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldAPICalls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPICalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPICalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPICalls: %w", err)
	}
	return oldValue.APICalls, nil
}

// AddAPICalls adds i to the "api_calls" field.
func (m *SessionMetricsMutation) AddAPICalls(i int) {
	if m.addapi_calls != nil {
		*m.addapi_calls += i
	} else {
		m.addapi_calls = &i
	}
}

// AddedAPICalls returns the value that was added to the "api_calls" field in this mutation.
func (m *SessionMetricsMutation) AddedAPICalls() (r int, exists bool) {
	v := m.addapi_calls
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPICalls resets all changes to the "api_calls" field.
func (m *SessionMetricsMutation) ResetAPICalls() {
	m.api_calls = nil
	m.addapi_calls = nil
}

// SetAPIErrors sets the "api_errors" field.
func (m *SessionMetricsMutation) SetAPIErrors(i int) {
	m.api_errors = &i
	m.addapi_errors = nil
}

// APIErrors returns the value of the "api_errors" field in the mutation.
func (m *SessionMetricsMutation) APIErrors() (r int, exists bool) {
	v := m.api_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIErrors returns the old "api_errors" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldAPIErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIErrors: %w", err)
	}
	return oldValue.APIErrors, nil
}

// AddAPIErrors adds i to the "api_errors" field.
func (m *SessionMetricsMutation) AddAPIErrors(i int) {
	if m.addapi_errors != nil {
		*m.addapi_errors += i
	} else {
		m.addapi_errors = &i
	}
}

// AddedAPIErrors returns the value that was added to the "api_errors" field in this mutation.
func (m *SessionMetricsMutation) AddedAPIErrors() (r int, exists bool) {
	v := m.addapi_errors
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPIErrors resets all changes to the "api_errors" field.
func (m *SessionMetricsMutation) ResetAPIErrors() {
	m.api_errors = nil
	m.addapi_errors = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *SessionMetricsMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SessionMetricsMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SessionMetricsMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SessionMetricsMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SessionMetricsMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCheckpointCount sets the "checkpoint_count" field.
func (m *SessionMetricsMutation) SetCheckpointCount(i int) {
	m.checkpoint_count = &i
	m.addcheckpoint_count = nil
}

// CheckpointCount returns the value of the "checkpoint_count" field in the mutation.
func (m *SessionMetricsMutation) CheckpointCount() (r int, exists bool) {
	v := m.checkpoint_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointCount returns the old "checkpoint_count" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldCheckpointCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointCount: %w", err)
	}
	return oldValue.CheckpointCount, nil
}

// AddCheckpointCount adds i to the "checkpoint_count" field.
func (m *SessionMetricsMutation) AddCheckpointCount(i int) {
	if m.addcheckpoint_count != nil {
		*m.addcheckpoint_count += i
	} else {
		m.addcheckpoint_count = &i
	}
}

// AddedCheckpointCount returns the value that was added to the "checkpoint_count" field in this mutation.
func (m *SessionMetricsMutation) AddedCheckpointCount() (r int, exists bool) {
	v := m.addcheckpoint_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCheckpointCount resets all changes to the "checkpoint_count" field.
func (m *SessionMetricsMutation) ResetCheckpointCount() {
	m.checkpoint_count = nil
	m.addcheckpoint_count = nil
}

// SetResult sets the "result" field.
func (m *SessionMetricsMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *SessionMetricsMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *SessionMetricsMutation) ClearResult() {
	m.result = nil
	m.clearedFields[sessionmetrics.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *SessionMetricsMutation) ResultCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *SessionMetricsMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, sessionmetrics.FieldResult)
}

// SetError sets the "error" field.
func (m *SessionMetricsMutation) SetError(value map[string]interface{}) {
	m.error = &value
}

// Error returns the value of the "error" field in the mutation.
func (m *SessionMetricsMutation) Error() (r map[string]interface{}, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldError(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SessionMetricsMutation) ClearError() {
	m.error = nil
	m.clearedFields[sessionmetrics.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SessionMetricsMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SessionMetricsMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, sessionmetrics.FieldError)
}

// SetWarnings sets the "warnings" field.
func (m *SessionMetricsMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *SessionMetricsMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *SessionMetricsMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *SessionMetricsMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *SessionMetricsMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[sessionmetrics.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *SessionMetricsMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[sessionmetrics.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *SessionMetricsMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, sessionmetrics.FieldWarnings)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMetricsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMetricsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMetricsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMetricsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMetricsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionMetrics entity.
// If the SessionMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMetricsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMetricsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session" edge to the Session entity by id.
func (m *SessionMetricsMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionMetricsMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionMetricsMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *SessionMetricsMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionMetricsMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionMetricsMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionMetricsMutation builder.
func (m *SessionMetricsMutation) Where(ps ...predicate.SessionMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMetrics).
func (m *SessionMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMetricsMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.queued_at != nil {
		fields = append(fields, sessionmetrics.FieldQueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, sessionmetrics.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, sessionmetrics.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, sessionmetrics.FieldFailedAt)
	}
	if m.success_rate != nil {
		fields = append(fields, sessionmetrics.FieldSuccessRate)
	}
	if m.confidence != nil {
		fields = append(fields, sessionmetrics.FieldConfidence)
	}
	if m.total_tokens != nil {
		fields = append(fields, sessionmetrics.FieldTotalTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, sessionmetrics.FieldCostUsd)
	}
	if m.api_calls != nil {
		fields = append(fields, sessionmetrics.FieldAPICalls)
	}
	if m.api_errors != nil {
		fields = append(fields, sessionmetrics.FieldAPIErrors)
	}
	if m.retry_count != nil {
		fields = append(fields, sessionmetrics.FieldRetryCount)
	}
	if m.checkpoint_count != nil {
		fields = append(fields, sessionmetrics.FieldCheckpointCount)
	}
	if m.result != nil {
		fields = append(fields, sessionmetrics.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, sessionmetrics.FieldError)
	}
	if m.warnings != nil {
		fields = append(fields, sessionmetrics.FieldWarnings)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmetrics.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionmetrics.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmetrics.FieldQueuedAt:
		return m.QueuedAt()
	case sessionmetrics.FieldStartedAt:
		return m.StartedAt()
	case sessionmetrics.FieldCompletedAt:
		return m.CompletedAt()
	case sessionmetrics.FieldFailedAt:
		return m.FailedAt()
	case sessionmetrics.FieldSuccessRate:
		return m.SuccessRate()
	case sessionmetrics.FieldConfidence:
		return m.Confidence()
	case sessionmetrics.FieldTotalTokens:
		return m.TotalTokens()
	case sessionmetrics.FieldCostUsd:
		return m.CostUsd()
	case sessionmetrics.FieldAPICalls:
		return m.APICalls()
	case sessionmetrics.FieldAPIErrors:
		return m.APIErrors()
	case sessionmetrics.FieldRetryCount:
		return m.RetryCount()
	case sessionmetrics.FieldCheckpointCount:
		return m.CheckpointCount()
	case sessionmetrics.FieldResult:
		return m.Result()
	case sessionmetrics.FieldError:
		return m.Error()
	case sessionmetrics.FieldWarnings:
		return m.Warnings()
	case sessionmetrics.FieldCreatedAt:
		return m.CreatedAt()
	case sessionmetrics.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmetrics.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case sessionmetrics.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionmetrics.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case sessionmetrics.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case sessionmetrics.FieldSuccessRate:
		return m.OldSuccessRate(ctx)
	case sessionmetrics.FieldConfidence:
		return m.OldConfidence(ctx)
	case sessionmetrics.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case sessionmetrics.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case sessionmetrics.FieldAPICalls:
		return m.OldAPICalls(ctx)
	case sessionmetrics.FieldAPIErrors:
		return m.OldAPIErrors(ctx)
	case sessionmetrics.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case sessionmetrics.FieldCheckpointCount:
		return m.OldCheckpointCount(ctx)
	case sessionmetrics.FieldResult:
		return m.OldResult(ctx)
	case sessionmetrics.FieldError:
		return m.OldError(ctx)
	case sessionmetrics.FieldWarnings:
		return m.OldWarnings(ctx)
	case sessionmetrics.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionmetrics.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmetrics.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case sessionmetrics.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionmetrics.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case sessionmetrics.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case sessionmetrics.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRate(v)
		return nil
	case sessionmetrics.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case sessionmetrics.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case sessionmetrics.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case sessionmetrics.FieldAPICalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPICalls(v)
		return nil
	case sessionmetrics.FieldAPIErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIErrors(v)
		return nil
	case sessionmetrics.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case sessionmetrics.FieldCheckpointCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointCount(v)
		return nil
	case sessionmetrics.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case sessionmetrics.FieldError:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case sessionmetrics.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case sessionmetrics.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionmetrics.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addsuccess_rate != nil {
		fields = append(fields, sessionmetrics.FieldSuccessRate)
	}
	if m.addconfidence != nil {
		fields = append(fields, sessionmetrics.FieldConfidence)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, sessionmetrics.FieldTotalTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, sessionmetrics.FieldCostUsd)
	}
	if m.addapi_calls != nil {
		fields = append(fields, sessionmetrics.FieldAPICalls)
	}
	if m.addapi_errors != nil {
		fields = append(fields, sessionmetrics.FieldAPIErrors)
	}
	if m.addretry_count != nil {
		fields = append(fields, sessionmetrics.FieldRetryCount)
	}
	if m.addcheckpoint_count != nil {
		fields = append(fields, sessionmetrics.FieldCheckpointCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmetrics.FieldSuccessRate:
		return m.AddedSuccessRate()
	case sessionmetrics.FieldConfidence:
		return m.AddedConfidence()
	case sessionmetrics.FieldTotalTokens:
		return m.AddedTotalTokens()
	case sessionmetrics.FieldCostUsd:
		return m.AddedCostUsd()
	case sessionmetrics.FieldAPICalls:
		return m.AddedAPICalls()
	case sessionmetrics.FieldAPIErrors:
		return m.AddedAPIErrors()
	case sessionmetrics.FieldRetryCount:
		return m.AddedRetryCount()
	case sessionmetrics.FieldCheckpointCount:
		return m.AddedCheckpointCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmetrics.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRate(v)
		return nil
	case sessionmetrics.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case sessionmetrics.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case sessionmetrics.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case sessionmetrics.FieldAPICalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPICalls(v)
		return nil
	case sessionmetrics.FieldAPIErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPIErrors(v)
		return nil
	case sessionmetrics.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case sessionmetrics.FieldCheckpointCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCheckpointCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMetricsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmetrics.FieldQueuedAt) {
		fields = append(fields, sessionmetrics.FieldQueuedAt)
	}
	if m.FieldCleared(sessionmetrics.FieldStartedAt) {
		fields = append(fields, sessionmetrics.FieldStartedAt)
	}
	if m.FieldCleared(sessionmetrics.FieldCompletedAt) {
		fields = append(fields, sessionmetrics.FieldCompletedAt)
	}
	if m.FieldCleared(sessionmetrics.FieldFailedAt) {
		fields = append(fields, sessionmetrics.FieldFailedAt)
	}
	if m.FieldCleared(sessionmetrics.FieldSuccessRate) {
		fields = append(fields, sessionmetrics.FieldSuccessRate)
	}
	if m.FieldCleared(sessionmetrics.FieldConfidence) {
		fields = append(fields, sessionmetrics.FieldConfidence)
	}
	if m.FieldCleared(sessionmetrics.FieldResult) {
		fields = append(fields, sessionmetrics.FieldResult)
	}
	if m.FieldCleared(sessionmetrics.FieldError) {
		fields = append(fields, sessionmetrics.FieldError)
	}
	if m.FieldCleared(sessionmetrics.FieldWarnings) {
		fields = append(fields, sessionmetrics.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMetricsMutation) ClearField(name string) error {
	switch name {
	case sessionmetrics.FieldQueuedAt:
		m.ClearQueuedAt()
		return nil
	case sessionmetrics.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case sessionmetrics.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case sessionmetrics.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	case sessionmetrics.FieldSuccessRate:
		m.ClearSuccessRate()
		return nil
	case sessionmetrics.FieldConfidence:
		m.ClearConfidence()
		return nil
	case sessionmetrics.FieldResult:
		m.ClearResult()
		return nil
	case sessionmetrics.FieldError:
		m.ClearError()
		return nil
	case sessionmetrics.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMetricsMutation) ResetField(name string) error {
	switch name {
	case sessionmetrics.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case sessionmetrics.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionmetrics.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case sessionmetrics.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case sessionmetrics.FieldSuccessRate:
		m.ResetSuccessRate()
		return nil
	case sessionmetrics.FieldConfidence:
		m.ResetConfidence()
		return nil
	case sessionmetrics.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case sessionmetrics.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case sessionmetrics.FieldAPICalls:
		m.ResetAPICalls()
		return nil
	case sessionmetrics.FieldAPIErrors:
		m.ResetAPIErrors()
		return nil
	case sessionmetrics.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case sessionmetrics.FieldCheckpointCount:
		m.ResetCheckpointCount()
		return nil
	case sessionmetrics.FieldResult:
		m.ResetResult()
		return nil
	case sessionmetrics.FieldError:
		m.ResetError()
		return nil
	case sessionmetrics.FieldWarnings:
		m.ResetWarnings()
		return nil
	case sessionmetrics.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionmetrics.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionmetrics.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMetricsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmetrics.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionmetrics.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMetricsMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmetrics.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMetricsMutation) ClearEdge(name string) error {
	switch name {
	case sessionmetrics.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMetricsMutation) ResetEdge(name string) error {
	switch name {
	case sessionmetrics.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMetrics edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	parent_task_id              *string
	title                       *string
	description                 *string
	status                      *task.Status
	priority                    *task.Priority
	estimate                    *map[string]interface{}
	dependencies                *[]map[string]interface{}
	appenddependencies          []map[string]interface{}
	dependents                  *[]string
	appenddependents            []string
	required_capabilities       *[]string
	appendrequired_capabilities []string
	assigned_agent_id           *string
	started_at                  *time.Time
	completed_at                *time.Time
	failed_at                   *time.Time
	result                      *map[string]interface{}
	error                       *string
	artifacts                   *[]string
	appendartifacts             []string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	tenant                      *string
	clearedtenant               bool
	session                     *string
	clearedsession              bool
	done                        bool
	oldValue                    func(context.Context) (*Task, error)
	predicates                  []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TaskMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TaskMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TaskMutation) ResetTenantID() {
	m.tenant = nil
}

// SetSessionID sets the "session_id" field.
func (m *TaskMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TaskMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TaskMutation) ResetSessionID() {
	m.session = nil
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent_task_id = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent_task_id = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
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
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetEstimate sets the "estimate" field.
func (m *TaskMutation) SetEstimate(value map[string]interface{}) {
	m.estimate = &value
}

// Estimate returns the value of the "estimate" field in the mutation.
func (m *TaskMutation) Estimate() (r map[string]interface{}, exists bool) {
	v := m.estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimate returns the old "estimate" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimate(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimate: %w", err)
	}
	return oldValue.Estimate, nil
}

// ClearEstimate clears the value of the "estimate" field.
func (m *TaskMutation) ClearEstimate() {
	m.estimate = nil
	m.clearedFields[task.FieldEstimate] = struct{}{}
}

// EstimateCleared returns if the "estimate" field was cleared in this mutation.
func (m *TaskMutation) EstimateCleared() bool {
	_, ok := m.clearedFields[task.FieldEstimate]
	return ok
}

// ResetEstimate resets all changes to the "estimate" field.
func (m *TaskMutation) ResetEstimate() {
	m.estimate = nil
	delete(m.clearedFields, task.FieldEstimate)
}

// SetDependencies sets the "dependencies" field.
func (m *TaskMutation) SetDependencies(value []map[string]interface{}) {
	m.dependencies = &value
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *TaskMutation) Dependencies() (r []map[string]interface{}, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependencies(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds value to the "dependencies" field.
func (m *TaskMutation) AppendDependencies(value []map[string]interface{}) {
	m.appenddependencies = append(m.appenddependencies, value...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *TaskMutation) AppendedDependencies() ([]map[string]interface{}, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *TaskMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[task.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *TaskMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[task.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *TaskMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, task.FieldDependencies)
}

// SetDependents sets the "dependents" field.
func (m *TaskMutation) SetDependents(s []string) {
	m.dependents = &s
	m.appenddependents = nil
}

// Dependents returns the value of the "dependents" field in the mutation.
func (m *TaskMutation) Dependents() (r []string, exists bool) {
	v := m.dependents
	if v == nil {
		return
	}
	return *v, true
}

// OldDependents returns the old "dependents" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependents: %w", err)
	}
	return oldValue.Dependents, nil
}

// AppendDependents adds s to the "dependents" field.
func (m *TaskMutation) AppendDependents(s []string) {
	m.appenddependents = append(m.appenddependents, s...)
}

// AppendedDependents returns the list of values that were appended to the "dependents" field in this mutation.
func (m *TaskMutation) AppendedDependents() ([]string, bool) {
	if len(m.appenddependents) == 0 {
		return nil, false
	}
	return m.appenddependents, true
}

// ClearDependents clears the value of the "dependents" field.
func (m *TaskMutation) ClearDependents() {
	m.dependents = nil
	m.appenddependents = nil
	m.clearedFields[task.FieldDependents] = struct{}{}
}

// DependentsCleared returns if the "dependents" field was cleared in this mutation.
func (m *TaskMutation) DependentsCleared() bool {
	_, ok := m.clearedFields[task.FieldDependents]
	return ok
}

// ResetDependents resets all changes to the "dependents" field.
func (m *TaskMutation) ResetDependents() {
	m.dependents = nil
	m.appenddependents = nil
	delete(m.clearedFields, task.FieldDependents)
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (m *TaskMutation) SetRequiredCapabilities(s []string) {
	m.required_capabilities = &s
	m.appendrequired_capabilities = nil
}

// RequiredCapabilities returns the value of the "required_capabilities" field in the mutation.
func (m *TaskMutation) RequiredCapabilities() (r []string, exists bool) {
	v := m.required_capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapabilities returns the old "required_capabilities" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequiredCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapabilities: %w", err)
	}
	return oldValue.RequiredCapabilities, nil
}

// AppendRequiredCapabilities adds s to the "required_capabilities" field.
func (m *TaskMutation) AppendRequiredCapabilities(s []string) {
	m.appendrequired_capabilities = append(m.appendrequired_capabilities, s...)
}

// AppendedRequiredCapabilities returns the list of values that were appended to the "required_capabilities" field in this mutation.
func (m *TaskMutation) AppendedRequiredCapabilities() ([]string, bool) {
	if len(m.appendrequired_capabilities) == 0 {
		return nil, false
	}
	return m.appendrequired_capabilities, true
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (m *TaskMutation) ClearRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	m.clearedFields[task.FieldRequiredCapabilities] = struct{}{}
}

// RequiredCapabilitiesCleared returns if the "required_capabilities" field was cleared in this mutation.
func (m *TaskMutation) RequiredCapabilitiesCleared() bool {
	_, ok := m.clearedFields[task.FieldRequiredCapabilities]
	return ok
}

// ResetRequiredCapabilities resets all changes to the "required_capabilities" field.
func (m *TaskMutation) ResetRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	delete(m.clearedFields, task.FieldRequiredCapabilities)
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *TaskMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *TaskMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *TaskMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[task.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *TaskMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, task.FieldAssignedAgentID)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *TaskMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *TaskMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *TaskMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[task.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *TaskMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *TaskMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, task.FieldFailedAt)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// SetArtifacts sets the "artifacts" field.
func (m *TaskMutation) SetArtifacts(s []string) {
	m.artifacts = &s
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *TaskMutation) Artifacts() (r []string, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldArtifacts(ctx context.Context) (v []string, err error) {
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
func (m *TaskMutation) AppendArtifacts(s []string) {
	m.appendartifacts = append(m.appendartifacts, s...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *TaskMutation) AppendedArtifacts() ([]string, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *TaskMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[task.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *TaskMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[task.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *TaskMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, task.FieldArtifacts)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *TaskMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[task.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *TaskMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *TaskMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearSession clears the "session" edge to the Session entity.
func (m *TaskMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[task.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *TaskMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TaskMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.tenant != nil {
		fields = append(fields, task.FieldTenantID)
	}
	if m.session != nil {
		fields = append(fields, task.FieldSessionID)
	}
	if m.parent_task_id != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.estimate != nil {
		fields = append(fields, task.FieldEstimate)
	}
	if m.dependencies != nil {
		fields = append(fields, task.FieldDependencies)
	}
	if m.dependents != nil {
		fields = append(fields, task.FieldDependents)
	}
	if m.required_capabilities != nil {
		fields = append(fields, task.FieldRequiredCapabilities)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, task.FieldFailedAt)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	if m.artifacts != nil {
		fields = append(fields, task.FieldArtifacts)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTenantID:
		return m.TenantID()
	case task.FieldSessionID:
		return m.SessionID()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldEstimate:
		return m.Estimate()
	case task.FieldDependencies:
		return m.Dependencies()
	case task.FieldDependents:
		return m.Dependents()
	case task.FieldRequiredCapabilities:
		return m.RequiredCapabilities()
	case task.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldFailedAt:
		return m.FailedAt()
	case task.FieldResult:
		return m.Result()
	case task.FieldError:
		return m.Error()
	case task.FieldArtifacts:
		return m.Artifacts()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTenantID:
		return m.OldTenantID(ctx)
	case task.FieldSessionID:
		return m.OldSessionID(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldEstimate:
		return m.OldEstimate(ctx)
	case task.FieldDependencies:
		return m.OldDependencies(ctx)
	case task.FieldDependents:
		return m.OldDependents(ctx)
	case task.FieldRequiredCapabilities:
		return m.OldRequiredCapabilities(ctx)
	case task.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	case task.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case task.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldEstimate:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimate(v)
		return nil
	case task.FieldDependencies:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case task.FieldDependents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependents(v)
		return nil
	case task.FieldRequiredCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapabilities(v)
		return nil
	case task.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case task.FieldArtifacts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldEstimate) {
		fields = append(fields, task.FieldEstimate)
	}
	if m.FieldCleared(task.FieldDependencies) {
		fields = append(fields, task.FieldDependencies)
	}
	if m.FieldCleared(task.FieldDependents) {
		fields = append(fields, task.FieldDependents)
	}
	if m.FieldCleared(task.FieldRequiredCapabilities) {
		fields = append(fields, task.FieldRequiredCapabilities)
	}
	if m.FieldCleared(task.FieldAssignedAgentID) {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldFailedAt) {
		fields = append(fields, task.FieldFailedAt)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	if m.FieldCleared(task.FieldArtifacts) {
		fields = append(fields, task.FieldArtifacts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldEstimate:
		m.ClearEstimate()
		return nil
	case task.FieldDependencies:
		m.ClearDependencies()
		return nil
	case task.FieldDependents:
		m.ClearDependents()
		return nil
	case task.FieldRequiredCapabilities:
		m.ClearRequiredCapabilities()
		return nil
	case task.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	case task.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTenantID:
		m.ResetTenantID()
		return nil
	case task.FieldSessionID:
		m.ResetSessionID()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldEstimate:
		m.ResetEstimate()
		return nil
	case task.FieldDependencies:
		m.ResetDependencies()
		return nil
	case task.FieldDependents:
		m.ResetDependents()
		return nil
	case task.FieldRequiredCapabilities:
		m.ResetRequiredCapabilities()
		return nil
	case task.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	case task.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, task.EdgeTenant)
	}
	if m.session != nil {
		edges = append(edges, task.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, task.EdgeTenant)
	}
	if m.clearedsession {
		edges = append(edges, task.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeTenant:
		return m.clearedtenant
	case task.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeTenant:
		m.ClearTenant()
		return nil
	case task.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeTenant:
		m.ResetTenant()
		return nil
	case task.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	slug                       *string
	max_concurrent_sessions    *int
	addmax_concurrent_sessions *int
	max_tokens_per_month       *int64
	addmax_tokens_per_month    *int64
	active                     *bool
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	sessions                   map[string]struct{}
	removedsessions            map[string]struct{}
	clearedsessions            bool
	tasks                      map[string]struct{}
	removedtasks               map[string]struct{}
	clearedtasks               bool
	contexts                   map[string]struct{}
	removedcontexts            map[string]struct{}
	clearedcontexts            bool
	fine_tuning_jobs           map[string]struct{}
	removedfine_tuning_jobs    map[string]struct{}
	clearedfine_tuning_jobs    bool
	done                       bool
	oldValue                   func(context.Context) (*Tenant, error)
	predicates                 []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *TenantMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TenantMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TenantMutation) ResetSlug() {
	m.slug = nil
}

// SetMaxConcurrentSessions sets the "max_concurrent_sessions" field.
func (m *TenantMutation) SetMaxConcurrentSessions(i int) {
	m.max_concurrent_sessions = &i
	m.addmax_concurrent_sessions = nil
}

// MaxConcurrentSessions returns the value of the "max_concurrent_sessions" field in the mutation.
func (m *TenantMutation) MaxConcurrentSessions() (r int, exists bool) {
	v := m.max_concurrent_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrentSessions returns the old "max_concurrent_sessions" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldMaxConcurrentSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrentSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrentSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrentSessions: %w", err)
	}
	return oldValue.MaxConcurrentSessions, nil
}

// AddMaxConcurrentSessions adds i to the "max_concurrent_sessions" field.
func (m *TenantMutation) AddMaxConcurrentSessions(i int) {
	if m.addmax_concurrent_sessions != nil {
		*m.addmax_concurrent_sessions += i
	} else {
		m.addmax_concurrent_sessions = &i
	}
}

// AddedMaxConcurrentSessions returns the value that was added to the "max_concurrent_sessions" field in this mutation.
func (m *TenantMutation) AddedMaxConcurrentSessions() (r int, exists bool) {
	v := m.addmax_concurrent_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrentSessions resets all changes to the "max_concurrent_sessions" field.
func (m *TenantMutation) ResetMaxConcurrentSessions() {
	m.max_concurrent_sessions = nil
	m.addmax_concurrent_sessions = nil
}

// SetMaxTokensPerMonth sets the "max_tokens_per_month" field.
func (m *TenantMutation) SetMaxTokensPerMonth(i int64) {
	m.max_tokens_per_month = &i
	m.addmax_tokens_per_month = nil
}

// MaxTokensPerMonth returns the value of the "max_tokens_per_month" field in the mutation.
func (m *TenantMutation) MaxTokensPerMonth() (r int64, exists bool) {
	v := m.max_tokens_per_month
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokensPerMonth returns the old "max_tokens_per_month" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldMaxTokensPerMonth(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokensPerMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokensPerMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokensPerMonth: %w", err)
	}
	return oldValue.MaxTokensPerMonth, nil
}

// AddMaxTokensPerMonth adds i to the "max_tokens_per_month" field.
func (m *TenantMutation) AddMaxTokensPerMonth(i int64) {
	if m.addmax_tokens_per_month != nil {
		*m.addmax_tokens_per_month += i
	} else {
		m.addmax_tokens_per_month = &i
	}
}

// AddedMaxTokensPerMonth returns the value that was added to the "max_tokens_per_month" field in this mutation.
func (m *TenantMutation) AddedMaxTokensPerMonth() (r int64, exists bool) {
	v := m.addmax_tokens_per_month
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokensPerMonth resets all changes to the "max_tokens_per_month" field.
func (m *TenantMutation) ResetMaxTokensPerMonth() {
	m.max_tokens_per_month = nil
	m.addmax_tokens_per_month = nil
}

// SetActive sets the "active" field.
func (m *TenantMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TenantMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TenantMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *TenantMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *TenantMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *TenantMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *TenantMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *TenantMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TenantMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TenantMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *TenantMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *TenantMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *TenantMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *TenantMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *TenantMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *TenantMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *TenantMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddContextIDs adds the "contexts" edge to the ExecutionContext entity by ids.
func (m *TenantMutation) AddContextIDs(ids ...string) {
	if m.contexts == nil {
		m.contexts = make(map[string]struct{})
	}
	for i := range ids {
		m.contexts[ids[i]] = struct{}{}
	}
}

// ClearContexts clears the "contexts" edge to the ExecutionContext entity.
func (m *TenantMutation) ClearContexts() {
	m.clearedcontexts = true
}

// ContextsCleared reports if the "contexts" edge to the ExecutionContext entity was cleared.
func (m *TenantMutation) ContextsCleared() bool {
	return m.clearedcontexts
}

// RemoveContextIDs removes the "contexts" edge to the ExecutionContext entity by IDs.
func (m *TenantMutation) RemoveContextIDs(ids ...string) {
	if m.removedcontexts == nil {
		m.removedcontexts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contexts, ids[i])
		m.removedcontexts[ids[i]] = struct{}{}
	}
}

// RemovedContexts returns the removed IDs of the "contexts" edge to the ExecutionContext entity.
func (m *TenantMutation) RemovedContextsIDs() (ids []string) {
	for id := range m.removedcontexts {
		ids = append(ids, id)
	}
	return
}

// ContextsIDs returns the "contexts" edge IDs in the mutation.
func (m *TenantMutation) ContextsIDs() (ids []string) {
	for id := range m.contexts {
		ids = append(ids, id)
	}
	return
}

// ResetContexts resets all changes to the "contexts" edge.
func (m *TenantMutation) ResetContexts() {
	m.contexts = nil
	m.clearedcontexts = false
	m.removedcontexts = nil
}

// AddFineTuningJobIDs adds the "fine_tuning_jobs" edge to the FineTuningJob entity by ids.
func (m *TenantMutation) AddFineTuningJobIDs(ids ...string) {
	if m.fine_tuning_jobs == nil {
		m.fine_tuning_jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.fine_tuning_jobs[ids[i]] = struct{}{}
	}
}

// ClearFineTuningJobs clears the "fine_tuning_jobs" edge to the FineTuningJob entity.
func (m *TenantMutation) ClearFineTuningJobs() {
	m.clearedfine_tuning_jobs = true
}

// FineTuningJobsCleared reports if the "fine_tuning_jobs" edge to the FineTuningJob entity was cleared.
func (m *TenantMutation) FineTuningJobsCleared() bool {
	return m.clearedfine_tuning_jobs
}

// RemoveFineTuningJobIDs removes the "fine_tuning_jobs" edge to the FineTuningJob entity by IDs.
func (m *TenantMutation) RemoveFineTuningJobIDs(ids ...string) {
	if m.removedfine_tuning_jobs == nil {
		m.removedfine_tuning_jobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.fine_tuning_jobs, ids[i])
		m.removedfine_tuning_jobs[ids[i]] = struct{}{}
	}
}

// RemovedFineTuningJobs returns the removed IDs of the "fine_tuning_jobs" edge to the FineTuningJob entity.
func (m *TenantMutation) RemovedFineTuningJobsIDs() (ids []string) {
	for id := range m.removedfine_tuning_jobs {
		ids = append(ids, id)
	}
	return
}

// FineTuningJobsIDs returns the "fine_tuning_jobs" edge IDs in the mutation.
func (m *TenantMutation) FineTuningJobsIDs() (ids []string) {
	for id := range m.fine_tuning_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetFineTuningJobs resets all changes to the "fine_tuning_jobs" edge.
func (m *TenantMutation) ResetFineTuningJobs() {
	m.fine_tuning_jobs = nil
	m.clearedfine_tuning_jobs = false
	m.removedfine_tuning_jobs = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, tenant.FieldSlug)
	}
	if m.max_concurrent_sessions != nil {
		fields = append(fields, tenant.FieldMaxConcurrentSessions)
	}
	if m.max_tokens_per_month != nil {
		fields = append(fields, tenant.FieldMaxTokensPerMonth)
	}
	if m.active != nil {
		fields = append(fields, tenant.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldSlug:
		return m.Slug()
	case tenant.FieldMaxConcurrentSessions:
		return m.MaxConcurrentSessions()
	case tenant.FieldMaxTokensPerMonth:
		return m.MaxTokensPerMonth()
	case tenant.FieldActive:
		return m.Active()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldSlug:
		return m.OldSlug(ctx)
	case tenant.FieldMaxConcurrentSessions:
		return m.OldMaxConcurrentSessions(ctx)
	case tenant.FieldMaxTokensPerMonth:
		return m.OldMaxTokensPerMonth(ctx)
	case tenant.FieldActive:
		return m.OldActive(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case tenant.FieldMaxConcurrentSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrentSessions(v)
		return nil
	case tenant.FieldMaxTokensPerMonth:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokensPerMonth(v)
		return nil
	case tenant.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	var fields []string
	if m.addmax_concurrent_sessions != nil {
		fields = append(fields, tenant.FieldMaxConcurrentSessions)
	}
	if m.addmax_tokens_per_month != nil {
		fields = append(fields, tenant.FieldMaxTokensPerMonth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldMaxConcurrentSessions:
		return m.AddedMaxConcurrentSessions()
	case tenant.FieldMaxTokensPerMonth:
		return m.AddedMaxTokensPerMonth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldMaxConcurrentSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrentSessions(v)
		return nil
	case tenant.FieldMaxTokensPerMonth:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokensPerMonth(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldSlug:
		m.ResetSlug()
		return nil
	case tenant.FieldMaxConcurrentSessions:
		m.ResetMaxConcurrentSessions()
		return nil
	case tenant.FieldMaxTokensPerMonth:
		m.ResetMaxTokensPerMonth()
		return nil
	case tenant.FieldActive:
		m.ResetActive()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.sessions != nil {
		edges = append(edges, tenant.EdgeSessions)
	}
	if m.tasks != nil {
		edges = append(edges, tenant.EdgeTasks)
	}
	if m.contexts != nil {
		edges = append(edges, tenant.EdgeContexts)
	}
	if m.fine_tuning_jobs != nil {
		edges = append(edges, tenant.EdgeFineTuningJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeContexts:
		ids := make([]ent.Value, 0, len(m.contexts))
		for id := range m.contexts {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeFineTuningJobs:
		ids := make([]ent.Value, 0, len(m.fine_tuning_jobs))
		for id := range m.fine_tuning_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsessions != nil {
		edges = append(edges, tenant.EdgeSessions)
	}
	if m.removedtasks != nil {
		edges = append(edges, tenant.EdgeTasks)
	}
	if m.removedcontexts != nil {
		edges = append(edges, tenant.EdgeContexts)
	}
	if m.removedfine_tuning_jobs != nil {
		edges = append(edges, tenant.EdgeFineTuningJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeContexts:
		ids := make([]ent.Value, 0, len(m.removedcontexts))
		for id := range m.removedcontexts {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeFineTuningJobs:
		ids := make([]ent.Value, 0, len(m.removedfine_tuning_jobs))
		for id := range m.removedfine_tuning_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsessions {
		edges = append(edges, tenant.EdgeSessions)
	}
	if m.clearedtasks {
		edges = append(edges, tenant.EdgeTasks)
	}
	if m.clearedcontexts {
		edges = append(edges, tenant.EdgeContexts)
	}
	if m.clearedfine_tuning_jobs {
		edges = append(edges, tenant.EdgeFineTuningJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeSessions:
		return m.clearedsessions
	case tenant.EdgeTasks:
		return m.clearedtasks
	case tenant.EdgeContexts:
		return m.clearedcontexts
	case tenant.EdgeFineTuningJobs:
		return m.clearedfine_tuning_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeSessions:
		m.ResetSessions()
		return nil
	case tenant.EdgeTasks:
		m.ResetTasks()
		return nil
	case tenant.EdgeContexts:
		m.ResetContexts()
		return nil
	case tenant.EdgeFineTuningJobs:
		m.ResetFineTuningJobs()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}
