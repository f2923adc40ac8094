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
	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/ent/predicate"
	"github.com/venn-social/vennd/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCircle           = "Circle"
	TypeCollisionEvent   = "CollisionEvent"
	TypeInterviewMission = "InterviewMission"
	TypeMatch            = "Match"
	TypeUser             = "User"
)

// CircleMutation represents an operation that mutates the Circle nodes in the graph.
type CircleMutation struct {
	config
	op               Op
	typ              string
	id               *string
	objective        *string
	radius_meters    *float64
	addradius_meters *float64
	start_at         *time.Time
	expires_at       *time.Time
	status           *circle.Status
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	owner            *string
	clearedowner     bool
	done             bool
	oldValue         func(context.Context) (*Circle, error)
	predicates       []predicate.Circle
}

var _ ent.Mutation = (*CircleMutation)(nil)

// circleOption allows management of the mutation configuration using functional options.
type circleOption func(*CircleMutation)

// newCircleMutation creates new mutation for the Circle entity.
func newCircleMutation(c config, op Op, opts ...circleOption) *CircleMutation {
	m := &CircleMutation{
		config:        c,
		op:            op,
		typ:           TypeCircle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCircleID sets the ID field of the mutation.
func withCircleID(id string) circleOption {
	return func(m *CircleMutation) {
		var (
			err   error
			once  sync.Once
			value *Circle
		)
		m.oldValue = func(ctx context.Context) (*Circle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Circle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCircle sets the old Circle of the mutation.
func withCircle(node *Circle) circleOption {
	return func(m *CircleMutation) {
		m.oldValue = func(context.Context) (*Circle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CircleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CircleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Circle entities.
func (m *CircleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CircleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CircleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Circle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *CircleMutation) SetOwnerUserID(s string) {
	m.owner = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *CircleMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *CircleMutation) ResetOwnerUserID() {
	m.owner = nil
}

// SetObjective sets the "objective" field.
func (m *CircleMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *CircleMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *CircleMutation) ResetObjective() {
	m.objective = nil
}

// SetRadiusMeters sets the "radius_meters" field.
func (m *CircleMutation) SetRadiusMeters(f float64) {
	m.radius_meters = &f
	m.addradius_meters = nil
}

// RadiusMeters returns the value of the "radius_meters" field in the mutation.
func (m *CircleMutation) RadiusMeters() (r float64, exists bool) {
	v := m.radius_meters
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiusMeters returns the old "radius_meters" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldRadiusMeters(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiusMeters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiusMeters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiusMeters: %w", err)
	}
	return oldValue.RadiusMeters, nil
}

// AddRadiusMeters adds f to the "radius_meters" field.
func (m *CircleMutation) AddRadiusMeters(f float64) {
	if m.addradius_meters != nil {
		*m.addradius_meters += f
	} else {
		m.addradius_meters = &f
	}
}

// AddedRadiusMeters returns the value that was added to the "radius_meters" field in this mutation.
func (m *CircleMutation) AddedRadiusMeters() (r float64, exists bool) {
	v := m.addradius_meters
	if v == nil {
		return
	}
	return *v, true
}

// ResetRadiusMeters resets all changes to the "radius_meters" field.
func (m *CircleMutation) ResetRadiusMeters() {
	m.radius_meters = nil
	m.addradius_meters = nil
}

// SetStartAt sets the "start_at" field.
func (m *CircleMutation) SetStartAt(t time.Time) {
	m.start_at = &t
}

// StartAt returns the value of the "start_at" field in the mutation.
func (m *CircleMutation) StartAt() (r time.Time, exists bool) {
	v := m.start_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartAt returns the old "start_at" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldStartAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartAt: %w", err)
	}
	return oldValue.StartAt, nil
}

// ResetStartAt resets all changes to the "start_at" field.
func (m *CircleMutation) ResetStartAt() {
	m.start_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *CircleMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CircleMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
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

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CircleMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetStatus sets the "status" field.
func (m *CircleMutation) SetStatus(c circle.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CircleMutation) Status() (r circle.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldStatus(ctx context.Context) (v circle.Status, err error) {
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
func (m *CircleMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CircleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CircleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CircleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CircleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CircleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Circle entity.
// If the Circle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CircleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *CircleMutation) SetOwnerID(id string) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *CircleMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[circle.FieldOwnerUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *CircleMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *CircleMutation) OwnerID() (id string, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *CircleMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *CircleMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the CircleMutation builder.
func (m *CircleMutation) Where(ps ...predicate.Circle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CircleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CircleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Circle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CircleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CircleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Circle).
func (m *CircleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CircleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner != nil {
		fields = append(fields, circle.FieldOwnerUserID)
	}
	if m.objective != nil {
		fields = append(fields, circle.FieldObjective)
	}
	if m.radius_meters != nil {
		fields = append(fields, circle.FieldRadiusMeters)
	}
	if m.start_at != nil {
		fields = append(fields, circle.FieldStartAt)
	}
	if m.expires_at != nil {
		fields = append(fields, circle.FieldExpiresAt)
	}
	if m.status != nil {
		fields = append(fields, circle.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, circle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, circle.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CircleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case circle.FieldOwnerUserID:
		return m.OwnerUserID()
	case circle.FieldObjective:
		return m.Objective()
	case circle.FieldRadiusMeters:
		return m.RadiusMeters()
	case circle.FieldStartAt:
		return m.StartAt()
	case circle.FieldExpiresAt:
		return m.ExpiresAt()
	case circle.FieldStatus:
		return m.Status()
	case circle.FieldCreatedAt:
		return m.CreatedAt()
	case circle.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CircleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case circle.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case circle.FieldObjective:
		return m.OldObjective(ctx)
	case circle.FieldRadiusMeters:
		return m.OldRadiusMeters(ctx)
	case circle.FieldStartAt:
		return m.OldStartAt(ctx)
	case circle.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case circle.FieldStatus:
		return m.OldStatus(ctx)
	case circle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case circle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Circle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case circle.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case circle.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case circle.FieldRadiusMeters:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiusMeters(v)
		return nil
	case circle.FieldStartAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartAt(v)
		return nil
	case circle.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case circle.FieldStatus:
		v, ok := value.(circle.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case circle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case circle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Circle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CircleMutation) AddedFields() []string {
	var fields []string
	if m.addradius_meters != nil {
		fields = append(fields, circle.FieldRadiusMeters)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CircleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case circle.FieldRadiusMeters:
		return m.AddedRadiusMeters()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case circle.FieldRadiusMeters:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRadiusMeters(v)
		return nil
	}
	return fmt.Errorf("unknown Circle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CircleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CircleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CircleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Circle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CircleMutation) ResetField(name string) error {
	switch name {
	case circle.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case circle.FieldObjective:
		m.ResetObjective()
		return nil
	case circle.FieldRadiusMeters:
		m.ResetRadiusMeters()
		return nil
	case circle.FieldStartAt:
		m.ResetStartAt()
		return nil
	case circle.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case circle.FieldStatus:
		m.ResetStatus()
		return nil
	case circle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case circle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Circle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CircleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, circle.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CircleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case circle.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CircleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CircleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CircleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, circle.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CircleMutation) EdgeCleared(name string) bool {
	switch name {
	case circle.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CircleMutation) ClearEdge(name string) error {
	switch name {
	case circle.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Circle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CircleMutation) ResetEdge(name string) error {
	switch name {
	case circle.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Circle edge %s", name)
}

// CollisionEventMutation represents an operation that mutates the CollisionEvent nodes in the graph.
type CollisionEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	pair_key           *string
	circle1_id         *string
	circle2_id         *string
	user1_id           *string
	user2_id           *string
	distance_meters    *float64
	adddistance_meters *float64
	first_seen_at      *time.Time
	last_seen_at       *time.Time
	status             *collisionevent.Status
	mission_id         *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	missions           map[string]struct{}
	removedmissions    map[string]struct{}
	clearedmissions    bool
	done               bool
	oldValue           func(context.Context) (*CollisionEvent, error)
	predicates         []predicate.CollisionEvent
}

var _ ent.Mutation = (*CollisionEventMutation)(nil)

// collisioneventOption allows management of the mutation configuration using functional options.
type collisioneventOption func(*CollisionEventMutation)

// newCollisionEventMutation creates new mutation for the CollisionEvent entity.
func newCollisionEventMutation(c config, op Op, opts ...collisioneventOption) *CollisionEventMutation {
	m := &CollisionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCollisionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollisionEventID sets the ID field of the mutation.
func withCollisionEventID(id string) collisioneventOption {
	return func(m *CollisionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CollisionEvent
		)
		m.oldValue = func(ctx context.Context) (*CollisionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollisionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollisionEvent sets the old CollisionEvent of the mutation.
func withCollisionEvent(node *CollisionEvent) collisioneventOption {
	return func(m *CollisionEventMutation) {
		m.oldValue = func(context.Context) (*CollisionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollisionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollisionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollisionEvent entities.
func (m *CollisionEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollisionEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollisionEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollisionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPairKey sets the "pair_key" field.
func (m *CollisionEventMutation) SetPairKey(s string) {
	m.pair_key = &s
}

// PairKey returns the value of the "pair_key" field in the mutation.
func (m *CollisionEventMutation) PairKey() (r string, exists bool) {
	v := m.pair_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPairKey returns the old "pair_key" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldPairKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPairKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPairKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPairKey: %w", err)
	}
	return oldValue.PairKey, nil
}

// ResetPairKey resets all changes to the "pair_key" field.
func (m *CollisionEventMutation) ResetPairKey() {
	m.pair_key = nil
}

// SetCircle1ID sets the "circle1_id" field.
func (m *CollisionEventMutation) SetCircle1ID(s string) {
	m.circle1_id = &s
}

// Circle1ID returns the value of the "circle1_id" field in the mutation.
func (m *CollisionEventMutation) Circle1ID() (r string, exists bool) {
	v := m.circle1_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCircle1ID returns the old "circle1_id" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldCircle1ID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCircle1ID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCircle1ID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCircle1ID: %w", err)
	}
	return oldValue.Circle1ID, nil
}

// ResetCircle1ID resets all changes to the "circle1_id" field.
func (m *CollisionEventMutation) ResetCircle1ID() {
	m.circle1_id = nil
}

// SetCircle2ID sets the "circle2_id" field.
func (m *CollisionEventMutation) SetCircle2ID(s string) {
	m.circle2_id = &s
}

// Circle2ID returns the value of the "circle2_id" field in the mutation.
func (m *CollisionEventMutation) Circle2ID() (r string, exists bool) {
	v := m.circle2_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCircle2ID returns the old "circle2_id" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldCircle2ID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCircle2ID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCircle2ID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCircle2ID: %w", err)
	}
	return oldValue.Circle2ID, nil
}

// ResetCircle2ID resets all changes to the "circle2_id" field.
func (m *CollisionEventMutation) ResetCircle2ID() {
	m.circle2_id = nil
}

// SetUser1ID sets the "user1_id" field.
func (m *CollisionEventMutation) SetUser1ID(s string) {
	m.user1_id = &s
}

// User1ID returns the value of the "user1_id" field in the mutation.
func (m *CollisionEventMutation) User1ID() (r string, exists bool) {
	v := m.user1_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUser1ID returns the old "user1_id" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldUser1ID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUser1ID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUser1ID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUser1ID: %w", err)
	}
	return oldValue.User1ID, nil
}

// ResetUser1ID resets all changes to the "user1_id" field.
func (m *CollisionEventMutation) ResetUser1ID() {
	m.user1_id = nil
}

// SetUser2ID sets the "user2_id" field.
func (m *CollisionEventMutation) SetUser2ID(s string) {
	m.user2_id = &s
}

// User2ID returns the value of the "user2_id" field in the mutation.
func (m *CollisionEventMutation) User2ID() (r string, exists bool) {
	v := m.user2_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUser2ID returns the old "user2_id" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldUser2ID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUser2ID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUser2ID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUser2ID: %w", err)
	}
	return oldValue.User2ID, nil
}

// ResetUser2ID resets all changes to the "user2_id" field.
func (m *CollisionEventMutation) ResetUser2ID() {
	m.user2_id = nil
}

// SetDistanceMeters sets the "distance_meters" field.
func (m *CollisionEventMutation) SetDistanceMeters(f float64) {
	m.distance_meters = &f
	m.adddistance_meters = nil
}

// DistanceMeters returns the value of the "distance_meters" field in the mutation.
func (m *CollisionEventMutation) DistanceMeters() (r float64, exists bool) {
	v := m.distance_meters
	if v == nil {
		return
	}
	return *v, true
}

// OldDistanceMeters returns the old "distance_meters" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldDistanceMeters(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistanceMeters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistanceMeters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistanceMeters: %w", err)
	}
	return oldValue.DistanceMeters, nil
}

// AddDistanceMeters adds f to the "distance_meters" field.
func (m *CollisionEventMutation) AddDistanceMeters(f float64) {
	if m.adddistance_meters != nil {
		*m.adddistance_meters += f
	} else {
		m.adddistance_meters = &f
	}
}

// AddedDistanceMeters returns the value that was added to the "distance_meters" field in this mutation.
func (m *CollisionEventMutation) AddedDistanceMeters() (r float64, exists bool) {
	v := m.adddistance_meters
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistanceMeters resets all changes to the "distance_meters" field.
func (m *CollisionEventMutation) ResetDistanceMeters() {
	m.distance_meters = nil
	m.adddistance_meters = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *CollisionEventMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *CollisionEventMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *CollisionEventMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *CollisionEventMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *CollisionEventMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *CollisionEventMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetStatus sets the "status" field.
func (m *CollisionEventMutation) SetStatus(c collisionevent.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CollisionEventMutation) Status() (r collisionevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldStatus(ctx context.Context) (v collisionevent.Status, err error) {
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
func (m *CollisionEventMutation) ResetStatus() {
	m.status = nil
}

// SetMissionID sets the "mission_id" field.
func (m *CollisionEventMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *CollisionEventMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *CollisionEventMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[collisionevent.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *CollisionEventMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[collisionevent.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *CollisionEventMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, collisionevent.FieldMissionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CollisionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollisionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CollisionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CollisionEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CollisionEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CollisionEvent entity.
// If the CollisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollisionEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CollisionEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMissionIDs adds the "missions" edge to the InterviewMission entity by ids.
func (m *CollisionEventMutation) AddMissionIDs(ids ...string) {
	if m.missions == nil {
		m.missions = make(map[string]struct{})
	}
	for i := range ids {
		m.missions[ids[i]] = struct{}{}
	}
}

// ClearMissions clears the "missions" edge to the InterviewMission entity.
func (m *CollisionEventMutation) ClearMissions() {
	m.clearedmissions = true
}

// MissionsCleared reports if the "missions" edge to the InterviewMission entity was cleared.
func (m *CollisionEventMutation) MissionsCleared() bool {
	return m.clearedmissions
}

// RemoveMissionIDs removes the "missions" edge to the InterviewMission entity by IDs.
func (m *CollisionEventMutation) RemoveMissionIDs(ids ...string) {
	if m.removedmissions == nil {
		m.removedmissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.missions, ids[i])
		m.removedmissions[ids[i]] = struct{}{}
	}
}

// RemovedMissions returns the removed IDs of the "missions" edge to the InterviewMission entity.
func (m *CollisionEventMutation) RemovedMissionsIDs() (ids []string) {
	for id := range m.removedmissions {
		ids = append(ids, id)
	}
	return
}

// MissionsIDs returns the "missions" edge IDs in the mutation.
func (m *CollisionEventMutation) MissionsIDs() (ids []string) {
	for id := range m.missions {
		ids = append(ids, id)
	}
	return
}

// ResetMissions resets all changes to the "missions" edge.
func (m *CollisionEventMutation) ResetMissions() {
	m.missions = nil
	m.clearedmissions = false
	m.removedmissions = nil
}

// Where appends a list predicates to the CollisionEventMutation builder.
func (m *CollisionEventMutation) Where(ps ...predicate.CollisionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollisionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollisionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollisionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollisionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollisionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollisionEvent).
func (m *CollisionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollisionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.pair_key != nil {
		fields = append(fields, collisionevent.FieldPairKey)
	}
	if m.circle1_id != nil {
		fields = append(fields, collisionevent.FieldCircle1ID)
	}
	if m.circle2_id != nil {
		fields = append(fields, collisionevent.FieldCircle2ID)
	}
	if m.user1_id != nil {
		fields = append(fields, collisionevent.FieldUser1ID)
	}
	if m.user2_id != nil {
		fields = append(fields, collisionevent.FieldUser2ID)
	}
	if m.distance_meters != nil {
		fields = append(fields, collisionevent.FieldDistanceMeters)
	}
	if m.first_seen_at != nil {
		fields = append(fields, collisionevent.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, collisionevent.FieldLastSeenAt)
	}
	if m.status != nil {
		fields = append(fields, collisionevent.FieldStatus)
	}
	if m.mission_id != nil {
		fields = append(fields, collisionevent.FieldMissionID)
	}
	if m.created_at != nil {
		fields = append(fields, collisionevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, collisionevent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollisionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collisionevent.FieldPairKey:
		return m.PairKey()
	case collisionevent.FieldCircle1ID:
		return m.Circle1ID()
	case collisionevent.FieldCircle2ID:
		return m.Circle2ID()
	case collisionevent.FieldUser1ID:
		return m.User1ID()
	case collisionevent.FieldUser2ID:
		return m.User2ID()
	case collisionevent.FieldDistanceMeters:
		return m.DistanceMeters()
	case collisionevent.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case collisionevent.FieldLastSeenAt:
		return m.LastSeenAt()
	case collisionevent.FieldStatus:
		return m.Status()
	case collisionevent.FieldMissionID:
		return m.MissionID()
	case collisionevent.FieldCreatedAt:
		return m.CreatedAt()
	case collisionevent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollisionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collisionevent.FieldPairKey:
		return m.OldPairKey(ctx)
	case collisionevent.FieldCircle1ID:
		return m.OldCircle1ID(ctx)
	case collisionevent.FieldCircle2ID:
		return m.OldCircle2ID(ctx)
	case collisionevent.FieldUser1ID:
		return m.OldUser1ID(ctx)
	case collisionevent.FieldUser2ID:
		return m.OldUser2ID(ctx)
	case collisionevent.FieldDistanceMeters:
		return m.OldDistanceMeters(ctx)
	case collisionevent.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case collisionevent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case collisionevent.FieldStatus:
		return m.OldStatus(ctx)
	case collisionevent.FieldMissionID:
		return m.OldMissionID(ctx)
	case collisionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case collisionevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CollisionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollisionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collisionevent.FieldPairKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPairKey(v)
		return nil
	case collisionevent.FieldCircle1ID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCircle1ID(v)
		return nil
	case collisionevent.FieldCircle2ID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCircle2ID(v)
		return nil
	case collisionevent.FieldUser1ID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUser1ID(v)
		return nil
	case collisionevent.FieldUser2ID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUser2ID(v)
		return nil
	case collisionevent.FieldDistanceMeters:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistanceMeters(v)
		return nil
	case collisionevent.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case collisionevent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case collisionevent.FieldStatus:
		v, ok := value.(collisionevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case collisionevent.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case collisionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case collisionevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CollisionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollisionEventMutation) AddedFields() []string {
	var fields []string
	if m.adddistance_meters != nil {
		fields = append(fields, collisionevent.FieldDistanceMeters)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollisionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case collisionevent.FieldDistanceMeters:
		return m.AddedDistanceMeters()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollisionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case collisionevent.FieldDistanceMeters:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistanceMeters(v)
		return nil
	}
	return fmt.Errorf("unknown CollisionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollisionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collisionevent.FieldMissionID) {
		fields = append(fields, collisionevent.FieldMissionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollisionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollisionEventMutation) ClearField(name string) error {
	switch name {
	case collisionevent.FieldMissionID:
		m.ClearMissionID()
		return nil
	}
	return fmt.Errorf("unknown CollisionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollisionEventMutation) ResetField(name string) error {
	switch name {
	case collisionevent.FieldPairKey:
		m.ResetPairKey()
		return nil
	case collisionevent.FieldCircle1ID:
		m.ResetCircle1ID()
		return nil
	case collisionevent.FieldCircle2ID:
		m.ResetCircle2ID()
		return nil
	case collisionevent.FieldUser1ID:
		m.ResetUser1ID()
		return nil
	case collisionevent.FieldUser2ID:
		m.ResetUser2ID()
		return nil
	case collisionevent.FieldDistanceMeters:
		m.ResetDistanceMeters()
		return nil
	case collisionevent.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case collisionevent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case collisionevent.FieldStatus:
		m.ResetStatus()
		return nil
	case collisionevent.FieldMissionID:
		m.ResetMissionID()
		return nil
	case collisionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case collisionevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CollisionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollisionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.missions != nil {
		edges = append(edges, collisionevent.EdgeMissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollisionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case collisionevent.EdgeMissions:
		ids := make([]ent.Value, 0, len(m.missions))
		for id := range m.missions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollisionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmissions != nil {
		edges = append(edges, collisionevent.EdgeMissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollisionEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case collisionevent.EdgeMissions:
		ids := make([]ent.Value, 0, len(m.removedmissions))
		for id := range m.removedmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollisionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmissions {
		edges = append(edges, collisionevent.EdgeMissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollisionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case collisionevent.EdgeMissions:
		return m.clearedmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollisionEventMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CollisionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollisionEventMutation) ResetEdge(name string) error {
	switch name {
	case collisionevent.EdgeMissions:
		m.ResetMissions()
		return nil
	}
	return fmt.Errorf("unknown CollisionEvent edge %s", name)
}

// InterviewMissionMutation represents an operation that mutates the InterviewMission nodes in the graph.
type InterviewMissionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	owner_user_id          *string
	visitor_user_id        *string
	owner_circle_id        *string
	visitor_circle_id      *string
	circle_pair_key        *string
	status                 *interviewmission.Status
	attempt_number         *int
	addattempt_number      *int
	payload                *map[string]interface{}
	transcript             *[]map[string]interface{}
	appendtranscript       []map[string]interface{}
	judge_decision         *map[string]interface{}
	failure_reason         *string
	pod_id                 *string
	started_at             *time.Time
	completed_at           *time.Time
	last_heartbeat_at      *time.Time
	delivery_attempts      *int
	adddelivery_attempts   *int
	next_attempt_at        *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	collision_event        *string
	clearedcollision_event bool
	match                  *string
	clearedmatch           bool
	done                   bool
	oldValue               func(context.Context) (*InterviewMission, error)
	predicates             []predicate.InterviewMission
}

var _ ent.Mutation = (*InterviewMissionMutation)(nil)

// interviewmissionOption allows management of the mutation configuration using functional options.
type interviewmissionOption func(*InterviewMissionMutation)

// newInterviewMissionMutation creates new mutation for the InterviewMission entity.
func newInterviewMissionMutation(c config, op Op, opts ...interviewmissionOption) *InterviewMissionMutation {
	m := &InterviewMissionMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewMissionID sets the ID field of the mutation.
func withInterviewMissionID(id string) interviewmissionOption {
	return func(m *InterviewMissionMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewMission
		)
		m.oldValue = func(ctx context.Context) (*InterviewMission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewMission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewMission sets the old InterviewMission of the mutation.
func withInterviewMission(node *InterviewMission) interviewmissionOption {
	return func(m *InterviewMissionMutation) {
		m.oldValue = func(context.Context) (*InterviewMission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewMissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewMissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterviewMission entities.
func (m *InterviewMissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewMissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewMissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewMission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCollisionEventID sets the "collision_event_id" field.
func (m *InterviewMissionMutation) SetCollisionEventID(s string) {
	m.collision_event = &s
}

// CollisionEventID returns the value of the "collision_event_id" field in the mutation.
func (m *InterviewMissionMutation) CollisionEventID() (r string, exists bool) {
	v := m.collision_event
	if v == nil {
		return
	}
	return *v, true
}

// OldCollisionEventID returns the old "collision_event_id" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldCollisionEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollisionEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollisionEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollisionEventID: %w", err)
	}
	return oldValue.CollisionEventID, nil
}

// ResetCollisionEventID resets all changes to the "collision_event_id" field.
func (m *InterviewMissionMutation) ResetCollisionEventID() {
	m.collision_event = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *InterviewMissionMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *InterviewMissionMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *InterviewMissionMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
}

// SetVisitorUserID sets the "visitor_user_id" field.
func (m *InterviewMissionMutation) SetVisitorUserID(s string) {
	m.visitor_user_id = &s
}

// VisitorUserID returns the value of the "visitor_user_id" field in the mutation.
func (m *InterviewMissionMutation) VisitorUserID() (r string, exists bool) {
	v := m.visitor_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorUserID returns the old "visitor_user_id" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldVisitorUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorUserID: %w", err)
	}
	return oldValue.VisitorUserID, nil
}

// ResetVisitorUserID resets all changes to the "visitor_user_id" field.
func (m *InterviewMissionMutation) ResetVisitorUserID() {
	m.visitor_user_id = nil
}

// SetOwnerCircleID sets the "owner_circle_id" field.
func (m *InterviewMissionMutation) SetOwnerCircleID(s string) {
	m.owner_circle_id = &s
}

// OwnerCircleID returns the value of the "owner_circle_id" field in the mutation.
func (m *InterviewMissionMutation) OwnerCircleID() (r string, exists bool) {
	v := m.owner_circle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerCircleID returns the old "owner_circle_id" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldOwnerCircleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerCircleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerCircleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerCircleID: %w", err)
	}
	return oldValue.OwnerCircleID, nil
}

// ResetOwnerCircleID resets all changes to the "owner_circle_id" field.
func (m *InterviewMissionMutation) ResetOwnerCircleID() {
	m.owner_circle_id = nil
}

// SetVisitorCircleID sets the "visitor_circle_id" field.
func (m *InterviewMissionMutation) SetVisitorCircleID(s string) {
	m.visitor_circle_id = &s
}

// VisitorCircleID returns the value of the "visitor_circle_id" field in the mutation.
func (m *InterviewMissionMutation) VisitorCircleID() (r string, exists bool) {
	v := m.visitor_circle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorCircleID returns the old "visitor_circle_id" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldVisitorCircleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorCircleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorCircleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorCircleID: %w", err)
	}
	return oldValue.VisitorCircleID, nil
}

// ResetVisitorCircleID resets all changes to the "visitor_circle_id" field.
func (m *InterviewMissionMutation) ResetVisitorCircleID() {
	m.visitor_circle_id = nil
}

// SetCirclePairKey sets the "circle_pair_key" field.
func (m *InterviewMissionMutation) SetCirclePairKey(s string) {
	m.circle_pair_key = &s
}

// CirclePairKey returns the value of the "circle_pair_key" field in the mutation.
func (m *InterviewMissionMutation) CirclePairKey() (r string, exists bool) {
	v := m.circle_pair_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCirclePairKey returns the old "circle_pair_key" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldCirclePairKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCirclePairKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCirclePairKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCirclePairKey: %w", err)
	}
	return oldValue.CirclePairKey, nil
}

// ResetCirclePairKey resets all changes to the "circle_pair_key" field.
func (m *InterviewMissionMutation) ResetCirclePairKey() {
	m.circle_pair_key = nil
}

// SetStatus sets the "status" field.
func (m *InterviewMissionMutation) SetStatus(i interviewmission.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InterviewMissionMutation) Status() (r interviewmission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldStatus(ctx context.Context) (v interviewmission.Status, err error) {
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
func (m *InterviewMissionMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *InterviewMissionMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *InterviewMissionMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *InterviewMissionMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *InterviewMissionMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *InterviewMissionMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetPayload sets the "payload" field.
func (m *InterviewMissionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InterviewMissionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
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

// ResetPayload resets all changes to the "payload" field.
func (m *InterviewMissionMutation) ResetPayload() {
	m.payload = nil
}

// SetTranscript sets the "transcript" field.
func (m *InterviewMissionMutation) SetTranscript(value []map[string]interface{}) {
	m.transcript = &value
	m.appendtranscript = nil
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *InterviewMissionMutation) Transcript() (r []map[string]interface{}, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldTranscript(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// AppendTranscript adds value to the "transcript" field.
func (m *InterviewMissionMutation) AppendTranscript(value []map[string]interface{}) {
	m.appendtranscript = append(m.appendtranscript, value...)
}

// AppendedTranscript returns the list of values that were appended to the "transcript" field in this mutation.
func (m *InterviewMissionMutation) AppendedTranscript() ([]map[string]interface{}, bool) {
	if len(m.appendtranscript) == 0 {
		return nil, false
	}
	return m.appendtranscript, true
}

// ClearTranscript clears the value of the "transcript" field.
func (m *InterviewMissionMutation) ClearTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
	m.clearedFields[interviewmission.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *InterviewMissionMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *InterviewMissionMutation) ResetTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
	delete(m.clearedFields, interviewmission.FieldTranscript)
}

// SetJudgeDecision sets the "judge_decision" field.
func (m *InterviewMissionMutation) SetJudgeDecision(value map[string]interface{}) {
	m.judge_decision = &value
}

// JudgeDecision returns the value of the "judge_decision" field in the mutation.
func (m *InterviewMissionMutation) JudgeDecision() (r map[string]interface{}, exists bool) {
	v := m.judge_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldJudgeDecision returns the old "judge_decision" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldJudgeDecision(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudgeDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudgeDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudgeDecision: %w", err)
	}
	return oldValue.JudgeDecision, nil
}

// ClearJudgeDecision clears the value of the "judge_decision" field.
func (m *InterviewMissionMutation) ClearJudgeDecision() {
	m.judge_decision = nil
	m.clearedFields[interviewmission.FieldJudgeDecision] = struct{}{}
}

// JudgeDecisionCleared returns if the "judge_decision" field was cleared in this mutation.
func (m *InterviewMissionMutation) JudgeDecisionCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldJudgeDecision]
	return ok
}

// ResetJudgeDecision resets all changes to the "judge_decision" field.
func (m *InterviewMissionMutation) ResetJudgeDecision() {
	m.judge_decision = nil
	delete(m.clearedFields, interviewmission.FieldJudgeDecision)
}

// SetFailureReason sets the "failure_reason" field.
func (m *InterviewMissionMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *InterviewMissionMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *InterviewMissionMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[interviewmission.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *InterviewMissionMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *InterviewMissionMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, interviewmission.FieldFailureReason)
}

// SetPodID sets the "pod_id" field.
func (m *InterviewMissionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *InterviewMissionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldPodID(ctx context.Context) (v *string, err error) {
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
func (m *InterviewMissionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[interviewmission.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *InterviewMissionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *InterviewMissionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, interviewmission.FieldPodID)
}

// SetStartedAt sets the "started_at" field.
func (m *InterviewMissionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InterviewMissionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *InterviewMissionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[interviewmission.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InterviewMissionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InterviewMissionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, interviewmission.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InterviewMissionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InterviewMissionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *InterviewMissionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[interviewmission.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InterviewMissionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InterviewMissionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, interviewmission.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *InterviewMissionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *InterviewMissionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *InterviewMissionMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[interviewmission.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *InterviewMissionMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[interviewmission.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *InterviewMissionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, interviewmission.FieldLastHeartbeatAt)
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (m *InterviewMissionMutation) SetDeliveryAttempts(i int) {
	m.delivery_attempts = &i
	m.adddelivery_attempts = nil
}

// DeliveryAttempts returns the value of the "delivery_attempts" field in the mutation.
func (m *InterviewMissionMutation) DeliveryAttempts() (r int, exists bool) {
	v := m.delivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryAttempts returns the old "delivery_attempts" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldDeliveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryAttempts: %w", err)
	}
	return oldValue.DeliveryAttempts, nil
}

// AddDeliveryAttempts adds i to the "delivery_attempts" field.
func (m *InterviewMissionMutation) AddDeliveryAttempts(i int) {
	if m.adddelivery_attempts != nil {
		*m.adddelivery_attempts += i
	} else {
		m.adddelivery_attempts = &i
	}
}

// AddedDeliveryAttempts returns the value that was added to the "delivery_attempts" field in this mutation.
func (m *InterviewMissionMutation) AddedDeliveryAttempts() (r int, exists bool) {
	v := m.adddelivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveryAttempts resets all changes to the "delivery_attempts" field.
func (m *InterviewMissionMutation) ResetDeliveryAttempts() {
	m.delivery_attempts = nil
	m.adddelivery_attempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *InterviewMissionMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *InterviewMissionMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *InterviewMissionMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InterviewMissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterviewMissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InterviewMissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InterviewMissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InterviewMissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InterviewMission entity.
// If the InterviewMission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewMissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InterviewMissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCollisionEvent clears the "collision_event" edge to the CollisionEvent entity.
func (m *InterviewMissionMutation) ClearCollisionEvent() {
	m.clearedcollision_event = true
	m.clearedFields[interviewmission.FieldCollisionEventID] = struct{}{}
}

// CollisionEventCleared reports if the "collision_event" edge to the CollisionEvent entity was cleared.
func (m *InterviewMissionMutation) CollisionEventCleared() bool {
	return m.clearedcollision_event
}

// CollisionEventIDs returns the "collision_event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CollisionEventID instead. It exists only for internal usage by the builders.
func (m *InterviewMissionMutation) CollisionEventIDs() (ids []string) {
	if id := m.collision_event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCollisionEvent resets all changes to the "collision_event" edge.
func (m *InterviewMissionMutation) ResetCollisionEvent() {
	m.collision_event = nil
	m.clearedcollision_event = false
}

// SetMatchID sets the "match" edge to the Match entity by id.
func (m *InterviewMissionMutation) SetMatchID(id string) {
	m.match = &id
}

// ClearMatch clears the "match" edge to the Match entity.
func (m *InterviewMissionMutation) ClearMatch() {
	m.clearedmatch = true
}

// MatchCleared reports if the "match" edge to the Match entity was cleared.
func (m *InterviewMissionMutation) MatchCleared() bool {
	return m.clearedmatch
}

// MatchID returns the "match" edge ID in the mutation.
func (m *InterviewMissionMutation) MatchID() (id string, exists bool) {
	if m.match != nil {
		return *m.match, true
	}
	return
}

// MatchIDs returns the "match" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatchID instead. It exists only for internal usage by the builders.
func (m *InterviewMissionMutation) MatchIDs() (ids []string) {
	if id := m.match; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatch resets all changes to the "match" edge.
func (m *InterviewMissionMutation) ResetMatch() {
	m.match = nil
	m.clearedmatch = false
}

// Where appends a list predicates to the InterviewMissionMutation builder.
func (m *InterviewMissionMutation) Where(ps ...predicate.InterviewMission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewMissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewMissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewMission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewMissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewMissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewMission).
func (m *InterviewMissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewMissionMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.collision_event != nil {
		fields = append(fields, interviewmission.FieldCollisionEventID)
	}
	if m.owner_user_id != nil {
		fields = append(fields, interviewmission.FieldOwnerUserID)
	}
	if m.visitor_user_id != nil {
		fields = append(fields, interviewmission.FieldVisitorUserID)
	}
	if m.owner_circle_id != nil {
		fields = append(fields, interviewmission.FieldOwnerCircleID)
	}
	if m.visitor_circle_id != nil {
		fields = append(fields, interviewmission.FieldVisitorCircleID)
	}
	if m.circle_pair_key != nil {
		fields = append(fields, interviewmission.FieldCirclePairKey)
	}
	if m.status != nil {
		fields = append(fields, interviewmission.FieldStatus)
	}
	if m.attempt_number != nil {
		fields = append(fields, interviewmission.FieldAttemptNumber)
	}
	if m.payload != nil {
		fields = append(fields, interviewmission.FieldPayload)
	}
	if m.transcript != nil {
		fields = append(fields, interviewmission.FieldTranscript)
	}
	if m.judge_decision != nil {
		fields = append(fields, interviewmission.FieldJudgeDecision)
	}
	if m.failure_reason != nil {
		fields = append(fields, interviewmission.FieldFailureReason)
	}
	if m.pod_id != nil {
		fields = append(fields, interviewmission.FieldPodID)
	}
	if m.started_at != nil {
		fields = append(fields, interviewmission.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, interviewmission.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, interviewmission.FieldLastHeartbeatAt)
	}
	if m.delivery_attempts != nil {
		fields = append(fields, interviewmission.FieldDeliveryAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, interviewmission.FieldNextAttemptAt)
	}
	if m.created_at != nil {
		fields = append(fields, interviewmission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interviewmission.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewMissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewmission.FieldCollisionEventID:
		return m.CollisionEventID()
	case interviewmission.FieldOwnerUserID:
		return m.OwnerUserID()
	case interviewmission.FieldVisitorUserID:
		return m.VisitorUserID()
	case interviewmission.FieldOwnerCircleID:
		return m.OwnerCircleID()
	case interviewmission.FieldVisitorCircleID:
		return m.VisitorCircleID()
	case interviewmission.FieldCirclePairKey:
		return m.CirclePairKey()
	case interviewmission.FieldStatus:
		return m.Status()
	case interviewmission.FieldAttemptNumber:
		return m.AttemptNumber()
	case interviewmission.FieldPayload:
		return m.Payload()
	case interviewmission.FieldTranscript:
		return m.Transcript()
	case interviewmission.FieldJudgeDecision:
		return m.JudgeDecision()
	case interviewmission.FieldFailureReason:
		return m.FailureReason()
	case interviewmission.FieldPodID:
		return m.PodID()
	case interviewmission.FieldStartedAt:
		return m.StartedAt()
	case interviewmission.FieldCompletedAt:
		return m.CompletedAt()
	case interviewmission.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case interviewmission.FieldDeliveryAttempts:
		return m.DeliveryAttempts()
	case interviewmission.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case interviewmission.FieldCreatedAt:
		return m.CreatedAt()
	case interviewmission.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewMissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewmission.FieldCollisionEventID:
		return m.OldCollisionEventID(ctx)
	case interviewmission.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case interviewmission.FieldVisitorUserID:
		return m.OldVisitorUserID(ctx)
	case interviewmission.FieldOwnerCircleID:
		return m.OldOwnerCircleID(ctx)
	case interviewmission.FieldVisitorCircleID:
		return m.OldVisitorCircleID(ctx)
	case interviewmission.FieldCirclePairKey:
		return m.OldCirclePairKey(ctx)
	case interviewmission.FieldStatus:
		return m.OldStatus(ctx)
	case interviewmission.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case interviewmission.FieldPayload:
		return m.OldPayload(ctx)
	case interviewmission.FieldTranscript:
		return m.OldTranscript(ctx)
	case interviewmission.FieldJudgeDecision:
		return m.OldJudgeDecision(ctx)
	case interviewmission.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case interviewmission.FieldPodID:
		return m.OldPodID(ctx)
	case interviewmission.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case interviewmission.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case interviewmission.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case interviewmission.FieldDeliveryAttempts:
		return m.OldDeliveryAttempts(ctx)
	case interviewmission.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case interviewmission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interviewmission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewMission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewMissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewmission.FieldCollisionEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollisionEventID(v)
		return nil
	case interviewmission.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case interviewmission.FieldVisitorUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorUserID(v)
		return nil
	case interviewmission.FieldOwnerCircleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerCircleID(v)
		return nil
	case interviewmission.FieldVisitorCircleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorCircleID(v)
		return nil
	case interviewmission.FieldCirclePairKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCirclePairKey(v)
		return nil
	case interviewmission.FieldStatus:
		v, ok := value.(interviewmission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case interviewmission.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case interviewmission.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case interviewmission.FieldTranscript:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case interviewmission.FieldJudgeDecision:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudgeDecision(v)
		return nil
	case interviewmission.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case interviewmission.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case interviewmission.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case interviewmission.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case interviewmission.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case interviewmission.FieldDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryAttempts(v)
		return nil
	case interviewmission.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case interviewmission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interviewmission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewMission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewMissionMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, interviewmission.FieldAttemptNumber)
	}
	if m.adddelivery_attempts != nil {
		fields = append(fields, interviewmission.FieldDeliveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewMissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interviewmission.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case interviewmission.FieldDeliveryAttempts:
		return m.AddedDeliveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewMissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interviewmission.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case interviewmission.FieldDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewMission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewMissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interviewmission.FieldTranscript) {
		fields = append(fields, interviewmission.FieldTranscript)
	}
	if m.FieldCleared(interviewmission.FieldJudgeDecision) {
		fields = append(fields, interviewmission.FieldJudgeDecision)
	}
	if m.FieldCleared(interviewmission.FieldFailureReason) {
		fields = append(fields, interviewmission.FieldFailureReason)
	}
	if m.FieldCleared(interviewmission.FieldPodID) {
		fields = append(fields, interviewmission.FieldPodID)
	}
	if m.FieldCleared(interviewmission.FieldStartedAt) {
		fields = append(fields, interviewmission.FieldStartedAt)
	}
	if m.FieldCleared(interviewmission.FieldCompletedAt) {
		fields = append(fields, interviewmission.FieldCompletedAt)
	}
	if m.FieldCleared(interviewmission.FieldLastHeartbeatAt) {
		fields = append(fields, interviewmission.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewMissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewMissionMutation) ClearField(name string) error {
	switch name {
	case interviewmission.FieldTranscript:
		m.ClearTranscript()
		return nil
	case interviewmission.FieldJudgeDecision:
		m.ClearJudgeDecision()
		return nil
	case interviewmission.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case interviewmission.FieldPodID:
		m.ClearPodID()
		return nil
	case interviewmission.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case interviewmission.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case interviewmission.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewMission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewMissionMutation) ResetField(name string) error {
	switch name {
	case interviewmission.FieldCollisionEventID:
		m.ResetCollisionEventID()
		return nil
	case interviewmission.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case interviewmission.FieldVisitorUserID:
		m.ResetVisitorUserID()
		return nil
	case interviewmission.FieldOwnerCircleID:
		m.ResetOwnerCircleID()
		return nil
	case interviewmission.FieldVisitorCircleID:
		m.ResetVisitorCircleID()
		return nil
	case interviewmission.FieldCirclePairKey:
		m.ResetCirclePairKey()
		return nil
	case interviewmission.FieldStatus:
		m.ResetStatus()
		return nil
	case interviewmission.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case interviewmission.FieldPayload:
		m.ResetPayload()
		return nil
	case interviewmission.FieldTranscript:
		m.ResetTranscript()
		return nil
	case interviewmission.FieldJudgeDecision:
		m.ResetJudgeDecision()
		return nil
	case interviewmission.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case interviewmission.FieldPodID:
		m.ResetPodID()
		return nil
	case interviewmission.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case interviewmission.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case interviewmission.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case interviewmission.FieldDeliveryAttempts:
		m.ResetDeliveryAttempts()
		return nil
	case interviewmission.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case interviewmission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interviewmission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewMission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewMissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.collision_event != nil {
		edges = append(edges, interviewmission.EdgeCollisionEvent)
	}
	if m.match != nil {
		edges = append(edges, interviewmission.EdgeMatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewMissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interviewmission.EdgeCollisionEvent:
		if id := m.collision_event; id != nil {
			return []ent.Value{*id}
		}
	case interviewmission.EdgeMatch:
		if id := m.match; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewMissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewMissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewMissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcollision_event {
		edges = append(edges, interviewmission.EdgeCollisionEvent)
	}
	if m.clearedmatch {
		edges = append(edges, interviewmission.EdgeMatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewMissionMutation) EdgeCleared(name string) bool {
	switch name {
	case interviewmission.EdgeCollisionEvent:
		return m.clearedcollision_event
	case interviewmission.EdgeMatch:
		return m.clearedmatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewMissionMutation) ClearEdge(name string) error {
	switch name {
	case interviewmission.EdgeCollisionEvent:
		m.ClearCollisionEvent()
		return nil
	case interviewmission.EdgeMatch:
		m.ClearMatch()
		return nil
	}
	return fmt.Errorf("unknown InterviewMission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewMissionMutation) ResetEdge(name string) error {
	switch name {
	case interviewmission.EdgeCollisionEvent:
		m.ResetCollisionEvent()
		return nil
	case interviewmission.EdgeMatch:
		m.ResetMatch()
		return nil
	}
	return fmt.Errorf("unknown InterviewMission edge %s", name)
}

// MatchMutation represents an operation that mutates the Match nodes in the graph.
type MatchMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	primary_user_id     *string
	secondary_user_id   *string
	primary_circle_id   *string
	secondary_circle_id *string
	_type               *match.Type
	worth_it_score      *float64
	addworth_it_score   *float64
	status              *match.Status
	explanation_summary *string
	responded_at        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	mission             *string
	clearedmission      bool
	done                bool
	oldValue            func(context.Context) (*Match, error)
	predicates          []predicate.Match
}

var _ ent.Mutation = (*MatchMutation)(nil)

// matchOption allows management of the mutation configuration using functional options.
type matchOption func(*MatchMutation)

// newMatchMutation creates new mutation for the Match entity.
func newMatchMutation(c config, op Op, opts ...matchOption) *MatchMutation {
	m := &MatchMutation{
		config:        c,
		op:            op,
		typ:           TypeMatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchID sets the ID field of the mutation.
func withMatchID(id string) matchOption {
	return func(m *MatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Match
		)
		m.oldValue = func(ctx context.Context) (*Match, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Match.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatch sets the old Match of the mutation.
func withMatch(node *Match) matchOption {
	return func(m *MatchMutation) {
		m.oldValue = func(context.Context) (*Match, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Match entities.
func (m *MatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Match.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *MatchMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *MatchMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *MatchMutation) ResetMissionID() {
	m.mission = nil
}

// SetPrimaryUserID sets the "primary_user_id" field.
func (m *MatchMutation) SetPrimaryUserID(s string) {
	m.primary_user_id = &s
}

// PrimaryUserID returns the value of the "primary_user_id" field in the mutation.
func (m *MatchMutation) PrimaryUserID() (r string, exists bool) {
	v := m.primary_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryUserID returns the old "primary_user_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldPrimaryUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryUserID: %w", err)
	}
	return oldValue.PrimaryUserID, nil
}

// ResetPrimaryUserID resets all changes to the "primary_user_id" field.
func (m *MatchMutation) ResetPrimaryUserID() {
	m.primary_user_id = nil
}

// SetSecondaryUserID sets the "secondary_user_id" field.
func (m *MatchMutation) SetSecondaryUserID(s string) {
	m.secondary_user_id = &s
}

// SecondaryUserID returns the value of the "secondary_user_id" field in the mutation.
func (m *MatchMutation) SecondaryUserID() (r string, exists bool) {
	v := m.secondary_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryUserID returns the old "secondary_user_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldSecondaryUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryUserID: %w", err)
	}
	return oldValue.SecondaryUserID, nil
}

// ResetSecondaryUserID resets all changes to the "secondary_user_id" field.
func (m *MatchMutation) ResetSecondaryUserID() {
	m.secondary_user_id = nil
}

// SetPrimaryCircleID sets the "primary_circle_id" field.
func (m *MatchMutation) SetPrimaryCircleID(s string) {
	m.primary_circle_id = &s
}

// PrimaryCircleID returns the value of the "primary_circle_id" field in the mutation.
func (m *MatchMutation) PrimaryCircleID() (r string, exists bool) {
	v := m.primary_circle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryCircleID returns the old "primary_circle_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldPrimaryCircleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryCircleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryCircleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryCircleID: %w", err)
	}
	return oldValue.PrimaryCircleID, nil
}

// ResetPrimaryCircleID resets all changes to the "primary_circle_id" field.
func (m *MatchMutation) ResetPrimaryCircleID() {
	m.primary_circle_id = nil
}

// SetSecondaryCircleID sets the "secondary_circle_id" field.
func (m *MatchMutation) SetSecondaryCircleID(s string) {
	m.secondary_circle_id = &s
}

// SecondaryCircleID returns the value of the "secondary_circle_id" field in the mutation.
func (m *MatchMutation) SecondaryCircleID() (r string, exists bool) {
	v := m.secondary_circle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryCircleID returns the old "secondary_circle_id" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldSecondaryCircleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryCircleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryCircleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryCircleID: %w", err)
	}
	return oldValue.SecondaryCircleID, nil
}

// ResetSecondaryCircleID resets all changes to the "secondary_circle_id" field.
func (m *MatchMutation) ResetSecondaryCircleID() {
	m.secondary_circle_id = nil
}

// SetType sets the "type" field.
func (m *MatchMutation) SetType(value match.Type) {
	m._type = &value
}

// GetType returns the value of the "type" field in the mutation.
func (m *MatchMutation) GetType() (r match.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldType(ctx context.Context) (v match.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *MatchMutation) ResetType() {
	m._type = nil
}

// SetWorthItScore sets the "worth_it_score" field.
func (m *MatchMutation) SetWorthItScore(f float64) {
	m.worth_it_score = &f
	m.addworth_it_score = nil
}

// WorthItScore returns the value of the "worth_it_score" field in the mutation.
func (m *MatchMutation) WorthItScore() (r float64, exists bool) {
	v := m.worth_it_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWorthItScore returns the old "worth_it_score" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldWorthItScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorthItScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorthItScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorthItScore: %w", err)
	}
	return oldValue.WorthItScore, nil
}

// AddWorthItScore adds f to the "worth_it_score" field.
func (m *MatchMutation) AddWorthItScore(f float64) {
	if m.addworth_it_score != nil {
		*m.addworth_it_score += f
	} else {
		m.addworth_it_score = &f
	}
}

// AddedWorthItScore returns the value that was added to the "worth_it_score" field in this mutation.
func (m *MatchMutation) AddedWorthItScore() (r float64, exists bool) {
	v := m.addworth_it_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorthItScore resets all changes to the "worth_it_score" field.
func (m *MatchMutation) ResetWorthItScore() {
	m.worth_it_score = nil
	m.addworth_it_score = nil
}

// SetStatus sets the "status" field.
func (m *MatchMutation) SetStatus(value match.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatchMutation) Status() (r match.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldStatus(ctx context.Context) (v match.Status, err error) {
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
func (m *MatchMutation) ResetStatus() {
	m.status = nil
}

// SetExplanationSummary sets the "explanation_summary" field.
func (m *MatchMutation) SetExplanationSummary(s string) {
	m.explanation_summary = &s
}

// ExplanationSummary returns the value of the "explanation_summary" field in the mutation.
func (m *MatchMutation) ExplanationSummary() (r string, exists bool) {
	v := m.explanation_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanationSummary returns the old "explanation_summary" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldExplanationSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanationSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanationSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanationSummary: %w", err)
	}
	return oldValue.ExplanationSummary, nil
}

// ClearExplanationSummary clears the value of the "explanation_summary" field.
func (m *MatchMutation) ClearExplanationSummary() {
	m.explanation_summary = nil
	m.clearedFields[match.FieldExplanationSummary] = struct{}{}
}

// ExplanationSummaryCleared returns if the "explanation_summary" field was cleared in this mutation.
func (m *MatchMutation) ExplanationSummaryCleared() bool {
	_, ok := m.clearedFields[match.FieldExplanationSummary]
	return ok
}

// ResetExplanationSummary resets all changes to the "explanation_summary" field.
func (m *MatchMutation) ResetExplanationSummary() {
	m.explanation_summary = nil
	delete(m.clearedFields, match.FieldExplanationSummary)
}

// SetRespondedAt sets the "responded_at" field.
func (m *MatchMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *MatchMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *MatchMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[match.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *MatchMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[match.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *MatchMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, match.FieldRespondedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Match entity.
// If the Match object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMission clears the "mission" edge to the InterviewMission entity.
func (m *MatchMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[match.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the InterviewMission entity was cleared.
func (m *MatchMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *MatchMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *MatchMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the MatchMutation builder.
func (m *MatchMutation) Where(ps ...predicate.Match) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Match, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Match).
func (m *MatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.mission != nil {
		fields = append(fields, match.FieldMissionID)
	}
	if m.primary_user_id != nil {
		fields = append(fields, match.FieldPrimaryUserID)
	}
	if m.secondary_user_id != nil {
		fields = append(fields, match.FieldSecondaryUserID)
	}
	if m.primary_circle_id != nil {
		fields = append(fields, match.FieldPrimaryCircleID)
	}
	if m.secondary_circle_id != nil {
		fields = append(fields, match.FieldSecondaryCircleID)
	}
	if m._type != nil {
		fields = append(fields, match.FieldType)
	}
	if m.worth_it_score != nil {
		fields = append(fields, match.FieldWorthItScore)
	}
	if m.status != nil {
		fields = append(fields, match.FieldStatus)
	}
	if m.explanation_summary != nil {
		fields = append(fields, match.FieldExplanationSummary)
	}
	if m.responded_at != nil {
		fields = append(fields, match.FieldRespondedAt)
	}
	if m.created_at != nil {
		fields = append(fields, match.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, match.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case match.FieldMissionID:
		return m.MissionID()
	case match.FieldPrimaryUserID:
		return m.PrimaryUserID()
	case match.FieldSecondaryUserID:
		return m.SecondaryUserID()
	case match.FieldPrimaryCircleID:
		return m.PrimaryCircleID()
	case match.FieldSecondaryCircleID:
		return m.SecondaryCircleID()
	case match.FieldType:
		return m.GetType()
	case match.FieldWorthItScore:
		return m.WorthItScore()
	case match.FieldStatus:
		return m.Status()
	case match.FieldExplanationSummary:
		return m.ExplanationSummary()
	case match.FieldRespondedAt:
		return m.RespondedAt()
	case match.FieldCreatedAt:
		return m.CreatedAt()
	case match.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case match.FieldMissionID:
		return m.OldMissionID(ctx)
	case match.FieldPrimaryUserID:
		return m.OldPrimaryUserID(ctx)
	case match.FieldSecondaryUserID:
		return m.OldSecondaryUserID(ctx)
	case match.FieldPrimaryCircleID:
		return m.OldPrimaryCircleID(ctx)
	case match.FieldSecondaryCircleID:
		return m.OldSecondaryCircleID(ctx)
	case match.FieldType:
		return m.OldType(ctx)
	case match.FieldWorthItScore:
		return m.OldWorthItScore(ctx)
	case match.FieldStatus:
		return m.OldStatus(ctx)
	case match.FieldExplanationSummary:
		return m.OldExplanationSummary(ctx)
	case match.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case match.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case match.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Match field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case match.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case match.FieldPrimaryUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryUserID(v)
		return nil
	case match.FieldSecondaryUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryUserID(v)
		return nil
	case match.FieldPrimaryCircleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryCircleID(v)
		return nil
	case match.FieldSecondaryCircleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryCircleID(v)
		return nil
	case match.FieldType:
		v, ok := value.(match.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case match.FieldWorthItScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorthItScore(v)
		return nil
	case match.FieldStatus:
		v, ok := value.(match.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case match.FieldExplanationSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanationSummary(v)
		return nil
	case match.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case match.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case match.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchMutation) AddedFields() []string {
	var fields []string
	if m.addworth_it_score != nil {
		fields = append(fields, match.FieldWorthItScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case match.FieldWorthItScore:
		return m.AddedWorthItScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case match.FieldWorthItScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorthItScore(v)
		return nil
	}
	return fmt.Errorf("unknown Match numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(match.FieldExplanationSummary) {
		fields = append(fields, match.FieldExplanationSummary)
	}
	if m.FieldCleared(match.FieldRespondedAt) {
		fields = append(fields, match.FieldRespondedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchMutation) ClearField(name string) error {
	switch name {
	case match.FieldExplanationSummary:
		m.ClearExplanationSummary()
		return nil
	case match.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown Match nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchMutation) ResetField(name string) error {
	switch name {
	case match.FieldMissionID:
		m.ResetMissionID()
		return nil
	case match.FieldPrimaryUserID:
		m.ResetPrimaryUserID()
		return nil
	case match.FieldSecondaryUserID:
		m.ResetSecondaryUserID()
		return nil
	case match.FieldPrimaryCircleID:
		m.ResetPrimaryCircleID()
		return nil
	case match.FieldSecondaryCircleID:
		m.ResetSecondaryCircleID()
		return nil
	case match.FieldType:
		m.ResetType()
		return nil
	case match.FieldWorthItScore:
		m.ResetWorthItScore()
		return nil
	case match.FieldStatus:
		m.ResetStatus()
		return nil
	case match.FieldExplanationSummary:
		m.ResetExplanationSummary()
		return nil
	case match.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case match.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case match.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Match field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, match.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case match.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, match.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchMutation) EdgeCleared(name string) bool {
	switch name {
	case match.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchMutation) ClearEdge(name string) error {
	switch name {
	case match.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown Match unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchMutation) ResetEdge(name string) error {
	switch name {
	case match.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown Match edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	display_name        *string
	email               *string
	profile             *map[string]interface{}
	last_lat            *float64
	addlast_lat         *float64
	last_lon            *float64
	addlast_lon         *float64
	position_updated_at *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	circles             map[string]struct{}
	removedcircles      map[string]struct{}
	clearedcircles      bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetProfile sets the "profile" field.
func (m *UserMutation) SetProfile(value map[string]interface{}) {
	m.profile = &value
}

// Profile returns the value of the "profile" field in the mutation.
func (m *UserMutation) Profile() (r map[string]interface{}, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldProfile(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ClearProfile clears the value of the "profile" field.
func (m *UserMutation) ClearProfile() {
	m.profile = nil
	m.clearedFields[user.FieldProfile] = struct{}{}
}

// ProfileCleared returns if the "profile" field was cleared in this mutation.
func (m *UserMutation) ProfileCleared() bool {
	_, ok := m.clearedFields[user.FieldProfile]
	return ok
}

// ResetProfile resets all changes to the "profile" field.
func (m *UserMutation) ResetProfile() {
	m.profile = nil
	delete(m.clearedFields, user.FieldProfile)
}

// SetLastLat sets the "last_lat" field.
func (m *UserMutation) SetLastLat(f float64) {
	m.last_lat = &f
	m.addlast_lat = nil
}

// LastLat returns the value of the "last_lat" field in the mutation.
func (m *UserMutation) LastLat() (r float64, exists bool) {
	v := m.last_lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLat returns the old "last_lat" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLat: %w", err)
	}
	return oldValue.LastLat, nil
}

// AddLastLat adds f to the "last_lat" field.
func (m *UserMutation) AddLastLat(f float64) {
	if m.addlast_lat != nil {
		*m.addlast_lat += f
	} else {
		m.addlast_lat = &f
	}
}

// AddedLastLat returns the value that was added to the "last_lat" field in this mutation.
func (m *UserMutation) AddedLastLat() (r float64, exists bool) {
	v := m.addlast_lat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastLat clears the value of the "last_lat" field.
func (m *UserMutation) ClearLastLat() {
	m.last_lat = nil
	m.addlast_lat = nil
	m.clearedFields[user.FieldLastLat] = struct{}{}
}

// LastLatCleared returns if the "last_lat" field was cleared in this mutation.
func (m *UserMutation) LastLatCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLat]
	return ok
}

// ResetLastLat resets all changes to the "last_lat" field.
func (m *UserMutation) ResetLastLat() {
	m.last_lat = nil
	m.addlast_lat = nil
	delete(m.clearedFields, user.FieldLastLat)
}

// SetLastLon sets the "last_lon" field.
func (m *UserMutation) SetLastLon(f float64) {
	m.last_lon = &f
	m.addlast_lon = nil
}

// LastLon returns the value of the "last_lon" field in the mutation.
func (m *UserMutation) LastLon() (r float64, exists bool) {
	v := m.last_lon
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLon returns the old "last_lon" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLon(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLon: %w", err)
	}
	return oldValue.LastLon, nil
}

// AddLastLon adds f to the "last_lon" field.
func (m *UserMutation) AddLastLon(f float64) {
	if m.addlast_lon != nil {
		*m.addlast_lon += f
	} else {
		m.addlast_lon = &f
	}
}

// AddedLastLon returns the value that was added to the "last_lon" field in this mutation.
func (m *UserMutation) AddedLastLon() (r float64, exists bool) {
	v := m.addlast_lon
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastLon clears the value of the "last_lon" field.
func (m *UserMutation) ClearLastLon() {
	m.last_lon = nil
	m.addlast_lon = nil
	m.clearedFields[user.FieldLastLon] = struct{}{}
}

// LastLonCleared returns if the "last_lon" field was cleared in this mutation.
func (m *UserMutation) LastLonCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLon]
	return ok
}

// ResetLastLon resets all changes to the "last_lon" field.
func (m *UserMutation) ResetLastLon() {
	m.last_lon = nil
	m.addlast_lon = nil
	delete(m.clearedFields, user.FieldLastLon)
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (m *UserMutation) SetPositionUpdatedAt(t time.Time) {
	m.position_updated_at = &t
}

// PositionUpdatedAt returns the value of the "position_updated_at" field in the mutation.
func (m *UserMutation) PositionUpdatedAt() (r time.Time, exists bool) {
	v := m.position_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionUpdatedAt returns the old "position_updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPositionUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionUpdatedAt: %w", err)
	}
	return oldValue.PositionUpdatedAt, nil
}

// ClearPositionUpdatedAt clears the value of the "position_updated_at" field.
func (m *UserMutation) ClearPositionUpdatedAt() {
	m.position_updated_at = nil
	m.clearedFields[user.FieldPositionUpdatedAt] = struct{}{}
}

// PositionUpdatedAtCleared returns if the "position_updated_at" field was cleared in this mutation.
func (m *UserMutation) PositionUpdatedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldPositionUpdatedAt]
	return ok
}

// ResetPositionUpdatedAt resets all changes to the "position_updated_at" field.
func (m *UserMutation) ResetPositionUpdatedAt() {
	m.position_updated_at = nil
	delete(m.clearedFields, user.FieldPositionUpdatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCircleIDs adds the "circles" edge to the Circle entity by ids.
func (m *UserMutation) AddCircleIDs(ids ...string) {
	if m.circles == nil {
		m.circles = make(map[string]struct{})
	}
	for i := range ids {
		m.circles[ids[i]] = struct{}{}
	}
}

// ClearCircles clears the "circles" edge to the Circle entity.
func (m *UserMutation) ClearCircles() {
	m.clearedcircles = true
}

// CirclesCleared reports if the "circles" edge to the Circle entity was cleared.
func (m *UserMutation) CirclesCleared() bool {
	return m.clearedcircles
}

// RemoveCircleIDs removes the "circles" edge to the Circle entity by IDs.
func (m *UserMutation) RemoveCircleIDs(ids ...string) {
	if m.removedcircles == nil {
		m.removedcircles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.circles, ids[i])
		m.removedcircles[ids[i]] = struct{}{}
	}
}

// RemovedCircles returns the removed IDs of the "circles" edge to the Circle entity.
func (m *UserMutation) RemovedCirclesIDs() (ids []string) {
	for id := range m.removedcircles {
		ids = append(ids, id)
	}
	return
}

// CirclesIDs returns the "circles" edge IDs in the mutation.
func (m *UserMutation) CirclesIDs() (ids []string) {
	for id := range m.circles {
		ids = append(ids, id)
	}
	return
}

// ResetCircles resets all changes to the "circles" edge.
func (m *UserMutation) ResetCircles() {
	m.circles = nil
	m.clearedcircles = false
	m.removedcircles = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.profile != nil {
		fields = append(fields, user.FieldProfile)
	}
	if m.last_lat != nil {
		fields = append(fields, user.FieldLastLat)
	}
	if m.last_lon != nil {
		fields = append(fields, user.FieldLastLon)
	}
	if m.position_updated_at != nil {
		fields = append(fields, user.FieldPositionUpdatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldProfile:
		return m.Profile()
	case user.FieldLastLat:
		return m.LastLat()
	case user.FieldLastLon:
		return m.LastLon()
	case user.FieldPositionUpdatedAt:
		return m.PositionUpdatedAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldProfile:
		return m.OldProfile(ctx)
	case user.FieldLastLat:
		return m.OldLastLat(ctx)
	case user.FieldLastLon:
		return m.OldLastLon(ctx)
	case user.FieldPositionUpdatedAt:
		return m.OldPositionUpdatedAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldProfile:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case user.FieldLastLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLat(v)
		return nil
	case user.FieldLastLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLon(v)
		return nil
	case user.FieldPositionUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionUpdatedAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addlast_lat != nil {
		fields = append(fields, user.FieldLastLat)
	}
	if m.addlast_lon != nil {
		fields = append(fields, user.FieldLastLon)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldLastLat:
		return m.AddedLastLat()
	case user.FieldLastLon:
		return m.AddedLastLon()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldLastLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastLat(v)
		return nil
	case user.FieldLastLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastLon(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldProfile) {
		fields = append(fields, user.FieldProfile)
	}
	if m.FieldCleared(user.FieldLastLat) {
		fields = append(fields, user.FieldLastLat)
	}
	if m.FieldCleared(user.FieldLastLon) {
		fields = append(fields, user.FieldLastLon)
	}
	if m.FieldCleared(user.FieldPositionUpdatedAt) {
		fields = append(fields, user.FieldPositionUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldProfile:
		m.ClearProfile()
		return nil
	case user.FieldLastLat:
		m.ClearLastLat()
		return nil
	case user.FieldLastLon:
		m.ClearLastLon()
		return nil
	case user.FieldPositionUpdatedAt:
		m.ClearPositionUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldProfile:
		m.ResetProfile()
		return nil
	case user.FieldLastLat:
		m.ResetLastLat()
		return nil
	case user.FieldLastLon:
		m.ResetLastLon()
		return nil
	case user.FieldPositionUpdatedAt:
		m.ResetPositionUpdatedAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.circles != nil {
		edges = append(edges, user.EdgeCircles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCircles:
		ids := make([]ent.Value, 0, len(m.circles))
		for id := range m.circles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcircles != nil {
		edges = append(edges, user.EdgeCircles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCircles:
		ids := make([]ent.Value, 0, len(m.removedcircles))
		for id := range m.removedcircles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcircles {
		edges = append(edges, user.EdgeCircles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCircles:
		return m.clearedcircles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCircles:
		m.ResetCircles()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
