// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
)

// CollisionEventCreate is the builder for creating a CollisionEvent entity.
type CollisionEventCreate struct {
	config
	mutation *CollisionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPairKey sets the "pair_key" field.
func (_c *CollisionEventCreate) SetPairKey(v string) *CollisionEventCreate {
	_c.mutation.SetPairKey(v)
	return _c
}

// SetCircle1ID sets the "circle1_id" field.
func (_c *CollisionEventCreate) SetCircle1ID(v string) *CollisionEventCreate {
	_c.mutation.SetCircle1ID(v)
	return _c
}

// SetCircle2ID sets the "circle2_id" field.
func (_c *CollisionEventCreate) SetCircle2ID(v string) *CollisionEventCreate {
	_c.mutation.SetCircle2ID(v)
	return _c
}

// SetUser1ID sets the "user1_id" field.
func (_c *CollisionEventCreate) SetUser1ID(v string) *CollisionEventCreate {
	_c.mutation.SetUser1ID(v)
	return _c
}

// SetUser2ID sets the "user2_id" field.
func (_c *CollisionEventCreate) SetUser2ID(v string) *CollisionEventCreate {
	_c.mutation.SetUser2ID(v)
	return _c
}

// SetDistanceMeters sets the "distance_meters" field.
func (_c *CollisionEventCreate) SetDistanceMeters(v float64) *CollisionEventCreate {
	_c.mutation.SetDistanceMeters(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *CollisionEventCreate) SetFirstSeenAt(v time.Time) *CollisionEventCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *CollisionEventCreate) SetLastSeenAt(v time.Time) *CollisionEventCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CollisionEventCreate) SetStatus(v collisionevent.Status) *CollisionEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CollisionEventCreate) SetNillableStatus(v *collisionevent.Status) *CollisionEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *CollisionEventCreate) SetMissionID(v string) *CollisionEventCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *CollisionEventCreate) SetNillableMissionID(v *string) *CollisionEventCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollisionEventCreate) SetCreatedAt(v time.Time) *CollisionEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CollisionEventCreate) SetNillableCreatedAt(v *time.Time) *CollisionEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CollisionEventCreate) SetUpdatedAt(v time.Time) *CollisionEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CollisionEventCreate) SetNillableUpdatedAt(v *time.Time) *CollisionEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollisionEventCreate) SetID(v string) *CollisionEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMissionIDs adds the "missions" edge to the InterviewMission entity by IDs.
func (_c *CollisionEventCreate) AddMissionIDs(ids ...string) *CollisionEventCreate {
	_c.mutation.AddMissionIDs(ids...)
	return _c
}

// AddMissions adds the "missions" edges to the InterviewMission entity.
func (_c *CollisionEventCreate) AddMissions(v ...*InterviewMission) *CollisionEventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMissionIDs(ids...)
}

// Mutation returns the CollisionEventMutation object of the builder.
func (_c *CollisionEventCreate) Mutation() *CollisionEventMutation {
	return _c.mutation
}

// Save creates the CollisionEvent in the database.
func (_c *CollisionEventCreate) Save(ctx context.Context) (*CollisionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollisionEventCreate) SaveX(ctx context.Context) *CollisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollisionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollisionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollisionEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := collisionevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := collisionevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := collisionevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollisionEventCreate) check() error {
	if _, ok := _c.mutation.PairKey(); !ok {
		return &ValidationError{Name: "pair_key", err: errors.New(`ent: missing required field "CollisionEvent.pair_key"`)}
	}
	if _, ok := _c.mutation.Circle1ID(); !ok {
		return &ValidationError{Name: "circle1_id", err: errors.New(`ent: missing required field "CollisionEvent.circle1_id"`)}
	}
	if _, ok := _c.mutation.Circle2ID(); !ok {
		return &ValidationError{Name: "circle2_id", err: errors.New(`ent: missing required field "CollisionEvent.circle2_id"`)}
	}
	if _, ok := _c.mutation.User1ID(); !ok {
		return &ValidationError{Name: "user1_id", err: errors.New(`ent: missing required field "CollisionEvent.user1_id"`)}
	}
	if _, ok := _c.mutation.User2ID(); !ok {
		return &ValidationError{Name: "user2_id", err: errors.New(`ent: missing required field "CollisionEvent.user2_id"`)}
	}
	if _, ok := _c.mutation.DistanceMeters(); !ok {
		return &ValidationError{Name: "distance_meters", err: errors.New(`ent: missing required field "CollisionEvent.distance_meters"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "CollisionEvent.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "CollisionEvent.last_seen_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CollisionEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := collisionevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollisionEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollisionEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CollisionEvent.updated_at"`)}
	}
	return nil
}

func (_c *CollisionEventCreate) sqlSave(ctx context.Context) (*CollisionEvent, error) {
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
			return nil, fmt.Errorf("unexpected CollisionEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CollisionEventCreate) createSpec() (*CollisionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CollisionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collisionevent.Table, sqlgraph.NewFieldSpec(collisionevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PairKey(); ok {
		_spec.SetField(collisionevent.FieldPairKey, field.TypeString, value)
		_node.PairKey = value
	}
	if value, ok := _c.mutation.Circle1ID(); ok {
		_spec.SetField(collisionevent.FieldCircle1ID, field.TypeString, value)
		_node.Circle1ID = value
	}
	if value, ok := _c.mutation.Circle2ID(); ok {
		_spec.SetField(collisionevent.FieldCircle2ID, field.TypeString, value)
		_node.Circle2ID = value
	}
	if value, ok := _c.mutation.User1ID(); ok {
		_spec.SetField(collisionevent.FieldUser1ID, field.TypeString, value)
		_node.User1ID = value
	}
	if value, ok := _c.mutation.User2ID(); ok {
		_spec.SetField(collisionevent.FieldUser2ID, field.TypeString, value)
		_node.User2ID = value
	}
	if value, ok := _c.mutation.DistanceMeters(); ok {
		_spec.SetField(collisionevent.FieldDistanceMeters, field.TypeFloat64, value)
		_node.DistanceMeters = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(collisionevent.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(collisionevent.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(collisionevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(collisionevent.FieldMissionID, field.TypeString, value)
		_node.MissionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collisionevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(collisionevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   collisionevent.MissionsTable,
			Columns: []string{collisionevent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interviewmission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollisionEvent.Create().
//		SetPairKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollisionEventUpsert) {
//			SetPairKey(v+v).
//		}).
//		Exec(ctx)
func (_c *CollisionEventCreate) OnConflict(opts ...sql.ConflictOption) *CollisionEventUpsertOne {
	_c.conflict = opts
	return &CollisionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollisionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollisionEventCreate) OnConflictColumns(columns ...string) *CollisionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollisionEventUpsertOne{
		create: _c,
	}
}

type (
	// CollisionEventUpsertOne is the builder for "upsert"-ing
	//  one CollisionEvent node.
	CollisionEventUpsertOne struct {
		create *CollisionEventCreate
	}

	// CollisionEventUpsert is the "OnConflict" setter.
	CollisionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetPairKey sets the "pair_key" field.
func (u *CollisionEventUpsert) SetPairKey(v string) *CollisionEventUpsert {
	u.Set(collisionevent.FieldPairKey, v)
	return u
}

// UpdatePairKey sets the "pair_key" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdatePairKey() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldPairKey)
	return u
}

// SetCircle1ID sets the "circle1_id" field.
func (u *CollisionEventUpsert) SetCircle1ID(v string) *CollisionEventUpsert {
	u.Set(collisionevent.FieldCircle1ID, v)
	return u
}

// UpdateCircle1ID sets the "circle1_id" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateCircle1ID() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldCircle1ID)
	return u
}

// SetCircle2ID sets the "circle2_id" field.
func (u *CollisionEventUpsert) SetCircle2ID(v string) *CollisionEventUpsert {
	u.Set(collisionevent.FieldCircle2ID, v)
	return u
}

// UpdateCircle2ID sets the "circle2_id" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateCircle2ID() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldCircle2ID)
	return u
}

// SetUser1ID sets the "user1_id" field.
func (u *CollisionEventUpsert) SetUser1ID(v string) *CollisionEventUpsert {
	u.Set(collisionevent.FieldUser1ID, v)
	return u
}

// UpdateUser1ID sets the "user1_id" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateUser1ID() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldUser1ID)
	return u
}

// SetUser2ID sets the "user2_id" field.
func (u *CollisionEventUpsert) SetUser2ID(v string) *CollisionEventUpsert {
	u.Set(collisionevent.FieldUser2ID, v)
	return u
}

// UpdateUser2ID sets the "user2_id" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateUser2ID() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldUser2ID)
	return u
}

// SetDistanceMeters sets the "distance_meters" field.
func (u *CollisionEventUpsert) SetDistanceMeters(v float64) *CollisionEventUpsert {
	u.Set(collisionevent.FieldDistanceMeters, v)
	return u
}

// UpdateDistanceMeters sets the "distance_meters" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateDistanceMeters() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldDistanceMeters)
	return u
}

// AddDistanceMeters adds v to the "distance_meters" field.
func (u *CollisionEventUpsert) AddDistanceMeters(v float64) *CollisionEventUpsert {
	u.Add(collisionevent.FieldDistanceMeters, v)
	return u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *CollisionEventUpsert) SetFirstSeenAt(v time.Time) *CollisionEventUpsert {
	u.Set(collisionevent.FieldFirstSeenAt, v)
	return u
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateFirstSeenAt() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldFirstSeenAt)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *CollisionEventUpsert) SetLastSeenAt(v time.Time) *CollisionEventUpsert {
	u.Set(collisionevent.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateLastSeenAt() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldLastSeenAt)
	return u
}

// SetStatus sets the "status" field.
func (u *CollisionEventUpsert) SetStatus(v collisionevent.Status) *CollisionEventUpsert {
	u.Set(collisionevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateStatus() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldStatus)
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *CollisionEventUpsert) SetMissionID(v string) *CollisionEventUpsert {
	u.Set(collisionevent.FieldMissionID, v)
	return u
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateMissionID() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldMissionID)
	return u
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *CollisionEventUpsert) ClearMissionID() *CollisionEventUpsert {
	u.SetNull(collisionevent.FieldMissionID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollisionEventUpsert) SetUpdatedAt(v time.Time) *CollisionEventUpsert {
	u.Set(collisionevent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollisionEventUpsert) UpdateUpdatedAt() *CollisionEventUpsert {
	u.SetExcluded(collisionevent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CollisionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collisionevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollisionEventUpsertOne) UpdateNewValues() *CollisionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(collisionevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(collisionevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollisionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollisionEventUpsertOne) Ignore() *CollisionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollisionEventUpsertOne) DoNothing() *CollisionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollisionEventCreate.OnConflict
// documentation for more info.
func (u *CollisionEventUpsertOne) Update(set func(*CollisionEventUpsert)) *CollisionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollisionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPairKey sets the "pair_key" field.
func (u *CollisionEventUpsertOne) SetPairKey(v string) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetPairKey(v)
	})
}

// UpdatePairKey sets the "pair_key" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdatePairKey() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdatePairKey()
	})
}

// SetCircle1ID sets the "circle1_id" field.
func (u *CollisionEventUpsertOne) SetCircle1ID(v string) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetCircle1ID(v)
	})
}

// UpdateCircle1ID sets the "circle1_id" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateCircle1ID() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateCircle1ID()
	})
}

// SetCircle2ID sets the "circle2_id" field.
func (u *CollisionEventUpsertOne) SetCircle2ID(v string) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetCircle2ID(v)
	})
}

// UpdateCircle2ID sets the "circle2_id" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateCircle2ID() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateCircle2ID()
	})
}

// SetUser1ID sets the "user1_id" field.
func (u *CollisionEventUpsertOne) SetUser1ID(v string) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetUser1ID(v)
	})
}

// UpdateUser1ID sets the "user1_id" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateUser1ID() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateUser1ID()
	})
}

// SetUser2ID sets the "user2_id" field.
func (u *CollisionEventUpsertOne) SetUser2ID(v string) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetUser2ID(v)
	})
}

// UpdateUser2ID sets the "user2_id" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateUser2ID() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateUser2ID()
	})
}

// SetDistanceMeters sets the "distance_meters" field.
func (u *CollisionEventUpsertOne) SetDistanceMeters(v float64) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetDistanceMeters(v)
	})
}

// AddDistanceMeters adds v to the "distance_meters" field.
func (u *CollisionEventUpsertOne) AddDistanceMeters(v float64) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.AddDistanceMeters(v)
	})
}

// UpdateDistanceMeters sets the "distance_meters" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateDistanceMeters() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateDistanceMeters()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *CollisionEventUpsertOne) SetFirstSeenAt(v time.Time) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateFirstSeenAt() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *CollisionEventUpsertOne) SetLastSeenAt(v time.Time) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateLastSeenAt() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetStatus sets the "status" field.
func (u *CollisionEventUpsertOne) SetStatus(v collisionevent.Status) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateStatus() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateStatus()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *CollisionEventUpsertOne) SetMissionID(v string) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateMissionID() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *CollisionEventUpsertOne) ClearMissionID() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.ClearMissionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollisionEventUpsertOne) SetUpdatedAt(v time.Time) *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollisionEventUpsertOne) UpdateUpdatedAt() *CollisionEventUpsertOne {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CollisionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollisionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollisionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollisionEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CollisionEventUpsertOne.ID is not supported by MySQL driver. Use CollisionEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollisionEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollisionEventCreateBulk is the builder for creating many CollisionEvent entities in bulk.
type CollisionEventCreateBulk struct {
	config
	err      error
	builders []*CollisionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the CollisionEvent entities in the database.
func (_c *CollisionEventCreateBulk) Save(ctx context.Context) ([]*CollisionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollisionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollisionEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *CollisionEventCreateBulk) SaveX(ctx context.Context) []*CollisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollisionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollisionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollisionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollisionEventUpsert) {
//			SetPairKey(v+v).
//		}).
//		Exec(ctx)
func (_c *CollisionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollisionEventUpsertBulk {
	_c.conflict = opts
	return &CollisionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollisionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollisionEventCreateBulk) OnConflictColumns(columns ...string) *CollisionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollisionEventUpsertBulk{
		create: _c,
	}
}

// CollisionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of CollisionEvent nodes.
type CollisionEventUpsertBulk struct {
	create *CollisionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollisionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(collisionevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CollisionEventUpsertBulk) UpdateNewValues() *CollisionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(collisionevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(collisionevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollisionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollisionEventUpsertBulk) Ignore() *CollisionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollisionEventUpsertBulk) DoNothing() *CollisionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollisionEventCreateBulk.OnConflict
// documentation for more info.
func (u *CollisionEventUpsertBulk) Update(set func(*CollisionEventUpsert)) *CollisionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollisionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPairKey sets the "pair_key" field.
func (u *CollisionEventUpsertBulk) SetPairKey(v string) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetPairKey(v)
	})
}

// UpdatePairKey sets the "pair_key" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdatePairKey() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdatePairKey()
	})
}

// SetCircle1ID sets the "circle1_id" field.
func (u *CollisionEventUpsertBulk) SetCircle1ID(v string) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetCircle1ID(v)
	})
}

// UpdateCircle1ID sets the "circle1_id" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateCircle1ID() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateCircle1ID()
	})
}

// SetCircle2ID sets the "circle2_id" field.
func (u *CollisionEventUpsertBulk) SetCircle2ID(v string) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetCircle2ID(v)
	})
}

// UpdateCircle2ID sets the "circle2_id" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateCircle2ID() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateCircle2ID()
	})
}

// SetUser1ID sets the "user1_id" field.
func (u *CollisionEventUpsertBulk) SetUser1ID(v string) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetUser1ID(v)
	})
}

// UpdateUser1ID sets the "user1_id" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateUser1ID() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateUser1ID()
	})
}

// SetUser2ID sets the "user2_id" field.
func (u *CollisionEventUpsertBulk) SetUser2ID(v string) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetUser2ID(v)
	})
}

// UpdateUser2ID sets the "user2_id" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateUser2ID() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateUser2ID()
	})
}

// SetDistanceMeters sets the "distance_meters" field.
func (u *CollisionEventUpsertBulk) SetDistanceMeters(v float64) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetDistanceMeters(v)
	})
}

// AddDistanceMeters adds v to the "distance_meters" field.
func (u *CollisionEventUpsertBulk) AddDistanceMeters(v float64) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.AddDistanceMeters(v)
	})
}

// UpdateDistanceMeters sets the "distance_meters" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateDistanceMeters() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateDistanceMeters()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *CollisionEventUpsertBulk) SetFirstSeenAt(v time.Time) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateFirstSeenAt() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *CollisionEventUpsertBulk) SetLastSeenAt(v time.Time) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateLastSeenAt() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetStatus sets the "status" field.
func (u *CollisionEventUpsertBulk) SetStatus(v collisionevent.Status) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateStatus() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateStatus()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *CollisionEventUpsertBulk) SetMissionID(v string) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateMissionID() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *CollisionEventUpsertBulk) ClearMissionID() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.ClearMissionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CollisionEventUpsertBulk) SetUpdatedAt(v time.Time) *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CollisionEventUpsertBulk) UpdateUpdatedAt() *CollisionEventUpsertBulk {
	return u.Update(func(s *CollisionEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CollisionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CollisionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollisionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollisionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
