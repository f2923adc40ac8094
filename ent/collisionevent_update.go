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
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/predicate"
)

// CollisionEventUpdate is the builder for updating CollisionEvent entities.
type CollisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CollisionEventMutation
}

// Where appends a list predicates to the CollisionEventUpdate builder.
func (_u *CollisionEventUpdate) Where(ps ...predicate.CollisionEvent) *CollisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPairKey sets the "pair_key" field.
func (_u *CollisionEventUpdate) SetPairKey(v string) *CollisionEventUpdate {
	_u.mutation.SetPairKey(v)
	return _u
}

// SetNillablePairKey sets the "pair_key" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillablePairKey(v *string) *CollisionEventUpdate {
	if v != nil {
		_u.SetPairKey(*v)
	}
	return _u
}

// SetCircle1ID sets the "circle1_id" field.
func (_u *CollisionEventUpdate) SetCircle1ID(v string) *CollisionEventUpdate {
	_u.mutation.SetCircle1ID(v)
	return _u
}

// SetNillableCircle1ID sets the "circle1_id" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableCircle1ID(v *string) *CollisionEventUpdate {
	if v != nil {
		_u.SetCircle1ID(*v)
	}
	return _u
}

// SetCircle2ID sets the "circle2_id" field.
func (_u *CollisionEventUpdate) SetCircle2ID(v string) *CollisionEventUpdate {
	_u.mutation.SetCircle2ID(v)
	return _u
}

// SetNillableCircle2ID sets the "circle2_id" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableCircle2ID(v *string) *CollisionEventUpdate {
	if v != nil {
		_u.SetCircle2ID(*v)
	}
	return _u
}

// SetUser1ID sets the "user1_id" field.
func (_u *CollisionEventUpdate) SetUser1ID(v string) *CollisionEventUpdate {
	_u.mutation.SetUser1ID(v)
	return _u
}

// SetNillableUser1ID sets the "user1_id" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableUser1ID(v *string) *CollisionEventUpdate {
	if v != nil {
		_u.SetUser1ID(*v)
	}
	return _u
}

// SetUser2ID sets the "user2_id" field.
func (_u *CollisionEventUpdate) SetUser2ID(v string) *CollisionEventUpdate {
	_u.mutation.SetUser2ID(v)
	return _u
}

// SetNillableUser2ID sets the "user2_id" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableUser2ID(v *string) *CollisionEventUpdate {
	if v != nil {
		_u.SetUser2ID(*v)
	}
	return _u
}

// SetDistanceMeters sets the "distance_meters" field.
func (_u *CollisionEventUpdate) SetDistanceMeters(v float64) *CollisionEventUpdate {
	_u.mutation.ResetDistanceMeters()
	_u.mutation.SetDistanceMeters(v)
	return _u
}

// SetNillableDistanceMeters sets the "distance_meters" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableDistanceMeters(v *float64) *CollisionEventUpdate {
	if v != nil {
		_u.SetDistanceMeters(*v)
	}
	return _u
}

// AddDistanceMeters adds value to the "distance_meters" field.
func (_u *CollisionEventUpdate) AddDistanceMeters(v float64) *CollisionEventUpdate {
	_u.mutation.AddDistanceMeters(v)
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *CollisionEventUpdate) SetFirstSeenAt(v time.Time) *CollisionEventUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableFirstSeenAt(v *time.Time) *CollisionEventUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *CollisionEventUpdate) SetLastSeenAt(v time.Time) *CollisionEventUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableLastSeenAt(v *time.Time) *CollisionEventUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollisionEventUpdate) SetStatus(v collisionevent.Status) *CollisionEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableStatus(v *collisionevent.Status) *CollisionEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *CollisionEventUpdate) SetMissionID(v string) *CollisionEventUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *CollisionEventUpdate) SetNillableMissionID(v *string) *CollisionEventUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *CollisionEventUpdate) ClearMissionID() *CollisionEventUpdate {
	_u.mutation.ClearMissionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollisionEventUpdate) SetUpdatedAt(v time.Time) *CollisionEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMissionIDs adds the "missions" edge to the InterviewMission entity by IDs.
func (_u *CollisionEventUpdate) AddMissionIDs(ids ...string) *CollisionEventUpdate {
	_u.mutation.AddMissionIDs(ids...)
	return _u
}

// AddMissions adds the "missions" edges to the InterviewMission entity.
func (_u *CollisionEventUpdate) AddMissions(v ...*InterviewMission) *CollisionEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMissionIDs(ids...)
}

// Mutation returns the CollisionEventMutation object of the builder.
func (_u *CollisionEventUpdate) Mutation() *CollisionEventMutation {
	return _u.mutation
}

// ClearMissions clears all "missions" edges to the InterviewMission entity.
func (_u *CollisionEventUpdate) ClearMissions() *CollisionEventUpdate {
	_u.mutation.ClearMissions()
	return _u
}

// RemoveMissionIDs removes the "missions" edge to InterviewMission entities by IDs.
func (_u *CollisionEventUpdate) RemoveMissionIDs(ids ...string) *CollisionEventUpdate {
	_u.mutation.RemoveMissionIDs(ids...)
	return _u
}

// RemoveMissions removes "missions" edges to InterviewMission entities.
func (_u *CollisionEventUpdate) RemoveMissions(v ...*InterviewMission) *CollisionEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollisionEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollisionEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collisionevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollisionEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collisionevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollisionEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CollisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collisionevent.Table, collisionevent.Columns, sqlgraph.NewFieldSpec(collisionevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PairKey(); ok {
		_spec.SetField(collisionevent.FieldPairKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Circle1ID(); ok {
		_spec.SetField(collisionevent.FieldCircle1ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Circle2ID(); ok {
		_spec.SetField(collisionevent.FieldCircle2ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.User1ID(); ok {
		_spec.SetField(collisionevent.FieldUser1ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.User2ID(); ok {
		_spec.SetField(collisionevent.FieldUser2ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistanceMeters(); ok {
		_spec.SetField(collisionevent.FieldDistanceMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceMeters(); ok {
		_spec.AddField(collisionevent.FieldDistanceMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(collisionevent.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(collisionevent.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collisionevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(collisionevent.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(collisionevent.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collisionevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMissionsIDs(); len(nodes) > 0 && !_u.mutation.MissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollisionEventUpdateOne is the builder for updating a single CollisionEvent entity.
type CollisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollisionEventMutation
}

// SetPairKey sets the "pair_key" field.
func (_u *CollisionEventUpdateOne) SetPairKey(v string) *CollisionEventUpdateOne {
	_u.mutation.SetPairKey(v)
	return _u
}

// SetNillablePairKey sets the "pair_key" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillablePairKey(v *string) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetPairKey(*v)
	}
	return _u
}

// SetCircle1ID sets the "circle1_id" field.
func (_u *CollisionEventUpdateOne) SetCircle1ID(v string) *CollisionEventUpdateOne {
	_u.mutation.SetCircle1ID(v)
	return _u
}

// SetNillableCircle1ID sets the "circle1_id" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableCircle1ID(v *string) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetCircle1ID(*v)
	}
	return _u
}

// SetCircle2ID sets the "circle2_id" field.
func (_u *CollisionEventUpdateOne) SetCircle2ID(v string) *CollisionEventUpdateOne {
	_u.mutation.SetCircle2ID(v)
	return _u
}

// SetNillableCircle2ID sets the "circle2_id" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableCircle2ID(v *string) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetCircle2ID(*v)
	}
	return _u
}

// SetUser1ID sets the "user1_id" field.
func (_u *CollisionEventUpdateOne) SetUser1ID(v string) *CollisionEventUpdateOne {
	_u.mutation.SetUser1ID(v)
	return _u
}

// SetNillableUser1ID sets the "user1_id" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableUser1ID(v *string) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetUser1ID(*v)
	}
	return _u
}

// SetUser2ID sets the "user2_id" field.
func (_u *CollisionEventUpdateOne) SetUser2ID(v string) *CollisionEventUpdateOne {
	_u.mutation.SetUser2ID(v)
	return _u
}

// SetNillableUser2ID sets the "user2_id" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableUser2ID(v *string) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetUser2ID(*v)
	}
	return _u
}

// SetDistanceMeters sets the "distance_meters" field.
func (_u *CollisionEventUpdateOne) SetDistanceMeters(v float64) *CollisionEventUpdateOne {
	_u.mutation.ResetDistanceMeters()
	_u.mutation.SetDistanceMeters(v)
	return _u
}

// SetNillableDistanceMeters sets the "distance_meters" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableDistanceMeters(v *float64) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetDistanceMeters(*v)
	}
	return _u
}

// AddDistanceMeters adds value to the "distance_meters" field.
func (_u *CollisionEventUpdateOne) AddDistanceMeters(v float64) *CollisionEventUpdateOne {
	_u.mutation.AddDistanceMeters(v)
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *CollisionEventUpdateOne) SetFirstSeenAt(v time.Time) *CollisionEventUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableFirstSeenAt(v *time.Time) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *CollisionEventUpdateOne) SetLastSeenAt(v time.Time) *CollisionEventUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableLastSeenAt(v *time.Time) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollisionEventUpdateOne) SetStatus(v collisionevent.Status) *CollisionEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableStatus(v *collisionevent.Status) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *CollisionEventUpdateOne) SetMissionID(v string) *CollisionEventUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *CollisionEventUpdateOne) SetNillableMissionID(v *string) *CollisionEventUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *CollisionEventUpdateOne) ClearMissionID() *CollisionEventUpdateOne {
	_u.mutation.ClearMissionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollisionEventUpdateOne) SetUpdatedAt(v time.Time) *CollisionEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMissionIDs adds the "missions" edge to the InterviewMission entity by IDs.
func (_u *CollisionEventUpdateOne) AddMissionIDs(ids ...string) *CollisionEventUpdateOne {
	_u.mutation.AddMissionIDs(ids...)
	return _u
}

// AddMissions adds the "missions" edges to the InterviewMission entity.
func (_u *CollisionEventUpdateOne) AddMissions(v ...*InterviewMission) *CollisionEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMissionIDs(ids...)
}

// Mutation returns the CollisionEventMutation object of the builder.
func (_u *CollisionEventUpdateOne) Mutation() *CollisionEventMutation {
	return _u.mutation
}

// ClearMissions clears all "missions" edges to the InterviewMission entity.
func (_u *CollisionEventUpdateOne) ClearMissions() *CollisionEventUpdateOne {
	_u.mutation.ClearMissions()
	return _u
}

// RemoveMissionIDs removes the "missions" edge to InterviewMission entities by IDs.
func (_u *CollisionEventUpdateOne) RemoveMissionIDs(ids ...string) *CollisionEventUpdateOne {
	_u.mutation.RemoveMissionIDs(ids...)
	return _u
}

// RemoveMissions removes "missions" edges to InterviewMission entities.
func (_u *CollisionEventUpdateOne) RemoveMissions(v ...*InterviewMission) *CollisionEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMissionIDs(ids...)
}

// Where appends a list predicates to the CollisionEventUpdate builder.
func (_u *CollisionEventUpdateOne) Where(ps ...predicate.CollisionEvent) *CollisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollisionEventUpdateOne) Select(field string, fields ...string) *CollisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollisionEvent entity.
func (_u *CollisionEventUpdateOne) Save(ctx context.Context) (*CollisionEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollisionEventUpdateOne) SaveX(ctx context.Context) *CollisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CollisionEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := collisionevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collisionevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollisionEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CollisionEventUpdateOne) sqlSave(ctx context.Context) (_node *CollisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collisionevent.Table, collisionevent.Columns, sqlgraph.NewFieldSpec(collisionevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collisionevent.FieldID)
		for _, f := range fields {
			if !collisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collisionevent.FieldID {
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
	if value, ok := _u.mutation.PairKey(); ok {
		_spec.SetField(collisionevent.FieldPairKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Circle1ID(); ok {
		_spec.SetField(collisionevent.FieldCircle1ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Circle2ID(); ok {
		_spec.SetField(collisionevent.FieldCircle2ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.User1ID(); ok {
		_spec.SetField(collisionevent.FieldUser1ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.User2ID(); ok {
		_spec.SetField(collisionevent.FieldUser2ID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistanceMeters(); ok {
		_spec.SetField(collisionevent.FieldDistanceMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceMeters(); ok {
		_spec.AddField(collisionevent.FieldDistanceMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(collisionevent.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(collisionevent.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collisionevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(collisionevent.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(collisionevent.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collisionevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMissionsIDs(); len(nodes) > 0 && !_u.mutation.MissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CollisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
