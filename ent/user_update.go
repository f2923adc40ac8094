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
	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/ent/predicate"
	"github.com/venn-social/vennd/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdate) SetDisplayName(v string) *UserUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDisplayName(v *string) *UserUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *UserUpdate) SetProfile(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// ClearProfile clears the value of the "profile" field.
func (_u *UserUpdate) ClearProfile() *UserUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// SetLastLat sets the "last_lat" field.
func (_u *UserUpdate) SetLastLat(v float64) *UserUpdate {
	_u.mutation.ResetLastLat()
	_u.mutation.SetLastLat(v)
	return _u
}

// SetNillableLastLat sets the "last_lat" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLat(v *float64) *UserUpdate {
	if v != nil {
		_u.SetLastLat(*v)
	}
	return _u
}

// AddLastLat adds value to the "last_lat" field.
func (_u *UserUpdate) AddLastLat(v float64) *UserUpdate {
	_u.mutation.AddLastLat(v)
	return _u
}

// ClearLastLat clears the value of the "last_lat" field.
func (_u *UserUpdate) ClearLastLat() *UserUpdate {
	_u.mutation.ClearLastLat()
	return _u
}

// SetLastLon sets the "last_lon" field.
func (_u *UserUpdate) SetLastLon(v float64) *UserUpdate {
	_u.mutation.ResetLastLon()
	_u.mutation.SetLastLon(v)
	return _u
}

// SetNillableLastLon sets the "last_lon" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLon(v *float64) *UserUpdate {
	if v != nil {
		_u.SetLastLon(*v)
	}
	return _u
}

// AddLastLon adds value to the "last_lon" field.
func (_u *UserUpdate) AddLastLon(v float64) *UserUpdate {
	_u.mutation.AddLastLon(v)
	return _u
}

// ClearLastLon clears the value of the "last_lon" field.
func (_u *UserUpdate) ClearLastLon() *UserUpdate {
	_u.mutation.ClearLastLon()
	return _u
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (_u *UserUpdate) SetPositionUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetPositionUpdatedAt(v)
	return _u
}

// SetNillablePositionUpdatedAt sets the "position_updated_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePositionUpdatedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetPositionUpdatedAt(*v)
	}
	return _u
}

// ClearPositionUpdatedAt clears the value of the "position_updated_at" field.
func (_u *UserUpdate) ClearPositionUpdatedAt() *UserUpdate {
	_u.mutation.ClearPositionUpdatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCircleIDs adds the "circles" edge to the Circle entity by IDs.
func (_u *UserUpdate) AddCircleIDs(ids ...string) *UserUpdate {
	_u.mutation.AddCircleIDs(ids...)
	return _u
}

// AddCircles adds the "circles" edges to the Circle entity.
func (_u *UserUpdate) AddCircles(v ...*Circle) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCircleIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearCircles clears all "circles" edges to the Circle entity.
func (_u *UserUpdate) ClearCircles() *UserUpdate {
	_u.mutation.ClearCircles()
	return _u
}

// RemoveCircleIDs removes the "circles" edge to Circle entities by IDs.
func (_u *UserUpdate) RemoveCircleIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveCircleIDs(ids...)
	return _u
}

// RemoveCircles removes "circles" edges to Circle entities.
func (_u *UserUpdate) RemoveCircles(v ...*Circle) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCircleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(user.FieldProfile, field.TypeJSON, value)
	}
	if _u.mutation.ProfileCleared() {
		_spec.ClearField(user.FieldProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastLat(); ok {
		_spec.SetField(user.FieldLastLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastLat(); ok {
		_spec.AddField(user.FieldLastLat, field.TypeFloat64, value)
	}
	if _u.mutation.LastLatCleared() {
		_spec.ClearField(user.FieldLastLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastLon(); ok {
		_spec.SetField(user.FieldLastLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastLon(); ok {
		_spec.AddField(user.FieldLastLon, field.TypeFloat64, value)
	}
	if _u.mutation.LastLonCleared() {
		_spec.ClearField(user.FieldLastLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PositionUpdatedAt(); ok {
		_spec.SetField(user.FieldPositionUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PositionUpdatedAtCleared() {
		_spec.ClearField(user.FieldPositionUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CirclesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCirclesIDs(); len(nodes) > 0 && !_u.mutation.CirclesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CirclesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdateOne) SetDisplayName(v string) *UserUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDisplayName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *UserUpdateOne) SetProfile(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// ClearProfile clears the value of the "profile" field.
func (_u *UserUpdateOne) ClearProfile() *UserUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// SetLastLat sets the "last_lat" field.
func (_u *UserUpdateOne) SetLastLat(v float64) *UserUpdateOne {
	_u.mutation.ResetLastLat()
	_u.mutation.SetLastLat(v)
	return _u
}

// SetNillableLastLat sets the "last_lat" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLat(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetLastLat(*v)
	}
	return _u
}

// AddLastLat adds value to the "last_lat" field.
func (_u *UserUpdateOne) AddLastLat(v float64) *UserUpdateOne {
	_u.mutation.AddLastLat(v)
	return _u
}

// ClearLastLat clears the value of the "last_lat" field.
func (_u *UserUpdateOne) ClearLastLat() *UserUpdateOne {
	_u.mutation.ClearLastLat()
	return _u
}

// SetLastLon sets the "last_lon" field.
func (_u *UserUpdateOne) SetLastLon(v float64) *UserUpdateOne {
	_u.mutation.ResetLastLon()
	_u.mutation.SetLastLon(v)
	return _u
}

// SetNillableLastLon sets the "last_lon" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLon(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetLastLon(*v)
	}
	return _u
}

// AddLastLon adds value to the "last_lon" field.
func (_u *UserUpdateOne) AddLastLon(v float64) *UserUpdateOne {
	_u.mutation.AddLastLon(v)
	return _u
}

// ClearLastLon clears the value of the "last_lon" field.
func (_u *UserUpdateOne) ClearLastLon() *UserUpdateOne {
	_u.mutation.ClearLastLon()
	return _u
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (_u *UserUpdateOne) SetPositionUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetPositionUpdatedAt(v)
	return _u
}

// SetNillablePositionUpdatedAt sets the "position_updated_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePositionUpdatedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetPositionUpdatedAt(*v)
	}
	return _u
}

// ClearPositionUpdatedAt clears the value of the "position_updated_at" field.
func (_u *UserUpdateOne) ClearPositionUpdatedAt() *UserUpdateOne {
	_u.mutation.ClearPositionUpdatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCircleIDs adds the "circles" edge to the Circle entity by IDs.
func (_u *UserUpdateOne) AddCircleIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddCircleIDs(ids...)
	return _u
}

// AddCircles adds the "circles" edges to the Circle entity.
func (_u *UserUpdateOne) AddCircles(v ...*Circle) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCircleIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearCircles clears all "circles" edges to the Circle entity.
func (_u *UserUpdateOne) ClearCircles() *UserUpdateOne {
	_u.mutation.ClearCircles()
	return _u
}

// RemoveCircleIDs removes the "circles" edge to Circle entities by IDs.
func (_u *UserUpdateOne) RemoveCircleIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveCircleIDs(ids...)
	return _u
}

// RemoveCircles removes "circles" edges to Circle entities.
func (_u *UserUpdateOne) RemoveCircles(v ...*Circle) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCircleIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(user.FieldProfile, field.TypeJSON, value)
	}
	if _u.mutation.ProfileCleared() {
		_spec.ClearField(user.FieldProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastLat(); ok {
		_spec.SetField(user.FieldLastLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastLat(); ok {
		_spec.AddField(user.FieldLastLat, field.TypeFloat64, value)
	}
	if _u.mutation.LastLatCleared() {
		_spec.ClearField(user.FieldLastLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastLon(); ok {
		_spec.SetField(user.FieldLastLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastLon(); ok {
		_spec.AddField(user.FieldLastLon, field.TypeFloat64, value)
	}
	if _u.mutation.LastLonCleared() {
		_spec.ClearField(user.FieldLastLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PositionUpdatedAt(); ok {
		_spec.SetField(user.FieldPositionUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PositionUpdatedAtCleared() {
		_spec.ClearField(user.FieldPositionUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CirclesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCirclesIDs(); len(nodes) > 0 && !_u.mutation.CirclesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CirclesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
