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
)

// CircleUpdate is the builder for updating Circle entities.
type CircleUpdate struct {
	config
	hooks    []Hook
	mutation *CircleMutation
}

// Where appends a list predicates to the CircleUpdate builder.
func (_u *CircleUpdate) Where(ps ...predicate.Circle) *CircleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjective sets the "objective" field.
func (_u *CircleUpdate) SetObjective(v string) *CircleUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *CircleUpdate) SetNillableObjective(v *string) *CircleUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetRadiusMeters sets the "radius_meters" field.
func (_u *CircleUpdate) SetRadiusMeters(v float64) *CircleUpdate {
	_u.mutation.ResetRadiusMeters()
	_u.mutation.SetRadiusMeters(v)
	return _u
}

// SetNillableRadiusMeters sets the "radius_meters" field if the given value is not nil.
func (_u *CircleUpdate) SetNillableRadiusMeters(v *float64) *CircleUpdate {
	if v != nil {
		_u.SetRadiusMeters(*v)
	}
	return _u
}

// AddRadiusMeters adds value to the "radius_meters" field.
func (_u *CircleUpdate) AddRadiusMeters(v float64) *CircleUpdate {
	_u.mutation.AddRadiusMeters(v)
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *CircleUpdate) SetStartAt(v time.Time) *CircleUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *CircleUpdate) SetNillableStartAt(v *time.Time) *CircleUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CircleUpdate) SetExpiresAt(v time.Time) *CircleUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CircleUpdate) SetNillableExpiresAt(v *time.Time) *CircleUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CircleUpdate) SetStatus(v circle.Status) *CircleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CircleUpdate) SetNillableStatus(v *circle.Status) *CircleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CircleUpdate) SetUpdatedAt(v time.Time) *CircleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CircleMutation object of the builder.
func (_u *CircleUpdate) Mutation() *CircleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CircleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CircleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CircleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := circle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := circle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Circle.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Circle.owner"`)
	}
	return nil
}

func (_u *CircleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circle.Table, circle.Columns, sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(circle.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.RadiusMeters(); ok {
		_spec.SetField(circle.FieldRadiusMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRadiusMeters(); ok {
		_spec.AddField(circle.FieldRadiusMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(circle.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(circle.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(circle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(circle.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CircleUpdateOne is the builder for updating a single Circle entity.
type CircleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CircleMutation
}

// SetObjective sets the "objective" field.
func (_u *CircleUpdateOne) SetObjective(v string) *CircleUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *CircleUpdateOne) SetNillableObjective(v *string) *CircleUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetRadiusMeters sets the "radius_meters" field.
func (_u *CircleUpdateOne) SetRadiusMeters(v float64) *CircleUpdateOne {
	_u.mutation.ResetRadiusMeters()
	_u.mutation.SetRadiusMeters(v)
	return _u
}

// SetNillableRadiusMeters sets the "radius_meters" field if the given value is not nil.
func (_u *CircleUpdateOne) SetNillableRadiusMeters(v *float64) *CircleUpdateOne {
	if v != nil {
		_u.SetRadiusMeters(*v)
	}
	return _u
}

// AddRadiusMeters adds value to the "radius_meters" field.
func (_u *CircleUpdateOne) AddRadiusMeters(v float64) *CircleUpdateOne {
	_u.mutation.AddRadiusMeters(v)
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *CircleUpdateOne) SetStartAt(v time.Time) *CircleUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *CircleUpdateOne) SetNillableStartAt(v *time.Time) *CircleUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CircleUpdateOne) SetExpiresAt(v time.Time) *CircleUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CircleUpdateOne) SetNillableExpiresAt(v *time.Time) *CircleUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CircleUpdateOne) SetStatus(v circle.Status) *CircleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CircleUpdateOne) SetNillableStatus(v *circle.Status) *CircleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CircleUpdateOne) SetUpdatedAt(v time.Time) *CircleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CircleMutation object of the builder.
func (_u *CircleUpdateOne) Mutation() *CircleMutation {
	return _u.mutation
}

// Where appends a list predicates to the CircleUpdate builder.
func (_u *CircleUpdateOne) Where(ps ...predicate.Circle) *CircleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CircleUpdateOne) Select(field string, fields ...string) *CircleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Circle entity.
func (_u *CircleUpdateOne) Save(ctx context.Context) (*Circle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircleUpdateOne) SaveX(ctx context.Context) *Circle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CircleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CircleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := circle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := circle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Circle.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Circle.owner"`)
	}
	return nil
}

func (_u *CircleUpdateOne) sqlSave(ctx context.Context) (_node *Circle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circle.Table, circle.Columns, sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Circle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, circle.FieldID)
		for _, f := range fields {
			if !circle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != circle.FieldID {
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
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(circle.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.RadiusMeters(); ok {
		_spec.SetField(circle.FieldRadiusMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRadiusMeters(); ok {
		_spec.AddField(circle.FieldRadiusMeters, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(circle.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(circle.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(circle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(circle.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Circle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
