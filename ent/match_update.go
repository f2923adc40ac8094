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
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/ent/predicate"
)

// MatchUpdate is the builder for updating Match entities.
type MatchUpdate struct {
	config
	hooks    []Hook
	mutation *MatchMutation
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdate) Where(ps ...predicate.Match) *MatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *MatchUpdate) SetType(v match.Type) *MatchUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableType(v *match.Type) *MatchUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWorthItScore sets the "worth_it_score" field.
func (_u *MatchUpdate) SetWorthItScore(v float64) *MatchUpdate {
	_u.mutation.ResetWorthItScore()
	_u.mutation.SetWorthItScore(v)
	return _u
}

// SetNillableWorthItScore sets the "worth_it_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableWorthItScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetWorthItScore(*v)
	}
	return _u
}

// AddWorthItScore adds value to the "worth_it_score" field.
func (_u *MatchUpdate) AddWorthItScore(v float64) *MatchUpdate {
	_u.mutation.AddWorthItScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatchUpdate) SetStatus(v match.Status) *MatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableStatus(v *match.Status) *MatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExplanationSummary sets the "explanation_summary" field.
func (_u *MatchUpdate) SetExplanationSummary(v string) *MatchUpdate {
	_u.mutation.SetExplanationSummary(v)
	return _u
}

// SetNillableExplanationSummary sets the "explanation_summary" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableExplanationSummary(v *string) *MatchUpdate {
	if v != nil {
		_u.SetExplanationSummary(*v)
	}
	return _u
}

// ClearExplanationSummary clears the value of the "explanation_summary" field.
func (_u *MatchUpdate) ClearExplanationSummary() *MatchUpdate {
	_u.mutation.ClearExplanationSummary()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *MatchUpdate) SetRespondedAt(v time.Time) *MatchUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableRespondedAt(v *time.Time) *MatchUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *MatchUpdate) ClearRespondedAt() *MatchUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MatchUpdate) SetUpdatedAt(v time.Time) *MatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdate) Mutation() *MatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := match.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := match.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Match.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := match.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Match.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.mission"`)
	}
	return nil
}

func (_u *MatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(match.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorthItScore(); ok {
		_spec.SetField(match.FieldWorthItScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorthItScore(); ok {
		_spec.AddField(match.FieldWorthItScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(match.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExplanationSummary(); ok {
		_spec.SetField(match.FieldExplanationSummary, field.TypeString, value)
	}
	if _u.mutation.ExplanationSummaryCleared() {
		_spec.ClearField(match.FieldExplanationSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(match.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(match.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(match.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchUpdateOne is the builder for updating a single Match entity.
type MatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchMutation
}

// SetType sets the "type" field.
func (_u *MatchUpdateOne) SetType(v match.Type) *MatchUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableType(v *match.Type) *MatchUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWorthItScore sets the "worth_it_score" field.
func (_u *MatchUpdateOne) SetWorthItScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetWorthItScore()
	_u.mutation.SetWorthItScore(v)
	return _u
}

// SetNillableWorthItScore sets the "worth_it_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableWorthItScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetWorthItScore(*v)
	}
	return _u
}

// AddWorthItScore adds value to the "worth_it_score" field.
func (_u *MatchUpdateOne) AddWorthItScore(v float64) *MatchUpdateOne {
	_u.mutation.AddWorthItScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatchUpdateOne) SetStatus(v match.Status) *MatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableStatus(v *match.Status) *MatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExplanationSummary sets the "explanation_summary" field.
func (_u *MatchUpdateOne) SetExplanationSummary(v string) *MatchUpdateOne {
	_u.mutation.SetExplanationSummary(v)
	return _u
}

// SetNillableExplanationSummary sets the "explanation_summary" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableExplanationSummary(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetExplanationSummary(*v)
	}
	return _u
}

// ClearExplanationSummary clears the value of the "explanation_summary" field.
func (_u *MatchUpdateOne) ClearExplanationSummary() *MatchUpdateOne {
	_u.mutation.ClearExplanationSummary()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *MatchUpdateOne) SetRespondedAt(v time.Time) *MatchUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableRespondedAt(v *time.Time) *MatchUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *MatchUpdateOne) ClearRespondedAt() *MatchUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MatchUpdateOne) SetUpdatedAt(v time.Time) *MatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdateOne) Mutation() *MatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdateOne) Where(ps ...predicate.Match) *MatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchUpdateOne) Select(field string, fields ...string) *MatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Match entity.
func (_u *MatchUpdateOne) Save(ctx context.Context) (*Match, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdateOne) SaveX(ctx context.Context) *Match {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := match.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := match.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Match.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := match.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Match.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.mission"`)
	}
	return nil
}

func (_u *MatchUpdateOne) sqlSave(ctx context.Context) (_node *Match, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Match.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, match.FieldID)
		for _, f := range fields {
			if !match.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != match.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(match.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorthItScore(); ok {
		_spec.SetField(match.FieldWorthItScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorthItScore(); ok {
		_spec.AddField(match.FieldWorthItScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(match.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExplanationSummary(); ok {
		_spec.SetField(match.FieldExplanationSummary, field.TypeString, value)
	}
	if _u.mutation.ExplanationSummaryCleared() {
		_spec.ClearField(match.FieldExplanationSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(match.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(match.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(match.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Match{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
