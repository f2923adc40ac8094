// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/ent/predicate"
)

// InterviewMissionUpdate is the builder for updating InterviewMission entities.
type InterviewMissionUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewMissionMutation
}

// Where appends a list predicates to the InterviewMissionUpdate builder.
func (_u *InterviewMissionUpdate) Where(ps ...predicate.InterviewMission) *InterviewMissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterviewMissionUpdate) SetStatus(v interviewmission.Status) *InterviewMissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableStatus(v *interviewmission.Status) *InterviewMissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *InterviewMissionUpdate) SetAttemptNumber(v int) *InterviewMissionUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableAttemptNumber(v *int) *InterviewMissionUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *InterviewMissionUpdate) AddAttemptNumber(v int) *InterviewMissionUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InterviewMissionUpdate) SetPayload(v map[string]interface{}) *InterviewMissionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *InterviewMissionUpdate) SetTranscript(v []map[string]interface{}) *InterviewMissionUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *InterviewMissionUpdate) AppendTranscript(v []map[string]interface{}) *InterviewMissionUpdate {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *InterviewMissionUpdate) ClearTranscript() *InterviewMissionUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetJudgeDecision sets the "judge_decision" field.
func (_u *InterviewMissionUpdate) SetJudgeDecision(v map[string]interface{}) *InterviewMissionUpdate {
	_u.mutation.SetJudgeDecision(v)
	return _u
}

// ClearJudgeDecision clears the value of the "judge_decision" field.
func (_u *InterviewMissionUpdate) ClearJudgeDecision() *InterviewMissionUpdate {
	_u.mutation.ClearJudgeDecision()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InterviewMissionUpdate) SetFailureReason(v string) *InterviewMissionUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableFailureReason(v *string) *InterviewMissionUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InterviewMissionUpdate) ClearFailureReason() *InterviewMissionUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InterviewMissionUpdate) SetPodID(v string) *InterviewMissionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillablePodID(v *string) *InterviewMissionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InterviewMissionUpdate) ClearPodID() *InterviewMissionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterviewMissionUpdate) SetStartedAt(v time.Time) *InterviewMissionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableStartedAt(v *time.Time) *InterviewMissionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InterviewMissionUpdate) ClearStartedAt() *InterviewMissionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InterviewMissionUpdate) SetCompletedAt(v time.Time) *InterviewMissionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableCompletedAt(v *time.Time) *InterviewMissionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InterviewMissionUpdate) ClearCompletedAt() *InterviewMissionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InterviewMissionUpdate) SetLastHeartbeatAt(v time.Time) *InterviewMissionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *InterviewMissionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InterviewMissionUpdate) ClearLastHeartbeatAt() *InterviewMissionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_u *InterviewMissionUpdate) SetDeliveryAttempts(v int) *InterviewMissionUpdate {
	_u.mutation.ResetDeliveryAttempts()
	_u.mutation.SetDeliveryAttempts(v)
	return _u
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableDeliveryAttempts(v *int) *InterviewMissionUpdate {
	if v != nil {
		_u.SetDeliveryAttempts(*v)
	}
	return _u
}

// AddDeliveryAttempts adds value to the "delivery_attempts" field.
func (_u *InterviewMissionUpdate) AddDeliveryAttempts(v int) *InterviewMissionUpdate {
	_u.mutation.AddDeliveryAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *InterviewMissionUpdate) SetNextAttemptAt(v time.Time) *InterviewMissionUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableNextAttemptAt(v *time.Time) *InterviewMissionUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterviewMissionUpdate) SetUpdatedAt(v time.Time) *InterviewMissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMatchID sets the "match" edge to the Match entity by ID.
func (_u *InterviewMissionUpdate) SetMatchID(id string) *InterviewMissionUpdate {
	_u.mutation.SetMatchID(id)
	return _u
}

// SetNillableMatchID sets the "match" edge to the Match entity by ID if the given value is not nil.
func (_u *InterviewMissionUpdate) SetNillableMatchID(id *string) *InterviewMissionUpdate {
	if id != nil {
		_u = _u.SetMatchID(*id)
	}
	return _u
}

// SetMatch sets the "match" edge to the Match entity.
func (_u *InterviewMissionUpdate) SetMatch(v *Match) *InterviewMissionUpdate {
	return _u.SetMatchID(v.ID)
}

// Mutation returns the InterviewMissionMutation object of the builder.
func (_u *InterviewMissionUpdate) Mutation() *InterviewMissionMutation {
	return _u.mutation
}

// ClearMatch clears the "match" edge to the Match entity.
func (_u *InterviewMissionUpdate) ClearMatch() *InterviewMissionUpdate {
	_u.mutation.ClearMatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewMissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewMissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewMissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewMissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterviewMissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interviewmission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewMissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interviewmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InterviewMission.status": %w`, err)}
		}
	}
	if _u.mutation.CollisionEventCleared() && len(_u.mutation.CollisionEventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InterviewMission.collision_event"`)
	}
	return nil
}

func (_u *InterviewMissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewmission.Table, interviewmission.Columns, sqlgraph.NewFieldSpec(interviewmission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(interviewmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(interviewmission.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(interviewmission.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(interviewmission.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(interviewmission.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interviewmission.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(interviewmission.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.JudgeDecision(); ok {
		_spec.SetField(interviewmission.FieldJudgeDecision, field.TypeJSON, value)
	}
	if _u.mutation.JudgeDecisionCleared() {
		_spec.ClearField(interviewmission.FieldJudgeDecision, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(interviewmission.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(interviewmission.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(interviewmission.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(interviewmission.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interviewmission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(interviewmission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(interviewmission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(interviewmission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(interviewmission.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(interviewmission.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryAttempts(); ok {
		_spec.SetField(interviewmission.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryAttempts(); ok {
		_spec.AddField(interviewmission.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(interviewmission.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interviewmission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interviewmission.MatchTable,
			Columns: []string{interviewmission.MatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interviewmission.MatchTable,
			Columns: []string{interviewmission.MatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewMissionUpdateOne is the builder for updating a single InterviewMission entity.
type InterviewMissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewMissionMutation
}

// SetStatus sets the "status" field.
func (_u *InterviewMissionUpdateOne) SetStatus(v interviewmission.Status) *InterviewMissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableStatus(v *interviewmission.Status) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *InterviewMissionUpdateOne) SetAttemptNumber(v int) *InterviewMissionUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableAttemptNumber(v *int) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *InterviewMissionUpdateOne) AddAttemptNumber(v int) *InterviewMissionUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InterviewMissionUpdateOne) SetPayload(v map[string]interface{}) *InterviewMissionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *InterviewMissionUpdateOne) SetTranscript(v []map[string]interface{}) *InterviewMissionUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *InterviewMissionUpdateOne) AppendTranscript(v []map[string]interface{}) *InterviewMissionUpdateOne {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *InterviewMissionUpdateOne) ClearTranscript() *InterviewMissionUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetJudgeDecision sets the "judge_decision" field.
func (_u *InterviewMissionUpdateOne) SetJudgeDecision(v map[string]interface{}) *InterviewMissionUpdateOne {
	_u.mutation.SetJudgeDecision(v)
	return _u
}

// ClearJudgeDecision clears the value of the "judge_decision" field.
func (_u *InterviewMissionUpdateOne) ClearJudgeDecision() *InterviewMissionUpdateOne {
	_u.mutation.ClearJudgeDecision()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InterviewMissionUpdateOne) SetFailureReason(v string) *InterviewMissionUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableFailureReason(v *string) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InterviewMissionUpdateOne) ClearFailureReason() *InterviewMissionUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InterviewMissionUpdateOne) SetPodID(v string) *InterviewMissionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillablePodID(v *string) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InterviewMissionUpdateOne) ClearPodID() *InterviewMissionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InterviewMissionUpdateOne) SetStartedAt(v time.Time) *InterviewMissionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableStartedAt(v *time.Time) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InterviewMissionUpdateOne) ClearStartedAt() *InterviewMissionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InterviewMissionUpdateOne) SetCompletedAt(v time.Time) *InterviewMissionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableCompletedAt(v *time.Time) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InterviewMissionUpdateOne) ClearCompletedAt() *InterviewMissionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InterviewMissionUpdateOne) SetLastHeartbeatAt(v time.Time) *InterviewMissionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InterviewMissionUpdateOne) ClearLastHeartbeatAt() *InterviewMissionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_u *InterviewMissionUpdateOne) SetDeliveryAttempts(v int) *InterviewMissionUpdateOne {
	_u.mutation.ResetDeliveryAttempts()
	_u.mutation.SetDeliveryAttempts(v)
	return _u
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableDeliveryAttempts(v *int) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetDeliveryAttempts(*v)
	}
	return _u
}

// AddDeliveryAttempts adds value to the "delivery_attempts" field.
func (_u *InterviewMissionUpdateOne) AddDeliveryAttempts(v int) *InterviewMissionUpdateOne {
	_u.mutation.AddDeliveryAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *InterviewMissionUpdateOne) SetNextAttemptAt(v time.Time) *InterviewMissionUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableNextAttemptAt(v *time.Time) *InterviewMissionUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterviewMissionUpdateOne) SetUpdatedAt(v time.Time) *InterviewMissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMatchID sets the "match" edge to the Match entity by ID.
func (_u *InterviewMissionUpdateOne) SetMatchID(id string) *InterviewMissionUpdateOne {
	_u.mutation.SetMatchID(id)
	return _u
}

// SetNillableMatchID sets the "match" edge to the Match entity by ID if the given value is not nil.
func (_u *InterviewMissionUpdateOne) SetNillableMatchID(id *string) *InterviewMissionUpdateOne {
	if id != nil {
		_u = _u.SetMatchID(*id)
	}
	return _u
}

// SetMatch sets the "match" edge to the Match entity.
func (_u *InterviewMissionUpdateOne) SetMatch(v *Match) *InterviewMissionUpdateOne {
	return _u.SetMatchID(v.ID)
}

// Mutation returns the InterviewMissionMutation object of the builder.
func (_u *InterviewMissionUpdateOne) Mutation() *InterviewMissionMutation {
	return _u.mutation
}

// ClearMatch clears the "match" edge to the Match entity.
func (_u *InterviewMissionUpdateOne) ClearMatch() *InterviewMissionUpdateOne {
	_u.mutation.ClearMatch()
	return _u
}

// Where appends a list predicates to the InterviewMissionUpdate builder.
func (_u *InterviewMissionUpdateOne) Where(ps ...predicate.InterviewMission) *InterviewMissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewMissionUpdateOne) Select(field string, fields ...string) *InterviewMissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewMission entity.
func (_u *InterviewMissionUpdateOne) Save(ctx context.Context) (*InterviewMission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewMissionUpdateOne) SaveX(ctx context.Context) *InterviewMission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewMissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewMissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterviewMissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interviewmission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewMissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := interviewmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InterviewMission.status": %w`, err)}
		}
	}
	if _u.mutation.CollisionEventCleared() && len(_u.mutation.CollisionEventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InterviewMission.collision_event"`)
	}
	return nil
}

func (_u *InterviewMissionUpdateOne) sqlSave(ctx context.Context) (_node *InterviewMission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewmission.Table, interviewmission.Columns, sqlgraph.NewFieldSpec(interviewmission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewMission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewmission.FieldID)
		for _, f := range fields {
			if !interviewmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewmission.FieldID {
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
		_spec.SetField(interviewmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(interviewmission.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(interviewmission.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(interviewmission.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(interviewmission.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interviewmission.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(interviewmission.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.JudgeDecision(); ok {
		_spec.SetField(interviewmission.FieldJudgeDecision, field.TypeJSON, value)
	}
	if _u.mutation.JudgeDecisionCleared() {
		_spec.ClearField(interviewmission.FieldJudgeDecision, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(interviewmission.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(interviewmission.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(interviewmission.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(interviewmission.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(interviewmission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(interviewmission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(interviewmission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(interviewmission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(interviewmission.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(interviewmission.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryAttempts(); ok {
		_spec.SetField(interviewmission.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryAttempts(); ok {
		_spec.AddField(interviewmission.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(interviewmission.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interviewmission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interviewmission.MatchTable,
			Columns: []string{interviewmission.MatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   interviewmission.MatchTable,
			Columns: []string{interviewmission.MatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InterviewMission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
