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
	"github.com/venn-social/vennd/ent/match"
)

// InterviewMissionCreate is the builder for creating a InterviewMission entity.
type InterviewMissionCreate struct {
	config
	mutation *InterviewMissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCollisionEventID sets the "collision_event_id" field.
func (_c *InterviewMissionCreate) SetCollisionEventID(v string) *InterviewMissionCreate {
	_c.mutation.SetCollisionEventID(v)
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *InterviewMissionCreate) SetOwnerUserID(v string) *InterviewMissionCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetVisitorUserID sets the "visitor_user_id" field.
func (_c *InterviewMissionCreate) SetVisitorUserID(v string) *InterviewMissionCreate {
	_c.mutation.SetVisitorUserID(v)
	return _c
}

// SetOwnerCircleID sets the "owner_circle_id" field.
func (_c *InterviewMissionCreate) SetOwnerCircleID(v string) *InterviewMissionCreate {
	_c.mutation.SetOwnerCircleID(v)
	return _c
}

// SetVisitorCircleID sets the "visitor_circle_id" field.
func (_c *InterviewMissionCreate) SetVisitorCircleID(v string) *InterviewMissionCreate {
	_c.mutation.SetVisitorCircleID(v)
	return _c
}

// SetCirclePairKey sets the "circle_pair_key" field.
func (_c *InterviewMissionCreate) SetCirclePairKey(v string) *InterviewMissionCreate {
	_c.mutation.SetCirclePairKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InterviewMissionCreate) SetStatus(v interviewmission.Status) *InterviewMissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableStatus(v *interviewmission.Status) *InterviewMissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *InterviewMissionCreate) SetAttemptNumber(v int) *InterviewMissionCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableAttemptNumber(v *int) *InterviewMissionCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InterviewMissionCreate) SetPayload(v map[string]interface{}) *InterviewMissionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *InterviewMissionCreate) SetTranscript(v []map[string]interface{}) *InterviewMissionCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetJudgeDecision sets the "judge_decision" field.
func (_c *InterviewMissionCreate) SetJudgeDecision(v map[string]interface{}) *InterviewMissionCreate {
	_c.mutation.SetJudgeDecision(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *InterviewMissionCreate) SetFailureReason(v string) *InterviewMissionCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableFailureReason(v *string) *InterviewMissionCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *InterviewMissionCreate) SetPodID(v string) *InterviewMissionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillablePodID(v *string) *InterviewMissionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InterviewMissionCreate) SetStartedAt(v time.Time) *InterviewMissionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableStartedAt(v *time.Time) *InterviewMissionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InterviewMissionCreate) SetCompletedAt(v time.Time) *InterviewMissionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableCompletedAt(v *time.Time) *InterviewMissionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *InterviewMissionCreate) SetLastHeartbeatAt(v time.Time) *InterviewMissionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableLastHeartbeatAt(v *time.Time) *InterviewMissionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_c *InterviewMissionCreate) SetDeliveryAttempts(v int) *InterviewMissionCreate {
	_c.mutation.SetDeliveryAttempts(v)
	return _c
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableDeliveryAttempts(v *int) *InterviewMissionCreate {
	if v != nil {
		_c.SetDeliveryAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *InterviewMissionCreate) SetNextAttemptAt(v time.Time) *InterviewMissionCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableNextAttemptAt(v *time.Time) *InterviewMissionCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterviewMissionCreate) SetCreatedAt(v time.Time) *InterviewMissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableCreatedAt(v *time.Time) *InterviewMissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterviewMissionCreate) SetUpdatedAt(v time.Time) *InterviewMissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableUpdatedAt(v *time.Time) *InterviewMissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewMissionCreate) SetID(v string) *InterviewMissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCollisionEvent sets the "collision_event" edge to the CollisionEvent entity.
func (_c *InterviewMissionCreate) SetCollisionEvent(v *CollisionEvent) *InterviewMissionCreate {
	return _c.SetCollisionEventID(v.ID)
}

// SetMatchID sets the "match" edge to the Match entity by ID.
func (_c *InterviewMissionCreate) SetMatchID(id string) *InterviewMissionCreate {
	_c.mutation.SetMatchID(id)
	return _c
}

// SetNillableMatchID sets the "match" edge to the Match entity by ID if the given value is not nil.
func (_c *InterviewMissionCreate) SetNillableMatchID(id *string) *InterviewMissionCreate {
	if id != nil {
		_c = _c.SetMatchID(*id)
	}
	return _c
}

// SetMatch sets the "match" edge to the Match entity.
func (_c *InterviewMissionCreate) SetMatch(v *Match) *InterviewMissionCreate {
	return _c.SetMatchID(v.ID)
}

// Mutation returns the InterviewMissionMutation object of the builder.
func (_c *InterviewMissionCreate) Mutation() *InterviewMissionMutation {
	return _c.mutation
}

// Save creates the InterviewMission in the database.
func (_c *InterviewMissionCreate) Save(ctx context.Context) (*InterviewMission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewMissionCreate) SaveX(ctx context.Context) *InterviewMission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewMissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewMissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewMissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := interviewmission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := interviewmission.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.DeliveryAttempts(); !ok {
		v := interviewmission.DefaultDeliveryAttempts
		_c.mutation.SetDeliveryAttempts(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := interviewmission.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interviewmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interviewmission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewMissionCreate) check() error {
	if _, ok := _c.mutation.CollisionEventID(); !ok {
		return &ValidationError{Name: "collision_event_id", err: errors.New(`ent: missing required field "InterviewMission.collision_event_id"`)}
	}
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "InterviewMission.owner_user_id"`)}
	}
	if _, ok := _c.mutation.VisitorUserID(); !ok {
		return &ValidationError{Name: "visitor_user_id", err: errors.New(`ent: missing required field "InterviewMission.visitor_user_id"`)}
	}
	if _, ok := _c.mutation.OwnerCircleID(); !ok {
		return &ValidationError{Name: "owner_circle_id", err: errors.New(`ent: missing required field "InterviewMission.owner_circle_id"`)}
	}
	if _, ok := _c.mutation.VisitorCircleID(); !ok {
		return &ValidationError{Name: "visitor_circle_id", err: errors.New(`ent: missing required field "InterviewMission.visitor_circle_id"`)}
	}
	if _, ok := _c.mutation.CirclePairKey(); !ok {
		return &ValidationError{Name: "circle_pair_key", err: errors.New(`ent: missing required field "InterviewMission.circle_pair_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InterviewMission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := interviewmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InterviewMission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "InterviewMission.attempt_number"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "InterviewMission.payload"`)}
	}
	if _, ok := _c.mutation.DeliveryAttempts(); !ok {
		return &ValidationError{Name: "delivery_attempts", err: errors.New(`ent: missing required field "InterviewMission.delivery_attempts"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "InterviewMission.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InterviewMission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InterviewMission.updated_at"`)}
	}
	if len(_c.mutation.CollisionEventIDs()) == 0 {
		return &ValidationError{Name: "collision_event", err: errors.New(`ent: missing required edge "InterviewMission.collision_event"`)}
	}
	return nil
}

func (_c *InterviewMissionCreate) sqlSave(ctx context.Context) (*InterviewMission, error) {
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
			return nil, fmt.Errorf("unexpected InterviewMission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewMissionCreate) createSpec() (*InterviewMission, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewMission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewmission.Table, sqlgraph.NewFieldSpec(interviewmission.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(interviewmission.FieldOwnerUserID, field.TypeString, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.VisitorUserID(); ok {
		_spec.SetField(interviewmission.FieldVisitorUserID, field.TypeString, value)
		_node.VisitorUserID = value
	}
	if value, ok := _c.mutation.OwnerCircleID(); ok {
		_spec.SetField(interviewmission.FieldOwnerCircleID, field.TypeString, value)
		_node.OwnerCircleID = value
	}
	if value, ok := _c.mutation.VisitorCircleID(); ok {
		_spec.SetField(interviewmission.FieldVisitorCircleID, field.TypeString, value)
		_node.VisitorCircleID = value
	}
	if value, ok := _c.mutation.CirclePairKey(); ok {
		_spec.SetField(interviewmission.FieldCirclePairKey, field.TypeString, value)
		_node.CirclePairKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interviewmission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(interviewmission.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(interviewmission.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(interviewmission.FieldTranscript, field.TypeJSON, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.JudgeDecision(); ok {
		_spec.SetField(interviewmission.FieldJudgeDecision, field.TypeJSON, value)
		_node.JudgeDecision = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(interviewmission.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(interviewmission.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(interviewmission.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(interviewmission.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(interviewmission.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeliveryAttempts(); ok {
		_spec.SetField(interviewmission.FieldDeliveryAttempts, field.TypeInt, value)
		_node.DeliveryAttempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(interviewmission.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interviewmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interviewmission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CollisionEventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interviewmission.CollisionEventTable,
			Columns: []string{interviewmission.CollisionEventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collisionevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CollisionEventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InterviewMission.Create().
//		SetCollisionEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterviewMissionUpsert) {
//			SetCollisionEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *InterviewMissionCreate) OnConflict(opts ...sql.ConflictOption) *InterviewMissionUpsertOne {
	_c.conflict = opts
	return &InterviewMissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InterviewMission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterviewMissionCreate) OnConflictColumns(columns ...string) *InterviewMissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterviewMissionUpsertOne{
		create: _c,
	}
}

type (
	// InterviewMissionUpsertOne is the builder for "upsert"-ing
	//  one InterviewMission node.
	InterviewMissionUpsertOne struct {
		create *InterviewMissionCreate
	}

	// InterviewMissionUpsert is the "OnConflict" setter.
	InterviewMissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *InterviewMissionUpsert) SetStatus(v interviewmission.Status) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateStatus() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldStatus)
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *InterviewMissionUpsert) SetAttemptNumber(v int) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldAttemptNumber, v)
	return u
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateAttemptNumber() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldAttemptNumber)
	return u
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *InterviewMissionUpsert) AddAttemptNumber(v int) *InterviewMissionUpsert {
	u.Add(interviewmission.FieldAttemptNumber, v)
	return u
}

// SetPayload sets the "payload" field.
func (u *InterviewMissionUpsert) SetPayload(v map[string]interface{}) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdatePayload() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldPayload)
	return u
}

// SetTranscript sets the "transcript" field.
func (u *InterviewMissionUpsert) SetTranscript(v []map[string]interface{}) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldTranscript, v)
	return u
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateTranscript() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldTranscript)
	return u
}

// ClearTranscript clears the value of the "transcript" field.
func (u *InterviewMissionUpsert) ClearTranscript() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldTranscript)
	return u
}

// SetJudgeDecision sets the "judge_decision" field.
func (u *InterviewMissionUpsert) SetJudgeDecision(v map[string]interface{}) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldJudgeDecision, v)
	return u
}

// UpdateJudgeDecision sets the "judge_decision" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateJudgeDecision() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldJudgeDecision)
	return u
}

// ClearJudgeDecision clears the value of the "judge_decision" field.
func (u *InterviewMissionUpsert) ClearJudgeDecision() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldJudgeDecision)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *InterviewMissionUpsert) SetFailureReason(v string) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateFailureReason() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *InterviewMissionUpsert) ClearFailureReason() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldFailureReason)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *InterviewMissionUpsert) SetPodID(v string) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdatePodID() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *InterviewMissionUpsert) ClearPodID() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldPodID)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *InterviewMissionUpsert) SetStartedAt(v time.Time) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateStartedAt() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InterviewMissionUpsert) ClearStartedAt() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *InterviewMissionUpsert) SetCompletedAt(v time.Time) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateCompletedAt() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InterviewMissionUpsert) ClearCompletedAt() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldCompletedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *InterviewMissionUpsert) SetLastHeartbeatAt(v time.Time) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateLastHeartbeatAt() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *InterviewMissionUpsert) ClearLastHeartbeatAt() *InterviewMissionUpsert {
	u.SetNull(interviewmission.FieldLastHeartbeatAt)
	return u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (u *InterviewMissionUpsert) SetDeliveryAttempts(v int) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldDeliveryAttempts, v)
	return u
}

// UpdateDeliveryAttempts sets the "delivery_attempts" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateDeliveryAttempts() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldDeliveryAttempts)
	return u
}

// AddDeliveryAttempts adds v to the "delivery_attempts" field.
func (u *InterviewMissionUpsert) AddDeliveryAttempts(v int) *InterviewMissionUpsert {
	u.Add(interviewmission.FieldDeliveryAttempts, v)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *InterviewMissionUpsert) SetNextAttemptAt(v time.Time) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateNextAttemptAt() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldNextAttemptAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterviewMissionUpsert) SetUpdatedAt(v time.Time) *InterviewMissionUpsert {
	u.Set(interviewmission.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterviewMissionUpsert) UpdateUpdatedAt() *InterviewMissionUpsert {
	u.SetExcluded(interviewmission.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InterviewMission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interviewmission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InterviewMissionUpsertOne) UpdateNewValues() *InterviewMissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(interviewmission.FieldID)
		}
		if _, exists := u.create.mutation.CollisionEventID(); exists {
			s.SetIgnore(interviewmission.FieldCollisionEventID)
		}
		if _, exists := u.create.mutation.OwnerUserID(); exists {
			s.SetIgnore(interviewmission.FieldOwnerUserID)
		}
		if _, exists := u.create.mutation.VisitorUserID(); exists {
			s.SetIgnore(interviewmission.FieldVisitorUserID)
		}
		if _, exists := u.create.mutation.OwnerCircleID(); exists {
			s.SetIgnore(interviewmission.FieldOwnerCircleID)
		}
		if _, exists := u.create.mutation.VisitorCircleID(); exists {
			s.SetIgnore(interviewmission.FieldVisitorCircleID)
		}
		if _, exists := u.create.mutation.CirclePairKey(); exists {
			s.SetIgnore(interviewmission.FieldCirclePairKey)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interviewmission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InterviewMission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InterviewMissionUpsertOne) Ignore() *InterviewMissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterviewMissionUpsertOne) DoNothing() *InterviewMissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterviewMissionCreate.OnConflict
// documentation for more info.
func (u *InterviewMissionUpsertOne) Update(set func(*InterviewMissionUpsert)) *InterviewMissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterviewMissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *InterviewMissionUpsertOne) SetStatus(v interviewmission.Status) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateStatus() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *InterviewMissionUpsertOne) SetAttemptNumber(v int) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *InterviewMissionUpsertOne) AddAttemptNumber(v int) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateAttemptNumber() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetPayload sets the "payload" field.
func (u *InterviewMissionUpsertOne) SetPayload(v map[string]interface{}) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdatePayload() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdatePayload()
	})
}

// SetTranscript sets the "transcript" field.
func (u *InterviewMissionUpsertOne) SetTranscript(v []map[string]interface{}) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateTranscript() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *InterviewMissionUpsertOne) ClearTranscript() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearTranscript()
	})
}

// SetJudgeDecision sets the "judge_decision" field.
func (u *InterviewMissionUpsertOne) SetJudgeDecision(v map[string]interface{}) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetJudgeDecision(v)
	})
}

// UpdateJudgeDecision sets the "judge_decision" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateJudgeDecision() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateJudgeDecision()
	})
}

// ClearJudgeDecision clears the value of the "judge_decision" field.
func (u *InterviewMissionUpsertOne) ClearJudgeDecision() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearJudgeDecision()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *InterviewMissionUpsertOne) SetFailureReason(v string) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateFailureReason() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *InterviewMissionUpsertOne) ClearFailureReason() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearFailureReason()
	})
}

// SetPodID sets the "pod_id" field.
func (u *InterviewMissionUpsertOne) SetPodID(v string) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdatePodID() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *InterviewMissionUpsertOne) ClearPodID() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InterviewMissionUpsertOne) SetStartedAt(v time.Time) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateStartedAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InterviewMissionUpsertOne) ClearStartedAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InterviewMissionUpsertOne) SetCompletedAt(v time.Time) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateCompletedAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InterviewMissionUpsertOne) ClearCompletedAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *InterviewMissionUpsertOne) SetLastHeartbeatAt(v time.Time) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateLastHeartbeatAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *InterviewMissionUpsertOne) ClearLastHeartbeatAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (u *InterviewMissionUpsertOne) SetDeliveryAttempts(v int) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetDeliveryAttempts(v)
	})
}

// AddDeliveryAttempts adds v to the "delivery_attempts" field.
func (u *InterviewMissionUpsertOne) AddDeliveryAttempts(v int) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.AddDeliveryAttempts(v)
	})
}

// UpdateDeliveryAttempts sets the "delivery_attempts" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateDeliveryAttempts() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateDeliveryAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *InterviewMissionUpsertOne) SetNextAttemptAt(v time.Time) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateNextAttemptAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterviewMissionUpsertOne) SetUpdatedAt(v time.Time) *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertOne) UpdateUpdatedAt() *InterviewMissionUpsertOne {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InterviewMissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InterviewMissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterviewMissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InterviewMissionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InterviewMissionUpsertOne.ID is not supported by MySQL driver. Use InterviewMissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InterviewMissionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InterviewMissionCreateBulk is the builder for creating many InterviewMission entities in bulk.
type InterviewMissionCreateBulk struct {
	config
	err      error
	builders []*InterviewMissionCreate
	conflict []sql.ConflictOption
}

// Save creates the InterviewMission entities in the database.
func (_c *InterviewMissionCreateBulk) Save(ctx context.Context) ([]*InterviewMission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewMission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewMissionMutation)
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
func (_c *InterviewMissionCreateBulk) SaveX(ctx context.Context) []*InterviewMission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewMissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewMissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InterviewMission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterviewMissionUpsert) {
//			SetCollisionEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *InterviewMissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *InterviewMissionUpsertBulk {
	_c.conflict = opts
	return &InterviewMissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InterviewMission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterviewMissionCreateBulk) OnConflictColumns(columns ...string) *InterviewMissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterviewMissionUpsertBulk{
		create: _c,
	}
}

// InterviewMissionUpsertBulk is the builder for "upsert"-ing
// a bulk of InterviewMission nodes.
type InterviewMissionUpsertBulk struct {
	create *InterviewMissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InterviewMission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interviewmission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InterviewMissionUpsertBulk) UpdateNewValues() *InterviewMissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(interviewmission.FieldID)
			}
			if _, exists := b.mutation.CollisionEventID(); exists {
				s.SetIgnore(interviewmission.FieldCollisionEventID)
			}
			if _, exists := b.mutation.OwnerUserID(); exists {
				s.SetIgnore(interviewmission.FieldOwnerUserID)
			}
			if _, exists := b.mutation.VisitorUserID(); exists {
				s.SetIgnore(interviewmission.FieldVisitorUserID)
			}
			if _, exists := b.mutation.OwnerCircleID(); exists {
				s.SetIgnore(interviewmission.FieldOwnerCircleID)
			}
			if _, exists := b.mutation.VisitorCircleID(); exists {
				s.SetIgnore(interviewmission.FieldVisitorCircleID)
			}
			if _, exists := b.mutation.CirclePairKey(); exists {
				s.SetIgnore(interviewmission.FieldCirclePairKey)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interviewmission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InterviewMission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InterviewMissionUpsertBulk) Ignore() *InterviewMissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterviewMissionUpsertBulk) DoNothing() *InterviewMissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterviewMissionCreateBulk.OnConflict
// documentation for more info.
func (u *InterviewMissionUpsertBulk) Update(set func(*InterviewMissionUpsert)) *InterviewMissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterviewMissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *InterviewMissionUpsertBulk) SetStatus(v interviewmission.Status) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateStatus() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *InterviewMissionUpsertBulk) SetAttemptNumber(v int) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *InterviewMissionUpsertBulk) AddAttemptNumber(v int) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateAttemptNumber() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetPayload sets the "payload" field.
func (u *InterviewMissionUpsertBulk) SetPayload(v map[string]interface{}) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdatePayload() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdatePayload()
	})
}

// SetTranscript sets the "transcript" field.
func (u *InterviewMissionUpsertBulk) SetTranscript(v []map[string]interface{}) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateTranscript() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *InterviewMissionUpsertBulk) ClearTranscript() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearTranscript()
	})
}

// SetJudgeDecision sets the "judge_decision" field.
func (u *InterviewMissionUpsertBulk) SetJudgeDecision(v map[string]interface{}) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetJudgeDecision(v)
	})
}

// UpdateJudgeDecision sets the "judge_decision" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateJudgeDecision() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateJudgeDecision()
	})
}

// ClearJudgeDecision clears the value of the "judge_decision" field.
func (u *InterviewMissionUpsertBulk) ClearJudgeDecision() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearJudgeDecision()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *InterviewMissionUpsertBulk) SetFailureReason(v string) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateFailureReason() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *InterviewMissionUpsertBulk) ClearFailureReason() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearFailureReason()
	})
}

// SetPodID sets the "pod_id" field.
func (u *InterviewMissionUpsertBulk) SetPodID(v string) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdatePodID() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *InterviewMissionUpsertBulk) ClearPodID() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InterviewMissionUpsertBulk) SetStartedAt(v time.Time) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateStartedAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InterviewMissionUpsertBulk) ClearStartedAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InterviewMissionUpsertBulk) SetCompletedAt(v time.Time) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateCompletedAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InterviewMissionUpsertBulk) ClearCompletedAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *InterviewMissionUpsertBulk) SetLastHeartbeatAt(v time.Time) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateLastHeartbeatAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *InterviewMissionUpsertBulk) ClearLastHeartbeatAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (u *InterviewMissionUpsertBulk) SetDeliveryAttempts(v int) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetDeliveryAttempts(v)
	})
}

// AddDeliveryAttempts adds v to the "delivery_attempts" field.
func (u *InterviewMissionUpsertBulk) AddDeliveryAttempts(v int) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.AddDeliveryAttempts(v)
	})
}

// UpdateDeliveryAttempts sets the "delivery_attempts" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateDeliveryAttempts() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateDeliveryAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *InterviewMissionUpsertBulk) SetNextAttemptAt(v time.Time) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateNextAttemptAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterviewMissionUpsertBulk) SetUpdatedAt(v time.Time) *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterviewMissionUpsertBulk) UpdateUpdatedAt() *InterviewMissionUpsertBulk {
	return u.Update(func(s *InterviewMissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InterviewMissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InterviewMissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InterviewMissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterviewMissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
