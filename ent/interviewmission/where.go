// Code generated by ent, DO NOT EDIT.

package interviewmission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/venn-social/vennd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldID, id))
}

// CollisionEventID applies equality check predicate on the "collision_event_id" field. It's identical to CollisionEventIDEQ.
func CollisionEventID(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCollisionEventID, v))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldOwnerUserID, v))
}

// VisitorUserID applies equality check predicate on the "visitor_user_id" field. It's identical to VisitorUserIDEQ.
func VisitorUserID(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldVisitorUserID, v))
}

// OwnerCircleID applies equality check predicate on the "owner_circle_id" field. It's identical to OwnerCircleIDEQ.
func OwnerCircleID(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldOwnerCircleID, v))
}

// VisitorCircleID applies equality check predicate on the "visitor_circle_id" field. It's identical to VisitorCircleIDEQ.
func VisitorCircleID(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldVisitorCircleID, v))
}

// CirclePairKey applies equality check predicate on the "circle_pair_key" field. It's identical to CirclePairKeyEQ.
func CirclePairKey(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCirclePairKey, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldAttemptNumber, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldFailureReason, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldPodID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeliveryAttempts applies equality check predicate on the "delivery_attempts" field. It's identical to DeliveryAttemptsEQ.
func DeliveryAttempts(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldDeliveryAttempts, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldNextAttemptAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldUpdatedAt, v))
}

// CollisionEventIDEQ applies the EQ predicate on the "collision_event_id" field.
func CollisionEventIDEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCollisionEventID, v))
}

// CollisionEventIDNEQ applies the NEQ predicate on the "collision_event_id" field.
func CollisionEventIDNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldCollisionEventID, v))
}

// CollisionEventIDIn applies the In predicate on the "collision_event_id" field.
func CollisionEventIDIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldCollisionEventID, vs...))
}

// CollisionEventIDNotIn applies the NotIn predicate on the "collision_event_id" field.
func CollisionEventIDNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldCollisionEventID, vs...))
}

// CollisionEventIDGT applies the GT predicate on the "collision_event_id" field.
func CollisionEventIDGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldCollisionEventID, v))
}

// CollisionEventIDGTE applies the GTE predicate on the "collision_event_id" field.
func CollisionEventIDGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldCollisionEventID, v))
}

// CollisionEventIDLT applies the LT predicate on the "collision_event_id" field.
func CollisionEventIDLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldCollisionEventID, v))
}

// CollisionEventIDLTE applies the LTE predicate on the "collision_event_id" field.
func CollisionEventIDLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldCollisionEventID, v))
}

// CollisionEventIDContains applies the Contains predicate on the "collision_event_id" field.
func CollisionEventIDContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldCollisionEventID, v))
}

// CollisionEventIDHasPrefix applies the HasPrefix predicate on the "collision_event_id" field.
func CollisionEventIDHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldCollisionEventID, v))
}

// CollisionEventIDHasSuffix applies the HasSuffix predicate on the "collision_event_id" field.
func CollisionEventIDHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldCollisionEventID, v))
}

// CollisionEventIDEqualFold applies the EqualFold predicate on the "collision_event_id" field.
func CollisionEventIDEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldCollisionEventID, v))
}

// CollisionEventIDContainsFold applies the ContainsFold predicate on the "collision_event_id" field.
func CollisionEventIDContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldCollisionEventID, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldOwnerUserID, v))
}

// OwnerUserIDContains applies the Contains predicate on the "owner_user_id" field.
func OwnerUserIDContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldOwnerUserID, v))
}

// OwnerUserIDHasPrefix applies the HasPrefix predicate on the "owner_user_id" field.
func OwnerUserIDHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldOwnerUserID, v))
}

// OwnerUserIDHasSuffix applies the HasSuffix predicate on the "owner_user_id" field.
func OwnerUserIDHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldOwnerUserID, v))
}

// OwnerUserIDEqualFold applies the EqualFold predicate on the "owner_user_id" field.
func OwnerUserIDEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldOwnerUserID, v))
}

// OwnerUserIDContainsFold applies the ContainsFold predicate on the "owner_user_id" field.
func OwnerUserIDContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldOwnerUserID, v))
}

// VisitorUserIDEQ applies the EQ predicate on the "visitor_user_id" field.
func VisitorUserIDEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldVisitorUserID, v))
}

// VisitorUserIDNEQ applies the NEQ predicate on the "visitor_user_id" field.
func VisitorUserIDNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldVisitorUserID, v))
}

// VisitorUserIDIn applies the In predicate on the "visitor_user_id" field.
func VisitorUserIDIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldVisitorUserID, vs...))
}

// VisitorUserIDNotIn applies the NotIn predicate on the "visitor_user_id" field.
func VisitorUserIDNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldVisitorUserID, vs...))
}

// VisitorUserIDGT applies the GT predicate on the "visitor_user_id" field.
func VisitorUserIDGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldVisitorUserID, v))
}

// VisitorUserIDGTE applies the GTE predicate on the "visitor_user_id" field.
func VisitorUserIDGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldVisitorUserID, v))
}

// VisitorUserIDLT applies the LT predicate on the "visitor_user_id" field.
func VisitorUserIDLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldVisitorUserID, v))
}

// VisitorUserIDLTE applies the LTE predicate on the "visitor_user_id" field.
func VisitorUserIDLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldVisitorUserID, v))
}

// VisitorUserIDContains applies the Contains predicate on the "visitor_user_id" field.
func VisitorUserIDContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldVisitorUserID, v))
}

// VisitorUserIDHasPrefix applies the HasPrefix predicate on the "visitor_user_id" field.
func VisitorUserIDHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldVisitorUserID, v))
}

// VisitorUserIDHasSuffix applies the HasSuffix predicate on the "visitor_user_id" field.
func VisitorUserIDHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldVisitorUserID, v))
}

// VisitorUserIDEqualFold applies the EqualFold predicate on the "visitor_user_id" field.
func VisitorUserIDEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldVisitorUserID, v))
}

// VisitorUserIDContainsFold applies the ContainsFold predicate on the "visitor_user_id" field.
func VisitorUserIDContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldVisitorUserID, v))
}

// OwnerCircleIDEQ applies the EQ predicate on the "owner_circle_id" field.
func OwnerCircleIDEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldOwnerCircleID, v))
}

// OwnerCircleIDNEQ applies the NEQ predicate on the "owner_circle_id" field.
func OwnerCircleIDNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldOwnerCircleID, v))
}

// OwnerCircleIDIn applies the In predicate on the "owner_circle_id" field.
func OwnerCircleIDIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldOwnerCircleID, vs...))
}

// OwnerCircleIDNotIn applies the NotIn predicate on the "owner_circle_id" field.
func OwnerCircleIDNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldOwnerCircleID, vs...))
}

// OwnerCircleIDGT applies the GT predicate on the "owner_circle_id" field.
func OwnerCircleIDGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldOwnerCircleID, v))
}

// OwnerCircleIDGTE applies the GTE predicate on the "owner_circle_id" field.
func OwnerCircleIDGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldOwnerCircleID, v))
}

// OwnerCircleIDLT applies the LT predicate on the "owner_circle_id" field.
func OwnerCircleIDLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldOwnerCircleID, v))
}

// OwnerCircleIDLTE applies the LTE predicate on the "owner_circle_id" field.
func OwnerCircleIDLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldOwnerCircleID, v))
}

// OwnerCircleIDContains applies the Contains predicate on the "owner_circle_id" field.
func OwnerCircleIDContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldOwnerCircleID, v))
}

// OwnerCircleIDHasPrefix applies the HasPrefix predicate on the "owner_circle_id" field.
func OwnerCircleIDHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldOwnerCircleID, v))
}

// OwnerCircleIDHasSuffix applies the HasSuffix predicate on the "owner_circle_id" field.
func OwnerCircleIDHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldOwnerCircleID, v))
}

// OwnerCircleIDEqualFold applies the EqualFold predicate on the "owner_circle_id" field.
func OwnerCircleIDEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldOwnerCircleID, v))
}

// OwnerCircleIDContainsFold applies the ContainsFold predicate on the "owner_circle_id" field.
func OwnerCircleIDContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldOwnerCircleID, v))
}

// VisitorCircleIDEQ applies the EQ predicate on the "visitor_circle_id" field.
func VisitorCircleIDEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldVisitorCircleID, v))
}

// VisitorCircleIDNEQ applies the NEQ predicate on the "visitor_circle_id" field.
func VisitorCircleIDNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldVisitorCircleID, v))
}

// VisitorCircleIDIn applies the In predicate on the "visitor_circle_id" field.
func VisitorCircleIDIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldVisitorCircleID, vs...))
}

// VisitorCircleIDNotIn applies the NotIn predicate on the "visitor_circle_id" field.
func VisitorCircleIDNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldVisitorCircleID, vs...))
}

// VisitorCircleIDGT applies the GT predicate on the "visitor_circle_id" field.
func VisitorCircleIDGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldVisitorCircleID, v))
}

// VisitorCircleIDGTE applies the GTE predicate on the "visitor_circle_id" field.
func VisitorCircleIDGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldVisitorCircleID, v))
}

// VisitorCircleIDLT applies the LT predicate on the "visitor_circle_id" field.
func VisitorCircleIDLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldVisitorCircleID, v))
}

// VisitorCircleIDLTE applies the LTE predicate on the "visitor_circle_id" field.
func VisitorCircleIDLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldVisitorCircleID, v))
}

// VisitorCircleIDContains applies the Contains predicate on the "visitor_circle_id" field.
func VisitorCircleIDContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldVisitorCircleID, v))
}

// VisitorCircleIDHasPrefix applies the HasPrefix predicate on the "visitor_circle_id" field.
func VisitorCircleIDHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldVisitorCircleID, v))
}

// VisitorCircleIDHasSuffix applies the HasSuffix predicate on the "visitor_circle_id" field.
func VisitorCircleIDHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldVisitorCircleID, v))
}

// VisitorCircleIDEqualFold applies the EqualFold predicate on the "visitor_circle_id" field.
func VisitorCircleIDEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldVisitorCircleID, v))
}

// VisitorCircleIDContainsFold applies the ContainsFold predicate on the "visitor_circle_id" field.
func VisitorCircleIDContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldVisitorCircleID, v))
}

// CirclePairKeyEQ applies the EQ predicate on the "circle_pair_key" field.
func CirclePairKeyEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCirclePairKey, v))
}

// CirclePairKeyNEQ applies the NEQ predicate on the "circle_pair_key" field.
func CirclePairKeyNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldCirclePairKey, v))
}

// CirclePairKeyIn applies the In predicate on the "circle_pair_key" field.
func CirclePairKeyIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldCirclePairKey, vs...))
}

// CirclePairKeyNotIn applies the NotIn predicate on the "circle_pair_key" field.
func CirclePairKeyNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldCirclePairKey, vs...))
}

// CirclePairKeyGT applies the GT predicate on the "circle_pair_key" field.
func CirclePairKeyGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldCirclePairKey, v))
}

// CirclePairKeyGTE applies the GTE predicate on the "circle_pair_key" field.
func CirclePairKeyGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldCirclePairKey, v))
}

// CirclePairKeyLT applies the LT predicate on the "circle_pair_key" field.
func CirclePairKeyLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldCirclePairKey, v))
}

// CirclePairKeyLTE applies the LTE predicate on the "circle_pair_key" field.
func CirclePairKeyLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldCirclePairKey, v))
}

// CirclePairKeyContains applies the Contains predicate on the "circle_pair_key" field.
func CirclePairKeyContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldCirclePairKey, v))
}

// CirclePairKeyHasPrefix applies the HasPrefix predicate on the "circle_pair_key" field.
func CirclePairKeyHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldCirclePairKey, v))
}

// CirclePairKeyHasSuffix applies the HasSuffix predicate on the "circle_pair_key" field.
func CirclePairKeyHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldCirclePairKey, v))
}

// CirclePairKeyEqualFold applies the EqualFold predicate on the "circle_pair_key" field.
func CirclePairKeyEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldCirclePairKey, v))
}

// CirclePairKeyContainsFold applies the ContainsFold predicate on the "circle_pair_key" field.
func CirclePairKeyContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldCirclePairKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldAttemptNumber, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldTranscript))
}

// JudgeDecisionIsNil applies the IsNil predicate on the "judge_decision" field.
func JudgeDecisionIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldJudgeDecision))
}

// JudgeDecisionNotNil applies the NotNil predicate on the "judge_decision" field.
func JudgeDecisionNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldJudgeDecision))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldFailureReason, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldContainsFold(FieldPodID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeliveryAttemptsEQ applies the EQ predicate on the "delivery_attempts" field.
func DeliveryAttemptsEQ(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsNEQ applies the NEQ predicate on the "delivery_attempts" field.
func DeliveryAttemptsNEQ(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsIn applies the In predicate on the "delivery_attempts" field.
func DeliveryAttemptsIn(vs ...int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldDeliveryAttempts, vs...))
}

// DeliveryAttemptsNotIn applies the NotIn predicate on the "delivery_attempts" field.
func DeliveryAttemptsNotIn(vs ...int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldDeliveryAttempts, vs...))
}

// DeliveryAttemptsGT applies the GT predicate on the "delivery_attempts" field.
func DeliveryAttemptsGT(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsGTE applies the GTE predicate on the "delivery_attempts" field.
func DeliveryAttemptsGTE(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsLT applies the LT predicate on the "delivery_attempts" field.
func DeliveryAttemptsLT(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldDeliveryAttempts, v))
}

// DeliveryAttemptsLTE applies the LTE predicate on the "delivery_attempts" field.
func DeliveryAttemptsLTE(v int) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldDeliveryAttempts, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldNextAttemptAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InterviewMission {
	return predicate.InterviewMission(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCollisionEvent applies the HasEdge predicate on the "collision_event" edge.
func HasCollisionEvent() predicate.InterviewMission {
	return predicate.InterviewMission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CollisionEventTable, CollisionEventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCollisionEventWith applies the HasEdge predicate on the "collision_event" edge with a given conditions (other predicates).
func HasCollisionEventWith(preds ...predicate.CollisionEvent) predicate.InterviewMission {
	return predicate.InterviewMission(func(s *sql.Selector) {
		step := newCollisionEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatch applies the HasEdge predicate on the "match" edge.
func HasMatch() predicate.InterviewMission {
	return predicate.InterviewMission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MatchTable, MatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchWith applies the HasEdge predicate on the "match" edge with a given conditions (other predicates).
func HasMatchWith(preds ...predicate.Match) predicate.InterviewMission {
	return predicate.InterviewMission(func(s *sql.Selector) {
		step := newMatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewMission) predicate.InterviewMission {
	return predicate.InterviewMission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewMission) predicate.InterviewMission {
	return predicate.InterviewMission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewMission) predicate.InterviewMission {
	return predicate.InterviewMission(sql.NotPredicates(p))
}
