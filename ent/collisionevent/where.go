// Code generated by ent, DO NOT EDIT.

package collisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/venn-social/vennd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldID, id))
}

// PairKey applies equality check predicate on the "pair_key" field. It's identical to PairKeyEQ.
func PairKey(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldPairKey, v))
}

// Circle1ID applies equality check predicate on the "circle1_id" field. It's identical to Circle1IDEQ.
func Circle1ID(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldCircle1ID, v))
}

// Circle2ID applies equality check predicate on the "circle2_id" field. It's identical to Circle2IDEQ.
func Circle2ID(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldCircle2ID, v))
}

// User1ID applies equality check predicate on the "user1_id" field. It's identical to User1IDEQ.
func User1ID(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldUser1ID, v))
}

// User2ID applies equality check predicate on the "user2_id" field. It's identical to User2IDEQ.
func User2ID(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldUser2ID, v))
}

// DistanceMeters applies equality check predicate on the "distance_meters" field. It's identical to DistanceMetersEQ.
func DistanceMeters(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldDistanceMeters, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldLastSeenAt, v))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldMissionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// PairKeyEQ applies the EQ predicate on the "pair_key" field.
func PairKeyEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldPairKey, v))
}

// PairKeyNEQ applies the NEQ predicate on the "pair_key" field.
func PairKeyNEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldPairKey, v))
}

// PairKeyIn applies the In predicate on the "pair_key" field.
func PairKeyIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldPairKey, vs...))
}

// PairKeyNotIn applies the NotIn predicate on the "pair_key" field.
func PairKeyNotIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldPairKey, vs...))
}

// PairKeyGT applies the GT predicate on the "pair_key" field.
func PairKeyGT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldPairKey, v))
}

// PairKeyGTE applies the GTE predicate on the "pair_key" field.
func PairKeyGTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldPairKey, v))
}

// PairKeyLT applies the LT predicate on the "pair_key" field.
func PairKeyLT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldPairKey, v))
}

// PairKeyLTE applies the LTE predicate on the "pair_key" field.
func PairKeyLTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldPairKey, v))
}

// PairKeyContains applies the Contains predicate on the "pair_key" field.
func PairKeyContains(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContains(FieldPairKey, v))
}

// PairKeyHasPrefix applies the HasPrefix predicate on the "pair_key" field.
func PairKeyHasPrefix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasPrefix(FieldPairKey, v))
}

// PairKeyHasSuffix applies the HasSuffix predicate on the "pair_key" field.
func PairKeyHasSuffix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasSuffix(FieldPairKey, v))
}

// PairKeyEqualFold applies the EqualFold predicate on the "pair_key" field.
func PairKeyEqualFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldPairKey, v))
}

// PairKeyContainsFold applies the ContainsFold predicate on the "pair_key" field.
func PairKeyContainsFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldPairKey, v))
}

// Circle1IDEQ applies the EQ predicate on the "circle1_id" field.
func Circle1IDEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldCircle1ID, v))
}

// Circle1IDNEQ applies the NEQ predicate on the "circle1_id" field.
func Circle1IDNEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldCircle1ID, v))
}

// Circle1IDIn applies the In predicate on the "circle1_id" field.
func Circle1IDIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldCircle1ID, vs...))
}

// Circle1IDNotIn applies the NotIn predicate on the "circle1_id" field.
func Circle1IDNotIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldCircle1ID, vs...))
}

// Circle1IDGT applies the GT predicate on the "circle1_id" field.
func Circle1IDGT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldCircle1ID, v))
}

// Circle1IDGTE applies the GTE predicate on the "circle1_id" field.
func Circle1IDGTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldCircle1ID, v))
}

// Circle1IDLT applies the LT predicate on the "circle1_id" field.
func Circle1IDLT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldCircle1ID, v))
}

// Circle1IDLTE applies the LTE predicate on the "circle1_id" field.
func Circle1IDLTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldCircle1ID, v))
}

// Circle1IDContains applies the Contains predicate on the "circle1_id" field.
func Circle1IDContains(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContains(FieldCircle1ID, v))
}

// Circle1IDHasPrefix applies the HasPrefix predicate on the "circle1_id" field.
func Circle1IDHasPrefix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasPrefix(FieldCircle1ID, v))
}

// Circle1IDHasSuffix applies the HasSuffix predicate on the "circle1_id" field.
func Circle1IDHasSuffix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasSuffix(FieldCircle1ID, v))
}

// Circle1IDEqualFold applies the EqualFold predicate on the "circle1_id" field.
func Circle1IDEqualFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldCircle1ID, v))
}

// Circle1IDContainsFold applies the ContainsFold predicate on the "circle1_id" field.
func Circle1IDContainsFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldCircle1ID, v))
}

// Circle2IDEQ applies the EQ predicate on the "circle2_id" field.
func Circle2IDEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldCircle2ID, v))
}

// Circle2IDNEQ applies the NEQ predicate on the "circle2_id" field.
func Circle2IDNEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldCircle2ID, v))
}

// Circle2IDIn applies the In predicate on the "circle2_id" field.
func Circle2IDIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldCircle2ID, vs...))
}

// Circle2IDNotIn applies the NotIn predicate on the "circle2_id" field.
func Circle2IDNotIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldCircle2ID, vs...))
}

// Circle2IDGT applies the GT predicate on the "circle2_id" field.
func Circle2IDGT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldCircle2ID, v))
}

// Circle2IDGTE applies the GTE predicate on the "circle2_id" field.
func Circle2IDGTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldCircle2ID, v))
}

// Circle2IDLT applies the LT predicate on the "circle2_id" field.
func Circle2IDLT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldCircle2ID, v))
}

// Circle2IDLTE applies the LTE predicate on the "circle2_id" field.
func Circle2IDLTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldCircle2ID, v))
}

// Circle2IDContains applies the Contains predicate on the "circle2_id" field.
func Circle2IDContains(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContains(FieldCircle2ID, v))
}

// Circle2IDHasPrefix applies the HasPrefix predicate on the "circle2_id" field.
func Circle2IDHasPrefix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasPrefix(FieldCircle2ID, v))
}

// Circle2IDHasSuffix applies the HasSuffix predicate on the "circle2_id" field.
func Circle2IDHasSuffix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasSuffix(FieldCircle2ID, v))
}

// Circle2IDEqualFold applies the EqualFold predicate on the "circle2_id" field.
func Circle2IDEqualFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldCircle2ID, v))
}

// Circle2IDContainsFold applies the ContainsFold predicate on the "circle2_id" field.
func Circle2IDContainsFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldCircle2ID, v))
}

// User1IDEQ applies the EQ predicate on the "user1_id" field.
func User1IDEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldUser1ID, v))
}

// User1IDNEQ applies the NEQ predicate on the "user1_id" field.
func User1IDNEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldUser1ID, v))
}

// User1IDIn applies the In predicate on the "user1_id" field.
func User1IDIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldUser1ID, vs...))
}

// User1IDNotIn applies the NotIn predicate on the "user1_id" field.
func User1IDNotIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldUser1ID, vs...))
}

// User1IDGT applies the GT predicate on the "user1_id" field.
func User1IDGT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldUser1ID, v))
}

// User1IDGTE applies the GTE predicate on the "user1_id" field.
func User1IDGTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldUser1ID, v))
}

// User1IDLT applies the LT predicate on the "user1_id" field.
func User1IDLT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldUser1ID, v))
}

// User1IDLTE applies the LTE predicate on the "user1_id" field.
func User1IDLTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldUser1ID, v))
}

// User1IDContains applies the Contains predicate on the "user1_id" field.
func User1IDContains(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContains(FieldUser1ID, v))
}

// User1IDHasPrefix applies the HasPrefix predicate on the "user1_id" field.
func User1IDHasPrefix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasPrefix(FieldUser1ID, v))
}

// User1IDHasSuffix applies the HasSuffix predicate on the "user1_id" field.
func User1IDHasSuffix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasSuffix(FieldUser1ID, v))
}

// User1IDEqualFold applies the EqualFold predicate on the "user1_id" field.
func User1IDEqualFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldUser1ID, v))
}

// User1IDContainsFold applies the ContainsFold predicate on the "user1_id" field.
func User1IDContainsFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldUser1ID, v))
}

// User2IDEQ applies the EQ predicate on the "user2_id" field.
func User2IDEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldUser2ID, v))
}

// User2IDNEQ applies the NEQ predicate on the "user2_id" field.
func User2IDNEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldUser2ID, v))
}

// User2IDIn applies the In predicate on the "user2_id" field.
func User2IDIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldUser2ID, vs...))
}

// User2IDNotIn applies the NotIn predicate on the "user2_id" field.
func User2IDNotIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldUser2ID, vs...))
}

// User2IDGT applies the GT predicate on the "user2_id" field.
func User2IDGT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldUser2ID, v))
}

// User2IDGTE applies the GTE predicate on the "user2_id" field.
func User2IDGTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldUser2ID, v))
}

// User2IDLT applies the LT predicate on the "user2_id" field.
func User2IDLT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldUser2ID, v))
}

// User2IDLTE applies the LTE predicate on the "user2_id" field.
func User2IDLTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldUser2ID, v))
}

// User2IDContains applies the Contains predicate on the "user2_id" field.
func User2IDContains(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContains(FieldUser2ID, v))
}

// User2IDHasPrefix applies the HasPrefix predicate on the "user2_id" field.
func User2IDHasPrefix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasPrefix(FieldUser2ID, v))
}

// User2IDHasSuffix applies the HasSuffix predicate on the "user2_id" field.
func User2IDHasSuffix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasSuffix(FieldUser2ID, v))
}

// User2IDEqualFold applies the EqualFold predicate on the "user2_id" field.
func User2IDEqualFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldUser2ID, v))
}

// User2IDContainsFold applies the ContainsFold predicate on the "user2_id" field.
func User2IDContainsFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldUser2ID, v))
}

// DistanceMetersEQ applies the EQ predicate on the "distance_meters" field.
func DistanceMetersEQ(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldDistanceMeters, v))
}

// DistanceMetersNEQ applies the NEQ predicate on the "distance_meters" field.
func DistanceMetersNEQ(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldDistanceMeters, v))
}

// DistanceMetersIn applies the In predicate on the "distance_meters" field.
func DistanceMetersIn(vs ...float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldDistanceMeters, vs...))
}

// DistanceMetersNotIn applies the NotIn predicate on the "distance_meters" field.
func DistanceMetersNotIn(vs ...float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldDistanceMeters, vs...))
}

// DistanceMetersGT applies the GT predicate on the "distance_meters" field.
func DistanceMetersGT(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldDistanceMeters, v))
}

// DistanceMetersGTE applies the GTE predicate on the "distance_meters" field.
func DistanceMetersGTE(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldDistanceMeters, v))
}

// DistanceMetersLT applies the LT predicate on the "distance_meters" field.
func DistanceMetersLT(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldDistanceMeters, v))
}

// DistanceMetersLTE applies the LTE predicate on the "distance_meters" field.
func DistanceMetersLTE(v float64) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldDistanceMeters, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldLastSeenAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDIsNil applies the IsNil predicate on the "mission_id" field.
func MissionIDIsNil() predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIsNull(FieldMissionID))
}

// MissionIDNotNil applies the NotNil predicate on the "mission_id" field.
func MissionIDNotNil() predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotNull(FieldMissionID))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldContainsFold(FieldMissionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMissions applies the HasEdge predicate on the "missions" edge.
func HasMissions() predicate.CollisionEvent {
	return predicate.CollisionEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MissionsTable, MissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionsWith applies the HasEdge predicate on the "missions" edge with a given conditions (other predicates).
func HasMissionsWith(preds ...predicate.InterviewMission) predicate.CollisionEvent {
	return predicate.CollisionEvent(func(s *sql.Selector) {
		step := newMissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollisionEvent) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollisionEvent) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollisionEvent) predicate.CollisionEvent {
	return predicate.CollisionEvent(sql.NotPredicates(p))
}
