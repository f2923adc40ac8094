// Code generated by ent, DO NOT EDIT.

package match

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/venn-social/vennd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldID, id))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldMissionID, v))
}

// PrimaryUserID applies equality check predicate on the "primary_user_id" field. It's identical to PrimaryUserIDEQ.
func PrimaryUserID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldPrimaryUserID, v))
}

// SecondaryUserID applies equality check predicate on the "secondary_user_id" field. It's identical to SecondaryUserIDEQ.
func SecondaryUserID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSecondaryUserID, v))
}

// PrimaryCircleID applies equality check predicate on the "primary_circle_id" field. It's identical to PrimaryCircleIDEQ.
func PrimaryCircleID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldPrimaryCircleID, v))
}

// SecondaryCircleID applies equality check predicate on the "secondary_circle_id" field. It's identical to SecondaryCircleIDEQ.
func SecondaryCircleID(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSecondaryCircleID, v))
}

// WorthItScore applies equality check predicate on the "worth_it_score" field. It's identical to WorthItScoreEQ.
func WorthItScore(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldWorthItScore, v))
}

// ExplanationSummary applies equality check predicate on the "explanation_summary" field. It's identical to ExplanationSummaryEQ.
func ExplanationSummary(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldExplanationSummary, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldRespondedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldUpdatedAt, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldMissionID, v))
}

// PrimaryUserIDEQ applies the EQ predicate on the "primary_user_id" field.
func PrimaryUserIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldPrimaryUserID, v))
}

// PrimaryUserIDNEQ applies the NEQ predicate on the "primary_user_id" field.
func PrimaryUserIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldPrimaryUserID, v))
}

// PrimaryUserIDIn applies the In predicate on the "primary_user_id" field.
func PrimaryUserIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldPrimaryUserID, vs...))
}

// PrimaryUserIDNotIn applies the NotIn predicate on the "primary_user_id" field.
func PrimaryUserIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldPrimaryUserID, vs...))
}

// PrimaryUserIDGT applies the GT predicate on the "primary_user_id" field.
func PrimaryUserIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldPrimaryUserID, v))
}

// PrimaryUserIDGTE applies the GTE predicate on the "primary_user_id" field.
func PrimaryUserIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldPrimaryUserID, v))
}

// PrimaryUserIDLT applies the LT predicate on the "primary_user_id" field.
func PrimaryUserIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldPrimaryUserID, v))
}

// PrimaryUserIDLTE applies the LTE predicate on the "primary_user_id" field.
func PrimaryUserIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldPrimaryUserID, v))
}

// PrimaryUserIDContains applies the Contains predicate on the "primary_user_id" field.
func PrimaryUserIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldPrimaryUserID, v))
}

// PrimaryUserIDHasPrefix applies the HasPrefix predicate on the "primary_user_id" field.
func PrimaryUserIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldPrimaryUserID, v))
}

// PrimaryUserIDHasSuffix applies the HasSuffix predicate on the "primary_user_id" field.
func PrimaryUserIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldPrimaryUserID, v))
}

// PrimaryUserIDEqualFold applies the EqualFold predicate on the "primary_user_id" field.
func PrimaryUserIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldPrimaryUserID, v))
}

// PrimaryUserIDContainsFold applies the ContainsFold predicate on the "primary_user_id" field.
func PrimaryUserIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldPrimaryUserID, v))
}

// SecondaryUserIDEQ applies the EQ predicate on the "secondary_user_id" field.
func SecondaryUserIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSecondaryUserID, v))
}

// SecondaryUserIDNEQ applies the NEQ predicate on the "secondary_user_id" field.
func SecondaryUserIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldSecondaryUserID, v))
}

// SecondaryUserIDIn applies the In predicate on the "secondary_user_id" field.
func SecondaryUserIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldSecondaryUserID, vs...))
}

// SecondaryUserIDNotIn applies the NotIn predicate on the "secondary_user_id" field.
func SecondaryUserIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldSecondaryUserID, vs...))
}

// SecondaryUserIDGT applies the GT predicate on the "secondary_user_id" field.
func SecondaryUserIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldSecondaryUserID, v))
}

// SecondaryUserIDGTE applies the GTE predicate on the "secondary_user_id" field.
func SecondaryUserIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldSecondaryUserID, v))
}

// SecondaryUserIDLT applies the LT predicate on the "secondary_user_id" field.
func SecondaryUserIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldSecondaryUserID, v))
}

// SecondaryUserIDLTE applies the LTE predicate on the "secondary_user_id" field.
func SecondaryUserIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldSecondaryUserID, v))
}

// SecondaryUserIDContains applies the Contains predicate on the "secondary_user_id" field.
func SecondaryUserIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldSecondaryUserID, v))
}

// SecondaryUserIDHasPrefix applies the HasPrefix predicate on the "secondary_user_id" field.
func SecondaryUserIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldSecondaryUserID, v))
}

// SecondaryUserIDHasSuffix applies the HasSuffix predicate on the "secondary_user_id" field.
func SecondaryUserIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldSecondaryUserID, v))
}

// SecondaryUserIDEqualFold applies the EqualFold predicate on the "secondary_user_id" field.
func SecondaryUserIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldSecondaryUserID, v))
}

// SecondaryUserIDContainsFold applies the ContainsFold predicate on the "secondary_user_id" field.
func SecondaryUserIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldSecondaryUserID, v))
}

// PrimaryCircleIDEQ applies the EQ predicate on the "primary_circle_id" field.
func PrimaryCircleIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDNEQ applies the NEQ predicate on the "primary_circle_id" field.
func PrimaryCircleIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDIn applies the In predicate on the "primary_circle_id" field.
func PrimaryCircleIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldPrimaryCircleID, vs...))
}

// PrimaryCircleIDNotIn applies the NotIn predicate on the "primary_circle_id" field.
func PrimaryCircleIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldPrimaryCircleID, vs...))
}

// PrimaryCircleIDGT applies the GT predicate on the "primary_circle_id" field.
func PrimaryCircleIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDGTE applies the GTE predicate on the "primary_circle_id" field.
func PrimaryCircleIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDLT applies the LT predicate on the "primary_circle_id" field.
func PrimaryCircleIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDLTE applies the LTE predicate on the "primary_circle_id" field.
func PrimaryCircleIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDContains applies the Contains predicate on the "primary_circle_id" field.
func PrimaryCircleIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDHasPrefix applies the HasPrefix predicate on the "primary_circle_id" field.
func PrimaryCircleIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDHasSuffix applies the HasSuffix predicate on the "primary_circle_id" field.
func PrimaryCircleIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDEqualFold applies the EqualFold predicate on the "primary_circle_id" field.
func PrimaryCircleIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldPrimaryCircleID, v))
}

// PrimaryCircleIDContainsFold applies the ContainsFold predicate on the "primary_circle_id" field.
func PrimaryCircleIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldPrimaryCircleID, v))
}

// SecondaryCircleIDEQ applies the EQ predicate on the "secondary_circle_id" field.
func SecondaryCircleIDEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDNEQ applies the NEQ predicate on the "secondary_circle_id" field.
func SecondaryCircleIDNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDIn applies the In predicate on the "secondary_circle_id" field.
func SecondaryCircleIDIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldSecondaryCircleID, vs...))
}

// SecondaryCircleIDNotIn applies the NotIn predicate on the "secondary_circle_id" field.
func SecondaryCircleIDNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldSecondaryCircleID, vs...))
}

// SecondaryCircleIDGT applies the GT predicate on the "secondary_circle_id" field.
func SecondaryCircleIDGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDGTE applies the GTE predicate on the "secondary_circle_id" field.
func SecondaryCircleIDGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDLT applies the LT predicate on the "secondary_circle_id" field.
func SecondaryCircleIDLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDLTE applies the LTE predicate on the "secondary_circle_id" field.
func SecondaryCircleIDLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDContains applies the Contains predicate on the "secondary_circle_id" field.
func SecondaryCircleIDContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDHasPrefix applies the HasPrefix predicate on the "secondary_circle_id" field.
func SecondaryCircleIDHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDHasSuffix applies the HasSuffix predicate on the "secondary_circle_id" field.
func SecondaryCircleIDHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDEqualFold applies the EqualFold predicate on the "secondary_circle_id" field.
func SecondaryCircleIDEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldSecondaryCircleID, v))
}

// SecondaryCircleIDContainsFold applies the ContainsFold predicate on the "secondary_circle_id" field.
func SecondaryCircleIDContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldSecondaryCircleID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldType, vs...))
}

// WorthItScoreEQ applies the EQ predicate on the "worth_it_score" field.
func WorthItScoreEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldWorthItScore, v))
}

// WorthItScoreNEQ applies the NEQ predicate on the "worth_it_score" field.
func WorthItScoreNEQ(v float64) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldWorthItScore, v))
}

// WorthItScoreIn applies the In predicate on the "worth_it_score" field.
func WorthItScoreIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldWorthItScore, vs...))
}

// WorthItScoreNotIn applies the NotIn predicate on the "worth_it_score" field.
func WorthItScoreNotIn(vs ...float64) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldWorthItScore, vs...))
}

// WorthItScoreGT applies the GT predicate on the "worth_it_score" field.
func WorthItScoreGT(v float64) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldWorthItScore, v))
}

// WorthItScoreGTE applies the GTE predicate on the "worth_it_score" field.
func WorthItScoreGTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldWorthItScore, v))
}

// WorthItScoreLT applies the LT predicate on the "worth_it_score" field.
func WorthItScoreLT(v float64) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldWorthItScore, v))
}

// WorthItScoreLTE applies the LTE predicate on the "worth_it_score" field.
func WorthItScoreLTE(v float64) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldWorthItScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldStatus, vs...))
}

// ExplanationSummaryEQ applies the EQ predicate on the "explanation_summary" field.
func ExplanationSummaryEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldExplanationSummary, v))
}

// ExplanationSummaryNEQ applies the NEQ predicate on the "explanation_summary" field.
func ExplanationSummaryNEQ(v string) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldExplanationSummary, v))
}

// ExplanationSummaryIn applies the In predicate on the "explanation_summary" field.
func ExplanationSummaryIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldExplanationSummary, vs...))
}

// ExplanationSummaryNotIn applies the NotIn predicate on the "explanation_summary" field.
func ExplanationSummaryNotIn(vs ...string) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldExplanationSummary, vs...))
}

// ExplanationSummaryGT applies the GT predicate on the "explanation_summary" field.
func ExplanationSummaryGT(v string) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldExplanationSummary, v))
}

// ExplanationSummaryGTE applies the GTE predicate on the "explanation_summary" field.
func ExplanationSummaryGTE(v string) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldExplanationSummary, v))
}

// ExplanationSummaryLT applies the LT predicate on the "explanation_summary" field.
func ExplanationSummaryLT(v string) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldExplanationSummary, v))
}

// ExplanationSummaryLTE applies the LTE predicate on the "explanation_summary" field.
func ExplanationSummaryLTE(v string) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldExplanationSummary, v))
}

// ExplanationSummaryContains applies the Contains predicate on the "explanation_summary" field.
func ExplanationSummaryContains(v string) predicate.Match {
	return predicate.Match(sql.FieldContains(FieldExplanationSummary, v))
}

// ExplanationSummaryHasPrefix applies the HasPrefix predicate on the "explanation_summary" field.
func ExplanationSummaryHasPrefix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasPrefix(FieldExplanationSummary, v))
}

// ExplanationSummaryHasSuffix applies the HasSuffix predicate on the "explanation_summary" field.
func ExplanationSummaryHasSuffix(v string) predicate.Match {
	return predicate.Match(sql.FieldHasSuffix(FieldExplanationSummary, v))
}

// ExplanationSummaryIsNil applies the IsNil predicate on the "explanation_summary" field.
func ExplanationSummaryIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldExplanationSummary))
}

// ExplanationSummaryNotNil applies the NotNil predicate on the "explanation_summary" field.
func ExplanationSummaryNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldExplanationSummary))
}

// ExplanationSummaryEqualFold applies the EqualFold predicate on the "explanation_summary" field.
func ExplanationSummaryEqualFold(v string) predicate.Match {
	return predicate.Match(sql.FieldEqualFold(FieldExplanationSummary, v))
}

// ExplanationSummaryContainsFold applies the ContainsFold predicate on the "explanation_summary" field.
func ExplanationSummaryContainsFold(v string) predicate.Match {
	return predicate.Match(sql.FieldContainsFold(FieldExplanationSummary, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.Match {
	return predicate.Match(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.Match {
	return predicate.Match(sql.FieldNotNull(FieldRespondedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Match {
	return predicate.Match(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Match {
	return predicate.Match(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.InterviewMission) predicate.Match {
	return predicate.Match(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Match) predicate.Match {
	return predicate.Match(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Match) predicate.Match {
	return predicate.Match(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Match) predicate.Match {
	return predicate.Match(sql.NotPredicates(p))
}
