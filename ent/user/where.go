// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/venn-social/vennd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// LastLat applies equality check predicate on the "last_lat" field. It's identical to LastLatEQ.
func LastLat(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLat, v))
}

// LastLon applies equality check predicate on the "last_lon" field. It's identical to LastLonEQ.
func LastLon(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLon, v))
}

// PositionUpdatedAt applies equality check predicate on the "position_updated_at" field. It's identical to PositionUpdatedAtEQ.
func PositionUpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPositionUpdatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDisplayName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// ProfileIsNil applies the IsNil predicate on the "profile" field.
func ProfileIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldProfile))
}

// ProfileNotNil applies the NotNil predicate on the "profile" field.
func ProfileNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldProfile))
}

// LastLatEQ applies the EQ predicate on the "last_lat" field.
func LastLatEQ(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLat, v))
}

// LastLatNEQ applies the NEQ predicate on the "last_lat" field.
func LastLatNEQ(v float64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLat, v))
}

// LastLatIn applies the In predicate on the "last_lat" field.
func LastLatIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLat, vs...))
}

// LastLatNotIn applies the NotIn predicate on the "last_lat" field.
func LastLatNotIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLat, vs...))
}

// LastLatGT applies the GT predicate on the "last_lat" field.
func LastLatGT(v float64) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLat, v))
}

// LastLatGTE applies the GTE predicate on the "last_lat" field.
func LastLatGTE(v float64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLat, v))
}

// LastLatLT applies the LT predicate on the "last_lat" field.
func LastLatLT(v float64) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLat, v))
}

// LastLatLTE applies the LTE predicate on the "last_lat" field.
func LastLatLTE(v float64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLat, v))
}

// LastLatIsNil applies the IsNil predicate on the "last_lat" field.
func LastLatIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLat))
}

// LastLatNotNil applies the NotNil predicate on the "last_lat" field.
func LastLatNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLat))
}

// LastLonEQ applies the EQ predicate on the "last_lon" field.
func LastLonEQ(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLon, v))
}

// LastLonNEQ applies the NEQ predicate on the "last_lon" field.
func LastLonNEQ(v float64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLon, v))
}

// LastLonIn applies the In predicate on the "last_lon" field.
func LastLonIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLon, vs...))
}

// LastLonNotIn applies the NotIn predicate on the "last_lon" field.
func LastLonNotIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLon, vs...))
}

// LastLonGT applies the GT predicate on the "last_lon" field.
func LastLonGT(v float64) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLon, v))
}

// LastLonGTE applies the GTE predicate on the "last_lon" field.
func LastLonGTE(v float64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLon, v))
}

// LastLonLT applies the LT predicate on the "last_lon" field.
func LastLonLT(v float64) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLon, v))
}

// LastLonLTE applies the LTE predicate on the "last_lon" field.
func LastLonLTE(v float64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLon, v))
}

// LastLonIsNil applies the IsNil predicate on the "last_lon" field.
func LastLonIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLon))
}

// LastLonNotNil applies the NotNil predicate on the "last_lon" field.
func LastLonNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLon))
}

// PositionUpdatedAtEQ applies the EQ predicate on the "position_updated_at" field.
func PositionUpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPositionUpdatedAt, v))
}

// PositionUpdatedAtNEQ applies the NEQ predicate on the "position_updated_at" field.
func PositionUpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPositionUpdatedAt, v))
}

// PositionUpdatedAtIn applies the In predicate on the "position_updated_at" field.
func PositionUpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldPositionUpdatedAt, vs...))
}

// PositionUpdatedAtNotIn applies the NotIn predicate on the "position_updated_at" field.
func PositionUpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPositionUpdatedAt, vs...))
}

// PositionUpdatedAtGT applies the GT predicate on the "position_updated_at" field.
func PositionUpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldPositionUpdatedAt, v))
}

// PositionUpdatedAtGTE applies the GTE predicate on the "position_updated_at" field.
func PositionUpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPositionUpdatedAt, v))
}

// PositionUpdatedAtLT applies the LT predicate on the "position_updated_at" field.
func PositionUpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldPositionUpdatedAt, v))
}

// PositionUpdatedAtLTE applies the LTE predicate on the "position_updated_at" field.
func PositionUpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPositionUpdatedAt, v))
}

// PositionUpdatedAtIsNil applies the IsNil predicate on the "position_updated_at" field.
func PositionUpdatedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPositionUpdatedAt))
}

// PositionUpdatedAtNotNil applies the NotNil predicate on the "position_updated_at" field.
func PositionUpdatedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPositionUpdatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCircles applies the HasEdge predicate on the "circles" edge.
func HasCircles() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CirclesTable, CirclesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCirclesWith applies the HasEdge predicate on the "circles" edge with a given conditions (other predicates).
func HasCirclesWith(preds ...predicate.Circle) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newCirclesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
