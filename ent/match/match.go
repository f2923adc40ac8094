// Code generated by ent, DO NOT EDIT.

package match

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the match type in the database.
	Label = "match"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "match_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldPrimaryUserID holds the string denoting the primary_user_id field in the database.
	FieldPrimaryUserID = "primary_user_id"
	// FieldSecondaryUserID holds the string denoting the secondary_user_id field in the database.
	FieldSecondaryUserID = "secondary_user_id"
	// FieldPrimaryCircleID holds the string denoting the primary_circle_id field in the database.
	FieldPrimaryCircleID = "primary_circle_id"
	// FieldSecondaryCircleID holds the string denoting the secondary_circle_id field in the database.
	FieldSecondaryCircleID = "secondary_circle_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldWorthItScore holds the string denoting the worth_it_score field in the database.
	FieldWorthItScore = "worth_it_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExplanationSummary holds the string denoting the explanation_summary field in the database.
	FieldExplanationSummary = "explanation_summary"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMission holds the string denoting the mission edge name in mutations.
	EdgeMission = "mission"
	// InterviewMissionFieldID holds the string denoting the ID field of the InterviewMission.
	InterviewMissionFieldID = "mission_id"
	// Table holds the table name of the match in the database.
	Table = "matches"
	// MissionTable is the table that holds the mission relation/edge.
	MissionTable = "matches"
	// MissionInverseTable is the table name for the InterviewMission entity.
	// It exists in this package in order to avoid circular dependency with the "interviewmission" package.
	MissionInverseTable = "interview_missions"
	// MissionColumn is the table column denoting the mission relation/edge.
	MissionColumn = "mission_id"
)

// Columns holds all SQL columns for match fields.
var Columns = []string{
	FieldID,
	FieldMissionID,
	FieldPrimaryUserID,
	FieldSecondaryUserID,
	FieldPrimaryCircleID,
	FieldSecondaryCircleID,
	FieldType,
	FieldWorthItScore,
	FieldStatus,
	FieldExplanationSummary,
	FieldRespondedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypeMatch is the default value of the Type enum.
const DefaultType = TypeMatch

// Type values.
const (
	TypeMatch     Type = "match"
	TypeSoftMatch Type = "soft_match"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeMatch, TypeSoftMatch:
		return nil
	default:
		return fmt.Errorf("match: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingAccept is the default value of the Status enum.
const DefaultStatus = StatusPendingAccept

// Status values.
const (
	StatusPendingAccept Status = "pending_accept"
	StatusActive        Status = "active"
	StatusDeclined      Status = "declined"
	StatusExpired       Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingAccept, StatusActive, StatusDeclined, StatusExpired:
		return nil
	default:
		return fmt.Errorf("match: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Match queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByPrimaryUserID orders the results by the primary_user_id field.
func ByPrimaryUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryUserID, opts...).ToFunc()
}

// BySecondaryUserID orders the results by the secondary_user_id field.
func BySecondaryUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryUserID, opts...).ToFunc()
}

// ByPrimaryCircleID orders the results by the primary_circle_id field.
func ByPrimaryCircleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryCircleID, opts...).ToFunc()
}

// BySecondaryCircleID orders the results by the secondary_circle_id field.
func BySecondaryCircleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryCircleID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByWorthItScore orders the results by the worth_it_score field.
func ByWorthItScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorthItScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExplanationSummary orders the results by the explanation_summary field.
func ByExplanationSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanationSummary, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMissionField orders the results by mission field.
func ByMissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMissionStep(), sql.OrderByField(field, opts...))
	}
}
func newMissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MissionInverseTable, InterviewMissionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MissionTable, MissionColumn),
	)
}
