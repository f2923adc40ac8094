// Code generated by ent, DO NOT EDIT.

package collisionevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the collisionevent type in the database.
	Label = "collision_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "collision_id"
	// FieldPairKey holds the string denoting the pair_key field in the database.
	FieldPairKey = "pair_key"
	// FieldCircle1ID holds the string denoting the circle1_id field in the database.
	FieldCircle1ID = "circle1_id"
	// FieldCircle2ID holds the string denoting the circle2_id field in the database.
	FieldCircle2ID = "circle2_id"
	// FieldUser1ID holds the string denoting the user1_id field in the database.
	FieldUser1ID = "user1_id"
	// FieldUser2ID holds the string denoting the user2_id field in the database.
	FieldUser2ID = "user2_id"
	// FieldDistanceMeters holds the string denoting the distance_meters field in the database.
	FieldDistanceMeters = "distance_meters"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMissions holds the string denoting the missions edge name in mutations.
	EdgeMissions = "missions"
	// InterviewMissionFieldID holds the string denoting the ID field of the InterviewMission.
	InterviewMissionFieldID = "mission_id"
	// Table holds the table name of the collisionevent in the database.
	Table = "collision_events"
	// MissionsTable is the table that holds the missions relation/edge.
	MissionsTable = "interview_missions"
	// MissionsInverseTable is the table name for the InterviewMission entity.
	// It exists in this package in order to avoid circular dependency with the "interviewmission" package.
	MissionsInverseTable = "interview_missions"
	// MissionsColumn is the table column denoting the missions relation/edge.
	MissionsColumn = "collision_event_id"
)

// Columns holds all SQL columns for collisionevent fields.
var Columns = []string{
	FieldID,
	FieldPairKey,
	FieldCircle1ID,
	FieldCircle2ID,
	FieldUser1ID,
	FieldUser2ID,
	FieldDistanceMeters,
	FieldFirstSeenAt,
	FieldLastSeenAt,
	FieldStatus,
	FieldMissionID,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusDetecting is the default value of the Status enum.
const DefaultStatus = StatusDetecting

// Status values.
const (
	StatusDetecting      Status = "detecting"
	StatusStable         Status = "stable"
	StatusMissionCreated Status = "mission_created"
	StatusMatched        Status = "matched"
	StatusExpired        Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDetecting, StatusStable, StatusMissionCreated, StatusMatched, StatusExpired:
		return nil
	default:
		return fmt.Errorf("collisionevent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CollisionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPairKey orders the results by the pair_key field.
func ByPairKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPairKey, opts...).ToFunc()
}

// ByCircle1ID orders the results by the circle1_id field.
func ByCircle1ID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCircle1ID, opts...).ToFunc()
}

// ByCircle2ID orders the results by the circle2_id field.
func ByCircle2ID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCircle2ID, opts...).ToFunc()
}

// ByUser1ID orders the results by the user1_id field.
func ByUser1ID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUser1ID, opts...).ToFunc()
}

// ByUser2ID orders the results by the user2_id field.
func ByUser2ID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUser2ID, opts...).ToFunc()
}

// ByDistanceMeters orders the results by the distance_meters field.
func ByDistanceMeters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistanceMeters, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMissionsCount orders the results by missions count.
func ByMissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMissionsStep(), opts...)
	}
}

// ByMissions orders the results by missions terms.
func ByMissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MissionsInverseTable, InterviewMissionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MissionsTable, MissionsColumn),
	)
}
