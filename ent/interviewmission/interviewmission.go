// Code generated by ent, DO NOT EDIT.

package interviewmission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the interviewmission type in the database.
	Label = "interview_mission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "mission_id"
	// FieldCollisionEventID holds the string denoting the collision_event_id field in the database.
	FieldCollisionEventID = "collision_event_id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldVisitorUserID holds the string denoting the visitor_user_id field in the database.
	FieldVisitorUserID = "visitor_user_id"
	// FieldOwnerCircleID holds the string denoting the owner_circle_id field in the database.
	FieldOwnerCircleID = "owner_circle_id"
	// FieldVisitorCircleID holds the string denoting the visitor_circle_id field in the database.
	FieldVisitorCircleID = "visitor_circle_id"
	// FieldCirclePairKey holds the string denoting the circle_pair_key field in the database.
	FieldCirclePairKey = "circle_pair_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldJudgeDecision holds the string denoting the judge_decision field in the database.
	FieldJudgeDecision = "judge_decision"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldDeliveryAttempts holds the string denoting the delivery_attempts field in the database.
	FieldDeliveryAttempts = "delivery_attempts"
	// FieldNextAttemptAt holds the string denoting the next_attempt_at field in the database.
	FieldNextAttemptAt = "next_attempt_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCollisionEvent holds the string denoting the collision_event edge name in mutations.
	EdgeCollisionEvent = "collision_event"
	// EdgeMatch holds the string denoting the match edge name in mutations.
	EdgeMatch = "match"
	// CollisionEventFieldID holds the string denoting the ID field of the CollisionEvent.
	CollisionEventFieldID = "collision_id"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// Table holds the table name of the interviewmission in the database.
	Table = "interview_missions"
	// CollisionEventTable is the table that holds the collision_event relation/edge.
	CollisionEventTable = "interview_missions"
	// CollisionEventInverseTable is the table name for the CollisionEvent entity.
	// It exists in this package in order to avoid circular dependency with the "collisionevent" package.
	CollisionEventInverseTable = "collision_events"
	// CollisionEventColumn is the table column denoting the collision_event relation/edge.
	CollisionEventColumn = "collision_event_id"
	// MatchTable is the table that holds the match relation/edge.
	MatchTable = "matches"
	// MatchInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchInverseTable = "matches"
	// MatchColumn is the table column denoting the match relation/edge.
	MatchColumn = "mission_id"
)

// Columns holds all SQL columns for interviewmission fields.
var Columns = []string{
	FieldID,
	FieldCollisionEventID,
	FieldOwnerUserID,
	FieldVisitorUserID,
	FieldOwnerCircleID,
	FieldVisitorCircleID,
	FieldCirclePairKey,
	FieldStatus,
	FieldAttemptNumber,
	FieldPayload,
	FieldTranscript,
	FieldJudgeDecision,
	FieldFailureReason,
	FieldPodID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastHeartbeatAt,
	FieldDeliveryAttempts,
	FieldNextAttemptAt,
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
	// DefaultAttemptNumber holds the default value on creation for the "attempt_number" field.
	DefaultAttemptNumber int
	// DefaultDeliveryAttempts holds the default value on creation for the "delivery_attempts" field.
	DefaultDeliveryAttempts int
	// DefaultNextAttemptAt holds the default value on creation for the "next_attempt_at" field.
	DefaultNextAttemptAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("interviewmission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the InterviewMission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCollisionEventID orders the results by the collision_event_id field.
func ByCollisionEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollisionEventID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByVisitorUserID orders the results by the visitor_user_id field.
func ByVisitorUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorUserID, opts...).ToFunc()
}

// ByOwnerCircleID orders the results by the owner_circle_id field.
func ByOwnerCircleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerCircleID, opts...).ToFunc()
}

// ByVisitorCircleID orders the results by the visitor_circle_id field.
func ByVisitorCircleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorCircleID, opts...).ToFunc()
}

// ByCirclePairKey orders the results by the circle_pair_key field.
func ByCirclePairKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCirclePairKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByDeliveryAttempts orders the results by the delivery_attempts field.
func ByDeliveryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryAttempts, opts...).ToFunc()
}

// ByNextAttemptAt orders the results by the next_attempt_at field.
func ByNextAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAttemptAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCollisionEventField orders the results by collision_event field.
func ByCollisionEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCollisionEventStep(), sql.OrderByField(field, opts...))
	}
}

// ByMatchField orders the results by match field.
func ByMatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchStep(), sql.OrderByField(field, opts...))
	}
}
func newCollisionEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CollisionEventInverseTable, CollisionEventFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CollisionEventTable, CollisionEventColumn),
	)
}
func newMatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MatchTable, MatchColumn),
	)
}
