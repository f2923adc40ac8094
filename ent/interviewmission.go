// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
)

// InterviewMission is the model entity for the InterviewMission schema.
type InterviewMission struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CollisionEventID holds the value of the "collision_event_id" field.
	CollisionEventID string `json:"collision_event_id,omitempty"`
	// OwnerUserID holds the value of the "owner_user_id" field.
	OwnerUserID string `json:"owner_user_id,omitempty"`
	// VisitorUserID holds the value of the "visitor_user_id" field.
	VisitorUserID string `json:"visitor_user_id,omitempty"`
	// OwnerCircleID holds the value of the "owner_circle_id" field.
	OwnerCircleID string `json:"owner_circle_id,omitempty"`
	// VisitorCircleID holds the value of the "visitor_circle_id" field.
	VisitorCircleID string `json:"visitor_circle_id,omitempty"`
	// Canonical circle pair key, duplicated for the in-flight uniqueness guard
	CirclePairKey string `json:"circle_pair_key,omitempty"`
	// Status holds the value of the "status" field.
	Status interviewmission.Status `json:"status,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Queue payload handed to the interview executor
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript []map[string]interface{} `json:"transcript,omitempty"`
	// JudgeDecision holds the value of the "judge_decision" field.
	JudgeDecision map[string]interface{} `json:"judge_decision,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// When a worker claimed the mission
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Queue redeliveries after stalled claims, distinct from attempt_number
	DeliveryAttempts int `json:"delivery_attempts,omitempty"`
	// Earliest claim time; pushed out by redelivery backoff
	NextAttemptAt time.Time `json:"next_attempt_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InterviewMissionQuery when eager-loading is set.
	Edges        InterviewMissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InterviewMissionEdges holds the relations/edges for other nodes in the graph.
type InterviewMissionEdges struct {
	// CollisionEvent holds the value of the collision_event edge.
	CollisionEvent *CollisionEvent `json:"collision_event,omitempty"`
	// Match holds the value of the match edge.
	Match *Match `json:"match,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CollisionEventOrErr returns the CollisionEvent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterviewMissionEdges) CollisionEventOrErr() (*CollisionEvent, error) {
	if e.CollisionEvent != nil {
		return e.CollisionEvent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: collisionevent.Label}
	}
	return nil, &NotLoadedError{edge: "collision_event"}
}

// MatchOrErr returns the Match value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterviewMissionEdges) MatchOrErr() (*Match, error) {
	if e.Match != nil {
		return e.Match, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: match.Label}
	}
	return nil, &NotLoadedError{edge: "match"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewMission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewmission.FieldPayload, interviewmission.FieldTranscript, interviewmission.FieldJudgeDecision:
			values[i] = new([]byte)
		case interviewmission.FieldAttemptNumber, interviewmission.FieldDeliveryAttempts:
			values[i] = new(sql.NullInt64)
		case interviewmission.FieldID, interviewmission.FieldCollisionEventID, interviewmission.FieldOwnerUserID, interviewmission.FieldVisitorUserID, interviewmission.FieldOwnerCircleID, interviewmission.FieldVisitorCircleID, interviewmission.FieldCirclePairKey, interviewmission.FieldStatus, interviewmission.FieldFailureReason, interviewmission.FieldPodID:
			values[i] = new(sql.NullString)
		case interviewmission.FieldStartedAt, interviewmission.FieldCompletedAt, interviewmission.FieldLastHeartbeatAt, interviewmission.FieldNextAttemptAt, interviewmission.FieldCreatedAt, interviewmission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewMission fields.
func (_m *InterviewMission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewmission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interviewmission.FieldCollisionEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collision_event_id", values[i])
			} else if value.Valid {
				_m.CollisionEventID = value.String
			}
		case interviewmission.FieldOwnerUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value.Valid {
				_m.OwnerUserID = value.String
			}
		case interviewmission.FieldVisitorUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_user_id", values[i])
			} else if value.Valid {
				_m.VisitorUserID = value.String
			}
		case interviewmission.FieldOwnerCircleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_circle_id", values[i])
			} else if value.Valid {
				_m.OwnerCircleID = value.String
			}
		case interviewmission.FieldVisitorCircleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_circle_id", values[i])
			} else if value.Valid {
				_m.VisitorCircleID = value.String
			}
		case interviewmission.FieldCirclePairKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field circle_pair_key", values[i])
			} else if value.Valid {
				_m.CirclePairKey = value.String
			}
		case interviewmission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = interviewmission.Status(value.String)
			}
		case interviewmission.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case interviewmission.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case interviewmission.FieldTranscript:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transcript); err != nil {
					return fmt.Errorf("unmarshal field transcript: %w", err)
				}
			}
		case interviewmission.FieldJudgeDecision:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field judge_decision", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JudgeDecision); err != nil {
					return fmt.Errorf("unmarshal field judge_decision: %w", err)
				}
			}
		case interviewmission.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case interviewmission.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case interviewmission.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case interviewmission.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case interviewmission.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case interviewmission.FieldDeliveryAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_attempts", values[i])
			} else if value.Valid {
				_m.DeliveryAttempts = int(value.Int64)
			}
		case interviewmission.FieldNextAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_attempt_at", values[i])
			} else if value.Valid {
				_m.NextAttemptAt = value.Time
			}
		case interviewmission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interviewmission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewMission.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewMission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCollisionEvent queries the "collision_event" edge of the InterviewMission entity.
func (_m *InterviewMission) QueryCollisionEvent() *CollisionEventQuery {
	return NewInterviewMissionClient(_m.config).QueryCollisionEvent(_m)
}

// QueryMatch queries the "match" edge of the InterviewMission entity.
func (_m *InterviewMission) QueryMatch() *MatchQuery {
	return NewInterviewMissionClient(_m.config).QueryMatch(_m)
}

// Update returns a builder for updating this InterviewMission.
// Note that you need to call InterviewMission.Unwrap() before calling this method if this InterviewMission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewMission) Update() *InterviewMissionUpdateOne {
	return NewInterviewMissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewMission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewMission) Unwrap() *InterviewMission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewMission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewMission) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewMission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("collision_event_id=")
	builder.WriteString(_m.CollisionEventID)
	builder.WriteString(", ")
	builder.WriteString("owner_user_id=")
	builder.WriteString(_m.OwnerUserID)
	builder.WriteString(", ")
	builder.WriteString("visitor_user_id=")
	builder.WriteString(_m.VisitorUserID)
	builder.WriteString(", ")
	builder.WriteString("owner_circle_id=")
	builder.WriteString(_m.OwnerCircleID)
	builder.WriteString(", ")
	builder.WriteString("visitor_circle_id=")
	builder.WriteString(_m.VisitorCircleID)
	builder.WriteString(", ")
	builder.WriteString("circle_pair_key=")
	builder.WriteString(_m.CirclePairKey)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transcript))
	builder.WriteString(", ")
	builder.WriteString("judge_decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.JudgeDecision))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("delivery_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryAttempts))
	builder.WriteString(", ")
	builder.WriteString("next_attempt_at=")
	builder.WriteString(_m.NextAttemptAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewMissions is a parsable slice of InterviewMission.
type InterviewMissions []*InterviewMission
