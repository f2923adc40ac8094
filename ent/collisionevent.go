// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/venn-social/vennd/ent/collisionevent"
)

// CollisionEvent is the model entity for the CollisionEvent schema.
type CollisionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Canonical circle pair key: min(id):max(id)
	PairKey string `json:"pair_key,omitempty"`
	// Lexicographically smaller circle of the pair
	Circle1ID string `json:"circle1_id,omitempty"`
	// Circle2ID holds the value of the "circle2_id" field.
	Circle2ID string `json:"circle2_id,omitempty"`
	// Owner of circle1
	User1ID string `json:"user1_id,omitempty"`
	// Owner of circle2
	User2ID string `json:"user2_id,omitempty"`
	// DistanceMeters holds the value of the "distance_meters" field.
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Status holds the value of the "status" field.
	Status collisionevent.Status `json:"status,omitempty"`
	// Set when the pair graduates to a mission
	MissionID *string `json:"mission_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CollisionEventQuery when eager-loading is set.
	Edges        CollisionEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CollisionEventEdges holds the relations/edges for other nodes in the graph.
type CollisionEventEdges struct {
	// Missions holds the value of the missions edge.
	Missions []*InterviewMission `json:"missions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MissionsOrErr returns the Missions value or an error if the edge
// was not loaded in eager-loading.
func (e CollisionEventEdges) MissionsOrErr() ([]*InterviewMission, error) {
	if e.loadedTypes[0] {
		return e.Missions, nil
	}
	return nil, &NotLoadedError{edge: "missions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollisionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collisionevent.FieldDistanceMeters:
			values[i] = new(sql.NullFloat64)
		case collisionevent.FieldID, collisionevent.FieldPairKey, collisionevent.FieldCircle1ID, collisionevent.FieldCircle2ID, collisionevent.FieldUser1ID, collisionevent.FieldUser2ID, collisionevent.FieldStatus, collisionevent.FieldMissionID:
			values[i] = new(sql.NullString)
		case collisionevent.FieldFirstSeenAt, collisionevent.FieldLastSeenAt, collisionevent.FieldCreatedAt, collisionevent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollisionEvent fields.
func (_m *CollisionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collisionevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case collisionevent.FieldPairKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pair_key", values[i])
			} else if value.Valid {
				_m.PairKey = value.String
			}
		case collisionevent.FieldCircle1ID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field circle1_id", values[i])
			} else if value.Valid {
				_m.Circle1ID = value.String
			}
		case collisionevent.FieldCircle2ID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field circle2_id", values[i])
			} else if value.Valid {
				_m.Circle2ID = value.String
			}
		case collisionevent.FieldUser1ID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user1_id", values[i])
			} else if value.Valid {
				_m.User1ID = value.String
			}
		case collisionevent.FieldUser2ID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user2_id", values[i])
			} else if value.Valid {
				_m.User2ID = value.String
			}
		case collisionevent.FieldDistanceMeters:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance_meters", values[i])
			} else if value.Valid {
				_m.DistanceMeters = value.Float64
			}
		case collisionevent.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case collisionevent.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case collisionevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = collisionevent.Status(value.String)
			}
		case collisionevent.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = new(string)
				*_m.MissionID = value.String
			}
		case collisionevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case collisionevent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CollisionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CollisionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMissions queries the "missions" edge of the CollisionEvent entity.
func (_m *CollisionEvent) QueryMissions() *InterviewMissionQuery {
	return NewCollisionEventClient(_m.config).QueryMissions(_m)
}

// Update returns a builder for updating this CollisionEvent.
// Note that you need to call CollisionEvent.Unwrap() before calling this method if this CollisionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollisionEvent) Update() *CollisionEventUpdateOne {
	return NewCollisionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollisionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollisionEvent) Unwrap() *CollisionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollisionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollisionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CollisionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pair_key=")
	builder.WriteString(_m.PairKey)
	builder.WriteString(", ")
	builder.WriteString("circle1_id=")
	builder.WriteString(_m.Circle1ID)
	builder.WriteString(", ")
	builder.WriteString("circle2_id=")
	builder.WriteString(_m.Circle2ID)
	builder.WriteString(", ")
	builder.WriteString("user1_id=")
	builder.WriteString(_m.User1ID)
	builder.WriteString(", ")
	builder.WriteString("user2_id=")
	builder.WriteString(_m.User2ID)
	builder.WriteString(", ")
	builder.WriteString("distance_meters=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistanceMeters))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.MissionID; v != nil {
		builder.WriteString("mission_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CollisionEvents is a parsable slice of CollisionEvent.
type CollisionEvents []*CollisionEvent
