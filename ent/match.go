// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
)

// Match is the model entity for the Match schema.
type Match struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MissionID holds the value of the "mission_id" field.
	MissionID string `json:"mission_id,omitempty"`
	// Owner side of the originating mission
	PrimaryUserID string `json:"primary_user_id,omitempty"`
	// SecondaryUserID holds the value of the "secondary_user_id" field.
	SecondaryUserID string `json:"secondary_user_id,omitempty"`
	// PrimaryCircleID holds the value of the "primary_circle_id" field.
	PrimaryCircleID string `json:"primary_circle_id,omitempty"`
	// SecondaryCircleID holds the value of the "secondary_circle_id" field.
	SecondaryCircleID string `json:"secondary_circle_id,omitempty"`
	// Type holds the value of the "type" field.
	Type match.Type `json:"type,omitempty"`
	// Judge confidence, 0..1
	WorthItScore float64 `json:"worth_it_score,omitempty"`
	// Status holds the value of the "status" field.
	Status match.Status `json:"status,omitempty"`
	// Judge reasoning shown to both users
	ExplanationSummary *string `json:"explanation_summary,omitempty"`
	// When a participant accepted or declined
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchQuery when eager-loading is set.
	Edges        MatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchEdges holds the relations/edges for other nodes in the graph.
type MatchEdges struct {
	// Mission holds the value of the mission edge.
	Mission *InterviewMission `json:"mission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MissionOrErr returns the Mission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) MissionOrErr() (*InterviewMission, error) {
	if e.Mission != nil {
		return e.Mission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interviewmission.Label}
	}
	return nil, &NotLoadedError{edge: "mission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Match) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case match.FieldWorthItScore:
			values[i] = new(sql.NullFloat64)
		case match.FieldID, match.FieldMissionID, match.FieldPrimaryUserID, match.FieldSecondaryUserID, match.FieldPrimaryCircleID, match.FieldSecondaryCircleID, match.FieldType, match.FieldStatus, match.FieldExplanationSummary:
			values[i] = new(sql.NullString)
		case match.FieldRespondedAt, match.FieldCreatedAt, match.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Match fields.
func (_m *Match) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case match.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case match.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = value.String
			}
		case match.FieldPrimaryUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_user_id", values[i])
			} else if value.Valid {
				_m.PrimaryUserID = value.String
			}
		case match.FieldSecondaryUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_user_id", values[i])
			} else if value.Valid {
				_m.SecondaryUserID = value.String
			}
		case match.FieldPrimaryCircleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_circle_id", values[i])
			} else if value.Valid {
				_m.PrimaryCircleID = value.String
			}
		case match.FieldSecondaryCircleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_circle_id", values[i])
			} else if value.Valid {
				_m.SecondaryCircleID = value.String
			}
		case match.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = match.Type(value.String)
			}
		case match.FieldWorthItScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field worth_it_score", values[i])
			} else if value.Valid {
				_m.WorthItScore = value.Float64
			}
		case match.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = match.Status(value.String)
			}
		case match.FieldExplanationSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation_summary", values[i])
			} else if value.Valid {
				_m.ExplanationSummary = new(string)
				*_m.ExplanationSummary = value.String
			}
		case match.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		case match.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case match.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Match.
// This includes values selected through modifiers, order, etc.
func (_m *Match) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMission queries the "mission" edge of the Match entity.
func (_m *Match) QueryMission() *InterviewMissionQuery {
	return NewMatchClient(_m.config).QueryMission(_m)
}

// Update returns a builder for updating this Match.
// Note that you need to call Match.Unwrap() before calling this method if this Match
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Match) Update() *MatchUpdateOne {
	return NewMatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Match entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Match) Unwrap() *Match {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Match is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Match) String() string {
	var builder strings.Builder
	builder.WriteString("Match(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mission_id=")
	builder.WriteString(_m.MissionID)
	builder.WriteString(", ")
	builder.WriteString("primary_user_id=")
	builder.WriteString(_m.PrimaryUserID)
	builder.WriteString(", ")
	builder.WriteString("secondary_user_id=")
	builder.WriteString(_m.SecondaryUserID)
	builder.WriteString(", ")
	builder.WriteString("primary_circle_id=")
	builder.WriteString(_m.PrimaryCircleID)
	builder.WriteString(", ")
	builder.WriteString("secondary_circle_id=")
	builder.WriteString(_m.SecondaryCircleID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("worth_it_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorthItScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ExplanationSummary; v != nil {
		builder.WriteString("explanation_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Matches is a parsable slice of Match.
type Matches []*Match
