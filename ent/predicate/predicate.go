// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Circle is the predicate function for circle builders.
type Circle func(*sql.Selector)

// CollisionEvent is the predicate function for collisionevent builders.
type CollisionEvent func(*sql.Selector)

// InterviewMission is the predicate function for interviewmission builders.
type InterviewMission func(*sql.Selector)

// Match is the predicate function for match builders.
type Match func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
