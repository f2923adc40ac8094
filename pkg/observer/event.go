// Package observer provides the fire-and-forget event bus that records
// pipeline activity to Redis for downstream consumers (analytics, debugging,
// live dashboards).
//
// Events are emitted synchronously into a bounded buffer and flushed to the
// store in batches by a background goroutine. The observer path never blocks
// or fails the operation being observed: a full buffer drops, a failing
// store trips a circuit breaker, and hook panics are recovered.
package observer

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies what happened. Types are namespaced by the pipeline
// stage that emits them.
type EventType string

const (
	// Location ingestion.
	EventLocationUpdated EventType = "location.updated"
	EventLocationSkipped EventType = "location.skipped"

	// Collision detection.
	EventCollisionDetected         EventType = "collision.detected"
	EventCollisionStabilityReached EventType = "collision.stability_reached"
	EventCollisionExpired          EventType = "collision.expired"

	// Agent-match orchestration.
	EventMissionCreated   EventType = "agent_match.mission_created"
	EventMissionCompleted EventType = "agent_match.mission_completed"
	EventMissionFailed    EventType = "agent_match.mission_failed"
	EventCooldownStarted  EventType = "agent_match.cooldown_started"

	// Match lifecycle.
	EventMatchCreated  EventType = "match.created"
	EventMatchAccepted EventType = "match.accepted"
	EventMatchRejected EventType = "match.rejected"
	EventMatchExpired  EventType = "match.expired"
)

// Event is one observer record. IDs are UUIDv7 so lexicographic order
// matches creation order within the process.
type Event struct {
	ID            string
	Type          EventType
	UserID        string
	RelatedUserID string
	CircleID      string
	Metadata      map[string]any
	CreatedAt     time.Time
}

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(eventType EventType, userID string) Event {
	return Event{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Type:      eventType,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
