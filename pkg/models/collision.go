// Package models contains cross-package domain types: detected collisions,
// mission payloads and results, and judge decisions.
package models

import "time"

// DetectedCollision is one live circle pair within interaction range,
// produced by the collision detector and consumed by the agent-match
// service. Circles are in canonical order (circle1 < circle2
// lexicographically) and users are aligned to their circles.
type DetectedCollision struct {
	Circle1ID      string    `json:"circle1_id"`
	Circle2ID      string    `json:"circle2_id"`
	User1ID        string    `json:"user1_id"`
	User2ID        string    `json:"user2_id"`
	DistanceMeters float64   `json:"distance_meters"`
	Timestamp      time.Time `json:"timestamp"`
}
