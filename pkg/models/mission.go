package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CircleContext is the slice of a circle handed to the interview agents.
type CircleContext struct {
	CircleID     string  `json:"circle_id"`
	Objective    string  `json:"objective"`
	RadiusMeters float64 `json:"radius_meters"`
}

// MissionPayload is the durable queue payload for one interview mission.
// It carries everything the executor needs so the worker never re-reads
// user or circle rows.
type MissionPayload struct {
	MissionID      string         `json:"mission_id"`
	OwnerUserID    string         `json:"owner_user_id"`
	VisitorUserID  string         `json:"visitor_user_id"`
	OwnerProfile   map[string]any `json:"owner_profile,omitempty"`
	VisitorProfile map[string]any `json:"visitor_profile,omitempty"`
	OwnerCircle    CircleContext  `json:"owner_circle"`
	Context        map[string]any `json:"context,omitempty"`
}

// AsMap renders the payload for storage in the mission row's JSON column.
func (p MissionPayload) AsMap() (map[string]any, error) {
	return toMap(p)
}

// MissionPayloadFromMap parses a stored payload column.
func MissionPayloadFromMap(m map[string]any) (MissionPayload, error) {
	var p MissionPayload
	if err := fromMap(m, &p); err != nil {
		return MissionPayload{}, fmt.Errorf("invalid mission payload: %w", err)
	}
	return p, nil
}

// TranscriptTurn is one utterance in an interview transcript.
type TranscriptTurn struct {
	Speaker   string    `json:"speaker"` // "owner_agent", "visitor_agent", "judge"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TranscriptAsMaps renders a transcript for the mission row's JSON column.
func TranscriptAsMaps(turns []TranscriptTurn) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(turns))
	for _, turn := range turns {
		m, err := toMap(turn)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// JudgeDecision is the judge agent's verdict on an interview.
type JudgeDecision struct {
	MatchMade bool `json:"match_made"`
	// SoftMatch marks a lukewarm verdict; the match row is created with
	// type=soft_match instead of type=match.
	SoftMatch  bool     `json:"soft_match,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	// Reason is the judge's summary, persisted as the match explanation.
	Reason string `json:"reason,omitempty"`
	// Notification is the user-facing text forwarded to the notification
	// gateway when a match is made.
	Notification string `json:"notification,omitempty"`
}

// AsMap renders the decision for storage in the mission row's JSON column.
func (d JudgeDecision) AsMap() (map[string]any, error) {
	return toMap(d)
}

// MissionResult is what the worker reports back to the agent-match service,
// exactly once per delivery. Executor failures arrive as Success=false with
// Error set, never as a propagated error.
type MissionResult struct {
	Success       bool             `json:"success"`
	MatchMade     bool             `json:"match_made"`
	Transcript    []TranscriptTurn `json:"transcript,omitempty"`
	JudgeDecision *JudgeDecision   `json:"judge_decision,omitempty"`
	Error         string           `json:"error,omitempty"`
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %T into map: %w", v, err)
	}
	return m, nil
}

func fromMap(m map[string]any, dst any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	return json.Unmarshal(raw, dst)
}
