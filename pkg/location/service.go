// Package location implements location update ingestion: coordinate
// validation, admission (debounce) rules, position caching, and the handoff
// into collision detection.
//
// Ingestion is non-throwing: every failure surfaces in the UpdateResult, and
// the caller is never handed an error to propagate.
package location

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
)

// SkipReason explains why an update was not admitted.
type SkipReason string

const (
	SkipValidation           SkipReason = "validation"
	SkipStaleTimestamp       SkipReason = "stale_timestamp"
	SkipRateLimited          SkipReason = "rate_limited"
	SkipInsufficientMovement SkipReason = "insufficient_movement"
	SkipInternalError        SkipReason = "internal_error"
)

// UpdateInput is one raw location update from the edge.
type UpdateInput struct {
	UserID          string
	Lat             float64
	Lon             float64
	AccuracyMeters  float64
	ClientTimestamp time.Time
}

// UpdateResult reports what happened to one update. Most updates are
// filtered out by the admission rules; skips are the cheap, common case.
type UpdateResult struct {
	Skipped            bool
	SkipReason         SkipReason
	CollisionsDetected int
	// Error describes the validation or downstream failure behind a
	// validation or internal_error skip.
	Error string
}

// Position is a user's last admitted position.
type Position struct {
	Lat            float64
	Lon            float64
	AccuracyMeters float64
	// AdmittedAt is the server-side admission time; the interval rule runs
	// on this clock, not the client's.
	AdmittedAt time.Time
}

// Detector is the collision detection stage invoked for every admitted
// update with the user's live circles. Implemented by pkg/collision.
type Detector interface {
	DetectCollisionsForUser(ctx context.Context, userID string, center geo.Point, circles []*ent.Circle) []models.DetectedCollision
}

// userState serializes admission per user: two concurrent updates for the
// same user never interleave their read-check-write sequence.
type userState struct {
	mu   sync.Mutex
	last *Position
}

// Service ingests location updates.
type Service struct {
	client   *ent.Client
	kv       kvstore.Store
	bus      *observer.Bus
	cfg      *config.LocationConfig
	detector Detector

	mu    sync.Mutex
	users map[string]*userState
}

// NewService creates the ingestion service. detector may be nil, in which
// case admitted updates are persisted but never enter collision detection.
func NewService(client *ent.Client, kv kvstore.Store, bus *observer.Bus, cfg *config.LocationConfig, detector Detector) *Service {
	return &Service{
		client:   client,
		kv:       kv,
		bus:      bus,
		cfg:      cfg,
		detector: detector,
		users:    make(map[string]*userState),
	}
}

// UpdateUserLocation runs one update through validation, the admission
// rules, persistence, and collision detection. It never returns an error.
//
// Admission rules, in order (first failure wins):
//  1. client_timestamp younger than MaxUpdateAge
//  2. at least MinUpdateInterval since the user's last admitted update
//  3. at least MinMovementMeters from the last admitted position
//
// A user with no prior admitted position passes rules 2 and 3 unconditionally.
func (s *Service) UpdateUserLocation(ctx context.Context, input UpdateInput) UpdateResult {
	if input.UserID == "" {
		return s.skip(input, SkipValidation, "user_id is required")
	}
	if err := geo.ValidCoordinate(input.Lat, input.Lon); err != nil {
		return s.skip(input, SkipValidation, err.Error())
	}
	if input.ClientTimestamp.IsZero() {
		return s.skip(input, SkipValidation, "client_timestamp is required")
	}

	st := s.stateFor(input.UserID)
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now().UTC()
	if now.Sub(input.ClientTimestamp) >= s.cfg.MaxUpdateAge {
		return s.skip(input, SkipStaleTimestamp, "")
	}

	if prev := s.lastAdmitted(ctx, input.UserID, st); prev != nil {
		if now.Sub(prev.AdmittedAt) < s.cfg.MinUpdateInterval {
			return s.skip(input, SkipRateLimited, "")
		}
		if geo.Haversine(prev.Lat, prev.Lon, input.Lat, input.Lon) < s.cfg.MinMovementMeters {
			return s.skip(input, SkipInsufficientMovement, "")
		}
	}

	log := slog.With("user_id", input.UserID)

	// The user row is the authoritative position copy; peers find this user
	// through it in the spatial candidate query.
	err := s.client.User.UpdateOneID(input.UserID).
		SetLastLat(input.Lat).
		SetLastLon(input.Lon).
		SetPositionUpdatedAt(now).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return s.skip(input, SkipValidation, fmt.Sprintf("unknown user %q", input.UserID))
		}
		log.Error("Failed to persist position", "error", err)
		return s.skip(input, SkipInternalError, fmt.Sprintf("failed to persist position: %v", err))
	}

	admitted := Position{Lat: input.Lat, Lon: input.Lon, AccuracyMeters: input.AccuracyMeters, AdmittedAt: now}
	if err := s.cachePosition(ctx, input.UserID, admitted); err != nil {
		log.Error("Failed to cache admitted position", "error", err)
		return s.skip(input, SkipInternalError, fmt.Sprintf("failed to cache position: %v", err))
	}
	st.last = &admitted

	circles, err := s.liveCircles(ctx, input.UserID, now)
	if err != nil {
		log.Error("Failed to load live circles", "error", err)
		return s.skip(input, SkipInternalError, fmt.Sprintf("failed to load circles: %v", err))
	}

	var collisions []models.DetectedCollision
	if len(circles) > 0 && s.detector != nil {
		collisions = s.detector.DetectCollisionsForUser(ctx, input.UserID, geo.Point{Lat: input.Lat, Lon: input.Lon}, circles)
	}

	ev := observer.NewEvent(observer.EventLocationUpdated, input.UserID)
	ev.Metadata = map[string]any{
		"accuracy_meters":     input.AccuracyMeters,
		"live_circles":        len(circles),
		"collisions_detected": len(collisions),
	}
	s.bus.Emit(ev)

	log.Debug("Location update admitted",
		"live_circles", len(circles),
		"collisions_detected", len(collisions))
	return UpdateResult{CollisionsDetected: len(collisions)}
}

// stateFor returns the per-user admission state, creating it on first sight.
func (s *Service) stateFor(userID string) *userState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.users[userID]
	if !ok {
		st = &userState{}
		s.users[userID] = st
	}
	return st
}

// lastAdmitted returns the user's last admitted position, or nil for a user
// with none. The cached copy in the KV store is authoritative so a second
// instance sees the same admission state; the in-process copy is only a
// fallback when the store is unreachable.
func (s *Service) lastAdmitted(ctx context.Context, userID string, st *userState) *Position {
	fields, err := s.kv.HGetAll(ctx, positionKey(userID))
	if err != nil {
		slog.Warn("Failed to read cached position, using in-process copy",
			"user_id", userID, "error", err)
		return st.last
	}
	if len(fields) == 0 {
		return nil
	}
	p, err := parsePosition(fields)
	if err != nil {
		slog.Warn("Malformed cached position, treating as absent",
			"user_id", userID, "error", err)
		return nil
	}
	return &p
}

// cachePosition writes the admitted position hash and its TTL in one round
// trip.
func (s *Service) cachePosition(ctx context.Context, userID string, p Position) error {
	pipe := s.kv.Pipeline()
	pipe.HSet(positionKey(userID), map[string]string{
		"lat":             strconv.FormatFloat(p.Lat, 'f', -1, 64),
		"lon":             strconv.FormatFloat(p.Lon, 'f', -1, 64),
		"accuracy_meters": strconv.FormatFloat(p.AccuracyMeters, 'f', -1, 64),
		"admitted_at":     strconv.FormatInt(p.AdmittedAt.UnixMilli(), 10),
	})
	pipe.Expire(positionKey(userID), s.cfg.PositionCacheTTL)
	return pipe.Exec(ctx)
}

// liveCircles loads the user's circles that are live right now.
func (s *Service) liveCircles(ctx context.Context, userID string, now time.Time) ([]*ent.Circle, error) {
	return s.client.Circle.Query().
		Where(
			circle.OwnerUserIDEQ(userID),
			circle.StatusEQ(circle.StatusActive),
			circle.StartAtLTE(now),
			circle.ExpiresAtGT(now),
		).
		All(ctx)
}

func (s *Service) skip(input UpdateInput, reason SkipReason, detail string) UpdateResult {
	ev := observer.NewEvent(observer.EventLocationSkipped, input.UserID)
	ev.Metadata = map[string]any{"reason": string(reason)}
	if detail != "" {
		ev.Metadata["detail"] = detail
	}
	s.bus.Emit(ev)

	return UpdateResult{Skipped: true, SkipReason: reason, Error: detail}
}

func positionKey(userID string) string {
	return "position:" + userID
}

func parsePosition(fields map[string]string) (Position, error) {
	lat, err := strconv.ParseFloat(fields["lat"], 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid lat %q: %w", fields["lat"], err)
	}
	lon, err := strconv.ParseFloat(fields["lon"], 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid lon %q: %w", fields["lon"], err)
	}
	accuracy, err := strconv.ParseFloat(fields["accuracy_meters"], 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid accuracy_meters %q: %w", fields["accuracy_meters"], err)
	}
	admittedMs, err := strconv.ParseInt(fields["admitted_at"], 10, 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid admitted_at %q: %w", fields["admitted_at"], err)
	}
	return Position{
		Lat:            lat,
		Lon:            lon,
		AccuracyMeters: accuracy,
		AdmittedAt:     time.UnixMilli(admittedMs).UTC(),
	}, nil
}
