// Package collision implements spatial collision detection between live
// circles and the per-pair stability tracking that decides when a collision
// is real enough to hand to agent matching.
package collision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/database"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
)

// ErrMissionDenied marks a handoff the launcher refused by policy (cooldown,
// single-flight lock, live-mission uniqueness). A denial ends the pair's
// current stability cycle; any other launcher error keeps the transient
// state so the handoff is retried.
var ErrMissionDenied = errors.New("mission denied by policy")

// MissionLauncher receives circle pairs that held a collision through the
// stability window. Implemented by pkg/agentmatch. Policy refusals wrap
// ErrMissionDenied.
type MissionLauncher interface {
	CreateMissionForCollision(ctx context.Context, collision models.DetectedCollision) (*ent.InterviewMission, error)
}

// candidate is one peer circle from the spatial query, with the spherical
// distance between the two owners' positions.
type candidate struct {
	CircleID       string
	OwnerUserID    string
	DistanceMeters float64
}

// Detector finds peer circles within interaction range of a user's live
// circles and tracks how long each pair stays in contact.
type Detector struct {
	db       *database.Client
	kv       kvstore.Store
	bus      *observer.Bus
	cfg      *config.CollisionConfig
	launcher MissionLauncher
}

// NewDetector creates a collision detector. launcher may be nil, in which
// case promoted pairs are recorded but no missions are created.
func NewDetector(db *database.Client, kv kvstore.Store, bus *observer.Bus, cfg *config.CollisionConfig, launcher MissionLauncher) *Detector {
	return &Detector{
		db:       db,
		kv:       kv,
		bus:      bus,
		cfg:      cfg,
		launcher: launcher,
	}
}

// DetectCollisionsForUser finds collisions between the user's live circles
// and nearby peer circles, feeding each one into stability tracking. Every
// circle inherits its center from the owner's position, so one spatial query
// serves all of the user's circles; the per-circle interaction radius is
// applied on top.
//
// Detection never fails the ingestion path: query and tracking errors are
// logged and the affected circle or pair contributes nothing.
func (d *Detector) DetectCollisionsForUser(ctx context.Context, userID string, center geo.Point, circles []*ent.Circle) []models.DetectedCollision {
	if len(circles) == 0 {
		return nil
	}

	candidates, err := d.candidatesNear(ctx, userID, center)
	if err != nil {
		slog.Warn("Spatial candidate query failed, skipping detection",
			"user_id", userID, "error", err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	now := time.Now().UTC()
	var detected []models.DetectedCollision
	for _, c := range circles {
		kept := 0
		for _, cand := range candidates {
			// The peer is treated as a point: in range when it lies within
			// this circle's radius, boundary inclusive.
			if cand.DistanceMeters > c.RadiusMeters {
				break // candidates are sorted ascending by distance
			}
			if kept >= d.cfg.MaxCollisionsPerUpdate {
				break
			}
			kept++

			dc := newDetectedCollision(c.ID, userID, cand.CircleID, cand.OwnerUserID, cand.DistanceMeters, now)
			if err := d.trackStability(ctx, dc); err != nil {
				slog.Warn("Stability tracking failed for pair",
					"pair_key", geo.PairKey(dc.Circle1ID, dc.Circle2ID), "error", err)
				continue
			}
			detected = append(detected, dc)
		}
	}
	return detected
}

// candidatesNear returns peer circles whose owner position lies within
// MaxSearchRadiusMeters of the center, nearest first, capped at SearchLimit.
// The user's own circles never appear. A degree-space bounding box prefilters
// the scan before the spherical distance is computed in SQL.
func (d *Detector) candidatesNear(ctx context.Context, userID string, center geo.Point) ([]candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SpatialQueryTimeout)
	defer cancel()

	minLat, maxLat, minLon, maxLon := geo.BoundingBox(center.Lat, center.Lon, d.cfg.MaxSearchRadiusMeters)

	const q = `
SELECT circle_id, owner_user_id, distance_meters
FROM (
    SELECT c.circle_id, c.owner_user_id,
           2 * 6371000 * asin(sqrt(
               power(sin(radians(u.last_lat - $1) / 2), 2) +
               cos(radians($1)) * cos(radians(u.last_lat)) *
               power(sin(radians(u.last_lon - $2) / 2), 2)
           )) AS distance_meters
    FROM circles c
    JOIN users u ON u.user_id = c.owner_user_id
    WHERE c.status = 'active'
      AND c.start_at <= now()
      AND c.expires_at > now()
      AND c.owner_user_id <> $3
      AND u.last_lat IS NOT NULL
      AND u.last_lon IS NOT NULL
      AND u.last_lat BETWEEN $4 AND $5
      AND u.last_lon BETWEEN $6 AND $7
) pc
WHERE distance_meters <= $8
ORDER BY distance_meters ASC
LIMIT $9`

	rows, err := d.db.DB().QueryContext(ctx, q,
		center.Lat, center.Lon, userID,
		minLat, maxLat, minLon, maxLon,
		d.cfg.MaxSearchRadiusMeters, d.cfg.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("spatial candidate query failed: %w", err)
	}
	defer rows.Close()

	var out []candidate
	for rows.Next() {
		var c candidate
		if err := rows.Scan(&c.CircleID, &c.OwnerUserID, &c.DistanceMeters); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("candidate row iteration failed: %w", err)
	}
	return out, nil
}

// newDetectedCollision canonicalizes the pair: circle1 is the
// lexicographically smaller circle id, and each user is the owner of the
// same-numbered circle.
func newDetectedCollision(circleA, userA, circleB, userB string, distance float64, ts time.Time) models.DetectedCollision {
	if circleB < circleA {
		circleA, circleB = circleB, circleA
		userA, userB = userB, userA
	}
	return models.DetectedCollision{
		Circle1ID:      circleA,
		Circle2ID:      circleB,
		User1ID:        userA,
		User2ID:        userB,
		DistanceMeters: distance,
		Timestamp:      ts,
	}
}
