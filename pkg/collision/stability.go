package collision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
)

const (
	stabilityQueueKey = "collision:stability:queue"
	activePairPrefix  = "collision:active:"

	hashStatusDetecting = "detecting"
	hashStatusExpired   = "expired"
)

func activePairKey(pairKey string) string {
	return activePairPrefix + pairKey
}

// trackStability records one sighting of a pair: first sighting creates the
// transient hash, the schedule entry, and the durable row; later sightings
// refresh last_seen_at and distance. When the pair has been in contact for
// the full stability window it is promoted inline.
func (d *Detector) trackStability(ctx context.Context, dc models.DetectedCollision) error {
	pairKey := geo.PairKey(dc.Circle1ID, dc.Circle2ID)
	hashKey := activePairKey(pairKey)
	nowMs := dc.Timestamp.UnixMilli()

	fields, err := d.kv.HGetAll(ctx, hashKey)
	if err != nil {
		return fmt.Errorf("failed to read stability state: %w", err)
	}

	firstSeen := dc.Timestamp
	status := hashStatusDetecting

	if len(fields) == 0 {
		pipe := d.kv.Pipeline()
		pipe.HSet(hashKey, map[string]string{
			"first_seen_at": strconv.FormatInt(nowMs, 10),
			"last_seen_at":  strconv.FormatInt(nowMs, 10),
			"status":        hashStatusDetecting,
			"distance":      strconv.FormatFloat(dc.DistanceMeters, 'f', -1, 64),
		})
		pipe.Expire(hashKey, d.cfg.CacheTTL)
		if err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create stability state: %w", err)
		}
		if err := d.kv.ZAdd(ctx, stabilityQueueKey, pairKey, float64(nowMs)); err != nil {
			return fmt.Errorf("failed to schedule pair for promotion: %w", err)
		}
		if err := d.upsertCollisionRow(ctx, dc, pairKey); err != nil {
			return err
		}

		ev := observer.NewEvent(observer.EventCollisionDetected, dc.User1ID)
		ev.RelatedUserID = dc.User2ID
		ev.CircleID = dc.Circle1ID
		ev.Metadata = map[string]any{
			"pair_key":        pairKey,
			"circle2_id":      dc.Circle2ID,
			"distance_meters": dc.DistanceMeters,
		}
		d.bus.Emit(ev)
	} else {
		firstSeenMs, err := strconv.ParseInt(fields["first_seen_at"], 10, 64)
		if err != nil {
			return fmt.Errorf("malformed stability state for %s: %w", pairKey, err)
		}
		firstSeen = time.UnixMilli(firstSeenMs).UTC()
		if s := fields["status"]; s != "" {
			status = s
		}

		pipe := d.kv.Pipeline()
		pipe.HSet(hashKey, map[string]string{
			"last_seen_at": strconv.FormatInt(nowMs, 10),
			"distance":     strconv.FormatFloat(dc.DistanceMeters, 'f', -1, 64),
		})
		pipe.Expire(hashKey, d.cfg.CacheTTL)
		if err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to refresh stability state: %w", err)
		}
		if err := d.upsertCollisionRow(ctx, dc, pairKey); err != nil {
			return err
		}
	}

	if status == hashStatusDetecting && dc.Timestamp.Sub(firstSeen) >= d.cfg.StabilityWindow {
		d.promote(ctx, dc, pairKey)
	}
	return nil
}

// upsertCollisionRow creates or refreshes the durable pair row. A conflict
// only advances last_seen_at and distance; first_seen_at and status never
// move backward through this path.
func (d *Detector) upsertCollisionRow(ctx context.Context, dc models.DetectedCollision, pairKey string) error {
	err := d.db.CollisionEvent.Create().
		SetID(uuid.New().String()).
		SetPairKey(pairKey).
		SetCircle1ID(dc.Circle1ID).
		SetCircle2ID(dc.Circle2ID).
		SetUser1ID(dc.User1ID).
		SetUser2ID(dc.User2ID).
		SetDistanceMeters(dc.DistanceMeters).
		SetFirstSeenAt(dc.Timestamp).
		SetLastSeenAt(dc.Timestamp).
		OnConflictColumns(collisionevent.FieldPairKey).
		Update(func(u *ent.CollisionEventUpsert) {
			u.SetLastSeenAt(dc.Timestamp)
			u.SetDistanceMeters(dc.DistanceMeters)
			u.SetUpdatedAt(time.Now().UTC())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert collision event: %w", err)
	}
	return nil
}

// promote flips the pair to stable and hands it to the mission launcher.
// The durable row is the serialization point: the status-gated update lets
// exactly one promoter win. A row already stable is handed off again (a
// previous promoter may have died between flip and handoff; downstream
// gates make the repeat harmless), while a terminal row just gets its
// transient state cleaned up.
func (d *Detector) promote(ctx context.Context, dc models.DetectedCollision, pairKey string) {
	n, err := d.db.CollisionEvent.Update().
		Where(
			collisionevent.PairKeyEQ(pairKey),
			collisionevent.StatusEQ(collisionevent.StatusDetecting),
		).
		SetStatus(collisionevent.StatusStable).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to promote collision to stable", "pair_key", pairKey, "error", err)
		return
	}
	won := n > 0

	if !won {
		row, err := d.db.CollisionEvent.Query().
			Where(collisionevent.PairKeyEQ(pairKey)).
			Only(ctx)
		if err != nil || row.Status != collisionevent.StatusStable {
			d.cleanupPair(ctx, pairKey)
			return
		}
	}

	if won {
		slog.Info("Collision reached stability window",
			"pair_key", pairKey, "distance_meters", dc.DistanceMeters)
		ev := observer.NewEvent(observer.EventCollisionStabilityReached, dc.User1ID)
		ev.RelatedUserID = dc.User2ID
		ev.CircleID = dc.Circle1ID
		ev.Metadata = map[string]any{
			"pair_key":        pairKey,
			"circle2_id":      dc.Circle2ID,
			"distance_meters": dc.DistanceMeters,
		}
		d.bus.Emit(ev)
	}

	if d.launcher != nil {
		if _, err := d.launcher.CreateMissionForCollision(ctx, dc); err != nil {
			if !errors.Is(err, ErrMissionDenied) {
				// Keep the transient state so the scheduled promoter retries
				// the handoff.
				slog.Error("Mission handoff failed", "pair_key", pairKey, "error", err)
				return
			}
			slog.Debug("Mission handoff denied", "pair_key", pairKey, "reason", err)
		}
	}

	d.cleanupPair(ctx, pairKey)
}

// cleanupPair removes the pair's transient stability state. The promoted or
// expired pair lives on only in the durable row.
func (d *Detector) cleanupPair(ctx context.Context, pairKey string) {
	if err := d.kv.ZRem(ctx, stabilityQueueKey, pairKey); err != nil {
		slog.Warn("Failed to remove pair from stability queue", "pair_key", pairKey, "error", err)
	}
	if err := d.kv.Del(ctx, activePairKey(pairKey)); err != nil {
		slog.Warn("Failed to delete stability hash", "pair_key", pairKey, "error", err)
	}
}

// SweepStats summarizes one scheduled promotion pass.
type SweepStats struct {
	Due      int
	Promoted int
	Expired  int
	Stale    int
}

// RunScheduledPromotion advances pairs whose stability window elapsed
// between location updates: due pairs seen recently are promoted, pairs
// unseen past the inactivity window are expired, and schedule entries with
// no state behind them are dropped. Safe to run concurrently with inline
// promotion; the durable row picks the winner. Running it twice in a row is
// equivalent to running it once.
func (d *Detector) RunScheduledPromotion(ctx context.Context) (SweepStats, error) {
	var stats SweepStats
	now := time.Now().UTC()
	cutoff := now.Add(-d.cfg.StabilityWindow)

	due, err := d.kv.ZRangeByScore(ctx, stabilityQueueKey, 0, float64(cutoff.UnixMilli()), 0)
	if err != nil {
		return stats, fmt.Errorf("failed to scan stability queue: %w", err)
	}
	stats.Due = len(due)
	if len(due) == 0 {
		return stats, nil
	}

	inactivityCutoff := now.Add(-d.cfg.InactivityWindow)
	for _, member := range due {
		pairKey := member.Member

		fields, err := d.kv.HGetAll(ctx, activePairKey(pairKey))
		if err != nil {
			slog.Warn("Failed to read stability state", "pair_key", pairKey, "error", err)
			continue
		}
		if len(fields) == 0 {
			// The hash TTL'd out from under its schedule entry.
			d.dropFromSchedule(ctx, pairKey)
			stats.Stale++
			continue
		}

		lastSeenMs, err := strconv.ParseInt(fields["last_seen_at"], 10, 64)
		if err != nil {
			slog.Warn("Malformed stability state, dropping pair", "pair_key", pairKey, "error", err)
			d.cleanupPair(ctx, pairKey)
			stats.Stale++
			continue
		}
		lastSeen := time.UnixMilli(lastSeenMs).UTC()

		switch {
		case fields["status"] == hashStatusDetecting && !lastSeen.Before(inactivityCutoff):
			dc, ok := d.collisionFromRow(ctx, pairKey, fields)
			if !ok {
				d.cleanupPair(ctx, pairKey)
				stats.Stale++
				continue
			}
			d.promote(ctx, dc, pairKey)
			stats.Promoted++
		case lastSeen.Before(inactivityCutoff):
			d.expirePair(ctx, pairKey, fields)
			stats.Expired++
		default:
			// Seen recently but no longer promotable; drop it from the
			// schedule and let the hash TTL out.
			d.dropFromSchedule(ctx, pairKey)
			stats.Stale++
		}
	}
	return stats, nil
}

// expirePair marks a pair that went quiet: the hash status flips to expired
// (the TTL reaps it), the schedule entry goes away, and the durable row is
// expired unless a mission already claimed it.
func (d *Detector) expirePair(ctx context.Context, pairKey string, fields map[string]string) {
	alreadyExpired := fields["status"] == hashStatusExpired

	if err := d.kv.HSetField(ctx, activePairKey(pairKey), "status", hashStatusExpired); err != nil {
		slog.Warn("Failed to mark stability state expired", "pair_key", pairKey, "error", err)
	}
	d.dropFromSchedule(ctx, pairKey)

	n, err := d.db.CollisionEvent.Update().
		Where(
			collisionevent.PairKeyEQ(pairKey),
			collisionevent.StatusIn(collisionevent.StatusDetecting, collisionevent.StatusStable),
		).
		SetStatus(collisionevent.StatusExpired).
		Save(ctx)
	if err != nil {
		slog.Warn("Failed to expire collision event row", "pair_key", pairKey, "error", err)
		return
	}
	if n == 0 || alreadyExpired {
		return
	}

	row, err := d.db.CollisionEvent.Query().
		Where(collisionevent.PairKeyEQ(pairKey)).
		Only(ctx)
	if err != nil {
		return
	}
	slog.Info("Collision expired by inactivity", "pair_key", pairKey)
	ev := observer.NewEvent(observer.EventCollisionExpired, row.User1ID)
	ev.RelatedUserID = row.User2ID
	ev.CircleID = row.Circle1ID
	ev.Metadata = map[string]any{"pair_key": pairKey, "reason": "inactivity"}
	d.bus.Emit(ev)
}

func (d *Detector) dropFromSchedule(ctx context.Context, pairKey string) {
	if err := d.kv.ZRem(ctx, stabilityQueueKey, pairKey); err != nil {
		slog.Warn("Failed to remove pair from stability queue", "pair_key", pairKey, "error", err)
	}
}

// collisionFromRow rebuilds a DetectedCollision for a scheduled promotion
// from the durable row, preferring the fresher distance in the hash.
func (d *Detector) collisionFromRow(ctx context.Context, pairKey string, fields map[string]string) (models.DetectedCollision, bool) {
	row, err := d.db.CollisionEvent.Query().
		Where(collisionevent.PairKeyEQ(pairKey)).
		Only(ctx)
	if err != nil {
		slog.Warn("No collision row behind scheduled pair", "pair_key", pairKey, "error", err)
		return models.DetectedCollision{}, false
	}

	distance := row.DistanceMeters
	if raw := fields["distance"]; raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			distance = v
		}
	}

	return models.DetectedCollision{
		Circle1ID:      row.Circle1ID,
		Circle2ID:      row.Circle2ID,
		User1ID:        row.User1ID,
		User2ID:        row.User2ID,
		DistanceMeters: distance,
		Timestamp:      time.Now().UTC(),
	}, true
}
