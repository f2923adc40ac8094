// Package maintenance runs the background sweepers that keep pipeline
// state from going stale: scheduled stability promotion for collision
// pairs whose owners stopped moving, and expiry of collision events and
// matches that never reached a terminal state.
//
// All sweeps are idempotent and safe to run from multiple pods; row
// transitions are status-gated so concurrent sweepers cannot double-apply.
package maintenance

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/collision"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/observer"
)

// StabilitySweeper advances collision pairs whose stability window elapsed
// between location updates. Satisfied by *collision.Detector.
type StabilitySweeper interface {
	RunScheduledPromotion(ctx context.Context) (collision.SweepStats, error)
}

// Service owns the stability and expiry sweeper loops.
type Service struct {
	cfg     *config.MaintenanceConfig
	client  *ent.Client
	sweeper StabilitySweeper
	bus     *observer.Bus

	// Each sweeper skips its tick while the previous run is in flight.
	stabilityBusy atomic.Bool
	expiryBusy    atomic.Bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a maintenance service. bus may be nil.
func NewService(client *ent.Client, sweeper StabilitySweeper, bus *observer.Bus, cfg *config.MaintenanceConfig) *Service {
	if client == nil {
		panic("NewService: client must not be nil")
	}
	if sweeper == nil {
		panic("NewService: sweeper must not be nil")
	}
	if cfg == nil {
		panic("NewService: cfg must not be nil")
	}
	return &Service{
		cfg:     cfg,
		client:  client,
		sweeper: sweeper,
		bus:     bus,
	}
}

// Start launches the sweeper loops.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(2)
	go s.runStabilityLoop(ctx)
	go s.runExpiryLoop(ctx)

	slog.Info("Maintenance service started",
		"stability_interval", s.cfg.StabilityInterval,
		"expiry_interval", s.cfg.ExpiryInterval,
		"collision_max_age", s.cfg.CollisionMaxAge,
		"match_pending_max_age", s.cfg.MatchPendingMaxAge)
}

// Stop signals the sweeper loops to exit and waits for them to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("Maintenance service stopped")
}

func (s *Service) runStabilityLoop(ctx context.Context) {
	defer s.wg.Done()

	s.RunStabilityTick(ctx)

	ticker := time.NewTicker(s.cfg.StabilityInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunStabilityTick(ctx)
		}
	}
}

func (s *Service) runExpiryLoop(ctx context.Context) {
	defer s.wg.Done()

	s.RunExpiryTick(ctx)

	ticker := time.NewTicker(s.cfg.ExpiryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunExpiryTick(ctx)
		}
	}
}

// RunStabilityTick runs one scheduled promotion pass, unless the previous
// pass is still in flight.
func (s *Service) RunStabilityTick(ctx context.Context) {
	if !s.stabilityBusy.CompareAndSwap(false, true) {
		slog.Debug("Stability sweep still running, skipping tick")
		return
	}
	defer s.stabilityBusy.Store(false)

	stats, err := s.sweeper.RunScheduledPromotion(ctx)
	if err != nil {
		slog.Error("Stability sweep failed", "error", err)
		return
	}
	if stats.Due > 0 {
		slog.Info("Stability sweep finished",
			"due", stats.Due,
			"promoted", stats.Promoted,
			"expired", stats.Expired,
			"stale", stats.Stale)
	}
}

// RunExpiryTick runs one expiry pass over collision events and matches,
// unless the previous pass is still in flight.
func (s *Service) RunExpiryTick(ctx context.Context) {
	if !s.expiryBusy.CompareAndSwap(false, true) {
		slog.Debug("Expiry sweep still running, skipping tick")
		return
	}
	defer s.expiryBusy.Store(false)

	s.expireStaleCollisions(ctx)
	s.expireUnansweredMatches(ctx)
}

// expireStaleCollisions expires collision rows past the max age that never
// reached a terminal state. Pairs already matched keep their status.
func (s *Service) expireStaleCollisions(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.cfg.CollisionMaxAge)

	rows, err := s.client.CollisionEvent.Query().
		Where(
			collisionevent.CreatedAtLT(cutoff),
			collisionevent.StatusNotIn(collisionevent.StatusExpired, collisionevent.StatusMatched),
		).
		All(ctx)
	if err != nil {
		slog.Error("Expiry sweep: collision scan failed", "error", err)
		return
	}

	expired := 0
	for _, row := range rows {
		n, err := s.client.CollisionEvent.Update().
			Where(
				collisionevent.IDEQ(row.ID),
				collisionevent.StatusNotIn(collisionevent.StatusExpired, collisionevent.StatusMatched),
			).
			SetStatus(collisionevent.StatusExpired).
			Save(ctx)
		if err != nil {
			slog.Warn("Expiry sweep: failed to expire collision",
				"pair_key", row.PairKey,
				"error", err)
			continue
		}
		if n == 0 {
			// Another pod or an inline transition got there first.
			continue
		}
		expired++

		ev := observer.NewEvent(observer.EventCollisionExpired, row.User1ID)
		ev.RelatedUserID = row.User2ID
		ev.CircleID = row.Circle1ID
		ev.Metadata = map[string]any{"pair_key": row.PairKey, "reason": "max_age"}
		s.bus.Emit(ev)
	}

	if expired > 0 {
		slog.Info("Expiry sweep: expired stale collisions", "count", expired)
	}
}

// expireUnansweredMatches expires pending matches past the response window.
func (s *Service) expireUnansweredMatches(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.cfg.MatchPendingMaxAge)

	rows, err := s.client.Match.Query().
		Where(
			match.StatusEQ(match.StatusPendingAccept),
			match.CreatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Expiry sweep: match scan failed", "error", err)
		return
	}

	expired := 0
	for _, row := range rows {
		n, err := s.client.Match.Update().
			Where(
				match.IDEQ(row.ID),
				match.StatusEQ(match.StatusPendingAccept),
			).
			SetStatus(match.StatusExpired).
			Save(ctx)
		if err != nil {
			slog.Warn("Expiry sweep: failed to expire match",
				"match_id", row.ID,
				"error", err)
			continue
		}
		if n == 0 {
			// A participant responded between the scan and the update.
			continue
		}
		expired++

		ev := observer.NewEvent(observer.EventMatchExpired, row.PrimaryUserID)
		ev.RelatedUserID = row.SecondaryUserID
		ev.CircleID = row.PrimaryCircleID
		ev.Metadata = map[string]any{
			"match_id":   row.ID,
			"match_type": string(row.Type),
		}
		s.bus.Emit(ev)
	}

	if expired > 0 {
		slog.Info("Expiry sweep: expired unanswered matches", "count", expired)
	}
}
