// Package agentmatch orchestrates the road from stable collisions to
// matches: it gates circle pairs (cooldowns, single-flight lock,
// live-mission uniqueness), creates interview missions, applies mission
// results reported by the queue, and handles user responses to matches.
package agentmatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
)

const inflightLockPrefix = "mission:inflight:"

// Notifier delivers match notifications to users. Implementations are
// fail-open: delivery problems are logged, never surfaced.
type Notifier interface {
	NotifySuccessfulInteraction(ctx context.Context, m *ent.Match, notification string)
}

// MatchActionInput identifies a match action and who is taking it.
type MatchActionInput struct {
	MatchID      string
	ActingUserID string
}

// Service implements agent-match orchestration.
type Service struct {
	client   *ent.Client
	kv       kvstore.Store
	bus      *observer.Bus
	cfg      *config.AgentMatchConfig
	notifier Notifier

	acceptMatch  func(context.Context, MatchActionInput) (*ent.Match, error)
	declineMatch func(context.Context, MatchActionInput) (*ent.Match, error)
}

// NewService creates an agent-match service. bus and notifier may be nil.
func NewService(client *ent.Client, kv kvstore.Store, bus *observer.Bus, cfg *config.AgentMatchConfig, notifier Notifier) *Service {
	if client == nil {
		panic("NewService: client must not be nil")
	}
	if kv == nil {
		panic("NewService: kv must not be nil")
	}
	if cfg == nil {
		panic("NewService: cfg must not be nil")
	}
	s := &Service{
		client:   client,
		kv:       kv,
		bus:      bus,
		cfg:      cfg,
		notifier: notifier,
	}

	s.acceptMatch = observer.Instrument(bus, observer.Hook[MatchActionInput, *ent.Match]{
		Type: observer.EventMatchAccepted,
		UserID: func(req MatchActionInput, _ *ent.Match) string {
			return req.ActingUserID
		},
		RelatedUserID: func(req MatchActionInput, res *ent.Match) string {
			return otherParticipant(res, req.ActingUserID)
		},
		Metadata: matchActionMetadata,
	}, s.doAcceptMatch)

	s.declineMatch = observer.Instrument(bus, observer.Hook[MatchActionInput, *ent.Match]{
		Type: observer.EventMatchRejected,
		UserID: func(req MatchActionInput, _ *ent.Match) string {
			return req.ActingUserID
		},
		RelatedUserID: func(req MatchActionInput, res *ent.Match) string {
			return otherParticipant(res, req.ActingUserID)
		},
		Metadata: matchActionMetadata,
	}, s.doDeclineMatch)

	return s
}

func otherParticipant(m *ent.Match, actingUserID string) string {
	if m == nil {
		return ""
	}
	if m.PrimaryUserID == actingUserID {
		return m.SecondaryUserID
	}
	return m.PrimaryUserID
}

func matchActionMetadata(req MatchActionInput, res *ent.Match, _ error) map[string]any {
	md := map[string]any{"match_id": req.MatchID}
	if res != nil {
		md["match_type"] = string(res.Type)
	}
	return md
}

// CreateMissionForCollision turns a stable collision into a queued interview
// mission. Three gates run in order: the user-pair cooldown, the per-pair
// single-flight lock, and the live-mission uniqueness constraint; refusals
// wrap collision.ErrMissionDenied. Inserting the row with status=pending IS
// the enqueue; the mission id doubles as the idempotency key.
func (s *Service) CreateMissionForCollision(ctx context.Context, dc models.DetectedCollision) (*ent.InterviewMission, error) {
	cooling, cooldownType, err := s.CheckCooldown(ctx, dc.User1ID, dc.User2ID)
	if err != nil {
		return nil, err
	}
	if cooling {
		slog.Debug("Mission denied by cooldown",
			"user1_id", dc.User1ID, "user2_id", dc.User2ID, "cooldown_type", string(cooldownType))
		return nil, ErrCooldownActive
	}

	pairKey := geo.PairKey(dc.Circle1ID, dc.Circle2ID)
	missionID := uuid.New().String()

	acquired, err := s.kv.SetNX(ctx, inflightLockPrefix+pairKey, missionID, s.cfg.InFlightLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire in-flight lock: %w", err)
	}
	if !acquired {
		return nil, ErrPairInFlight
	}

	mission, err := s.insertMission(ctx, missionID, pairKey, dc)
	if err != nil {
		s.releaseInFlightLock(ctx, pairKey)
		return nil, err
	}

	slog.Info("Interview mission created",
		"mission_id", mission.ID,
		"circle_pair_key", pairKey,
		"owner_user_id", mission.OwnerUserID,
		"visitor_user_id", mission.VisitorUserID)

	ev := observer.NewEvent(observer.EventMissionCreated, mission.OwnerUserID)
	ev.RelatedUserID = mission.VisitorUserID
	ev.CircleID = mission.OwnerCircleID
	ev.Metadata = map[string]any{
		"mission_id":      mission.ID,
		"circle_pair_key": pairKey,
		"distance_meters": dc.DistanceMeters,
	}
	s.bus.Emit(ev)

	return mission, nil
}

// insertMission loads the pair context, then atomically creates the mission
// row and claims the collision row. The payload carries everything the
// executor needs so the worker never re-reads user or circle rows.
func (s *Service) insertMission(ctx context.Context, missionID, pairKey string, dc models.DetectedCollision) (*ent.InterviewMission, error) {
	// Owner side is the canonical first circle of the pair.
	owner, err := s.client.User.Get(ctx, dc.User1ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner %s: %w", dc.User1ID, err)
	}
	visitor, err := s.client.User.Get(ctx, dc.User2ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visitor %s: %w", dc.User2ID, err)
	}
	ownerCircle, err := s.client.Circle.Get(ctx, dc.Circle1ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load circle %s: %w", dc.Circle1ID, err)
	}

	payload := models.MissionPayload{
		MissionID:      missionID,
		OwnerUserID:    owner.ID,
		VisitorUserID:  visitor.ID,
		OwnerProfile:   owner.Profile,
		VisitorProfile: visitor.Profile,
		OwnerCircle: models.CircleContext{
			CircleID:     ownerCircle.ID,
			Objective:    ownerCircle.Objective,
			RadiusMeters: ownerCircle.RadiusMeters,
		},
		Context: map[string]any{"distance_meters": dc.DistanceMeters},
	}
	payloadMap, err := payload.AsMap()
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ce, err := tx.CollisionEvent.Query().
		Where(collisionevent.PairKeyEQ(pairKey)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load collision event for %s: %w", pairKey, err)
	}

	mission, err := tx.InterviewMission.Create().
		SetID(missionID).
		SetCollisionEventID(ce.ID).
		SetOwnerUserID(owner.ID).
		SetVisitorUserID(visitor.ID).
		SetOwnerCircleID(dc.Circle1ID).
		SetVisitorCircleID(dc.Circle2ID).
		SetCirclePairKey(pairKey).
		SetStatus(interviewmission.StatusPending).
		SetAttemptNumber(1).
		SetPayload(payloadMap).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The partial unique index caught a live mission that predates
			// the lock (a previous holder's lock expired mid-run).
			return nil, ErrPairAlreadyQueued
		}
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	n, err := tx.CollisionEvent.Update().
		Where(
			collisionevent.IDEQ(ce.ID),
			collisionevent.StatusIn(collisionevent.StatusDetecting, collisionevent.StatusStable),
		).
		SetStatus(collisionevent.StatusMissionCreated).
		SetMissionID(missionID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim collision event: %w", err)
	}
	if n == 0 {
		return nil, ErrPairNotEligible
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit mission: %w", err)
	}
	return mission, nil
}

// HandleMissionResult applies a mission outcome reported by the queue,
// exactly once per mission: transitions are status-gated, so a redelivered
// result acknowledges without re-applying. An unknown mission id is a
// programmer error and comes back as ErrMissionNotFound.
func (s *Service) HandleMissionResult(ctx context.Context, missionID string, result models.MissionResult) (*ent.Match, error) {
	if missionID == "" {
		return nil, NewValidationError("mission_id", "required")
	}

	mission, err := s.client.InterviewMission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to load mission %s: %w", missionID, err)
	}

	if !result.Success {
		return nil, s.failMission(ctx, mission, result)
	}
	if result.MatchMade {
		return s.completeMissionWithMatch(ctx, mission, result)
	}
	return nil, s.completeMissionNoMatch(ctx, mission, result)
}

func (s *Service) failMission(ctx context.Context, mission *ent.InterviewMission, result models.MissionResult) error {
	update := s.client.InterviewMission.Update().
		Where(
			interviewmission.IDEQ(mission.ID),
			interviewmission.StatusIn(interviewmission.StatusPending, interviewmission.StatusRunning),
		).
		SetStatus(interviewmission.StatusFailed).
		SetFailureReason(result.Error).
		SetCompletedAt(time.Now().UTC())
	if len(result.Transcript) > 0 {
		turns, err := models.TranscriptAsMaps(result.Transcript)
		if err != nil {
			return err
		}
		update.SetTranscript(turns)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark mission failed: %w", err)
	}
	if n == 0 {
		slog.Info("Mission already terminal, failure result acknowledged", "mission_id", mission.ID)
		return nil
	}

	s.setCooldownBestEffort(ctx, mission.OwnerUserID, mission.VisitorUserID, CooldownNotified)
	s.releaseInFlightLock(ctx, mission.CirclePairKey)

	slog.Warn("Interview mission failed", "mission_id", mission.ID, "error", result.Error)
	ev := observer.NewEvent(observer.EventMissionFailed, mission.OwnerUserID)
	ev.RelatedUserID = mission.VisitorUserID
	ev.CircleID = mission.OwnerCircleID
	ev.Metadata = map[string]any{"mission_id": mission.ID, "error": result.Error}
	s.bus.Emit(ev)
	return nil
}

func (s *Service) completeMissionNoMatch(ctx context.Context, mission *ent.InterviewMission, result models.MissionResult) error {
	update, err := missionCompletionUpdate(s.client.InterviewMission.Update(), mission.ID, result)
	if err != nil {
		return err
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark mission completed: %w", err)
	}
	if n == 0 {
		slog.Info("Mission already terminal, result acknowledged", "mission_id", mission.ID)
		return nil
	}

	s.setCooldownBestEffort(ctx, mission.OwnerUserID, mission.VisitorUserID, CooldownNotified)
	s.releaseInFlightLock(ctx, mission.CirclePairKey)

	slog.Info("Interview mission completed without a match", "mission_id", mission.ID)
	ev := observer.NewEvent(observer.EventMissionCompleted, mission.OwnerUserID)
	ev.RelatedUserID = mission.VisitorUserID
	ev.CircleID = mission.OwnerCircleID
	ev.Metadata = map[string]any{"mission_id": mission.ID, "match_made": false}
	s.bus.Emit(ev)
	return nil
}

func (s *Service) completeMissionWithMatch(ctx context.Context, mission *ent.InterviewMission, result models.MissionResult) (*ent.Match, error) {
	decision := result.JudgeDecision
	score := s.cfg.DefaultWorthItScore
	matchType := match.TypeMatch
	explanation := ""
	notification := ""
	if decision != nil {
		if decision.Confidence != nil {
			score = *decision.Confidence
		}
		if decision.SoftMatch {
			matchType = match.TypeSoftMatch
		}
		explanation = decision.Reason
		notification = decision.Notification
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update, err := missionCompletionUpdate(tx.InterviewMission.Update(), mission.ID, result)
	if err != nil {
		return nil, err
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark mission completed: %w", err)
	}
	if n == 0 {
		// Redelivered result for an already-completed mission: hand back
		// whatever that run produced.
		existing, err := s.client.Match.Query().
			Where(match.MissionIDEQ(mission.ID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to load existing match: %w", err)
		}
		slog.Info("Mission already terminal, match result acknowledged",
			"mission_id", mission.ID, "match_id", existing.ID)
		return existing, nil
	}

	builder := tx.Match.Create().
		SetID(uuid.New().String()).
		SetMissionID(mission.ID).
		SetPrimaryUserID(mission.OwnerUserID).
		SetSecondaryUserID(mission.VisitorUserID).
		SetPrimaryCircleID(mission.OwnerCircleID).
		SetSecondaryCircleID(mission.VisitorCircleID).
		SetType(matchType).
		SetWorthItScore(score).
		SetStatus(match.StatusPendingAccept)
	if explanation != "" {
		builder.SetExplanationSummary(explanation)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	// The collision row reaches its terminal status alongside the match.
	_, err = tx.CollisionEvent.Update().
		Where(
			collisionevent.IDEQ(mission.CollisionEventID),
			collisionevent.StatusEQ(collisionevent.StatusMissionCreated),
		).
		SetStatus(collisionevent.StatusMatched).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close collision event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit match: %w", err)
	}

	s.setCooldownBestEffort(ctx, mission.OwnerUserID, mission.VisitorUserID, CooldownMatched)
	s.releaseInFlightLock(ctx, mission.CirclePairKey)

	slog.Info("Match created",
		"match_id", created.ID,
		"mission_id", mission.ID,
		"match_type", string(matchType),
		"worth_it_score", score)

	ev := observer.NewEvent(observer.EventMatchCreated, created.PrimaryUserID)
	ev.RelatedUserID = created.SecondaryUserID
	ev.CircleID = created.PrimaryCircleID
	ev.Metadata = map[string]any{
		"match_id":       created.ID,
		"mission_id":     mission.ID,
		"match_type":     string(matchType),
		"worth_it_score": score,
	}
	s.bus.Emit(ev)

	if s.notifier != nil {
		s.notifier.NotifySuccessfulInteraction(ctx, created, notification)
	}
	return created, nil
}

// missionCompletionUpdate builds the status-gated completion transition,
// attaching the transcript and judge decision when present.
func missionCompletionUpdate(u *ent.InterviewMissionUpdate, missionID string, result models.MissionResult) (*ent.InterviewMissionUpdate, error) {
	u.Where(
		interviewmission.IDEQ(missionID),
		interviewmission.StatusIn(interviewmission.StatusPending, interviewmission.StatusRunning),
	).
		SetStatus(interviewmission.StatusCompleted).
		SetCompletedAt(time.Now().UTC())
	if len(result.Transcript) > 0 {
		turns, err := models.TranscriptAsMaps(result.Transcript)
		if err != nil {
			return nil, err
		}
		u.SetTranscript(turns)
	}
	if result.JudgeDecision != nil {
		dm, err := result.JudgeDecision.AsMap()
		if err != nil {
			return nil, err
		}
		u.SetJudgeDecision(dm)
	}
	return u, nil
}

// AcceptMatch moves a pending match to active on behalf of a participant.
func (s *Service) AcceptMatch(ctx context.Context, input MatchActionInput) (*ent.Match, error) {
	return s.acceptMatch(ctx, input)
}

// DeclineMatch closes a pending match on behalf of a participant and starts
// the declined cooldown on the user pair.
func (s *Service) DeclineMatch(ctx context.Context, input MatchActionInput) (*ent.Match, error) {
	return s.declineMatch(ctx, input)
}

func (s *Service) doAcceptMatch(ctx context.Context, input MatchActionInput) (*ent.Match, error) {
	m, err := s.loadMatchForAction(ctx, input)
	if err != nil {
		return nil, err
	}

	n, err := s.client.Match.Update().
		Where(match.IDEQ(m.ID), match.StatusEQ(match.StatusPendingAccept)).
		SetStatus(match.StatusActive).
		SetRespondedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to accept match: %w", err)
	}
	if n == 0 {
		return nil, ErrMatchClosed
	}

	slog.Info("Match accepted", "match_id", m.ID, "acting_user_id", input.ActingUserID)
	return s.client.Match.Get(ctx, m.ID)
}

func (s *Service) doDeclineMatch(ctx context.Context, input MatchActionInput) (*ent.Match, error) {
	m, err := s.loadMatchForAction(ctx, input)
	if err != nil {
		return nil, err
	}

	n, err := s.client.Match.Update().
		Where(match.IDEQ(m.ID), match.StatusEQ(match.StatusPendingAccept)).
		SetStatus(match.StatusDeclined).
		SetRespondedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decline match: %w", err)
	}
	if n == 0 {
		return nil, ErrMatchClosed
	}

	s.setCooldownBestEffort(ctx, m.PrimaryUserID, m.SecondaryUserID, CooldownDeclined)

	slog.Info("Match declined", "match_id", m.ID, "acting_user_id", input.ActingUserID)
	return s.client.Match.Get(ctx, m.ID)
}

func (s *Service) loadMatchForAction(ctx context.Context, input MatchActionInput) (*ent.Match, error) {
	if input.MatchID == "" {
		return nil, NewValidationError("match_id", "required")
	}
	if input.ActingUserID == "" {
		return nil, NewValidationError("acting_user_id", "required")
	}

	m, err := s.client.Match.Get(ctx, input.MatchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %s: %w", input.MatchID, err)
	}
	if input.ActingUserID != m.PrimaryUserID && input.ActingUserID != m.SecondaryUserID {
		return nil, ErrNotParticipant
	}
	return m, nil
}

func (s *Service) releaseInFlightLock(ctx context.Context, circlePairKey string) {
	if err := s.kv.Del(ctx, inflightLockPrefix+circlePairKey); err != nil {
		slog.Warn("Failed to release in-flight lock", "circle_pair_key", circlePairKey, "error", err)
	}
}
