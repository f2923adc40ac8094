package agentmatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/collision"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/database"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
	testdb "github.com/venn-social/vennd/test/database"
)

// recordingNotifier captures match notifications handed to the gateway.
type recordingNotifier struct {
	mu      sync.Mutex
	matches []*ent.Match
	notes   []string
}

func (n *recordingNotifier) NotifySuccessfulInteraction(_ context.Context, m *ent.Match, note string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matches = append(n.matches, m)
	n.notes = append(n.notes, note)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.matches)
}

// pairFixture is a fully seeded circle pair with its collision row, ready
// for mission creation.
type pairFixture struct {
	Collision models.DetectedCollision
	PairKey   string
	EventID   string
}

func seedPair(t *testing.T, client *database.Client, prefix string, status collisionevent.Status) pairFixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, suffix := range []string{"a", "b"} {
		id := prefix + "-" + suffix
		_, err := client.User.Create().
			SetID(id).
			SetDisplayName("User " + id).
			SetEmail(id + "@example.com").
			SetProfile(map[string]interface{}{"interests": []string{"chess"}, "bio": "friendly"}).
			SetLastLat(40.7).
			SetLastLon(-74.0).
			SetPositionUpdatedAt(now).
			Save(ctx)
		require.NoError(t, err)

		_, err = client.Circle.Create().
			SetID(prefix + "-c" + suffix).
			SetOwnerUserID(id).
			SetObjective("find a chess partner").
			SetRadiusMeters(500).
			SetStartAt(now.Add(-time.Hour)).
			SetExpiresAt(now.Add(time.Hour)).
			Save(ctx)
		require.NoError(t, err)
	}

	circle1, circle2 := prefix+"-ca", prefix+"-cb"
	pairKey := geo.PairKey(circle1, circle2)

	ce, err := client.CollisionEvent.Create().
		SetID(uuid.New().String()).
		SetPairKey(pairKey).
		SetCircle1ID(circle1).
		SetCircle2ID(circle2).
		SetUser1ID(prefix + "-a").
		SetUser2ID(prefix + "-b").
		SetDistanceMeters(42).
		SetFirstSeenAt(now.Add(-2 * time.Minute)).
		SetLastSeenAt(now).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)

	return pairFixture{
		Collision: models.DetectedCollision{
			Circle1ID:      circle1,
			Circle2ID:      circle2,
			User1ID:        prefix + "-a",
			User2ID:        prefix + "-b",
			DistanceMeters: 42,
			Timestamp:      now,
		},
		PairKey: pairKey,
		EventID: ce.ID,
	}
}

func missionCountForPair(t *testing.T, client *database.Client, pairKey string) int {
	t.Helper()
	n, err := client.InterviewMission.Query().
		Where(interviewmission.CirclePairKeyEQ(pairKey)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestService_CreateMissionForCollision(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("creates a pending mission and claims the collision", func(t *testing.T) {
		fx := seedPair(t, client, "cm1", collisionevent.StatusStable)
		bus, busStore := newMatchEventBus(t)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, bus, config.DefaultAgentMatchConfig(), nil)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)
		require.NotNil(t, mission)

		assert.Equal(t, interviewmission.StatusPending, mission.Status)
		assert.Equal(t, 1, mission.AttemptNumber)
		assert.Equal(t, "cm1-a", mission.OwnerUserID)
		assert.Equal(t, "cm1-b", mission.VisitorUserID)
		assert.Equal(t, "cm1-ca", mission.OwnerCircleID)
		assert.Equal(t, "cm1-cb", mission.VisitorCircleID)
		assert.Equal(t, fx.PairKey, mission.CirclePairKey)

		assert.Equal(t, mission.ID, mission.Payload["mission_id"])
		assert.Equal(t, "cm1-a", mission.Payload["owner_user_id"])
		assert.Equal(t, "cm1-b", mission.Payload["visitor_user_id"])
		ownerCircle, ok := mission.Payload["owner_circle"].(map[string]any)
		require.True(t, ok, "payload carries the owner circle context")
		assert.Equal(t, "find a chess partner", ownerCircle["objective"])
		assert.NotEmpty(t, mission.Payload["owner_profile"])
		assert.NotEmpty(t, mission.Payload["visitor_profile"])

		ce, err := client.CollisionEvent.Get(ctx, fx.EventID)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusMissionCreated, ce.Status)
		require.NotNil(t, ce.MissionID)
		assert.Equal(t, mission.ID, *ce.MissionID)

		holder, err := kv.Get(ctx, "mission:inflight:"+fx.PairKey)
		require.NoError(t, err, "lock is held until the mission resolves")
		assert.Equal(t, mission.ID, holder)
		ttl, ok := kv.TTL("mission:inflight:" + fx.PairKey)
		require.True(t, ok)
		assert.Greater(t, ttl, time.Duration(0))

		stopMatchBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:agent_match.mission_created"), 1)
	})

	t.Run("denies while the pair cooldown is live", func(t *testing.T) {
		fx := seedPair(t, client, "cm2", collisionevent.StatusStable)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, config.DefaultAgentMatchConfig(), nil)

		require.NoError(t, svc.SetCooldown(ctx, "cm2-a", "cm2-b", CooldownNotified))

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		assert.Nil(t, mission)
		require.ErrorIs(t, err, ErrCooldownActive)
		assert.ErrorIs(t, err, collision.ErrMissionDenied)
		assert.Equal(t, 0, missionCountForPair(t, client, fx.PairKey))
	})

	t.Run("denies while another launcher holds the lock", func(t *testing.T) {
		fx := seedPair(t, client, "cm3", collisionevent.StatusStable)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, config.DefaultAgentMatchConfig(), nil)

		ok, err := kv.SetNX(ctx, "mission:inflight:"+fx.PairKey, "someone-else", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		assert.Nil(t, mission)
		require.ErrorIs(t, err, ErrPairInFlight)
		assert.ErrorIs(t, err, collision.ErrMissionDenied)
		assert.Equal(t, 0, missionCountForPair(t, client, fx.PairKey))
	})

	t.Run("denies when a live mission already exists", func(t *testing.T) {
		fx := seedPair(t, client, "cm4", collisionevent.StatusStable)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, config.DefaultAgentMatchConfig(), nil)

		first, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)
		require.NotNil(t, first)

		// The lock expired under the still-running mission; the partial
		// unique index is the backstop.
		require.NoError(t, kv.Del(ctx, "mission:inflight:"+fx.PairKey))

		second, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		assert.Nil(t, second)
		require.ErrorIs(t, err, ErrPairAlreadyQueued)
		assert.ErrorIs(t, err, collision.ErrMissionDenied)
		assert.Equal(t, 1, missionCountForPair(t, client, fx.PairKey))

		_, err = kv.Get(ctx, "mission:inflight:"+fx.PairKey)
		assert.ErrorIs(t, err, kvstore.ErrNotFound, "failed acquisition releases its own lock")
	})

	t.Run("denies when the collision row is past launchable", func(t *testing.T) {
		fx := seedPair(t, client, "cm5", collisionevent.StatusMatched)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, nil, config.DefaultAgentMatchConfig(), nil)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		assert.Nil(t, mission)
		require.ErrorIs(t, err, ErrPairNotEligible)
		assert.ErrorIs(t, err, collision.ErrMissionDenied)
		assert.Equal(t, 0, missionCountForPair(t, client, fx.PairKey),
			"mission insert rolls back when the collision claim fails")

		_, err = kv.Get(ctx, "mission:inflight:"+fx.PairKey)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})
}

func TestService_HandleMissionResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	makeTranscript := func() []models.TranscriptTurn {
		now := time.Now().UTC()
		return []models.TranscriptTurn{
			{Speaker: "owner_agent", Content: "What brings you here?", Timestamp: now},
			{Speaker: "visitor_agent", Content: "Looking for a chess partner.", Timestamp: now.Add(time.Second)},
		}
	}

	t.Run("failure marks the mission failed and cools the pair down", func(t *testing.T) {
		fx := seedPair(t, client, "hr1", collisionevent.StatusStable)
		bus, busStore := newMatchEventBus(t)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, bus, config.DefaultAgentMatchConfig(), nil)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)

		got, err := svc.HandleMissionResult(ctx, mission.ID, models.MissionResult{
			Success: false,
			Error:   "interview runtime unreachable",
		})
		require.NoError(t, err)
		assert.Nil(t, got)

		row, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusFailed, row.Status)
		require.NotNil(t, row.FailureReason)
		assert.Equal(t, "interview runtime unreachable", *row.FailureReason)
		assert.NotNil(t, row.CompletedAt)

		cooling, ctype, err := svc.CheckCooldown(ctx, "hr1-a", "hr1-b")
		require.NoError(t, err)
		assert.True(t, cooling)
		assert.Equal(t, CooldownNotified, ctype)

		_, err = kv.Get(ctx, "mission:inflight:"+fx.PairKey)
		assert.ErrorIs(t, err, kvstore.ErrNotFound, "failure releases the pair lock")

		stopMatchBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:agent_match.mission_failed"), 1)
	})

	t.Run("success without a match completes and cools the pair down", func(t *testing.T) {
		fx := seedPair(t, client, "hr2", collisionevent.StatusStable)
		bus, busStore := newMatchEventBus(t)
		kv := kvstore.NewMemoryStore()
		svc := NewService(client.Client, kv, bus, config.DefaultAgentMatchConfig(), nil)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)

		got, err := svc.HandleMissionResult(ctx, mission.ID, models.MissionResult{
			Success:    true,
			MatchMade:  false,
			Transcript: makeTranscript(),
			JudgeDecision: &models.JudgeDecision{
				MatchMade: false,
				Reason:    "objectives do not align",
			},
		})
		require.NoError(t, err)
		assert.Nil(t, got)

		row, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusCompleted, row.Status)
		assert.Len(t, row.Transcript, 2)
		assert.Equal(t, false, row.JudgeDecision["match_made"])
		assert.NotNil(t, row.CompletedAt)

		cooling, ctype, err := svc.CheckCooldown(ctx, "hr2-a", "hr2-b")
		require.NoError(t, err)
		assert.True(t, cooling)
		assert.Equal(t, CooldownNotified, ctype)

		_, err = kv.Get(ctx, "mission:inflight:"+fx.PairKey)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)

		matches, err := client.Match.Query().Where(match.MissionIDEQ(mission.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, matches)

		stopMatchBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:agent_match.mission_completed"), 1)
	})

	t.Run("success with a match creates a pending match", func(t *testing.T) {
		fx := seedPair(t, client, "hr3", collisionevent.StatusStable)
		bus, busStore := newMatchEventBus(t)
		kv := kvstore.NewMemoryStore()
		notifier := &recordingNotifier{}
		svc := NewService(client.Client, kv, bus, config.DefaultAgentMatchConfig(), notifier)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)

		confidence := 0.83
		created, err := svc.HandleMissionResult(ctx, mission.ID, models.MissionResult{
			Success:    true,
			MatchMade:  true,
			Transcript: makeTranscript(),
			JudgeDecision: &models.JudgeDecision{
				MatchMade:    true,
				Confidence:   &confidence,
				Reason:       "both want a weekly chess partner nearby",
				Notification: "You two should play chess sometime!",
			},
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, match.StatusPendingAccept, created.Status)
		assert.Equal(t, match.TypeMatch, created.Type)
		assert.InDelta(t, 0.83, created.WorthItScore, 1e-9)
		assert.Equal(t, "hr3-a", created.PrimaryUserID)
		assert.Equal(t, "hr3-b", created.SecondaryUserID)
		require.NotNil(t, created.ExplanationSummary)
		assert.Equal(t, "both want a weekly chess partner nearby", *created.ExplanationSummary)

		row, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusCompleted, row.Status)

		ce, err := client.CollisionEvent.Get(ctx, fx.EventID)
		require.NoError(t, err)
		assert.Equal(t, collisionevent.StatusMatched, ce.Status)

		cooling, ctype, err := svc.CheckCooldown(ctx, "hr3-a", "hr3-b")
		require.NoError(t, err)
		assert.True(t, cooling)
		assert.Equal(t, CooldownMatched, ctype)

		_, err = kv.Get(ctx, "mission:inflight:"+fx.PairKey)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)

		require.Equal(t, 1, notifier.count())
		assert.Equal(t, created.ID, notifier.matches[0].ID)
		assert.Equal(t, "You two should play chess sometime!", notifier.notes[0])

		stopMatchBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:match.created"), 1)
	})

	t.Run("judge verdict shapes match type and score", func(t *testing.T) {
		fx := seedPair(t, client, "hr4", collisionevent.StatusStable)
		cfg := config.DefaultAgentMatchConfig()
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, cfg, nil)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)

		created, err := svc.HandleMissionResult(ctx, mission.ID, models.MissionResult{
			Success:   true,
			MatchMade: true,
			JudgeDecision: &models.JudgeDecision{
				MatchMade: true,
				SoftMatch: true,
				// No confidence given.
			},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, match.TypeSoftMatch, created.Type)
		assert.InDelta(t, cfg.DefaultWorthItScore, created.WorthItScore, 1e-9)
	})

	t.Run("redelivered result acknowledges without re-applying", func(t *testing.T) {
		fx := seedPair(t, client, "hr5", collisionevent.StatusStable)
		bus, busStore := newMatchEventBus(t)
		svc := NewService(client.Client, kvstore.NewMemoryStore(), bus, config.DefaultAgentMatchConfig(), nil)

		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)

		result := models.MissionResult{
			Success:       true,
			MatchMade:     true,
			JudgeDecision: &models.JudgeDecision{MatchMade: true},
		}
		first, err := svc.HandleMissionResult(ctx, mission.ID, result)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := svc.HandleMissionResult(ctx, mission.ID, result)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID, "redelivery returns the original match")

		n, err := client.Match.Query().Where(match.MissionIDEQ(mission.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		// A late failure for the same mission is also just acknowledged.
		got, err := svc.HandleMissionResult(ctx, mission.ID, models.MissionResult{Success: false, Error: "late"})
		require.NoError(t, err)
		assert.Nil(t, got)
		row, err := client.InterviewMission.Get(ctx, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, interviewmission.StatusCompleted, row.Status)

		stopMatchBus(t, bus)
		assert.Len(t, busStore.StreamEntries("observer:events:match.created"), 1)
		assert.Empty(t, busStore.StreamEntries("observer:events:agent_match.mission_failed"))
	})

	t.Run("unknown mission id is a programmer error", func(t *testing.T) {
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultAgentMatchConfig(), nil)

		_, err := svc.HandleMissionResult(ctx, "no-such-mission", models.MissionResult{Success: true})
		assert.ErrorIs(t, err, ErrMissionNotFound)

		_, err = svc.HandleMissionResult(ctx, "", models.MissionResult{Success: true})
		assert.True(t, IsValidationError(err))
	})
}

func TestService_MatchActions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// createMatch drives the real pipeline to a pending match.
	createMatch := func(t *testing.T, svc *Service, prefix string) *ent.Match {
		t.Helper()
		fx := seedPair(t, client, prefix, collisionevent.StatusStable)
		mission, err := svc.CreateMissionForCollision(ctx, fx.Collision)
		require.NoError(t, err)
		created, err := svc.HandleMissionResult(ctx, mission.ID, models.MissionResult{
			Success:       true,
			MatchMade:     true,
			JudgeDecision: &models.JudgeDecision{MatchMade: true},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		return created
	}

	t.Run("participant accepts a pending match", func(t *testing.T) {
		bus, busStore := newMatchEventBus(t)
		svc := NewService(client.Client, kvstore.NewMemoryStore(), bus, config.DefaultAgentMatchConfig(), nil)
		m := createMatch(t, svc, "ma1")

		got, err := svc.AcceptMatch(ctx, MatchActionInput{MatchID: m.ID, ActingUserID: "ma1-a"})
		require.NoError(t, err)
		assert.Equal(t, match.StatusActive, got.Status)
		assert.NotNil(t, got.RespondedAt)

		stopMatchBus(t, bus)
		entries := busStore.StreamEntries("observer:events:match.accepted")
		require.Len(t, entries, 1)
	})

	t.Run("decline closes the match and cools the pair down", func(t *testing.T) {
		bus, busStore := newMatchEventBus(t)
		svc := NewService(client.Client, kvstore.NewMemoryStore(), bus, config.DefaultAgentMatchConfig(), nil)
		m := createMatch(t, svc, "ma2")

		// The secondary participant may act too.
		got, err := svc.DeclineMatch(ctx, MatchActionInput{MatchID: m.ID, ActingUserID: "ma2-b"})
		require.NoError(t, err)
		assert.Equal(t, match.StatusDeclined, got.Status)
		assert.NotNil(t, got.RespondedAt)

		cooling, ctype, err := svc.CheckCooldown(ctx, "ma2-a", "ma2-b")
		require.NoError(t, err)
		assert.True(t, cooling)
		assert.Equal(t, CooldownDeclined, ctype)

		stopMatchBus(t, bus)
		require.Len(t, busStore.StreamEntries("observer:events:match.rejected"), 1)
	})

	t.Run("non-participants are refused", func(t *testing.T) {
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultAgentMatchConfig(), nil)
		m := createMatch(t, svc, "ma3")

		_, err := svc.AcceptMatch(ctx, MatchActionInput{MatchID: m.ID, ActingUserID: "ma1-a"})
		assert.ErrorIs(t, err, ErrNotParticipant)

		row, err := client.Match.Get(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, match.StatusPendingAccept, row.Status)
	})

	t.Run("a resolved match refuses further responses", func(t *testing.T) {
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultAgentMatchConfig(), nil)
		m := createMatch(t, svc, "ma4")

		_, err := svc.AcceptMatch(ctx, MatchActionInput{MatchID: m.ID, ActingUserID: "ma4-a"})
		require.NoError(t, err)

		_, err = svc.DeclineMatch(ctx, MatchActionInput{MatchID: m.ID, ActingUserID: "ma4-b"})
		assert.ErrorIs(t, err, ErrMatchClosed)

		row, err := client.Match.Get(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, match.StatusActive, row.Status, "the first response stands")
	})

	t.Run("bad input is rejected up front", func(t *testing.T) {
		svc := NewService(client.Client, kvstore.NewMemoryStore(), nil, config.DefaultAgentMatchConfig(), nil)

		_, err := svc.AcceptMatch(ctx, MatchActionInput{MatchID: "", ActingUserID: "u"})
		assert.True(t, IsValidationError(err))

		_, err = svc.AcceptMatch(ctx, MatchActionInput{MatchID: "m", ActingUserID: ""})
		assert.True(t, IsValidationError(err))

		_, err = svc.AcceptMatch(ctx, MatchActionInput{MatchID: "no-such-match", ActingUserID: "u"})
		assert.True(t, errors.Is(err, ErrMatchNotFound))
	})
}

func newMatchEventBus(t *testing.T) (*observer.Bus, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	cfg := observer.DefaultConfig()
	cfg.BatchWait = 10 * time.Millisecond
	bus := observer.NewBus(cfg, store)
	bus.Start()
	return bus, store
}

func stopMatchBus(t *testing.T, bus *observer.Bus) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(ctx))
}
