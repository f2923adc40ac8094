package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/agentmatch"
	"github.com/venn-social/vennd/pkg/interview"
	"github.com/venn-social/vennd/pkg/observer"
)

// driveToMatch pushes a fresh pair through the whole pipeline until the
// match row exists: collide, rewind the stability window, promote with one
// more sighting, and wait for the worker to finish the interview.
func driveToMatch(t *testing.T, app *TestApp, a, b Member, lat, lon float64) (*ent.InterviewMission, *ent.Match) {
	t.Helper()
	pairKey := CirclePairKey(a, b)

	app.SendLocation(t, b.UserID, lat, lon)
	res := app.SendLocation(t, a.UserID, lat+0.0001, lon)
	require.Equal(t, 1, res.CollisionsDetected)

	app.BackdateFirstSeen(t, pairKey, app.Config.Collision.StabilityWindow+time.Second)
	res = app.SendLocation(t, a.UserID, lat+0.00011, lon)
	require.Equal(t, 1, res.CollisionsDetected)

	mission := app.WaitForMissionTerminal(t, pairKey)
	require.Equal(t, interviewmission.StatusCompleted, mission.Status)
	return mission, app.WaitForMatch(t, mission.ID)
}

// ────────────────────────────────────────────────────────────
// Scenario 1: Judge Says No — Completed Mission, No Match
// ────────────────────────────────────────────────────────────

func TestE2E_NoMatchVerdict(t *testing.T) {
	app := NewTestApp(t, WithVerdict(interview.JudgeVerdict{
		ShouldNotify: false,
		SummaryText:  "objectives do not overlap",
	}))

	cam := app.SeedMember(t, "cam", "chess in the park", 100)
	dee := app.SeedMember(t, "dee", "looking for a running club", 100)
	pairKey := CirclePairKey(cam, dee)

	app.SendLocation(t, dee.UserID, 40.7580, -73.9855)
	res := app.SendLocation(t, cam.UserID, 40.7581, -73.9855)
	require.Equal(t, 1, res.CollisionsDetected)

	app.BackdateFirstSeen(t, pairKey, app.Config.Collision.StabilityWindow+time.Second)
	app.SendLocation(t, cam.UserID, 40.75811, -73.9855)

	mission := app.WaitForMissionTerminal(t, pairKey)
	assert.Equal(t, interviewmission.StatusCompleted, mission.Status)
	assert.Len(t, mission.Transcript, 4)

	// No match row, nothing delivered.
	assert.Zero(t, app.MatchCount(t, mission.ID))
	assert.Empty(t, app.Gateway.Deliveries())

	// The completion event trails the cooldown and lock release, so once it
	// is on the stream both are settled.
	app.WaitForEvents(t, observer.EventMissionCompleted, 1)
	assert.Empty(t, app.EventsOnStream(observer.EventMatchCreated))

	cooling, cooldownType, err := app.MatchService.CheckCooldown(context.Background(), cam.UserID, dee.UserID)
	require.NoError(t, err)
	assert.True(t, cooling)
	assert.Equal(t, agentmatch.CooldownNotified, cooldownType)
	app.AssertInFlightLockReleased(t, pairKey)

	// The collision row keeps its handoff status; only the max-age sweep
	// will ever retire it.
	assert.Equal(t, collisionevent.StatusMissionCreated, app.QueryCollision(t, pairKey).Status)
}

// ────────────────────────────────────────────────────────────
// Scenario 2: Agent Runtime Down — Mission Fails, Pair Cools Down
// ────────────────────────────────────────────────────────────

func TestE2E_AgentRuntimeDown(t *testing.T) {
	app := NewTestApp(t, WithRuntimeDown())

	eli := app.SeedMember(t, "eli", "pickup basketball", 120)
	fay := app.SeedMember(t, "fay", "casual hoops after work", 120)
	pairKey := CirclePairKey(eli, fay)

	app.SendLocation(t, fay.UserID, 34.0522, -118.2437)
	res := app.SendLocation(t, eli.UserID, 34.0523, -118.2437)
	require.Equal(t, 1, res.CollisionsDetected)

	app.BackdateFirstSeen(t, pairKey, app.Config.Collision.StabilityWindow+time.Second)
	app.SendLocation(t, eli.UserID, 34.05231, -118.2437)

	mission := app.WaitForMissionTerminal(t, pairKey)
	assert.Equal(t, interviewmission.StatusFailed, mission.Status)
	require.NotNil(t, mission.FailureReason)
	assert.Contains(t, *mission.FailureReason, "owner turn 1")
	assert.Contains(t, *mission.FailureReason, "agent runtime unreachable")

	// Initial call plus one retry, then the runner gave up before the
	// visitor or the judge ever spoke.
	assert.Equal(t, 2, app.Runtime.OwnerCalls())
	assert.Zero(t, app.Runtime.VisitorCalls())
	assert.Zero(t, app.Judge.Calls())

	assert.Zero(t, app.MatchCount(t, mission.ID))
	assert.Empty(t, app.Gateway.Deliveries())

	// A failed mission still consumed the pair's attempt: notified cooldown,
	// lock released.
	app.WaitForEvents(t, observer.EventMissionFailed, 1)
	cooling, cooldownType, err := app.MatchService.CheckCooldown(context.Background(), eli.UserID, fay.UserID)
	require.NoError(t, err)
	assert.True(t, cooling)
	assert.Equal(t, agentmatch.CooldownNotified, cooldownType)
	app.AssertInFlightLockReleased(t, pairKey)
}

// ────────────────────────────────────────────────────────────
// Scenario 3: Owner Agent Ends the Interview Early
// ────────────────────────────────────────────────────────────

func TestE2E_OwnerEndsInterviewEarly(t *testing.T) {
	app := NewTestApp(t)
	app.Runtime.StopOwnerAfter(1)

	gil := app.SeedMember(t, "gil", "board game night", 100)
	hana := app.SeedMember(t, "hana", "looking for game groups", 100)

	mission, m := driveToMatch(t, app, gil, hana, 51.5074, -0.1278)

	// The owner bowed out on its first question; the visitor never spoke,
	// and the judge ruled on a one-turn transcript.
	assert.Len(t, mission.Transcript, 1)
	assert.Equal(t, 1, app.Runtime.OwnerCalls())
	assert.Zero(t, app.Runtime.VisitorCalls())
	assert.Equal(t, 1, app.Judge.Calls())
	assert.Len(t, app.Judge.LastInput().Transcript, 1)

	// A short conversation is still a conversation: the verdict stands.
	assert.Equal(t, match.StatusPendingAccept, m.Status)
}

// ────────────────────────────────────────────────────────────
// Scenario 4: Participant Accepts the Match
// ────────────────────────────────────────────────────────────

func TestE2E_AcceptMatch(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	ivy := app.SeedMember(t, "ivy", "morning yoga buddies", 100)
	jon := app.SeedMember(t, "jon", "trying to stick to a yoga habit", 100)

	_, m := driveToMatch(t, app, ivy, jon, 48.8566, 2.3522)

	// Outsiders cannot act on the match.
	_, err := app.MatchService.AcceptMatch(ctx, agentmatch.MatchActionInput{
		MatchID:      m.ID,
		ActingUserID: "stranger",
	})
	assert.ErrorIs(t, err, agentmatch.ErrNotParticipant)

	// Either participant may answer; the visitor side accepts.
	accepted, err := app.MatchService.AcceptMatch(ctx, agentmatch.MatchActionInput{
		MatchID:      m.ID,
		ActingUserID: jon.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, match.StatusActive, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)

	// A second response finds the match already resolved.
	_, err = app.MatchService.DeclineMatch(ctx, agentmatch.MatchActionInput{
		MatchID:      m.ID,
		ActingUserID: ivy.UserID,
	})
	assert.ErrorIs(t, err, agentmatch.ErrMatchClosed)

	app.WaitForEvents(t, observer.EventMatchAccepted, 1)
}

// ────────────────────────────────────────────────────────────
// Scenario 5: Declined Match Cools the User Pair Down
// ────────────────────────────────────────────────────────────

func TestE2E_DeclineBlocksNextMission(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	kim := app.SeedMember(t, "kim", "jazz jam sessions", 100)
	lou := app.SeedMember(t, "lou", "looking for a sax player", 100)

	_, m := driveToMatch(t, app, kim, lou, 41.8781, -87.6298)

	declined, err := app.MatchService.DeclineMatch(ctx, agentmatch.MatchActionInput{
		MatchID:      m.ID,
		ActingUserID: lou.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, match.StatusDeclined, declined.Status)
	require.NotNil(t, declined.RespondedAt)
	app.WaitForEvents(t, observer.EventMatchRejected, 1)

	// The declined cooldown replaces the matched one on the user pair.
	cooling, cooldownType, err := app.MatchService.CheckCooldown(ctx, kim.UserID, lou.UserID)
	require.NoError(t, err)
	assert.True(t, cooling)
	assert.Equal(t, agentmatch.CooldownDeclined, cooldownType)

	// The same users meet again through fresh circles. Detection and
	// stability run as usual, but the launcher refuses the handoff: the
	// pair stays stable with no mission.
	app.RetireCircles(t, kim, lou)
	kim2 := app.SeedCircle(t, kim, "kim-second", "weekend hikes", 100)
	lou2 := app.SeedCircle(t, lou, "lou-second", "hiking pals", 100)
	pairKey2 := CirclePairKey(kim2, lou2)

	app.SendLocation(t, lou.UserID, 41.8790, -87.6298)
	res := app.SendLocation(t, kim.UserID, 41.8791, -87.6298)
	require.Equal(t, 1, res.CollisionsDetected)

	app.BackdateFirstSeen(t, pairKey2, app.Config.Collision.StabilityWindow+time.Second)
	res = app.SendLocation(t, kim.UserID, 41.87911, -87.6298)
	require.Equal(t, 1, res.CollisionsDetected)

	assert.Zero(t, app.MissionCount(t, pairKey2))
	assert.Equal(t, collisionevent.StatusStable, app.QueryCollision(t, pairKey2).Status)

	// The refused pair's transient tracking state was dropped, so the
	// scheduled sweep will not keep retrying it.
	fields, err := app.KV.HGetAll(ctx, activePairKeyPrefix+pairKey2)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

// ────────────────────────────────────────────────────────────
// Scenario 6: Scheduled Promotion — Both Members Went Quiet
// ────────────────────────────────────────────────────────────

func TestE2E_ScheduledPromotion(t *testing.T) {
	app := NewTestApp(t)

	mia := app.SeedMember(t, "mia", "dog park meetups", 100)
	ned := app.SeedMember(t, "ned", "puppy playdates", 100)
	pairKey := CirclePairKey(mia, ned)

	app.SendLocation(t, ned.UserID, 47.6062, -122.3321)
	res := app.SendLocation(t, mia.UserID, 47.6063, -122.3321)
	require.Equal(t, 1, res.CollisionsDetected)

	// Nobody sends another update. The stability sweep finds the pair due
	// and still fresh, and promotes it itself.
	app.BackdateFirstSeen(t, pairKey, app.Config.Collision.StabilityWindow+time.Second)
	app.Maintenance.RunStabilityTick(context.Background())

	mission := app.WaitForMissionTerminal(t, pairKey)
	assert.Equal(t, interviewmission.StatusCompleted, mission.Status)
	m := app.WaitForMatch(t, mission.ID)
	assert.Equal(t, match.StatusPendingAccept, m.Status)
}

// ────────────────────────────────────────────────────────────
// Scenario 7: Pair Goes Quiet Too Long — Inactivity Expiry
// ────────────────────────────────────────────────────────────

func TestE2E_InactivityExpiresPair(t *testing.T) {
	app := NewTestApp(t)

	ola := app.SeedMember(t, "ola", "photography walks", 100)
	pam := app.SeedMember(t, "pam", "street photo partners", 100)
	pairKey := CirclePairKey(ola, pam)

	app.SendLocation(t, pam.UserID, 59.9139, 10.7522)
	res := app.SendLocation(t, ola.UserID, 59.9140, 10.7522)
	require.Equal(t, 1, res.CollisionsDetected)

	// The pair drops off the map for longer than the inactivity window.
	app.MarkPairInactive(t, pairKey, app.Config.Collision.InactivityWindow+time.Second)
	app.Maintenance.RunStabilityTick(context.Background())

	assert.Equal(t, collisionevent.StatusExpired, app.QueryCollision(t, pairKey).Status)
	assert.Zero(t, app.MissionCount(t, pairKey))
	app.WaitForEvents(t, observer.EventCollisionExpired, 1)
}

// ────────────────────────────────────────────────────────────
// Scenario 8: Collision Stalls Forever — Max-Age Expiry
// ────────────────────────────────────────────────────────────

func TestE2E_MaxAgeExpiresStalledCollision(t *testing.T) {
	app := NewTestApp(t)

	raj := app.SeedMember(t, "raj", "pottery class partners", 100)
	sue := app.SeedMember(t, "sue", "learning to throw clay", 100)
	pairKey := CirclePairKey(raj, sue)

	app.SendLocation(t, sue.UserID, 35.6762, 139.6503)
	res := app.SendLocation(t, raj.UserID, 35.6763, 139.6503)
	require.Equal(t, 1, res.CollisionsDetected)

	// However the pair got stuck, after the max age the expiry sweep
	// retires the row outright.
	app.BackdateCollisionCreated(t, pairKey, app.Config.Maintenance.CollisionMaxAge+time.Hour)
	app.Maintenance.RunExpiryTick(context.Background())

	assert.Equal(t, collisionevent.StatusExpired, app.QueryCollision(t, pairKey).Status)
	app.WaitForEvents(t, observer.EventCollisionExpired, 1)
}

// ────────────────────────────────────────────────────────────
// Scenario 9: Nobody Answers — Pending Match Expires
// ────────────────────────────────────────────────────────────

func TestE2E_UnansweredMatchExpires(t *testing.T) {
	app := NewTestApp(t)

	tom := app.SeedMember(t, "tom", "language exchange over coffee", 100)
	uma := app.SeedMember(t, "uma", "practicing spanish", 100)

	_, m := driveToMatch(t, app, tom, uma, 19.4326, -99.1332)

	// Both participants sit on the notification past the response window.
	app.BackdateMatchCreated(t, m.ID, app.Config.Maintenance.MatchPendingMaxAge+time.Minute)
	app.Maintenance.RunExpiryTick(context.Background())

	app.WaitForMatchStatus(t, m.ID, match.StatusExpired)
	app.WaitForEvents(t, observer.EventMatchExpired, 1)

	// An expired match can no longer be answered.
	_, err := app.MatchService.AcceptMatch(context.Background(), agentmatch.MatchActionInput{
		MatchID:      m.ID,
		ActingUserID: tom.UserID,
	})
	assert.ErrorIs(t, err, agentmatch.ErrMatchClosed)
}
