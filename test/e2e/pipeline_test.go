package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/agentmatch"
	"github.com/venn-social/vennd/pkg/observer"
)

// TestE2E_MatchPipeline drives the whole road from a raw location update to
// a delivered match notification: ingestion → collision detection →
// stability promotion → mission queue → scripted interview → judge verdict
// → match row → gateway webhook, with the observer streams recording every
// hop along the way.
func TestE2E_MatchPipeline(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	// ────────────────────────────────────────────────────────────
	// Stage 1: Two members with overlapping circles send locations
	// ────────────────────────────────────────────────────────────

	ana := app.SeedMember(t, "ana", "find a climbing partner", 150)
	ben := app.SeedMember(t, "ben", "looking for boulder buddies", 200)
	pairKey := CirclePairKey(ana, ben)

	// Ben lands first; nobody else is on the map yet.
	res := app.SendLocation(t, ben.UserID, 37.7749, -122.4194)
	require.False(t, res.Skipped, "skip reason: %s", res.SkipReason)
	assert.Zero(t, res.CollisionsDetected)

	// Ana surfaces ~11m away. Both circle radii cover the gap, so detection
	// yields exactly one canonical pair.
	res = app.SendLocation(t, ana.UserID, 37.7750, -122.4194)
	require.False(t, res.Skipped, "skip reason: %s", res.SkipReason)
	require.Equal(t, 1, res.CollisionsDetected)

	ce := app.QueryCollision(t, pairKey)
	assert.Equal(t, collisionevent.StatusDetecting, ce.Status)
	assert.Equal(t, ana.CircleID, ce.Circle1ID)
	assert.Equal(t, ben.CircleID, ce.Circle2ID)
	assert.Equal(t, ana.UserID, ce.User1ID)
	assert.Equal(t, ben.UserID, ce.User2ID)

	// Still inside the stability window: no mission yet.
	assert.Zero(t, app.MissionCount(t, pairKey))

	// ────────────────────────────────────────────────────────────
	// Stage 2: The stability window elapses and a sighting promotes
	// ────────────────────────────────────────────────────────────

	app.BackdateFirstSeen(t, pairKey, app.Config.Collision.StabilityWindow+time.Second)
	res = app.SendLocation(t, ana.UserID, 37.77501, -122.4194)
	require.Equal(t, 1, res.CollisionsDetected)

	// ────────────────────────────────────────────────────────────
	// Stage 3: A worker claims the mission and runs the interview
	// ────────────────────────────────────────────────────────────

	mission := app.WaitForMissionTerminal(t, pairKey)
	assert.Equal(t, interviewmission.StatusCompleted, mission.Status)
	require.NotNil(t, mission.PodID)
	assert.Equal(t, app.PodID, *mission.PodID)
	assert.Equal(t, ana.UserID, mission.OwnerUserID)
	assert.Equal(t, ben.UserID, mission.VisitorUserID)
	// Two owner questions, two visitor answers: the runner ran to the
	// configured turn cap before calling the judge.
	assert.Len(t, mission.Transcript, 4)
	assert.NotEmpty(t, mission.JudgeDecision)
	assert.Nil(t, mission.FailureReason)

	// ────────────────────────────────────────────────────────────
	// Stage 4: The verdict becomes a pending match
	// ────────────────────────────────────────────────────────────

	m := app.WaitForMatch(t, mission.ID)
	assert.Equal(t, match.StatusPendingAccept, m.Status)
	assert.Equal(t, match.TypeMatch, m.Type)
	assert.InDelta(t, 0.8, m.WorthItScore, 1e-9)
	assert.Equal(t, ana.UserID, m.PrimaryUserID)
	assert.Equal(t, ben.UserID, m.SecondaryUserID)
	assert.Equal(t, ana.CircleID, m.PrimaryCircleID)
	assert.Equal(t, ben.CircleID, m.SecondaryCircleID)
	require.NotNil(t, m.ExplanationSummary)
	assert.Equal(t, "objectives align", *m.ExplanationSummary)
	assert.Nil(t, m.RespondedAt)

	// The durable collision row reached its terminal status and points at
	// the mission that resolved it.
	ce = app.QueryCollision(t, pairKey)
	assert.Equal(t, collisionevent.StatusMatched, ce.Status)
	require.NotNil(t, ce.MissionID)
	assert.Equal(t, mission.ID, *ce.MissionID)

	// ────────────────────────────────────────────────────────────
	// Stage 5: The gateway receives the judge's user-facing text
	// ────────────────────────────────────────────────────────────

	payload := app.Gateway.WaitForDelivery(t, 5*time.Second)
	assert.Equal(t, "match.created", payload.Event)
	assert.Equal(t, m.ID, payload.MatchID)
	assert.Equal(t, mission.ID, payload.MissionID)
	assert.Equal(t, "match", payload.MatchType)
	assert.InDelta(t, 0.8, payload.WorthItScore, 1e-9)
	assert.Equal(t, ana.UserID, payload.PrimaryUserID)
	assert.Equal(t, ben.UserID, payload.SecondaryUserID)
	assert.Equal(t, "You two should meet!", payload.Notification)

	// Delivery is the last step of match creation, so by now the matched
	// cooldown holds the user pair and the single-flight lock is gone.
	cooling, cooldownType, err := app.MatchService.CheckCooldown(ctx, ana.UserID, ben.UserID)
	require.NoError(t, err)
	assert.True(t, cooling)
	assert.Equal(t, agentmatch.CooldownMatched, cooldownType)
	app.AssertInFlightLockReleased(t, pairKey)

	// ────────────────────────────────────────────────────────────
	// Stage 6: The observer streams saw every hop
	// ────────────────────────────────────────────────────────────

	app.WaitForEvents(t, observer.EventMatchCreated, 1)
	assert.NotEmpty(t, app.EventsOnStream(observer.EventLocationUpdated))
	assert.NotEmpty(t, app.EventsOnStream(observer.EventCollisionDetected))
	assert.NotEmpty(t, app.EventsOnStream(observer.EventCollisionStabilityReached))
	assert.NotEmpty(t, app.EventsOnStream(observer.EventMissionCreated))
	assert.NotEmpty(t, app.EventsOnStream(observer.EventCooldownStarted))
	// A matched mission announces the match, not a bare completion.
	assert.Empty(t, app.EventsOnStream(observer.EventMissionCompleted))

	// Scripted externals were exercised exactly once per role per turn.
	assert.Equal(t, 2, app.Runtime.OwnerCalls())
	assert.Equal(t, 2, app.Runtime.VisitorCalls())
	assert.Equal(t, 1, app.Judge.Calls())
	assert.Equal(t, "find a climbing partner", app.Judge.LastInput().OwnerObjective)
}
