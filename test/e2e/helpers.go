package e2e

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/ent/collisionevent"
	"github.com/venn-social/vennd/ent/interviewmission"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/kvstore"
	"github.com/venn-social/vennd/pkg/location"
	"github.com/venn-social/vennd/pkg/models"
	"github.com/venn-social/vennd/pkg/observer"
)

// Well-known KV key layout the pipeline writes. Tests reach into these keys
// to fast-forward clocks and to assert lock and cooldown state.
const (
	activePairKeyPrefix = "collision:active:"
	stabilityQueueKey   = "collision:stability:queue"
	inflightLockPrefix  = "mission:inflight:"
	cooldownKeyPrefix   = "cooldown:"
	eventStreamPrefix   = "observer:events:"
)

// ────────────────────────────────────────────────────────────
// Seeding Helpers
// ────────────────────────────────────────────────────────────

// Member couples a seeded user with their single live circle.
type Member struct {
	UserID   string
	CircleID string
}

// SeedMember creates a user and one live circle they own. Both IDs derive
// from the prefix, so lexicographic ordering of prefixes decides which
// member lands on the canonical (owner) side of a pair.
func (app *TestApp) SeedMember(t *testing.T, prefix, objective string, radiusMeters float64) Member {
	t.Helper()
	ctx := context.Background()

	userID := prefix + "-user"
	circleID := prefix + "-circle"

	err := app.EntClient.User.Create().
		SetID(userID).
		SetDisplayName(prefix).
		SetEmail(prefix + "@vennd.test").
		SetProfile(map[string]interface{}{"bio": "seeded for " + objective}).
		Exec(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	err = app.EntClient.Circle.Create().
		SetID(circleID).
		SetOwnerUserID(userID).
		SetObjective(objective).
		SetRadiusMeters(radiusMeters).
		SetStartAt(now.Add(-time.Minute)).
		SetExpiresAt(now.Add(time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	return Member{UserID: userID, CircleID: circleID}
}

// SeedCircle opens another live circle owned by an existing member and
// returns the member re-keyed to it.
func (app *TestApp) SeedCircle(t *testing.T, m Member, prefix, objective string, radiusMeters float64) Member {
	t.Helper()

	circleID := prefix + "-circle"
	now := time.Now().UTC()
	err := app.EntClient.Circle.Create().
		SetID(circleID).
		SetOwnerUserID(m.UserID).
		SetObjective(objective).
		SetRadiusMeters(radiusMeters).
		SetStartAt(now.Add(-time.Minute)).
		SetExpiresAt(now.Add(time.Hour)).
		Exec(context.Background())
	require.NoError(t, err)

	return Member{UserID: m.UserID, CircleID: circleID}
}

// RetireCircles flips circles to expired so they stop producing collisions.
func (app *TestApp) RetireCircles(t *testing.T, members ...Member) {
	t.Helper()

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.CircleID
	}
	err := app.EntClient.Circle.Update().
		Where(circle.IDIn(ids...)).
		SetStatus(circle.StatusExpired).
		Exec(context.Background())
	require.NoError(t, err)
}

// SendLocation pushes one update through the full ingestion path: admission,
// persistence, and collision detection.
func (app *TestApp) SendLocation(t *testing.T, userID string, lat, lon float64) location.UpdateResult {
	t.Helper()
	return app.Location.UpdateUserLocation(context.Background(), location.UpdateInput{
		UserID:          userID,
		Lat:             lat,
		Lon:             lon,
		AccuracyMeters:  10,
		ClientTimestamp: time.Now().UTC(),
	})
}

// CirclePairKey returns the canonical pair key for two members' circles.
func CirclePairKey(a, b Member) string {
	return geo.PairKey(a.CircleID, b.CircleID)
}

// SeedPendingMission enqueues a pending mission with its backing collision
// row and a payload the interview runner can parse, without driving the
// detection pipeline. Used by multi-replica tests to fill the queue.
func SeedPendingMission(t *testing.T, client *ent.Client, pairKey string) *ent.InterviewMission {
	t.Helper()
	ctx := context.Background()

	ce, err := client.CollisionEvent.Create().
		SetID(uuid.New().String()).
		SetPairKey(pairKey).
		SetCircle1ID(pairKey + "-c1").
		SetCircle2ID(pairKey + "-c2").
		SetUser1ID(pairKey + "-u1").
		SetUser2ID(pairKey + "-u2").
		SetDistanceMeters(30).
		SetFirstSeenAt(time.Now().Add(-time.Minute)).
		SetLastSeenAt(time.Now()).
		SetStatus(collisionevent.StatusMissionCreated).
		Save(ctx)
	require.NoError(t, err)

	missionID := uuid.New().String()
	payload := models.MissionPayload{
		MissionID:     missionID,
		OwnerUserID:   pairKey + "-u1",
		VisitorUserID: pairKey + "-u2",
		OwnerCircle: models.CircleContext{
			CircleID:     pairKey + "-c1",
			Objective:    "find a hiking group",
			RadiusMeters: 100,
		},
	}
	payloadMap, err := payload.AsMap()
	require.NoError(t, err)

	mission, err := client.InterviewMission.Create().
		SetID(missionID).
		SetCollisionEventID(ce.ID).
		SetOwnerUserID(pairKey + "-u1").
		SetVisitorUserID(pairKey + "-u2").
		SetOwnerCircleID(pairKey + "-c1").
		SetVisitorCircleID(pairKey + "-c2").
		SetCirclePairKey(pairKey).
		SetPayload(payloadMap).
		Save(ctx)
	require.NoError(t, err)
	return mission
}

// ────────────────────────────────────────────────────────────
// Clock Helpers — tests rewind timestamps instead of sleeping
// ────────────────────────────────────────────────────────────

// BackdateFirstSeen rewinds a tracked pair's first sighting so the next
// sighting, or the scheduled stability sweep, sees the window as elapsed.
func (app *TestApp) BackdateFirstSeen(t *testing.T, pairKey string, age time.Duration) {
	t.Helper()
	ctx := context.Background()
	ms := time.Now().UTC().Add(-age).UnixMilli()

	err := app.KV.HSetField(ctx, activePairKeyPrefix+pairKey, "first_seen_at", strconv.FormatInt(ms, 10))
	require.NoError(t, err)
	err = app.KV.ZAdd(ctx, stabilityQueueKey, pairKey, float64(ms))
	require.NoError(t, err)
}

// MarkPairInactive additionally rewinds last_seen_at, so the scheduled sweep
// sees the pair as gone quiet past the inactivity window.
func (app *TestApp) MarkPairInactive(t *testing.T, pairKey string, age time.Duration) {
	t.Helper()
	app.BackdateFirstSeen(t, pairKey, age)

	ms := time.Now().UTC().Add(-age).UnixMilli()
	err := app.KV.HSetField(context.Background(), activePairKeyPrefix+pairKey, "last_seen_at", strconv.FormatInt(ms, 10))
	require.NoError(t, err)
}

// BackdateMatchCreated rewinds a match row's creation time so the expiry
// sweep sees it as past the response window. created_at is immutable in the
// schema, so the rewrite goes through SQL.
func (app *TestApp) BackdateMatchCreated(t *testing.T, matchID string, age time.Duration) {
	t.Helper()
	_, err := app.DBClient.DB().ExecContext(context.Background(),
		"UPDATE matches SET created_at = $1 WHERE match_id = $2",
		time.Now().UTC().Add(-age), matchID)
	require.NoError(t, err)
}

// BackdateCollisionCreated rewinds a collision row's creation time for
// max-age expiry tests.
func (app *TestApp) BackdateCollisionCreated(t *testing.T, pairKey string, age time.Duration) {
	t.Helper()
	_, err := app.DBClient.DB().ExecContext(context.Background(),
		"UPDATE collision_events SET created_at = $1 WHERE pair_key = $2",
		time.Now().UTC().Add(-age), pairKey)
	require.NoError(t, err)
}

// ────────────────────────────────────────────────────────────
// Polling Helpers
// ────────────────────────────────────────────────────────────

// WaitForMissionTerminal polls the DB until the pair's newest mission
// reaches completed or failed, and returns it.
func (app *TestApp) WaitForMissionTerminal(t *testing.T, pairKey string) *ent.InterviewMission {
	t.Helper()
	var found *ent.InterviewMission
	var lastStatus string
	require.Eventually(t, func() bool {
		m, err := app.EntClient.InterviewMission.Query().
			Where(interviewmission.CirclePairKeyEQ(pairKey)).
			Order(ent.Desc(interviewmission.FieldCreatedAt)).
			First(context.Background())
		if err != nil {
			return false
		}
		lastStatus = string(m.Status)
		if m.Status != interviewmission.StatusCompleted && m.Status != interviewmission.StatusFailed {
			return false
		}
		found = m
		return true
	}, 30*time.Second, 100*time.Millisecond,
		"mission for pair %s did not reach a terminal status (last: %q)", pairKey, lastStatus)
	return found
}

// WaitForMatch polls the DB until the mission's match row exists.
func (app *TestApp) WaitForMatch(t *testing.T, missionID string) *ent.Match {
	t.Helper()
	var found *ent.Match
	require.Eventually(t, func() bool {
		m, err := app.EntClient.Match.Query().
			Where(match.MissionIDEQ(missionID)).
			Only(context.Background())
		if err != nil {
			return false
		}
		found = m
		return true
	}, 10*time.Second, 100*time.Millisecond,
		"no match row appeared for mission %s", missionID)
	return found
}

// WaitForMatchStatus polls the DB until the match reaches the expected status.
func (app *TestApp) WaitForMatchStatus(t *testing.T, matchID string, expected match.Status) {
	t.Helper()
	var lastStatus string
	require.Eventually(t, func() bool {
		m, err := app.EntClient.Match.Get(context.Background(), matchID)
		if err != nil {
			return false
		}
		lastStatus = string(m.Status)
		return m.Status == expected
	}, 10*time.Second, 100*time.Millisecond,
		"match %s did not reach status %q (last: %q)", matchID, expected, lastStatus)
}

// ────────────────────────────────────────────────────────────
// DB Query Helpers
// ────────────────────────────────────────────────────────────

// QueryCollision returns the pair's durable collision row.
func (app *TestApp) QueryCollision(t *testing.T, pairKey string) *ent.CollisionEvent {
	t.Helper()
	row, err := app.EntClient.CollisionEvent.Query().
		Where(collisionevent.PairKeyEQ(pairKey)).
		Only(context.Background())
	require.NoError(t, err)
	return row
}

// MissionCount returns how many mission rows exist for the circle pair.
func (app *TestApp) MissionCount(t *testing.T, pairKey string) int {
	t.Helper()
	n, err := app.EntClient.InterviewMission.Query().
		Where(interviewmission.CirclePairKeyEQ(pairKey)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

// MatchCount returns how many match rows exist for the mission.
func (app *TestApp) MatchCount(t *testing.T, missionID string) int {
	t.Helper()
	n, err := app.EntClient.Match.Query().
		Where(match.MissionIDEQ(missionID)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

// ────────────────────────────────────────────────────────────
// Observer Stream Helpers
// ────────────────────────────────────────────────────────────

// EventsOnStream returns everything the bus has flushed to the per-type
// stream so far.
func (app *TestApp) EventsOnStream(eventType observer.EventType) []kvstore.StreamEntry {
	return app.BusStore.StreamEntries(eventStreamPrefix + string(eventType))
}

// WaitForEvents polls until the per-type stream holds at least n entries.
// The bus flushes in batches, so even already-emitted events need a beat.
func (app *TestApp) WaitForEvents(t *testing.T, eventType observer.EventType, n int) []kvstore.StreamEntry {
	t.Helper()
	var got []kvstore.StreamEntry
	require.Eventually(t, func() bool {
		got = app.EventsOnStream(eventType)
		return len(got) >= n
	}, 10*time.Second, 25*time.Millisecond,
		"stream %s never reached %d entries (last: %d)", eventType, n, len(got))
	return got
}

// ────────────────────────────────────────────────────────────
// KV State Assertions
// ────────────────────────────────────────────────────────────

// AssertInFlightLockReleased fails when the pair's single-flight lock is
// still held.
func (app *TestApp) AssertInFlightLockReleased(t *testing.T, pairKey string) {
	t.Helper()
	_, err := app.KV.Get(context.Background(), inflightLockPrefix+pairKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound, "in-flight lock for %s still held", pairKey)
}

// CooldownFields reads the raw cooldown hash for a user pair. Empty map
// means no cooldown.
func (app *TestApp) CooldownFields(t *testing.T, user1ID, user2ID string) map[string]string {
	t.Helper()
	fields, err := app.KV.HGetAll(context.Background(), cooldownKeyPrefix+geo.PairKey(user1ID, user2ID))
	require.NoError(t, err)
	return fields
}
