package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent/interviewmission"
	testdb "github.com/venn-social/vennd/test/database"
)

// ────────────────────────────────────────────────────────────
// Multi-replica test — verifies exactly-once mission execution when
// several vennd replicas drain the same PostgreSQL-backed queue.
//
// Two replicas share one schema, each running its own worker pool with a
// distinct pod identity. The queue is filled with pending missions, and
// the test verifies that FOR UPDATE SKIP LOCKED claiming hands every
// mission to exactly one replica: no mission runs twice, none is lost,
// and every row records which pod claimed it.
// ────────────────────────────────────────────────────────────

func TestE2E_MultiReplica(t *testing.T) {
	ctx := context.Background()

	// ═══════════════════════════════════════════════════════
	// Shared database (one schema, two independent clients)
	// ═══════════════════════════════════════════════════════

	sharedDB := testdb.NewSharedTestDB(t)

	// ═══════════════════════════════════════════════════════
	// Boot two replicas with distinct pod identities
	// ═══════════════════════════════════════════════════════

	podA := NewTestApp(t,
		WithDBClient(sharedDB.NewClient(t)),
		WithPodID("replica-a"),
		WithWorkerCount(2),
	)
	podB := NewTestApp(t,
		WithDBClient(sharedDB.NewClient(t)),
		WithPodID("replica-b"),
		WithWorkerCount(2),
	)

	// ═══════════════════════════════════════════════════════
	// Fill the queue — both replicas see the same rows
	// ═══════════════════════════════════════════════════════

	const missionCount = 8
	for i := 0; i < missionCount; i++ {
		SeedPendingMission(t, podA.EntClient, fmt.Sprintf("pair-%02d", i))
	}

	// ═══════════════════════════════════════════════════════
	// Wait for the fleet to drain the queue
	// ═══════════════════════════════════════════════════════

	var completed int
	require.Eventually(t, func() bool {
		n, err := podA.EntClient.InterviewMission.Query().
			Where(interviewmission.StatusEQ(interviewmission.StatusCompleted)).
			Count(ctx)
		if err != nil {
			return false
		}
		completed = n
		return n == missionCount
	}, 60*time.Second, 200*time.Millisecond,
		"queue not drained: %d/%d missions completed", completed, missionCount)

	// ═══════════════════════════════════════════════════════
	// Exactly-once: every mission claimed by one known replica
	// ═══════════════════════════════════════════════════════

	missions, err := podA.EntClient.InterviewMission.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, missions, missionCount)

	claims := map[string]int{}
	for _, m := range missions {
		require.NotNil(t, m.PodID, "mission %s has no claimant", m.ID)
		assert.Contains(t, []string{"replica-a", "replica-b"}, *m.PodID)
		assert.Equal(t, interviewmission.StatusCompleted, m.Status)
		require.NotNil(t, m.StartedAt)
		require.NotNil(t, m.CompletedAt)
		claims[*m.PodID]++
	}
	t.Logf("claim distribution: %v", claims)

	// The interview ran once per mission across the fleet. A double claim
	// would inflate the totals; a lost mission would shrink them.
	assert.Equal(t, missionCount, podA.Judge.Calls()+podB.Judge.Calls())
	ownerTurns := podA.Runtime.OwnerCalls() + podB.Runtime.OwnerCalls()
	assert.Equal(t, missionCount*podA.Config.Interview.MaxOwnerTurns, ownerTurns)

	// ═══════════════════════════════════════════════════════
	// Every completed mission produced exactly one match
	// ═══════════════════════════════════════════════════════

	matchTotal, err := podA.EntClient.Match.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, missionCount, matchTotal)

	// Notifications went out once per match, from whichever replica ran
	// the mission.
	require.Eventually(t, func() bool {
		return len(podA.Gateway.Deliveries())+len(podB.Gateway.Deliveries()) == missionCount
	}, 10*time.Second, 100*time.Millisecond, "notification deliveries did not settle")
}
