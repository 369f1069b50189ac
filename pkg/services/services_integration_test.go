package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
	util "github.com/dialectic-dev/dialectic/test/util"
)

func testSnapshot(sessionID string) *blackboard.Snapshot {
	return &blackboard.Snapshot{
		SessionID:       sessionID,
		SeedClaim:       "consciousness requires embodiment",
		CurrentClaim:    "consciousness requires embodiment",
		SupportStrength: 0.5,
		CycleCount:      0,
		FrontierPool:    map[string]blackboard.FrontierIdea{},
	}
}

func TestBlackboardServiceSaveAndGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewBlackboardService(client)
	ctx := context.Background()

	snap := testSnapshot("session_000001")
	require.NoError(t, svc.SaveBlackboard(ctx, "bb-1", snap))

	rec, err := svc.GetBlackboard(ctx, "session_000001")
	require.NoError(t, err)
	assert.Equal(t, "bb-1", rec.ID)
	assert.Equal(t, "consciousness requires embodiment", rec.CurrentClaim)
	assert.InDelta(t, 0.5, rec.SupportStrength, 1e-9)

	// Second save with advanced state updates the same row.
	snap.CurrentClaim = "consciousness requires sensorimotor coupling"
	snap.SupportStrength = 0.62
	snap.CycleCount = 3
	require.NoError(t, svc.SaveBlackboard(ctx, "bb-1", snap))

	rec, err = svc.GetBlackboard(ctx, "session_000001")
	require.NoError(t, err)
	assert.Equal(t, "consciousness requires sensorimotor coupling", rec.CurrentClaim)
	assert.Equal(t, 3, rec.CycleCount)

	_, err = svc.GetBlackboard(ctx, "session_999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlackboardServiceSyncsFrontiersAndCemetery(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewBlackboardService(client)
	ctx := context.Background()

	snap := testSnapshot("session_000002")
	snap.FrontierPool["f1"] = blackboard.FrontierIdea{
		ID: "f1", IdeaText: "claims are social objects", SponsorCount: 1,
	}
	snap.Cemetery = []blackboard.CemeteryEntry{
		{Claim: "a dead claim", CauseOfDeath: "objection", FinalSupport: 0.15, CycleKilled: 2},
	}
	require.NoError(t, svc.SaveBlackboard(ctx, "bb-2", snap))

	// The next cycle sponsors the frontier and buries a second claim.
	snap.FrontierPool["f1"] = blackboard.FrontierIdea{
		ID: "f1", IdeaText: "claims are social objects", SponsorCount: 2, CyclesAlive: 1,
	}
	snap.Cemetery = append(snap.Cemetery, blackboard.CemeteryEntry{
		Claim: "another dead claim", CauseOfDeath: "decay", FinalSupport: 0.2, CycleKilled: 4,
	})
	require.NoError(t, svc.SaveBlackboard(ctx, "bb-2", snap))

	ideas, err := client.FrontierIdea.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 1, "frontier sync upserts, never duplicates")
	assert.Equal(t, 2, ideas[0].SponsorCount)

	graves, err := client.CemeteryEntry.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, graves, 2, "cemetery rows are appended exactly once")
}

func TestBlackboardServiceAppendSnapshot(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewBlackboardService(client)
	ctx := context.Background()

	snap := testSnapshot("session_000003")
	for cycle := 1; cycle <= 3; cycle++ {
		snap.CycleCount = cycle
		require.NoError(t, svc.AppendSnapshot(ctx, "bb-3", snap))
	}

	rows, err := client.BlackboardSnapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "session_000003", rows[0].SessionID)
	assert.Equal(t, "consciousness requires embodiment", rows[0].State["current_claim"])
}

func TestContributionServiceRecordAndAccept(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewContributionService(client)
	ctx := context.Background()

	id1, err := svc.RecordContribution(ctx, dispatch.Contribution{
		SessionID: "session_000004",
		Cycle:     1,
		Role:      agent.RoleExplorer,
		Model:     "test-model",
		Output: agent.ExplorerOutput{
			Validity: agent.Valid(), NewClaim: "a refined claim",
		},
		ConfidenceDelta: 0.1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := svc.RecordContribution(ctx, dispatch.Contribution{
		SessionID: "session_000004",
		Cycle:     1,
		Role:      agent.RoleCritic,
		Model:     "test-model",
		Output: agent.CriticOutput{
			Validity: agent.Valid(), Objection: "too vague", TargetPremise: "a premise",
		},
		ConfidenceDelta: -0.15,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAccepted(ctx, []string{id1}))
	require.NoError(t, svc.MarkAccepted(ctx, nil), "empty id list is a no-op")

	rows, err := svc.ListContributions(ctx, "session_000004")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	byID := map[string]bool{}
	for _, row := range rows {
		byID[row.ID] = row.Accepted
	}
	assert.True(t, byID[id1])
	assert.False(t, byID[id2])

	cycleRows, err := svc.ListCycleContributions(ctx, "session_000004", 1)
	require.NoError(t, err)
	assert.Len(t, cycleRows, 2)
	cycleRows, err = svc.ListCycleContributions(ctx, "session_000004", 2)
	require.NoError(t, err)
	assert.Empty(t, cycleRows)
}

func TestTrajectoryServiceRoundTrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTrajectoryService(client)
	ctx := context.Background()

	for cycle := 3; cycle >= 1; cycle-- {
		require.NoError(t, svc.AppendPoint(ctx, trajectory.Point{
			SessionID:       "session_000005",
			CycleNumber:     cycle,
			Embedding:       []float32{float32(cycle), 0.5, -0.5},
			ClaimText:       "the claim",
			SupportStrength: 0.5,
		}))
	}

	points, err := svc.Trajectory(ctx, "session_000005")
	require.NoError(t, err)
	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, i+1, p.CycleNumber, "points come back in cycle order")
		assert.Equal(t, []float32{float32(i + 1), 0.5, -0.5}, p.Embedding)
	}
}

func TestTrajectoryServiceIgnoresDuplicateCycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTrajectoryService(client)
	ctx := context.Background()

	p := trajectory.Point{
		SessionID:   "session_000006",
		CycleNumber: 1,
		Embedding:   []float32{1, 2, 3},
		ClaimText:   "the claim",
	}
	require.NoError(t, svc.AppendPoint(ctx, p))
	require.NoError(t, svc.AppendPoint(ctx, p), "replayed cycle write is swallowed")

	points, err := svc.Trajectory(ctx, "session_000006")
	require.NoError(t, err)
	assert.Len(t, points, 1)
}

func TestTransitionServiceRecordAndList(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTransitionService(client)
	ctx := context.Background()

	require.NoError(t, svc.RecordTransition(ctx, "session_000007", 5,
		"pivot", "old claim", "new claim", 0.3, 0.5))
	require.NoError(t, svc.RecordTransition(ctx, "session_000007", 2,
		"refinement", "claim", "claim, sharpened", 0.5, 0.55))

	rows, err := svc.ListTransitions(ctx, "session_000007")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Cycle, "transitions come back in cycle order")
	assert.Equal(t, "refinement", string(rows[0].Transition))
	assert.Equal(t, "pivot", string(rows[1].Transition))
}

func TestSummaryServiceUpsert(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSummaryService(client)
	ctx := context.Background()

	_, err := svc.GetSummary(ctx, "session_000008")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.UpsertSummary(ctx, "session_000008", "first summary", 1))
	require.NoError(t, svc.UpsertSummary(ctx, "session_000008", "second summary", 2))

	row, err := svc.GetSummary(ctx, "session_000008")
	require.NoError(t, err)
	assert.Equal(t, "second summary", row.Summary)
	assert.Equal(t, 2, row.Cycle)

	count, err := client.ClaimSummary.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one summary row per session")
}

func TestCostServiceSessionCost(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCostService(client)
	ctx := context.Background()

	total, err := svc.SessionCost(ctx, "session_000009")
	require.NoError(t, err)
	assert.Zero(t, total, "no rows sums to zero")

	require.NoError(t, svc.RecordCost(ctx, "session_000009", 1, "explorer", "test-model", 0.002))
	require.NoError(t, svc.RecordCost(ctx, "session_000009", 1, "critic", "test-model", 0.003))
	require.NoError(t, svc.RecordCost(ctx, "session_000010", 1, "explorer", "test-model", 1.0))

	total, err = svc.SessionCost(ctx, "session_000009")
	require.NoError(t, err)
	assert.InDelta(t, 0.005, total, 1e-9, "only the session's own rows are summed")
}

func TestEventServiceAppendAndCatchup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	var ids []int64
	for _, payload := range []string{`{"n":1}`, `{"n":2}`, `{"n":3}`} {
		id, err := svc.AppendEvent(ctx, "session_000011", "session:session_000011", []byte(payload))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.True(t, ids[0] < ids[1] && ids[1] < ids[2], "ids are monotonic")

	// Catchup from the first id skips it and returns the rest in order.
	stored, err := svc.CatchupEvents(ctx, "session:session_000011", ids[0], 100)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, ids[1], stored[0].ID)
	assert.JSONEq(t, `{"n":2}`, string(stored[0].Payload))

	stored, err = svc.CatchupEvents(ctx, "session:session_000011", 0, 1)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "limit is honored")

	stored, err = svc.CatchupEvents(ctx, "some:other:topic", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestEventServiceCleanup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewEventService(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.AppendEvent(ctx, "session_000012", "session:session_000012", []byte(`{}`))
		require.NoError(t, err)
	}
	_, err := svc.AppendEvent(ctx, "session_000013", "session:session_000013", []byte(`{}`))
	require.NoError(t, err)

	deleted, err := svc.CleanupSessionEvents(ctx, "session_000012")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
