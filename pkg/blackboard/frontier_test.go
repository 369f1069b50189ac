package blackboard

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFrontierIdempotent(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("f1", "first text"))
	require.NoError(t, bb.AddFrontier("f1", "second text"))

	assert.Equal(t, "first text", bb.Snapshot().FrontierPool["f1"].IdeaText, "re-adding an id is a no-op")
	assert.ErrorIs(t, bb.AddFrontier("f2", ""), ErrEmptyClaim)
}

func TestSponsorUnknownFrontier(t *testing.T) {
	bb := newTestBoard(t)
	assert.ErrorIs(t, bb.Sponsor("nope"), ErrUnknownFrontier)
}

func TestActivateFrontier(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("f1", "idea"))

	assert.ErrorIs(t, bb.ActivateFrontier("nope"), ErrUnknownFrontier)
	require.NoError(t, bb.ActivateFrontier("f1"))
	assert.ErrorIs(t, bb.ActivateFrontier("f1"), ErrFrontierActivated)
}

func TestEligibleFrontiers(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("under", "under-sponsored"))
	require.NoError(t, bb.Sponsor("under"))

	require.NoError(t, bb.AddFrontier("ok", "sponsored enough"))
	require.NoError(t, bb.Sponsor("ok"))
	require.NoError(t, bb.Sponsor("ok"))

	require.NoError(t, bb.AddFrontier("used", "already activated"))
	require.NoError(t, bb.Sponsor("used"))
	require.NoError(t, bb.Sponsor("used"))
	require.NoError(t, bb.ActivateFrontier("used"))

	eligible := bb.EligibleFrontiers()
	require.Len(t, eligible, 1)
	assert.Equal(t, "ok", eligible[0].ID)
}

func TestSelectWeightedFrontierEmpty(t *testing.T) {
	bb := newTestBoard(t)
	rng := rand.New(rand.NewPCG(1, 1))
	_, err := bb.SelectWeightedFrontier(rng)
	assert.ErrorIs(t, err, ErrNoFrontiers)
}

func TestSelectWeightedFrontierProportional(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("light", "two sponsors"))
	require.NoError(t, bb.Sponsor("light"))
	require.NoError(t, bb.Sponsor("light"))

	require.NoError(t, bb.AddFrontier("heavy", "eight sponsors"))
	for i := 0; i < 8; i++ {
		require.NoError(t, bb.Sponsor("heavy"))
	}

	rng := rand.New(rand.NewPCG(7, 13))
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		f, err := bb.SelectWeightedFrontier(rng)
		require.NoError(t, err)
		counts[f.ID]++
	}

	// heavy carries 80% of the sponsor mass; allow generous slack.
	assert.Greater(t, counts["heavy"], 1400)
	assert.Greater(t, counts["light"], 200)
}

func TestSelectForResurrectionPrefersEligible(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("f1", "sponsored idea"))
	require.NoError(t, bb.Sponsor("f1"))
	require.NoError(t, bb.Sponsor("f1"))

	res, err := bb.SelectForResurrection(rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, "f1", res.Idea.ID)
	assert.Equal(t, InitialSupport, res.Support, "eligible frontiers install at full initial support")
}

func TestSelectForResurrectionFallback(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("weak", "one sponsor"))
	require.NoError(t, bb.Sponsor("weak"))
	require.NoError(t, bb.AddFrontier("none", "zero sponsors"))

	res, err := bb.SelectForResurrection(rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, "weak", res.Idea.ID, "fallback picks the highest sponsor count")
	assert.Equal(t, fallbackSupport, res.Support, "under-sponsored frontiers install at reduced support")
}

func TestSelectForResurrectionExhausted(t *testing.T) {
	bb := newTestBoard(t)
	_, err := bb.SelectForResurrection(rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrNoFrontiers)

	// Activated frontiers do not count.
	require.NoError(t, bb.AddFrontier("f1", "idea"))
	require.NoError(t, bb.ActivateFrontier("f1"))
	_, err = bb.SelectForResurrection(rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrNoFrontiers)
}
