package blackboard

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Blackboard {
	t.Helper()
	bb, err := New("session_000001", "Consciousness requires embodiment", nil)
	require.NoError(t, err)
	return bb
}

func TestNewRejectsEmptySeed(t *testing.T) {
	_, err := New("session_000001", "", nil)
	assert.ErrorIs(t, err, ErrEmptyClaim)
}

func TestNewInitialState(t *testing.T) {
	bb := newTestBoard(t)
	snap := bb.Snapshot()

	assert.Equal(t, "session_000001", snap.SessionID)
	assert.Equal(t, snap.SeedClaim, snap.CurrentClaim)
	assert.Equal(t, InitialSupport, snap.SupportStrength)
	assert.Equal(t, 0, snap.CycleCount)
	assert.Empty(t, snap.Cemetery)
	assert.Empty(t, snap.FrontierPool)
}

func TestUpdateSupportClamping(t *testing.T) {
	bb := newTestBoard(t)

	_, s := bb.UpdateSupport(2.0, "")
	assert.Equal(t, 1.0, s, "support clamps to 1")

	outcome, s := bb.UpdateSupport(-5.0, "objection")
	assert.Equal(t, SupportDeath, outcome, "clamped-to-zero support kills the claim")
	assert.Equal(t, 0.0, s)
}

func TestUpdateSupportDeath(t *testing.T) {
	bb := newTestBoard(t)

	outcome, s := bb.UpdateSupport(-0.31, "objection")
	assert.Equal(t, SupportDeath, outcome)
	assert.InDelta(t, 0.19, s, 1e-9)

	snap := bb.Snapshot()
	assert.False(t, snap.HasClaim(), "dead claim leaves current_claim empty")
	require.Len(t, snap.Cemetery, 1)
	assert.Equal(t, "Consciousness requires embodiment", snap.Cemetery[0].Claim)
	assert.Equal(t, "objection", snap.Cemetery[0].CauseOfDeath)
	assert.InDelta(t, 0.19, snap.Cemetery[0].FinalSupport, 1e-9)
}

func TestUpdateSupportDeathAtExactThreshold(t *testing.T) {
	bb := newTestBoard(t)

	// 0.5 - 0.3 == 0.2 == DeathThreshold: death triggers at <=.
	outcome, s := bb.UpdateSupport(-0.3, "")
	assert.Equal(t, SupportDeath, outcome)
	assert.InDelta(t, DeathThreshold, s, 1e-9)
	assert.Equal(t, "decay", bb.Snapshot().Cemetery[0].CauseOfDeath, "empty cause defaults to decay")
}

func TestUpdateSupportGraduation(t *testing.T) {
	bb := newTestBoard(t)

	outcome, s := bb.UpdateSupport(0.35, "")
	assert.Equal(t, SupportGraduation, outcome)
	assert.InDelta(t, GraduationThreshold, s, 1e-9)

	snap := bb.Snapshot()
	require.Len(t, snap.GraduatedClaims, 1)
	assert.Equal(t, "Consciousness requires embodiment", snap.GraduatedClaims[0].Claim)
	assert.True(t, snap.HasClaim(), "graduation does not null the claim; the runner completes the session")
}

func TestUpdateSupportDeadClaimCannotDieTwice(t *testing.T) {
	bb := newTestBoard(t)
	bb.UpdateSupport(-0.4, "objection")
	require.Len(t, bb.Snapshot().Cemetery, 1)

	outcome, _ := bb.UpdateSupport(-0.05, "objection")
	assert.Equal(t, SupportMoved, outcome, "support movement with no live claim is just a movement")
	assert.Len(t, bb.Snapshot().Cemetery, 1)
}

func TestDecayClampsToFloorAndNeverKills(t *testing.T) {
	bb := newTestBoard(t)
	bb.UpdateSupport(-0.29, "") // 0.21, just above the floor

	s := bb.Decay(0.02)
	assert.InDelta(t, DecayFloor, s, 1e-9, "decay clamps to the floor instead of crossing it")
	assert.True(t, bb.Snapshot().HasClaim(), "decay alone never kills")

	// Repeated decay stays pinned at the floor.
	s = bb.Decay(0.02)
	assert.InDelta(t, DecayFloor, s, 1e-9)
}

func TestDecayNoopWhenClaimDead(t *testing.T) {
	bb := newTestBoard(t)
	bb.UpdateSupport(-0.4, "objection")
	before := bb.Support()

	assert.Equal(t, before, bb.Decay(0.02))
}

func TestUpdateClaim(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.UpdateClaim("Consciousness requires only sensorimotor loops"))
	assert.Equal(t, "Consciousness requires only sensorimotor loops", bb.Snapshot().CurrentClaim)

	assert.ErrorIs(t, bb.UpdateClaim(""), ErrEmptyClaim)
}

func TestInstallClaim(t *testing.T) {
	bb := newTestBoard(t)

	assert.ErrorIs(t, bb.InstallClaim("replacement", 0.5), ErrClaimAlive)

	bb.UpdateSupport(-0.4, "objection")
	assert.ErrorIs(t, bb.InstallClaim("replacement", 1.5), ErrSupportOutOfRange)
	assert.ErrorIs(t, bb.InstallClaim("", 0.5), ErrEmptyClaim)

	require.NoError(t, bb.InstallClaim("replacement", 0.4))
	snap := bb.Snapshot()
	assert.Equal(t, "replacement", snap.CurrentClaim)
	assert.Equal(t, 0.4, snap.SupportStrength)
}

func TestIncrementCycleAgesFrontiers(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("f1", "an idea"))

	assert.Equal(t, 1, bb.IncrementCycle())
	assert.Equal(t, 2, bb.IncrementCycle())
	assert.Equal(t, 2, bb.Snapshot().FrontierPool["f1"].CyclesAlive)
}

func TestAddTranslatorFrameworkDedup(t *testing.T) {
	bb := newTestBoard(t)
	assert.True(t, bb.AddTranslatorFramework("game theory"))
	assert.False(t, bb.AddTranslatorFramework("game theory"))
	assert.False(t, bb.AddTranslatorFramework(""))
	assert.Equal(t, []string{"game theory"}, bb.Snapshot().TranslatorFrameworks)
}

func TestSetCostLimit(t *testing.T) {
	bb := newTestBoard(t)
	assert.ErrorIs(t, bb.SetCostLimit(-1), ErrNegativeCostLimit)
	require.NoError(t, bb.SetCostLimit(2.5))
	assert.Equal(t, 2.5, bb.Snapshot().CostLimitUSD)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	bb := newTestBoard(t)
	require.NoError(t, bb.AddFrontier("f1", "an idea"))
	snap := bb.Snapshot()

	// Mutate the snapshot; the blackboard must not see it.
	f := snap.FrontierPool["f1"]
	f.SponsorCount = 99
	snap.FrontierPool["f1"] = f
	snap.Cemetery = append(snap.Cemetery, CemeteryEntry{Claim: "ghost"})

	fresh := bb.Snapshot()
	assert.Equal(t, 0, fresh.FrontierPool["f1"].SponsorCount)
	assert.Empty(t, fresh.Cemetery)
}

func TestConcurrentSnapshotsDuringMutation(t *testing.T) {
	bb := newTestBoard(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := bb.Snapshot()
				_ = snap.SupportStrength
			}
		}()
	}
	for j := 0; j < 100; j++ {
		bb.UpdateSupport(0.001, "")
		bb.Decay(0.001)
	}
	wg.Wait()
}

// recordingSink captures sink callbacks for assertions.
type recordingSink struct {
	mu     sync.Mutex
	deaths []string
	grads  []string
}

func (s *recordingSink) CycleCountChanged(string, int)        {}
func (s *recordingSink) ClaimUpdated(string, string, int)     {}
func (s *recordingSink) SupportUpdated(string, float64, int)  {}
func (s *recordingSink) ClaimDied(_, claim, _ string, _ float64, _ int) {
	s.mu.Lock()
	s.deaths = append(s.deaths, claim)
	s.mu.Unlock()
}
func (s *recordingSink) ClaimGraduated(_, claim string, _ float64, _ int) {
	s.mu.Lock()
	s.grads = append(s.grads, claim)
	s.mu.Unlock()
}

func TestSinkReceivesDeathAndGraduation(t *testing.T) {
	sink := &recordingSink{}
	bb, err := New("session_000001", "seed claim", sink)
	require.NoError(t, err)

	bb.UpdateSupport(-0.4, "objection")
	require.NoError(t, bb.InstallClaim("revived claim", 0.5))
	bb.UpdateSupport(0.5, "")

	assert.Equal(t, []string{"seed claim"}, sink.deaths)
	assert.Equal(t, []string{"revived claim"}, sink.grads)
}

func TestDeathResurrectionGraduationScenario(t *testing.T) {
	bb := newTestBoard(t)
	rng := rand.New(rand.NewPCG(1, 2))

	// Seed the frontier pool with a sponsored idea.
	require.NoError(t, bb.AddFrontier("f1", "Embodiment is merely one path to grounding"))
	require.NoError(t, bb.Sponsor("f1"))
	require.NoError(t, bb.Sponsor("f1"))

	// Kill the seed claim.
	outcome, _ := bb.UpdateSupport(-0.35, "objection")
	require.Equal(t, SupportDeath, outcome)

	// Resurrect from the pool at full initial support.
	res, err := bb.SelectForResurrection(rng)
	require.NoError(t, err)
	assert.Equal(t, "f1", res.Idea.ID)
	assert.Equal(t, InitialSupport, res.Support)
	require.NoError(t, bb.InstallClaim(res.Idea.IdeaText, res.Support))
	require.NoError(t, bb.ActivateFrontier("f1"))

	// Refine upward until graduation.
	outcome, _ = bb.UpdateSupport(0.36, "")
	assert.Equal(t, SupportGraduation, outcome)

	snap := bb.Snapshot()
	assert.Len(t, snap.Cemetery, 1)
	assert.Len(t, snap.GraduatedClaims, 1)
	assert.Equal(t, "Embodiment is merely one path to grounding", snap.GraduatedClaims[0].Claim)
}
