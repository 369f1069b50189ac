package scheduler

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

// neverPerturb seeds chosen so the Perturber draw misses; the tests below
// that assert exact role sets rely on it.
func newDeterministic(t *testing.T) *Scheduler {
	t.Helper()
	for seed := uint64(0); seed < 64; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		if rng.Float64() > perturberProbability {
			return New(rand.New(rand.NewPCG(seed, seed)))
		}
	}
	t.Fatal("no seed found with a non-perturbing first draw")
	return nil
}

func snapshotWithSupport(support float64) *blackboard.Snapshot {
	return &blackboard.Snapshot{
		SessionID:       "session_000001",
		CurrentClaim:    "a live claim",
		SupportStrength: support,
	}
}

func TestScheduleRejectsCycleZero(t *testing.T) {
	s := New(nil)
	_, err := s.Schedule(0, snapshotWithSupport(0.5), nil)
	assert.ErrorIs(t, err, ErrInvalidCycle)
}

func TestScheduleEveryCycleRoles(t *testing.T) {
	s := newDeterministic(t)
	roles, err := s.Schedule(1, snapshotWithSupport(0.5), nil)
	require.NoError(t, err)
	assert.Equal(t, []agent.Role{agent.RoleExplorer, agent.RoleCritic}, roles)
}

func TestScheduleCycleThree(t *testing.T) {
	s := newDeterministic(t)
	roles, err := s.Schedule(3, snapshotWithSupport(0.5), nil)
	require.NoError(t, err)
	assert.Equal(t, []agent.Role{
		agent.RoleExplorer, agent.RoleCritic,
		agent.RoleConnector, agent.RoleSteelman, agent.RoleOperationalizer, agent.RoleQuantifier,
	}, roles)
}

func TestScheduleCycleFifteen(t *testing.T) {
	// 15 is divisible by 3 and 5: every periodic rule fires at once.
	s := newDeterministic(t)
	roles, err := s.Schedule(15, snapshotWithSupport(0.5), nil)
	require.NoError(t, err)
	assert.Equal(t, []agent.Role{
		agent.RoleExplorer, agent.RoleCritic,
		agent.RoleConnector, agent.RoleSteelman, agent.RoleOperationalizer, agent.RoleQuantifier,
		agent.RoleReducer, agent.RoleBoundaryHunter, agent.RoleTranslator,
		agent.RoleHistorian,
	}, roles)
}

func TestScheduleGraveKeeperOnLowSupport(t *testing.T) {
	s := newDeterministic(t)
	roles, err := s.Schedule(1, snapshotWithSupport(0.39), nil)
	require.NoError(t, err)
	assert.Contains(t, roles, agent.RoleGraveKeeper)

	s = newDeterministic(t)
	roles, err = s.Schedule(1, snapshotWithSupport(0.4), nil)
	require.NoError(t, err)
	assert.NotContains(t, roles, agent.RoleGraveKeeper, "threshold is exclusive")
}

func TestScheduleCartographerOnStagnation(t *testing.T) {
	// Twelve nearly identical points: stagnant under the 0.01 threshold.
	var traj []trajectory.Point
	for i := 1; i <= 12; i++ {
		traj = append(traj, trajectory.Point{
			SessionID:   "session_000001",
			CycleNumber: i,
			Embedding:   []float32{float32(i) * 0.0001},
		})
	}

	s := newDeterministic(t)
	roles, err := s.Schedule(5, snapshotWithSupport(0.5), traj)
	require.NoError(t, err)
	assert.Contains(t, roles, agent.RoleCartographer)

	// Too early in the session: no Cartographer even when stagnant.
	s = newDeterministic(t)
	roles, err = s.Schedule(4, snapshotWithSupport(0.5), traj)
	require.NoError(t, err)
	assert.NotContains(t, roles, agent.RoleCartographer)

	// A moving trajectory never adds the Cartographer.
	var moving []trajectory.Point
	for i := 1; i <= 12; i++ {
		moving = append(moving, trajectory.Point{
			SessionID:   "session_000001",
			CycleNumber: i,
			Embedding:   []float32{float32(i)},
		})
	}
	s = newDeterministic(t)
	roles, err = s.Schedule(5, snapshotWithSupport(0.5), moving)
	require.NoError(t, err)
	assert.NotContains(t, roles, agent.RoleCartographer)
}

func TestSchedulePerturberFrequency(t *testing.T) {
	s := New(rand.New(rand.NewPCG(42, 42)))
	snap := snapshotWithSupport(0.5)

	hits := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		roles, err := s.Schedule(1, snap, nil)
		require.NoError(t, err)
		for _, r := range roles {
			if r == agent.RolePerturber {
				hits++
			}
		}
	}
	// Expect roughly 20%; allow wide statistical slack.
	assert.Greater(t, hits, trials/10)
	assert.Less(t, hits, trials/3)
}

func TestScheduleNoDuplicates(t *testing.T) {
	s := New(rand.New(rand.NewPCG(3, 3)))
	for cycle := 1; cycle <= 30; cycle++ {
		roles, err := s.Schedule(cycle, snapshotWithSupport(0.2), nil)
		require.NoError(t, err)
		seen := map[agent.Role]bool{}
		for _, r := range roles {
			assert.False(t, seen[r], "role %s scheduled twice in cycle %d", r, cycle)
			seen[r] = true
		}
	}
}
