// Package scheduler decides which agent roles run in a given cycle. The
// base schedule is data-driven; conditional roles are added from the
// blackboard snapshot and the recent trajectory.
package scheduler

import (
	"errors"
	"math/rand/v2"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

// ErrInvalidCycle rejects cycle_count == 0: the first cycle is numbered 1.
var ErrInvalidCycle = errors.New("cycle count must be >= 1")

// Conditional-role parameters.
const (
	// GraveKeeper joins when support falls below this.
	graveKeeperSupportCeiling = 0.4

	// Cartographer joins after this many cycles when the recent
	// trajectory is stagnant.
	cartographerMinCycle = 5
	stagnationWindow     = 10
	stagnationThreshold  = 0.01

	// Perturber joins with this independent probability each cycle.
	// The PERTURB phase draws again — see runner.phasePerturb.
	perturberProbability = 0.2
)

// scheduleRule is one row of the base schedule.
type scheduleRule struct {
	roles []agent.Role
	due   func(cycle int) bool
}

var baseSchedule = []scheduleRule{
	{
		roles: []agent.Role{agent.RoleExplorer, agent.RoleCritic},
		due:   func(int) bool { return true },
	},
	{
		roles: []agent.Role{agent.RoleConnector, agent.RoleSteelman, agent.RoleOperationalizer, agent.RoleQuantifier},
		due:   func(cycle int) bool { return cycle%3 == 0 },
	},
	{
		roles: []agent.Role{agent.RoleReducer, agent.RoleBoundaryHunter, agent.RoleTranslator},
		due:   func(cycle int) bool { return cycle%5 == 0 },
	},
	{
		roles: []agent.Role{agent.RoleHistorian},
		due:   func(cycle int) bool { return cycle%5 == 0 },
	},
}

// Scheduler selects roles per cycle. The random source feeds only the
// Perturber draw.
type Scheduler struct {
	rng *rand.Rand
}

// New creates a scheduler. rng may be nil, in which case a process-local
// source is used.
func New(rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scheduler{rng: rng}
}

// Schedule returns the de-duplicated set of roles to run in the given
// cycle, in a stable order. traj is the recent trajectory window (nil when
// no trajectory is available this cycle).
func (s *Scheduler) Schedule(cycle int, snap *blackboard.Snapshot, traj []trajectory.Point) ([]agent.Role, error) {
	if cycle < 1 {
		return nil, ErrInvalidCycle
	}

	seen := make(map[agent.Role]bool)
	var roles []agent.Role
	add := func(r agent.Role) {
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}

	for _, rule := range baseSchedule {
		if rule.due(cycle) {
			for _, r := range rule.roles {
				add(r)
			}
		}
	}

	if snap.SupportStrength < graveKeeperSupportCeiling {
		add(agent.RoleGraveKeeper)
	}

	if cycle >= cartographerMinCycle && len(traj) > 0 {
		window := traj
		if len(window) > stagnationWindow {
			window = window[len(window)-stagnationWindow:]
		}
		if trajectory.Stagnation(window, stagnationThreshold).IsStagnant {
			add(agent.RoleCartographer)
		}
	}

	if s.rng.Float64() <= perturberProbability {
		add(agent.RolePerturber)
	}

	return roles, nil
}
