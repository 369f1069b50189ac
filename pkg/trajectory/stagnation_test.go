package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// steps builds a trajectory whose i-th point sits at x = positions[i].
func steps(positions ...float32) []Point {
	traj := make([]Point, len(positions))
	for i, x := range positions {
		traj[i] = point(i+1, x)
	}
	return traj
}

func TestStagnationTooShort(t *testing.T) {
	assert.False(t, Stagnation(nil, 0.01).IsStagnant)
	assert.False(t, Stagnation(steps(0), 0.01).IsStagnant)
}

func TestStagnationDetected(t *testing.T) {
	// Five consecutive movements of 0.001 each.
	traj := steps(0, 0.001, 0.002, 0.003, 0.004, 0.005)
	res := Stagnation(traj, 0.01)
	assert.True(t, res.IsStagnant)
	assert.Equal(t, 5, res.Consecutive)
	assert.InDelta(t, 0.001, res.MeanMovement, 1e-6)
}

func TestStagnationRunTooShort(t *testing.T) {
	traj := steps(0, 0.001, 0.002, 0.003, 0.004)
	res := Stagnation(traj, 0.01)
	assert.False(t, res.IsStagnant)
	assert.Equal(t, 4, res.Consecutive)
}

func TestStagnationResetByLargeMovement(t *testing.T) {
	// Four small steps, one jump, then two small steps: the jump resets
	// the run, so the trailing run is only 2.
	traj := steps(0, 0.001, 0.002, 0.003, 0.004, 5, 5.001, 5.002)
	res := Stagnation(traj, 0.01)
	assert.False(t, res.IsStagnant)
	assert.Equal(t, 2, res.Consecutive)
}

func TestStagnationThresholdIsExclusive(t *testing.T) {
	// Movements exactly at the threshold do not count as stagnant.
	traj := steps(0, 0.01, 0.02, 0.03, 0.04, 0.05)
	res := Stagnation(traj, 0.01)
	assert.False(t, res.IsStagnant)
	assert.Equal(t, 0, res.Consecutive)
}

func TestStagnationAllMoving(t *testing.T) {
	traj := steps(0, 1, 2, 3, 4, 5)
	res := Stagnation(traj, 0.01)
	assert.False(t, res.IsStagnant)
	assert.Equal(t, 0, res.Consecutive)
	assert.Equal(t, 0.0, res.MeanMovement)
}
