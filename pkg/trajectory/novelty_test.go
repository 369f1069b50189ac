package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func point(cycle int, vec ...float32) Point {
	return Point{SessionID: "session_000001", CycleNumber: cycle, Embedding: vec}
}

func TestNoveltyEmptyTrajectory(t *testing.T) {
	assert.Equal(t, 1.0, Novelty([]float32{1, 0}, nil), "an empty trajectory is maximally novel")
}

func TestNoveltyUsesMinimumDistance(t *testing.T) {
	traj := []Point{
		point(1, 0, 0),
		point(2, 3, 4), // distance 5 from origin
	}
	// Claim at (0.6, 0.8): distance 1 from origin, 4 from (3,4).
	n := Novelty([]float32{0.6, 0.8}, traj)
	assert.InDelta(t, 1.0/SpaceDiameter, n, 1e-9)
}

func TestNoveltyClampsToOne(t *testing.T) {
	traj := []Point{point(1, 0, 0)}
	n := Novelty([]float32{100, 0}, traj)
	assert.Equal(t, 1.0, n)
}

func TestNoveltyIdenticalClaimIsZero(t *testing.T) {
	traj := []Point{point(1, 1, 2, 3)}
	assert.Equal(t, 0.0, Novelty([]float32{1, 2, 3}, traj))
}

func TestNoveltyDimensionMismatch(t *testing.T) {
	// Excess dimensions count in full instead of panicking.
	traj := []Point{point(1, 1, 0)}
	n := Novelty([]float32{1, 0, 2}, traj)
	assert.InDelta(t, 2.0/SpaceDiameter, n, 1e-9)
}

func TestApplyNoveltyBonus(t *testing.T) {
	assert.InDelta(t, 0.5+MaxNoveltyBonus, ApplyNoveltyBonus(1.0, 0.5), 1e-9, "full novelty earns the cap")
	assert.InDelta(t, 0.5+MaxNoveltyBonus/2, ApplyNoveltyBonus(0.5, 0.5), 1e-9)
	assert.Equal(t, 0.5, ApplyNoveltyBonus(0, 0.5), "zero novelty earns nothing")
	assert.Equal(t, 0.5, ApplyNoveltyBonus(-3, 0.5), "negative novelty clamps to zero")
	assert.InDelta(t, 0.5+MaxNoveltyBonus, ApplyNoveltyBonus(7, 0.5), 1e-9, "novelty above one clamps to the cap")
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, euclidean([]float32{0, 0}, []float32{3, 4}), 1e-9)
	assert.Equal(t, 0.0, euclidean(nil, nil))
	assert.InDelta(t, math.Sqrt(2), euclidean([]float32{1, 1}, nil), 1e-9)
}
