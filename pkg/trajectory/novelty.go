package trajectory

import "math"

// SpaceDiameter normalizes raw embedding distances into [0, 1] novelty.
// Fixed system-wide.
const SpaceDiameter = 10.0

// MaxNoveltyBonus is the system-wide cap on the support bonus a fully
// novel claim can earn in one cycle.
const MaxNoveltyBonus = 0.05

// Novelty returns how far claimVec sits from everywhere the trajectory has
// been: the minimum Euclidean distance to any prior point, divided by
// SpaceDiameter and clamped to 1. An empty trajectory is maximally novel.
func Novelty(claimVec []float32, traj []Point) float64 {
	if len(traj) == 0 {
		return 1.0
	}
	minDist := math.Inf(1)
	for _, p := range traj {
		if d := euclidean(claimVec, p.Embedding); d < minDist {
			minDist = d
		}
	}
	n := minDist / SpaceDiameter
	if n > 1 {
		n = 1
	}
	return n
}

// ApplyNoveltyBonus returns baseConfidence plus the novelty-scaled bonus.
// novelty is clamped to [0, 1] before scaling.
func ApplyNoveltyBonus(novelty, baseConfidence float64) float64 {
	if novelty < 0 {
		novelty = 0
	}
	if novelty > 1 {
		novelty = 1
	}
	return baseConfidence + novelty*MaxNoveltyBonus
}

// euclidean computes the Euclidean distance between two vectors. Vectors
// of unequal length are compared over the shorter prefix with the excess
// of the longer counted in full, so a dimension mismatch reads as distant
// rather than panicking.
func euclidean(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	for i := n; i < len(a); i++ {
		sum += float64(a[i]) * float64(a[i])
	}
	for i := n; i < len(b); i++ {
		sum += float64(b[i]) * float64(b[i])
	}
	return math.Sqrt(sum)
}
