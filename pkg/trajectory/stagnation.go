package trajectory

// StagnationRunLength is the number of consecutive sub-threshold movements
// that declares a trajectory stagnant.
const StagnationRunLength = 5

// StagnationResult reports whether the tail of a trajectory has stopped
// moving.
type StagnationResult struct {
	IsStagnant   bool    `json:"is_stagnant"`
	Consecutive  int     `json:"consecutive"`
	MeanMovement float64 `json:"mean_movement"`
}

// Stagnation walks the pairwise movements of the trajectory slice and
// counts the maximal final run of movements below threshold; any movement
// at or above threshold resets the run. IsStagnant requires a run of at
// least StagnationRunLength; MeanMovement averages the movements in that
// final run (0 when the run is empty). Fewer than two points cannot
// stagnate.
func Stagnation(traj []Point, threshold float64) StagnationResult {
	if len(traj) < 2 {
		return StagnationResult{}
	}

	consecutive := 0
	var sum float64
	for i := 1; i < len(traj); i++ {
		movement := euclidean(traj[i-1].Embedding, traj[i].Embedding)
		if movement < threshold {
			consecutive++
			sum += movement
		} else {
			consecutive = 0
			sum = 0
		}
	}

	mean := 0.0
	if consecutive > 0 {
		mean = sum / float64(consecutive)
	}
	return StagnationResult{
		IsStagnant:   consecutive >= StagnationRunLength,
		Consecutive:  consecutive,
		MeanMovement: mean,
	}
}
