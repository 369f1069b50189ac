// Package blackboard holds the authoritative in-memory state for one
// reasoning session. A Blackboard is owned by exactly one cycle runner:
// all mutations funnel through that owner, readers get point-in-time
// snapshots. The mutex guards against concurrent snapshot reads (status
// queries, persistence) racing the owner's writes.
package blackboard

import "time"

// Support thresholds. A claim whose support drops to or below DeathThreshold
// dies; one whose support reaches GraduationThreshold graduates and
// completes the session. DecayFloor is the clamp applied by the decay phase.
const (
	DeathThreshold      = 0.2
	GraduationThreshold = 0.85
	DecayFloor          = 0.2
	InitialSupport      = 0.5
)

// FrontierIdea is a candidate replacement claim awaiting sponsorship.
type FrontierIdea struct {
	ID           string `json:"id"`
	IdeaText     string `json:"idea_text"`
	SponsorCount int    `json:"sponsor_count"`
	CyclesAlive  int    `json:"cycles_alive"`
	Activated    bool   `json:"activated"`
}

// CemeteryEntry records a dead claim. The cemetery is append-only.
type CemeteryEntry struct {
	Claim        string  `json:"claim"`
	CauseOfDeath string  `json:"cause_of_death"`
	FinalSupport float64 `json:"final_support"`
	CycleKilled  int     `json:"cycle_killed"`
}

// GraduatedClaim records a claim that crossed the graduation threshold.
type GraduatedClaim struct {
	Claim          string  `json:"claim"`
	CycleGraduated int     `json:"cycle_graduated"`
	FinalSupport   float64 `json:"final_support"`
}

// Snapshot is a deep, read-only copy of the blackboard handed to every
// agent in a cycle. An empty CurrentClaim means the claim is dead and the
// next phase to run must be a resurrection phase.
type Snapshot struct {
	SessionID            string                  `json:"session_id"`
	SeedClaim            string                  `json:"seed_claim"`
	CurrentClaim         string                  `json:"current_claim"`
	SupportStrength      float64                 `json:"support_strength"`
	ActiveObjection      string                  `json:"active_objection,omitempty"`
	AnalogyOfRecord      string                  `json:"analogy_of_record,omitempty"`
	CycleCount           int                     `json:"cycle_count"`
	FrontierPool         map[string]FrontierIdea `json:"frontier_pool"`
	Cemetery             []CemeteryEntry         `json:"cemetery"`
	GraduatedClaims      []GraduatedClaim        `json:"graduated_claims"`
	TranslatorFrameworks []string                `json:"translator_frameworks_used"`
	CostLimitUSD         float64                 `json:"cost_limit_usd,omitempty"`
	TakenAt              time.Time               `json:"taken_at"`
}

// HasClaim reports whether the snapshot carries a live claim.
func (s *Snapshot) HasClaim() bool { return s.CurrentClaim != "" }

// SupportOutcome describes what a support mutation did beyond moving the
// number: nothing, a death (claim moved to the cemetery) or a graduation.
type SupportOutcome int

const (
	SupportMoved SupportOutcome = iota
	SupportDeath
	SupportGraduation
)

// EventSink receives blackboard-scoped mutation notifications. All methods
// must be non-blocking; implementations typically forward to the event bus.
// A nil sink disables notification.
type EventSink interface {
	CycleCountChanged(sessionID string, cycle int)
	ClaimUpdated(sessionID, newClaim string, cycle int)
	SupportUpdated(sessionID string, support float64, cycle int)
	ClaimDied(sessionID, claim, cause string, finalSupport float64, cycle int)
	ClaimGraduated(sessionID, claim string, finalSupport float64, cycle int)
}
