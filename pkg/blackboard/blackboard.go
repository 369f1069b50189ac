package blackboard

import (
	"sort"
	"sync"
	"time"
)

// Blackboard is the single-writer authoritative state for one session.
type Blackboard struct {
	mu sync.RWMutex

	sessionID string
	seedClaim string

	currentClaim    string // empty == dead, resurrection required
	supportStrength float64
	activeObjection string
	analogyOfRecord string
	cycleCount      int

	frontierPool    map[string]*FrontierIdea
	frontierOrder   []string // insertion order, for deterministic fallback
	cemetery        []CemeteryEntry
	graduatedClaims []GraduatedClaim
	frameworksUsed  map[string]bool

	costLimitUSD float64 // 0 == unset

	sink EventSink
}

// New creates a blackboard seeded with the session's initial claim.
// sink may be nil.
func New(sessionID, seedClaim string, sink EventSink) (*Blackboard, error) {
	if seedClaim == "" {
		return nil, ErrEmptyClaim
	}
	return &Blackboard{
		sessionID:       sessionID,
		seedClaim:       seedClaim,
		currentClaim:    seedClaim,
		supportStrength: InitialSupport,
		frontierPool:    make(map[string]*FrontierIdea),
		frameworksUsed:  make(map[string]bool),
		sink:            sink,
	}, nil
}

// SetCostLimit sets the advisory USD cap. Zero clears it.
func (b *Blackboard) SetCostLimit(limit float64) error {
	if limit < 0 {
		return ErrNegativeCostLimit
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.costLimitUSD = limit
	return nil
}

// SessionID returns the immutable session identifier.
func (b *Blackboard) SessionID() string { return b.sessionID }

// CycleCount returns the current cycle counter.
func (b *Blackboard) CycleCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cycleCount
}

// Support returns the current support strength.
func (b *Blackboard) Support() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.supportStrength
}

// Snapshot produces a deep read-only copy for agents and persistence.
func (b *Blackboard) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	pool := make(map[string]FrontierIdea, len(b.frontierPool))
	for id, f := range b.frontierPool {
		pool[id] = *f
	}
	cemetery := make([]CemeteryEntry, len(b.cemetery))
	copy(cemetery, b.cemetery)
	graduated := make([]GraduatedClaim, len(b.graduatedClaims))
	copy(graduated, b.graduatedClaims)
	frameworks := make([]string, 0, len(b.frameworksUsed))
	for fw := range b.frameworksUsed {
		frameworks = append(frameworks, fw)
	}
	sort.Strings(frameworks)

	return &Snapshot{
		SessionID:            b.sessionID,
		SeedClaim:            b.seedClaim,
		CurrentClaim:         b.currentClaim,
		SupportStrength:      b.supportStrength,
		ActiveObjection:      b.activeObjection,
		AnalogyOfRecord:      b.analogyOfRecord,
		CycleCount:           b.cycleCount,
		FrontierPool:         pool,
		Cemetery:             cemetery,
		GraduatedClaims:      graduated,
		TranslatorFrameworks: frameworks,
		CostLimitUSD:         b.costLimitUSD,
		TakenAt:              time.Now(),
	}
}

// IncrementCycle advances the cycle counter by exactly one and ages every
// frontier idea. Returns the new count.
func (b *Blackboard) IncrementCycle() int {
	b.mu.Lock()
	b.cycleCount++
	cycle := b.cycleCount
	for _, f := range b.frontierPool {
		f.CyclesAlive++
	}
	b.mu.Unlock()

	if b.sink != nil {
		b.sink.CycleCountChanged(b.sessionID, cycle)
	}
	return cycle
}

// UpdateClaim replaces the current claim. Death handling is the caller's
// responsibility: the old claim, if alive, is simply overwritten.
func (b *Blackboard) UpdateClaim(text string) error {
	if text == "" {
		return ErrEmptyClaim
	}
	b.mu.Lock()
	b.currentClaim = text
	cycle := b.cycleCount
	b.mu.Unlock()

	if b.sink != nil {
		b.sink.ClaimUpdated(b.sessionID, text, cycle)
	}
	return nil
}

// UpdateSupport adds delta to the support strength and clamps the result to
// [0, 1]. If the new value drops to or below the death threshold while a
// claim is alive, the claim is moved to the cemetery with the supplied cause
// and the current claim becomes null. If the new value reaches the
// graduation threshold, the claim is appended to graduated_claims; the
// caller completes the session. The returned outcome distinguishes the
// three cases.
func (b *Blackboard) UpdateSupport(delta float64, cause string) (SupportOutcome, float64) {
	b.mu.Lock()

	s := b.supportStrength + delta
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	b.supportStrength = s
	cycle := b.cycleCount

	if s <= DeathThreshold && b.currentClaim != "" {
		dead := b.currentClaim
		if cause == "" {
			cause = "decay"
		}
		b.cemetery = append(b.cemetery, CemeteryEntry{
			Claim:        dead,
			CauseOfDeath: cause,
			FinalSupport: s,
			CycleKilled:  cycle,
		})
		b.currentClaim = ""
		b.mu.Unlock()

		if b.sink != nil {
			b.sink.SupportUpdated(b.sessionID, s, cycle)
			b.sink.ClaimDied(b.sessionID, dead, cause, s, cycle)
		}
		return SupportDeath, s
	}

	if s >= GraduationThreshold && b.currentClaim != "" {
		claim := b.currentClaim
		b.graduatedClaims = append(b.graduatedClaims, GraduatedClaim{
			Claim:          claim,
			CycleGraduated: cycle,
			FinalSupport:   s,
		})
		b.mu.Unlock()

		if b.sink != nil {
			b.sink.SupportUpdated(b.sessionID, s, cycle)
			b.sink.ClaimGraduated(b.sessionID, claim, s, cycle)
		}
		return SupportGraduation, s
	}

	b.mu.Unlock()
	if b.sink != nil {
		b.sink.SupportUpdated(b.sessionID, s, cycle)
	}
	return SupportMoved, s
}

// Decay subtracts rate from the support strength, clamping to the decay
// floor. A value already below the floor (claim dead, awaiting
// resurrection) is left untouched — decay never pushes support upward.
// Decay alone never kills: the floor equals the death threshold and death
// requires dropping below it via UpdateSupport.
func (b *Blackboard) Decay(rate float64) float64 {
	b.mu.Lock()
	if b.currentClaim == "" || b.supportStrength < DecayFloor {
		s := b.supportStrength
		b.mu.Unlock()
		return s
	}
	s := b.supportStrength - rate
	if s < DecayFloor {
		s = DecayFloor
	}
	b.supportStrength = s
	cycle := b.cycleCount
	b.mu.Unlock()

	if b.sink != nil {
		b.sink.SupportUpdated(b.sessionID, s, cycle)
	}
	return s
}

// SetActiveObjection records the standing objection against the claim.
func (b *Blackboard) SetActiveObjection(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activeObjection = text
}

// SetAnalogy records the analogy of record.
func (b *Blackboard) SetAnalogy(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.analogyOfRecord = text
}

// AddTranslatorFramework adds a framework to the dedup set. Returns false
// if the framework was already used.
func (b *Blackboard) AddTranslatorFramework(framework string) bool {
	if framework == "" {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frameworksUsed[framework] {
		return false
	}
	b.frameworksUsed[framework] = true
	return true
}

// InstallClaim installs a resurrected claim with the given support. Only
// legal while the current claim is null.
func (b *Blackboard) InstallClaim(text string, support float64) error {
	if text == "" {
		return ErrEmptyClaim
	}
	if support < 0 || support > 1 {
		return ErrSupportOutOfRange
	}
	b.mu.Lock()
	if b.currentClaim != "" {
		b.mu.Unlock()
		return ErrClaimAlive
	}
	b.currentClaim = text
	b.supportStrength = support
	cycle := b.cycleCount
	b.mu.Unlock()

	if b.sink != nil {
		b.sink.ClaimUpdated(b.sessionID, text, cycle)
		b.sink.SupportUpdated(b.sessionID, support, cycle)
	}
	return nil
}
