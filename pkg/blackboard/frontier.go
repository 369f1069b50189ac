package blackboard

import "math/rand/v2"

// sponsorshipMinimum is the sponsor count a frontier idea needs before it
// becomes eligible for weighted resurrection.
const sponsorshipMinimum = 2

// fallbackSupport is the installed support when resurrection falls back to
// an under-sponsored frontier.
const fallbackSupport = 0.4

// AddFrontier registers a candidate idea. No-op if the id already exists.
func (b *Blackboard) AddFrontier(ideaID, ideaText string) error {
	if ideaText == "" {
		return ErrEmptyClaim
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.frontierPool[ideaID]; exists {
		return nil
	}
	b.frontierPool[ideaID] = &FrontierIdea{ID: ideaID, IdeaText: ideaText}
	b.frontierOrder = append(b.frontierOrder, ideaID)
	return nil
}

// Sponsor increments the sponsor count of an idea.
func (b *Blackboard) Sponsor(ideaID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.frontierPool[ideaID]
	if !ok {
		return ErrUnknownFrontier
	}
	f.SponsorCount++
	return nil
}

// ActivateFrontier marks an idea as activated. Activated ideas are never
// selected again.
func (b *Blackboard) ActivateFrontier(ideaID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.frontierPool[ideaID]
	if !ok {
		return ErrUnknownFrontier
	}
	if f.Activated {
		return ErrFrontierActivated
	}
	f.Activated = true
	return nil
}

// EligibleFrontiers returns unactivated ideas with enough sponsors, in
// insertion order.
func (b *Blackboard) EligibleFrontiers() []FrontierIdea {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.eligibleLocked()
}

func (b *Blackboard) eligibleLocked() []FrontierIdea {
	var out []FrontierIdea
	for _, id := range b.frontierOrder {
		f := b.frontierPool[id]
		if !f.Activated && f.SponsorCount >= sponsorshipMinimum {
			out = append(out, *f)
		}
	}
	return out
}

// SelectWeightedFrontier picks an eligible idea with probability
// proportional to its sponsor count. Returns ErrNoFrontiers when no idea
// is eligible.
func (b *Blackboard) SelectWeightedFrontier(rng *rand.Rand) (FrontierIdea, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return weightedPick(b.eligibleLocked(), rng)
}

func weightedPick(eligible []FrontierIdea, rng *rand.Rand) (FrontierIdea, error) {
	if len(eligible) == 0 {
		return FrontierIdea{}, ErrNoFrontiers
	}
	total := 0
	for _, f := range eligible {
		total += f.SponsorCount
	}
	if total <= 0 {
		return eligible[0], nil
	}
	n := rng.IntN(total)
	for _, f := range eligible {
		n -= f.SponsorCount
		if n < 0 {
			return f, nil
		}
	}
	return eligible[len(eligible)-1], nil
}

// Resurrection is the outcome of a frontier selection for resurrection.
type Resurrection struct {
	Idea    FrontierIdea
	Support float64
}

// SelectForResurrection picks the frontier that replaces a dead claim:
//
//  1. weighted random among eligible frontiers (sponsor weight);
//  2. else the first eligible frontier;
//  3. else the unactivated frontier with the highest sponsor count,
//     installed at reduced support;
//  4. else ErrNoFrontiers — the session has nowhere left to go.
//
// The selected idea is NOT activated here; the caller activates it after a
// successful install so a failed install leaves the pool untouched.
func (b *Blackboard) SelectForResurrection(rng *rand.Rand) (Resurrection, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eligible := b.eligibleLocked()
	if len(eligible) > 0 {
		idea, err := weightedPick(eligible, rng)
		if err == nil {
			return Resurrection{Idea: idea, Support: InitialSupport}, nil
		}
		return Resurrection{Idea: eligible[0], Support: InitialSupport}, nil
	}

	var best *FrontierIdea
	for _, id := range b.frontierOrder {
		f := b.frontierPool[id]
		if f.Activated {
			continue
		}
		if best == nil || f.SponsorCount > best.SponsorCount {
			best = f
		}
	}
	if best == nil {
		return Resurrection{}, ErrNoFrontiers
	}
	return Resurrection{Idea: *best, Support: fallbackSupport}, nil
}
