package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/arbiter"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

// perturbProbability gates the perturbation phase. Drawn independently of
// the scheduler's own Perturber draw.
const perturbProbability = 0.2

type cycleOutcome int

const (
	cycleContinue cycleOutcome = iota
	cycleCompleted
	cycleFailed
	cycleStopped
)

type cycleResult struct {
	outcome cycleOutcome
	reason  string
}

// causeFor maps an accepted role to the cemetery cause used when its
// support delta kills the claim.
func causeFor(role agent.Role) string {
	if role == agent.RoleCritic {
		return "objection"
	}
	return "decay"
}

// runCycle executes one full cycle pipeline. Phase order: read the
// snapshot, resurrect a dead claim, dispatch agents, apply arbiter
// verdicts, apply the novelty bonus, decay, resurrect again, maybe
// perturb, then persist and emit cycle_complete.
func (r *Runner) runCycle() cycleResult {
	start := time.Now()
	ctx := r.cycleCtx
	cycle := r.bb.CycleCount()

	if cycle > r.cfg.MaxCycles {
		return cycleResult{cycleCompleted, ReasonMaxCycles}
	}

	if r.deps.Publisher != nil {
		r.deps.Publisher.PublishCycleStarted(r.sessionID, r.blackboardID, cycle)
	}
	log := slog.With("session_id", r.sessionID, "cycle", cycle)

	// READ
	snap := r.bb.Snapshot()
	startClaim := snap.CurrentClaim
	startSupport := snap.SupportStrength

	// RESURRECT (pre-cycle)
	if !snap.HasClaim() {
		exhausted, err := r.resurrect(log)
		if err != nil {
			return cycleResult{cycleFailed, "resurrection failed: " + err.Error()}
		}
		if exhausted {
			return cycleResult{cycleCompleted, ReasonNoFrontiers}
		}
		snap = r.bb.Snapshot()
	}

	traj, trajErr := r.deps.Trajectory.Trajectory(ctx, r.sessionID)
	if trajErr != nil {
		log.Warn("Trajectory unavailable this cycle", "error", trajErr)
		traj = nil
	}

	// WRITE
	outcome := &dispatch.Outcome{}
	if r.dispatchSuppressed() {
		log.Warn("Agent dispatch suppressed by cost limit")
	} else {
		roles, err := r.deps.Scheduler.Schedule(cycle, snap, traj)
		if err != nil {
			return cycleResult{cycleFailed, "scheduling failed: " + err.Error()}
		}
		if len(roles) == 0 {
			if r.cfg.CycleMode == config.CycleModeEventDriven {
				return cycleResult{cycleFailed, "no_agents_spawned"}
			}
			// time_based: proceed with an empty result set.
		} else {
			outcome = r.deps.Dispatcher.Dispatch(ctx, roles, snap, cycle, r.cfg.AgentDeadline())
			if ctx.Err() != nil {
				return cycleResult{cycleStopped, ""}
			}
			if outcome.Successes() == 0 {
				log.Warn("Empty cycle: every agent timed out or errored",
					"roles", len(roles), "timeouts", outcome.Timeouts, "errors", outcome.Errors)
			}
		}
	}

	// ARBITER
	accepted := arbiter.Arbitrate(outcome.Results, snap)
	graduated, err := r.applyAccepted(accepted)
	if err != nil {
		return cycleResult{cycleFailed, "arbiter_failed: " + err.Error()}
	}
	r.markAccepted(ctx, accepted, log)

	exhausted := false
	if !graduated {
		// NOVELTY BONUS
		if r.cfg.NoveltyEnabled() && trajErr == nil {
			graduated = r.applyNoveltyBonus(ctx, traj, log)
		}
	}

	if !graduated {
		// DECAY
		r.bb.Decay(r.cfg.DecayRate)

		// RESURRECT (post-decay)
		if !r.bb.Snapshot().HasClaim() {
			exhausted, err = r.resurrect(log)
			if err != nil {
				return cycleResult{cycleFailed, "resurrection failed: " + err.Error()}
			}
		}

		// PERTURB
		if !exhausted && r.rng.Float64() <= perturbProbability {
			if idea, err := r.bb.SelectWeightedFrontier(r.rng); err == nil {
				if err := r.bb.ActivateFrontier(idea.ID); err == nil {
					log.Info("Perturbation activated frontier", "frontier_id", idea.ID)
				}
			}
		}
	}

	// RESET
	final := r.bb.Snapshot()
	r.persistCycle(ctx, final, log)
	r.fireBackgroundWork(final, startClaim, startSupport, cycle)
	if r.deps.Publisher != nil {
		r.deps.Publisher.PublishCycleComplete(ctx, r.sessionID, cycle,
			time.Since(start), final.SupportStrength, final.CurrentClaim)
	}
	r.checkCostLimit(ctx, log)

	next := r.bb.IncrementCycle()
	switch {
	case graduated:
		return cycleResult{cycleCompleted, ReasonGraduated}
	case exhausted:
		return cycleResult{cycleCompleted, ReasonNoFrontiers}
	case next > r.cfg.MaxCycles:
		return cycleResult{cycleCompleted, ReasonMaxCycles}
	default:
		return cycleResult{cycleContinue, ""}
	}
}

// resurrect replaces a dead claim from the frontier pool. Returns
// exhausted=true when no frontier is left anywhere.
func (r *Runner) resurrect(log *slog.Logger) (exhausted bool, err error) {
	res, err := r.bb.SelectForResurrection(r.rng)
	if errors.Is(err, blackboard.ErrNoFrontiers) {
		log.Info("No frontiers available for resurrection")
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if err := r.bb.InstallClaim(res.Idea.IdeaText, res.Support); err != nil {
		return false, err
	}
	if err := r.bb.ActivateFrontier(res.Idea.ID); err != nil {
		return false, err
	}
	log.Info("Resurrected claim from frontier",
		"frontier_id", res.Idea.ID, "support", res.Support, "sponsors", res.Idea.SponsorCount)
	return false, nil
}

// applyAccepted applies the arbiter's verdicts in the defined order:
// Explorer claim replacements first, then Critic objections, then
// Connector analogies, then everything else. Each acceptance also moves
// support by its confidence delta. Within a role, last writer wins.
// Returns graduated=true as soon as a delta crosses the graduation
// threshold; remaining deltas are not applied.
func (r *Runner) applyAccepted(accepted []arbiter.Accepted) (bool, error) {
	apply := func(a arbiter.Accepted) (bool, error) {
		switch out := a.Output.(type) {
		case agent.ExplorerOutput:
			if err := r.bb.UpdateClaim(out.NewClaim); err != nil {
				return false, err
			}
		case agent.CriticOutput:
			r.bb.SetActiveObjection(out.Objection)
		case agent.ConnectorOutput:
			r.bb.SetAnalogy(out.Analogy)
		case agent.TranslatorOutput:
			r.bb.AddTranslatorFramework(out.Framework)
		case agent.CartographerOutput:
			r.noteFrontier(out.FrontierID, out.Frontier)
		case agent.PerturberOutput:
			r.noteFrontier(out.FrontierID, out.Frontier)
		}
		outcome, _ := r.bb.UpdateSupport(a.ConfidenceDelta, causeFor(a.Role))
		return outcome == blackboard.SupportGraduation, nil
	}

	order := []func(agent.Role) bool{
		func(role agent.Role) bool { return role == agent.RoleExplorer },
		func(role agent.Role) bool { return role == agent.RoleCritic },
		func(role agent.Role) bool { return role == agent.RoleConnector },
		func(role agent.Role) bool {
			return role != agent.RoleExplorer && role != agent.RoleCritic && role != agent.RoleConnector
		},
	}
	for _, match := range order {
		for _, a := range accepted {
			if !match(a.Role) {
				continue
			}
			graduated, err := apply(a)
			if err != nil || graduated {
				return graduated, err
			}
		}
	}
	return false, nil
}

// noteFrontier adds a proposed frontier idea with its proposer as the
// first sponsor.
func (r *Runner) noteFrontier(id, text string) {
	if id == "" || text == "" {
		return
	}
	if err := r.bb.AddFrontier(id, text); err != nil {
		return
	}
	_ = r.bb.Sponsor(id)
}

// markAccepted flags the accepted contribution rows. Best-effort.
func (r *Runner) markAccepted(ctx context.Context, accepted []arbiter.Accepted, log *slog.Logger) {
	if r.deps.Contributions == nil {
		return
	}
	var ids []string
	for _, a := range accepted {
		if a.ContributionID != "" {
			ids = append(ids, a.ContributionID)
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := r.deps.Contributions.MarkAccepted(ctx, ids); err != nil {
		log.Warn("Failed to mark contributions accepted", "count", len(ids), "error", err)
	}
}

// applyNoveltyBonus embeds the live claim, scores its novelty against the
// trajectory, and applies the positive support delta only. Returns true
// when the bonus graduates the claim.
func (r *Runner) applyNoveltyBonus(ctx context.Context, traj []trajectory.Point, log *slog.Logger) bool {
	snap := r.bb.Snapshot()
	if !snap.HasClaim() {
		return false
	}
	vec, err := r.deps.Trajectory.Embed(ctx, snap.CurrentClaim)
	if err != nil {
		log.Warn("Skipping novelty bonus: embedding failed", "error", err)
		return false
	}
	novelty := trajectory.Novelty(vec, traj)
	boosted := trajectory.ApplyNoveltyBonus(novelty, snap.SupportStrength)
	delta := boosted - snap.SupportStrength
	if delta <= 0 {
		return false
	}
	outcome, support := r.bb.UpdateSupport(delta, "")
	log.Debug("Applied novelty bonus", "novelty", novelty, "delta", delta, "support", support)
	return outcome == blackboard.SupportGraduation
}

// persistCycle writes the blackboard record, the history snapshot, and the
// trajectory point. All three are non-critical rows: failures are logged
// and the cycle continues.
func (r *Runner) persistCycle(ctx context.Context, snap *blackboard.Snapshot, log *slog.Logger) {
	if r.deps.Blackboards != nil {
		if err := r.deps.Blackboards.SaveBlackboard(ctx, r.blackboardID, snap); err != nil {
			log.Warn("Failed to persist blackboard", "error", err)
		}
		if err := r.deps.Blackboards.AppendSnapshot(ctx, r.blackboardID, snap); err != nil {
			log.Warn("Failed to append blackboard snapshot", "error", err)
		}
	}

	if snap.HasClaim() {
		vec, err := r.deps.Trajectory.Embed(ctx, snap.CurrentClaim)
		if err != nil {
			log.Warn("Skipping trajectory point: embedding failed", "error", err)
			return
		}
		point := trajectory.Point{
			SessionID:       r.sessionID,
			CycleNumber:     snap.CycleCount,
			Embedding:       vec,
			ClaimText:       snap.CurrentClaim,
			SupportStrength: snap.SupportStrength,
		}
		if err := r.deps.Trajectory.Append(ctx, point); err != nil {
			log.Warn("Failed to append trajectory point", "error", err)
		}
	}
}

// fireBackgroundWork launches the summarizer and change detector. Their
// failures never affect the cycle result.
func (r *Runner) fireBackgroundWork(snap *blackboard.Snapshot, startClaim string, startSupport float64, cycle int) {
	if r.deps.Summarizer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := r.deps.Summarizer.Summarize(ctx, snap); err != nil {
				slog.Warn("Summarizer failed", "session_id", r.sessionID, "cycle", cycle, "error", err)
			}
		}()
	}
	if r.deps.ChangeDetector != nil && snap.CurrentClaim != startClaim {
		change := ClaimChange{
			SessionID:   r.sessionID,
			Cycle:       cycle,
			FromClaim:   startClaim,
			ToClaim:     snap.CurrentClaim,
			FromSupport: startSupport,
			ToSupport:   snap.SupportStrength,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := r.deps.ChangeDetector.Detect(ctx, change); err != nil {
				slog.Warn("Change detector failed", "session_id", r.sessionID, "cycle", cycle, "error", err)
			}
		}()
	}
}

// checkCostLimit trips the dispatch suppression gate once the recorded
// spend reaches the advisory limit. The current cycle always completes.
func (r *Runner) checkCostLimit(ctx context.Context, log *slog.Logger) {
	if r.cfg.CostLimitUSD <= 0 || r.deps.Costs == nil || r.dispatchSuppressed() {
		return
	}
	total, err := r.deps.Costs.SessionCost(ctx, r.sessionID)
	if err != nil {
		log.Warn("Failed to query session cost", "error", err)
		return
	}
	if total >= r.cfg.CostLimitUSD {
		log.Warn("Cost limit reached: suppressing further agent dispatch",
			"total_usd", total, "limit_usd", r.cfg.CostLimitUSD)
		r.mu.Lock()
		r.suppressed = true
		r.mu.Unlock()
	}
}
