// Package arbiter applies the acceptance rules that turn a cycle's raw
// agent results into the mutations the runner applies. Arbitrate is a
// pure function: it never touches the blackboard.
package arbiter

import (
	"strings"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
)

// Accepted is one contribution that survived arbitration, carried to the
// runner with its original confidence delta. ContributionID links back to
// the persisted row so the runner can flag it accepted.
type Accepted struct {
	Role            agent.Role
	Output          agent.Output
	ConfidenceDelta float64
	ContributionID  string
}

// Arbitrate evaluates the acceptance rules per result, in dispatcher
// order:
//
//  1. error/timeout/crash slots are dropped;
//  2. outputs self-marked invalid are dropped;
//  3. a Critic targeting a valid Explorer's not-yet-accepted claim is
//     dropped (the interlock — matching is case-insensitive and trimmed);
//  4. a Critic targeting a bare conclusion indicator is dropped;
//  5. a Connector missing any of analogy, source domain or mapping
//     explanation is dropped;
//  6. everything else is accepted with its original confidence delta.
//
// Accepted Explorer claims have transitional prefixes stripped; a claim
// that strips to nothing is dropped as invalid.
func Arbitrate(results []dispatch.Result, snap *blackboard.Snapshot) []Accepted {
	// First pass: collect the valid Explorer claims for the interlock.
	var explorerClaims []string
	for i := range results {
		r := &results[i]
		if !r.OK() {
			continue
		}
		if out, ok := r.Proposal.Output.(agent.ExplorerOutput); ok && out.IsValid() {
			explorerClaims = append(explorerClaims, normalizePremise(out.NewClaim))
		}
	}

	var accepted []Accepted
	for i := range results {
		r := &results[i]
		if !r.OK() {
			continue // rule 1
		}
		out := r.Proposal.Output
		if !out.IsValid() {
			continue // rule 2
		}

		switch o := out.(type) {
		case agent.ExplorerOutput:
			stripped := agent.StripTransitionalPrefix(o.NewClaim)
			if stripped == "" {
				continue
			}
			o.NewClaim = stripped
			out = o

		case agent.CriticOutput:
			if targetsExplorer(o.TargetPremise, explorerClaims) {
				continue // rule 3
			}
			if agent.IsConclusionIndicator(o.TargetPremise) {
				continue // rule 4
			}

		case agent.ConnectorOutput:
			if strings.TrimSpace(o.Analogy) == "" ||
				strings.TrimSpace(o.SourceDomain) == "" ||
				strings.TrimSpace(o.MappingExplanation) == "" {
				continue // rule 5
			}
		}

		accepted = append(accepted, Accepted{
			Role:            r.Role,
			Output:          out,
			ConfidenceDelta: r.Proposal.ConfidenceDelta,
			ContributionID:  r.ContributionID,
		})
	}
	_ = snap // the snapshot is part of the contract; current rules don't consult it
	return accepted
}

func targetsExplorer(premise string, explorerClaims []string) bool {
	p := normalizePremise(premise)
	for _, claim := range explorerClaims {
		if p == claim {
			return true
		}
	}
	return false
}

func normalizePremise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
