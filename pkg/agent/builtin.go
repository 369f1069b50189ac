package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

// NewBuiltinRegistry registers a deterministic heuristic agent for every
// role. These agents never perform I/O: they derive plausible proposals
// from the snapshot alone, which serves offline runs and tests. Real
// model-backed agents replace individual entries via Register.
func NewBuiltinRegistry(modelPool []string) *Registry {
	r := NewRegistry()
	for _, role := range AllRoles {
		r.Register(builtinAgent{role: role, modelPool: modelPool})
	}
	return r
}

type builtinAgent struct {
	role      Role
	modelPool []string
}

func (a builtinAgent) Role() Role { return a.role }

func (a builtinAgent) Execute(_ context.Context, snap *blackboard.Snapshot) (*Proposal, error) {
	return &Proposal{
		Role:            a.role,
		Model:           a.model(snap),
		Output:          a.output(snap),
		ConfidenceDelta: builtinDeltas[a.role],
	}, nil
}

// model picks deterministically from the pool, varying by role and cycle.
func (a builtinAgent) model(snap *blackboard.Snapshot) string {
	if len(a.modelPool) == 0 {
		return ""
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(a.role))
	return a.modelPool[(int(h.Sum32())+snap.CycleCount)%len(a.modelPool)]
}

// builtinDeltas keeps the heuristic agents mildly constructive: critics
// push down, everyone else nudges up or stays neutral.
var builtinDeltas = map[Role]float64{
	RoleExplorer:        0.03,
	RoleCritic:          -0.04,
	RoleConnector:       0.02,
	RoleSteelman:        0.03,
	RoleOperationalizer: 0.02,
	RoleQuantifier:      0.01,
	RoleReducer:         0.01,
	RoleBoundaryHunter:  -0.02,
	RoleTranslator:      0.01,
	RoleHistorian:       0,
	RoleGraveKeeper:     0.02,
	RoleCartographer:    0,
	RolePerturber:       -0.01,
}

func (a builtinAgent) output(snap *blackboard.Snapshot) Output {
	claim := snap.CurrentClaim
	if claim == "" {
		claim = snap.SeedClaim
	}
	subject := firstWords(claim, 6)

	switch a.role {
	case RoleExplorer:
		return ExplorerOutput{
			Validity: Valid(),
			NewClaim: fmt.Sprintf("%s under a narrower reading of its strongest premise", claim),
		}
	case RoleCritic:
		return CriticOutput{
			Validity:      Valid(),
			Objection:     fmt.Sprintf("The claim assumes %s without independent evidence", subject),
			TargetPremise: subject,
		}
	case RoleConnector:
		return ConnectorOutput{
			Validity:           Valid(),
			Analogy:            fmt.Sprintf("%s behaves like a feedback-regulated system", subject),
			SourceDomain:       "control theory",
			MappingExplanation: "both stabilize around a set point under repeated correction",
		}
	case RoleSteelman:
		return SteelmanOutput{
			Validity:      Valid(),
			Reinforcement: fmt.Sprintf("Even granting the weakest premise, %s survives under conservative assumptions", subject),
		}
	case RoleOperationalizer:
		return OperationalizerOutput{
			Validity:  Valid(),
			Procedure: fmt.Sprintf("Define a measurable proxy for %s and test it against held-out cases", subject),
		}
	case RoleQuantifier:
		return QuantifierOutput{
			Validity:       Valid(),
			Quantification: fmt.Sprintf("The effect behind %s should exceed noise by at least one order of magnitude", subject),
		}
	case RoleReducer:
		return ReducerOutput{
			Validity:  Valid(),
			Reduction: subject,
		}
	case RoleBoundaryHunter:
		return BoundaryHunterOutput{
			Validity: Valid(),
			Boundary: fmt.Sprintf("%s stops holding at the extremes of its domain", subject),
		}
	case RoleTranslator:
		framework := nextFramework(snap.TranslatorFrameworks)
		return TranslatorOutput{
			Validity:    Valid(),
			Framework:   framework,
			Translation: fmt.Sprintf("Restated in %s terms: %s", framework, claim),
		}
	case RoleHistorian:
		return HistorianOutput{
			Validity:    Valid(),
			Perspective: fmt.Sprintf("After %d cycles and %d deaths, the line of argument has narrowed", snap.CycleCount, len(snap.Cemetery)),
		}
	case RoleGraveKeeper:
		salvage := "no salvageable material yet"
		if n := len(snap.Cemetery); n > 0 {
			salvage = fmt.Sprintf("the premise behind %q may survive its refutation", firstWords(snap.Cemetery[n-1].Claim, 6))
		}
		return GraveKeeperOutput{Validity: Valid(), Salvage: salvage}
	case RoleCartographer:
		return CartographerOutput{
			Validity:   Valid(),
			MapSummary: fmt.Sprintf("The trajectory circles %s; adjacent regions remain unexplored", subject),
			FrontierID: fmt.Sprintf("cart-%s-%d", shortHash(claim), snap.CycleCount),
			Frontier:   fmt.Sprintf("The inverse of %s deserves direct examination", subject),
		}
	case RolePerturber:
		return PerturberOutput{
			Validity:     Valid(),
			Perturbation: fmt.Sprintf("Suppose %s is an artifact of framing rather than a fact", subject),
			FrontierID:   fmt.Sprintf("pert-%s-%d", shortHash(claim), snap.CycleCount),
			Frontier:     fmt.Sprintf("%s restated from the adversarial frame", subject),
		}
	default:
		return ExplorerOutput{NewClaim: claim}
	}
}

var builtinFrameworks = []string{
	"information theory", "evolutionary dynamics", "game theory",
	"thermodynamics", "bayesian inference",
}

// nextFramework returns the first framework the session has not used.
func nextFramework(used []string) string {
	seen := make(map[string]bool, len(used))
	for _, u := range used {
		seen[u] = true
	}
	for _, f := range builtinFrameworks {
		if !seen[f] {
			return f
		}
	}
	return builtinFrameworks[0]
}

func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func shortHash(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%06x", h.Sum32()&0xffffff)
}
