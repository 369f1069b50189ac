package arbiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
)

func snap() *blackboard.Snapshot {
	return &blackboard.Snapshot{
		SessionID:       "session_000001",
		CurrentClaim:    "markets aggregate information efficiently",
		SupportStrength: 0.5,
	}
}

func slot(role agent.Role, out agent.Output, delta float64) dispatch.Result {
	return dispatch.Result{
		Role:     role,
		Proposal: &agent.Proposal{Role: role, Output: out, ConfidenceDelta: delta},
	}
}

func TestArbitrateDropsFailedSlots(t *testing.T) {
	results := []dispatch.Result{
		{Role: agent.RoleExplorer, Err: &dispatch.AgentError{Kind: dispatch.ErrorTimeout, Role: agent.RoleExplorer}},
		slot(agent.RoleSteelman, agent.SteelmanOutput{Validity: agent.Valid(), Reinforcement: "r"}, 0.03),
	}
	accepted := Arbitrate(results, snap())
	require.Len(t, accepted, 1)
	assert.Equal(t, agent.RoleSteelman, accepted[0].Role)
}

func TestArbitrateDropsInvalidOutputs(t *testing.T) {
	results := []dispatch.Result{
		slot(agent.RoleExplorer, agent.ExplorerOutput{NewClaim: "fine claim"}, 0.03), // Valid unset
	}
	assert.Empty(t, Arbitrate(results, snap()))
}

func TestArbitrateStripsTransitionalPrefix(t *testing.T) {
	results := []dispatch.Result{
		slot(agent.RoleExplorer, agent.ExplorerOutput{
			Validity: agent.Valid(),
			NewClaim: "Therefore, markets only aggregate local information",
		}, 0.03),
	}
	accepted := Arbitrate(results, snap())
	require.Len(t, accepted, 1)
	out := accepted[0].Output.(agent.ExplorerOutput)
	assert.Equal(t, "markets only aggregate local information", out.NewClaim)
}

func TestArbitrateDropsClaimThatStripsToNothing(t *testing.T) {
	results := []dispatch.Result{
		slot(agent.RoleExplorer, agent.ExplorerOutput{Validity: agent.Valid(), NewClaim: "Therefore, thus"}, 0.03),
	}
	assert.Empty(t, Arbitrate(results, snap()))
}

func TestArbitrateCriticInterlock(t *testing.T) {
	results := []dispatch.Result{
		slot(agent.RoleExplorer, agent.ExplorerOutput{
			Validity: agent.Valid(),
			NewClaim: "prices encode all public information",
		}, 0.03),
		slot(agent.RoleCritic, agent.CriticOutput{
			Validity:      agent.Valid(),
			Objection:     "this premise is not yet established",
			TargetPremise: "  Prices Encode All Public Information  ",
		}, -0.04),
	}
	accepted := Arbitrate(results, snap())
	require.Len(t, accepted, 1, "Critic targeting the Explorer's fresh claim is dropped")
	assert.Equal(t, agent.RoleExplorer, accepted[0].Role)
}

func TestArbitrateCriticAgainstOtherPremiseSurvives(t *testing.T) {
	results := []dispatch.Result{
		slot(agent.RoleExplorer, agent.ExplorerOutput{
			Validity: agent.Valid(),
			NewClaim: "prices encode all public information",
		}, 0.03),
		slot(agent.RoleCritic, agent.CriticOutput{
			Validity:      agent.Valid(),
			Objection:     "efficiency assumes frictionless trading",
			TargetPremise: "trading is frictionless",
		}, -0.04),
	}
	accepted := Arbitrate(results, snap())
	assert.Len(t, accepted, 2)
}

func TestArbitrateCriticAgainstConclusionIndicator(t *testing.T) {
	results := []dispatch.Result{
		slot(agent.RoleCritic, agent.CriticOutput{
			Validity:      agent.Valid(),
			Objection:     "the inference is invalid",
			TargetPremise: "therefore",
		}, -0.04),
	}
	assert.Empty(t, Arbitrate(results, snap()))
}

func TestArbitrateConnectorCompleteness(t *testing.T) {
	incomplete := slot(agent.RoleConnector, agent.ConnectorOutput{
		Validity:     agent.Valid(),
		Analogy:      "markets are ecosystems",
		SourceDomain: "ecology",
		// MappingExplanation missing
	}, 0.02)
	complete := slot(agent.RoleConnector, agent.ConnectorOutput{
		Validity:           agent.Valid(),
		Analogy:            "markets are ecosystems",
		SourceDomain:       "ecology",
		MappingExplanation: "both allocate scarce resources through competition",
	}, 0.02)

	assert.Empty(t, Arbitrate([]dispatch.Result{incomplete}, snap()))

	accepted := Arbitrate([]dispatch.Result{complete}, snap())
	require.Len(t, accepted, 1)
	assert.Equal(t, agent.RoleConnector, accepted[0].Role)
}

func TestArbitratePreservesDeltaAndContributionID(t *testing.T) {
	r := slot(agent.RoleQuantifier, agent.QuantifierOutput{Validity: agent.Valid(), Quantification: "q"}, 0.017)
	r.ContributionID = "contrib-42"

	accepted := Arbitrate([]dispatch.Result{r}, snap())
	require.Len(t, accepted, 1)
	assert.Equal(t, 0.017, accepted[0].ConfidenceDelta)
	assert.Equal(t, "contrib-42", accepted[0].ContributionID)
}

func TestArbitrateEmptyCycle(t *testing.T) {
	assert.Empty(t, Arbitrate(nil, snap()))
}
