package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

func TestBuiltinRegistryCoversAllRoles(t *testing.T) {
	r := NewBuiltinRegistry([]string{"model-a", "model-b"})
	for _, role := range AllRoles {
		a, ok := r.Get(role)
		require.True(t, ok, "role %s", role)
		assert.Equal(t, role, a.Role())
	}
}

func TestBuiltinAgentsProduceValidOutputs(t *testing.T) {
	r := NewBuiltinRegistry([]string{"model-a"})
	snap := &blackboard.Snapshot{
		SessionID:       "session_000001",
		SeedClaim:       "attention is a zero-sum resource",
		CurrentClaim:    "attention is a zero-sum resource",
		SupportStrength: 0.5,
		CycleCount:      3,
	}

	for _, role := range AllRoles {
		a, _ := r.Get(role)
		p, err := a.Execute(context.Background(), snap)
		require.NoError(t, err, "role %s", role)
		require.NotNil(t, p.Output, "role %s", role)
		assert.True(t, p.Output.IsValid(), "role %s", role)
		assert.Equal(t, role, p.Output.OutputRole(), "role %s", role)
		assert.Equal(t, "model-a", p.Model)
	}
}

func TestBuiltinModelPickIsDeterministic(t *testing.T) {
	r := NewBuiltinRegistry([]string{"a", "b", "c"})
	snap := &blackboard.Snapshot{CurrentClaim: "claim", CycleCount: 2}

	a, _ := r.Get(RoleExplorer)
	p1, err := a.Execute(context.Background(), snap)
	require.NoError(t, err)
	p2, err := a.Execute(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, p1.Model, p2.Model)
}

func TestBuiltinCartographerEmitsFrontier(t *testing.T) {
	r := NewBuiltinRegistry(nil)
	snap := &blackboard.Snapshot{CurrentClaim: "claim", CycleCount: 5}

	a, _ := r.Get(RoleCartographer)
	p, err := a.Execute(context.Background(), snap)
	require.NoError(t, err)
	out := p.Output.(CartographerOutput)
	assert.NotEmpty(t, out.FrontierID)
	assert.NotEmpty(t, out.Frontier)
}

func TestBuiltinTranslatorAvoidsUsedFrameworks(t *testing.T) {
	r := NewBuiltinRegistry(nil)
	a, _ := r.Get(RoleTranslator)

	snap := &blackboard.Snapshot{CurrentClaim: "claim"}
	p, err := a.Execute(context.Background(), snap)
	require.NoError(t, err)
	first := p.Output.(TranslatorOutput).Framework

	snap.TranslatorFrameworks = []string{first}
	p, err = a.Execute(context.Background(), snap)
	require.NoError(t, err)
	assert.NotEqual(t, first, p.Output.(TranslatorOutput).Framework)
}

func TestBuiltinFallsBackToSeedClaim(t *testing.T) {
	r := NewBuiltinRegistry(nil)
	a, _ := r.Get(RoleExplorer)

	snap := &blackboard.Snapshot{SeedClaim: "the seed survives", CurrentClaim: ""}
	p, err := a.Execute(context.Background(), snap)
	require.NoError(t, err)
	assert.Contains(t, p.Output.(ExplorerOutput).NewClaim, "the seed survives")
}
