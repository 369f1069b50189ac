package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

func testSnapshot() *blackboard.Snapshot {
	return &blackboard.Snapshot{
		SessionID:       "session_000001",
		CurrentClaim:    "a live claim",
		SupportStrength: 0.5,
	}
}

func okAgent(role agent.Role, delta float64) agent.Agent {
	return agent.Func{
		AgentRole: role,
		Fn: func(context.Context, *blackboard.Snapshot) (*agent.Proposal, error) {
			return &agent.Proposal{
				Role:            role,
				Model:           "test-model",
				Output:          agent.ExplorerOutput{Validity: agent.Valid(), NewClaim: "refined"},
				ConfidenceDelta: delta,
			}, nil
		},
	}
}

func registryWith(agents ...agent.Agent) *agent.Registry {
	r := agent.NewRegistry()
	for _, a := range agents {
		r.Register(a)
	}
	return r
}

// memRecorder records contributions in memory.
type memRecorder struct {
	mu   sync.Mutex
	rows []Contribution
	err  error
}

func (m *memRecorder) RecordContribution(_ context.Context, c Contribution) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.rows = append(m.rows, c)
	return "contrib-1", nil
}

func TestDispatchCollectsAllSlots(t *testing.T) {
	d := New(registryWith(
		okAgent(agent.RoleExplorer, 0.03),
		okAgent(agent.RoleCritic, -0.04),
	), nil)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer, agent.RoleCritic},
		testSnapshot(), 1, time.Second)

	assert.Len(t, out.Results, 2)
	assert.Equal(t, 2, out.Successes())
	assert.Equal(t, 0, out.Timeouts)
	assert.Equal(t, 0, out.Errors)
}

func TestDispatchUnknownRole(t *testing.T) {
	d := New(registryWith(okAgent(agent.RoleExplorer, 0.03)), nil)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer, agent.RoleCritic},
		testSnapshot(), 1, time.Second)

	require.Len(t, out.Results, 2)
	assert.Equal(t, 1, out.Successes())
	assert.Equal(t, 1, out.Errors)

	var bad *Result
	for i := range out.Results {
		if out.Results[i].Role == agent.RoleCritic {
			bad = &out.Results[i]
		}
	}
	require.NotNil(t, bad)
	require.NotNil(t, bad.Err)
	assert.Equal(t, ErrorInvalidAgent, bad.Err.Kind)
}

func TestDispatchAgentError(t *testing.T) {
	failing := agent.Func{
		AgentRole: agent.RoleCritic,
		Fn: func(context.Context, *blackboard.Snapshot) (*agent.Proposal, error) {
			return nil, errors.New("model unavailable")
		},
	}
	d := New(registryWith(failing), nil)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleCritic}, testSnapshot(), 1, time.Second)
	require.Len(t, out.Results, 1)
	require.NotNil(t, out.Results[0].Err)
	assert.Equal(t, ErrorCrashed, out.Results[0].Err.Kind)
	assert.Contains(t, out.Results[0].Err.Reason, "model unavailable")
}

func TestDispatchAgentPanic(t *testing.T) {
	panicking := agent.Func{
		AgentRole: agent.RoleExplorer,
		Fn: func(context.Context, *blackboard.Snapshot) (*agent.Proposal, error) {
			panic("boom")
		},
	}
	d := New(registryWith(panicking), nil)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer}, testSnapshot(), 1, time.Second)
	require.Len(t, out.Results, 1)
	require.NotNil(t, out.Results[0].Err)
	assert.Equal(t, ErrorCrashed, out.Results[0].Err.Kind)
}

func TestDispatchNilProposal(t *testing.T) {
	empty := agent.Func{
		AgentRole: agent.RoleExplorer,
		Fn: func(context.Context, *blackboard.Snapshot) (*agent.Proposal, error) {
			return nil, nil
		},
	}
	d := New(registryWith(empty), nil)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer}, testSnapshot(), 1, time.Second)
	require.Len(t, out.Results, 1)
	require.NotNil(t, out.Results[0].Err)
	assert.Equal(t, ErrorCrashed, out.Results[0].Err.Kind)
}

func TestDispatchTimeout(t *testing.T) {
	slow := agent.Func{
		AgentRole: agent.RoleCritic,
		Fn: func(ctx context.Context, _ *blackboard.Snapshot) (*agent.Proposal, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	d := New(registryWith(okAgent(agent.RoleExplorer, 0.03), slow), nil)

	start := time.Now()
	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer, agent.RoleCritic},
		testSnapshot(), 1, 50*time.Millisecond)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 1, out.Successes(), "the fast agent's proposal survives the deadline")
	assert.Equal(t, 1, out.Timeouts)
	assert.Len(t, out.Results, 2, "every scheduled role yields exactly one slot")
}

func TestDispatchEmptyRoles(t *testing.T) {
	d := New(registryWith(), nil)
	out := d.Dispatch(context.Background(), nil, testSnapshot(), 1, time.Second)
	assert.Empty(t, out.Results)
}

func TestDispatchRecordsContributions(t *testing.T) {
	rec := &memRecorder{}
	d := New(registryWith(okAgent(agent.RoleExplorer, 0.03)), rec)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer}, testSnapshot(), 7, time.Second)

	require.Len(t, out.Results, 1)
	assert.Equal(t, "contrib-1", out.Results[0].ContributionID)
	require.Len(t, rec.rows, 1)
	assert.Equal(t, "session_000001", rec.rows[0].SessionID)
	assert.Equal(t, 7, rec.rows[0].Cycle)
	assert.Equal(t, agent.RoleExplorer, rec.rows[0].Role)
	assert.Equal(t, "test-model", rec.rows[0].Model)
}

func TestDispatchRecorderFailureIsBestEffort(t *testing.T) {
	rec := &memRecorder{err: errors.New("insert failed")}
	d := New(registryWith(okAgent(agent.RoleExplorer, 0.03)), rec)

	out := d.Dispatch(context.Background(), []agent.Role{agent.RoleExplorer}, testSnapshot(), 1, time.Second)

	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].OK(), "a failed audit insert does not lose the proposal")
	assert.Empty(t, out.Results[0].ContributionID)
}
