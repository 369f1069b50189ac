package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
	"github.com/dialectic-dev/dialectic/pkg/embedding"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/runner"
	"github.com/dialectic-dev/dialectic/pkg/scheduler"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

// memTrajectory is a minimal in-memory trajectory persister.
type memTrajectory struct{}

func (memTrajectory) AppendPoint(context.Context, trajectory.Point) error { return nil }
func (memTrajectory) Trajectory(context.Context, string) ([]trajectory.Point, error) {
	return nil, nil
}

// idleAgents returns a provider whose Explorer proposes neutral
// refinements, keeping sessions alive indefinitely.
func idleAgents() *agent.Registry {
	r := agent.NewRegistry()
	r.Register(agent.Func{
		AgentRole: agent.RoleExplorer,
		Fn: func(_ context.Context, snap *blackboard.Snapshot) (*agent.Proposal, error) {
			return &agent.Proposal{
				Role:            agent.RoleExplorer,
				Model:           "test-model",
				Output:          agent.ExplorerOutput{Validity: agent.Valid(), NewClaim: snap.CurrentClaim},
				ConfidenceDelta: 0.02, // offsets decay
			}, nil
		},
	})
	return r
}

// graduatingAgents returns a provider whose Explorer graduates the claim
// in the first cycle.
func graduatingAgents() *agent.Registry {
	r := agent.NewRegistry()
	r.Register(agent.Func{
		AgentRole: agent.RoleExplorer,
		Fn: func(_ context.Context, snap *blackboard.Snapshot) (*agent.Proposal, error) {
			return &agent.Proposal{
				Role:            agent.RoleExplorer,
				Model:           "test-model",
				Output:          agent.ExplorerOutput{Validity: agent.Valid(), NewClaim: snap.CurrentClaim},
				ConfidenceDelta: 0.5,
			}, nil
		},
	})
	return r
}

func testRegistry(t *testing.T, agents *agent.Registry) (*Registry, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	deps := runner.Deps{
		Scheduler:  scheduler.New(nil),
		Dispatcher: dispatch.New(agents, nil),
		Trajectory: trajectory.NewStore(embedding.NewCache(embedding.NewLocalEmbedder(16)), memTrajectory{}),
		Publisher:  events.NewPublisher(bus, nil),
	}
	r := New(deps, bus, config.SessionDefaults{})
	r.StopGrace = 3 * time.Second
	t.Cleanup(func() {
		r.StopAll(context.Background())
		bus.Close()
	})
	return r, bus
}

// idleConfig keeps the session parked between cycles so lifecycle verbs
// can be exercised deterministically.
func idleConfig() *config.SessionConfig {
	disabled := false
	return &config.SessionConfig{
		SeedClaim:           "attention is a zero-sum resource",
		MaxCycles:           1000,
		CycleMode:           config.CycleModeTimeBased,
		CycleTimeoutMS:      120_000,
		CycleDurationMS:     5_000,
		NoveltyBonusEnabled: &disabled,
	}
}

func TestStartAssignsSequentialIDs(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	id1, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)
	id2, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)

	assert.Equal(t, "session_000001", id1)
	assert.Equal(t, "session_000002", id2)
}

func TestStartValidationReportsAllViolations(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())

	cfg := &config.SessionConfig{SeedClaim: "", CostLimitUSD: -5}
	_, err := r.Start(context.Background(), cfg)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)

	assert.Empty(t, r.List(), "a rejected session is never registered")
}

func TestLifecycleVerbs(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	id, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)

	status, err := r.Status(id)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status)

	// Pause.
	require.NoError(t, r.Pause(ctx, id))
	status, _ = r.Status(id)
	assert.Equal(t, StatusPaused, status)
	assert.ErrorIs(t, r.Pause(ctx, id), ErrAlreadyPaused)

	// Resume.
	require.NoError(t, r.Resume(ctx, id))
	status, _ = r.Status(id)
	assert.Equal(t, StatusRunning, status)
	assert.ErrorIs(t, r.Resume(ctx, id), ErrNotPaused)

	// Stop.
	require.NoError(t, r.Stop(ctx, id))
	status, _ = r.Status(id)
	assert.Equal(t, StatusStopped, status)

	// Verbs against a stopped session.
	assert.ErrorIs(t, r.Stop(ctx, id), ErrAlreadyStopped)
	assert.ErrorIs(t, r.Pause(ctx, id), ErrCannotPauseStopped)
	assert.ErrorIs(t, r.Resume(ctx, id), ErrCannotResumeStopped)
}

func TestVerbsOnUnknownSession(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	assert.ErrorIs(t, r.Pause(ctx, "session_999999"), ErrSessionNotFound)
	assert.ErrorIs(t, r.Resume(ctx, "session_999999"), ErrSessionNotFound)
	assert.ErrorIs(t, r.Stop(ctx, "session_999999"), ErrSessionNotFound)
	_, err := r.Status("session_999999")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.GetInfo("session_999999")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.SessionSnapshot("session_999999")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCompletedSessionVerbs(t *testing.T) {
	r, _ := testRegistry(t, graduatingAgents())
	ctx := context.Background()

	cfg := idleConfig()
	cfg.CycleMode = config.CycleModeEventDriven
	id, err := r.Start(ctx, cfg)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s, err := r.Status(id)
		return err == nil && s == StatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, r.Pause(ctx, id), ErrCannotPauseCompleted)
	assert.ErrorIs(t, r.Resume(ctx, id), ErrCannotResumeCompleted)
	assert.ErrorIs(t, r.Stop(ctx, id), ErrAlreadyStopped)
}

func TestResumePromotesSessionAtCycleLimit(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())

	// A paused entry whose cached cycle count already reached the limit:
	// Resume promotes it to completed instead of rescheduling.
	cfg := idleConfig()
	cfg.ApplyDefaults(config.SessionDefaults{})
	cfg.MaxCycles = 1
	run := runner.New("session_000099", cfg, r.runnerDeps)
	e := &entry{runner: run, status: StatusPaused}
	e.observeCycle(1)
	r.mu.Lock()
	r.sessions["session_000099"] = e
	r.mu.Unlock()

	err := r.Resume(context.Background(), "session_000099")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	status, _ := r.Status("session_000099")
	assert.Equal(t, StatusCompleted, status)
}

func TestListAndGetInfo(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	id1, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)
	id2, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)
	require.NoError(t, r.Pause(ctx, id2))

	infos := r.List()
	require.Len(t, infos, 2)
	assert.Equal(t, id1, infos[0].SessionID, "list is sorted by id")
	assert.Equal(t, StatusRunning, infos[0].Status)
	assert.Equal(t, StatusPaused, infos[1].Status)
	assert.NotEmpty(t, infos[0].BlackboardID)

	info, err := r.GetInfo(id1)
	require.NoError(t, err)
	assert.Equal(t, id1, info.SessionID)
	require.NotNil(t, info.Config)
	assert.Equal(t, "attention is a zero-sum resource", info.Config.SeedClaim)

	snap, err := r.SessionSnapshot(id1)
	require.NoError(t, err)
	assert.Equal(t, id1, snap.SessionID)
}

func TestGetActiveSessionPrefersLowestID(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	_, ok := r.GetActiveSession()
	assert.False(t, ok)

	id1, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)
	_, err = r.Start(ctx, idleConfig())
	require.NoError(t, err)

	active, ok := r.GetActiveSession()
	require.True(t, ok)
	assert.Equal(t, id1, active)

	require.NoError(t, r.Pause(ctx, id1))
	active, ok = r.GetActiveSession()
	require.True(t, ok)
	assert.NotEqual(t, id1, active, "paused sessions are not active")
}

func TestCycleCountFedByEventStream(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	id, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)

	// The first cycle runs immediately; its cycle_complete event feeds
	// the cached count.
	require.Eventually(t, func() bool {
		info, err := r.GetInfo(id)
		return err == nil && info.CycleCount >= 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestStopAll(t *testing.T) {
	r, _ := testRegistry(t, idleAgents())
	ctx := context.Background()

	id1, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)
	id2, err := r.Start(ctx, idleConfig())
	require.NoError(t, err)
	require.NoError(t, r.Pause(ctx, id2))

	r.StopAll(ctx)

	for _, id := range []string{id1, id2} {
		status, err := r.Status(id)
		require.NoError(t, err)
		assert.Equal(t, StatusStopped, status)
	}
	assert.Equal(t, 0, r.ActiveCount())
}
