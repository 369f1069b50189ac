package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/agent"
	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/config"
	"github.com/dialectic-dev/dialectic/pkg/dispatch"
	"github.com/dialectic-dev/dialectic/pkg/embedding"
	"github.com/dialectic-dev/dialectic/pkg/events"
	"github.com/dialectic-dev/dialectic/pkg/models"
	"github.com/dialectic-dev/dialectic/pkg/registry"
	"github.com/dialectic-dev/dialectic/pkg/runner"
	"github.com/dialectic-dev/dialectic/pkg/scheduler"
	"github.com/dialectic-dev/dialectic/pkg/trajectory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopTrajectory struct{}

func (noopTrajectory) AppendPoint(context.Context, trajectory.Point) error { return nil }
func (noopTrajectory) Trajectory(context.Context, string) ([]trajectory.Point, error) {
	return nil, nil
}

func testAgents() *agent.Registry {
	r := agent.NewRegistry()
	r.Register(agent.Func{
		AgentRole: agent.RoleExplorer,
		Fn: func(_ context.Context, snap *blackboard.Snapshot) (*agent.Proposal, error) {
			return &agent.Proposal{
				Role:            agent.RoleExplorer,
				Model:           "test-model",
				Output:          agent.ExplorerOutput{Validity: agent.Valid(), NewClaim: snap.CurrentClaim},
				ConfidenceDelta: 0.02,
			}, nil
		},
	})
	return r
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	bus := events.NewBus()
	deps := runner.Deps{
		Scheduler:  scheduler.New(nil),
		Dispatcher: dispatch.New(testAgents(), nil),
		Trajectory: trajectory.NewStore(embedding.NewCache(embedding.NewLocalEmbedder(16)), noopTrajectory{}),
		Publisher:  events.NewPublisher(bus, nil),
	}
	reg := registry.New(deps, bus, config.SessionDefaults{})
	reg.StopGrace = 3 * time.Second

	srv := httptest.NewServer(NewServer(reg, Services{}, nil, nil, nil).Handler())
	t.Cleanup(func() {
		srv.Close()
		reg.StopAll(context.Background())
		bus.Close()
	})
	return srv
}

func sessionBody() string {
	return `{
		"seed_claim": "attention is a zero-sum resource",
		"max_cycles": 1000,
		"cycle_mode": "time_based",
		"cycle_duration_ms": 5000,
		"cycle_timeout_ms": 120000
	}`
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateSession(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/sessions", sessionBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[models.CreateSessionResponse](t, resp)
	assert.Equal(t, "session_000001", created.SessionID)
	assert.Equal(t, "running", created.Status)
}

func TestCreateSessionMalformedBody(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/sessions", `{"seed_claim": 42}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateSessionValidationViolations(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/sessions", `{"seed_claim": "", "cost_limit_usd": -1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[models.ErrorResponse](t, resp)
	assert.Equal(t, "invalid session config", body.Error)
	assert.Len(t, body.Violations, 2)
}

func TestListAndGetSession(t *testing.T) {
	srv := testServer(t)

	created := decode[models.CreateSessionResponse](t, postJSON(t, srv.URL+"/api/sessions", sessionBody()))

	resp, err := http.Get(srv.URL + "/api/sessions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]models.SessionResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.SessionID, list[0].SessionID)
	assert.Nil(t, list[0].Config, "list omits per-session config")

	resp, err = http.Get(srv.URL + "/api/sessions/" + created.SessionID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	one := decode[models.SessionResponse](t, resp)
	require.NotNil(t, one.Config)
	assert.Equal(t, "attention is a zero-sum resource", one.Config.SeedClaim)
}

func TestSessionLifecycleVerbs(t *testing.T) {
	srv := testServer(t)
	created := decode[models.CreateSessionResponse](t, postJSON(t, srv.URL+"/api/sessions", sessionBody()))
	base := srv.URL + "/api/sessions/" + created.SessionID

	resp := postJSON(t, base+"/pause", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Pausing twice conflicts.
	resp = postJSON(t, base+"/pause", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, base+"/resume", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, base+"/stop", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, base+"/stop", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestVerbsOnUnknownSessionReturn404(t *testing.T) {
	srv := testServer(t)

	for _, verb := range []string{"pause", "resume", "stop"} {
		resp := postJSON(t, srv.URL+"/api/sessions/session_999999/"+verb, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, verb)
	}

	resp, err := http.Get(srv.URL + "/api/sessions/session_999999")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetBlackboardSnapshot(t *testing.T) {
	srv := testServer(t)
	created := decode[models.CreateSessionResponse](t, postJSON(t, srv.URL+"/api/sessions", sessionBody()))

	resp, err := http.Get(srv.URL + "/api/sessions/" + created.SessionID + "/blackboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decode[blackboard.Snapshot](t, resp)
	assert.Equal(t, created.SessionID, snap.SessionID)
	assert.Equal(t, "attention is a zero-sum resource", snap.SeedClaim)
}

func TestReadEndpointsWithoutPersistence(t *testing.T) {
	srv := testServer(t)
	created := decode[models.CreateSessionResponse](t, postJSON(t, srv.URL+"/api/sessions", sessionBody()))

	for _, path := range []string{"trajectory", "contributions", "transitions", "summary"} {
		resp, err := http.Get(srv.URL + "/api/sessions/" + created.SessionID + "/" + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}
}

func TestHealthWithoutDatabase(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body["version"], "dialectic/")
}
