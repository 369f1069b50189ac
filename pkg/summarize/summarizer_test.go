package summarize

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
	"github.com/dialectic-dev/dialectic/pkg/runner"
)

type memSummaryStore struct {
	mu      sync.Mutex
	session string
	summary string
	cycle   int
	err     error
}

func (m *memSummaryStore) UpsertSummary(_ context.Context, sessionID, summary string, cycle int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.session, m.summary, m.cycle = sessionID, summary, cycle
	return nil
}

type recordedTransition struct {
	transition string
	fromClaim  string
	toClaim    string
}

type memTransitionStore struct {
	mu   sync.Mutex
	rows []recordedTransition
}

func (m *memTransitionStore) RecordTransition(_ context.Context, _ string, _ int, transition, fromClaim, toClaim string, _, _ float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, recordedTransition{transition, fromClaim, toClaim})
	return nil
}

func TestSummarizePersistsRenderedSummary(t *testing.T) {
	store := &memSummaryStore{}
	s := NewSummarizer(store, nil)

	snap := &blackboard.Snapshot{
		SessionID:       "session_000001",
		CurrentClaim:    "claims decay without reinforcement",
		SupportStrength: 0.61,
		ActiveObjection: "decay rates are arbitrary",
		CycleCount:      4,
		Cemetery:        []blackboard.CemeteryEntry{{Claim: "an earlier claim"}},
	}
	require.NoError(t, s.Summarize(context.Background(), snap))

	assert.Equal(t, "session_000001", store.session)
	assert.Equal(t, 4, store.cycle)
	assert.Contains(t, store.summary, "claims decay without reinforcement")
	assert.Contains(t, store.summary, "Standing objection")
	assert.Contains(t, store.summary, "1 claim(s) in the cemetery")
}

func TestSummarizePropagatesStoreError(t *testing.T) {
	s := NewSummarizer(&memSummaryStore{err: errors.New("db down")}, nil)
	err := s.Summarize(context.Background(), &blackboard.Snapshot{SessionID: "s", CurrentClaim: "c"})
	assert.Error(t, err)
}

func TestRenderDeadClaim(t *testing.T) {
	out := Render(&blackboard.Snapshot{SessionID: "s", CycleCount: 7})
	assert.Contains(t, out, "no live claim")
	assert.Contains(t, out, "awaiting resurrection")
}

func TestDetectClassifiesAndRecords(t *testing.T) {
	store := &memTransitionStore{}
	d := NewChangeDetector(store, nil)

	require.NoError(t, d.Detect(context.Background(), runner.ClaimChange{
		SessionID: "session_000001",
		Cycle:     3,
		FromClaim: "markets aggregate information efficiently",
		ToClaim:   "consciousness requires embodiment",
		ToSupport: 0.5,
	}))

	require.Len(t, store.rows, 1)
	assert.Equal(t, TransitionPivot, store.rows[0].transition)
}

func TestDetectResurrection(t *testing.T) {
	store := &memTransitionStore{}
	d := NewChangeDetector(store, nil)

	require.NoError(t, d.Detect(context.Background(), runner.ClaimChange{
		SessionID: "session_000001",
		Cycle:     5,
		FromClaim: "",
		ToClaim:   "a frontier idea takes over",
		ToSupport: 0.4,
	}))

	require.Len(t, store.rows, 1)
	assert.Equal(t, TransitionResurrection, store.rows[0].transition)
}
