package trajectory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/embedding"
)

// memPersister is the in-memory Persister used across the engine tests.
type memPersister struct {
	mu     sync.Mutex
	points []Point
}

func (m *memPersister) AppendPoint(_ context.Context, p Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = append(m.points, p)
	return nil
}

func (m *memPersister) Trajectory(_ context.Context, sessionID string) ([]Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Point
	for _, p := range m.points {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestStoreAppendAndQuery(t *testing.T) {
	persister := &memPersister{}
	store := NewStore(embedding.NewCache(embedding.NewLocalEmbedder(32)), persister)
	ctx := context.Background()

	vec, err := store.Embed(ctx, "a claim about causality")
	require.NoError(t, err)
	require.Len(t, vec, 32)

	require.NoError(t, store.Append(ctx, Point{
		SessionID:       "session_000001",
		CycleNumber:     1,
		Embedding:       vec,
		ClaimText:       "a claim about causality",
		SupportStrength: 0.5,
	}))

	points, err := store.Trajectory(ctx, "session_000001")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1, points[0].CycleNumber)

	points, err = store.Trajectory(ctx, "session_000002")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestStoreAppendValidation(t *testing.T) {
	store := NewStore(embedding.NewLocalEmbedder(8), &memPersister{})
	ctx := context.Background()

	assert.Error(t, store.Append(ctx, Point{SessionID: "s", CycleNumber: -1, Embedding: []float32{1}}))
	assert.Error(t, store.Append(ctx, Point{SessionID: "s", CycleNumber: 1}), "missing embedding is rejected")
}
