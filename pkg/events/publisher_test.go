package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory EventStore.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []StoredEvent
	topics []string
	err    error
}

func (m *memStore) AppendEvent(_ context.Context, _, topic string, payload []byte) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	m.rows = append(m.rows, StoredEvent{ID: m.nextID, Payload: payload})
	m.topics = append(m.topics, topic)
	return m.nextID, nil
}

func (m *memStore) CatchupEvents(_ context.Context, topic string, sinceID int64, limit int) ([]StoredEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []StoredEvent
	for i, row := range m.rows {
		if m.topics[i] == topic && row.ID > sinceID && len(out) < limit {
			out = append(out, row)
		}
	}
	return out, nil
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestPublishSessionLifecycleIsDurableAndGlobal(t *testing.T) {
	bus := NewBus()
	store := &memStore{}
	p := NewPublisher(bus, store)

	sessionCh, cancel1 := bus.Subscribe(SessionTopic("session_000001"))
	defer cancel1()
	globalCh, cancel2 := bus.Subscribe(GlobalSessionsTopic)
	defer cancel2()

	p.PublishSessionLifecycle(context.Background(), EventTypeSessionStarted,
		"session_000001", "bb-1", "running", "")

	evt := decode(t, recv(t, sessionCh))
	assert.Equal(t, EventTypeSessionStarted, evt["type"])
	assert.Equal(t, "session_000001", evt["session_id"])
	assert.Equal(t, "bb-1", evt["blackboard_id"])
	assert.Equal(t, float64(1), evt["db_event_id"], "persisted id is injected for catchup")

	global := decode(t, recv(t, globalCh))
	assert.Equal(t, EventTypeSessionStarted, global["type"])

	require.Len(t, store.rows, 1)
}

func TestPublishCycleCompleteCarriesCycleFields(t *testing.T) {
	bus := NewBus()
	p := NewPublisher(bus, &memStore{})

	ch, cancel := bus.Subscribe(SessionTopic("session_000001"))
	defer cancel()

	p.PublishCycleComplete(context.Background(), "session_000001", 7,
		1500*time.Millisecond, 0.62, "the refined claim")

	evt := decode(t, recv(t, ch))
	assert.Equal(t, EventTypeCycleComplete, evt["type"])
	assert.Equal(t, float64(7), evt["cycle"])
	assert.Equal(t, float64(1500), evt["duration_ms"])
	assert.Equal(t, 0.62, evt["support"])
	assert.Equal(t, "the refined claim", evt["current_claim"])
}

func TestPublishCycleStartedIsTransient(t *testing.T) {
	bus := NewBus()
	store := &memStore{}
	p := NewPublisher(bus, store)

	ch, cancel := bus.Subscribe(SessionTopic("session_000001"))
	defer cancel()

	p.PublishCycleStarted("session_000001", "bb-1", 3)

	evt := decode(t, recv(t, ch))
	assert.Equal(t, EventTypeCycleStarted, evt["type"])
	assert.Empty(t, store.rows, "cycle_started is broadcast-only")
}

func TestPublishStoreFailureStillBroadcasts(t *testing.T) {
	bus := NewBus()
	p := NewPublisher(bus, &memStore{err: errors.New("db down")})

	ch, cancel := bus.Subscribe(SessionTopic("session_000001"))
	defer cancel()

	p.PublishClaimDied(context.Background(), "session_000001", "bb-1", "dead claim", "objection", 0.18, 4)

	evt := decode(t, recv(t, ch))
	assert.Equal(t, EventTypeClaimDied, evt["type"])
	_, hasID := evt["db_event_id"]
	assert.False(t, hasID, "no db id when persistence failed")
}

func TestPublisherWithoutStore(t *testing.T) {
	bus := NewBus()
	p := NewPublisher(bus, nil)

	ch, cancel := bus.Subscribe(SessionTopic("session_000001"))
	defer cancel()

	p.PublishClaimGraduated(context.Background(), "session_000001", "bb-1", "winner", 0.86, 9)
	evt := decode(t, recv(t, ch))
	assert.Equal(t, EventTypeClaimGraduated, evt["type"])
}

func TestTruncateClaimInPayloads(t *testing.T) {
	bus := NewBus()
	p := NewPublisher(bus, nil)

	ch, cancel := bus.Subscribe(BlackboardTopic("bb-1"))
	defer cancel()

	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'a'
	}
	p.PublishClaimUpdated("session_000001", "bb-1", string(long), 1)

	evt := decode(t, recv(t, ch))
	claim := evt["claim"].(string)
	assert.Less(t, len(claim), 2000, "claims are truncated for transport")
}

func TestMemStoreCatchup(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := store.AppendEvent(ctx, "session_000001", "t", []byte{byte(i)})
		require.NoError(t, err)
	}

	rows, err := store.CatchupEvents(ctx, "t", 2, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3), rows[0].ID)
}
