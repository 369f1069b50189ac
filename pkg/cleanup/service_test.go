package cleanup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialectic-dev/dialectic/pkg/config"
)

type fakePruner struct {
	calls  atomic.Int64
	count  int
	err    error
	gotTTL atomic.Int64
}

func (f *fakePruner) CleanupExpiredEvents(_ context.Context, ttl time.Duration) (int, error) {
	f.calls.Add(1)
	f.gotTTL.Store(int64(ttl))
	return f.count, f.err
}

func TestServiceRunsImmediatelyOnStart(t *testing.T) {
	pruner := &fakePruner{count: 3}
	s := NewService(config.RetentionConfig{
		EventTTL:        time.Hour,
		CleanupInterval: time.Hour,
	}, pruner)

	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return pruner.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(time.Hour), pruner.gotTTL.Load())
}

func TestServiceRunsOnInterval(t *testing.T) {
	pruner := &fakePruner{}
	s := NewService(config.RetentionConfig{
		EventTTL:        time.Hour,
		CleanupInterval: 20 * time.Millisecond,
	}, pruner)

	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return pruner.calls.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServiceSurvivesPrunerError(t *testing.T) {
	pruner := &fakePruner{err: errors.New("db down")}
	s := NewService(config.RetentionConfig{
		EventTTL:        time.Hour,
		CleanupInterval: 20 * time.Millisecond,
	}, pruner)

	s.Start(context.Background())
	defer s.Stop()

	// The loop keeps ticking despite errors.
	require.Eventually(t, func() bool {
		return pruner.calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStopWaitsForLoop(t *testing.T) {
	pruner := &fakePruner{}
	s := NewService(config.RetentionConfig{
		EventTTL:        time.Hour,
		CleanupInterval: time.Hour,
	}, pruner)

	s.Start(context.Background())
	s.Stop()

	// Stop after Stop is a no-op rather than a deadlock.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Stop blocked")
	}
}
