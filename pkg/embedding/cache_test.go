package embedding

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEmbedder counts upstream calls.
type countingEmbedder struct {
	calls atomic.Int64
	fail  atomic.Bool
}

func (c *countingEmbedder) Dimension() int { return 4 }

func (c *countingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	c.calls.Add(1)
	if c.fail.Load() {
		return nil, errors.New("upstream unavailable")
	}
	return []float32{float32(len(text)), 0, 0, 0}, nil
}

func TestCacheComputesOncePerKey(t *testing.T) {
	upstream := &countingEmbedder{}
	cache := NewCache(upstream)
	ctx := context.Background()

	a, err := cache.Embed(ctx, "same text")
	require.NoError(t, err)
	b, err := cache.Embed(ctx, "same text")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(1), upstream.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCacheConcurrentSameKeySingleFlight(t *testing.T) {
	upstream := &countingEmbedder{}
	cache := NewCache(upstream)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Embed(context.Background(), "hot key")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), upstream.calls.Load(), "concurrent callers share one computation")
}

func TestCacheFailuresNotCached(t *testing.T) {
	upstream := &countingEmbedder{}
	upstream.fail.Store(true)
	cache := NewCache(upstream)
	ctx := context.Background()

	_, err := cache.Embed(ctx, "flaky")
	require.Error(t, err)

	upstream.fail.Store(false)
	vec, err := cache.Embed(ctx, "flaky")
	require.NoError(t, err)
	assert.Len(t, vec, 4)
	assert.Equal(t, int64(2), upstream.calls.Load(), "a failed computation is retried")
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := NewCache(&countingEmbedder{})
	ctx := context.Background()

	a, err := cache.Embed(ctx, "text")
	require.NoError(t, err)
	a[0] = -999

	b, err := cache.Embed(ctx, "text")
	require.NoError(t, err)
	assert.NotEqual(t, float32(-999), b[0], "callers may mutate their slice freely")
}

func TestCacheClear(t *testing.T) {
	upstream := &countingEmbedder{}
	cache := NewCache(upstream)
	ctx := context.Background()

	_, err := cache.Embed(ctx, "text")
	require.NoError(t, err)
	cache.Clear()
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Embed(ctx, "text")
	require.NoError(t, err)
	assert.Equal(t, int64(2), upstream.calls.Load())
}
