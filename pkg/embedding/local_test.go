package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalEmbedderDeterministic(t *testing.T) {
	e := NewLocalEmbedder(64)
	ctx := context.Background()

	a, err := e.Embed(ctx, "the map is not the territory")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "the map is not the territory")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLocalEmbedderUnitNorm(t *testing.T) {
	e := NewLocalEmbedder(128)
	vec, err := e.Embed(context.Background(), "claims decay without reinforcement")
	require.NoError(t, err)
	require.Len(t, vec, 128)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestLocalEmbedderDistinctTexts(t *testing.T) {
	e := NewLocalEmbedder(64)
	ctx := context.Background()

	a, err := e.Embed(ctx, "consciousness requires embodiment")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "prices encode public information")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalEmbedderRejectsEmptyText(t *testing.T) {
	e := NewLocalEmbedder(64)
	_, err := e.Embed(context.Background(), "")
	assert.Error(t, err)
	_, err = e.Embed(context.Background(), "   ")
	assert.Error(t, err)
}

func TestLocalEmbedderDefaultDimension(t *testing.T) {
	assert.Equal(t, DefaultDimension, NewLocalEmbedder(0).Dimension())
	assert.Equal(t, 32, NewLocalEmbedder(32).Dimension())
}
