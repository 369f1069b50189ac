package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		toSupport float64
		want      string
	}{
		{"resurrection", "", "a new claim rises", 0.5, TransitionResurrection},
		{"death", "the old claim", "", 0.18, TransitionDeath},
		{"graduation", "the strong claim", "the strong claim", 0.85, TransitionGraduation},
		{"graduation beats refinement", "markets clear", "markets clear quickly", 0.9, TransitionGraduation},
		{
			"refinement on high overlap",
			"markets aggregate information efficiently",
			"markets aggregate local information efficiently",
			0.55,
			TransitionRefinement,
		},
		{
			"pivot on low overlap",
			"markets aggregate information efficiently",
			"consciousness requires embodiment",
			0.5,
			TransitionPivot,
		},
		{"identical claim refines", "same claim text", "same claim text", 0.5, TransitionRefinement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.from, tt.to, tt.toSupport))
		})
	}
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, 1.0, overlap("one two three", "three two one"))
	assert.Equal(t, 0.0, overlap("alpha beta", "gamma delta"))
	assert.Equal(t, 0.0, overlap("", "claim"))
	// {a,b,c} vs {b,c,d}: 2 common out of 4 in the union.
	assert.InDelta(t, 0.5, overlap("a b c", "b c d"), 1e-9)
	// Case and punctuation insensitive.
	assert.Equal(t, 1.0, overlap("Markets, clear!", "markets clear"))
}
