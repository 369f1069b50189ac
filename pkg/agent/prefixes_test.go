package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTransitionalPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no prefix", "markets clear at equilibrium", "markets clear at equilibrium"},
		{"therefore with comma", "Therefore, markets clear", "markets clear"},
		{"thus without comma", "thus markets clear", "markets clear"},
		{"multi-word prefix", "it follows that markets clear", "markets clear"},
		{"as a result", "As a result, markets clear", "markets clear"},
		{"repeated prefixes", "Therefore, thus, markets clear", "markets clear"},
		{"word boundary respected", "software is eating the world", "software is eating the world"},
		{"sole prefix strips to empty", "Therefore", ""},
		{"only prefixes strips to empty", "thus, hence, so", ""},
		{"surrounding whitespace", "  hence   markets clear  ", "markets clear"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTransitionalPrefix(tt.in))
		})
	}
}

func TestIsConclusionIndicator(t *testing.T) {
	assert.True(t, IsConclusionIndicator("therefore"))
	assert.True(t, IsConclusionIndicator("  Hence  "))
	assert.True(t, IsConclusionIndicator("consequently,"))
	assert.False(t, IsConclusionIndicator("the premise of scarcity"))
	assert.False(t, IsConclusionIndicator("software"))
	assert.False(t, IsConclusionIndicator(""))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("boundary_hunter")
	assert.NoError(t, err)
	assert.Equal(t, RoleBoundaryHunter, r)

	_, err = ParseRole("oracle")
	assert.Error(t, err)
}

func TestAllRolesAreValid(t *testing.T) {
	assert.Len(t, AllRoles, 13)
	for _, r := range AllRoles {
		assert.True(t, r.IsValid(), "role %s", r)
	}
	assert.False(t, Role("").IsValid())
}
