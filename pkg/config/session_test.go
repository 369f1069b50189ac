package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsFillsUnsetFields(t *testing.T) {
	cfg := &SessionConfig{SeedClaim: "a claim"}
	cfg.ApplyDefaults(SessionDefaults{})

	assert.Equal(t, DefaultMaxCycles, cfg.MaxCycles)
	assert.Equal(t, CycleModeEventDriven, cfg.CycleMode)
	assert.Equal(t, DefaultCycleTimeoutMS, cfg.CycleTimeoutMS)
	assert.Equal(t, DefaultCycleTimeoutMS, cfg.CycleDurationMS)
	assert.Equal(t, DefaultDecayRate, cfg.DecayRate)
	assert.Equal(t, DefaultModelPool, cfg.ModelPool)
	require.NotNil(t, cfg.NoveltyBonusEnabled)
	assert.True(t, *cfg.NoveltyBonusEnabled)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	disabled := false
	cfg := &SessionConfig{
		SeedClaim:           "a claim",
		MaxCycles:           10,
		CycleMode:           CycleModeTimeBased,
		CycleTimeoutMS:      1000,
		CycleDurationMS:     500,
		ModelPool:           []string{"my-model"},
		NoveltyBonusEnabled: &disabled,
		DecayRate:           0.05,
	}
	cfg.ApplyDefaults(SessionDefaults{MaxCycles: 99, CycleMode: CycleModeEventDriven})

	assert.Equal(t, 10, cfg.MaxCycles)
	assert.Equal(t, CycleModeTimeBased, cfg.CycleMode)
	assert.Equal(t, 1000, cfg.CycleTimeoutMS)
	assert.Equal(t, 500, cfg.CycleDurationMS)
	assert.Equal(t, []string{"my-model"}, cfg.ModelPool)
	assert.False(t, cfg.NoveltyEnabled())
	assert.Equal(t, 0.05, cfg.DecayRate)
}

func TestApplyDefaultsServiceOverrides(t *testing.T) {
	cfg := &SessionConfig{SeedClaim: "a claim"}
	cfg.ApplyDefaults(SessionDefaults{MaxCycles: 20, CycleMode: CycleModeTimeBased, DecayRate: 0.01})

	assert.Equal(t, 20, cfg.MaxCycles)
	assert.Equal(t, CycleModeTimeBased, cfg.CycleMode)
	assert.Equal(t, 0.01, cfg.DecayRate)
	assert.Equal(t, DefaultCycleTimeoutMS, cfg.CycleTimeoutMS, "unset service defaults fall back to builtins")
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	cfg := &SessionConfig{
		SeedClaim:       "",
		MaxCycles:       -1,
		CycleMode:       "cron",
		CycleTimeoutMS:  0,
		CycleDurationMS: 0,
		ModelPool:       nil,
		DecayRate:       0,
		CostLimitUSD:    -2,
	}
	violations := cfg.Validate()
	assert.Len(t, violations, 8, "every violation is reported in one pass: %v", violations)
}

func TestValidateValidConfig(t *testing.T) {
	cfg := &SessionConfig{SeedClaim: "a claim"}
	cfg.ApplyDefaults(SessionDefaults{})
	assert.Empty(t, cfg.Validate())
}

func TestValidateEmptyModelInPool(t *testing.T) {
	cfg := &SessionConfig{SeedClaim: "a claim"}
	cfg.ApplyDefaults(SessionDefaults{})
	cfg.ModelPool = []string{"good", "", "also-good"}

	violations := cfg.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "model_pool[1]")
}

func TestCycleModeIsValid(t *testing.T) {
	assert.True(t, CycleModeTimeBased.IsValid())
	assert.True(t, CycleModeEventDriven.IsValid())
	assert.False(t, CycleMode("").IsValid())
	assert.False(t, CycleMode("continuous").IsValid())
}

func TestAgentDeadlinePerMode(t *testing.T) {
	cfg := &SessionConfig{
		CycleMode:       CycleModeTimeBased,
		CycleTimeoutMS:  60_000,
		CycleDurationMS: 25_000,
	}
	assert.Equal(t, 25*time.Second, cfg.AgentDeadline(), "time_based bounds agents by cycle_duration_ms")

	cfg.CycleMode = CycleModeEventDriven
	assert.Equal(t, time.Minute, cfg.AgentDeadline(), "event_driven bounds agents by cycle_timeout_ms")
}

func TestNoveltyEnabledDefaultsTrue(t *testing.T) {
	cfg := &SessionConfig{}
	assert.True(t, cfg.NoveltyEnabled())

	off := false
	cfg.NoveltyBonusEnabled = &off
	assert.False(t, cfg.NoveltyEnabled())
}
