package config

import (
	"fmt"
	"time"
)

// CycleMode selects the scheduling discipline for a session.
type CycleMode string

const (
	// CycleModeTimeBased runs cycles on a fixed cadence: wait
	// cycle_timeout_ms between cycles, give agents cycle_duration_ms.
	CycleModeTimeBased CycleMode = "time_based"
	// CycleModeEventDriven starts the next cycle as soon as the previous
	// one completes; agents get cycle_timeout_ms.
	CycleModeEventDriven CycleMode = "event_driven"
)

// IsValid reports whether the mode is one of the recognized values.
func (m CycleMode) IsValid() bool {
	return m == CycleModeTimeBased || m == CycleModeEventDriven
}

// DefaultModelPool is used when a session config does not name its own
// models. The identifiers are opaque to the engine; agents interpret them.
var DefaultModelPool = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"claude-sonnet-4-5",
	"claude-haiku-4-5",
	"gemini-2.5-pro",
	"gemini-2.5-flash",
	"llama-3.3-70b",
}

// Session default values applied by ApplyDefaults.
const (
	DefaultMaxCycles      = 50
	DefaultCycleTimeoutMS = 300_000
	DefaultDecayRate      = 0.02
)

// SessionConfig is the per-session configuration submitted at session
// creation. Zero values are filled in by ApplyDefaults; Validate reports
// every violation at once.
type SessionConfig struct {
	SeedClaim           string                    `json:"seed_claim" yaml:"seed_claim"`
	MaxCycles           int                       `json:"max_cycles" yaml:"max_cycles"`
	CycleMode           CycleMode                 `json:"cycle_mode" yaml:"cycle_mode"`
	CycleTimeoutMS      int                       `json:"cycle_timeout_ms" yaml:"cycle_timeout_ms"`
	CycleDurationMS     int                       `json:"cycle_duration_ms" yaml:"cycle_duration_ms"`
	ModelPool           []string                  `json:"model_pool" yaml:"model_pool"`
	NoveltyBonusEnabled *bool                     `json:"novelty_bonus_enabled" yaml:"novelty_bonus_enabled"`
	DecayRate           float64                   `json:"decay_rate" yaml:"decay_rate"`
	CostLimitUSD        float64                   `json:"cost_limit_usd" yaml:"cost_limit_usd"`
	AgentOverrides      map[string]map[string]any `json:"agent_overrides,omitempty" yaml:"agent_overrides,omitempty"`
}

// SessionDefaults holds the service-level defaults merged into incoming
// session configs before validation.
type SessionDefaults struct {
	MaxCycles           int       `yaml:"max_cycles"`
	CycleMode           CycleMode `yaml:"cycle_mode"`
	CycleTimeoutMS      int       `yaml:"cycle_timeout_ms"`
	CycleDurationMS     int       `yaml:"cycle_duration_ms"`
	DecayRate           float64   `yaml:"decay_rate"`
	NoveltyBonusEnabled *bool     `yaml:"novelty_bonus_enabled"`
}

// builtinDefaults backs any field the service config leaves unset.
func builtinDefaults() SessionDefaults {
	enabled := true
	return SessionDefaults{
		MaxCycles:           DefaultMaxCycles,
		CycleMode:           CycleModeEventDriven,
		CycleTimeoutMS:      DefaultCycleTimeoutMS,
		CycleDurationMS:     DefaultCycleTimeoutMS,
		DecayRate:           DefaultDecayRate,
		NoveltyBonusEnabled: &enabled,
	}
}

// normalized returns d with its own unset fields filled from the builtin
// defaults.
func (d SessionDefaults) normalized() SessionDefaults {
	base := builtinDefaults()
	if d.MaxCycles > 0 {
		base.MaxCycles = d.MaxCycles
	}
	if d.CycleMode != "" {
		base.CycleMode = d.CycleMode
	}
	if d.CycleTimeoutMS > 0 {
		base.CycleTimeoutMS = d.CycleTimeoutMS
	}
	if d.CycleDurationMS > 0 {
		base.CycleDurationMS = d.CycleDurationMS
	}
	if d.DecayRate > 0 {
		base.DecayRate = d.DecayRate
	}
	if d.NoveltyBonusEnabled != nil {
		base.NoveltyBonusEnabled = d.NoveltyBonusEnabled
	}
	return base
}

// ApplyDefaults fills every unset field from the service defaults. The
// seed claim has no default and stays as submitted.
func (c *SessionConfig) ApplyDefaults(d SessionDefaults) {
	d = d.normalized()
	if c.MaxCycles == 0 {
		c.MaxCycles = d.MaxCycles
	}
	if c.CycleMode == "" {
		c.CycleMode = d.CycleMode
	}
	if c.CycleTimeoutMS == 0 {
		c.CycleTimeoutMS = d.CycleTimeoutMS
	}
	if c.CycleDurationMS == 0 {
		c.CycleDurationMS = d.CycleDurationMS
	}
	if len(c.ModelPool) == 0 {
		c.ModelPool = append([]string(nil), DefaultModelPool...)
	}
	if c.NoveltyBonusEnabled == nil {
		c.NoveltyBonusEnabled = d.NoveltyBonusEnabled
	}
	if c.DecayRate == 0 {
		c.DecayRate = d.DecayRate
	}
}

// Validate checks the config after defaults are applied and returns every
// violation as a human-readable string. An empty slice means valid.
func (c *SessionConfig) Validate() []string {
	var violations []string
	if c.SeedClaim == "" {
		violations = append(violations, "seed_claim must be a non-empty string")
	}
	if c.MaxCycles <= 0 {
		violations = append(violations, fmt.Sprintf("max_cycles must be a positive integer, got %d", c.MaxCycles))
	}
	if !c.CycleMode.IsValid() {
		violations = append(violations, fmt.Sprintf("cycle_mode must be %q or %q, got %q", CycleModeTimeBased, CycleModeEventDriven, c.CycleMode))
	}
	if c.CycleTimeoutMS <= 0 {
		violations = append(violations, fmt.Sprintf("cycle_timeout_ms must be a positive integer, got %d", c.CycleTimeoutMS))
	}
	if c.CycleDurationMS <= 0 {
		violations = append(violations, fmt.Sprintf("cycle_duration_ms must be a positive integer, got %d", c.CycleDurationMS))
	}
	if len(c.ModelPool) == 0 {
		violations = append(violations, "model_pool must contain at least one model identifier")
	}
	for i, model := range c.ModelPool {
		if model == "" {
			violations = append(violations, fmt.Sprintf("model_pool[%d] must be a non-empty string", i))
		}
	}
	if c.DecayRate <= 0 {
		violations = append(violations, fmt.Sprintf("decay_rate must be a positive number, got %g", c.DecayRate))
	}
	if c.CostLimitUSD < 0 {
		violations = append(violations, fmt.Sprintf("cost_limit_usd must be positive when set, got %g", c.CostLimitUSD))
	}
	return violations
}

// NoveltyEnabled reports whether the novelty bonus phase runs.
func (c *SessionConfig) NoveltyEnabled() bool {
	return c.NoveltyBonusEnabled == nil || *c.NoveltyBonusEnabled
}

// CycleTimeout returns cycle_timeout_ms as a duration.
func (c *SessionConfig) CycleTimeout() time.Duration {
	return time.Duration(c.CycleTimeoutMS) * time.Millisecond
}

// CycleDuration returns cycle_duration_ms as a duration.
func (c *SessionConfig) CycleDuration() time.Duration {
	return time.Duration(c.CycleDurationMS) * time.Millisecond
}

// AgentDeadline returns the per-cycle agent deadline for the configured
// mode: cycle_duration_ms in time_based mode, cycle_timeout_ms otherwise.
func (c *SessionConfig) AgentDeadline() time.Duration {
	if c.CycleMode == CycleModeTimeBased {
		return c.CycleDuration()
	}
	return c.CycleTimeout()
}
