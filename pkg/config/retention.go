package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// RetentionConfig controls durable-event retention. Completed sessions
// keep their event log for catchup replays until the TTL expires.
type RetentionConfig struct {
	// EventTTL is the maximum age of durable event rows before deletion.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention policy.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		EventTTL:        72 * time.Hour,
		CleanupInterval: 12 * time.Hour,
	}
}

// UnmarshalYAML accepts Go duration strings ("72h", "30m") for both
// fields.
func (r *RetentionConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		EventTTL        string `yaml:"event_ttl"`
		CleanupInterval string `yaml:"cleanup_interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.EventTTL != "" {
		d, err := time.ParseDuration(raw.EventTTL)
		if err != nil {
			return fmt.Errorf("invalid retention.event_ttl: %w", err)
		}
		r.EventTTL = d
	}
	if raw.CleanupInterval != "" {
		d, err := time.ParseDuration(raw.CleanupInterval)
		if err != nil {
			return fmt.Errorf("invalid retention.cleanup_interval: %w", err)
		}
		r.CleanupInterval = d
	}
	return nil
}
