package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialectic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "local", cfg.Embedder.Mode)
	assert.Equal(t, 256, cfg.Embedder.Dimension)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
database:
  host: db.internal
embedder:
  mode: grpc
  addr: embed.internal:50051
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port, "unset fields fall back to defaults")
	assert.Equal(t, "grpc", cfg.Embedder.Mode)
	assert.Equal(t, 256, cfg.Embedder.Dimension)
}

func TestLoadSessionDefaults(t *testing.T) {
	path := writeConfig(t, `
session_defaults:
  max_cycles: 25
  cycle_mode: time_based
  decay_rate: 0.03
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.SessionDefaults.MaxCycles)
	assert.Equal(t, CycleModeTimeBased, cfg.SessionDefaults.CycleMode)
	assert.Equal(t, 0.03, cfg.SessionDefaults.DecayRate)
}

func TestLoadRetention(t *testing.T) {
	path := writeConfig(t, `
retention:
  event_ttl: 24h
  cleanup_interval: 1h
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadRetentionDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadRejectsBadRetentionDuration(t *testing.T) {
	path := writeConfig(t, `
retention:
  event_ttl: soon
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadPasswordFromEnvOnly(t *testing.T) {
	path := writeConfig(t, `
database:
  user: app
`)
	t.Setenv("DIALECTIC_DB_PASSWORD", "s3cret")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoadRejectsInvalidEmbedderMode(t *testing.T) {
	path := writeConfig(t, `
embedder:
  mode: quantum
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedder.mode")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p",
		Database: "dialectic", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/dialectic?sslmode=require", c.DSN())
}
