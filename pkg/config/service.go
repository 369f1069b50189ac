// Package config loads the service configuration file and validates
// per-session configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound indicates the configuration file was not found.
var ErrConfigNotFound = errors.New("configuration file not found")

// ServiceConfig is the dialectic.yaml file structure.
type ServiceConfig struct {
	Server          ServerConfig    `yaml:"server"`
	Database        DatabaseConfig  `yaml:"database"`
	Embedder        EmbedderConfig  `yaml:"embedder"`
	Retention       RetentionConfig `yaml:"retention"`
	SessionDefaults SessionDefaults `yaml:"session_defaults"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr             string   `yaml:"addr"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DatabaseConfig holds PostgreSQL connection settings. The password is
// never read from YAML; it comes from DIALECTIC_DB_PASSWORD.
type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Database     string `yaml:"database"`
	SSLMode      string `yaml:"ssl_mode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	Password     string `yaml:"-"`
}

// EmbedderConfig selects and parameterizes the embedding backend.
type EmbedderConfig struct {
	Mode      string `yaml:"mode"` // "local" or "grpc"
	Addr      string `yaml:"addr"`
	Dimension int    `yaml:"dimension"`
}

// Load reads and validates the service configuration from path. A missing
// file yields the built-in defaults rather than an error, so the binary
// runs with zero configuration.
func Load(path string) (*ServiceConfig, error) {
	cfg := defaultServiceConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyFallbacks()
	cfg.Database.Password = os.Getenv("DIALECTIC_DB_PASSWORD")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		Server: ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "dialectic",
			Database:     "dialectic",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Embedder: EmbedderConfig{
			Mode:      "local",
			Addr:      "localhost:50051",
			Dimension: 256,
		},
		Retention: DefaultRetentionConfig(),
	}
}

// applyFallbacks restores defaults for fields a partial YAML file zeroed.
func (c *ServiceConfig) applyFallbacks() {
	d := defaultServiceConfig()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Database.Host == "" {
		c.Database.Host = d.Database.Host
	}
	if c.Database.Port == 0 {
		c.Database.Port = d.Database.Port
	}
	if c.Database.User == "" {
		c.Database.User = d.Database.User
	}
	if c.Database.Database == "" {
		c.Database.Database = d.Database.Database
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = d.Database.SSLMode
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = d.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = d.Database.MaxIdleConns
	}
	if c.Embedder.Mode == "" {
		c.Embedder.Mode = d.Embedder.Mode
	}
	if c.Embedder.Addr == "" {
		c.Embedder.Addr = d.Embedder.Addr
	}
	if c.Embedder.Dimension == 0 {
		c.Embedder.Dimension = d.Embedder.Dimension
	}
	if c.Retention.EventTTL == 0 {
		c.Retention.EventTTL = d.Retention.EventTTL
	}
	if c.Retention.CleanupInterval == 0 {
		c.Retention.CleanupInterval = d.Retention.CleanupInterval
	}
}

func (c *ServiceConfig) validate() error {
	var problems []string
	if c.Embedder.Mode != "local" && c.Embedder.Mode != "grpc" {
		problems = append(problems, fmt.Sprintf("embedder.mode must be \"local\" or \"grpc\", got %q", c.Embedder.Mode))
	}
	if c.Embedder.Mode == "grpc" && c.Embedder.Addr == "" {
		problems = append(problems, "embedder.addr is required in grpc mode")
	}
	if c.Embedder.Dimension <= 0 {
		problems = append(problems, fmt.Sprintf("embedder.dimension must be positive, got %d", c.Embedder.Dimension))
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		problems = append(problems, fmt.Sprintf("database.port out of range: %d", c.Database.Port))
	}
	if c.Retention.EventTTL < 0 {
		problems = append(problems, "retention.event_ttl must not be negative")
	}
	if c.Retention.CleanupInterval < 0 {
		problems = append(problems, "retention.cleanup_interval must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid service configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN builds the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}
