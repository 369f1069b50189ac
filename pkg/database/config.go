package database

import (
	"time"

	"github.com/dialectic-dev/dialectic/pkg/config"
)

// FromServiceConfig builds a database Config from the loaded service
// configuration.
func FromServiceConfig(cfg config.DatabaseConfig) Config {
	return Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Password:        cfg.Password,
		Database:        cfg.Database,
		SSLMode:         cfg.SSLMode,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}
