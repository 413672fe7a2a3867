// Package config holds the configuration of the rental application.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "moviecards/pkg/config"
	"moviecards/pkg/logger"
)

const (
	serviceName = "rental"

	// PathEnv optionally names a YAML or .env file to read instead of the environment.
	PathEnv = "RENTAL_CONFIG_PATH"

	errFailedLoadConfig = "failed to load rental configuration"
)

// Config is the full application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Redis    RedisConfig    `yaml:"redis"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load reads the configuration from the file named by RENTAL_CONFIG_PATH, or
// from the environment when it is unset.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, os.Getenv(PathEnv))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfig, err)
	}
	if err := cfg.Storage.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfig, err)
	}

	logger.Log(ctx).Debug(ctx, "rental configuration",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("dir", cfg.Storage.Dir),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
