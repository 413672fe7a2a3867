package config

import (
	"moviecards/pkg/logger"
)

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"RENTAL_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"RENTAL_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment maps the mode string to a logger environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == string(logger.Production) {
		return logger.Production
	}
	return logger.Development
}
