package config

import (
	"time"
)

// ShutdownConfig bounds the exit sequence that saves every store.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"RENTAL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout returns the timeout in seconds as a duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
