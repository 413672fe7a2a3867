package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Storage backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrUnknownBackend is returned by Load for a backend other than file or redis.
var ErrUnknownBackend = errors.New("unknown storage backend")

// StorageConfig selects where the three collections live.
type StorageConfig struct {
	Backend          string `yaml:"backend" env:"RENTAL_STORAGE_BACKEND" env-default:"file"`
	Dir              string `yaml:"dir" env:"RENTAL_STORAGE_DIR" env-default:"."`
	CardsFile        string `yaml:"cards_file" env:"RENTAL_CARDS_FILE" env-default:"cards.csv"`
	MoviesFile       string `yaml:"movies_file" env:"RENTAL_MOVIES_FILE" env-default:"movies.csv"`
	ReservationsFile string `yaml:"reservations_file" env:"RENTAL_RESERVATIONS_FILE" env-default:"reservations.csv"`
}

// UseRedis reports whether the Redis backend is selected.
func (s *StorageConfig) UseRedis() bool {
	return strings.EqualFold(strings.TrimSpace(s.Backend), BackendRedis)
}

// normalize lowercases Backend and rejects names it does not know.
func (s *StorageConfig) normalize() error {
	backend := strings.ToLower(strings.TrimSpace(s.Backend))
	switch backend {
	case BackendFile, BackendRedis:
		s.Backend = backend
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, s.Backend)
	}
}

func (s *StorageConfig) CardsPath() string {
	return filepath.Join(s.Dir, s.CardsFile)
}

func (s *StorageConfig) MoviesPath() string {
	return filepath.Join(s.Dir, s.MoviesFile)
}

func (s *StorageConfig) ReservationsPath() string {
	return filepath.Join(s.Dir, s.ReservationsFile)
}
