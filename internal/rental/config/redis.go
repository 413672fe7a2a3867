package config

import (
	"time"

	"moviecards/pkg/db/redis"
)

// RedisConfig holds the settings of the optional Redis backend.
type RedisConfig struct {
	Host      string        `yaml:"host" env:"RENTAL_REDIS_HOST" env-default:"localhost"`
	Port      int           `yaml:"port" env:"RENTAL_REDIS_PORT" env-default:"6379"`
	Password  string        `yaml:"password" env:"RENTAL_REDIS_PASSWORD" env-default:""`
	DB        int           `yaml:"db" env:"RENTAL_REDIS_DB" env-default:"0"`
	PoolSize  int           `yaml:"pool_size" env:"RENTAL_REDIS_POOL_SIZE" env-default:"10"`
	Timeout   time.Duration `yaml:"timeout" env:"RENTAL_REDIS_TIMEOUT" env-default:"5s"`
	KeyPrefix string        `yaml:"key_prefix" env:"RENTAL_REDIS_KEY_PREFIX" env-default:"rental:"`
}

// ToClientConfig converts to the client package settings.
func (r *RedisConfig) ToClientConfig() *redis.Config {
	return &redis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  r.Timeout,
	}
}
