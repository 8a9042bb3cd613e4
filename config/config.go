package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config is the server's environment configuration. An empty RedisAddr
// selects the in-memory room store.
type Config struct {
	Port      int    `env:"PORT,default=8000"`
	RedisAddr string `env:"REDIS_ADDR"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config from environment: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address derived from the port
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
