package cache

import (
	"fmt"
	"os"
	"time"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config selects and configures the cache backend.
type Config struct {
	Backend    string `toml:"backend"`
	URL        string `toml:"url"`
	Prefix     string `toml:"prefix"`
	DefaultTTL string `toml:"default_ttl"`
}

// Env maps environment variable names for cache configuration.
type Env struct {
	Backend    string
	URL        string
	Prefix     string
	DefaultTTL string
}

// DefaultTTLDuration parses and returns the default entry lifetime.
func (c *Config) DefaultTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.DefaultTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the cache configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.URL != "" {
		c.URL = overlay.URL
	}
	if overlay.Prefix != "" {
		c.Prefix = overlay.Prefix
	}
	if overlay.DefaultTTL != "" {
		c.DefaultTTL = overlay.DefaultTTL
	}
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	if c.Prefix == "" {
		c.Prefix = "discvault:"
	}
	if c.DefaultTTL == "" {
		c.DefaultTTL = "1h"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Backend != "" {
		if v := os.Getenv(env.Backend); v != "" {
			c.Backend = v
		}
	}
	if env.URL != "" {
		if v := os.Getenv(env.URL); v != "" {
			c.URL = v
		}
	}
	if env.Prefix != "" {
		if v := os.Getenv(env.Prefix); v != "" {
			c.Prefix = v
		}
	}
	if env.DefaultTTL != "" {
		if v := os.Getenv(env.DefaultTTL); v != "" {
			c.DefaultTTL = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.URL == "" {
			return fmt.Errorf("url required for redis backend")
		}
	default:
		return fmt.Errorf("invalid backend: %s (must be memory or redis)", c.Backend)
	}

	d, err := time.ParseDuration(c.DefaultTTL)
	if err != nil {
		return fmt.Errorf("invalid default_ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("default_ttl must be positive")
	}
	return nil
}
