package lookup

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config controls the MusicBrainz client.
type Config struct {
	BaseURL         string  `toml:"base_url"`
	CoverArtURL     string  `toml:"cover_art_url"`
	UserAgent       string  `toml:"user_agent"`
	Timeout         string  `toml:"timeout"`
	Rate            float64 `toml:"rate"`
	Burst           int     `toml:"burst"`
	CacheTTL        string  `toml:"cache_ttl"`
	BreakerFailures uint32  `toml:"breaker_failures"`
	BreakerTimeout  string  `toml:"breaker_timeout"`
}

// Env maps environment variable names for MusicBrainz configuration.
type Env struct {
	BaseURL         string
	CoverArtURL     string
	UserAgent       string
	Timeout         string
	Rate            string
	Burst           string
	CacheTTL        string
	BreakerFailures string
	BreakerTimeout  string
}

// TimeoutDuration returns the per-request HTTP timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// CacheTTLDuration returns how long successful lookups stay cached.
func (c *Config) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// BreakerTimeoutDuration returns how long the breaker stays open before probing.
func (c *Config) BreakerTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.BreakerTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.CoverArtURL != "" {
		c.CoverArtURL = overlay.CoverArtURL
	}
	if overlay.UserAgent != "" {
		c.UserAgent = overlay.UserAgent
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Rate != 0 {
		c.Rate = overlay.Rate
	}
	if overlay.Burst != 0 {
		c.Burst = overlay.Burst
	}
	if overlay.CacheTTL != "" {
		c.CacheTTL = overlay.CacheTTL
	}
	if overlay.BreakerFailures != 0 {
		c.BreakerFailures = overlay.BreakerFailures
	}
	if overlay.BreakerTimeout != "" {
		c.BreakerTimeout = overlay.BreakerTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://musicbrainz.org/ws/2/"
	}
	if c.CoverArtURL == "" {
		c.CoverArtURL = "https://coverartarchive.org"
	}
	if c.UserAgent == "" {
		c.UserAgent = "DiscVault/0.1.0 ( https://github.com/JaimeStill/discvault )"
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
	if c.Rate == 0 {
		c.Rate = 1
	}
	if c.Burst == 0 {
		c.Burst = 1
	}
	if c.CacheTTL == "" {
		c.CacheTTL = "24h"
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 5
	}
	if c.BreakerTimeout == "" {
		c.BreakerTimeout = "30s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := lookupEnv(env.BaseURL); v != "" {
		c.BaseURL = v
	}
	if v := lookupEnv(env.CoverArtURL); v != "" {
		c.CoverArtURL = v
	}
	if v := lookupEnv(env.UserAgent); v != "" {
		c.UserAgent = v
	}
	if v := lookupEnv(env.Timeout); v != "" {
		c.Timeout = v
	}
	if v := lookupEnv(env.Rate); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rate = f
		}
	}
	if v := lookupEnv(env.Burst); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Burst = n
		}
	}
	if v := lookupEnv(env.CacheTTL); v != "" {
		c.CacheTTL = v
	}
	if v := lookupEnv(env.BreakerFailures); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.BreakerFailures = uint32(n)
		}
	}
	if v := lookupEnv(env.BreakerTimeout); v != "" {
		c.BreakerTimeout = v
	}
}

func (c *Config) validate() error {
	for name, raw := range map[string]string{"base_url": c.BaseURL, "cover_art_url": c.CoverArtURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}

	for name, raw := range map[string]string{"timeout": c.Timeout, "cache_ttl": c.CacheTTL, "breaker_timeout": c.BreakerTimeout} {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	return nil
}

func lookupEnv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
