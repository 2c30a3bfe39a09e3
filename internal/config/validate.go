package config

import (
	"fmt"
	"strings"
)

const maxSnowflakeNode = 1023

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Codec.validate(); err != nil {
		return fmt.Errorf("codec: %w", err)
	}

	if err := c.Fetch.validate(); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	if c.Snowflake.Node < 0 || c.Snowflake.Node > maxSnowflakeNode {
		return fmt.Errorf("snowflake.node must be in 0..%d (got %d)", maxSnowflakeNode, c.Snowflake.Node)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text", "":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *CodecConfig) validate() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("secret must be at least 16 characters (got %d)", len(c.Secret))
	}
	switch c.Mode {
	case "cbc", "sealed":
	case "":
		c.Mode = "cbc"
	default:
		return fmt.Errorf("mode must be cbc or sealed (got %q)", c.Mode)
	}
	return nil
}

func (f FetchConfig) validate() error {
	if f.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", f.MaxRetries)
	}
	if f.MaxRetries > 10 {
		return fmt.Errorf("max_retries must be <= 10 (got %d)", f.MaxRetries)
	}
	if f.MaxRetries > 0 && f.InitialInterval <= 0 {
		return fmt.Errorf("initial_interval must be > 0 when retries are enabled")
	}
	if f.MaxInterval > 0 && f.MaxInterval < f.InitialInterval {
		return fmt.Errorf("max_interval (%v) must be >= initial_interval (%v)", f.MaxInterval, f.InitialInterval)
	}
	return nil
}
