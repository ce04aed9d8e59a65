package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Dictionary.Path) == "" {
		return fmt.Errorf("dictionary.path is required")
	}
	if c.Dictionary.Debounce < 0 {
		return fmt.Errorf("dictionary.debounce must be >= 0 (got %v)", c.Dictionary.Debounce)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when rate limiting is enabled")
	}

	if c.Suggest.MaxLimit < 1 || c.Suggest.MaxLimit > 10 {
		return fmt.Errorf("suggest.max_limit must be in 1..10 (got %d)", c.Suggest.MaxLimit)
	}

	if c.CORS.AllowCredentials && strings.TrimSpace(c.CORS.AllowedOrigins) == "*" {
		return fmt.Errorf("cors: wildcard origin cannot be combined with credentials")
	}

	return nil
}
