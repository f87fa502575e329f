package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.TMDB.APIToken == "" {
		errs = append(errs, "tmdb.api_token: required")
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Cache.Capacity < 0 {
		errs = append(errs, fmt.Sprintf("cache.capacity: must be positive, got %d", c.Cache.Capacity))
	}
	if c.Engine.BatchSize < 0 {
		errs = append(errs, fmt.Sprintf("engine.batch_size: must be positive, got %d", c.Engine.BatchSize))
	}
	if c.Engine.MaxRetries < 0 {
		errs = append(errs, fmt.Sprintf("engine.max_retries: must be positive, got %d", c.Engine.MaxRetries))
	}

	return errs
}
