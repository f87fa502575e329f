// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	TMDB     TMDBConfig     `toml:"tmdb"`
	Cache    CacheConfig    `toml:"cache"`
	Engine   EngineConfig   `toml:"engine"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

type TMDBConfig struct {
	APIToken     string `toml:"api_token"`
	BaseURL      string `toml:"base_url"` // empty for the public API
	Region       string `toml:"region"`
	Language     string `toml:"language"`
	IncludeAdult bool   `toml:"include_adult"`
}

type CacheConfig struct {
	Capacity            int `toml:"capacity"`
	PageMetadataSeconds int `toml:"page_metadata_seconds"`
}

type EngineConfig struct {
	BatchSize  int `toml:"batch_size"`
	MaxRetries int `toml:"max_retries"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.TMDB.Region == "" {
		cfg.TMDB.Region = "US"
	}
	if cfg.TMDB.Language == "" {
		cfg.TMDB.Language = "en-US"
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = 2048
	}
	if cfg.Cache.PageMetadataSeconds == 0 {
		cfg.Cache.PageMetadataSeconds = 300
	}
	if cfg.Engine.BatchSize == 0 {
		cfg.Engine.BatchSize = 5
	}
	if cfg.Engine.MaxRetries == 0 {
		cfg.Engine.MaxRetries = 10
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/flickpick.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
