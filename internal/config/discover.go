package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "flickpick", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. FLICKPICK_CONFIG environment variable
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/flickpick/config.toml
//  4. /etc/flickpick/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("FLICKPICK_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("FLICKPICK_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	candidates := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/flickpick/config.toml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched ./config.toml, %s, /etc/flickpick/config.toml)", DefaultPath())
}
