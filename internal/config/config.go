// Package config resolves ghi's settings from defaults, an optional Lua
// config file, and environment variables, in that order of precedence
// (environment wins).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/johncf/ghi/internal/platform"
)

// Environment variable overrides. Each one, when set and non-empty, takes
// precedence over both the built-in default and the config file.
const (
	EnvInstallDir = "GHI_INSTALL_DIR"
	EnvCacheDir   = "GHI_CACHE_DIR"
	EnvConfigFile = "GHI_CONFIG"
)

// Config holds the resolved settings.
type Config struct {
	// InstallDir is where extracted executables are placed.
	InstallDir string
	// CacheDir is where downloaded assets are kept between runs.
	CacheDir string
	// ExtraPositive are user keywords appended to the derived positive set.
	ExtraPositive []string
	// ExtraNegative are user keywords appended to the derived negative set.
	ExtraNegative []string
}

// Load resolves the configuration. The platform info is exposed to the Lua
// config file as a read-only `platform` table, so configs can branch on OS
// or distribution.
func Load(info *platform.Info) (*Config, error) {
	cfg, err := defaults()
	if err != nil {
		return nil, err
	}

	path, explicit := configPath()
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := cfg.applyFile(path, info); err != nil {
				return nil, err
			}
		} else if explicit {
			// A file named via GHI_CONFIG must exist; a missing default
			// location is fine.
			return nil, fmt.Errorf("config file %s: %w", path, statErr)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		// Fall back under home; UserCacheDir fails when XDG_CACHE_HOME and
		// HOME are both unset, which the home lookup above already guards.
		cacheRoot = filepath.Join(home, ".cache")
	}
	return &Config{
		InstallDir: filepath.Join(home, ".local", "bin"),
		CacheDir:   filepath.Join(cacheRoot, "ghi"),
	}, nil
}

// configPath returns the config file to try and whether it was explicitly
// requested via GHI_CONFIG.
func configPath() (string, bool) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, true
	}
	configRoot, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(configRoot, "ghi", "config.lua"), false
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvInstallDir); dir != "" {
		c.InstallDir = dir
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		c.CacheDir = dir
	}
}
