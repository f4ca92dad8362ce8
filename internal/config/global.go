// Package config handles global configuration and output paths.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/citegraph/config.yml.
type GlobalConfig struct {
	UserAgent         string  `yaml:"user_agent,omitempty"`
	RequestsPerSecond float64 `yaml:"requests_per_second,omitempty"`
	TimeoutSeconds    int     `yaml:"timeout_seconds,omitempty"`
	Strict            bool    `yaml:"strict,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "citegraph"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// Environment variables that override the config file.
const (
	EnvUserAgent = "CITEGRAPH_USER_AGENT"
	EnvRate      = "CITEGRAPH_RATE"
	EnvTimeout   = "CITEGRAPH_TIMEOUT"
)

// ErrInvalidConfig is returned when a config value is out of range or unparseable.
var ErrInvalidConfig = errors.New("invalid config")

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/citegraph/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides. A missing file yields an empty config, not an error.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg, err := readGlobalConfig(GlobalConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfigCache = cfg
	return cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

func readGlobalConfig(path string) (*GlobalConfig, error) {
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

func (c *GlobalConfig) applyEnv() error {
	if ua := os.Getenv(EnvUserAgent); ua != "" {
		c.UserAgent = ua
	}
	if s := os.Getenv(EnvRate); s != "" {
		rate, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvRate, s)
		}
		c.RequestsPerSecond = rate
	}
	if s := os.Getenv(EnvTimeout); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvTimeout, s)
		}
		c.TimeoutSeconds = secs
	}
	return nil
}

// Validate checks that numeric settings are not negative.
func (c *GlobalConfig) Validate() error {
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests_per_second must not be negative, got %g", ErrInvalidConfig, c.RequestsPerSecond)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: timeout_seconds must not be negative, got %d", ErrInvalidConfig, c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the configured request timeout, or zero if unset.
func (c *GlobalConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
