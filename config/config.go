package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to upper-cased key names for environment
// overrides, e.g. MDARTIFACT_TOKEN.
const EnvPrefix = "MDARTIFACT_"

// ErrTokenRequired indicates no GitLab token was configured.
var ErrTokenRequired = errors.New("gitlab token is required")

// Config holds the settings for artifact resolution.
// Precedence (highest to lowest): environment > config file > zero values.
type Config struct {
	// BaseURL is the GitLab instance root. Empty means gitlab.com.
	BaseURL string `yaml:"base_url"`

	// Token is sent as PRIVATE-TOKEN on artifact downloads.
	Token string `yaml:"token"`

	// DestinationDir overrides where artifacts are unpacked. Empty means
	// alongside each processed document.
	DestinationDir string `yaml:"destination_dir"`
}

// Load reads the config file at path and applies environment overrides.
// An empty path or a missing file yields an environment-only config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPrefix + "BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvPrefix + "TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvPrefix + "DESTINATION_DIR"); v != "" {
		c.DestinationDir = v
	}
}

// Validate checks that the config can drive a fetcher.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrTokenRequired
	}
	return nil
}
