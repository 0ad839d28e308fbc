package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MERMAIDOC_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: MERMAIDOC_MODE -> mode, etc.
	if err := k.Load(env.Provider("MERMAIDOC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MERMAIDOC_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validModes is the set of recognized asset mode values.
var validModes = map[AssetMode]bool{
	AssetModeRemote: true,
	AssetModeLocal:  true,
}

// validStrategies is the set of recognized codec strategy values.
var validStrategies = map[string]bool{
	"passthrough": true,
	"tokens":      true,
}

// validPlaceholders is the set of recognized placeholder mode values.
var validPlaceholders = map[string]bool{
	"single": true,
	"dual":   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Mode == "" {
		return fmt.Errorf("mode is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be remote or local", c.Mode)
	}

	if c.Mode == AssetModeRemote && c.RemoteURL == "" {
		return fmt.Errorf("remote_url is required in remote mode")
	}

	if c.Strategy != "" && !validStrategies[c.Strategy] {
		return fmt.Errorf("invalid strategy %q: must be passthrough or tokens", c.Strategy)
	}

	if c.Placeholder != "" && !validPlaceholders[c.Placeholder] {
		return fmt.Errorf("invalid placeholder %q: must be single or dual", c.Placeholder)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	return nil
}
