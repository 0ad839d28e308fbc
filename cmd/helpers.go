package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/mermaidoc/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mermaidoc init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// projectName derives a display name from config or the working directory.
func projectName(cfg *config.Config) string {
	if cfg.ProjectName != "" {
		return cfg.ProjectName
	}
	if wd, err := os.Getwd(); err == nil {
		if base := filepath.Base(wd); base != "." && base != "" {
			return base
		}
	}
	return "Documentation"
}
