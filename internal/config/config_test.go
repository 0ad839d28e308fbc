package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != AssetModeRemote {
		t.Errorf("default mode = %q, want remote", cfg.Mode)
	}
	if cfg.RemoteURL != DefaultRemoteURL {
		t.Errorf("default remote_url = %q", cfg.RemoteURL)
	}
	if cfg.Strategy != "passthrough" {
		t.Errorf("default strategy = %q, want passthrough", cfg.Strategy)
	}
	if cfg.Placeholder != "single" {
		t.Errorf("default placeholder = %q, want single", cfg.Placeholder)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing mode", func(c *Config) { c.Mode = "" }, "mode is required"},
		{"bad mode", func(c *Config) { c.Mode = "cdn" }, "invalid mode"},
		{"remote without url", func(c *Config) { c.RemoteURL = "" }, "remote_url is required"},
		{"bad strategy", func(c *Config) { c.Strategy = "inline" }, "invalid strategy"},
		{"bad placeholder", func(c *Config) { c.Placeholder = "triple" }, "invalid placeholder"},
		{"missing output", func(c *Config) { c.OutputDir = "" }, "output_dir is required"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error = %q, want it to contain %q", tt.name, err.Error(), tt.wantErr)
		}
	}
}

func TestValidateLocalModeNeedsNoURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = AssetModeLocal
	cfg.RemoteURL = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("local mode should not require remote_url: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Mode != AssetModeRemote {
		t.Errorf("mode = %q, want default remote", cfg.Mode)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mermaidoc.yml")
	content := `mode: local
docs_dir: documentation
output_dir: public
placeholder: dual
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Mode != AssetModeLocal {
		t.Errorf("mode = %q, want local", cfg.Mode)
	}
	if cfg.DocsDir != "documentation" {
		t.Errorf("docs_dir = %q", cfg.DocsDir)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("output_dir = %q", cfg.OutputDir)
	}
	if cfg.Placeholder != "dual" {
		t.Errorf("placeholder = %q", cfg.Placeholder)
	}
	// Unset keys keep their defaults.
	if cfg.RemoteURL != DefaultRemoteURL {
		t.Errorf("remote_url should keep default, got %q", cfg.RemoteURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MERMAIDOC_MODE", "local")
	t.Setenv("MERMAIDOC_OUTPUT_DIR", "out")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Mode != AssetModeLocal {
		t.Errorf("env override mode = %q, want local", cfg.Mode)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("env override output_dir = %q, want out", cfg.OutputDir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mermaidoc.yml")

	cfg := DefaultConfig()
	cfg.Mode = AssetModeLocal
	cfg.ProjectName = "demo"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Mode != AssetModeLocal {
		t.Errorf("mode = %q, want local", loaded.Mode)
	}
	if loaded.ProjectName != "demo" {
		t.Errorf("project_name = %q, want demo", loaded.ProjectName)
	}
}
