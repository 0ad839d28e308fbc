package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
)

// detectDocsDir checks the current directory for well-known documentation
// output locations and returns the first one that exists.
func detectDocsDir() string {
	for _, candidate := range []string{"docs", "doc/api", "site", "public", "build/docs"} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .mermaidoc.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to mermaidoc! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Asset mode.
	modePrompt := promptui.Select{
		Label: "How should pages load the mermaid library",
		Items: []string{
			"remote: import from a CDN at view time",
			"local: stage a local npm install into the output (offline docs)",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("mode selection: %w", err)
	}
	if modeIdx == 1 {
		cfg.Mode = AssetModeLocal
	}

	// 2. Remote URL override, only relevant in remote mode.
	if cfg.Mode == AssetModeRemote {
		urlPrompt := promptui.Prompt{
			Label:   "Mermaid ESM bundle URL",
			Default: DefaultRemoteURL,
		}
		remoteURL, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("remote URL: %w", err)
		}
		cfg.RemoteURL = remoteURL
	}

	// 3. Docs directory.
	docsPrompt := promptui.Prompt{
		Label:   "Markdown docs directory",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs directory: %w", err)
	}
	cfg.DocsDir = docsDir

	// 4. Output directory.
	outPrompt := promptui.Prompt{
		Label:   "Site output directory",
		Default: cfg.OutputDir,
	}
	outputDir, err := outPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	cfg.OutputDir = outputDir

	// Derive a project name from the working directory.
	if wd, wdErr := os.Getwd(); wdErr == nil {
		cfg.ProjectName = filepath.Base(wd)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".mermaidoc.yml"); err != nil {
		return nil, err
	}
	fmt.Println("\nSaved configuration to .mermaidoc.yml")

	return cfg, nil
}
