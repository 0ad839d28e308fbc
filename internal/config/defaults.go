package config

// DefaultRemoteURL is the CDN location of the mermaid ESM bundle used in
// remote mode when no override is configured.
const DefaultRemoteURL = "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs"

// DefaultExcludes are page patterns skipped by default: the staged assets
// themselves and anything vendored next to the output.
var DefaultExcludes = []string{
	"assets/**",
	"node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:        AssetModeRemote,
		RemoteURL:   DefaultRemoteURL,
		Strategy:    "passthrough",
		Placeholder: "single",
		DocsDir:     "docs",
		OutputDir:   "site",
		Include:     []string{"**/*.html"},
		Exclude:     DefaultExcludes,
		SearchDir:   ".",
	}
}
