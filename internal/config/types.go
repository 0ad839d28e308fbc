package config

// AssetMode selects where the activation script loads mermaid from.
type AssetMode string

const (
	// AssetModeRemote imports mermaid from a CDN URL at view time.
	AssetModeRemote AssetMode = "remote"
	// AssetModeLocal stages a locally installed mermaid into the output
	// tree and imports it by relative path.
	AssetModeLocal AssetMode = "local"
)

// Config is the top-level mermaidoc configuration, corresponding to .mermaidoc.yml.
type Config struct {
	Mode        AssetMode `yaml:"mode" koanf:"mode"`
	RemoteURL   string    `yaml:"remote_url" koanf:"remote_url"`
	Strategy    string    `yaml:"strategy" koanf:"strategy"`
	Placeholder string    `yaml:"placeholder" koanf:"placeholder"`
	DocsDir     string    `yaml:"docs_dir" koanf:"docs_dir"`
	OutputDir   string    `yaml:"output_dir" koanf:"output_dir"`
	ProjectName string    `yaml:"project_name" koanf:"project_name"`
	Include     []string  `yaml:"include" koanf:"include"`
	Exclude     []string  `yaml:"exclude" koanf:"exclude"`
	SearchDir   string    `yaml:"search_dir" koanf:"search_dir"`
}
