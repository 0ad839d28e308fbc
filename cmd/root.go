package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mermaidoc",
	Short: "Theme-reactive mermaid diagrams for static documentation sites",
	Long: `Mermaidoc rewrites rendered documentation pages so that fenced mermaid
code blocks become live, theme-aware diagrams in the browser, with the
original source kept as a readable fallback when JavaScript is off.
Diagram assets load from a CDN or from a locally staged mermaid install.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".mermaidoc.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
