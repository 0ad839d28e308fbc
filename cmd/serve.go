package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidoc/internal/config"
	"github.com/ziadkadry99/mermaidoc/internal/pipeline"
	"github.com/ziadkadry99/mermaidoc/internal/render"
	"github.com/ziadkadry99/mermaidoc/internal/serve"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site with live reload",
	Long: `Starts a local HTTP server for the generated site. When the markdown
docs directory changes, the site is regenerated, diagrams are
re-activated, and connected browsers reload automatically.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the local dev server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-watch", false, "disable file watching and live reload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory not found at %s\nRun `mermaidoc render` first to generate the site", cfg.OutputDir)
	}

	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	srv := serve.New(serve.Options{
		Dir:        cfg.OutputDir,
		Port:       port,
		Open:       open,
		LiveReload: !noWatch,
	})

	if !noWatch {
		if _, err := os.Stat(cfg.DocsDir); err == nil {
			watcher, err := serve.NewWatcher(cfg.DocsDir, func() {
				rebuild(cfg)
				srv.Hub().Broadcast()
			})
			if err != nil {
				return fmt.Errorf("watching %s: %w", cfg.DocsDir, err)
			}
			watcher.Start()
			defer watcher.Stop()
			fmt.Printf("Watching %s for changes\n", cfg.DocsDir)
		}
	}

	return srv.ListenAndServe()
}

// rebuild regenerates the site and re-runs the diagram transform. Errors
// are reported but do not stop the server.
func rebuild(cfg *config.Config) {
	gen := render.NewGenerator(cfg.DocsDir, cfg.OutputDir, projectName(cfg))
	if _, err := gen.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
		return
	}
	if _, err := pipeline.TransformDir(cfg, cfg.OutputDir, nil); err != nil {
		fmt.Fprintf(os.Stderr, "diagram transform failed: %v\n", err)
	}
}
