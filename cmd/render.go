package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidoc/internal/pipeline"
	"github.com/ziadkadry99/mermaidoc/internal/progress"
	"github.com/ziadkadry99/mermaidoc/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render markdown docs to HTML and activate their diagrams",
	Long: `Converts the markdown documentation directory into a static HTML site,
then runs the diagram transform over the generated pages. The result is
a self-contained site with live, theme-aware mermaid diagrams.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("skip-transform", false, "generate HTML only, leave diagram blocks as code")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gen := render.NewGenerator(cfg.DocsDir, cfg.OutputDir, projectName(cfg))
	pageCount, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d pages)\n", cfg.OutputDir, pageCount)

	if skip, _ := cmd.Flags().GetBool("skip-transform"); skip {
		return nil
	}

	res, err := pipeline.TransformDir(cfg, cfg.OutputDir, progress.NewReporter())
	if err != nil {
		return fmt.Errorf("transforming %s: %w", cfg.OutputDir, err)
	}
	fmt.Printf("Activated %d diagram blocks across %d pages\n", res.Blocks, res.PagesModified)
	return nil
}
