package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidoc/internal/pipeline"
	"github.com/ziadkadry99/mermaidoc/internal/progress"
)

var transformCmd = &cobra.Command{
	Use:   "transform [dir]",
	Short: "Rewrite diagram code blocks in rendered HTML pages",
	Long: `Scans a directory of rendered HTML pages for fenced mermaid code blocks
and rewrites them into theme-reactive diagram containers, injecting the
style and activation script into each affected page. Pages without
diagram blocks are left byte-for-byte untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().Bool("quiet", false, "suppress the progress bar")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.OutputDir
	if len(args) > 0 {
		dir = args[0]
	}

	var reporter progress.Reporter
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		if verbose {
			reporter = &progress.CIReporter{}
		} else {
			reporter = progress.NewReporter()
		}
	}

	res, err := pipeline.TransformDir(cfg, dir, reporter)
	if err != nil {
		return fmt.Errorf("transforming %s: %w", dir, err)
	}

	fmt.Printf("Transformed %d of %d pages (%d diagram blocks)\n",
		res.PagesModified, res.PagesScanned, res.Blocks)
	return nil
}
