package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/mermaidoc/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mermaidoc configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure mermaidoc for your project and generates a .mermaidoc.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
