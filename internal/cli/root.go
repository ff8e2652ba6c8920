package cli

import (
	"github.com/spf13/cobra"

	"github.com/evg-tools/evgactivate/internal/evergreen"
)

var rootCmd = &cobra.Command{
	Use:   "evg-activate",
	Short: "Activate a generated task in an existing Evergreen build",
	Long: `evg-activate reads the build ID and task name from an Evergreen
expansions file, finds the task generated for the running generator task in
that build, and marks it activated.

The --expansion-file should contain the build_id and task_name expansions
written by evergreen for the generator task.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runActivate,
}

func init() {
	rootCmd.Flags().String("expansion-file", "", "Location of expansions file generated by evergreen")
	rootCmd.Flags().String("evergreen-config", evergreen.DefaultConfigFile, "Location of evergreen configuration file")
	rootCmd.Flags().Bool("verbose", false, "Enable verbose logging")
	_ = rootCmd.MarkFlagRequired("expansion-file")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
