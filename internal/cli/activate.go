package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/evg-tools/evgactivate/internal/activation"
	"github.com/evg-tools/evgactivate/internal/evergreen"
	"github.com/evg-tools/evgactivate/internal/expansions"
	"github.com/evg-tools/evgactivate/internal/logging"
)

func runActivate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	expansionFile, err := cmd.Flags().GetString("expansion-file")
	if err != nil {
		return err
	}
	evergreenConfig, err := cmd.Flags().GetString("evergreen-config")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	logging.Init(verbose)

	exp, err := expansions.LoadFromFile(expansionFile)
	if err != nil {
		return err
	}
	logging.Debug("loaded expansions", "build_id", exp.BuildID, "task_name", exp.TaskName)

	settings, err := evergreen.LoadSettings(evergreenConfig)
	if err != nil {
		return err
	}
	client := evergreen.NewClient(settings)

	build, err := client.BuildByID(ctx, exp.BuildID)
	if err != nil {
		return err
	}
	logging.Debug("found build", "build_id", build.ID, "build_variant", build.BuildVariant)

	return activation.ActivateTask(ctx, client, exp.BuildID, exp.Task())
}
