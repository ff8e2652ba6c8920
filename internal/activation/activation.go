// Package activation marks a generated task as eligible to run in an
// existing Evergreen build.
package activation

import (
	"context"
	"fmt"

	"github.com/evg-tools/evgactivate/internal/evergreen"
	"github.com/evg-tools/evgactivate/internal/logging"
)

// API is the slice of the Evergreen client the activation flow needs.
type API interface {
	TasksForBuild(ctx context.Context, buildID string) ([]evergreen.Task, error)
	ConfigureTask(ctx context.Context, taskID string, config evergreen.TaskConfig) error
}

// ActivateTask activates the first task in the given build whose display
// name equals taskName. A build without a matching task is not an error;
// nothing happens and the caller exits cleanly.
func ActivateTask(ctx context.Context, api API, buildID, taskName string) error {
	tasks, err := api.TasksForBuild(ctx, buildID)
	if err != nil {
		return fmt.Errorf("failed to list tasks for build %s: %w", buildID, err)
	}

	for _, task := range tasks {
		if task.DisplayName != taskName {
			continue
		}

		logging.Info("activating task", "task_id", task.ID, "task_name", task.DisplayName)

		activated := true
		if err := api.ConfigureTask(ctx, task.ID, evergreen.TaskConfig{Activated: &activated}); err != nil {
			return fmt.Errorf("failed to activate task %s: %w", task.ID, err)
		}
		return nil
	}

	logging.Debug("no matching task in build", "build_id", buildID, "task_name", taskName)
	return nil
}
