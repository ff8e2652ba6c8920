// Package expansions loads the Evergreen expansions file written for a
// generator task run.
package expansions

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/evg-tools/evgactivate/internal/taskname"
)

var validate = validator.New()

// Expansions holds the subset of the expansions file this tool needs.
//
// BuildID is the build the generator task is running in; TaskName is the
// name of the generator task itself.
type Expansions struct {
	BuildID  string `yaml:"build_id" validate:"required"`
	TaskName string `yaml:"task_name" validate:"required"`
}

// LoadFromFile reads and validates an expansions YAML file.
func LoadFromFile(path string) (*Expansions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read expansions file %s: %w", path, err)
	}

	var exp Expansions
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse expansions file %s: %w", path, err)
	}

	if err := validate.Struct(&exp); err != nil {
		return nil, fmt.Errorf("invalid expansions file %s: %w", path, err)
	}

	return &exp, nil
}

// Task returns the display name of the task being generated, with the
// generator suffix stripped from TaskName.
func (e *Expansions) Task() string {
	return taskname.RemoveGenSuffix(e.TaskName)
}
