package evergreen

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is where Evergreen drops API credentials on its hosts.
const DefaultConfigFile = "./.evergreen.yml"

var validate = validator.New()

// Settings holds the connection and credential fields of an Evergreen
// configuration file (~/.evergreen.yml).
type Settings struct {
	APIServerHost string `yaml:"api_server_host" validate:"required"`
	UIServerHost  string `yaml:"ui_server_host"`
	User          string `yaml:"user" validate:"required"`
	APIKey        string `yaml:"api_key" validate:"required"`
}

// LoadSettings reads an Evergreen configuration file and validates that the
// fields needed to authenticate against the API are present.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read evergreen config %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse evergreen config %s: %w", path, err)
	}

	if err := validate.Struct(&settings); err != nil {
		return nil, fmt.Errorf("invalid evergreen config %s: %w", path, err)
	}

	return &settings, nil
}
