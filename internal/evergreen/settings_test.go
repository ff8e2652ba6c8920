package evergreen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".evergreen.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
api_server_host: https://evergreen.example.com/api
ui_server_host: https://evergreen.example.com
user: ci.user
api_key: abc123
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "https://evergreen.example.com/api", settings.APIServerHost)
	assert.Equal(t, "https://evergreen.example.com", settings.UIServerHost)
	assert.Equal(t, "ci.user", settings.User)
	assert.Equal(t, "abc123", settings.APIKey)
}

func TestLoadSettingsUIHostOptional(t *testing.T) {
	path := writeSettings(t, "api_server_host: https://evg.example.com\nuser: u\napi_key: k\n")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Empty(t, settings.UIServerHost)
}

func TestLoadSettingsMissingCredentials(t *testing.T) {
	path := writeSettings(t, "api_server_host: https://evg.example.com\nuser: u\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
