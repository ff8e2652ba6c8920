package expansions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExpansions(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expansions.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeExpansions(t, "build_id: mongodb_mongo_master_abc123\ntask_name: burn_in_tags_gen\n")

	exp, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mongodb_mongo_master_abc123", exp.BuildID)
	assert.Equal(t, "burn_in_tags_gen", exp.TaskName)
}

func TestLoadFromFileIgnoresUnknownKeys(t *testing.T) {
	path := writeExpansions(t, "build_id: b1\ntask_name: foo_gen\nbranch_name: master\nrevision: deadbeef\n")

	exp, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b1", exp.BuildID)
}

func TestLoadFromFileMissingBuildID(t *testing.T) {
	path := writeExpansions(t, "task_name: foo_gen\n")

	exp, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Nil(t, exp)
	assert.Contains(t, err.Error(), "BuildID")
}

func TestLoadFromFileMissingTaskName(t *testing.T) {
	path := writeExpansions(t, "build_id: b1\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TaskName")
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := writeExpansions(t, "build_id: [unclosed\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestTaskStripsGenSuffix(t *testing.T) {
	exp := &Expansions{BuildID: "b1", TaskName: "foo_gen"}
	assert.Equal(t, "foo", exp.Task())

	exp.TaskName = "foo"
	assert.Equal(t, "foo", exp.Task())
}
