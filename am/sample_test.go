package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSample_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", ProjectConfigName)

	require.NoError(t, WriteSample(path, false))

	keys, err := UnknownKeys(path)
	require.NoError(t, err)
	assert.Empty(t, keys, "the sample only uses known keys")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, SampleConfig().Targets, cfg.Targets)
	assert.Equal(t, DefaultWorkers, cfg.Batch.Workers)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# java or kotlin")
}

func TestWriteSample_KeepsExistingFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ProjectConfigName, "# mine\n")

	err := WriteSample(path, false)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))
}

func TestWriteSample_ForceRotatesBackups(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ProjectConfigName, "# first\n")

	require.NoError(t, WriteSample(path, true))
	backup, err := os.ReadFile(path + ".back1")
	require.NoError(t, err)
	assert.Equal(t, "# first\n", string(backup))

	require.NoError(t, WriteSample(path, true))
	_, err = os.Stat(path + ".back2")
	assert.NoError(t, err, "the previous backup moves to .back2")
}
