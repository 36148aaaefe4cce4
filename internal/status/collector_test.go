package status

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/stopwatch/pkg/version"
)

func TestCollect_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	data, err := Collect(dir, "")
	require.NoError(t, err)

	assert.Equal(t, dir, data.CurrentDir)
	assert.Equal(t, version.Version, data.Version)
	assert.False(t, data.GlobalExists)
	require.NotNil(t, data.Config)
	assert.Equal(t, "real", data.Config.Mode)
	assert.Empty(t, data.ConfigError)
	assert.True(t, data.RealClockOK)
	require.NotEmpty(t, data.Sources)
	assert.Equal(t, "defaults", data.Sources[0].Kind)
}

func TestCollect_GlobalAndLocal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	globalPath := filepath.Join(home, "stopwatch", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0755))
	require.NoError(t, os.WriteFile(globalPath, []byte("mode: cpu\n"), 0644))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stopwatch.yml"), []byte("runs: 2\n"), 0644))

	data, err := Collect(dir, "")
	require.NoError(t, err)

	assert.True(t, data.GlobalExists)
	assert.Equal(t, globalPath, data.GlobalConfigPath)
	require.NotNil(t, data.Config)
	assert.Equal(t, "cpu", data.Config.Mode)
	assert.Equal(t, 2, data.Config.Runs)
	assert.Len(t, data.Sources, 3)
}

func TestCollect_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stopwatch.yml"), []byte("runs: 0\n"), 0644))

	data, err := Collect(dir, "")
	require.NoError(t, err)

	assert.Nil(t, data.Config)
	assert.Contains(t, data.ConfigError, "invalid configuration")
}

func TestCollect_CurrentDirectory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cwd, err := os.Getwd()
	require.NoError(t, err)

	data, err := Collect("", "")
	require.NoError(t, err)
	assert.Equal(t, cwd, data.CurrentDir)
}
