package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/stopwatch/internal/config"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}

	assert.ElementsMatch(t, []string{"run", "status", "init", "validate", "schema"}, names)
	assert.Equal(t, "stopwatch", app.Name)
}

func TestRun_TimesCommandIntoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHELL", "/bin/sh")
	dir := t.TempDir()
	t.Chdir(dir)
	reportPath := filepath.Join(dir, "report.txt")

	code := run([]string{"stopwatch", "run", "--name", "cli", "--runs", "2", "--output", reportPath, "--", "true"})
	require.Equal(t, 0, code)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Tracking performance: cli\n")
	assert.Contains(t, string(content), "  *  Stops 2\n")
}

func TestRun_GlobalConfigFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHELL", "/bin/sh")
	dir := t.TempDir()
	t.Chdir(dir)

	reportPath := filepath.Join(dir, "out.txt")
	cfgPath := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("name: from-config\noutput: "+reportPath+"\n"), 0644))

	code := run([]string{"stopwatch", "--config", cfgPath, "run", "--", "true"})
	require.Equal(t, 0, code)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Tracking performance: from-config\n")
}

func TestRun_MissingCommand(t *testing.T) {
	assert.Equal(t, 1, run([]string{"stopwatch", "run"}))
}

func TestRun_FailingCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHELL", "/bin/sh")
	dir := t.TempDir()
	t.Chdir(dir)

	code := run([]string{"stopwatch", "run", "--output", filepath.Join(dir, "r.txt"), "--", "exit 3"})
	assert.Equal(t, 1, code)
}

func TestSchema_OutputFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")

	require.Equal(t, 0, run([]string{"stopwatch", "schema", "-o", path}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.GetSchemaJSON(), string(content))
}

func TestValidate_UsesConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("runs: 0\n"), 0644))

	assert.Equal(t, 1, run([]string{"stopwatch", "--config", path, "validate"}))
}
