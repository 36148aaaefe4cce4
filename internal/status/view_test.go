package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NikitaCOEUR/stopwatch/internal/config"
)

// TestRender_EffectiveConfig tests rendering with a loaded configuration
func TestRender_EffectiveConfig(t *testing.T) {
	data := &Data{
		CurrentDir:       "/test/dir",
		Version:          "1.0.0",
		GlobalConfigPath: "/home/user/.config/stopwatch/config.yml",
		GlobalExists:     false,
		Sources: []config.Source{
			{Kind: "defaults"},
			{Kind: "local", Path: "/test/dir/.stopwatch.yml"},
		},
		Config: &config.Config{
			Mode:     "cpu",
			Enabled:  true,
			LogLevel: "warn",
			Output:   "stdout",
			Runs:     3,
			Name:     "{{ .Command }}",
		},
		RealClockOK: true,
		CPUClockOK:  true,
	}

	output := Render(data)

	assert.Contains(t, output, "Current directory:")
	assert.Contains(t, output, "/test/dir")
	assert.Contains(t, output, "1.0.0")
	assert.Contains(t, output, "Configuration sources:")
	assert.Contains(t, output, "defaults")
	assert.Contains(t, output, "/test/dir/.stopwatch.yml (local)")
	assert.Contains(t, output, "No global config at /home/user/.config/stopwatch/config.yml")
	assert.Contains(t, output, "Effective settings:")
	assert.Contains(t, output, "cpu")
	assert.Contains(t, output, "enabled")
	assert.Contains(t, output, "Runs: ")
	assert.Contains(t, output, "3")
	assert.Contains(t, output, "Time sources:")
	assert.Contains(t, output, "available")
}

// TestRender_DisabledAndBrokenClock tests the negative branches
func TestRender_DisabledAndBrokenClock(t *testing.T) {
	data := &Data{
		CurrentDir:   "/test/dir",
		Version:      "dev",
		GlobalExists: true,
		Sources:      []config.Source{{Kind: "defaults"}},
		Config: &config.Config{
			Mode:     "real",
			Enabled:  false,
			LogLevel: "warn",
			Output:   "stdout",
			Runs:     1,
			Name:     "x",
		},
		RealClockOK: true,
		CPUClockErr: "failed to read cpu times: permission denied",
	}

	output := Render(data)

	assert.Contains(t, output, "disabled")
	assert.Contains(t, output, "permission denied")
	assert.NotContains(t, output, "No global config")
}

// TestRender_ConfigError tests rendering when the configuration failed to load
func TestRender_ConfigError(t *testing.T) {
	data := &Data{
		CurrentDir:  "/test/dir",
		Version:     "dev",
		Sources:     []config.Source{{Kind: "defaults"}},
		ConfigError: "invalid configuration: runs must be at least 1, got 0",
		RealClockOK: true,
		CPUClockOK:  true,
	}

	output := Render(data)

	assert.Contains(t, output, "runs must be at least 1")
	assert.NotContains(t, output, "Log level:")
}
