package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Mode:     "real",
		Enabled:  true,
		LogLevel: "warn",
		Output:   "stdout",
		Runs:     1,
		Name:     DefaultNameTemplate,
	}
}

func TestCheck_Valid(t *testing.T) {
	assert.Empty(t, Check(validConfig()))
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown mode", func(c *Config) { c.Mode = "sundial" }, "mode"},
		{"unset mode", func(c *Config) { c.Mode = "unset" }, "mode"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"zero runs", func(c *Config) { c.Runs = 0 }, "runs"},
		{"negative runs", func(c *Config) { c.Runs = -3 }, "runs"},
		{"empty output", func(c *Config) { c.Output = "  " }, "output"},
		{"empty name", func(c *Config) { c.Name = "" }, "name"},
		{"broken template", func(c *Config) { c.Name = "{{ .Command " }, "name"},
		{"unknown template func", func(c *Config) { c.Name = "{{ nosuchfunc .Command }}" }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errs := Check(cfg)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestCheck_SprigFunctionsAccepted(t *testing.T) {
	cfg := validConfig()
	cfg.Name = `{{ .Command | upper | trunc 8 }}`
	assert.Empty(t, Check(cfg))
}

func TestValidate_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".stopwatch.yml")
	writeFile(t, path, "mode: cpu\nruns: 3\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_SemanticErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".stopwatch.yml")
	writeFile(t, path, "mode: sundial\nruns: 0\n")

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
}

func TestValidate_SyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".stopwatch.json")
	writeFile(t, path, `{"mode": `)

	result, err := Validate(path)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
