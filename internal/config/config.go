// Package config handles loading and parsing of stopwatch configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/stopwatch/internal/derrors"
	"github.com/NikitaCOEUR/stopwatch/pkg/stopwatch"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".stopwatch.yml",
	".stopwatch.yaml",
	".stopwatch.toml",
	".stopwatch.json",
}

const (
	// GlobalConfigName is the name of the global config file
	GlobalConfigName = "config.yml"
	// EnvPrefix is the prefix of environment variables overriding config keys
	EnvPrefix = "STOPWATCH_"
	// DefaultNameTemplate names a timed command after its executable
	DefaultNameTemplate = "{{ .Command }}"
)

// Config represents a stopwatch configuration
type Config struct {
	Mode     string `koanf:"mode"`      // real or cpu
	Enabled  bool   `koanf:"enabled"`   // false turns every registry operation into a no-op
	LogLevel string `koanf:"log_level"` // debug, info, warn, error
	Output   string `koanf:"output"`    // stdout, stderr or a file path for reports
	Runs     int    `koanf:"runs"`      // how many times `run` executes the command
	Name     string `koanf:"name"`      // record name template for `run`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"mode":      "real",
		"enabled":   true,
		"log_level": "warn",
		"output":    "stdout",
		"runs":      1,
		"name":      DefaultNameTemplate,
	}
}

// StopwatchMode parses the configured mode
func (c *Config) StopwatchMode() (stopwatch.Mode, error) {
	return stopwatch.ParseMode(c.Mode)
}

// Source describes one layer that contributed to the effective configuration
type Source struct {
	Kind string // defaults, global, local, file, env
	Path string
}

// Loader handles loading and parsing configuration files
type Loader struct {
	k       *koanf.Koanf
	sources []Source
}

// New creates a new config loader
func New() *Loader {
	return &Loader{
		k: koanf.New("."),
	}
}

// Sources returns the layers applied by the last load, lowest priority first
func (l *Loader) Sources() []Source {
	out := make([]Source, len(l.sources))
	copy(out, l.sources)
	return out
}

// ParserFor returns the koanf parser matching the file extension of path
func ParserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// loadFile merges the file at path into k
func loadFile(k *koanf.Koanf, path string) error {
	parser, err := ParserFor(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// Load reads and parses a single configuration file on top of the defaults
func (l *Loader) Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	return unmarshal(k)
}

// LoadEffective merges the configuration layers like LoadMerged and validates the result
func (l *Loader) LoadEffective(dir, explicitPath string) (*Config, error) {
	cfg, err := l.LoadMerged(dir, explicitPath)
	if err != nil {
		return nil, err
	}

	if errs := Check(cfg); len(errs) > 0 {
		first := errs[0]
		return nil, derrors.NewValidationError(first.Field, "invalid configuration",
			fmt.Errorf("%s", first.Message))
	}

	return cfg, nil
}

// LoadMerged merges, from lowest to highest priority: defaults, the global
// config, the explicit file (or the local config found in dir) and STOPWATCH_*
// environment variables. The result is not validated, so callers can apply
// their own overrides before running Check.
func (l *Loader) LoadMerged(dir, explicitPath string) (*Config, error) {
	l.k = koanf.New(".")
	l.sources = nil

	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	l.sources = append(l.sources, Source{Kind: "defaults"})

	globalPath, err := GetGlobalConfigPath()
	if err == nil {
		if _, statErr := os.Stat(globalPath); statErr == nil {
			if err := loadFile(l.k, globalPath); err != nil {
				return nil, derrors.NewConfigurationError(globalPath, "failed to load global config", err)
			}
			l.sources = append(l.sources, Source{Kind: "global", Path: globalPath})
		}
	}

	if explicitPath != "" {
		if err := loadFile(l.k, explicitPath); err != nil {
			return nil, derrors.NewConfigurationError(explicitPath, "failed to load config", err)
		}
		l.sources = append(l.sources, Source{Kind: "file", Path: explicitPath})
	} else if localPath := FindLocalConfig(dir); localPath != "" {
		if err := loadFile(l.k, localPath); err != nil {
			return nil, derrors.NewConfigurationError(localPath, "failed to load local config", err)
		}
		l.sources = append(l.sources, Source{Kind: "local", Path: localPath})
	}

	if keys := envKeys(); len(keys) > 0 {
		envOpt := env.Opt{
			Prefix:        EnvPrefix,
			TransformFunc: envTransform,
		}
		if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
			return nil, fmt.Errorf("failed to load env vars: %w", err)
		}
		l.sources = append(l.sources, Source{Kind: "env", Path: strings.Join(keys, ",")})
	}

	return unmarshal(l.k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// envTransform maps STOPWATCH_LOG_LEVEL to log_level
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ToLower(key), value
}

// envKeys lists the STOPWATCH_* variables present in the environment
func envKeys() []string {
	var keys []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			if _, known := Defaults()[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))]; known {
				keys = append(keys, name)
			}
		}
	}
	return keys
}

// FindLocalConfig returns the first supported config file in dir, or ""
func FindLocalConfig(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GetGlobalConfigPath returns the path to the global config file
func GetGlobalConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "stopwatch", GlobalConfigName), nil
}
