package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/stopwatch/internal/config"
	"github.com/NikitaCOEUR/stopwatch/internal/derrors"
)

const sampleConfig = `# Stopwatch configuration file
# Print the JSON schema with: stopwatch schema

# Time source: real (wall clock) or cpu (process CPU time)
mode: real

# Set to false to turn every measurement into a no-op
enabled: true

# Log level: debug, info, warn, error
log_level: warn

# Where reports go: stdout, stderr or a file path
output: stdout

# How many times 'stopwatch run' executes the command
runs: 1

# Record name, a Go template with sprig functions.
# Available: .Command .Args .Line .Dir
name: "{{ .Command }}"
`

// Init creates a sample .stopwatch.yml config file in the current directory or global config
func Init(global bool) error {
	var configPath string

	if global {
		globalPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return derrors.NewConfigurationError("", "failed to get global config path", err)
		}
		configPath = globalPath

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return derrors.NewConfigurationError(configPath, "failed to create config directory", err)
		}
	} else {
		currentDir, err := os.Getwd()
		if err != nil {
			return derrors.NewExecutionError("init", "failed to get current directory", err)
		}
		configPath = filepath.Join(currentDir, config.SupportedConfigNames[0])
	}

	if _, err := os.Stat(configPath); err == nil {
		return derrors.NewAlreadyExistsError(configPath, fmt.Sprintf("config file already exists: %s", configPath))
	}

	if err := os.WriteFile(configPath, []byte(sampleConfig), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to create config file", err)
	}

	if global {
		fmt.Printf("Created global config: %s\n", configPath)
	} else {
		fmt.Printf("Created sample config: %s\n", configPath)
	}
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the config file to suit your needs")
	fmt.Println("  2. Run 'stopwatch validate' to check it")
	fmt.Println("  3. Run 'stopwatch run -- <command>' to time a command")

	return nil
}
