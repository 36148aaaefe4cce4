// Package status provides status information collection and display for stopwatch.
package status

import (
	"fmt"
	"os"

	"github.com/NikitaCOEUR/stopwatch/internal/config"
	"github.com/NikitaCOEUR/stopwatch/internal/timing"
	"github.com/NikitaCOEUR/stopwatch/pkg/version"
)

// Collect gathers status information for dir.
// A configuration that fails to load is reported in the data, not as an error.
func Collect(dir, explicitConfig string) (*Data, error) {
	if dir == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = currentDir
	}

	data := &Data{
		CurrentDir: dir,
		Version:    version.Version,
	}

	if globalPath, err := config.GetGlobalConfigPath(); err == nil {
		data.GlobalConfigPath = globalPath
		if _, err := os.Stat(globalPath); err == nil {
			data.GlobalExists = true
		}
	}

	loader := config.New()
	cfg, err := loader.LoadEffective(dir, explicitConfig)
	if err != nil {
		data.ConfigError = err.Error()
	} else {
		data.Config = cfg
	}
	data.Sources = loader.Sources()

	collectClockInfo(data)

	return data, nil
}

// collectClockInfo probes both time sources once
func collectClockInfo(data *Data) {
	if _, err := timing.NewRealClock().Now(); err == nil {
		data.RealClockOK = true
	}

	if _, err := timing.NewCPUClock().Now(); err != nil {
		data.CPUClockErr = err.Error()
	} else {
		data.CPUClockOK = true
	}
}
