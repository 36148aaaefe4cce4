package status

import (
	"github.com/NikitaCOEUR/stopwatch/internal/config"
)

// Data contains all the information to display in status
type Data struct {
	// Header
	CurrentDir string
	Version    string

	// Configuration layers, lowest priority first
	GlobalConfigPath string
	GlobalExists     bool
	Sources          []config.Source

	// Effective configuration; nil when loading failed
	Config      *config.Config
	ConfigError string

	// Time sources
	RealClockOK bool
	CPUClockOK  bool
	CPUClockErr string
}
