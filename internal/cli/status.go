package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/stopwatch/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	Dir        string
	ConfigPath string
}

// Status displays the effective stopwatch configuration
func Status(params StatusParams) error {
	data, err := status.Collect(params.Dir, params.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	fmt.Println(status.Render(data))

	return nil
}
