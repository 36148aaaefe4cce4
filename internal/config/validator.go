package config

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"

	"github.com/NikitaCOEUR/stopwatch/pkg/stopwatch"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Check runs semantic checks on a loaded configuration
func Check(cfg *Config) []ValidationError {
	var errs []ValidationError

	mode, err := stopwatch.ParseMode(cfg.Mode)
	switch {
	case err != nil:
		errs = append(errs, ValidationError{Field: "mode", Message: err.Error()})
	case mode == stopwatch.ModeUnset:
		errs = append(errs, ValidationError{Field: "mode", Message: "mode must be 'real' or 'cpu'"})
	}

	if _, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown log level %q", cfg.LogLevel),
		})
	}

	if cfg.Runs < 1 {
		errs = append(errs, ValidationError{
			Field:   "runs",
			Message: fmt.Sprintf("runs must be at least 1, got %d", cfg.Runs),
		})
	}

	if strings.TrimSpace(cfg.Output) == "" {
		errs = append(errs, ValidationError{Field: "output", Message: "output is empty"})
	}

	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name template is empty"})
	} else if _, err := template.New("name").Funcs(sprig.TxtFuncMap()).Parse(cfg.Name); err != nil {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("invalid name template: %v", err),
		})
	}

	return errs
}

// Validate validates a config file
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := New().Load(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse config: %v", err),
		})
		return result, nil
	}

	if errs := Check(cfg); len(errs) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, errs...)
	}

	return result, nil
}
