package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/NikitaCOEUR/stopwatch/internal/config"
	"github.com/NikitaCOEUR/stopwatch/internal/derrors"
	"github.com/NikitaCOEUR/stopwatch/internal/logger"
	"github.com/NikitaCOEUR/stopwatch/internal/trace"
	"github.com/NikitaCOEUR/stopwatch/pkg/stopwatch"
)

// RunParams contains parameters for the Run command.
// Empty or zero fields fall back to the effective configuration.
type RunParams struct {
	LogLevel   string
	ConfigPath string
	Name       string
	Mode       string
	Output     string
	Runs       int
	Command    []string
	Stdout     io.Writer
	Stderr     io.Writer
}

// nameData is the data available to the record name template
type nameData struct {
	Command string
	Args    []string
	Line    string
	Dir     string
}

// Run executes a command repeatedly, timing every execution under one record,
// and writes the report to the configured output.
func Run(ctx context.Context, params RunParams) error {
	if len(params.Command) == 0 {
		return derrors.NewValidationError("command", "command required", nil)
	}
	if params.Stdout == nil {
		params.Stdout = os.Stdout
	}
	if params.Stderr == nil {
		params.Stderr = os.Stderr
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Flags win over every config layer, so validation happens after they are applied
	cfg, err := config.New().LoadMerged(currentDir, params.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, params)

	if errs := config.Check(cfg); len(errs) > 0 {
		return derrors.NewValidationError(errs[0].Field, errs[0].Message, nil)
	}

	log := logger.New(cfg.LogLevel, params.Stderr)

	mode, err := cfg.StopwatchMode()
	if err != nil {
		return derrors.NewValidationError("mode", "invalid mode", err)
	}

	name, err := expandName(cfg.Name, nameData{
		Command: commandName(params.Command),
		Args:    params.Command[1:],
		Line:    strings.Join(params.Command, " "),
		Dir:     currentDir,
	})
	if err != nil {
		return derrors.NewValidationError("name", "failed to expand name template", err)
	}

	sw := stopwatch.New(
		stopwatch.WithMode(mode),
		stopwatch.WithLogger(log.Logrus()),
		stopwatch.WithNotifier(params.Stderr),
	)
	if !cfg.Enabled {
		sw.TurnOff()
	}

	log.Debug().
		Str("name", name).
		Str("mode", mode.String()).
		Int("runs", cfg.Runs).
		Msg("Timing command")

	runErr := timeRuns(ctx, sw, name, cfg.Runs, params.Command, params.Stdout, params.Stderr)

	out, closeOut, err := openOutput(cfg.Output, params.Stdout, params.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	if err := sw.ReportAll(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if runErr != nil {
		log.Error().Err(runErr).Str("name", name).Msg("Timed command failed")
	}
	return runErr
}

// applyOverrides copies explicitly set parameters over the configuration
func applyOverrides(cfg *config.Config, params RunParams) {
	if params.LogLevel != "" {
		cfg.LogLevel = params.LogLevel
	}
	if params.Name != "" {
		cfg.Name = params.Name
	}
	if params.Mode != "" {
		cfg.Mode = params.Mode
	}
	if params.Output != "" {
		cfg.Output = params.Output
	}
	if params.Runs > 0 {
		cfg.Runs = params.Runs
	}
}

// timeRuns executes args runs times, each execution between Start and Stop of name.
// It stops at the first failing execution.
func timeRuns(ctx context.Context, sw *stopwatch.Registry, name string, runs int, args []string, stdout, stderr io.Writer) error {
	line := strings.Join(args, " ")

	for i := 0; i < runs; i++ {
		cmd, err := buildCommand(ctx, args)
		if err != nil {
			return derrors.NewExecutionError(line, "failed to prepare command", err)
		}
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		cmd.Stdin = nil

		trace.Log(ctx, "run", fmt.Sprintf("%s #%d", name, i+1))

		err = trace.WithRegion(ctx, name, func() error {
			return sw.Time(name, cmd.Run)
		})
		if err != nil {
			return derrors.NewExecutionError(line, fmt.Sprintf("run %d of %d failed", i+1, runs), err)
		}
	}

	return nil
}

// expandName renders the record name template with sprig functions
func expandName(tmpl string, data nameData) (string, error) {
	t, err := template.New("name").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	name := strings.TrimSpace(buf.String())
	if name == "" {
		return "", fmt.Errorf("template %q produced an empty name", tmpl)
	}
	return name, nil
}

// openOutput resolves the report destination: stdout, stderr or a file path
func openOutput(dest string, stdout, stderr io.Writer) (io.Writer, func() error, error) {
	switch dest {
	case "", "stdout", "-":
		return stdout, func() error { return nil }, nil
	case "stderr":
		return stderr, func() error { return nil }, nil
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, nil, derrors.NewConfigurationError(dest, "failed to open report output", err)
	}
	return f, f.Close, nil
}
