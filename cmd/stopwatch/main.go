// Package main is the entry point for the stopwatch CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	swcli "github.com/NikitaCOEUR/stopwatch/internal/cli"
	"github.com/NikitaCOEUR/stopwatch/internal/trace"
	"github.com/NikitaCOEUR/stopwatch/pkg/version"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "stopwatch",
		Usage:                 "Accumulate timing statistics for named intervals",
		Version:               version.String(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("STOPWATCH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file to use instead of the local .stopwatch.* file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Execute a command and report how long it took",
				ArgsUsage: "-- <command> [args...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Record name, a template over .Command .Args .Line .Dir",
					},
					&cli.IntFlag{
						Name:    "runs",
						Aliases: []string{"r"},
						Usage:   "Number of times to execute the command",
					},
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "Time source: real or cpu",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Report destination: stdout, stderr or a file path",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("command required")
					}

					return swcli.Run(ctx, swcli.RunParams{
						LogLevel:   cmd.String("log-level"),
						ConfigPath: cmd.String("config"),
						Name:       cmd.String("name"),
						Mode:       cmd.String("mode"),
						Output:     cmd.String("output"),
						Runs:       cmd.Int("runs"),
						Command:    cmd.Args().Slice(),
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show the effective stopwatch configuration",
				Action: func(_ context.Context, cmd *cli.Command) error {
					currentDir, err := os.Getwd()
					if err != nil {
						return fmt.Errorf("failed to get current directory: %w", err)
					}

					return swcli.Status(swcli.StatusParams{
						Dir:        currentDir,
						ConfigPath: cmd.String("config"),
					})
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in current folder or global config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "global",
						Aliases: []string{"g"},
						Usage:   "Create global config file instead of local",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return swcli.Init(cmd.Bool("global"))
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a stopwatch configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return swcli.Validate(configPath)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for stopwatch configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return swcli.Schema(outputPath)
				},
			},
		},
	}
}

func main() {
	os.Exit(run(os.Args))
}

// run executes the application and returns the process exit code
func run(args []string) int {
	defer trace.Init()()

	if err := newApp().Run(context.Background(), args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
