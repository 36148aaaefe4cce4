package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// buildCommand prepares the process for a timed command.
// A single argument is handed to the user's shell so pipes, redirections
// and variable expansion work; several arguments are executed directly.
func buildCommand(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("command required")
	}

	if len(args) > 1 {
		return exec.CommandContext(ctx, args[0], args[1:]...), nil
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh" // Fallback to sh (will be found via PATH)
	}

	execPath, err := exec.LookPath(shell)
	if err != nil {
		return nil, fmt.Errorf("shell not found: %s", shell)
	}

	return exec.CommandContext(ctx, execPath, "-c", args[0]), nil
}

// commandName returns the executable a command line starts with
func commandName(args []string) string {
	if len(args) == 0 {
		return ""
	}

	first := args[0]
	if len(args) == 1 {
		fields := strings.Fields(first)
		if len(fields) == 0 {
			return ""
		}
		first = fields[0]
	}

	return filepath.Base(first)
}
