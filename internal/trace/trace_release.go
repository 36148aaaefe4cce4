//go:build !dev

// Package trace records runtime traces of timed runs in development builds.
// This is the release version with no-op stubs.
package trace

import "context"

// EnvVar names the variable holding the trace output path
const EnvVar = "STOPWATCH_TRACE"

// Init is a no-op in release builds.
func Init() func() {
	return func() {}
}

// WithRegion just calls f in release builds.
func WithRegion(_ context.Context, _ string, f func() error) error {
	return f()
}

// Log is a no-op in release builds.
func Log(_ context.Context, _, _ string) {
}

// IsEnabled returns true if tracing is enabled.
func IsEnabled() bool {
	return false
}
