package stopwatch

import (
	"fmt"
	"strings"
)

// Mode selects the time source shared by every record of a registry
type Mode int

const (
	// ModeUnset means no time source was chosen; reading the clock fails
	ModeUnset Mode = iota
	// ModeCPUTime measures CPU time consumed by the process
	ModeCPUTime
	// ModeRealTime measures wall-clock time
	ModeRealTime
)

func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "unset"
	case ModeCPUTime:
		return "cpu"
	case ModeRealTime:
		return "real"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a textual mode (cpu, cpu_time, real, real_time, unset) to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu", "cpu_time", "cpu-time":
		return ModeCPUTime, nil
	case "real", "real_time", "real-time":
		return ModeRealTime, nil
	case "", "unset", "none":
		return ModeUnset, nil
	default:
		return ModeUnset, fmt.Errorf("unknown stopwatch mode: %q", s)
	}
}
