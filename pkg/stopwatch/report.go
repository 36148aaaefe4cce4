package stopwatch

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const reportRule = "======================"

// writeReport renders the statistics block of one record
func writeReport(w io.Writer, name string, rec Record) error {
	bar := reportRule + strings.Repeat("=", len(name))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(bar + "\n")
	b.WriteString("Tracking performance: " + name + "\n")
	b.WriteString(bar + "\n")
	b.WriteString("  *  Avg. time " + formatSeconds(rec.Average()) + " sec\n")
	b.WriteString("  *  Min. time " + formatSeconds(rec.Min) + " sec\n")
	b.WriteString("  *  Max. time " + formatSeconds(rec.Max) + " sec\n")
	b.WriteString("  *  Tot. time " + formatSeconds(rec.Total) + " sec\n")
	b.WriteString("  *  Stops " + strconv.Itoa(rec.Stops) + "\n")
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report for %s: %w", name, err)
	}
	return nil
}

// formatSeconds renders v the way a default-configured C++ stream does:
// six significant digits, shortest of fixed and exponent notation.
func formatSeconds(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
