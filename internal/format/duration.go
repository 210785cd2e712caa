// Package format provides display formatting helpers shared by the CLI
// and the report writers.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Seconds formats a duration as fractional seconds with six decimal places,
// the fixed-width form used in the results table and report files.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%10.6f", d.Seconds())
}

// Speedup formats a baseline/candidate mean ratio as "N.NNx". A zero or
// negative candidate mean yields "0.00x" rather than a division error.
func Speedup(baseline, candidate time.Duration) string {
	if candidate <= 0 || baseline <= 0 {
		return fmt.Sprintf("%7.2fx", 0.0)
	}
	return fmt.Sprintf("%7.2fx", baseline.Seconds()/candidate.Seconds())
}
