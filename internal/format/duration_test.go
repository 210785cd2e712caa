package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 500 * time.Microsecond, "500µs"},
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"seconds", 2 * time.Second, "2s"},
		{"sub-microsecond", 300 * time.Nanosecond, "0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.d); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestSeconds(t *testing.T) {
	t.Parallel()
	got := Seconds(1500 * time.Millisecond)
	want := "  1.500000"
	if got != want {
		t.Errorf("Seconds(1.5s) = %q, want %q", got, want)
	}
}

func TestSpeedup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		baseline  time.Duration
		candidate time.Duration
		want      string
	}{
		{"2x faster", 2 * time.Second, time.Second, "   2.00x"},
		{"equal", time.Second, time.Second, "   1.00x"},
		{"zero candidate", time.Second, 0, "   0.00x"},
		{"zero baseline", 0, time.Second, "   0.00x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Speedup(tt.baseline, tt.candidate); got != tt.want {
				t.Errorf("Speedup(%v, %v) = %q, want %q", tt.baseline, tt.candidate, got, tt.want)
			}
		})
	}
}
