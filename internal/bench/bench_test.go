package bench

import (
	"testing"
	"time"

	"github.com/Phazertron/concour-bench/internal/logging"
)

type countingObserver struct {
	iterations int
	mismatches int
	failures   int
}

func (c *countingObserver) ObserveIteration(string, time.Duration) { c.iterations++ }
func (c *countingObserver) CountMismatch(string)                   { c.mismatches++ }
func (c *countingObserver) CountWorkerFailure(string)              { c.failures++ }

func TestSumVerifierKeepsFirstSum(t *testing.T) {
	obs := &countingObserver{}
	v := &sumVerifier{label: LabelSingle, logger: logging.NopLogger{}, observer: obs}

	v.check(0, 100)
	v.check(1, 100)
	v.check(2, 100)

	if obs.mismatches != 0 {
		t.Errorf("mismatches = %d, want 0", obs.mismatches)
	}
	if v.verified != 100 {
		t.Errorf("verified = %d, want 100", v.verified)
	}
}

func TestSumVerifierCountsMismatches(t *testing.T) {
	obs := &countingObserver{}
	v := &sumVerifier{label: LabelThread, logger: logging.NopLogger{}, observer: obs}

	v.check(0, 100)
	v.check(1, 99)
	v.check(2, 100)
	v.check(3, 101)

	if obs.mismatches != 2 {
		t.Errorf("mismatches = %d, want 2", obs.mismatches)
	}
	// The reference value never changes, even after a mismatch.
	if v.verified != 100 {
		t.Errorf("verified = %d, want 100", v.verified)
	}
}
