// Package bench implements the three benchmark coordinators (single,
// process, thread) and the worker-channel strategies used by the
// multi-process mode. Each coordinator owns the full iteration lifecycle
// for its execution model: partitioning, fan-out, collection, and
// statistics.
package bench

//go:generate mockgen -source=bench.go -destination=mocks/bench_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/Phazertron/concour-bench/internal/dataset"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/stats"
)

// Benchmark mode labels, used in reports, logs, and metrics.
const (
	LabelSingle  = "single"
	LabelProcess = "process"
	LabelThread  = "thread"
)

// Report is the outcome of one benchmark mode: the verified sum, the
// degree of parallelism, and timing statistics across all iterations.
type Report struct {
	Label       string
	Sum         int64
	Parallelism int
	Stats       stats.Summary
}

// Runner is one benchmark mode. Run executes every configured iteration
// against the shared read-only dataset and produces a Report.
//
// The context is consulted only between iterations: in-flight workers are
// never interrupted by cancellation, so all waits within an iteration are
// unbounded.
type Runner interface {
	Label() string
	Run(ctx context.Context, data *dataset.Dataset) (Report, error)
}

// Observer receives per-iteration benchmark observations. Implementations
// must be safe for use from a single coordinator goroutine; coordinators
// run strictly sequentially.
type Observer interface {
	ObserveIteration(mode string, elapsed time.Duration)
	CountMismatch(mode string)
	CountWorkerFailure(mode string)
}

// NopObserver discards all observations.
type NopObserver struct{}

func (NopObserver) ObserveIteration(string, time.Duration) {}
func (NopObserver) CountMismatch(string)                   {}
func (NopObserver) CountWorkerFailure(string)              {}

// sumVerifier checks that every iteration reproduces iteration 0's sum.
// A mismatch is a warning, not an error: the run continues and the report
// keeps iteration 0's sum as the verified value.
type sumVerifier struct {
	label    string
	logger   logging.Logger
	observer Observer

	verified int64
	primed   bool
}

func (v *sumVerifier) check(iteration int, sum int64) {
	if !v.primed {
		v.verified = sum
		v.primed = true
		return
	}
	if sum != v.verified {
		v.logger.Warn("sum mismatch",
			logging.String("mode", v.label),
			logging.Int("iteration", iteration+1),
			logging.Int64("expected", v.verified),
			logging.Int64("got", sum))
		v.observer.CountMismatch(v.label)
	}
}
