package bench

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/stats"
)

// Accumulator is the shared state of one thread-mode iteration. All three
// fields are written under a single mutex, in a single critical section
// per worker.
type Accumulator struct {
	Sum           int64
	EarliestStart time.Time
	LatestEnd     time.Time
}

// Add merges one worker's contribution. The caller holds the lock.
func (a *Accumulator) Add(sum int64, start, end time.Time) {
	a.Sum += sum
	if a.EarliestStart.IsZero() || start.Before(a.EarliestStart) {
		a.EarliestStart = start
	}
	if end.After(a.LatestEnd) {
		a.LatestEnd = end
	}
}

// Span is the wall-clock window covered by all workers, from the first
// start to the last end.
func (a *Accumulator) Span() time.Duration {
	return a.LatestEnd.Sub(a.EarliestStart)
}

// Thread fans each iteration out over Workers goroutines sharing one
// Accumulator. Workers compute their slice without coordination and merge
// into the accumulator exactly once.
type Thread struct {
	Workers    int
	Iterations int
	Verbose    bool
	Logger     logging.Logger
	Observer   Observer
}

// NewThread builds the multi-goroutine coordinator.
func NewThread(workers, iterations int, verbose bool, logger logging.Logger, obs Observer) *Thread {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Thread{Workers: workers, Iterations: iterations, Verbose: verbose, Logger: logger, Observer: obs}
}

func (t *Thread) Label() string { return LabelThread }

// Run executes Iterations rounds of goroutine fan-out. The iteration's
// elapsed time is the accumulator span, not the coordinator's own clock,
// so scheduling gaps before the first worker starts are excluded.
func (t *Thread) Run(ctx context.Context, data *dataset.Dataset) (Report, error) {
	slices, err := partition.Split(data.Len(), t.Workers)
	if err != nil {
		return Report{}, err
	}

	verifier := &sumVerifier{label: t.Label(), logger: t.Logger, observer: t.Observer}
	times := make([]time.Duration, 0, t.Iterations)

	for iter := 0; iter < t.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		acc := &Accumulator{}
		var mu sync.Mutex
		var g errgroup.Group

		for _, sl := range slices {
			sl := sl
			g.Go(func() error {
				start := time.Now()
				res, err := compute.Sum(data.Values, sl)
				if err != nil {
					return err
				}
				end := time.Now()

				mu.Lock()
				acc.Add(res.Sum, start, end)
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return Report{}, apperrors.WrapError(err, "thread iteration %d", iter+1)
		}

		elapsed := acc.Span()
		times = append(times, elapsed)
		t.Observer.ObserveIteration(t.Label(), elapsed)
		verifier.check(iter, acc.Sum)

		if t.Verbose {
			t.Logger.Debug("iteration complete",
				logging.String("mode", t.Label()),
				logging.Int("iteration", iter+1),
				logging.Int64("sum", acc.Sum),
				logging.Dur("elapsed", elapsed))
		}
	}

	summary, err := stats.Compute(times)
	if err != nil {
		return Report{}, err
	}
	return Report{Label: t.Label(), Sum: verifier.verified, Parallelism: t.Workers, Stats: summary}, nil
}
