package bench

import (
	"context"
	"time"

	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/stats"
)

// Single sums the whole dataset in the coordinator goroutine. It is the
// baseline every parallel mode is compared against.
type Single struct {
	Iterations int
	Logger     logging.Logger
	Observer   Observer
	Verbose    bool
}

// NewSingle builds the single-threaded coordinator.
func NewSingle(iterations int, verbose bool, logger logging.Logger, obs Observer) *Single {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Single{Iterations: iterations, Verbose: verbose, Logger: logger, Observer: obs}
}

func (s *Single) Label() string { return LabelSingle }

// Run executes Iterations full-array sums and aggregates their timings.
func (s *Single) Run(ctx context.Context, data *dataset.Dataset) (Report, error) {
	verifier := &sumVerifier{label: s.Label(), logger: s.Logger, observer: s.Observer}
	whole := partition.Slice{Start: 0, Length: data.Len()}
	times := make([]time.Duration, 0, s.Iterations)

	for iter := 0; iter < s.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		res, err := compute.Sum(data.Values, whole)
		if err != nil {
			return Report{}, apperrors.WrapError(err, "single iteration %d", iter+1)
		}

		times = append(times, res.Elapsed)
		s.Observer.ObserveIteration(s.Label(), res.Elapsed)
		verifier.check(iter, res.Sum)

		if s.Verbose {
			s.Logger.Debug("iteration complete",
				logging.String("mode", s.Label()),
				logging.Int("iteration", iter+1),
				logging.Int64("sum", res.Sum),
				logging.Dur("elapsed", res.Elapsed))
		}
	}

	summary, err := stats.Compute(times)
	if err != nil {
		return Report{}, err
	}
	return Report{Label: s.Label(), Sum: verifier.verified, Parallelism: 1, Stats: summary}, nil
}
