package bench

import (
	"context"
	"time"

	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/stats"
)

// Process fans each iteration out over Workers child processes through a
// worker channel. The coordinator measures the whole iteration with its
// own clock: spawn cost, the workers' compute time, and collection are all
// part of what multi-process execution costs.
type Process struct {
	Workers    int
	Iterations int
	Verbose    bool
	Channel    IPC
	Logger     logging.Logger
	Observer   Observer
}

// NewProcess builds the multi-process coordinator around a worker channel.
func NewProcess(workers, iterations int, verbose bool, ch IPC, logger logging.Logger, obs Observer) *Process {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Process{
		Workers:    workers,
		Iterations: iterations,
		Verbose:    verbose,
		Channel:    ch,
		Logger:     logger,
		Observer:   obs,
	}
}

func (p *Process) Label() string { return LabelProcess }

// Run executes Iterations rounds of spawn, collect, and reap. Any spawn or
// collection failure aborts the whole mode after tearing down the workers
// that did start.
func (p *Process) Run(ctx context.Context, data *dataset.Dataset) (Report, error) {
	slices, err := partition.Split(data.Len(), p.Workers)
	if err != nil {
		return Report{}, err
	}

	if err := p.Channel.Setup(data, p.Workers); err != nil {
		return Report{}, err
	}
	defer func() {
		if err := p.Channel.Close(); err != nil {
			p.Logger.Warn("closing worker channel", logging.Err(err))
		}
	}()

	verifier := &sumVerifier{label: p.Label(), logger: p.Logger, observer: p.Observer}
	times := make([]time.Duration, 0, p.Iterations)

	for iter := 0; iter < p.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		iterStart := time.Now()
		if err := p.Channel.Reset(); err != nil {
			return Report{}, apperrors.WrapError(err, "resetting %s channel", p.Channel.Name())
		}

		workers := make([]WorkerProcess, 0, p.Workers)
		var spawnErr error
		for id, sl := range slices {
			w, err := p.Channel.Spawn(id, sl)
			if err != nil {
				spawnErr = err
				break
			}
			workers = append(workers, w)
		}
		if spawnErr != nil {
			p.teardown(workers)
			return Report{}, spawnErr
		}

		results, err := p.Channel.Collect(workers)
		if err != nil {
			return Report{}, err
		}

		var sum int64
		for _, r := range results {
			sum += r.Sum
		}
		elapsed := time.Since(iterStart)

		times = append(times, elapsed)
		p.Observer.ObserveIteration(p.Label(), elapsed)
		verifier.check(iter, sum)

		if p.Verbose {
			for id, r := range results {
				p.Logger.Debug("worker result",
					logging.Int("worker", id),
					logging.Int64("sum", r.Sum),
					logging.Dur("elapsed", r.Elapsed))
			}
			p.Logger.Debug("iteration complete",
				logging.String("mode", p.Label()),
				logging.String("channel", p.Channel.Name()),
				logging.Int("iteration", iter+1),
				logging.Int64("sum", sum),
				logging.Dur("elapsed", elapsed))
		}
	}

	summary, err := stats.Compute(times)
	if err != nil {
		return Report{}, err
	}
	return Report{Label: p.Label(), Sum: verifier.verified, Parallelism: p.Workers, Stats: summary}, nil
}

// teardown kills and reaps every worker that was spawned before a spawn
// failure. Errors here are secondary and only logged; they never mask the
// failure that triggered the teardown.
func (p *Process) teardown(workers []WorkerProcess) {
	for i, w := range workers {
		if err := w.Kill(); err != nil {
			p.Logger.Warn("killing worker", logging.Int("worker", i), logging.Err(err))
		}
	}
	for i, w := range workers {
		if _, err := w.Wait(); err != nil {
			p.Logger.Warn("reaping worker", logging.Int("worker", i), logging.Err(err))
		}
	}
}
