package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/cli"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/metrics"
	"github.com/Phazertron/concour-bench/internal/orchestration"
	"github.com/Phazertron/concour-bench/internal/report"
	"github.com/Phazertron/concour-bench/internal/sysmon"
)

// runBenchmark executes the full session: dataset generation, the three
// benchmark modes in sequence, terminal output, and run artifacts.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	if cfg.Interactive {
		if err := cli.PromptConfig(a.Stdin, out, &cfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		a.Config = cfg
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var observer bench.Observer = bench.NopObserver{}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		observer = metrics.NewBenchCollector(reg)
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr, reg); err != nil {
				a.Logger.Warn("metrics server stopped", logging.Err(err))
			}
		}()
		a.Logger.Info("serving metrics", logging.String("addr", cfg.MetricsAddr))
	}

	data, err := dataset.New(cfg.ArrayLength, cfg.Seed, a.Logger)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return ExitCodeFor(err)
	}

	channel, err := bench.SelectIPC(cfg.IPC, cfg.Verbose, a.Logger, observer)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return ExitCodeFor(err)
	}

	runners := []bench.Runner{
		bench.NewSingle(cfg.Iterations, cfg.Verbose, a.Logger, observer),
		bench.NewProcess(cfg.NumProcesses, cfg.Iterations, cfg.Verbose, channel, a.Logger, observer),
		bench.NewThread(cfg.NumThreads, cfg.Iterations, cfg.Verbose, a.Logger, observer),
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !cfg.Quiet {
		reporter = cli.NewProgressDisplay(out)
	}

	sysDesc := sysmon.Describe()
	if !cfg.Quiet {
		fmt.Fprintf(out, "concbench %s on %s\n", Version, sysDesc)
		fmt.Fprintf(out, "array %d, processes %d, threads %d, iterations %d, ipc %s\n\n",
			cfg.ArrayLength, cfg.NumProcesses, cfg.NumThreads, cfg.Iterations, channel.Name())
	}

	memBefore := metrics.CaptureMemory()
	session, err := orchestration.RunAll(ctx, runners, data, reporter, a.Logger)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return ExitCodeFor(err)
	}

	memDelta := metrics.CaptureMemory().Delta(memBefore)
	a.Logger.Debug("session memory growth",
		logging.Uint64("heap_alloc", memDelta.HeapAlloc),
		logging.Uint64("sys", memDelta.Sys),
		logging.Int("gc_cycles", int(memDelta.NumGC)))
	if cfg.Verbose {
		load := sysmon.Sample()
		a.Logger.Debug("system load",
			logging.Float64("cpu_percent", load.CPUPercent),
			logging.Float64("mem_percent", load.MemPercent))
	}

	if !cfg.Quiet {
		fmt.Fprint(out, "\n"+report.RenderTable(session, sysDesc))
	}

	if !cfg.NoFiles {
		dir, err := report.WriteFiles(cfg.OutDir, session, sysDesc)
		if err != nil {
			// Artifacts are best effort; the run itself succeeded.
			a.Logger.Warn("writing run artifacts", logging.Err(err))
		} else if !cfg.Quiet {
			fmt.Fprintf(out, "\nArtifacts written to %s\n", dir)
		}
	}

	if mismatched := session.VerifySums(); len(mismatched) > 0 {
		fmt.Fprintf(a.ErrWriter, "Error: sums disagree with the baseline: %v\n", mismatched)
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}
