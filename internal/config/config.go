// Package config defines the benchmark configuration and its sources:
// command-line flags, CONCBENCH_* environment variables, and interactive
// prompts (handled by the cli package). Precedence: flags, then
// environment, then defaults.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/platform"
)

// Validation bounds for the benchmark configuration.
const (
	MinWorkers     = 1
	MaxWorkers     = 256
	MinArrayLength = 1000
	MinIterations  = 1
	MaxIterations  = 100

	DefaultArrayLength = 1_000_000
	DefaultIterations  = 5
)

// IPC strategy selectors for the multi-process benchmark.
const (
	IPCAuto = "auto"
	IPCPipe = "pipe"
	IPCShm  = "shm"
)

// Config is the full benchmark configuration. It is immutable once a run
// begins; the only post-parse mutation is recording an auto-generated seed.
type Config struct {
	// ArrayLength is the dataset size in elements (>= MinArrayLength).
	ArrayLength int
	// NumProcesses is the worker count for the multi-process benchmark.
	NumProcesses int
	// NumThreads is the worker count for the multi-thread benchmark.
	NumThreads int
	// Seed seeds the dataset generator; 0 requests a time-based seed.
	Seed uint64
	// Iterations is the number of timed rounds per benchmark mode.
	Iterations int
	// Verbose enables per-worker and per-iteration logging.
	Verbose bool
	// Quiet suppresses progress output; only the final report is printed.
	Quiet bool
	// IPC selects the multi-process strategy: auto, pipe, or shm.
	IPC string
	// OutDir is the base directory for report files.
	OutDir string
	// NoFiles disables report and CSV file output.
	NoFiles bool
	// MetricsAddr, when nonempty, serves Prometheus metrics on this address.
	MetricsAddr string
	// Interactive prompts for missing values instead of using defaults.
	Interactive bool
}

// Defaults returns the configuration used when no flag, environment
// variable, or prompt overrides a value. Worker counts default to the
// logical CPU count, clamped to the valid range.
func Defaults() Config {
	workers := platform.CPUCount()
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	return Config{
		ArrayLength:  DefaultArrayLength,
		NumProcesses: workers,
		NumThreads:   workers,
		Iterations:   DefaultIterations,
		IPC:          IPCAuto,
		OutDir:       "results",
	}
}

// ParseConfig parses command-line flags into a Config, applying
// environment overrides for flags not explicitly set. It prints usage to
// errWriter on -h/--help and returns flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (Config, error) {
	cfg := Defaults()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.ArrayLength, "array-length", cfg.ArrayLength, "dataset size in elements")
	fs.IntVar(&cfg.ArrayLength, "a", cfg.ArrayLength, "dataset size in elements (shorthand)")
	fs.IntVar(&cfg.NumProcesses, "processes", cfg.NumProcesses, "worker count for the multi-process benchmark")
	fs.IntVar(&cfg.NumProcesses, "p", cfg.NumProcesses, "worker count for the multi-process benchmark (shorthand)")
	fs.IntVar(&cfg.NumThreads, "threads", cfg.NumThreads, "worker count for the multi-thread benchmark")
	fs.IntVar(&cfg.NumThreads, "t", cfg.NumThreads, "worker count for the multi-thread benchmark (shorthand)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "dataset RNG seed (0 = derive from current time)")
	fs.Uint64Var(&cfg.Seed, "s", cfg.Seed, "dataset RNG seed (shorthand)")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "timed rounds per benchmark mode")
	fs.IntVar(&cfg.Iterations, "i", cfg.Iterations, "timed rounds per benchmark mode (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log per-worker details")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log per-worker details (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress progress output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "suppress progress output (shorthand)")
	fs.StringVar(&cfg.IPC, "ipc", cfg.IPC, "multi-process IPC strategy: auto, pipe, or shm")
	fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "base directory for report files")
	fs.BoolVar(&cfg.NoFiles, "no-files", cfg.NoFiles, "skip writing report and CSV files")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address (empty = disabled)")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "prompt for configuration values")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return Config{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its documented bounds.
func (c Config) Validate() error {
	if c.ArrayLength < MinArrayLength {
		return apperrors.ValidationError{
			Field:   "array-length",
			Message: fmt.Sprintf("must be at least %d, got %d", MinArrayLength, c.ArrayLength),
		}
	}
	if c.NumProcesses < MinWorkers || c.NumProcesses > MaxWorkers {
		return apperrors.ValidationError{
			Field:   "processes",
			Message: fmt.Sprintf("must be in [%d, %d], got %d", MinWorkers, MaxWorkers, c.NumProcesses),
		}
	}
	if c.NumThreads < MinWorkers || c.NumThreads > MaxWorkers {
		return apperrors.ValidationError{
			Field:   "threads",
			Message: fmt.Sprintf("must be in [%d, %d], got %d", MinWorkers, MaxWorkers, c.NumThreads),
		}
	}
	if c.Iterations < MinIterations || c.Iterations > MaxIterations {
		return apperrors.ValidationError{
			Field:   "iterations",
			Message: fmt.Sprintf("must be in [%d, %d], got %d", MinIterations, MaxIterations, c.Iterations),
		}
	}
	switch c.IPC {
	case IPCAuto, IPCPipe, IPCShm:
	default:
		return apperrors.ValidationError{
			Field:   "ipc",
			Message: fmt.Sprintf("must be %q, %q, or %q, got %q", IPCAuto, IPCPipe, IPCShm, c.IPC),
		}
	}
	return nil
}
