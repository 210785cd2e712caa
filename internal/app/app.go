// Package app wires configuration, logging, metrics, and the benchmark
// coordinators into the concbench application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/config"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
)

// Application represents the concbench application instance.
type Application struct {
	Config    config.Config
	ErrWriter io.Writer
	Logger    logging.Logger

	// Stdin feeds interactive prompts; defaults to os.Stdin.
	Stdin io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithStdin sets the reader used for interactive prompts.
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.Stdin = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Stdin: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "concbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		applyLogLevel(cfg)
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

func applyLogLevel(cfg config.Config) {
	switch {
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case cfg.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Run executes the benchmark session and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	return a.runBenchmark(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps an error to the process exit code it should produce.
func ExitCodeFor(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if apperrors.IsContextError(err) {
		return apperrors.ExitErrorCanceled
	}

	var (
		cfgErr    apperrors.ConfigError
		valErr    apperrors.ValidationError
		spawnErr  apperrors.SpawnError
		chanErr   apperrors.ChannelError
		segErr    apperrors.SegmentError
		workerErr apperrors.WorkerError
	)
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return apperrors.ExitErrorConfig
	case errors.As(err, &spawnErr), errors.As(err, &chanErr),
		errors.As(err, &segErr), errors.As(err, &workerErr):
		return apperrors.ExitErrorWorker
	default:
		return apperrors.ExitErrorGeneric
	}
}

// IsWorkerInvocation reports whether the program was re-invoked as a
// benchmark worker. Worker dispatch happens before regular CLI parsing.
func IsWorkerInvocation(args []string) bool {
	return bench.IsWorkerInvocation(args)
}

// RunWorker executes the worker side of a process benchmark and returns
// its exit code. Workers log to stderr only; their stdout is unused.
func RunWorker(args []string) int {
	logger := logging.NewLogger(os.Stderr, "worker")
	wa, err := bench.ParseWorkerArgs(args[1:])
	if err != nil {
		logger.Error("invalid worker descriptor", err)
		return apperrors.ExitErrorConfig
	}
	if wa.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return bench.RunWorker(wa, logger)
}
