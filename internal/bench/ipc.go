package bench

import (
	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/config"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/platform"
)

//go:generate mockgen -source=ipc.go -destination=mocks/ipc_mock.go -package=mocks

// WorkerProcess is a handle to one spawned worker process.
type WorkerProcess interface {
	// PID reports the operating system process id.
	PID() int
	// Wait blocks until the worker exits and returns its exit status.
	// A nonzero status is reported through the status value, not the error.
	Wait() (int, error)
	// Kill forcibly terminates the worker. The caller must still Wait.
	Kill() error
}

// IPC is a worker-channel strategy for the multi-process benchmark: how
// the dataset slice reaches each worker and how the result record comes
// back. The coordinator drives it through a fixed lifecycle:
//
//	Setup, then per iteration Reset, Spawn xN, Collect, and finally Close.
type IPC interface {
	// Name identifies the strategy in logs and reports.
	Name() string
	// Setup binds the dataset and worker count for the whole run.
	Setup(data *dataset.Dataset, numWorkers int) error
	// Reset prepares the channel for one iteration, clearing any state
	// left by the previous one.
	Reset() error
	// Spawn launches worker id for the given slice.
	Spawn(workerID int, sl partition.Slice) (WorkerProcess, error)
	// Collect gathers one result per worker and reaps every process in
	// workers, even when gathering fails partway.
	Collect(workers []WorkerProcess) ([]compute.Result, error)
	// Close releases any resources held across iterations.
	Close() error
}

// SelectIPC resolves the configured strategy name to a concrete channel.
// Auto prefers the pipe channel and falls back to shared memory where
// pipes with inherited descriptors are unavailable. The choice is made
// once; every iteration of the run uses the same channel.
func SelectIPC(choice string, verbose bool, logger logging.Logger, obs Observer) (IPC, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	switch choice {
	case config.IPCPipe:
		if !platform.PipeChannelSupported() {
			return nil, apperrors.NewConfigError("pipe channel is not supported on this platform")
		}
		return newPipeIPC(verbose, logger, obs)
	case config.IPCShm:
		if !platform.SharedMemorySupported() {
			return nil, apperrors.NewConfigError("shared memory channel is not supported on this platform")
		}
		return newShmIPC(verbose, logger, obs)
	case config.IPCAuto:
		if platform.PipeChannelSupported() {
			return newPipeIPC(verbose, logger, obs)
		}
		if platform.SharedMemorySupported() {
			return newShmIPC(verbose, logger, obs)
		}
		return nil, apperrors.NewConfigError("no worker channel is supported on this platform")
	default:
		return nil, apperrors.NewConfigError("unknown ipc strategy %q", choice)
	}
}
