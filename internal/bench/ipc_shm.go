package bench

import (
	"fmt"
	"os"
	"time"

	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/platform"
)

// shmIPC shares one named segment with all workers. The layout is the
// dataset followed by one fixed-size result slot per worker:
//
//	[values: arrayLen * 8 bytes][slots: numWorkers * 16 bytes]
//
// The dataset is copied in once at Setup; Reset only clears the slots.
// Workers map the segment by name, sum their slice in place, and write
// their slot. The parent reads slots only after every worker has exited,
// so no synchronization beyond process exit is needed.
type shmIPC struct {
	exePath  string
	verbose  bool
	logger   logging.Logger
	observer Observer

	seg      *platform.Segment
	name     string
	arrayLen int
	workers  int
}

func newShmIPC(verbose bool, logger logging.Logger, obs Observer) (*shmIPC, error) {
	exe, err := platform.ExePath()
	if err != nil {
		return nil, apperrors.WrapError(err, "resolving worker executable")
	}
	return &shmIPC{exePath: exe, verbose: verbose, logger: logger, observer: obs}, nil
}

func (s *shmIPC) Name() string { return "shm" }

func (s *shmIPC) Setup(data *dataset.Dataset, numWorkers int) error {
	s.name = fmt.Sprintf("concbench_%d_%d", os.Getpid(), time.Now().UnixNano())
	s.arrayLen = data.Len()
	s.workers = numWorkers

	size := s.arrayLen*dataset.ElementSize + numWorkers*compute.ResultSize
	seg, err := platform.CreateSegment(s.name, size)
	if err != nil {
		return apperrors.SegmentError{Name: s.name, Op: "create", Cause: err}
	}
	s.seg = seg

	copy(platform.Int64View(seg.Bytes(), s.arrayLen), data.Values)
	return nil
}

// Reset zeroes the result slots so a stale record from the previous
// iteration can never be mistaken for a fresh one.
func (s *shmIPC) Reset() error {
	slots := s.seg.Bytes()[s.arrayLen*dataset.ElementSize:]
	for i := range slots {
		slots[i] = 0
	}
	return nil
}

func (s *shmIPC) Spawn(workerID int, sl partition.Slice) (WorkerProcess, error) {
	proc, err := platform.Spawn(platform.SpawnSpec{
		Path: s.exePath,
		Args: shmWorkerArgs(workerID, sl, s.name, s.arrayLen, s.workers, s.verbose),
	})
	if err != nil {
		return nil, apperrors.SpawnError{WorkerID: workerID, Cause: err}
	}
	return proc, nil
}

// Collect waits for every worker before touching a single slot: a slot is
// only guaranteed complete once its writer has exited. Unlike the pipe
// channel, a nonzero exit here is an error, because the worker may have
// died before writing its slot and zeroed slots decode as valid records.
func (s *shmIPC) Collect(workers []WorkerProcess) ([]compute.Result, error) {
	var firstErr error
	for i, w := range workers {
		status, err := w.Wait()
		if err != nil {
			if firstErr == nil {
				firstErr = apperrors.WorkerError{WorkerID: i, Cause: err}
			}
			continue
		}
		if status != 0 {
			s.logger.Error("worker exited nonzero", nil,
				logging.Int("worker", i),
				logging.Int("status", status))
			s.observer.CountWorkerFailure(LabelProcess)
			if firstErr == nil {
				firstErr = apperrors.WorkerError{WorkerID: i, Status: status}
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	results := make([]compute.Result, len(workers))
	base := s.arrayLen * dataset.ElementSize
	for i := range results {
		slot := s.seg.Bytes()[base+i*compute.ResultSize : base+(i+1)*compute.ResultSize]
		results[i] = compute.DecodeResult(slot)
	}
	return results, nil
}

func (s *shmIPC) Close() error {
	if s.seg == nil {
		return nil
	}
	err := s.seg.Close()
	s.seg = nil
	if err != nil {
		return apperrors.SegmentError{Name: s.name, Op: "destroy", Cause: err}
	}
	return nil
}
