package bench

import (
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/platform"
)

// feedChunk is how many elements one stdin write carries.
const feedChunk = 8192

// pipeIPC streams each worker its slice over stdin and reads one result
// record back over an inherited pipe. The protocol is fire and forget:
// a worker consumes its whole slice, writes exactly one record, and exits.
//
// Feeding happens on background goroutines so all workers can be spawned
// before any slice is fully written; a worker that read only part of its
// slice would otherwise deadlock the spawn loop once the pipe buffer
// fills.
type pipeIPC struct {
	exePath  string
	verbose  bool
	logger   logging.Logger
	observer Observer

	data    *dataset.Dataset
	workers int
	pipes   []*platform.Pipe
	feeders *errgroup.Group
}

func newPipeIPC(verbose bool, logger logging.Logger, obs Observer) (*pipeIPC, error) {
	exe, err := platform.ExePath()
	if err != nil {
		return nil, apperrors.WrapError(err, "resolving worker executable")
	}
	return &pipeIPC{exePath: exe, verbose: verbose, logger: logger, observer: obs}, nil
}

func (p *pipeIPC) Name() string { return "pipe" }

func (p *pipeIPC) Setup(data *dataset.Dataset, numWorkers int) error {
	p.data = data
	p.workers = numWorkers
	return nil
}

func (p *pipeIPC) Reset() error {
	p.closePipes()
	p.pipes = make([]*platform.Pipe, 0, p.workers)
	p.feeders = &errgroup.Group{}
	return nil
}

func (p *pipeIPC) Spawn(workerID int, sl partition.Slice) (WorkerProcess, error) {
	pipe, err := platform.NewPipe()
	if err != nil {
		return nil, apperrors.ChannelError{WorkerID: workerID, Op: "create", Cause: err}
	}

	proc, err := platform.Spawn(platform.SpawnSpec{
		Path:          p.exePath,
		Args:          pipeWorkerArgs(workerID, sl, p.verbose),
		ExtraFiles:    []*os.File{pipe.Writer()},
		WantStdinPipe: true,
	})
	if err != nil {
		pipe.Close()
		return nil, apperrors.SpawnError{WorkerID: workerID, Cause: err}
	}

	// The parent only reads. Keeping the write end open would make
	// ReadFull block forever if the worker dies before replying.
	if err := pipe.CloseWrite(); err != nil {
		p.logger.Warn("closing pipe write end", logging.Int("worker", workerID), logging.Err(err))
	}
	p.pipes = append(p.pipes, pipe)

	stdin := proc.Stdin
	id, slice := workerID, sl
	p.feeders.Go(func() error {
		defer stdin.Close()
		buf := make([]byte, feedChunk*dataset.ElementSize)
		pos, remaining := slice.Start, slice.Length
		for remaining > 0 {
			n := feedChunk
			if remaining < n {
				n = remaining
			}
			chunk := buf[:n*dataset.ElementSize]
			p.data.EncodeRange(chunk, pos, n)
			if _, err := stdin.Write(chunk); err != nil {
				return apperrors.ChannelError{WorkerID: id, Op: "write", Cause: err}
			}
			pos += n
			remaining -= n
		}
		return nil
	})

	return proc, nil
}

// Collect reads one record per worker, then reaps every process. A worker
// that exits nonzero after delivering its record is a warning, not an
// error: its result already arrived intact. A failed read voids the whole
// iteration, so the remaining workers are killed instead of waited out.
func (p *pipeIPC) Collect(workers []WorkerProcess) ([]compute.Result, error) {
	results := make([]compute.Result, len(workers))
	var readErr error
	for i, pipe := range p.pipes {
		var record [compute.ResultSize]byte
		if err := pipe.ReadFull(record[:]); err != nil {
			readErr = apperrors.ChannelError{WorkerID: i, Op: "read", Cause: err}
			break
		}
		results[i] = compute.DecodeResult(record[:])
	}
	p.closePipes()

	if readErr != nil {
		for i, w := range workers {
			if err := w.Kill(); err != nil {
				p.logger.Warn("killing worker", logging.Int("worker", i), logging.Err(err))
			}
		}
	}

	for i, w := range workers {
		status, err := w.Wait()
		if err != nil {
			p.logger.Warn("waiting for worker", logging.Int("worker", i), logging.Err(err))
			continue
		}
		if status != 0 && readErr == nil {
			p.logger.Warn("worker exited nonzero",
				logging.Int("worker", i),
				logging.Int("status", status))
			p.observer.CountWorkerFailure(LabelProcess)
		}
	}

	if feedErr := p.feeders.Wait(); feedErr != nil && readErr == nil {
		readErr = feedErr
	}
	if readErr != nil {
		return nil, readErr
	}
	return results, nil
}

func (p *pipeIPC) Close() error {
	p.closePipes()
	if p.feeders != nil {
		// Feeders block only on pipe writes; killed workers close their
		// read ends, so this cannot hang.
		if err := p.feeders.Wait(); err != nil {
			p.logger.Debug("feeder drained with error", logging.Err(err))
		}
		p.feeders = nil
	}
	p.data = nil
	return nil
}

func (p *pipeIPC) closePipes() {
	for _, pipe := range p.pipes {
		if pipe != nil {
			pipe.Close()
		}
	}
	p.pipes = nil
}
