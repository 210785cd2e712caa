package bench

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
	"github.com/Phazertron/concour-bench/internal/partition"
	"github.com/Phazertron/concour-bench/internal/platform"
)

// WorkerFlag is the argument that marks a worker re-invocation. It must be
// the first argument so dispatch can happen before any flag parsing.
const WorkerFlag = "--worker"

// resultFD is the descriptor a pipe worker writes its result record to.
// Descriptor 3 is the first inherited extra file after stdin, stdout,
// and stderr.
const resultFD = 3

// WorkerArgs is the parsed worker descriptor. Mode selects the channel;
// the segment fields are only set for shared-memory workers.
type WorkerArgs struct {
	Mode        string
	WorkerID    int
	Start       int
	Length      int
	SegmentName string
	ArrayLength int
	NumWorkers  int
	Verbose     bool
}

// IsWorkerInvocation reports whether args (the program arguments without
// the binary name) request worker mode.
func IsWorkerInvocation(args []string) bool {
	return len(args) > 0 && args[0] == WorkerFlag
}

// ParseWorkerArgs decodes the descriptor after the worker flag.
func ParseWorkerArgs(args []string) (WorkerArgs, error) {
	if len(args) == 0 {
		return WorkerArgs{}, apperrors.NewConfigError("missing worker mode")
	}

	wa := WorkerArgs{Mode: args[0]}
	fs := flag.NewFlagSet("worker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&wa.WorkerID, "id", 0, "")
	fs.IntVar(&wa.Start, "start", 0, "")
	fs.IntVar(&wa.Length, "length", 0, "")
	fs.StringVar(&wa.SegmentName, "segment", "", "")
	fs.IntVar(&wa.ArrayLength, "array-length", 0, "")
	fs.IntVar(&wa.NumWorkers, "workers", 0, "")
	fs.BoolVar(&wa.Verbose, "verbose", false, "")
	if err := fs.Parse(args[1:]); err != nil {
		return WorkerArgs{}, apperrors.NewConfigError("invalid worker descriptor: %v", err)
	}

	if wa.Length < 1 {
		return WorkerArgs{}, apperrors.NewConfigError("worker slice length must be positive")
	}
	if wa.Start < 0 {
		return WorkerArgs{}, apperrors.NewConfigError("worker slice start must not be negative")
	}

	switch wa.Mode {
	case "pipe":
	case "shm":
		if wa.SegmentName == "" {
			return WorkerArgs{}, apperrors.NewConfigError("shm worker requires a segment name")
		}
		if wa.ArrayLength < 1 || wa.NumWorkers < 1 {
			return WorkerArgs{}, apperrors.NewConfigError("shm worker requires array length and worker count")
		}
		if wa.WorkerID < 0 || wa.WorkerID >= wa.NumWorkers {
			return WorkerArgs{}, apperrors.NewConfigError("shm worker id out of range")
		}
	default:
		return WorkerArgs{}, apperrors.NewConfigError("unknown worker mode %q", wa.Mode)
	}
	return wa, nil
}

func pipeWorkerArgs(id int, sl partition.Slice, verbose bool) []string {
	args := []string{
		WorkerFlag, "pipe",
		"-id", strconv.Itoa(id),
		"-start", strconv.Itoa(sl.Start),
		"-length", strconv.Itoa(sl.Length),
	}
	if verbose {
		args = append(args, "-verbose")
	}
	return args
}

func shmWorkerArgs(id int, sl partition.Slice, segment string, arrayLen, workers int, verbose bool) []string {
	args := []string{
		WorkerFlag, "shm",
		"-id", strconv.Itoa(id),
		"-start", strconv.Itoa(sl.Start),
		"-length", strconv.Itoa(sl.Length),
		"-segment", segment,
		"-array-length", strconv.Itoa(arrayLen),
		"-workers", strconv.Itoa(workers),
	}
	if verbose {
		args = append(args, "-verbose")
	}
	return args
}

// RunWorker executes the worker side of either channel and returns a
// process exit code. It is called from main before the regular CLI runs.
func RunWorker(wa WorkerArgs, logger logging.Logger) int {
	var err error
	switch wa.Mode {
	case "pipe":
		err = runPipeWorker(wa)
	case "shm":
		err = runShmWorker(wa)
	}
	if err != nil {
		logger.Error("worker failed", err,
			logging.String("channel", wa.Mode),
			logging.Int("worker", wa.WorkerID))
		return apperrors.ExitErrorWorker
	}
	if wa.Verbose {
		logger.Debug("worker done",
			logging.String("channel", wa.Mode),
			logging.Int("worker", wa.WorkerID),
			logging.Int("start", wa.Start),
			logging.Int("length", wa.Length))
	}
	return apperrors.ExitSuccess
}

// runPipeWorker reads its slice values from stdin and writes one result
// record to the inherited result descriptor. Input is consumed completely
// before the record is written, so the parent can stream the slice without
// deadlocking against the reply.
func runPipeWorker(wa WorkerArgs) error {
	in := bufio.NewReaderSize(os.Stdin, 1<<16)
	buf := make([]byte, wa.Length*dataset.ElementSize)
	if _, err := io.ReadFull(in, buf); err != nil {
		return apperrors.WrapError(err, "read slice from stdin")
	}
	values := dataset.DecodeValues(buf, wa.Length)

	res, err := compute.Sum(values, partition.Slice{Start: 0, Length: wa.Length})
	if err != nil {
		return err
	}

	out := os.NewFile(resultFD, "result")
	if out == nil {
		return apperrors.NewConfigError("result descriptor is not inherited")
	}
	defer out.Close()

	var record [compute.ResultSize]byte
	compute.EncodeResult(record[:], res)
	if _, err := out.Write(record[:]); err != nil {
		return apperrors.WrapError(err, "write result record")
	}
	return nil
}

// runShmWorker maps the shared segment by name, sums its slice directly
// from the mapped dataset, and writes its result into its own slot.
func runShmWorker(wa WorkerArgs) error {
	size := wa.ArrayLength*dataset.ElementSize + wa.NumWorkers*compute.ResultSize
	seg, err := platform.OpenSegment(wa.SegmentName, size)
	if err != nil {
		return err
	}
	defer seg.Close()

	values := platform.Int64View(seg.Bytes(), wa.ArrayLength)
	res, err := compute.Sum(values, partition.Slice{Start: wa.Start, Length: wa.Length})
	if err != nil {
		return err
	}

	offset := wa.ArrayLength*dataset.ElementSize + wa.WorkerID*compute.ResultSize
	compute.EncodeResult(seg.Bytes()[offset:offset+compute.ResultSize], res)
	return nil
}
