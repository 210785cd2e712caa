// Package compute holds the benchmark kernel: summation of a contiguous
// dataset slice with wall-clock timing. Every benchmark mode, in-process
// or in a worker process, runs exactly this kernel so that timings and
// sums are comparable.
package compute

import (
	"encoding/binary"
	"time"

	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/partition"
)

// ResultSize is the fixed wire size of an encoded Result: sum (int64) and
// elapsed nanoseconds (int64), both little-endian.
const ResultSize = 16

// Result is the outcome of one kernel invocation over one slice.
type Result struct {
	Sum     int64
	Elapsed time.Duration
}

// Sum computes the total of dataset[sl.Start, sl.End()) and the wall-clock
// time spent in the summation loop. It never mutates the dataset and is safe
// to call concurrently on shared read-only data.
//
// Timing uses the runtime's monotonic clock (time.Now / time.Since), so it
// is immune to wall-clock adjustments.
func Sum(dataset []int64, sl partition.Slice) (Result, error) {
	if sl.Start < 0 || sl.Length < 0 || sl.End() > len(dataset) {
		return Result{}, apperrors.ValidationError{Field: "slice", Message: "out of dataset bounds"}
	}

	var total int64
	start := time.Now()
	for i := sl.Start; i < sl.End(); i++ {
		total += dataset[i]
	}
	elapsed := time.Since(start)

	return Result{Sum: total, Elapsed: elapsed}, nil
}

// EncodeResult writes r into buf, which must hold at least ResultSize bytes.
func EncodeResult(buf []byte, r Result) {
	binary.LittleEndian.PutUint64(buf[0:8], uint64(r.Sum))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(r.Elapsed.Nanoseconds()))
}

// DecodeResult reads a Result from buf, which must hold at least ResultSize
// bytes.
func DecodeResult(buf []byte) Result {
	sum := int64(binary.LittleEndian.Uint64(buf[0:8]))
	nanos := int64(binary.LittleEndian.Uint64(buf[8:16]))
	return Result{Sum: sum, Elapsed: time.Duration(nanos)}
}
