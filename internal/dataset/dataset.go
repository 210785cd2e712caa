// Package dataset generates and owns the benchmark's integer array.
//
// The dataset is created once from a seed, before any benchmark mode runs,
// and is strictly read-only afterwards: the baseline and thread modes share
// the slice directly, and the process modes either stream it to workers or
// copy it once into a shared memory segment.
package dataset

import (
	"encoding/binary"
	"math/rand"
	"time"

	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
)

// ElementSize is the encoded size of one dataset element in bytes.
const ElementSize = 8

const (
	minValue = 1
	maxValue = 100
)

// Dataset is the immutable benchmark input. Values holds ArrayLength
// integers uniformly drawn from [1, 100]; Seed is the seed that produced
// them (recorded even when auto-generated, so a run is reproducible).
type Dataset struct {
	Values []int64
	Seed   uint64
}

// New generates a dataset of the given length. A zero seed requests an
// auto-generated seed from the current time; the chosen seed is recorded
// in the returned Dataset either way.
func New(length int, seed uint64, logger logging.Logger) (*Dataset, error) {
	if length < 1 {
		return nil, apperrors.ValidationError{Field: "array-length", Message: "must be at least 1"}
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logger.Debug("generated random seed", logging.Uint64("seed", seed))
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	values := make([]int64, length)
	for i := range values {
		values[i] = int64(rng.Intn(maxValue-minValue+1) + minValue)
	}

	return &Dataset{Values: values, Seed: seed}, nil
}

// Len returns the number of elements.
func (d *Dataset) Len() int { return len(d.Values) }

// EncodeRange writes elements [start, start+count) into buf as little-endian
// int64 values. buf must hold at least count*ElementSize bytes.
func (d *Dataset) EncodeRange(buf []byte, start, count int) {
	for i := 0; i < count; i++ {
		binary.LittleEndian.PutUint64(buf[i*ElementSize:], uint64(d.Values[start+i]))
	}
}

// DecodeValues parses count little-endian int64 values from buf. It is the
// inverse of EncodeRange, used by pipe-strategy workers to materialize
// their slice.
func DecodeValues(buf []byte, count int) []int64 {
	values := make([]int64, count)
	for i := range values {
		values[i] = int64(binary.LittleEndian.Uint64(buf[i*ElementSize:]))
	}
	return values
}
