// Package stats computes descriptive statistics over elapsed-time samples.
package stats

import (
	"math"
	"time"

	apperrors "github.com/Phazertron/concour-bench/internal/errors"
)

// Summary holds min, max, mean, and Bessel-corrected sample standard
// deviation of a set of elapsed-time samples.
type Summary struct {
	Min        time.Duration
	Max        time.Duration
	Mean       time.Duration
	Stddev     time.Duration
	Iterations int
}

// Compute derives a Summary from the given samples using a two-pass
// algorithm: the first pass accumulates sum, min, and max; the second
// computes the sample variance sum((x-mean)^2)/(n-1).
//
// A single sample has a standard deviation of zero. An empty sample set
// is an error.
func Compute(samples []time.Duration) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, apperrors.ValidationError{Field: "samples", Message: "must not be empty"}
	}

	minVal := samples[0]
	maxVal := samples[0]
	var sum float64

	for _, s := range samples {
		sum += s.Seconds()
		if s < minVal {
			minVal = s
		}
		if s > maxVal {
			maxVal = s
		}
	}

	mean := sum / float64(len(samples))

	var varianceSum float64
	for _, s := range samples {
		diff := s.Seconds() - mean
		varianceSum += diff * diff
	}

	var stddev float64
	if len(samples) > 1 {
		stddev = math.Sqrt(varianceSum / float64(len(samples)-1))
	}

	return Summary{
		Min:        minVal,
		Max:        maxVal,
		Mean:       secondsToDuration(mean),
		Stddev:     secondsToDuration(stddev),
		Iterations: len(samples),
	}, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
