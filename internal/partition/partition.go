// Package partition divides the dataset into contiguous, non-overlapping
// work slices. The same algorithm is used by every benchmark mode so that
// cross-mode sum comparison is meaningful.
package partition

import (
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
)

// Slice is a half-open range [Start, Start+Length) into the dataset,
// assigned to exactly one worker.
type Slice struct {
	Start  int
	Length int
}

// End returns the exclusive upper bound of the slice.
func (s Slice) End() int { return s.Start + s.Length }

// Split divides length elements into n contiguous slices. The first
// length%n slices receive one extra element, so slice lengths differ by
// at most one and their union is exactly [0, length).
//
// Split is deterministic: identical inputs always produce identical slices.
func Split(length, n int) ([]Slice, error) {
	if length < 1 {
		return nil, apperrors.ValidationError{Field: "length", Message: "must be at least 1"}
	}
	if n < 1 {
		return nil, apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}

	base := length / n
	remainder := length % n

	slices := make([]Slice, n)
	offset := 0
	for i := 0; i < n; i++ {
		chunk := base
		if i < remainder {
			chunk++
		}
		slices[i] = Slice{Start: offset, Length: chunk}
		offset += chunk
	}
	return slices, nil
}
