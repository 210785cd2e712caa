package partition

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSplit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		length int
		n      int
		want   []Slice
	}{
		{
			name:   "even split",
			length: 10,
			n:      2,
			want:   []Slice{{0, 5}, {5, 5}},
		},
		{
			name:   "remainder goes to first slices",
			length: 10,
			n:      3,
			want:   []Slice{{0, 4}, {4, 3}, {7, 3}},
		},
		{
			name:   "single worker",
			length: 1000,
			n:      1,
			want:   []Slice{{0, 1000}},
		},
		{
			name:   "more workers than elements",
			length: 3,
			n:      5,
			want:   []Slice{{0, 1}, {1, 1}, {2, 1}, {3, 0}, {4, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.length, tt.n)
			if err != nil {
				t.Fatalf("Split(%d, %d) error: %v", tt.length, tt.n, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Split returned %d slices, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("slice %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplit_InvalidArgs(t *testing.T) {
	t.Parallel()
	if _, err := Split(0, 4); err == nil {
		t.Error("Split(0, 4) should fail")
	}
	if _, err := Split(100, 0); err == nil {
		t.Error("Split(100, 0) should fail")
	}
	if _, err := Split(100, -1); err == nil {
		t.Error("Split(100, -1) should fail")
	}
}

// TestSplitCoverage_PropertyBased verifies the coverage invariant: for any
// length and worker count, the slices are contiguous, non-overlapping, and
// cover [0, length) exactly once, with the first length%n slices one element
// longer than the rest.
func TestSplitCoverage_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("slices cover [0, length) exactly once", prop.ForAll(
		func(length, n int) bool {
			slices, err := Split(length, n)
			if err != nil {
				return false
			}
			if len(slices) != n {
				return false
			}

			offset := 0
			ceil := (length + n - 1) / n
			floor := length / n
			remainder := length % n

			for i, s := range slices {
				if s.Start != offset {
					return false
				}
				wantLen := floor
				if i < remainder {
					wantLen = ceil
				}
				if s.Length != wantLen {
					return false
				}
				offset = s.End()
			}
			return offset == length
		},
		gen.IntRange(1000, 10_000_000),
		gen.IntRange(1, 256),
	))

	properties.TestingRun(t)
}
