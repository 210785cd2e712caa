package bench

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Phazertron/concour-bench/internal/dataset"
	"github.com/Phazertron/concour-bench/internal/logging"
)

func sequentialSum(values []int64) int64 {
	var sum int64
	for _, v := range values {
		sum += v
	}
	return sum
}

func TestThreadRunMatchesSequentialSum(t *testing.T) {
	data, err := dataset.New(10_000, 7, logging.NopLogger{})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	want := sequentialSum(data.Values)

	for _, workers := range []int{1, 2, 3, 8, 17} {
		th := NewThread(workers, 3, false, logging.NopLogger{}, nil)
		report, err := th.Run(context.Background(), data)
		if err != nil {
			t.Fatalf("workers=%d: Run: %v", workers, err)
		}
		if report.Sum != want {
			t.Errorf("workers=%d: sum = %d, want %d", workers, report.Sum, want)
		}
		if report.Parallelism != workers {
			t.Errorf("workers=%d: parallelism = %d", workers, report.Parallelism)
		}
		if report.Stats.Iterations != 3 {
			t.Errorf("workers=%d: iterations = %d, want 3", workers, report.Stats.Iterations)
		}
	}
}

func TestThreadRunObservesEveryIteration(t *testing.T) {
	data, err := dataset.New(1000, 1, logging.NopLogger{})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}

	obs := &countingObserver{}
	th := NewThread(4, 5, false, logging.NopLogger{}, obs)
	if _, err := th.Run(context.Background(), data); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if obs.iterations != 5 {
		t.Errorf("observed iterations = %d, want 5", obs.iterations)
	}
	if obs.mismatches != 0 {
		t.Errorf("mismatches = %d, want 0", obs.mismatches)
	}
}

func TestThreadRunCanceledContext(t *testing.T) {
	data, err := dataset.New(1000, 1, logging.NopLogger{})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	th := NewThread(2, 3, false, logging.NopLogger{}, nil)
	if _, err := th.Run(ctx, data); err != context.Canceled {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestAccumulatorAdd(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var acc Accumulator

	acc.Add(10, base.Add(2*time.Millisecond), base.Add(5*time.Millisecond))
	acc.Add(20, base, base.Add(3*time.Millisecond))
	acc.Add(30, base.Add(time.Millisecond), base.Add(9*time.Millisecond))

	if acc.Sum != 60 {
		t.Errorf("Sum = %d, want 60", acc.Sum)
	}
	if !acc.EarliestStart.Equal(base) {
		t.Errorf("EarliestStart = %v, want %v", acc.EarliestStart, base)
	}
	if got := acc.Span(); got != 9*time.Millisecond {
		t.Errorf("Span = %v, want 9ms", got)
	}
}

// Hammers one accumulator from many goroutines with randomized timestamps
// and checks that the merged state is exactly what a sequential merge
// would produce.
func TestAccumulatorConcurrentMerge(t *testing.T) {
	const goroutines = 64

	base := time.Now()
	starts := make([]time.Time, goroutines)
	ends := make([]time.Time, goroutines)
	sums := make([]int64, goroutines)
	rng := rand.New(rand.NewSource(42))
	for i := range starts {
		starts[i] = base.Add(time.Duration(rng.Intn(1000)) * time.Microsecond)
		ends[i] = starts[i].Add(time.Duration(rng.Intn(1000)+1) * time.Microsecond)
		sums[i] = int64(rng.Intn(1000))
	}

	var want Accumulator
	for i := 0; i < goroutines; i++ {
		want.Add(sums[i], starts[i], ends[i])
	}

	acc := &Accumulator{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mu.Lock()
			acc.Add(sums[i], starts[i], ends[i])
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if acc.Sum != want.Sum {
		t.Errorf("Sum = %d, want %d", acc.Sum, want.Sum)
	}
	if !acc.EarliestStart.Equal(want.EarliestStart) {
		t.Errorf("EarliestStart = %v, want %v", acc.EarliestStart, want.EarliestStart)
	}
	if !acc.LatestEnd.Equal(want.LatestEnd) {
		t.Errorf("LatestEnd = %v, want %v", acc.LatestEnd, want.LatestEnd)
	}
}
