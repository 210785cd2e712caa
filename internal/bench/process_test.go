package bench_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/bench/mocks"
	"github.com/Phazertron/concour-bench/internal/compute"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
)

func newTestDataset(t *testing.T, length int) *dataset.Dataset {
	t.Helper()
	data, err := dataset.New(length, 11, logging.NopLogger{})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return data
}

func TestProcessRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := newTestDataset(t, 1000)
	w0 := mocks.NewMockWorkerProcess(ctrl)
	w1 := mocks.NewMockWorkerProcess(ctrl)
	ch := mocks.NewMockIPC(ctrl)

	results := []compute.Result{
		{Sum: 30, Elapsed: time.Millisecond},
		{Sum: 12, Elapsed: 2 * time.Millisecond},
	}

	ch.EXPECT().Setup(data, 2).Return(nil)
	ch.EXPECT().Reset().Return(nil).Times(2)
	ch.EXPECT().Spawn(0, gomock.Any()).Return(w0, nil).Times(2)
	ch.EXPECT().Spawn(1, gomock.Any()).Return(w1, nil).Times(2)
	ch.EXPECT().Collect(gomock.Any()).Return(results, nil).Times(2)
	ch.EXPECT().Close().Return(nil)

	p := bench.NewProcess(2, 2, false, ch, logging.NopLogger{}, nil)
	report, err := p.Run(context.Background(), data)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Label != bench.LabelProcess {
		t.Errorf("label = %q", report.Label)
	}
	if report.Sum != 42 {
		t.Errorf("sum = %d, want 42", report.Sum)
	}
	if report.Parallelism != 2 {
		t.Errorf("parallelism = %d, want 2", report.Parallelism)
	}
	if report.Stats.Iterations != 2 {
		t.Errorf("iterations = %d, want 2", report.Stats.Iterations)
	}
}

// A failed spawn must kill and reap the workers that did start, and the
// original spawn error must survive the teardown.
func TestProcessRunSpawnFailureTeardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := newTestDataset(t, 1000)
	w0 := mocks.NewMockWorkerProcess(ctrl)
	ch := mocks.NewMockIPC(ctrl)

	spawnErr := apperrors.SpawnError{WorkerID: 1, Cause: errors.New("fork failed")}

	ch.EXPECT().Setup(data, 2).Return(nil)
	ch.EXPECT().Reset().Return(nil)
	ch.EXPECT().Spawn(0, gomock.Any()).Return(w0, nil)
	ch.EXPECT().Spawn(1, gomock.Any()).Return(nil, spawnErr)
	w0.EXPECT().Kill().Return(nil)
	w0.EXPECT().Wait().Return(-1, nil)
	ch.EXPECT().Close().Return(nil)

	p := bench.NewProcess(2, 3, false, ch, logging.NopLogger{}, nil)
	_, err := p.Run(context.Background(), data)

	var se apperrors.SpawnError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want SpawnError", err)
	}
	if se.WorkerID != 1 {
		t.Errorf("failed worker = %d, want 1", se.WorkerID)
	}
}

func TestProcessRunCollectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := newTestDataset(t, 1000)
	w0 := mocks.NewMockWorkerProcess(ctrl)
	ch := mocks.NewMockIPC(ctrl)

	collectErr := apperrors.ChannelError{WorkerID: 0, Op: "read", Cause: errors.New("unexpected EOF")}

	ch.EXPECT().Setup(data, 1).Return(nil)
	ch.EXPECT().Reset().Return(nil)
	ch.EXPECT().Spawn(0, gomock.Any()).Return(w0, nil)
	ch.EXPECT().Collect(gomock.Any()).Return(nil, collectErr)
	ch.EXPECT().Close().Return(nil)

	p := bench.NewProcess(1, 5, false, ch, logging.NopLogger{}, nil)
	_, err := p.Run(context.Background(), data)

	var ce apperrors.ChannelError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want ChannelError", err)
	}
}

func TestProcessRunCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := newTestDataset(t, 1000)
	ch := mocks.NewMockIPC(ctrl)

	ch.EXPECT().Setup(data, 2).Return(nil)
	ch.EXPECT().Close().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := bench.NewProcess(2, 3, false, ch, logging.NopLogger{}, nil)
	if _, err := p.Run(ctx, data); err != context.Canceled {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}
