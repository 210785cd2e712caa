package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
)

func TestNewParsesArguments(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New(
		[]string{"concbench", "--array-length", "5000", "--processes", "2", "--threads", "3", "--quiet", "--no-files"},
		&errBuf,
		WithLogger(logging.NopLogger{}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cfg := application.Config
	if cfg.ArrayLength != 5000 || cfg.NumProcesses != 2 || cfg.NumThreads != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Quiet || !cfg.NoFiles {
		t.Errorf("quiet/no-files not set: %+v", cfg)
	}
}

func TestNewHelp(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"concbench", "--help"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("error = %v, want help", err)
	}
}

func TestNewInvalidFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"concbench", "--array-length", "10"}, &errBuf)
	if err == nil {
		t.Fatal("undersized array accepted")
	}
	if IsHelpError(err) {
		t.Error("validation error classified as help")
	}
}

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"wrapped canceled", fmt.Errorf("thread benchmark: %w", context.Canceled), apperrors.ExitErrorCanceled},
		{"config", apperrors.NewConfigError("bad flag"), apperrors.ExitErrorConfig},
		{"validation", apperrors.ValidationError{Field: "processes", Message: "too many"}, apperrors.ExitErrorConfig},
		{"spawn", apperrors.SpawnError{WorkerID: 1, Cause: errors.New("enoent")}, apperrors.ExitErrorWorker},
		{"channel", apperrors.ChannelError{WorkerID: 0, Op: "read"}, apperrors.ExitErrorWorker},
		{"segment", apperrors.SegmentError{Name: "x", Op: "create", Cause: errors.New("eexist")}, apperrors.ExitErrorWorker},
		{"worker", apperrors.WorkerError{WorkerID: 2, Status: 1}, apperrors.ExitErrorWorker},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCodeFor(tc.err); got != tc.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"--version"}) {
		t.Error("--version not detected")
	}
	if HasVersionFlag([]string{"--verbose"}) {
		t.Error("--verbose misdetected as version")
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), Version) {
		t.Errorf("banner = %q", buf.String())
	}
}

func TestRunWorkerInvalidDescriptor(t *testing.T) {
	if code := RunWorker([]string{"--worker", "smoke-signals"}); code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}
