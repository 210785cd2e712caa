package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/stats"
)

type fakeSpinner struct {
	starts  int
	stops   int
	suffix  string
	running bool
}

func (f *fakeSpinner) Start()                     { f.starts++; f.running = true }
func (f *fakeSpinner) Stop()                      { f.stops++; f.running = false }
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffix = suffix }

func newTestDisplay(out io.Writer) (*ProgressDisplay, *fakeSpinner) {
	fs := &fakeSpinner{}
	return &ProgressDisplay{out: out, spinner: fs}, fs
}

func TestProgressDisplayLifecycle(t *testing.T) {
	var buf bytes.Buffer
	display, fs := newTestDisplay(&buf)

	display.ModeStarted(bench.LabelThread)
	if !fs.running {
		t.Error("spinner not started")
	}
	if !strings.Contains(fs.suffix, "thread") {
		t.Errorf("suffix = %q", fs.suffix)
	}

	display.ModeFinished(bench.Report{
		Label: bench.LabelThread,
		Stats: stats.Summary{Mean: 25 * time.Millisecond, Iterations: 5},
	})
	if fs.running {
		t.Error("spinner still running after finish")
	}

	out := buf.String()
	if !strings.Contains(out, "thread") || !strings.Contains(out, "5 iterations") {
		t.Errorf("summary line = %q", out)
	}
}

func TestProgressDisplayFailure(t *testing.T) {
	var buf bytes.Buffer
	display, fs := newTestDisplay(&buf)

	display.ModeStarted(bench.LabelProcess)
	display.ModeFailed(bench.LabelProcess, errors.New("worker 2 exited with status 1"))

	if fs.running {
		t.Error("spinner still running after failure")
	}
	if !strings.Contains(buf.String(), "FAILED") {
		t.Errorf("failure line = %q", buf.String())
	}
}
