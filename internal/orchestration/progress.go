package orchestration

import "github.com/Phazertron/concour-bench/internal/bench"

//go:generate mockgen -source=progress.go -destination=mocks/progress_mock.go -package=mocks

// ProgressReporter receives mode lifecycle events during a session. It is
// how the interactive terminal UI (a spinner per mode) observes the run
// without orchestration depending on any terminal code.
type ProgressReporter interface {
	ModeStarted(label string)
	ModeFinished(report bench.Report)
	ModeFailed(label string, err error)
}

// NullProgressReporter discards all progress events. Used in quiet mode
// and when output is not a terminal.
type NullProgressReporter struct{}

func (NullProgressReporter) ModeStarted(string)        {}
func (NullProgressReporter) ModeFinished(bench.Report) {}
func (NullProgressReporter) ModeFailed(string, error)  {}
