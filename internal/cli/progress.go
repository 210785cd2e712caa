// Package cli provides the interactive terminal surface: spinner-based
// progress while benchmark modes run, and prompts for interactive
// configuration.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/format"
)

// ProgressRefreshRate defines the spinner animation interval.
const ProgressRefreshRate = 150 * time.Millisecond

// Spinner abstracts the terminal spinner so progress display can be
// tested without driving a real terminal animation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

// ProgressDisplay shows a spinner while each benchmark mode runs and a
// one-line summary when it finishes. It implements
// orchestration.ProgressReporter.
type ProgressDisplay struct {
	out     io.Writer
	spinner Spinner
}

// NewProgressDisplay builds a progress display writing to out.
func NewProgressDisplay(out io.Writer) *ProgressDisplay {
	return &ProgressDisplay{out: out, spinner: newSpinner(out)}
}

// ModeStarted starts the spinner for the named mode.
func (p *ProgressDisplay) ModeStarted(label string) {
	p.spinner.UpdateSuffix(fmt.Sprintf(" running %s benchmark...", label))
	p.spinner.Start()
}

// ModeFinished stops the spinner and prints the mode's summary line.
func (p *ProgressDisplay) ModeFinished(report bench.Report) {
	p.spinner.Stop()
	fmt.Fprintf(p.out, "%-10s done, mean %s over %d iterations\n",
		report.Label,
		format.Duration(report.Stats.Mean),
		report.Stats.Iterations)
}

// ModeFailed stops the spinner and reports the failure.
func (p *ProgressDisplay) ModeFailed(label string, err error) {
	p.spinner.Stop()
	fmt.Fprintf(p.out, "%-10s FAILED: %v\n", label, err)
}
