// Package report renders a benchmark session for the terminal and writes
// the persistent run artifacts (report.txt and results.csv) into a
// timestamped run directory.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/format"
	"github.com/Phazertron/concour-bench/internal/orchestration"
)

const (
	// TimestampLayout names run directories, e.g. run_20260831_142501.
	TimestampLayout = "20060102_150405"

	textFileName = "report.txt"
	csvFileName  = "results.csv"
)

// Timestamp formats t for run directory names.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// CreateRunDir creates baseDir/run_<timestamp> (and baseDir itself if
// needed) and returns its path.
func CreateRunDir(baseDir string, startedAt time.Time) (string, error) {
	dir := filepath.Join(baseDir, "run_"+Timestamp(startedAt))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.WrapError(err, "creating run directory %s", dir)
	}
	return dir, nil
}

// WriteText writes the human-readable report: run metadata, the results
// table, and the cross-mode verification verdict.
func WriteText(w io.Writer, session *orchestration.Session, systemDesc string) error {
	fmt.Fprintf(w, "Benchmark run %s\n", Timestamp(session.StartedAt))
	if systemDesc != "" {
		fmt.Fprintf(w, "System: %s\n", systemDesc)
	}
	fmt.Fprintf(w, "Array length: %d elements\n", session.ArrayLength)
	fmt.Fprintf(w, "Seed: %d\n", session.Seed)
	if base := session.Baseline(); base != nil {
		fmt.Fprintf(w, "Iterations per mode: %d\n", base.Stats.Iterations)
		fmt.Fprintf(w, "Verified sum: %d\n", base.Sum)
	}
	fmt.Fprintf(w, "Total elapsed: %s\n\n", format.Duration(session.Elapsed))

	writePlainTable(w, session)

	if mismatched := session.VerifySums(); len(mismatched) > 0 {
		fmt.Fprintf(w, "\nWARNING: sums disagree with the baseline: %v\n", mismatched)
	} else if len(session.Reports) > 1 {
		fmt.Fprintf(w, "\nAll modes agree with the baseline sum.\n")
	}
	return nil
}

func writePlainTable(w io.Writer, session *orchestration.Session) {
	fmt.Fprintf(w, "%-10s %8s %12s %12s %12s %12s %9s\n",
		"Mode", "Workers", "Min (s)", "Mean (s)", "Max (s)", "Stddev (s)", "Speedup")
	base := session.Baseline()
	for _, r := range session.Reports {
		fmt.Fprintf(w, "%-10s %8d %12s %12s %12s %12s %9s\n",
			r.Label,
			r.Parallelism,
			format.Seconds(r.Stats.Min),
			format.Seconds(r.Stats.Mean),
			format.Seconds(r.Stats.Max),
			format.Seconds(r.Stats.Stddev),
			format.Speedup(base.Stats.Mean, r.Stats.Mean))
	}
}

// WriteCSV writes one row per mode with raw values, for machine
// consumption.
func WriteCSV(w io.Writer, session *orchestration.Session) error {
	cw := csv.NewWriter(w)
	header := []string{"mode", "workers", "sum", "min_s", "mean_s", "max_s", "stddev_s", "speedup"}
	if err := cw.Write(header); err != nil {
		return err
	}

	base := session.Baseline()
	for _, r := range session.Reports {
		speedup := 0.0
		if r.Stats.Mean > 0 && base != nil {
			speedup = base.Stats.Mean.Seconds() / r.Stats.Mean.Seconds()
		}
		row := []string{
			r.Label,
			strconv.Itoa(r.Parallelism),
			strconv.FormatInt(r.Sum, 10),
			formatSeconds(r.Stats.Min),
			formatSeconds(r.Stats.Mean),
			formatSeconds(r.Stats.Max),
			formatSeconds(r.Stats.Stddev),
			strconv.FormatFloat(speedup, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}

// WriteFiles persists both artifacts into a fresh run directory under
// baseDir and returns the directory path.
func WriteFiles(baseDir string, session *orchestration.Session, systemDesc string) (string, error) {
	dir, err := CreateRunDir(baseDir, session.StartedAt)
	if err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dir, textFileName), func(w io.Writer) error {
		return WriteText(w, session, systemDesc)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(dir, csvFileName), func(w io.Writer) error {
		return WriteCSV(w, session)
	}); err != nil {
		return "", err
	}
	return dir, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.WrapError(err, "creating %s", path)
	}
	if err := fill(f); err != nil {
		f.Close()
		return apperrors.WrapError(err, "writing %s", path)
	}
	return f.Close()
}
