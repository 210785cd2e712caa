package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/orchestration"
	"github.com/Phazertron/concour-bench/internal/stats"
)

func testSession() *orchestration.Session {
	return &orchestration.Session{
		StartedAt:   time.Date(2026, 8, 31, 14, 25, 1, 0, time.UTC),
		Seed:        1234,
		ArrayLength: 1_000_000,
		Elapsed:     3 * time.Second,
		Reports: []bench.Report{
			{
				Label: bench.LabelSingle, Sum: 50_500_000, Parallelism: 1,
				Stats: stats.Summary{Min: 80 * time.Millisecond, Mean: 100 * time.Millisecond, Max: 120 * time.Millisecond, Stddev: 10 * time.Millisecond, Iterations: 5},
			},
			{
				Label: bench.LabelProcess, Sum: 50_500_000, Parallelism: 4,
				Stats: stats.Summary{Min: 30 * time.Millisecond, Mean: 40 * time.Millisecond, Max: 50 * time.Millisecond, Stddev: 5 * time.Millisecond, Iterations: 5},
			},
			{
				Label: bench.LabelThread, Sum: 50_500_000, Parallelism: 4,
				Stats: stats.Summary{Min: 20 * time.Millisecond, Mean: 25 * time.Millisecond, Max: 30 * time.Millisecond, Stddev: 2 * time.Millisecond, Iterations: 5},
			},
		},
	}
}

func TestTimestamp(t *testing.T) {
	ts := Timestamp(time.Date(2026, 8, 31, 14, 25, 1, 0, time.UTC))
	if ts != "20260831_142501" {
		t.Errorf("Timestamp = %q", ts)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testSession(), "linux amd64, 8 cores"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Benchmark run 20260831_142501",
		"linux amd64, 8 cores",
		"Array length: 1000000",
		"Seed: 1234",
		"Verified sum: 50500000",
		"single", "process", "thread",
		"Speedup",
		"All modes agree with the baseline sum.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextFlagsMismatch(t *testing.T) {
	session := testSession()
	session.Reports[2].Sum = 1

	var buf bytes.Buffer
	if err := WriteText(&buf, session, ""); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(buf.String(), "WARNING: sums disagree") {
		t.Errorf("mismatch warning missing:\n%s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testSession()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(rows))
	}
	if rows[0][0] != "mode" || rows[0][7] != "speedup" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "single" || rows[1][2] != "50500000" {
		t.Errorf("baseline row = %v", rows[1])
	}
	// thread mean 25ms vs baseline 100ms
	if rows[3][7] != "4.00" {
		t.Errorf("thread speedup = %q, want 4.00", rows[3][7])
	}
}

func TestWriteFiles(t *testing.T) {
	base := t.TempDir()
	dir, err := WriteFiles(base, testSession(), "test system")
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	if filepath.Base(dir) != "run_20260831_142501" {
		t.Errorf("run dir = %q", dir)
	}
	for _, name := range []string{"report.txt", "results.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(testSession(), "test system")
	for _, want := range []string{"single", "process", "thread", "Speedup", "50500000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
