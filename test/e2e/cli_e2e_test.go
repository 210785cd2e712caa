package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the real binary and runs full benchmark sessions
// against it, including the worker re-invocations the process mode
// performs.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}

	tmpDir := t.TempDir()
	binName := "concbench"
	if runtime.GOOS == "windows" {
		binName = "concbench.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	build := exec.Command("go", "build", "-o", binPath, "./cmd/concbench")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("building concbench: %v", err)
	}

	// Small fixed workload so the whole suite stays fast and the sums
	// stay deterministic across runs.
	base := []string{
		"--array-length", "10000",
		"--processes", "2",
		"--threads", "2",
		"--iterations", "2",
		"--seed", "7",
		"--no-files",
		"--quiet",
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Pipe Session",
			args:     append([]string{"--ipc", "pipe"}, base...),
			wantCode: 0,
		},
		{
			name:     "Shared Memory Session",
			args:     append([]string{"--ipc", "shm"}, base...),
			wantCode: 0,
		},
		{
			name:     "Auto Session With Table",
			args:     []string{"--array-length", "10000", "--processes", "2", "--threads", "2", "--iterations", "2", "--seed", "7", "--no-files"},
			wantOut:  "Speedup",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "concbench",
			wantCode: 0,
		},
		{
			name:     "Invalid Array Length",
			args:     []string{"--array-length", "10"},
			wantOut:  "array-length",
			wantCode: 4,
		},
		{
			name:     "Unknown IPC Strategy",
			args:     []string{"--ipc", "smoke-signals"},
			wantOut:  "ipc",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strings.Contains(strings.Join(tt.args, " "), "--ipc shm") && runtime.GOOS == "windows" {
				t.Skip("shared memory channel not wired on windows")
			}

			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed: %v\noutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("expected exit code %d, command succeeded\noutput: %s", tt.wantCode, outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() != tt.wantCode {
					t.Errorf("exit code = %d, want %d\noutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

// TestCLI_E2E_Artifacts checks that a run writes report.txt and
// results.csv into a timestamped run directory.
func TestCLI_E2E_Artifacts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}

	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "concbench")

	build := exec.Command("go", "build", "-o", binPath, "./cmd/concbench")
	build.Dir = "../.."
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("building concbench: %v", err)
	}

	outDir := filepath.Join(tmpDir, "results")
	cmd := exec.Command(binPath,
		"--array-length", "10000",
		"--processes", "2",
		"--threads", "2",
		"--iterations", "2",
		"--seed", "7",
		"--quiet",
		"--out-dir", outDir,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("run failed: %v\noutput: %s", err, output)
	}

	runs, err := filepath.Glob(filepath.Join(outDir, "run_*"))
	if err != nil || len(runs) != 1 {
		t.Fatalf("run dirs = %v (err %v), want exactly one", runs, err)
	}
	for _, name := range []string{"report.txt", "results.csv"} {
		if _, err := os.Stat(filepath.Join(runs[0], name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
