// Package platform wraps the primitive OS operations the benchmark
// coordinators are built on: pipes, process spawning and reaping, named
// shared memory segments, and system queries. It contains no benchmark
// logic.
//
// Timing needs no abstraction here: time.Now carries a monotonic clock
// reading on every supported platform, so elapsed times computed with
// time.Since are immune to wall-clock adjustments.
package platform

import (
	"os"
	"runtime"
)

// CPUCount returns the number of logical CPUs available, always at least 1.
func CPUCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// ExePath returns the filesystem path of the running executable, used to
// re-invoke it as a benchmark worker.
func ExePath() (string, error) {
	return os.Executable()
}

// PipeChannelSupported reports whether worker result channels can be
// passed to child processes as inherited file descriptors. Windows does
// not support exec.Cmd.ExtraFiles.
func PipeChannelSupported() bool {
	return runtime.GOOS != "windows"
}
