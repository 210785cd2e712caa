// Package sysmon provides system-wide CPU and memory usage sampling plus
// a human-readable host description for benchmark session metadata.
package sysmon

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Phazertron/concour-bench/internal/platform"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Describe returns a one-line OS and CPU description for the session
// metadata, e.g. "Linux 6.1.0 amd64, 8 cores". Detection failures fall
// back to the runtime's compile-time identifiers.
func Describe() string {
	cores := platform.CPUCount()

	info, err := host.Info()
	if err != nil || info == nil {
		return fmt.Sprintf("%s %s, %d cores", runtime.GOOS, runtime.GOARCH, cores)
	}

	return fmt.Sprintf("%s %s %s, %d cores",
		info.Platform, info.PlatformVersion, runtime.GOARCH, cores)
}
