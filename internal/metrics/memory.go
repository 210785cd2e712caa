// Package metrics collects runtime memory statistics and exposes benchmark
// observations through Prometheus.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// CaptureMemory reads current memory statistics.
func CaptureMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta returns the growth between two snapshots. Counters that shrank
// (e.g. after a GC cycle released heap) report zero rather than wrapping.
func (s MemorySnapshot) Delta(earlier MemorySnapshot) MemorySnapshot {
	sub := func(a, b uint64) uint64 {
		if a < b {
			return 0
		}
		return a - b
	}
	return MemorySnapshot{
		HeapAlloc:    sub(s.HeapAlloc, earlier.HeapAlloc),
		HeapSys:      sub(s.HeapSys, earlier.HeapSys),
		Sys:          sub(s.Sys, earlier.Sys),
		NumGC:        s.NumGC - earlier.NumGC,
		PauseTotalNs: sub(s.PauseTotalNs, earlier.PauseTotalNs),
		HeapObjects:  sub(s.HeapObjects, earlier.HeapObjects),
	}
}
