//go:build !unix

package platform

import "errors"

// SharedMemorySupported reports whether named shared memory segments are
// available on this platform.
func SharedMemorySupported() bool { return false }

var errNoSharedMemory = errors.New("shared memory segments are not supported on this platform")

// Segment is a named shared memory region. Unsupported on this platform.
type Segment struct{}

// SegmentPath returns the backing file path for a segment name.
func SegmentPath(name string) string { return name }

// CreateSegment is unsupported on this platform.
func CreateSegment(string, int) (*Segment, error) { return nil, errNoSharedMemory }

// OpenSegment is unsupported on this platform.
func OpenSegment(string, int) (*Segment, error) { return nil, errNoSharedMemory }

// Name returns the segment name.
func (s *Segment) Name() string { return "" }

// Bytes returns the mapped region.
func (s *Segment) Bytes() []byte { return nil }

// Close releases the segment.
func (s *Segment) Close() error { return nil }

// Int64View reinterprets bytes as int64 values. Unsupported here.
func Int64View([]byte, int) []int64 { return nil }
