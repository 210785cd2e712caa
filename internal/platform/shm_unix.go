//go:build unix

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SharedMemorySupported reports whether named shared memory segments are
// available on this platform.
func SharedMemorySupported() bool { return true }

// Segment is a named shared memory region reachable by multiple processes.
// It is backed by a file in /dev/shm (when present) or the default temp
// directory, mapped with MAP_SHARED.
type Segment struct {
	name  string
	file  *os.File
	data  []byte
	owner bool
}

func shmDir() string {
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		return "/dev/shm"
	}
	return os.TempDir()
}

// SegmentPath returns the backing file path for a segment name.
func SegmentPath(name string) string {
	return filepath.Join(shmDir(), name)
}

func mapSegment(file *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(file.Fd()), 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// CreateSegment creates a named segment of the given size. The name must
// not already exist; the creator owns the segment and removes its backing
// file on Close.
func CreateSegment(name string, size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("segment size %d must be positive", size)
	}

	file, err := os.OpenFile(SegmentPath(name), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, err
	}
	if err := file.Truncate(int64(size)); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, err
	}

	data, err := mapSegment(file, size)
	if err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, err
	}

	return &Segment{name: name, file: file, data: data, owner: true}, nil
}

// OpenSegment opens an existing named segment created by another process.
func OpenSegment(name string, size int) (*Segment, error) {
	file, err := os.OpenFile(SegmentPath(name), os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.Size() < int64(size) {
		file.Close()
		return nil, fmt.Errorf("segment %q is %d bytes, need %d", name, info.Size(), size)
	}

	data, err := mapSegment(file, size)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Segment{name: name, file: file, data: data}, nil
}

// Name returns the segment name.
func (s *Segment) Name() string { return s.name }

// Bytes returns the mapped region. The slice is invalid after Close.
func (s *Segment) Bytes() []byte { return s.data }

// Close unmaps the region and, for the creating process, removes the
// backing file. Safe to call more than once.
func (s *Segment) Close() error {
	var first error
	if s.data != nil {
		if err := unix.Munmap(s.data); err != nil {
			first = err
		}
		s.data = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil && first == nil {
			first = err
		}
		if s.owner {
			if err := os.Remove(s.file.Name()); err != nil && first == nil {
				first = err
			}
		}
		s.file = nil
	}
	return first
}

// Int64View reinterprets the first n*8 bytes of b as a []int64 without
// copying. The byte slice must be 8-byte aligned, which mmap guarantees
// for page-aligned mappings.
func Int64View(b []byte, n int) []int64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&b[0])), n)
}
