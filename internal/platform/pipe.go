package platform

import (
	"io"
	"os"
)

// Pipe is a unidirectional byte channel between a coordinator and one
// worker process. Each end is closed independently: the parent closes the
// write end right after spawning (it only reads), the worker closes both
// ends after writing its single result record.
type Pipe struct {
	r *os.File
	w *os.File
}

// NewPipe creates a unidirectional pipe.
func NewPipe() (*Pipe, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &Pipe{r: r, w: w}, nil
}

// Reader returns the read end, or nil if it has been closed.
func (p *Pipe) Reader() *os.File { return p.r }

// Writer returns the write end, or nil if it has been closed.
func (p *Pipe) Writer() *os.File { return p.w }

// ReadFull blocks until it has read exactly len(buf) bytes from the read
// end. A short read (the write side closed early) returns
// io.ErrUnexpectedEOF; a closed empty channel returns io.EOF.
func (p *Pipe) ReadFull(buf []byte) error {
	_, err := io.ReadFull(p.r, buf)
	return err
}

// Write writes all of buf to the write end.
func (p *Pipe) Write(buf []byte) error {
	_, err := p.w.Write(buf)
	return err
}

// CloseRead closes the read end. Closing an already-closed end is a no-op.
func (p *Pipe) CloseRead() error {
	if p.r == nil {
		return nil
	}
	err := p.r.Close()
	p.r = nil
	return err
}

// CloseWrite closes the write end. Closing an already-closed end is a no-op.
func (p *Pipe) CloseWrite() error {
	if p.w == nil {
		return nil
	}
	err := p.w.Close()
	p.w = nil
	return err
}

// Close closes both ends, returning the first error encountered.
func (p *Pipe) Close() error {
	errR := p.CloseRead()
	errW := p.CloseWrite()
	if errR != nil {
		return errR
	}
	return errW
}
