package process

import (
	"bytes"
	"io"
	"sync"
)

// Tee copies everything written to it to two independent readers.
// Each reader has its own buffer, so a slow consumer never stalls the
// other one or the writing child process. Buffers are unbounded; the
// archiver's text output is small relative to the data it moves, so the
// memory cost is negligible in practice.
type Tee struct {
	primary    *teeBuffer
	diagnostic *teeBuffer
}

// NewTee creates a tee with both consumer buffers ready for reading.
func NewTee() *Tee {
	return &Tee{
		primary:    newTeeBuffer(),
		diagnostic: newTeeBuffer(),
	}
}

// Write delivers p to both consumers. It never blocks.
func (t *Tee) Write(p []byte) (int, error) {
	t.primary.append(p)
	t.diagnostic.append(p)
	return len(p), nil
}

// Close marks end-of-stream. Pending data stays readable; readers see
// io.EOF once they have drained it.
func (t *Tee) Close() error {
	t.primary.close()
	t.diagnostic.close()
	return nil
}

// Primary returns the reader carrying standard program messages.
func (t *Tee) Primary() io.Reader { return t.primary }

// Diagnostic returns the reader carrying progress/status messages.
func (t *Tee) Diagnostic() io.Reader { return t.diagnostic }

// teeBuffer is one consumer's view: a growable buffer guarded by a
// condition variable so reads block until data or close.
type teeBuffer struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    bytes.Buffer
	closed bool
}

func newTeeBuffer() *teeBuffer {
	b := &teeBuffer{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *teeBuffer) append(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.buf.Write(p)
	b.cond.Broadcast()
}

func (b *teeBuffer) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.cond.Broadcast()
}

// Read blocks until data is available or the stream is closed and drained.
func (b *teeBuffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.buf.Len() == 0 && !b.closed {
		b.cond.Wait()
	}
	if b.buf.Len() == 0 {
		return 0, io.EOF
	}
	return b.buf.Read(p)
}
