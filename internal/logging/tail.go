package logging

import (
	"bufio"
	"io"
	"log/slog"
	"sync"
)

const (
	// MaxLineLength is the maximum length of a single line before truncation.
	MaxLineLength = 4096

	// MaxTailLines is how many recent lines the tail retains.
	MaxTailLines = 100
)

// Tail consumes a process output stream, logging each line at debug level
// and keeping a ring of recent lines for the failure report. The launcher
// requires its streams to be drained; Tail is the CLI's drain.
type Tail struct {
	stream string
	logger *slog.Logger

	mu     sync.Mutex
	buffer []string
	bufIdx int
	filled bool
}

// NewTail creates a tail for one named stream ("output" or "progress").
func NewTail(stream string, logger *slog.Logger) *Tail {
	return &Tail{
		stream: stream,
		logger: logger,
		buffer: make([]string, MaxTailLines),
	}
}

// Consume reads r to EOF. It blocks; run it in its own goroutine.
func (t *Tail) Consume(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxLineLength)
	for scanner.Scan() {
		t.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.logger.Debug("stream_read_error", "stream", t.stream, "error", err)
	}
}

func (t *Tail) add(line string) {
	if len(line) > MaxLineLength {
		line = line[:MaxLineLength]
	}
	t.logger.Debug("archiver_line", "stream", t.stream, "line", line)

	t.mu.Lock()
	t.buffer[t.bufIdx] = line
	t.bufIdx = (t.bufIdx + 1) % len(t.buffer)
	if t.bufIdx == 0 {
		t.filled = true
	}
	t.mu.Unlock()
}

// Recent returns the retained lines, oldest first.
func (t *Tail) Recent() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var lines []string
	if t.filled {
		lines = append(lines, t.buffer[t.bufIdx:]...)
	}
	return append(lines, t.buffer[:t.bufIdx]...)
}
