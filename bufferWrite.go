package mytar

import (
	"bufio"
	"io"
)

const writeBuffer = 64 * 1024

// Sink is an output file for one extracted member. Writes are buffered and
// counted; Close flushes and releases the file and is safe to call twice.
type Sink struct {
	name   string
	file   io.WriteCloser
	writer *bufio.Writer
	count  *countingWriter
	closed bool
}

func newSink(name string, file io.WriteCloser) *Sink {
	cw := &countingWriter{w: file}
	return &Sink{
		name:   name,
		file:   file,
		writer: bufio.NewWriterSize(cw, writeBuffer),
		count:  cw,
	}
}

// Name returns the member name the sink was opened for.
func (s *Sink) Name() string { return s.name }

func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.writer.Write(p)
	if err != nil {
		return n, &ExtractError{Op: "write", Name: s.name, Err: err}
	}
	return n, nil
}

// Written returns the bytes that reached the file so far. Buffered bytes are
// counted once Close has flushed them.
func (s *Sink) Written() int64 {
	return s.count.Count()
}

func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.writer.Flush(); err != nil {
		s.file.Close()
		return &ExtractError{Op: "write", Name: s.name, Err: err}
	}
	if err := s.file.Close(); err != nil {
		return &ExtractError{Op: "close", Name: s.name, Err: err}
	}
	return nil
}
