package streamutil

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// defaultBufferSize is the copy buffer size used when WithBufferSize
// is not given.
const defaultBufferSize = 8192

// Option configures a streamutil operation.
type Option func(*options)

type options struct {
	bufferSize int
}

func newOptions(opts ...Option) options {
	o := options{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bufferSize < 1 {
		o.bufferSize = defaultBufferSize
	}
	return o
}

// WithBufferSize sets the copy buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufferSize = n
	}
}

// Copy copies from src to dst through a fixed-size buffer and returns
// the number of bytes copied.
func Copy(dst io.Writer, src io.Reader, opts ...Option) (int64, error) {
	o := newOptions(opts...)
	return io.CopyBuffer(dst, src, make([]byte, o.bufferSize))
}

// Lines returns an iterator over the lines of r. Line endings are not
// included; both "\n" and "\r\n" terminate a line, and a final line
// without a terminator is still yielded. A read failure is yielded as
// the last element.
//
//	for line, err := range streamutil.Lines(r) {
//	    if err != nil { return err }
//	    // process line
//	}
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("scan lines: %w", err))
		}
	}
}

// ReadLines reads r to the end and returns its lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	for line, err := range Lines(r) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes each line followed by ending to w. An empty ending
// defaults to "\n".
func WriteLines(w io.Writer, lines []string, ending string) error {
	if ending == "" {
		ending = "\n"
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write lines: %w", err)
		}
		if _, err := bw.WriteString(ending); err != nil {
			return fmt.Errorf("write lines: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write lines: %w", err)
	}
	return nil
}
