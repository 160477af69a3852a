// Package io reads lines, chunks and directory trees as pull sources, and
// writes collected lines through sink collectors.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
)

// Lines iterates over the lines of a reader, without their line endings.
// It ends at EOF or at the first read error, which Err then reports.
type Lines struct {
	scanner *bufio.Scanner
	closer  io.Closer
	err     error
	done    bool
}

// ReadLinesFrom returns the lines of r.
func ReadLinesFrom(r io.Reader) *Lines {
	return &Lines{scanner: bufio.NewScanner(r)}
}

// ReadLines opens path and returns its lines. The file is closed when
// the lines run out or when Close is called.
func ReadLines(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, collecterrors.Wrap(err, "read lines")
	}
	l := ReadLinesFrom(f)
	l.closer = f
	return l, nil
}

// Buffer sets the initial buffer and the longest line the scanner accepts.
func (l *Lines) Buffer(buf []byte, maxSize int) *Lines {
	l.scanner.Buffer(buf, maxSize)
	return l
}

func (l *Lines) Next() (string, bool) {
	if l.done {
		return "", false
	}
	if !l.scanner.Scan() {
		l.end(l.scanner.Err())
		return "", false
	}
	return l.scanner.Text(), true
}

func (l *Lines) SizeHint() (int, int) {
	if l.done {
		return 0, 0
	}
	return 0, -1
}

// Err returns the error that ended the iteration, if any.
func (l *Lines) Err() error {
	return l.err
}

// Close closes the underlying file, if Lines opened one.
func (l *Lines) Close() error {
	l.done = true
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

func (l *Lines) end(err error) {
	if err != nil {
		l.err = collecterrors.Wrap(err, "read lines")
	}
	if cerr := l.Close(); l.err == nil && cerr != nil {
		l.err = cerr
	}
}

// Chunks iterates over a reader in chunks of at most size bytes. Every
// chunk is a fresh slice.
type Chunks struct {
	r    io.Reader
	size int
	err  error
	done bool
}

// ReadChunks returns the chunks of r.
func ReadChunks(r io.Reader, size int) *Chunks {
	return &Chunks{r: r, size: max(size, 1)}
}

func (c *Chunks) Next() ([]byte, bool) {
	for !c.done {
		buf := make([]byte, c.size)
		n, err := c.r.Read(buf)
		if err != nil {
			c.done = true
			if err != io.EOF {
				c.err = collecterrors.Wrap(err, "read chunks")
			}
		}
		if n > 0 {
			return buf[:n], true
		}
	}
	return nil, false
}

func (c *Chunks) SizeHint() (int, int) {
	if c.done {
		return 0, 0
	}
	return 0, -1
}

// Err returns the error that ended the iteration, if any.
func (c *Chunks) Err() error {
	return c.err
}
