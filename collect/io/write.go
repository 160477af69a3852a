package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/core"
)

// LineWriter writes every string it collects followed by a newline.
// Output is buffered and flushed at Finish, which also closes the file
// when the writer opened one.
type LineWriter struct {
	w      *bufio.Writer
	closer io.Closer
	tally  collecterrors.Tally
}

// WriteTo returns a LineWriter on w.
func WriteTo(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteLines creates or truncates path and returns a LineWriter on it.
func WriteLines(path string) (*LineWriter, error) {
	return WriteLinesWithOptions(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

// AppendLines returns a LineWriter appending to path, creating it if
// needed.
func AppendLines(path string) (*LineWriter, error) {
	return WriteLinesWithOptions(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// WriteLinesWithOptions opens path with flag and perm and returns a
// LineWriter on it.
func WriteLinesWithOptions(path string, flag int, perm os.FileMode) (*LineWriter, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, collecterrors.Wrap(err, "write lines")
	}
	lw := WriteTo(f)
	lw.closer = f
	return lw, nil
}

func (lw *LineWriter) Collect(line string) core.Signal {
	if lw.tally.Failed() {
		return core.Stop
	}
	_, err := lw.w.WriteString(line)
	if err == nil {
		err = lw.w.WriteByte('\n')
	}
	return lw.tally.Record(err)
}

func (lw *LineWriter) CollectRef(line *string) core.Signal {
	return lw.Collect(*line)
}

func (lw *LineWriter) CollectMany(lines core.Iterator[string]) core.Signal {
	return core.CollectEach[string](lw, lines)
}

func (lw *LineWriter) CollectThenFinish(lines core.Iterator[string]) collecterrors.Result {
	return core.FinishEach[string, collecterrors.Result](lw, lines)
}

func (lw *LineWriter) IntoCollector() core.Collector[string, collecterrors.Result] { return lw }

func (lw *LineWriter) Finish() collecterrors.Result {
	lw.tally.Fail(collecterrors.Wrap(lw.w.Flush(), "flush"))
	if lw.closer != nil {
		lw.tally.Fail(collecterrors.Wrap(lw.closer.Close(), "close"))
		lw.closer = nil
	}
	return lw.tally.Result
}

func (lw *LineWriter) BreakHint() core.Signal {
	return lw.tally.Hint()
}
