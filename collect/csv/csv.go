// Package csv reads CSV records as a pull source and writes them through
// a sink collector.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/core"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// Reader iterates over the records of a CSV input. It ends at EOF or at
// the first malformed record, which Err then reports.
type Reader struct {
	r    *csv.Reader
	err  error
	done bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	cr := csv.NewReader(r)
	for _, opt := range opts {
		opt(cr)
	}
	return &Reader{r: cr}
}

// Header reads the next record, normally the first one, without handing
// it to the collector.
func (r *Reader) Header() ([]string, error) {
	rec, ok := r.Next()
	if !ok {
		if r.err != nil {
			return nil, r.err
		}
		return nil, io.ErrUnexpectedEOF
	}
	return rec, nil
}

func (r *Reader) Next() ([]string, bool) {
	if r.done {
		return nil, false
	}
	rec, err := r.r.Read()
	if err != nil {
		r.done = true
		if err != io.EOF {
			r.err = collecterrors.Wrap(err, "csv")
		}
		return nil, false
	}
	return rec, true
}

func (r *Reader) SizeHint() (int, int) {
	if r.done {
		return 0, 0
	}
	return 0, -1
}

// Err returns the error that ended the iteration, if any.
func (r *Reader) Err() error {
	return r.err
}

// WriterOption configures a CSV writer.
type WriterOption func(*csv.Writer)

// WithWriterComma sets the field delimiter for writing.
func WithWriterComma(comma rune) WriterOption {
	return func(w *csv.Writer) {
		w.Comma = comma
	}
}

// WithUseCRLF uses \r\n as the line terminator.
func WithUseCRLF(useCRLF bool) WriterOption {
	return func(w *csv.Writer) {
		w.UseCRLF = useCRLF
	}
}

// Writer writes every record it collects. Records are buffered and
// flushed at Finish; a record that fails to write stops the collector.
type Writer struct {
	w     *csv.Writer
	tally collecterrors.Tally
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	cw := csv.NewWriter(w)
	for _, opt := range opts {
		opt(cw)
	}
	return &Writer{w: cw}
}

func (w *Writer) Collect(record []string) core.Signal {
	if w.tally.Failed() {
		return core.Stop
	}
	return w.tally.Record(w.w.Write(record))
}

func (w *Writer) CollectRef(record *[]string) core.Signal {
	return w.Collect(*record)
}

func (w *Writer) CollectMany(records core.Iterator[[]string]) core.Signal {
	return core.CollectEach[[]string](w, records)
}

func (w *Writer) CollectThenFinish(records core.Iterator[[]string]) collecterrors.Result {
	return core.FinishEach[[]string, collecterrors.Result](w, records)
}

func (w *Writer) IntoCollector() core.Collector[[]string, collecterrors.Result] { return w }

// Finish flushes the buffered records.
func (w *Writer) Finish() collecterrors.Result {
	w.w.Flush()
	w.tally.Fail(collecterrors.Wrap(w.w.Error(), "csv flush"))
	return w.tally.Result
}

func (w *Writer) BreakHint() core.Signal {
	return w.tally.Hint()
}
