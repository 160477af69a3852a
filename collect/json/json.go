// Package json decodes JSON values as a pull source and encodes the items
// of a collector as JSON Lines.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/core"
)

// Decoder iterates over the values of a JSON input. It ends at EOF or at
// the first value that fails to decode, which Err then reports.
type Decoder[T any] struct {
	dec     *json.Decoder
	array   bool
	started bool
	err     error
	done    bool
}

// DecodeStream returns a Decoder over a sequence of JSON values, such as
// newline-delimited JSON.
func DecodeStream[T any](r io.Reader) *Decoder[T] {
	return &Decoder[T]{dec: json.NewDecoder(r)}
}

// DecodeArray returns a Decoder over the elements of a JSON array.
func DecodeArray[T any](r io.Reader) *Decoder[T] {
	return &Decoder[T]{dec: json.NewDecoder(r), array: true}
}

// DisallowUnknownFields makes decoding fail on object keys that do not
// match a field of T.
func (d *Decoder[T]) DisallowUnknownFields() *Decoder[T] {
	d.dec.DisallowUnknownFields()
	return d
}

func (d *Decoder[T]) Next() (T, bool) {
	var value T
	if d.done {
		return value, false
	}
	if d.array && !d.open() {
		return value, false
	}
	if d.array && !d.dec.More() {
		_, err := d.dec.Token()
		d.end(err)
		return value, false
	}
	if err := d.dec.Decode(&value); err != nil {
		if err == io.EOF && !d.array {
			err = nil
		}
		d.end(err)
		return value, false
	}
	return value, true
}

// open consumes the opening bracket of the array.
func (d *Decoder[T]) open() bool {
	if d.started {
		return true
	}
	d.started = true
	token, err := d.dec.Token()
	if err != nil {
		d.end(err)
		return false
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		d.end(fmt.Errorf("expected array, got %v", token))
		return false
	}
	return true
}

func (d *Decoder[T]) end(err error) {
	d.done = true
	if err != nil {
		d.err = collecterrors.Wrap(err, "json")
	}
}

func (d *Decoder[T]) SizeHint() (int, int) {
	if d.done {
		return 0, 0
	}
	return 0, -1
}

// Err returns the error that ended the iteration, if any.
func (d *Decoder[T]) Err() error {
	return d.err
}

// Encoder writes every item as one line of JSON.
type Encoder[T any] struct {
	enc   *json.Encoder
	tally collecterrors.Tally
}

// Encode returns an Encoder on w.
func Encode[T any](w io.Writer) *Encoder[T] {
	return &Encoder[T]{enc: json.NewEncoder(w)}
}

// SetIndent indents each encoded value, as json.Encoder.SetIndent does.
func (e *Encoder[T]) SetIndent(prefix, indent string) *Encoder[T] {
	e.enc.SetIndent(prefix, indent)
	return e
}

// SetEscapeHTML controls whether HTML characters are escaped in strings.
func (e *Encoder[T]) SetEscapeHTML(on bool) *Encoder[T] {
	e.enc.SetEscapeHTML(on)
	return e
}

func (e *Encoder[T]) Collect(item T) core.Signal {
	return e.CollectRef(&item)
}

func (e *Encoder[T]) CollectRef(item *T) core.Signal {
	if e.tally.Failed() {
		return core.Stop
	}
	return e.tally.Record(e.enc.Encode(item))
}

func (e *Encoder[T]) CollectMany(items core.Iterator[T]) core.Signal {
	if e.tally.Failed() {
		return core.Stop
	}
	return core.EachRef(e.CollectRef, items)
}

func (e *Encoder[T]) CollectThenFinish(items core.Iterator[T]) collecterrors.Result {
	return core.FinishEach[T, collecterrors.Result](e, items)
}

func (e *Encoder[T]) IntoCollector() core.Collector[T, collecterrors.Result] { return e }

func (e *Encoder[T]) Finish() collecterrors.Result {
	return e.tally.Result
}

func (e *Encoder[T]) BreakHint() core.Signal {
	return e.tally.Hint()
}
