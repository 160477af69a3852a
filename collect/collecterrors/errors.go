// Package collecterrors provides the error types shared by the collectors
// that talk to the outside world: channels, databases, files and
// encoders.
//
// Those collectors never panic on a failed write. They stop on the first
// error and report it through their output, wrapped with the index of the
// item that failed.
package collecterrors

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lguimbarda/min-collect/collect/core"
)

// ErrReceiverClosed is reported by a sender whose receiver hung up.
var ErrReceiverClosed = errors.New("collect: receiver closed")

// ItemError records which item a sink failed on.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through an ItemError.
func (e *ItemError) Cause() error { return e.Err }

// AtItem wraps err with the index of the failing item. It returns nil
// when err is nil.
func AtItem(index int, err error) error {
	if err == nil {
		return nil
	}
	return &ItemError{Index: index, Err: err}
}

// IsItemError reports whether err carries an ItemError.
func IsItemError(err error) bool {
	var ie *ItemError
	return errors.As(err, &ie)
}

// ItemIndex returns the index of the failing item carried by err.
func ItemIndex(err error) (int, bool) {
	var ie *ItemError
	if !errors.As(err, &ie) {
		return 0, false
	}
	return ie.Index, true
}

// Wrap annotates err with msg and a stack trace. It returns nil when err
// is nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// Result is the output of a sink: how many items it wrote and the error
// that stopped it, if any.
type Result struct {
	Written int
	Err     error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("wrote %d items: %v", r.Written, r.Err)
	}
	return fmt.Sprintf("wrote %d items", r.Written)
}

// Tally keeps a sink's Result up to date one write at a time.
type Tally struct {
	Result
}

// Record counts a successful write, or records err against the current
// item and returns Stop.
func (t *Tally) Record(err error) core.Signal {
	if err != nil {
		t.Err = AtItem(t.Written, err)
		return core.Stop
	}
	t.Written++
	return core.Continue
}

// Fail records an error that is not tied to an item, such as a failed
// flush. An earlier error is kept.
func (t *Tally) Fail(err error) {
	if t.Err == nil && err != nil {
		t.Err = err
	}
}

// Failed reports whether an error was recorded.
func (t *Tally) Failed() bool {
	return t.Err != nil
}

// Hint is the break hint of a sink using t.
func (t *Tally) Hint() core.Signal {
	return core.SignalOf(t.Failed())
}
