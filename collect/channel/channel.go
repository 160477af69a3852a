// Package channel provides a leaf collector that sends items on a
// channel, for handing the results of a pipeline to another goroutine.
package channel

import (
	"context"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/collect/core"
)

// Sender sends every item on a channel. It blocks while the channel is
// full and stops once the receiver hangs up, after which items are
// dropped. The output counts the items delivered; its error is
// collecterrors.ErrReceiverClosed or the context's error when the
// receiver hung up.
type Sender[T any] struct {
	ch    chan<- T
	done  <-chan struct{}
	err   func() error
	tally collecterrors.Tally
}

// Send returns a Sender on ch. The receiver hangs up by closing done.
func Send[T any](ch chan<- T, done <-chan struct{}) *Sender[T] {
	return &Sender[T]{
		ch:   ch,
		done: done,
		err:  func() error { return collecterrors.ErrReceiverClosed },
	}
}

// SendContext returns a Sender on ch that hangs up when ctx ends.
func SendContext[T any](ctx context.Context, ch chan<- T) *Sender[T] {
	return &Sender[T]{
		ch:   ch,
		done: ctx.Done(),
		err:  func() error { return context.Cause(ctx) },
	}
}

func (s *Sender[T]) Collect(item T) core.Signal {
	if s.tally.Failed() {
		return core.Stop
	}
	select {
	case <-s.done:
		s.tally.Fail(s.err())
		return core.Stop
	default:
	}
	select {
	case <-s.done:
		s.tally.Fail(s.err())
		return core.Stop
	case s.ch <- item:
		s.tally.Written++
		return core.Continue
	}
}

func (s *Sender[T]) CollectRef(item *T) core.Signal {
	return s.Collect(*item)
}

func (s *Sender[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](s, items)
}

func (s *Sender[T]) CollectThenFinish(items core.Iterator[T]) collecterrors.Result {
	return core.FinishEach[T, collecterrors.Result](s, items)
}

func (s *Sender[T]) IntoCollector() core.Collector[T, collecterrors.Result] { return s }

// Finish returns the delivery count. It does not close the channel.
func (s *Sender[T]) Finish() collecterrors.Result {
	return s.tally.Result
}

func (s *Sender[T]) BreakHint() core.Signal {
	return s.tally.Hint()
}
