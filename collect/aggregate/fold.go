package aggregate

import "github.com/lguimbarda/min-collect/collect/core"

// Fold threads an accumulator through f.
type Fold[T, A any] struct {
	acc A
	f   func(A, T) A
}

// NewFold returns a collector folding the items into init with f.
func NewFold[T, A any](init A, f func(A, T) A) *Fold[T, A] {
	return &Fold[T, A]{acc: init, f: f}
}

func (f *Fold[T, A]) Collect(item T) core.Signal {
	f.acc = f.f(f.acc, item)
	return core.Continue
}

func (f *Fold[T, A]) CollectRef(item *T) core.Signal {
	return f.Collect(*item)
}

func (f *Fold[T, A]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](f, items)
}

func (f *Fold[T, A]) CollectThenFinish(items core.Iterator[T]) A {
	return core.FinishEach[T, A](f, items)
}

func (f *Fold[T, A]) IntoCollector() core.Collector[T, A] { return f }
func (f *Fold[T, A]) Finish() A                           { return f.acc }
func (f *Fold[T, A]) BreakHint() core.Signal              { return core.Continue }

// TryFold updates the accumulator in place and stops as soon as f
// returns Stop. The accumulator reached at that point is the output.
type TryFold[T, A any] struct {
	acc     A
	f       func(*A, T) core.Signal
	stopped bool
}

// NewTryFold returns a collector folding the items into init with f, which
// updates the accumulator in place and returns Stop to end the fold.
func NewTryFold[T, A any](init A, f func(acc *A, item T) core.Signal) *TryFold[T, A] {
	return &TryFold[T, A]{acc: init, f: f}
}

func (f *TryFold[T, A]) Collect(item T) core.Signal {
	s := f.f(&f.acc, item)
	if s == core.Stop {
		f.stopped = true
	}
	return s
}

func (f *TryFold[T, A]) CollectRef(item *T) core.Signal {
	return f.Collect(*item)
}

func (f *TryFold[T, A]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](f, items)
}

func (f *TryFold[T, A]) CollectThenFinish(items core.Iterator[T]) A {
	return core.FinishEach[T, A](f, items)
}

func (f *TryFold[T, A]) IntoCollector() core.Collector[T, A] { return f }
func (f *TryFold[T, A]) Finish() A                           { return f.acc }

func (f *TryFold[T, A]) BreakHint() core.Signal {
	return core.SignalOf(f.stopped)
}

// Reduce combines items with f, using the first item as the initial
// accumulator.
type Reduce[T any] struct {
	acc core.Option[T]
	f   func(T, T) T
}

// NewReduce returns a collector combining the items with f, starting from
// the first item.
func NewReduce[T any](f func(acc, item T) T) *Reduce[T] {
	return &Reduce[T]{f: f}
}

func (r *Reduce[T]) Collect(item T) core.Signal {
	if acc, ok := r.acc.Get(); ok {
		r.acc = core.Some(r.f(acc, item))
	} else {
		r.acc = core.Some(item)
	}
	return core.Continue
}

func (r *Reduce[T]) CollectRef(item *T) core.Signal {
	return r.Collect(*item)
}

func (r *Reduce[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](r, items)
}

func (r *Reduce[T]) CollectThenFinish(items core.Iterator[T]) core.Option[T] {
	return core.FinishEach[T, core.Option[T]](r, items)
}

func (r *Reduce[T]) IntoCollector() core.Collector[T, core.Option[T]] { return r }
func (r *Reduce[T]) Finish() core.Option[T]                           { return r.acc }
func (r *Reduce[T]) BreakHint() core.Signal                           { return core.Continue }
