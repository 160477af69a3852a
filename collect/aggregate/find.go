package aggregate

import "github.com/lguimbarda/min-collect/collect/core"

// Find keeps the first item satisfying pred and stops on it.
type Find[T any] struct {
	found core.Option[T]
	pred  func(*T) bool
}

// NewFind returns a collector of the first item matching pred. It stops on the match.
func NewFind[T any](pred func(*T) bool) *Find[T] {
	return &Find[T]{pred: pred}
}

func (f *Find[T]) Collect(item T) core.Signal {
	return f.CollectRef(&item)
}

func (f *Find[T]) CollectRef(item *T) core.Signal {
	if f.found.IsSome() {
		return core.Stop
	}
	if !f.pred(item) {
		return core.Continue
	}
	f.found = core.Some(*item)
	return core.Stop
}

func (f *Find[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](f, items)
}

func (f *Find[T]) CollectThenFinish(items core.Iterator[T]) core.Option[T] {
	return core.FinishEach[T, core.Option[T]](f, items)
}

func (f *Find[T]) IntoCollector() core.Collector[T, core.Option[T]] { return f }
func (f *Find[T]) Finish() core.Option[T]                           { return f.found }

func (f *Find[T]) BreakHint() core.Signal {
	return core.SignalOf(f.found.IsSome())
}

// All reports whether pred holds for every item. It stops on the first
// item that fails.
type All[T any] struct {
	ok   bool
	pred func(*T) bool
}

// NewAll returns a collector reporting whether every item matches pred. It stops on the first mismatch.
func NewAll[T any](pred func(*T) bool) *All[T] {
	return &All[T]{ok: true, pred: pred}
}

func (a *All[T]) Collect(item T) core.Signal {
	return a.CollectRef(&item)
}

func (a *All[T]) CollectRef(item *T) core.Signal {
	if a.ok && !a.pred(item) {
		a.ok = false
	}
	return core.SignalOf(!a.ok)
}

func (a *All[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](a, items)
}

func (a *All[T]) CollectThenFinish(items core.Iterator[T]) bool {
	return core.FinishEach[T, bool](a, items)
}

func (a *All[T]) IntoCollector() core.Collector[T, bool] { return a }
func (a *All[T]) Finish() bool                           { return a.ok }
func (a *All[T]) BreakHint() core.Signal                 { return core.SignalOf(!a.ok) }

// Any reports whether pred holds for some item. It stops on the first
// item that satisfies it.
type Any[T any] struct {
	ok   bool
	pred func(*T) bool
}

// NewAny returns a collector reporting whether some item matches pred. It stops on the first match.
func NewAny[T any](pred func(*T) bool) *Any[T] {
	return &Any[T]{pred: pred}
}

func (a *Any[T]) Collect(item T) core.Signal {
	return a.CollectRef(&item)
}

func (a *Any[T]) CollectRef(item *T) core.Signal {
	if !a.ok && a.pred(item) {
		a.ok = true
	}
	return core.SignalOf(a.ok)
}

func (a *Any[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](a, items)
}

func (a *Any[T]) CollectThenFinish(items core.Iterator[T]) bool {
	return core.FinishEach[T, bool](a, items)
}

func (a *Any[T]) IntoCollector() core.Collector[T, bool] { return a }
func (a *Any[T]) Finish() bool                           { return a.ok }
func (a *Any[T]) BreakHint() core.Signal                 { return core.SignalOf(a.ok) }
