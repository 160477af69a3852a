package adapt

import "github.com/lguimbarda/min-collect/collect/core"

// Unbatching runs f for every item, giving it the inner collector to feed
// however it likes. f's result is returned as is, so bulk ingestion is
// the plain item loop.
//
// BreakHint is always Continue: f may keep state of its own and return
// Continue even when the inner collector has stopped.
type Unbatching[T, U, O any] struct {
	c core.Collector[U, O]
	f func(c core.Collector[U, O], item T) core.Signal
}

// NewUnbatching returns an Unbatching feeding c through f.
func NewUnbatching[T, U, O any](c core.Collector[U, O], f func(core.Collector[U, O], T) core.Signal) *Unbatching[T, U, O] {
	return &Unbatching[T, U, O]{c: c, f: f}
}

func (u *Unbatching[T, U, O]) Collect(item T) core.Signal {
	return u.f(u.c, item)
}

func (u *Unbatching[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](u, items)
}

func (u *Unbatching[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return core.FinishEach[T, O](u, items)
}

func (u *Unbatching[T, U, O]) IntoCollector() core.Collector[T, O] { return u }
func (u *Unbatching[T, U, O]) Finish() O                           { return u.c.Finish() }
func (u *Unbatching[T, U, O]) BreakHint() core.Signal              { return core.Continue }

// UnbatchingRef is Unbatching for f that only borrows the item, which
// makes it a RefCollector usable in front of another collector.
type UnbatchingRef[T, U, O any] struct {
	c core.Collector[U, O]
	f func(c core.Collector[U, O], item *T) core.Signal
}

// NewUnbatchingRef returns an UnbatchingRef feeding c through f.
func NewUnbatchingRef[T, U, O any](c core.Collector[U, O], f func(core.Collector[U, O], *T) core.Signal) *UnbatchingRef[T, U, O] {
	return &UnbatchingRef[T, U, O]{c: c, f: f}
}

func (u *UnbatchingRef[T, U, O]) Collect(item T) core.Signal {
	return u.f(u.c, &item)
}

func (u *UnbatchingRef[T, U, O]) CollectRef(item *T) core.Signal {
	return u.f(u.c, item)
}

func (u *UnbatchingRef[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.EachRef(u.CollectRef, items)
}

func (u *UnbatchingRef[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return core.FinishEach[T, O](u, items)
}

func (u *UnbatchingRef[T, U, O]) IntoCollector() core.Collector[T, O] { return u }
func (u *UnbatchingRef[T, U, O]) Finish() O                           { return u.c.Finish() }
func (u *UnbatchingRef[T, U, O]) BreakHint() core.Signal              { return core.Continue }

// AltBreakHint replaces the inner collector's break hint with hint.
type AltBreakHint[T, O any] struct {
	c    core.Collector[T, O]
	ref  func(*T) core.Signal
	hint func(core.Collector[T, O]) core.Signal
}

// NewAltBreakHint returns c with its break hint computed by hint.
func NewAltBreakHint[T, O any](c core.Collector[T, O], hint func(core.Collector[T, O]) core.Signal) *AltBreakHint[T, O] {
	return &AltBreakHint[T, O]{c: c, ref: core.RefFunc(c), hint: hint}
}

func (a *AltBreakHint[T, O]) Collect(item T) core.Signal     { return a.c.Collect(item) }
func (a *AltBreakHint[T, O]) CollectRef(item *T) core.Signal { return a.ref(item) }

func (a *AltBreakHint[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return a.c.CollectMany(items)
}

func (a *AltBreakHint[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return a.c.CollectThenFinish(items)
}

func (a *AltBreakHint[T, O]) IntoCollector() core.Collector[T, O] { return a }
func (a *AltBreakHint[T, O]) Finish() O                           { return a.c.Finish() }
func (a *AltBreakHint[T, O]) BreakHint() core.Signal              { return a.hint(a.c) }
