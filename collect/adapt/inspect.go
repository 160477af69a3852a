package adapt

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Inspect calls f with each item before forwarding it.
type Inspect[T, O any] struct {
	c   core.Collector[T, O]
	ref func(*T) core.Signal
	f   func(T)
}

// NewInspect returns an Inspect calling f on each item before c sees it.
func NewInspect[T, O any](c core.Collector[T, O], f func(T)) *Inspect[T, O] {
	return &Inspect[T, O]{c: c, ref: core.RefFunc(c), f: f}
}

func (i *Inspect[T, O]) Collect(item T) core.Signal {
	i.f(item)
	return i.c.Collect(item)
}

func (i *Inspect[T, O]) CollectRef(item *T) core.Signal {
	i.f(*item)
	return i.ref(item)
}

func (i *Inspect[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return i.c.CollectMany(pull.Inspect(items, i.inspect))
}

func (i *Inspect[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return i.c.CollectThenFinish(pull.Inspect(items, i.inspect))
}

func (i *Inspect[T, O]) IntoCollector() core.Collector[T, O] { return i }
func (i *Inspect[T, O]) Finish() O                           { return i.c.Finish() }
func (i *Inspect[T, O]) BreakHint() core.Signal              { return i.c.BreakHint() }

func (i *Inspect[T, O]) inspect(item *T) { i.f(*item) }

// Update lets f modify each item in place before forwarding it.
type Update[T, O any] struct {
	c   core.Collector[T, O]
	ref func(*T) core.Signal
	f   func(*T)
}

// NewUpdate returns an Update letting f change each item before c sees it.
func NewUpdate[T, O any](c core.Collector[T, O], f func(*T)) *Update[T, O] {
	return &Update[T, O]{c: c, ref: core.RefFunc(c), f: f}
}

func (u *Update[T, O]) Collect(item T) core.Signal {
	u.f(&item)
	return u.c.Collect(item)
}

func (u *Update[T, O]) CollectRef(item *T) core.Signal {
	u.f(item)
	return u.ref(item)
}

func (u *Update[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return u.c.CollectMany(pull.Inspect(items, u.f))
}

func (u *Update[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return u.c.CollectThenFinish(pull.Inspect(items, u.f))
}

func (u *Update[T, O]) IntoCollector() core.Collector[T, O] { return u }
func (u *Update[T, O]) Finish() O                           { return u.c.Finish() }
func (u *Update[T, O]) BreakHint() core.Signal              { return u.c.BreakHint() }

// Enumerate pairs each item with its index, counting from zero across
// all collect methods.
type Enumerate[T, O any] struct {
	c   core.Collector[core.Pair[int, T], O]
	idx int
}

// NewEnumerate returns an Enumerate pairing each item with its index.
func NewEnumerate[T, O any](c core.Collector[core.Pair[int, T], O]) *Enumerate[T, O] {
	return &Enumerate[T, O]{c: c}
}

func (e *Enumerate[T, O]) Collect(item T) core.Signal {
	return e.c.Collect(e.next(item))
}

func (e *Enumerate[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return e.c.CollectMany(pull.Map(items, e.next))
}

func (e *Enumerate[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return e.c.CollectThenFinish(pull.Map(items, e.next))
}

func (e *Enumerate[T, O]) IntoCollector() core.Collector[T, O] { return e }
func (e *Enumerate[T, O]) Finish() O                           { return e.c.Finish() }
func (e *Enumerate[T, O]) BreakHint() core.Signal              { return e.c.BreakHint() }

func (e *Enumerate[T, O]) next(item T) core.Pair[int, T] {
	p := core.PairOf(e.idx, item)
	e.idx++
	return p
}
