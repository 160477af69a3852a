// Package adapt provides the single-child collector adapters: each one
// wraps a collector and forwards items to it with transformed semantics.
//
// Every adapter overrides CollectMany and CollectThenFinish by wrapping
// the source in the matching pull iterator, so the inner collector's own
// bulk path runs and no item is pulled that the adapter would reject.
package adapt

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Map applies f to each item before forwarding it. The mapped value is
// new, so Map has no ref step.
type Map[T, U, O any] struct {
	c core.Collector[U, O]
	f func(T) U
}

// NewMap returns a Map forwarding f(item) to c.
func NewMap[T, U, O any](c core.Collector[U, O], f func(T) U) *Map[T, U, O] {
	return &Map[T, U, O]{c: c, f: f}
}

func (m *Map[T, U, O]) Collect(item T) core.Signal {
	return m.c.Collect(m.f(item))
}

func (m *Map[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return m.c.CollectMany(pull.Map(items, m.f))
}

func (m *Map[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return m.c.CollectThenFinish(pull.Map(items, m.f))
}

func (m *Map[T, U, O]) IntoCollector() core.Collector[T, O] { return m }
func (m *Map[T, U, O]) Finish() O                           { return m.c.Finish() }
func (m *Map[T, U, O]) BreakHint() core.Signal              { return m.c.BreakHint() }

// MapOutput applies f to the output at finish time and forwards every
// other operation unchanged.
type MapOutput[T, O, R any] struct {
	c   core.Collector[T, O]
	ref func(*T) core.Signal
	f   func(O) R
}

// NewMapOutput returns a MapOutput applying f to the output of c.
func NewMapOutput[T, O, R any](c core.Collector[T, O], f func(O) R) *MapOutput[T, O, R] {
	return &MapOutput[T, O, R]{c: c, ref: core.RefFunc(c), f: f}
}

func (m *MapOutput[T, O, R]) Collect(item T) core.Signal     { return m.c.Collect(item) }
func (m *MapOutput[T, O, R]) CollectRef(item *T) core.Signal { return m.ref(item) }

func (m *MapOutput[T, O, R]) CollectMany(items core.Iterator[T]) core.Signal {
	return m.c.CollectMany(items)
}

func (m *MapOutput[T, O, R]) CollectThenFinish(items core.Iterator[T]) R {
	return m.f(m.c.CollectThenFinish(items))
}

func (m *MapOutput[T, O, R]) IntoCollector() core.Collector[T, R] { return m }
func (m *MapOutput[T, O, R]) Finish() R                           { return m.f(m.c.Finish()) }
func (m *MapOutput[T, O, R]) BreakHint() core.Signal              { return m.c.BreakHint() }
