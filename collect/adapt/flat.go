package adapt

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// FlatMap forwards every element of f(item). Each item is handed to the
// inner collector's bulk path.
type FlatMap[T, U, O any] struct {
	c core.Collector[U, O]
	f func(T) []U
}

// NewFlatMap returns a FlatMap forwarding every element of f(item) to c.
func NewFlatMap[T, U, O any](c core.Collector[U, O], f func(T) []U) *FlatMap[T, U, O] {
	return &FlatMap[T, U, O]{c: c, f: f}
}

// NewFlatten forwards the elements of each slice item.
func NewFlatten[T, O any](c core.Collector[T, O]) *FlatMap[[]T, T, O] {
	return NewFlatMap(c, func(s []T) []T { return s })
}

func (m *FlatMap[T, U, O]) Collect(item T) core.Signal {
	return m.c.CollectMany(pull.FromSlice(m.f(item)))
}

func (m *FlatMap[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return m.c.CollectMany(pull.FlatMap(items, m.f))
}

func (m *FlatMap[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return m.c.CollectThenFinish(pull.FlatMap(items, m.f))
}

func (m *FlatMap[T, U, O]) IntoCollector() core.Collector[T, O] { return m }
func (m *FlatMap[T, U, O]) Finish() O                           { return m.c.Finish() }
func (m *FlatMap[T, U, O]) BreakHint() core.Signal              { return m.c.BreakHint() }
