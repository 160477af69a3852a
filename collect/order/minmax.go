// Package order provides leaf collectors that compare items: min, max,
// min-max and all-equal, each by natural order, by comparator or by key.
//
// Ties break the way sort.Stable would see them: the minimum is the
// first of several equal least items, the maximum the last of several
// equal greatest items.
package order

import (
	"cmp"
	"fmt"

	"github.com/lguimbarda/min-collect/collect/core"
)

// byKey turns a key extractor into a comparator.
func byKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Min keeps the first least item.
type Min[T any] struct {
	best core.Option[T]
	cmp  func(a, b T) int
}

// NewMin returns a collector of the least item. Of equal items the first is kept.
func NewMin[T cmp.Ordered]() *Min[T] {
	return NewMinBy(cmp.Compare[T])
}

// NewMinBy is NewMin ordered by cmp.
func NewMinBy[T any](cmp func(a, b T) int) *Min[T] {
	return &Min[T]{cmp: cmp}
}

// NewMinByKey is NewMin ordered by key.
func NewMinByKey[T any, K cmp.Ordered](key func(T) K) *Min[T] {
	return NewMinBy(byKey(key))
}

func (m *Min[T]) Collect(item T) core.Signal {
	if best, ok := m.best.Get(); !ok || m.cmp(item, best) < 0 {
		m.best = core.Some(item)
	}
	return core.Continue
}

func (m *Min[T]) CollectRef(item *T) core.Signal { return m.Collect(*item) }

func (m *Min[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](m, items)
}

func (m *Min[T]) CollectThenFinish(items core.Iterator[T]) core.Option[T] {
	return core.FinishEach[T, core.Option[T]](m, items)
}

func (m *Min[T]) IntoCollector() core.Collector[T, core.Option[T]] { return m }
func (m *Min[T]) Finish() core.Option[T]                           { return m.best }
func (m *Min[T]) BreakHint() core.Signal                           { return core.Continue }

// Max keeps the last greatest item.
type Max[T any] struct {
	best core.Option[T]
	cmp  func(a, b T) int
}

// NewMax returns a collector of the greatest item. Of equal items the last is kept.
func NewMax[T cmp.Ordered]() *Max[T] {
	return NewMaxBy(cmp.Compare[T])
}

// NewMaxBy is NewMax ordered by cmp.
func NewMaxBy[T any](cmp func(a, b T) int) *Max[T] {
	return &Max[T]{cmp: cmp}
}

// NewMaxByKey is NewMax ordered by key.
func NewMaxByKey[T any, K cmp.Ordered](key func(T) K) *Max[T] {
	return NewMaxBy(byKey(key))
}

func (m *Max[T]) Collect(item T) core.Signal {
	if best, ok := m.best.Get(); !ok || m.cmp(item, best) >= 0 {
		m.best = core.Some(item)
	}
	return core.Continue
}

func (m *Max[T]) CollectRef(item *T) core.Signal { return m.Collect(*item) }

func (m *Max[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](m, items)
}

func (m *Max[T]) CollectThenFinish(items core.Iterator[T]) core.Option[T] {
	return core.FinishEach[T, core.Option[T]](m, items)
}

func (m *Max[T]) IntoCollector() core.Collector[T, core.Option[T]] { return m }
func (m *Max[T]) Finish() core.Option[T]                           { return m.best }
func (m *Max[T]) BreakHint() core.Signal                           { return core.Continue }

// MinMaxKind tells how many items a min-max collector saw.
type MinMaxKind uint8

const (
	NoElements MinMaxKind = iota
	OneElement
	MinMaxElements
)

// MinMaxResult is the output of MinMax. With OneElement, Min and Max hold
// the same item.
type MinMaxResult[T any] struct {
	Kind     MinMaxKind
	Min, Max T
}

// Get returns the bounds and whether any item was seen.
func (r MinMaxResult[T]) Get() (lo, hi T, ok bool) {
	return r.Min, r.Max, r.Kind != NoElements
}

func (r MinMaxResult[T]) String() string {
	switch r.Kind {
	case NoElements:
		return "NoElements"
	case OneElement:
		return fmt.Sprintf("OneElement(%v)", r.Min)
	default:
		return fmt.Sprintf("MinMax(%v, %v)", r.Min, r.Max)
	}
}

// MinMax tracks both bounds. Items are compared in pairs, so it holds at
// most one pending item between steps.
type MinMax[T any] struct {
	res        MinMaxResult[T]
	pending    T
	hasPending bool
	cmp        func(a, b T) int
}

// NewMinMax returns a collector of both the least and the greatest item.
func NewMinMax[T cmp.Ordered]() *MinMax[T] {
	return NewMinMaxBy(cmp.Compare[T])
}

// NewMinMaxBy is NewMinMax ordered by cmp.
func NewMinMaxBy[T any](cmp func(a, b T) int) *MinMax[T] {
	return &MinMax[T]{cmp: cmp}
}

// NewMinMaxByKey is NewMinMax ordered by key.
func NewMinMaxByKey[T any, K cmp.Ordered](key func(T) K) *MinMax[T] {
	return NewMinMaxBy(byKey(key))
}

func (m *MinMax[T]) Collect(item T) core.Signal {
	switch m.res.Kind {
	case NoElements:
		m.res = MinMaxResult[T]{Kind: OneElement, Min: item, Max: item}
	case OneElement:
		first := m.res.Min
		if m.cmp(item, first) < 0 {
			m.res = MinMaxResult[T]{Kind: MinMaxElements, Min: item, Max: first}
		} else {
			m.res = MinMaxResult[T]{Kind: MinMaxElements, Min: first, Max: item}
		}
	default:
		if !m.hasPending {
			m.pending, m.hasPending = item, true
			return core.Continue
		}
		a := m.pending
		var zero T
		m.pending, m.hasPending = zero, false
		if m.cmp(item, a) < 0 {
			m.update(item, a)
		} else {
			m.update(a, item)
		}
	}
	return core.Continue
}

func (m *MinMax[T]) CollectRef(item *T) core.Signal { return m.Collect(*item) }

func (m *MinMax[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](m, items)
}

func (m *MinMax[T]) CollectThenFinish(items core.Iterator[T]) MinMaxResult[T] {
	return core.FinishEach[T, MinMaxResult[T]](m, items)
}

func (m *MinMax[T]) IntoCollector() core.Collector[T, MinMaxResult[T]] { return m }

func (m *MinMax[T]) Finish() MinMaxResult[T] {
	if m.hasPending {
		m.update(m.pending, m.pending)
		m.hasPending = false
	}
	return m.res
}

func (m *MinMax[T]) BreakHint() core.Signal { return core.Continue }

// update folds an ordered candidate pair into the bounds.
func (m *MinMax[T]) update(lo, hi T) {
	if m.cmp(lo, m.res.Min) < 0 {
		m.res.Min = lo
	}
	if m.cmp(hi, m.res.Max) >= 0 {
		m.res.Max = hi
	}
}

// AllEqual reports whether every item equals the first. It stops on the
// first item that differs.
type AllEqual[T comparable] struct {
	first    core.Option[T]
	mismatch bool
}

// NewAllEqual returns a collector reporting whether all items are equal.
// It stops on the first item that differs.
func NewAllEqual[T comparable]() *AllEqual[T] {
	return &AllEqual[T]{}
}

func (a *AllEqual[T]) Collect(item T) core.Signal {
	if a.mismatch {
		return core.Stop
	}
	first, ok := a.first.Get()
	if !ok {
		a.first = core.Some(item)
		return core.Continue
	}
	if item != first {
		a.mismatch = true
		return core.Stop
	}
	return core.Continue
}

func (a *AllEqual[T]) CollectRef(item *T) core.Signal { return a.Collect(*item) }

func (a *AllEqual[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](a, items)
}

func (a *AllEqual[T]) CollectThenFinish(items core.Iterator[T]) bool {
	return core.FinishEach[T, bool](a, items)
}

func (a *AllEqual[T]) IntoCollector() core.Collector[T, bool] { return a }
func (a *AllEqual[T]) Finish() bool                           { return !a.mismatch }
func (a *AllEqual[T]) BreakHint() core.Signal                 { return core.SignalOf(a.mismatch) }
