// Package aggregate provides leaf collectors that reduce items to a
// single value: arithmetic, folds, searches and predicates.
//
// Collectors stop as early as their result is known: Find on a match,
// All on the first false, Any on the first true, TryFold when its step
// says so. The others accept items indefinitely.
package aggregate

import (
	"golang.org/x/exp/constraints"

	"github.com/lguimbarda/min-collect/collect/core"
)

// Number is any type with + and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum adds items. It starts from the additive identity, which for floats
// is negative zero so that the sum of only negative zeros stays negative.
type Sum[T Number] struct {
	total T
}

// NewSum returns a collector adding up the items.
func NewSum[T Number]() *Sum[T] {
	var zero T
	return &Sum[T]{total: -zero}
}

func (s *Sum[T]) Collect(item T) core.Signal {
	s.total += item
	return core.Continue
}

func (s *Sum[T]) CollectRef(item *T) core.Signal {
	s.total += *item
	return core.Continue
}

func (s *Sum[T]) CollectMany(items core.Iterator[T]) core.Signal {
	for {
		item, ok := items.Next()
		if !ok {
			return core.Continue
		}
		s.total += item
	}
}

func (s *Sum[T]) CollectThenFinish(items core.Iterator[T]) T {
	s.CollectMany(items)
	return s.total
}

func (s *Sum[T]) IntoCollector() core.Collector[T, T] { return s }
func (s *Sum[T]) Finish() T                           { return s.total }
func (s *Sum[T]) BreakHint() core.Signal              { return core.Continue }

// Product multiplies items, starting from one.
type Product[T Number] struct {
	total T
}

// NewProduct returns a collector multiplying the items.
func NewProduct[T Number]() *Product[T] {
	return &Product[T]{total: 1}
}

func (p *Product[T]) Collect(item T) core.Signal {
	p.total *= item
	return core.Continue
}

func (p *Product[T]) CollectRef(item *T) core.Signal {
	p.total *= *item
	return core.Continue
}

func (p *Product[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](p, items)
}

func (p *Product[T]) CollectThenFinish(items core.Iterator[T]) T {
	return core.FinishEach[T, T](p, items)
}

func (p *Product[T]) IntoCollector() core.Collector[T, T] { return p }
func (p *Product[T]) Finish() T                           { return p.total }
func (p *Product[T]) BreakHint() core.Signal              { return core.Continue }

// Count counts items.
type Count[T any] struct {
	n int
}

// NewCount returns a collector counting the items.
func NewCount[T any]() *Count[T] {
	return &Count[T]{}
}

func (c *Count[T]) Collect(T) core.Signal {
	c.n++
	return core.Continue
}

func (c *Count[T]) CollectRef(*T) core.Signal {
	c.n++
	return core.Continue
}

// CollectMany counts without producing items when the source can.
func (c *Count[T]) CollectMany(items core.Iterator[T]) core.Signal {
	c.n += core.Count(items)
	return core.Continue
}

func (c *Count[T]) CollectThenFinish(items core.Iterator[T]) int {
	c.CollectMany(items)
	return c.n
}

func (c *Count[T]) IntoCollector() core.Collector[T, int] { return c }
func (c *Count[T]) Finish() int                           { return c.n }
func (c *Count[T]) BreakHint() core.Signal                { return core.Continue }

// Last keeps the most recent item.
type Last[T any] struct {
	last core.Option[T]
}

// NewLast returns a collector keeping the last item.
func NewLast[T any]() *Last[T] {
	return &Last[T]{}
}

func (l *Last[T]) Collect(item T) core.Signal {
	l.last = core.Some(item)
	return core.Continue
}

func (l *Last[T]) CollectRef(item *T) core.Signal {
	return l.Collect(*item)
}

// CollectMany jumps to the last item when the source can.
func (l *Last[T]) CollectMany(items core.Iterator[T]) core.Signal {
	if item, ok := core.Last(items); ok {
		l.last = core.Some(item)
	}
	return core.Continue
}

func (l *Last[T]) CollectThenFinish(items core.Iterator[T]) core.Option[T] {
	l.CollectMany(items)
	return l.last
}

func (l *Last[T]) IntoCollector() core.Collector[T, core.Option[T]] { return l }
func (l *Last[T]) Finish() core.Option[T]                           { return l.last }
func (l *Last[T]) BreakHint() core.Signal                           { return core.Continue }

// Sink discards every item.
type Sink[T any] struct{}

// NewSink returns a collector that drops every item.
func NewSink[T any]() *Sink[T] {
	return &Sink[T]{}
}

func (Sink[T]) Collect(T) core.Signal     { return core.Continue }
func (Sink[T]) CollectRef(*T) core.Signal { return core.Continue }

func (Sink[T]) CollectMany(items core.Iterator[T]) core.Signal {
	core.Count(items)
	return core.Continue
}

func (s Sink[T]) CollectThenFinish(items core.Iterator[T]) struct{} {
	s.CollectMany(items)
	return struct{}{}
}

func (s Sink[T]) IntoCollector() core.Collector[T, struct{}] { return s }
func (Sink[T]) Finish() struct{}                             { return struct{}{} }
func (Sink[T]) BreakHint() core.Signal                       { return core.Continue }
