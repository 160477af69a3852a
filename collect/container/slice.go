// Package container provides leaf collectors that push items into
// standard containers. They never stop on their own and all of them have
// a ref step that copies the item.
//
// Each container has an owning constructor (New*) whose collector builds
// a fresh container, and an extending form that appends to a container
// the caller already holds.
package container

import (
	"slices"

	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Slice appends items to a slice and finishes with it.
type Slice[T any] struct {
	items []T
}

// NewSlice returns a collector building a new slice.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// WithCapacity returns a collector building a slice with room for n items.
func WithCapacity[T any](n int) *Slice[T] {
	return &Slice[T]{items: make([]T, 0, n)}
}

func (s *Slice[T]) Collect(item T) core.Signal {
	s.items = append(s.items, item)
	return core.Continue
}

func (s *Slice[T]) CollectRef(item *T) core.Signal {
	s.items = append(s.items, *item)
	return core.Continue
}

func (s *Slice[T]) CollectMany(items core.Iterator[T]) core.Signal {
	s.items = extend(s.items, items)
	return core.Continue
}

func (s *Slice[T]) CollectThenFinish(items core.Iterator[T]) []T {
	return extend(s.items, items)
}

func (s *Slice[T]) IntoCollector() core.Collector[T, []T] { return s }
func (s *Slice[T]) Finish() []T                           { return s.items }
func (s *Slice[T]) BreakHint() core.Signal                { return core.Continue }

// Appender appends items to a slice owned by the caller and finishes with
// the pointer it was given.
type Appender[T any] struct {
	dst *[]T
}

// AppendTo returns a collector appending to *dst.
func AppendTo[T any](dst *[]T) *Appender[T] {
	return &Appender[T]{dst: dst}
}

func (a *Appender[T]) Collect(item T) core.Signal {
	*a.dst = append(*a.dst, item)
	return core.Continue
}

func (a *Appender[T]) CollectRef(item *T) core.Signal {
	*a.dst = append(*a.dst, *item)
	return core.Continue
}

func (a *Appender[T]) CollectMany(items core.Iterator[T]) core.Signal {
	*a.dst = extend(*a.dst, items)
	return core.Continue
}

func (a *Appender[T]) CollectThenFinish(items core.Iterator[T]) *[]T {
	a.CollectMany(items)
	return a.dst
}

func (a *Appender[T]) IntoCollector() core.Collector[T, *[]T] { return a }
func (a *Appender[T]) Finish() *[]T                           { return a.dst }
func (a *Appender[T]) BreakHint() core.Signal                 { return core.Continue }

// extend appends every item of it to dst, growing dst once from the
// lower size hint.
func extend[T any](dst []T, it core.Iterator[T]) []T {
	if src, ok := it.(*pull.Slice[T]); ok {
		dst = append(dst, src.Rest()...)
		src.AdvanceBy(src.Len())
		return dst
	}
	if lower, _ := it.SizeHint(); lower > 0 {
		dst = slices.Grow(dst, lower)
	}
	for {
		item, ok := it.Next()
		if !ok {
			return dst
		}
		dst = append(dst, item)
	}
}

// Concat appends every slice item to one slice.
type Concat[T any] struct {
	items []T
}

// NewConcat returns a collector concatenating slices.
func NewConcat[T any]() *Concat[T] {
	return &Concat[T]{}
}

func (c *Concat[T]) Collect(item []T) core.Signal {
	c.items = append(c.items, item...)
	return core.Continue
}

func (c *Concat[T]) CollectRef(item *[]T) core.Signal {
	return c.Collect(*item)
}

func (c *Concat[T]) CollectMany(items core.Iterator[[]T]) core.Signal {
	return core.CollectEach[[]T](c, items)
}

func (c *Concat[T]) CollectThenFinish(items core.Iterator[[]T]) []T {
	return core.FinishEach[[]T, []T](c, items)
}

func (c *Concat[T]) IntoCollector() core.Collector[[]T, []T] { return c }
func (c *Concat[T]) Finish() []T                             { return c.items }
func (c *Concat[T]) BreakHint() core.Signal                  { return core.Continue }
