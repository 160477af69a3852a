package container

import (
	"container/list"

	"github.com/gammazero/deque"

	"github.com/lguimbarda/min-collect/collect/core"
)

// List pushes items to the back of a doubly linked list.
type List[T any] struct {
	l *list.List
}

// NewList returns a collector building a new list.
func NewList[T any]() *List[T] {
	return &List[T]{l: list.New()}
}

// ExtendList returns a collector pushing to the back of l.
func ExtendList[T any](l *list.List) *List[T] {
	return &List[T]{l: l}
}

func (l *List[T]) Collect(item T) core.Signal {
	l.l.PushBack(item)
	return core.Continue
}

func (l *List[T]) CollectRef(item *T) core.Signal {
	return l.Collect(*item)
}

func (l *List[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](l, items)
}

func (l *List[T]) CollectThenFinish(items core.Iterator[T]) *list.List {
	return core.FinishEach[T, *list.List](l, items)
}

func (l *List[T]) IntoCollector() core.Collector[T, *list.List] { return l }
func (l *List[T]) Finish() *list.List                           { return l.l }
func (l *List[T]) BreakHint() core.Signal                       { return core.Continue }

// Deque pushes items to the back of a ring-buffer deque.
type Deque[T any] struct {
	d *deque.Deque[T]
}

// NewDeque returns a collector building a new deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{d: new(deque.Deque[T])}
}

// ExtendDeque returns a collector pushing to the back of d.
func ExtendDeque[T any](d *deque.Deque[T]) *Deque[T] {
	return &Deque[T]{d: d}
}

func (d *Deque[T]) Collect(item T) core.Signal {
	d.d.PushBack(item)
	return core.Continue
}

func (d *Deque[T]) CollectRef(item *T) core.Signal {
	return d.Collect(*item)
}

func (d *Deque[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](d, items)
}

func (d *Deque[T]) CollectThenFinish(items core.Iterator[T]) *deque.Deque[T] {
	return core.FinishEach[T, *deque.Deque[T]](d, items)
}

func (d *Deque[T]) IntoCollector() core.Collector[T, *deque.Deque[T]] { return d }
func (d *Deque[T]) Finish() *deque.Deque[T]                           { return d.d }
func (d *Deque[T]) BreakHint() core.Signal                            { return core.Continue }
