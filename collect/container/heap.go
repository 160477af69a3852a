package container

import (
	"container/heap"

	"github.com/lguimbarda/min-collect/collect/core"
)

// Heap is a binary heap ordered by less: Pop returns the least item.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *Heap[T]) Len() int           { return len(h.items) }
func (h *Heap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *Heap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *Heap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

func (h *Heap[T]) Pop() any {
	n := len(h.items) - 1
	item := h.items[n]
	var zero T
	h.items[n] = zero
	h.items = h.items[:n]
	return item
}

// Peek returns the least item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// PopItem removes and returns the least item.
func (h *Heap[T]) PopItem() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(h).(T), true
}

// HeapCollector pushes items into a Heap.
type HeapCollector[T any] struct {
	h *Heap[T]
}

// NewHeap returns a collector building a new heap ordered by less.
func NewHeap[T any](less func(a, b T) bool) *HeapCollector[T] {
	return &HeapCollector[T]{h: &Heap[T]{less: less}}
}

// ExtendHeap returns a collector pushing into h.
func ExtendHeap[T any](h *Heap[T]) *HeapCollector[T] {
	return &HeapCollector[T]{h: h}
}

func (c *HeapCollector[T]) Collect(item T) core.Signal {
	heap.Push(c.h, item)
	return core.Continue
}

func (c *HeapCollector[T]) CollectRef(item *T) core.Signal {
	return c.Collect(*item)
}

// CollectMany appends every item and restores the heap order once.
func (c *HeapCollector[T]) CollectMany(items core.Iterator[T]) core.Signal {
	c.h.items = extend(c.h.items, items)
	heap.Init(c.h)
	return core.Continue
}

func (c *HeapCollector[T]) CollectThenFinish(items core.Iterator[T]) *Heap[T] {
	c.CollectMany(items)
	return c.h
}

func (c *HeapCollector[T]) IntoCollector() core.Collector[T, *Heap[T]] { return c }
func (c *HeapCollector[T]) Finish() *Heap[T]                           { return c.h }
func (c *HeapCollector[T]) BreakHint() core.Signal                     { return core.Continue }
