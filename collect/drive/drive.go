// Package drive provides the inverted driver: the caller pulls items from
// a Driver as from any iterator while a collector observes every item it
// yields.
//
// The collector is fused and only borrows the items, so it must be a ref
// collector. Once it stops, the Driver keeps yielding items without
// observing them, and its short-circuit operations (Count, Last, Nth,
// Fold) hand the rest of the work straight to the source.
package drive

import (
	"iter"

	"github.com/lguimbarda/min-collect/collect/core"
)

// Driver is an iterator over a source that shows every yielded item to a
// collector first.
type Driver[T any] struct {
	src     core.Iterator[T]
	observe func(*T) core.Signal
	stopped bool
	done    bool
}

// Observe hands a Driver over items to pull, then finishes c. It returns
// c's output together with pull's result.
func Observe[T, O, R any](items core.Iterator[T], c core.RefCollector[T, O], pull func(*Driver[T]) R) (O, R) {
	d := newDriver(items, c)
	r := pull(d)
	return c.Finish(), r
}

func newDriver[T, O any](items core.Iterator[T], c core.RefCollector[T, O]) *Driver[T] {
	return &Driver[T]{
		src:     items,
		observe: c.CollectRef,
		stopped: c.BreakHint().IsStop(),
	}
}

// Stopped reports whether the collector has stopped observing.
func (d *Driver[T]) Stopped() bool {
	return d.stopped
}

// see shows item to the collector unless it already stopped.
func (d *Driver[T]) see(item *T) {
	if !d.stopped && d.observe(item).IsStop() {
		d.stopped = true
	}
}

func (d *Driver[T]) Next() (T, bool) {
	var zero T
	if d.done {
		return zero, false
	}
	item, ok := d.src.Next()
	if !ok {
		d.done = true
		return zero, false
	}
	d.see(&item)
	return item, true
}

func (d *Driver[T]) SizeHint() (int, int) {
	if d.done {
		return 0, 0
	}
	return d.src.SizeHint()
}

// Count drains the driver and returns how many items it yielded. Once
// the collector stops, the rest is counted by the source.
func (d *Driver[T]) Count() int {
	return Fold(d, 0, func(n int, _ T) int { return n + 1 }, func(n int, rest core.Iterator[T]) int {
		return n + core.Count(rest)
	})
}

// Last drains the driver and returns the final item.
func (d *Driver[T]) Last() (T, bool) {
	type last struct {
		item T
		ok   bool
	}
	l := Fold(d, last{}, func(_ last, item T) last { return last{item, true} }, func(l last, rest core.Iterator[T]) last {
		if item, ok := core.Last(rest); ok {
			return last{item, true}
		}
		return l
	})
	return l.item, l.ok
}

// Nth skips n items and returns the next one. Skipped items are still
// observed until the collector stops; after that they are skipped by the
// source.
func (d *Driver[T]) Nth(n int) (T, bool) {
	for ; n > 0; n-- {
		if d.stopped {
			if !core.Advance(d.src, n) {
				d.done = true
				var zero T
				return zero, false
			}
			break
		}
		if _, ok := d.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return d.Next()
}

// All returns an iter.Seq over the remaining items.
func (d *Driver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Fold drains d through f. Once the collector stops, forward receives the
// accumulator and the untouched rest of the source; pass nil to keep
// folding item by item.
func Fold[T, A any](d *Driver[T], init A, f func(A, T) A, forward func(A, core.Iterator[T]) A) A {
	acc := init
	for !d.done {
		if d.stopped && forward != nil {
			d.done = true
			return forward(acc, d.src)
		}
		item, ok := d.Next()
		if !ok {
			break
		}
		acc = f(acc, item)
	}
	return acc
}
