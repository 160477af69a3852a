// Package nest provides collectors that group items into sub-batches.
//
// Items accumulate into an inner collector until it stops; its output
// then becomes one item for the outer collector and a fresh inner
// collector takes over. Inner collectors come from a factory, called
// once per sub-batch. The factory must eventually return a collector
// that accepts an item, or stepping never ends.
//
// The outer collector is fused. Bulk ingestion consults the outer
// collector once per sub-batch rotation, when the finished sub-batch is
// handed to it, rather than once per item.
package nest

import "github.com/lguimbarda/min-collect/collect/core"

// Nest closes the trailing sub-batch at finish and hands it to the outer
// collector, even when it is partial.
type Nest[T, I, O any] struct {
	outer    *core.Fuse[I, O]
	newInner func() core.Collector[T, I]
	inner    core.Collector[T, I]
}

// NewNest returns a Nest collecting groups built by newInner into outer.
func NewNest[T, I, O any](outer core.Collector[I, O], newInner func() core.Collector[T, I]) *Nest[T, I, O] {
	return &Nest[T, I, O]{outer: core.NewFuse(outer), newInner: newInner}
}

// live returns the current inner collector, creating one if needed.
// Inner collectors that refuse items from the start are finished and
// handed to the outer collector straight away.
func (n *Nest[T, I, O]) live() (core.Collector[T, I], core.Signal) {
	for n.inner == nil {
		inner := n.newInner()
		if inner.BreakHint().IsContinue() {
			n.inner = inner
			break
		}
		if n.outer.Collect(inner.Finish()).IsStop() {
			return nil, core.Stop
		}
	}
	return n.inner, core.Continue
}

// rotate hands the finished inner output to the outer collector.
func (n *Nest[T, I, O]) rotate() core.Signal {
	out := n.inner.Finish()
	n.inner = nil
	return n.outer.Collect(out)
}

func (n *Nest[T, I, O]) Collect(item T) core.Signal {
	if n.outer.Stopped() {
		return core.Stop
	}
	inner, s := n.live()
	if s.IsStop() {
		return core.Stop
	}
	if inner.Collect(item).IsStop() {
		return n.rotate()
	}
	return core.Continue
}

func (n *Nest[T, I, O]) CollectRef(item *T) core.Signal {
	if n.outer.Stopped() {
		return core.Stop
	}
	inner, s := n.live()
	if s.IsStop() {
		return core.Stop
	}
	if core.RefFunc(inner)(item).IsStop() {
		return n.rotate()
	}
	return core.Continue
}

func (n *Nest[T, I, O]) CollectMany(items core.Iterator[T]) core.Signal {
	if n.outer.Stopped() {
		return core.Stop
	}
	for {
		if n.inner == nil {
			item, ok := items.Next()
			if !ok {
				return core.Continue
			}
			if n.Collect(item).IsStop() {
				return core.Stop
			}
			continue
		}
		if n.inner.CollectMany(items).IsContinue() {
			return core.Continue
		}
		if n.rotate().IsStop() {
			return core.Stop
		}
	}
}

func (n *Nest[T, I, O]) CollectThenFinish(items core.Iterator[T]) O {
	n.CollectMany(items)
	return n.Finish()
}

func (n *Nest[T, I, O]) IntoCollector() core.Collector[T, O] { return n }

func (n *Nest[T, I, O]) Finish() O {
	if n.inner != nil {
		n.rotate()
	}
	return n.outer.Finish()
}

func (n *Nest[T, I, O]) BreakHint() core.Signal {
	return n.outer.BreakHint()
}

// NestExact only hands complete sub-batches to the outer collector. An
// unfinished trailing sub-batch is discarded at finish.
type NestExact[T, I, O any] struct {
	outer    *core.Fuse[I, O]
	newInner func() core.Collector[T, I]
	inner    core.Collector[T, I]
}

// NewNestExact returns a NestExact collecting groups built by newInner into
// outer.
func NewNestExact[T, I, O any](outer core.Collector[I, O], newInner func() core.Collector[T, I]) *NestExact[T, I, O] {
	return &NestExact[T, I, O]{outer: core.NewFuse(outer), newInner: newInner, inner: newInner()}
}

// rotate hands the inner output to the outer collector and starts a new
// sub-batch.
func (n *NestExact[T, I, O]) rotate() core.Signal {
	out := n.inner.Finish()
	n.inner = n.newInner()
	return n.outer.Collect(out)
}

// flush rotates past inner collectors that already refuse items.
func (n *NestExact[T, I, O]) flush() core.Signal {
	for n.inner.BreakHint().IsStop() {
		if n.rotate().IsStop() {
			return core.Stop
		}
	}
	return core.Continue
}

func (n *NestExact[T, I, O]) Collect(item T) core.Signal {
	if n.outer.Stopped() || n.flush().IsStop() {
		return core.Stop
	}
	if n.inner.Collect(item).IsStop() {
		return n.rotate()
	}
	return core.Continue
}

func (n *NestExact[T, I, O]) CollectRef(item *T) core.Signal {
	if n.outer.Stopped() || n.flush().IsStop() {
		return core.Stop
	}
	if core.RefFunc(n.inner)(item).IsStop() {
		return n.rotate()
	}
	return core.Continue
}

func (n *NestExact[T, I, O]) CollectMany(items core.Iterator[T]) core.Signal {
	if n.outer.Stopped() {
		return core.Stop
	}
	for {
		if n.flush().IsStop() {
			return core.Stop
		}
		if n.inner.CollectMany(items).IsContinue() {
			return core.Continue
		}
		if n.rotate().IsStop() {
			return core.Stop
		}
	}
}

func (n *NestExact[T, I, O]) CollectThenFinish(items core.Iterator[T]) O {
	n.CollectMany(items)
	return n.outer.Finish()
}

func (n *NestExact[T, I, O]) IntoCollector() core.Collector[T, O] { return n }

func (n *NestExact[T, I, O]) Finish() O {
	return n.outer.Finish()
}

func (n *NestExact[T, I, O]) BreakHint() core.Signal {
	return n.outer.BreakHint()
}
