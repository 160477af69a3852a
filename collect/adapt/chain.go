package adapt

import "github.com/lguimbarda/min-collect/collect/core"

// Chain forwards items to the first collector until it stops and then to
// the second. The first collector is fused so its termination stays
// latched across steps.
type Chain[T, O1, O2 any] struct {
	c1   *core.Fuse[T, O1]
	c2   core.Collector[T, O2]
	ref2 func(*T) core.Signal
}

// NewChain returns a Chain feeding c1 until it stops and c2 afterwards.
func NewChain[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2]) *Chain[T, O1, O2] {
	return &Chain[T, O1, O2]{c1: core.NewFuse(c1), c2: c2, ref2: core.RefFunc(c2)}
}

func (c *Chain[T, O1, O2]) Collect(item T) core.Signal {
	if c.c1.Stopped() {
		return c.c2.Collect(item)
	}
	if c.c1.Collect(item).IsContinue() {
		return core.Continue
	}
	return c.c2.BreakHint()
}

func (c *Chain[T, O1, O2]) CollectRef(item *T) core.Signal {
	if c.c1.Stopped() {
		return c.ref2(item)
	}
	if c.c1.CollectRef(item).IsContinue() {
		return core.Continue
	}
	return c.c2.BreakHint()
}

func (c *Chain[T, O1, O2]) CollectMany(items core.Iterator[T]) core.Signal {
	if c.c1.CollectMany(items).IsContinue() {
		return core.Continue
	}
	return c.c2.CollectMany(items)
}

func (c *Chain[T, O1, O2]) CollectThenFinish(items core.Iterator[T]) core.Pair[O1, O2] {
	first := c.c1.CollectThenFinish(items)
	return core.PairOf(first, c.c2.CollectThenFinish(items))
}

func (c *Chain[T, O1, O2]) IntoCollector() core.Collector[T, core.Pair[O1, O2]] { return c }

func (c *Chain[T, O1, O2]) Finish() core.Pair[O1, O2] {
	return core.PairOf(c.c1.Finish(), c.c2.Finish())
}

func (c *Chain[T, O1, O2]) BreakHint() core.Signal {
	return core.Both(c.c1.BreakHint(), c.c2.BreakHint())
}
