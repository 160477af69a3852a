package adapt

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Copying turns a collector of values into a collector of pointers by
// copying each pointee.
type Copying[T, O any] struct {
	c core.Collector[T, O]
}

// NewCopying returns a Copying feeding c copies of the pointees.
func NewCopying[T, O any](c core.Collector[T, O]) *Copying[T, O] {
	return &Copying[T, O]{c: c}
}

func (c *Copying[T, O]) Collect(item *T) core.Signal {
	return c.c.Collect(*item)
}

func (c *Copying[T, O]) CollectMany(items core.Iterator[*T]) core.Signal {
	return c.c.CollectMany(pull.Map(items, deref[T]))
}

func (c *Copying[T, O]) CollectThenFinish(items core.Iterator[*T]) O {
	return c.c.CollectThenFinish(pull.Map(items, deref[T]))
}

func (c *Copying[T, O]) IntoCollector() core.Collector[*T, O] { return c }
func (c *Copying[T, O]) Finish() O                            { return c.c.Finish() }
func (c *Copying[T, O]) BreakHint() core.Signal               { return c.c.BreakHint() }

func deref[T any](p *T) T { return *p }

// Cloning turns a collector of values into a collector of pointers by
// handing it clone(item).
type Cloning[T, O any] struct {
	c     core.Collector[T, O]
	clone func(*T) T
}

// NewCloning returns a Cloning feeding c clone(item).
func NewCloning[T, O any](c core.Collector[T, O], clone func(*T) T) *Cloning[T, O] {
	return &Cloning[T, O]{c: c, clone: clone}
}

func (c *Cloning[T, O]) Collect(item *T) core.Signal {
	return c.c.Collect(c.clone(item))
}

func (c *Cloning[T, O]) CollectMany(items core.Iterator[*T]) core.Signal {
	return c.c.CollectMany(pull.Map(items, c.clone))
}

func (c *Cloning[T, O]) CollectThenFinish(items core.Iterator[*T]) O {
	return c.c.CollectThenFinish(pull.Map(items, c.clone))
}

func (c *Cloning[T, O]) IntoCollector() core.Collector[*T, O] { return c }
func (c *Cloning[T, O]) Finish() O                            { return c.c.Finish() }
func (c *Cloning[T, O]) BreakHint() core.Signal               { return c.c.BreakHint() }

// Funnel turns a collector of pointers into a collector of values. The
// pointer handed on is only valid for the duration of the step.
type Funnel[T, O any] struct {
	c core.Collector[*T, O]
}

// NewFunnel returns a Funnel feeding c pointers to the items.
func NewFunnel[T, O any](c core.Collector[*T, O]) *Funnel[T, O] {
	return &Funnel[T, O]{c: c}
}

func (f *Funnel[T, O]) Collect(item T) core.Signal {
	return f.c.Collect(&item)
}

func (f *Funnel[T, O]) CollectRef(item *T) core.Signal {
	return f.c.Collect(item)
}

func (f *Funnel[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](f, items)
}

func (f *Funnel[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return core.FinishEach[T, O](f, items)
}

func (f *Funnel[T, O]) IntoCollector() core.Collector[T, O] { return f }
func (f *Funnel[T, O]) Finish() O                           { return f.c.Finish() }
func (f *Funnel[T, O]) BreakHint() core.Signal              { return f.c.BreakHint() }
