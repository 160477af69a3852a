package fanout

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// project feeds a collector of U from items of T through f. It reads the
// item through a pointer, so it is a ref collector whatever it wraps.
type project[T, U, O any] struct {
	c core.Collector[U, O]
	f func(*T) U
}

func newProject[T, U, O any](c core.Collector[U, O], f func(*T) U) *project[T, U, O] {
	return &project[T, U, O]{c: c, f: f}
}

func (p *project[T, U, O]) Collect(item T) core.Signal     { return p.c.Collect(p.f(&item)) }
func (p *project[T, U, O]) CollectRef(item *T) core.Signal { return p.c.Collect(p.f(item)) }

func (p *project[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return p.c.CollectMany(pull.Map(items, p.byValue))
}

func (p *project[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return p.c.CollectThenFinish(pull.Map(items, p.byValue))
}

func (p *project[T, U, O]) IntoCollector() core.Collector[T, O] { return p }
func (p *project[T, U, O]) Finish() O                           { return p.c.Finish() }
func (p *project[T, U, O]) BreakHint() core.Signal              { return p.c.BreakHint() }

func (p *project[T, U, O]) byValue(item T) U { return p.f(&item) }
