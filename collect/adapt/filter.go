package adapt

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Filter forwards the items for which pred holds. Rejected items return
// Continue.
type Filter[T, O any] struct {
	c    core.Collector[T, O]
	ref  func(*T) core.Signal
	pred func(*T) bool
}

// NewFilter returns a Filter forwarding the items matching pred to c.
func NewFilter[T, O any](c core.Collector[T, O], pred func(*T) bool) *Filter[T, O] {
	return &Filter[T, O]{c: c, ref: core.RefFunc(c), pred: pred}
}

func (f *Filter[T, O]) Collect(item T) core.Signal {
	if !f.pred(&item) {
		return core.Continue
	}
	return f.c.Collect(item)
}

func (f *Filter[T, O]) CollectRef(item *T) core.Signal {
	if !f.pred(item) {
		return core.Continue
	}
	return f.ref(item)
}

func (f *Filter[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return f.c.CollectMany(pull.Filter(items, f.pred))
}

func (f *Filter[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return f.c.CollectThenFinish(pull.Filter(items, f.pred))
}

func (f *Filter[T, O]) IntoCollector() core.Collector[T, O] { return f }
func (f *Filter[T, O]) Finish() O                           { return f.c.Finish() }
func (f *Filter[T, O]) BreakHint() core.Signal              { return f.c.BreakHint() }

// FilterMap forwards f(item) for every item where f succeeds. A rejected
// item reports the inner collector's break hint.
type FilterMap[T, U, O any] struct {
	c core.Collector[U, O]
	f func(T) (U, bool)
}

// NewFilterMap returns a FilterMap forwarding f(item) to c when f accepts it.
func NewFilterMap[T, U, O any](c core.Collector[U, O], f func(T) (U, bool)) *FilterMap[T, U, O] {
	return &FilterMap[T, U, O]{c: c, f: f}
}

func (m *FilterMap[T, U, O]) Collect(item T) core.Signal {
	out, ok := m.f(item)
	if !ok {
		return m.c.BreakHint()
	}
	return m.c.Collect(out)
}

func (m *FilterMap[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return m.c.CollectMany(pull.FilterMap(items, m.f))
}

func (m *FilterMap[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return m.c.CollectThenFinish(pull.FilterMap(items, m.f))
}

func (m *FilterMap[T, U, O]) IntoCollector() core.Collector[T, O] { return m }
func (m *FilterMap[T, U, O]) Finish() O                           { return m.c.Finish() }
func (m *FilterMap[T, U, O]) BreakHint() core.Signal              { return m.c.BreakHint() }
