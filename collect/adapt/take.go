package adapt

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Take forwards at most n items. It returns Stop on the step that uses up
// the last slot, whatever the inner collector answered.
type Take[T, O any] struct {
	c         core.Collector[T, O]
	ref       func(*T) core.Signal
	remaining int
}

// NewTake returns a Take forwarding at most n items to c. A non-positive n
// stops at once.
func NewTake[T, O any](c core.Collector[T, O], n int) *Take[T, O] {
	return &Take[T, O]{c: c, ref: core.RefFunc(c), remaining: max(n, 0)}
}

// Remaining returns how many more items may be forwarded.
func (t *Take[T, O]) Remaining() int {
	return t.remaining
}

func (t *Take[T, O]) Collect(item T) core.Signal {
	if t.remaining == 0 {
		return core.Stop
	}
	t.remaining--
	s := t.c.Collect(item)
	if t.remaining == 0 {
		return core.Stop
	}
	return s
}

func (t *Take[T, O]) CollectRef(item *T) core.Signal {
	if t.remaining == 0 {
		return core.Stop
	}
	t.remaining--
	s := t.ref(item)
	if t.remaining == 0 {
		return core.Stop
	}
	return s
}

// CollectMany trusts the lower size hint: the first lower items are
// forwarded without tracking, the rest through a counting iterator.
// It never pulls more than the remaining budget.
func (t *Take[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	lower, _ := items.SizeHint()
	if t.remaining <= lower {
		n := t.remaining
		t.remaining = 0
		t.c.CollectMany(pull.Take(items, n))
		return core.Stop
	}

	t.remaining -= lower
	if t.c.CollectMany(pull.Take(items, lower)).IsStop() {
		return core.Stop
	}

	rest := pull.Take(items, t.remaining)
	s := t.c.CollectMany(rest)
	t.remaining = rest.Remaining()
	if t.remaining == 0 {
		return core.Stop
	}
	return s
}

func (t *Take[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return t.c.CollectThenFinish(pull.Take(items, t.remaining))
}

func (t *Take[T, O]) IntoCollector() core.Collector[T, O] { return t }
func (t *Take[T, O]) Finish() O                           { return t.c.Finish() }

func (t *Take[T, O]) BreakHint() core.Signal {
	if t.remaining == 0 {
		return core.Stop
	}
	return t.c.BreakHint()
}

// Skip drops the first n items and forwards the rest.
type Skip[T, O any] struct {
	c         core.Collector[T, O]
	ref       func(*T) core.Signal
	remaining int
}

// NewSkip returns a Skip dropping the first n items and forwarding the
// rest to c.
func NewSkip[T, O any](c core.Collector[T, O], n int) *Skip[T, O] {
	return &Skip[T, O]{c: c, ref: core.RefFunc(c), remaining: max(n, 0)}
}

func (s *Skip[T, O]) Collect(item T) core.Signal {
	if s.remaining > 0 {
		return s.drop()
	}
	return s.c.Collect(item)
}

func (s *Skip[T, O]) CollectRef(item *T) core.Signal {
	if s.remaining > 0 {
		return s.drop()
	}
	return s.ref(item)
}

// CollectMany skips in bulk, trusting the lower size hint. An iterator
// that ends while skipping is not pulled again.
func (s *Skip[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	if s.BreakHint().IsStop() {
		return core.Stop
	}

	lower, _ := items.SizeHint()
	if s.remaining <= lower {
		n := s.remaining
		s.remaining = 0
		if !core.Advance(items, n) {
			return core.Continue
		}
		return s.c.CollectMany(items)
	}

	s.remaining -= lower
	ok := core.Advance(items, lower)
	for ok && s.remaining > 0 {
		if _, ok = items.Next(); ok {
			s.remaining--
		}
	}
	if !ok {
		return core.Continue
	}
	return s.c.CollectMany(items)
}

func (s *Skip[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	if s.BreakHint().IsStop() || !core.Advance(items, s.remaining) {
		return s.c.Finish()
	}
	return s.c.CollectThenFinish(items)
}

func (s *Skip[T, O]) IntoCollector() core.Collector[T, O] { return s }
func (s *Skip[T, O]) Finish() O                           { return s.c.Finish() }
func (s *Skip[T, O]) BreakHint() core.Signal              { return s.c.BreakHint() }

func (s *Skip[T, O]) drop() core.Signal {
	s.remaining--
	if s.remaining == 0 && s.c.BreakHint().IsStop() {
		return core.Stop
	}
	return core.Continue
}

// TakeWhile forwards items while pred holds. The first failing item is
// consumed without being forwarded and Stop is returned. TakeWhile does
// not latch; compose a Fuse to make it monotone.
type TakeWhile[T, O any] struct {
	c    core.Collector[T, O]
	ref  func(*T) core.Signal
	pred func(*T) bool
}

// NewTakeWhile returns a TakeWhile forwarding items to c while pred holds.
func NewTakeWhile[T, O any](c core.Collector[T, O], pred func(*T) bool) *TakeWhile[T, O] {
	return &TakeWhile[T, O]{c: c, ref: core.RefFunc(c), pred: pred}
}

func (t *TakeWhile[T, O]) Collect(item T) core.Signal {
	if !t.pred(&item) {
		return core.Stop
	}
	return t.c.Collect(item)
}

func (t *TakeWhile[T, O]) CollectRef(item *T) core.Signal {
	if !t.pred(item) {
		return core.Stop
	}
	return t.ref(item)
}

func (t *TakeWhile[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	tw := pull.TakeWhile(items, t.pred)
	s := t.c.CollectMany(tw)
	if tw.Failed() {
		return core.Stop
	}
	return s
}

func (t *TakeWhile[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	return t.c.CollectThenFinish(pull.TakeWhile(items, t.pred))
}

func (t *TakeWhile[T, O]) IntoCollector() core.Collector[T, O] { return t }
func (t *TakeWhile[T, O]) Finish() O                           { return t.c.Finish() }
func (t *TakeWhile[T, O]) BreakHint() core.Signal              { return t.c.BreakHint() }

// MapWhile forwards f(item) while f succeeds. The first failing item is
// consumed and Stop is returned.
type MapWhile[T, U, O any] struct {
	c core.Collector[U, O]
	f func(T) (U, bool)
}

// NewMapWhile returns a MapWhile forwarding f(item) to c while f accepts.
func NewMapWhile[T, U, O any](c core.Collector[U, O], f func(T) (U, bool)) *MapWhile[T, U, O] {
	return &MapWhile[T, U, O]{c: c, f: f}
}

func (m *MapWhile[T, U, O]) Collect(item T) core.Signal {
	out, ok := m.f(item)
	if !ok {
		return core.Stop
	}
	return m.c.Collect(out)
}

func (m *MapWhile[T, U, O]) CollectMany(items core.Iterator[T]) core.Signal {
	mw := pull.MapWhile(items, m.f)
	s := m.c.CollectMany(mw)
	if mw.Failed() {
		return core.Stop
	}
	return s
}

func (m *MapWhile[T, U, O]) CollectThenFinish(items core.Iterator[T]) O {
	return m.c.CollectThenFinish(pull.MapWhile(items, m.f))
}

func (m *MapWhile[T, U, O]) IntoCollector() core.Collector[T, O] { return m }
func (m *MapWhile[T, U, O]) Finish() O                           { return m.c.Finish() }
func (m *MapWhile[T, U, O]) BreakHint() core.Signal              { return m.c.BreakHint() }
