package pull

import "github.com/lguimbarda/min-collect/collect/core"

// addHint adds two size hints, keeping an unknown upper bound unknown.
func addHint(lo1, up1, lo2, up2 int) (int, int) {
	if up1 < 0 || up2 < 0 {
		return lo1 + lo2, -1
	}
	return lo1 + lo2, up1 + up2
}

// PrependIter yields one item before the rest of an iterator.
type PrependIter[T any] struct {
	head    T
	hasHead bool
	rest    core.Iterator[T]
}

// Prepend returns an iterator yielding head and then the items of rest.
func Prepend[T any](head T, rest core.Iterator[T]) *PrependIter[T] {
	return &PrependIter[T]{head: head, hasHead: true, rest: rest}
}

func (p *PrependIter[T]) Next() (T, bool) {
	if p.hasHead {
		p.hasHead = false
		item := p.head
		var zero T
		p.head = zero
		return item, true
	}
	return p.rest.Next()
}

func (p *PrependIter[T]) SizeHint() (int, int) {
	lo, up := p.rest.SizeHint()
	if !p.hasHead {
		return lo, up
	}
	return addHint(1, 1, lo, up)
}

// ChainIter yields the items of a and then the items of b.
type ChainIter[T any] struct {
	a, b  core.Iterator[T]
	aDone bool
}

// Chain concatenates two iterators.
func Chain[T any](a, b core.Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{a: a, b: b}
}

func (c *ChainIter[T]) Next() (T, bool) {
	if !c.aDone {
		if item, ok := c.a.Next(); ok {
			return item, true
		}
		c.aDone = true
	}
	return c.b.Next()
}

func (c *ChainIter[T]) SizeHint() (int, int) {
	lo2, up2 := c.b.SizeHint()
	if c.aDone {
		return lo2, up2
	}
	lo1, up1 := c.a.SizeHint()
	return addHint(lo1, up1, lo2, up2)
}

// TakeIter yields at most n items of the underlying iterator and never
// pulls more than n.
type TakeIter[T any] struct {
	it        core.Iterator[T]
	remaining int
}

// Take limits it to n items.
func Take[T any](it core.Iterator[T], n int) *TakeIter[T] {
	return &TakeIter[T]{it: it, remaining: max(n, 0)}
}

// Remaining reports how many more items may be yielded.
func (t *TakeIter[T]) Remaining() int {
	return t.remaining
}

func (t *TakeIter[T]) Next() (T, bool) {
	var zero T
	if t.remaining == 0 {
		return zero, false
	}
	item, ok := t.it.Next()
	if !ok {
		return zero, false
	}
	t.remaining--
	return item, true
}

func (t *TakeIter[T]) SizeHint() (int, int) {
	if t.remaining == 0 {
		return 0, 0
	}
	lo, up := t.it.SizeHint()
	lo = min(lo, t.remaining)
	if up < 0 || up > t.remaining {
		up = t.remaining
	}
	return lo, up
}

// TakeWhileIter yields items while pred holds. The first failing item is
// consumed and dropped, after which the iterator reports exhaustion
// without pulling again.
type TakeWhileIter[T any] struct {
	it     core.Iterator[T]
	pred   func(*T) bool
	failed bool
}

// TakeWhile yields the leading items of it that satisfy pred.
func TakeWhile[T any](it core.Iterator[T], pred func(*T) bool) *TakeWhileIter[T] {
	return &TakeWhileIter[T]{it: it, pred: pred}
}

// Failed reports whether an item failed the predicate.
func (t *TakeWhileIter[T]) Failed() bool {
	return t.failed
}

func (t *TakeWhileIter[T]) Next() (T, bool) {
	var zero T
	if t.failed {
		return zero, false
	}
	item, ok := t.it.Next()
	if !ok {
		return zero, false
	}
	if !t.pred(&item) {
		t.failed = true
		return zero, false
	}
	return item, true
}

func (t *TakeWhileIter[T]) SizeHint() (int, int) {
	if t.failed {
		return 0, 0
	}
	_, up := t.it.SizeHint()
	return 0, up
}

// MapWhileIter maps items while f succeeds. The first failing item is
// consumed and the iterator then reports exhaustion.
type MapWhileIter[T, U any] struct {
	it     core.Iterator[T]
	f      func(T) (U, bool)
	failed bool
}

// MapWhile maps the leading items of it for which f succeeds.
func MapWhile[T, U any](it core.Iterator[T], f func(T) (U, bool)) *MapWhileIter[T, U] {
	return &MapWhileIter[T, U]{it: it, f: f}
}

// Failed reports whether f rejected an item.
func (m *MapWhileIter[T, U]) Failed() bool {
	return m.failed
}

func (m *MapWhileIter[T, U]) Next() (U, bool) {
	var zero U
	if m.failed {
		return zero, false
	}
	item, ok := m.it.Next()
	if !ok {
		return zero, false
	}
	out, ok := m.f(item)
	if !ok {
		m.failed = true
		return zero, false
	}
	return out, true
}

func (m *MapWhileIter[T, U]) SizeHint() (int, int) {
	if m.failed {
		return 0, 0
	}
	_, up := m.it.SizeHint()
	return 0, up
}

// MapIter applies f to each item.
type MapIter[T, U any] struct {
	it core.Iterator[T]
	f  func(T) U
}

// Map returns an iterator over f applied to the items of it.
func Map[T, U any](it core.Iterator[T], f func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{it: it, f: f}
}

func (m *MapIter[T, U]) Next() (U, bool) {
	item, ok := m.it.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return m.f(item), true
}

func (m *MapIter[T, U]) SizeHint() (int, int) {
	return m.it.SizeHint()
}

// FilterIter yields the items for which pred holds.
type FilterIter[T any] struct {
	it   core.Iterator[T]
	pred func(*T) bool
}

// Filter returns an iterator over the items of it satisfying pred.
func Filter[T any](it core.Iterator[T], pred func(*T) bool) *FilterIter[T] {
	return &FilterIter[T]{it: it, pred: pred}
}

func (f *FilterIter[T]) Next() (T, bool) {
	for {
		item, ok := f.it.Next()
		if !ok {
			return item, false
		}
		if f.pred(&item) {
			return item, true
		}
	}
}

func (f *FilterIter[T]) SizeHint() (int, int) {
	_, up := f.it.SizeHint()
	return 0, up
}

// FilterMapIter maps and filters in one step.
type FilterMapIter[T, U any] struct {
	it core.Iterator[T]
	f  func(T) (U, bool)
}

// FilterMap yields f(item) for every item where f succeeds.
func FilterMap[T, U any](it core.Iterator[T], f func(T) (U, bool)) *FilterMapIter[T, U] {
	return &FilterMapIter[T, U]{it: it, f: f}
}

func (f *FilterMapIter[T, U]) Next() (U, bool) {
	for {
		item, ok := f.it.Next()
		if !ok {
			var zero U
			return zero, false
		}
		if out, ok := f.f(item); ok {
			return out, true
		}
	}
}

func (f *FilterMapIter[T, U]) SizeHint() (int, int) {
	_, up := f.it.SizeHint()
	return 0, up
}

// FlatMapIter yields the elements of f(item) for each item.
type FlatMapIter[T, U any] struct {
	it  core.Iterator[T]
	f   func(T) []U
	cur []U
}

// FlatMap flattens the slices returned by f.
func FlatMap[T, U any](it core.Iterator[T], f func(T) []U) *FlatMapIter[T, U] {
	return &FlatMapIter[T, U]{it: it, f: f}
}

// Flatten yields the elements of each slice in turn.
func Flatten[T any](it core.Iterator[[]T]) *FlatMapIter[[]T, T] {
	return FlatMap(it, func(s []T) []T { return s })
}

func (f *FlatMapIter[T, U]) Next() (U, bool) {
	for len(f.cur) == 0 {
		item, ok := f.it.Next()
		if !ok {
			var zero U
			return zero, false
		}
		f.cur = f.f(item)
	}
	out := f.cur[0]
	f.cur = f.cur[1:]
	return out, true
}

func (f *FlatMapIter[T, U]) SizeHint() (int, int) {
	if _, up := f.it.SizeHint(); up == 0 {
		return len(f.cur), len(f.cur)
	}
	return len(f.cur), -1
}

// InspectIter calls f on each item before yielding it.
type InspectIter[T any] struct {
	it core.Iterator[T]
	f  func(*T)
}

// Inspect calls f with a pointer to each item before it is yielded. f
// may modify the item.
func Inspect[T any](it core.Iterator[T], f func(*T)) *InspectIter[T] {
	return &InspectIter[T]{it: it, f: f}
}

func (i *InspectIter[T]) Next() (T, bool) {
	item, ok := i.it.Next()
	if ok {
		i.f(&item)
	}
	return item, ok
}

func (i *InspectIter[T]) SizeHint() (int, int) {
	return i.it.SizeHint()
}
