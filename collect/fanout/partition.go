package fanout

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Partition routes every item to exactly one child: to the first when
// pred holds and to the second otherwise. Both children are fused; it
// stops once both have stopped. Once one side stops, the remaining
// items meant for the other side go through that side's bulk path.
type Partition[T, O1, O2 any] struct {
	ct   *core.Fuse[T, O1]
	cf   *core.Fuse[T, O2]
	pred func(*T) bool
}

// NewPartition returns a Partition sending items matching pred to ifTrue
// and the others to ifFalse.
func NewPartition[T, O1, O2 any](pred func(*T) bool, ifTrue core.Collector[T, O1], ifFalse core.Collector[T, O2]) *Partition[T, O1, O2] {
	return &Partition[T, O1, O2]{ct: core.NewFuse(ifTrue), cf: core.NewFuse(ifFalse), pred: pred}
}

func (p *Partition[T, O1, O2]) Collect(item T) core.Signal {
	if p.pred(&item) {
		return core.Both(p.ct.Collect(item), p.cf.BreakHint())
	}
	return core.Both(p.cf.Collect(item), p.ct.BreakHint())
}

func (p *Partition[T, O1, O2]) CollectRef(item *T) core.Signal {
	if p.pred(item) {
		return core.Both(p.ct.CollectRef(item), p.cf.BreakHint())
	}
	return core.Both(p.cf.CollectRef(item), p.ct.BreakHint())
}

func (p *Partition[T, O1, O2]) CollectMany(items core.Iterator[T]) core.Signal {
	if p.BreakHint().IsStop() {
		return core.Stop
	}
	for {
		item, ok := items.Next()
		if !ok {
			return core.Continue
		}
		if p.pred(&item) {
			if p.ct.Collect(item).IsStop() {
				return p.cf.CollectMany(pull.Filter(items, p.reject))
			}
		} else if p.cf.Collect(item).IsStop() {
			return p.ct.CollectMany(pull.Filter(items, p.pred))
		}
	}
}

func (p *Partition[T, O1, O2]) CollectThenFinish(items core.Iterator[T]) core.Pair[O1, O2] {
	if p.BreakHint().IsStop() {
		return p.Finish()
	}
	for {
		item, ok := items.Next()
		if !ok {
			return p.Finish()
		}
		if p.pred(&item) {
			if p.ct.Collect(item).IsStop() {
				first := p.ct.Finish()
				return core.PairOf(first, p.cf.CollectThenFinish(pull.Filter(items, p.reject)))
			}
		} else if p.cf.Collect(item).IsStop() {
			first := p.ct.CollectThenFinish(pull.Filter(items, p.pred))
			return core.PairOf(first, p.cf.Finish())
		}
	}
}

func (p *Partition[T, O1, O2]) IntoCollector() core.Collector[T, core.Pair[O1, O2]] { return p }

func (p *Partition[T, O1, O2]) Finish() core.Pair[O1, O2] {
	first := p.ct.Finish()
	return core.PairOf(first, p.cf.Finish())
}

func (p *Partition[T, O1, O2]) BreakHint() core.Signal {
	return core.Both(p.ct.BreakHint(), p.cf.BreakHint())
}

func (p *Partition[T, O1, O2]) reject(item *T) bool { return !p.pred(item) }

// Either holds a value destined for the left or the right child of a
// PartitionMap.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left routes v to the left collector.
func Left[L, R any](v L) Either[L, R] { return Either[L, R]{left: v} }
// Right routes v to the right collector.
func Right[L, R any](v R) Either[L, R] { return Either[L, R]{right: v, isRight: true} }

func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// PartitionMap maps every item through f and routes the result to the
// left or right child.
type PartitionMap[T, L, R, O1, O2 any] struct {
	p *Partition[Either[L, R], O1, O2]
	f func(T) Either[L, R]
}

// NewPartitionMap returns a PartitionMap routing f(item) to left or right.
func NewPartitionMap[T, L, R, O1, O2 any](f func(T) Either[L, R], left core.Collector[L, O1], right core.Collector[R, O2]) *PartitionMap[T, L, R, O1, O2] {
	isLeft := func(e *Either[L, R]) bool { return !e.isRight }
	l := newProject(left, func(e *Either[L, R]) L { return e.left })
	r := newProject(right, func(e *Either[L, R]) R { return e.right })
	return &PartitionMap[T, L, R, O1, O2]{
		p: NewPartition[Either[L, R], O1, O2](isLeft, l, r),
		f: f,
	}
}

func (m *PartitionMap[T, L, R, O1, O2]) Collect(item T) core.Signal {
	return m.p.Collect(m.f(item))
}

func (m *PartitionMap[T, L, R, O1, O2]) CollectMany(items core.Iterator[T]) core.Signal {
	return m.p.CollectMany(pull.Map(items, m.f))
}

func (m *PartitionMap[T, L, R, O1, O2]) CollectThenFinish(items core.Iterator[T]) core.Pair[O1, O2] {
	return m.p.CollectThenFinish(pull.Map(items, m.f))
}

func (m *PartitionMap[T, L, R, O1, O2]) IntoCollector() core.Collector[T, core.Pair[O1, O2]] { return m }
func (m *PartitionMap[T, L, R, O1, O2]) Finish() core.Pair[O1, O2]                           { return m.p.Finish() }
func (m *PartitionMap[T, L, R, O1, O2]) BreakHint() core.Signal                              { return m.p.BreakHint() }

// Unzip splits pair items: the first child gets First, the second gets
// Second. Termination follows the tee family.
type Unzip[A, B, O1, O2 any] struct {
	tee[core.Pair[A, B], O1, O2]
}

// NewUnzip returns an Unzip feeding the first halves of pairs to c1 and the
// second halves to c2.
func NewUnzip[A, B, O1, O2 any](c1 core.Collector[A, O1], c2 core.Collector[B, O2]) *Unzip[A, B, O1, O2] {
	first := newProject(c1, func(p *core.Pair[A, B]) A { return p.First })
	second := newProject(c2, func(p *core.Pair[A, B]) B { return p.Second })
	u := &Unzip[A, B, O1, O2]{tee: newTee[core.Pair[A, B], O1, O2](first, second)}
	u.both1, u.only1, u.give2 = u.c1.CollectRef, u.c1.CollectRef, u.c2.CollectRef
	return u
}

func (u *Unzip[A, B, O1, O2]) CollectRef(item *core.Pair[A, B]) core.Signal {
	return u.step(item)
}
