// Package fanout provides collectors that run two child collectors over
// a single item stream.
//
// The tee family hands every item to both children and differs only in
// how the first child receives it:
//
//   - Tee copies the item.
//   - TeeClone hands the first child a clone, made only while both
//     children are live.
//   - TeeFunnel (and Combine) lends the first child a pointer, then moves
//     the item into the second.
//   - TeeMut lends both children a pointer and is itself a ref collector.
//
// Both children are fused. A tee stops only once both have stopped; when
// one stops mid-stream the rest of the stream, including the item just
// pulled, goes to the survivor through its bulk path.
package fanout

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// tee is the engine shared by the tee family.
type tee[T, O1, O2 any] struct {
	c1 *core.Fuse[T, O1]
	c2 *core.Fuse[T, O2]
	// both1 feeds the first child while the second is live.
	both1 func(*T) core.Signal
	// only1 feeds the first child once the second has stopped.
	only1 func(*T) core.Signal
	give2 func(*T) core.Signal
}

// newTee builds an engine that hands items to both children by value.
func newTee[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2]) tee[T, O1, O2] {
	f1, f2 := core.NewFuse(c1), core.NewFuse(c2)
	byValue1 := func(item *T) core.Signal { return f1.Collect(*item) }
	return tee[T, O1, O2]{
		c1:    f1,
		c2:    f2,
		both1: byValue1,
		only1: byValue1,
		give2: func(item *T) core.Signal { return f2.Collect(*item) },
	}
}

func (t *tee[T, O1, O2]) step(item *T) core.Signal {
	switch {
	case t.c1.Stopped():
		return t.give2(item)
	case t.c2.Stopped():
		return t.only1(item)
	}
	s1 := t.both1(item)
	return core.Both(s1, t.give2(item))
}

func (t *tee[T, O1, O2]) Collect(item T) core.Signal {
	return t.step(&item)
}

func (t *tee[T, O1, O2]) CollectMany(items core.Iterator[T]) core.Signal {
	if t.BreakHint().IsStop() {
		return core.Stop
	}
	for {
		switch {
		case t.c1.Stopped():
			return t.c2.CollectMany(items)
		case t.c2.Stopped():
			return t.c1.CollectMany(items)
		}
		item, ok := items.Next()
		if !ok {
			return core.Continue
		}
		if t.both1(&item).IsStop() {
			return t.c2.CollectMany(pull.Prepend(item, items))
		}
		t.give2(&item)
	}
}

func (t *tee[T, O1, O2]) CollectThenFinish(items core.Iterator[T]) core.Pair[O1, O2] {
	if t.BreakHint().IsStop() {
		return t.Finish()
	}
	for {
		switch {
		case t.c1.Stopped():
			first := t.c1.Finish()
			return core.PairOf(first, t.c2.CollectThenFinish(items))
		case t.c2.Stopped():
			first := t.c1.CollectThenFinish(items)
			return core.PairOf(first, t.c2.Finish())
		}
		item, ok := items.Next()
		if !ok {
			return t.Finish()
		}
		if t.both1(&item).IsStop() {
			first := t.c1.Finish()
			return core.PairOf(first, t.c2.CollectThenFinish(pull.Prepend(item, items)))
		}
		t.give2(&item)
	}
}

func (t *tee[T, O1, O2]) IntoCollector() core.Collector[T, core.Pair[O1, O2]] { return t }

func (t *tee[T, O1, O2]) Finish() core.Pair[O1, O2] {
	first := t.c1.Finish()
	return core.PairOf(first, t.c2.Finish())
}

func (t *tee[T, O1, O2]) BreakHint() core.Signal {
	return core.Both(t.c1.BreakHint(), t.c2.BreakHint())
}

// Tee hands each item to both children by copy.
type Tee[T, O1, O2 any] struct {
	tee[T, O1, O2]
}

// NewTee returns a Tee over c1 and c2.
func NewTee[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2]) *Tee[T, O1, O2] {
	return &Tee[T, O1, O2]{tee: newTee(c1, c2)}
}

// TeeClone hands the first child clone(item) and moves the item into the
// second. Once either child stops, items flow to the survivor without
// being cloned.
type TeeClone[T, O1, O2 any] struct {
	tee[T, O1, O2]
}

// NewTeeClone returns a TeeClone over c1 and c2.
func NewTeeClone[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2], clone func(T) T) *TeeClone[T, O1, O2] {
	t := &TeeClone[T, O1, O2]{tee: newTee(c1, c2)}
	f1 := t.c1
	t.both1 = func(item *T) core.Signal { return f1.Collect(clone(*item)) }
	return t
}

// TeeFunnel lends the first child a pointer to the item, then moves the
// item into the second child. Changes made by the first child are seen by
// the second.
type TeeFunnel[T, O1, O2 any] struct {
	tee[T, O1, O2]
}

// NewTeeFunnel returns a TeeFunnel over c1 and c2.
func NewTeeFunnel[T, O1, O2 any](c1 core.RefCollector[T, O1], c2 core.Collector[T, O2]) *TeeFunnel[T, O1, O2] {
	t := &TeeFunnel[T, O1, O2]{tee: newTee[T, O1, O2](c1, c2)}
	t.both1 = t.c1.CollectRef
	return t
}

// NewCombine runs the ref observer first and the downstream collector
// second on every item. It is the general form of the tee family.
func NewCombine[T, O1, O2 any](observer core.RefCollector[T, O1], downstream core.Collector[T, O2]) *TeeFunnel[T, O1, O2] {
	return NewTeeFunnel(observer, downstream)
}

// TeeMut lends both children a pointer to the item. It is a ref
// collector, so it can itself sit in front of another collector.
type TeeMut[T, O1, O2 any] struct {
	tee[T, O1, O2]
}

// NewTeeMut returns a TeeMut over c1 and c2.
func NewTeeMut[T, O1, O2 any](c1 core.RefCollector[T, O1], c2 core.RefCollector[T, O2]) *TeeMut[T, O1, O2] {
	t := &TeeMut[T, O1, O2]{tee: newTee[T, O1, O2](c1, c2)}
	t.both1, t.only1, t.give2 = t.c1.CollectRef, t.c1.CollectRef, t.c2.CollectRef
	return t
}

// NewCombineRef chains two ref observers into one ref collector.
func NewCombineRef[T, O1, O2 any](c1 core.RefCollector[T, O1], c2 core.RefCollector[T, O2]) *TeeMut[T, O1, O2] {
	return NewTeeMut(c1, c2)
}

func (t *TeeMut[T, O1, O2]) CollectRef(item *T) core.Signal {
	return t.step(item)
}

// TeeWith hands the first child f(&item) and moves the item into the
// second.
type TeeWith[T, U, O1, O2 any] struct {
	tee[T, O1, O2]
}

// NewTeeWith returns a TeeWith handing c1 f(&item) and c2 the item.
func NewTeeWith[T, U, O1, O2 any](c1 core.Collector[U, O1], f func(*T) U, c2 core.Collector[T, O2]) *TeeWith[T, U, O1, O2] {
	t := &TeeWith[T, U, O1, O2]{tee: newTee[T, O1, O2](newProject(c1, f), c2)}
	t.both1, t.only1 = t.c1.CollectRef, t.c1.CollectRef
	return t
}
