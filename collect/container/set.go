package container

import (
	"github.com/google/btree"

	"github.com/lguimbarda/min-collect/collect/core"
)

// Set inserts items into a hash set.
type Set[T comparable] struct {
	m map[T]struct{}
}

// NewSet returns a collector building a new set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{m: make(map[T]struct{})}
}

// ExtendSet returns a collector inserting into m.
func ExtendSet[T comparable](m map[T]struct{}) *Set[T] {
	return &Set[T]{m: m}
}

func (s *Set[T]) Collect(item T) core.Signal {
	s.m[item] = struct{}{}
	return core.Continue
}

func (s *Set[T]) CollectRef(item *T) core.Signal {
	return s.Collect(*item)
}

func (s *Set[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](s, items)
}

func (s *Set[T]) CollectThenFinish(items core.Iterator[T]) map[T]struct{} {
	return core.FinishEach[T, map[T]struct{}](s, items)
}

func (s *Set[T]) IntoCollector() core.Collector[T, map[T]struct{}] { return s }
func (s *Set[T]) Finish() map[T]struct{}                           { return s.m }
func (s *Set[T]) BreakHint() core.Signal                           { return core.Continue }

// Map inserts key-value pairs into a hash map. Later pairs overwrite
// earlier ones with the same key.
type Map[K comparable, V any] struct {
	m map[K]V
}

// NewMap returns a collector building a new map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// ExtendMap returns a collector inserting into m.
func ExtendMap[K comparable, V any](m map[K]V) *Map[K, V] {
	return &Map[K, V]{m: m}
}

func (m *Map[K, V]) Collect(item core.Pair[K, V]) core.Signal {
	m.m[item.First] = item.Second
	return core.Continue
}

func (m *Map[K, V]) CollectRef(item *core.Pair[K, V]) core.Signal {
	return m.Collect(*item)
}

func (m *Map[K, V]) CollectMany(items core.Iterator[core.Pair[K, V]]) core.Signal {
	return core.CollectEach[core.Pair[K, V]](m, items)
}

func (m *Map[K, V]) CollectThenFinish(items core.Iterator[core.Pair[K, V]]) map[K]V {
	return core.FinishEach[core.Pair[K, V], map[K]V](m, items)
}

func (m *Map[K, V]) IntoCollector() core.Collector[core.Pair[K, V], map[K]V] { return m }
func (m *Map[K, V]) Finish() map[K]V                                         { return m.m }
func (m *Map[K, V]) BreakHint() core.Signal                                  { return core.Continue }

const treeDegree = 32

// TreeSet inserts items into an ordered B-tree set.
type TreeSet[T any] struct {
	t *btree.BTreeG[T]
}

// NewTreeSet returns a collector building a new tree ordered by less.
func NewTreeSet[T any](less func(a, b T) bool) *TreeSet[T] {
	return &TreeSet[T]{t: btree.NewG[T](treeDegree, less)}
}

// ExtendTreeSet returns a collector inserting into t.
func ExtendTreeSet[T any](t *btree.BTreeG[T]) *TreeSet[T] {
	return &TreeSet[T]{t: t}
}

func (s *TreeSet[T]) Collect(item T) core.Signal {
	s.t.ReplaceOrInsert(item)
	return core.Continue
}

func (s *TreeSet[T]) CollectRef(item *T) core.Signal {
	return s.Collect(*item)
}

func (s *TreeSet[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](s, items)
}

func (s *TreeSet[T]) CollectThenFinish(items core.Iterator[T]) *btree.BTreeG[T] {
	return core.FinishEach[T, *btree.BTreeG[T]](s, items)
}

func (s *TreeSet[T]) IntoCollector() core.Collector[T, *btree.BTreeG[T]] { return s }
func (s *TreeSet[T]) Finish() *btree.BTreeG[T]                           { return s.t }
func (s *TreeSet[T]) BreakHint() core.Signal                             { return core.Continue }

// TreeMap inserts key-value pairs into a B-tree ordered by key. Later
// pairs replace earlier ones with an equal key.
type TreeMap[K, V any] struct {
	t *btree.BTreeG[core.Pair[K, V]]
}

// NewTreeMap returns a collector building a new tree map ordered by less.
func NewTreeMap[K, V any](less func(a, b K) bool) *TreeMap[K, V] {
	byKey := func(a, b core.Pair[K, V]) bool { return less(a.First, b.First) }
	return &TreeMap[K, V]{t: btree.NewG[core.Pair[K, V]](treeDegree, byKey)}
}

// ExtendTreeMap returns a collector inserting into t, which must be
// ordered by key.
func ExtendTreeMap[K, V any](t *btree.BTreeG[core.Pair[K, V]]) *TreeMap[K, V] {
	return &TreeMap[K, V]{t: t}
}

func (m *TreeMap[K, V]) Collect(item core.Pair[K, V]) core.Signal {
	m.t.ReplaceOrInsert(item)
	return core.Continue
}

func (m *TreeMap[K, V]) CollectRef(item *core.Pair[K, V]) core.Signal {
	return m.Collect(*item)
}

func (m *TreeMap[K, V]) CollectMany(items core.Iterator[core.Pair[K, V]]) core.Signal {
	return core.CollectEach[core.Pair[K, V]](m, items)
}

func (m *TreeMap[K, V]) CollectThenFinish(items core.Iterator[core.Pair[K, V]]) *btree.BTreeG[core.Pair[K, V]] {
	return core.FinishEach[core.Pair[K, V], *btree.BTreeG[core.Pair[K, V]]](m, items)
}

func (m *TreeMap[K, V]) IntoCollector() core.Collector[core.Pair[K, V], *btree.BTreeG[core.Pair[K, V]]] {
	return m
}

func (m *TreeMap[K, V]) Finish() *btree.BTreeG[core.Pair[K, V]] { return m.t }
func (m *TreeMap[K, V]) BreakHint() core.Signal                 { return core.Continue }
