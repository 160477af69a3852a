package container

import "github.com/lguimbarda/min-collect/collect/core"

// Vec is a slice that converts into a collector appending to it. The
// output is the extended slice.
type Vec[T any] []T

func (v Vec[T]) IntoCollector() core.Collector[T, []T] {
	return &Slice[T]{items: v}
}

// HashSet is a set that converts into a collector inserting into it.
type HashSet[T comparable] map[T]struct{}

func (s HashSet[T]) IntoCollector() core.Collector[T, map[T]struct{}] {
	if s == nil {
		s = make(HashSet[T])
	}
	return ExtendSet(s)
}

// HashMap is a map that converts into a collector of key-value pairs
// inserting into it.
type HashMap[K comparable, V any] map[K]V

func (m HashMap[K, V]) IntoCollector() core.Collector[core.Pair[K, V], map[K]V] {
	if m == nil {
		m = make(HashMap[K, V])
	}
	return ExtendMap(m)
}
