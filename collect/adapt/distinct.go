package adapt

import "github.com/lguimbarda/min-collect/collect/core"

// NewDistinct forwards only the first occurrence of every item.
func NewDistinct[T comparable, O any](c core.Collector[T, O]) *Filter[T, O] {
	return NewDistinctBy(c, func(item T) T { return item })
}

// NewDistinctBy forwards only the first item of every key.
func NewDistinctBy[T any, K comparable, O any](c core.Collector[T, O], key func(T) K) *Filter[T, O] {
	seen := make(map[K]struct{})
	return NewFilter(c, func(item *T) bool {
		k := key(*item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}
