package collect

import (
	"cmp"

	"github.com/lguimbarda/min-collect/collect/aggregate"
	"github.com/lguimbarda/min-collect/collect/container"
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/order"
)

// Leaf constructors - wrappers around aggregate, order and container.

// Sum adds up the items.
func Sum[T aggregate.Number]() *aggregate.Sum[T] { return aggregate.NewSum[T]() }

// Product multiplies the items.
func Product[T aggregate.Number]() *aggregate.Product[T] { return aggregate.NewProduct[T]() }

// Count counts the items.
func Count[T any]() *aggregate.Count[T] { return aggregate.NewCount[T]() }

// Last keeps the last item.
func Last[T any]() *aggregate.Last[T] { return aggregate.NewLast[T]() }

// Sink drops every item.
func Sink[T any]() *aggregate.Sink[T] { return aggregate.NewSink[T]() }

// Fold folds the items into init.
func Fold[T, A any](init A, f func(A, T) A) *aggregate.Fold[T, A] {
	return aggregate.NewFold(init, f)
}

// TryFold folds the items into init until f returns Stop.
func TryFold[T, A any](init A, f func(*A, T) core.Signal) *aggregate.TryFold[T, A] {
	return aggregate.NewTryFold(init, f)
}

// Reduce combines the items with f.
func Reduce[T any](f func(acc, item T) T) *aggregate.Reduce[T] {
	return aggregate.NewReduce(f)
}

// Find keeps the first item matching pred.
func Find[T any](pred func(*T) bool) *aggregate.Find[T] { return aggregate.NewFind(pred) }

// All reports whether every item matches pred.
func All[T any](pred func(*T) bool) *aggregate.All[T] { return aggregate.NewAll(pred) }

// Any reports whether some item matches pred.
func Any[T any](pred func(*T) bool) *aggregate.Any[T] { return aggregate.NewAny(pred) }

// Min keeps the first least item.
func Min[T cmp.Ordered]() *order.Min[T] { return order.NewMin[T]() }

// Max keeps the last greatest item.
func Max[T cmp.Ordered]() *order.Max[T] { return order.NewMax[T]() }

// MinMax keeps the least and the greatest item.
func MinMax[T cmp.Ordered]() *order.MinMax[T] { return order.NewMinMax[T]() }

// MinBy is Min ordered by cmp.
func MinBy[T any](cmp func(a, b T) int) *order.Min[T] { return order.NewMinBy(cmp) }

// MaxBy is Max ordered by cmp.
func MaxBy[T any](cmp func(a, b T) int) *order.Max[T] { return order.NewMaxBy(cmp) }

// MinMaxBy is MinMax ordered by cmp.
func MinMaxBy[T any](cmp func(a, b T) int) *order.MinMax[T] { return order.NewMinMaxBy(cmp) }

// MinByKey is Min ordered by key.
func MinByKey[T any, K cmp.Ordered](key func(T) K) *order.Min[T] { return order.NewMinByKey(key) }

// MaxByKey is Max ordered by key.
func MaxByKey[T any, K cmp.Ordered](key func(T) K) *order.Max[T] { return order.NewMaxByKey(key) }

// MinMaxByKey is MinMax ordered by key.
func MinMaxByKey[T any, K cmp.Ordered](key func(T) K) *order.MinMax[T] {
	return order.NewMinMaxByKey(key)
}

// AllEqual reports whether all items are equal.
func AllEqual[T comparable]() *order.AllEqual[T] { return order.NewAllEqual[T]() }

// ToSlice collects items into a new slice.
func ToSlice[T any]() *container.Slice[T] { return container.NewSlice[T]() }

// AppendTo collects items onto *dst.
func AppendTo[T any](dst *[]T) *container.Appender[T] { return container.AppendTo(dst) }

// String concatenates string items.
func String() *container.String { return container.NewString() }

// Concat concatenates slice items.
func Concat[T any]() *container.Concat[T] { return container.NewConcat[T]() }
