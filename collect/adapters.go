package collect

import (
	"github.com/lguimbarda/min-collect/collect/adapt"
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/fanout"
	"github.com/lguimbarda/min-collect/collect/nest"
)

// Adapter constructors - wrappers around adapt, fanout and nest.

// Map applies f to each item before c sees it.
func Map[T, U, O any](c core.Collector[U, O], f func(T) U) *adapt.Map[T, U, O] {
	return adapt.NewMap(c, f)
}

// MapOutput applies f to c's output.
func MapOutput[T, O, R any](c core.Collector[T, O], f func(O) R) *adapt.MapOutput[T, O, R] {
	return adapt.NewMapOutput(c, f)
}

// Filter forwards the items for which pred holds.
func Filter[T, O any](c core.Collector[T, O], pred func(*T) bool) *adapt.Filter[T, O] {
	return adapt.NewFilter(c, pred)
}

// FilterMap forwards f(item) for every item where f succeeds.
func FilterMap[T, U, O any](c core.Collector[U, O], f func(T) (U, bool)) *adapt.FilterMap[T, U, O] {
	return adapt.NewFilterMap(c, f)
}

// Distinct forwards the first occurrence of every item.
func Distinct[T comparable, O any](c core.Collector[T, O]) *adapt.Filter[T, O] {
	return adapt.NewDistinct(c)
}

// DistinctBy forwards the first item of every key.
func DistinctBy[T any, K comparable, O any](c core.Collector[T, O], key func(T) K) *adapt.Filter[T, O] {
	return adapt.NewDistinctBy(c, key)
}

// FlatMap forwards every element of f(item).
func FlatMap[T, U, O any](c core.Collector[U, O], f func(T) []U) *adapt.FlatMap[T, U, O] {
	return adapt.NewFlatMap(c, f)
}

// Flatten forwards the elements of each slice item.
func Flatten[T, O any](c core.Collector[T, O]) *adapt.FlatMap[[]T, T, O] {
	return adapt.NewFlatten(c)
}

// Inspect calls f with each item before forwarding it.
func Inspect[T, O any](c core.Collector[T, O], f func(T)) *adapt.Inspect[T, O] {
	return adapt.NewInspect(c, f)
}

// Update lets f modify each item before forwarding it.
func Update[T, O any](c core.Collector[T, O], f func(*T)) *adapt.Update[T, O] {
	return adapt.NewUpdate(c, f)
}

// Enumerate pairs each item with its index.
func Enumerate[T, O any](c core.Collector[core.Pair[int, T], O]) *adapt.Enumerate[T, O] {
	return adapt.NewEnumerate(c)
}

// Take forwards at most n items.
func Take[T, O any](c core.Collector[T, O], n int) *adapt.Take[T, O] {
	return adapt.NewTake(c, n)
}

// Skip drops the first n items.
func Skip[T, O any](c core.Collector[T, O], n int) *adapt.Skip[T, O] {
	return adapt.NewSkip(c, n)
}

// TakeWhile forwards items until pred fails.
func TakeWhile[T, O any](c core.Collector[T, O], pred func(*T) bool) *adapt.TakeWhile[T, O] {
	return adapt.NewTakeWhile(c, pred)
}

// MapWhile forwards f(item) until f fails.
func MapWhile[T, U, O any](c core.Collector[U, O], f func(T) (U, bool)) *adapt.MapWhile[T, U, O] {
	return adapt.NewMapWhile(c, f)
}

// Chain feeds c1 until it stops and c2 afterwards.
func Chain[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2]) *adapt.Chain[T, O1, O2] {
	return adapt.NewChain(c1, c2)
}

// Unbatching runs f for every item with c at hand.
func Unbatching[T, U, O any](c core.Collector[U, O], f func(core.Collector[U, O], T) core.Signal) *adapt.Unbatching[T, U, O] {
	return adapt.NewUnbatching(c, f)
}

// UnbatchingRef runs f for every borrowed item with c at hand.
func UnbatchingRef[T, U, O any](c core.Collector[U, O], f func(core.Collector[U, O], *T) core.Signal) *adapt.UnbatchingRef[T, U, O] {
	return adapt.NewUnbatchingRef(c, f)
}

// AltBreakHint replaces c's break hint.
func AltBreakHint[T, O any](c core.Collector[T, O], hint func(core.Collector[T, O]) core.Signal) *adapt.AltBreakHint[T, O] {
	return adapt.NewAltBreakHint(c, hint)
}

// Tee hands each item to both collectors by copy.
func Tee[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2]) *fanout.Tee[T, O1, O2] {
	return fanout.NewTee(c1, c2)
}

// TeeClone hands c1 a clone of each item while both collectors are live.
func TeeClone[T, O1, O2 any](c1 core.Collector[T, O1], c2 core.Collector[T, O2], clone func(T) T) *fanout.TeeClone[T, O1, O2] {
	return fanout.NewTeeClone(c1, c2, clone)
}

// TeeFunnel lends c1 each item, then moves it into c2.
func TeeFunnel[T, O1, O2 any](c1 core.RefCollector[T, O1], c2 core.Collector[T, O2]) *fanout.TeeFunnel[T, O1, O2] {
	return fanout.NewTeeFunnel(c1, c2)
}

// TeeMut lends each item to both collectors.
func TeeMut[T, O1, O2 any](c1 core.RefCollector[T, O1], c2 core.RefCollector[T, O2]) *fanout.TeeMut[T, O1, O2] {
	return fanout.NewTeeMut(c1, c2)
}

// TeeWith hands c1 f(&item) and c2 the item.
func TeeWith[T, U, O1, O2 any](c1 core.Collector[U, O1], f func(*T) U, c2 core.Collector[T, O2]) *fanout.TeeWith[T, U, O1, O2] {
	return fanout.NewTeeWith(c1, f, c2)
}

// Combine runs the ref observer and then the downstream collector on
// every item.
func Combine[T, O1, O2 any](observer core.RefCollector[T, O1], downstream core.Collector[T, O2]) *fanout.TeeFunnel[T, O1, O2] {
	return fanout.NewCombine(observer, downstream)
}

// Then is Combine.
func Then[T, O1, O2 any](observer core.RefCollector[T, O1], downstream core.Collector[T, O2]) *fanout.TeeFunnel[T, O1, O2] {
	return fanout.NewCombine(observer, downstream)
}

// Partition routes items to ifTrue or ifFalse by pred.
func Partition[T, O1, O2 any](pred func(*T) bool, ifTrue core.Collector[T, O1], ifFalse core.Collector[T, O2]) *fanout.Partition[T, O1, O2] {
	return fanout.NewPartition(pred, ifTrue, ifFalse)
}

// PartitionMap maps items through f and routes them left or right.
func PartitionMap[T, L, R, O1, O2 any](f func(T) Either[L, R], left core.Collector[L, O1], right core.Collector[R, O2]) *fanout.PartitionMap[T, L, R, O1, O2] {
	return fanout.NewPartitionMap(f, left, right)
}

// Unzip feeds the halves of pair items to c1 and c2.
func Unzip[A, B, O1, O2 any](c1 core.Collector[A, O1], c2 core.Collector[B, O2]) *fanout.Unzip[A, B, O1, O2] {
	return fanout.NewUnzip(c1, c2)
}

// Nest groups items into sub-batches built by newInner and feeds each
// finished sub-batch to outer. A partial trailing sub-batch is kept.
func Nest[T, I, O any](outer core.Collector[I, O], newInner func() core.Collector[T, I]) *nest.Nest[T, I, O] {
	return nest.NewNest(outer, newInner)
}

// NestExact is Nest without the partial trailing sub-batch.
func NestExact[T, I, O any](outer core.Collector[I, O], newInner func() core.Collector[T, I]) *nest.NestExact[T, I, O] {
	return nest.NewNestExact(outer, newInner)
}
