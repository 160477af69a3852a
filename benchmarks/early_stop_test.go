package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-collect/collect"
)

// =============================================================================
// Early Stop Benchmarks
// The match sits in the middle of the input; collectors stop pulling there.
// =============================================================================

func BenchmarkFind_Collect_Large(b *testing.B) {
	data := generateInts(LargeSize)
	target := LargeSize / 2
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = collect.Slice(data, collect.Find(func(x *int) bool { return *x == target }))
	}
}

func BenchmarkFind_Lo_Large(b *testing.B) {
	data := generateInts(LargeSize)
	target := LargeSize / 2
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = lo.Find(data, func(x int) bool { return x == target })
	}
}

func BenchmarkFind_GoLinq_Large(b *testing.B) {
	data := generateInts(LargeSize)
	target := LargeSize / 2
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = linq.From(data).FirstWithT(func(x int) bool { return x == target })
	}
}

func BenchmarkTake_Collect_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = collect.Slice(data, collect.Filter(collect.Take(collect.ToSlice[int](), 100), isEvenRef))
	}
}

func BenchmarkTake_Lo_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Subset(lo.Filter(data, func(x int, _ int) bool { return isEven(x) }), 0, 100)
	}
}

func BenchmarkTake_GoLinq_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var result []int
		linq.From(data).WhereT(func(x int) bool { return isEven(x) }).Take(100).ToSlice(&result)
	}
}

// =============================================================================
// Fan-out Benchmarks
// Two results from one pass, against two passes.
// =============================================================================

func BenchmarkTee_Collect_Large(b *testing.B) {
	data := generateStrings(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = collect.Slice(data, collect.Tee(
			collect.Map(collect.Sum[int](), stringLen),
			collect.Count[string](),
		))
	}
}

func BenchmarkTee_Lo_Large(b *testing.B) {
	data := generateStrings(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.SumBy(data, stringLen)
		_ = lo.Count(data, "")
	}
}
