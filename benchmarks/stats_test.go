package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-collect/collect"
)

// =============================================================================
// Summary Statistics Benchmarks
// Sum, count, min and max of the input: one traversal through nested tees
// against one traversal per statistic.
// =============================================================================

func BenchmarkStats_Collect(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = collect.Slice(data, collect.Tee(
				collect.Tee(collect.Sum[int](), collect.Count[int]()),
				collect.MinMax[int](),
			))
		}
	})
}

func BenchmarkStats_Lo(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = lo.Sum(data)
			_ = len(data)
			_ = lo.Min(data)
			_ = lo.Max(data)
		}
	})
}

func BenchmarkStats_GoLinq(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			query := linq.From(data)
			_ = query.SumInts()
			_ = query.Count()
			_ = query.Min()
			_ = query.Max()
		}
	})
}

func BenchmarkStats_RawLoop(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			sum, count := 0, 0
			low, high := data[0], data[0]
			for _, x := range data {
				sum += x
				count++
				low = min(low, x)
				high = max(high, x)
			}
			_, _, _, _ = sum, count, low, high
		}
	})
}

// =============================================================================
// Partition Benchmarks
// Evens and odds into two slices.
// =============================================================================

func BenchmarkPartition_Collect(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = collect.Slice(data, collect.Partition(isEvenRef, collect.ToSlice[int](), collect.ToSlice[int]()))
		}
	})
}

func BenchmarkPartition_Lo(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_, _ = lo.FilterReject(data, func(x int, _ int) bool { return isEven(x) })
		}
	})
}

func BenchmarkPartition_GoLinq(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			var evens, odds []int
			linq.From(data).WhereT(isEven).ToSlice(&evens)
			linq.From(data).WhereT(func(x int) bool { return !isEven(x) }).ToSlice(&odds)
		}
	})
}

func BenchmarkPartition_RawLoop(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			var evens, odds []int
			for _, x := range data {
				if isEven(x) {
					evens = append(evens, x)
				} else {
					odds = append(odds, x)
				}
			}
			_, _ = evens, odds
		}
	})
}
