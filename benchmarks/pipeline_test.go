package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-collect/collect"
)

// =============================================================================
// Pipeline Benchmarks
// Sum of the even squares. Collectors fuse the stages into one push chain;
// lo materializes every stage and rill runs each stage on a channel.
// =============================================================================

func BenchmarkPipeline_Collect(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = collect.Slice(data, collect.Map(collect.Filter(collect.Sum[int](), isEvenRef), square))
		}
	})
}

func BenchmarkPipeline_Rill(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			squares := rill.Map(rill.FromSlice(data, nil), 1, func(x int) (int, error) { return square(x), nil })
			evens := rill.Filter(squares, 1, func(x int) (bool, error) { return isEven(x), nil })
			_, _, _ = rill.Reduce(evens, 1, func(a, b int) (int, error) { return add(a, b), nil })
		}
	})
}

func BenchmarkPipeline_Lo(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			squares := lo.Map(data, func(x int, _ int) int { return square(x) })
			_ = lo.Sum(lo.Filter(squares, func(x int, _ int) bool { return isEven(x) }))
		}
	})
}

func BenchmarkPipeline_GoLinq(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = linq.From(data).SelectT(square).WhereT(isEven).SumInts()
		}
	})
}

func BenchmarkPipeline_RawLoop(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, x := range data {
				if sq := square(x); isEven(sq) {
					sum += sq
				}
			}
			_ = sum
		}
	})
}

// =============================================================================
// Grouping Benchmarks
// Sums of consecutive groups of ten, against chunking into slices first.
// =============================================================================

func BenchmarkChunkSums_Collect(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = collect.Slice(data, collect.Nest(collect.ToSlice[int](), func() collect.Collector[int, int] {
				return collect.Take(collect.Sum[int](), 10)
			}))
		}
	})
}

func BenchmarkChunkSums_Lo(b *testing.B) {
	forSizes(b, func(b *testing.B, data []int) {
		for i := 0; i < b.N; i++ {
			_ = lo.Map(lo.Chunk(data, 10), func(chunk []int, _ int) int { return lo.Sum(chunk) })
		}
	})
}
