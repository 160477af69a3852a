package collect

import (
	"iter"

	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/drive"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Into converts into to a collector, pushes items into it until either
// runs out and returns its output.
func Into[T, O any](items core.Iterator[T], into core.IntoCollector[T, O]) O {
	return into.IntoCollector().CollectThenFinish(items)
}

// Slice pushes the elements of items into the collector of into.
func Slice[T, O any](items []T, into core.IntoCollector[T, O]) O {
	return into.IntoCollector().CollectThenFinish(pull.FromSlice(items))
}

// Range pushes the values of seq into the collector of into. The sequence
// is abandoned as soon as the collector stops.
func Range[T, O any](seq iter.Seq[T], into core.IntoCollector[T, O]) O {
	c := into.IntoCollector()
	if c.BreakHint().IsStop() {
		return c.Finish()
	}
	for item := range seq {
		if c.Collect(item).IsStop() {
			break
		}
	}
	return c.Finish()
}

// Observe lets f drive items through a Driver while c observes every
// item pulled. It returns c's output and f's result.
func Observe[T, O, R any](items core.Iterator[T], c core.RefCollector[T, O], f func(*Driver[T]) R) (O, R) {
	return drive.Observe(items, c, f)
}

// Fuse makes c's termination monotone.
func Fuse[T, O any](c core.Collector[T, O]) *core.Fuse[T, O] {
	return core.NewFuse(c)
}

// FromSlice returns an iterator over items.
func FromSlice[T any](items []T) *pull.Slice[T] {
	return pull.FromSlice(items)
}

// FromSeq returns an iterator over seq. Call Stop on it if it is not
// drained.
func FromSeq[T any](seq iter.Seq[T]) *pull.Seq[T] {
	return pull.FromSeq(seq)
}
