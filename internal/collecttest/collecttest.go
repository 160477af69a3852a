// Package collecttest provides helpers for testing collectors: a
// consistency checker that runs every collect method over the same input,
// a pull-counting iterator and a recording collector.
package collecttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Counting wraps an iterator and counts successful pulls.
type Counting[T any] struct {
	it     core.Iterator[T]
	Pulled int
}

// Count wraps it.
func Count[T any](it core.Iterator[T]) *Counting[T] {
	return &Counting[T]{it: it}
}

// CountSlice wraps an iterator over items. The wrapper hides the
// slice's skip and count shortcuts so every item must be pulled.
func CountSlice[T any](items []T) *Counting[T] {
	return Count[T](pull.FromSlice(items))
}

func (c *Counting[T]) Next() (T, bool) {
	item, ok := c.it.Next()
	if ok {
		c.Pulled++
	}
	return item, ok
}

func (c *Counting[T]) SizeHint() (int, int) {
	return c.it.SizeHint()
}

// Remaining drains the iterator and returns how many items were left.
func (c *Counting[T]) Remaining() int {
	n := 0
	for {
		if _, ok := c.it.Next(); !ok {
			return n
		}
		n++
	}
}

// Check runs a fresh collector from newCollector over items through
// Collect, CollectMany, CollectThenFinish and (for ref collectors)
// CollectRef, and through every two-way split of items fed to
// CollectMany. All runs must agree with the Collect loop on the output,
// on whether the collector stopped, and on how much of the source was
// consumed.
func Check[T, O any](t testing.TB, items []T, newCollector func() core.Collector[T, O]) {
	t.Helper()

	c := newCollector()
	src := pull.FromSlice(items)
	stopped := c.BreakHint().IsStop()
	for !stopped {
		item, ok := src.Next()
		if !ok {
			break
		}
		stopped = c.Collect(item).IsStop()
	}
	expected := c.Finish()
	remaining := src.Len()

	c = newCollector()
	src = pull.FromSlice(items)
	require.Equal(t, stopped, c.CollectMany(src).IsStop(), "CollectMany stop signal mismatched")
	require.Equal(t, expected, c.Finish(), "CollectMany output mismatched")
	require.Equal(t, remaining, src.Len(), "CollectMany consumed the source inconsistently")

	c = newCollector()
	counted := CountSlice(items)
	require.Equal(t, expected, c.CollectThenFinish(counted), "CollectThenFinish output mismatched")
	require.Equal(t, remaining, counted.Remaining(), "CollectThenFinish consumed the source inconsistently")

	if _, ok := c.(core.RefCollector[T, O]); ok {
		rc := newCollector().(core.RefCollector[T, O])
		src = pull.FromSlice(items)
		refStopped := rc.BreakHint().IsStop()
		if !refStopped {
			refStopped = core.EachRef(rc.CollectRef, src).IsStop()
		}
		require.Equal(t, stopped, refStopped, "CollectRef stop signal mismatched")
		require.Equal(t, expected, rc.Finish(), "CollectRef output mismatched")
		require.Equal(t, remaining, src.Len(), "CollectRef consumed the source inconsistently")
	}

	for k := 0; k <= len(items); k++ {
		c = newCollector()
		first := pull.FromSlice(items[:k])
		if c.CollectMany(first).IsStop() {
			continue
		}
		second := pull.FromSlice(items[k:])
		require.Equal(t, stopped, c.CollectMany(second).IsStop(), "split at %d: stop signal mismatched", k)
		require.Equal(t, expected, c.Finish(), "split at %d: output mismatched", k)
		require.Equal(t, remaining, second.Len(), "split at %d: consumed the source inconsistently", k)
	}
}
