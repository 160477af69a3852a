package collecttest

import "github.com/lguimbarda/min-collect/collect/core"

// Recorder is a ref collector that records every item it receives and
// stops once it holds Limit items. A negative Limit never stops.
type Recorder[T any] struct {
	Items []T
	Limit int
	// Steps counts stepping calls, including those made after a Stop.
	Steps int
}

// Record returns a Recorder that stops after limit items.
func Record[T any](limit int) *Recorder[T] {
	return &Recorder[T]{Limit: limit}
}

func (r *Recorder[T]) Collect(item T) core.Signal {
	return r.CollectRef(&item)
}

func (r *Recorder[T]) CollectRef(item *T) core.Signal {
	r.Steps++
	if r.full() {
		return core.Stop
	}
	r.Items = append(r.Items, *item)
	return core.SignalOf(r.full())
}

func (r *Recorder[T]) CollectMany(items core.Iterator[T]) core.Signal {
	return core.CollectEach[T](r, items)
}

func (r *Recorder[T]) CollectThenFinish(items core.Iterator[T]) []T {
	return core.FinishEach[T, []T](r, items)
}

func (r *Recorder[T]) IntoCollector() core.Collector[T, []T] { return r }

func (r *Recorder[T]) Finish() []T {
	return r.Items
}

func (r *Recorder[T]) BreakHint() core.Signal {
	return core.SignalOf(r.full())
}

func (r *Recorder[T]) full() bool {
	return r.Limit >= 0 && len(r.Items) >= r.Limit
}
