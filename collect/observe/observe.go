// Package observe provides collector wrappers for monitoring: typed hooks,
// structured logging with zerolog, OpenTelemetry counters and run
// metrics.
//
// Every wrapper is built on Observed, which sees each item before the
// wrapped collector does and reports the first Stop and the final
// Finish. Observation does not change what the wrapped collector
// receives or returns.
package observe

import (
	"time"

	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/pull"
)

// Hooks are called as a collector runs. Any of them may be nil.
type Hooks[T any] struct {
	// OnItem is called with each item and its position, before the
	// collector sees it.
	OnItem func(index int, item T)
	// OnStop is called once, when the collector first returns Stop.
	OnStop func(items int)
	// OnFinish is called when the collector finishes.
	OnFinish func(items int, stopped bool)
}

// Observed runs hooks around a collector.
type Observed[T, O any] struct {
	c       core.Collector[T, O]
	ref     func(*T) core.Signal
	hooks   Hooks[T]
	items   int
	stopped bool
}

// WithHooks wraps c so that hooks see it run.
func WithHooks[T, O any](c core.Collector[T, O], hooks Hooks[T]) *Observed[T, O] {
	return &Observed[T, O]{c: c, ref: core.RefFunc(c), hooks: hooks}
}

// Items returns how many items the collector was handed so far.
func (o *Observed[T, O]) Items() int {
	return o.items
}

func (o *Observed[T, O]) see(item *T) {
	if o.hooks.OnItem != nil {
		o.hooks.OnItem(o.items, *item)
	}
	o.items++
}

func (o *Observed[T, O]) result(s core.Signal) core.Signal {
	if s.IsStop() && !o.stopped {
		o.stopped = true
		if o.hooks.OnStop != nil {
			o.hooks.OnStop(o.items)
		}
	}
	return s
}

func (o *Observed[T, O]) Collect(item T) core.Signal {
	o.see(&item)
	return o.result(o.c.Collect(item))
}

func (o *Observed[T, O]) CollectRef(item *T) core.Signal {
	o.see(item)
	return o.result(o.ref(item))
}

func (o *Observed[T, O]) CollectMany(items core.Iterator[T]) core.Signal {
	return o.result(o.c.CollectMany(pull.Inspect(items, o.see)))
}

// CollectThenFinish runs the bulk path and then Finish, so the stop hook
// fires before the finish hook.
func (o *Observed[T, O]) CollectThenFinish(items core.Iterator[T]) O {
	o.CollectMany(items)
	return o.Finish()
}

func (o *Observed[T, O]) IntoCollector() core.Collector[T, O] { return o }

func (o *Observed[T, O]) Finish() O {
	if o.hooks.OnFinish != nil {
		o.hooks.OnFinish(o.items, o.stopped)
	}
	return o.c.Finish()
}

func (o *Observed[T, O]) BreakHint() core.Signal {
	return o.c.BreakHint()
}

// Metrics describes one run of a collector.
type Metrics struct {
	Items   int
	Stopped bool

	Start time.Time
	End   time.Time

	ItemsPerSecond float64
}

// Duration returns how long the run took.
func (m Metrics) Duration() time.Duration {
	return m.End.Sub(m.Start)
}

// Measure wraps c and calls onFinish with the run's metrics when it
// finishes. The clock starts with the first item.
func Measure[T, O any](c core.Collector[T, O], onFinish func(Metrics)) *Observed[T, O] {
	var m Metrics
	return WithHooks(c, Hooks[T]{
		OnItem: func(index int, _ T) {
			if index == 0 {
				m.Start = time.Now()
			}
		},
		OnFinish: func(items int, stopped bool) {
			m.End = time.Now()
			if items == 0 {
				m.Start = m.End
			}
			m.Items, m.Stopped = items, stopped
			if d := m.Duration().Seconds(); d > 0 {
				m.ItemsPerSecond = float64(items) / d
			}
			if onFinish != nil {
				onFinish(m)
			}
		},
	})
}
