package core

// Fuse latches the termination of a collector: once any stepping
// operation returned Stop, every later stepping operation and BreakHint
// return Stop without reaching the inner collector.
type Fuse[T, O any] struct {
	c       Collector[T, O]
	ref     func(*T) Signal
	stopped bool
}

// NewFuse wraps c. The latch starts out set when c already hints Stop.
func NewFuse[T, O any](c Collector[T, O]) *Fuse[T, O] {
	return &Fuse[T, O]{
		c:       c,
		ref:     RefFunc(c),
		stopped: c.BreakHint() == Stop,
	}
}

// Stopped reports whether the latch is set.
func (f *Fuse[T, O]) Stopped() bool {
	return f.stopped
}

func (f *Fuse[T, O]) Collect(item T) Signal {
	if f.stopped {
		return Stop
	}
	return f.latch(f.c.Collect(item))
}

func (f *Fuse[T, O]) CollectRef(item *T) Signal {
	if f.stopped {
		return Stop
	}
	return f.latch(f.ref(item))
}

func (f *Fuse[T, O]) CollectMany(items Iterator[T]) Signal {
	if f.stopped {
		return Stop
	}
	return f.latch(f.c.CollectMany(items))
}

// CollectRefMany feeds items to the inner collector by pointer.
func (f *Fuse[T, O]) CollectRefMany(items Iterator[T]) Signal {
	if f.stopped {
		return Stop
	}
	return f.latch(EachRef(f.ref, items))
}

func (f *Fuse[T, O]) CollectThenFinish(items Iterator[T]) O {
	if f.stopped {
		return f.c.Finish()
	}
	return f.c.CollectThenFinish(items)
}

func (f *Fuse[T, O]) IntoCollector() Collector[T, O] { return f }

func (f *Fuse[T, O]) Finish() O {
	return f.c.Finish()
}

func (f *Fuse[T, O]) BreakHint() Signal {
	return SignalOf(f.stopped)
}

func (f *Fuse[T, O]) latch(s Signal) Signal {
	if s == Stop {
		f.stopped = true
	}
	return s
}
