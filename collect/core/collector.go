package core

// Base is implemented by every collector. It declares the output type
// and the terminal Finish operation.
//
// BreakHint is a non-mutating, advisory query: it reports whether the
// collector would reject any further item. Callers may query it at most
// once per driving iteration and must not rely on it for correctness.
type Base[O any] interface {
	// Finish produces the output. The collector must not be used
	// afterwards.
	Finish() O
	BreakHint() Signal
}

// Collector consumes items of type T by value and produces an O.
//
// Collect must return Stop as soon as the collector can tell that no
// future item can affect its output, on the step that fills the last
// slot rather than on the following one.
//
// Unless the collector is fused, calling Collect after a Stop has
// unspecified (but memory safe) results.
type Collector[T, O any] interface {
	Base[O]
	IntoCollector[T, O]
	Collect(item T) Signal
	// CollectMany ingests items until the collector stops or the
	// iterator is exhausted. It must not pull an item it would reject.
	CollectMany(items Iterator[T]) Signal
	// CollectThenFinish ingests items and then finishes. The collector
	// must not be used afterwards.
	CollectThenFinish(items Iterator[T]) O
}

// IntoCollector is implemented by values that can be turned into a
// collector of T. Every Collector converts into itself.
type IntoCollector[T, O any] interface {
	IntoCollector() Collector[T, O]
}

// RefCollector is a Collector that only needs to borrow the item. The
// caller keeps ownership of *item afterwards, which is what lets a ref
// collector sit in front of another collector in a fan-out chain.
type RefCollector[T, O any] interface {
	Collector[T, O]
	CollectRef(item *T) Signal
}

// Stepper is the part of a collector needed to run the default bulk loop.
type Stepper[T any] interface {
	Collect(item T) Signal
	BreakHint() Signal
}

// CollectEach is the default CollectMany: it returns Stop without pulling
// when the collector already hints Stop, then feeds items one at a time.
func CollectEach[T any](c Stepper[T], items Iterator[T]) Signal {
	if c.BreakHint() == Stop {
		return Stop
	}
	for {
		item, ok := items.Next()
		if !ok {
			return Continue
		}
		if c.Collect(item) == Stop {
			return Stop
		}
	}
}

// FinishEach is the default CollectThenFinish.
func FinishEach[T, O any](c Collector[T, O], items Iterator[T]) O {
	c.CollectMany(items)
	return c.Finish()
}

// RefFunc returns c's CollectRef when c is a RefCollector. Otherwise the
// returned function hands a copy of *item to Collect.
func RefFunc[T, O any](c Collector[T, O]) func(*T) Signal {
	if r, ok := c.(interface{ CollectRef(*T) Signal }); ok {
		return r.CollectRef
	}
	return func(item *T) Signal { return c.Collect(*item) }
}

// EachRef feeds items to a ref step function one at a time and stops when
// it returns Stop.
func EachRef[T any](collect func(*T) Signal, items Iterator[T]) Signal {
	for {
		item, ok := items.Next()
		if !ok {
			return Continue
		}
		if collect(&item) == Stop {
			return Stop
		}
	}
}
