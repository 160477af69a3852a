package core

// Iterator is a pull-based source of items.
//
// SizeHint returns bounds on the remaining length. A negative upper
// bound means the upper bound is unknown.
type Iterator[T any] interface {
	Next() (T, bool)
	SizeHint() (lower, upper int)
}

// Advancer is implemented by iterators that can skip items without
// producing them.
type Advancer interface {
	// AdvanceBy skips up to n items and returns how many were skipped.
	AdvanceBy(n int) int
}

// Counter is implemented by iterators that know their remaining length.
// Count consumes the iterator.
type Counter interface {
	Count() int
}

// Laster is implemented by iterators that can reach their last item
// without producing the others. Last consumes the iterator.
type Laster[T any] interface {
	Last() (T, bool)
}

// Advance skips up to n items of it and reports whether all n were
// skipped. Once it returns false the iterator is exhausted and must not
// be pulled again.
func Advance[T any](it Iterator[T], n int) bool {
	if n <= 0 {
		return true
	}
	if a, ok := it.(Advancer); ok {
		return a.AdvanceBy(n) == n
	}
	for ; n > 0; n-- {
		if _, ok := it.Next(); !ok {
			return false
		}
	}
	return true
}

// Count consumes it and returns the number of items it produced.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(Counter); ok {
		return c.Count()
	}
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// Last consumes it and returns its final item.
func Last[T any](it Iterator[T]) (T, bool) {
	if l, ok := it.(Laster[T]); ok {
		return l.Last()
	}
	var (
		last  T
		found bool
	)
	for {
		item, ok := it.Next()
		if !ok {
			return last, found
		}
		last, found = item, true
	}
}

// Empty is an iterator that yields nothing.
type Empty[T any] struct{}

func (Empty[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

func (Empty[T]) SizeHint() (int, int) { return 0, 0 }
