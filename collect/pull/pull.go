// Package pull provides pull-based iterators for feeding collectors.
//
// Sources (slices, iter.Seq, functions) and the iterator adapters the
// collector adapters use to run their bulk paths all implement
// core.Iterator. Adapters preserve size hints where they can so that
// collectors downstream can size their buffers and skip in bulk.
package pull

import (
	"iter"
	"strings"

	"github.com/lguimbarda/min-collect/collect/core"
)

// Slice iterates over a slice. It knows its exact length and supports
// skipping, counting and jumping to the last item without pulling.
type Slice[T any] struct {
	items []T
}

// FromSlice returns an iterator over items.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Of returns an iterator over the given items.
func Of[T any](items ...T) *Slice[T] {
	return FromSlice(items)
}

// Fields returns an iterator over the whitespace separated words of s.
func Fields(s string) *Slice[string] {
	return FromSlice(strings.Fields(s))
}

func (s *Slice[T]) Next() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[0]
	s.items = s.items[1:]
	return item, true
}

func (s *Slice[T]) SizeHint() (int, int) {
	return len(s.items), len(s.items)
}

// Len returns the number of remaining items.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Rest returns the remaining items without consuming them.
func (s *Slice[T]) Rest() []T {
	return s.items
}

func (s *Slice[T]) AdvanceBy(n int) int {
	n = min(n, len(s.items))
	s.items = s.items[n:]
	return n
}

func (s *Slice[T]) Count() int {
	n := len(s.items)
	s.items = nil
	return n
}

func (s *Slice[T]) Last() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := s.items[len(s.items)-1]
	s.items = nil
	return last, true
}

// Seq adapts an iter.Seq. The producer runs as a coroutine through
// iter.Pull; call Stop when abandoning the iterator before exhaustion.
type Seq[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq returns an iterator pulling from seq.
func FromSeq[T any](seq iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(seq)
	return &Seq[T]{next: next, stop: stop}
}

func (s *Seq[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	item, ok := s.next()
	if !ok {
		s.Stop()
	}
	return item, ok
}

func (s *Seq[T]) SizeHint() (int, int) {
	if s.done {
		return 0, 0
	}
	return 0, -1
}

// Stop releases the underlying coroutine. It is safe to call repeatedly.
func (s *Seq[T]) Stop() {
	if !s.done {
		s.done = true
		s.stop()
	}
}

// Func adapts a next function. It is fused: once next reports false it is
// never called again.
type Func[T any] struct {
	next func() (T, bool)
	done bool
}

// FromFunc returns an iterator calling next until it reports false.
func FromFunc[T any](next func() (T, bool)) *Func[T] {
	return &Func[T]{next: next}
}

func (f *Func[T]) Next() (T, bool) {
	var zero T
	if f.done {
		return zero, false
	}
	item, ok := f.next()
	if !ok {
		f.done = true
	}
	return item, ok
}

func (f *Func[T]) SizeHint() (int, int) {
	if f.done {
		return 0, 0
	}
	return 0, -1
}

// Range yields start, start+1, ... up to end (exclusive).
type Range struct {
	cur, end int
}

// Ints returns an iterator over [start, end).
func Ints(start, end int) *Range {
	return &Range{cur: start, end: max(start, end)}
}

func (r *Range) Next() (int, bool) {
	if r.cur >= r.end {
		return 0, false
	}
	r.cur++
	return r.cur - 1, true
}

func (r *Range) SizeHint() (int, int) {
	return r.end - r.cur, r.end - r.cur
}

func (r *Range) AdvanceBy(n int) int {
	n = min(n, r.end-r.cur)
	r.cur += n
	return n
}

func (r *Range) Count() int {
	n := r.end - r.cur
	r.cur = r.end
	return n
}

// All returns an iter.Seq draining it.
func All[T any](it core.Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// ToSlice drains it into a slice.
func ToSlice[T any](it core.Iterator[T]) []T {
	lower, _ := it.SizeHint()
	out := make([]T, 0, lower)
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
