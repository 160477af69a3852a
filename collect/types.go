// Package collect provides push-based collectors: composable consumers
// that reduce a stream of items to a value in a single traversal and
// signal when they have seen enough.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The collect/core subpackage contains the
// low-level interfaces and is rarely needed directly.
package collect

import (
	"github.com/lguimbarda/min-collect/collect/core"
	"github.com/lguimbarda/min-collect/collect/drive"
	"github.com/lguimbarda/min-collect/collect/fanout"
	"github.com/lguimbarda/min-collect/collect/order"
)

// Type aliases for the core abstractions.
// These allow users to work with collectors without importing core directly.
type (
	// Signal is returned by every stepping operation.
	Signal = core.Signal

	// Base declares the output and the termination hint of a collector.
	Base[O any] = core.Base[O]

	// Collector consumes items by value.
	Collector[T, O any] = core.Collector[T, O]

	// IntoCollector is a value that converts into a Collector.
	IntoCollector[T, O any] = core.IntoCollector[T, O]

	// RefCollector can consume items through a pointer, which lets it sit
	// in front of another collector in a fan-out chain.
	RefCollector[T, O any] = core.RefCollector[T, O]

	// Iterator is a pull-based source of items.
	Iterator[T any] = core.Iterator[T]

	// Pair is the output of two-child collectors.
	Pair[A, B any] = core.Pair[A, B]

	// Option is the output of collectors that may see no item.
	Option[T any] = core.Option[T]

	// MinMaxResult is the output of MinMax.
	MinMaxResult[T any] = order.MinMaxResult[T]

	// Either routes PartitionMap items left or right.
	Either[L, R any] = fanout.Either[L, R]

	// Driver is the iterator handed out by Observe.
	Driver[T any] = drive.Driver[T]
)

const (
	Continue = core.Continue
	Stop     = core.Stop
)

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return core.Some(v)
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return core.None[T]()
}

// PairOf builds a Pair.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return core.PairOf(a, b)
}

// Left routes a PartitionMap item to the left child.
func Left[L, R any](v L) Either[L, R] {
	return fanout.Left[L, R](v)
}

// Right routes a PartitionMap item to the right child.
func Right[L, R any](v R) Either[L, R] {
	return fanout.Right[L, R](v)
}
