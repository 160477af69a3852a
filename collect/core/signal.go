// package core defines the core abstractions for push-based collection,
// including collectors, the control signal they return, and the pull
// iterators that drive them.
// It provides the foundational building blocks that every adapter and
// leaf collector in the module is written against.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other collect packages.
package core

// Signal is returned by every stepping operation of a collector.
// Continue means the collector may accept more items, Stop means no
// further item can affect its output.
type Signal uint8

const (
	// Continue signals that the collector accepts more items.
	Continue Signal = iota
	// Stop signals that the collector will not accept further items.
	Stop
)

// SignalOf returns Stop when stop is true and Continue otherwise.
func SignalOf(stop bool) Signal {
	if stop {
		return Stop
	}
	return Continue
}

// Both returns Stop only when a and b are both Stop.
func Both(a, b Signal) Signal {
	if a == Stop && b == Stop {
		return Stop
	}
	return Continue
}

func (s Signal) IsStop() bool     { return s == Stop }
func (s Signal) IsContinue() bool { return s != Stop }

func (s Signal) String() string {
	if s == Stop {
		return "Stop"
	}
	return "Continue"
}
