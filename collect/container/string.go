package container

import (
	"bytes"
	"strings"

	"github.com/lguimbarda/min-collect/collect/core"
)

// String concatenates string items.
type String struct {
	b *strings.Builder
}

// NewString returns a collector building a new string.
func NewString() *String {
	return &String{b: new(strings.Builder)}
}

// ExtendString returns a collector writing into b. Its output is the
// whole content of b.
func ExtendString(b *strings.Builder) *String {
	return &String{b: b}
}

func (s *String) Collect(item string) core.Signal {
	s.b.WriteString(item)
	return core.Continue
}

func (s *String) CollectRef(item *string) core.Signal {
	return s.Collect(*item)
}

// CollectBytes appends b without converting it to a string first.
func (s *String) CollectBytes(b []byte) core.Signal {
	s.b.Write(b)
	return core.Continue
}

func (s *String) CollectMany(items core.Iterator[string]) core.Signal {
	return core.CollectEach[string](s, items)
}

func (s *String) CollectThenFinish(items core.Iterator[string]) string {
	return core.FinishEach[string, string](s, items)
}

func (s *String) IntoCollector() core.Collector[string, string] { return s }
func (s *String) Finish() string                                { return s.b.String() }
func (s *String) BreakHint() core.Signal                        { return core.Continue }

// Bytes concatenates byte slice items into a buffer.
type Bytes struct {
	buf *bytes.Buffer
}

// NewBytes returns a collector building a new buffer.
func NewBytes() *Bytes {
	return &Bytes{buf: new(bytes.Buffer)}
}

// ExtendBytes returns a collector writing into buf.
func ExtendBytes(buf *bytes.Buffer) *Bytes {
	return &Bytes{buf: buf}
}

func (b *Bytes) Collect(item []byte) core.Signal {
	b.buf.Write(item)
	return core.Continue
}

func (b *Bytes) CollectRef(item *[]byte) core.Signal {
	return b.Collect(*item)
}

func (b *Bytes) CollectMany(items core.Iterator[[]byte]) core.Signal {
	return core.CollectEach[[]byte](b, items)
}

func (b *Bytes) CollectThenFinish(items core.Iterator[[]byte]) *bytes.Buffer {
	return core.FinishEach[[]byte, *bytes.Buffer](b, items)
}

func (b *Bytes) IntoCollector() core.Collector[[]byte, *bytes.Buffer] { return b }
func (b *Bytes) Finish() *bytes.Buffer                                { return b.buf }
func (b *Bytes) BreakHint() core.Signal                               { return core.Continue }
