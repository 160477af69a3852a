package pull

import (
	"slices"
	"testing"
)

func TestSlice(t *testing.T) {
	it := Of(1, 2, 3, 4, 5)
	if lo, up := it.SizeHint(); lo != 5 || up != 5 {
		t.Fatalf("expected exact hint 5, got (%d, %d)", lo, up)
	}
	if n := it.AdvanceBy(2); n != 2 {
		t.Fatalf("expected to skip 2, got %d", n)
	}
	if v, ok := it.Next(); !ok || v != 3 {
		t.Fatalf("expected 3, got %d %v", v, ok)
	}
	if n := it.AdvanceBy(10); n != 2 {
		t.Errorf("expected to skip the remaining 2, got %d", n)
	}
	if _, ok := it.Next(); ok {
		t.Error("expected exhaustion")
	}
}

func TestFields(t *testing.T) {
	got := ToSlice[string](Fields("  the noble\tand the\nsinger "))
	want := []string{"the", "noble", "and", "the", "singer"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFromSeq(t *testing.T) {
	it := FromSeq(slices.Values([]int{1, 2, 3}))
	defer it.Stop()

	got := ToSlice[int](it)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if lo, up := it.SizeHint(); lo != 0 || up != 0 {
		t.Errorf("expected empty hint after exhaustion, got (%d, %d)", lo, up)
	}
}

func TestFromFuncIsFused(t *testing.T) {
	calls := 0
	it := FromFunc(func() (int, bool) {
		calls++
		return calls, calls < 3
	})
	ToSlice[int](it)
	it.Next()
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestAdapters(t *testing.T) {
	isEven := func(v *int) bool { return *v%2 == 0 }

	tests := []struct {
		name     string
		got      func() []int
		expected []int
	}{
		{"prepend", func() []int { return ToSlice[int](Prepend(0, Of(1, 2))) }, []int{0, 1, 2}},
		{"chain", func() []int { return ToSlice[int](Chain[int](Of(1), Of(2, 3))) }, []int{1, 2, 3}},
		{"take", func() []int { return ToSlice[int](Take[int](Of(1, 2, 3), 2)) }, []int{1, 2}},
		{"take zero", func() []int { return ToSlice[int](Take[int](Of(1, 2, 3), 0)) }, []int{}},
		{"take while", func() []int { return ToSlice[int](TakeWhile[int](Of(2, 4, 5, 6), isEven)) }, []int{2, 4}},
		{"filter", func() []int { return ToSlice[int](Filter[int](Of(1, 2, 3, 4), isEven)) }, []int{2, 4}},
		{"map", func() []int {
			return ToSlice[int](Map(Of(1, 2), func(v int) int { return v * 10 }))
		}, []int{10, 20}},
		{"filter map", func() []int {
			return ToSlice[int](FilterMap(Of(1, 2, 3), func(v int) (int, bool) { return v * v, v != 2 }))
		}, []int{1, 9}},
		{"map while", func() []int {
			return ToSlice[int](MapWhile(Of(1, 2, 3), func(v int) (int, bool) { return -v, v < 3 }))
		}, []int{-1, -2}},
		{"flat map", func() []int {
			return ToSlice[int](FlatMap(Of(1, 2, 3), func(v int) []int { return slices.Repeat([]int{v}, v) }))
		}, []int{1, 2, 2, 3, 3, 3}},
		{"flatten", func() []int {
			return ToSlice[int](Flatten[int](Of([]int{}, []int{1}, []int{2, 3})))
		}, []int{1, 2, 3}},
		{"inspect", func() []int {
			return ToSlice[int](Inspect[int](Of(1, 2), func(v *int) { *v++ }))
		}, []int{2, 3}},
		{"ints", func() []int { return ToSlice[int](Ints(3, 6)) }, []int{3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got()
			if !slices.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTakeNeverOverPulls(t *testing.T) {
	src := Ints(0, 100)
	take := Take[int](src, 3)
	ToSlice[int](take)
	if v, _ := src.Next(); v != 3 {
		t.Errorf("expected source to resume at 3, got %d", v)
	}
	if take.Remaining() != 0 {
		t.Errorf("expected no remaining budget, got %d", take.Remaining())
	}
}

func TestTakeWhileConsumesFailingItem(t *testing.T) {
	src := Of(1, 2, 0, 3)
	tw := TakeWhile[int](src, func(v *int) bool { return *v != 0 })
	ToSlice[int](tw)
	if !tw.Failed() {
		t.Fatal("expected predicate failure")
	}
	if src.Len() != 1 {
		t.Errorf("expected one item left in the source, got %d", src.Len())
	}
}

func TestSizeHints(t *testing.T) {
	tests := []struct {
		name   string
		lo, up int
		hint   func() (int, int)
	}{
		{"prepend", 3, 3, Prepend(0, Of(1, 2)).SizeHint},
		{"chain unknown", 1, -1, Chain[int](Of(1), FromFunc(func() (int, bool) { return 0, false })).SizeHint},
		{"take", 2, 2, Take[int](Of(1, 2, 3), 2).SizeHint},
		{"filter", 0, 3, Filter[int](Of(1, 2, 3), func(*int) bool { return true }).SizeHint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, up := tt.hint()
			if lo != tt.lo || up != tt.up {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.lo, tt.up, lo, up)
			}
		})
	}
}
