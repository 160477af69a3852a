package collect_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/lguimbarda/min-collect/collect"
	"github.com/lguimbarda/min-collect/collect/container"
	"github.com/lguimbarda/min-collect/internal/collecttest"
)

func isOdd(n *int) bool { return *n%2 != 0 }

func isNegative(n *int) bool { return *n < 0 }

func TestMinMaxKeepsFirstMin(t *testing.T) {
	input := []int{3, 1, 4, 1, 5, 9, 2, 6}
	if got := collect.Slice(input, collect.MinMax[int]()).String(); got != "MinMax(1, 9)" {
		t.Errorf("got %s, want MinMax(1, 9)", got)
	}

	byValue := func(p collect.Pair[int, int]) int { return p.Second }
	got := collect.Slice(input, collect.Enumerate(collect.MinMaxByKey(byValue)))
	if got.Min != collect.PairOf(1, 1) {
		t.Errorf("min = %v, want (1, 1)", got.Min)
	}
	if got.Max != collect.PairOf(5, 9) {
		t.Errorf("max = %v, want (5, 9)", got.Max)
	}
}

func TestCombineObserverOutlivesDownstream(t *testing.T) {
	got := collect.Slice([]int{2, 4, 6, 7, 8}, collect.Combine(collect.Sum[int](), collect.Find(isOdd)))
	if got.First != 27 {
		t.Errorf("sum = %d, want 27", got.First)
	}
	if odd, ok := got.Second.Get(); !ok || odd != 7 {
		t.Errorf("first odd = %v, want Some(7)", got.Second)
	}
}

func TestTeeOfTakes(t *testing.T) {
	tests := []struct {
		name         string
		input        []int
		want1, want2 []int
		pulled       int
	}{
		{
			name:   "second take drains the source",
			input:  []int{10, 20, 30, 40, 50},
			want1:  []int{10, 20, 30},
			want2:  []int{10, 20, 30, 40, 50},
			pulled: 5,
		},
		{
			name:   "source outlasts both takes",
			input:  []int{10, 20, 30, 40, 50, 60},
			want1:  []int{10, 20, 30},
			want2:  []int{10, 20, 30, 40, 50},
			pulled: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := collecttest.CountSlice(tt.input)
			got := collect.Into(src, collect.Tee(
				collect.Take(collect.ToSlice[int](), 3),
				collect.Take(collect.ToSlice[int](), 5),
			))
			if !slices.Equal(got.First, tt.want1) || !slices.Equal(got.Second, tt.want2) {
				t.Errorf("got %v, want (%v, %v)", got, tt.want1, tt.want2)
			}
			if src.Pulled != tt.pulled {
				t.Errorf("pulled %d items, want %d", src.Pulled, tt.pulled)
			}
		})
	}
}

func TestTakeWhileLeavesRest(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		want      []int
		pulled    int
		remaining int
	}{
		{"stops after zero", []int{1, 2, 3, 0, 4, 5}, []int{1, 2, 3}, 4, 2},
		{"zero second", []int{3, 0, 5, 8}, []int{3}, 2, 2},
		{"no zero", []int{1, 2}, []int{1, 2}, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := collecttest.CountSlice(tt.input)
			got := collect.Into(src, collect.TakeWhile(collect.ToSlice[int](), func(n *int) bool { return *n != 0 }))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if src.Pulled != tt.pulled {
				t.Errorf("pulled %d items, want %d", src.Pulled, tt.pulled)
			}
			if n := src.Remaining(); n != tt.remaining {
				t.Errorf("%d items left, want %d", n, tt.remaining)
			}
		})
	}
}

func TestPartitionNegatives(t *testing.T) {
	tests := []struct {
		name       string
		input      []int
		neg, other []int
	}{
		{"ordered", []int{-3, -2, -1, 0, 1, 2, 3}, []int{-3, -2, -1}, []int{0, 1, 2, 3}},
		{"mixed", []int{-1, 2, -3, 4, 0}, []int{-1, -3}, []int{2, 4, 0}},
		{"empty", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect.Slice(tt.input, collect.Partition(isNegative, collect.ToSlice[int](), collect.ToSlice[int]()))
			if !slices.Equal(got.First, tt.neg) || !slices.Equal(got.Second, tt.other) {
				t.Errorf("got %v, want (%v, %v)", got, tt.neg, tt.other)
			}
		})
	}
}

func TestObserveWords(t *testing.T) {
	words, n := collect.Observe(collect.FromSlice(strings.Fields("the noble and the singer")), collect.String(),
		func(d *collect.Driver[string]) int { return d.Count() })
	if words != "thenobleandthesinger" {
		t.Errorf("words = %q", words)
	}
	if n != 5 {
		t.Errorf("count = %d, want 5", n)
	}
}

func TestIntoConvertsContainers(t *testing.T) {
	got := collect.Slice([]int{3, 4}, container.Vec[int]{1, 2})
	if want := []int{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	set := container.HashSet[string]{"go": {}}
	collect.Into(collect.FromSlice(strings.Fields("go zig go")), set)
	if len(set) != 2 {
		t.Errorf("set = %v, want go and zig", set)
	}

	byName := collect.Slice([]collect.Pair[string, int]{collect.PairOf("a", 1)}, container.HashMap[string, int](nil))
	if byName["a"] != 1 {
		t.Errorf("map = %v, want a:1", byName)
	}

	// A collector converts into itself.
	take := collect.Take(collect.ToSlice[int](), 1)
	if take.IntoCollector() != collect.Collector[int, []int](take) {
		t.Error("collector did not convert into itself")
	}
}

func TestRangeStopsSequence(t *testing.T) {
	produced := 0
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}
	got := collect.Range(seq, collect.Take(collect.ToSlice[int](), 4))
	if !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	if produced != 4 {
		t.Errorf("produced %d items, want 4", produced)
	}

	if sum := collect.Range(slices.Values([]int{1, 2, 3}), collect.Sum[int]()); sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestRangeRunsUnbatchingOverStoppedInner(t *testing.T) {
	calls := 0
	c := collect.Unbatching(collect.Take(collect.ToSlice[int](), 0), func(c collect.Collector[int, []int], n int) collect.Signal {
		calls++
		return c.Collect(n)
	})
	collect.Range(slices.Values([]int{1, 2, 3}), c)
	if calls != 1 {
		t.Errorf("closure ran %d times, want 1", calls)
	}
}

func TestPipeline(t *testing.T) {
	// Word lengths of the first three words longer than two letters,
	// grouped in pairs.
	words := strings.Fields("a collector pushes each item it is given into the next stage")
	got := collect.Slice(words,
		collect.Filter(
			collect.Map(
				collect.Take(
					collect.Nest(collect.ToSlice[[]int](), func() collect.Collector[int, []int] {
						return collect.Take(collect.ToSlice[int](), 2)
					}),
					3),
				func(w string) int { return len(w) }),
			func(w *string) bool { return len(*w) > 2 }))
	want := [][]int{{9, 6}, {4}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("group %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChainAndSkip(t *testing.T) {
	got := collect.Slice([]int{1, 2, 3, 4, 5, 6, 7},
		collect.Chain(collect.Take(collect.ToSlice[int](), 2), collect.Skip(collect.ToSlice[int](), 3)))
	if !slices.Equal(got.First, []int{1, 2}) || !slices.Equal(got.Second, []int{6, 7}) {
		t.Errorf("got %v, want ([1 2], [6 7])", got)
	}
}

func TestFuseLatches(t *testing.T) {
	f := collect.Fuse(collect.TakeWhile(collect.ToSlice[int](), func(n *int) bool { return *n > 0 }))
	steps := []struct {
		item int
		want collect.Signal
	}{
		{1, collect.Continue},
		{-1, collect.Stop},
		{2, collect.Stop},
	}
	for _, s := range steps {
		if got := f.Collect(s.item); got != s.want {
			t.Errorf("Collect(%d) = %v, want %v", s.item, got, s.want)
		}
	}
	if got := f.Finish(); !slices.Equal(got, []int{1}) {
		t.Errorf("got %v, want [1]", got)
	}
}
