package drive_test

import (
	"slices"
	"testing"

	"github.com/lguimbarda/min-collect/collect/container"
	"github.com/lguimbarda/min-collect/collect/drive"
	"github.com/lguimbarda/min-collect/collect/pull"
	"github.com/lguimbarda/min-collect/internal/collecttest"
)

func TestObserveCount(t *testing.T) {
	words, n := drive.Observe(pull.Fields("the noble and the singer"), container.NewString(), func(d *drive.Driver[string]) int {
		return d.Count()
	})
	if words != "thenobleandthesinger" {
		t.Errorf("words = %q", words)
	}
	if n != 5 {
		t.Errorf("count = %d, want 5", n)
	}
}

func TestObserveForwardsAfterStop(t *testing.T) {
	tests := []struct {
		name  string
		pull  func(*drive.Driver[int]) int
		want  int
		limit int
		seen  []int
	}{
		{
			name:  "count",
			pull:  func(d *drive.Driver[int]) int { return d.Count() },
			want:  100,
			limit: 3,
			seen:  []int{0, 1, 2},
		},
		{
			name: "last",
			pull: func(d *drive.Driver[int]) int {
				n, _ := d.Last()
				return n
			},
			want:  99,
			limit: 2,
			seen:  []int{0, 1},
		},
		{
			name: "nth",
			pull: func(d *drive.Driver[int]) int {
				n, _ := d.Nth(50)
				return n
			},
			want:  50,
			limit: 4,
			seen:  []int{0, 1, 2, 3},
		},
		{
			name: "fold",
			pull: func(d *drive.Driver[int]) int {
				return drive.Fold(d, 0, func(acc, n int) int { return acc + n }, nil)
			},
			want:  4950,
			limit: 1,
			seen:  []int{0},
		},
		{
			name:  "observer never stops",
			pull:  func(d *drive.Driver[int]) int { return d.Count() },
			want:  5,
			limit: -1,
			seen:  []int{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := 100
			if tt.limit < 0 {
				end = 5
			}
			seen, got := drive.Observe(pull.Ints(0, end), collecttest.Record[int](tt.limit), tt.pull)
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
			if !slices.Equal(seen, tt.seen) {
				t.Errorf("observer saw %v, want %v", seen, tt.seen)
			}
		})
	}
}

func TestNthObservesSkippedItems(t *testing.T) {
	seen, got := drive.Observe(pull.Of("a", "b", "c", "d"), collecttest.Record[string](-1), func(d *drive.Driver[string]) string {
		s, ok := d.Nth(2)
		if !ok {
			t.Error("Nth(2) found nothing")
		}
		return s
	})
	if got != "c" {
		t.Errorf("got %q, want c", got)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(seen, want) {
		t.Errorf("observer saw %v, want %v", seen, want)
	}
}

func TestNthPastEnd(t *testing.T) {
	seen, ok := drive.Observe(pull.Of(1, 2), collecttest.Record[int](1), func(d *drive.Driver[int]) bool {
		_, ok := d.Nth(5)
		if _, again := d.Next(); again {
			t.Error("driver yielded after the source ended")
		}
		return ok
	})
	if ok {
		t.Error("Nth past the end found an item")
	}
	if !slices.Equal(seen, []int{1}) {
		t.Errorf("observer saw %v, want [1]", seen)
	}
}

func TestDriverAll(t *testing.T) {
	seen, sum := drive.Observe(pull.Of(1, 2, 3, 4, 5), collecttest.Record[int](-1), func(d *drive.Driver[int]) int {
		total := 0
		for n := range d.All() {
			if n > 3 {
				break
			}
			total += n
		}
		return total
	})
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
	if want := []int{1, 2, 3, 4}; !slices.Equal(seen, want) {
		t.Errorf("observer saw %v, want %v", seen, want)
	}
}

func TestDriverStoppedCollector(t *testing.T) {
	src := collecttest.CountSlice([]int{1, 2, 3})
	seen, n := drive.Observe(src, collecttest.Record[int](0), func(d *drive.Driver[int]) int {
		if !d.Stopped() {
			t.Error("driver does not report the stopped collector")
		}
		return d.Count()
	})
	if seen != nil {
		t.Errorf("observer saw %v", seen)
	}
	if n != 3 || src.Pulled != 3 {
		t.Errorf("count = %d with %d pulled, want 3 and 3", n, src.Pulled)
	}
}

func TestDriverSizeHint(t *testing.T) {
	drive.Observe(pull.Of(1, 2, 3), collecttest.Record[int](-1), func(d *drive.Driver[int]) struct{} {
		d.Next()
		if lo, hi := d.SizeHint(); lo != 2 || hi != 2 {
			t.Errorf("SizeHint() = (%d, %d) after one item, want (2, 2)", lo, hi)
		}
		d.Count()
		if lo, hi := d.SizeHint(); lo != 0 || hi != 0 {
			t.Errorf("SizeHint() = (%d, %d) at the end, want (0, 0)", lo, hi)
		}
		return struct{}{}
	})
}
