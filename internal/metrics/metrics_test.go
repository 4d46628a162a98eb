package metrics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/san-kum/sortviz/internal/step"
)

func bruteInversions(a []int) int {
	n := 0
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				n++
			}
		}
	}
	return n
}

func TestCountInversions(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want int
	}{
		{"empty", nil, 0},
		{"sorted", []int{1, 2, 3, 4}, 0},
		{"reversed", []int{4, 3, 2, 1}, 6},
		{"duplicates", []int{2, 2, 1, 2}, 2},
		{"mixed", []int{3, 1, 2}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := append([]int(nil), tt.in...)
			if got := CountInversions(work, make([]int, len(work))); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountInversions_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 50; trial++ {
		a := make([]int, rng.IntN(40))
		for i := range a {
			a[i] = rng.IntN(10)
		}
		want := bruteInversions(a)
		work := append([]int(nil), a...)
		if got := CountInversions(work, make([]int, len(a))); got != want {
			t.Fatalf("%v: got %d, want %d", a, got, want)
		}
	}
}

func TestCounters(t *testing.T) {
	c, w := NewComparisons(), NewSwaps()
	snaps := []step.Snapshot{
		step.New([]int{2, 1}, step.Marks(step.Compare, 0, 1), nil, ""),
		step.New([]int{1, 2}, step.Marks(step.Swap, 0, 1), nil, ""),
		step.New([]int{1, 2}, nil, []int{1}, ""),
	}
	for _, s := range snaps {
		c.Observe(s)
		w.Observe(s)
	}
	if c.Value() != 1 || w.Value() != 1 {
		t.Errorf("comparisons=%v swaps=%v, want 1 and 1", c.Value(), w.Value())
	}

	c.Reset()
	w.Reset()
	if c.Value() != 0 || w.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestProgress(t *testing.T) {
	p := NewProgress()
	p.Observe(step.New([]int{3, 1, 2, 4}, nil, []int{3}, ""))
	if math.Abs(p.Value()-0.25) > 1e-9 {
		t.Errorf("progress = %v, want 0.25", p.Value())
	}
	p.Observe(step.New(nil, nil, nil, ""))
	if p.Value() != 1 {
		t.Errorf("empty array progress = %v, want 1", p.Value())
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector(2)
	c.Observe(step.New([]int{3, 2, 1}, step.Marks(step.Compare, 0, 1), nil, ""))
	c.Observe(step.New([]int{2, 3, 1}, step.Marks(step.Swap, 0, 1), nil, ""))
	c.Observe(step.New([]int{2, 1, 3}, step.Marks(step.Swap, 1, 2), []int{2}, ""))

	v := c.Values()
	if v["comparisons"] != 1 || v["swaps"] != 2 || v["inversions"] != 1 {
		t.Errorf("unexpected values: %v", v)
	}
	if c.InitialInversions() != 3 {
		t.Errorf("initial inversions = %d, want 3", c.InitialInversions())
	}
	hist := c.InversionHistory()
	if len(hist) != 2 || hist[0] != 2 || hist[1] != 1 {
		t.Errorf("history = %v, want [2 1]", hist)
	}
	if c.Observed() != 3 {
		t.Errorf("observed = %d", c.Observed())
	}

	c.Reset()
	if len(c.InversionHistory()) != 0 || c.Values()["swaps"] != 0 {
		t.Error("reset did not clear collector")
	}
}
