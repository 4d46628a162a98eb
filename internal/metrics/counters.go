package metrics

import "github.com/san-kum/sortviz/internal/step"

type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{
		name: "comparisons",
	}
}

func (c *Comparisons) Name() string {
	return c.name
}

func (c *Comparisons) Observe(s step.Snapshot) {
	for _, kind := range s.Highlights {
		if kind == step.Compare {
			c.count++
			return
		}
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }

type Swaps struct {
	name  string
	count int
}

func NewSwaps() *Swaps {
	return &Swaps{
		name: "swaps",
	}
}

func (w *Swaps) Name() string {
	return w.name
}

func (w *Swaps) Observe(s step.Snapshot) {
	if s.HasSwap() {
		w.count++
	}
}

func (w *Swaps) Value() float64 { return float64(w.count) }

func (w *Swaps) Reset() { w.count = 0 }
