package metrics

import "github.com/san-kum/sortviz/internal/step"

const DefaultHistory = 240

// Collector fans snapshots out to a fixed metric set and keeps a bounded
// inversion series for charting.
type Collector struct {
	metrics    []Metric
	inversions *Inversions
	history    []float64
	limit      int
	observed   int
}

func NewCollector(limit int) *Collector {
	if limit <= 0 {
		limit = DefaultHistory
	}
	inv := NewInversions()
	return &Collector{
		metrics:    []Metric{NewComparisons(), NewSwaps(), inv, NewProgress()},
		inversions: inv,
		limit:      limit,
	}
}

func (c *Collector) Observe(s step.Snapshot) {
	for _, m := range c.metrics {
		m.Observe(s)
	}
	c.observed++
	c.history = append(c.history, c.inversions.Value())
	if len(c.history) > c.limit {
		c.history = c.history[len(c.history)-c.limit:]
	}
}

func (c *Collector) Reset() {
	for _, m := range c.metrics {
		m.Reset()
	}
	c.history = c.history[:0]
	c.observed = 0
}

func (c *Collector) Metrics() []Metric { return c.metrics }

// Observed counts snapshots seen since the last Reset.
func (c *Collector) Observed() int { return c.observed }

func (c *Collector) Values() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// InversionHistory returns a copy of the recorded series, oldest first.
func (c *Collector) InversionHistory() []float64 {
	out := make([]float64, len(c.history))
	copy(out, c.history)
	return out
}

// InitialInversions is the disorder of the first snapshot after Reset.
func (c *Collector) InitialInversions() int { return c.inversions.Initial() }
