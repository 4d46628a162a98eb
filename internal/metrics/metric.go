package metrics

import "github.com/san-kum/sortviz/internal/step"

// Metric accumulates a single number over a stream of snapshots.
type Metric interface {
	Name() string
	Observe(s step.Snapshot)
	Value() float64
	Reset()
}
