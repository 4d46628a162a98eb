package algorithms

import (
	"iter"

	"github.com/san-kum/sortviz/internal/step"
)

// Run is a non-restartable pull handle over one engine sequence. The engine
// advances only inside Next. A run that is abandoned before exhaustion must
// be released with Stop.
type Run struct {
	next   func() (step.Snapshot, bool)
	stop   func()
	pulled int
	done   bool
}

// NewRun starts engine over a private copy of data.
func NewRun(engine Engine, data []int) *Run {
	next, stop := iter.Pull(engine(data))
	return &Run{next: next, stop: stop}
}

// Next returns the next snapshot. Once the sequence is exhausted it reports
// false on this and every later call.
func (r *Run) Next() (step.Snapshot, bool) {
	if r.done {
		return step.Snapshot{}, false
	}
	s, ok := r.next()
	if !ok {
		r.Stop()
		return step.Snapshot{}, false
	}
	r.pulled++
	return s, true
}

// Stop abandons the remainder of the run. It is safe to call more than once.
func (r *Run) Stop() {
	r.done = true
	r.stop()
}

// Done reports whether the run is exhausted or stopped.
func (r *Run) Done() bool { return r.done }

// Pulled is the number of snapshots delivered so far.
func (r *Run) Pulled() int { return r.pulled }

// Drain pulls every remaining snapshot and returns the last one seen.
func (r *Run) Drain() (step.Snapshot, int) {
	var last step.Snapshot
	n := 0
	for s, ok := r.Next(); ok; s, ok = r.Next() {
		last = s
		n++
	}
	return last, n
}
