package algorithms

import (
	"cmp"
	"iter"
	"slices"

	"github.com/san-kum/sortviz/internal/step"
)

// Engine turns an input slice into a lazy sequence of snapshots. The input
// is copied when the engine is called; ranging the sequence again replays
// the same run from that copy.
type Engine func(data []int) iter.Seq[step.Snapshot]

// emitter owns the working array and index sets of one run. Engines are
// generic over the element type so tests can sort tagged values; key
// projects an element to the integer shown in snapshots.
type emitter[E any] struct {
	arr     []E
	key     func(E) int
	cmp     func(a, b E) int
	final   *step.Tracker
	ordered *step.Tracker
	yield   func(step.Snapshot) bool
}

type body[E any] func(e *emitter[E]) bool

func (e *emitter[E]) values() []int {
	out := make([]int, len(e.arr))
	for i, v := range e.arr {
		out[i] = e.key(v)
	}
	return out
}

// emit yields one snapshot and reports whether the consumer wants more.
func (e *emitter[E]) emit(marks []step.Mark, description string) bool {
	s := step.New(e.values(), marks, e.final.Indices(), description)
	if e.ordered != nil {
		s = s.WithOrdered(e.ordered.Indices())
	}
	return e.yield(s)
}

func (e *emitter[E]) complete(description string) {
	all := step.Full(len(e.arr))
	e.yield(step.New(e.values(), nil, all, description).WithOrdered(all))
}

func (e *emitter[E]) swap(i, j int) {
	e.arr[i], e.arr[j] = e.arr[j], e.arr[i]
}

func sequence[E any](data []E, key func(E) int, compare func(a, b E) int, run body[E], tracksOrder bool, done string) iter.Seq[step.Snapshot] {
	src := slices.Clone(data)
	return func(yield func(step.Snapshot) bool) {
		e := &emitter[E]{
			arr:   slices.Clone(src),
			key:   key,
			cmp:   compare,
			final: step.NewTracker(len(src)),
			yield: yield,
		}
		if tracksOrder {
			e.ordered = step.NewTracker(len(src))
		}
		if run(e) {
			e.complete(done)
		}
	}
}

func identity(v int) int { return v }

func ints(data []int, run body[int], tracksOrder bool, done string) iter.Seq[step.Snapshot] {
	return sequence(data, identity, cmp.Compare[int], run, tracksOrder, done)
}

// Bubble yields the states of an adjacent-exchange bubble sort.
func Bubble(data []int) iter.Seq[step.Snapshot] {
	return ints(data, bubble[int], false, "Bubble sort complete")
}

// Insertion yields the states of an insertion sort.
func Insertion(data []int) iter.Seq[step.Snapshot] {
	return ints(data, insertion[int], true, "Insertion sort complete")
}

// Selection yields the states of a selection sort.
func Selection(data []int) iter.Seq[step.Snapshot] {
	return ints(data, selection[int], false, "Selection sort complete")
}

// Quick yields the states of a Lomuto-partition quick sort.
func Quick(data []int) iter.Seq[step.Snapshot] {
	return ints(data, quick[int], false, "Quick sort complete")
}

// Merge yields the states of a top-down merge sort.
func Merge(data []int) iter.Seq[step.Snapshot] {
	return ints(data, mergeSort[int], true, "Merge sort complete")
}
