package algorithms

import (
	"fmt"
	"slices"

	"github.com/san-kum/sortviz/internal/step"
)

func quick[E any](e *emitter[E]) bool {
	return quickRange(e, 0, len(e.arr)-1)
}

// quickRange partitions [low, high] around arr[high]; elements comparing
// <= pivot go to the low side.
func quickRange[E any](e *emitter[E], low, high int) bool {
	if low >= high {
		if low == high {
			e.final.Add(low)
			return e.emit(step.Marks(step.Sorted, low), fmt.Sprintf("Index %d is sorted", low))
		}
		return true
	}

	pivot := e.arr[high]
	i := low - 1
	if !e.emit(step.Marks(step.Pivot, high), fmt.Sprintf("Pivot chosen at index %d", high)) {
		return false
	}
	for j := low; j < high; j++ {
		marks := append(step.Marks(step.Compare, j), step.Marks(step.Pivot, high)...)
		if !e.emit(marks, fmt.Sprintf("Comparing index %d with pivot", j)) {
			return false
		}
		if e.cmp(e.arr[j], pivot) <= 0 {
			i++
			e.swap(i, j)
			if !e.emit(step.Marks(step.Swap, i, j), fmt.Sprintf("Swapped indices %d and %d", i, j)) {
				return false
			}
		}
	}

	p := i + 1
	e.swap(p, high)
	e.final.Add(p)
	if !e.emit(step.Marks(step.Sorted, p), fmt.Sprintf("Pivot settled at index %d", p)) {
		return false
	}
	return quickRange(e, low, p-1) && quickRange(e, p+1, high)
}

func mergeSort[E any](e *emitter[E]) bool {
	if len(e.arr) == 0 {
		return true
	}
	return mergeRange(e, 0, len(e.arr)-1)
}

func mergeRange[E any](e *emitter[E], start, end int) bool {
	if start >= end {
		e.ordered.Add(start)
		if isWhole(e, start, end) {
			e.final.Add(start)
		}
		return e.emit(step.Marks(step.Sorted, start), fmt.Sprintf("Index %d is trivially sorted", start))
	}
	mid := (start + end) / 2
	return mergeRange(e, start, mid) &&
		mergeRange(e, mid+1, end) &&
		merge(e, start, mid, end)
}

func isWhole[E any](e *emitter[E], start, end int) bool {
	return start == 0 && end == len(e.arr)-1
}

// merge combines [start, mid] and [mid+1, end]. Ties take the left element.
// Cells written by the outermost merge hold their final values, so they are
// finalized as soon as they are written.
func merge[E any](e *emitter[E], start, mid, end int) bool {
	left := slices.Clone(e.arr[start : mid+1])
	right := slices.Clone(e.arr[mid+1 : end+1])
	whole := isWhole(e, start, end)
	i, j, k := 0, 0, start

	place := func(v E, description string) bool {
		e.arr[k] = v
		if whole {
			e.final.Add(k)
		}
		ok := e.emit(step.Marks(step.Swap, k), description)
		k++
		return ok
	}

	for i < len(left) && j < len(right) {
		if !e.emit(step.Marks(step.Compare, k, start+i, mid+1+j), fmt.Sprintf("Merging indices %d to %d", start, end)) {
			return false
		}
		var v E
		if e.cmp(left[i], right[j]) <= 0 {
			v = left[i]
			i++
		} else {
			v = right[j]
			j++
		}
		if !place(v, fmt.Sprintf("Placed value at index %d", k)) {
			return false
		}
	}
	for ; i < len(left); i++ {
		if !place(left[i], fmt.Sprintf("Copying remaining left element to index %d", k)) {
			return false
		}
	}
	for ; j < len(right); j++ {
		if !place(right[j], fmt.Sprintf("Copying remaining right element to index %d", k)) {
			return false
		}
	}

	e.ordered.AddRange(start, end)
	if whole {
		e.final.AddRange(start, end)
	}
	span := make([]int, 0, end-start+1)
	for idx := start; idx <= end; idx++ {
		span = append(span, idx)
	}
	return e.emit(step.Marks(step.Sorted, span...), fmt.Sprintf("Segment %d:%d sorted", start, end))
}
