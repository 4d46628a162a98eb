package algorithms

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

func bubble[E any](e *emitter[E]) bool {
	n := len(e.arr)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if !e.emit(step.Marks(step.Compare, j, j+1), fmt.Sprintf("Comparing indices %d and %d", j, j+1)) {
				return false
			}
			if e.cmp(e.arr[j], e.arr[j+1]) > 0 {
				e.swap(j, j+1)
				if !e.emit(step.Marks(step.Swap, j, j+1), fmt.Sprintf("Swapped indices %d and %d", j, j+1)) {
					return false
				}
			}
		}
		last := n - i - 1
		e.final.Add(last)
		if !e.emit(step.Marks(step.Sorted, last), fmt.Sprintf("Position %d is sorted", last)) {
			return false
		}
	}
	return true
}

// insertion only finalizes on the last placement: earlier prefixes are
// ordered but later keys can still shift them right.
func insertion[E any](e *emitter[E]) bool {
	n := len(e.arr)
	for i := 1; i < n; i++ {
		key := e.arr[i]
		j := i - 1
		if !e.emit(step.Marks(step.Pivot, i), fmt.Sprintf("Selecting key at index %d", i)) {
			return false
		}
		for j >= 0 && e.cmp(e.arr[j], key) > 0 {
			if !e.emit(step.Marks(step.Compare, j, j+1), fmt.Sprintf("Comparing key with index %d", j)) {
				return false
			}
			e.arr[j+1] = e.arr[j]
			if !e.emit(step.Marks(step.Swap, j, j+1), fmt.Sprintf("Shifting value at index %d to index %d", j, j+1)) {
				return false
			}
			j--
		}
		e.arr[j+1] = key
		e.ordered.AddRange(0, i)
		if i == n-1 {
			e.final.AddRange(0, n-1)
		}
		if !e.emit(step.Marks(step.Swap, j+1), fmt.Sprintf("Inserted key at index %d", j+1)) {
			return false
		}
	}
	return true
}

func selection[E any](e *emitter[E]) bool {
	n := len(e.arr)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			marks := append(step.Marks(step.Pivot, minIdx), step.Marks(step.Compare, j)...)
			if !e.emit(marks, fmt.Sprintf("Finding minimum from index %d onward", i)) {
				return false
			}
			if e.cmp(e.arr[j], e.arr[minIdx]) < 0 {
				minIdx = j
				if !e.emit(step.Marks(step.Pivot, minIdx), fmt.Sprintf("New minimum at index %d", minIdx)) {
					return false
				}
			}
		}
		e.swap(i, minIdx)
		e.final.Add(i)
		marks := append(step.Marks(step.Sorted, i), step.Marks(step.Swap, minIdx)...)
		if !e.emit(marks, fmt.Sprintf("Swapped minimum into position %d", i)) {
			return false
		}
	}
	return true
}
