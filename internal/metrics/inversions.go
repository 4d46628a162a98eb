package metrics

import "github.com/san-kum/sortviz/internal/step"

// Inversions reports how far the latest array is from sorted: the number of
// index pairs i < j with a[i] > a[j].
type Inversions struct {
	name    string
	current int
	initial int
	samples int
	buf     []int
}

func NewInversions() *Inversions {
	return &Inversions{
		name: "inversions",
	}
}

func (v *Inversions) Name() string { return v.name }

func (v *Inversions) Observe(s step.Snapshot) {
	v.current = v.count(s.Array)
	if v.samples == 0 {
		v.initial = v.current
	}
	v.samples++
}

func (v *Inversions) Value() float64 {
	return float64(v.current)
}

// Initial is the count at the first observation since Reset.
func (v *Inversions) Initial() int { return v.initial }

func (v *Inversions) Reset() {
	v.current = 0
	v.initial = 0
	v.samples = 0
}

func (v *Inversions) count(a []int) int {
	if cap(v.buf) < 2*len(a) {
		v.buf = make([]int, 2*len(a))
	}
	work := v.buf[:len(a)]
	tmp := v.buf[len(a) : 2*len(a)]
	copy(work, a)
	return CountInversions(work, tmp)
}

// CountInversions sorts work in place using tmp as scratch and returns the
// inversion count. Both slices must have the same length.
func CountInversions(work, tmp []int) int {
	n := len(work)
	if n < 2 {
		return 0
	}
	mid := n / 2
	inv := CountInversions(work[:mid], tmp[:mid]) + CountInversions(work[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if work[i] <= work[j] {
			tmp[k] = work[i]
			i++
		} else {
			tmp[k] = work[j]
			inv += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], work[i:mid])
	copy(tmp[k:], work[j:n])
	copy(work, tmp)
	return inv
}
