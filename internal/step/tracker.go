package step

// Tracker is a grow-only set of indices in [0, n). Each run owns one for its
// finalized positions and, where the engine has the notion, one for ordered
// regions.
type Tracker struct {
	member []bool
	count  int
}

func NewTracker(n int) *Tracker {
	return &Tracker{member: make([]bool, n)}
}

// Add inserts indices; out-of-range indices are ignored.
func (t *Tracker) Add(indices ...int) {
	for _, i := range indices {
		if i < 0 || i >= len(t.member) || t.member[i] {
			continue
		}
		t.member[i] = true
		t.count++
	}
}

// AddRange inserts every index in [lo, hi].
func (t *Tracker) AddRange(lo, hi int) {
	for i := lo; i <= hi; i++ {
		t.Add(i)
	}
}

func (t *Tracker) Contains(i int) bool {
	return i >= 0 && i < len(t.member) && t.member[i]
}

func (t *Tracker) Len() int { return t.count }

// Indices returns the members in ascending order.
func (t *Tracker) Indices() []int {
	out := make([]int, 0, t.count)
	for i, ok := range t.member {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Full returns the indices 0..n-1.
func Full(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
