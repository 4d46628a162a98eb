package step

import "slices"

// Highlight tags an index for the duration of a single snapshot.
type Highlight int

const (
	Default Highlight = iota
	Compare
	Swap
	Pivot
	Sorted
)

func (h Highlight) String() string {
	switch h {
	case Compare:
		return "compare"
	case Swap:
		return "swap"
	case Pivot:
		return "pivot"
	case Sorted:
		return "sorted"
	default:
		return "default"
	}
}

// Mark pairs an index with the highlight it carries.
type Mark struct {
	Index int
	Kind  Highlight
}

// Marks returns one mark of the given kind per index.
func Marks(kind Highlight, indices ...int) []Mark {
	out := make([]Mark, len(indices))
	for i, idx := range indices {
		out[i] = Mark{Index: idx, Kind: kind}
	}
	return out
}

// Snapshot is an immutable frame of a sort in progress.
type Snapshot struct {
	Array       []int
	Highlights  map[int]Highlight
	Finalized   []int // ascending, never shrinks within a run
	Ordered     []int // ascending, relative order only; values may still move
	Description string
}

// New assembles a snapshot. The array is copied, later marks override earlier
// ones on the same index, and finalized is sorted and deduplicated.
func New(array []int, marks []Mark, finalized []int, description string) Snapshot {
	s := Snapshot{
		Array:       slices.Clone(array),
		Highlights:  make(map[int]Highlight, len(marks)),
		Finalized:   normalize(finalized),
		Description: description,
	}
	if s.Array == nil {
		s.Array = []int{}
	}
	for _, m := range marks {
		s.Highlights[m.Index] = m.Kind
	}
	return s
}

// WithOrdered returns a copy of s carrying the given ordered indices.
func (s Snapshot) WithOrdered(ordered []int) Snapshot {
	s.Ordered = normalize(ordered)
	return s
}

func normalize(indices []int) []int {
	out := slices.Clone(indices)
	if out == nil {
		return []int{}
	}
	if !slices.IsSorted(out) {
		slices.Sort(out)
	}
	return slices.Compact(out)
}

// HighlightAt reports the highlight for index i, Default when unset.
func (s Snapshot) HighlightAt(i int) Highlight {
	if h, ok := s.Highlights[i]; ok {
		return h
	}
	return Default
}

// HasSwap reports whether any index carries a Swap highlight. Presentation
// layers use it to decide on audio feedback.
func (s Snapshot) HasSwap() bool {
	for _, h := range s.Highlights {
		if h == Swap {
			return true
		}
	}
	return false
}

// IsFinalized reports whether index i can no longer change in this run.
func (s Snapshot) IsFinalized(i int) bool {
	_, ok := slices.BinarySearch(s.Finalized, i)
	return ok
}

// IsOrdered reports whether index i belongs to an already ordered region.
func (s Snapshot) IsOrdered(i int) bool {
	_, ok := slices.BinarySearch(s.Ordered, i)
	return ok
}

// Complete reports whether every index is finalized.
func (s Snapshot) Complete() bool {
	return len(s.Finalized) == len(s.Array)
}

// IndicesOf returns the indices carrying kind, ascending.
func (s Snapshot) IndicesOf(kind Highlight) []int {
	var out []int
	for i, h := range s.Highlights {
		if h == kind {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}
