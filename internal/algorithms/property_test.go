package algorithms

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func engineParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.MaxSize = 24
	return parameters
}

// For any finite integer input, every engine ends sorted, finalized, and as
// a permutation of its input, with monotone and immutable finalization.
func TestEngines_Invariants_Property(t *testing.T) {
	properties := gopter.NewProperties(engineParameters())
	reg := NewRegistry()

	properties.Property("every run satisfies the snapshot invariants", prop.ForAll(
		func(data []int) bool {
			for _, a := range reg.List() {
				if err := checkRun(data, collect(a.Engine, data)); err != nil {
					t.Logf("%s on %v: %v", a.ID, data, err)
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}

// Partially consuming a run never touches the caller's slice.
func TestRun_NonMutation_Property(t *testing.T) {
	properties := gopter.NewProperties(engineParameters())
	reg := NewRegistry()

	properties.Property("input unchanged after partial consumption", prop.ForAll(
		func(data []int, pulls int) bool {
			orig := slices.Clone(data)
			for _, id := range reg.IDs() {
				run, err := reg.CreateRun(id, data)
				if err != nil {
					return false
				}
				for i := 0; i < pulls; i++ {
					run.Next()
				}
				run.Stop()
				if !slices.Equal(data, orig) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}

// All engines agree on the sorted result for the same input.
func TestEngines_Equivalence_Property(t *testing.T) {
	properties := gopter.NewProperties(engineParameters())
	reg := NewRegistry()

	properties.Property("final arrays are identical", prop.ForAll(
		func(data []int) bool {
			var ref []int
			for _, a := range reg.List() {
				last, _ := NewRun(a.Engine, data).Drain()
				if ref == nil {
					ref = last.Array
					continue
				}
				if !slices.Equal(ref, last.Array) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
