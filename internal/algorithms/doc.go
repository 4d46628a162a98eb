// Package algorithms implements the sorting engines and the pull-based run
// that drives them.
//
// Every engine is a function from an input slice to a lazy, finite sequence
// of [step.Snapshot] values. Engines work on a private copy of the input and
// do no work until the consumer asks for the next snapshot:
//
//   - [Bubble], [Insertion], [Selection]: iterative engines
//   - [Quick], [Merge]: recursive engines sharing one working array per run
//   - [Registry]: maps algorithm ids and hot keys to engines
//   - [Run]: the single-consumer pull handle returned by [Registry.CreateRun]
//
// # Example
//
//	reg := algorithms.NewRegistry()
//	run, _ := reg.CreateRun("quick", []int{5, 1, 4})
//	defer run.Stop()
//	for s, ok := run.Next(); ok; s, ok = run.Next() {
//		fmt.Println(s.Array, s.Description)
//	}
//
// # Thread Safety
//
// A Run is NOT safe for concurrent use. Each run owns its array and its
// finalized set; nothing is shared between runs.
package algorithms
