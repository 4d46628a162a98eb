package algorithms

import (
	"math/rand/v2"
	"testing"
)

func benchInput(n int) []int {
	rng := rand.New(rand.NewPCG(42, 7))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.IntN(1000)
	}
	return data
}

func benchEngine(b *testing.B, engine Engine) {
	data := benchInput(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range engine(data) {
		}
	}
}

func BenchmarkBubble(b *testing.B)    { benchEngine(b, Bubble) }
func BenchmarkInsertion(b *testing.B) { benchEngine(b, Insertion) }
func BenchmarkSelection(b *testing.B) { benchEngine(b, Selection) }
func BenchmarkQuick(b *testing.B)     { benchEngine(b, Quick) }
func BenchmarkMerge(b *testing.B)     { benchEngine(b, Merge) }

func BenchmarkRunPull(b *testing.B) {
	data := benchInput(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewRun(Quick, data).Drain()
	}
}
