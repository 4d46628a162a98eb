// Package dataset generates the integer arrays the visualizer sorts.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/san-kum/sortviz/internal/config"
)

var (
	ErrUnknownShape  = errors.New("dataset: unknown shape")
	ErrInvalidBounds = errors.New("dataset: invalid bounds")
)

type Shape string

const (
	Random       Shape = "random"
	Reversed     Shape = "reversed"
	Sorted       Shape = "sorted"
	NearlySorted Shape = "nearly_sorted"
	FewUnique    Shape = "few_unique"
)

var shapes = []Shape{Random, Reversed, Sorted, NearlySorted, FewUnique}

func Shapes() []Shape { return slices.Clone(shapes) }

func ParseShape(s string) (Shape, error) {
	if s == "" {
		return Random, nil
	}
	for _, sh := range shapes {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Generate returns n values drawn from [lo, hi] and arranged by shape.
func Generate(shape Shape, n, lo, hi int, rng *rand.Rand) ([]int, error) {
	if n < 0 || lo > hi {
		return nil, fmt.Errorf("%w: n=%d range=[%d, %d]", ErrInvalidBounds, n, lo, hi)
	}
	span := hi - lo + 1
	draw := func() int { return lo + rng.IntN(span) }

	data := make([]int, n)
	switch shape {
	case Random, "":
		for i := range data {
			data[i] = draw()
		}
	case Sorted, Reversed, NearlySorted:
		for i := range data {
			data[i] = draw()
		}
		slices.Sort(data)
		switch shape {
		case Reversed:
			slices.Reverse(data)
		case NearlySorted:
			// roughly one swap per ten elements
			for k := 0; k < n/10+1 && n > 1; k++ {
				i := rng.IntN(n - 1)
				data[i], data[i+1] = data[i+1], data[i]
			}
		}
	case FewUnique:
		pool := make([]int, min(4, span))
		for i := range pool {
			pool[i] = draw()
		}
		for i := range data {
			data[i] = pool[rng.IntN(len(pool))]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	return data, nil
}

// Source returns a generator for the player. A zero seed draws from the clock
// so each shuffle differs; a fixed seed replays the same sequence of arrays.
func Source(cfg config.DataConfig, seed int64) (func() []int, error) {
	shape, err := ParseShape(cfg.Shape)
	if err != nil {
		return nil, err
	}
	if cfg.Size < 0 || cfg.Min > cfg.Max {
		return nil, fmt.Errorf("%w: n=%d range=[%d, %d]", ErrInvalidBounds, cfg.Size, cfg.Min, cfg.Max)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	return func() []int {
		data, _ := Generate(shape, cfg.Size, cfg.Min, cfg.Max, rng)
		return data
	}, nil
}
