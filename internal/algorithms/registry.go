package algorithms

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when an id or hot key matches no engine.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Algorithm describes one registered engine.
type Algorithm struct {
	ID      string
	Name    string
	Key     string
	Summary string
	Engine  Engine
}

type Registry struct {
	order []string
	byID  map[string]Algorithm
	byKey map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		byID:  make(map[string]Algorithm),
		byKey: make(map[string]string),
	}

	r.register(Algorithm{ID: "bubble", Name: "Bubble Sort", Key: "1", Summary: "adjacent exchanges", Engine: Bubble})
	r.register(Algorithm{ID: "insertion", Name: "Insertion Sort", Key: "2", Summary: "grow a sorted prefix", Engine: Insertion})
	r.register(Algorithm{ID: "selection", Name: "Selection Sort", Key: "3", Summary: "pick the minimum", Engine: Selection})
	r.register(Algorithm{ID: "quick", Name: "Quick Sort", Key: "4", Summary: "lomuto partition", Engine: Quick})
	r.register(Algorithm{ID: "merge", Name: "Merge Sort", Key: "5", Summary: "top-down merging", Engine: Merge})

	return r
}

func (r *Registry) register(a Algorithm) {
	r.order = append(r.order, a.ID)
	r.byID[a.ID] = a
	if a.Key != "" {
		r.byKey[a.Key] = a.ID
	}
}

func (r *Registry) Get(id string) (Algorithm, error) {
	a, ok := r.byID[id]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}
	return a, nil
}

// ByKey resolves a hot key such as "3".
func (r *Registry) ByKey(key string) (Algorithm, error) {
	id, ok := r.byKey[key]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: key %q", ErrUnknownAlgorithm, key)
	}
	return r.byID[id], nil
}

// List returns the registered algorithms in display order.
func (r *Registry) List() []Algorithm {
	out := make([]Algorithm, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// CreateRun selects an engine by id and starts a run over data.
func (r *Registry) CreateRun(id string, data []int) (*Run, error) {
	a, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return NewRun(a.Engine, data), nil
}
