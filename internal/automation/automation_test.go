package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/step"
)

const scenarioYAML = `name: smoke
description: two quick runs
steps:
  - algorithm: quick
    size: 20
    seed: 7
  - preset: small
    algorithm: merge
    shape: reversed
    seed: 3
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "smoke" || len(sc.Steps) != 2 {
		t.Fatalf("scenario = %+v", sc)
	}

	sums, err := RunScenario(context.Background(), sc, algorithms.NewRegistry(), config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 {
		t.Fatalf("got %d summaries", len(sums))
	}
	if sums[0].Algorithm != "quick" || sums[0].Size != 20 {
		t.Errorf("first run = %s/%d", sums[0].Algorithm, sums[0].Size)
	}
	if sums[1].Algorithm != "merge" || sums[1].Size != 16 {
		t.Errorf("second run = %s/%d", sums[1].Algorithm, sums[1].Size)
	}
	for _, s := range sums {
		if !s.OK() {
			t.Errorf("%s: sorted=%v permutation=%v", s.Algorithm, s.Sorted, s.Permutation)
		}
		if s.Steps == 0 {
			t.Errorf("%s produced no snapshots", s.Algorithm)
		}
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := LoadScenario(writeScenario(t, "name: empty\nsteps: []\n")); !errors.Is(err, ErrEmptyScenario) {
		t.Errorf("err = %v, want ErrEmptyScenario", err)
	}
	if _, err := LoadScenario(writeScenario(t, "steps: [")); err == nil {
		t.Error("bad yaml should fail")
	}
}

func TestScenarioStep_Resolve(t *testing.T) {
	base := config.DefaultConfig()

	cfg, err := ScenarioStep{Algorithm: "selection", Size: 8}.Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Algorithm != "selection" || cfg.Data.Size != 8 {
		t.Errorf("resolved = %s/%d", cfg.Algorithm, cfg.Data.Size)
	}
	if base.Data.Size != config.DefaultSize {
		t.Error("resolve modified the base config")
	}

	if _, err := (ScenarioStep{Preset: "nope"}).Resolve(base); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("unknown preset err = %v", err)
	}
	if _, err := (ScenarioStep{Shape: "spiral"}).Resolve(base); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("bad shape err = %v", err)
	}
}

func TestRunScenario_UnknownAlgorithm(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Algorithm: "bogo", Size: 4, Seed: 1}}}
	_, err := RunScenario(context.Background(), sc, algorithms.NewRegistry(), config.DefaultConfig())
	if !errors.Is(err, algorithms.ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestExecute(t *testing.T) {
	reg := algorithms.NewRegistry()
	data := []int{5, 1, 4, 2, 3}

	seen := 0
	sum, err := Execute(context.Background(), reg, "bubble", data, func(step.Snapshot) { seen++ })
	if err != nil {
		t.Fatal(err)
	}
	if seen != sum.Steps || seen == 0 {
		t.Errorf("observed %d snapshots, summary says %d", seen, sum.Steps)
	}
	if !slices.Equal(sum.Final, []int{1, 2, 3, 4, 5}) || !sum.OK() {
		t.Errorf("final = %v", sum.Final)
	}
	if sum.InitialInversions != 6 {
		t.Errorf("initial inversions = %d, want 6", sum.InitialInversions)
	}
	if !slices.Equal(data, []int{5, 1, 4, 2, 3}) {
		t.Error("input was mutated")
	}
}

func TestExecute_Empty(t *testing.T) {
	sum, err := Execute(context.Background(), algorithms.NewRegistry(), "merge", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Size != 0 || !sum.OK() {
		t.Errorf("empty run = %+v", sum)
	}
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Execute(ctx, algorithms.NewRegistry(), "quick", []int{3, 2, 1}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &Sweep{
		Sizes:  []int{5, 12},
		Trials: 3,
		Data:   config.DefaultConfig().Data,
		Seed:   42,
	}
	res, err := RunSweep(context.Background(), sweep, algorithms.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 10 {
		t.Fatalf("got %d results, want 10", len(res))
	}
	for _, r := range res {
		if r.Failures != 0 {
			t.Errorf("%s/%d: %d failed trials", r.Algorithm, r.Size, r.Failures)
		}
		if r.Steps < 1 {
			t.Errorf("%s/%d: mean steps %.1f", r.Algorithm, r.Size, r.Steps)
		}
	}
	if res[0].Size != 5 || res[len(res)-1].Size != 12 {
		t.Error("results should be ordered by size")
	}
}

func TestRunSweep_Parallel(t *testing.T) {
	base := Sweep{
		Sizes:  []int{9, 30},
		Trials: 2,
		Data:   config.DefaultConfig().Data,
		Seed:   5,
	}
	reg := algorithms.NewRegistry()
	seq, err := RunSweep(context.Background(), &base, reg)
	if err != nil {
		t.Fatal(err)
	}

	par := base
	par.Workers = 4
	got, err := RunSweep(context.Background(), &par, reg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range seq {
		if got[i].Algorithm != seq[i].Algorithm || got[i].Size != seq[i].Size || got[i].Steps != seq[i].Steps || got[i].Swaps != seq[i].Swaps {
			t.Errorf("row %d: parallel %+v, sequential %+v", i, got[i], seq[i])
		}
	}
}

func TestParallelFor(t *testing.T) {
	seen := make([]int, 50)
	err := parallelFor(context.Background(), len(seen), 8, func(i int) error {
		seen[i]++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("index %d visited %d times", i, n)
		}
	}

	boom := errors.New("boom")
	err = parallelFor(context.Background(), 10, 3, func(i int) error {
		if i == 7 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := parallelFor(ctx, 100, 4, func(int) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled err = %v", err)
	}
}

func TestEquivalent(t *testing.T) {
	reg := algorithms.NewRegistry()
	data := []int{3, 1, 2, 1, 9, 0}
	var sums []Summary
	for _, id := range reg.IDs() {
		s, err := Execute(context.Background(), reg, id, data, nil)
		if err != nil {
			t.Fatal(err)
		}
		sums = append(sums, s)
	}
	if !Equivalent(sums) {
		t.Error("engines disagree on the final array")
	}
	sums[2].Final = []int{0}
	if Equivalent(sums) {
		t.Error("a differing final array should be detected")
	}
	if !Equivalent(nil) {
		t.Error("no summaries are trivially equivalent")
	}
}
