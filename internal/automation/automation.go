package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
)

// ErrEmptyScenario is returned for a scenario with no steps.
var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep overrides the base config for one run. Zero fields keep the
// base (or preset) value.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Preset    string `yaml:"preset"`
	Shape     string `yaml:"shape"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
}

// Summary is the outcome of one headless run.
type Summary struct {
	Algorithm         string
	Size              int
	Steps             int
	Comparisons       int
	Swaps             int
	InitialInversions int
	Sorted            bool
	Permutation       bool
	Final             []int
	Duration          time.Duration
}

// OK reports whether the run ended sorted and kept its multiset.
func (s Summary) OK() bool { return s.Sorted && s.Permutation }

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScenario, path)
	}

	return &scenario, nil
}

// Resolve builds the effective config of a step on top of base.
func (s ScenarioStep) Resolve(base *config.Config) (*config.Config, error) {
	cfg := *base
	if s.Preset != "" {
		p := config.GetPreset(s.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", config.ErrInvalidConfig, s.Preset)
		}
		cfg = *p
	}
	if s.Algorithm != "" {
		cfg.Algorithm = s.Algorithm
	}
	if s.Shape != "" {
		cfg.Data.Shape = s.Shape
	}
	if s.Size > 0 {
		cfg.Data.Size = s.Size
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario, registry *algorithms.Registry, base *config.Config) ([]Summary, error) {
	results := make([]Summary, 0, len(scenario.Steps))
	log := slog.Default().With("scenario", scenario.Name)

	for i, st := range scenario.Steps {
		cfg, err := st.Resolve(base)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		source, err := dataset.Source(cfg.Data, cfg.Seed)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		log.Info("running step", "step", i+1, "of", len(scenario.Steps), "algorithm", cfg.Algorithm, "size", cfg.Data.Size)
		sum, err := Execute(ctx, registry, cfg.Algorithm, source(), nil)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, sum)
	}

	return results, nil
}

// Execute drives one engine over data to exhaustion, checking ctx between
// pulls. observe, when set, sees every snapshot.
func Execute(ctx context.Context, registry *algorithms.Registry, id string, data []int, observe func(step.Snapshot)) (Summary, error) {
	run, err := registry.CreateRun(id, data)
	if err != nil {
		return Summary{}, err
	}
	defer run.Stop()

	col := metrics.NewCollector(1)
	final := slices.Clone(data)
	start := time.Now()
	for s, ok := run.Next(); ok; s, ok = run.Next() {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		col.Observe(s)
		if observe != nil {
			observe(s)
		}
		final = s.Array
	}
	elapsed := time.Since(start)

	v := col.Values()
	want := slices.Clone(data)
	slices.Sort(want)
	got := slices.Clone(final)
	slices.Sort(got)

	return Summary{
		Algorithm:         id,
		Size:              len(data),
		Steps:             col.Observed(),
		Comparisons:       int(v["comparisons"]),
		Swaps:             int(v["swaps"]),
		InitialInversions: col.InitialInversions(),
		Sorted:            slices.IsSorted(final),
		Permutation:       slices.Equal(want, got),
		Final:             final,
		Duration:          elapsed,
	}, nil
}

// Sweep runs every algorithm across a range of sizes, averaging over trials
type Sweep struct {
	Algorithms []string
	Sizes      []int
	Trials     int
	Data       config.DataConfig
	Seed       int64
	// Workers > 1 runs the algorithms of one size concurrently.
	Workers int
}

// SweepResult holds the averages for one algorithm at one size
type SweepResult struct {
	Algorithm   string
	Size        int
	Steps       float64
	Comparisons float64
	Swaps       float64
	Duration    time.Duration
	Failures    int
}

// RunSweep executes a size sweep. Every algorithm sees the same arrays at a
// given size and trial.
func RunSweep(ctx context.Context, sweep *Sweep, registry *algorithms.Registry) ([]SweepResult, error) {
	trials := max(sweep.Trials, 1)
	ids := sweep.Algorithms
	if len(ids) == 0 {
		ids = registry.IDs()
	}
	results := make([]SweepResult, len(ids)*len(sweep.Sizes))

	for si, n := range sweep.Sizes {
		dc := sweep.Data
		dc.Size = n
		source, err := dataset.Source(dc, sweep.Seed)
		if err != nil {
			return nil, err
		}
		inputs := make([][]int, trials)
		for t := range inputs {
			inputs[t] = source()
		}

		row := results[si*len(ids) : (si+1)*len(ids)]
		err = parallelFor(ctx, len(ids), sweep.Workers, func(i int) error {
			r, err := sweepOne(ctx, registry, ids[i], inputs)
			row[i] = r
			return err
		})
		if err != nil {
			return nil, err
		}
		slog.Debug("sweep size done", "size", n, "trials", trials)
	}

	return results, nil
}

func sweepOne(ctx context.Context, registry *algorithms.Registry, id string, inputs [][]int) (SweepResult, error) {
	r := SweepResult{Algorithm: id}
	if len(inputs) > 0 {
		r.Size = len(inputs[0])
	}
	for _, data := range inputs {
		sum, err := Execute(ctx, registry, id, data, nil)
		if err != nil {
			return r, err
		}
		r.Steps += float64(sum.Steps)
		r.Comparisons += float64(sum.Comparisons)
		r.Swaps += float64(sum.Swaps)
		r.Duration += sum.Duration
		if !sum.OK() {
			r.Failures++
		}
	}
	trials := float64(len(inputs))
	r.Steps /= trials
	r.Comparisons /= trials
	r.Swaps /= trials
	r.Duration /= time.Duration(len(inputs))
	return r, nil
}

// Equivalent reports whether every summary ended with the same array.
func Equivalent(sums []Summary) bool {
	for _, s := range sums[min(1, len(sums)):] {
		if !slices.Equal(s.Final, sums[0].Final) {
			return false
		}
	}
	return true
}
