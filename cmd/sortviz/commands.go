package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
)

// input draws the array a headless command sorts.
func input(cfg *config.Config) ([]int, error) {
	source, err := dataset.Source(cfg.Data, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return source(), nil
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "NO"
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg := algorithms.NewRegistry()
	algo, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return err
	}
	data, err := input(cfg)
	if err != nil {
		return err
	}

	var picked step.Snapshot
	i := 0
	observe := func(s step.Snapshot) {
		if trace {
			fmt.Printf("%6d  %s\n", i, s.Description)
		}
		if i == frame || frame < 0 {
			picked = s
		}
		i++
	}

	fmt.Printf("running %s on %d values...\n", algo.Name, len(data))
	sum, err := automation.Execute(cmd.Context(), reg, algo.ID, data, observe)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", sum.Duration)
	fmt.Printf("steps: %d\n", sum.Steps)
	fmt.Println("\nmetrics:")
	fmt.Printf("  comparisons: %d\n", sum.Comparisons)
	fmt.Printf("  swaps: %d\n", sum.Swaps)
	fmt.Printf("  inversions: %d\n", sum.InitialInversions)
	fmt.Printf("  sorted: %s\n", yesNo(sum.Sorted))
	fmt.Printf("  permutation: %s\n", yesNo(sum.Permutation))
	if len(sum.Final) <= 32 {
		fmt.Printf("\ninput:  %v\noutput: %v\n", data, sum.Final)
	}
	if svgFile != "" {
		if frame >= sum.Steps {
			return fmt.Errorf("frame %d out of range: run has %d steps", frame, sum.Steps)
		}
		th := viz.GetTheme(cfg.Display.Theme)
		if theme != "" {
			th = viz.GetTheme(theme)
		}
		svg := export.SnapshotToSVG(picked, th, cfg.Display.Width, cfg.Display.Height)
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nframe written to %s\n", svgFile)
	}
	if !sum.OK() {
		return fmt.Errorf("%s produced an invalid result", algo.ID)
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tID\tNAME\tSUMMARY")
	for _, a := range algorithms.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Key, a.ID, a.Name, a.Summary)
	}
	return w.Flush()
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	data, err := input(cfg)
	if err != nil {
		return err
	}
	reg := algorithms.NewRegistry()

	fmt.Printf("comparing on %d %s values\n\n", len(data), cfg.Data.Shape)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARES\tSWAPS\tSORTED\tTIME")

	var sums []automation.Summary
	for _, a := range reg.List() {
		sum, err := automation.Execute(cmd.Context(), reg, a.ID, data, nil)
		if err != nil {
			return err
		}
		sums = append(sums, sum)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%v\n",
			a.Name,
			sum.Steps,
			sum.Comparisons,
			sum.Swaps,
			yesNo(sum.OK()),
			sum.Duration.Round(time.Microsecond),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	eq := automation.Equivalent(sums)
	fmt.Printf("\nequivalent output: %s\n", yesNo(eq))
	if !eq {
		return fmt.Errorf("algorithms disagree on the sorted output")
	}
	return nil
}

func plotInversions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	data, err := input(cfg)
	if err != nil {
		return err
	}
	reg := algorithms.NewRegistry()
	algo, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	inv := metrics.NewInversions()
	var series []float64
	sum, err := automation.Execute(cmd.Context(), reg, algo.ID, data, func(s step.Snapshot) {
		inv.Observe(s)
		series = append(series, inv.Value())
	})
	if err != nil {
		return err
	}
	if len(series) < 2 {
		fmt.Println("not enough steps to plot")
		return nil
	}

	caption := fmt.Sprintf("%s: inversions over %d steps (%d swaps)", algo.Name, sum.Steps, sum.Swaps)
	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	if svgFile != "" {
		svg := export.SeriesToSVG(series, cfg.Display.Width, cfg.Display.Height, string(viz.GetTheme(cfg.Display.Theme).Sorted))
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("curve written to %s\n", svgFile)
	}
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	sweep := &automation.Sweep{
		Sizes:   sizes,
		Trials:  trials,
		Data:    cfg.Data,
		Seed:    cfg.Seed,
		Workers: workers,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, algorithms.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tSTEPS\tCOMPARES\tSWAPS\tTIME\tFAILED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\t%v\t%d\n",
			r.Algorithm,
			r.Size,
			r.Steps,
			r.Comparisons,
			r.Swaps,
			r.Duration.Round(time.Microsecond),
			r.Failures,
		)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGORITHM\tSIZE\tSHAPE\tDELAY")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%dms\n", name, p.Algorithm, p.Data.Size, p.Data.Shape, p.Timing.InitialDelayMs)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sc.Description != "" {
		fmt.Printf("%s: %s\n\n", sc.Name, sc.Description)
	}
	sums, err := automation.RunScenario(ctx, sc, algorithms.NewRegistry(), base)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tSIZE\tSTEPS\tCOMPARES\tSWAPS\tOK\tTIME")
	failed := 0
	for i, s := range sums {
		if !s.OK() {
			failed++
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%s\t%v\n",
			i+1, s.Algorithm, s.Size, s.Steps, s.Comparisons, s.Swaps, yesNo(s.OK()), s.Duration.Round(time.Microsecond))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, len(sums))
	}
	return nil
}
