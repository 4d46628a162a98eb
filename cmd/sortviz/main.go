package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	preset     string
	size       int
	minValue   int
	maxValue   int
	shape      string
	seed       int64
	delayMs    int
	logFile    string
	verbose    bool
	mute       bool
	trace      bool
	sizes      []int
	trials     int
	workers    int
	svgFile    string
	frame      int
	theme      string
)

// main registers the commands and flags and runs the root command. With no
// subcommand it opens the terminal visualizer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "step-by-step sorting algorithm visualizer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			interactive := cmd.Name() == "sortviz" || cmd.Name() == "tui" || cmd.Name() == "gui"
			slog.SetDefault(setupLogger(interactive))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&size, "size", config.DefaultSize, "number of values")
	pf.IntVar(&minValue, "min", config.DefaultMinValue, "smallest value")
	pf.IntVar(&maxValue, "max", config.DefaultMaxValue, "largest value")
	pf.StringVar(&shape, "shape", "random", "data shape (random, reversed, sorted, nearly_sorted, few_unique)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.IntVar(&delayMs, "delay", config.DefaultInitialDelayMs, "initial step delay in ms")
	pf.StringVar(&logFile, "log", "", "write JSON logs to this file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui [algorithm]",
		Short: "terminal visualizer; an algorithm skips the menu",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&mute, "mute", false, "disable the click sound")

	guiCmd := &cobra.Command{
		Use:   "gui [algorithm]",
		Short: "windowed visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&mute, "mute", false, "disable the click sound")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run one algorithm headless and print its metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every step description")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write one frame to this svg file")
	runCmd.Flags().IntVar(&frame, "frame", -1, "frame for --svg, counted from 0 (-1 is the last)")
	runCmd.Flags().StringVar(&theme, "theme", "", "colour theme for --svg (defaults to the configured one)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every algorithm on the same input",
		RunE:  compareAlgorithms,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot inversions per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotInversions,
	}
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the curve to this svg file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "step counts and wall time across sizes",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", []int{16, 64, 256}, "array sizes")
	benchCmd.Flags().IntVar(&trials, "trials", 3, "runs per size")
	benchCmd.Flags().IntVar(&workers, "workers", 1, "algorithms run concurrently per size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of headless runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, listCmd, compareCmd, plotCmd, benchCmd, presetsCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger writes JSON to --log when given. Without it the visual
// frontends discard logs so the screen stays clean, and headless commands
// log text to stderr.
func setupLogger(interactive bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			// fall back to stderr
			return slog.New(slog.NewJSONHandler(os.Stderr, opts))
		}
		return slog.New(slog.NewJSONHandler(f, opts))
	}
	if interactive {
		return slog.New(slog.NewTextHandler(io.Discard, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// loadConfig layers defaults, --preset, --config and explicitly set flags.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Data.Size = size
	}
	if flags.Changed("min") {
		cfg.Data.Min = minValue
	}
	if flags.Changed("max") {
		cfg.Data.Max = maxValue
	}
	if flags.Changed("shape") {
		cfg.Data.Shape = shape
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("delay") {
		cfg.Timing.InitialDelayMs = delayMs
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startAudio returns nil when sound is disabled or no device opens.
func startAudio(cfg *config.Config) *audio.Clicker {
	if !cfg.Audio.Enabled {
		return nil
	}
	c := audio.NewClicker(cfg.Audio, slog.Default())
	if err := c.Start(); err != nil {
		slog.Warn("audio disabled", "err", err)
		return nil
	}
	return c
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg := algorithms.NewRegistry()
	if _, err := reg.Get(cfg.Algorithm); err != nil {
		return err
	}

	opts := viz.Options{
		Config:   cfg,
		Registry: reg,
		Logger:   slog.Default(),
		SkipMenu: len(args) > 0,
	}
	if clicker := startAudio(cfg); clicker != nil {
		defer clicker.Stop()
		opts.Sound = clicker
	}
	return viz.Run(opts)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	opts := gui.Options{
		Config:   cfg,
		Registry: algorithms.NewRegistry(),
		Logger:   slog.Default(),
	}
	if clicker := startAudio(cfg); clicker != nil {
		defer clicker.Stop()
		opts.Sound = clicker
	}
	return gui.Run(opts)
}
