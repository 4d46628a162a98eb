package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm      = "bubble"
	DefaultSize           = 100
	DefaultMinValue       = 10
	DefaultScreenWidth    = 960
	DefaultScreenHeight   = 540
	DefaultMaxValue       = DefaultScreenHeight - 100
	DefaultInitialDelayMs = 40
	DefaultMinDelayMs     = 5
	DefaultMaxDelayMs     = 200
	DefaultDelayStepMs    = 5
	DefaultFPS            = 60
	DefaultHistory        = 600
	DefaultFinishEffectMs = 1200
	DefaultVolume         = 0.4
	DefaultFrequency      = 1000
	DefaultClickMs        = 50
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var knownShapes = map[string]bool{
	"random": true, "reversed": true, "sorted": true, "nearly_sorted": true, "few_unique": true,
}

type Config struct {
	Algorithm string        `yaml:"algorithm"`
	Seed      int64         `yaml:"seed"`
	Preset    string        `yaml:"preset,omitempty"`
	Data      DataConfig    `yaml:"data"`
	Timing    TimingConfig  `yaml:"timing"`
	Display   DisplayConfig `yaml:"display"`
	Audio     Audio         `yaml:"audio"`
}

type DataConfig struct {
	Size  int    `yaml:"size"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
	Shape string `yaml:"shape"`
}

type TimingConfig struct {
	InitialDelayMs int `yaml:"initial_delay_ms"`
	MinDelayMs     int `yaml:"min_delay_ms"`
	MaxDelayMs     int `yaml:"max_delay_ms"`
	DelayStepMs    int `yaml:"delay_step_ms"`
	FPS            int `yaml:"fps"`
	History        int `yaml:"history"`
}

type DisplayConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Title           string `yaml:"title"`
	Theme           string `yaml:"theme"`
	ShowDescription bool   `yaml:"show_description"`
	FinishEffectMs  int    `yaml:"finish_effect_ms"`
	Colors          Colors `yaml:"colors"`
}

// RGB is a colour as three 0-255 channels, written [r, g, b] in YAML.
type RGB [3]uint8

type Colors struct {
	Background RGB `yaml:"background"`
	Bar        RGB `yaml:"bar"`
	Compare    RGB `yaml:"compare"`
	Swap       RGB `yaml:"swap"`
	Sorted     RGB `yaml:"sorted"`
	Text       RGB `yaml:"text"`
	Pivot      RGB `yaml:"pivot"`
}

type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	Volume       float64 `yaml:"volume"`
	Frequency    float64 `yaml:"frequency"`
	DurationMs   int     `yaml:"duration_ms"`
	Envelope     string  `yaml:"envelope"`
	PitchByValue bool    `yaml:"pitch_by_value"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Data: DataConfig{
			Size:  DefaultSize,
			Min:   DefaultMinValue,
			Max:   DefaultMaxValue,
			Shape: "random",
		},
		Timing: TimingConfig{
			InitialDelayMs: DefaultInitialDelayMs,
			MinDelayMs:     DefaultMinDelayMs,
			MaxDelayMs:     DefaultMaxDelayMs,
			DelayStepMs:    DefaultDelayStepMs,
			FPS:            DefaultFPS,
			History:        DefaultHistory,
		},
		Display: DisplayConfig{
			Width:           DefaultScreenWidth,
			Height:          DefaultScreenHeight,
			Title:           "Sorting Algorithms Visualizer",
			Theme:           "classic",
			ShowDescription: true,
			FinishEffectMs:  DefaultFinishEffectMs,
			Colors: Colors{
				Background: RGB{24, 24, 24},
				Bar:        RGB{100, 180, 255},
				Compare:    RGB{255, 99, 71},
				Swap:       RGB{255, 215, 0},
				Sorted:     RGB{80, 220, 120},
				Text:       RGB{230, 230, 230},
				Pivot:      RGB{186, 85, 211},
			},
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     DefaultVolume,
			Frequency:  DefaultFrequency,
			DurationMs: DefaultClickMs,
			Envelope:   "exp",
		},
	}
}

// Load reads a YAML file over the defaults. A preset named in the file is
// applied first and the file's own values override it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if probe.Preset != "" {
		p := GetPreset(probe.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, probe.Preset)
		}
		cfg = p
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Data.Size < 0 {
		errs = append(errs, fmt.Errorf("data.size %d is negative", c.Data.Size))
	}
	if c.Data.Min > c.Data.Max {
		errs = append(errs, fmt.Errorf("data.min %d exceeds data.max %d", c.Data.Min, c.Data.Max))
	}
	if c.Data.Shape != "" && !knownShapes[c.Data.Shape] {
		errs = append(errs, fmt.Errorf("data.shape %q is not recognised", c.Data.Shape))
	}
	t := c.Timing
	if t.MinDelayMs < 0 || t.MinDelayMs > t.MaxDelayMs {
		errs = append(errs, fmt.Errorf("timing bounds [%d, %d] out of order", t.MinDelayMs, t.MaxDelayMs))
	}
	if t.InitialDelayMs < t.MinDelayMs || t.InitialDelayMs > t.MaxDelayMs {
		errs = append(errs, fmt.Errorf("timing.initial_delay_ms %d outside [%d, %d]", t.InitialDelayMs, t.MinDelayMs, t.MaxDelayMs))
	}
	if t.DelayStepMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.delay_step_ms must be positive"))
	}
	if t.FPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fps must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f outside [0, 1]", c.Audio.Volume))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Delays holds the timing section as durations.
type Delays struct {
	Initial, Min, Max, Step time.Duration
}

func (c *Config) Delays() Delays {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Delays{
		Initial: ms(c.Timing.InitialDelayMs),
		Min:     ms(c.Timing.MinDelayMs),
		Max:     ms(c.Timing.MaxDelayMs),
		Step:    ms(c.Timing.DelayStepMs),
	}
}

// FrameInterval is the render tick derived from fps.
func (c *Config) FrameInterval() time.Duration {
	if c.Timing.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.Timing.FPS)
}
