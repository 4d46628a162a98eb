package config

import "sort"

type presetFunc func(c *Config)

var presets = map[string]presetFunc{
	"classic": func(c *Config) {},
	"small": func(c *Config) {
		c.Data.Size = 16
		c.Timing.InitialDelayMs = 150
	},
	"large": func(c *Config) {
		c.Data.Size = 200
		c.Timing.InitialDelayMs = 5
	},
	"reversed": func(c *Config) {
		c.Data.Shape = "reversed"
		c.Data.Size = 50
	},
	"nearly_sorted": func(c *Config) {
		c.Data.Shape = "nearly_sorted"
		c.Algorithm = "insertion"
	},
	"few_unique": func(c *Config) {
		c.Data.Shape = "few_unique"
		c.Algorithm = "quick"
	},
	"duplicates_demo": func(c *Config) {
		c.Data.Size = 12
		c.Data.Min, c.Data.Max = 1, 4
		c.Algorithm = "merge"
		c.Timing.InitialDelayMs = 200
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	cfg.Preset = name
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
