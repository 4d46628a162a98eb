package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sortviz/internal/config"
)

// Theme maps bar tones and chrome to colours.
type Theme struct {
	Name       string
	Bar        lipgloss.Color
	Ordered    lipgloss.Color
	Sorted     lipgloss.Color
	Compare    lipgloss.Color
	Swap       lipgloss.Color
	Pivot      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name: "cyberpunk",
		Bar: "#00ffff", Ordered: "#0088aa", Sorted: "#00ff00",
		Compare: "#ff00ff", Swap: "#ffff00", Pivot: "#ff8800",
		Background: "#0a0a0a", Text: "#ffffff", Muted: "#666666", Accent: "#ff00ff",
	}

	ThemeRetroGreen = Theme{
		Name: "retro",
		Bar: "#00aa00", Ordered: "#00cc00", Sorted: "#88ff88",
		Compare: "#ffff00", Swap: "#ffffff", Pivot: "#ff0000",
		Background: "#001100", Text: "#00ff00", Muted: "#005500", Accent: "#88ff88",
	}

	ThemeMinimal = Theme{
		Name: "minimal",
		Bar: "#cccccc", Ordered: "#999999", Sorted: "#ffffff",
		Compare: "#0088ff", Swap: "#ffaa00", Pivot: "#ff0000",
		Background: "#000000", Text: "#ffffff", Muted: "#888888", Accent: "#0088ff",
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Bar: "#0077be", Ordered: "#00a8cc", Sorted: "#00ff88",
		Compare: "#ffd700", Swap: "#ff4444", Pivot: "#ffcc00",
		Background: "#001a33", Text: "#e0f0ff", Muted: "#4488aa", Accent: "#ffd700",
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Bar: "#ff6b6b", Ordered: "#feca57", Sorted: "#5fd068",
		Compare: "#ff9ff3", Swap: "#ffc048", Pivot: "#ff4757",
		Background: "#2d1b2e", Text: "#fff5f5", Muted: "#8b6b8c", Accent: "#ff9ff3",
	}

	ThemeClassic = ThemeFromConfig("classic", config.DefaultConfig().Display.Colors)

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// ThemeFromConfig builds a theme from the configured RGB colours. Ordered
// bars sit halfway between plain and sorted.
func ThemeFromConfig(name string, c config.Colors) Theme {
	bar, sorted := rgb(c.Bar), rgb(c.Sorted)
	return Theme{
		Name:       name,
		Bar:        hex(bar),
		Ordered:    hex(bar.BlendLab(sorted, 0.5).Clamped()),
		Sorted:     hex(sorted),
		Compare:    hex(rgb(c.Compare)),
		Swap:       hex(rgb(c.Swap)),
		Pivot:      hex(rgb(c.Pivot)),
		Background: hex(rgb(c.Background)),
		Text:       hex(rgb(c.Text)),
		Muted:      hex(rgb(c.Text).BlendRgb(rgb(c.Background), 0.5)),
		Accent:     hex(rgb(c.Bar)),
	}
}

func rgb(c config.RGB) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func hex(c colorful.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }

// Color returns the colour for a tone; glow resolves to Sorted and is
// brightened by the caller.
func (t Theme) Color(tone Tone) lipgloss.Color {
	switch tone {
	case ToneOrdered:
		return t.Ordered
	case ToneSorted, ToneGlow:
		return t.Sorted
	case ToneCompare:
		return t.Compare
	case ToneSwap:
		return t.Swap
	case TonePivot:
		return t.Pivot
	case ToneEmpty:
		return t.Background
	}
	return t.Bar
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme cycles through Themes.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
