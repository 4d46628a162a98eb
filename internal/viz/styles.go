package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Subtle is the menu's secondary text.
var Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))

// chrome holds the live view's text styles for one theme.
type chrome struct {
	canvas      lipgloss.Style
	stats       lipgloss.Style
	help        lipgloss.Style
	subtle      lipgloss.Style
	running     lipgloss.Style
	paused      lipgloss.Style
	recording   lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	description lipgloss.Style
	graph       lipgloss.Style
	theme       Theme
}

func newChrome(t Theme) chrome {
	bold := lipgloss.NewStyle().Bold(true)
	return chrome{
		canvas: lipgloss.NewStyle().Padding(0, 1),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(statsWidth),
		help:        lipgloss.NewStyle().MarginTop(1),
		subtle:      lipgloss.NewStyle().Foreground(t.Muted),
		running:     bold.Foreground(t.Sorted),
		paused:      bold.Foreground(t.Swap),
		recording:   bold.Foreground(t.Compare).Blink(true),
		label:       lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:       bold.Foreground(t.Accent),
		description: lipgloss.NewStyle().Foreground(t.Text).Italic(true),
		graph:       lipgloss.NewStyle().Foreground(t.Bar).Padding(1, 0),
		theme:       t,
	}
}

// progress fills from the bar colour towards sorted as the run finalizes.
func (c chrome) progress(fraction float64, width int) string {
	filled := min(max(int(fraction*float64(width)), 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	from, err1 := colorful.Hex(string(c.theme.Bar))
	to, err2 := colorful.Hex(string(c.theme.Sorted))
	if err1 != nil || err2 != nil {
		return c.running.Render(bar)
	}
	tint := lipgloss.Color(from.BlendLab(to, min(max(fraction, 0), 1)).Clamped().Hex())
	return lipgloss.NewStyle().Foreground(tint).Render(bar)
}

// GradientText colours each rune of text along a Lab blend.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	start, err1 := colorful.Hex(string(startColor))
	end, err2 := colorful.Hex(string(endColor))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(startColor).Render(text)
	}

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		color := lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
		result.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(c)))
	}
	return result.String()
}

var spinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func spinnerFrame(frame int) string { return spinner[frame%len(spinner)] }

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ◆ " + right)
}
