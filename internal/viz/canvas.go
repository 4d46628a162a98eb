package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone is the colour role of a cell. Higher tones win when several array
// indices share one column.
type Tone uint8

const (
	ToneEmpty Tone = iota
	ToneBar
	ToneOrdered
	ToneSorted
	ToneCompare
	ToneSwap
	TonePivot
	ToneGlow
	toneCount
)

// Lower eighth blocks, indexed by how many eighths of the cell are filled.
var blocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Canvas is a grid of terminal cells filled from the bottom in eighths.
type Canvas struct {
	Width, Height int
	Fill          [][]uint8
	Tones         [][]Tone
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.Width, c.Height = w, h
	c.Fill = make([][]uint8, h)
	c.Tones = make([][]Tone, h)
	for i := range c.Fill {
		c.Fill[i] = make([]uint8, w)
		c.Tones[i] = make([]Tone, w)
	}
}

func (c *Canvas) Clear() {
	for i := range c.Fill {
		clear(c.Fill[i])
		clear(c.Tones[i])
	}
}

// Column fills column x from the bottom up with the given number of
// eighth-cells. Heights beyond the canvas are clipped.
func (c *Canvas) Column(x, eighths int, tone Tone) {
	if x < 0 || x >= c.Width {
		return
	}
	eighths = min(max(eighths, 0), c.Height*8)
	for row := c.Height - 1; row >= 0 && eighths > 0; row-- {
		f := min(8, eighths)
		c.Fill[row][x] = uint8(f)
		c.Tones[row][x] = tone
		eighths -= f
	}
}

// Rune returns the block character at a cell.
func (c *Canvas) Rune(row, col int) rune {
	return blocks[c.Fill[row][col]]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Fill {
		for col := range c.Fill[row] {
			b.WriteRune(c.Rune(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colours runs of equal tone with palette.
func (c *Canvas) Render(palette func(Tone) lipgloss.Color) string {
	var b strings.Builder
	for row := range c.Fill {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Tones[row][col] == c.Tones[row][start] {
				continue
			}
			var run strings.Builder
			for k := start; k < col; k++ {
				run.WriteRune(c.Rune(row, k))
			}
			if tone := c.Tones[row][start]; tone == ToneEmpty {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(palette(tone)).Render(run.String()))
			}
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}
