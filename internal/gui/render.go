package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
)

var controlLines = []string{
	"Controls: 1-Bubble 2-Insertion 3-Selection 4-Quick 5-Merge",
	"R-Restart  +/- Adjust Speed  SPACE Pause/Resume  . Step  [ ] Scrub  ESC Quit",
}

func color(c config.RGB) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], 255)
}

func fromColorful(c colorful.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}

func toColorful(c config.RGB) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

// barColor applies, in order: the finish glow, the highlight, finalized,
// ordered, and the plain bar colour.
func (a *App) barColor(s step.Snapshot, i int) rl.Color {
	cols := a.Cfg.Display.Colors
	switch viz.ToneFor(s, i) {
	case viz.ToneGlow:
		return fromColorful(viz.Lift(toColorful(cols.Sorted), a.Glow.Intensity()))
	case viz.ToneCompare:
		return color(cols.Compare)
	case viz.ToneSwap:
		return color(cols.Swap)
	case viz.TonePivot:
		return color(cols.Pivot)
	case viz.ToneSorted:
		return color(cols.Sorted)
	case viz.ToneOrdered:
		return fromColorful(toColorful(cols.Bar).BlendLab(toColorful(cols.Sorted), 0.5).Clamped())
	}
	return color(cols.Bar)
}

func (a *App) drawBars(s step.Snapshot) {
	n := int32(len(s.Array))
	if n == 0 {
		return
	}
	barW := max(2, a.Width/n)
	peak := 1
	for _, v := range s.Array {
		peak = max(peak, v)
	}
	usable := float32(a.Height - 120)
	for i, v := range s.Array {
		h := int32(float32(max(v, 0)) / float32(peak) * usable)
		x := int32(i) * barW
		y := a.Height - h - 60
		rl.DrawRectangle(x, y, barW-1, h, a.barColor(s, i))
	}
}

func (a *App) drawHeaders(size int) {
	text := color(a.Cfg.Display.Colors.Text)
	p := a.Player
	a.drawText(fmt.Sprintf("Algorithm: %s", p.Algorithm().Name), 20, 20, 28, text)

	status := ""
	switch {
	case p.Replaying():
		status = fmt.Sprintf(" | Replay -%d", p.ReplayOffset())
	case p.Paused():
		status = " | Paused"
	}
	a.drawText(fmt.Sprintf("Delay: %d ms | Size: %d%s", p.Delay().Milliseconds(), size, status), 20, 50, 18, text)

	for idx, line := range controlLines {
		a.drawText(line, 20, a.Height-50+int32(idx)*20, 18, text)
	}
}

// drawDescription right-aligns the step text under the header.
func (a *App) drawDescription(desc string) {
	const size = 18
	w := rl.MeasureTextEx(a.Font, desc, size, 1).X
	a.drawText(desc, a.Width-20-int32(w), 50, size, color(a.Cfg.Display.Colors.Text))
}
