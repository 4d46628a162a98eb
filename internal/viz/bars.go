package viz

import "github.com/san-kum/sortviz/internal/step"

// ToneFor resolves the colour role of index i. A fully finalized snapshot
// glows as a whole; otherwise highlights win over finalized and ordered.
func ToneFor(s step.Snapshot, i int) Tone {
	if s.Complete() && len(s.Array) > 0 {
		return ToneGlow
	}
	switch s.HighlightAt(i) {
	case step.Compare:
		return ToneCompare
	case step.Swap:
		return ToneSwap
	case step.Pivot:
		return TonePivot
	case step.Sorted:
		return ToneSorted
	}
	switch {
	case s.IsFinalized(i):
		return ToneSorted
	case s.IsOrdered(i):
		return ToneOrdered
	}
	return ToneBar
}

// DrawBars scales s onto c. With room to spare each value gets a run of
// columns separated by a one column gap; with more values than columns each
// column shows the tallest value and strongest tone it covers.
func DrawBars(c *Canvas, s step.Snapshot) {
	c.Clear()
	n := len(s.Array)
	if n == 0 || c.Width == 0 || c.Height == 0 {
		return
	}
	peak := 1
	for _, v := range s.Array {
		peak = max(peak, v)
	}
	height := func(v int) int {
		if v <= 0 {
			return 0
		}
		return max(1, v*c.Height*8/peak)
	}

	if n <= c.Width {
		barW := c.Width / n
		drawW := barW
		if barW >= 3 {
			drawW = barW - 1
		}
		for i, v := range s.Array {
			h, tone := height(v), ToneFor(s, i)
			for dx := 0; dx < drawW; dx++ {
				c.Column(i*barW+dx, h, tone)
			}
		}
		return
	}

	for x := 0; x < c.Width; x++ {
		lo, hi := x*n/c.Width, (x+1)*n/c.Width
		top, tone := 0, ToneEmpty
		for i := lo; i < max(hi, lo+1); i++ {
			top = max(top, s.Array[i])
			tone = max(tone, ToneFor(s, i))
		}
		c.Column(x, height(top), tone)
	}
}
