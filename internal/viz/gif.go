package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	cellW = 6
	cellH = 12
)

// framePalette indexes colours by Tone.
func (m Model) framePalette() color.Palette {
	pal := make(color.Palette, toneCount)
	for t := Tone(0); t < toneCount; t++ {
		c, err := colorful.Hex(string(m.palette(t)))
		if err != nil {
			pal[t] = color.Black
			continue
		}
		pal[t] = c
	}
	return pal
}

// captureFrame rasterises the current bar chart, eighths included.
func (m *Model) captureFrame() {
	DrawBars(m.canvas, m.player.Current())
	c := m.canvas
	img := image.NewPaletted(image.Rect(0, 0, c.Width*cellW, c.Height*cellH), m.framePalette())
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			fill := int(c.Fill[row][col])
			if fill == 0 {
				continue
			}
			px := fill * cellH / 8
			idx := uint8(c.Tones[row][col])
			baseX, baseY := col*cellW, row*cellH
			for y := cellH - px; y < cellH; y++ {
				for x := 0; x < cellW; x++ {
					img.SetColorIndex(baseX+x, baseY+y, idx)
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() error {
	if len(m.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	delay := max(int(m.interval.Milliseconds()/10), 2)
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(m.gifPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
