package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
)

const margin = 10

// SnapshotToSVG draws one frame as bars coloured by the theme. The
// description, when present, is written across the top.
func SnapshotToSVG(s step.Snapshot, theme viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background))

	n := len(s.Array)
	if n > 0 {
		barW := max(2, float64(width-2*margin)/float64(n))
		peak := 1
		for _, v := range s.Array {
			peak = max(peak, v)
		}
		usable := float64(height - 4*margin)

		for i, v := range s.Array {
			h := float64(max(v, 0)) / float64(peak) * usable
			x := margin + float64(i)*barW
			y := float64(height-margin) - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, max(barW-1, 1), h, theme.Color(viz.ToneFor(s, i))))
		}
	}

	if s.Description != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="14">%s</text>
`, margin, 2*margin, theme.Text, html.EscapeString(s.Description)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a single path.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	span *= 1.2
	last := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-lo)/span*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
