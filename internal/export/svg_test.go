package export

import (
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
)

func TestSnapshotToSVG(t *testing.T) {
	s := step.New([]int{3, 1, 2}, step.Marks(step.Swap, 0, 1), nil, "Swapped <0> & <1>")
	svg := SnapshotToSVG(s, viz.ThemeMinimal, 200, 100)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	// background plus one rect per bar
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}
	if strings.Count(svg, string(viz.ThemeMinimal.Swap)) != 2 {
		t.Error("both swapped bars should use the swap colour")
	}
	if !strings.Contains(svg, "Swapped &lt;0&gt; &amp; &lt;1&gt;") {
		t.Error("description should be escaped into a text element")
	}
}

func TestSnapshotToSVG_Empty(t *testing.T) {
	svg := SnapshotToSVG(step.New(nil, nil, nil, ""), viz.ThemeOcean, 50, 50)
	if strings.Count(svg, "<rect") != 1 || strings.Contains(svg, "<text") {
		t.Errorf("empty snapshot drew more than the background: %s", svg)
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 10, 10, "#fff") != "" {
		t.Error("a single point has no path")
	}

	svg := SeriesToSVG([]float64{6, 4, 4, 0}, 300, 100, "#00ff88")
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("stroke colour missing")
	}
	if got := strings.Count(svg, " L"); got != 3 {
		t.Errorf("segments = %d, want 3", got)
	}
	if !strings.Contains(svg, "M0.0,") || !strings.Contains(svg, "L300.0,") {
		t.Error("path should span the full width")
	}

	flat := SeriesToSVG([]float64{2, 2}, 10, 10, "#fff")
	if strings.Contains(flat, "NaN") || strings.Contains(flat, "Inf") {
		t.Error("a flat series must not divide by zero")
	}
}
