package viz

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// glowLift is how far the finish pulse brightens each channel at its peak.
const glowLift = 40.0 / 255.0

// Pulse is the raw finish curve: four half-wave pulses over duration, then
// zero. ok is false once the effect is over.
func Pulse(elapsed, duration time.Duration) (v float64, ok bool) {
	if duration <= 0 || elapsed < 0 || elapsed > duration {
		return 0, false
	}
	phase := float64(elapsed) / float64(duration) * math.Pi
	return 0.5 * (1 + math.Sin(phase*4)), true
}

// Glow follows Pulse through a damped spring so the effect eases in and out
// at frame rate rather than stepping with it.
type Glow struct {
	spring    harmonica.Spring
	duration  time.Duration
	start     time.Time
	intensity float64
	velocity  float64
}

func NewGlow(fps int, duration time.Duration) *Glow {
	if fps <= 0 {
		fps = 60
	}
	return &Glow{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.6),
		duration: duration,
	}
}

// Update advances one frame. The effect starts on the first frame a run is
// complete and resets as soon as it is not.
func (g *Glow) Update(now time.Time, complete bool) float64 {
	if !complete {
		g.start = time.Time{}
		g.intensity, g.velocity = 0, 0
		return 0
	}
	if g.start.IsZero() {
		g.start = now
	}
	target, _ := Pulse(now.Sub(g.start), g.duration)
	g.intensity, g.velocity = g.spring.Update(g.intensity, g.velocity, target)
	g.intensity = math.Max(0, math.Min(1, g.intensity))
	return g.intensity
}

func (g *Glow) Intensity() float64 { return g.intensity }

// Active reports whether the pulse is still running at now.
func (g *Glow) Active(now time.Time) bool {
	if g.start.IsZero() {
		return false
	}
	_, ok := Pulse(now.Sub(g.start), g.duration)
	return ok
}

// Blend lifts base towards a brightened copy of itself.
func Blend(base lipgloss.Color, intensity float64) lipgloss.Color {
	c, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	return hex(Lift(c, intensity))
}

func Lift(c colorful.Color, intensity float64) colorful.Color {
	hi := colorful.Color{
		R: math.Min(1, c.R+glowLift),
		G: math.Min(1, c.G+glowLift),
		B: math.Min(1, c.B+glowLift),
	}
	return c.BlendRgb(hi, math.Max(0, math.Min(1, intensity))).Clamped()
}
