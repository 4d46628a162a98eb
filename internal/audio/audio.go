package audio

import (
	"log/slog"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/window"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/step"
)

const (
	SampleRate = 44100
	BufferSize = 512

	// peak amplitude of a click before volume, about 1600 on a 16-bit scale
	clickAmplitude = 1600.0 / 32768.0
	maxVoices      = 8
)

type voice struct {
	samples []float32
	pos     int
}

// Clicker plays a short tone for every swap snapshot. Play is called from
// the render loop; the portaudio callback drains the voice queue.
type Clicker struct {
	Stream *portaudio.Stream

	cfg   config.Audio
	click []float32
	log   *slog.Logger

	mu     sync.Mutex
	voices []voice

	Active bool
}

func NewClicker(cfg config.Audio, logger *slog.Logger) *Clicker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Clicker{
		cfg:   cfg,
		click: Synth(cfg.Frequency, cfg.DurationMs, cfg.Envelope, cfg.Volume),
		log:   logger.With("component", "audio"),
	}
}

func (c *Clicker) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, BufferSize, c.Process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	c.log.Info("audio started", "rate", SampleRate, "buffer", BufferSize)
	c.Stream = stream
	c.Active = true
	return nil
}

func (c *Clicker) Stop() {
	if !c.Active {
		return
	}
	if c.Stream != nil {
		c.Stream.Stop()
		c.Stream.Close()
	}
	portaudio.Terminate()
	c.Active = false
}

// Play queues a click when the snapshot contains a swap.
func (c *Clicker) Play(s step.Snapshot) {
	if !c.cfg.Enabled || !s.HasSwap() {
		return
	}
	samples := c.click
	if c.cfg.PitchByValue {
		samples = Synth(pitchFor(s, c.cfg.Frequency), c.cfg.DurationMs, c.cfg.Envelope, c.cfg.Volume)
	}

	c.mu.Lock()
	if len(c.voices) >= maxVoices {
		c.voices = c.voices[1:]
	}
	c.voices = append(c.voices, voice{samples: samples})
	c.mu.Unlock()
}

// Pending is the number of clicks still sounding.
func (c *Clicker) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.voices)
}

// Process mixes queued clicks into out. It is the portaudio callback.
func (c *Clicker) Process(out []float32) {
	clear(out)

	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.voices[:0]
	for _, v := range c.voices {
		n := copyAdd(out, v.samples[v.pos:])
		v.pos += n
		if v.pos < len(v.samples) {
			live = append(live, v)
		}
	}
	c.voices = live

	for i, s := range out {
		out[i] = float32(math.Max(-1, math.Min(1, float64(s))))
	}
}

func copyAdd(dst, src []float32) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
	return n
}

// pitchFor maps the tallest swapped bar onto [0.5f, 1.5f].
func pitchFor(s step.Snapshot, base float64) float64 {
	peak, top := 0, 0
	for _, v := range s.Array {
		peak = max(peak, v)
	}
	for _, i := range s.IndicesOf(step.Swap) {
		top = max(top, s.Array[i])
	}
	if peak <= 0 {
		return base
	}
	return base * (0.5 + float64(top)/float64(peak))
}

// Synth renders a decaying sine click. envelope "hann" uses a Hann window,
// anything else an exponential decay.
func Synth(freq float64, durationMs int, envelope string, volume float64) []float32 {
	n := SampleRate * durationMs / 1000
	if n <= 0 {
		return nil
	}
	var env []float64
	if envelope == "hann" {
		env = window.Hann(n)
	}

	out := make([]float32, n)
	for i := range out {
		e := math.Exp(-3.0 * float64(i) / float64(n))
		if env != nil {
			e = env[i]
		}
		v := e * clickAmplitude * volume * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
		out[i] = float32(v)
	}
	return out
}
