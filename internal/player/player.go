// Package player paces a sorting run for a presenter. It owns the active
// run, the animation delay, pause state and a bounded replay history.
//
// A Player is not safe for concurrent use; drive it from one loop.
package player

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
)

const DefaultHistory = config.DefaultHistory

var ErrNoSource = errors.New("player: data source is required")

type Options struct {
	Algorithm string
	Source    func() []int
	Delays    config.Delays
	History   int

	// OnStep fires for every snapshot pulled from the live run.
	OnStep func(step.Snapshot)
	Clock  func() time.Time
	Logger *slog.Logger
}

type Stats struct {
	Steps             int
	Comparisons       int
	Swaps             int
	Inversions        int
	InitialInversions int
	Progress          float64
	InversionHistory  []float64
}

type Player struct {
	reg  *algorithms.Registry
	opts Options
	log  *slog.Logger

	algo algorithms.Algorithm
	data []int
	run  *algorithms.Run

	current    step.Snapshot
	delay      time.Duration
	lastStep   time.Time
	paused     bool
	complete   bool
	finishedAt time.Time

	history  []step.Snapshot
	playHead int
	stats    *metrics.Collector
}

func New(reg *algorithms.Registry, opts Options) (*Player, error) {
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	if opts.Algorithm == "" {
		opts.Algorithm = config.DefaultAlgorithm
	}
	if opts.History <= 0 {
		opts.History = DefaultHistory
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Delays == (config.Delays{}) {
		opts.Delays = config.DefaultConfig().Delays()
	}

	algo, err := reg.Get(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	p := &Player{
		reg:      reg,
		opts:     opts,
		log:      opts.Logger.With("component", "player"),
		algo:     algo,
		data:     opts.Source(),
		delay:    clamp(opts.Delays.Initial, opts.Delays.Min, opts.Delays.Max),
		history:  make([]step.Snapshot, 0, opts.History),
		playHead: -1,
		stats:    metrics.NewCollector(opts.History),
	}
	p.Restart()
	return p, nil
}

// Tick advances playback if the delay has elapsed since the last step and
// reports whether the visible snapshot changed.
func (p *Player) Tick(now time.Time) bool {
	if p.paused || now.Sub(p.lastStep) < p.delay {
		return false
	}
	if p.playHead != -1 {
		p.lastStep = now
		p.playHead++
		if p.playHead >= len(p.history) {
			p.playHead = -1
		}
		return true
	}
	if p.complete {
		return false
	}
	p.lastStep = now
	return p.pull(now)
}

func (p *Player) pull(now time.Time) bool {
	snap, ok := p.run.Next()
	if !ok {
		p.complete = true
		p.finishedAt = now
		p.log.Debug("run complete", "algorithm", p.algo.ID, "steps", p.stats.Observed())
		return false
	}

	p.current = snap
	p.stats.Observe(snap)
	p.history = append(p.history, snap)
	if len(p.history) > p.opts.History {
		p.history = p.history[1:]
	}
	if p.opts.OnStep != nil {
		p.opts.OnStep(snap)
	}
	return true
}

// Select switches algorithm, keeping the current data, and restarts.
func (p *Player) Select(id string) error {
	algo, err := p.reg.Get(id)
	if err != nil {
		return err
	}
	p.algo = algo
	p.log.Info("algorithm selected", "algorithm", algo.ID)
	p.Restart()
	return nil
}

// SelectKey resolves a hot key. It returns false for unbound keys.
func (p *Player) SelectKey(key string) (bool, error) {
	algo, err := p.reg.ByKey(key)
	if err != nil {
		if errors.Is(err, algorithms.ErrUnknownAlgorithm) {
			return false, nil
		}
		return false, err
	}
	return true, p.Select(algo.ID)
}

// Shuffle draws fresh data and restarts.
func (p *Player) Shuffle() {
	p.data = p.opts.Source()
	p.log.Debug("data shuffled", "size", len(p.data))
	p.Restart()
}

func (p *Player) Restart() {
	if p.run != nil {
		p.run.Stop()
	}
	p.run = algorithms.NewRun(p.algo.Engine, p.data)
	p.current = step.New(p.data, nil, nil, "")
	p.complete = false
	p.finishedAt = time.Time{}
	p.lastStep = p.opts.Clock()
	p.history = p.history[:0]
	p.playHead = -1
	p.stats.Reset()
}

func (p *Player) TogglePause() {
	p.paused = !p.paused
}

func (p *Player) Faster() {
	p.delay = clamp(p.delay-p.opts.Delays.Step, p.opts.Delays.Min, p.opts.Delays.Max)
}

func (p *Player) Slower() {
	p.delay = clamp(p.delay+p.opts.Delays.Step, p.opts.Delays.Min, p.opts.Delays.Max)
}

// StepOnce pauses and advances exactly one snapshot, through the replay
// history when scrubbing and from the live run otherwise.
func (p *Player) StepOnce() bool {
	p.paused = true
	if p.playHead != -1 {
		p.scrub(1)
		return true
	}
	if p.complete {
		return false
	}
	now := p.opts.Clock()
	p.lastStep = now
	return p.pull(now)
}

// Scrub moves through already pulled snapshots. It pauses playback; moving
// past the newest entry returns to live.
func (p *Player) Scrub(dir int) {
	if p.playHead == -1 {
		if len(p.history) == 0 {
			return
		}
		p.playHead = len(p.history) - 1
		p.paused = true
	}
	p.scrub(dir)
}

func (p *Player) scrub(dir int) {
	p.playHead += dir
	if p.playHead < 0 {
		p.playHead = 0
	}
	if p.playHead >= len(p.history) {
		p.playHead = -1
	}
}

// Current is the snapshot to draw: the replay entry when scrubbing,
// otherwise the newest live snapshot.
func (p *Player) Current() step.Snapshot {
	if p.playHead >= 0 && p.playHead < len(p.history) {
		return p.history[p.playHead]
	}
	return p.current
}

func (p *Player) Algorithm() algorithms.Algorithm { return p.algo }
func (p *Player) Delay() time.Duration           { return p.delay }
func (p *Player) Paused() bool                   { return p.paused }
func (p *Player) Complete() bool                 { return p.complete }
func (p *Player) Replaying() bool                { return p.playHead != -1 }

// FinishedAt is when the run reported end of sequence, zero until then.
func (p *Player) FinishedAt() time.Time { return p.finishedAt }

// ReplayOffset is how many steps the play head sits behind live; zero when live.
func (p *Player) ReplayOffset() int {
	if p.playHead == -1 {
		return 0
	}
	return len(p.history) - 1 - p.playHead
}

func (p *Player) Data() []int { return slices.Clone(p.data) }

func (p *Player) Stats() Stats {
	v := p.stats.Values()
	return Stats{
		Steps:             p.stats.Observed(),
		Comparisons:       int(v["comparisons"]),
		Swaps:             int(v["swaps"]),
		Inversions:        int(v["inversions"]),
		InitialInversions: p.stats.InitialInversions(),
		Progress:          v["progress"],
		InversionHistory:  p.stats.InversionHistory(),
	}
}

func clamp(d, lo, hi time.Duration) time.Duration {
	return max(lo, min(hi, d))
}
