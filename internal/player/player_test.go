package player_test

import (
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/step"
)

var _ = Describe("Player", func() {
	var (
		reg     *algorithms.Registry
		now     time.Time
		draws   int
		stepped []step.Snapshot
		p       *player.Player
		opts    player.Options
	)

	source := func() []int {
		draws++
		if draws == 1 {
			return []int{5, 1, 4, 2, 3}
		}
		return []int{2, 1}
	}

	// advance moves the fake clock one delay forward and ticks.
	advance := func() bool {
		now = now.Add(p.Delay())
		return p.Tick(now)
	}

	drain := func() {
		for i := 0; i < 1000 && !p.Complete(); i++ {
			advance()
		}
	}

	BeforeEach(func() {
		reg = algorithms.NewRegistry()
		now = time.Unix(1_700_000_000, 0)
		draws = 0
		stepped = nil
		opts = player.Options{
			Algorithm: "bubble",
			Source:    source,
			Delays:    config.DefaultConfig().Delays(),
			Clock:     func() time.Time { return now },
			OnStep:    func(s step.Snapshot) { stepped = append(stepped, s) },
		}
	})

	JustBeforeEach(func() {
		var err error
		p, err = player.New(reg, opts)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("requires a data source", func() {
			_, err := player.New(reg, player.Options{})
			Expect(err).To(MatchError(player.ErrNoSource))
		})

		It("rejects unknown algorithms", func() {
			_, err := player.New(reg, player.Options{Algorithm: "bogo", Source: source})
			Expect(err).To(MatchError(algorithms.ErrUnknownAlgorithm))
		})

		It("starts on an unannotated snapshot of the data", func() {
			cur := p.Current()
			Expect(cur.Array).To(Equal([]int{5, 1, 4, 2, 3}))
			Expect(cur.Highlights).To(BeEmpty())
			Expect(cur.Finalized).To(BeEmpty())
			Expect(p.Complete()).To(BeFalse())
			Expect(p.Delay()).To(Equal(40 * time.Millisecond))
		})
	})

	Describe("Tick", func() {
		It("waits for the delay before stepping", func() {
			Expect(p.Tick(now.Add(10 * time.Millisecond))).To(BeFalse())
			Expect(advance()).To(BeTrue())
			Expect(p.Current().HighlightAt(0)).To(Equal(step.Compare))
			Expect(stepped).To(HaveLen(1))
		})

		It("does nothing while paused", func() {
			p.TogglePause()
			Expect(advance()).To(BeFalse())
			Expect(p.Paused()).To(BeTrue())
		})

		It("plays through to completion", func() {
			drain()
			Expect(p.Complete()).To(BeTrue())
			Expect(p.FinishedAt()).NotTo(BeZero())
			Expect(p.Current().Array).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(p.Current().Complete()).To(BeTrue())

			stats := p.Stats()
			Expect(stats.Steps).To(Equal(len(stepped)))
			Expect(stats.Inversions).To(BeZero())
			Expect(stats.InitialInversions).To(BeNumerically(">", 0))
			Expect(stats.Progress).To(BeNumerically("==", 1))
			Expect(advance()).To(BeFalse())
		})
	})

	Describe("speed", func() {
		It("clamps the delay to its bounds", func() {
			for i := 0; i < 50; i++ {
				p.Faster()
			}
			Expect(p.Delay()).To(Equal(5 * time.Millisecond))
			for i := 0; i < 100; i++ {
				p.Slower()
			}
			Expect(p.Delay()).To(Equal(200 * time.Millisecond))
		})
	})

	Describe("switching", func() {
		It("keeps the data when selecting another algorithm", func() {
			advance()
			Expect(p.Select("merge")).To(Succeed())
			Expect(p.Algorithm().ID).To(Equal("merge"))
			Expect(p.Current().Array).To(Equal([]int{5, 1, 4, 2, 3}))
			Expect(p.Stats().Steps).To(BeZero())
			Expect(draws).To(Equal(1))
		})

		It("leaves state alone on an unknown id", func() {
			Expect(p.Select("bogo")).To(MatchError(algorithms.ErrUnknownAlgorithm))
			Expect(p.Algorithm().ID).To(Equal("bubble"))
		})

		It("resolves hot keys", func() {
			ok, err := p.SelectKey("4")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(p.Algorithm().ID).To(Equal("quick"))

			ok, err = p.SelectKey("9")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(p.Algorithm().ID).To(Equal("quick"))
		})

		It("draws fresh data on shuffle", func() {
			drain()
			p.Shuffle()
			Expect(p.Complete()).To(BeFalse())
			Expect(p.Current().Array).To(Equal([]int{2, 1}))
			Expect(p.Data()).To(Equal([]int{2, 1}))
		})
	})

	Describe("StepOnce", func() {
		It("pauses and advances exactly one snapshot", func() {
			Expect(p.StepOnce()).To(BeTrue())
			Expect(p.Paused()).To(BeTrue())
			Expect(stepped).To(HaveLen(1))
			Expect(advance()).To(BeFalse())
		})
	})

	Describe("Scrub", func() {
		JustBeforeEach(func() {
			for i := 0; i < 5; i++ {
				advance()
			}
		})

		It("walks back through history and returns to live", func() {
			live := p.Current()
			p.Scrub(-1)
			Expect(p.Replaying()).To(BeTrue())
			Expect(p.Paused()).To(BeTrue())
			Expect(p.ReplayOffset()).To(Equal(1))
			Expect(p.Current()).To(Equal(stepped[3]))

			p.Scrub(1)
			p.Scrub(1)
			Expect(p.Replaying()).To(BeFalse())
			Expect(p.Current()).To(Equal(live))
		})

		It("stops at the oldest entry", func() {
			for i := 0; i < 20; i++ {
				p.Scrub(-1)
			}
			Expect(p.Current()).To(Equal(stepped[0]))
		})

		It("replays forward when resumed", func() {
			p.Scrub(-1)
			p.Scrub(-1)
			p.TogglePause()
			Expect(advance()).To(BeTrue())
			Expect(p.ReplayOffset()).To(Equal(1))
			Expect(stepped).To(HaveLen(5))
		})

		Context("with a short history", func() {
			BeforeEach(func() { opts.History = 3 })

			It("keeps only the newest entries", func() {
				for i := 0; i < 10; i++ {
					p.Scrub(-1)
				}
				Expect(p.ReplayOffset()).To(Equal(2))
				Expect(p.Current()).To(Equal(stepped[2]))
			})
		})
	})

	It("never hands out its own data slice", func() {
		d := p.Data()
		d[0] = 99
		Expect(slices.Contains(p.Data(), 99)).To(BeFalse())
	})
})
