package metrics

import "github.com/san-kum/sortviz/internal/step"

// Progress is the finalized fraction of the latest snapshot. An empty array
// counts as done once it has been observed.
type Progress struct {
	name     string
	fraction float64
}

func NewProgress() *Progress {
	return &Progress{
		name: "progress",
	}
}

func (p *Progress) Name() string {
	return p.name
}

func (p *Progress) Observe(s step.Snapshot) {
	if len(s.Array) == 0 {
		p.fraction = 1.0
		return
	}
	p.fraction = float64(len(s.Finalized)) / float64(len(s.Array))
}

func (p *Progress) Value() float64 {
	return p.fraction
}

func (p *Progress) Reset() {
	p.fraction = 0
}
