package audio

import (
	"github.com/viterin/vek"
)

// ----- Phase Tracker ----- //

// PhaseTracker holds one running phase per frequency ever played. Entries are
// never removed, so a re-pressed key resumes close to where it stopped.
type PhaseTracker struct {
	phases map[float64]float64
}

// NewPhaseTracker ...
func NewPhaseTracker() *PhaseTracker {
	return &PhaseTracker{
		phases: make(map[float64]float64),
	}
}

// Ensure inserts freq if absent, starting at the mean of all known phases
// (0 when none is known). It reports whether an entry was created.
func (p *PhaseTracker) Ensure(freq float64) bool {
	if _, ok := p.phases[freq]; ok {
		return false
	}
	p.phases[freq] = p.mean()
	return true
}

func (p *PhaseTracker) mean() float64 {
	if len(p.phases) == 0 {
		return 0
	}
	values := make([]float64, 0, len(p.phases))
	for _, phase := range p.phases {
		values = append(values, phase)
	}
	return vek.Mean(values)
}

// Advance moves freq forward by duration seconds, wrapped into [0, 2*pi).
func (p *PhaseTracker) Advance(freq float64, duration float64) {
	p.phases[freq] = positiveMod(p.phases[freq]+twoPi*freq*duration, twoPi)
}

// Phase returns the current phase of freq, 0 if unknown.
func (p *PhaseTracker) Phase(freq float64) float64 {
	return p.phases[freq]
}

// Has ...
func (p *PhaseTracker) Has(freq float64) bool {
	_, ok := p.phases[freq]
	return ok
}

// Snapshot copies the phases of exactly freqs.
func (p *PhaseTracker) Snapshot(freqs []float64) map[float64]float64 {
	out := make(map[float64]float64, len(freqs))
	for _, freq := range freqs {
		out[freq] = p.phases[freq]
	}
	return out
}

// Len ...
func (p *PhaseTracker) Len() int {
	return len(p.phases)
}
