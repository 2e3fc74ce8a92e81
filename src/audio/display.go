package audio

import (
	"sort"
	"strconv"
	"strings"
)

// ----- Display ----- //

// Display receives visual updates. It is last-write-wins: nothing it returns is
// observed by the engine.
type Display interface {
	Update(t []float64, samples []int16, label string)
}

// ----- Display Buffer ----- //

// DisplayBuffer keeps the most recent emitted samples for visualization only.
type DisplayBuffer struct {
	samples []int16
	cap     int
}

// NewDisplayBuffer ...
func NewDisplayBuffer(capacity int) *DisplayBuffer {
	return &DisplayBuffer{
		samples: make([]int16, 0, capacity),
		cap:     capacity,
	}
}

// Append adds samples and drops the oldest ones beyond capacity.
func (b *DisplayBuffer) Append(samples []int16) {
	b.samples = append(b.samples, samples...)
	if over := len(b.samples) - b.cap; over > 0 {
		n := copy(b.samples, b.samples[over:])
		b.samples = b.samples[:n]
	}
}

// Samples returns a copy of the buffered samples.
func (b *DisplayBuffer) Samples() []int16 {
	out := make([]int16, len(b.samples))
	copy(out, b.samples)
	return out
}

// TimeAxis returns i/sampleRate for every buffered sample.
func (b *DisplayBuffer) TimeAxis() []float64 {
	t := make([]float64, len(b.samples))
	for i := range t {
		t[i] = float64(i) * secPerSample
	}
	return t
}

// Len ...
func (b *DisplayBuffer) Len() int {
	return len(b.samples)
}

// Reset ...
func (b *DisplayBuffer) Reset() {
	b.samples = b.samples[:0]
}

// ----- Label ----- //

func sortedFreqs(set map[float64]struct{}) []float64 {
	freqs := make([]float64, 0, len(set))
	for freq := range set {
		freqs = append(freqs, freq)
	}
	sort.Float64s(freqs)
	return freqs
}

// FormatLabel lists freqs as "261.63 Hz, 329.63 Hz".
func FormatLabel(freqs []float64) string {
	items := make([]string, len(freqs))
	for i, freq := range freqs {
		items[i] = strconv.FormatFloat(freq, 'f', 2, 64) + " Hz"
	}
	return strings.Join(items, ", ")
}
