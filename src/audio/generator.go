package audio

import (
	"github.com/viterin/vek"
)

// ----- Block ----- //

// Block is a fixed-duration chunk of generated audio and its time axis.
type Block struct {
	Time    []float64 // seconds, [0, duration)
	Samples []int16
}

// Duration ...
func (b *Block) Duration() float64 {
	return float64(len(b.Samples)) * secPerSample
}

// ----- Generator ----- //

// GenerateBlock renders freqs, each started at phases[freq], for duration
// seconds. It keeps no state: the caller supplies the running phases.
func GenerateBlock(freqs []float64, phases map[float64]float64, duration float64, shape WaveShape) *Block {
	t := timeAxis(duration)
	sig := mixVoices(freqs, phases, t, shape)
	return &Block{
		Time:    t,
		Samples: quantize(sig),
	}
}

// timeAxis returns floor(duration*sampleRate) evenly spaced points, endpoint excluded.
func timeAxis(duration float64) []float64 {
	n := sampleCount(duration)
	t := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = duration * float64(i) / float64(n)
	}
	return t
}

// mixVoices sums one contribution per frequency and divides by the voice count,
// so the result stays within [-1, 1].
func mixVoices(freqs []float64, phases map[float64]float64, t []float64, shape WaveShape) []float64 {
	sig := make([]float64, len(t))
	if len(freqs) == 0 || len(t) == 0 {
		return sig
	}
	voice := make([]float64, len(t))
	for _, freq := range freqs {
		phase := phases[freq]
		for i, ti := range t {
			voice[i] = shape.value(freq, ti, phase)
		}
		vek.Add_Inplace(sig, voice)
	}
	vek.DivNumber_Inplace(sig, float64(len(freqs)))
	return sig
}

func quantize(sig []float64) []int16 {
	out := make([]int16, len(sig))
	for i, v := range sig {
		out[i] = int16(v * headroom * fullScale)
	}
	return out
}
