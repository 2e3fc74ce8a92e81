package audio

import (
	"math/cmplx"

	"github.com/maddyblue/go-dsp/fft"
)

const fftSize = 2048

// Spectrum returns the magnitude spectrum of the last fftSize samples,
// Hann-windowed and scaled by 2/N. Only the lower half is returned.
func Spectrum(samples []int16) []float64 {
	if len(samples) > fftSize {
		samples = samples[len(samples)-fftSize:]
	}
	n := len(samples)
	if n == 0 {
		return nil
	}
	x := make([]float64, n)
	for i, v := range samples {
		x[i] = float64(v) / fullScale
	}
	Han(x)
	result := fft.FFTReal(x)
	out := make([]float64, n/2)
	for i := range out {
		out[i] = cmplx.Abs(result[i]) * 2 / float64(n)
	}
	return out
}
