package audio

import (
	"math"
	"testing"
)

func TestSpectrumPeak(t *testing.T) {
	samples := make([]int16, 3000)
	for i := range samples {
		samples[i] = int16(0.5 * fullScale * math.Sin(twoPi*64*float64(i)/fftSize))
	}
	spectrum := Spectrum(samples)
	expectEqual(t, len(spectrum), fftSize/2)
	peak := 0
	for i, v := range spectrum {
		if v > spectrum[peak] {
			peak = i
		}
	}
	expectEqual(t, peak, 64)
}

func TestSpectrumEmpty(t *testing.T) {
	if Spectrum(nil) != nil {
		t.Fatal("expected nil spectrum")
	}
}

func TestSpectrumSilence(t *testing.T) {
	for _, v := range Spectrum(make([]int16, 256)) {
		expectNearlyEqual(t, v, 0)
	}
}

func TestHan(t *testing.T) {
	data := []float64{1, 1, 1, 1}
	Han(data)
	expectNearlyEqual(t, data[0], 0)
	expectNearlyEqual(t, data[1], 0.5)
	expectNearlyEqual(t, data[2], 1)
	expectNearlyEqual(t, data[3], 0.5)
}
