package audio

import (
	"math"
	"time"
)

const (
	sampleRate      = 44100
	channelNum      = 1
	bitDepthInBytes = 2
	headroom        = 0.2
	fullScale       = 32767
)
const bytesPerSample = bitDepthInBytes * channelNum
const secPerSample = 1.0 / sampleRate
const twoPi = 2.0 * math.Pi

// SampleRate is the fixed output rate of every generated block.
const SampleRate = sampleRate

// ----- Utility ----- //

func now() float64 {
	return float64(time.Now().UnixNano()) / 1000 / 1000 / 1000
}
func positiveMod(a float64, b float64) float64 {
	if b < 0 {
		panic("b should not be negative")
	}
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	if m >= b {
		m -= b
	}
	return m
}
func seconds(d time.Duration) float64 {
	return d.Seconds()
}
func sampleCount(duration float64) int {
	n := int(duration * sampleRate)
	if n < 0 {
		return 0
	}
	return n
}
