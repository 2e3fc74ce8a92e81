package main

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/jinjor/desktop-synth/src/audio"
)

const maxReportPoints = 512

// latestFrame is the display collaborator: each update replaces the previous
// one, and the reporter sends whatever is current.
type latestFrame struct {
	sync.Mutex
	t       []float64
	samples []int16
	label   string
	version uint64
}

var _ audio.Display = (*latestFrame)(nil)

func (f *latestFrame) Update(t []float64, samples []int16, label string) {
	f.Lock()
	defer f.Unlock()
	f.t = t
	f.samples = samples
	f.label = label
	f.version++
}

// report formats the current frame if it is newer than seen.
func (f *latestFrame) report(seen uint64) (string, uint64) {
	f.Lock()
	samples := f.samples
	label := f.label
	version := f.version
	f.Unlock()
	if version == seen {
		return "", seen
	}
	var b strings.Builder
	b.WriteString("display ")
	b.WriteString(url.QueryEscape(label))
	for _, v := range decimate(samples, maxReportPoints) {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteString("\n")
	b.WriteString("fft")
	for _, value := range audio.Spectrum(samples) {
		b.WriteString(" ")
		b.WriteString(strconv.FormatFloat(value, 'f', 6, 64))
	}
	b.WriteString("\n")
	return b.String(), version
}

// decimate keeps at most n evenly spaced samples.
func decimate(samples []int16, n int) []int16 {
	if len(samples) <= n {
		return samples
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = samples[i*len(samples)/n]
	}
	return out
}
