package audio

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// ----- Wave Shape ----- //

// WaveShape selects the oscillator formula used for every voice of a block.
type WaveShape int

const (
	ShapeUnknown WaveShape = iota
	ShapeSine
	ShapeSquare
	ShapeSawtooth
)

// identifiers of the front-end selector come first; the English names are aliases.
var shapeNames = map[string]WaveShape{
	"sinus":         ShapeSine,
	"carré":         ShapeSquare,
	"dents de scie": ShapeSawtooth,
	"sine":          ShapeSine,
	"square":        ShapeSquare,
	"saw":           ShapeSawtooth,
	"sawtooth":      ShapeSawtooth,
}

// ParseWaveShape resolves an external identifier. Unrecognized values map to
// ShapeUnknown, which renders as silence.
func ParseWaveShape(s string) WaveShape {
	key := strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
	if shape, ok := shapeNames[key]; ok {
		return shape
	}
	return ShapeUnknown
}

func (s WaveShape) String() string {
	switch s {
	case ShapeSine:
		return "Sinus"
	case ShapeSquare:
		return "Carré"
	case ShapeSawtooth:
		return "Dents de scie"
	}
	return "unknown"
}

// value returns the contribution of a voice of frequency freq started at phase,
// t seconds into the block.
func (s WaveShape) value(freq, t, phase float64) float64 {
	switch s {
	case ShapeSine:
		return math.Sin(twoPi*freq*t + phase)
	case ShapeSquare:
		v := math.Sin(twoPi*freq*t + phase)
		if v > 0 {
			return 1
		} else if v < 0 {
			return -1
		}
		return 0
	case ShapeSawtooth:
		return 2*positiveMod(freq*t+phase/twoPi, 1) - 1
	}
	return 0
}

// ----- Shape Selection ----- //

// ShapeSelector exposes the externally chosen wave shape. The engine only reads it.
type ShapeSelector interface {
	WaveShape() WaveShape
}

// ShapeSelection is a ShapeSelector set by the front-end.
type ShapeSelection struct {
	sync.Mutex
	name  string
	shape WaveShape
}

// NewShapeSelection ...
func NewShapeSelection(name string) *ShapeSelection {
	s := &ShapeSelection{}
	s.Set(name)
	return s
}

// Set stores the raw identifier and its resolved shape.
func (s *ShapeSelection) Set(name string) {
	s.Lock()
	defer s.Unlock()
	s.name = name
	s.shape = ParseWaveShape(name)
}

// Name ...
func (s *ShapeSelection) Name() string {
	s.Lock()
	defer s.Unlock()
	return s.name
}

// WaveShape ...
func (s *ShapeSelection) WaveShape() WaveShape {
	s.Lock()
	defer s.Unlock()
	return s.shape
}
