package audio

import (
	"testing"
)

func TestParseWaveShape(t *testing.T) {
	cases := map[string]WaveShape{
		"Sinus":          ShapeSine,
		"sinus":          ShapeSine,
		" Sine ":         ShapeSine,
		"Carré":          ShapeSquare,
		"Carre\u0301":    ShapeSquare,
		"CARRÉ":          ShapeSquare,
		"square":         ShapeSquare,
		"Dents de scie":  ShapeSawtooth,
		"saw":            ShapeSawtooth,
		"Sawtooth":       ShapeSawtooth,
		"triangle":       ShapeUnknown,
		"":               ShapeUnknown,
		"Carre":          ShapeUnknown,
	}
	for name, expected := range cases {
		if actual := ParseWaveShape(name); actual != expected {
			t.Fatalf("%q: expected %v, but got: %v", name, expected, actual)
		}
	}
}

func TestWaveShapeString(t *testing.T) {
	expectEqual(t, ShapeSine.String(), "Sinus")
	expectEqual(t, ShapeSquare.String(), "Carré")
	expectEqual(t, ShapeSawtooth.String(), "Dents de scie")
	expectEqual(t, ParseWaveShape(ShapeSawtooth.String()), ShapeSawtooth)
}

func TestWaveShapeValue(t *testing.T) {
	expectNearlyEqual(t, ShapeSine.value(1, 0.25, 0), 1)
	expectNearlyEqual(t, ShapeSquare.value(1, 0.75, 0), -1)
	expectNearlyEqual(t, ShapeSquare.value(1, 0, 0), 0)
	expectNearlyEqual(t, ShapeSawtooth.value(1, 0, 0), -1)
	expectNearlyEqual(t, ShapeSawtooth.value(1, 0.5, 0), 0)
	expectNearlyEqual(t, ShapeSawtooth.value(1, 0, twoPi/4), -0.5)
	expectNearlyEqual(t, ShapeUnknown.value(1, 0.25, 0), 0)
}

func TestShapeSelection(t *testing.T) {
	s := NewShapeSelection("Sinus")
	expectEqual(t, s.WaveShape(), ShapeSine)
	s.Set("Dents de scie")
	expectEqual(t, s.WaveShape(), ShapeSawtooth)
	expectEqual(t, s.Name(), "Dents de scie")
	s.Set("bogus")
	expectEqual(t, s.WaveShape(), ShapeUnknown)
	expectEqual(t, s.Name(), "bogus")
}
