package keymap

import (
	"math"
	"testing"
)

func expectNoError(t *testing.T, err error) {
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
}

func expectError(t *testing.T, err error) {
	if err == nil {
		t.Errorf("expected error, but got nil")
	}
}

func expectEqual(t *testing.T, actual, expected interface{}) {
	if actual != expected {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func expectNearlyEqual(t *testing.T, actual, expected float64) {
	if math.Abs(actual-expected) > 0.0001 {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func TestNoteToFreq(t *testing.T) {
	expectNearlyEqual(t, NoteToFreq(440, 69), 440)
	expectNearlyEqual(t, NoteToFreq(440, 60), 261.63)
	expectNearlyEqual(t, NoteToFreq(440, 64), 329.63)
	expectNearlyEqual(t, NoteToFreq(440, 75), 622.25)
	expectNearlyEqual(t, NoteToFreq(442, 81), 884)
}

func TestDefaultTable(t *testing.T) {
	table, err := New(DefaultConfig())
	expectNoError(t, err)
	expectEqual(t, len(table.Symbols()), 16)
	expectEqual(t, table.Symbols()[0], "D")

	freq, ok := table.Lookup("Q")
	expectEqual(t, ok, true)
	expectNearlyEqual(t, freq, 261.63)
	freq, ok = table.Lookup("h")
	expectEqual(t, ok, true)
	expectNearlyEqual(t, freq, 440)
	freq, ok = table.Lookup(" P ")
	expectEqual(t, ok, true)
	expectNearlyEqual(t, freq, 622.25)
}

func TestLookupNote(t *testing.T) {
	table, err := New(DefaultConfig())
	expectNoError(t, err)
	freq, ok := table.Lookup("n69")
	expectEqual(t, ok, true)
	expectNearlyEqual(t, freq, 440)
	_, ok = table.Lookup("N128")
	expectEqual(t, ok, false)
	_, ok = table.Lookup("Nx")
	expectEqual(t, ok, false)
	_, ok = table.Lookup("W")
	expectEqual(t, ok, false)
	_, ok = table.Lookup("")
	expectEqual(t, ok, false)
}

func TestSameNoteSameFreq(t *testing.T) {
	table, err := New(DefaultConfig())
	expectNoError(t, err)
	a, _ := table.Lookup("H")
	b, _ := table.Lookup("N69")
	expectEqual(t, a, b)
	expectEqual(t, table.Note(69), a)
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(&Config{BaseFreq: 0, Keys: map[string]int{"A": 60}})
	expectError(t, err)
	_, err = New(&Config{BaseFreq: 440})
	expectError(t, err)
	_, err = New(&Config{BaseFreq: 440, Keys: map[string]int{"A": 128}})
	expectError(t, err)
	_, err = New(&Config{BaseFreq: 440, Keys: map[string]int{" ": 60}})
	expectError(t, err)
	_, err = New(&Config{BaseFreq: 440, Keys: map[string]int{"a": 60, "A": 61}})
	expectError(t, err)
}
