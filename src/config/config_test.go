package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestLoadDefault(t *testing.T) {
	f, err := Load("")
	expectNoError(t, err)
	expectEqual(t, f.Engine.TickInterval, 25*time.Millisecond)
	expectEqual(t, f.Engine.BlockDuration, 50*time.Millisecond)
	expectEqual(t, f.Engine.MaxDenominator, int64(1000))
	expectEqual(t, f.Engine.RestLabel, "Repos")
	expectEqual(t, f.Keymap.BaseFreq, 440.0)
	expectEqual(t, len(f.Keymap.Keys), 16)
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(`
tick_interval: 10ms
block_duration: 20ms
display_seconds: 0.5
wave: Carré
rest_label: Rest
`))
	expectNoError(t, err)
	expectEqual(t, f.Engine.TickInterval, 10*time.Millisecond)
	expectEqual(t, f.Engine.BlockDuration, 20*time.Millisecond)
	expectEqual(t, f.Engine.PreviewDuration, 25*time.Millisecond)
	expectEqual(t, f.Engine.DisplaySeconds, 0.5)
	expectEqual(t, f.Engine.Wave, "Carré")
	expectEqual(t, f.Engine.RestLabel, "Rest")
	expectEqual(t, len(f.Keymap.Keys), 16)
}

func TestParseKeysReplaceDefaults(t *testing.T) {
	f, err := Parse([]byte(`
base_freq: 442
keys:
  A: 69
  B: 71
`))
	expectNoError(t, err)
	expectEqual(t, f.Keymap.BaseFreq, 442.0)
	expectEqual(t, len(f.Keymap.Keys), 2)
	expectEqual(t, f.Keymap.Keys["A"], 69)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`tick_interval: -1s`))
	expectError(t, err)
	_, err = Parse([]byte(`max_denominator: 0`))
	expectError(t, err)
	_, err = Parse([]byte(`base_freq: 0`))
	expectError(t, err)
	_, err = Parse([]byte(`keys: {A: 200}`))
	expectError(t, err)
	_, err = Parse([]byte(`tick_interval: [1]`))
	expectError(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synth.yaml")
	expectNoError(t, os.WriteFile(path, []byte("wave: Sinus\n"), 0o644))
	f, err := Load(path)
	expectNoError(t, err)
	expectEqual(t, f.Engine.Wave, "Sinus")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	expectError(t, err)
}
