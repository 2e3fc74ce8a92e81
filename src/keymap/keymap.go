package keymap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Config maps input symbols to MIDI note numbers.
type Config struct {
	BaseFreq float64        `yaml:"base_freq"`
	Keys     map[string]int `yaml:"keys"`
}

// DefaultConfig is the AZERTY row from C4 to D#5.
func DefaultConfig() *Config {
	return &Config{
		BaseFreq: 440,
		Keys: map[string]int{
			"Q": 60, "Z": 61, "S": 62, "E": 63, "D": 64, "F": 65, "T": 66, "G": 67,
			"Y": 68, "H": 69, "U": 70, "J": 71, "K": 72, "O": 73, "L": 74, "P": 75,
		},
	}
}

// Table resolves input symbols to frequencies.
type Table struct {
	baseFreq float64
	freqs    map[string]float64
}

// New validates c and builds the lookup table.
func New(c *Config) (*Table, error) {
	if !(c.BaseFreq > 0) {
		return nil, fmt.Errorf("base_freq should be positive: %v", c.BaseFreq)
	}
	if len(c.Keys) == 0 {
		return nil, fmt.Errorf("no keys defined")
	}
	t := &Table{
		baseFreq: c.BaseFreq,
		freqs:    make(map[string]float64, len(c.Keys)),
	}
	for symbol, note := range c.Keys {
		if note < 0 || note > 127 {
			return nil, fmt.Errorf("note of key %q out of range: %v", symbol, note)
		}
		key := normalize(symbol)
		if key == "" {
			return nil, fmt.Errorf("empty key symbol")
		}
		if _, ok := t.freqs[key]; ok {
			return nil, fmt.Errorf("duplicate key symbol %q", symbol)
		}
		t.freqs[key] = NoteToFreq(c.BaseFreq, note)
	}
	return t, nil
}

// NoteToFreq returns base*2^((note-69)/12) rounded to two decimals, so equal
// notes always produce the same voice.
func NoteToFreq(base float64, note int) float64 {
	return math.Round(base*math.Pow(2, float64(note-69)/12)*100) / 100
}

// Lookup resolves a key symbol (case-insensitive) or a MIDI note written "n60".
func (t *Table) Lookup(symbol string) (float64, bool) {
	key := normalize(symbol)
	if freq, ok := t.freqs[key]; ok {
		return freq, true
	}
	if strings.HasPrefix(key, "N") {
		note, err := strconv.Atoi(key[1:])
		if err == nil && note >= 0 && note <= 127 {
			return t.Note(note), true
		}
	}
	return 0, false
}

// Note returns the frequency of a MIDI note number.
func (t *Table) Note(note int) float64 {
	return NoteToFreq(t.baseFreq, note)
}

// Symbols returns the configured symbols in sorted order.
func (t *Table) Symbols() []string {
	symbols := make([]string, 0, len(t.freqs))
	for symbol := range t.freqs {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
