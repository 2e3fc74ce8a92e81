package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jinjor/desktop-synth/src/audio"
	"github.com/jinjor/desktop-synth/src/config"
	"github.com/jinjor/desktop-synth/src/keymap"
	"golang.org/x/sync/errgroup"
)

// tails prints the release tail of each chord given as comma separated keys,
// e.g. `tails Q,D,G H`. Without arguments every single key is listed.
func main() {
	configPath := flag.String("config", "", "YAML file overriding the key table.")
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	keys, err := keymap.New(&cfg.Keymap)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	chords := flag.Args()
	if len(chords) == 0 {
		chords = keys.Symbols()
	}

	lines := make([]string, len(chords))
	g, _ := errgroup.WithContext(context.Background())
	for i, chord := range chords {
		g.Go(func() error {
			line, err := tailLine(keys, chord, cfg.Engine.MaxDenominator)
			if err != nil {
				return err
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	for _, line := range lines {
		fmt.Fprintln(os.Stdout, line)
	}
}

func tailLine(keys *keymap.Table, chord string, maxDenominator int64) (string, error) {
	var freqs []float64
	for _, symbol := range strings.Split(chord, ",") {
		freq, ok := keys.Lookup(symbol)
		if !ok {
			return "", fmt.Errorf("unknown key %q in chord %q", symbol, chord)
		}
		freqs = append(freqs, freq)
	}
	wait, err := audio.ReleaseTail(freqs, maxDenominator)
	if err != nil {
		return "", err
	}
	seconds, _ := wait.Float64()
	return fmt.Sprintf("%s\t%s\t%s\t%.3fms", chord, audio.FormatLabel(freqs), wait.RatString(), seconds*1000), nil
}
