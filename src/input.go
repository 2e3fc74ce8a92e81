package main

import (
	"context"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/jinjor/desktop-synth/src/audio"
	"github.com/jinjor/desktop-synth/src/keymap"
	"golang.org/x/term"
)

type eventPoster interface {
	Post(ctx context.Context, event audio.Event) error
}

// inputs maps commands, MIDI notes and terminal keys to engine events.
type inputs struct {
	events eventPoster
	keys   *keymap.Table
	shape  *audio.ShapeSelection
}

func (in *inputs) handle(ctx context.Context, command []string) error {
	if len(command) == 0 {
		return nil
	}
	if len(command) != 2 {
		log.Printf("[WARN] invalid command %v\n", command)
		return nil
	}
	switch command[0] {
	case "press", "release":
		freq, ok := in.keys.Lookup(command[1])
		if !ok {
			log.Printf("[WARN] unknown key %q\n", command[1])
			return nil
		}
		return in.post(ctx, command[0] == "press", freq)
	case "note_on", "note_off":
		note, err := strconv.Atoi(command[1])
		if err != nil || note < 0 || note > 127 {
			log.Printf("[WARN] invalid note %q\n", command[1])
			return nil
		}
		return in.post(ctx, command[0] == "note_on", in.keys.Note(note))
	case "wave":
		in.shape.Set(command[1])
		if in.shape.WaveShape() == audio.ShapeUnknown {
			log.Printf("[WARN] unknown wave shape %q, voices will be silent\n", command[1])
		}
		return nil
	}
	log.Printf("[WARN] unknown command %v\n", command[0])
	return nil
}

func (in *inputs) post(ctx context.Context, press bool, freq float64) error {
	kind := audio.EventRelease
	if press {
		kind = audio.EventPress
	}
	return in.events.Post(ctx, audio.Event{Kind: kind, Freq: freq})
}

func (in *inputs) forwardMidi(ctx context.Context, notes <-chan audio.MidiNote) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case note, ok := <-notes:
			if !ok {
				log.Println("forwardMidi() ended.")
				return nil
			}
			if err := in.post(ctx, note.On, in.keys.Note(note.Note)); err != nil {
				return nil
			}
		}
	}
}

// readTerminal puts the terminal in raw mode. A terminal reports no key
// releases, so each key toggles its note. Ctrl-C or Esc quits.
func (in *inputs) readTerminal(ctx context.Context, f *os.File) error {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Printf("failed to set raw mode: %v\n", err)
		return nil
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			log.Printf("failed to restore terminal: %v\n", err)
		}
	}()
	keys := make(chan byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := f.Read(buf)
			if err != nil {
				if err != io.EOF {
					log.Printf("failed to read terminal: %v\n", err)
				}
				return
			}
			if n == 1 {
				select {
				case keys <- buf[0]:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return in.toggleKeys(ctx, keys)
}

func (in *inputs) toggleKeys(ctx context.Context, keys <-chan byte) error {
	held := make(map[float64]bool)
	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				return nil
			}
			if b == 3 || b == 27 {
				return errFrontendClosed
			}
			r := rune(b)
			if !unicode.IsPrint(r) {
				continue
			}
			freq, found := in.keys.Lookup(strings.ToUpper(string(r)))
			if !found {
				continue
			}
			held[freq] = !held[freq]
			if err := in.post(ctx, held[freq], freq); err != nil {
				return nil
			}
		}
	}
}
