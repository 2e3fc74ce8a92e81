package audio

import (
	"context"
	"errors"
	"log"

	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/rtmididrv"
)

// MidiNote is a note-on or note-off received from a MIDI input.
type MidiNote struct {
	On   bool
	Note int
}

// ParseMidiNote decodes a raw channel message. Note-on with velocity 0 counts as
// note-off. Other messages are reported as not ok.
func ParseMidiNote(data []byte) (MidiNote, bool) {
	if len(data) < 3 {
		return MidiNote{}, false
	}
	switch data[0] >> 4 {
	case 8:
		return MidiNote{On: false, Note: int(data[1])}, true
	case 9:
		return MidiNote{On: data[2] > 0, Note: int(data[1])}, true
	}
	return MidiNote{}, false
}

func firstIn(ins []midi.In) (midi.In, error) {
	if len(ins) == 0 {
		return nil, errors.New("MIDI IN not found")
	}
	return ins[0], nil
}

// ListenToMidiIn ...
func ListenToMidiIn(ctx context.Context) <-chan MidiNote {
	ch := make(chan MidiNote, 1024)
	go func() {
		defer close(ch)
		drv, err := rtmididrv.New()
		if err != nil {
			log.Printf("failed to initialize MIDI driver: %v\n", err)
			return
		}
		defer func() {
			err := drv.Close()
			if err != nil {
				log.Printf("failed to close MIDI driver: %v\n", err)
			}
		}()
		ins, err := drv.Ins()
		if err != nil {
			log.Printf("failed to get MIDI IN: %v\n", err)
			return
		}
		log.Printf("MIDI IN: %v\n", ins)
		in, err := firstIn(ins)
		if err != nil {
			log.Printf("WARN: %v\n", err)
			return
		}
		if err := in.Open(); err != nil {
			log.Printf("failed to open MIDI IN: %v\n", err)
			return
		}
		log.Println("opened " + in.String())
		defer func() {
			err := in.Close()
			if err != nil {
				log.Printf("failed to close MIDI IN: %v\n", err)
			}
		}()
		log.Println("start listening MIDI IN...")
		if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
			note, ok := ParseMidiNote(data)
			if !ok {
				return
			}
			select {
			case ch <- note:
			default:
				log.Println("[WARN] MIDI note dropped")
			}
		}); err != nil {
			log.Println("failed to set listener: " + err.Error())
			return
		}
		defer func() {
			log.Println("stop listening MIDI IN...")
			err := in.StopListening()
			if err != nil {
				log.Printf("failed to stop listening: %v\n", err)
			}
		}()
		<-ctx.Done()
	}()
	return ch
}
