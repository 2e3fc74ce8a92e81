package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/oto"
)

// ErrDeviceUnavailable is wrapped by sinks when a block cannot reach the device.
var ErrDeviceUnavailable = errors.New("audio device unavailable")

// Sink accepts blocks one at a time in call order. Play may block to apply
// backpressure.
type Sink interface {
	Play(samples []int16) error
	Terminate()
}

// ----- Oto Sink ----- //

const otoBufferSizeInBytes = 8192

// OtoSink writes mono 16-bit blocks to an oto player.
type OtoSink struct {
	context *oto.Context
	player  *oto.Player
	buf     []byte
	once    sync.Once
}

var _ Sink = (*OtoSink)(nil)

// NewOtoSink ...
func NewOtoSink() (*OtoSink, error) {
	context, err := oto.NewContext(sampleRate, channelNum, bitDepthInBytes, otoBufferSizeInBytes)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	return &OtoSink{
		context: context,
		player:  context.NewPlayer(),
	}, nil
}

// Play blocks until the player has accepted the whole block.
func (s *OtoSink) Play(samples []int16) error {
	s.buf = writeBuffer(samples, s.buf[:0])
	if _, err := s.player.Write(s.buf); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	return nil
}

// Terminate closes the player and the context. Only the first call has effect.
func (s *OtoSink) Terminate() {
	s.once.Do(func() {
		log.Println("Closing Audio...")
		if err := s.player.Close(); err != nil {
			log.Printf("error while closing player: %v", err)
		}
		if err := s.context.Close(); err != nil {
			log.Printf("error while closing oto context: %v", err)
		}
	})
}

// writeBuffer appends samples to buf as little-endian 16-bit PCM.
func writeBuffer(samples []int16, buf []byte) []byte {
	for _, v := range samples {
		buf = append(buf, byte(v), byte(v>>8))
	}
	return buf
}
