package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ----- Beep Sink ----- //

const beepQueueLength = 8

// BeepSink feeds blocks to the beep speaker through a bounded queue. The
// speaker pulls samples as it needs them and plays silence when the queue is
// empty.
type BeepSink struct {
	blocks  chan []int16
	timeout time.Duration
	once    sync.Once

	// owned by the speaker goroutine
	current []int16
	pos     int
}

var _ Sink = (*BeepSink)(nil)
var _ beep.Streamer = (*BeepSink)(nil)

// NewBeepSink initializes the speaker and starts streaming from the queue.
func NewBeepSink() (*BeepSink, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("cannot initialize speaker: %w", err)
	}
	s := newBeepSink(beepQueueLength, time.Second)
	speaker.Play(s)
	return s, nil
}

func newBeepSink(queueLength int, timeout time.Duration) *BeepSink {
	return &BeepSink{
		blocks:  make(chan []int16, queueLength),
		timeout: timeout,
	}
}

// Play waits for room in the queue. A queue that stays full for the whole
// timeout means the speaker stopped pulling.
func (s *BeepSink) Play(samples []int16) error {
	block := make([]int16, len(samples))
	copy(block, samples)
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()
	select {
	case s.blocks <- block:
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: speaker queue stalled", ErrDeviceUnavailable)
	}
}

// Stream implements beep.Streamer.
func (s *BeepSink) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= len(s.current) && !s.next() {
			samples[i] = [2]float64{}
			continue
		}
		v := float64(s.current[s.pos]) / fullScale
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *BeepSink) next() bool {
	select {
	case block := <-s.blocks:
		s.current = block
		s.pos = 0
		return len(block) > 0
	default:
		return false
	}
}

// Err implements beep.Streamer.
func (s *BeepSink) Err() error {
	return nil
}

// Terminate ...
func (s *BeepSink) Terminate() {
	s.once.Do(func() {
		log.Println("Closing speaker...")
		speaker.Close()
	})
}
