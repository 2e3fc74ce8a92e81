package audio

import (
	"errors"
	"testing"
	"time"
)

func TestWriteBuffer(t *testing.T) {
	buf := writeBuffer([]int16{1, -1, 0x1234}, nil)
	expected := []byte{0x01, 0x00, 0xff, 0xff, 0x34, 0x12}
	expectEqual(t, len(buf), len(expected))
	for i := range buf {
		expectEqual(t, buf[i], expected[i])
	}
	buf = writeBuffer([]int16{2}, buf[:0])
	expectEqual(t, len(buf), bytesPerSample)
}

func TestBeepSinkQueueStall(t *testing.T) {
	s := newBeepSink(2, 10*time.Millisecond)
	expectNoError(t, s.Play([]int16{1}))
	expectNoError(t, s.Play([]int16{2}))
	err := s.Play([]int16{3})
	expectError(t, err)
	expectEqual(t, errors.Is(err, ErrDeviceUnavailable), true)
}

func TestBeepSinkStream(t *testing.T) {
	s := newBeepSink(4, time.Second)
	block := []int16{fullScale, -fullScale}
	expectNoError(t, s.Play(block))
	block[0] = 0

	out := make([][2]float64, 4)
	n, ok := s.Stream(out)
	expectEqual(t, n, 4)
	expectEqual(t, ok, true)
	expectNearlyEqual(t, out[0][0], 1)
	expectNearlyEqual(t, out[0][1], 1)
	expectNearlyEqual(t, out[1][0], -1)
	expectNearlyEqual(t, out[2][0], 0)
	expectNearlyEqual(t, out[3][1], 0)
	expectNoError(t, s.Err())
}

func TestBeepSinkStreamSpansBlocks(t *testing.T) {
	s := newBeepSink(4, time.Second)
	expectNoError(t, s.Play([]int16{fullScale}))
	expectNoError(t, s.Play([]int16{}))
	expectNoError(t, s.Play([]int16{-fullScale}))
	out := make([][2]float64, 2)
	s.Stream(out)
	expectNearlyEqual(t, out[0][0], 1)
	expectNearlyEqual(t, out[1][0], 0)
	s.Stream(out)
	expectNearlyEqual(t, out[0][0], -1)
}
