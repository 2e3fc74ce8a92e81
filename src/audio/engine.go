package audio

import (
	"errors"
	"log"
	"math"
	"math/big"
	"time"
)

// ----- Scheduler ----- //

// TimerID names one of the two timers the engine drives.
type TimerID int

const (
	// TimerTick is the periodic block tick.
	TimerTick TimerID = iota
	// TimerRelease is the one-shot end of the release tail.
	TimerRelease
)

func (id TimerID) String() string {
	switch id {
	case TimerTick:
		return "tick"
	case TimerRelease:
		return "release"
	}
	return "unknown"
}

// Scheduler arms and cancels the engine's timers. When a timer fires, the
// event loop calls Engine.Tick or Engine.ReleaseDeadline.
type Scheduler interface {
	ArmPeriodic(id TimerID, interval time.Duration)
	ArmOnce(id TimerID, after time.Duration)
	Cancel(id TimerID)
}

// ----- Mode ----- //

// Mode is the playback state of the engine.
type Mode int

const (
	ModeIdle Mode = iota
	ModePlaying
	ModeReleaseWait
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlaying:
		return "playing"
	case ModeReleaseWait:
		return "release-wait"
	}
	return "unknown"
}

// ----- Engine ----- //

// Engine turns press/release events into a stream of blocks. It is not safe
// for concurrent use: a single event loop owns it.
type Engine struct {
	config    *Config
	scheduler Scheduler
	sink      Sink
	display   Display
	shape     ShapeSelector

	phases      *PhaseTracker
	active      map[float64]struct{}
	previous    map[float64]struct{}
	mode        Mode
	buffer      *DisplayBuffer
	currentTime float64
	lastWait    *big.Rat
}

// NewEngine ...
func NewEngine(config *Config, scheduler Scheduler, sink Sink, display Display, shape ShapeSelector) *Engine {
	return &Engine{
		config:    config,
		scheduler: scheduler,
		sink:      sink,
		display:   display,
		shape:     shape,
		phases:    NewPhaseTracker(),
		active:    make(map[float64]struct{}),
		previous:  make(map[float64]struct{}),
		mode:      ModeIdle,
		buffer:    NewDisplayBuffer(int(config.DisplaySeconds * sampleRate)),
		lastWait:  new(big.Rat),
	}
}

// Press starts sounding freq. A press during the release tail abandons the tail.
func (e *Engine) Press(freq float64) {
	if !(freq > 0) || math.IsInf(freq, 0) {
		log.Printf("[WARN] ignored press of invalid frequency %v\n", freq)
		return
	}
	if e.mode == ModeReleaseWait {
		e.scheduler.Cancel(TimerRelease)
		e.previous = make(map[float64]struct{})
		e.mode = ModePlaying
	}
	e.active[freq] = struct{}{}
	e.phases.Ensure(freq)
	if e.mode == ModeIdle {
		e.mode = ModePlaying
		e.scheduler.ArmPeriodic(TimerTick, e.config.TickInterval)
	}
}

// Release stops holding freq. Releasing a frequency that is not held is a no-op.
func (e *Engine) Release(freq float64) {
	if _, ok := e.active[freq]; !ok {
		return
	}
	e.previous = copySet(e.active)
	delete(e.active, freq)
	if len(e.active) == 0 {
		e.enterReleaseWait()
		return
	}
	if e.mode == ModePlaying {
		e.preview()
	}
}

func (e *Engine) enterReleaseWait() {
	e.mode = ModeReleaseWait
	wait, err := ReleaseTail(sortedFreqs(e.previous), e.config.MaxDenominator)
	if err != nil {
		log.Printf("failed to compute release tail: %v\n", err)
		wait = new(big.Rat)
	}
	e.lastWait = wait
	e.scheduler.ArmOnce(TimerRelease, ratToDuration(wait))
}

// preview refreshes the display with the remaining voices. Phases are read, not advanced.
func (e *Engine) preview() {
	freqs := sortedFreqs(e.active)
	block := GenerateBlock(freqs, e.phases.Snapshot(freqs), seconds(e.config.PreviewDuration), e.shape.WaveShape())
	e.display.Update(block.Time, block.Samples, FormatLabel(freqs))
}

// Tick emits one block of the held voices, or of the released ones during the
// release tail.
func (e *Engine) Tick() {
	var source map[float64]struct{}
	switch e.mode {
	case ModePlaying:
		source = e.active
	case ModeReleaseWait:
		source = e.previous
	default:
		return
	}
	if len(source) == 0 {
		return
	}
	freqs := sortedFreqs(source)
	duration := seconds(e.config.BlockDuration)
	block := GenerateBlock(freqs, e.phases.Snapshot(freqs), duration, e.shape.WaveShape())
	for _, freq := range freqs {
		e.phases.Advance(freq, duration)
	}
	e.currentTime += duration
	if err := e.sink.Play(block.Samples); err != nil {
		if errors.Is(err, ErrDeviceUnavailable) {
			log.Printf("[WARN] block discarded: %v\n", err)
		} else {
			log.Printf("failed to play block: %v\n", err)
		}
	}
	e.buffer.Append(block.Samples)
	e.display.Update(e.buffer.TimeAxis(), e.buffer.Samples(), FormatLabel(freqs))
}

// ReleaseDeadline ends the release tail and silences the engine.
func (e *Engine) ReleaseDeadline() {
	if e.mode != ModeReleaseWait {
		return
	}
	e.scheduler.Cancel(TimerTick)
	e.mode = ModeIdle
	e.buffer.Reset()
	e.display.Update(nil, nil, e.config.RestLabel)
}

// Mode ...
func (e *Engine) Mode() Mode {
	return e.mode
}

// CurrentTime is the total duration of audio emitted so far, in seconds.
func (e *Engine) CurrentTime() float64 {
	return e.currentTime
}

// LastReleaseWait returns the most recently armed release tail in seconds.
func (e *Engine) LastReleaseWait() *big.Rat {
	return new(big.Rat).Set(e.lastWait)
}

// Active returns the held frequencies in ascending order.
func (e *Engine) Active() []float64 {
	return sortedFreqs(e.active)
}

// Previous returns the last snapshot taken by Release.
func (e *Engine) Previous() []float64 {
	return sortedFreqs(e.previous)
}

// Phase ...
func (e *Engine) Phase(freq float64) float64 {
	return e.phases.Phase(freq)
}

// DisplayLen is the number of samples currently kept for display.
func (e *Engine) DisplayLen() int {
	return e.buffer.Len()
}

func copySet(set map[float64]struct{}) map[float64]struct{} {
	out := make(map[float64]struct{}, len(set))
	for k := range set {
		out[k] = struct{}{}
	}
	return out
}
