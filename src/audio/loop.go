package audio

import (
	"context"
	"log"
	"time"
)

// ----- Events ----- //

// EventKind ...
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
)

// Event is a key press or release already mapped to its frequency.
type Event struct {
	Kind EventKind
	Freq float64
}

// EventHandler is driven by Loop. Engine implements it.
type EventHandler interface {
	Press(freq float64)
	Release(freq float64)
	Tick()
	ReleaseDeadline()
}

var _ EventHandler = (*Engine)(nil)

// ----- Loop ----- //

// Loop is the single goroutine that owns the engine. It implements Scheduler
// with a ticker and a one-shot timer whose channels are nil while disarmed, so
// a cancelled timer is never delivered.
type Loop struct {
	events   chan Event
	ticker   *time.Ticker
	tickC    <-chan time.Time
	timer    *time.Timer
	releaseC <-chan time.Time
}

var _ Scheduler = (*Loop)(nil)

// NewLoop ...
func NewLoop() *Loop {
	return &Loop{
		events: make(chan Event, 256),
	}
}

// Post queues an event for the loop. It gives up when ctx is done.
func (l *Loop) Post(ctx context.Context, event Event) error {
	select {
	case l.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ArmPeriodic implements Scheduler.
func (l *Loop) ArmPeriodic(id TimerID, interval time.Duration) {
	if id != TimerTick {
		log.Printf("[WARN] cannot arm %v as periodic\n", id)
		return
	}
	l.Cancel(TimerTick)
	l.ticker = time.NewTicker(interval)
	l.tickC = l.ticker.C
}

// ArmOnce implements Scheduler.
func (l *Loop) ArmOnce(id TimerID, after time.Duration) {
	if id != TimerRelease {
		log.Printf("[WARN] cannot arm %v as one-shot\n", id)
		return
	}
	l.Cancel(TimerRelease)
	l.timer = time.NewTimer(after)
	l.releaseC = l.timer.C
}

// Cancel implements Scheduler.
func (l *Loop) Cancel(id TimerID) {
	switch id {
	case TimerTick:
		if l.ticker != nil {
			l.ticker.Stop()
		}
		l.ticker = nil
		l.tickC = nil
	case TimerRelease:
		if l.timer != nil {
			l.timer.Stop()
		}
		l.timer = nil
		l.releaseC = nil
	}
}

// Armed reports whether the timer id is armed.
func (l *Loop) Armed(id TimerID) bool {
	switch id {
	case TimerTick:
		return l.tickC != nil
	case TimerRelease:
		return l.releaseC != nil
	}
	return false
}

// Run dispatches events and timers to h until ctx is done.
func (l *Loop) Run(ctx context.Context, h EventHandler) error {
	defer func() {
		l.Cancel(TimerTick)
		l.Cancel(TimerRelease)
	}()
	for {
		select {
		case <-ctx.Done():
			log.Println("Run() interrupted.")
			return nil
		case event := <-l.events:
			switch event.Kind {
			case EventPress:
				h.Press(event.Freq)
			case EventRelease:
				h.Release(event.Freq)
			}
		case <-l.tickC:
			h.Tick()
		case <-l.releaseC:
			l.timer = nil
			l.releaseC = nil
			h.ReleaseDeadline()
		}
	}
}
