package canopy

import "time"

// Clock is the loop's time source, in milliseconds. Values must not decrease.
type Clock interface {
	Now() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

// Now calls f.
func (f ClockFunc) Now() float64 { return f() }

// wallClock reports milliseconds since it was created.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// LoopState is the frame loop's scheduling state.
type LoopState uint8

const (
	LoopIdle      LoopState = iota // stopped; ticks do nothing
	LoopScheduled                  // waiting for the next tick
	LoopRunning                    // inside a tick body
)

// String returns the state name.
func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopScheduled:
		return "scheduled"
	case LoopRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Loop turns host ticks into frame steps with a delta in seconds. The state
// is checked when a tick arrives and again after the step, so Stop takes
// effect on the very next tick even when called from inside a step.
//
// The previous timestamp starts at 0, so the first delta spans everything
// since the clock's origin. Set MaxDelta to clamp it.
type Loop struct {
	// MaxDelta, when positive, caps the delta passed to the step.
	MaxDelta float64

	state LoopState
	clock Clock
	last  float64
	step  func(dt float64)
}

// NewLoop creates an idle loop. A nil clock uses wall time since creation.
func NewLoop(clock Clock, step func(dt float64)) *Loop {
	if clock == nil {
		clock = newWallClock()
	}
	return &Loop{clock: clock, step: step}
}

// State returns the current scheduling state.
func (l *Loop) State() LoopState {
	return l.state
}

// Start schedules the loop. Starting a loop that is already scheduled or
// running is a no-op.
func (l *Loop) Start() {
	if l.state != LoopIdle {
		return
	}
	l.state = LoopScheduled
}

// Stop cancels the loop. No further steps run until Start is called again.
func (l *Loop) Stop() {
	l.state = LoopIdle
}

// Tick runs one step if the loop is scheduled. Reports whether it stepped.
func (l *Loop) Tick() bool {
	if l.state != LoopScheduled {
		return false
	}
	l.state = LoopRunning

	now := l.clock.Now()
	dt := (now - l.last) / 1000.0
	l.last = now
	if dt < 0 {
		dt = 0
	}
	if l.MaxDelta > 0 && dt > l.MaxDelta {
		dt = l.MaxDelta
	}

	if l.step != nil {
		l.step(dt)
	}

	if l.state == LoopRunning {
		l.state = LoopScheduled
	}
	return true
}
