package ui

import "time"

// ============================================================================
// Scheduler
// ============================================================================

// Scheduler owns the toolkit's timers and a monotonic virtual clock. The
// host event loop advances the clock between input batches; expired timer
// callbacks run synchronously inside Advance, on the caller's control
// flow, in deadline order. Nothing here touches a separate goroutine, so
// a stopped timer is guaranteed never to fire again once Stop returns.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// NewTimer creates a stopped repeating timer bound to fn. Intervals below
// one millisecond are clamped so a runaway timer cannot wedge Advance.
func (s *Scheduler) NewTimer(interval time.Duration, fn func()) *Timer {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	t := &Timer{
		scheduler: s,
		interval:  interval,
		fn:        fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls inside the window. A repeating timer that fires more than once in
// the window fires once per elapsed interval. Callbacks run in deadline
// order; a callback may start or stop any timer, including its own.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.deadline
		next.deadline += next.interval
		next.fn()
	}

	s.now = target
}

// nextDue returns the running timer with the earliest deadline at or
// before target, or nil.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var due *Timer
	for _, t := range s.timers {
		if !t.running || t.deadline > target {
			continue
		}
		if due == nil || t.deadline < due.deadline {
			due = t
		}
	}
	return due
}

// remove drops a timer from the scheduler entirely.
func (s *Scheduler) remove(t *Timer) {
	for i, existing := range s.timers {
		if existing == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// ============================================================================
// Timer
// ============================================================================

// Timer is a repeating countdown owned by a Scheduler. Start (re)arms the
// countdown from zero; once expired it fires its callback and re-arms
// until stopped. Timers are reused across arm/disarm cycles rather than
// recreated.
type Timer struct {
	scheduler *Scheduler
	interval  time.Duration
	fn        func()

	running  bool
	deadline time.Duration
}

// Interval returns the timer's firing interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// SetInterval changes the firing interval. If the timer is running the
// countdown restarts from zero.
func (t *Timer) SetInterval(interval time.Duration) {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	t.interval = interval
	if t.running {
		t.Start()
	}
}

// Start arms the countdown. If the timer is already running the countdown
// restarts from zero.
func (t *Timer) Start() {
	t.running = true
	t.deadline = t.scheduler.now + t.interval
}

// Stop cancels any pending firing. Idempotent, and safe to call from
// inside the timer's own callback. No callback fires after Stop returns.
func (t *Timer) Stop() {
	t.running = false
}

// IsRunning returns true while the timer is armed.
func (t *Timer) IsRunning() bool {
	return t.running
}

// Release stops the timer and removes it from its scheduler.
func (t *Timer) Release() {
	t.Stop()
	t.scheduler.remove(t)
}
