// Package countdown implements the per-question timer as a pure value type.
// The caller owns the tick source; Tick is called once per elapsed second.
package countdown

// Timer tracks remaining seconds for the active question.
// The zero value is a stopped timer with no time remaining.
type Timer struct {
	Remaining int
	Running   bool
}

// Start returns a running timer with the given limit in seconds.
func Start(limitSeconds int) Timer {
	if limitSeconds < 0 {
		limitSeconds = 0
	}
	return Timer{Remaining: limitSeconds, Running: true}
}

// Tick advances the timer by one second. It reports expired=true exactly
// once, on the transition to zero. Ticks on a stopped or already expired
// timer are no-ops.
func (t Timer) Tick() (Timer, bool) {
	if !t.Running || t.Remaining <= 0 {
		return t, false
	}

	t.Remaining--
	if t.Remaining == 0 {
		t.Running = false
		return t, true
	}
	return t, false
}

// Stop halts the timer without expiring it.
func (t Timer) Stop() Timer {
	t.Running = false
	return t
}

// Expired reports whether the timer ran down to zero.
func (t Timer) Expired() bool {
	return !t.Running && t.Remaining == 0
}
