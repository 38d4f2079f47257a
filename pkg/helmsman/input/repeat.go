package input

import (
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/constants"
)

// Repeat tracks a held button and decides when a held press should repeat.
// The first repeat happens after Delay, following ones every Interval.
type Repeat struct {
	held           bool
	lastRepeatTime time.Time
	hasRepeated    bool
	repeatDelay    time.Duration
	repeatInterval time.Duration
}

// NewRepeat creates a Repeat with the default back-button timing.
func NewRepeat() Repeat {
	return NewRepeatWithTiming(constants.DefaultBackRepeatDelay, constants.DefaultBackRepeatInterval)
}

// NewRepeatWithTiming creates a Repeat with custom timing.
func NewRepeatWithTiming(delay, interval time.Duration) Repeat {
	return Repeat{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// Press records the button going down at now.
func (r *Repeat) Press(now time.Time) {
	r.held = true
	r.lastRepeatTime = now
	r.hasRepeated = false
}

// Release records the button going up.
func (r *Repeat) Release() {
	r.held = false
	r.hasRepeated = false
}

// IsHeld reports whether the button is down.
func (r *Repeat) IsHeld() bool {
	return r.held
}

// Due reports whether a held button should repeat at now, and if so marks
// the repeat as done.
func (r *Repeat) Due(now time.Time) bool {
	if !r.held {
		return false
	}

	wait := r.repeatInterval
	if !r.hasRepeated {
		wait = r.repeatDelay
	}
	if now.Sub(r.lastRepeatTime) < wait {
		return false
	}

	r.lastRepeatTime = now
	r.hasRepeated = true
	return true
}
