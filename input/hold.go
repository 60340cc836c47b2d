package input

import (
	"time"

	"github.com/doublescale/rusty-navigator/engine"
)

// HoldTracker derives a held state from key presses
// Terminals report presses and auto-repeats but no releases. A first press stays held
// for initial, long enough to bridge the terminal's auto-repeat delay; once repeats
// arrive each one extends the hold by repeat
type HoldTracker struct {
	clock   engine.Clock
	initial time.Duration
	repeat  time.Duration

	lastPress time.Time
	pressed   bool
	repeating bool
}

func NewHoldTracker(clock engine.Clock, initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		clock:   clock,
		initial: initial,
		repeat:  repeat,
	}
}

// Press records a press or auto-repeat at the current time
func (h *HoldTracker) Press() {
	// A press while still held is an auto-repeat, not a new hold
	h.repeating = h.Held()
	h.lastPress = h.clock.Now()
	h.pressed = true
}

// Held reports whether the last press is still within its window
func (h *HoldTracker) Held() bool {
	if !h.pressed {
		return false
	}
	window := h.initial
	if h.repeating {
		window = h.repeat
	}
	if h.clock.Now().Sub(h.lastPress) < window {
		return true
	}
	h.pressed = false
	h.repeating = false
	return false
}

// Release drops the held state immediately
func (h *HoldTracker) Release() {
	h.pressed = false
	h.repeating = false
}
