package input

import (
	"log"

	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/engine"
	"github.com/gdamore/tcell/v2"
)

// Handler turns tcell events into simulation commands and per-tick controls
type Handler struct {
	keys   *KeyTable
	thrust *HoldTracker
	debug  bool
}

// NewHandler creates a handler with default bindings
func NewHandler(clock engine.Clock, debug bool) *Handler {
	return &Handler{
		keys:   DefaultKeyTable(),
		thrust: NewHoldTracker(clock, constants.ThrustInitialHold, constants.ThrustRepeatHold),
		debug:  debug,
	}
}

// HandleEvent processes one event and returns the discrete command it carries
func (h *Handler) HandleEvent(ev tcell.Event) engine.Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if h.debug {
			log.Printf("event: %T", ev)
		}
		return engine.CommandNone
	}

	entry := h.keys.Lookup(key)
	if h.debug {
		log.Printf("event: key=%s command=%s thrust=%v", key.Name(), entry.Command, entry.Thrust)
	}
	if entry.Thrust {
		h.thrust.Press()
	}
	if entry.Command == engine.CommandRestart {
		// A restart must not inherit thrust from the previous run
		h.thrust.Release()
	}
	return entry.Command
}

// Controls samples the continuous input state for this tick
func (h *Handler) Controls() engine.Controls {
	return engine.Controls{Thrust: h.thrust.Held()}
}
