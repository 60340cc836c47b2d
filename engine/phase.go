package engine

// Phase is the simulation's top-level state
type Phase int

const (
	// PhasePaused waits for thrust input, physics frozen
	PhasePaused Phase = iota
	// PhaseRunning ticks physics, tunnel and collision
	PhaseRunning
	// PhaseCollided is terminal until restart
	PhaseCollided
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseRunning:
		return "running"
	case PhaseCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Command is a discrete request applied between ticks
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandTogglePause
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandTogglePause:
		return "toggle-pause"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Controls is the continuous input sampled once per tick
type Controls struct {
	Thrust bool
}
