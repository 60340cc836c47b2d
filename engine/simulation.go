package engine

import (
	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/physics"
	"github.com/doublescale/rusty-navigator/tunnel"
	"github.com/doublescale/rusty-navigator/vmath"
)

// Simulation owns all mutable game data, single writer (the frame loop)
type Simulation struct {
	Vehicle physics.Vehicle
	Tunnel  *tunnel.Tunnel
	Phase   Phase

	// Frame counts every Tick call, including paused and collided ticks
	Frame uint64
	// CrashFrame is the Frame at which the collision was detected
	CrashFrame uint64

	rng       *vmath.FastRand
	generator *tunnel.Generator
	profile   physics.CollisionProfile

	thrustDelta float64
}

// NewSimulation builds a paused simulation awaiting the first thrust input
// The random source is owned from here on and carried across restarts
func NewSimulation(rng *vmath.FastRand) *Simulation {
	s := &Simulation{
		rng:         rng,
		generator:   tunnel.NewGenerator(rng),
		profile:     physics.LegacyProfile,
		thrustDelta: constants.ThrustDelta,
	}
	s.reset()
	s.Phase = PhasePaused
	return s
}

// SetCollisionProfile replaces the hitbox profile, used to opt into euclidean normals
func (s *Simulation) SetCollisionProfile(p physics.CollisionProfile) {
	s.profile = p
}

func (s *Simulation) reset() {
	s.Vehicle = physics.NewVehicle()
	s.Tunnel = s.generator.Init()
	s.CrashFrame = 0
}

// Collided reports whether the run has ended
func (s *Simulation) Collided() bool {
	return s.Phase == PhaseCollided
}

// Paused reports whether physics is frozen awaiting input
func (s *Simulation) Paused() bool {
	return s.Phase == PhasePaused
}

// Tick advances one frame: physics, tunnel scroll, then collision
func (s *Simulation) Tick(c Controls) {
	s.Frame++

	if s.Phase == PhasePaused && c.Thrust {
		s.Phase = PhaseRunning
	}
	if s.Phase != PhaseRunning {
		return
	}

	physics.ApplyThrust(&s.Vehicle, c.Thrust, s.thrustDelta)
	physics.Integrate(&s.Vehicle)
	s.generator.Tick(s.Tunnel)

	if physics.IsCollidedWith(s.Vehicle, s.Tunnel, &s.profile) {
		s.Phase = PhaseCollided
		s.CrashFrame = s.Frame
	}
}

// Restart regenerates vehicle and tunnel from the carried-forward random source
func (s *Simulation) Restart() {
	s.reset()
	s.Phase = PhaseRunning
}

// TogglePause flips running and paused, no-op once collided
func (s *Simulation) TogglePause() {
	switch s.Phase {
	case PhaseRunning:
		s.Phase = PhasePaused
	case PhasePaused:
		s.Phase = PhaseRunning
	}
}

// Apply executes a discrete command, returns false when the loop should exit
func (s *Simulation) Apply(cmd Command) bool {
	switch cmd {
	case CommandQuit:
		return false
	case CommandRestart:
		s.Restart()
	case CommandTogglePause:
		s.TogglePause()
	}
	return true
}

// FramesSinceCrash returns 0 unless collided
func (s *Simulation) FramesSinceCrash() uint64 {
	if s.Phase != PhaseCollided {
		return 0
	}
	return s.Frame - s.CrashFrame
}
