package engine

import (
	"fmt"

	"github.com/doublescale/rusty-navigator/physics"
	"github.com/doublescale/rusty-navigator/tunnel"
)

// Snapshot captures simulation state for determinism checks and debug logging
type Snapshot struct {
	Frame    uint64
	Phase    Phase
	Vehicle  physics.Vehicle
	Segments []tunnel.Segment
	RNGState uint64
}

// Snapshot returns a deep copy of the current state
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Frame:    s.Frame,
		Phase:    s.Phase,
		Vehicle:  s.Vehicle,
		Segments: s.Tunnel.Segments(),
		RNGState: s.rng.State(),
	}
}

// Equal compares snapshots bit for bit
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Frame != b.Frame || a.Phase != b.Phase || a.Vehicle != b.Vehicle || a.RNGState != b.RNGState {
		return false
	}
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			return false
		}
	}
	return true
}

// String is the one-line per-frame debug form
func (a Snapshot) String() string {
	return fmt.Sprintf("frame=%d phase=%s pos=(%.4f,%.4f) vel=(%.5f,%.5f) segments=%d",
		a.Frame, a.Phase,
		a.Vehicle.Position.X, a.Vehicle.Position.Y,
		a.Vehicle.Velocity.X, a.Vehicle.Velocity.Y,
		len(a.Segments))
}
