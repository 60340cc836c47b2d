package physics

import (
	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/vmath"
)

// Vehicle is the player's circular body, fixed in x while the tunnel scrolls
type Vehicle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// NewVehicle returns a vehicle at the start position at rest
func NewVehicle() Vehicle {
	return Vehicle{
		Position: vmath.Vec2{X: constants.VehicleStartX, Y: constants.VehicleStartY},
	}
}

// ApplyThrust adds delta to vertical velocity while held, subtracts it otherwise
func ApplyThrust(v *Vehicle, held bool, delta float64) {
	if held {
		v.Velocity.Y += delta
	} else {
		v.Velocity.Y -= delta
	}
}

// Integrate advances position by one tick of velocity
func Integrate(v *Vehicle) {
	v.Position = vmath.V2Add(v.Position, v.Velocity)
}
