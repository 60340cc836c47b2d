package physics

import (
	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/tunnel"
	"github.com/doublescale/rusty-navigator/vmath"
)

// CollisionProfile defines how the circular hitbox is tested against tunnel edges
type CollisionProfile struct {
	Radius float64

	// Normalize scales the edge normal before the distance dot product
	Normalize func(vmath.Vec2) vmath.Vec2
}

// LegacyProfile divides the normal by its squared length, so the effective radius shrinks
// with each edge's length. This is the calibrated gameplay behavior
var LegacyProfile = CollisionProfile{
	Radius:    constants.VehicleRadius,
	Normalize: vmath.V2Normalized,
}

// EuclideanProfile uses unit normals, the radius is a true distance
var EuclideanProfile = CollisionProfile{
	Radius:    constants.VehicleRadius,
	Normalize: vmath.V2Unit,
}

// IsCollided tests the vehicle against both tunnel polylines with legacy normalization
func IsCollided(v Vehicle, t *tunnel.Tunnel, radius float64) bool {
	p := LegacyProfile
	p.Radius = radius
	return IsCollidedWith(v, t, &p)
}

// IsCollidedWith tests the vehicle against both polylines using the given profile
func IsCollidedWith(v Vehicle, t *tunnel.Tunnel, profile *CollisionProfile) bool {
	return HitsGround(v.Position, t, profile) || HitsCeiling(v.Position, t, profile)
}

// HitsGround walks ground edges left to right, the left-turn normal points up into the tunnel
func HitsGround(pos vmath.Vec2, t *tunnel.Tunnel, profile *CollisionProfile) bool {
	r := profile.Radius
	for i := 1; i < t.Len(); i++ {
		start := t.At(i - 1).Ground()
		end := t.At(i).Ground()

		if !betweenX(pos.X, start.X, end.X) {
			continue
		}
		if pos.Y-r >= max(start.Y, end.Y) {
			continue
		}
		if SignedDistance(start, end, pos, profile.Normalize) < r {
			return true
		}
	}
	return false
}

// HitsCeiling walks ceiling edges with start and end swapped so the normal points down
func HitsCeiling(pos vmath.Vec2, t *tunnel.Tunnel, profile *CollisionProfile) bool {
	r := profile.Radius
	for i := 1; i < t.Len(); i++ {
		start := t.At(i).Ceiling()
		end := t.At(i - 1).Ceiling()

		if !betweenX(pos.X, start.X, end.X) {
			continue
		}
		if pos.Y+r <= min(start.Y, end.Y) {
			continue
		}
		if SignedDistance(start, end, pos, profile.Normalize) < r {
			return true
		}
	}
	return false
}

// SignedDistance returns dot(normalize(turnLeft(end-start)), pos-start)
// Positive on the left of start->end. NaN for a zero-length edge, which compares false
func SignedDistance(start, end, pos vmath.Vec2, normalize func(vmath.Vec2) vmath.Vec2) float64 {
	normal := normalize(vmath.V2TurnLeft(vmath.V2Sub(end, start)))
	return vmath.V2Dot(normal, vmath.V2Sub(pos, start))
}

// betweenX reports a strictly inside a and b, in either order
func betweenX(x, a, b float64) bool {
	return (a < x && x < b) || (b < x && x < a)
}
