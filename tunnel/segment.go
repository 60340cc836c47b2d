package tunnel

import "github.com/doublescale/rusty-navigator/vmath"

// Segment is one tunnel keyframe: Center.X is the horizontal position, Center.Y the
// vertical midpoint of the opening, HalfWidth half of the opening height
type Segment struct {
	Center    vmath.Vec2
	HalfWidth float64
}

// Ground returns the lower edge point
func (s Segment) Ground() vmath.Vec2 {
	return vmath.Vec2{X: s.Center.X, Y: s.Center.Y - s.HalfWidth}
}

// Ceiling returns the upper edge point
func (s Segment) Ceiling() vmath.Vec2 {
	return vmath.Vec2{X: s.Center.X, Y: s.Center.Y + s.HalfWidth}
}
