package tunnel

import "github.com/doublescale/rusty-navigator/vmath"

// Ground returns the lower polyline, one point per segment, oldest first
func (t *Tunnel) Ground() []vmath.Vec2 {
	return t.AppendGround(make([]vmath.Vec2, 0, t.count))
}

// Ceiling returns the upper polyline, one point per segment, oldest first
func (t *Tunnel) Ceiling() []vmath.Vec2 {
	return t.AppendCeiling(make([]vmath.Vec2, 0, t.count))
}

// AppendGround appends ground points to dst, for callers that reuse buffers per frame
func (t *Tunnel) AppendGround(dst []vmath.Vec2) []vmath.Vec2 {
	for i := 0; i < t.count; i++ {
		dst = append(dst, t.buf[(t.head+i)&t.mask].Ground())
	}
	return dst
}

// AppendCeiling appends ceiling points to dst
func (t *Tunnel) AppendCeiling(dst []vmath.Vec2) []vmath.Vec2 {
	for i := 0; i < t.count; i++ {
		dst = append(dst, t.buf[(t.head+i)&t.mask].Ceiling())
	}
	return dst
}
