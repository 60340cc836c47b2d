package tunnel

import (
	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/vmath"
)

// Generator scrolls, evicts and extends a tunnel using an explicit random source
type Generator struct {
	rng *vmath.FastRand

	scrollSpeed float64
	spacing     float64
}

// NewGenerator creates a generator with default scroll speed and spacing
// The random source is shared, not copied: the caller keeps ownership across restarts
func NewGenerator(rng *vmath.FastRand) *Generator {
	return &Generator{
		rng:         rng,
		scrollSpeed: constants.ScrollSpeed,
		spacing:     constants.SegmentSpacing,
	}
}

// Init builds the two seed segments and ticks until steady-state
func (g *Generator) Init() *Tunnel {
	t := NewTunnel()
	t.PushBack(Segment{
		Center:    vmath.Vec2{X: constants.TunnelSeedFirstX, Y: constants.TunnelSeedMidpoint},
		HalfWidth: constants.TunnelSeedHalfWidth,
	})
	t.PushBack(Segment{
		Center:    vmath.Vec2{X: constants.TunnelSeedSecondX, Y: constants.TunnelSeedMidpoint},
		HalfWidth: constants.TunnelSeedHalfWidth,
	})

	for t.Back().Center.X < constants.TunnelVisibleRight {
		g.Tick(t)
	}
	return t
}

// Tick runs one scroll step: shift left, evict the head, extend the tail
func (g *Generator) Tick(t *Tunnel) {
	t.shift(-g.scrollSpeed)

	// Keep one off-screen segment as the leading edge
	for t.Len() >= 2 && t.At(1).Center.X < 0 {
		t.PopFront()
	}

	for t.Back().Center.X < constants.TunnelVisibleRight {
		t.PushBack(g.next(t.Back()))
	}
}

func (g *Generator) next(prev Segment) Segment {
	x := prev.Center.X + g.step()
	mid := g.rng.Uniform(constants.SegmentMidpointMin, constants.SegmentMidpointMax)
	half := g.rng.Uniform(constants.SegmentHalfWidthMin, constants.SegmentHalfWidthMax)
	return Segment{
		Center:    vmath.Vec2{X: x, Y: mid},
		HalfWidth: half,
	}
}

// step is the spacing between appended segments, non-positive or NaN spacing would
// never reach the right edge and falls back to the default
func (g *Generator) step() float64 {
	if !(g.spacing > 0) {
		return constants.SegmentSpacing
	}
	return g.spacing
}
