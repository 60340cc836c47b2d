package tunnel

import (
	"math"
	"testing"

	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/vmath"
)

func checkInvariants(t *testing.T, tick int, tn *Tunnel) {
	t.Helper()
	if tn.Len() < 2 {
		t.Fatalf("Tick %d: expected at least 2 segments, got %d", tick, tn.Len())
	}
	if back := tn.Back().Center.X; back < constants.TunnelVisibleRight {
		t.Fatalf("Tick %d: expected newest x >= 1.0, got %v", tick, back)
	}
	if second := tn.At(1).Center.X; second < 0 {
		t.Fatalf("Tick %d: expected successor of oldest x >= 0, got %v", tick, second)
	}
	for i := 1; i < tn.Len(); i++ {
		if tn.At(i).Center.X <= tn.At(i-1).Center.X {
			t.Fatalf("Tick %d: x not strictly increasing at %d: %v", tick, i, tn.Segments())
		}
	}
}

func TestGeneratorInit(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(0))
	tn := g.Init()

	checkInvariants(t, 0, tn)

	// Seed segments survive the first scroll step unchanged except for x
	front := tn.Front()
	if front.Center.Y != 0.5 || front.HalfWidth != 0.4 {
		t.Errorf("Expected seed segment midpoint 0.5 half-width 0.4, got %v", front)
	}
	if front.Center.X != -constants.ScrollSpeed {
		t.Errorf("Expected first segment at x=%v, got %v", -constants.ScrollSpeed, front.Center.X)
	}
	secondX := constants.TunnelSeedSecondX - constants.ScrollSpeed
	if second := tn.At(1); second.Center.X < secondX-1e-12 || second.Center.X > secondX+1e-12 || second.HalfWidth != 0.4 {
		t.Errorf("Expected second seed segment at 0.399, got %v", second)
	}
}

func TestGeneratorInvariantsOverManyTicks(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(12345))
	tn := g.Init()
	for i := 1; i <= 20000; i++ {
		g.Tick(tn)
		checkInvariants(t, i, tn)
	}
}

func TestGeneratorRandomBounds(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(99))
	tn := g.Init()
	for i := 0; i < 5000; i++ {
		g.Tick(tn)
		b := tn.Back()
		// Seed segments are outside the random bounds, skip until they leave
		if b.HalfWidth == constants.TunnelSeedHalfWidth {
			continue
		}
		if b.Center.Y < constants.SegmentMidpointMin || b.Center.Y >= constants.SegmentMidpointMax {
			t.Fatalf("Midpoint out of range: %v", b.Center.Y)
		}
		if b.HalfWidth < constants.SegmentHalfWidthMin || b.HalfWidth >= constants.SegmentHalfWidthMax {
			t.Fatalf("Half-width out of range: %v", b.HalfWidth)
		}
	}
}

func TestGeneratorSpacing(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(5))
	tn := g.Init()
	for i := 0; i < 1000; i++ {
		g.Tick(tn)
	}
	// Everything past the seeds was appended at prev.x + spacing
	for i := 1; i < tn.Len(); i++ {
		d := tn.At(i).Center.X - tn.At(i-1).Center.X
		if d < constants.SegmentSpacing-1e-9 || d > constants.SegmentSpacing+1e-9 {
			t.Errorf("Expected spacing %v at %d, got %v", constants.SegmentSpacing, i, d)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	run := func() []Segment {
		g := NewGenerator(vmath.NewFastRand(2024))
		tn := g.Init()
		var all []Segment
		for i := 0; i < 3000; i++ {
			g.Tick(tn)
			all = append(all, tn.Back())
		}
		return all
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Runs diverged at tick %d: %v != %v", i, a[i], b[i])
		}
	}
}

// TestGeneratorSharedSource verifies a second Init continues the random sequence
func TestGeneratorSharedSource(t *testing.T) {
	rng := vmath.NewFastRand(0)
	g := NewGenerator(rng)
	first := g.Init().Back()
	second := g.Init().Back()

	if first == second {
		t.Errorf("Expected different tunnels from a carried-forward source, got %v twice", first)
	}

	fresh := NewGenerator(vmath.NewFastRand(0)).Init().Back()
	if fresh != first {
		t.Errorf("Expected re-seeded source to reproduce %v, got %v", first, fresh)
	}
}

func TestGeneratorEvictsHead(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(1))
	tn := g.Init()
	for i := 0; i < 500; i++ {
		g.Tick(tn)
	}
	// The seed at x=0 would now sit at -0.501 had it not been evicted
	if x := tn.Front().Center.X; x < -0.4 {
		t.Errorf("Expected oldest segment evicted, front still at %v", x)
	}
}

func TestGeneratorDegenerateSpacing(t *testing.T) {
	for _, spacing := range []float64{0, -0.2, math.NaN()} {
		g := NewGenerator(vmath.NewFastRand(8))
		g.spacing = spacing
		tn := g.Init()
		for i := 0; i < 100; i++ {
			g.Tick(tn)
			checkInvariants(t, i, tn)
		}
		d := tn.Back().Center.X - tn.At(tn.Len()-2).Center.X
		if d < constants.SegmentSpacing-1e-9 || d > constants.SegmentSpacing+1e-9 {
			t.Errorf("Spacing %v: expected fallback %v, got %v", spacing, constants.SegmentSpacing, d)
		}
	}
}
