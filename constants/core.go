package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the fixed simulation + render interval (~50 FPS)
	FrameUpdateInterval = 20 * time.Millisecond

	// EventChannelSize is the capacity of the input event channel between poller and loop
	EventChannelSize = 100
)

// Random Source
const (
	// DefaultSeed is the seed used at startup, restart carries the source forward
	DefaultSeed uint64 = 0
)

// Vehicle Physics (normalized units per tick)
const (
	// ThrustDelta is added to vertical velocity while thrust is held, subtracted otherwise
	ThrustDelta = 0.0001

	// VehicleStartX is the fixed horizontal position of the vehicle
	VehicleStartX = 0.1

	// VehicleStartY is the vertical start position (tunnel midpoint)
	VehicleStartY = 0.5

	// VehicleRadius is the circular hitbox radius used by the collision test
	VehicleRadius = 0.03
)

// Tunnel Generation (normalized units)
const (
	// ScrollSpeed is how far every segment shifts left per tick
	ScrollSpeed = 0.001

	// SegmentSpacing is the horizontal distance between consecutive segments
	SegmentSpacing = 0.2

	// TunnelVisibleRight is the right edge the newest segment must reach
	TunnelVisibleRight = 1.0

	// Seed segments placed before the first extend step
	TunnelSeedFirstX    = 0.0
	TunnelSeedSecondX   = 0.4
	TunnelSeedMidpoint  = 0.5
	TunnelSeedHalfWidth = 0.4

	// Random bounds for extended segments, [min, max)
	SegmentMidpointMin  = 0.2
	SegmentMidpointMax  = 0.8
	SegmentHalfWidthMin = 0.1
	SegmentHalfWidthMax = 0.2

	// TunnelRingCapacity is the initial ring buffer size, must be a power of two
	TunnelRingCapacity = 16
)
