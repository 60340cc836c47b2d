package constants

import "time"

// Logical Canvas (pixels), normalized y=1 maps to the top row
const (
	CanvasWidth  = 1024
	CanvasHeight = 640
)

// Sprite Sizes (logical pixels)
const (
	VehicleSpriteWidth  = 64
	VehicleSpriteHeight = 24

	// ExplosionMaxSize is the sprite edge length at the end of the explosion animation
	ExplosionMaxSize = 160

	// ExplosionFrames is how many frames the explosion keeps growing after a crash
	ExplosionFrames = 40
)

// Status Texts
const (
	StatusPaused   = "PAUSED  hold UP/SPACE to fly"
	StatusCollided = "CRASHED  press R to restart"
)

// Terminal Glyphs
const (
	TunnelChar    = '█'
	VehicleChar   = '▶'
	ExplosionChar = '*'
)

// Input Timing
// Terminals only deliver presses and auto-repeats, never releases
const (
	// ThrustInitialHold is how long a first thrust press counts as held, longer than
	// common auto-repeat delays (250-660ms)
	ThrustInitialHold = 700 * time.Millisecond

	// ThrustRepeatHold is how long each auto-repeat extends the hold
	ThrustRepeatHold = 200 * time.Millisecond
)
