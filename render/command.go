package render

import "image"

// CommandKind identifies a draw instruction
type CommandKind uint8

const (
	CmdClear CommandKind = iota
	CmdPolyline
	CmdSprite
	CmdText
)

// SpriteID names a sprite the adapter knows how to draw
type SpriteID uint8

const (
	SpriteVehicle SpriteID = iota
	SpriteExplosion
)

// Command is one draw instruction in logical canvas pixels
// Only the fields relevant to Kind are set
type Command struct {
	Kind CommandKind

	// CmdPolyline
	Points []image.Point

	// CmdSprite
	Sprite SpriteID
	Rect   image.Rectangle
	// Progress is the animation position in [0, 1], used by SpriteExplosion
	Progress float64

	// CmdText, drawn centered on the top row
	Text string
}
