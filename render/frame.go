package render

import (
	"image"
	"math"

	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/engine"
	"github.com/doublescale/rusty-navigator/vmath"
)

// Render converts simulation state into draw commands, it never mutates s
func Render(s *engine.Simulation) []Command {
	cmds := make([]Command, 0, 6)
	cmds = append(cmds, Command{Kind: CmdClear})

	ground := s.Tunnel.Ground()
	ceiling := s.Tunnel.Ceiling()
	cmds = append(cmds,
		Command{Kind: CmdPolyline, Points: toCanvasAll(ground)},
		Command{Kind: CmdPolyline, Points: toCanvasAll(ceiling)},
	)

	center := ToCanvas(s.Vehicle.Position)
	cmds = append(cmds, Command{
		Kind:   CmdSprite,
		Sprite: SpriteVehicle,
		Rect:   centeredRect(center, constants.VehicleSpriteWidth, constants.VehicleSpriteHeight),
	})

	switch s.Phase {
	case engine.PhaseCollided:
		progress := math.Min(1, float64(s.FramesSinceCrash())/constants.ExplosionFrames)
		size := explosionSize(progress)
		cmds = append(cmds,
			Command{
				Kind:     CmdSprite,
				Sprite:   SpriteExplosion,
				Rect:     centeredRect(center, size, size),
				Progress: progress,
			},
			Command{Kind: CmdText, Text: constants.StatusCollided},
		)
	case engine.PhasePaused:
		cmds = append(cmds, Command{Kind: CmdText, Text: constants.StatusPaused})
	}

	return cmds
}

// ToCanvas maps normalized coordinates onto the logical canvas, y=1 is the top row
func ToCanvas(p vmath.Vec2) image.Point {
	return image.Point{
		X: int(math.Round(p.X * constants.CanvasWidth)),
		Y: int(math.Round((1 - p.Y) * constants.CanvasHeight)),
	}
}

func toCanvasAll(pts []vmath.Vec2) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = ToCanvas(p)
	}
	return out
}

func centeredRect(c image.Point, w, h int) image.Rectangle {
	tl := image.Point{X: c.X - w/2, Y: c.Y - h/2}
	return image.Rectangle{Min: tl, Max: tl.Add(image.Point{X: w, Y: h})}
}

// explosionSize grows from the vehicle height to ExplosionMaxSize
func explosionSize(progress float64) int {
	lo := float64(constants.VehicleSpriteHeight)
	hi := float64(constants.ExplosionMaxSize)
	return int(lo + (hi-lo)*progress)
}
