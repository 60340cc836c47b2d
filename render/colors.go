package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbTunnel     = tcell.NewRGBColor(255, 255, 255) // White
	RgbVehicle    = tcell.NewRGBColor(120, 255, 120) // Green
	RgbStatusText = tcell.NewRGBColor(255, 255, 100) // Yellow
)

// Explosion ramp endpoints, core to rim
var (
	explosionHot  = colorful.Color{R: 1, G: 0.95, B: 0.6}
	explosionWarm = colorful.Color{R: 1, G: 0.55, B: 0.1}
	explosionCold = colorful.Color{R: 0.35, G: 0.05, B: 0.05}
)

// ExplosionColor returns the color for a cell at radial offset dist in [0, 1] from the
// explosion center, cooled by animation progress in [0, 1]
func ExplosionColor(dist, progress float64) tcell.Color {
	dist = clamp01(dist)
	progress = clamp01(progress)

	// Rim fades toward cold, the whole fireball cools as it grows
	var c colorful.Color
	if dist < 0.5 {
		c = explosionHot.BlendLab(explosionWarm, dist*2)
	} else {
		c = explosionWarm.BlendLab(explosionCold, (dist-0.5)*2)
	}
	c = c.BlendLab(explosionCold, progress*0.6)

	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
