package render

import (
	"image"
	"math"

	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/engine"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TerminalRenderer rasterizes draw commands onto a tcell screen
// The logical canvas is scaled to whatever cell grid the terminal currently has
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	defaultStyle tcell.Style
	tunnelStyle  tcell.Style
	vehicleStyle tcell.Style
	statusStyle  tcell.Style
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r := &TerminalRenderer{
		screen:       screen,
		defaultStyle: bg,
		tunnelStyle:  bg.Foreground(RgbTunnel),
		vehicleStyle: bg.Foreground(RgbVehicle).Bold(true),
		statusStyle:  bg.Foreground(RgbStatusText).Bold(true),
	}
	r.width, r.height = screen.Size()
	return r
}

// Resize picks up new terminal dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.screen.Sync()
}

// RenderFrame draws the simulation and presents it
func (r *TerminalRenderer) RenderFrame(s *engine.Simulation) {
	r.Draw(Render(s))
}

// Draw executes commands in order then shows the screen
func (r *TerminalRenderer) Draw(cmds []Command) {
	for i := range cmds {
		c := &cmds[i]
		switch c.Kind {
		case CmdClear:
			r.screen.SetStyle(r.defaultStyle)
			r.screen.Clear()
		case CmdPolyline:
			r.drawPolyline(c.Points)
		case CmdSprite:
			r.drawSprite(c)
		case CmdText:
			r.drawStatus(c.Text)
		}
	}
	r.screen.Show()
}

// toCell scales a logical canvas point to a cell coordinate
func (r *TerminalRenderer) toCell(p image.Point) image.Point {
	return image.Point{
		X: p.X * r.width / constants.CanvasWidth,
		Y: p.Y * r.height / constants.CanvasHeight,
	}
}

// toCellRect scales a rectangle, always covering at least one cell
func (r *TerminalRenderer) toCellRect(rect image.Rectangle) image.Rectangle {
	cr := image.Rectangle{Min: r.toCell(rect.Min), Max: r.toCell(rect.Max)}
	if cr.Dx() < 1 {
		cr.Max.X = cr.Min.X + 1
	}
	if cr.Dy() < 1 {
		cr.Max.Y = cr.Min.Y + 1
	}
	return cr
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawPolyline(pts []image.Point) {
	for i := 1; i < len(pts); i++ {
		traceLine(r.toCell(pts[i-1]), r.toCell(pts[i]), func(x, y int) {
			r.set(x, y, constants.TunnelChar, r.tunnelStyle)
		})
	}
}

func (r *TerminalRenderer) drawSprite(c *Command) {
	rect := r.toCellRect(c.Rect)
	switch c.Sprite {
	case SpriteVehicle:
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				r.set(x, y, constants.VehicleChar, r.vehicleStyle)
			}
		}
	case SpriteExplosion:
		r.drawExplosion(rect, c.Progress)
	}
}

// drawExplosion fills an ellipse inscribed in rect with a radial color ramp
func (r *TerminalRenderer) drawExplosion(rect image.Rectangle, progress float64) {
	cx := float64(rect.Min.X+rect.Max.X-1) / 2
	cy := float64(rect.Min.Y+rect.Max.Y-1) / 2
	rx := math.Max(float64(rect.Dx())/2, 0.5)
	ry := math.Max(float64(rect.Dy())/2, 0.5)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			dist := math.Sqrt(nx*nx + ny*ny)
			if dist > 1 {
				continue
			}
			style := r.defaultStyle.Foreground(ExplosionColor(dist, progress))
			r.set(x, y, constants.ExplosionChar, style)
		}
	}
}

// drawStatus centers text on the top row
func (r *TerminalRenderer) drawStatus(text string) {
	x := (r.width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	for _, ch := range text {
		r.set(x, 0, ch, r.statusStyle)
		x += runewidth.RuneWidth(ch)
	}
}
