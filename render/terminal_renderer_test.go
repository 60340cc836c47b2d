package render

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/engine"
	"github.com/doublescale/rusty-navigator/vmath"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := runeAt(screen, x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestTerminalRendererPolyline(t *testing.T) {
	screen := newSimScreen(t, 64, 40)
	r := NewTerminalRenderer(screen)

	// Horizontal line across the middle of the canvas
	r.Draw([]Command{
		{Kind: CmdClear},
		{Kind: CmdPolyline, Points: []image.Point{{X: 0, Y: 320}, {X: 1023, Y: 320}}},
	})

	for x := 0; x < 64; x++ {
		if got := runeAt(screen, x, 20); got != constants.TunnelChar {
			t.Fatalf("Expected tunnel glyph at (%d,20), got %q", x, got)
		}
	}
	if got := runeAt(screen, 10, 5); got == constants.TunnelChar {
		t.Error("Expected empty cell away from the line")
	}
}

func TestTerminalRendererDiagonal(t *testing.T) {
	screen := newSimScreen(t, 10, 10)
	r := NewTerminalRenderer(screen)
	r.Draw([]Command{
		{Kind: CmdPolyline, Points: []image.Point{{X: 0, Y: 0}, {X: 1023, Y: 639}}},
	})

	for i := 0; i < 10; i++ {
		if got := runeAt(screen, i, i); got != constants.TunnelChar {
			t.Errorf("Expected diagonal glyph at (%d,%d), got %q", i, i, got)
		}
	}
}

func TestTerminalRendererClipsOffscreen(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	r := NewTerminalRenderer(screen)

	// Must not panic on points outside the canvas
	r.Draw([]Command{
		{Kind: CmdPolyline, Points: []image.Point{{X: -500, Y: -500}, {X: 3000, Y: 2000}}},
		{Kind: CmdSprite, Sprite: SpriteVehicle, Rect: image.Rect(2000, 2000, 2064, 2024)},
	})
}

func TestTerminalRendererVehicleMinimumCell(t *testing.T) {
	screen := newSimScreen(t, 16, 8)
	r := NewTerminalRenderer(screen)

	// 64x24 canvas pixels is smaller than one cell row at this size
	r.Draw([]Command{
		{Kind: CmdSprite, Sprite: SpriteVehicle, Rect: image.Rect(512, 320, 576, 344)},
	})
	if got := runeAt(screen, 8, 4); got != constants.VehicleChar {
		t.Errorf("Expected vehicle glyph at (8,4), got %q", got)
	}
}

func TestTerminalRendererExplosion(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	r := NewTerminalRenderer(screen)
	r.Draw([]Command{
		{Kind: CmdSprite, Sprite: SpriteExplosion, Rect: image.Rect(256, 160, 768, 480), Progress: 0.2},
	})

	// Center filled, corners of the bounding box left empty
	if got := runeAt(screen, 20, 10); got != constants.ExplosionChar {
		t.Errorf("Expected explosion glyph at center, got %q", got)
	}
	if got := runeAt(screen, 10, 5); got == constants.ExplosionChar {
		t.Error("Expected ellipse to leave the bounding box corner empty")
	}

	_, _, style, _ := screen.GetContent(20, 10)
	fg, _, _ := style.Decompose()
	nx, ny := 0.5/10.0, 0.5/5.0
	if want := ExplosionColor(math.Sqrt(nx*nx+ny*ny), 0.2); fg != want {
		t.Errorf("Expected center color %v, got %v", want, fg)
	}
}

func TestTerminalRendererStatusCentered(t *testing.T) {
	screen := newSimScreen(t, 40, 10)
	r := NewTerminalRenderer(screen)
	r.Draw([]Command{{Kind: CmdClear}, {Kind: CmdText, Text: "PAUSED"}})

	row := rowText(screen, 0, 40)
	idx := strings.Index(row, "PAUSED")
	if idx != (40-6)/2 {
		t.Errorf("Expected status at column %d, got %d in %q", (40-6)/2, idx, row)
	}
}

func TestTerminalRendererFullFrame(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)
	s := engine.NewSimulation(vmath.NewFastRand(0))

	r.RenderFrame(s)

	if !strings.Contains(rowText(screen, 0, 80), "PAUSED") {
		t.Error("Expected paused status on the top row")
	}

	// Seed segments put ground at y=0.1 and ceiling at y=0.9 under the vehicle
	ground := r.toCell(ToCanvas(vmath.Vec2{X: 0.1, Y: 0.1}))
	if got := runeAt(screen, ground.X, ground.Y); got != constants.TunnelChar {
		t.Errorf("Expected ground glyph at %v, got %q", ground, got)
	}

	vehicle := r.toCellRect(centeredRect(ToCanvas(s.Vehicle.Position), constants.VehicleSpriteWidth, constants.VehicleSpriteHeight)).Min
	if got := runeAt(screen, vehicle.X, vehicle.Y); got != constants.VehicleChar {
		t.Errorf("Expected vehicle glyph at %v, got %q", vehicle, got)
	}
}

func TestTerminalRendererResize(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	r := NewTerminalRenderer(screen)
	screen.SetSize(50, 30)
	r.Resize()
	if r.width != 50 || r.height != 30 {
		t.Errorf("Expected 50x30 after resize, got %dx%d", r.width, r.height)
	}
}
