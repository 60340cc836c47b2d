package render

import "image"

// traceLine visits every cell on the Bresenham line from a to b, endpoints included
func traceLine(a, b image.Point, visit func(x, y int)) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	x, y := a.X, a.Y
	for {
		visit(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
