// Package drawutil provides terminal drawing primitives: Bresenham lines,
// directional line/arrow character lookup, and polyline/grid helpers that
// draw into a cellbuf.Buffer. Path segments arrive as projected vertex
// lists; Trace turns them into contiguous cell runs.
package drawutil

import "image"

// Bresenham returns the integer points on the line from (x0,y0) to
// (x1,y1), both endpoints included.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	pts := make([]image.Point, 0, max(dx, dy)+1)
	x, y, err := x0, y0, dx-dy
	for {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// LineChar returns the box-drawing character for a line step with the
// given direction vector. A zero vector draws as a vertical bar.
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// ArrowChar returns an arrow-head character pointing in the dominant
// direction of (dx, dy).
func ArrowChar(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
