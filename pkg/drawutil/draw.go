package drawutil

import (
	"image"

	"github.com/openstream/wayfind/pkg/cellbuf"
)

// pointChar returns the line character for a point based on its local
// direction (looking at the next or previous point).
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// Trace returns the Bresenham points of the whole polyline through pts,
// deduplicating the shared joint between consecutive runs. Fewer than
// two vertices yield the vertices themselves.
func Trace(pts []image.Point) []image.Point {
	if len(pts) < 2 {
		return append([]image.Point(nil), pts...)
	}
	var out []image.Point
	for i := 0; i < len(pts)-1; i++ {
		run := Bresenham(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		if i > 0 && len(run) > 0 {
			run = run[1:] // joint already emitted by the previous run
		}
		out = append(out, run...)
	}
	return out
}

// DrawPolyline draws a multi-bend polyline into buf with per-point line
// characters. Coordinates are buffer-local.
func DrawPolyline(buf *cellbuf.Buffer, pts []image.Point, style cellbuf.StyleKey) {
	traced := Trace(pts)
	for i, p := range traced {
		buf.Set(p.X, p.Y, pointChar(traced, i), style)
	}
}

// DrawArrowPolyline draws a polyline with an arrowhead at the final
// point. The line uses lineStyle and the arrowhead uses arrowStyle.
func DrawArrowPolyline(buf *cellbuf.Buffer, pts []image.Point, lineStyle, arrowStyle cellbuf.StyleKey) {
	traced := Trace(pts)
	if len(traced) == 0 {
		return
	}
	for i, p := range traced[:len(traced)-1] {
		buf.Set(p.X, p.Y, pointChar(traced, i), lineStyle)
	}
	last := traced[len(traced)-1]
	var dx, dy int
	if len(traced) >= 2 {
		dx = last.X - traced[len(traced)-2].X
		dy = last.Y - traced[len(traced)-2].Y
	}
	buf.Set(last.X, last.Y, ArrowChar(dx, dy), arrowStyle)
}

// DrawDashedPolyline draws a dashed polyline (every 3rd traced point is
// skipped). Used for the live drawing preview.
func DrawDashedPolyline(buf *cellbuf.Buffer, pts []image.Point, style cellbuf.StyleKey) {
	traced := Trace(pts)
	for i, p := range traced {
		if i%3 != 2 { // skip every 3rd point
			buf.Set(p.X, p.Y, pointChar(traced, i), style)
		}
	}
}
