// Package fitbox computes aspect-fit (letterbox) rectangles and converts
// between percent-space graph coordinates and pixel-space viewport
// coordinates. Fitting is pure and idempotent: resize and image-load
// handlers may call it as often as they like.
package fitbox

import "math"

// Rect is the largest centered rectangle inside a container that
// preserves an image's aspect ratio. Offsets and sizes are in the
// container's pixel units.
type Rect struct {
	X, Y float64 // offset of the fitted rectangle inside the container
	W, H float64
}

// Fit letterboxes an image of natural size (imageW, imageH) into a
// container of (containerW, containerH). When the container is wider
// than the image's ratio the height is pinned and the sides are
// letterboxed; otherwise the width is pinned. Degenerate inputs yield a
// zero Rect.
func Fit(containerW, containerH, imageW, imageH float64) Rect {
	if containerW <= 0 || containerH <= 0 || imageW <= 0 || imageH <= 0 {
		return Rect{}
	}
	containerRatio := containerW / containerH
	imageRatio := imageW / imageH

	var w, h float64
	if containerRatio > imageRatio {
		h = containerH
		w = h * imageRatio
	} else {
		w = containerW
		h = w / imageRatio
	}
	return Rect{
		X: (containerW - w) / 2,
		Y: (containerH - h) / 2,
		W: w,
		H: h,
	}
}

// ToPixel converts percent coordinates (0–100 of the fitted rectangle)
// to container pixel coordinates.
func (r Rect) ToPixel(xPct, yPct float64) (float64, float64) {
	return r.X + xPct/100*r.W, r.Y + yPct/100*r.H
}

// ToPercent converts container pixel coordinates to percent coordinates,
// clamped to 0–100 so clicks on the letterbox margin snap to the edge.
func (r Rect) ToPercent(px, py float64) (float64, float64) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0
	}
	x := (px - r.X) / r.W * 100
	y := (py - r.Y) / r.H * 100
	return clamp(x, 0, 100), clamp(y, 0, 100)
}

// Contains reports whether a container pixel lies inside the fitted
// rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
