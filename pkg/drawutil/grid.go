package drawutil

import (
	"image"

	"github.com/openstream/wayfind/pkg/cellbuf"
)

// DrawGrid fills the rectangle with grid dots ('·') at regular
// intervals, used as texture inside a floor's letterboxed image area.
// Dot positions are relative to the rectangle's origin so the pattern
// stays anchored to the floor, not the terminal.
func DrawGrid(buf *cellbuf.Buffer, r image.Rectangle, spacingX, spacingY int, style cellbuf.StyleKey) {
	if spacingX <= 0 || spacingY <= 0 {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if mod(y-r.Min.Y, spacingY) != 0 {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			if mod(x-r.Min.X, spacingX) == 0 {
				buf.Set(x, y, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
