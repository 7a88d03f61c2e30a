package wayui

import (
	"image"
	"math"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/openstream/wayfind/pkg/fitbox"
	"github.com/openstream/wayfind/pkg/floorplan"
	"github.com/openstream/wayfind/pkg/tealayout"
)

// Terminal cells are roughly twice as tall as wide; fitting happens in
// pseudo-pixel units of one column × half a row so floor images keep
// their aspect ratio on screen.
const cellAspect = 2.0

const sidePanelWidth = 32

// floorPanel is one floor viewport: its cell rectangle on the terminal
// and the aspect-fitted image rectangle inside it (pseudo-pixel units,
// panel-local).
type floorPanel struct {
	FloorID string
	Rect    image.Rectangle
	Fit     fitbox.Rect
}

// layout computes the chrome regions. View and mouse handling share it
// so hit testing always matches what was drawn.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", sidePanelWidth).
		Remaining("canvas").
		Build()
}

// panels returns the floor viewports for the current view: one panel for
// the active floor, or one per floor side by side in multi-floor mode.
// Each panel computes its own independent fit.
func (m Model) panels() []floorPanel {
	canvas := m.layout().Get("canvas")
	if canvas.Rect.Empty() {
		return nil
	}

	var out []floorPanel
	if m.MultiFloor {
		floors := m.Plan.Floors()
		regions := tealayout.SplitColumns(canvas, len(floors), 1)
		for i, f := range floors {
			out = append(out, m.panelFor(f.ID, regions[i].Rect))
		}
		return out
	}
	if id := m.Plan.CurrentFloorID(); id != "" {
		out = append(out, m.panelFor(id, canvas.Rect))
	}
	return out
}

func (m Model) panelFor(floorID string, rect image.Rectangle) floorPanel {
	imgW, imgH := m.imageSize(floorID)
	fit := fitbox.Fit(float64(rect.Dx()), float64(rect.Dy())*cellAspect, imgW, imgH)
	return floorPanel{FloorID: floorID, Rect: rect, Fit: fit}
}

// panelAt returns the panel containing a terminal cell, or nil.
func (m Model) panelAt(x, y int) *floorPanel {
	for _, p := range m.panels() {
		if image.Pt(x, y).In(p.Rect) {
			cp := p
			return &cp
		}
	}
	return nil
}

// ── projection between percent space and panel cells ──

// toCell converts percent coordinates to a panel-local cell.
func (p floorPanel) toCell(xPct, yPct float64) image.Point {
	px, py := p.Fit.ToPixel(xPct, yPct)
	return image.Pt(int(math.Floor(px)), int(math.Floor(py/cellAspect)))
}

// toPercent converts a panel-local cell (its center) to percent space.
func (p floorPanel) toPercent(cx, cy int) (float64, float64) {
	return p.Fit.ToPercent(float64(cx)+0.5, (float64(cy)+0.5)*cellAspect)
}

// containsCell reports whether a panel-local cell lies on the fitted
// image rectangle (clicks on the letterbox margin are ignored).
func (p floorPanel) containsCell(cx, cy int) bool {
	return p.Fit.Contains(float64(cx)+0.5, (float64(cy)+0.5)*cellAspect)
}

// imageCellRect is the fitted image rectangle in panel-local cells.
func (p floorPanel) imageCellRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(p.Fit.X)),
		int(math.Floor(p.Fit.Y/cellAspect)),
		int(math.Ceil((p.Fit.X+p.Fit.W))),
		int(math.Ceil((p.Fit.Y+p.Fit.H)/cellAspect)),
	)
}

// hitPoint finds the marker whose projected cell is within one cell of
// the clicked cell, preferring later-placed points (drawn on top).
func (m Model) hitPoint(p floorPanel, cx, cy int) *floorplan.Point {
	pts := m.Plan.PointsOnFloor(p.FloorID)
	for i := len(pts) - 1; i >= 0; i-- {
		c := p.toCell(pts[i].X, pts[i].Y)
		if abs(c.X-cx) <= 1 && abs(c.Y-cy) <= 1 {
			return pts[i]
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ── image sizes ──

// imageSize resolves a floor image's natural dimensions, caching per
// floor. Missing or undecodable images fall back to the configured
// defaults so the editor stays usable.
func (m Model) imageSize(floorID string) (float64, float64) {
	if s, ok := m.imgSizes[floorID]; ok {
		return s[0], s[1]
	}
	w := float64(m.cfg.DefaultImageW)
	h := float64(m.cfg.DefaultImageH)
	if f := m.Plan.Floor(floorID); f != nil && f.ImageRef != "" {
		if iw, ih, err := decodeImageSize(m.resolveImageRef(f.ImageRef)); err == nil {
			w, h = iw, ih
		}
	}
	m.imgSizes[floorID] = [2]float64{w, h}
	return w, h
}

// invalidateImageSize drops the cached size after an image-ref edit.
func (m Model) invalidateImageSize(floorID string) {
	delete(m.imgSizes, floorID)
}

func (m Model) resolveImageRef(ref string) string {
	if filepath.IsAbs(ref) || m.cfg.ImageDir == "" {
		return ref
	}
	return filepath.Join(m.cfg.ImageDir, ref)
}

func decodeImageSize(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
