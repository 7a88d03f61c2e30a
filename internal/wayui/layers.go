package wayui

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"

	"github.com/openstream/wayfind/pkg/cellbuf"
	"github.com/openstream/wayfind/pkg/drawutil"
	"github.com/openstream/wayfind/pkg/floorplan"
)

// buildFloorPanelLayer renders one floor viewport (letterbox border,
// grid texture, stored path polylines, the live drawing preview, and all
// markers) into a cellbuf and returns it as a single layer.
func (m Model) buildFloorPanelLayer(p floorPanel) *lipgloss.Layer {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(p.Rect.Min.X).Y(p.Rect.Min.Y).Z(1)
	}

	buf := cellbuf.New(w, h, styleBG)
	ir := p.imageCellRect()

	borderStyle := styleBorder
	if p.FloorID == m.Plan.CurrentFloorID() {
		borderStyle = styleBorderActive
	}
	buf.DrawBorder(ir, borderStyle)
	buf.FillRect(ir.Inset(1), ' ', styleBG)
	drawutil.DrawGrid(buf, ir.Inset(1), 6, 3, styleGrid)

	if f := m.Plan.Floor(p.FloorID); f != nil {
		buf.SetStringCentered((ir.Min.X+ir.Max.X)/2, ir.Min.Y, " "+f.Name+" ", styleTitle)
	}

	m.drawPaths(buf, p)
	m.drawPreview(buf, p)
	m.drawMarkers(buf, p)

	rendered := buf.Render(bufStyles)
	return lipgloss.NewLayer(rendered).
		X(p.Rect.Min.X).Y(p.Rect.Min.Y).Z(1).
		ID("floor-" + p.FloorID)
}

// drawPaths draws every visible path's segments that run on this panel's
// floor as arrow polylines.
func (m Model) drawPaths(buf *cellbuf.Buffer, p floorPanel) {
	for _, path := range m.Plan.Paths() {
		if !path.Visible {
			continue
		}
		for i, seg := range path.Segments {
			if seg.FloorID != p.FloorID || len(seg.Points) < 2 {
				continue
			}
			cells := projectSegment(p, seg)
			// Only the final segment carries the arrowhead; earlier
			// segments hand off to a connector.
			if i == len(path.Segments)-1 {
				drawutil.DrawArrowPolyline(buf, cells, stylePath, stylePath)
			} else {
				drawutil.DrawPolyline(buf, cells, stylePath)
			}
		}
	}
}

// drawPreview draws the in-progress path dashed, cloned into the panel
// of each floor its segments run on, with a rubber band from the last
// fixed point to the cursor on the active floor.
func (m Model) drawPreview(buf *cellbuf.Buffer, p floorPanel) {
	work := m.Draw.Work()
	if work == nil {
		return
	}
	for _, seg := range work.Segments {
		if seg.FloorID != p.FloorID || len(seg.Points) == 0 {
			continue
		}
		cells := projectSegment(p, seg)
		if len(cells) > 1 {
			drawutil.DrawDashedPolyline(buf, cells, stylePathHot)
		}
	}

	// Rubber band only while bends are still being accepted.
	if !m.drawing() {
		return
	}
	active := m.Draw.ActiveSegment()
	if active == nil || active.FloorID != p.FloorID || len(active.Points) == 0 {
		return
	}
	cursor := image.Pt(m.MouseX-p.Rect.Min.X, m.MouseY-p.Rect.Min.Y)
	if !cursor.In(image.Rect(0, 0, p.Rect.Dx(), p.Rect.Dy())) {
		return
	}
	last := active.Points[len(active.Points)-1]
	drawutil.DrawDashedPolyline(buf, []image.Point{p.toCell(last.X, last.Y), cursor}, stylePathHot)
}

// drawMarkers draws every point on this floor as a glyph plus label.
// A point is emphasized when it is selected, is the origin of the path
// being drawn, or is an endpoint of a visible path.
func (m Model) drawMarkers(buf *cellbuf.Buffer, p floorPanel) {
	hot := m.activePointIDs()
	fromID := m.Draw.FromID()

	for _, pt := range m.Plan.PointsOnFloor(p.FloorID) {
		cell := p.toCell(pt.X, pt.Y)
		glyph, style := markerGlyph(pt)
		if pt.ID == m.SelectedID || pt.ID == fromID || hot[pt.ID] {
			style = styleMarkerHot
		}
		buf.Set(cell.X, cell.Y, glyph, style)
		if pt.Label != "" {
			buf.SetString(cell.X+2, cell.Y, pt.Label, styleLabel)
		}
	}
}

// activePointIDs returns the ids referenced by any visible path as
// source or terminus. Purely visual, never a model field.
func (m Model) activePointIDs() map[string]bool {
	hot := make(map[string]bool)
	for _, path := range m.Plan.Paths() {
		if path.Visible {
			hot[path.FromID] = true
			hot[path.ToID] = true
		}
	}
	return hot
}

// markerGlyph picks the marker character and base style for a point.
func markerGlyph(pt *floorplan.Point) (rune, cellbuf.StyleKey) {
	if pt.Type == floorplan.PointScreen {
		return '◼', styleScreen
	}
	if info, ok := floorplan.POITypeByKey(pt.POIType); ok {
		if info.CanChangeFloor {
			return info.Glyph, styleConnector
		}
		return info.Glyph, stylePOI
	}
	return '?', stylePOI
}

// projectSegment converts a segment's percent coordinates to panel-local
// cells.
func projectSegment(p floorPanel, seg floorplan.Segment) []image.Point {
	cells := make([]image.Point, 0, len(seg.Points))
	for _, c := range seg.Points {
		cells = append(cells, p.toCell(c.X, c.Y))
	}
	return cells
}

// modeLabel is the toolbar name of each mode.
var modeLabel = map[Mode]string{
	ModeSelect: "SELECT",
	ModeScreen: "SCREEN",
	ModePOI:    "POI",
	ModePath:   "PATH",
}

// statusLine builds the footer: cursor, floor, dirty/save state, toast.
func (m Model) statusLine() string {
	floor := "-"
	if f := m.Plan.Floor(m.Plan.CurrentFloorID()); f != nil {
		floor = f.Name
	}
	save := "saved"
	if m.dirty {
		save = "unsaved…"
	}
	if m.saveError {
		save = saveErrStyle.Render("save failed")
	}
	line := fmt.Sprintf(" (%d,%d)  floor: %s  points: %d  paths: %d  %s",
		m.MouseX, m.MouseY, floor, len(m.Plan.Points()), len(m.Plan.Paths()), save)
	if m.toast != "" {
		line += "  " + toastStyle.Render("▸ "+m.toast)
	}
	return line
}
