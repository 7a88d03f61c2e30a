// Package svgmap renders one floor of a wayfinding system as a
// standalone SVG: marker circles with labels plus the visible paths'
// polylines, in the floor image's natural pixel space.
package svgmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/openstream/wayfind/pkg/floorplan"
)

const (
	markerRadius  = 8
	screenColor   = "#2d7ff9"
	poiColor      = "#e05c2a"
	pathColor     = "#13a06b"
	pathWidth     = 3
	labelOffsetY  = -12
	backgroundHue = "#f5f2ec"
)

// Render builds the SVG document for one floor. Coordinates are scaled
// from percent space into an imgW×imgH viewBox.
func Render(m *floorplan.Model, floorID string, imgW, imgH float64) (string, error) {
	floor := m.Floor(floorID)
	if floor == nil {
		return "", errors.Wrapf(floorplan.ErrFloorNotFound, "%s", floorID)
	}
	if imgW <= 0 || imgH <= 0 {
		return "", errors.Newf("invalid image size %gx%g", imgW, imgH)
	}

	var elements []string
	elements = append(elements, fmt.Sprintf(
		`<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`,
		f(imgW), f(imgH), backgroundHue))
	if floor.ImageRef != "" {
		elements = append(elements, fmt.Sprintf(
			`<image href="%s" x="0" y="0" width="%s" height="%s" preserveAspectRatio="xMidYMid meet"/>`,
			escape(floor.ImageRef), f(imgW), f(imgH)))
	}

	for _, p := range m.Paths() {
		if !p.Visible {
			continue
		}
		for _, seg := range p.Segments {
			if seg.FloorID != floorID || len(seg.Points) < 2 {
				continue
			}
			elements = append(elements, renderSegment(seg, imgW, imgH))
		}
	}
	for _, pt := range m.PointsOnFloor(floorID) {
		elements = append(elements, renderMarker(pt, imgW, imgH)...)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		f(imgW), f(imgH), f(imgW), f(imgH)))
	b.WriteString("\n")
	for _, el := range elements {
		b.WriteString("  ")
		b.WriteString(el)
		b.WriteString("\n")
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

func renderSegment(seg floorplan.Segment, imgW, imgH float64) string {
	pts := make([]string, 0, len(seg.Points))
	for _, c := range seg.Points {
		pts = append(pts, f(c.X/100*imgW)+","+f(c.Y/100*imgH))
	}
	return fmt.Sprintf(
		`<polyline points="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linejoin="round"/>`,
		strings.Join(pts, " "), pathColor, pathWidth)
}

func renderMarker(pt *floorplan.Point, imgW, imgH float64) []string {
	cx := pt.X / 100 * imgW
	cy := pt.Y / 100 * imgH
	color := poiColor
	if pt.Type == floorplan.PointScreen {
		color = screenColor
	}
	return []string{
		fmt.Sprintf(`<circle cx="%s" cy="%s" r="%d" fill="%s"/>`,
			f(cx), f(cy), markerRadius, color),
		fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" font-size="14" font-family="sans-serif">%s</text>`,
			f(cx), f(cy+labelOffsetY), escape(pt.Label)),
	}
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
