package wayui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/openstream/wayfind/pkg/floorplan"
)

// panelBG is the side panel background, a shade lighter than the canvas.
var panelBG = c("#101826")

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#7ab8e8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#3a5a7a")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#9ab8d8")).
			Background(panelBG)

	panelHotStyle = lipgloss.NewStyle().
			Foreground(c("#ffffff")).
			Background(panelBG).
			Bold(true)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a2a40")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to width so the panel background is solid.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	if pad := width - vis; pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// fitPanel pads or truncates lines to exactly height rows, then pads each
// to width.
func fitPanel(lines []string, width, height int) string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return strings.Join(lines, "\n")
}

// buildFloorsPanelLayer lists the floors with the current one marked.
func (m Model) buildFloorsPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render(" FLOORS"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
	for _, f := range m.Plan.Floors() {
		mark := "  "
		style := panelTextStyle
		if f.ID == m.Plan.CurrentFloorID() {
			mark = "▸ "
			style = panelHotStyle
		}
		img := ""
		if f.ImageRef != "" {
			img = " ⛶"
		}
		lines = append(lines, style.Render(fmt.Sprintf(" %s%s%s", mark, f.Name, img)))
	}
	return lipgloss.NewLayer(fitPanel(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-floors")
}

// buildSelectionPanelLayer shows details of the selected point and, while
// drawing, the path in progress.
func (m Model) buildSelectionPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render(" SELECTION"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}

	if pt := m.Plan.Point(m.SelectedID); pt != nil {
		lines = append(lines,
			panelHotStyle.Render(fmt.Sprintf("  %s  %s", pt.Label, pt.Name)),
			panelTextStyle.Render(fmt.Sprintf("  %s @ (%.1f, %.1f)", kindName(pt), pt.X, pt.Y)),
			panelTextStyle.Render(fmt.Sprintf("  paths: %d", len(m.Plan.PathsTouching(pt.ID)))),
		)
	} else {
		lines = append(lines, panelDimStyle.Render("  (none)"))
	}

	if work := m.Draw.Work(); work != nil {
		bends := 0
		for _, s := range work.Segments {
			bends += len(s.Points)
		}
		lines = append(lines,
			"",
			panelTitleStyle.Render(" DRAWING"),
			panelTextStyle.Render(fmt.Sprintf("  from %s, %d vertices", work.FromID, bends)),
		)
		if _, ok := m.awaitingChoice(); ok {
			lines = append(lines, panelHotStyle.Render("  [e]nd here or click a"))
			lines = append(lines, panelHotStyle.Render("  connector on another floor"))
		}
	}

	return lipgloss.NewLayer(fitPanel(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-selection")
}

// buildHelpPanelLayer renders the static key reference.
func (m Model) buildHelpPanelLayer(x, y, width, height int) *lipgloss.Layer {
	poi := floorplan.POITypes()[m.POITypeIdx]
	lines := []string{
		panelTitleStyle.Render(" HELP"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
		panelTextStyle.Render("  [v]select [s]screen"),
		panelTextStyle.Render(fmt.Sprintf("  [o]poi:%s [p]path", poi.Key)),
		panelTextStyle.Render("  [1-8] poi type"),
		panelTextStyle.Render("  [tab] floor  [m]ulti"),
		panelTextStyle.Render("  [f]+floor [R]ename [i]mage"),
		panelTextStyle.Render("  [r]ename pt [del]ete"),
		panelTextStyle.Render("  [a]ll paths  [q]uit"),
	}
	return lipgloss.NewLayer(fitPanel(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-help")
}

// kindName names a point for the selection panel.
func kindName(pt *floorplan.Point) string {
	if pt.Type == floorplan.PointScreen {
		return "screen"
	}
	if info, ok := floorplan.POITypeByKey(pt.POIType); ok {
		return info.Label
	}
	return "poi"
}
