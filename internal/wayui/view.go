package wayui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openstream/wayfind/pkg/floorplan"
	"github.com/openstream/wayfind/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	var layers []*lipgloss.Layer

	// Backgrounds first, content on top.
	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	layers = append(layers,
		tealayout.ToolbarLayer(layout.Get("toolbar"), m.toolbarLine(), tbStyle),
		tealayout.FooterLayer(layout.Get("footer"), m.statusLine(), ftStyle),
	)

	for _, p := range m.panels() {
		layers = append(layers, m.buildFloorPanelLayer(p))
	}

	pr := panelRegion.Rect
	if pw, ph := pr.Dx(), pr.Dy(); pw > 0 && ph > 0 {
		floorsH := len(m.Plan.Floors()) + 3
		if floorsH > ph/3 {
			floorsH = ph / 3
		}
		helpH := 9
		selH := ph - floorsH - helpH
		if selH < 4 {
			selH = 4
		}

		layers = append(layers,
			tealayout.VerticalSeparator(pr.Min.X-1, pr.Min.Y, ph, panelSepStyle),
			tealayout.FillLayer(panelRegion, panelLineStyle, "panel-bg", 0),
			m.buildFloorsPanelLayer(pr.Min.X+1, pr.Min.Y, pw-2, floorsH),
			m.buildSelectionPanelLayer(pr.Min.X+1, pr.Min.Y+floorsH, pw-2, selH),
			m.buildHelpPanelLayer(pr.Min.X+1, pr.Min.Y+floorsH+selH, pw-2, helpH),
		)
	}

	if m.Prompt != promptNone {
		layers = append(layers, m.buildPromptLayer())
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// toolbarLine builds the top bar: mode, placement type, floor view state.
func (m Model) toolbarLine() string {
	mode := modeLabel[m.Mode]
	if m.Mode == ModePOI {
		mode = fmt.Sprintf("POI [%s]", floorplan.POITypes()[m.POITypeIdx].Label)
	}
	if m.drawing() {
		mode = "PATH drawing, click a POI to finish"
	}
	if _, ok := m.awaitingChoice(); ok {
		mode = "PATH [e]nd here / click connector"
	}
	view := "single"
	if m.MultiFloor {
		view = "multi"
	}
	return fmt.Sprintf(" WAYFIND %s  │  [v]iew [s]creen [o]poi [p]ath  │  %s  │  floors: %s",
		m.systemName, mode, view)
}
