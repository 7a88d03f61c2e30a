package wayui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/openstream/wayfind/pkg/floorplan"
	"github.com/openstream/wayfind/pkg/pathdraw"
)

// handleMouse tracks the cursor for the drawing preview and dispatches
// left clicks into whichever floor panel they land on.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if _, ok := msg.(tea.MouseClickMsg); !ok || mouse.Button != tea.MouseLeft || m.Prompt != promptNone {
		return m, nil
	}

	panel := m.panelAt(mouse.X, mouse.Y)
	if panel == nil {
		return m, nil
	}
	cx := mouse.X - panel.Rect.Min.X
	cy := mouse.Y - panel.Rect.Min.Y

	hit := m.hitPoint(*panel, cx, cy)
	onImage := panel.containsCell(cx, cy)

	// A pending connector choice captures all clicks: the only valid
	// targets are connectors (the continuation hop).
	if _, pending := m.awaitingChoice(); pending {
		return m.resolveChoiceClick(hit)
	}

	switch m.Mode {
	case ModeSelect:
		if hit != nil {
			m.SelectedID = hit.ID
		} else {
			m.SelectedID = ""
		}

	case ModeScreen:
		if hit != nil {
			m.SelectedID = hit.ID
			return m, nil
		}
		if !onImage {
			return m, nil
		}
		x, y := panel.toPercent(cx, cy)
		p, err := m.Plan.AddScreen(panel.FloorID, x, y, "")
		if err != nil {
			return m, m.showToast(err.Error())
		}
		m.SelectedID = p.ID
		m.markDirty()
		return m, m.showToast(fmt.Sprintf("placed %s", p.Label))

	case ModePOI:
		if hit != nil {
			m.SelectedID = hit.ID
			return m, nil
		}
		if !onImage {
			return m, nil
		}
		x, y := panel.toPercent(cx, cy)
		kind := floorplan.POITypes()[m.POITypeIdx]
		p, err := m.Plan.AddPOI(panel.FloorID, x, y, "", kind.Key)
		if err != nil {
			return m, m.showToast(err.Error())
		}
		m.SelectedID = p.ID
		m.markDirty()
		return m, m.showToast(fmt.Sprintf("placed %s (%s)", p.Label, kind.Label))

	case ModePath:
		return m.handlePathClick(*panel, hit, cx, cy, onImage)
	}

	return m, nil
}

// handlePathClick feeds the drawing state machine.
func (m Model) handlePathClick(panel floorPanel, hit *floorplan.Point, cx, cy int, onImage bool) (tea.Model, tea.Cmd) {
	switch m.Draw.State().(type) {
	case pathdraw.Idle:
		if hit == nil {
			return m, nil
		}
		if err := m.Draw.Start(hit.ID); err != nil {
			return m, m.showToast(err.Error())
		}
		m.SelectedID = hit.ID
		return m, m.showToast(fmt.Sprintf("drawing from %s, click a POI to finish", hit.Label))

	case pathdraw.Drawing:
		if hit != nil {
			outcome, committed, err := m.Draw.ClickPoint(hit.ID)
			if err != nil {
				return m, m.showToast(err.Error())
			}
			switch outcome {
			case pathdraw.OutcomeFinished:
				m.markDirty()
				return m, m.showToast(fmt.Sprintf("path %s saved", committed.ID))
			case pathdraw.OutcomeNeedsChoice:
				return m, m.showToast("connector reached: [e] end here or click a connector on another floor")
			}
			return m, nil
		}
		if !onImage {
			return m, nil
		}
		x, y := panel.toPercent(cx, cy)
		if err := m.Draw.AddBend(panel.FloorID, x, y); err != nil {
			return m, m.showToast(err.Error())
		}

	case pathdraw.AwaitingChoice:
		return m.resolveChoiceClick(hit)
	}

	return m, nil
}

// resolveChoiceClick answers a pending end-or-continue decision with the
// clicked connector; clicks elsewhere just repeat the hint.
func (m Model) resolveChoiceClick(hit *floorplan.Point) (tea.Model, tea.Cmd) {
	if hit == nil {
		return m, m.showToast("[e] ends the path here; click a connector on another floor to continue")
	}
	if err := m.Draw.ResolveContinue(hit.ID); err != nil {
		return m, m.showToast(err.Error())
	}
	// The path re-emerges on the connector's floor; follow it.
	_ = m.Plan.SetCurrentFloor(hit.FloorID)
	return m, m.showToast(fmt.Sprintf("continuing on %s", m.floorName(hit.FloorID)))
}

func (m Model) floorName(id string) string {
	if f := m.Plan.Floor(id); f != nil {
		return f.Name
	}
	return id
}
