package wayui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/openstream/wayfind/pkg/floorplan"
	"github.com/openstream/wayfind/pkg/pathdraw"
)

// poiTypeKeys maps number keys to catalog indices for quick placement.
var poiTypeKeys = map[string]int{
	"1": 0, "2": 1, "3": 2, "4": 3, "5": 4, "6": 5, "7": 6, "8": 7,
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.Prompt != promptNone {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}

	case SaveResultMsg:
		if msg.Err != nil {
			m.saveError = true
			return m, m.showToast("save failed, will retry on next edit")
		}
		m.saveError = false
		m.dirty = false
	}

	return m, nil
}

// handleKeys processes keyboard input outside modals.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Editor modes
	case "v":
		m.setMode(ModeSelect)
	case "s":
		m.setMode(ModeScreen)
	case "o":
		m.setMode(ModePOI)
	case "p":
		m.setMode(ModePath)

	// POI type quick-select
	case "1", "2", "3", "4", "5", "6", "7", "8":
		if idx, ok := poiTypeKeys[key]; ok && idx < len(floorplan.POITypes()) {
			m.POITypeIdx = idx
			m.setMode(ModePOI)
		}

	// Floor navigation
	case "tab":
		m.cycleFloor(1)
	case "shift+tab":
		m.cycleFloor(-1)
	case "m":
		m.MultiFloor = !m.MultiFloor

	// Path visibility
	case "a":
		m.Plan.SetAllPathsVisible(true)
		m.markDirty()

	// Floors
	case "f":
		return m, m.openPrompt(promptAddFloor, "", "", "floor name")
	case "R":
		if f := m.Plan.Floor(m.Plan.CurrentFloorID()); f != nil {
			return m, m.openPrompt(promptRenameFloor, f.ID, f.Name, "floor name")
		}
	case "i":
		if f := m.Plan.Floor(m.Plan.CurrentFloorID()); f != nil {
			return m, m.openPrompt(promptFloorImage, f.ID, f.ImageRef, "image path")
		}
	case "X":
		return m.deleteCurrentFloor()

	// Points
	case "r":
		if p := m.selectedPoint(); p != nil {
			return m, m.openPrompt(promptRenamePoint, p.ID, p.Name, "point name")
		}
	case "delete", "backspace":
		return m.deleteSelectedPoint()

	// Connector choice: end the path at the pending connector.
	case "e":
		if _, ok := m.awaitingChoice(); ok {
			committed, err := m.Draw.ResolveEnd()
			if err != nil {
				return m, m.showToast(err.Error())
			}
			m.markDirty()
			return m, m.showToast(fmt.Sprintf("path %s saved", committed.ID))
		}

	case "esc", "escape":
		return m.handleEscape()
	}

	return m, nil
}

// handleEscape cancels in precedence order: in-progress path, then
// selection and mode.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch m.Draw.State().(type) {
	case pathdraw.Drawing, pathdraw.AwaitingChoice:
		m.Draw.Cancel()
		return m, m.showToast("path discarded")
	case pathdraw.Idle:
	}
	m.SelectedID = ""
	m.setMode(ModeSelect)
	return m, nil
}

func (m Model) cycleFloor(step int) {
	floors := m.Plan.Floors()
	if len(floors) < 2 {
		return
	}
	cur := 0
	for i, f := range floors {
		if f.ID == m.Plan.CurrentFloorID() {
			cur = i
			break
		}
	}
	next := (cur + step + len(floors)) % len(floors)
	_ = m.Plan.SetCurrentFloor(floors[next].ID)
}

func (m Model) deleteSelectedPoint() (tea.Model, tea.Cmd) {
	p := m.selectedPoint()
	if p == nil {
		return m, nil
	}
	touched := len(m.Plan.PathsTouching(p.ID))
	if err := m.Plan.RemovePoint(p.ID); err != nil {
		return m, m.showToast(err.Error())
	}
	m.SelectedID = ""
	m.markDirty()
	if touched > 0 {
		return m, m.showToast(fmt.Sprintf("removed %s and %d path(s)", p.Label, touched))
	}
	return m, m.showToast(fmt.Sprintf("removed %s", p.Label))
}

func (m Model) deleteCurrentFloor() (tea.Model, tea.Cmd) {
	id := m.Plan.CurrentFloorID()
	f := m.Plan.Floor(id)
	if f == nil {
		return m, nil
	}
	if m.drawing() {
		m.Draw.Cancel()
	}
	points := len(m.Plan.PointsOnFloor(id))
	if err := m.Plan.RemoveFloor(id); err != nil {
		return m, m.showToast(err.Error())
	}
	m.invalidateImageSize(id)
	m.SelectedID = ""
	m.Plan.EnsureDefaultFloor()
	m.markDirty()
	return m, m.showToast(fmt.Sprintf("removed %s with %d point(s)", f.Name, points))
}

// handlePromptKeys processes keys while the text-input modal is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.Prompt = promptNone
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.PromptIn.Value())
		kind, forID := m.Prompt, m.PromptFor
		m.Prompt = promptNone
		return m.commitPrompt(kind, forID, value)

	default:
		var cmd tea.Cmd
		m.PromptIn, cmd = m.PromptIn.Update(msg)
		return m, cmd
	}
}

func (m Model) commitPrompt(kind promptKind, forID, value string) (tea.Model, tea.Cmd) {
	switch kind {
	case promptRenamePoint:
		if value == "" {
			return m, nil
		}
		if err := m.Plan.RenamePoint(forID, value); err != nil {
			return m, m.showToast(err.Error())
		}
	case promptRenameFloor:
		if value == "" {
			return m, nil
		}
		if err := m.Plan.RenameFloor(forID, value); err != nil {
			return m, m.showToast(err.Error())
		}
	case promptAddFloor:
		if value == "" {
			value = fmt.Sprintf("Floor %d", len(m.Plan.Floors())+1)
		}
		f := m.Plan.AddFloor(value, "")
		_ = m.Plan.SetCurrentFloor(f.ID)
	case promptFloorImage:
		if err := m.Plan.SetFloorImage(forID, value); err != nil {
			return m, m.showToast(err.Error())
		}
		m.invalidateImageSize(forID)
	default:
		return m, nil
	}
	m.markDirty()
	return m, nil
}
