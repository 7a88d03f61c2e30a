// Package wayui is the interactive wayfinding editor: a Bubbletea model
// that projects the floorplan graph onto one or more letterboxed floor
// panels, places markers, and drives the path drawing state machine from
// mouse input. The UI holds no authoritative state; everything it draws
// is derived from the floorplan model plus current viewport geometry.
package wayui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/openstream/wayfind/internal/config"
	"github.com/openstream/wayfind/internal/store"
	"github.com/openstream/wayfind/pkg/floorplan"
	"github.com/openstream/wayfind/pkg/pathdraw"
)

// Mode is the current editor interaction mode. Placement and path modes
// mirror the drawing toolbar of the original editor.
type Mode int

const (
	ModeSelect Mode = iota
	ModeScreen
	ModePOI
	ModePath
)

// promptKind says what the text-input modal is editing.
type promptKind int

const (
	promptNone promptKind = iota
	promptRenamePoint
	promptRenameFloor
	promptAddFloor
	promptFloorImage
)

const toastDuration = 3 * time.Second

// Model is the editor state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	Plan *floorplan.Model
	Draw *pathdraw.Machine

	Mode       Mode
	POITypeIdx int // index into floorplan.POITypes for placement
	MultiFloor bool
	SelectedID string // selected point id, "" when none

	// Renderer-owned lookaside: floor id → natural image size. Model
	// entities never carry view handles.
	imgSizes map[string][2]float64

	// Prompt modal (rename, add floor, image ref).
	Prompt     promptKind
	PromptFor  string // floor or point id the prompt applies to
	PromptIn   textinput.Model

	// Toast + save indicator.
	toast     string
	toastSeq  int
	dirty     bool
	saveError bool

	cfg        *config.Config
	saver      *store.Autosaver
	systemName string
}

// NewModel builds the editor for a loaded (or default) floorplan.
func NewModel(plan *floorplan.Model, cfg *config.Config, saver *store.Autosaver, systemName string) Model {
	plan.EnsureDefaultFloor()
	return Model{
		Plan:       plan,
		Draw:       pathdraw.New(plan),
		cfg:        cfg,
		saver:      saver,
		systemName: systemName,
		imgSizes:   make(map[string][2]float64),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// toastExpireMsg clears the toast once its generation is stale.
type toastExpireMsg struct{ seq int }

// SaveResultMsg is sent from the autosaver goroutine via Program.Send.
type SaveResultMsg struct{ Err error }

// showToast sets the footer message and schedules its expiry.
func (m *Model) showToast(msg string) tea.Cmd {
	m.toast = msg
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

// markDirty snapshots the document and arms the debounced autosaver.
func (m *Model) markDirty() {
	m.dirty = true
	if m.saver != nil {
		m.saver.Trigger(m.Plan.Document())
	}
}

// setMode switches the editor mode. Per the drawing rules, moving away
// from path mode discards any in-progress path without touching the
// stored graph.
func (m *Model) setMode(mode Mode) {
	if m.Mode == ModePath && mode != ModePath {
		m.Draw.Cancel()
	}
	m.Mode = mode
}

// selectedPoint resolves the selection, clearing it if the point was
// removed by a cascade.
func (m *Model) selectedPoint() *floorplan.Point {
	if m.SelectedID == "" {
		return nil
	}
	p := m.Plan.Point(m.SelectedID)
	if p == nil {
		m.SelectedID = ""
	}
	return p
}

// awaitingChoice reports whether the machine waits on the end-or-continue
// connector decision.
func (m *Model) awaitingChoice() (pathdraw.AwaitingChoice, bool) {
	s, ok := m.Draw.State().(pathdraw.AwaitingChoice)
	return s, ok
}

// drawing reports whether a path is actively being drawn (bends accepted).
func (m *Model) drawing() bool {
	_, ok := m.Draw.State().(pathdraw.Drawing)
	return ok
}

// openPrompt opens the text-input modal.
func (m *Model) openPrompt(kind promptKind, forID, initial, placeholder string) tea.Cmd {
	m.Prompt = kind
	m.PromptFor = forID
	m.PromptIn = textinput.New()
	m.PromptIn.Prompt = ""
	m.PromptIn.CharLimit = 60
	m.PromptIn.Placeholder = placeholder
	m.PromptIn.SetValue(initial)
	return m.PromptIn.Focus()
}
