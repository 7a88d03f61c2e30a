// Package pathdraw implements the interactive path construction state
// machine: a path starts on a screen, collects bends and an optional
// chain of cross-floor connector hops, and commits as a single stored
// path when it reaches its terminal point.
package pathdraw

import (
	"github.com/cockroachdb/errors"

	"github.com/openstream/wayfind/pkg/floorplan"
)

// Transition rejections. All leave the machine state unchanged so the UI
// can surface them as a message and carry on.
var (
	ErrStartOnScreen  = errors.New("a path must start on a screen")
	ErrNotDrawing     = errors.New("no path is being drawn")
	ErrNotAwaiting    = errors.New("no connector choice is pending")
	ErrEndOnPOI       = errors.New("a path must end at a point of interest")
	ErrNotAConnector  = errors.New("continuation target must be a connector")
	ErrSameFloor      = errors.New("continuation must move to a different floor")
	ErrWrongFloor     = errors.New("bend is not on the active segment's floor")
	ErrUnknownPoint   = errors.New("unknown point")
	ErrAlreadyDrawing = errors.New("a path is already being drawn")
)

// State is the explicit machine state. Exactly one of Idle, Drawing, or
// AwaitingChoice; transition sites switch exhaustively over these.
type State interface{ isState() }

// Idle means no path is under construction.
type Idle struct{}

// Drawing carries the partially built path. The active segment is the
// last one; bends append to it.
type Drawing struct {
	Work *floorplan.Path
}

// AwaitingChoice is entered when the path reaches a connector POI: the
// user must either end the path there or pick a connector on another
// floor to continue through. Request → resolve, no ambient callbacks.
type AwaitingChoice struct {
	Work      *floorplan.Path
	Connector *floorplan.Point
}

func (Idle) isState()           {}
func (Drawing) isState()        {}
func (AwaitingChoice) isState() {}

// Outcome tells the caller what a point click did.
type Outcome int

const (
	// OutcomeAppended means the click extended the path (bend or hop).
	OutcomeAppended Outcome = iota
	// OutcomeFinished means the path was committed and the machine is idle.
	OutcomeFinished
	// OutcomeNeedsChoice means an end-or-continue decision is pending.
	OutcomeNeedsChoice
)

// Machine drives path construction against a floorplan model.
type Machine struct {
	model *floorplan.Model
	state State

	// visibility snapshot taken at Start so Cancel restores the exact
	// pre-draw path set.
	visibility map[string]bool
}

// New returns an idle machine bound to the model.
func New(model *floorplan.Model) *Machine {
	return &Machine{model: model, state: Idle{}}
}

// State returns the current machine state.
func (m *Machine) State() State { return m.state }

// Work returns the in-progress path, or nil when idle.
func (m *Machine) Work() *floorplan.Path {
	switch s := m.state.(type) {
	case Idle:
		return nil
	case Drawing:
		return s.Work
	case AwaitingChoice:
		return s.Work
	}
	return nil
}

// ActiveSegment returns the segment bends currently append to, or nil.
func (m *Machine) ActiveSegment() *floorplan.Segment {
	w := m.Work()
	if w == nil || len(w.Segments) == 0 {
		return nil
	}
	return &w.Segments[len(w.Segments)-1]
}

// FromID returns the origin screen id of the in-progress path, or "".
func (m *Machine) FromID() string {
	if w := m.Work(); w != nil {
		return w.FromID
	}
	return ""
}

// Start begins a path from a screen. All stored paths are hidden for
// decluttering (restored verbatim on Cancel); the first segment opens on
// the screen's floor seeded with the screen's coordinates.
func (m *Machine) Start(screenID string) error {
	switch m.state.(type) {
	case Drawing, AwaitingChoice:
		return ErrAlreadyDrawing
	case Idle:
	}

	origin := m.model.Point(screenID)
	if origin == nil {
		return errors.Wrapf(ErrUnknownPoint, "%s", screenID)
	}
	if origin.Type != floorplan.PointScreen {
		return ErrStartOnScreen
	}

	m.visibility = make(map[string]bool, len(m.model.Paths()))
	for _, p := range m.model.Paths() {
		m.visibility[p.ID] = p.Visible
	}
	m.model.SetAllPathsVisible(false)

	m.state = Drawing{Work: &floorplan.Path{
		FromID: screenID,
		Segments: []floorplan.Segment{{
			FloorID: origin.FloorID,
			Points:  []floorplan.Coord{{X: origin.X, Y: origin.Y}},
		}},
	}}
	return nil
}

// AddBend appends an intermediate coordinate to the active segment. The
// bend must land on the active segment's floor.
func (m *Machine) AddBend(floorID string, x, y float64) error {
	s, ok := m.state.(Drawing)
	if !ok {
		return ErrNotDrawing
	}
	seg := &s.Work.Segments[len(s.Work.Segments)-1]
	if seg.FloorID != floorID {
		return ErrWrongFloor
	}
	seg.Points = append(seg.Points, floorplan.Coord{X: x, Y: y})
	return nil
}

// ClickPoint handles a click on a POI while drawing. Terminal POIs finish
// the path; connector POIs append their coordinates and hand the
// end-or-continue decision back to the caller.
func (m *Machine) ClickPoint(pointID string) (Outcome, *floorplan.Path, error) {
	s, ok := m.state.(Drawing)
	if !ok {
		return OutcomeAppended, nil, ErrNotDrawing
	}
	target := m.model.Point(pointID)
	if target == nil {
		return OutcomeAppended, nil, errors.Wrapf(ErrUnknownPoint, "%s", pointID)
	}
	if target.Type != floorplan.PointPOI {
		return OutcomeAppended, nil, ErrEndOnPOI
	}

	seg := &s.Work.Segments[len(s.Work.Segments)-1]
	if seg.FloorID != target.FloorID {
		return OutcomeAppended, nil, ErrWrongFloor
	}
	seg.Points = append(seg.Points, floorplan.Coord{X: target.X, Y: target.Y})
	s.Work.ToID = target.ID

	if floorplan.IsConnector(target.POIType) {
		m.state = AwaitingChoice{Work: s.Work, Connector: target}
		return OutcomeNeedsChoice, nil, nil
	}

	committed, err := m.commit(s.Work)
	if err != nil {
		return OutcomeAppended, nil, err
	}
	return OutcomeFinished, committed, nil
}

// ResolveEnd answers a pending connector choice with "end here": the
// connector becomes the terminal point and the path commits.
func (m *Machine) ResolveEnd() (*floorplan.Path, error) {
	s, ok := m.state.(AwaitingChoice)
	if !ok {
		return nil, ErrNotAwaiting
	}
	return m.commit(s.Work)
}

// ResolveContinue answers a pending connector choice by picking the
// connector the path re-emerges from: a new segment opens on that
// connector's floor, seeded with its coordinates.
func (m *Machine) ResolveContinue(connectorID string) error {
	s, ok := m.state.(AwaitingChoice)
	if !ok {
		return ErrNotAwaiting
	}
	target := m.model.Point(connectorID)
	if target == nil {
		return errors.Wrapf(ErrUnknownPoint, "%s", connectorID)
	}
	if target.Type != floorplan.PointPOI || !floorplan.IsConnector(target.POIType) {
		return ErrNotAConnector
	}
	if target.FloorID == s.Connector.FloorID {
		return ErrSameFloor
	}

	s.Work.ToID = ""
	s.Work.Segments = append(s.Work.Segments, floorplan.Segment{
		FloorID: target.FloorID,
		Points:  []floorplan.Coord{{X: target.X, Y: target.Y}},
	})
	m.state = Drawing{Work: s.Work}
	return nil
}

// Cancel discards the in-progress path and restores the visibility of
// every stored path to its pre-draw value. The model's path set is left
// exactly as it was before Start.
func (m *Machine) Cancel() {
	switch m.state.(type) {
	case Idle:
		return
	case Drawing, AwaitingChoice:
	}
	for id, vis := range m.visibility {
		// Paths removed mid-draw by other actions are simply skipped.
		_ = m.model.SetPathVisible(id, vis)
	}
	m.visibility = nil
	m.state = Idle{}
}

// commit stores the finished path (overwriting the (from,to) pair if it
// exists) and returns to idle. Other paths stay hidden: finishing keeps
// the decluttered view, with the new path visible on top.
func (m *Machine) commit(work *floorplan.Path) (*floorplan.Path, error) {
	committed, err := m.model.PutPath(work.FromID, work.ToID, work.Segments, true)
	if err != nil {
		return nil, err
	}
	m.visibility = nil
	m.state = Idle{}
	return committed, nil
}
