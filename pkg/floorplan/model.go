package floorplan

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Lookup and mutation errors. Mutators reject anything that would break
// referential integrity instead of detecting dangling references later.
var (
	ErrFloorNotFound   = errors.New("floor not found")
	ErrPointNotFound   = errors.New("point not found")
	ErrPathNotFound    = errors.New("path not found")
	ErrUnknownPOIType  = errors.New("unknown poi type")
	ErrNotAScreen      = errors.New("path origin must be a screen")
	ErrMissingTerminal = errors.New("path terminal does not exist")
)

// DefaultFloorName is used for the synthetic floor created when a
// document arrives without any.
const DefaultFloorName = "Ground floor"

// Model is the single authoritative aggregate for one wayfinding system.
// It owns floors, points, paths and the id counters; callers never splice
// its slices directly.
type Model struct {
	floors   []*Floor
	points   []*Point
	paths    []*Path
	counters Counters

	currentFloorID string
}

// NewModel returns an empty model with counters at their initial value.
func NewModel() *Model {
	return &Model{counters: Counters{Path: 1, Floor: 1}}
}

// ── Floors ──

// Floors returns floors in insertion order.
func (m *Model) Floors() []*Floor { return m.floors }

// Floor returns the floor with the given id, or nil.
func (m *Model) Floor(id string) *Floor {
	for _, f := range m.floors {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// CurrentFloorID returns the active floor id ("" when no floors exist).
func (m *Model) CurrentFloorID() string { return m.currentFloorID }

// SetCurrentFloor switches the active floor.
func (m *Model) SetCurrentFloor(id string) error {
	if m.Floor(id) == nil {
		return errors.Wrapf(ErrFloorNotFound, "%s", id)
	}
	m.currentFloorID = id
	return nil
}

// AddFloor creates a floor with a freshly allocated id and makes it the
// active floor if none is set.
func (m *Model) AddFloor(name, imageRef string) *Floor {
	f := &Floor{ID: m.allocate("floor"), Name: name, ImageRef: imageRef}
	m.floors = append(m.floors, f)
	if m.currentFloorID == "" {
		m.currentFloorID = f.ID
	}
	return f
}

// EnsureDefaultFloor adds a synthetic floor when the model has none, so
// the editor stays usable after a failed or empty load.
func (m *Model) EnsureDefaultFloor() *Floor {
	if len(m.floors) > 0 {
		return m.floors[0]
	}
	return m.AddFloor(DefaultFloorName, "")
}

// RenameFloor updates a floor's display name.
func (m *Model) RenameFloor(id, name string) error {
	f := m.Floor(id)
	if f == nil {
		return errors.Wrapf(ErrFloorNotFound, "%s", id)
	}
	f.Name = name
	return nil
}

// SetFloorImage updates a floor's reference image.
func (m *Model) SetFloorImage(id, imageRef string) error {
	f := m.Floor(id)
	if f == nil {
		return errors.Wrapf(ErrFloorNotFound, "%s", id)
	}
	f.ImageRef = imageRef
	return nil
}

// RemoveFloor deletes a floor and cascades: every point on the floor is
// removed, every path touching one of those points is removed, and the
// survivors are renumbered.
func (m *Model) RemoveFloor(id string) error {
	if m.Floor(id) == nil {
		return errors.Wrapf(ErrFloorNotFound, "%s", id)
	}

	doomed := make(map[string]bool)
	kept := m.points[:0]
	for _, p := range m.points {
		if p.FloorID == id {
			doomed[p.ID] = true
		} else {
			kept = append(kept, p)
		}
	}
	m.points = kept

	keptPaths := m.paths[:0]
	for _, path := range m.paths {
		if !doomed[path.FromID] && !doomed[path.ToID] && !touchesFloor(path, id) {
			keptPaths = append(keptPaths, path)
		}
	}
	m.paths = keptPaths

	for i, f := range m.floors {
		if f.ID == id {
			m.floors = append(m.floors[:i], m.floors[i+1:]...)
			break
		}
	}
	if m.currentFloorID == id {
		m.currentFloorID = ""
		if len(m.floors) > 0 {
			m.currentFloorID = m.floors[0].ID
		}
	}
	m.Renumber()
	return nil
}

// touchesFloor reports whether any segment of the path runs on the floor.
func touchesFloor(p *Path, floorID string) bool {
	for _, s := range p.Segments {
		if s.FloorID == floorID {
			return true
		}
	}
	return false
}

// ── Points ──

// Points returns points in insertion order.
func (m *Model) Points() []*Point { return m.points }

// Point returns the point with the given id, or nil.
func (m *Model) Point(id string) *Point {
	for _, p := range m.points {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PointsOnFloor returns the points placed on one floor, in insertion order.
func (m *Model) PointsOnFloor(floorID string) []*Point {
	var out []*Point
	for _, p := range m.points {
		if p.FloorID == floorID {
			out = append(out, p)
		}
	}
	return out
}

// AddScreen places a screen marker on a floor.
func (m *Model) AddScreen(floorID string, x, y float64, name string) (*Point, error) {
	if m.Floor(floorID) == nil {
		return nil, errors.Wrapf(ErrFloorNotFound, "%s", floorID)
	}
	id := m.allocate("screen")
	p := &Point{
		ID: id, Type: PointScreen, X: x, Y: y,
		FloorID: floorID, Label: "S" + id[len("screen-"):], Name: name,
	}
	m.points = append(m.points, p)
	return p, nil
}

// AddPOI places a point of interest of a catalog type on a floor.
func (m *Model) AddPOI(floorID string, x, y float64, name, poiType string) (*Point, error) {
	if m.Floor(floorID) == nil {
		return nil, errors.Wrapf(ErrFloorNotFound, "%s", floorID)
	}
	if _, ok := POITypeByKey(poiType); !ok {
		return nil, errors.Wrapf(ErrUnknownPOIType, "%q", poiType)
	}
	id := m.allocate("poi")
	p := &Point{
		ID: id, Type: PointPOI, X: x, Y: y,
		FloorID: floorID, Label: "P" + id[len("poi-"):], Name: name, POIType: poiType,
	}
	m.points = append(m.points, p)
	return p, nil
}

// RenamePoint updates a point's display name.
func (m *Model) RenamePoint(id, name string) error {
	p := m.Point(id)
	if p == nil {
		return errors.Wrapf(ErrPointNotFound, "%s", id)
	}
	p.Name = name
	return nil
}

// RemovePoint deletes a point, cascades into every path that starts or
// ends at it, and renumbers the survivors.
func (m *Model) RemovePoint(id string) error {
	found := false
	kept := m.points[:0]
	for _, p := range m.points {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return errors.Wrapf(ErrPointNotFound, "%s", id)
	}
	m.points = kept

	keptPaths := m.paths[:0]
	for _, path := range m.paths {
		if path.FromID != id && path.ToID != id {
			keptPaths = append(keptPaths, path)
		}
	}
	m.paths = keptPaths
	m.Renumber()
	return nil
}

// HitTest returns the nearest point on the floor within tol (percent
// units, Euclidean), or nil. Later-placed points win ties so the marker
// drawn on top is the one picked.
func (m *Model) HitTest(floorID string, x, y, tol float64) *Point {
	var best *Point
	bestD := tol
	for _, p := range m.points {
		if p.FloorID != floorID {
			continue
		}
		d := math.Hypot(p.X-x, p.Y-y)
		if d <= bestD {
			best = p
			bestD = d
		}
	}
	return best
}

// ── Paths ──

// Paths returns paths in insertion order.
func (m *Model) Paths() []*Path { return m.paths }

// Path returns the path with the given id, or nil.
func (m *Model) Path(id string) *Path {
	for _, p := range m.paths {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PathForPair returns the unique path from one screen to one terminal,
// or nil.
func (m *Model) PathForPair(fromID, toID string) *Path {
	for _, p := range m.paths {
		if p.FromID == fromID && p.ToID == toID {
			return p
		}
	}
	return nil
}

// PathsTouching returns paths that start or end at the point.
func (m *Model) PathsTouching(pointID string) []*Path {
	var out []*Path
	for _, p := range m.paths {
		if p.FromID == pointID || p.ToID == pointID {
			out = append(out, p)
		}
	}
	return out
}

// PutPath stores a finished path. At most one path exists per
// (fromID, toID) pair: re-drawing replaces the stored segments under a
// freshly allocated id rather than duplicating. Segments are deep-copied.
func (m *Model) PutPath(fromID, toID string, segments []Segment, visible bool) (*Path, error) {
	from := m.Point(fromID)
	if from == nil || from.Type != PointScreen {
		return nil, errors.Wrapf(ErrNotAScreen, "%s", fromID)
	}
	if m.Point(toID) == nil {
		return nil, errors.Wrapf(ErrMissingTerminal, "%s", toID)
	}

	if old := m.PathForPair(fromID, toID); old != nil {
		m.removePathByID(old.ID)
	}
	p := (&Path{FromID: fromID, ToID: toID, Visible: visible, Segments: segments}).clone()
	p.ID = m.allocate("path")
	m.paths = append(m.paths, p)
	return p, nil
}

// RemovePath deletes a stored path.
func (m *Model) RemovePath(id string) error {
	if !m.removePathByID(id) {
		return errors.Wrapf(ErrPathNotFound, "%s", id)
	}
	return nil
}

func (m *Model) removePathByID(id string) bool {
	for i, p := range m.paths {
		if p.ID == id {
			m.paths = append(m.paths[:i], m.paths[i+1:]...)
			return true
		}
	}
	return false
}

// SetPathVisible toggles one path's visibility flag.
func (m *Model) SetPathVisible(id string, v bool) error {
	p := m.Path(id)
	if p == nil {
		return errors.Wrapf(ErrPathNotFound, "%s", id)
	}
	p.Visible = v
	return nil
}

// SetAllPathsVisible toggles every path's visibility flag. Used for the
// decluttering pass when a draw starts and for the show-all action.
func (m *Model) SetAllPathsVisible(v bool) {
	for _, p := range m.paths {
		p.Visible = v
	}
}

// Counters exposes the persisted id counters for export.
func (m *Model) Counters() Counters { return m.counters }
