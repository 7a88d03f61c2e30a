// Package floorplan holds the wayfinding graph: floors backed by reference
// images, screen/POI markers positioned in percentage space, and the paths
// that connect them. All mutation goes through Model methods so that id
// numbering, labels, and path references stay consistent.
package floorplan

// PointType distinguishes path origins from destinations.
type PointType string

const (
	// PointScreen is a path origin (a physical display).
	PointScreen PointType = "screen"
	// PointPOI is a destination or intermediate connector.
	PointPOI PointType = "poi"
)

// Coord is a coordinate pair in percent (0–100) of a floor image's
// natural dimensions. Resolution-independent by construction.
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Floor is one mapped physical level.
type Floor struct {
	ID       string `json:"id"`   // "floor-<n>"
	Name     string `json:"name"`
	ImageRef string `json:"imageUrl"`
}

// Point is a marker placed on a floor.
type Point struct {
	ID      string    `json:"id"` // "screen-<n>" or "poi-<n>"
	Type    PointType `json:"type"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	FloorID string    `json:"floorId"`
	Label   string    `json:"label"` // "S<n>" / "P<n>", rewritten on renumber
	Name    string    `json:"name"`
	POIType string    `json:"poiType,omitempty"` // catalog key, POI only
}

// Segment is one contiguous polyline of a path confined to a single floor.
type Segment struct {
	FloorID string  `json:"floorId"`
	Points  []Coord `json:"points"`
}

// Path is a drawn route from a screen to a terminal point. Segments are
// ordered; each segment after the first starts at the previous segment's
// endpoint carried onto a different floor.
type Path struct {
	ID       string    `json:"id"` // "path-<n>"
	FromID   string    `json:"fromId"`
	ToID     string    `json:"toId"`
	Visible  bool      `json:"visible"`
	Segments []Segment `json:"segments"`
}

// Counters are the persisted id generators, reconciled against the max
// suffix found in loaded data so imports never collide.
type Counters struct {
	Path  int `json:"pathCounter"`
	Floor int `json:"floorCounter"`
}

// Start returns the first coordinate of the first segment, which by
// invariant equals the origin screen's position.
func (p *Path) Start() (Coord, bool) {
	if len(p.Segments) == 0 || len(p.Segments[0].Points) == 0 {
		return Coord{}, false
	}
	return p.Segments[0].Points[0], true
}

// End returns the last coordinate of the last segment.
func (p *Path) End() (Coord, bool) {
	if len(p.Segments) == 0 {
		return Coord{}, false
	}
	last := p.Segments[len(p.Segments)-1]
	if len(last.Points) == 0 {
		return Coord{}, false
	}
	return last.Points[len(last.Points)-1], true
}

// clone returns a deep copy. Used when committing the transient drawing
// path so later edits cannot alias stored segments.
func (p *Path) clone() *Path {
	cp := *p
	cp.Segments = make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		cp.Segments[i] = Segment{FloorID: s.FloorID, Points: append([]Coord(nil), s.Points...)}
	}
	return &cp
}
