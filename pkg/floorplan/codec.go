package floorplan

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrInvalidDocument marks a persisted document that fails structural
// validation. Callers abort the import without mutating existing state.
var ErrInvalidDocument = errors.New("invalid wayfinding document")

// Document is the persisted JSON shape of one wayfinding system.
type Document struct {
	Floors         []Floor  `json:"floors"`
	Points         []Point  `json:"points"`
	Paths          []Path   `json:"paths"`
	CurrentFloorID *string  `json:"currentFloorId"`
	Counters       Counters `json:"counters"`
}

// requiredArrays are the top-level fields that must be present and
// array-typed for a document to be accepted.
var requiredArrays = []string{"floors", "points", "paths"}

// ParseDocument validates and decodes a persisted document. Rejections
// carry ErrInvalidDocument plus a hint naming the offending field.
// A missing counters object defaults both generators to 1.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(ErrInvalidDocument, err.Error()),
			"the stored wayfinding data is not a JSON object")
	}
	for _, field := range requiredArrays {
		msg, ok := raw[field]
		if !ok {
			return nil, errors.WithHintf(
				errors.Wrapf(ErrInvalidDocument, "missing field %q", field),
				"the document must contain a %q array", field)
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(msg, &arr); err != nil {
			return nil, errors.WithHintf(
				errors.Wrapf(ErrInvalidDocument, "field %q is not an array", field),
				"the document's %q field must be an array", field)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrInvalidDocument, err.Error())
	}
	if _, ok := raw["counters"]; !ok {
		doc.Counters = Counters{Path: 1, Floor: 1}
	}
	if doc.Counters.Path < 1 {
		doc.Counters.Path = 1
	}
	if doc.Counters.Floor < 1 {
		doc.Counters.Floor = 1
	}
	return &doc, nil
}

// FromDocument builds a model from a parsed document, substituting a
// synthetic default floor when none are present and reconciling the id
// counters against the max suffix found in the data.
func FromDocument(doc *Document) *Model {
	m := NewModel()
	m.counters = doc.Counters
	for i := range doc.Floors {
		f := doc.Floors[i]
		m.floors = append(m.floors, &f)
	}
	for i := range doc.Points {
		p := doc.Points[i]
		m.points = append(m.points, &p)
	}
	for i := range doc.Paths {
		p := doc.Paths[i]
		m.paths = append(m.paths, p.clone())
	}
	m.EnsureDefaultFloor()

	// Counters never fall behind imported ids.
	if n := maxSuffix("path", m.liveIDs("path")) + 1; n > m.counters.Path {
		m.counters.Path = n
	}
	if n := maxSuffix("floor", m.liveIDs("floor")) + 1; n > m.counters.Floor {
		m.counters.Floor = n
	}

	if doc.CurrentFloorID != nil && m.Floor(*doc.CurrentFloorID) != nil {
		m.currentFloorID = *doc.CurrentFloorID
	}
	if m.currentFloorID == "" && len(m.floors) > 0 {
		m.currentFloorID = m.floors[0].ID
	}
	return m
}

// Document exports the model. All four top-level collections are always
// emitted, with defaults substituted for missing optional state.
func (m *Model) Document() *Document {
	doc := &Document{
		Floors:   make([]Floor, 0, len(m.floors)),
		Points:   make([]Point, 0, len(m.points)),
		Paths:    make([]Path, 0, len(m.paths)),
		Counters: m.counters,
	}
	for _, f := range m.floors {
		doc.Floors = append(doc.Floors, *f)
	}
	for _, p := range m.points {
		doc.Points = append(doc.Points, *p)
	}
	for _, p := range m.paths {
		doc.Paths = append(doc.Paths, *p.clone())
	}
	switch {
	case m.currentFloorID != "":
		id := m.currentFloorID
		doc.CurrentFloorID = &id
	case len(m.floors) > 0:
		id := m.floors[0].ID
		doc.CurrentFloorID = &id
	}
	return doc
}

// Encode renders a document as indented JSON.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode wayfinding document")
	}
	return data, nil
}
