package floorplan

import (
	"fmt"
	"testing"
)

// ── suffix parsing ──

func TestSuffixOf(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"poi-7", 7},
		{"screen-12", 12},
		{"floor-1", 1},
		{"path-0", 0},
		{"nodash", 0},
		{"poi-", 0},
		{"poi--3", 0},
		{"poi-abc", 0},
	}
	for _, tc := range tests {
		if got := suffixOf(tc.id); got != tc.want {
			t.Errorf("suffixOf(%q) = %d, want %d", tc.id, got, tc.want)
		}
	}
}

func TestMaxSuffixFiltersByKind(t *testing.T) {
	ids := []string{"poi-3", "screen-9", "poi-5", "path-100"}
	if got := maxSuffix("poi", ids); got != 5 {
		t.Errorf("maxSuffix(poi) = %d, want 5", got)
	}
	if got := maxSuffix("screen", ids); got != 9 {
		t.Errorf("maxSuffix(screen) = %d, want 9", got)
	}
	if got := maxSuffix("floor", ids); got != 0 {
		t.Errorf("maxSuffix(floor) = %d, want 0", got)
	}
}

// ── allocation ──

func TestPathIDsNeverReused(t *testing.T) {
	m, screen, cafe, lift1, _ := twoFloorModel(t)
	p1, _ := m.PutPath(screen.ID, cafe.ID, segTo("floor-1", Coord{X: 1, Y: 1}), true)
	if p1.ID != "path-1" {
		t.Fatalf("expected path-1, got %s", p1.ID)
	}
	if err := m.RemovePath(p1.ID); err != nil {
		t.Fatal(err)
	}
	p2, _ := m.PutPath(screen.ID, lift1.ID, segTo("floor-1", Coord{X: 2, Y: 2}), true)
	if p2.ID != "path-2" {
		t.Errorf("the path counter must not reuse retired ids, got %s", p2.ID)
	}
}

func TestFloorIDsNeverReused(t *testing.T) {
	m := NewModel()
	m.AddFloor("A", "")
	b := m.AddFloor("B", "")
	if err := m.RemoveFloor(b.ID); err != nil {
		t.Fatal(err)
	}
	c := m.AddFloor("C", "")
	if c.ID != "floor-3" {
		t.Errorf("the floor counter must not reuse retired ids, got %s", c.ID)
	}
}

func TestAllocateSkipsImportedIDs(t *testing.T) {
	// A document can carry ids the counters have never seen.
	m := NewModel()
	f := m.AddFloor("Ground", "")
	m.points = append(m.points, &Point{ID: "screen-7", Type: PointScreen, FloorID: f.ID})
	s, err := m.AddScreen(f.ID, 1, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.ID != "screen-8" {
		t.Errorf("allocation must clear the max existing suffix, got %s", s.ID)
	}
}

// ── Renumber ──

func TestRenumberKeepsIDsDense(t *testing.T) {
	m := NewModel()
	f := m.AddFloor("Ground", "")
	var screens []*Point
	for i := 0; i < 4; i++ {
		s, _ := m.AddScreen(f.ID, float64(i), float64(i), "")
		screens = append(screens, s)
	}
	if err := m.RemovePoint(screens[1].ID); err != nil {
		t.Fatal(err)
	}

	var ids, labels []string
	for _, p := range m.Points() {
		ids = append(ids, p.ID)
		labels = append(labels, p.Label)
	}
	wantIDs := []string{"screen-1", "screen-2", "screen-3"}
	wantLabels := []string{"S1", "S2", "S3"}
	for i := range wantIDs {
		if ids[i] != wantIDs[i] || labels[i] != wantLabels[i] {
			t.Errorf("point %d: got %s/%s, want %s/%s", i, ids[i], labels[i], wantIDs[i], wantLabels[i])
		}
	}
}

func TestRenumberPreservesRelativeOrder(t *testing.T) {
	m := NewModel()
	f := m.AddFloor("Ground", "")
	for i := 0; i < 5; i++ {
		m.AddPOI(f.ID, float64(i*10), 0, fmt.Sprintf("poi %d", i+1), "cafe")
	}
	if err := m.RemovePoint("poi-3"); err != nil {
		t.Fatal(err)
	}
	// poi 4 and poi 5 slide down to poi-3 and poi-4.
	if p := m.Point("poi-3"); p == nil || p.Name != "poi 4" {
		t.Errorf("poi-3 should now be the old poi 4, got %+v", p)
	}
	if p := m.Point("poi-4"); p == nil || p.Name != "poi 5" {
		t.Errorf("poi-4 should now be the old poi 5, got %+v", p)
	}
}

func TestRenumberRewritesPathEndpoints(t *testing.T) {
	m := NewModel()
	f := m.AddFloor("Ground", "")
	s1, _ := m.AddScreen(f.ID, 0, 0, "")
	s2, _ := m.AddScreen(f.ID, 5, 5, "")
	poi1, _ := m.AddPOI(f.ID, 10, 10, "", "cafe")
	poi2, _ := m.AddPOI(f.ID, 20, 20, "", "info")

	if _, err := m.PutPath(s2.ID, poi2.ID, segTo(f.ID, Coord{X: 5, Y: 5}, Coord{X: 20, Y: 20}), true); err != nil {
		t.Fatal(err)
	}

	// Dropping s1 and poi1 renumbers s2→screen-1 and poi2→poi-1.
	if err := m.RemovePoint(s1.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.RemovePoint(poi1.ID); err != nil {
		t.Fatal(err)
	}

	if len(m.Paths()) != 1 {
		t.Fatalf("expected the path to survive, got %d paths", len(m.Paths()))
	}
	p := m.Paths()[0]
	if p.FromID != "screen-1" || p.ToID != "poi-1" {
		t.Errorf("endpoints not rewritten: %s → %s", p.FromID, p.ToID)
	}
	if m.Point(p.FromID) == nil || m.Point(p.ToID) == nil {
		t.Error("rewritten endpoints must resolve to live points")
	}
}

func TestRenumberScreensAndPOIsIndependent(t *testing.T) {
	m := NewModel()
	f := m.AddFloor("Ground", "")
	m.AddScreen(f.ID, 0, 0, "")
	m.AddScreen(f.ID, 1, 1, "")
	m.AddPOI(f.ID, 2, 2, "", "cafe")
	if err := m.RemovePoint("screen-1"); err != nil {
		t.Fatal(err)
	}
	if m.Point("screen-1") == nil {
		t.Error("remaining screen should renumber to screen-1")
	}
	if m.Point("poi-1") == nil {
		t.Error("poi numbering must be untouched by screen removal")
	}
}
