package pathdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstream/wayfind/pkg/floorplan"
)

// mallModel is a two-floor model: a kiosk screen and a cafe on the ground
// floor, plus a co-located elevator pair linking the floors and a toilet
// upstairs.
func mallModel(t *testing.T) (m *floorplan.Model, screen, cafe, liftDown, liftUp, toilet *floorplan.Point) {
	t.Helper()
	m = floorplan.NewModel()
	g := m.AddFloor("Ground", "")
	f1 := m.AddFloor("First", "")

	var err error
	screen, err = m.AddScreen(g.ID, 10, 90, "Kiosk")
	require.NoError(t, err)
	cafe, err = m.AddPOI(g.ID, 80, 20, "Cafe", "cafe")
	require.NoError(t, err)
	liftDown, err = m.AddPOI(g.ID, 50, 50, "Lift", "elevator")
	require.NoError(t, err)
	liftUp, err = m.AddPOI(f1.ID, 50, 50, "Lift", "elevator")
	require.NoError(t, err)
	toilet, err = m.AddPOI(f1.ID, 30, 10, "WC", "toilet")
	require.NoError(t, err)
	return m, screen, cafe, liftDown, liftUp, toilet
}

// ── Start ──

func TestStartSeedsSegmentWithScreenCoords(t *testing.T) {
	m, screen, _, _, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))

	require.IsType(t, Drawing{}, d.State())
	seg := d.ActiveSegment()
	require.NotNil(t, seg)
	assert.Equal(t, screen.FloorID, seg.FloorID)
	require.Len(t, seg.Points, 1)
	assert.Equal(t, floorplan.Coord{X: screen.X, Y: screen.Y}, seg.Points[0])
}

func TestStartHidesStoredPaths(t *testing.T) {
	m, screen, cafe, _, _, _ := mallModel(t)
	_, err := m.PutPath(screen.ID, cafe.ID,
		[]floorplan.Segment{{FloorID: screen.FloorID, Points: []floorplan.Coord{{X: 10, Y: 90}}}}, true)
	require.NoError(t, err)

	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	for _, p := range m.Paths() {
		assert.False(t, p.Visible, "stored paths are hidden while drawing")
	}
}

func TestStartRejectsPOI(t *testing.T) {
	m, _, cafe, _, _, _ := mallModel(t)
	d := New(m)
	assert.ErrorIs(t, d.Start(cafe.ID), ErrStartOnScreen)
	assert.IsType(t, Idle{}, d.State())
}

func TestStartRejectsWhileDrawing(t *testing.T) {
	m, screen, _, _, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	assert.ErrorIs(t, d.Start(screen.ID), ErrAlreadyDrawing)
}

// ── Bends & simple finish ──

func TestDrawToTerminal(t *testing.T) {
	m, screen, cafe, _, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	require.NoError(t, d.AddBend(screen.FloorID, 40, 60))

	outcome, committed, err := d.ClickPoint(cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinished, outcome)
	require.NotNil(t, committed)
	assert.IsType(t, Idle{}, d.State())

	require.Len(t, committed.Segments, 1)
	pts := committed.Segments[0].Points
	require.Len(t, pts, 3) // origin, bend, terminal
	assert.Equal(t, floorplan.Coord{X: screen.X, Y: screen.Y}, pts[0])
	assert.Equal(t, floorplan.Coord{X: cafe.X, Y: cafe.Y}, pts[2])
	assert.True(t, committed.Visible)
	assert.Equal(t, committed, m.Path(committed.ID))
}

func TestAddBendRejectsOtherFloor(t *testing.T) {
	m, screen, _, _, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	assert.ErrorIs(t, d.AddBend("floor-2", 40, 60), ErrWrongFloor)
}

func TestClickPointRejectsScreenTerminal(t *testing.T) {
	m, screen, _, _, _, _ := mallModel(t)
	s2, err := m.AddScreen(screen.FloorID, 90, 90, "")
	require.NoError(t, err)

	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err = d.ClickPoint(s2.ID)
	assert.ErrorIs(t, err, ErrEndOnPOI)
	assert.IsType(t, Drawing{}, d.State())
}

func TestClickPointRejectsOtherFloorPOI(t *testing.T) {
	m, screen, _, _, _, toilet := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err := d.ClickPoint(toilet.ID)
	assert.ErrorIs(t, err, ErrWrongFloor)
}

// ── Connector choice ──

func TestConnectorEntersAwaitingChoice(t *testing.T) {
	m, screen, _, liftDown, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))

	outcome, committed, err := d.ClickPoint(liftDown.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNeedsChoice, outcome)
	assert.Nil(t, committed, "nothing commits until the choice resolves")

	s, ok := d.State().(AwaitingChoice)
	require.True(t, ok)
	assert.Equal(t, liftDown.ID, s.Connector.ID)
	assert.Empty(t, m.Paths())
}

func TestResolveEndCommitsAtConnector(t *testing.T) {
	m, screen, _, liftDown, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err := d.ClickPoint(liftDown.ID)
	require.NoError(t, err)

	committed, err := d.ResolveEnd()
	require.NoError(t, err)
	assert.Equal(t, liftDown.ID, committed.ToID)
	assert.Len(t, committed.Segments, 1)
	assert.IsType(t, Idle{}, d.State())
}

func TestResolveContinueOpensSegmentOnNewFloor(t *testing.T) {
	m, screen, _, liftDown, liftUp, toilet := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err := d.ClickPoint(liftDown.ID)
	require.NoError(t, err)

	require.NoError(t, d.ResolveContinue(liftUp.ID))
	require.IsType(t, Drawing{}, d.State())

	seg := d.ActiveSegment()
	require.NotNil(t, seg)
	assert.Equal(t, liftUp.FloorID, seg.FloorID)
	require.Len(t, seg.Points, 1)
	assert.Equal(t, floorplan.Coord{X: liftUp.X, Y: liftUp.Y}, seg.Points[0])

	// Finish upstairs: two segments, terminal on the first floor.
	outcome, committed, err := d.ClickPoint(toilet.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFinished, outcome)
	require.Len(t, committed.Segments, 2)
	assert.Equal(t, "floor-1", committed.Segments[0].FloorID)
	assert.Equal(t, "floor-2", committed.Segments[1].FloorID)
	assert.Equal(t, toilet.ID, committed.ToID)
	end, ok := committed.End()
	require.True(t, ok)
	assert.Equal(t, floorplan.Coord{X: toilet.X, Y: toilet.Y}, end)
}

func TestResolveContinueRejectsSameFloor(t *testing.T) {
	m, screen, _, liftDown, _, _ := mallModel(t)
	other, err := m.AddPOI(liftDown.FloorID, 60, 60, "Stairs", "stairs")
	require.NoError(t, err)

	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err = d.ClickPoint(liftDown.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, d.ResolveContinue(other.ID), ErrSameFloor)
	assert.IsType(t, AwaitingChoice{}, d.State(), "rejection leaves the choice pending")
}

func TestResolveContinueRejectsTerminalPOI(t *testing.T) {
	m, screen, _, liftDown, _, toilet := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err := d.ClickPoint(liftDown.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, d.ResolveContinue(toilet.ID), ErrNotAConnector)
}

// ── Cancel ──

func TestCancelRestoresVisibility(t *testing.T) {
	m, screen, cafe, liftDown, _, _ := mallModel(t)
	shown, err := m.PutPath(screen.ID, cafe.ID,
		[]floorplan.Segment{{FloorID: screen.FloorID, Points: []floorplan.Coord{{X: 1, Y: 1}}}}, true)
	require.NoError(t, err)
	hidden, err := m.PutPath(screen.ID, liftDown.ID,
		[]floorplan.Segment{{FloorID: screen.FloorID, Points: []floorplan.Coord{{X: 2, Y: 2}}}}, true)
	require.NoError(t, err)
	require.NoError(t, m.SetPathVisible(hidden.ID, false))

	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	require.NoError(t, d.AddBend(screen.FloorID, 40, 60))
	d.Cancel()

	assert.IsType(t, Idle{}, d.State())
	assert.Len(t, m.Paths(), 2, "cancel must not touch the stored path set")
	assert.True(t, m.Path(shown.ID).Visible)
	assert.False(t, m.Path(hidden.ID).Visible)
}

func TestCancelWhileAwaitingChoice(t *testing.T) {
	m, screen, _, liftDown, _, _ := mallModel(t)
	d := New(m)
	require.NoError(t, d.Start(screen.ID))
	_, _, err := d.ClickPoint(liftDown.ID)
	require.NoError(t, err)

	d.Cancel()
	assert.IsType(t, Idle{}, d.State())
	assert.Empty(t, m.Paths())
}

func TestCancelWhenIdleIsNoop(t *testing.T) {
	m, _, _, _, _, _ := mallModel(t)
	d := New(m)
	d.Cancel()
	assert.IsType(t, Idle{}, d.State())
}

// ── Redraw semantics ──

func TestFinishOverwritesExistingPair(t *testing.T) {
	m, screen, cafe, _, _, _ := mallModel(t)
	d := New(m)

	require.NoError(t, d.Start(screen.ID))
	_, first, err := d.ClickPoint(cafe.ID)
	require.NoError(t, err)

	require.NoError(t, d.Start(screen.ID))
	require.NoError(t, d.AddBend(screen.FloorID, 30, 30))
	_, second, err := d.ClickPoint(cafe.ID)
	require.NoError(t, err)

	assert.Len(t, m.Paths(), 1)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, m.Paths()[0].Segments[0].Points, 3)
}
