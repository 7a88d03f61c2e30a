package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstream/wayfind/pkg/floorplan"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "wayfind.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleDoc(t *testing.T) *floorplan.Document {
	t.Helper()
	m := floorplan.NewModel()
	f := m.AddFloor("Ground", "plans/ground.png")
	s, err := m.AddScreen(f.ID, 10, 90, "Kiosk")
	require.NoError(t, err)
	p, err := m.AddPOI(f.ID, 80, 20, "Cafe", "cafe")
	require.NoError(t, err)
	_, err = m.PutPath(s.ID, p.ID, []floorplan.Segment{
		{FloorID: f.ID, Points: []floorplan.Coord{{X: 10, Y: 90}, {X: 80, Y: 20}}},
	}, true)
	require.NoError(t, err)
	return m.Document()
}

func TestLoadMissingSystem(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveThenLoad(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	doc := sampleDoc(t)

	require.NoError(t, st.Save(ctx, "mall-west", "Westfield Mall", doc))

	got, err := st.Load(ctx, "mall-west")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSaveUpserts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "mall-west", "v1", sampleDoc(t)))

	doc2 := sampleDoc(t)
	doc2.Floors[0].Name = "Ground (renamed)"
	require.NoError(t, st.Save(ctx, "mall-west", "v2", doc2))

	got, err := st.Load(ctx, "mall-west")
	require.NoError(t, err)
	assert.Equal(t, "Ground (renamed)", got.Floors[0].Name)

	infos, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1, "upsert must not create a second row")
	assert.Equal(t, "v2", infos[0].Name)
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO wayfinding (id, name, data) VALUES ('bad', 'Bad', '{"floors":{}}')`)
	require.NoError(t, err)

	_, err = st.Load(ctx, "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, floorplan.ErrInvalidDocument)
}

func TestListOrdersByUpdate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, "a", "A", sampleDoc(t)))
	require.NoError(t, st.Save(ctx, "b", "B", sampleDoc(t)))

	infos, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	ids := []string{infos[0].ID, infos[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
	assert.False(t, infos[0].UpdatedAt.Before(infos[1].UpdatedAt))
}
