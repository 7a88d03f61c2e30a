package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstream/wayfind/pkg/floorplan"
)

// recordingStore captures Save calls so debounce behavior is observable.
type recordingStore struct {
	mu    sync.Mutex
	saves []*floorplan.Document
	fail  error
}

func (r *recordingStore) Load(context.Context, string) (*floorplan.Document, error) {
	return nil, ErrNotFound
}

func (r *recordingStore) Save(_ context.Context, _, _ string, doc *floorplan.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.saves = append(r.saves, doc)
	return nil
}

func (r *recordingStore) List(context.Context) ([]SystemInfo, error) { return nil, nil }
func (r *recordingStore) Close() error                               { return nil }

func (r *recordingStore) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *recordingStore) last() *floorplan.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func docWithFloors(n int) *floorplan.Document {
	m := floorplan.NewModel()
	for i := 0; i < n; i++ {
		m.AddFloor("F", "")
	}
	return m.Document()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestTriggerCollapsesBursts(t *testing.T) {
	rec := &recordingStore{}
	a := NewAutosaver(rec, "sys", "Sys", 50*time.Millisecond, nil)
	defer a.Stop()

	// Three edits inside one quiet period produce a single write of the
	// latest snapshot.
	a.Trigger(docWithFloors(1))
	a.Trigger(docWithFloors(2))
	a.Trigger(docWithFloors(3))

	waitFor(t, func() bool { return rec.count() > 0 })
	assert.Equal(t, 1, rec.count())
	require.NotNil(t, rec.last())
	assert.Len(t, rec.last().Floors, 3)
}

func TestTriggerAfterQuietWritesAgain(t *testing.T) {
	rec := &recordingStore{}
	a := NewAutosaver(rec, "sys", "Sys", 20*time.Millisecond, nil)
	defer a.Stop()

	a.Trigger(docWithFloors(1))
	waitFor(t, func() bool { return rec.count() == 1 })

	a.Trigger(docWithFloors(2))
	waitFor(t, func() bool { return rec.count() == 2 })
	assert.Len(t, rec.last().Floors, 2)
}

func TestFlushWritesPendingImmediately(t *testing.T) {
	rec := &recordingStore{}
	a := NewAutosaver(rec, "sys", "Sys", time.Hour, nil)
	defer a.Stop()

	a.Trigger(docWithFloors(2))
	a.Flush()
	assert.Equal(t, 1, rec.count())
	assert.Len(t, rec.last().Floors, 2)

	// Nothing pending afterwards.
	a.Flush()
	assert.Equal(t, 1, rec.count())
}

func TestStopDropsPending(t *testing.T) {
	rec := &recordingStore{}
	a := NewAutosaver(rec, "sys", "Sys", 20*time.Millisecond, nil)

	a.Trigger(docWithFloors(1))
	a.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestOnResultReportsFailure(t *testing.T) {
	rec := &recordingStore{fail: errors.New("disk full")}
	results := make(chan error, 1)
	a := NewAutosaver(rec, "sys", "Sys", time.Hour, func(err error) { results <- err })
	defer a.Stop()

	a.Trigger(docWithFloors(1))
	a.Flush()

	select {
	case err := <-results:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("onResult was not called")
	}
}

func TestOnResultReportsSuccess(t *testing.T) {
	rec := &recordingStore{}
	results := make(chan error, 1)
	a := NewAutosaver(rec, "sys", "Sys", time.Hour, func(err error) { results <- err })
	defer a.Stop()

	a.Trigger(docWithFloors(1))
	a.Flush()

	select {
	case err := <-results:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("onResult was not called")
	}
}
