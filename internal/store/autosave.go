package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/openstream/wayfind/internal/logging"
	"github.com/openstream/wayfind/pkg/floorplan"
)

// Autosaver debounces document writes: each Trigger snapshots the
// exported document and (re)arms a quiet-period timer; a newer trigger
// simply supersedes an older pending snapshot before it fires. Failed
// saves are reported once through the callback and never retried; the
// next edit re-arms the debounce.
type Autosaver struct {
	quiet    time.Duration
	store    Store
	systemID string
	name     string
	onResult func(error) // called with nil on success
	log      *zap.SugaredLogger

	mu      sync.Mutex
	timer   *time.Timer
	pending *floorplan.Document
}

// NewAutosaver builds an autosaver for one system. onResult may be nil.
func NewAutosaver(st Store, systemID, name string, quiet time.Duration, onResult func(error)) *Autosaver {
	if onResult == nil {
		onResult = func(error) {}
	}
	return &Autosaver{
		quiet:    quiet,
		store:    st,
		systemID: systemID,
		name:     name,
		onResult: onResult,
		log:      logging.L.Named("autosave"),
	}
}

// Trigger schedules a write of doc after the quiet period. The document
// must be a snapshot the caller will not mutate (floorplan.Model.Document
// returns exactly that).
func (a *Autosaver) Trigger(doc *floorplan.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = doc
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.quiet, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()
	if doc == nil {
		return
	}
	a.write(doc)
}

// Flush writes any pending snapshot immediately. Called on shutdown.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()
	if doc != nil {
		a.write(doc)
	}
}

// Stop drops any pending write without saving.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.pending = nil
}

func (a *Autosaver) write(doc *floorplan.Document) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.store.Save(ctx, a.systemID, a.name, doc)
	if err != nil {
		a.log.Warnw("autosave failed", "system", a.systemID, "err", err)
	} else {
		a.log.Debugw("autosaved", "system", a.systemID)
	}
	a.onResult(err)
}
