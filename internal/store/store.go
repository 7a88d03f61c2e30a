// Package store is the persistence boundary for wayfinding documents:
// one JSON document per named system, stored in sqlite, written through
// a debounced autosaver so bursts of edits collapse into one write.
package store

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/openstream/wayfind/pkg/floorplan"
)

// ErrNotFound is returned when a system id has no stored document.
var ErrNotFound = errors.New("wayfinding system not found")

// SystemInfo is a row of the system listing.
type SystemInfo struct {
	ID        string
	Name      string
	UpdatedAt time.Time
}

// Store loads and saves wayfinding documents. Writes are last-write-wins:
// there is no merge or optimistic-concurrency discipline beyond the
// autosave debounce.
type Store interface {
	Load(ctx context.Context, systemID string) (*floorplan.Document, error)
	Save(ctx context.Context, systemID, name string, doc *floorplan.Document) error
	List(ctx context.Context) ([]SystemInfo, error)
	Close() error
}
