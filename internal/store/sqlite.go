package store

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"

	"github.com/openstream/wayfind/internal/logging"
	"github.com/openstream/wayfind/pkg/floorplan"
)

// SQLiteStore keeps one JSON document per wayfinding system, mirroring
// the upstream storage shape (name + data blob + updated_at).
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS wayfinding (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	data       JSON NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// OpenSQLite opens (and migrates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set pragmas")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate database")
	}
	logging.L.Named("store").Infow("opened database", "path", path)
	return &SQLiteStore{db: db}, nil
}

// Load fetches and validates the document for a system.
func (s *SQLiteStore) Load(ctx context.Context, systemID string) (*floorplan.Document, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM wayfinding WHERE id = ?`, systemID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "%s", systemID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load system %s", systemID)
	}
	doc, err := floorplan.ParseDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "system %s", systemID)
	}
	return doc, nil
}

// Save upserts the document for a system, bumping updated_at.
func (s *SQLiteStore) Save(ctx context.Context, systemID, name string, doc *floorplan.Document) error {
	data, err := floorplan.Encode(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wayfinding (id, name, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		systemID, name, data)
	if err != nil {
		return errors.Wrapf(err, "save system %s", systemID)
	}
	return nil
}

// List returns all stored systems, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]SystemInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, updated_at FROM wayfinding ORDER BY updated_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list systems")
	}
	defer rows.Close()

	var out []SystemInfo
	for rows.Next() {
		var info SystemInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "scan system row")
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
