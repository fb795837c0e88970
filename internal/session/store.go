// Package session persists per-application window geometry across runs,
// keyed by app ID, so windows reopen where the user left them.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite
	"github.com/rs/zerolog"

	"github.com/slatewm/slate/internal/geometry"
)

// ErrNotFound is returned when no geometry is stored for an app ID.
var ErrNotFound = errors.New("session: no stored geometry")

const schema = `
CREATE TABLE IF NOT EXISTS window_geometry (
	app_id     TEXT PRIMARY KEY,
	x          INTEGER NOT NULL,
	y          INTEGER NOT NULL,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	maximized  INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Geometry is one stored window placement.
type Geometry struct {
	Frame     geometry.Rect
	Maximized bool
}

// Store is the sqlite-backed geometry store.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the store at dbPath.
func Open(dbPath string, log zerolog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("session: database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("session: failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("session: failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("session: failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("session: failed to initialize schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// OpenInMemory opens a throwaway in-memory store, used by tests and the
// demo binary.
func OpenInMemory(log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("session: failed to open in-memory database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		closeQuietly(db, log)
		return nil, fmt.Errorf("session: failed to initialize schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the geometry for appID.
func (s *Store) Save(ctx context.Context, appID string, g Geometry) error {
	if appID == "" {
		return fmt.Errorf("session: app ID cannot be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO window_geometry (app_id, x, y, width, height, maximized, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(app_id) DO UPDATE SET
			x = excluded.x,
			y = excluded.y,
			width = excluded.width,
			height = excluded.height,
			maximized = excluded.maximized,
			updated_at = CURRENT_TIMESTAMP`,
		appID, g.Frame.X, g.Frame.Y, g.Frame.Width, g.Frame.Height, boolToInt(g.Maximized),
	)
	if err != nil {
		return fmt.Errorf("session: failed to save geometry for %s: %w", appID, err)
	}
	s.log.Debug().Str("app_id", appID).
		Int("x", g.Frame.X).Int("y", g.Frame.Y).
		Int("width", g.Frame.Width).Int("height", g.Frame.Height).
		Msg("saved window geometry")
	return nil
}

// Load returns the stored geometry for appID, or ErrNotFound.
func (s *Store) Load(ctx context.Context, appID string) (Geometry, error) {
	var g Geometry
	var maximized int
	err := s.db.QueryRowContext(ctx, `
		SELECT x, y, width, height, maximized
		FROM window_geometry WHERE app_id = ?`, appID,
	).Scan(&g.Frame.X, &g.Frame.Y, &g.Frame.Width, &g.Frame.Height, &maximized)
	if errors.Is(err, sql.ErrNoRows) {
		return Geometry{}, ErrNotFound
	}
	if err != nil {
		return Geometry{}, fmt.Errorf("session: failed to load geometry for %s: %w", appID, err)
	}
	g.Maximized = maximized != 0
	return g, nil
}

// Forget removes the stored geometry for appID. Forgetting an unknown ID
// is not an error.
func (s *Store) Forget(ctx context.Context, appID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM window_geometry WHERE app_id = ?`, appID); err != nil {
		return fmt.Errorf("session: failed to forget geometry for %s: %w", appID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func closeQuietly(db *sql.DB, log zerolog.Logger) {
	if err := db.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}
