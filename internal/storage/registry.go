package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// DiagramInfo is one registry row.
type DiagramInfo struct {
	ID        string
	Name      string
	Path      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Registry tracks known diagram files in a sqlite database. At most one
// diagram is active at a time; commands without an explicit target
// operate on the active one.
type Registry struct {
	db   *sql.DB
	path string
}

// NewRegistry opens (creating if needed) the registry database.
func NewRegistry(dbPath string) (*Registry, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	r := &Registry{db: db, path: dbPath}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *Registry) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS diagrams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		path TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_diagrams_active ON diagrams(active);
	CREATE INDEX IF NOT EXISTS idx_diagrams_updated ON diagrams(updated_at DESC);
	`
	_, err := r.db.Exec(schema)
	return err
}

// Close releases the database.
func (r *Registry) Close() error {
	if r.db == nil {
		return ErrClosed
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// Register records a new diagram. Registering an existing name returns
// the stored row untouched.
func (r *Registry) Register(ctx context.Context, name, path string) (DiagramInfo, error) {
	if existing, err := r.Get(ctx, name); err == nil {
		return existing, nil
	} else if !IsNotFound(err) {
		return DiagramInfo{}, err
	}

	now := time.Now().UTC()
	info := DiagramInfo{
		ID:        ulid.Make().String(),
		Name:      name,
		Path:      path,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO diagrams (id, name, path, active, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)
	`, info.ID, info.Name, info.Path, info.CreatedAt, info.UpdatedAt)
	if err != nil {
		return DiagramInfo{}, fmt.Errorf("register diagram: %w", err)
	}
	return info, nil
}

// Get returns the row for a named diagram.
func (r *Registry) Get(ctx context.Context, name string) (DiagramInfo, error) {
	var info DiagramInfo
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, path, active, created_at, updated_at
		FROM diagrams WHERE name = ?
	`, name).Scan(&info.ID, &info.Name, &info.Path, &info.Active, &info.CreatedAt, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return DiagramInfo{}, ErrNotFound
	}
	if err != nil {
		return DiagramInfo{}, err
	}
	return info, nil
}

// List returns all diagrams, most recently updated first.
func (r *Registry) List(ctx context.Context) ([]DiagramInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, path, active, created_at, updated_at
		FROM diagrams ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DiagramInfo
	for rows.Next() {
		var info DiagramInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Path, &info.Active, &info.CreatedAt, &info.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// SetActive marks one diagram active and all others inactive.
func (r *Registry) SetActive(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE diagrams SET active = 0 WHERE active = 1`); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE diagrams SET active = 1, updated_at = ? WHERE name = ?`,
		time.Now().UTC(), name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// Active returns the currently active diagram, or ErrNotFound when no
// diagram is active.
func (r *Registry) Active(ctx context.Context) (DiagramInfo, error) {
	var info DiagramInfo
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, path, active, created_at, updated_at
		FROM diagrams WHERE active = 1
	`).Scan(&info.ID, &info.Name, &info.Path, &info.Active, &info.CreatedAt, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return DiagramInfo{}, ErrNotFound
	}
	if err != nil {
		return DiagramInfo{}, err
	}
	return info, nil
}

// Touch bumps a diagram's updated_at after a save.
func (r *Registry) Touch(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE diagrams SET updated_at = ? WHERE name = ?`,
		time.Now().UTC(), name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove drops a diagram from the registry. The file on disk is left
// alone.
func (r *Registry) Remove(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diagrams WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Scan walks the diagrams directory and registers any json file the
// registry does not know yet. Returns the names newly registered.
func (r *Registry) Scan(ctx context.Context, dir string) ([]string, error) {
	fsys := os.DirFS(dir)

	var added []string
	err := doublestar.GlobWalk(fsys, "**/*.json", func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		if _, err := r.Get(ctx, name); err == nil {
			return nil
		} else if !IsNotFound(err) {
			return err
		}
		if _, err := r.Register(ctx, name, filepath.Join(dir, path)); err != nil {
			return err
		}
		added = append(added, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return added, nil
}
