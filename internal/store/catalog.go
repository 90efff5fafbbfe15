// Package store persists user-defined themes in a local SQLite catalog so
// they survive between runs and can be registered alongside the presets.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	perrors "paper/internal/errors"
	"paper/internal/theme"
)

const schema = `
	CREATE TABLE IF NOT EXISTS themes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		dark INTEGER NOT NULL DEFAULT 0,
		version INTEGER NOT NULL,
		document TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
`

// Entry describes one saved theme without decoding it.
type Entry struct {
	ID        string
	Name      string
	Dark      bool
	Version   theme.Version
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Catalog is a SQLite-backed collection of named themes. Each call opens and
// closes its own connection, so a Catalog is safe to share.
type Catalog struct {
	path string
	dsn  string
	now  func() time.Time
}

// Open prepares the catalog at path, creating the file and schema on first use.
func Open(ctx context.Context, path string) (*Catalog, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, perrors.New(perrors.CodeCatalogFailed, "catalog path is required", nil)
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("create catalog dir: %v", err), err)
	}
	c := &Catalog{
		path: trimmed,
		dsn:  buildCatalogDSN(trimmed),
		now:  func() time.Time { return time.Now().UTC() },
	}
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("create catalog schema: %v", err), err)
	}
	return c, nil
}

// Path returns the database file location.
func (c *Catalog) Path() string {
	return c.path
}

// buildCatalogDSN creates a read-write WAL DSN for the given path.
func buildCatalogDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Catalog) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", c.dsn)
	if err != nil {
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("open catalog: %v", err), err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("ping catalog: %v", err), err)
	}
	return db, nil
}

// Save inserts th, or replaces the stored theme with the same name. The row
// keeps its id and creation time across replacements.
func (c *Catalog) Save(ctx context.Context, th *theme.Theme) (Entry, error) {
	if th == nil || strings.TrimSpace(th.Name) == "" {
		return Entry{}, perrors.New(perrors.CodeInvalidTheme, "theme name is required", nil)
	}
	if err := th.Validate(); err != nil {
		return Entry{}, err
	}
	doc, err := json.Marshal(th)
	if err != nil {
		return Entry{}, perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("encode theme %q: %v", th.Name, err), err)
	}

	db, err := c.openDB(ctx)
	if err != nil {
		return Entry{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	now := c.now()
	entry := Entry{
		ID:        uuid.NewString(),
		Name:      th.Name,
		Dark:      th.Dark,
		Version:   th.Version,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO themes (id, name, dark, version, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			dark = excluded.dark,
			version = excluded.version,
			document = excluded.document,
			updated_at = excluded.updated_at
	`, entry.ID, entry.Name, boolInt(entry.Dark), int(entry.Version), string(doc),
		formatTime(now), formatTime(now))
	if err != nil {
		return Entry{}, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("save theme %q: %v", th.Name, err), err)
	}

	// Re-read so replacements report the original id and creation time.
	row := db.QueryRowContext(ctx, `
		SELECT id, name, dark, version, created_at, updated_at
		FROM themes WHERE name = ?
	`, th.Name)
	return scanEntry(row)
}

// Get decodes the named theme.
func (c *Catalog) Get(ctx context.Context, name string) (*theme.Theme, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	var doc string
	err = db.QueryRowContext(ctx, `SELECT document FROM themes WHERE name = ?`, name).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, perrors.New(perrors.CodeNotFound, fmt.Sprintf("theme %q is not in the catalog", name), err)
	}
	if err != nil {
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("load theme %q: %v", name, err), err)
	}
	var th theme.Theme
	if err := json.Unmarshal([]byte(doc), &th); err != nil {
		return nil, err
	}
	return &th, nil
}

// List returns every entry ordered by name.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, dark, version, created_at, updated_at
		FROM themes
		ORDER BY name
	`)
	if err != nil {
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("list themes: %v", err), err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("list themes: %v", err), err)
	}
	return entries, nil
}

// Delete removes the named theme. Deleting a missing theme is CodeNotFound.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	res, err := db.ExecContext(ctx, `DELETE FROM themes WHERE name = ?`, name)
	if err != nil {
		return perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("delete theme %q: %v", name, err), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("delete theme %q: %v", name, err), err)
	}
	if n == 0 {
		return perrors.New(perrors.CodeNotFound, fmt.Sprintf("theme %q is not in the catalog", name), nil)
	}
	return nil
}

// LoadInto registers every catalog theme in reg and returns how many were
// added. A stored theme replaces a registered one with the same name.
func (c *Catalog) LoadInto(ctx context.Context, reg *theme.Registry) (int, error) {
	entries, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	for i, entry := range entries {
		th, err := c.Get(ctx, entry.Name)
		if err != nil {
			return i, err
		}
		if err := reg.Register(th); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		entry            Entry
		dark, version    int
		created, updated string
	)
	if err := s.Scan(&entry.ID, &entry.Name, &dark, &version, &created, &updated); err != nil {
		return Entry{}, perrors.New(perrors.CodeCatalogFailed, fmt.Sprintf("scan theme entry: %v", err), err)
	}
	entry.Dark = dark != 0
	entry.Version = theme.Version(version)
	entry.CreatedAt = parseTime(created)
	entry.UpdatedAt = parseTime(updated)
	return entry, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
