// Package lr1catalog is a read-only, sqlite-backed store of named example
// grammars: a small external collaborator that lets a CLI or HTTP facade
// look a grammar up by name instead of every caller carrying its own copy
// of the grammar text on disk. It is not part of the core lr1kit build:
// nothing in internal/lr1 imports it, and it never stores compiled
// automatons or tables, only the grammar source text a caller then feeds
// through lr1kit.BuildGrammar itself.
package lr1catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
)

// ErrNotFound is returned when a named grammar does not exist in the
// catalog.
var ErrNotFound = errors.New("grammar not found in catalog")

// Entry is one named grammar on record.
type Entry struct {
	Name string
	Text string
}

// Catalog is a read-only handle onto a catalog database file.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if necessary) the catalog database at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapDBError(err)
	}
	c := &Catalog{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) init() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS grammars (
		name TEXT NOT NULL PRIMARY KEY,
		body TEXT NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

// Close closes the underlying database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put records or replaces the grammar text under name. Put exists so a
// catalog can be seeded (by a setup script, not by lr1kit's core); normal
// lr1kit operation only ever reads from a Catalog.
func (c *Catalog) Put(ctx context.Context, name, text string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO grammars (name, body) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET body = excluded.body;`,
		name, text)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

// Get returns the grammar text recorded under name.
func (c *Catalog) Get(ctx context.Context, name string) (Entry, error) {
	row := c.db.QueryRowContext(ctx, `SELECT name, body FROM grammars WHERE name = ?;`, name)
	var e Entry
	if err := row.Scan(&e.Name, &e.Text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, wrapDBError(err)
	}
	return e, nil
}

// List returns every grammar name on record, alphabetically.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name FROM grammars ORDER BY name;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapDBError(err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("catalog: %s", sqlite.ErrorCodeString[sqliteErr.Code()])
	}
	return fmt.Errorf("catalog: %w", err)
}
