// Package sqlite provides a catalog backed by a SQLite items table
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

//go:embed schema.sql
var schema string

// Catalog reads item records from SQLite. It implements compendium.IndexedCatalog
// so name lookups use the NOCASE index instead of a full scan.
type Catalog struct {
	name  string
	sqlDB *sql.DB
}

// Open opens (or creates) a catalog database and applies the schema
func Open(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("catalog path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath
	if cleanPath != ":memory:" {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if cleanPath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}

	c := &Catalog{
		name:  strings.TrimSuffix(filepath.Base(cleanPath), filepath.Ext(cleanPath)),
		sqlDB: sqlDB,
	}
	if err := c.Migrate(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the SQLite handle
func (c *Catalog) Close() error {
	if c == nil || c.sqlDB == nil {
		return nil
	}
	return c.sqlDB.Close()
}

// Migrate creates the items table if needed
func (c *Catalog) Migrate(ctx context.Context) error {
	if _, err := c.sqlDB.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "apply catalog schema")
	}
	return nil
}

// Insert stores item records. An existing ID is an AlreadyExists error.
func (c *Catalog) Insert(ctx context.Context, items ...*actor.Item) error {
	tx, err := c.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin insert")
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		if item == nil || item.ID == "" {
			return errors.InvalidArgument("catalog records need an id")
		}
		data, err := json.Marshal(item)
		if err != nil {
			return errors.Wrapf(err, "failed to encode record %s", item.ID)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (id, name, type, data) VALUES (?, ?, ?, ?)`,
			item.ID, item.Name, item.Type, string(data))
		if err != nil {
			if isUniqueViolation(err) {
				return errors.AlreadyExistsf("record %s already exists", item.ID)
			}
			return errors.Wrapf(err, "failed to insert record %s", item.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit insert")
	}
	return nil
}

// Name implements compendium.Catalog
func (c *Catalog) Name() string {
	return c.name
}

// GetIndex implements compendium.Catalog
func (c *Catalog) GetIndex(ctx context.Context, _ []string) ([]compendium.IndexEntry, error) {
	rows, err := c.sqlDB.QueryContext(ctx, `SELECT id, name, type FROM items ORDER BY rowid`)
	if err != nil {
		return nil, errors.Wrap(err, "query index")
	}
	defer func() { _ = rows.Close() }()

	var out []compendium.IndexEntry
	for rows.Next() {
		var e compendium.IndexEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Type); err != nil {
			return nil, errors.Wrap(err, "scan index row")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate index")
	}
	return out, nil
}

// Lookup implements compendium.IndexedCatalog
func (c *Catalog) Lookup(ctx context.Context, name, itemType string) (*compendium.IndexEntry, error) {
	query := `SELECT id, name, type FROM items WHERE name = ? COLLATE NOCASE`
	args := []any{name}
	if itemType != "" {
		query += ` AND type = ?`
		args = append(args, itemType)
	}
	query += ` ORDER BY rowid LIMIT 1`

	var e compendium.IndexEntry
	err := c.sqlDB.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.Name, &e.Type)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "lookup record")
	}
	return &e, nil
}

// GetDocument implements compendium.Catalog
func (c *Catalog) GetDocument(ctx context.Context, id string) (*actor.Item, error) {
	var data string
	err := c.sqlDB.QueryRowContext(ctx, `SELECT data FROM items WHERE id = ?`, id).Scan(&data)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("record %s not found in catalog %s", id, c.name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load record %s", id)
	}

	var item actor.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, errors.Malformed(err, "catalog record "+id)
	}
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ compendium.IndexedCatalog = (*Catalog)(nil)
