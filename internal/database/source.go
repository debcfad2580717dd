package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/zhipistat/internal/table"
)

// DefaultTable is the table read when none is named.
const DefaultTable = "comments"

// ErrTableNotFound is returned when the requested table does not exist.
var ErrTableNotFound = errors.New("table not found")

// Source is a read-only SQLite database holding comment tables.
type Source struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// path is the database file.
	path string
}

// Options configures how a Source is opened.
type Options struct {
	// BusyTimeout is how long SQLite waits on a locked file.
	BusyTimeout time.Duration
}

// DefaultOptions returns the default source options.
func DefaultOptions() Options {
	return Options{
		BusyTimeout: 5 * time.Second,
	}
}

// Open opens the database file at path read-only. The file must exist.
func Open(path string, opts Options) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to check database path: %w", err)
	}

	// The file: prefix makes SQLite honour mode=ro instead of the driver
	// stripping the query string.
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(%d)", path, opts.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Source{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

// Tables lists the user tables in the database, sorted by name.
func (s *Source) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ReadTable loads every row of the named table.
func (s *Source) ReadTable(ctx context.Context, name string) (*table.Table, error) {
	names, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, n := range names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q in %s", ErrTableNotFound, name, s.path)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name)) //nolint:gosec // name checked against sqlite_master
	if err != nil {
		return nil, fmt.Errorf("failed to query table %q: %w", name, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	cells := make([][]table.Value, len(header))
	raw := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range raw {
		ptrs[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range raw {
			cells[i] = append(cells[i], toValue(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	columns := make([]*table.Column, len(header))
	for i, h := range header {
		columns[i] = table.NewColumn(h, cells[i])
	}
	return table.New(s.path, columns...)
}

// Load opens path, reads one table and closes the database.
// An empty name reads DefaultTable.
func Load(ctx context.Context, path, name string) (*table.Table, error) {
	if name == "" {
		name = DefaultTable
	}

	src, err := Open(path, DefaultOptions())
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return src.ReadTable(ctx, name)
}

// toValue converts a driver value to a cell.
func toValue(v any) table.Value {
	switch x := v.(type) {
	case nil:
		return table.Missing()
	case int64:
		return table.Number(float64(x))
	case float64:
		return table.Number(x)
	case bool:
		return table.Bool(x)
	case []byte:
		return table.String(string(x))
	case string:
		return table.String(x)
	case time.Time:
		return table.String(x.Format(time.RFC3339))
	default:
		return table.String(fmt.Sprint(x))
	}
}

// quoteIdent quotes an SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
