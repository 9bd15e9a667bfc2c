package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/msgprep/pkg/msgprep"

	_ "modernc.org/sqlite"
)

const (
	sqliteDriver = "sqlite"

	querySQLiteRelationExists = "SELECT count(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?"

	// ctxCheckInterval is how many rows are written between context checks.
	ctxCheckInterval = 1024
)

// SQLiteStore writes relations into a SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger msgprep.Logger
}

// OpenSQLite opens (creating if absent) the SQLite database at path.
// A path whose directory does not exist, or that names a directory, fails with msgprep.ErrIO.
func OpenSQLite(ctx context.Context, path string, logger msgprep.Logger) (*SQLiteStore, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if path == "" {
		return nil, fmt.Errorf("database path is required: %w", msgprep.ErrInvalidConfig)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("database path %q is a directory: %w", path, msgprep.ErrIO)
	}
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil {
		return nil, ioError(fmt.Sprintf("database directory %q", dir), err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("database directory %q is not a directory: %w", dir, msgprep.ErrIO)
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, ioError(fmt.Sprintf("open database %q", path), err)
	}
	// One connection keeps the transaction and the file lock on the same handle.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, ioError(fmt.Sprintf("open database %q", path), err)
	}

	logger.Verbose("Opened SQLite database %s", path)
	return &SQLiteStore{db: db, path: path, logger: logger}, nil
}

// Save replaces relation with the content of table in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, table *msgprep.Table, relation string) (err error) {
	if err := validateSave(table, relation); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ioError("begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, sqliteDialect.dropTable(relation)); err != nil {
		return ioError(fmt.Sprintf("drop relation %q", relation), err)
	}
	if _, err = tx.ExecContext(ctx, sqliteDialect.createTable(relation, table.Columns)); err != nil {
		return ioError(fmt.Sprintf("create relation %q", relation), err)
	}

	if err = s.insertRows(ctx, tx, table, relation); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return ioError("commit", err)
	}

	s.logger.Verbose("Replaced relation %q in %s with %d rows", relation, s.path, table.Len())
	return nil
}

func (s *SQLiteStore) insertRows(ctx context.Context, tx *sql.Tx, table *msgprep.Table, relation string) error {
	stmt, err := tx.PrepareContext(ctx, sqliteDialect.insertRow(relation, table.Columns))
	if err != nil {
		return ioError(fmt.Sprintf("prepare insert into %q", relation), err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return ioError(fmt.Sprintf("insert row %d into %q", i, relation), err)
		}
	}
	return nil
}

// Read returns the full content of relation.
func (s *SQLiteStore) Read(ctx context.Context, relation string) (*msgprep.Table, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, querySQLiteRelationExists, relation).Scan(&count); err != nil {
		return nil, ioError("check relation", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%q in %s: %w", relation, s.path, msgprep.ErrRelationNotFound)
	}

	rows, err := s.db.QueryContext(ctx, sqliteDialect.selectAll(relation))
	if err != nil {
		return nil, ioError(fmt.Sprintf("query relation %q", relation), err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, ioError("read column types", err)
	}

	table := &msgprep.Table{Columns: make([]msgprep.Column, len(types))}
	for i, ct := range types {
		table.Columns[i] = msgprep.Column{Name: ct.Name(), Kind: sqliteKind(ct.DatabaseTypeName())}
	}

	for rows.Next() {
		values := make([]any, len(types))
		dest := make([]any, len(types))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, ioError("scan row", err)
		}
		row := make(msgprep.Row, len(values))
		for i, v := range values {
			row[i] = normalizeValue(v)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError(fmt.Sprintf("read relation %q", relation), err)
	}

	return table, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// sqliteKind maps a declared column type to a Kind using SQLite's affinity rules.
func sqliteKind(declared string) msgprep.Kind {
	t := strings.ToUpper(declared)
	switch {
	case strings.Contains(t, "INT"):
		return msgprep.KindInteger
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return msgprep.KindText
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return msgprep.KindReal
	default:
		return msgprep.KindText
	}
}

var _ msgprep.Store = (*SQLiteStore)(nil)
