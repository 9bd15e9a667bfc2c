package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

const queryPostgresRelationExists = "SELECT to_regclass($1) IS NOT NULL"

// PostgresStore writes relations into a PostgreSQL database.
type PostgresStore struct {
	pool   *pgxpool.Pool
	target string
	logger msgprep.Logger
}

// OpenPostgres connects to the PostgreSQL server named by connString.
// The pool holds a single connection; a failed connection attempt is msgprep.ErrIO.
func OpenPostgres(ctx context.Context, connString string, logger msgprep.Logger) (*PostgresStore, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid PostgreSQL URL: %v: %w", err, msgprep.ErrInvalidConfig)
	}
	cfg.MaxConns = 1
	cfg.MinConns = 0

	host := cfg.ConnConfig.Host
	port := int(cfg.ConnConfig.Port)
	database := cfg.ConnConfig.Database

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wrapConnectionError(err, host, port, database), msgprep.ErrIO)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", wrapConnectionError(err, host, port, database), msgprep.ErrIO)
	}

	target := fmt.Sprintf("%s:%d/%s", host, port, database)
	logger.Verbose("Connected to PostgreSQL at %s", target)
	return &PostgresStore{pool: pool, target: target, logger: logger}, nil
}

// Save replaces relation with the content of table in a single transaction.
// Rows are written with the COPY protocol.
func (s *PostgresStore) Save(ctx context.Context, table *msgprep.Table, relation string) error {
	if err := validateSave(table, relation); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ioError("begin transaction", err)
	}
	defer func() {
		// No-op once committed.
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, postgresDialect.dropTable(relation)); err != nil {
		return ioError(fmt.Sprintf("drop relation %q", relation), err)
	}
	if _, err := tx.Exec(ctx, postgresDialect.createTable(relation, table.Columns)); err != nil {
		return ioError(fmt.Sprintf("create relation %q", relation), err)
	}

	rows := make([][]any, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = []any(row)
	}
	copied, err := tx.CopyFrom(ctx, pgx.Identifier{relation}, table.ColumnNames(), pgx.CopyFromRows(rows))
	if err != nil {
		return ioError(fmt.Sprintf("copy rows into %q", relation), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return ioError("commit", err)
	}

	s.logger.Verbose("Replaced relation %q on %s with %d rows", relation, s.target, copied)
	return nil
}

// Read returns the full content of relation.
func (s *PostgresStore) Read(ctx context.Context, relation string) (*msgprep.Table, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryPostgresRelationExists, quoteIdent(relation)).Scan(&exists); err != nil {
		return nil, ioError("check relation", err)
	}
	if !exists {
		return nil, fmt.Errorf("%q on %s: %w", relation, s.target, msgprep.ErrRelationNotFound)
	}

	rows, err := s.pool.Query(ctx, postgresDialect.selectAll(relation))
	if err != nil {
		return nil, ioError(fmt.Sprintf("query relation %q", relation), err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	table := &msgprep.Table{Columns: make([]msgprep.Column, len(fields))}
	for i, fd := range fields {
		table.Columns[i] = msgprep.Column{Name: fd.Name, Kind: postgresKind(fd.DataTypeOID)}
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, ioError("decode row", err)
		}
		row := make(msgprep.Row, len(values))
		for i, v := range values {
			row[i] = normalizePostgresValue(v)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError(fmt.Sprintf("read relation %q", relation), err)
	}

	return table, nil
}

// Close returns the pooled connection.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func postgresKind(oid uint32) msgprep.Kind {
	switch oid {
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID:
		return msgprep.KindInteger
	case pgtype.Float4OID, pgtype.Float8OID, pgtype.NumericOID:
		return msgprep.KindReal
	default:
		return msgprep.KindText
	}
}

func normalizePostgresValue(v any) msgprep.Value {
	if n, ok := v.(pgtype.Numeric); ok {
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	}
	return normalizeValue(v)
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
func wrapConnectionError(err error, host string, port int, database string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port

Original error: %w`, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`cannot resolve host "%s"

Original error: %w`, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed for database "%s"

Possible causes:
  - Wrong password in the destination URL
  - Wrong username

Original error: %w`, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`database "%s" does not exist

To create it:
  createdb %s

Original error: %w`, database, database, err)

	default:
		return fmt.Errorf("failed to connect to database: %w", err)
	}
}

var _ msgprep.Store = (*PostgresStore)(nil)
