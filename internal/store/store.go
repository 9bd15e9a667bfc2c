package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// Opener opens the store behind a destination.
type Opener func(ctx context.Context, destination string) (msgprep.Store, error)

// Open opens the store for destination.
// PostgreSQL URLs open a PostgresStore, everything else a SQLiteStore.
func Open(ctx context.Context, destination string, logger msgprep.Logger) (msgprep.Store, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if IsPostgresURL(destination) {
		return OpenPostgres(ctx, destination, logger)
	}
	return OpenSQLite(ctx, destination, logger)
}

// OpenExisting opens the store for destination without creating anything.
// A SQLite file that does not exist fails with msgprep.ErrRelationNotFound.
func OpenExisting(ctx context.Context, destination string, logger msgprep.Logger) (msgprep.Store, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if IsPostgresURL(destination) || destination == "" {
		return Open(ctx, destination, logger)
	}
	if _, err := os.Stat(destination); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("database %q does not exist: %w", destination, msgprep.ErrRelationNotFound)
		}
		return nil, ioError(fmt.Sprintf("stat database %q", destination), err)
	}
	return OpenSQLite(ctx, destination, logger)
}

// NewOpener binds logger to Open.
func NewOpener(logger msgprep.Logger) Opener {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return func(ctx context.Context, destination string) (msgprep.Store, error) {
		return Open(ctx, destination, logger)
	}
}

// IsPostgresURL reports whether destination names a PostgreSQL server.
func IsPostgresURL(destination string) bool {
	return strings.HasPrefix(destination, "postgres://") ||
		strings.HasPrefix(destination, "postgresql://")
}

// RelationName returns the relation a run writes to.
// An explicit override wins; otherwise SQLite destinations use the
// destination itself and PostgreSQL destinations use DefaultPostgresTable.
func RelationName(destination, override string) string {
	if override != "" {
		return override
	}
	if IsPostgresURL(destination) {
		return msgprep.DefaultPostgresTable
	}
	return destination
}

// DisplayName returns destination with any password redacted.
// A PostgreSQL URL that does not parse is shown as a placeholder.
func DisplayName(destination string) string {
	if !IsPostgresURL(destination) {
		return destination
	}
	u, err := url.Parse(destination)
	if err != nil {
		scheme, _, _ := strings.Cut(destination, "://")
		return scheme + "://<invalid URL>"
	}
	return u.Redacted()
}
