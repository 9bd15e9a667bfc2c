// Package store persists msgprep tables into relations of a durable tabular store.
//
// Two implementations are provided:
//   - SQLiteStore: a local database file, via modernc.org/sqlite (no cgo)
//   - PostgresStore: a PostgreSQL server, via a pgx connection pool
//
// Open picks the implementation from the destination: URLs starting with
// postgres:// or postgresql:// go to PostgreSQL, anything else is treated as
// a SQLite file path.
//
// Save always replaces the relation: the old relation is dropped, the new one
// created and filled, all inside one transaction. A failed Save leaves the
// previous relation untouched.
//
// Identifiers are quoted with pgx.Identifier.Sanitize(), which produces
// double-quoted identifiers valid in both SQLite and PostgreSQL.
//
// # Thread Safety
//
// Stores are NOT safe for concurrent use. A run opens one store, saves one
// table and closes it.
package store
