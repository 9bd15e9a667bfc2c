package msgprep

import "context"

// Store persists tables into named relations of a durable tabular store.
//
// Implementations hold at most one connection or handle, released by Close.
// They are NOT safe for concurrent use.
type Store interface {
	// Save writes table into relation, replacing any relation of the same name.
	// The write is committed before Save returns; on error nothing is changed.
	Save(ctx context.Context, table *Table, relation string) error

	// Read returns the full content of relation.
	Read(ctx context.Context, relation string) (*Table, error)

	// Close releases the underlying connection.
	Close() error
}
