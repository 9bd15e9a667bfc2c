// Package loader reads the messages and categories sources and joins them.
//
// Both sources are delimited text with a header row. They are read through a
// filesystem.FileSystemProvider, inner-joined on a shared identifier column and
// returned as a single msgprep.Table whose column kinds are inferred from the
// data (integer, real or text).
//
// # Join semantics
//
// Rows are emitted in messages order; for each messages row, every categories
// row with the same identifier is emitted in categories order. Duplicate
// identifiers therefore produce the cross-product of their matches. Rows whose
// identifier is missing from the other source are dropped.
//
// Non-key columns present in both sources are renamed with the suffixes "_x"
// (messages side) and "_y" (categories side).
//
// # Example Usage
//
//	l := loader.NewLoader(filesystem.NewOSFileSystem(), loader.Options{
//	    IDColumn:    "id",
//	    Delimiter:   ',',
//	    TextColumns: []string{"message", "categories"},
//	})
//	table, err := l.Load(ctx, "messages.csv", "categories.csv")
package loader
