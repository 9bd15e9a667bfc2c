package loader

import (
	"context"
	"fmt"

	"github.com/vvka-141/msgprep/internal/files/filesystem"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

const (
	leftSuffix  = "_x"
	rightSuffix = "_y"
)

// Options configures how the sources are parsed and joined.
type Options struct {
	// IDColumn is the join key; it must exist in both sources
	IDColumn string

	// Delimiter separates fields (default ',')
	Delimiter rune

	// TextColumns are never converted to numbers, even if every value looks numeric
	TextColumns []string
}

// Loader reads and joins the two input sources.
// Stateless between calls; safe to reuse.
type Loader struct {
	fs   filesystem.FileSystemProvider
	opts Options
}

// NewLoader creates a Loader reading through fsProvider.
// Panics if fsProvider is nil.
func NewLoader(fsProvider filesystem.FileSystemProvider, opts Options) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if opts.IDColumn == "" {
		opts.IDColumn = msgprep.DefaultIDColumn
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = msgprep.DefaultDelimiter
	}
	return &Loader{fs: fsProvider, opts: opts}
}

// Load reads both sources and returns their inner join on the identifier column.
func (l *Loader) Load(ctx context.Context, messagesPath, categoriesPath string) (*msgprep.Table, error) {
	messages, err := l.readSource(ctx, messagesPath)
	if err != nil {
		return nil, err
	}
	categories, err := l.readSource(ctx, categoriesPath)
	if err != nil {
		return nil, err
	}

	header, rows, err := join(messages, categories, l.opts.IDColumn)
	if err != nil {
		return nil, err
	}

	return buildTable(header, rows, l.opts.TextColumns), nil
}

// join performs the inner join of left and right on key.
func join(left, right *source, key string) ([]string, [][]string, error) {
	leftKey := left.columnIndex(key)
	if leftKey < 0 {
		return nil, nil, fmt.Errorf("%s: identifier column %q not found: %w", left.path, key, msgprep.ErrSchema)
	}
	rightKey := right.columnIndex(key)
	if rightKey < 0 {
		return nil, nil, fmt.Errorf("%s: identifier column %q not found: %w", right.path, key, msgprep.ErrSchema)
	}

	header := joinHeader(left.header, right.header, leftKey, rightKey)

	matches := make(map[string][]int, len(right.records))
	for i, rec := range right.records {
		k := rec[rightKey]
		matches[k] = append(matches[k], i)
	}

	var rows [][]string
	for _, lrec := range left.records {
		for _, ri := range matches[lrec[leftKey]] {
			rrec := right.records[ri]
			row := make([]string, 0, len(header))
			row = append(row, lrec...)
			row = append(row, rrec[:rightKey]...)
			row = append(row, rrec[rightKey+1:]...)
			rows = append(rows, row)
		}
	}

	return header, rows, nil
}

// joinHeader lists left columns, then right columns without the key.
// Names present on both sides (other than the key) get side suffixes.
func joinHeader(left, right []string, leftKey, rightKey int) []string {
	inLeft := make(map[string]bool, len(left))
	for i, h := range left {
		if i != leftKey {
			inLeft[h] = true
		}
	}
	inRight := make(map[string]bool, len(right))
	for i, h := range right {
		if i != rightKey {
			inRight[h] = true
		}
	}

	header := make([]string, 0, len(left)+len(right)-1)
	for i, h := range left {
		if i != leftKey && inRight[h] {
			h += leftSuffix
		}
		header = append(header, h)
	}
	for i, h := range right {
		if i == rightKey {
			continue
		}
		if inLeft[h] {
			h += rightSuffix
		}
		header = append(header, h)
	}
	return header
}
